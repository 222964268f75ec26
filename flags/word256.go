package flags

import "github.com/holiman/uint256"

// W256 is a 256 bit word backed by uint256.Int.
type W256 struct {
	v uint256.Int
}

// W256From copies x into a word.
func W256From(x *uint256.Int) W256 {
	return W256{v: *x}
}

// Uint256 returns a copy of the word as a uint256.Int.
func (w W256) Uint256() *uint256.Int {
	v := w.v
	return &v
}

func (w W256) Bits() uint { return 256 }

func (w W256) Bit(i uint) bool {
	if i >= 256 {
		return false
	}
	return (w.v[i>>6]>>(i&63))&1 == 1
}

func (w W256) WithBit(i uint, v bool) W256 {
	if i >= 256 {
		return w
	}
	if v {
		w.v[i>>6] |= 1 << (i & 63)
	} else {
		w.v[i>>6] &^= 1 << (i & 63)
	}
	return w
}

func (w W256) Mask(n uint) W256 {
	for i := range w.v {
		lo := uint(i) * 64
		switch {
		case n >= lo+64:
		case n > lo:
			w.v[i] &= uint64(1)<<(n-lo) - 1
		default:
			w.v[i] = 0
		}
	}
	return w
}

func (w W256) And(o W256) W256 {
	var r W256
	r.v.And(&w.v, &o.v)
	return r
}

func (w W256) Or(o W256) W256 {
	var r W256
	r.v.Or(&w.v, &o.v)
	return r
}

func (w W256) Xor(o W256) W256 {
	var r W256
	r.v.Xor(&w.v, &o.v)
	return r
}

func (w W256) AndNot(o W256) W256 {
	return w.And(o.Not())
}

func (w W256) Not() W256 {
	var r W256
	r.v.Not(&w.v)
	return r
}

func (w W256) Shl(n uint) W256 {
	var r W256
	r.v.Lsh(&w.v, n)
	return r
}

func (w W256) Shr(n uint) W256 {
	var r W256
	r.v.Rsh(&w.v, n)
	return r
}

func (w W256) IsZero() bool { return w.v.IsZero() }

func (w W256) Limbs() []uint64 {
	return []uint64{w.v[0], w.v[1], w.v[2], w.v[3]}
}

func (w W256) FromLimbs(l []uint64) W256 {
	var r W256
	copy(r.v[:], l)
	return r
}
