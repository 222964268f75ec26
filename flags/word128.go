package flags

// W128 is a 128 bit word made of two 64 bit halves.
type W128 struct {
	Lo, Hi uint64
}

func (w W128) Bits() uint { return 128 }

func (w W128) Bit(i uint) bool {
	switch {
	case i < 64:
		return (w.Lo>>i)&1 == 1
	case i < 128:
		return (w.Hi>>(i-64))&1 == 1
	}
	return false
}

func (w W128) WithBit(i uint, v bool) W128 {
	bit := W128{Lo: 1}.Shl(i)
	if v {
		return w.Or(bit)
	}
	return w.AndNot(bit)
}

func (w W128) Mask(n uint) W128 {
	switch {
	case n >= 128:
		return w
	case n >= 64:
		return W128{Lo: w.Lo, Hi: w.Hi & (uint64(1)<<(n-64) - 1)}
	}
	return W128{Lo: w.Lo & (uint64(1)<<n - 1)}
}

func (w W128) And(o W128) W128    { return W128{Lo: w.Lo & o.Lo, Hi: w.Hi & o.Hi} }
func (w W128) Or(o W128) W128     { return W128{Lo: w.Lo | o.Lo, Hi: w.Hi | o.Hi} }
func (w W128) Xor(o W128) W128    { return W128{Lo: w.Lo ^ o.Lo, Hi: w.Hi ^ o.Hi} }
func (w W128) AndNot(o W128) W128 { return W128{Lo: w.Lo &^ o.Lo, Hi: w.Hi &^ o.Hi} }
func (w W128) Not() W128          { return W128{Lo: ^w.Lo, Hi: ^w.Hi} }
func (w W128) IsZero() bool       { return w.Lo == 0 && w.Hi == 0 }

func (w W128) Shl(n uint) W128 {
	switch {
	case n == 0:
		return w
	case n >= 128:
		return W128{}
	case n >= 64:
		return W128{Hi: w.Lo << (n - 64)}
	}
	return W128{Lo: w.Lo << n, Hi: w.Hi<<n | w.Lo>>(64-n)}
}

func (w W128) Shr(n uint) W128 {
	switch {
	case n == 0:
		return w
	case n >= 128:
		return W128{}
	case n >= 64:
		return W128{Lo: w.Hi >> (n - 64)}
	}
	return W128{Lo: w.Lo>>n | w.Hi<<(64-n), Hi: w.Hi >> n}
}

func (w W128) Limbs() []uint64 { return []uint64{w.Lo, w.Hi} }

func (w W128) FromLimbs(l []uint64) W128 {
	var r W128
	if len(l) > 0 {
		r.Lo = l[0]
	}
	if len(l) > 1 {
		r.Hi = l[1]
	}
	return r
}
