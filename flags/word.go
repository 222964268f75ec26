package flags

//
// Backing words for fixed width flag lists
//

// Word is the storage integer of a fixed width flag list. Bit i of the word
// holds flag i. All operations are pure and return a new word.
type Word[W any] interface {
	comparable
	// Bits is the width of the word, which is also the capacity of the list.
	Bits() uint
	Bit(i uint) bool
	WithBit(i uint, v bool) W
	// Mask keeps the low n bits. n >= Bits keeps everything.
	Mask(n uint) W
	And(o W) W
	Or(o W) W
	Xor(o W) W
	AndNot(o W) W
	Not() W
	// Shl and Shr shift by n bits; shifting by Bits or more yields zero.
	Shl(n uint) W
	Shr(n uint) W
	IsZero() bool
	// Limbs returns the word as little endian 64 bit limbs.
	Limbs() []uint64
	// FromLimbs builds a word from little endian 64 bit limbs, dropping
	// anything above Bits.
	FromLimbs(limbs []uint64) W
}

type W32 uint32

func (w W32) Bits() uint       { return 32 }
func (w W32) Bit(i uint) bool  { return (w>>i)&1 == 1 }
func (w W32) Mask(n uint) W32  { return w & (W32(1)<<n - 1) }
func (w W32) And(o W32) W32    { return w & o }
func (w W32) Or(o W32) W32     { return w | o }
func (w W32) Xor(o W32) W32    { return w ^ o }
func (w W32) AndNot(o W32) W32 { return w &^ o }
func (w W32) Not() W32         { return ^w }
func (w W32) Shl(n uint) W32   { return w << n }
func (w W32) Shr(n uint) W32   { return w >> n }
func (w W32) IsZero() bool     { return w == 0 }
func (w W32) Limbs() []uint64  { return []uint64{uint64(w)} }
func (w W32) FromLimbs(l []uint64) W32 {
	if len(l) == 0 {
		return 0
	}
	return W32(l[0])
}

func (w W32) WithBit(i uint, v bool) W32 {
	if v {
		return w | W32(1)<<i
	}
	return w &^ (W32(1) << i)
}

type W64 uint64

func (w W64) Bits() uint       { return 64 }
func (w W64) Bit(i uint) bool  { return (w>>i)&1 == 1 }
func (w W64) Mask(n uint) W64  { return w & (W64(1)<<n - 1) }
func (w W64) And(o W64) W64    { return w & o }
func (w W64) Or(o W64) W64     { return w | o }
func (w W64) Xor(o W64) W64    { return w ^ o }
func (w W64) AndNot(o W64) W64 { return w &^ o }
func (w W64) Not() W64         { return ^w }
func (w W64) Shl(n uint) W64   { return w << n }
func (w W64) Shr(n uint) W64   { return w >> n }
func (w W64) IsZero() bool     { return w == 0 }
func (w W64) Limbs() []uint64  { return []uint64{uint64(w)} }
func (w W64) FromLimbs(l []uint64) W64 {
	if len(l) == 0 {
		return 0
	}
	return W64(l[0])
}

func (w W64) WithBit(i uint, v bool) W64 {
	if v {
		return w | W64(1)<<i
	}
	return w &^ (W64(1) << i)
}

// WSize is a native machine word (uint), 32 or 64 bits depending on the platform.
type WSize uint

func (w WSize) Bits() uint           { return bitsPerUint }
func (w WSize) Bit(i uint) bool      { return (w>>i)&1 == 1 }
func (w WSize) Mask(n uint) WSize    { return w & (WSize(1)<<n - 1) }
func (w WSize) And(o WSize) WSize    { return w & o }
func (w WSize) Or(o WSize) WSize     { return w | o }
func (w WSize) Xor(o WSize) WSize    { return w ^ o }
func (w WSize) AndNot(o WSize) WSize { return w &^ o }
func (w WSize) Not() WSize           { return ^w }
func (w WSize) Shl(n uint) WSize     { return w << n }
func (w WSize) Shr(n uint) WSize     { return w >> n }
func (w WSize) IsZero() bool         { return w == 0 }
func (w WSize) Limbs() []uint64      { return []uint64{uint64(w)} }
func (w WSize) FromLimbs(l []uint64) WSize {
	if len(l) == 0 {
		return 0
	}
	return WSize(l[0])
}

func (w WSize) WithBit(i uint, v bool) WSize {
	if v {
		return w | WSize(1)<<i
	}
	return w &^ (WSize(1) << i)
}
