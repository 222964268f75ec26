package flags

//
// Fixed width flag lists
//

// Fixed is a list of up to W.Bits() flags packed into one word. The zero
// value is an empty list.
type Fixed[W Word[W]] struct {
	bits W
	len  uint
}

type (
	B32   = Fixed[W32]
	B64   = Fixed[W64]
	B128  = Fixed[W128]
	BSize = Fixed[WSize]
	B256  = Fixed[W256]
)

// FromRaw builds a list of length n from a raw word. Bits at and above n
// are dropped; n is capped at the word width.
func FromRaw[W Word[W]](raw W, n uint) Fixed[W] {
	if n > raw.Bits() {
		n = raw.Bits()
	}
	return Fixed[W]{bits: raw.Mask(n), len: n}
}

// FromFlags builds a list holding fs.
func FromFlags[W Word[W]](fs []bool) (Fixed[W], error) {
	var l Fixed[W]
	if err := TryExtend(&l, fs); err != nil {
		return Fixed[W]{}, err
	}
	return l, nil
}

// MustFromFlags is FromFlags panicking when fs does not fit.
func MustFromFlags[W Word[W]](fs []bool) Fixed[W] {
	l, err := FromFlags[W](fs)
	if err != nil {
		panic(err)
	}
	return l
}

// AllTrue builds a list of n true flags. It panics if n exceeds the capacity.
func AllTrue[W Word[W]](n uint) Fixed[W] {
	var z W
	if n > z.Bits() {
		panic(&CapacityError{Max: z.Bits(), Attempt: n})
	}
	return Fixed[W]{bits: z.Not().Mask(n), len: n}
}

// AllFalse builds a list of n false flags. It panics if n exceeds the capacity.
func AllFalse[W Word[W]](n uint) Fixed[W] {
	var z W
	if n > z.Bits() {
		panic(&CapacityError{Max: z.Bits(), Attempt: n})
	}
	return Fixed[W]{len: n}
}

func (l Fixed[W]) Len() uint {
	return l.len
}

func (l Fixed[W]) MaxLen() uint {
	return l.bits.Bits()
}

func (l Fixed[W]) IsEmpty() bool {
	return l.len == 0
}

// Raw returns the backing word.
func (l Fixed[W]) Raw() W {
	return l.bits
}

func (l *Fixed[W]) SetLen(n uint) {
	if n > l.MaxLen() {
		panic(&CapacityError{Max: l.MaxLen(), Attempt: n})
	}
	l.len = n
	l.bits = l.bits.Mask(n)
}

func (l *Fixed[W]) Insert(i uint, flag bool) {
	if i > l.len {
		panic(indexError(i, l.len))
	}
	if l.len == l.MaxLen() {
		panic(growthError(l.MaxLen(), l.len, 1))
	}
	var bit W
	lower := l.bits.Mask(i)
	upper := l.bits.AndNot(lower)
	l.bits = upper.Shl(1).Or(bit.WithBit(i, flag)).Or(lower)
	l.len++
}

func (l *Fixed[W]) Remove(i uint) bool {
	if i >= l.len {
		panic(indexError(i, l.len))
	}
	out := l.bits.Bit(i)
	lower := l.bits.Mask(i)
	upper := l.bits.AndNot(l.bits.Mask(i + 1))
	l.bits = upper.Shr(1).Or(lower)
	l.len--
	return out
}

func (l *Fixed[W]) Clear() {
	*l = Fixed[W]{}
}

func (l Fixed[W]) Get(i uint) (bool, bool) {
	if i >= l.len {
		return false, false
	}
	return l.bits.Bit(i), true
}

// At returns the flag at index i and panics if there is none.
func (l Fixed[W]) At(i uint) bool {
	if i >= l.len {
		panic(indexError(i, l.len))
	}
	return l.bits.Bit(i)
}

// UncheckedGet returns the flag at index i without a bounds check.
// The caller guarantees i < Len(); past the end it reads false.
func (l Fixed[W]) UncheckedGet(i uint) bool {
	return l.bits.Bit(i)
}

func (l *Fixed[W]) Set(i uint, flag bool) {
	if i >= l.len {
		panic(indexError(i, l.len))
	}
	l.bits = l.bits.WithBit(i, flag)
}

// Iter returns an iterator over a snapshot of the list.
func (l Fixed[W]) Iter() *Iter {
	return NewIter(l)
}

func (l Fixed[W]) Flags() []bool {
	return Collect(l)
}

func (l Fixed[W]) Equal(o Fixed[W]) bool {
	return l == o
}

func (l *Fixed[W]) Truncate(n uint) {
	Truncate(l, n)
}

func (l *Fixed[W]) Push(flag bool) {
	Push(l, flag)
}

func (l *Fixed[W]) TryPush(flag bool) error {
	return TryPush(l, flag)
}

func (l *Fixed[W]) Pop() (bool, bool) {
	return Pop(l)
}

func (l *Fixed[W]) TryInsert(i uint, flag bool) error {
	return TryInsert(l, i, flag)
}

func (l *Fixed[W]) TryRemove(i uint) (bool, bool) {
	return TryRemove(l, i)
}

func (l *Fixed[W]) TrySet(i uint, flag bool) (bool, bool) {
	return TrySet(l, i, flag)
}

func (l *Fixed[W]) TrySetLen(n uint) error {
	return TrySetLen(l, n)
}

func (l *Fixed[W]) Extend(fs []bool) {
	Extend(l, fs)
}

func (l *Fixed[W]) TryExtend(fs []bool) error {
	return TryExtend(l, fs)
}

//
// Set algebra. The With/By forms update the receiver in place; the others
// return a new list and leave their operands alone.
//

// And is the intersection of l and o. The result is as long as the longer operand.
func (l Fixed[W]) And(o Fixed[W]) Fixed[W] {
	return Fixed[W]{bits: l.bits.And(o.bits), len: maxUint(l.len, o.len)}
}

// Or is the union of l and o. The result is as long as the longer operand.
func (l Fixed[W]) Or(o Fixed[W]) Fixed[W] {
	return Fixed[W]{bits: l.bits.Or(o.bits), len: maxUint(l.len, o.len)}
}

// Xor is the symmetric difference of l and o. The result is as long as the longer operand.
func (l Fixed[W]) Xor(o Fixed[W]) Fixed[W] {
	return Fixed[W]{bits: l.bits.Xor(o.bits), len: maxUint(l.len, o.len)}
}

// Sub is the set difference l - o. The result has the length of l.
func (l Fixed[W]) Sub(o Fixed[W]) Fixed[W] {
	return Fixed[W]{bits: l.bits.AndNot(o.bits), len: l.len}
}

// Not flips every flag of l.
func (l Fixed[W]) Not() Fixed[W] {
	return Fixed[W]{bits: l.bits.Not().Mask(l.len), len: l.len}
}

// Shl moves every flag n places up and fills the bottom with false. The
// length grows by n up to the capacity; flags pushed past it are lost.
func (l Fixed[W]) Shl(n uint) Fixed[W] {
	newLen := l.MaxLen()
	if n < newLen-l.len {
		newLen = l.len + n
	}
	return Fixed[W]{bits: l.bits.Shl(n).Mask(newLen), len: newLen}
}

// Shr drops the n lowest flags.
func (l Fixed[W]) Shr(n uint) Fixed[W] {
	var newLen uint
	if n < l.len {
		newLen = l.len - n
	}
	return Fixed[W]{bits: l.bits.Shr(n), len: newLen}
}

func (l *Fixed[W]) AndWith(o Fixed[W]) {
	*l = l.And(o)
}

func (l *Fixed[W]) OrWith(o Fixed[W]) {
	*l = l.Or(o)
}

func (l *Fixed[W]) XorWith(o Fixed[W]) {
	*l = l.Xor(o)
}

func (l *Fixed[W]) SubWith(o Fixed[W]) {
	*l = l.Sub(o)
}

func (l *Fixed[W]) Invert() {
	*l = l.Not()
}

func (l *Fixed[W]) ShlBy(n uint) {
	*l = l.Shl(n)
}

func (l *Fixed[W]) ShrBy(n uint) {
	*l = l.Shr(n)
}

func maxUint(a, b uint) uint {
	if a > b {
		return a
	}
	return b
}
