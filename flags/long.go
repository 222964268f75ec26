package flags

//
// Long: unbounded flag list over a slice of native words
//

import (
	"github.com/pi/packedflags/debug"
	"github.com/pi/packedflags/md"
)

const bitsPerUint = md.BitsPerUint

// Long is a list of any number of flags. Word i holds flags
// i*bitsPerUint .. (i+1)*bitsPerUint-1, lowest flag in the lowest bit.
// The zero value is an empty list. Long must not be copied by assignment;
// use Clone.
type Long struct {
	words []uint
	len   uint
}

func NewLong() *Long {
	return &Long{}
}

// LongFromFlags builds a list holding fs.
func LongFromFlags(fs []bool) *Long {
	l := &Long{words: make([]uint, md.WordsFor(uint(len(fs)))), len: uint(len(fs))}
	for i, f := range fs {
		if f {
			l.words[uint(i)>>md.UintSizeShift] |= 1 << (uint(i) & md.UintSizeMask)
		}
	}
	return l
}

func LongAllTrue(n uint) *Long {
	l := &Long{words: make([]uint, md.WordsFor(n)), len: n}
	for i := range l.words {
		l.words[i] = md.MaxUint
	}
	l.maskTail()
	return l
}

func LongAllFalse(n uint) *Long {
	return &Long{words: make([]uint, md.WordsFor(n)), len: n}
}

// LongFromWords builds a list of length n from raw words. Missing words
// read as zero, extra words and bits at and above n are dropped.
func LongFromWords(words []uint, n uint) *Long {
	l := &Long{words: make([]uint, md.WordsFor(n)), len: n}
	copy(l.words, words)
	l.maskTail()
	return l
}

func (l *Long) Len() uint {
	return l.len
}

func (l *Long) MaxLen() uint {
	return md.MaxUint
}

func (l *Long) IsEmpty() bool {
	return l.len == 0
}

// Words returns a copy of the backing words.
func (l *Long) Words() []uint {
	return append([]uint(nil), l.words...)
}

func (l *Long) Clone() *Long {
	return &Long{words: l.Words(), len: l.len}
}

// maskTail clears the bits above len in the last word.
func (l *Long) maskTail() {
	if r := l.len & md.UintSizeMask; r != 0 {
		l.words[len(l.words)-1] &= md.LowMask(r)
	}
}

func (l *Long) SetLen(n uint) {
	want := md.WordsFor(n)
	have := uint(len(l.words))
	switch {
	case want > have:
		l.words = append(l.words, make([]uint, want-have)...)
	case want < have:
		l.words = l.words[:want]
	}
	if debug.Enabled && want != have {
		debug.Log("long list resized from %d to %d words", have, want)
	}
	l.len = n
	l.maskTail()
}

func (l *Long) Insert(i uint, flag bool) {
	if i > l.len {
		panic(indexError(i, l.len))
	}
	if l.len == md.MaxUint {
		panic(growthError(md.MaxUint, l.len, 1))
	}
	if l.len&md.UintSizeMask == 0 {
		// last word is full (or there is none), the top bit needs room
		l.words = append(l.words, 0)
		if debug.Enabled {
			debug.Log("long list grew to %d words on insert", len(l.words))
		}
	}
	t, m := i>>md.UintSizeShift, i&md.UintSizeMask
	w := l.words[t]
	carry := w >> (bitsPerUint - 1)
	lower := w & md.LowMask(m)
	l.words[t] = (w&^lower)<<1 | b2u(flag)<<m | lower
	for j := t + 1; j < uint(len(l.words)); j++ {
		next := l.words[j] >> (bitsPerUint - 1)
		l.words[j] = l.words[j]<<1 | carry
		carry = next
	}
	l.len++
}

func (l *Long) Remove(i uint) bool {
	if i >= l.len {
		panic(indexError(i, l.len))
	}
	t, m := i>>md.UintSizeShift, i&md.UintSizeMask
	var borrow uint
	for j := uint(len(l.words)) - 1; j > t; j-- {
		next := l.words[j] & 1
		l.words[j] = l.words[j]>>1 | borrow<<(bitsPerUint-1)
		borrow = next
	}
	w := l.words[t]
	out := (w>>m)&1 == 1
	lower := w & md.LowMask(m)
	upper := w &^ md.LowMask(m+1)
	l.words[t] = upper>>1 | lower | borrow<<(bitsPerUint-1)
	l.len--
	if l.len&md.UintSizeMask == 0 {
		// the trailing word is empty now
		l.words = l.words[:len(l.words)-1]
		if debug.Enabled {
			debug.Log("long list shrank to %d words on remove", len(l.words))
		}
	}
	return out
}

func (l *Long) Clear() {
	l.words = nil
	l.len = 0
}

func (l *Long) Get(i uint) (bool, bool) {
	if i >= l.len {
		return false, false
	}
	return l.UncheckedGet(i), true
}

// At returns the flag at index i and panics if there is none.
func (l *Long) At(i uint) bool {
	if i >= l.len {
		panic(indexError(i, l.len))
	}
	return l.UncheckedGet(i)
}

// UncheckedGet returns the flag at index i without a length check.
// The caller guarantees i < Len().
func (l *Long) UncheckedGet(i uint) bool {
	return (l.words[i>>md.UintSizeShift]>>(i&md.UintSizeMask))&1 == 1
}

func (l *Long) Set(i uint, flag bool) {
	if i >= l.len {
		panic(indexError(i, l.len))
	}
	t, m := i>>md.UintSizeShift, i&md.UintSizeMask
	l.words[t] = l.words[t]&^(1<<m) | b2u(flag)<<m
}

// Iter returns an iterator over the list. The list must not be modified
// while the iterator is in use.
func (l *Long) Iter() *Iter {
	return NewIter(l)
}

func (l *Long) Flags() []bool {
	return Collect(l)
}

func (l *Long) Equal(o *Long) bool {
	if l.len != o.len || len(l.words) != len(o.words) {
		return false
	}
	for i, w := range l.words {
		if w != o.words[i] {
			return false
		}
	}
	return true
}

const hashMul = uint(0xc4ceb9fe1a85ec53 & uint64(md.MaxUint))

// Hash returns a hash of the content of the list. Equal lists hash equal.
func (l *Long) Hash() uint {
	h := l.len * hashMul
	for _, w := range l.words {
		h = (h ^ w) * hashMul
	}
	return h
}

func (l *Long) Truncate(n uint) {
	Truncate(l, n)
}

func (l *Long) Push(flag bool) {
	Push(l, flag)
}

func (l *Long) TryPush(flag bool) error {
	return TryPush(l, flag)
}

func (l *Long) Pop() (bool, bool) {
	return Pop(l)
}

func (l *Long) TryInsert(i uint, flag bool) error {
	return TryInsert(l, i, flag)
}

func (l *Long) TryRemove(i uint) (bool, bool) {
	return TryRemove(l, i)
}

func (l *Long) TrySet(i uint, flag bool) (bool, bool) {
	return TrySet(l, i, flag)
}

func (l *Long) TrySetLen(n uint) error {
	return TrySetLen(l, n)
}

func (l *Long) Extend(fs []bool) {
	Extend(l, fs)
}

func (l *Long) TryExtend(fs []bool) error {
	return TryExtend(l, fs)
}

//
// Set algebra. The With/By forms update the receiver in place; the others
// return a new list and leave their operands alone.
//

// AndWith intersects l with o in place. Flags past the shorter operand are
// false; l grows to the longer length.
func (l *Long) AndWith(o *Long) {
	n := minInt(len(l.words), len(o.words))
	for i := 0; i < n; i++ {
		l.words[i] &= o.words[i]
	}
	for i := n; i < len(l.words); i++ {
		l.words[i] = 0
	}
	if len(l.words) < len(o.words) {
		l.words = append(l.words, make([]uint, len(o.words)-len(l.words))...)
	}
	l.len = maxUint(l.len, o.len)
}

// OrWith adds the flags of o to l in place. l grows to the longer length.
func (l *Long) OrWith(o *Long) {
	n := minInt(len(l.words), len(o.words))
	for i := 0; i < n; i++ {
		l.words[i] |= o.words[i]
	}
	l.words = append(l.words, o.words[n:]...)
	l.len = maxUint(l.len, o.len)
}

// XorWith flips the flags of l that are set in o. l grows to the longer length.
func (l *Long) XorWith(o *Long) {
	n := minInt(len(l.words), len(o.words))
	for i := 0; i < n; i++ {
		l.words[i] ^= o.words[i]
	}
	l.words = append(l.words, o.words[n:]...)
	l.len = maxUint(l.len, o.len)
}

// SubWith clears the flags of l that are set in o. The length of l is kept.
func (l *Long) SubWith(o *Long) {
	n := minInt(len(l.words), len(o.words))
	for i := 0; i < n; i++ {
		l.words[i] &^= o.words[i]
	}
}

// Invert flips every flag of l in place.
func (l *Long) Invert() {
	for i := range l.words {
		l.words[i] = ^l.words[i]
	}
	l.maskTail()
}

// ShrBy drops the n lowest flags of l in place.
func (l *Long) ShrBy(n uint) {
	if n >= l.len {
		l.Clear()
		return
	}
	ws, bs := n>>md.UintSizeShift, n&md.UintSizeMask
	newLen := l.len - n
	for i := uint(0); i < md.WordsFor(newLen); i++ {
		src := i + ws
		w := l.words[src] >> bs
		if bs != 0 && src+1 < uint(len(l.words)) {
			w |= l.words[src+1] << (bitsPerUint - bs)
		}
		l.words[i] = w
	}
	l.words = l.words[:md.WordsFor(newLen)]
	l.len = newLen
	l.maskTail()
}

// ShlBy moves every flag of l n places up in place, see Shl.
func (l *Long) ShlBy(n uint) {
	*l = *l.Shl(n)
}

// And is the intersection of l and o. Flags past the shorter operand are
// false; the result is as long as the longer operand.
func (l *Long) And(o *Long) *Long {
	r := l.Clone()
	r.AndWith(o)
	return r
}

// Or is the union of l and o. The result is as long as the longer operand.
func (l *Long) Or(o *Long) *Long {
	r := l.Clone()
	r.OrWith(o)
	return r
}

// Xor is the symmetric difference of l and o. The result is as long as the
// longer operand.
func (l *Long) Xor(o *Long) *Long {
	r := l.Clone()
	r.XorWith(o)
	return r
}

// Sub is the set difference l - o, o read as false past its end. The result
// has the length of l.
func (l *Long) Sub(o *Long) *Long {
	r := l.Clone()
	r.SubWith(o)
	return r
}

// Not flips every flag of l.
func (l *Long) Not() *Long {
	r := l.Clone()
	r.Invert()
	return r
}

// Shl moves every flag n places up and fills the bottom with false. The
// length grows by n.
func (l *Long) Shl(n uint) *Long {
	newLen := md.MaxUint
	if n < md.MaxUint-l.len {
		newLen = l.len + n
	}
	r := &Long{words: make([]uint, md.WordsFor(newLen)), len: newLen}
	ws, bs := n>>md.UintSizeShift, n&md.UintSizeMask
	for i, w := range l.words {
		j := uint(i) + ws
		if j >= uint(len(r.words)) {
			break
		}
		r.words[j] |= w << bs
		if bs != 0 && j+1 < uint(len(r.words)) {
			r.words[j+1] |= w >> (bitsPerUint - bs)
		}
	}
	r.maskTail()
	return r
}

// Shr drops the n lowest flags.
func (l *Long) Shr(n uint) *Long {
	r := l.Clone()
	r.ShrBy(n)
	return r
}

func b2u(b bool) uint {
	if b {
		return 1
	}
	return 0
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
