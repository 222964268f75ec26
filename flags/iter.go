package flags

// Iter walks the flags of a list from either end. Once the two ends meet the
// iterator stays exhausted.
type Iter struct {
	g           Getter
	front, back uint
}

// NewIter returns an iterator over the flags g holds now.
func NewIter(g Getter) *Iter {
	return &Iter{g: g, back: g.Len()}
}

// Next returns the next flag from the front. ok is false once exhausted.
func (it *Iter) Next() (flag bool, ok bool) {
	if it.front >= it.back {
		return false, false
	}
	flag, ok = it.g.Get(it.front)
	it.front++
	return flag, ok
}

// NextBack returns the next flag from the back. ok is false once exhausted.
func (it *Iter) NextBack() (flag bool, ok bool) {
	if it.front >= it.back {
		return false, false
	}
	it.back--
	return it.g.Get(it.back)
}

// Len returns the number of flags left.
func (it *Iter) Len() uint {
	return it.back - it.front
}
