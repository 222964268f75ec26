// Package flags provides packed lists of flags: boolean sequences stored one
// bit per flag.
//
// Fixed width lists (B32, B64, B128, BSize, B256) keep up to Bits flags in a
// single word and are plain values; copying one copies the list. Long keeps
// any number of flags in a slice of native words and must be cloned to be
// duplicated.
//
// Every list keeps the bits above its length clear, so the raw storage of a
// list is always a canonical representation of its content.
package flags

// Getter is the read side of a flag list.
type Getter interface {
	Len() uint
	// Get returns the flag at index i, ok is false when i >= Len().
	Get(i uint) (flag bool, ok bool)
}

// List is the contract shared by every flag list. The unchecked mutators
// panic with *IndexError or *CapacityError; the Try functions of this package
// are the checked counterparts.
type List interface {
	Getter
	MaxLen() uint
	// SetLen resizes the list. New flags are false.
	SetLen(n uint)
	// Insert puts flag at index i, shifting flags at i and above up by one.
	// i == Len() appends.
	Insert(i uint, flag bool)
	// Remove deletes and returns the flag at index i, shifting the flags
	// above it down by one.
	Remove(i uint) bool
	Clear()
	Set(i uint, flag bool)
	Iter() *Iter
}

// Truncate shortens l to n flags. It does nothing if n >= l.Len().
func Truncate(l List, n uint) {
	if n < l.Len() {
		l.SetLen(n)
	}
}

// Push appends flag to the end of l.
func Push(l List, flag bool) {
	l.Insert(l.Len(), flag)
}

// TryPush appends flag to the end of l unless l is full.
func TryPush(l List, flag bool) error {
	if l.Len() >= l.MaxLen() {
		return growthError(l.MaxLen(), l.Len(), 1)
	}
	Push(l, flag)
	return nil
}

// Pop removes and returns the last flag of l.
func Pop(l List) (bool, bool) {
	if l.Len() == 0 {
		return false, false
	}
	return l.Remove(l.Len() - 1), true
}

// TryInsert is Insert returning an error instead of panicking.
func TryInsert(l List, i uint, flag bool) error {
	if i > l.Len() {
		return indexError(i, l.Len())
	}
	if l.Len() >= l.MaxLen() {
		return growthError(l.MaxLen(), l.Len(), 1)
	}
	l.Insert(i, flag)
	return nil
}

// TryRemove removes and returns the flag at i if it exists.
func TryRemove(l List, i uint) (bool, bool) {
	if i >= l.Len() {
		return false, false
	}
	return l.Remove(i), true
}

// TrySet sets the flag at i and returns the flag it replaced. ok is false and
// l is left untouched when i is out of bounds.
func TrySet(l List, i uint, flag bool) (prev bool, ok bool) {
	prev, ok = l.Get(i)
	if ok {
		l.Set(i, flag)
	}
	return prev, ok
}

// TrySetLen is SetLen returning an error instead of panicking.
func TrySetLen(l List, n uint) error {
	if n > l.MaxLen() {
		return &CapacityError{Max: l.MaxLen(), Attempt: n}
	}
	l.SetLen(n)
	return nil
}

// Extend pushes every flag of fs onto l. It panics, without touching l, when
// the result would not fit.
func Extend(l List, fs []bool) {
	if err := TryExtend(l, fs); err != nil {
		panic(err)
	}
}

// TryExtend pushes every flag of fs onto l, or nothing if they do not all fit.
func TryExtend(l List, fs []bool) error {
	if uint(len(fs)) > l.MaxLen()-l.Len() {
		return growthError(l.MaxLen(), l.Len(), uint(len(fs)))
	}
	for _, f := range fs {
		Push(l, f)
	}
	return nil
}

func IsEmpty(g Getter) bool {
	return g.Len() == 0
}

// Collect returns the flags of g as a slice.
func Collect(g Getter) []bool {
	out := make([]bool, g.Len())
	for i := range out {
		out[i], _ = g.Get(uint(i))
	}
	return out
}

// Equal reports whether a and b hold the same flags, whatever their types.
func Equal(a, b Getter) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := uint(0); i < a.Len(); i++ {
		fa, _ := a.Get(i)
		fb, _ := b.Get(i)
		if fa != fb {
			return false
		}
	}
	return true
}
