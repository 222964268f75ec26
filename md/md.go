package md

// Native word geometry. A uint holds BitsPerUint flags.
const UintSizeShift = 5 + (^uint(0) >> 63)
const BitsPerUint = (1 << UintSizeShift)
const BytesPerUint = BitsPerUint / 8
const UintSizeMask = BitsPerUint - 1

const MaxUint = ^uint(0)

// WordsFor returns the number of native words needed to hold n bits.
func WordsFor(n uint) uint {
	w := n >> UintSizeShift
	if n&UintSizeMask != 0 {
		w++
	}
	return w
}

// LowMask returns a word with the low n bits set. n >= BitsPerUint gives all ones.
func LowMask(n uint) uint {
	if n >= BitsPerUint {
		return MaxUint
	}
	return (uint(1) << n) - 1
}
