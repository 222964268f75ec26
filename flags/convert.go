package flags

//
// Conversions between list widths
//

import (
	"github.com/pkg/errors"

	"github.com/pi/packedflags/md"
)

// Convert copies src into a list of another width. It fails with a
// *CapacityError when src is longer than the target can hold.
func Convert[To Word[To], From Word[From]](src Fixed[From]) (Fixed[To], error) {
	var z To
	if src.len > z.Bits() {
		return Fixed[To]{}, errors.Wrapf(&CapacityError{Max: z.Bits(), Attempt: src.len},
			"could not convert %d bit flag list to %d bits", src.MaxLen(), z.Bits())
	}
	return Fixed[To]{bits: z.FromLimbs(src.bits.Limbs()), len: src.len}, nil
}

// Widen copies src into a list at least as wide. It never fails for a
// widening pair and panics when To is narrower than From.
func Widen[To Word[To], From Word[From]](src Fixed[From]) Fixed[To] {
	var z To
	if z.Bits() < src.MaxLen() {
		panic(errors.Errorf("cannot widen %d bit flag list to %d bits", src.MaxLen(), z.Bits()))
	}
	return Fixed[To]{bits: z.FromLimbs(src.bits.Limbs()), len: src.len}
}

// LongFrom copies a fixed width list into a Long.
func LongFrom[W Word[W]](src Fixed[W]) *Long {
	return &Long{words: wordsFromLimbs(src.bits.Limbs(), md.WordsFor(src.len)), len: src.len}
}

// FixedFromLong copies l into a fixed width list. It fails with a
// *CapacityError when l is longer than the target can hold.
func FixedFromLong[W Word[W]](l *Long) (Fixed[W], error) {
	var z W
	if l.len > z.Bits() {
		return Fixed[W]{}, errors.Wrapf(&CapacityError{Max: z.Bits(), Attempt: l.len},
			"could not convert long flag list to %d bits", z.Bits())
	}
	return Fixed[W]{bits: z.FromLimbs(limbsFromWords(l.words)), len: l.len}, nil
}

// wordsFromLimbs cuts little endian 64 bit limbs into n native words.
func wordsFromLimbs(limbs []uint64, n uint) []uint {
	words := make([]uint, n)
	for i := range words {
		off := uint(i) << md.UintSizeShift
		if li := off >> 6; li < uint(len(limbs)) {
			words[i] = uint(limbs[li] >> (off & 63))
		}
	}
	return words
}

// limbsFromWords joins native words into little endian 64 bit limbs.
func limbsFromWords(words []uint) []uint64 {
	limbs := make([]uint64, (uint(len(words))*bitsPerUint+63)>>6)
	for i, w := range words {
		off := uint(i) << md.UintSizeShift
		limbs[off>>6] |= uint64(w) << (off & 63)
	}
	return limbs
}
