// Package bitlist converts flag lists to and from the SSZ bit containers of
// github.com/prysmaticlabs/go-bitfield.
package bitlist

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/go-bitfield"

	"github.com/pi/packedflags/flags"
)

// ToBitlist copies the flags of g into a bitlist of the same length.
func ToBitlist(g flags.Getter) bitfield.Bitlist {
	b := bitfield.NewBitlist(uint64(g.Len()))
	for i := uint(0); i < g.Len(); i++ {
		if f, _ := g.Get(i); f {
			b.SetBitAt(uint64(i), true)
		}
	}
	return b
}

// LongFromBitlist copies a bitlist into a Long of the same length.
func LongFromBitlist(b bitfield.Bitlist) *flags.Long {
	n := b.Len()
	l := flags.LongAllFalse(uint(n))
	for i := uint64(0); i < n; i++ {
		if b.BitAt(i) {
			l.Set(uint(i), true)
		}
	}
	return l
}

// FixedFromBitlist copies a bitlist into a fixed width list. It fails when
// the bitlist does not fit.
func FixedFromBitlist[W flags.Word[W]](b bitfield.Bitlist) (flags.Fixed[W], error) {
	l, err := flags.FixedFromLong[W](LongFromBitlist(b))
	if err != nil {
		return flags.Fixed[W]{}, errors.Wrap(err, "bitlist too long")
	}
	return l, nil
}

// ToBitvector64 copies l into a 64 bit vector. Flags past l.Len() are false.
func ToBitvector64(l flags.B64) bitfield.Bitvector64 {
	b := bitfield.NewBitvector64()
	for i := uint(0); i < l.Len(); i++ {
		if l.UncheckedGet(i) {
			b.SetBitAt(uint64(i), true)
		}
	}
	return b
}

// FromBitvector64 copies a 64 bit vector into a full length B64.
func FromBitvector64(b bitfield.Bitvector64) flags.B64 {
	var raw flags.W64
	for i := uint(0); i < 64; i++ {
		if b.BitAt(uint64(i)) {
			raw = raw.WithBit(i, true)
		}
	}
	return flags.FromRaw(raw, 64)
}
