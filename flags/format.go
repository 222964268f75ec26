package flags

import (
	"fmt"
	"math/big"
)

// Format renders the backing storage as one unsigned integer for the
// %b, %o, %x, %X and %d verbs, and the flag list for everything else.
func (l Fixed[W]) Format(f fmt.State, verb rune) {
	formatList(f, verb, l, l.bits.Limbs())
}

func (l Fixed[W]) String() string {
	return fmt.Sprint(Collect(l))
}

// Format renders the backing words as one unsigned integer for the
// %b, %o, %x, %X and %d verbs, and the flag list for everything else.
func (l *Long) Format(f fmt.State, verb rune) {
	formatList(f, verb, l, limbsFromWords(l.words))
}

func (l *Long) String() string {
	return fmt.Sprint(Collect(l))
}

func formatList(f fmt.State, verb rune, g Getter, limbs []uint64) {
	switch verb {
	case 'b', 'o', 'x', 'X', 'd':
		limbsToBig(limbs).Format(f, verb)
	default:
		fmt.Fprint(f, Collect(g))
	}
}

func limbsToBig(limbs []uint64) *big.Int {
	z := new(big.Int)
	var limb big.Int
	for i := len(limbs) - 1; i >= 0; i-- {
		z.Lsh(z, 64)
		z.Or(z, limb.SetUint64(limbs[i]))
	}
	return z
}
