package testhelpers

import "math/rand"

// N is the number of random steps property tests run.
const N = 2000

// SeqGen is a deterministic source of words for building flag sequences.
type SeqGen interface {
	Seed(value uint)
	Next() uint
	Reset()
}

const (
	SgRand = iota
	SgSeq
)

func NewSeqGen(sgt int) SeqGen {
	switch sgt {
	case SgRand:
		return &randSG{}
	case SgSeq:
		return &seqSG{}
	default:
		panic("invalid sequence generator type")
	}
}

// Flags draws n flags from g, one bit of each word.
func Flags(g SeqGen, n int) []bool {
	fs := make([]bool, n)
	for i := range fs {
		fs[i] = g.Next()&1 == 1
	}
	return fs
}

// Index draws a value in [0, n) from g. n must not be zero.
func Index(g SeqGen, n uint) uint {
	return g.Next() % n
}

type randSG struct {
	r *rand.Rand
}

func (g *randSG) Next() uint {
	if g.r == nil {
		g.r = rand.New(rand.NewSource(1))
	}
	return uint(g.r.Int63())
}
func (g *randSG) Reset() {
	g.r = rand.New(rand.NewSource(1))
}
func (g *randSG) Seed(value uint) {
	g.r = rand.New(rand.NewSource(int64(value)))
}

// seqSG counts up, so its flags alternate.
type seqSG struct {
	cur uint
}

func (g *seqSG) Next() uint {
	g.cur++
	return g.cur
}
func (g *seqSG) Reset() {
	g.cur = 0
}
func (g *seqSG) Seed(value uint) {
	g.cur = value
}
