package flags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	th "github.com/pi/packedflags/internal/testhelpers"
)

func insertAt(s []bool, i uint, f bool) []bool {
	s = append(s, false)
	copy(s[i+1:], s[i:])
	s[i] = f
	return s
}

func removeAt(s []bool, i uint) []bool {
	return append(s[:i], s[i+1:]...)
}

func resize(s []bool, n uint) []bool {
	if n <= uint(len(s)) {
		return s[:n]
	}
	return append(s, make([]bool, n-uint(len(s)))...)
}

func TestFixedScenario(t *testing.T) {
	var l B32
	l.Insert(0, true)
	l.Insert(0, false)
	l.Insert(2, false)
	assert.Equal(t, MustFromFlags[W32]([]bool{false, true, false}), l)
	assert.EqualValues(t, 3, l.Len())

	assert.True(t, l.Remove(1))
	assert.Equal(t, MustFromFlags[W32]([]bool{false, false}), l)

	l.Set(1, true)
	assert.Equal(t, MustFromFlags[W32]([]bool{false, true}), l)
	assert.Equal(t, []bool{false, true}, l.Flags())
}

func TestFixedModel(t *testing.T) {
	t.Run("32", testFixedModel[W32])
	t.Run("64", testFixedModel[W64])
	t.Run("128", testFixedModel[W128])
	t.Run("size", testFixedModel[WSize])
	t.Run("256", testFixedModel[W256])
}

// testFixedModel runs random mutations against a []bool model and checks
// content and the above-length invariant after every step.
func testFixedModel[W Word[W]](t *testing.T) {
	g := th.NewSeqGen(th.SgRand)
	var l Fixed[W]
	model := []bool{}
	max := l.MaxLen()
	for step := 0; step < th.N; step++ {
		f := g.Next()&2 == 2
		switch th.Index(g, 7) {
		case 0:
			if uint(len(model)) == max {
				require.Error(t, l.TryInsert(0, f))
				break
			}
			i := th.Index(g, uint(len(model))+1)
			l.Insert(i, f)
			model = insertAt(model, i, f)
		case 1:
			if len(model) == 0 {
				_, ok := l.TryRemove(0)
				require.False(t, ok)
				break
			}
			i := th.Index(g, uint(len(model)))
			require.Equal(t, model[i], l.Remove(i))
			model = removeAt(model, i)
		case 2:
			if len(model) == 0 {
				break
			}
			i := th.Index(g, uint(len(model)))
			prev, ok := l.TrySet(i, f)
			require.True(t, ok)
			require.Equal(t, model[i], prev)
			model[i] = f
		case 3:
			if err := l.TryPush(f); err == nil {
				model = append(model, f)
			} else {
				require.EqualValues(t, max, len(model))
			}
		case 4:
			v, ok := l.Pop()
			require.Equal(t, len(model) > 0, ok)
			if ok {
				require.Equal(t, model[len(model)-1], v)
				model = model[:len(model)-1]
			}
		case 5:
			n := th.Index(g, max+1)
			l.SetLen(n)
			model = resize(model, n)
		case 6:
			if uint(len(model)) == max {
				break
			}
			before := l
			i := th.Index(g, uint(len(model))+1)
			l.Insert(i, f)
			require.Equal(t, f, l.Remove(i))
			require.Equal(t, before, l)
		}
		require.Equal(t, model, Collect(l))
		require.Equal(t, l.bits.Mask(l.len), l.bits, "bits above length must be clear")
	}
}

func TestFixedPushPop(t *testing.T) {
	t.Run("32", testFixedPushPop[W32])
	t.Run("64", testFixedPushPop[W64])
	t.Run("128", testFixedPushPop[W128])
	t.Run("size", testFixedPushPop[WSize])
	t.Run("256", testFixedPushPop[W256])
}

func testFixedPushPop[W Word[W]](t *testing.T) {
	l := AllTrue[W](AllTrue[W](0).MaxLen() - 1)
	n := l.Len()
	l.Push(false)
	assert.EqualValues(t, n+1, l.Len())
	assert.False(t, l.At(n))

	err := l.TryPush(true)
	var ce *CapacityError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, l.MaxLen(), ce.Max)
	assert.Equal(t, l.MaxLen()+1, ce.Attempt)
	assert.PanicsWithError(t, err.Error(), func() { l.Push(true) })

	v, ok := l.Pop()
	assert.True(t, ok)
	assert.False(t, v)
	assert.Equal(t, AllTrue[W](n), l)
}

func TestFixedBuilders(t *testing.T) {
	t.Run("32", testFixedBuilders[W32])
	t.Run("64", testFixedBuilders[W64])
	t.Run("128", testFixedBuilders[W128])
	t.Run("size", testFixedBuilders[WSize])
	t.Run("256", testFixedBuilders[W256])
}

func testFixedBuilders[W Word[W]](t *testing.T) {
	max := AllFalse[W](0).MaxLen()
	for n := uint(0); n <= max; n++ {
		tr, fa := AllTrue[W](n), AllFalse[W](n)
		require.Equal(t, n, tr.Len())
		require.Equal(t, n, fa.Len())
		for it := tr.Iter(); ; {
			f, ok := it.Next()
			if !ok {
				break
			}
			require.True(t, f)
		}
		require.Equal(t, make([]bool, n), fa.Flags())
	}
	assert.Panics(t, func() { AllTrue[W](max + 1) })
	assert.Panics(t, func() { AllFalse[W](max + 1) })

	g := th.NewSeqGen(th.SgRand)
	fs := th.Flags(g, int(max))
	l, err := FromFlags[W](fs)
	require.NoError(t, err)
	assert.Equal(t, fs, Collect(l))

	_, err = FromFlags[W](append(fs, true))
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Panics(t, func() { MustFromFlags[W](append(fs, false)) })
}

func TestFixedBounds(t *testing.T) {
	l := MustFromFlags[W64]([]bool{true, false, true})

	_, ok := l.Get(3)
	assert.False(t, ok)
	f, ok := l.Get(2)
	assert.True(t, ok)
	assert.True(t, f)
	assert.False(t, l.UncheckedGet(40))

	msg := "attempted to access out of bounds index 4 of flag list of length 3"
	assert.PanicsWithError(t, msg, func() { l.Insert(4, true) })
	assert.PanicsWithError(t, "attempted to access out of bounds index 3 of flag list of length 3", func() { l.Remove(3) })
	assert.PanicsWithError(t, "attempted to access out of bounds index 3 of flag list of length 3", func() { l.Set(3, true) })
	assert.Panics(t, func() { l.At(3) })
	assert.PanicsWithError(t, "flag list has maximum length 64, attempted to increase this to 65", func() { l.SetLen(65) })

	err := l.TryInsert(4, true)
	var ie *IndexError
	require.ErrorAs(t, err, &ie)
	assert.EqualValues(t, 4, ie.Index)
	assert.EqualValues(t, 3, ie.Len)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	assert.ErrorIs(t, l.TrySetLen(65), ErrCapacityExceeded)

	_, ok = l.TrySet(3, true)
	assert.False(t, ok)
	assert.Equal(t, MustFromFlags[W64]([]bool{true, false, true}), l, "failed calls must not modify the list")
}

func TestFixedTruncate(t *testing.T) {
	l := MustFromFlags[W128]([]bool{false, true, false, true})
	l.Truncate(2)
	assert.Equal(t, MustFromFlags[W128]([]bool{false, true}), l)
	l.Truncate(3)
	assert.Equal(t, MustFromFlags[W128]([]bool{false, true}), l)

	l.SetLen(5)
	assert.Equal(t, []bool{false, true, false, false, false}, l.Flags())

	l.Clear()
	assert.True(t, l.IsEmpty())
	assert.Equal(t, B128{}, l)
	l.SetLen(1)
	assert.False(t, l.At(0))
}

func TestFixedExtend(t *testing.T) {
	l := AllTrue[W32](30)
	assert.ErrorIs(t, l.TryExtend([]bool{false, false, false}), ErrCapacityExceeded)
	assert.Equal(t, AllTrue[W32](30), l)
	l.Extend([]bool{false, true})
	assert.EqualValues(t, 32, l.Len())
	assert.False(t, l.At(30))
	assert.True(t, l.At(31))
}

func TestFixedRaw(t *testing.T) {
	l := FromRaw(W32(0xff), 4)
	assert.Equal(t, W32(0xf), l.Raw())
	assert.Equal(t, AllTrue[W32](4), l)

	l = FromRaw(W32(0xffffffff), 40)
	assert.EqualValues(t, 32, l.Len())

	h := FromRaw(W128{Lo: 1, Hi: 1 << 63}, 128)
	assert.True(t, h.At(0))
	assert.True(t, h.At(127))
	assert.False(t, h.At(64))
}
