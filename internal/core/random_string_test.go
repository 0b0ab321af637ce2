package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/funvibe/rangen/internal/core"
	"github.com/funvibe/rangen/internal/distribution"
)

func TestRandomLengthStringDefaultCharset(t *testing.T) {
	src := distribution.NewSource(3)
	v, err := core.NewRandomLengthString(12, nil, src.Uniform())
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		require.NoError(t, v.Next())
		s := v.Current().(string)
		require.Len(t, s, 12)
		for _, r := range s {
			ok := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
			require.True(t, ok, "unexpected character %q in %q", r, s)
		}
	}
}

func TestRandomLengthStringCustomRanges(t *testing.T) {
	src := distribution.NewSource(4)
	ranges := []core.CharRange{{Lo: 'a', Hi: 'c'}, {Lo: '0', Hi: '1'}}
	v, err := core.NewRandomLengthString(200, ranges, src.Uniform())
	require.NoError(t, err)

	require.NoError(t, v.Next())
	seen := map[rune]bool{}
	for _, r := range v.Current().(string) {
		seen[r] = true
		require.Contains(t, []rune{'a', 'b', 'c', '0', '1'}, r)
	}
	// 200 draws over a 5 character pool cover everything in practice.
	require.Len(t, seen, 5)
}

func TestRandomLengthStringValidation(t *testing.T) {
	src := distribution.NewSource(1)
	var rangeErr *core.InvalidRangeError

	_, err := core.NewRandomLengthString(0, nil, src.Uniform())
	require.ErrorAs(t, err, &rangeErr)

	_, err = core.NewCharRange('z', 'a')
	require.ErrorAs(t, err, &rangeErr)
}

func TestUUIDSeededIsReproducible(t *testing.T) {
	srcA := distribution.NewSource(77)
	srcB := distribution.NewSource(77)
	a := core.NewUUID(srcA.Uniform())
	b := core.NewUUID(srcB.Uniform())

	for i := 0; i < 5; i++ {
		require.NoError(t, a.Next())
		require.NoError(t, b.Next())
		require.Equal(t, a.Current(), b.Current())
	}
	require.Len(t, a.Current(), 36)
}

func TestUUIDFreshPerNext(t *testing.T) {
	v := core.NewUUID(nil)
	require.NoError(t, v.Next())
	first := v.Current()
	require.Equal(t, first, v.Current())
	require.NoError(t, v.Next())
	require.NotEqual(t, first, v.Current())
}
