package distribution_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/funvibe/rangen/internal/core"
	"github.com/funvibe/rangen/internal/distribution"
)

func TestUniformBounds(t *testing.T) {
	u := distribution.NewSource(17).Uniform()

	for i := 0; i < 2000; i++ {
		n := u.NextLong(-5, 5)
		require.GreaterOrEqual(t, n, int64(-5))
		require.Less(t, n, int64(5))

		f := u.NextDouble(1, 2)
		require.GreaterOrEqual(t, f, 1.0)
		require.Less(t, f, 2.0)

		k := u.NextInt(3)
		require.GreaterOrEqual(t, k, 0)
		require.Less(t, k, 3)
	}
}

func TestUniformResetReplays(t *testing.T) {
	u := distribution.NewSource(42).Uniform()

	var first []int64
	for i := 0; i < 50; i++ {
		first = append(first, u.NextLong(0, 1<<50))
	}
	u.Reset()
	for i := 0; i < 50; i++ {
		require.Equal(t, first[i], u.NextLong(0, 1<<50), "draw %d", i)
	}
}

func TestSourceStreamsAreIndependent(t *testing.T) {
	src := distribution.NewSource(1)
	a, b := src.Uniform(), src.Uniform()

	same := true
	for i := 0; i < 10; i++ {
		if a.NextLong(0, 1<<50) != b.NextLong(0, 1<<50) {
			same = false
		}
	}
	require.False(t, same, "distinct streams should not track each other")
}

func TestSourceDeterministicFlag(t *testing.T) {
	require.True(t, distribution.NewSource(5).Deterministic())
	require.False(t, distribution.NewRandomSource().Deterministic())
}

func TestNormalValidation(t *testing.T) {
	src := distribution.NewSource(1)
	var rangeErr *core.InvalidRangeError

	_, err := src.Normal(0, -1, 0, 1)
	require.ErrorAs(t, err, &rangeErr)

	_, err = src.Normal(0, 1, 2, 2)
	require.ErrorAs(t, err, &rangeErr)
}

func TestNormalStaysInBounds(t *testing.T) {
	src := distribution.NewSource(33)
	n, err := src.Normal(distribution.DefaultMean, distribution.DefaultStddev,
		distribution.DefaultLower, distribution.DefaultUpper)
	require.NoError(t, err)

	for i := 0; i < 5000; i++ {
		v := n.NextLong(10, 20)
		require.GreaterOrEqual(t, v, int64(10))
		require.Less(t, v, int64(20))

		f := n.NextDouble(-1, 1)
		require.GreaterOrEqual(t, f, -1.0)
		require.Less(t, f, 1.0)
	}
}

func TestNormalClustersAroundMean(t *testing.T) {
	src := distribution.NewSource(8)
	n, err := src.Normal(0.5, 0.125, 0, 1)
	require.NoError(t, err)

	const draws = 10000
	sum := 0.0
	for i := 0; i < draws; i++ {
		sum += n.NextDouble(0, 100)
	}
	mean := sum / draws
	// Mean of the mapped distribution sits near 50; 3 sigma of the
	// sample mean is well under 1.
	require.InDelta(t, 50.0, mean, 1.0)
	require.False(t, math.IsNaN(mean))
}
