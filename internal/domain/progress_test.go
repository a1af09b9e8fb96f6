package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeScore(t *testing.T) {
	require.Equal(t, 50, ComputeScore(5, false))
	require.Equal(t, 100, ComputeScore(5, true))
	require.Equal(t, 10, ComputeScore(1, false))
	require.Equal(t, 150, ComputeScore(10, true))
}

func TestComputeScore_Range(t *testing.T) {
	for energy := 1; energy <= 10; energy++ {
		for _, completed := range []bool{false, true} {
			score := ComputeScore(energy, completed)
			require.GreaterOrEqual(t, score, 10)
			require.LessOrEqual(t, score, 150)

			want := energy * 10
			if completed {
				want += 50
			}
			require.Equal(t, want, score)
		}
	}
}
