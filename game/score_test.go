package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScoreOrder(t *testing.T) {
	ordered := []Score{Loss, Value(-1000), Value(-10), Value(0), Value(10), Value(1000), Win}

	for i, lower := range ordered {
		for _, higher := range ordered[i+1:] {
			require.True(t, lower.Less(higher), "%s should sort below %s", lower, higher)
			require.True(t, higher.Greater(lower), "%s should sort above %s", higher, lower)
			require.Equal(t, -1, lower.Compare(higher))
		}
		require.Zero(t, lower.Compare(lower))
		require.False(t, lower.Less(lower))
	}
}

func TestScore(t *testing.T) {
	t.Run("reporting decided scores", func(t *testing.T) {
		require.True(t, Win.IsDecided())
		require.True(t, Loss.IsDecided())
		require.False(t, Value(0).IsDecided())

		_, ok := Win.Material()
		require.False(t, ok)

		n, ok := Value(-30).Material()
		require.True(t, ok)
		require.Equal(t, -30, n)
	})

	t.Run("printing", func(t *testing.T) {
		require.Equal(t, "win", Win.String())
		require.Equal(t, "loss", Loss.String())
		require.Equal(t, "-30", Value(-30).String())
	})
}
