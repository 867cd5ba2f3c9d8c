package advanced

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	t.Run("match", func(t *testing.T) {
		points := RandomPoints(30, 42, 10)
		result, err := Analyze(points)
		require.NoError(t, err)

		v := Verify(points, result)
		assert.True(t, v.Match)
		assert.Equal(t, v.ReferenceDistance, v.EngineDistance)
		assert.Zero(t, v.Difference)
		require.NotNil(t, v.Reference)
		assert.Equal(t, v.ReferenceDistance, v.Reference.Distance)
	})

	t.Run("degenerate input matches", func(t *testing.T) {
		points := PointList{{1, 2}}
		result, err := Analyze(points)
		require.NoError(t, err)

		v := Verify(points, result)
		assert.True(t, v.Match)
		assert.Nil(t, v.Reference)
		assert.Zero(t, v.Difference)
	})

	t.Run("tied pairs differ but match", func(t *testing.T) {
		points := PointList{{0, 0}, {10, 0}, {5, 0.01}}
		result, err := Analyze(points)
		require.NoError(t, err)

		v := Verify(points, result)
		assert.True(t, v.Match)
		assert.True(t, result.Overall.SamePoints(&Pair{A: Point{5, 0.01}, B: Point{10, 0}}))
		assert.True(t, v.Reference.SamePoints(&Pair{A: Point{0, 0}, B: Point{5, 0.01}}))
	})

	t.Run("mismatch", func(t *testing.T) {
		points := PointList{{0, 0}, {1, 0}, {5, 5}}
		result, err := Analyze(points)
		require.NoError(t, err)

		// Simulate a broken merge step
		result.OverallDistance += 1e-6
		v := Verify(points, result)
		assert.False(t, v.Match)
		assert.InDelta(t, 1e-6, v.Difference, 1e-12)
	})

	t.Run("within tolerance", func(t *testing.T) {
		points := PointList{{0, 0}, {1, 0}}
		result, err := Analyze(points)
		require.NoError(t, err)

		result.OverallDistance += VerifyTolerance / 2
		assert.True(t, Verify(points, result).Match)
	})

	t.Run("infinite against finite", func(t *testing.T) {
		points := PointList{{0, 0}, {1, 0}}
		v := Verify(points, &AnalysisResult{OverallDistance: math.Inf(1)})
		assert.False(t, v.Match)
		assert.True(t, math.IsInf(v.Difference, 1))

		v = Verify(points, nil)
		assert.False(t, v.Match)
	})
}
