package advanced

// This contains no actual tests. It is just a helper for checking that an
// analysis is internally consistent and agrees with brute force.

import (
	"math"
	"sort"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The rules are:
// 1. The overall distance matches brute force over the original points.
// 2. Points is the input sorted by x, and MidX is the x of the first right point.
// 3. Each half distance is the true minimum within that half.
// 4. Delta is the smaller of the half distances.
// 5. The strip holds exactly the points within Delta of MidX, ordered by y.
// 6. The overall distance never exceeds Delta.
// 7. A cross case is exactly a strip pair that beat a finite Delta.
func AssertValidAnalysis(t *testing.T, points PointList, result *AnalysisResult) {
	t.Helper()
	require.NotNil(t, result)

	v := Verify(points, result)
	if !v.Match {
		t.Fatalf("engine distance %g does not match brute force %g\n%s", v.EngineDistance, v.ReferenceDistance, spew.Sdump(result))
	}

	require.Len(t, result.Points, len(points))
	assert.ElementsMatch(t, points, result.Points)
	assert.True(t, sort.SliceIsSorted(result.Points, func(i, j int) bool {
		return result.Points[i].LessByX(result.Points[j])
	}), "points must be sorted by x")

	if len(points) < 2 {
		assert.Nil(t, result.Overall)
		assert.True(t, math.IsInf(result.OverallDistance, 1))
		assert.False(t, result.CrossCase)
		return
	}

	assert.Equal(t, len(points)/2, result.MidIndex)
	assert.Equal(t, result.Points[result.MidIndex].X, result.MidX)

	_, leftDist := BruteForce(result.LeftHalf())
	_, rightDist := BruteForce(result.RightHalf())
	assert.Equal(t, leftDist, result.LeftDistance, "left half distance")
	assert.Equal(t, rightDist, result.RightDistance, "right half distance")
	assert.Equal(t, result.Left.Dist(), result.LeftDistance)
	assert.Equal(t, result.Right.Dist(), result.RightDistance)

	assert.Equal(t, math.Min(result.LeftDistance, result.RightDistance), result.Delta)

	expectedStrip := PointList{}
	for _, p := range result.Points {
		if p.X >= result.MidX-result.Delta && p.X <= result.MidX+result.Delta {
			expectedStrip = append(expectedStrip, p)
		}
	}
	assert.ElementsMatch(t, expectedStrip, result.StripPoints, "strip membership")
	assert.True(t, sort.SliceIsSorted(result.StripPoints, func(i, j int) bool {
		return result.StripPoints[i].Y < result.StripPoints[j].Y
	}), "strip must be ordered by y")

	assert.LessOrEqual(t, result.OverallDistance, result.Delta)
	assert.LessOrEqual(t, result.StripDistance, result.Delta)
	require.NotNil(t, result.Overall)
	assert.Equal(t, result.Overall.Distance, result.OverallDistance)
	assert.Equal(t, result.Overall.A.DistanceTo(result.Overall.B), result.OverallDistance)
	assert.Contains(t, result.Points, result.Overall.A)
	assert.Contains(t, result.Points, result.Overall.B)

	if result.CrossCase {
		assert.Less(t, result.StripDistance, result.Delta)
		assert.False(t, math.IsInf(result.Delta, 1))
		assert.Same(t, result.StripPair, result.Overall)
	} else if result.StripPair == nil {
		assert.Equal(t, result.Delta, result.OverallDistance)
	}
}
