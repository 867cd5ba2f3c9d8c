// Divide and conquer closest pair of points for Go.
//
// Given a set of 2D points, this package finds the two closest together in
// O(n log n) time, and reports the intermediate state of the top level split
// (halves, delta, strip) alongside the answer. A brute force reference is
// included for verification.
package closestpair

import "github.com/osuushi/closestpair/advanced"

type Point = advanced.Point
type Pair = advanced.Pair
type AnalysisResult = advanced.AnalysisResult
type Verification = advanced.Verification

var ErrNonFinitePoint = advanced.ErrNonFinitePoint

// Find the closest pair among the given points.
//
// The order of the points is irrelevant. Fewer than two points gives a result
// with no pair and an infinite distance. Points must have finite coordinates.
func Analyze(points ...Point) (*AnalysisResult, error) {
	return advanced.Analyze(advanced.PointList(points))
}

// Find the closest pair by checking every pair. Use this for verification, or
// for tiny inputs.
func BruteForce(points ...Point) (*Pair, float64) {
	return advanced.BruteForce(advanced.PointList(points))
}

// Check a result against brute force over the same points.
func Verify(result *AnalysisResult, points ...Point) Verification {
	return advanced.Verify(advanced.PointList(points), result)
}
