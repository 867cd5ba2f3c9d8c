package advanced

import "math"

// Outcome of checking an analysis against the brute force reference.
type Verification struct {
	Reference         *Pair
	ReferenceDistance float64
	EngineDistance    float64
	// Absolute difference between the two distances. Zero when both are +Inf.
	Difference float64
	Match      bool
}

// Run BruteForce over the full original point set and compare its distance to
// the result's overall distance, within VerifyTolerance. A mismatch is
// reported, never raised; it means the divide and conquer code has a bug.
//
// Ties between different pairs at the same distance can legitimately be broken
// differently by the two procedures, so only distances are compared. For
// [(0,0), (10,0), (5,0.01)] the engine reports (5,0.01)–(10,0) from the right
// half, while brute force over the input order reports (0,0)–(5,0.01); both
// are sqrt(25.0001) apart and Verify reports a match.
func Verify(points PointList, result *AnalysisResult) Verification {
	reference, refDist := BruteForce(points)
	v := Verification{
		Reference:         reference,
		ReferenceDistance: refDist,
		EngineDistance:    math.Inf(1),
	}
	if result != nil {
		v.EngineDistance = result.OverallDistance
	}

	if math.IsInf(refDist, 1) || math.IsInf(v.EngineDistance, 1) {
		v.Match = math.IsInf(refDist, 1) && math.IsInf(v.EngineDistance, 1)
		if !v.Match {
			v.Difference = math.Inf(1)
		}
		return v
	}
	v.Difference = math.Abs(refDist - v.EngineDistance)
	v.Match = Equal(refDist, v.EngineDistance)
	return v
}
