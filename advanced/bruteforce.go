package advanced

import "math"

// Find the closest pair by checking every unordered pair. This is the leaf case
// of the recursion, and also the independent reference used for verification.
//
// Pairs are visited with i ascending, then j ascending (i < j), and a pair only
// replaces the current best if it is strictly closer, so the first pair
// encountered wins ties. Returns nil and +Inf if there are fewer than two
// points.
func BruteForce(points PointList) (*Pair, float64) {
	if len(points) < 2 {
		return nil, math.Inf(1)
	}

	minDist := math.Inf(1)
	var best *Pair
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			dist := points[i].DistanceTo(points[j])
			if dist < minDist {
				minDist = dist
				best = newPair(points[i], points[j])
			}
		}
	}
	return best, minDist
}
