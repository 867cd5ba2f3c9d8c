package advanced

// Number of following y-ordered strip points each point is compared against.
// Within a δ×2δ box straddling the dividing line, points on the same side are
// at least δ apart, so at most 8 points fit and 7 neighbors suffice. Changing
// this breaks either correctness (smaller) or the O(n log n) bound (larger).
const StripWindow = 7

// Select the points whose x lies in [midX-delta, midX+delta], inclusive at both
// ends. The output keeps the order of the input, so passing a y-ordered list
// gives a y-ordered strip.
func FilterStrip(points PointList, midX, delta float64) PointList {
	left, right := midX-delta, midX+delta
	strip := PointList{}
	for _, p := range points {
		if p.X >= left && p.X <= right {
			strip = append(strip, p)
		}
	}
	return strip
}

// Scan a y-ordered strip, comparing each point with the next StripWindow
// points. Only pairs strictly closer than delta are recorded, and the first one
// found wins ties. Returns a nil pair and delta itself if nothing beats delta,
// along with the number of distance comparisons made.
func ScanStrip(strip PointList, delta float64) (pair *Pair, dist float64, comparisons int) {
	dist = delta
	for i := range strip {
		for j := i + 1; j < len(strip) && j <= i+StripWindow; j++ {
			comparisons++
			d := strip[i].DistanceTo(strip[j])
			if d < dist {
				dist = d
				pair = newPair(strip[i], strip[j])
			}
		}
	}
	return pair, dist, comparisons
}
