package advanced

import (
	"fmt"
	"math"
	"sort"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/closestpair/dbg"
)

// Absolute tolerance used when comparing the engine against the brute force
// reference.
const VerifyTolerance = 1e-10

func Equal(a, b float64) bool {
	return math.Abs(a-b) <= VerifyTolerance
}

func (p Point) DistanceTo(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Ordering by x, breaking ties by y. Sorting with this makes every downstream
// decision depend only on coordinates, never on input order.
func (p Point) LessByX(other Point) bool {
	if p.X == other.X {
		return p.Y < other.Y
	}
	return p.X < other.X
}

// Copy the list and sort the copy by x (then y).
func (list PointList) SortedByX() PointList {
	sorted := make(PointList, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LessByX(sorted[j])
	})
	return sorted
}

// Copy the list and sort the copy by y. The sort is stable, so points with
// equal y keep their relative order.
func (list PointList) SortedByY() PointList {
	sorted := make(PointList, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Y < sorted[j].Y
	})
	return sorted
}

// Split an x-sorted list at floor(n/2). The right half is never smaller than
// the left.
func SplitHalves(sorted PointList) (left, right PointList, mid int) {
	mid = len(sorted) / 2
	return sorted[:mid], sorted[mid:], mid
}

func newPair(a, b Point) *Pair {
	return &Pair{A: a, B: b, Distance: a.DistanceTo(b)}
}

// Distance of a possibly absent pair. Absent pairs are infinitely far apart.
func (pair *Pair) Dist() float64 {
	if pair == nil {
		return math.Inf(1)
	}
	return pair.Distance
}

// Unordered coordinate equality.
func (pair *Pair) SamePoints(other *Pair) bool {
	if pair == nil || other == nil {
		return pair == other
	}
	return (pair.A == other.A && pair.B == other.B) || (pair.A == other.B && pair.B == other.A)
}

func (pair *Pair) String() string {
	if pair == nil {
		return "Ø"
	}
	return fmt.Sprintf("%v–%v (%g)", pair.A, pair.B, pair.Distance)
}

// Debug string with readable names for the two points. Coincident points are
// shown in red, since they're usually the interesting case.
func (pair *Pair) DbgString() string {
	if pair == nil {
		return "Ø"
	}
	names := fmt.Sprintf("%s–%s", dbg.Name(pair.A), dbg.Name(pair.B))
	if pair.Distance == 0 {
		names = aurora.Red(names).String()
	} else {
		names = aurora.Green(names).String()
	}
	return fmt.Sprintf("%s %s", names, pair)
}
