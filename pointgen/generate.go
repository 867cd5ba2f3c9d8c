// Package pointgen supplies point sets for analysis: seeded random clouds, and
// readers for the plain text and SVG point formats.
package pointgen

import (
	"math"
	"math/rand"

	"github.com/osuushi/closestpair/advanced"
)

const (
	DefaultCount = 30
	DefaultSeed  = 42
	DefaultScale = 10
)

// Generates uniform random points in [0, Scale)². The same seed always gives
// the same points.
type Generator struct {
	N     int
	Seed  int64
	Scale float64
}

func NewGenerator() *Generator {
	return &Generator{N: DefaultCount, Seed: DefaultSeed, Scale: DefaultScale}
}

// A negative N generates no points.
func (g *Generator) Generate() advanced.PointList {
	r := rand.New(rand.NewSource(g.Seed))
	points := make(advanced.PointList, max(g.N, 0))
	for i := range points {
		points[i] = advanced.Point{X: r.Float64() * g.Scale, Y: r.Float64() * g.Scale}
	}
	return points
}

type Range struct {
	Min, Max float64
}

type Stats struct {
	Total    int
	XRange   Range
	YRange   Range
	Centroid advanced.Point
}

// Summarize a point list. Ranges and centroid are NaN for an empty list.
func Summarize(points advanced.PointList) Stats {
	stats := Stats{
		Total:  len(points),
		XRange: Range{math.Inf(1), math.Inf(-1)},
		YRange: Range{math.Inf(1), math.Inf(-1)},
	}
	if len(points) == 0 {
		nan := math.NaN()
		stats.XRange = Range{nan, nan}
		stats.YRange = Range{nan, nan}
		stats.Centroid = advanced.Point{X: nan, Y: nan}
		return stats
	}

	var sumX, sumY float64
	for _, p := range points {
		stats.XRange.Min = math.Min(stats.XRange.Min, p.X)
		stats.XRange.Max = math.Max(stats.XRange.Max, p.X)
		stats.YRange.Min = math.Min(stats.YRange.Min, p.Y)
		stats.YRange.Max = math.Max(stats.YRange.Max, p.Y)
		sumX += p.X
		sumY += p.Y
	}
	n := float64(len(points))
	stats.Centroid = advanced.Point{X: sumX / n, Y: sumY / n}
	return stats
}
