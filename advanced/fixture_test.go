package advanced

import (
	"embed"
	"log"
	"math"
	"math/rand"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs point lists. This is not a full
// (or even correct) svg parser. It collects the centers of every circle in the
// document. If anything goes wrong, it dies.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) PointList {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	circles := rootEl.FindAll("circle")
	if len(circles) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}

	points := make(PointList, 0, len(circles))
	for _, circleEl := range circles {
		x, err := strconv.ParseFloat(circleEl.Attributes["cx"], 64)
		if err != nil {
			log.Fatalf("Invalid cx value in fixture %q: %v", name, err)
		}
		y, err := strconv.ParseFloat(circleEl.Attributes["cy"], 64)
		if err != nil {
			log.Fatalf("Invalid cy value in fixture %q: %v", name, err)
		}
		points = append(points, Point{x, y})
	}
	return points
}

// Some ad hoc fixtures

// Uniform points in [0, scale)², reproducible for a given seed.
func RandomPoints(n int, seed int64, scale float64) PointList {
	r := rand.New(rand.NewSource(seed))
	points := make(PointList, n)
	for i := range points {
		points[i] = Point{r.Float64() * scale, r.Float64() * scale}
	}
	return points
}

// Points on a circle, all neighbors the same distance apart. Lots of ties.
func Ring(n int, radius float64) PointList {
	points := make(PointList, n)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points[i] = Point{radius * math.Cos(angle), radius * math.Sin(angle)}
	}
	return points
}

// Dense clusters far apart from each other, so the closest pair is always
// inside a cluster, wherever the splits land.
func Clusters(clusters, perCluster int, seed int64) PointList {
	r := rand.New(rand.NewSource(seed))
	var points PointList
	for c := 0; c < clusters; c++ {
		cx, cy := float64(c*100), r.Float64()*1000
		for i := 0; i < perCluster; i++ {
			points = append(points, Point{cx + r.Float64(), cy + r.Float64()})
		}
	}
	return points
}

// Reverse a copy of the list
func reversed(points PointList) PointList {
	result := make(PointList, len(points))
	for i, p := range points {
		result[len(points)-1-i] = p
	}
	return result
}

// Shuffle a copy of the list
func shuffled(points PointList, seed int64) PointList {
	result := make(PointList, len(points))
	copy(result, points)
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})
	return result
}
