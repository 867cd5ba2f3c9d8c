package pointgen

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/closestpair/advanced"
	"github.com/pkg/errors"
)

// Read points in the form "x y", one per line. Blank lines and lines starting
// with # are skipped.
func ReadText(in io.Reader) (advanced.PointList, error) {
	points := advanced.PointList{}
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

func parsePoint(line string) (advanced.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return advanced.Point{}, errors.Errorf("expected 2 coordinates, got %d", len(parts))
	}
	x, err := parseCoordinate(parts[0])
	if err != nil {
		return advanced.Point{}, err
	}
	y, err := parseCoordinate(parts[1])
	if err != nil {
		return advanced.Point{}, err
	}
	return advanced.Point{X: x, Y: y}, nil
}

func parseCoordinate(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid coordinate %q", s)
	}
	return v, nil
}

// Read a point cloud from an SVG document. Every circle contributes its center
// (cx, cy). A missing coordinate is 0, as in SVG. Other
// elements are ignored.
func ReadSVG(in io.Reader) (advanced.PointList, error) {
	rootEl, err := svgparser.Parse(in, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	points := advanced.PointList{}
	for i, circleEl := range rootEl.FindAll("circle") {
		x, err := svgCoordinate(circleEl, "cx")
		if err != nil {
			return nil, errors.Wrapf(err, "circle %d", i)
		}
		y, err := svgCoordinate(circleEl, "cy")
		if err != nil {
			return nil, errors.Wrapf(err, "circle %d", i)
		}
		points = append(points, advanced.Point{X: x, Y: y})
	}
	return points, nil
}

func svgCoordinate(el *svgparser.Element, name string) (float64, error) {
	value, ok := el.Attributes[name]
	if !ok {
		return 0, nil
	}
	return parseCoordinate(strings.TrimSpace(value))
}
