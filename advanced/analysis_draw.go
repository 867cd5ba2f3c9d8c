package advanced

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// This is for debugging purposes only. It draws the top level split of an
// analysis so that a broken strip or midline is obvious at a glance.

// Padding around the points, in pixels
const dbgDrawPadding = 40

var dbgPalette = struct {
	LeftHalf, RightHalf, DivisionLine, Strip, DeltaBoundary color.RGBA
	LeftPair, RightPair, OverallPair, ComparisonBox, TextBg color.RGBA
}{
	LeftHalf:      colornames.Lightblue,
	RightHalf:     colornames.Lightcoral,
	DivisionLine:  colornames.Black,
	Strip:         colornames.Yellow,
	DeltaBoundary: colornames.Green,
	LeftPair:      colornames.Blue,
	RightPair:     colornames.Red,
	OverallPair:   colornames.Purple,
	ComparisonBox: colornames.Orange,
	TextBg:        colornames.Wheat,
}

type dbgBounds struct {
	minX, minY, maxX, maxY float64
}

func (r *AnalysisResult) dbgBounds() dbgBounds {
	b := dbgBounds{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for _, p := range r.Points {
		b.minX = math.Min(b.minX, p.X)
		b.minY = math.Min(b.minY, p.Y)
		b.maxX = math.Max(b.maxX, p.X)
		b.maxY = math.Max(b.maxY, p.Y)
	}
	if len(r.Points) == 0 {
		b = dbgBounds{0, 0, 0, 0}
	}
	return b
}

// Render the analysis. Scale is pixels per unit.
func (r *AnalysisResult) Draw(scale float64) *gg.Context {
	b := r.dbgBounds()
	width := int(scale*(b.maxX-b.minX)) + dbgDrawPadding*2
	height := int(scale*(b.maxY-b.minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetColor(color.White)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	c.Push()
	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-b.minX, -b.minY)

	// Everything below is in point coordinates. Extend fills past the points so
	// they cover the padding too.
	pad := dbgDrawPadding / scale
	top, bottom := b.maxY+pad, b.minY-pad
	left, right := b.minX-pad, b.maxX+pad

	if len(r.Points) >= 2 {
		r.drawHalves(c, left, right, top, bottom)
		r.drawStrip(c, left, right, top, bottom, scale)
	}
	r.drawPoints(c, scale)
	if len(r.Points) >= 2 {
		r.drawPairs(c, scale)
	}
	c.Pop()

	r.drawLabel(c)
	return c
}

func (r *AnalysisResult) drawHalves(c *gg.Context, left, right, top, bottom float64) {
	c.SetColor(withAlpha(dbgPalette.LeftHalf, 0x60))
	c.DrawRectangle(left, bottom, r.MidX-left, top-bottom)
	c.Fill()
	c.SetColor(withAlpha(dbgPalette.RightHalf, 0x60))
	c.DrawRectangle(r.MidX, bottom, right-r.MidX, top-bottom)
	c.Fill()
}

func (r *AnalysisResult) drawStrip(c *gg.Context, left, right, top, bottom, scale float64) {
	// Clamp an infinite delta to the canvas
	stripLeft := math.Max(r.MidX-r.Delta, left)
	stripRight := math.Min(r.MidX+r.Delta, right)
	c.SetColor(withAlpha(dbgPalette.Strip, 0x80))
	c.DrawRectangle(stripLeft, bottom, stripRight-stripLeft, top-bottom)
	c.Fill()

	c.SetLineWidth(2 / scale)
	c.SetDash(6/scale, 4/scale)
	c.SetColor(dbgPalette.DeltaBoundary)
	for _, x := range []float64{stripLeft, stripRight} {
		c.DrawLine(x, bottom, x, top)
		c.Stroke()
	}
	c.SetDash()

	c.SetColor(dbgPalette.DivisionLine)
	c.DrawLine(r.MidX, bottom, r.MidX, top)
	c.Stroke()

	if r.CrossCase {
		// The δ×2δ box scanned above the lower point of the winning pair
		lowY := math.Min(r.Overall.A.Y, r.Overall.B.Y)
		c.SetColor(dbgPalette.ComparisonBox)
		c.DrawRectangle(r.MidX-r.Delta, lowY, 2*r.Delta, r.Delta)
		c.Stroke()
	}
}

func (r *AnalysisResult) drawPoints(c *gg.Context, scale float64) {
	radius := 3 / scale
	for i, p := range r.Points {
		if i < r.MidIndex {
			c.SetColor(dbgPalette.LeftPair)
		} else {
			c.SetColor(dbgPalette.RightPair)
		}
		c.DrawCircle(p.X, p.Y, radius)
		c.Fill()
	}
}

func (r *AnalysisResult) drawPairs(c *gg.Context, scale float64) {
	line := func(pair *Pair, col color.Color, width float64) {
		if pair == nil {
			return
		}
		c.SetColor(col)
		c.SetLineWidth(width / scale)
		c.DrawLine(pair.A.X, pair.A.Y, pair.B.X, pair.B.Y)
		c.Stroke()
	}
	line(r.Left, dbgPalette.LeftPair, 2)
	line(r.Right, dbgPalette.RightPair, 2)
	line(r.Overall, dbgPalette.OverallPair, 4)
}

// Summary in the top left corner, drawn in pixel coordinates
func (r *AnalysisResult) drawLabel(c *gg.Context) {
	c.SetFontFace(basicfont.Face7x13)
	text := fmt.Sprintf("n=%d delta=%.4g d=%.4g cross=%t", len(r.Points), r.Delta, r.OverallDistance, r.CrossCase)
	w, h := c.MeasureString(text)
	c.SetColor(dbgPalette.TextBg)
	c.DrawRectangle(4, 4, w+8, h+8)
	c.Fill()
	c.SetColor(color.Black)
	c.DrawStringAnchored(text, 8, 8, 0, 1)
}

func withAlpha(c color.RGBA, alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

// Helper to draw an analysis, save it as a PNG at path, and print it to a
// terminal (iTerm only) for debugging.
func (r *AnalysisResult) DbgDraw(scale float64, path string, w io.Writer) error {
	if err := r.Draw(scale).SavePNG(path); err != nil {
		return err
	}
	imgcat.CatFile(path, w)
	return nil
}
