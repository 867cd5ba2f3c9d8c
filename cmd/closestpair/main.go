package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/closestpair/advanced"
	"github.com/osuushi/closestpair/pointgen"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Finds the closest pair in a point set and verifies it against brute force,
// narrating each stage. Points are either generated from a seed, or read from
// a file (or stdin, with --input=-) with newline separated points in the form
// "x y".
// Files ending in .svg are read as point clouds made of circles.
//
// Exits with status 1 if the result doesn't match brute force.
func main() {
	cfg := &config{}
	app := newApp(cfg)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	ok, err := run(cfg, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if !ok {
		os.Exit(1)
	}
}

type config struct {
	count    int
	seed     int64
	scale    float64
	input    string
	leafSize int
	parallel int

	logLevel  string
	logFormat string
	noColor   bool

	dbgDraw      string
	dbgDrawScale float64
}

func newApp(cfg *config) *kingpin.Application {
	app := kingpin.New("closestpair", "Find the closest pair of points and verify it against brute force.")
	app.Flag("points", "Number of random points to generate.").Short('n').Default("30").IntVar(&cfg.count)
	app.Flag("seed", "Seed for random points.").Default("42").Int64Var(&cfg.seed)
	app.Flag("scale", "Random points are generated in [0, scale)².").Default("10").Float64Var(&cfg.scale)
	app.Flag("input", `Read points from a file instead (--input=- for stdin). .svg files are read as circles.`).Short('i').StringVar(&cfg.input)
	app.Flag("leaf-size", "Largest subset solved by brute force.").Default("3").IntVar(&cfg.leafSize)
	app.Flag("parallel-cutoff", "Solve halves concurrently for subsets at least this large (0 disables).").Default("0").IntVar(&cfg.parallel)
	app.Flag("log-level", "Log level.").Default("info").EnumVar(&cfg.logLevel, "debug", "info", "warn", "error")
	app.Flag("log-format", "Log format.").Default("text").EnumVar(&cfg.logFormat, "text", "json")
	app.Flag("no-color", "Disable colored output.").BoolVar(&cfg.noColor)
	app.Flag("dbg-draw", "Draw the analysis to this PNG and print it to the terminal.").StringVar(&cfg.dbgDraw)
	app.Flag("dbg-draw-scale", "Pixels per unit for --dbg-draw.").Default("40").Float64Var(&cfg.dbgDrawScale)
	return app
}

// Run the whole pipeline. Returns false if verification failed.
func run(cfg *config, stdin io.Reader, stdout, stderr io.Writer) (bool, error) {
	logger, err := NewLoggerFor(stderr, cfg.logFormat, cfg.logLevel)
	if err != nil {
		return false, err
	}
	au := aurora.NewAurora(!cfg.noColor)
	rule := strings.Repeat("=", 60)

	fmt.Fprintln(stdout, rule)
	fmt.Fprintln(stdout, au.Bold("CLOSEST PAIR OF POINTS"))
	fmt.Fprintln(stdout, rule)

	// Prepare data
	points, source, err := loadPoints(cfg, stdin)
	if err != nil {
		return false, err
	}
	stats := pointgen.Summarize(points)
	fmt.Fprintf(stdout, "%s %d points from %s\n", au.Cyan("Prepared"), stats.Total, source)
	if stats.Total > 0 {
		fmt.Fprintf(stdout, "  x ∈ [%.4g, %.4g], y ∈ [%.4g, %.4g], centroid %v\n",
			stats.XRange.Min, stats.XRange.Max, stats.YRange.Min, stats.YRange.Max, stats.Centroid)
	}
	logger.Info("points prepared", "count", stats.Total, "source", source)

	// Run algorithm
	opts := advanced.DefaultOptions()
	opts.LeafSize = cfg.leafSize
	opts.ParallelCutoff = cfg.parallel
	opts.Observer = logger
	engine, err := advanced.NewEngine(opts)
	if err != nil {
		return false, err
	}
	result, err := engine.Analyze(points)
	if err != nil {
		return false, errors.Wrap(err, "analyzing points")
	}
	narrate(stdout, au, result)
	logger.Debug("closest pair", "pair", result.Overall.DbgString())

	if cfg.dbgDraw != "" {
		if err := result.DbgDraw(cfg.dbgDrawScale, cfg.dbgDraw, stdout); err != nil {
			return false, errors.Wrap(err, "drawing")
		}
		logger.Info("drawing saved", "path", cfg.dbgDraw)
	}

	// Verify
	v := advanced.Verify(points, result)
	logger.Info("verified",
		"match", v.Match,
		distanceAttr("engine_distance", v.EngineDistance),
		distanceAttr("reference_distance", v.ReferenceDistance))
	if v.Match {
		fmt.Fprintf(stdout, "%s brute force agrees: %.10g\n", au.Green("✓"), v.ReferenceDistance)
	} else {
		fmt.Fprintf(stdout, "%s brute force disagrees: engine %.10g, reference %.10g (%v)\n",
			au.Red("✗"), v.EngineDistance, v.ReferenceDistance, v.Reference)
	}
	return v.Match, nil
}

func loadPoints(cfg *config, stdin io.Reader) (advanced.PointList, string, error) {
	if cfg.input == "" {
		if cfg.count < 0 {
			return nil, "", errors.Errorf("point count must not be negative, got %d", cfg.count)
		}
		g := &pointgen.Generator{N: cfg.count, Seed: cfg.seed, Scale: cfg.scale}
		return g.Generate(), fmt.Sprintf("seed %d", cfg.seed), nil
	}

	in := stdin
	if cfg.input != "-" {
		f, err := os.Open(cfg.input)
		if err != nil {
			return nil, "", errors.Wrap(err, "opening input")
		}
		defer f.Close()
		in = f
	}

	var points advanced.PointList
	var err error
	if strings.EqualFold(filepath.Ext(cfg.input), ".svg") {
		points, err = pointgen.ReadSVG(in)
	} else {
		points, err = pointgen.ReadText(in)
	}
	if err != nil {
		return nil, "", errors.Wrapf(err, "reading %s", cfg.input)
	}
	return points, cfg.input, nil
}

func narrate(w io.Writer, au aurora.Aurora, r *advanced.AnalysisResult) {
	if len(r.Points) < 2 {
		fmt.Fprintf(w, "%s fewer than two points, no pair\n", au.Yellow("!"))
		return
	}
	fmt.Fprintf(w, "%s at x = %.4g: %d left, %d right\n", au.Cyan("Split"), r.MidX, len(r.LeftHalf()), len(r.RightHalf()))
	fmt.Fprintf(w, "  left  %s\n", au.Blue(r.Left.String()))
	fmt.Fprintf(w, "  right %s\n", au.Red(r.Right.String()))
	fmt.Fprintf(w, "%s δ = %.6g\n", au.Cyan("Delta"), r.Delta)
	fmt.Fprintf(w, "%s %d points within δ of the split\n", au.Cyan("Strip"), len(r.StripPoints))
	if r.StripPair != nil {
		fmt.Fprintf(w, "  strip %s\n", au.Yellow(r.StripPair.String()))
	}
	kind := "same side"
	if r.CrossCase {
		kind = "crosses the split"
	}
	fmt.Fprintf(w, "%s %s, %s\n", au.Magenta(au.Bold("Closest")), r.Overall, kind)
}
