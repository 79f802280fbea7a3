package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/delaunay"
	"github.com/osuushi/delaunay/advanced"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of triangulation and interpolation. Input on stdin should be newline
// separated points in the form "x y value", or --random generates points
// instead. The points, triangles, edges, and grid samples are printed, and the
// triangulation and grid can be rendered to PNG files.
func main() {
	app := kingpin.New("delaunay", "Triangulate scattered points and interpolate them onto a grid.")
	configFile := app.Flag("config", "INI file with [grid], [triangulation], and [render] sections.").ExistingFile()
	exampleConfig := app.Flag("example-config", "Print an example config file and exit.").Bool()

	var gridSize, workers intFlag
	var gridMin, gridMax, tolerance, scale floatFlag
	app.Flag("grid", "Samples along each axis of the grid.").SetValue(&gridSize)
	app.Flag("min", "Lower end of the grid range on both axes.").SetValue(&gridMin)
	app.Flag("max", "Upper end of the grid range on both axes.").SetValue(&gridMax)
	app.Flag("workers", "Grid rows sampled at once.").SetValue(&workers)
	app.Flag("tolerance", "Degeneracy tolerance in strict mode.").SetValue(&tolerance)
	app.Flag("scale", "Pixels per unit in the triangulation PNG.").SetValue(&scale)
	strict := app.Flag("strict", "Fail on degenerate input instead of producing NaN.").Bool()
	pngPath := app.Flag("png", "Write the triangulation to this PNG.").String()
	heatMapPath := app.Flag("heatmap", "Write the sampled grid to this PNG.").String()
	inline := app.Flag("imgcat", "Print the triangulation inline (iTerm only).").Bool()
	cells := app.Flag("cells", "Print every grid cell.").Default("true").Bool()
	random := app.Flag("random", "Generate this many random points instead of reading stdin.").Int()
	seed := app.Flag("seed", "Seed for --random.").Default("1").Int64()
	queries := app.Flag("at", "Also interpolate at \"x,y\". May be repeated.").Strings()
	verbose := app.Flag("verbose", "Log debug output.").Short('v').Bool()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if *exampleConfig {
		fmt.Println(ExampleConfigFile)
		return
	}

	logger, err := newLogger(*verbose)
	if err != nil {
		app.Fatalf("building logger: %v", err)
	}
	defer logger.Sync()

	config := DefaultConfig()
	if *configFile != "" {
		if config, err = ReadConfig(*configFile); err != nil {
			logger.Fatal("reading config", zap.String("file", *configFile), zap.Error(err))
		}
	}
	gridSize.override(&config.Grid.Size)
	gridMin.override(&config.Grid.Min)
	gridMax.override(&config.Grid.Max)
	workers.override(&config.Triangulation.Workers)
	tolerance.override(&config.Triangulation.Tolerance)
	scale.override(&config.Render.Scale)
	config.Triangulation.Strict = config.Triangulation.Strict || *strict
	if *pngPath != "" {
		config.Render.Png = *pngPath
	}
	if *heatMapPath != "" {
		config.Render.Heatmap = *heatMapPath
	}
	if err := config.CheckInit(); err != nil {
		app.Fatalf("%v", err)
	}

	var points []delaunay.Point
	if *random > 0 {
		points = randomPoints(*seed, *random)
	} else if points, err = readPoints(os.Stdin); err != nil {
		logger.Fatal("reading points", zap.Error(err))
	}

	var at [][2]float64
	for _, q := range *queries {
		x, y, err := parseQuery(q)
		if err != nil {
			app.Fatalf("%v", err)
		}
		at = append(at, [2]float64{x, y})
	}

	d := demo{
		config: config,
		cells:  *cells,
		inline: *inline,
		at:     at,
		logger: logger,
	}
	out := bufio.NewWriter(os.Stdout)
	err = d.run(context.Background(), points, out)
	if flushErr := out.Flush(); err == nil {
		err = flushErr
	}
	if err != nil {
		logger.Fatal("demo failed", zap.Error(err))
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

type demo struct {
	config Config
	cells  bool
	inline bool
	at     [][2]float64
	logger *zap.Logger
}

func (d *demo) options() []advanced.Option {
	opts := []advanced.Option{
		advanced.WithLogger(d.logger),
		advanced.WithStrict(d.config.Triangulation.Strict),
		advanced.WithDegeneracyTolerance(d.config.Triangulation.Tolerance),
	}
	if d.config.Triangulation.Workers > 0 {
		opts = append(opts, advanced.WithWorkers(d.config.Triangulation.Workers))
	}
	return opts
}

func (d *demo) run(ctx context.Context, points []delaunay.Point, out io.Writer) error {
	tr, err := advanced.Triangulate(points, d.options()...)
	if err != nil {
		return err
	}
	triangles, edges := tr.Triangles(), tr.Edges()
	d.logger.Info("triangulated",
		zap.Int("points", len(points)),
		zap.Int("triangles", len(triangles)),
	)

	fmt.Fprintf(out, "%d triangles generated\n", len(triangles))
	fmt.Fprint(out, " ========= ")
	fmt.Fprintf(out, "\nPoints : %d\n", len(points))
	for _, p := range points {
		fmt.Fprintln(out, p)
	}
	fmt.Fprintf(out, "\nTriangles : %d\n", len(triangles))
	for _, t := range triangles {
		fmt.Fprintln(out, t)
	}
	fmt.Fprintf(out, "\nEdges : %d\n", len(edges))
	for _, e := range edges {
		fmt.Fprintln(out, e)
	}

	sampler := advanced.NewSampler(tr, advanced.NaN())
	grid := d.config.Grid
	cells, err := sampler.Grid(ctx, grid.Size, grid.Min, grid.Max)
	if err != nil {
		return err
	}
	if d.cells {
		fmt.Fprintln(out, " ========  Grid interpolation: ")
		for i, v := range cells {
			fmt.Fprintf(out, "  x: %d, y: %d,   value: %g\n", i%grid.Size, i/grid.Size, float64(v))
		}
	}

	for _, q := range d.at {
		v, err := sampler.Value(q[0], q[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Interpolation for point (%g, %g):\n        %g\n", q[0], q[1], float64(v))
	}

	return d.render(tr, cells, out)
}

func (d *demo) render(tr *advanced.Triangulation[advanced.Scalar], cells []advanced.Scalar, out io.Writer) error {
	render := d.config.Render
	if render.Png != "" {
		if err := tr.DrawPNG(render.Png, render.Scale); err != nil {
			return err
		}
		d.logger.Info("wrote triangulation", zap.String("file", render.Png))
	}
	if render.Heatmap != "" {
		cold, hot := render.Colors()
		if err := advanced.SaveHeatMap(render.Heatmap, cells, d.config.Grid.Size, cold, hot); err != nil {
			return err
		}
		d.logger.Info("wrote heat map", zap.String("file", render.Heatmap))
	}
	if d.inline {
		return tr.PrintInline(out, render.Scale)
	}
	return nil
}

// Random points like the ones the demo has always used: an 800×600 field with
// values between -10 and 500.
func randomPoints(seed int64, n int) []delaunay.Point {
	rnd := rand.New(rand.NewSource(seed))
	points := make([]delaunay.Point, n)
	for i := range points {
		points[i] = delaunay.NewPoint(rnd.Float64()*800, rnd.Float64()*600, rnd.Float64()*510-10)
	}
	return points
}

func parseQuery(q string) (x, y float64, err error) {
	parts := strings.Split(q, ",")
	if len(parts) != 2 {
		return 0, 0, errors.Errorf("query %q is not in the form \"x,y\"", q)
	}
	if x, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64); err != nil {
		return 0, 0, errors.Wrapf(err, "query %q", q)
	}
	if y, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err != nil {
		return 0, 0, errors.Wrapf(err, "query %q", q)
	}
	return x, y, nil
}

// Flag values that remember whether they were given, so that only flags on the
// command line override the config file.

type intFlag struct {
	value int
	set   bool
}

func (f *intFlag) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	f.value, f.set = v, true
	return nil
}

func (f *intFlag) String() string {
	return strconv.Itoa(f.value)
}

func (f *intFlag) override(dst *int) {
	if f.set {
		*dst = f.value
	}
}

type floatFlag struct {
	value float64
	set   bool
}

func (f *floatFlag) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	f.value, f.set = v, true
	return nil
}

func (f *floatFlag) String() string {
	return strconv.FormatFloat(f.value, 'g', -1, 64)
}

func (f *floatFlag) override(dst *float64) {
	if f.set {
		*dst = f.value
	}
}
