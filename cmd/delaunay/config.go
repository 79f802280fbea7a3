package main

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/osuushi/delaunay/advanced"
	"gopkg.in/gcfg.v1"
)

const ExampleConfigFile = `# Every variable is optional. Flags given on the command line win.

[grid]
# Number of samples along each axis. The grid has Size*Size cells.
Size = 8
# The grid covers [Min, Max] on both axes.
Min = 0
Max = 800

[triangulation]
# Reject duplicate points, degenerate triangles, and queries that land
# exactly on a vertex, instead of letting NaN through.
Strict = false
# Circumcircle denominators at or below this are degenerate in strict mode.
Tolerance = 0
# Rows of the grid sampled at once. 0 uses every CPU.
Workers = 0

[render]
# PNG of the triangulation and of the sampled grid. Skipped unless set.
# Png = triangulation.png
# Heatmap = heatmap.png
# Pixels per unit in the triangulation PNG.
Scale = 1
# Heat map colors for the lowest and highest sampled values. Quote them, since
# an unquoted # starts a comment.
Cold = "#313695"
Hot = "#a50026"`

type Config struct {
	Grid          GridConfig
	Triangulation TriangulationConfig
	Render        RenderConfig
}

type GridConfig struct {
	Size     int
	Min, Max float64
}

type TriangulationConfig struct {
	Strict    bool
	Tolerance float64
	Workers   int
}

type RenderConfig struct {
	Png, Heatmap string
	Scale        float64
	Cold, Hot    string
}

// The demo's grid is a coarse 8×8 sampling of the whole 800×600 field that
// --random fills, rather than the library's default grid.
const (
	demoGridSize = 8
	demoGridMin  = 0
	demoGridMax  = 800
)

func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			Size: demoGridSize,
			Min:  demoGridMin,
			Max:  demoGridMax,
		},
		Render: RenderConfig{
			Scale: 1,
			Cold:  "#313695",
			Hot:   "#a50026",
		},
	}
}

func (grid *GridConfig) CheckInit() error {
	if grid.Size < 1 || grid.Size > advanced.MaxGridSize {
		return fmt.Errorf("grid Size must be in [1, %d], but is %d", advanced.MaxGridSize, grid.Size)
	}
	if math.IsNaN(grid.Min) || math.IsInf(grid.Min, 0) ||
		math.IsNaN(grid.Max) || math.IsInf(grid.Max, 0) {
		return fmt.Errorf("grid range [%g, %g] must be finite", grid.Min, grid.Max)
	}
	return nil
}

func (tri *TriangulationConfig) CheckInit() error {
	if tri.Tolerance < 0 {
		return fmt.Errorf("triangulation Tolerance must not be negative, but is %g", tri.Tolerance)
	}
	if tri.Workers < 0 {
		return fmt.Errorf("triangulation Workers must not be negative, but is %d", tri.Workers)
	}
	return nil
}

func (render *RenderConfig) CheckInit() error {
	if render.Scale <= 0 {
		return fmt.Errorf("render Scale must be positive, but is %g", render.Scale)
	}
	if _, err := colorful.Hex(render.Cold); err != nil {
		return fmt.Errorf("render Cold color '%s' is not a hex color", render.Cold)
	}
	if _, err := colorful.Hex(render.Hot); err != nil {
		return fmt.Errorf("render Hot color '%s' is not a hex color", render.Hot)
	}
	return nil
}

func (c *Config) CheckInit() error {
	if err := c.Grid.CheckInit(); err != nil {
		return err
	}
	if err := c.Triangulation.CheckInit(); err != nil {
		return err
	}
	return c.Render.CheckInit()
}

// Colors returns the heat map ramp. Only valid after CheckInit.
func (render *RenderConfig) Colors() (cold, hot colorful.Color) {
	cold, _ = colorful.Hex(render.Cold)
	hot, _ = colorful.Hex(render.Hot)
	return cold, hot
}

// ReadConfig reads the config file at fname over the defaults.
func ReadConfig(fname string) (Config, error) {
	c := DefaultConfig()
	if err := gcfg.ReadFileInto(&c, fname); err != nil {
		return c, err
	}
	return c, nil
}

func parseConfig(str string) (Config, error) {
	c := DefaultConfig()
	if err := gcfg.ReadStringInto(&c, str); err != nil {
		return c, err
	}
	return c, nil
}
