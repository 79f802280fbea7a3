package advanced

import (
	"image"
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	colorful "github.com/lucasb-eyer/go-colorful"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the drawing so hull edges aren't flush with the border
const drawPadding = 20

// DrawPNG renders the triangulation's points and edges to a PNG at path.
// Coordinates are multiplied by scale, and y points up.
func (tr *Triangulation[T]) DrawPNG(path string, scale float64) error {
	c := tr.drawContext(scale)
	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

// For debugging. Draws the triangulation and prints it inline in the terminal
// (iTerm only).
func (tr *Triangulation[T]) PrintInline(w io.Writer, scale float64) error {
	f, err := os.CreateTemp("", "triangulation-*.png")
	if err != nil {
		return errors.Wrap(err, "creating temporary image")
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	if err := tr.DrawPNG(path, scale); err != nil {
		return err
	}
	return errors.Wrap(imgcat.CatFile(path, w), "printing inline")
}

func (tr *Triangulation[T]) drawContext(scale float64) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range tr.vertices {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(1)
	c.SetRGB(0, 1, 1)
	for _, e := range tr.edges {
		c.DrawLine(e.P1.X, e.P1.Y, e.P2.X, e.P2.Y)
	}
	c.Stroke()

	c.SetRGB(1, 1, 0)
	for _, p := range tr.vertices {
		c.DrawPoint(p.X, p.Y, 2)
	}
	c.Fill()
	return c
}

// HeatMap colors a row major scalar grid, blending from cold at lo to hot at
// hi in CIE L*a*b* space. NaN cells are left transparent. Row 0 is drawn at
// the bottom so the image has the same orientation as DrawPNG.
func HeatMap(grid []Scalar, size int, lo, hi Scalar, cold, hot colorful.Color) (image.Image, error) {
	if size < 1 || size > MaxGridSize || len(grid) != size*size {
		return nil, errors.Wrapf(ErrInvalidGrid, "%d cells do not form a %d×%d grid", len(grid), size, size)
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	span := float64(hi - lo)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			v := grid[row*size+col]
			if v.IsNaN() {
				continue
			}
			t := 0.0
			if span > 0 {
				t = math.Max(0, math.Min(1, float64(v-lo)/span))
			}
			img.Set(col, size-1-row, cold.BlendLab(hot, t).Clamped())
		}
	}
	return img, nil
}

// SaveHeatMap writes HeatMap's output for grid to a PNG at path, using the
// grid's own value range.
func SaveHeatMap(path string, grid []Scalar, size int, cold, hot colorful.Color) error {
	lo, hi, ok := ScalarGridRange(grid)
	if !ok {
		lo, hi = 0, 0
	}
	img, err := HeatMap(grid, size, lo, hi, cold, hot)
	if err != nil {
		return err
	}
	return errors.Wrapf(gg.SavePNG(path, img), "saving %s", path)
}
