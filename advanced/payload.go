package advanced

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Payload is the value carried by a point. Interpolation needs nothing more
// than a weighted sum, so any type that can be added to itself and scaled by a
// float can be interpolated.
type Payload[T any] interface {
	Add(T) T
	Scale(float64) T
}

var (
	_ Payload[Scalar] = Scalar(0)
	_ Payload[Color]  = Color{}
)

// Scalar is a plain numeric payload, such as a height or a temperature.
type Scalar float64

func (s Scalar) Add(other Scalar) Scalar {
	return s + other
}

func (s Scalar) Scale(weight float64) Scalar {
	return Scalar(float64(s) * weight)
}

// NaN is the conventional "not a value" fallback for scalar fields.
func NaN() Scalar {
	return Scalar(math.NaN())
}

func (s Scalar) IsNaN() bool {
	return math.IsNaN(float64(s))
}

// Color is a payload that blends linearly in RGB. Blending in RGB matches what
// the weighted sum does to every other payload; use HeatMap if you want a
// perceptual ramp instead.
type Color struct {
	colorful.Color
}

func NewColor(c colorful.Color) Color {
	return Color{c}
}

func (c Color) Add(other Color) Color {
	return Color{colorful.Color{
		R: c.R + other.R,
		G: c.G + other.G,
		B: c.B + other.B,
	}}
}

func (c Color) Scale(weight float64) Color {
	return Color{colorful.Color{
		R: c.R * weight,
		G: c.G * weight,
		B: c.B * weight,
	}}
}
