package advanced

import (
	"embed"
	"log"
	"math"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// This file loads point sets from svg pictures. Every <circle> is a point at
// (cx, cy) whose value is its data-value attribute. This is not a full (or
// even correct) svg parser. If anything goes wrong, it exits.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point[Scalar] {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, false)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	circles := rootEl.FindAll("circle")
	if len(circles) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}

	points := make([]Point[Scalar], 0, len(circles))
	for _, el := range circles {
		x := parseAttribute(name, el, "cx")
		y := parseAttribute(name, el, "cy")
		v := parseAttribute(name, el, "data-value")
		points = append(points, NewPoint(x, y, Scalar(v)))
	}
	return points
}

func parseAttribute(fixture string, el *svgparser.Element, attr string) float64 {
	s, ok := el.Attributes[attr]
	if !ok {
		log.Fatalf("Circle in fixture %q has no %s", fixture, attr)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("Invalid %s value %q in fixture %q: %v", attr, s, fixture, err)
	}
	return f
}

// Some ad hoc code specified fixtures

func SquareCorners(value Scalar) []Point[Scalar] {
	return []Point[Scalar]{
		NewPoint(0, 0, value),
		NewPoint(1, 0, value),
		NewPoint(1, 1, value),
		NewPoint(0, 1, value),
	}
}

// An irregular convex pentagon with a spiral of points in its middle. The
// hull is well away from the interior points, so every hull edge survives.
func PentagonCluster() []Point[Scalar] {
	points := []Point[Scalar]{
		NewPoint(0, 0, Scalar(1)),
		NewPoint(100, -10, Scalar(2)),
		NewPoint(130, 60, Scalar(3)),
		NewPoint(60, 120, Scalar(4)),
		NewPoint(-20, 70, Scalar(5)),
	}
	const n = 13
	const goldenAngle = 2.399963229728653
	for i := 1; i < n; i++ {
		r := 25 * math.Sqrt(float64(i)/n)
		angle := float64(i) * goldenAngle
		points = append(points, NewPoint(55+r*math.Cos(angle), 50+r*math.Sin(angle), Scalar(i)))
	}
	return points
}
