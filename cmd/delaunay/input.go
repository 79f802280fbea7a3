package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/delaunay"
	"github.com/pkg/errors"
)

// Read newline separated points in the form "x y value". Blank lines and lines
// starting with # are skipped.
func readPoints(in io.Reader) ([]delaunay.Point, error) {
	points := []delaunay.Point{}
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

func parsePoint(line string) (delaunay.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 3 {
		return delaunay.Point{}, errors.Errorf("expected \"x y value\", got %q", line)
	}

	var coords [3]float64
	for i, part := range parts {
		f, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return delaunay.Point{}, errors.Wrapf(err, "parsing %q", part)
		}
		coords[i] = f
	}
	return delaunay.NewPoint(coords[0], coords[1], coords[2]), nil
}
