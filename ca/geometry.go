// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ca

import "math"

// Point is a position in layer coordinates (points, not pixels).
type Point struct {
	X, Y float64
}

// Size is a width/height pair. Layer bounds are measured in points,
// drawable sizes in pixels.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Origin Point
	Size   Size
}

// NewRect returns the rectangle with origin (x, y) and size w×h.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Size.Width <= 0 || r.Size.Height <= 0
}

// Scale returns the pixel size covered by s at the given contents scale,
// truncated toward zero and clamped to [0, math.MaxUint32].
func (s Size) Scale(scale float64) (width, height uint32) {
	return pixels(s.Width * scale), pixels(s.Height * scale)
}

func pixels(v float64) uint32 {
	v = math.Floor(v)
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v >= math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(v)
}

// Gravity positions layer contents inside the layer bounds when the two
// sizes differ.
type Gravity uint8

const (
	// GravityResize stretches the contents to fill the bounds.
	GravityResize Gravity = iota

	// GravityTopLeft pins the contents to the top-left corner without
	// scaling.
	GravityTopLeft
)

// String returns the gravity name as the compositor spells it.
func (g Gravity) String() string {
	switch g {
	case GravityResize:
		return "resize"
	case GravityTopLeft:
		return "topLeft"
	default:
		return "unknown"
	}
}
