// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ca

import (
	"math"
	"testing"
)

func TestSizeScale(t *testing.T) {
	tests := []struct {
		name  string
		size  Size
		scale float64
		w, h  uint32
	}{
		{"identity", Size{800, 600}, 1, 800, 600},
		{"retina", Size{800, 600}, 2, 1600, 1200},
		{"fractional floors", Size{100.7, 50.2}, 1.5, 151, 75},
		{"zero scale", Size{800, 600}, 0, 0, 0},
		{"negative clamps", Size{-10, 20}, 1, 0, 20},
		{"nan clamps", Size{math.NaN(), 20}, 1, 0, 20},
		{"overflow clamps", Size{3e9, 100}, 2, math.MaxUint32, 200},
		{"infinity clamps", Size{math.Inf(1), 1}, 1, math.MaxUint32, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := tt.size.Scale(tt.scale)
			if w != tt.w || h != tt.h {
				t.Errorf("Scale(%v) = (%d, %d), want (%d, %d)", tt.scale, w, h, tt.w, tt.h)
			}
		})
	}
}

func TestRectEmpty(t *testing.T) {
	if !(Rect{}).Empty() {
		t.Error("zero Rect should be empty")
	}
	if NewRect(10, 10, 1, 1).Empty() {
		t.Error("1x1 Rect should not be empty")
	}
}

func TestGravityString(t *testing.T) {
	if got := GravityTopLeft.String(); got != "topLeft" {
		t.Errorf("GravityTopLeft.String() = %q, want topLeft", got)
	}
	if got := Gravity(42).String(); got != "unknown" {
		t.Errorf("Gravity(42).String() = %q, want unknown", got)
	}
}
