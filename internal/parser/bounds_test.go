package parser

import (
	"testing"
)

func TestExtentZeroSeeded(t *testing.T) {
	// The compatibility default: accumulators start at 0, so an
	// all-positive dataset keeps its minimum pinned at 0.
	ext := NewExtent()
	ext.Observe(10, 20, 5)
	ext.Observe(12, 22, 7)

	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"MinX", ext.MinX, 0},
		{"MinY", ext.MinY, 0},
		{"MinZ", ext.MinZ, 0},
		{"MaxX", ext.MaxX, 12},
		{"MaxY", ext.MaxY, 22},
		{"MaxZ", ext.MaxZ, 7},
		{"CenterX", ext.CenterX(), 6},
		{"CenterY", ext.CenterY(), 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %v, expected %v", tt.got, tt.expected)
			}
		})
	}
}

func TestExtentZeroSeededNegative(t *testing.T) {
	// All-negative data pins the maximum at 0 instead.
	ext := NewExtent()
	ext.Observe(-10, -20, -5)

	if ext.MaxX != 0 || ext.MaxY != 0 || ext.MaxZ != 0 {
		t.Errorf("max = (%v, %v, %v), expected zeros", ext.MaxX, ext.MaxY, ext.MaxZ)
	}
	if ext.MinX != -10 || ext.MinY != -20 || ext.MinZ != -5 {
		t.Errorf("min = (%v, %v, %v), expected (-10, -20, -5)", ext.MinX, ext.MinY, ext.MinZ)
	}
}

func TestExtentSeededFromData(t *testing.T) {
	// Opt-in mode: the first observation seeds all six bounds, giving
	// the true data extent for all-positive datasets.
	ext := NewSeededExtent()
	ext.Observe(10, 20, 5)
	ext.Observe(12, 22, 7)

	if ext.MinX != 10 || ext.MinY != 20 || ext.MinZ != 5 {
		t.Errorf("min = (%v, %v, %v), expected (10, 20, 5)", ext.MinX, ext.MinY, ext.MinZ)
	}
	if ext.MaxX != 12 || ext.MaxY != 22 || ext.MaxZ != 7 {
		t.Errorf("max = (%v, %v, %v), expected (12, 22, 7)", ext.MaxX, ext.MaxY, ext.MaxZ)
	}
	if ext.CenterX() != 11 || ext.CenterY() != 21 {
		t.Errorf("center = (%v, %v), expected (11, 21)", ext.CenterX(), ext.CenterY())
	}
}

func TestExtentMixedSigns(t *testing.T) {
	// With data straddling zero, both modes agree.
	zero := NewExtent()
	seeded := NewSeededExtent()
	points := [][3]float64{{-5, 3, -1}, {4, -2, 6}, {1, 7, 0}}
	for _, p := range points {
		zero.Observe(p[0], p[1], p[2])
		seeded.Observe(p[0], p[1], p[2])
	}

	if zero.MinX != seeded.MinX || zero.MaxX != seeded.MaxX ||
		zero.MinY != seeded.MinY || zero.MaxY != seeded.MaxY ||
		zero.MinZ != seeded.MinZ || zero.MaxZ != seeded.MaxZ {
		t.Errorf("zero-seeded %+v and data-seeded %+v disagree on mixed-sign data", zero, seeded)
	}
}
