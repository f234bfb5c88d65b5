package parser

import (
	"math"
	"strings"
	"testing"
)

func TestValidateTriple(t *testing.T) {
	tests := []struct {
		name    string
		x, y, z float64
		wantErr bool
	}{
		{"finite", 1, 2, 3, false},
		{"zero", 0, 0, 0, false},
		{"negative", -1e12, -2, -3, false},
		{"nan x", math.NaN(), 0, 0, true},
		{"nan z", 0, 0, math.NaN(), true},
		{"positive inf", math.Inf(1), 0, 0, true},
		{"negative inf", 0, math.Inf(-1), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTriple("pos", tt.x, tt.y, tt.z)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateTriple(%v, %v, %v) error = %v, wantErr %v",
					tt.x, tt.y, tt.z, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRing(t *testing.T) {
	if err := ValidateRing("ring", SurfaceRing{1, 2, 3, 4, 5, 6}); err != nil {
		t.Errorf("valid ring rejected: %v", err)
	}
	if err := ValidateRing("ring", SurfaceRing{}); err != nil {
		t.Errorf("empty ring rejected: %v", err)
	}

	err := ValidateRing("ring", SurfaceRing{1, 2, 3, 4})
	if err == nil {
		t.Fatal("expected error for ring with 4 components")
	}
	if !strings.Contains(err.Error(), "multiple of 3") {
		t.Errorf("unexpected error message: %v", err)
	}
}
