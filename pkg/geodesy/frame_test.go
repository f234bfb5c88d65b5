package geodesy

import (
	"math"
	"testing"
)

func TestEastNorthUpFrameAxes(t *testing.T) {
	// At lat 0, lon 0 the ECEF axes line up exactly: east is +Y,
	// north is +Z, up is +X.
	frame := EastNorthUpFrame(Geodetic{Lat: 0, Lon: 0}, WGS84)
	x0, y0, z0 := frame.Origin()

	tests := []struct {
		name       string
		lx, ly, lz float64
		dx, dy, dz float64
	}{
		{"east", 1, 0, 0, 0, 1, 0},
		{"north", 0, 1, 0, 0, 0, 1},
		{"up", 0, 0, 1, 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, z := frame.Apply(tt.lx, tt.ly, tt.lz)
			if !closeTo(x-x0, tt.dx) || !closeTo(y-y0, tt.dy) || !closeTo(z-z0, tt.dz) {
				t.Errorf("local (%v, %v, %v) moved by (%v, %v, %v), expected (%v, %v, %v)",
					tt.lx, tt.ly, tt.lz, x-x0, y-y0, z-z0, tt.dx, tt.dy, tt.dz)
			}
		})
	}
}

func TestFrameOriginMatchesECEF(t *testing.T) {
	pos := Geodetic{Lat: 52.5163, Lon: 13.3777, Height: 34}
	frame := EastNorthUpFrame(pos, WGS84)

	ex, ey, ez := WGS84.ECEF(pos)
	x, y, z := frame.Origin()
	if !closeTo(x, ex) || !closeTo(y, ey) || !closeTo(z, ez) {
		t.Errorf("Origin() = (%v, %v, %v), expected ECEF (%v, %v, %v)", x, y, z, ex, ey, ez)
	}

	// Applying the zero vector lands on the origin.
	x, y, z = frame.Apply(0, 0, 0)
	if !closeTo(x, ex) || !closeTo(y, ey) || !closeTo(z, ez) {
		t.Errorf("Apply(0,0,0) = (%v, %v, %v), expected origin", x, y, z)
	}
}

func TestFrameUpIsOutward(t *testing.T) {
	// Moving up from any anchor increases distance from the earth
	// center by exactly the climb.
	pos := Geodetic{Lat: 35.68, Lon: 139.76, Height: 0}
	frame := EastNorthUpFrame(pos, WGS84)

	x0, y0, z0 := frame.Origin()
	x, y, z := frame.Apply(0, 0, 50)

	r0 := math.Sqrt(x0*x0 + y0*y0 + z0*z0)
	r := math.Sqrt(x*x + y*y + z*z)
	if !closeTo(r-r0, 50) {
		t.Errorf("climbing 50m changed radius by %v", r-r0)
	}
}

func TestFrameInverseRoundTrip(t *testing.T) {
	frame := EastNorthUpFrame(Geodetic{Lat: -23.55, Lon: -46.63, Height: 760}, WGS84)
	inv := frame.Inverse()

	points := [][3]float64{
		{0, 0, 0},
		{12.5, -40, 3},
		{-1e4, 2e4, -300},
	}
	for _, p := range points {
		x, y, z := frame.Apply(p[0], p[1], p[2])
		bx, by, bz := inv.Apply(x, y, z)
		if !closeTo(bx, p[0]) || !closeTo(by, p[1]) || !closeTo(bz, p[2]) {
			t.Errorf("round trip of (%v, %v, %v) gave (%v, %v, %v)", p[0], p[1], p[2], bx, by, bz)
		}
	}
}

func TestFrameRotationIsOrthonormal(t *testing.T) {
	frame := EastNorthUpFrame(Geodetic{Lat: 60.17, Lon: 24.94}, WGS84)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			dot := frame[0][i]*frame[0][j] + frame[1][i]*frame[1][j] + frame[2][i]*frame[2][j]
			expected := 0.0
			if i == j {
				expected = 1.0
			}
			if math.Abs(dot-expected) > 1e-12 {
				t.Errorf("columns %d·%d = %v, expected %v", i, j, dot, expected)
			}
		}
	}
}
