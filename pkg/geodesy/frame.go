package geodesy

import (
	"math"
)

// Frame is a 4x4 rigid transform in row-major order, mapping homogeneous
// local coordinates to world (ECEF) coordinates.
type Frame [4][4]float64

// EastNorthUpFrame builds the local tangent-plane frame anchored at origin:
// the x axis points geodetic east, y north, z up along the ellipsoid
// normal, and the translation places the frame origin at the ECEF position
// of the anchor.
func EastNorthUpFrame(origin Geodetic, e Ellipsoid) Frame {
	sinLat, cosLat := math.Sincos(origin.Lat * math.Pi / 180)
	sinLon, cosLon := math.Sincos(origin.Lon * math.Pi / 180)
	x0, y0, z0 := e.ECEF(origin)

	// Columns are the east, north and up unit vectors in ECEF.
	return Frame{
		{-sinLon, -sinLat * cosLon, cosLat * cosLon, x0},
		{cosLon, -sinLat * sinLon, cosLat * sinLon, y0},
		{0, cosLat, sinLat, z0},
		{0, 0, 0, 1},
	}
}

// Apply transforms a 3-vector through the frame, treating it as a
// homogeneous point.
func (f Frame) Apply(x, y, z float64) (float64, float64, float64) {
	return f[0][0]*x + f[0][1]*y + f[0][2]*z + f[0][3],
		f[1][0]*x + f[1][1]*y + f[1][2]*z + f[1][3],
		f[2][0]*x + f[2][1]*y + f[2][2]*z + f[2][3]
}

// Origin returns the frame's translation: the world position of the local
// origin.
func (f Frame) Origin() (x, y, z float64) {
	return f[0][3], f[1][3], f[2][3]
}

// Inverse returns the inverse of a rigid frame (transposed rotation,
// back-rotated translation). Valid only for rigid transforms, which is the
// only kind this package constructs.
func (f Frame) Inverse() Frame {
	var inv Frame
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			inv[i][j] = f[j][i]
		}
	}
	for i := 0; i < 3; i++ {
		inv[i][3] = -(inv[i][0]*f[0][3] + inv[i][1]*f[1][3] + inv[i][2]*f[2][3])
	}
	inv[3] = [4]float64{0, 0, 0, 1}
	return inv
}
