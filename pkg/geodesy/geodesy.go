// Package geodesy provides the small geodetic toolkit the model anchoring
// pipeline consumes: geodetic positions on a reference ellipsoid, ECEF
// conversion, and east-north-up local tangent frames as 4x4 rigid
// transforms.
package geodesy

import (
	"math"
)

// Geodetic is a position on a reference ellipsoid.
type Geodetic struct {
	// Lat is the geodetic latitude in decimal degrees, positive north.
	Lat float64
	// Lon is the longitude in decimal degrees, positive east.
	Lon float64
	// Height is the height above the ellipsoid in meters.
	Height float64
}

// Ellipsoid is a reference ellipsoid defined by semi-major axis and
// flattening.
type Ellipsoid struct {
	// SemiMajor is the equatorial radius in meters.
	SemiMajor float64
	// Flattening is the first flattening f = (a-b)/a.
	Flattening float64
}

// WGS84 is the World Geodetic System 1984 reference ellipsoid.
var WGS84 = Ellipsoid{
	SemiMajor:  6378137.0,
	Flattening: 1.0 / 298.257223563,
}

// ECEF converts a geodetic position to earth-centered earth-fixed
// cartesian coordinates in meters.
func (e Ellipsoid) ECEF(p Geodetic) (x, y, z float64) {
	sinLat, cosLat := math.Sincos(p.Lat * math.Pi / 180)
	sinLon, cosLon := math.Sincos(p.Lon * math.Pi / 180)

	// Prime vertical radius of curvature.
	e2 := e.Flattening * (2 - e.Flattening)
	n := e.SemiMajor / math.Sqrt(1-e2*sinLat*sinLat)

	x = (n + p.Height) * cosLat * cosLon
	y = (n + p.Height) * cosLat * sinLon
	z = (n*(1-e2) + p.Height) * sinLat
	return x, y, z
}
