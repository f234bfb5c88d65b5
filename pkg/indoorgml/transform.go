package indoorgml

import (
	"math"

	"github.com/beetlebugorg/indoorgml/pkg/geodesy"
)

// Anchor re-projects the whole model onto a geodetic position with a yaw
// rotation, using the WGS-84 east-north-up frame anchored at position.
//
// Every coordinate in nodes, edge paths, cell-space rings, and boundary
// rings is rewritten in place:
//
//  1. recenter: offset against the parsed horizontal center and the
//     bounding-box floor, so the building's lowest point sits at the
//     frame origin
//  2. rotate about the vertical axis by rotationRadians
//  3. transform through the east-north-up frame into world coordinates
//
// The frame is built once per call and cached (see AnchorFrame). All four
// collections are transformed with the same frame and rotation.
//
// Anchor may be called again on an already-anchored model: it transforms
// the current coordinates against the original recentering scalars, so
// repeated calls compose rather than re-anchor from the raw document.
func (m *Model) Anchor(position geodesy.Geodetic, rotationRadians float64) {
	m.AnchorWithFrame(geodesy.EastNorthUpFrame(position, geodesy.WGS84), rotationRadians)
}

// AnchorWithFrame is Anchor with a caller-supplied frame, for non-WGS-84
// ellipsoids or custom frame builders.
func (m *Model) AnchorWithFrame(frame geodesy.Frame, rotationRadians float64) {
	sin, cos := math.Sincos(rotationRadians)

	for i := range m.nodes {
		m.nodes[i] = m.reproject(frame, sin, cos, m.nodes[i])
	}
	for i := range m.edges {
		path := m.edges[i].path
		for j := range path {
			path[j] = m.reproject(frame, sin, cos, path[j])
		}
	}
	m.reprojectFeatures(frame, sin, cos, m.cellSpaces)
	m.reprojectFeatures(frame, sin, cos, m.cellSpaceBoundaries)

	m.anchorFrame = frame
	m.anchored = true

	// Footprints moved; keep spatial queries consistent.
	if m.index != nil {
		m.index = buildCellSpaceIndex(m.cellSpaces)
	}
}

func (m *Model) reprojectFeatures(frame geodesy.Frame, sin, cos float64, features []CellFeature) {
	for i := range features {
		for _, ring := range features[i].rings {
			for k := 0; k+2 < len(ring); k += 3 {
				p := m.reproject(frame, sin, cos, Point{X: ring[k], Y: ring[k+1], Z: ring[k+2]})
				ring[k], ring[k+1], ring[k+2] = p.X, p.Y, p.Z
			}
		}
	}
}

// reproject applies recenter → yaw rotation → frame to one coordinate
// triple. The recentering scalars are the ones fixed at construction.
func (m *Model) reproject(frame geodesy.Frame, sin, cos float64, p Point) Point {
	dx := p.X - m.centerX
	dy := p.Y - m.centerY
	dz := p.Z - m.floorZ

	rx := dx*cos - dy*sin
	ry := dx*sin + dy*cos

	x, y, z := frame.Apply(rx, ry, dz)
	return Point{X: x, Y: y, Z: z}
}
