// Package indoorgml provides a clean public API for parsing IndoorGML
// building descriptions delivered as JSON and re-anchoring them onto
// real-world geographic positions.
package indoorgml

import (
	"github.com/beetlebugorg/indoorgml/internal/parser"
	"github.com/beetlebugorg/indoorgml/pkg/geodesy"
)

// ErrMalformedDocument is returned when the document deviates from the
// fixed IndoorGML JSON structure. The error names the failing access path,
// including array indices, so a malformed source document can be diagnosed.
type ErrMalformedDocument = parser.ErrMalformedDocument

// Point is a coordinate triple. In a freshly parsed model coordinates are
// in the building-local system of the source document; after Anchor they
// are world-fixed (ECEF meters).
type Point struct {
	X, Y, Z float64
}

// Ring is a closed polygon ring stored as a flat coordinate sequence in
// consecutive (x, y, z) triples. Length is always a multiple of 3.
type Ring []float64

// NumPoints returns the number of vertices in the ring.
func (r Ring) NumPoints() int {
	return len(r) / 3
}

// PointAt returns the i-th vertex of the ring.
func (r Ring) PointAt(i int) Point {
	return Point{X: r[3*i], Y: r[3*i+1], Z: r[3*i+2]}
}

// CellFeature is a geometric indoor feature: a cell space (room, corridor)
// or a cell-space boundary (door, shared wall face).
//
// Access feature data via methods:
//   - ID() returns the gml:id, "" if absent
//   - Description() returns the feature description, "" if absent
//   - Duality() returns the reference to the topological counterpart
//   - Rings() returns the surface geometry
type CellFeature struct {
	id          string
	description string
	duality     string
	rings       []Ring
}

// ID returns the feature identifier, "" if the document carried none.
func (f *CellFeature) ID() string {
	return f.id
}

// Description returns the feature description, "" if absent.
func (f *CellFeature) Description() string {
	return f.description
}

// Duality returns the cross-reference linking this geometric feature to
// its topological counterpart (a cell space to its navigation node), "" if
// absent.
func (f *CellFeature) Duality() string {
	return f.duality
}

// Rings returns the feature's surface rings. Cell spaces carry one ring
// per solid face (or a single 2D footprint ring); boundaries carry exactly
// one ring, which is empty when the boundary has no geometry.
func (f *CellFeature) Rings() []Ring {
	return f.rings
}

// Edge is a navigable transition between two states of the indoor
// navigation graph.
type Edge struct {
	connects    []string
	description string
	path        []Point
}

// Connects returns the connected node references, in document order.
// Typically two ("#n1", "#n2"), but the document may carry fewer.
func (e *Edge) Connects() []string {
	return e.connects
}

// Description returns the transition description, "" if absent.
func (e *Edge) Description() string {
	return e.description
}

// Path returns the transition's 3D path geometry.
func (e *Edge) Path() []Point {
	return e.path
}

// Model is a parsed IndoorGML building model: the navigation graph (nodes
// and edges) plus the primal geometry (cell spaces and their boundaries),
// with the bounding box and horizontal center computed during parsing.
//
// A model starts in building-local coordinates and is mutated in place by
// Anchor, which re-projects every coordinate onto a geodetic position.
// Models are not safe for concurrent mutation; callers must serialize
// Anchor with any reads.
type Model struct {
	nodes               []Point
	edges               []Edge
	cellSpaces          []CellFeature
	cellSpaceBoundaries []CellFeature

	bounds Bounds

	// Recentering scalars, fixed at construction. Anchor always offsets
	// against these, never against re-derived bounds, so repeated
	// anchors compose relative to the original building extent.
	centerX float64
	centerY float64
	floorZ  float64

	anchorFrame geodesy.Frame
	anchored    bool

	index *cellSpaceIndex
}

// Nodes returns the navigation graph states.
func (m *Model) Nodes() []Point {
	return m.nodes
}

// Edges returns the navigation graph transitions.
func (m *Model) Edges() []Edge {
	return m.edges
}

// CellSpaces returns the solid cell-space features.
func (m *Model) CellSpaces() []CellFeature {
	return m.cellSpaces
}

// CellSpaceBoundaries returns the cell-space boundary features.
func (m *Model) CellSpaceBoundaries() []CellFeature {
	return m.cellSpaceBoundaries
}

// Bounds returns the bounding box accumulated during parsing, in the
// source document's coordinate system. It is not recomputed by Anchor.
func (m *Model) Bounds() Bounds {
	return m.bounds
}

// Center returns the horizontal midpoint of the parsed bounding box.
// There is no vertical center: anchoring recenters on the bounding-box
// floor so the building's lowest point sits at the frame origin.
func (m *Model) Center() (x, y float64) {
	return m.centerX, m.centerY
}

// Anchored reports whether the model has been re-projected onto a
// geodetic position.
func (m *Model) Anchored() bool {
	return m.anchored
}

// AnchorFrame returns the east-north-up frame applied by the most recent
// Anchor call. The second return is false while the model is still in
// building-local coordinates.
func (m *Model) AnchorFrame() (geodesy.Frame, bool) {
	return m.anchorFrame, m.anchored
}

// convertModel converts the internal extraction result to the public model
func convertModel(internal *parser.Model, opts ParseOptions) *Model {
	nodes := make([]Point, len(internal.Nodes))
	for i, n := range internal.Nodes {
		nodes[i] = Point{X: n.X, Y: n.Y, Z: n.Z}
	}

	edges := make([]Edge, len(internal.Edges))
	for i, e := range internal.Edges {
		path := make([]Point, len(e.Path))
		for j, p := range e.Path {
			path[j] = Point{X: p.X, Y: p.Y, Z: p.Z}
		}
		edges[i] = Edge{
			connects:    e.Connects,
			description: e.Description,
			path:        path,
		}
	}

	model := &Model{
		nodes:               nodes,
		edges:               edges,
		cellSpaces:          convertCellFeatures(internal.CellSpaces),
		cellSpaceBoundaries: convertCellFeatures(internal.CellSpaceBoundaries),
		bounds: Bounds{
			MinX: internal.Extent.MinX, MaxX: internal.Extent.MaxX,
			MinY: internal.Extent.MinY, MaxY: internal.Extent.MaxY,
			MinZ: internal.Extent.MinZ, MaxZ: internal.Extent.MaxZ,
		},
		centerX: internal.CenterX,
		centerY: internal.CenterY,
		floorZ:  internal.Extent.MinZ,
	}

	if opts.BuildSpatialIndex {
		model.index = buildCellSpaceIndex(model.cellSpaces)
	}

	return model
}

func convertCellFeatures(internal []parser.CellFeature) []CellFeature {
	features := make([]CellFeature, len(internal))
	for i, f := range internal {
		rings := make([]Ring, len(f.Rings))
		for j, r := range f.Rings {
			rings[j] = Ring(r)
		}
		features[i] = CellFeature{
			id:          f.ID,
			description: f.Description,
			duality:     f.Duality,
			rings:       rings,
		}
	}
	return features
}
