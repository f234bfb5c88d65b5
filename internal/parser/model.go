package parser

// Point is a coordinate triple in the source document's reference system.
// Components are rewritten together when the model is re-anchored.
type Point struct {
	X, Y, Z float64
}

// SurfaceRing is a closed polygon ring stored as a flat sequence of
// coordinates in consecutive (x, y, z) triples. Length is always a
// multiple of 3.
type SurfaceRing []float64

// CellFeature is a geometric feature: either a cell space (room, corridor)
// or a cell-space boundary (door, wall face between adjacent spaces).
type CellFeature struct {
	// ID is the gml:id of the feature, "" if absent.
	ID string
	// Description is the feature description, "" if absent.
	Description string
	// Duality links the feature to its topological counterpart
	// (e.g. a cell space to its navigation node), "" if absent.
	Duality string
	// Rings holds the feature's surface geometry, empty when the
	// feature carries none.
	Rings []SurfaceRing
}

// Edge is a navigable transition between two states, carrying the 3D path
// geometry of the connection.
type Edge struct {
	// Connects holds node references from the transition's connects
	// entries, typically two ("#n1", "#n2").
	Connects []string
	// Description is the transition description, "" if absent.
	Description string
	// Path is the transition's 3D path geometry.
	Path []Point
}

// Model is the normalized navigation/geometry model extracted from one
// IndoorGML JSON document. All fields are populated during extraction and
// owned exclusively by this model.
type Model struct {
	Nodes               []Point
	Edges               []Edge
	CellSpaces          []CellFeature
	CellSpaceBoundaries []CellFeature

	// Extent is the bounding box accumulated over every coordinate
	// consumed during extraction.
	Extent Extent

	// CenterX/CenterY are the horizontal midpoints of the extent.
	// The vertical center is intentionally not computed: re-anchoring
	// recenters on the bounding-box floor (Extent.MinZ), not its middle.
	CenterX float64
	CenterY float64
}
