package indoorgml

import (
	"github.com/dhconnelly/rtreego"
)

// cellSpaceIndex provides O(log n) spatial queries over cell-space
// footprints using an R-tree.
type cellSpaceIndex struct {
	rtree *rtreego.Rtree
}

// indexedCell wraps a cell space for R-tree storage.
type indexedCell struct {
	cell   *CellFeature
	bounds Bounds
}

// Bounds implements rtreego.Spatial.
func (c *indexedCell) Bounds() rtreego.Rect {
	return footprintRect(c.bounds)
}

// footprintRect converts a 3D bounding box to a 2D R-tree rectangle over
// the horizontal plane. R-tree rectangles need non-zero extents, so
// degenerate footprints are padded by a centimeter-scale epsilon.
func footprintRect(b Bounds) rtreego.Rect {
	const epsilon = 0.01

	width := b.MaxX - b.MinX
	depth := b.MaxY - b.MinY
	if width < epsilon {
		width = epsilon
	}
	if depth < epsilon {
		depth = epsilon
	}

	rect, _ := rtreego.NewRect(rtreego.Point{b.MinX, b.MinY}, []float64{width, depth})
	return rect
}

// buildCellSpaceIndex indexes every cell space that carries geometry.
// Returns nil when nothing is indexable.
func buildCellSpaceIndex(cells []CellFeature) *cellSpaceIndex {
	rtree := rtreego.NewTree(2, 25, 50)
	indexed := 0

	for i := range cells {
		bounds, ok := featureBounds(&cells[i])
		if !ok {
			continue
		}
		rtree.Insert(&indexedCell{cell: &cells[i], bounds: bounds})
		indexed++
	}

	if indexed == 0 {
		return nil
	}
	return &cellSpaceIndex{rtree: rtree}
}

// CellSpacesInBounds returns the cell spaces whose footprints intersect
// the given bounds, in the model's current coordinate system (building
// local before Anchor, world-fixed after; the index is rebuilt on Anchor).
//
// Example:
//
//	viewport := indoorgml.Bounds{MinX: 0, MaxX: 25, MinY: 0, MaxY: 40}
//	for _, cell := range model.CellSpacesInBounds(viewport) {
//	    render(cell)
//	}
func (m *Model) CellSpacesInBounds(bounds Bounds) []*CellFeature {
	if m.index == nil || m.index.rtree == nil {
		return m.cellSpacesInBoundsLinear(bounds)
	}

	spatials := m.index.rtree.SearchIntersect(footprintRect(bounds))

	result := make([]*CellFeature, 0, len(spatials))
	for _, spatial := range spatials {
		result = append(result, spatial.(*indexedCell).cell)
	}
	return result
}

// cellSpacesInBoundsLinear is the fallback when no index was built.
func (m *Model) cellSpacesInBoundsLinear(bounds Bounds) []*CellFeature {
	var result []*CellFeature
	for i := range m.cellSpaces {
		fb, ok := featureBounds(&m.cellSpaces[i])
		if !ok {
			continue
		}
		if bounds.Intersects(fb) {
			result = append(result, &m.cellSpaces[i])
		}
	}
	return result
}
