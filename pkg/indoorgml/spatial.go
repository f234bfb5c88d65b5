package indoorgml

// Bounds is an axis-aligned 3D bounding box in the model's current
// coordinate system.
type Bounds struct {
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
	MinZ float64
	MaxZ float64
}

// Contains returns true if the point is within the bounds.
func (b Bounds) Contains(x, y, z float64) bool {
	return x >= b.MinX && x <= b.MaxX &&
		y >= b.MinY && y <= b.MaxY &&
		z >= b.MinZ && z <= b.MaxZ
}

// Intersects returns true if the given bounds intersects with this bounds
// in the horizontal plane. Indoor viewport queries are 2D; the vertical
// extent is ignored.
func (b Bounds) Intersects(other Bounds) bool {
	return !(other.MaxX < b.MinX ||
		other.MinX > b.MaxX ||
		other.MaxY < b.MinY ||
		other.MinY > b.MaxY)
}

// Expand returns a new Bounds expanded by the given margin in all
// directions.
func (b Bounds) Expand(margin float64) Bounds {
	return Bounds{
		MinX: b.MinX - margin,
		MaxX: b.MaxX + margin,
		MinY: b.MinY - margin,
		MaxY: b.MaxY + margin,
		MinZ: b.MinZ - margin,
		MaxZ: b.MaxZ + margin,
	}
}

// featureBounds calculates the bounding box of a cell feature's rings.
// Returns false when the feature carries no coordinates.
func featureBounds(f *CellFeature) (Bounds, bool) {
	seeded := false
	var bounds Bounds

	for _, ring := range f.rings {
		for i := 0; i+2 < len(ring); i += 3 {
			x, y, z := ring[i], ring[i+1], ring[i+2]
			if !seeded {
				bounds = Bounds{MinX: x, MaxX: x, MinY: y, MaxY: y, MinZ: z, MaxZ: z}
				seeded = true
				continue
			}
			if x < bounds.MinX {
				bounds.MinX = x
			}
			if x > bounds.MaxX {
				bounds.MaxX = x
			}
			if y < bounds.MinY {
				bounds.MinY = y
			}
			if y > bounds.MaxY {
				bounds.MaxY = y
			}
			if z < bounds.MinZ {
				bounds.MinZ = z
			}
			if z > bounds.MaxZ {
				bounds.MaxZ = z
			}
		}
	}

	return bounds, seeded
}
