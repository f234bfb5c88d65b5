package parser

// Extent is a running min/max accumulator over every coordinate triple
// consumed during extraction. One Extent is threaded explicitly through all
// extraction passes of a single document.
//
// By default the six accumulators start at zero, matching the source
// viewer's behavior: an all-positive dataset keeps its minimum pinned at 0
// (and all-negative its maximum). Downstream recentering math depends on
// this, so it is preserved as the default; NewSeededExtent opts into
// seeding from the first observed coordinate instead.
type Extent struct {
	MinX, MinY, MinZ float64
	MaxX, MaxY, MaxZ float64

	seedFromData bool
	observed     bool
}

// NewExtent returns a zero-initialized accumulator (compatibility default).
func NewExtent() *Extent {
	return &Extent{}
}

// NewSeededExtent returns an accumulator that seeds all six bounds from the
// first observed coordinate, yielding the true data extent.
func NewSeededExtent() *Extent {
	return &Extent{seedFromData: true}
}

// Observe folds one coordinate triple into the running bounds.
func (e *Extent) Observe(x, y, z float64) {
	if e.seedFromData && !e.observed {
		e.MinX, e.MaxX = x, x
		e.MinY, e.MaxY = y, y
		e.MinZ, e.MaxZ = z, z
		e.observed = true
		return
	}
	e.observed = true

	if x < e.MinX {
		e.MinX = x
	}
	if x > e.MaxX {
		e.MaxX = x
	}
	if y < e.MinY {
		e.MinY = y
	}
	if y > e.MaxY {
		e.MaxY = y
	}
	if z < e.MinZ {
		e.MinZ = z
	}
	if z > e.MaxZ {
		e.MaxZ = z
	}
}

// CenterX returns the horizontal x midpoint of the accumulated bounds.
func (e *Extent) CenterX() float64 {
	return (e.MinX + e.MaxX) / 2
}

// CenterY returns the horizontal y midpoint of the accumulated bounds.
func (e *Extent) CenterY() float64 {
	return (e.MinY + e.MaxY) / 2
}
