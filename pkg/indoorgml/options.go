package indoorgml

// ParseOptions configures parsing behavior.
type ParseOptions struct {
	// SeedBoundsFromData controls how the bounding-box accumulator is
	// initialized. The default (false) seeds all six bounds at zero,
	// matching the original viewer: an all-positive dataset keeps one
	// side of its bounding box pinned at 0, and the recentering origin
	// shifts accordingly. Set to true to seed from the first observed
	// coordinate and get the true data extent instead.
	//
	// Changing this changes where Anchor places the building relative
	// to the target position.
	SeedBoundsFromData bool

	// ValidateGeometry: if true, reject non-finite coordinates and
	// enforce ring invariants.
	// Default: true.
	ValidateGeometry bool

	// BuildSpatialIndex: if true, build an R-tree over cell-space
	// footprints for CellSpacesInBounds queries.
	// Default: true.
	BuildSpatialIndex bool
}

// DefaultParseOptions returns default options.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		SeedBoundsFromData: false,
		ValidateGeometry:   true,
		BuildSpatialIndex:  true,
	}
}
