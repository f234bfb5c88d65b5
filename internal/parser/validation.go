package parser

import (
	"math"
)

// validateTriple rejects non-finite coordinate components. The document
// format has no coordinate range (building-local systems are arbitrary),
// but NaN/Inf would silently poison the bounding box and every transform
// downstream.
func validateTriple(path string, x, y, z float64) error {
	for _, c := range [3]float64{x, y, z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return malformed(path, "non-finite coordinate (%v, %v, %v)", x, y, z)
		}
	}
	return nil
}

// ValidateRing checks the SurfaceRing arity invariant: a flat coordinate
// sequence grouped in (x, y, z) triples.
func ValidateRing(path string, ring SurfaceRing) error {
	if len(ring)%3 != 0 {
		return malformed(path, "ring has %d components, not a multiple of 3", len(ring))
	}
	return nil
}
