package parser

import (
	"fmt"
)

// ErrMalformedDocument indicates the JSON document deviates from the fixed
// IndoorGML navigation structure: a required object or array is missing, a
// value has the wrong shape, or a coordinate leaf is not numeric.
//
// Path is the full dotted access path to the failing value, including array
// indices (e.g. "multiLayeredGraph.spaceLayers[0].spaceLayerMember[0]").
type ErrMalformedDocument struct {
	Path   string
	Reason string
}

func (e *ErrMalformedDocument) Error() string {
	return fmt.Sprintf("malformed document at %s: %s", e.Path, e.Reason)
}

// malformed builds an ErrMalformedDocument with a formatted reason.
func malformed(path, format string, args ...interface{}) error {
	return &ErrMalformedDocument{
		Path:   path,
		Reason: fmt.Sprintf(format, args...),
	}
}
