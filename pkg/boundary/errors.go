// Package boundary adapts host-language inputs (nested maps, rectangular
// numeric arrays) into the internal network/matching data model and
// translates match results back. It is the only place in the module that
// validates external input shape.
package boundary

import "errors"

// Sentinel input-shape errors. These abort the call before any matching
// starts; they are never raised for a per-track match failure.
var (
	ErrMissingField    = errors.New("boundary: missing required field")
	ErrWrongShape      = errors.New("boundary: wrong array shape")
	ErrNonNumericField = errors.New("boundary: non-numeric field")
)
