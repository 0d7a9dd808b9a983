// Package apperr defines sentinel errors shared across layers.
package apperr

import "errors"

// ErrUnknownFlow is returned when a flow id is not in the template registry.
// It is the only validation failure the flow engine produces.
var ErrUnknownFlow = errors.New("unknown flow")
