package pipeline

import "errors"

// Sentinel errors for pipeline construction and execution.
var (
	// ErrConfiguration marks invalid pipeline topology: empty step lists,
	// empty or colliding step names, or a missing terminal step.
	ErrConfiguration = errors.New("invalid pipeline configuration")

	// ErrShapeMismatch marks a broken row-count invariant: a step or union
	// block produced a different number of rows than it was given. Row
	// identity per example must hold end-to-end; dropping or duplicating
	// rows silently is forbidden.
	ErrShapeMismatch = errors.New("shape mismatch")
)
