// Package output defines where evaluation reports go and renders their
// human-readable text form.
package output

import (
	"context"

	"github.com/crimson-sun/sway/internal/eval"
)

// Output is a destination for evaluation reports.
type Output interface {
	Write(ctx context.Context, result eval.Result) error
	Close() error
}
