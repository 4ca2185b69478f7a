// Package multi fans evaluation reports out to several outputs.
package multi

import (
	"context"
	"errors"

	"github.com/crimson-sun/sway/internal/eval"
	"github.com/crimson-sun/sway/internal/output"
)

// Multi delivers each report to every wrapped output sequentially. If one
// output fails, the remaining outputs still receive the report.
type Multi struct {
	outputs []output.Output
}

// New creates a Multi over the given outputs.
func New(outputs ...output.Output) *Multi {
	return &Multi{outputs: outputs}
}

// Write delivers the report to every wrapped output, collecting errors.
func (m *Multi) Write(ctx context.Context, result eval.Result) error {
	var errs []error
	for _, o := range m.outputs {
		if err := o.Write(ctx, result); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close calls Close on every wrapped output, collecting errors.
func (m *Multi) Close() error {
	var errs []error
	for _, o := range m.outputs {
		if err := o.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
