// Package stdout writes the text evaluation report to standard output.
package stdout

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/crimson-sun/sway/internal/eval"
	"github.com/crimson-sun/sway/internal/output"
)

// Output renders reports to a writer, stdout by default.
type Output struct {
	w io.Writer
}

// New creates a stdout Output.
func New() *Output {
	return &Output{w: os.Stdout}
}

// NewWriter creates an Output over an arbitrary writer.
func NewWriter(w io.Writer) *Output {
	return &Output{w: w}
}

func (o *Output) Write(_ context.Context, result eval.Result) error {
	if _, err := io.WriteString(o.w, output.Render(result)); err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Close() error { return nil }
