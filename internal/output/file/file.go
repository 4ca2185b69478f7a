// Package file appends text evaluation reports to a file.
package file

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/crimson-sun/sway/internal/eval"
	"github.com/crimson-sun/sway/internal/output"
)

const defaultBufSize = 64 * 1024

// Output writes reports to a file with buffered I/O. Successive reports
// are separated by a blank line.
type Output struct {
	mu   sync.Mutex
	f    *os.File
	w    *bufio.Writer
	path string
}

// New creates a file output appending to the given path.
func New(path string) (*Output, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("file output: open %s: %w", path, err)
	}
	return &Output{
		f:    f,
		w:    bufio.NewWriterSize(f, defaultBufSize),
		path: path,
	}, nil
}

func (o *Output) Write(_ context.Context, result eval.Result) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, err := o.w.WriteString(output.Render(result)); err != nil {
		return fmt.Errorf("file output: write: %w", err)
	}
	if _, err := o.w.WriteString("\n"); err != nil {
		return fmt.Errorf("file output: write: %w", err)
	}
	return nil
}

// Close flushes the buffer and closes the file.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.w.Flush(); err != nil {
		o.f.Close()
		return fmt.Errorf("file output: flush: %w", err)
	}
	return o.f.Close()
}
