// Package feature provides the fan-out feature composition used by the
// sentiment pipeline: a Union that concatenates independently computed
// feature blocks column-wise, and adapters that turn plain functions into
// blocks.
package feature

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/crimson-sun/sway/internal/pipeline"
)

// Block is one named sub-pipeline of a Union. Every block sees the same
// input rows and must produce a matrix with that row count. An inactive
// block still occupies its columns: the Union fits it to learn its width,
// then emits zeros in its place, so toggling a block never shifts the
// column indices downstream steps depend on. Zero is not a neutral value
// for every classifier family; the placeholder only keeps shapes stable.
type Block struct {
	Name   string
	Step   pipeline.Step
	Active bool
}

// Union fans one input batch out to all blocks and horizontally
// concatenates their outputs in declaration order.
type Union struct {
	blocks []Block
	widths []int
	fitted bool
}

// NewUnion builds a Union from the given blocks. Block names must be unique
// and non-empty and every block needs a step.
func NewUnion(blocks ...Block) (*Union, error) {
	if len(blocks) == 0 {
		return nil, fmt.Errorf("%w: union has no blocks", pipeline.ErrConfiguration)
	}
	seen := make(map[string]bool, len(blocks))
	for _, blk := range blocks {
		if blk.Name == "" {
			return nil, fmt.Errorf("%w: empty block name", pipeline.ErrConfiguration)
		}
		if blk.Step == nil {
			return nil, fmt.Errorf("%w: block %q has no step", pipeline.ErrConfiguration, blk.Name)
		}
		if seen[blk.Name] {
			return nil, fmt.Errorf("%w: duplicate block name %q", pipeline.ErrConfiguration, blk.Name)
		}
		seen[blk.Name] = true
	}
	return &Union{blocks: blocks, widths: make([]int, len(blocks))}, nil
}

// Blocks returns the block names in declaration order.
func (u *Union) Blocks() []string {
	names := make([]string, len(u.blocks))
	for i, blk := range u.blocks {
		names[i] = blk.Name
	}
	return names
}

// SetActive toggles the named block. The column layout is unaffected; an
// inactive block's columns are zero-filled.
func (u *Union) SetActive(name string, active bool) error {
	for i := range u.blocks {
		if u.blocks[i].Name == name {
			u.blocks[i].Active = active
			return nil
		}
	}
	return fmt.Errorf("%w: unknown block %q", pipeline.ErrConfiguration, name)
}

// Cols returns the total column count after fitting.
func (u *Union) Cols() int {
	total := 0
	for _, w := range u.widths {
		total += w
	}
	return total
}

// FitTransform fits every block (inactive ones included, to pin their
// widths) and returns the concatenated feature matrix.
func (u *Union) FitTransform(b pipeline.Batch, labels []string) (pipeline.Batch, error) {
	rows := b.Rows()
	outs := make([]*mat.Dense, len(u.blocks))
	for i, blk := range u.blocks {
		out, err := blk.Step.FitTransform(b, labels)
		if err != nil {
			return pipeline.Batch{}, fmt.Errorf("union block %q: %w", blk.Name, err)
		}
		x, err := u.blockMatrix(blk.Name, out, rows)
		if err != nil {
			return pipeline.Batch{}, err
		}
		_, u.widths[i] = x.Dims()
		outs[i] = x
	}
	u.fitted = true
	return pipeline.FromMatrix(u.concat(rows, outs)), nil
}

// Transform applies every fitted block and concatenates. Inactive blocks
// are not invoked; their columns come out as zeros of the fitted width.
func (u *Union) Transform(b pipeline.Batch) (pipeline.Batch, error) {
	if !u.fitted {
		return pipeline.Batch{}, fmt.Errorf("%w: union is not fitted", pipeline.ErrConfiguration)
	}
	rows := b.Rows()
	outs := make([]*mat.Dense, len(u.blocks))
	for i, blk := range u.blocks {
		if !blk.Active {
			outs[i] = mat.NewDense(rows, u.widths[i], nil)
			continue
		}
		out, err := blk.Step.Transform(b)
		if err != nil {
			return pipeline.Batch{}, fmt.Errorf("union block %q: %w", blk.Name, err)
		}
		x, err := u.blockMatrix(blk.Name, out, rows)
		if err != nil {
			return pipeline.Batch{}, err
		}
		if _, c := x.Dims(); c != u.widths[i] {
			return pipeline.Batch{}, fmt.Errorf("%w: block %q emitted %d columns, fitted with %d",
				pipeline.ErrShapeMismatch, blk.Name, c, u.widths[i])
		}
		outs[i] = x
	}
	return pipeline.FromMatrix(u.concat(rows, outs)), nil
}

// blockMatrix validates a block's output against the input row count.
func (u *Union) blockMatrix(name string, out pipeline.Batch, rows int) (*mat.Dense, error) {
	if out.X == nil {
		return nil, fmt.Errorf("%w: block %q produced documents, not a matrix",
			pipeline.ErrConfiguration, name)
	}
	if r := out.Rows(); r != rows {
		return nil, fmt.Errorf("%w: block %q emitted %d rows for %d inputs",
			pipeline.ErrShapeMismatch, name, r, rows)
	}
	return out.X, nil
}

// concat stitches block outputs together column-wise, zeroing the spans of
// inactive blocks.
func (u *Union) concat(rows int, outs []*mat.Dense) *mat.Dense {
	result := mat.NewDense(rows, u.Cols(), nil)
	col := 0
	for i, x := range outs {
		w := u.widths[i]
		if u.blocks[i].Active {
			result.Slice(0, rows, col, col+w).(*mat.Dense).Copy(x)
		}
		col += w
	}
	return result
}
