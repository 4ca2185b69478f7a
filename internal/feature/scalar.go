package feature

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/crimson-sun/sway/internal/pipeline"
)

// Scalar wraps a plain func(string) float64 so it can serve as a Union
// block. It applies the function element-wise over the input documents and
// reshapes the result into a single-column matrix, one row per document,
// preserving input order. Stateless: fitting learns nothing.
//
// A deactivated Scalar returns a same-length zero column instead of
// computed values, so toggling the feature during a hyperparameter sweep
// never changes the matrix shape (zero is not guaranteed to be neutral for
// the downstream classifier).
type Scalar struct {
	fn     func(string) float64
	active bool
}

// NewScalar creates an active Scalar over fn.
func NewScalar(fn func(string) float64) *Scalar {
	return &Scalar{fn: fn, active: true}
}

// SetActive toggles whether the function is evaluated or zero-filled.
func (s *Scalar) SetActive(active bool) { s.active = active }

// Active reports whether the function is currently evaluated.
func (s *Scalar) Active() bool { return s.active }

// FitTransform is identical to Transform: there is no state to learn.
func (s *Scalar) FitTransform(b pipeline.Batch, _ []string) (pipeline.Batch, error) {
	return s.Transform(b)
}

// Transform produces the single-column feature matrix.
func (s *Scalar) Transform(b pipeline.Batch) (pipeline.Batch, error) {
	if b.Docs == nil {
		return pipeline.Batch{}, fmt.Errorf("%w: scalar feature needs documents, got a matrix",
			pipeline.ErrConfiguration)
	}
	x := mat.NewDense(len(b.Docs), 1, nil)
	if s.active {
		for i, doc := range b.Docs {
			x.Set(i, 0, s.fn(doc))
		}
	}
	return pipeline.FromMatrix(x), nil
}

// TextLength counts runes in a document. The stock auxiliary feature used
// beside the bag-of-words block.
func TextLength(doc string) float64 {
	return float64(len([]rune(doc)))
}
