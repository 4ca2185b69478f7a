package pipeline

import "gonum.org/v1/gonum/mat"

// Batch carries one set of examples through the pipeline. Early steps work
// on raw documents; feature steps replace the documents with a numeric
// matrix whose rows match the documents they came from. Exactly one of the
// two representations is set at any point.
type Batch struct {
	Docs []string
	X    *mat.Dense
}

// FromDocs wraps raw documents in a Batch.
func FromDocs(docs []string) Batch {
	return Batch{Docs: docs}
}

// FromMatrix wraps a feature matrix in a Batch.
func FromMatrix(x *mat.Dense) Batch {
	return Batch{X: x}
}

// Rows returns the number of examples in the batch.
func (b Batch) Rows() int {
	if b.X != nil {
		r, _ := b.X.Dims()
		return r
	}
	return len(b.Docs)
}

// Cols returns the feature width, or 0 while the batch still holds documents.
func (b Batch) Cols() int {
	if b.X == nil {
		return 0
	}
	_, c := b.X.Dims()
	return c
}
