package embedder

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/crimson-sun/sway/internal/pipeline"
)

// Feature adapts an Embedder into a union block: each document becomes one
// row of embedding values. The model is pretrained, so fitting learns
// nothing.
type Feature struct {
	emb Embedder
}

// NewFeature wraps the given embedder as a pipeline step.
func NewFeature(emb Embedder) *Feature {
	return &Feature{emb: emb}
}

// FitTransform is identical to Transform: the embedder is pretrained.
func (f *Feature) FitTransform(b pipeline.Batch, _ []string) (pipeline.Batch, error) {
	return f.Transform(b)
}

// Transform embeds every document into a row of the output matrix.
func (f *Feature) Transform(b pipeline.Batch) (pipeline.Batch, error) {
	if b.Docs == nil {
		return pipeline.Batch{}, fmt.Errorf("%w: embedding feature needs documents, got a matrix",
			pipeline.ErrConfiguration)
	}
	vecs, err := f.emb.EmbedBatch(b.Docs)
	if err != nil {
		return pipeline.Batch{}, err
	}

	x := mat.NewDense(len(b.Docs), f.emb.Dim(), nil)
	for i, vec := range vecs {
		x.SetRow(i, vec)
	}
	return pipeline.FromMatrix(x), nil
}
