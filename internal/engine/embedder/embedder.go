// Package embedder produces dense sentence embeddings from a pretrained
// ONNX model. It backs the optional embedding feature block that can join
// the feature union beside the bag-of-words and scalar blocks.
package embedder

import "fmt"

// Embedder produces vector embeddings from text.
type Embedder interface {
	Embed(text string) ([]float64, error)
	EmbedBatch(texts []string) ([][]float64, error)
	Dim() int
	Close() error
}

// ONNXEmbedder wraps the ONNX runtime and a WordPiece tokenizer. The
// embedding pipeline is tokenize → inference → mean pool over the
// attention mask.
type ONNXEmbedder struct {
	session *onnxSession
	tok     *wordpiece
}

// New creates an ONNXEmbedder by loading the ONNX model and vocabulary.
func New(modelPath, vocabPath string) (*ONNXEmbedder, error) {
	sess, err := newONNXSession(modelPath)
	if err != nil {
		return nil, fmt.Errorf("embedder: %w", err)
	}
	tok, err := newWordpiece(vocabPath)
	if err != nil {
		sess.close()
		return nil, fmt.Errorf("embedder: %w", err)
	}
	return &ONNXEmbedder{session: sess, tok: tok}, nil
}

// Dim returns the embedding dimensionality.
func (e *ONNXEmbedder) Dim() int {
	return int(e.session.embedDim)
}

// Embed produces a single embedding vector for the given text.
func (e *ONNXEmbedder) Embed(text string) ([]float64, error) {
	vecs, err := e.EmbedBatch([]string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

// EmbedBatch produces embedding vectors for multiple texts in one
// inference call.
func (e *ONNXEmbedder) EmbedBatch(texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	batch := e.tok.encodeBatch(texts)
	hidden, err := e.session.infer(
		batch.inputIDs, batch.attentionMask, batch.tokenTypeIDs,
		batch.batchSize, batch.seqLen,
	)
	if err != nil {
		return nil, fmt.Errorf("embedder: %w", err)
	}

	dim := e.session.embedDim
	pooled := meanPool(hidden, batch.attentionMask, batch.batchSize, batch.seqLen, dim)

	vecs := make([][]float64, batch.batchSize)
	for i := int64(0); i < batch.batchSize; i++ {
		row := pooled[i*dim : (i+1)*dim]
		vec := make([]float64, dim)
		for j, v := range row {
			vec[j] = float64(v)
		}
		vecs[i] = vec
	}
	return vecs, nil
}

// Close releases ONNX Runtime resources.
func (e *ONNXEmbedder) Close() error {
	if e.session != nil {
		return e.session.close()
	}
	return nil
}

// meanPool averages token vectors over the attention mask, per sequence.
func meanPool(hidden []float32, mask []int64, batchSize, seqLen, dim int64) []float32 {
	pooled := make([]float32, batchSize*dim)
	for b := int64(0); b < batchSize; b++ {
		var count float32
		for s := int64(0); s < seqLen; s++ {
			if mask[b*seqLen+s] == 0 {
				continue
			}
			count++
			base := (b*seqLen + s) * dim
			for d := int64(0); d < dim; d++ {
				pooled[b*dim+d] += hidden[base+d]
			}
		}
		if count == 0 {
			continue
		}
		for d := int64(0); d < dim; d++ {
			pooled[b*dim+d] /= count
		}
	}
	return pooled
}
