// Package classifier implements the terminal pipeline step: multinomial
// logistic regression over a feature matrix, trained with mini-batch
// gradient descent.
package classifier

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/crimson-sun/sway/internal/pipeline"
)

// Option configures a LogisticRegression.
type Option func(*LogisticRegression)

// WithLearningRate sets the gradient descent step size. Default: 0.1.
func WithLearningRate(lr float64) Option {
	return func(m *LogisticRegression) { m.lr = lr }
}

// WithEpochs sets the number of passes over the training set. Default: 100.
func WithEpochs(n int) Option {
	return func(m *LogisticRegression) { m.epochs = n }
}

// WithBatchSize sets the mini-batch size. Default: 32.
func WithBatchSize(n int) Option {
	return func(m *LogisticRegression) { m.batchSize = n }
}

// WithL2 sets the L2 regularization strength. Default: 1e-4.
func WithL2(l2 float64) Option {
	return func(m *LogisticRegression) { m.l2 = l2 }
}

// WithSeed sets the seed for weight initialization and batch shuffling, so
// training is reproducible. Default: 1.
func WithSeed(seed int64) Option {
	return func(m *LogisticRegression) { m.seed = seed }
}

// LogisticRegression is a multinomial (softmax) classifier. Fit writes the
// learned coefficients exactly once; Predict and PredictProba read them
// without mutation, so a fitted model is safe for concurrent prediction.
type LogisticRegression struct {
	lr        float64
	epochs    int
	batchSize int
	l2        float64
	seed      int64

	classes []string
	weights *mat.Dense // features x classes
	bias    []float64  // per class
}

// New creates an unfitted LogisticRegression.
func New(opts ...Option) *LogisticRegression {
	m := &LogisticRegression{
		lr:        0.1,
		epochs:    100,
		batchSize: 32,
		l2:        1e-4,
		seed:      1,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Classes returns the label set in column order, fixed at fit time.
func (m *LogisticRegression) Classes() []string {
	out := make([]string, len(m.classes))
	copy(out, m.classes)
	return out
}

// Fit trains the model on the feature matrix and its labels.
func (m *LogisticRegression) Fit(b pipeline.Batch, labels []string) error {
	if b.X == nil {
		return fmt.Errorf("%w: classifier needs a feature matrix, got documents",
			pipeline.ErrConfiguration)
	}
	rows, features := b.X.Dims()
	if rows != len(labels) {
		return fmt.Errorf("%w: %d feature rows vs %d labels",
			pipeline.ErrShapeMismatch, rows, len(labels))
	}

	classes, y := encodeLabels(labels)
	if len(classes) < 2 {
		return fmt.Errorf("%w: need at least 2 classes, got %d",
			pipeline.ErrConfiguration, len(classes))
	}
	k := len(classes)

	rng := rand.New(rand.NewSource(m.seed))
	weights := mat.NewDense(features, k, nil)
	for f := 0; f < features; f++ {
		for j := 0; j < k; j++ {
			weights.Set(f, j, rng.NormFloat64()*0.01)
		}
	}
	bias := make([]float64, k)

	indices := make([]int, rows)
	for i := range indices {
		indices[i] = i
	}

	batchSize := m.batchSize
	if batchSize <= 0 || batchSize > rows {
		batchSize = rows
	}

	gradW := mat.NewDense(features, k, nil)
	gradB := make([]float64, k)
	probs := make([]float64, k)

	for ep := 0; ep < m.epochs; ep++ {
		rng.Shuffle(rows, func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})

		for start := 0; start < rows; start += batchSize {
			end := start + batchSize
			if end > rows {
				end = rows
			}
			batch := indices[start:end]
			n := float64(len(batch))

			gradW.Zero()
			for j := range gradB {
				gradB[j] = 0
			}

			for _, i := range batch {
				row := b.X.RawRowView(i)
				m.softmaxInto(probs, row, weights, bias)
				for j := 0; j < k; j++ {
					d := probs[j]
					if j == y[i] {
						d -= 1
					}
					gradB[j] += d
					for f := 0; f < features; f++ {
						gradW.Set(f, j, gradW.At(f, j)+d*row[f])
					}
				}
			}

			for j := 0; j < k; j++ {
				bias[j] -= m.lr * gradB[j] / n
				for f := 0; f < features; f++ {
					g := gradW.At(f, j)/n + m.l2*weights.At(f, j)
					weights.Set(f, j, weights.At(f, j)-m.lr*g)
				}
			}
		}
	}

	m.classes = classes
	m.weights = weights
	m.bias = bias
	return nil
}

// Predict returns the most probable class label per row.
func (m *LogisticRegression) Predict(b pipeline.Batch) ([]string, error) {
	proba, err := m.PredictProba(b)
	if err != nil {
		return nil, err
	}
	rows, k := proba.Dims()
	preds := make([]string, rows)
	for i := 0; i < rows; i++ {
		best, bestP := 0, proba.At(i, 0)
		for j := 1; j < k; j++ {
			if p := proba.At(i, j); p > bestP {
				best, bestP = j, p
			}
		}
		preds[i] = m.classes[best]
	}
	return preds, nil
}

// PredictProba returns the per-class probability matrix, columns ordered as
// Classes().
func (m *LogisticRegression) PredictProba(b pipeline.Batch) (*mat.Dense, error) {
	if m.weights == nil {
		return nil, fmt.Errorf("%w: classifier is not fitted", pipeline.ErrConfiguration)
	}
	if b.X == nil {
		return nil, fmt.Errorf("%w: classifier needs a feature matrix, got documents",
			pipeline.ErrConfiguration)
	}
	rows, features := b.X.Dims()
	wf, k := m.weights.Dims()
	if features != wf {
		return nil, fmt.Errorf("%w: %d feature columns, model fitted with %d",
			pipeline.ErrShapeMismatch, features, wf)
	}

	proba := mat.NewDense(rows, k, nil)
	probs := make([]float64, k)
	for i := 0; i < rows; i++ {
		m.softmaxInto(probs, b.X.RawRowView(i), m.weights, m.bias)
		proba.SetRow(i, probs)
	}
	return proba, nil
}

// softmaxInto writes class probabilities for one feature row into dst.
func (m *LogisticRegression) softmaxInto(dst, row []float64, weights *mat.Dense, bias []float64) {
	k := len(dst)
	features := len(row)

	maxScore := math.Inf(-1)
	for j := 0; j < k; j++ {
		s := bias[j]
		for f := 0; f < features; f++ {
			s += weights.At(f, j) * row[f]
		}
		dst[j] = s
		if s > maxScore {
			maxScore = s
		}
	}

	sum := 0.0
	for j := 0; j < k; j++ {
		dst[j] = math.Exp(dst[j] - maxScore)
		sum += dst[j]
	}
	for j := 0; j < k; j++ {
		dst[j] /= sum
	}
}

// encodeLabels returns the sorted unique label set and each row's class index.
func encodeLabels(labels []string) ([]string, []int) {
	seen := make(map[string]bool, len(labels))
	var classes []string
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			classes = append(classes, l)
		}
	}
	sort.Strings(classes)

	index := make(map[string]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}
	y := make([]int, len(labels))
	for i, l := range labels {
		y[i] = index[l]
	}
	return classes, y
}
