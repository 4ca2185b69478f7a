package sway

type options struct {
	stopwords  []string
	minDocFreq int
	binary     bool
	textLength bool

	embedModelPath string
	embedVocabPath string

	learningRate float64
	epochs       int
	batchSize    int
	l2           float64
	seed         int64
}

// Option configures training.
type Option func(*options)

// WithStopwords sets tokens to drop during tokenization. Default: none.
func WithStopwords(words []string) Option {
	return func(o *options) {
		o.stopwords = words
	}
}

// WithMinDocFreq sets the minimum number of documents a term must appear
// in to enter the vocabulary. Default: 1.
func WithMinDocFreq(n int) Option {
	return func(o *options) {
		o.minDocFreq = n
	}
}

// WithBinaryCounts makes the bag-of-words block record term presence
// instead of term frequency.
func WithBinaryCounts() Option {
	return func(o *options) {
		o.binary = true
	}
}

// WithTextLength toggles the document-length feature block. Default: on.
func WithTextLength(enabled bool) Option {
	return func(o *options) {
		o.textLength = enabled
	}
}

// WithEmbedding adds a dense sentence-embedding feature block backed by
// the ONNX model and WordPiece vocabulary at the given paths. Instances
// trained with an embedding must be Closed to release runtime resources.
func WithEmbedding(modelPath, vocabPath string) Option {
	return func(o *options) {
		o.embedModelPath = modelPath
		o.embedVocabPath = vocabPath
	}
}

// WithLearningRate sets the gradient descent step size. Default: 0.1.
func WithLearningRate(lr float64) Option {
	return func(o *options) {
		o.learningRate = lr
	}
}

// WithEpochs sets the number of training passes. Default: 100.
func WithEpochs(n int) Option {
	return func(o *options) {
		o.epochs = n
	}
}

// WithBatchSize sets the mini-batch size. Default: 32.
func WithBatchSize(n int) Option {
	return func(o *options) {
		o.batchSize = n
	}
}

// WithL2 sets the L2 regularization strength. Default: 1e-4.
func WithL2(l2 float64) Option {
	return func(o *options) {
		o.l2 = l2
	}
}

// WithSeed fixes the random seed for weight initialization and shuffling,
// making training deterministic. Default: 1.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

func defaultOptions() options {
	return options{
		minDocFreq:   1,
		textLength:   true,
		learningRate: 0.1,
		epochs:       100,
		batchSize:    32,
		l2:           1e-4,
		seed:         1,
	}
}
