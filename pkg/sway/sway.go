package sway

import (
	"fmt"

	"github.com/crimson-sun/sway/internal/engine/classifier"
	"github.com/crimson-sun/sway/internal/engine/embedder"
	"github.com/crimson-sun/sway/internal/engine/tokenizer"
	"github.com/crimson-sun/sway/internal/engine/vectorizer"
	"github.com/crimson-sun/sway/internal/eval"
	"github.com/crimson-sun/sway/internal/feature"
	"github.com/crimson-sun/sway/internal/pipeline"
)

// Feature block names accepted by SetFeature.
const (
	FeatureCounts    = "counts"
	FeatureLength    = "length"
	FeatureEmbedding = "embedding"
)

// Sway is a trained sentiment classification pipeline. Safe for concurrent
// prediction; SetFeature must not race with Predict.
type Sway struct {
	pipe        *pipeline.Pipeline
	union       *feature.Union
	clf         *classifier.LogisticRegression
	emb         embedder.Embedder
	trainLabels []string
}

// Train builds the full pipeline (preprocessing, feature union, logistic
// regression) and fits it on the given examples. Training is deterministic
// for a fixed seed.
func Train(examples []Example, opts ...Option) (*Sway, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var emb embedder.Embedder
	if o.embedModelPath != "" {
		e, err := embedder.New(o.embedModelPath, o.embedVocabPath)
		if err != nil {
			return nil, fmt.Errorf("sway: %w", err)
		}
		emb = e
	}

	s, err := assemble(o, emb)
	if err != nil {
		if emb != nil {
			emb.Close()
		}
		return nil, fmt.Errorf("sway: %w", err)
	}

	s.trainLabels = labels(examples)
	if err := s.pipe.Fit(texts(examples), s.trainLabels); err != nil {
		s.Close()
		return nil, fmt.Errorf("sway: %w", err)
	}
	return s, nil
}

func assemble(o options, emb embedder.Embedder) (*Sway, error) {
	tok := tokenizer.New(o.stopwords)

	vecOpts := []vectorizer.Option{vectorizer.WithMinDocFreq(o.minDocFreq)}
	if o.binary {
		vecOpts = append(vecOpts, vectorizer.WithBinary())
	}

	blocks := []feature.Block{
		{Name: FeatureCounts, Step: vectorizer.NewCount(tok, vecOpts...), Active: true},
		{Name: FeatureLength, Step: feature.NewScalar(feature.TextLength), Active: o.textLength},
	}
	if emb != nil {
		blocks = append(blocks, feature.Block{
			Name:   FeatureEmbedding,
			Step:   embedder.NewFeature(emb),
			Active: true,
		})
	}

	union, err := feature.NewUnion(blocks...)
	if err != nil {
		return nil, err
	}

	clf := classifier.New(
		classifier.WithLearningRate(o.learningRate),
		classifier.WithEpochs(o.epochs),
		classifier.WithBatchSize(o.batchSize),
		classifier.WithL2(o.l2),
		classifier.WithSeed(o.seed),
	)

	pipe, err := pipeline.New("classifier", clf)
	if err != nil {
		return nil, err
	}
	pre := tokenizer.NewPreprocessor(tokenizer.ReplaceMentions, tokenizer.ReplaceURLs)
	if err := pipe.Append("preprocess", pre); err != nil {
		return nil, err
	}
	if err := pipe.Append("features", union); err != nil {
		return nil, err
	}

	return &Sway{pipe: pipe, union: union, clf: clf, emb: emb}, nil
}

// Predict classifies a batch of documents.
func (s *Sway) Predict(docs []string) ([]string, error) {
	return s.pipe.Predict(docs)
}

// PredictOne classifies a single document.
func (s *Sway) PredictOne(text string) (string, error) {
	out, err := s.pipe.Predict([]string{text})
	if err != nil {
		return "", err
	}
	return out[0], nil
}

// Classes returns the label set the classifier was trained on, sorted.
func (s *Sway) Classes() []string {
	return s.clf.Classes()
}

// Features returns the feature block names in column order.
func (s *Sway) Features() []string {
	return s.union.Blocks()
}

// SetFeature enables or disables a feature block by name. Disabled blocks
// contribute zero columns of their fitted width, so the trained classifier
// keeps working.
func (s *Sway) SetFeature(name string, active bool) error {
	if err := s.union.SetActive(name, active); err != nil {
		return fmt.Errorf("sway: %w", err)
	}
	return nil
}

// Evaluate scores the trained pipeline on a held-out set. The null
// baseline comes from the training label distribution.
func (s *Sway) Evaluate(test []Example) (Report, error) {
	preds, err := s.Predict(texts(test))
	if err != nil {
		return Report{}, err
	}
	res, err := eval.Evaluate(labels(test), preds, s.trainLabels)
	if err != nil {
		return Report{}, fmt.Errorf("sway: %w", err)
	}
	return reportFromResult(res), nil
}

// Close releases embedding model resources. Instances trained without
// WithEmbedding hold none, and Close is a no-op.
func (s *Sway) Close() error {
	if s.emb != nil {
		return s.emb.Close()
	}
	return nil
}
