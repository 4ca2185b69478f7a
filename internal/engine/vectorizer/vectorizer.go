// Package vectorizer turns token sequences into bag-of-words count
// matrices with a fixed learned vocabulary.
package vectorizer

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/crimson-sun/sway/internal/pipeline"
)

// Tokenizer converts raw text to a sequence of normalized tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// Option configures a Count vectorizer.
type Option func(*Count)

// WithMinDocFreq drops terms appearing in fewer than n documents during
// fitting. Default: 1 (keep everything).
func WithMinDocFreq(n int) Option {
	return func(c *Count) { c.minDocFreq = n }
}

// WithBinary records term presence (0/1) instead of occurrence counts.
func WithBinary() Option {
	return func(c *Count) { c.binary = true }
}

// Count is a bag-of-words vectorizer. FitTransform learns a vocabulary in
// sorted term order; Transform maps unseen tokens to nothing and never
// grows the vocabulary, so column identity is fixed after one fit.
type Count struct {
	tok        Tokenizer
	minDocFreq int
	binary     bool

	vocab map[string]int
	terms []string
}

// NewCount creates an unfitted Count vectorizer over the given tokenizer.
func NewCount(tok Tokenizer, opts ...Option) *Count {
	c := &Count{tok: tok, minDocFreq: 1}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Vocabulary returns the learned terms in column order.
func (c *Count) Vocabulary() []string {
	out := make([]string, len(c.terms))
	copy(out, c.terms)
	return out
}

// FitTransform learns the vocabulary from the documents and returns their
// count matrix.
func (c *Count) FitTransform(b pipeline.Batch, _ []string) (pipeline.Batch, error) {
	if b.Docs == nil {
		return pipeline.Batch{}, fmt.Errorf("%w: vectorizer needs documents, got a matrix",
			pipeline.ErrConfiguration)
	}

	df := make(map[string]int)
	tokenized := make([][]string, len(b.Docs))
	for i, doc := range b.Docs {
		tokens := c.tok.Tokenize(doc)
		tokenized[i] = tokens
		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for term, n := range df {
		if n >= c.minDocFreq {
			terms = append(terms, term)
		}
	}
	if len(terms) == 0 {
		return pipeline.Batch{}, fmt.Errorf("%w: no terms survived fitting", pipeline.ErrConfiguration)
	}
	sort.Strings(terms)

	c.terms = terms
	c.vocab = make(map[string]int, len(terms))
	for i, term := range terms {
		c.vocab[term] = i
	}

	return pipeline.FromMatrix(c.count(tokenized)), nil
}

// Transform vectorizes documents against the fitted vocabulary.
func (c *Count) Transform(b pipeline.Batch) (pipeline.Batch, error) {
	if c.vocab == nil {
		return pipeline.Batch{}, fmt.Errorf("%w: vectorizer is not fitted", pipeline.ErrConfiguration)
	}
	if b.Docs == nil {
		return pipeline.Batch{}, fmt.Errorf("%w: vectorizer needs documents, got a matrix",
			pipeline.ErrConfiguration)
	}
	tokenized := make([][]string, len(b.Docs))
	for i, doc := range b.Docs {
		tokenized[i] = c.tok.Tokenize(doc)
	}
	return pipeline.FromMatrix(c.count(tokenized)), nil
}

func (c *Count) count(tokenized [][]string) *mat.Dense {
	x := mat.NewDense(len(tokenized), len(c.terms), nil)
	for i, tokens := range tokenized {
		for _, tok := range tokens {
			j, ok := c.vocab[tok]
			if !ok {
				continue
			}
			if c.binary {
				x.Set(i, j, 1)
			} else {
				x.Set(i, j, x.At(i, j)+1)
			}
		}
	}
	return x
}
