// Package pipeline composes named fit/transform steps and a terminal
// predictor into a single fit/predict unit. Step order is fixed at
// construction; fitted state is written once by Fit and read thereafter.
package pipeline

import "fmt"

// Step is a non-terminal pipeline stage. FitTransform learns whatever state
// the step needs and returns the transformed batch; Transform reuses the
// state learned during fitting and must never re-fit.
type Step interface {
	FitTransform(b Batch, labels []string) (Batch, error)
	Transform(b Batch) (Batch, error)
}

// Predictor is the terminal stage: it consumes the fully transformed batch.
type Predictor interface {
	Fit(b Batch, labels []string) error
	Predict(b Batch) ([]string, error)
}

type namedStep struct {
	name string
	step Step
}

// Pipeline is an ordered list of named steps feeding a terminal predictor.
type Pipeline struct {
	steps    []namedStep
	terminal Predictor
	termName string
	fitted   bool
}

// New builds a Pipeline. Step names must be unique and non-empty, and the
// terminal predictor must be present; violations return ErrConfiguration.
func New(terminalName string, terminal Predictor) (*Pipeline, error) {
	if terminal == nil {
		return nil, fmt.Errorf("%w: nil terminal step", ErrConfiguration)
	}
	if terminalName == "" {
		return nil, fmt.Errorf("%w: empty terminal step name", ErrConfiguration)
	}
	return &Pipeline{terminal: terminal, termName: terminalName}, nil
}

// Append adds a named step to the end of the non-terminal chain.
func (p *Pipeline) Append(name string, step Step) error {
	if step == nil {
		return fmt.Errorf("%w: nil step %q", ErrConfiguration, name)
	}
	if name == "" {
		return fmt.Errorf("%w: empty step name", ErrConfiguration)
	}
	if name == p.termName {
		return fmt.Errorf("%w: step name %q collides with terminal", ErrConfiguration, name)
	}
	for _, s := range p.steps {
		if s.name == name {
			return fmt.Errorf("%w: duplicate step name %q", ErrConfiguration, name)
		}
	}
	p.steps = append(p.steps, namedStep{name: name, step: step})
	return nil
}

// Steps returns the step names in execution order, terminal last.
func (p *Pipeline) Steps() []string {
	names := make([]string, 0, len(p.steps)+1)
	for _, s := range p.steps {
		names = append(names, s.name)
	}
	return append(names, p.termName)
}

// Fit threads FitTransform through every non-terminal step in order, then
// fits the terminal predictor on the final batch. Each step must preserve
// the row count of its input.
func (p *Pipeline) Fit(docs, labels []string) error {
	if len(p.steps) == 0 {
		return fmt.Errorf("%w: pipeline has no feature steps", ErrConfiguration)
	}
	if len(docs) == 0 {
		return fmt.Errorf("%w: empty training set", ErrConfiguration)
	}
	if len(docs) != len(labels) {
		return fmt.Errorf("%w: %d documents vs %d labels", ErrShapeMismatch, len(docs), len(labels))
	}

	b := FromDocs(docs)
	for _, s := range p.steps {
		out, err := s.step.FitTransform(b, labels)
		if err != nil {
			return fmt.Errorf("fit step %q: %w", s.name, err)
		}
		if out.Rows() != b.Rows() {
			return fmt.Errorf("%w: step %q emitted %d rows for %d inputs",
				ErrShapeMismatch, s.name, out.Rows(), b.Rows())
		}
		b = out
	}

	if err := p.terminal.Fit(b, labels); err != nil {
		return fmt.Errorf("fit step %q: %w", p.termName, err)
	}
	p.fitted = true
	return nil
}

// Predict applies every step's Transform in fit order, then asks the
// terminal predictor for labels. The pipeline must have been fitted.
func (p *Pipeline) Predict(docs []string) ([]string, error) {
	if len(docs) == 0 {
		return []string{}, nil
	}
	b, err := p.transform(docs)
	if err != nil {
		return nil, err
	}
	preds, err := p.terminal.Predict(b)
	if err != nil {
		return nil, fmt.Errorf("predict step %q: %w", p.termName, err)
	}
	if len(preds) != len(docs) {
		return nil, fmt.Errorf("%w: terminal %q predicted %d labels for %d inputs",
			ErrShapeMismatch, p.termName, len(preds), len(docs))
	}
	return preds, nil
}

// Transform runs the non-terminal chain only, returning the feature batch
// the terminal predictor would see.
func (p *Pipeline) Transform(docs []string) (Batch, error) {
	return p.transform(docs)
}

func (p *Pipeline) transform(docs []string) (Batch, error) {
	if !p.fitted {
		return Batch{}, fmt.Errorf("%w: pipeline is not fitted", ErrConfiguration)
	}
	b := FromDocs(docs)
	for _, s := range p.steps {
		out, err := s.step.Transform(b)
		if err != nil {
			return Batch{}, fmt.Errorf("transform step %q: %w", s.name, err)
		}
		if out.Rows() != b.Rows() {
			return Batch{}, fmt.Errorf("%w: step %q emitted %d rows for %d inputs",
				ErrShapeMismatch, s.name, out.Rows(), b.Rows())
		}
		b = out
	}
	return b, nil
}
