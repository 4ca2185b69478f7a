package eval

import (
	"errors"
	"math"
	"testing"

	"github.com/crimson-sun/sway/internal/pipeline"
)

func almost(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestNullAccuracyMajorityClass(t *testing.T) {
	yTrue := []string{"negative", "negative", "positive"}
	yPred := []string{"negative", "positive", "positive"}
	train := []string{"negative", "negative", "positive"}

	r, err := Evaluate(yTrue, yPred, train)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if r.MajorityLabel != "negative" {
		t.Errorf("MajorityLabel = %q, want %q", r.MajorityLabel, "negative")
	}
	if !almost(r.NullAccuracy, 2.0/3.0) {
		t.Errorf("NullAccuracy = %v, want 2/3", r.NullAccuracy)
	}
	if !almost(r.Accuracy, 2.0/3.0) {
		t.Errorf("Accuracy = %v, want 2/3", r.Accuracy)
	}
	if !almost(r.Lift, 0) {
		t.Errorf("Lift = %v, want 0", r.Lift)
	}
}

func TestConfusionMarginals(t *testing.T) {
	yTrue := []string{"negative", "neutral", "positive", "positive", "neutral", "negative", "positive"}
	yPred := []string{"negative", "positive", "positive", "neutral", "neutral", "neutral", "positive"}

	r, err := Evaluate(yTrue, yPred, yTrue)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	c := r.Confusion

	rowSum, colSum := 0, 0
	for _, l := range c.Labels() {
		rowSum += c.ActualTotal(l)
		colSum += c.PredictedTotal(l)
	}
	if rowSum != len(yTrue) {
		t.Errorf("row marginals sum to %d, want %d", rowSum, len(yTrue))
	}
	if colSum != len(yTrue) {
		t.Errorf("column marginals sum to %d, want %d", colSum, len(yTrue))
	}
	if c.Total() != len(yTrue) {
		t.Errorf("Total = %d, want %d", c.Total(), len(yTrue))
	}

	if got := c.Count("neutral", "positive"); got != 1 {
		t.Errorf("Count(neutral,positive) = %d, want 1", got)
	}
	if got := c.Count("positive", "positive"); got != 2 {
		t.Errorf("Count(positive,positive) = %d, want 2", got)
	}
}

func TestClassificationReport(t *testing.T) {
	// pos: tp=2 (predicted pos 3 times, actually pos 2 times -> fp=1);
	// neg: tp=2, fn=1.
	yTrue := []string{"pos", "pos", "neg", "neg", "neg"}
	yPred := []string{"pos", "pos", "pos", "neg", "neg"}

	r, err := Evaluate(yTrue, yPred, yTrue)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	byLabel := make(map[string]ClassMetrics, len(r.Classes))
	for _, m := range r.Classes {
		byLabel[m.Label] = m
	}

	neg := byLabel["neg"]
	if !almost(neg.Precision, 1.0) {
		t.Errorf("neg precision = %v, want 1", neg.Precision)
	}
	if !almost(neg.Recall, 2.0/3.0) {
		t.Errorf("neg recall = %v, want 2/3", neg.Recall)
	}
	if neg.Support != 3 {
		t.Errorf("neg support = %d, want 3", neg.Support)
	}

	pos := byLabel["pos"]
	if !almost(pos.Precision, 2.0/3.0) {
		t.Errorf("pos precision = %v, want 2/3", pos.Precision)
	}
	if !almost(pos.Recall, 1.0) {
		t.Errorf("pos recall = %v, want 1", pos.Recall)
	}

	if !almost(r.Micro.F1, r.Accuracy) {
		t.Errorf("micro F1 = %v, want accuracy %v", r.Micro.F1, r.Accuracy)
	}
	if r.Weighted.Support != 5 {
		t.Errorf("weighted support = %d, want 5", r.Weighted.Support)
	}
	wantWeightedRecall := (2.0/3.0*3 + 1.0*2) / 5
	if !almost(r.Weighted.Recall, wantWeightedRecall) {
		t.Errorf("weighted recall = %v, want %v", r.Weighted.Recall, wantWeightedRecall)
	}
}

func TestEvaluateLabelOnlyInPredictions(t *testing.T) {
	// A label the model invented still gets a report row with zero support.
	yTrue := []string{"pos", "neg"}
	yPred := []string{"neutral", "neg"}

	r, err := Evaluate(yTrue, yPred, yTrue)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	labels := r.Confusion.Labels()
	if len(labels) != 3 {
		t.Fatalf("expected 3 labels, got %v", labels)
	}
	for _, m := range r.Classes {
		if m.Label == "neutral" && m.Support != 0 {
			t.Errorf("neutral support = %d, want 0", m.Support)
		}
	}
}

func TestMajorityTieBreaksLexicographically(t *testing.T) {
	if got := majorityLabel([]string{"b", "a", "b", "a"}); got != "a" {
		t.Errorf("majorityLabel = %q, want %q", got, "a")
	}
}

func TestEvaluateErrors(t *testing.T) {
	if _, err := Evaluate([]string{"a"}, []string{"a", "b"}, []string{"a"}); !errors.Is(err, pipeline.ErrShapeMismatch) {
		t.Errorf("length mismatch: expected ErrShapeMismatch, got %v", err)
	}
	if _, err := Evaluate(nil, nil, []string{"a"}); !errors.Is(err, pipeline.ErrConfiguration) {
		t.Errorf("empty input: expected ErrConfiguration, got %v", err)
	}
	if _, err := Evaluate([]string{"a"}, []string{"a"}, nil); !errors.Is(err, pipeline.ErrConfiguration) {
		t.Errorf("no train labels: expected ErrConfiguration, got %v", err)
	}
}
