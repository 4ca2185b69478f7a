// Package eval scores a prediction set against its true labels: accuracy,
// null accuracy, lift, a confusion matrix, and a per-class classification
// report. Purely deterministic computation over already-available
// predictions; no retries, no recovery.
package eval

import (
	"fmt"
	"sort"

	"github.com/crimson-sun/sway/internal/pipeline"
)

// ClassMetrics holds precision, recall, F1, and support for one label.
type ClassMetrics struct {
	Label     string
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// Result is a full evaluation of one prediction set.
type Result struct {
	Accuracy      float64
	NullAccuracy  float64 // accuracy of always predicting MajorityLabel
	Lift          float64 // Accuracy - NullAccuracy
	MajorityLabel string  // most frequent training label
	Total         int

	Confusion *Confusion
	Classes   []ClassMetrics
	Micro     ClassMetrics // micro average ("micro" label)
	Weighted  ClassMetrics // support-weighted average ("weighted" label)
}

// Evaluate scores predictions on a held-out set. trainLabels supplies the
// training-split label distribution from which the null baseline is taken.
func Evaluate(yTrue, yPred, trainLabels []string) (Result, error) {
	if len(yTrue) != len(yPred) {
		return Result{}, fmt.Errorf("%w: %d true labels vs %d predictions",
			pipeline.ErrShapeMismatch, len(yTrue), len(yPred))
	}
	if len(yTrue) == 0 {
		return Result{}, fmt.Errorf("%w: nothing to evaluate", pipeline.ErrConfiguration)
	}
	if len(trainLabels) == 0 {
		return Result{}, fmt.Errorf("%w: no training labels for the null baseline",
			pipeline.ErrConfiguration)
	}

	total := len(yTrue)
	correct := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			correct++
		}
	}
	accuracy := float64(correct) / float64(total)

	majority := majorityLabel(trainLabels)
	majorityHits := 0
	for _, l := range yTrue {
		if l == majority {
			majorityHits++
		}
	}
	null := float64(majorityHits) / float64(total)

	confusion := newConfusion(yTrue, yPred)

	classes := make([]ClassMetrics, 0, len(confusion.labels))
	var weighted ClassMetrics
	for _, label := range confusion.labels {
		m := classMetrics(confusion, label)
		classes = append(classes, m)
		weighted.Precision += m.Precision * float64(m.Support)
		weighted.Recall += m.Recall * float64(m.Support)
		weighted.F1 += m.F1 * float64(m.Support)
		weighted.Support += m.Support
	}
	weighted.Label = "weighted"
	weighted.Precision /= float64(total)
	weighted.Recall /= float64(total)
	weighted.F1 /= float64(total)

	// With one label per example, micro precision, recall, and F1 all
	// collapse to plain accuracy.
	micro := ClassMetrics{
		Label:     "micro",
		Precision: accuracy,
		Recall:    accuracy,
		F1:        accuracy,
		Support:   total,
	}

	return Result{
		Accuracy:      accuracy,
		NullAccuracy:  null,
		Lift:          accuracy - null,
		MajorityLabel: majority,
		Total:         total,
		Confusion:     confusion,
		Classes:       classes,
		Micro:         micro,
		Weighted:      weighted,
	}, nil
}

func classMetrics(c *Confusion, label string) ClassMetrics {
	tp := c.Count(label, label)
	predicted := c.PredictedTotal(label)
	actual := c.ActualTotal(label)

	m := ClassMetrics{Label: label, Support: actual}
	if predicted > 0 {
		m.Precision = float64(tp) / float64(predicted)
	}
	if actual > 0 {
		m.Recall = float64(tp) / float64(actual)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	return m
}

// majorityLabel returns the most frequent label; frequency ties break to
// the lexicographically smallest label so the baseline is deterministic.
func majorityLabel(labels []string) string {
	counts := make(map[string]int, 4)
	for _, l := range labels {
		counts[l]++
	}
	keys := make([]string, 0, len(counts))
	for l := range counts {
		keys = append(keys, l)
	}
	sort.Strings(keys)

	best, bestN := "", -1
	for _, l := range keys {
		if counts[l] > bestN {
			best, bestN = l, counts[l]
		}
	}
	return best
}
