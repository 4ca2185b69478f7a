package sway

import (
	"github.com/crimson-sun/sway/internal/eval"
	"github.com/crimson-sun/sway/internal/output"
)

// ClassMetrics holds precision, recall, F1, and support for one label.
type ClassMetrics struct {
	Label     string
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// Report summarizes an evaluation run. Text holds the rendered plain-text
// report with the confusion matrix and per-class table.
type Report struct {
	Accuracy      float64
	NullAccuracy  float64
	Lift          float64
	MajorityLabel string
	Examples      int

	Classes []ClassMetrics
	Text    string
}

func reportFromResult(res eval.Result) Report {
	classes := make([]ClassMetrics, len(res.Classes))
	for i, c := range res.Classes {
		classes[i] = ClassMetrics{
			Label:     c.Label,
			Precision: c.Precision,
			Recall:    c.Recall,
			F1:        c.F1,
			Support:   c.Support,
		}
	}
	return Report{
		Accuracy:      res.Accuracy,
		NullAccuracy:  res.NullAccuracy,
		Lift:          res.Lift,
		MajorityLabel: res.MajorityLabel,
		Examples:      res.Total,
		Classes:       classes,
		Text:          output.Render(res),
	}
}
