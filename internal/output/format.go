package output

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/crimson-sun/sway/internal/eval"
)

// Render produces the text report: accuracy lines, the confusion matrix
// with marginal totals, and the per-class classification report. The format
// is for humans; nothing parses it.
func Render(r eval.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "accuracy:      %.4f\n", r.Accuracy)
	fmt.Fprintf(&b, "null accuracy: %.4f (always %q)\n", r.NullAccuracy, r.MajorityLabel)
	fmt.Fprintf(&b, "lift:          %+.4f\n", r.Lift)
	fmt.Fprintf(&b, "examples:      %d\n\n", r.Total)

	b.WriteString("confusion matrix (rows actual, columns predicted)\n")
	writeConfusion(&b, r.Confusion)

	b.WriteString("\nclassification report\n")
	writeReport(&b, r)

	return b.String()
}

func writeConfusion(b *strings.Builder, c *eval.Confusion) {
	w := tabwriter.NewWriter(b, 0, 0, 2, ' ', tabwriter.AlignRight)
	labels := c.Labels()

	fmt.Fprint(w, "\t")
	for _, l := range labels {
		fmt.Fprintf(w, "%s\t", l)
	}
	fmt.Fprint(w, "total\t\n")

	for _, actual := range labels {
		fmt.Fprintf(w, "%s\t", actual)
		for _, predicted := range labels {
			fmt.Fprintf(w, "%d\t", c.Count(actual, predicted))
		}
		fmt.Fprintf(w, "%d\t\n", c.ActualTotal(actual))
	}

	fmt.Fprint(w, "total\t")
	for _, l := range labels {
		fmt.Fprintf(w, "%d\t", c.PredictedTotal(l))
	}
	fmt.Fprintf(w, "%d\t\n", c.Total())
	w.Flush()
}

func writeReport(b *strings.Builder, r eval.Result) {
	w := tabwriter.NewWriter(b, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, "label\tprecision\trecall\tf1\tsupport\t\n")
	for _, m := range r.Classes {
		writeMetricsRow(w, m)
	}
	writeMetricsRow(w, r.Micro)
	writeMetricsRow(w, r.Weighted)
	w.Flush()
}

func writeMetricsRow(w *tabwriter.Writer, m eval.ClassMetrics) {
	fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.4f\t%d\t\n", m.Label, m.Precision, m.Recall, m.F1, m.Support)
}
