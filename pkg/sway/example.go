package sway

// Example is one labeled document for training or evaluation.
type Example struct {
	ID    string
	Text  string
	Label string
}

// Sentiment labels used throughout the pipeline. Custom label sets work
// too; these are the conventional three.
const (
	LabelNegative = "negative"
	LabelNeutral  = "neutral"
	LabelPositive = "positive"
)

func texts(examples []Example) []string {
	out := make([]string, len(examples))
	for i, ex := range examples {
		out[i] = ex.Text
	}
	return out
}

func labels(examples []Example) []string {
	out := make([]string, len(examples))
	for i, ex := range examples {
		out[i] = ex.Label
	}
	return out
}
