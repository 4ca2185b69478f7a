package model

// Sentiment labels used by the bundled datasets. Labels are plain strings,
// so callers may train on any categorical set.
const (
	LabelNegative = "negative"
	LabelNeutral  = "neutral"
	LabelPositive = "positive"
)

// Example is one labeled social-media post. Immutable once fetched.
type Example struct {
	ID    string
	Text  string
	Label string
}

// Texts projects the text column of a slice of examples, preserving order.
func Texts(examples []Example) []string {
	texts := make([]string, len(examples))
	for i, ex := range examples {
		texts[i] = ex.Text
	}
	return texts
}

// Labels projects the label column of a slice of examples, preserving order.
func Labels(examples []Example) []string {
	labels := make([]string, len(examples))
	for i, ex := range examples {
		labels[i] = ex.Label
	}
	return labels
}
