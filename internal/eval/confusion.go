package eval

import "sort"

// Confusion is a confusion matrix indexed by (actual, predicted) label over
// the sorted union of observed labels.
type Confusion struct {
	labels []string
	index  map[string]int
	counts [][]int
	total  int
}

func newConfusion(yTrue, yPred []string) *Confusion {
	seen := make(map[string]bool)
	var labels []string
	for _, ys := range [][]string{yTrue, yPred} {
		for _, l := range ys {
			if !seen[l] {
				seen[l] = true
				labels = append(labels, l)
			}
		}
	}
	sort.Strings(labels)

	index := make(map[string]int, len(labels))
	for i, l := range labels {
		index[l] = i
	}
	counts := make([][]int, len(labels))
	for i := range counts {
		counts[i] = make([]int, len(labels))
	}

	c := &Confusion{labels: labels, index: index, counts: counts}
	for i := range yTrue {
		c.counts[index[yTrue[i]]][index[yPred[i]]]++
		c.total++
	}
	return c
}

// Labels returns the matrix axis labels in order.
func (c *Confusion) Labels() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out
}

// Count returns the number of examples with the given actual and predicted
// labels. Unknown labels count zero.
func (c *Confusion) Count(actual, predicted string) int {
	i, ok := c.index[actual]
	if !ok {
		return 0
	}
	j, ok := c.index[predicted]
	if !ok {
		return 0
	}
	return c.counts[i][j]
}

// ActualTotal returns the row marginal: how many examples truly carry the label.
func (c *Confusion) ActualTotal(label string) int {
	i, ok := c.index[label]
	if !ok {
		return 0
	}
	sum := 0
	for _, n := range c.counts[i] {
		sum += n
	}
	return sum
}

// PredictedTotal returns the column marginal: how many examples were
// predicted as the label.
func (c *Confusion) PredictedTotal(label string) int {
	j, ok := c.index[label]
	if !ok {
		return 0
	}
	sum := 0
	for i := range c.counts {
		sum += c.counts[i][j]
	}
	return sum
}

// Total returns the number of scored examples.
func (c *Confusion) Total() int { return c.total }
