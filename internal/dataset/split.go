// Package dataset splits an ordered collection of examples into disjoint
// training and test subsets.
package dataset

import (
	"fmt"
	"math/rand"

	"github.com/crimson-sun/sway/internal/model"
	"github.com/crimson-sun/sway/internal/pipeline"
)

// Split partitions examples into train and test slices by a seeded
// pseudo-random permutation. The same seed and ratio always produce the
// same partition; the two slices are disjoint and cover the input.
func Split(examples []model.Example, testRatio float64, seed int64) (train, test []model.Example, err error) {
	if testRatio < 0 || testRatio >= 1 {
		return nil, nil, fmt.Errorf("%w: test ratio %v outside [0,1)", pipeline.ErrConfiguration, testRatio)
	}
	n := len(examples)
	nTest := int(float64(n) * testRatio)

	perm := rand.New(rand.NewSource(seed)).Perm(n)
	test = make([]model.Example, 0, nTest)
	train = make([]model.Example, 0, n-nTest)
	for i, idx := range perm {
		if i < nTest {
			test = append(test, examples[idx])
		} else {
			train = append(train, examples[idx])
		}
	}
	return train, test, nil
}
