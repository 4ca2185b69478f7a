// Package sway provides a tweet sentiment classification pipeline: text
// preprocessing, a bag-of-words feature union, and a logistic regression
// classifier, trained from labeled examples.
//
// Quick start:
//
//	s, err := sway.Train(examples, sway.WithSeed(42))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Close()
//
//	labels, _ := s.Predict([]string{"loving the new library!"})
//	fmt.Println(labels[0]) // positive
//
// A trained Sway instance is safe for concurrent prediction. Train once,
// reuse across requests. See the README for full documentation.
package sway
