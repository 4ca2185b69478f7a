package sway

import (
	"strings"
	"testing"
)

func trainingSet() []Example {
	return []Example{
		{ID: "1", Text: "love this great phone", Label: LabelPositive},
		{ID: "2", Text: "great day love it", Label: LabelPositive},
		{ID: "3", Text: "love love great stuff", Label: LabelPositive},
		{ID: "4", Text: "what a great launch love it", Label: LabelPositive},
		{ID: "5", Text: "hate this awful phone", Label: LabelNegative},
		{ID: "6", Text: "awful day hate it", Label: LabelNegative},
		{ID: "7", Text: "hate hate awful stuff", Label: LabelNegative},
		{ID: "8", Text: "what an awful launch hate it", Label: LabelNegative},
	}
}

func TestTrainAndPredict(t *testing.T) {
	s, err := Train(trainingSet(), WithSeed(7), WithEpochs(200))
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	defer s.Close()

	preds, err := s.Predict([]string{"love this great launch", "awful phone hate it"})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if preds[0] != LabelPositive {
		t.Errorf("preds[0] = %q, want %q", preds[0], LabelPositive)
	}
	if preds[1] != LabelNegative {
		t.Errorf("preds[1] = %q, want %q", preds[1], LabelNegative)
	}
}

func TestPredictOne(t *testing.T) {
	s, err := Train(trainingSet(), WithSeed(7), WithEpochs(200))
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	defer s.Close()

	label, err := s.PredictOne("great great love")
	if err != nil {
		t.Fatalf("PredictOne: %v", err)
	}
	if label != LabelPositive {
		t.Errorf("label = %q, want %q", label, LabelPositive)
	}
}

func TestClassesSorted(t *testing.T) {
	s, err := Train(trainingSet(), WithSeed(1))
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	defer s.Close()

	classes := s.Classes()
	if len(classes) != 2 || classes[0] != LabelNegative || classes[1] != LabelPositive {
		t.Errorf("Classes() = %v, want [negative positive]", classes)
	}
}

func TestFeatures(t *testing.T) {
	s, err := Train(trainingSet(), WithSeed(1))
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	defer s.Close()

	want := []string{FeatureCounts, FeatureLength}
	got := s.Features()
	if len(got) != len(want) {
		t.Fatalf("Features() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Features()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSetFeatureKeepsPredicting(t *testing.T) {
	s, err := Train(trainingSet(), WithSeed(7), WithEpochs(200))
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	defer s.Close()

	if err := s.SetFeature(FeatureLength, false); err != nil {
		t.Fatalf("SetFeature: %v", err)
	}
	if _, err := s.Predict([]string{"love it"}); err != nil {
		t.Fatalf("Predict after disabling feature: %v", err)
	}

	if err := s.SetFeature("unknown", false); err == nil {
		t.Fatal("expected error for unknown feature name")
	}
}

func TestEvaluate(t *testing.T) {
	s, err := Train(trainingSet(), WithSeed(7), WithEpochs(200))
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	defer s.Close()

	test := []Example{
		{Text: "love this great day", Label: LabelPositive},
		{Text: "hate this awful day", Label: LabelNegative},
	}
	rep, err := s.Evaluate(test)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	if rep.Examples != 2 {
		t.Errorf("Examples = %d, want 2", rep.Examples)
	}
	if rep.Accuracy != 1.0 {
		t.Errorf("Accuracy = %v, want 1.0", rep.Accuracy)
	}
	// Training labels are balanced, so the null baseline is 0.5 here.
	if rep.NullAccuracy != 0.5 {
		t.Errorf("NullAccuracy = %v, want 0.5", rep.NullAccuracy)
	}
	if rep.Lift != 0.5 {
		t.Errorf("Lift = %v, want 0.5", rep.Lift)
	}
	if !strings.Contains(rep.Text, "accuracy:") {
		t.Errorf("rendered report missing accuracy line:\n%s", rep.Text)
	}
	if len(rep.Classes) != 2 {
		t.Errorf("Classes = %v, want two entries", rep.Classes)
	}
}

func TestTrainEmpty(t *testing.T) {
	if _, err := Train(nil); err == nil {
		t.Fatal("expected error for empty training set")
	}
}

func TestTrainSingleClass(t *testing.T) {
	examples := []Example{
		{Text: "love it", Label: LabelPositive},
		{Text: "great", Label: LabelPositive},
	}
	if _, err := Train(examples); err == nil {
		t.Fatal("expected error for single-class training set")
	}
}

func TestTrainDeterministic(t *testing.T) {
	docs := []string{"love great day", "awful hate day", "love it so", "hate it so"}

	var first []string
	for i := 0; i < 2; i++ {
		s, err := Train(trainingSet(), WithSeed(99))
		if err != nil {
			t.Fatalf("Train: %v", err)
		}
		preds, err := s.Predict(docs)
		s.Close()
		if err != nil {
			t.Fatalf("Predict: %v", err)
		}
		if first == nil {
			first = preds
			continue
		}
		for j := range preds {
			if preds[j] != first[j] {
				t.Fatalf("run 2 pred[%d] = %q, differs from run 1 %q", j, preds[j], first[j])
			}
		}
	}
}
