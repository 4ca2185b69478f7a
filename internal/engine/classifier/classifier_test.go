package classifier

import (
	"errors"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/crimson-sun/sway/internal/pipeline"
)

// separable builds a trivially separable two-feature dataset: class "pos"
// has feature 0 high, class "neg" has feature 1 high.
func separable() (pipeline.Batch, []string) {
	x := mat.NewDense(8, 2, []float64{
		3, 0,
		4, 1,
		5, 0,
		3, 1,
		0, 3,
		1, 4,
		0, 5,
		1, 3,
	})
	labels := []string{"pos", "pos", "pos", "pos", "neg", "neg", "neg", "neg"}
	return pipeline.FromMatrix(x), labels
}

func TestFitPredictSeparable(t *testing.T) {
	b, labels := separable()
	m := New(WithEpochs(200), WithSeed(7))
	if err := m.Fit(b, labels); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	preds, err := m.Predict(b)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	for i, p := range preds {
		if p != labels[i] {
			t.Errorf("row %d: expected %q, got %q", i, labels[i], p)
		}
	}
}

func TestClassesSorted(t *testing.T) {
	b, _ := separable()
	labels := []string{"neutral", "positive", "negative", "neutral", "positive", "negative", "neutral", "positive"}
	m := New(WithEpochs(5))
	if err := m.Fit(b, labels); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	want := []string{"negative", "neutral", "positive"}
	if got := m.Classes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Classes = %v, want %v", got, want)
	}
}

func TestPredictProbaRowsSumToOne(t *testing.T) {
	b, labels := separable()
	m := New(WithEpochs(50))
	if err := m.Fit(b, labels); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	proba, err := m.PredictProba(b)
	if err != nil {
		t.Fatalf("PredictProba: %v", err)
	}
	rows, k := proba.Dims()
	if k != 2 {
		t.Fatalf("expected 2 classes, got %d", k)
	}
	for i := 0; i < rows; i++ {
		sum := 0.0
		for j := 0; j < k; j++ {
			sum += proba.At(i, j)
		}
		if sum < 0.999 || sum > 1.001 {
			t.Errorf("row %d: probabilities sum to %v", i, sum)
		}
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	b, labels := separable()

	train := func() *mat.Dense {
		m := New(WithEpochs(20), WithSeed(42))
		if err := m.Fit(b, labels); err != nil {
			t.Fatalf("Fit: %v", err)
		}
		proba, err := m.PredictProba(b)
		if err != nil {
			t.Fatalf("PredictProba: %v", err)
		}
		return proba
	}

	if !mat.Equal(train(), train()) {
		t.Error("two runs with the same seed diverged")
	}
}

func TestFitErrors(t *testing.T) {
	m := New()
	if err := m.Fit(pipeline.FromDocs([]string{"a"}), []string{"x"}); !errors.Is(err, pipeline.ErrConfiguration) {
		t.Errorf("docs input: expected ErrConfiguration, got %v", err)
	}

	x := mat.NewDense(2, 1, []float64{1, 2})
	if err := m.Fit(pipeline.FromMatrix(x), []string{"x"}); !errors.Is(err, pipeline.ErrShapeMismatch) {
		t.Errorf("label mismatch: expected ErrShapeMismatch, got %v", err)
	}
	if err := m.Fit(pipeline.FromMatrix(x), []string{"x", "x"}); !errors.Is(err, pipeline.ErrConfiguration) {
		t.Errorf("single class: expected ErrConfiguration, got %v", err)
	}
}

func TestPredictErrors(t *testing.T) {
	m := New()
	if _, err := m.Predict(pipeline.FromMatrix(mat.NewDense(1, 1, nil))); !errors.Is(err, pipeline.ErrConfiguration) {
		t.Errorf("unfitted: expected ErrConfiguration, got %v", err)
	}

	b, labels := separable()
	if err := m.Fit(b, labels); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	wrong := pipeline.FromMatrix(mat.NewDense(2, 3, nil))
	if _, err := m.Predict(wrong); !errors.Is(err, pipeline.ErrShapeMismatch) {
		t.Errorf("wrong width: expected ErrShapeMismatch, got %v", err)
	}
}
