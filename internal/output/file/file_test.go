package file

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/crimson-sun/sway/internal/eval"
)

func testResult(t *testing.T) eval.Result {
	t.Helper()
	r, err := eval.Evaluate([]string{"pos", "neg"}, []string{"pos", "pos"}, []string{"pos", "neg"})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	return r
}

func TestWriteAndClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	o, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := o.Write(context.Background(), testResult(t)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := o.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(data), "accuracy:") {
		t.Errorf("report file missing accuracy line:\n%s", data)
	}
}

func TestAppendsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	for i := 0; i < 2; i++ {
		o, err := New(path)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if err := o.Write(context.Background(), testResult(t)); err != nil {
			t.Fatalf("Write: %v", err)
		}
		if err := o.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if got := strings.Count(string(data), "accuracy:"); got != 2 {
		t.Errorf("expected 2 appended reports, found %d", got)
	}
}
