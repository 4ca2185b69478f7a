package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tweets.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestNewParsesRows(t *testing.T) {
	path := writeCSV(t, "id,text,label\n10,loving this,positive\n11,\"ugh, no\",negative\n")
	s, err := New(path, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	all, err := s.All(context.Background())
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 examples, got %d", len(all))
	}
	if all[1].Text != "ugh, no" || all[1].Label != "negative" {
		t.Errorf("unexpected second row: %+v", all[1])
	}
}

func TestNewNoHeader(t *testing.T) {
	path := writeCSV(t, "10,loving this,positive\n")
	s, err := New(path, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	all, err := s.All(context.Background())
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 1 || all[0].ID != "10" {
		t.Errorf("expected one row with id 10, got %+v", all)
	}
}

func TestNewFetchOmitsMissing(t *testing.T) {
	path := writeCSV(t, "1,a,positive\n2,b,negative\n")
	s, err := New(path, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := s.Fetch(context.Background(), []string{"2", "404"})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(got) != 1 || got[0].ID != "2" {
		t.Errorf("expected only id 2, got %+v", got)
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "absent.csv"), 0); err == nil {
		t.Error("expected error for missing file")
	}
	path := writeCSV(t, "")
	if _, err := New(path, 0); err == nil {
		t.Error("expected error for empty file")
	}
}
