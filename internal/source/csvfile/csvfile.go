// Package csvfile provides a Source reading id,text,label rows from a CSV
// file on disk.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/crimson-sun/sway/internal/model"
	"github.com/crimson-sun/sway/internal/source"
	"github.com/crimson-sun/sway/internal/source/memory"
)

func init() {
	source.Register("csvfile", func(cfg source.Config) (source.Source, error) {
		return New(cfg.Path, cfg.PageSize)
	})
}

// New loads the CSV file at path and returns a memory-backed Source over
// its rows. The expected columns are id,text,label; a header row whose
// first field is "id" is skipped.
func New(path string, pageSize int) (source.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csvfile source: %w", err)
	}
	defer f.Close()

	examples, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("csvfile source: %s: %w", path, err)
	}
	return memory.New(examples, pageSize), nil
}

func parse(r io.Reader) ([]model.Example, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3

	var examples []model.Example
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if strings.EqualFold(record[0], "id") && len(examples) == 0 {
			continue
		}
		examples = append(examples, model.Example{
			ID:    record[0],
			Text:  record[1],
			Label: record[2],
		})
	}
	if len(examples) == 0 {
		return nil, fmt.Errorf("no example rows")
	}
	return examples, nil
}
