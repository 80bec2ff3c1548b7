// Package dataset persists and loads example splits as JSONL: one compact
// JSON object per line. The persisted file is the canonical representation;
// nothing holds authoritative state after a split is written.
package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/synthia-dev/datasetforge/types"
)

// Split names used by the assembly pipeline.
const (
	SplitTrain      = "train"
	SplitValidation = "valid"
)

// Record is one line read back from a JSONL file, carrying its 1-based line
// number for error reporting.
type Record struct {
	Line    int
	Example types.Example
	Err     error
	Raw     string
}

// WriteJSONL writes one JSON object per line to path, creating parent
// directories as needed.
func WriteJSONL(path string, examples []types.Example) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for i, ex := range examples {
		if err := enc.Encode(ex); err != nil {
			return fmt.Errorf("encoding example %d: %w", i, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ReadJSONL parses every line of path into a Record. Lines that fail to
// parse are returned with a non-nil Err rather than aborting the read, so
// the validator can report them all. Blank lines are skipped.
func ReadJSONL(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return readRecords(f)
}

func readRecords(r io.Reader) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Text()
		if len(raw) == 0 {
			continue
		}
		rec := Record{Line: line, Raw: raw}
		if err := json.Unmarshal([]byte(raw), &rec.Example); err != nil {
			rec.Err = err
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading line %d: %w", line+1, err)
	}
	return records, nil
}

// ReadExamples loads all well-formed examples from a JSONL file, failing on
// the first parse error. Used by merge and stats, where the input is
// expected to be an already-validated split.
func ReadExamples(path string) ([]types.Example, error) {
	records, err := ReadJSONL(path)
	if err != nil {
		return nil, err
	}
	examples := make([]types.Example, 0, len(records))
	for _, rec := range records {
		if rec.Err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, rec.Line, rec.Err)
		}
		examples = append(examples, rec.Example)
	}
	return examples, nil
}
