package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/snappy"
)

// WriteOptions controls how a report entry is persisted.
type WriteOptions struct {
	// Append loads an existing report at the path and adds the entry to
	// it; otherwise the file is replaced with a single-entry report.
	Append bool
	// Compress snappy-encodes the JSON document.
	Compress bool
}

// Write persists a report entry at path per the options. Parent
// directories are created as needed.
func Write(path string, entry Entry, opts WriteOptions) error {
	var rep Report
	if opts.Append {
		existing, err := Read(path)
		if err != nil && !os.IsNotExist(err) {
			return err
		}
		if existing != nil {
			rep = *existing
		}
	}
	rep.Entries = append(rep.Entries, entry)

	data, err := json.MarshalIndent(&rep, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if opts.Compress {
		data = snappy.Encode(nil, data)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Read loads a report from path. Compressed and plain files are both
// accepted: the payload is parsed as JSON first, and decoded as snappy
// when that fails.
func Read(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rep Report
	if jsonErr := json.Unmarshal(data, &rep); jsonErr != nil {
		decoded, snapErr := snappy.Decode(nil, data)
		if snapErr != nil {
			return nil, fmt.Errorf("parse report %s: %w", path, jsonErr)
		}
		if err := json.Unmarshal(decoded, &rep); err != nil {
			return nil, fmt.Errorf("parse compressed report %s: %w", path, err)
		}
	}
	return &rep, nil
}
