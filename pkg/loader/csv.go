package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// readRows reads all CSV rows after the header line. Variable field
// counts are tolerated, short rows are padded on access.
func readRows(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, record)
	}
	return rows, nil
}

func field(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func parseFloat(kind, name, raw string, line int) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s record at line %d: bad %s %q: %w", kind, line, name, raw, err)
	}
	return v, nil
}

// ReadODRecords parses od pair rows (id, tons, category). The header
// line and rows with an empty id are skipped.
func ReadODRecords(r io.Reader) ([]ODRecord, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}

	recs := make([]ODRecord, 0, len(rows))
	for i, row := range rows {
		line := i + 2 // 1-based, after the header
		id := field(row, 0)
		if id == "" {
			continue
		}
		tons, err := parseFloat("od", "tons", field(row, 1), line)
		if err != nil {
			return nil, err
		}
		category := 0
		if raw := field(row, 2); raw != "" {
			category, err = strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("od record at line %d: bad category %q: %w", line, raw, err)
			}
		}
		rec := ODRecord{ID: id, Tons: tons, Category: category}
		if err := validateRecord("od", line, rec); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// ReadLinkRecords parses link rows (id, distance, gauge). Rows missing
// any of the three fields carry no usable link and are skipped.
func ReadLinkRecords(r io.Reader) ([]LinkRecord, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}

	recs := make([]LinkRecord, 0, len(rows))
	for i, row := range rows {
		line := i + 2
		id, rawDist, gauge := field(row, 0), field(row, 1), field(row, 2)
		if id == "" || rawDist == "" || gauge == "" {
			continue
		}
		dist, err := parseFloat("link", "distance", rawDist, line)
		if err != nil {
			return nil, err
		}
		rec := LinkRecord{ID: id, Distance: dist, Gauge: gauge}
		if err := validateRecord("link", line, rec); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// ReadParamRecords parses parameter rows (id, value, description).
func ReadParamRecords(r io.Reader) ([]ParamRecord, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}

	recs := make([]ParamRecord, 0, len(rows))
	for i, row := range rows {
		line := i + 2
		id := field(row, 0)
		if id == "" {
			continue
		}
		value, err := parseFloat("parameter", "value", field(row, 1), line)
		if err != nil {
			return nil, err
		}
		recs = append(recs, ParamRecord{ID: id, Value: value, Description: field(row, 2)})
	}
	return recs, nil
}

// ReadPathRecords parses path rows (id, path, gauge). Rows with an empty
// id or path are skipped.
func ReadPathRecords(r io.Reader) ([]PathRecord, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}

	recs := make([]PathRecord, 0, len(rows))
	for i, row := range rows {
		line := i + 2
		id, path, gauge := field(row, 0), field(row, 1), field(row, 2)
		if id == "" || path == "" {
			continue
		}
		rec := PathRecord{ID: id, Path: path, Gauge: gauge}
		if err := validateRecord("path", line, rec); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
