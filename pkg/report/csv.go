package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// ExportLinksCSV writes the link loads of a network snapshot as CSV.
func ExportLinksCSV(writer io.Writer, snap NetworkSnapshot) (retErr error) {
	csvWriter := csv.NewWriter(writer)
	defer func() {
		csvWriter.Flush()
		if err := csvWriter.Error(); err != nil {
			if retErr == nil {
				retErr = fmt.Errorf("CSV writer flush error: %w", err)
			}
		}
	}()

	header := []string{"mode", "id", "gauge", "distance", "original_ton", "derived_ton", "total_ton"}
	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, l := range snap.Links {
		record := []string{
			snap.Mode,
			l.ID,
			l.Gauge,
			strconv.FormatFloat(l.Distance, 'f', -1, 64),
			strconv.FormatFloat(l.OriginalTon, 'f', -1, 64),
			strconv.FormatFloat(l.DerivedTon, 'f', -1, 64),
			strconv.FormatFloat(l.TotalTon, 'f', -1, 64),
		}
		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	return nil
}
