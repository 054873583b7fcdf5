// Package export renders record listings as downloadable CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/mmynk/creditline/internal/models"
)

const (
	// ContentType is the MIME type served with the CSV artifact.
	ContentType = "text/csv; charset=utf-8"

	// DefaultFilename is the suggested download name.
	DefaultFilename = "apartment_records.csv"
)

var header = []string{"Apartment Number", "Amount"}

// RecordsCSV renders records as a two-column CSV document: a fixed header
// row, then one row per record in the given order. Rows are separated by
// "\n" and there is no trailing newline.
func RecordsCSV(records []models.Record) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, r := range records {
		if err := w.Write([]string{r.Apartment, r.Amount.String()}); err != nil {
			return "", fmt.Errorf("failed to write csv row %s: %w", r.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}

	return strings.TrimSuffix(b.String(), "\n"), nil
}

// ContentDisposition returns the header value that makes browsers save the
// artifact as filename.
func ContentDisposition(filename string) string {
	return fmt.Sprintf("attachment; filename=%q", filename)
}
