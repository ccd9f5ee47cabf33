// Package manifest writes the TeamInfo.csv consumed by the observer overlay.
//
// The manifest is one row per team, in roster order, with the exact header
// the overlay tooling expects. Nothing here interprets the values; it is the
// final serialization step of the pipeline.
package manifest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Header is the fixed CSV header row.
var Header = []string{"TeamNumber", "TeamName", "TeamShortName", "ImageFileName", "TeamColor"}

// Row is one team's manifest entry.
type Row struct {
	TeamNumber    string
	TeamName      string
	TeamShortName string
	ImageFileName string
	TeamColor     string // RRGGBBFF hex
}

// fields returns the row in header order.
func (r Row) fields() []string {
	return []string{r.TeamNumber, r.TeamName, r.TeamShortName, r.ImageFileName, r.TeamColor}
}

// Write encodes the header plus all rows as CSV to w.
func Write(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row.fields()); err != nil {
			return fmt.Errorf("write row for %s: %w", row.TeamName, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the manifest to path, truncating any existing file.
func WriteFile(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(f, rows)
}
