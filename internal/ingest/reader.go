package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/contracts"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/pkg/logger"
)

// Reader ingests weekly film CSVs into PlayerWeekRecords.
type Reader struct {
	logger *logger.Logger
}

// NewReader creates a new CSV reader
func NewReader(log *logger.Logger) *Reader {
	return &Reader{logger: log}
}

// ReadFile reads and parses a CSV file from disk
func (r *Reader) ReadFile(path string) ([]contracts.PlayerWeekRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	records, err := r.Read(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, nil
}

// Read parses CSV rows into PlayerWeekRecords.
//
// Column names are normalized to canonical snake_case; a sheet's split
// "key play ++" / "key play --" columns are merged into the codes string.
// Missing required columns reject the whole batch. Cell values are
// lenient: a value that fails numeric coercion degrades to zero.
func (r *Reader) Read(src io.Reader) ([]contracts.PlayerWeekRecord, error) {
	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("csv is empty")
	}

	header := rows[0]

	// Locate the split key-play annotation columns by their raw names
	// before normalization; both would normalize to the same key.
	posCol, negCol := -1, -1
	for i, raw := range header {
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "key play ++":
			posCol = i
		case "key play --":
			negCol = i
		}
	}

	// Build normalized column index; first occurrence wins
	cols := make(map[string]int, len(header))
	for i, raw := range header {
		if i == posCol || i == negCol {
			continue
		}
		name := NormalizeHeader(raw)
		if _, exists := cols[name]; !exists {
			cols[name] = i
		}
	}

	if err := ensureColumns(cols); err != nil {
		return nil, err
	}

	records := make([]contracts.PlayerWeekRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}

		rec := contracts.PlayerWeekRecord{
			Player:            cell(row, cols, "player"),
			Week:              cell(row, cols, "week"),
			Snaps:             asInt(cell(row, cols, "snaps")),
			Targets:           asInt(cell(row, cols, "targets")),
			Catches:           asInt(cell(row, cols, "catches")),
			RecYards:          asInt(cell(row, cols, "rec_yards")),
			RushYards:         asInt(cell(row, cols, "rush_yards")),
			Touchdowns:        asInt(cell(row, cols, "touchdowns")),
			Drops:             asInt(cell(row, cols, "drops")),
			MissedAssignments: asInt(cell(row, cols, "missed_assignments")),
			Loafs:             asInt(cell(row, cols, "loafs")),
			KeyPlays:          asFloat(cell(row, cols, "key_plays")),
			Codes:             cell(row, cols, "codes"),
		}

		// Merge split annotation columns into the codes string
		rec.Codes = joinCodes(rec.Codes, at(row, posCol), at(row, negCol))

		records = append(records, rec)
	}

	if r.logger != nil {
		r.logger.WithFields(map[string]interface{}{
			"rows": len(records),
		}).Info("Ingested film CSV")
	}

	return records, nil
}

// ensureColumns rejects the batch when required columns are missing
func ensureColumns(cols map[string]int) error {
	var missing []string
	for _, c := range RequiredColumns {
		if _, ok := cols[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	found := make([]string, 0, len(cols))
	for name := range cols {
		found = append(found, name)
	}
	sort.Strings(found)

	return fmt.Errorf("missing required columns %v (found: %v)", missing, found)
}

// cell returns the trimmed value for a canonical column, or ""
func cell(row []string, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok {
		return ""
	}
	return at(row, idx)
}

// at returns the trimmed value at index i, tolerating short rows
func at(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// joinCodes concatenates non-empty annotation fragments with spaces
func joinCodes(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

// asInt coerces a cell to int; non-numeric values degrade to 0
func asInt(s string) int {
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

// asFloat coerces a cell to float64; non-numeric values degrade to 0.0
func asFloat(s string) float64 {
	if s == "" {
		return 0.0
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return 0.0
}
