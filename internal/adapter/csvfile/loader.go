// Package csvfile reads the semicolon-delimited source dataset into a raw
// domain table.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/couchcryptid/air-quality-dashboard/internal/domain"
)

// Loader reads one dataset file per call. It is stateless; the logger is
// the only dependency.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a Loader.
func NewLoader(logger *slog.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load parses the file at path into a raw table: header row first, fields
// separated by ";". Columns that are empty in every row — including the
// nameless trailing columns produced by stray delimiters — are dropped.
//
// A missing file yields domain.ErrNotFound; malformed content (unterminated
// quote, inconsistent column count) yields a *domain.ParseError. Both are
// reported to the caller, never fatal.
func (l *Loader) Load(path string) (domain.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Table{}, fmt.Errorf("%s: %w", path, domain.ErrNotFound)
		}
		return domain.Table{}, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	r := csv.NewReader(f)
	r.Comma = ';'

	header, err := r.Read()
	if err != nil {
		return domain.Table{}, asParseError(err)
	}

	records, err := r.ReadAll()
	if err != nil {
		return domain.Table{}, asParseError(err)
	}

	columns, keep := liveColumns(header, records)

	t := domain.Table{Columns: columns, Rows: make([]domain.Record, len(records))}
	for i, rec := range records {
		fields := make(map[string]string, len(columns))
		for j, col := range header {
			if !keep[j] {
				continue
			}
			fields[col] = rec[j]
		}
		t.Rows[i] = domain.Record{Fields: fields}
	}

	l.logger.Info("dataset loaded",
		"path", path,
		"rows", len(t.Rows),
		"columns", len(t.Columns),
		"dropped_columns", len(header)-len(columns),
	)
	return t, nil
}

// liveColumns returns the headers to keep, with a per-index keep mask.
// A column is dropped when every row's cell is empty; with zero rows all
// columns are kept, since there is nothing to judge them by.
func liveColumns(header []string, records [][]string) ([]string, []bool) {
	keep := make([]bool, len(header))
	for j := range header {
		if len(records) == 0 {
			keep[j] = true
			continue
		}
		for _, rec := range records {
			if strings.TrimSpace(rec[j]) != "" {
				keep[j] = true
				break
			}
		}
	}

	columns := make([]string, 0, len(header))
	for j, col := range header {
		if keep[j] {
			columns = append(columns, col)
		}
	}
	return columns, keep
}

// asParseError converts encoding/csv errors to the domain taxonomy,
// preserving the line number when the reader reports one. A file with no
// header row at all is malformed, not empty.
func asParseError(err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &domain.ParseError{Line: csvErr.Line, Err: csvErr.Err}
	}
	return &domain.ParseError{Err: err}
}
