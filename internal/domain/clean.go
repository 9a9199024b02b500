package domain

import (
	"slices"
	"strconv"
	"strings"
	"time"
)

// Source file layouts. The time layout uses literal periods between the
// components; that is how the dataset encodes time of day.
const (
	dateLayout = "02/01/2006"
	timeLayout = "15.04.05"
)

// Clean returns a cleaned copy of t. The input is never mutated.
//
// Per row, in order: sentinel cells become absent, the Date and Time columns
// are parsed, a Timestamp is derived when both halves parsed, and every
// known numeric column is coerced from locale-formatted text to a Value.
// A cell that fails any of these steps becomes absent; rows are never
// dropped. Clean is idempotent: it is a function of the raw cell text only,
// which it preserves except for sentinel cells.
func Clean(t Table) Table {
	out := Table{
		Columns: slices.Clone(t.Columns),
		Rows:    make([]Record, len(t.Rows)),
	}
	for i, row := range t.Rows {
		out.Rows[i] = cleanRecord(row, t.Columns)
	}
	return out
}

func cleanRecord(r Record, columns []string) Record {
	fields := make(map[string]string, len(columns))
	for _, col := range columns {
		raw := r.Fields[col]
		if isSentinel(raw) {
			raw = ""
		}
		fields[col] = raw
	}

	rec := Record{Fields: fields}
	rec.Date = parseDate(fields[ColDate])
	rec.Clock = parseClockTime(fields[ColTime])
	rec.Timestamp = combineTimestamp(rec.Date, rec.Clock)

	rec.Values = make(map[string]Value)
	for _, col := range columns {
		if !IsNumericVariable(col) {
			continue
		}
		rec.Values[col] = parseNumber(fields[col])
	}
	return rec
}

// isSentinel reports whether a raw cell encodes the -200 "not measured"
// marker in any locale form: "-200", "-200,0", "-200.00", and so on.
// Checking the parsed value rather than the literal text closes the gap
// where comma-decimal sentinels leaked through as real readings.
func isSentinel(raw string) bool {
	s := strings.TrimSpace(raw)
	if s == "" {
		return false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	return err == nil && v == -200
}

// parseDate parses a DD/MM/YYYY cell. Returns the zero time on failure.
func parseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}
	}
	return d
}

// parseClockTime parses an HH.MM.SS cell. Returns an absent ClockTime on failure.
func parseClockTime(raw string) ClockTime {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ClockTime{}
	}
	t, err := time.Parse(timeLayout, raw)
	if err != nil {
		return ClockTime{}
	}
	return ClockTime{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(), Valid: true}
}

// combineTimestamp derives the full instant for a row. Present only when
// both the date and the clock time parsed.
func combineTimestamp(date time.Time, c ClockTime) time.Time {
	if date.IsZero() || !c.Valid {
		return time.Time{}
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		c.Hour, c.Minute, c.Second, 0, time.UTC,
	)
}

// parseNumber coerces locale-formatted numeric text to a Value: decimal
// comma becomes decimal point, then a float parse. Anything that still
// fails is absent, silently.
func parseNumber(raw string) Value {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Absent()
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		return Absent()
	}
	return Number(v)
}
