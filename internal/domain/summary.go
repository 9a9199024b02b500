package domain

import (
	"math"
	"sort"
	"strings"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DateRange spans the non-absent dates of a table. Nil endpoints mean the
// table has no parsed dates at all.
type DateRange struct {
	Start *time.Time `json:"start"`
	End   *time.Time `json:"end"`
}

// Summary describes a cleaned table as a whole.
type Summary struct {
	TotalRecords   int                `json:"total_records"`
	DateRange      DateRange          `json:"date_range"`
	MissingPercent map[string]float64 `json:"missing_data_percentage"`
	NumericColumns []string           `json:"numeric_columns"`
	GeneratedAt    time.Time          `json:"generated_at"`
}

// Stats holds the descriptive statistics of one variable. All five are
// absent when the variable has no measured values.
type Stats struct {
	Mean   Value `json:"mean"`
	Median Value `json:"median"`
	Min    Value `json:"min"`
	Max    Value `json:"max"`
	StdDev Value `json:"std"`
}

// trackedVariables maps the columns reported by VariableMetrics to their
// result keys.
var trackedVariables = []struct {
	Column string
	Key    string
}{
	{VarCO, "co"},
	{VarTemperature, "temperature"},
	{VarRelHumidity, "humidity"},
	{VarAbsHumidity, "absolute_humidity"},
}

// Summarize computes the dataset-level summary of a cleaned table: record
// count, date span, per-column missing percentages (2 decimal places), and
// the numeric columns present. An empty table yields zero percentages for
// every column and a nil date range.
func Summarize(t Table) Summary {
	s := Summary{
		TotalRecords:   len(t.Rows),
		MissingPercent: make(map[string]float64, len(t.Columns)),
		NumericColumns: t.NumericColumns(),
		GeneratedAt:    clock.Now(),
	}

	var start, end time.Time
	for _, row := range t.Rows {
		if row.Date.IsZero() {
			continue
		}
		if start.IsZero() || row.Date.Before(start) {
			start = row.Date
		}
		if end.IsZero() || row.Date.After(end) {
			end = row.Date
		}
	}
	if !start.IsZero() {
		s.DateRange = DateRange{Start: &start, End: &end}
	}

	for col, missing := range MissingCounts(t) {
		if len(t.Rows) == 0 {
			s.MissingPercent[col] = 0
			continue
		}
		s.MissingPercent[col] = round2(100 * float64(missing) / float64(len(t.Rows)))
	}
	return s
}

// MissingCounts returns the number of absent cells per column of a cleaned
// table. Every table column has an entry, possibly zero.
func MissingCounts(t Table) map[string]int {
	counts := make(map[string]int, len(t.Columns))
	for _, col := range t.Columns {
		missing := 0
		for _, row := range t.Rows {
			if columnAbsent(row, col) {
				missing++
			}
		}
		counts[col] = missing
	}
	return counts
}

// VariableMetrics computes descriptive statistics for each tracked variable
// present in the table, keyed by variable. A tracked column missing from
// the table is omitted entirely; a column present but never measured yields
// all-absent statistics.
func VariableMetrics(t Table) map[string]Stats {
	result := make(map[string]Stats)
	for _, v := range trackedVariables {
		if !t.HasColumn(v.Column) {
			continue
		}
		result[v.Key] = computeStats(collectValues(t, v.Column))
	}
	return result
}

// collectValues gathers the non-absent values of a column in row order.
func collectValues(t Table, col string) []float64 {
	var xs []float64
	for _, row := range t.Rows {
		if v, ok := row.Values[col]; ok && v.Valid {
			xs = append(xs, v.Float64)
		}
	}
	return xs
}

func computeStats(xs []float64) Stats {
	if len(xs) == 0 {
		return Stats{}
	}
	s := Stats{
		Mean:   Number(stat.Mean(xs, nil)),
		Median: Number(median(xs)),
		Min:    Number(floats.Min(xs)),
		Max:    Number(floats.Max(xs)),
	}
	// Sample standard deviation needs at least two observations.
	if len(xs) >= 2 {
		s.StdDev = Number(stat.StdDev(xs, nil))
	}
	return s
}

// median is the middle value, or the average of the middle two for even n.
// stat.Quantile implements interpolated quantile definitions that do not
// match this convention, so it is computed directly.
func median(xs []float64) float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// columnAbsent reports whether a row is missing its value for col, using
// the parsed representation for the date, time, and numeric columns and
// the raw text for pass-through columns.
func columnAbsent(row Record, col string) bool {
	switch {
	case col == ColDate:
		return row.Date.IsZero()
	case col == ColTime:
		return !row.Clock.Valid
	case IsNumericVariable(col):
		return !row.Values[col].Valid
	default:
		return strings.TrimSpace(row.Fields[col]) == ""
	}
}
