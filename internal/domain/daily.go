package domain

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// DailyRow is the per-day mean of every numeric column for one calendar date.
type DailyRow struct {
	Date     time.Time        `json:"date"`
	Averages map[string]Value `json:"averages"`
}

// DailyAverages groups a cleaned table by calendar date and computes the
// mean of the non-absent values of each numeric column within each group.
// Rows with an absent date have no grouping key and are excluded. Output is
// ascending by date.
func DailyAverages(t Table) []DailyRow {
	numeric := t.NumericColumns()

	groups := make(map[time.Time][]Record)
	for _, row := range t.Rows {
		if row.Date.IsZero() {
			continue
		}
		groups[row.Date] = append(groups[row.Date], row)
	}

	dates := make([]time.Time, 0, len(groups))
	for d := range groups {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	out := make([]DailyRow, 0, len(dates))
	for _, d := range dates {
		row := DailyRow{Date: d, Averages: make(map[string]Value, len(numeric))}
		for _, col := range numeric {
			var xs []float64
			for _, rec := range groups[d] {
				if v, ok := rec.Values[col]; ok && v.Valid {
					xs = append(xs, v.Float64)
				}
			}
			if len(xs) == 0 {
				// Every reading absent that day: the average is absent, not zero.
				row.Averages[col] = Absent()
				continue
			}
			row.Averages[col] = Number(stat.Mean(xs, nil))
		}
		out = append(out, row)
	}
	return out
}
