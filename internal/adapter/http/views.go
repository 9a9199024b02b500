package http

import (
	"time"

	"github.com/couchcryptid/air-quality-dashboard/internal/domain"
)

// recordView is the wire shape of one cleaned record. Absent date, time,
// and timestamp render as null so chart code can filter them uniformly.
type recordView struct {
	Date      *string                 `json:"date"`
	Time      *string                 `json:"time"`
	Timestamp *time.Time              `json:"timestamp"`
	Values    map[string]domain.Value `json:"values"`
}

type recordsResponse struct {
	Records []recordView `json:"records"`
}

func toRecordViews(recs []domain.Record) []recordView {
	views := make([]recordView, len(recs))
	for i, rec := range recs {
		v := recordView{Values: rec.Values}
		if !rec.Date.IsZero() {
			d := rec.Date.Format("2006-01-02")
			v.Date = &d
		}
		if rec.Clock.Valid {
			c := rec.Clock.String()
			v.Time = &c
		}
		if !rec.Timestamp.IsZero() {
			ts := rec.Timestamp
			v.Timestamp = &ts
		}
		views[i] = v
	}
	return views
}
