package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/couchcryptid/air-quality-dashboard/internal/adapter/http"
	"github.com/couchcryptid/air-quality-dashboard/internal/dataset"
	"github.com/couchcryptid/air-quality-dashboard/internal/domain"
	"github.com/couchcryptid/air-quality-dashboard/internal/observability"
)

type stubLoader struct {
	table domain.Table
}

func (s *stubLoader) Load(string) (domain.Table, error) {
	return s.table, nil
}

func testTable() domain.Table {
	return domain.Table{
		Columns: []string{domain.ColDate, domain.ColTime, domain.VarCO, domain.VarTemperature},
		Rows: []domain.Record{
			{Fields: map[string]string{
				domain.ColDate: "10/03/2004", domain.ColTime: "18.00.00",
				domain.VarCO: "2,6", domain.VarTemperature: "13,6",
			}},
			{Fields: map[string]string{
				domain.ColDate: "10/03/2004", domain.ColTime: "19.00.00",
				domain.VarCO: "-200", domain.VarTemperature: "13,3",
			}},
		},
	}
}

// newTestServer builds the full handler stack around a stub loader.
// When loaded is false the dataset service has no table yet.
func newTestServer(t *testing.T, loaded bool) *httpadapter.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := observability.NewMetricsForTesting()

	svc := dataset.New(&stubLoader{table: testTable()}, "test.csv", logger, metrics, nil)
	if loaded {
		require.NoError(t, svc.Load(context.Background()))
	}

	api := httpadapter.NewAPI(dataset.NewCached(svc), 10, logger, metrics)
	return httpadapter.NewServer(":0", api, svc, logger)
}

func get(srv *httpadapter.Server, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealthAndReadiness(t *testing.T) {
	t.Run("healthz always ok", func(t *testing.T) {
		rec := get(newTestServer(t, false), "/healthz")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("readyz before load", func(t *testing.T) {
		rec := get(newTestServer(t, false), "/readyz")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("readyz after load", func(t *testing.T) {
		rec := get(newTestServer(t, true), "/readyz")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("metrics endpoint responds", func(t *testing.T) {
		rec := get(newTestServer(t, true), "/metrics")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAPIWithoutDataset(t *testing.T) {
	srv := newTestServer(t, false)

	for _, path := range []string{"/api/summary", "/api/metrics", "/api/daily", "/api/records"} {
		rec := get(srv, path)
		assert.Equalf(t, http.StatusServiceUnavailable, rec.Code, "GET %s", path)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body["error"], "dataset")
	}
}

func TestAPISummary(t *testing.T) {
	rec := get(newTestServer(t, true), "/api/summary")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		TotalRecords int `json:"total_records"`
		DateRange    struct {
			Start *string `json:"start"`
			End   *string `json:"end"`
		} `json:"date_range"`
		MissingPercent map[string]float64 `json:"missing_data_percentage"`
		NumericColumns []string           `json:"numeric_columns"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, 2, body.TotalRecords)
	require.NotNil(t, body.DateRange.Start)
	assert.Contains(t, *body.DateRange.Start, "2004-03-10")
	assert.Equal(t, 50.0, body.MissingPercent[domain.VarCO])
	assert.Equal(t, []string{domain.VarCO, domain.VarTemperature}, body.NumericColumns)
}

func TestAPIMetrics(t *testing.T) {
	rec := get(newTestServer(t, true), "/api/metrics")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]struct {
		Mean *float64 `json:"mean"`
		Std  *float64 `json:"std"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.Contains(t, body, "co")
	require.NotNil(t, body["co"].Mean)
	assert.InDelta(t, 2.6, *body["co"].Mean, 1e-9)
	assert.Nil(t, body["co"].Std, "single measured value has no sample stddev")
	assert.NotContains(t, body, "humidity")
}

func TestAPIDaily(t *testing.T) {
	rec := get(newTestServer(t, true), "/api/daily")
	require.Equal(t, http.StatusOK, rec.Code)

	var body []struct {
		Date     string              `json:"date"`
		Averages map[string]*float64 `json:"averages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.Len(t, body, 1)
	assert.Contains(t, body[0].Date, "2004-03-10")
	require.NotNil(t, body[0].Averages[domain.VarTemperature])
	assert.InDelta(t, 13.45, *body[0].Averages[domain.VarTemperature], 1e-9)
}

func TestAPIRecords(t *testing.T) {
	srv := newTestServer(t, true)

	t.Run("default limit", func(t *testing.T) {
		rec := get(srv, "/api/records")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Records []struct {
				Date      *string             `json:"date"`
				Time      *string             `json:"time"`
				Timestamp *string             `json:"timestamp"`
				Values    map[string]*float64 `json:"values"`
			} `json:"records"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

		require.Len(t, body.Records, 2)
		first := body.Records[0]
		require.NotNil(t, first.Date)
		assert.Equal(t, "2004-03-10", *first.Date)
		require.NotNil(t, first.Time)
		assert.Equal(t, "18:00:00", *first.Time)
		assert.NotNil(t, first.Timestamp)
		assert.Nil(t, body.Records[1].Values[domain.VarCO], "sentinel renders as null")
	})

	t.Run("explicit limit", func(t *testing.T) {
		rec := get(srv, "/api/records?limit=1")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Records []json.RawMessage `json:"records"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body.Records, 1)
	})

	t.Run("invalid limit", func(t *testing.T) {
		for _, q := range []string{"limit=0", "limit=-3", "limit=abc"} {
			rec := get(srv, "/api/records?"+q)
			assert.Equalf(t, http.StatusBadRequest, rec.Code, "query %s", q)
		}
	})
}

func TestAPIVariables(t *testing.T) {
	rec := get(newTestServer(t, true), "/api/variables")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, domain.NumericVariables, body["numeric_variables"])
}
