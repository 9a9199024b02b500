package dataset_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/air-quality-dashboard/internal/dataset"
	"github.com/couchcryptid/air-quality-dashboard/internal/domain"
	"github.com/couchcryptid/air-quality-dashboard/internal/observability"
)

// --- mocks ---

type mockLoader struct {
	table domain.Table
	err   error
	calls int
}

func (m *mockLoader) Load(string) (domain.Table, error) {
	m.calls++
	if m.err != nil {
		return domain.Table{}, m.err
	}
	return m.table, nil
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
			{Fields: map[string]string{
				domain.ColDate: "11/03/2004", domain.ColTime: "01.00.00",
				domain.VarCO: "1,0", domain.VarTemperature: "11,9",
			}},
		},
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(t *testing.T, loader dataset.Loader) (*dataset.Service, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2024, 4, 27, 6, 0, 0, 0, time.UTC))
	svc := dataset.New(loader, "data/test.csv", quietLogger(), observability.NewMetricsForTesting(), clock)
	return svc, clock
}

// --- tests ---

func TestService_Load(t *testing.T) {
	t.Run("loads and cleans", func(t *testing.T) {
		svc, clock := newService(t, &mockLoader{table: testTable()})

		require.NoError(t, svc.Load(context.Background()))

		assert.NoError(t, svc.CheckReadiness(context.Background()))
		assert.Equal(t, clock.Now(), svc.LoadedAt())

		s, err := svc.Summary()
		require.NoError(t, err)
		assert.Equal(t, 3, s.TotalRecords)
		assert.Equal(t, 33.33, s.MissingPercent[domain.VarCO])
	})

	t.Run("loader failure leaves service not ready", func(t *testing.T) {
		svc, _ := newService(t, &mockLoader{err: domain.ErrNotFound})

		err := svc.Load(context.Background())
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Error(t, svc.CheckReadiness(context.Background()))

		_, err = svc.Summary()
		assert.ErrorIs(t, err, domain.ErrNoDataset)
	})

	t.Run("cancelled context", func(t *testing.T) {
		loader := &mockLoader{table: testTable()}
		svc, _ := newService(t, loader)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, svc.Load(ctx), context.Canceled)
		assert.Zero(t, loader.calls)
	})
}

func TestService_QueriesBeforeLoad(t *testing.T) {
	svc, _ := newService(t, &mockLoader{table: testTable()})

	_, err := svc.Summary()
	assert.ErrorIs(t, err, domain.ErrNoDataset)
	_, err = svc.Metrics()
	assert.ErrorIs(t, err, domain.ErrNoDataset)
	_, err = svc.Daily()
	assert.ErrorIs(t, err, domain.ErrNoDataset)
	_, err = svc.Preview(5)
	assert.ErrorIs(t, err, domain.ErrNoDataset)
	assert.True(t, svc.LoadedAt().IsZero())
}

func TestService_Queries(t *testing.T) {
	svc, _ := newService(t, &mockLoader{table: testTable()})
	require.NoError(t, svc.Load(context.Background()))

	t.Run("metrics", func(t *testing.T) {
		m, err := svc.Metrics()
		require.NoError(t, err)
		require.Contains(t, m, "co")
		require.True(t, m["co"].Mean.Valid)
		assert.InDelta(t, 1.8, m["co"].Mean.Float64, 1e-9)
		assert.NotContains(t, m, "humidity", "RH column not in this table")
	})

	t.Run("daily", func(t *testing.T) {
		daily, err := svc.Daily()
		require.NoError(t, err)
		require.Len(t, daily, 2)
		avg := daily[0].Averages[domain.VarTemperature]
		require.True(t, avg.Valid)
		assert.InDelta(t, 13.45, avg.Float64, 1e-9)
	})

	t.Run("preview clamps to table length", func(t *testing.T) {
		recs, err := svc.Preview(100)
		require.NoError(t, err)
		assert.Len(t, recs, 3)

		recs, err = svc.Preview(2)
		require.NoError(t, err)
		assert.Len(t, recs, 2)
	})
}
