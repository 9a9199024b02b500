package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/couchcryptid/air-quality-dashboard/internal/dataset"
	"github.com/couchcryptid/air-quality-dashboard/internal/domain"
	"github.com/couchcryptid/air-quality-dashboard/internal/observability"
)

// maxPreviewLimit caps the records endpoint regardless of the query string.
const maxPreviewLimit = 1000

// API serves the dashboard data endpoints.
type API struct {
	data         dataset.Analytics
	previewLimit int
	logger       *slog.Logger
	metrics      *observability.Metrics
}

// NewAPI creates the dashboard API. previewLimit is the default row count
// for the records endpoint.
func NewAPI(data dataset.Analytics, previewLimit int, logger *slog.Logger, metrics *observability.Metrics) *API {
	return &API{
		data:         data,
		previewLimit: previewLimit,
		logger:       logger.With(slog.String("component", "api")),
		metrics:      metrics,
	}
}

// Routes returns the /api router.
func (a *API) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/summary", a.getSummary)
	r.Get("/metrics", a.getMetrics)
	r.Get("/daily", a.getDaily)
	r.Get("/records", a.getRecords)
	r.Get("/variables", a.getVariables)
	return r
}

func (a *API) getSummary(w http.ResponseWriter, r *http.Request) {
	s, err := a.data.Summary()
	if err != nil {
		a.renderError(w, r, "summary", err)
		return
	}
	a.respond(w, r, "summary", http.StatusOK, s)
}

func (a *API) getMetrics(w http.ResponseWriter, r *http.Request) {
	m, err := a.data.Metrics()
	if err != nil {
		a.renderError(w, r, "metrics", err)
		return
	}
	a.respond(w, r, "metrics", http.StatusOK, m)
}

func (a *API) getDaily(w http.ResponseWriter, r *http.Request) {
	d, err := a.data.Daily()
	if err != nil {
		a.renderError(w, r, "daily", err)
		return
	}
	a.respond(w, r, "daily", http.StatusOK, d)
}

func (a *API) getRecords(w http.ResponseWriter, r *http.Request) {
	limit := a.previewLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			a.respond(w, r, "records", http.StatusBadRequest,
				map[string]string{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}
	if limit > maxPreviewLimit {
		limit = maxPreviewLimit
	}

	recs, err := a.data.Preview(limit)
	if err != nil {
		a.renderError(w, r, "records", err)
		return
	}
	a.respond(w, r, "records", http.StatusOK, recordsResponse{Records: toRecordViews(recs)})
}

func (a *API) getVariables(w http.ResponseWriter, r *http.Request) {
	a.respond(w, r, "variables", http.StatusOK, map[string][]string{
		"numeric_variables": domain.NumericVariables,
	})
}

// renderError maps the no-dataset state to a 503 notice the front end can
// show; anything else is a 500.
func (a *API) renderError(w http.ResponseWriter, r *http.Request, endpoint string, err error) {
	if errors.Is(err, domain.ErrNoDataset) {
		a.respond(w, r, endpoint, http.StatusServiceUnavailable,
			map[string]string{"error": "dataset is not available"})
		return
	}
	a.logger.Error("request failed", "endpoint", endpoint, "error", err)
	a.respond(w, r, endpoint, http.StatusInternalServerError,
		map[string]string{"error": "internal error"})
}

func (a *API) respond(w http.ResponseWriter, r *http.Request, endpoint string, status int, v any) {
	a.metrics.APIRequests.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	render.Status(r, status)
	render.JSON(w, r, v)
}
