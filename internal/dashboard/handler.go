package dashboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/2beens/fitstats/internal/analytics"
	"github.com/2beens/fitstats/internal/charts"
	"github.com/2beens/fitstats/internal/export"
	"github.com/2beens/fitstats/internal/health"
	"github.com/2beens/fitstats/internal/telemetry/metrics"
	"github.com/2beens/fitstats/internal/telemetry/tracing"
	"github.com/2beens/fitstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=dashboard

type Api interface {
	Status() StatusView
	Records(ctx context.Context) ([]health.HealthRecord, error)
	Filtered(ctx context.Context, q RangeQuery) (health.DateRange, []health.HealthRecord, error)
	Dashboard(ctx context.Context, q RangeQuery) ([]byte, error)
	Table(ctx context.Context, q RangeQuery, tq TableQuery) (TablePage, error)
	Brief(ctx context.Context) (analytics.Brief, bool, error)
}

var _ Api = (*Service)(nil)

type Handler struct {
	api     Api
	metrics *metrics.Manager
}

func NewHandler(api Api, metrics *metrics.Manager) *Handler {
	return &Handler{
		api:     api,
		metrics: metrics,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/status", handler.handleStatus).Methods("GET", "OPTIONS").Name("status")
	router.HandleFunc("/dashboard_data.json", handler.handleData).Methods("GET", "OPTIONS").Name("dashboard-data")
	router.HandleFunc("/dashboard", handler.handleDashboard).Methods("GET", "OPTIONS").Name("dashboard")
	router.HandleFunc("/records/export.xlsx", handler.handleExport).Methods("GET", "OPTIONS").Name("records-export")
	router.HandleFunc("/records/page/{page}/size/{size}", handler.handleRecords).Methods("GET", "OPTIONS").Name("records")
	router.HandleFunc("/brief", handler.handleBrief).Methods("GET", "OPTIONS").Name("brief")
	router.HandleFunc("/charts/{chart}", handler.handleChart).Methods("GET", "OPTIONS").Name("chart")
}

func rangeQuery(r *http.Request) RangeQuery {
	query := r.URL.Query()
	return RangeQuery{
		Preset: query.Get("preset"),
		Start:  query.Get("start"),
		End:    query.Get("end"),
	}
}

// writeError maps service errors to status codes.
func writeError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, health.ErrNotLoaded):
		http.Error(w, fmt.Sprintf("dataset not available: %s", err), http.StatusServiceUnavailable)
	case errors.Is(err, health.ErrInvalidDate),
		errors.Is(err, health.ErrUnknownPreset),
		errors.Is(err, ErrInvalidTableQuery):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, charts.ErrUnknownChart):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		log.Errorf("%s: %s", route, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (handler *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.status")
	defer span.End()

	pkg.WriteJSON(w, handler.api.Status(), http.StatusOK)
}

func (handler *Handler) handleData(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.data")
	defer span.End()

	records, err := handler.api.Records(ctx)
	if err != nil {
		writeError(w, "dashboard data", err)
		return
	}
	pkg.WriteJSON(w, records, http.StatusOK)
}

func (handler *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard")
	defer span.End()

	viewBytes, err := handler.api.Dashboard(ctx, rangeQuery(r))
	if err != nil {
		writeError(w, "dashboard", err)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, viewBytes)
}

func (handler *Handler) handleRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records")
	defer span.End()

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		http.Error(w, "error, page NaN", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		http.Error(w, "error, size NaN", http.StatusBadRequest)
		return
	}

	tq, err := ParseTableQuery(page, size, r.URL.Query().Get("sort"), r.URL.Query().Get("order"))
	if err != nil {
		writeError(w, "records", err)
		return
	}

	tablePage, err := handler.api.Table(ctx, rangeQuery(r), tq)
	if err != nil {
		writeError(w, "records", err)
		return
	}
	pkg.WriteJSON(w, tablePage, http.StatusOK)
}

func (handler *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.export")
	defer span.End()

	_, records, err := handler.api.Filtered(ctx, rangeQuery(r))
	if err != nil {
		writeError(w, "export", err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, records); err != nil {
		writeError(w, "export", err)
		return
	}

	if handler.metrics != nil {
		handler.metrics.CounterExports.Inc()
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
	pkg.WriteResponseBytesOK(w, pkg.ContentType.XLSX, buf.Bytes())
}

func (handler *Handler) handleBrief(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.brief")
	defer span.End()

	brief, ok, err := handler.api.Brief(ctx)
	if err != nil {
		writeError(w, "brief", err)
		return
	}
	if !ok {
		http.Error(w, "error, no records", http.StatusNotFound)
		return
	}

	if r.URL.Query().Get("format") == "text" {
		var buf bytes.Buffer
		if err := brief.WriteText(&buf); err != nil {
			writeError(w, "brief", err)
			return
		}
		pkg.WriteResponseBytesOK(w, pkg.ContentType.Text, buf.Bytes())
		return
	}
	pkg.WriteJSON(w, brief, http.StatusOK)
}

func (handler *Handler) handleChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.chart")
	defer span.End()

	id, err := charts.ParseID(mux.Vars(r)["chart"])
	if err != nil {
		writeError(w, "chart", err)
		return
	}

	theme := charts.ThemeLight
	switch r.URL.Query().Get("theme") {
	case "", string(charts.ThemeLight):
	case string(charts.ThemeDark):
		theme = charts.ThemeDark
	default:
		http.Error(w, "error, theme must be dark or light", http.StatusBadRequest)
		return
	}

	_, records, err := handler.api.Filtered(ctx, rangeQuery(r))
	if err != nil {
		writeError(w, "chart", err)
		return
	}

	var buf bytes.Buffer
	if err := charts.Render(&buf, id, records, theme); err != nil {
		writeError(w, "chart", err)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.HTML, buf.Bytes())
}
