// Package dashboard serves the loaded dataset and every view derived from it.
package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fitstats/internal/analytics"
	"github.com/2beens/fitstats/internal/health"
	"github.com/2beens/fitstats/internal/telemetry/metrics"
	"github.com/2beens/fitstats/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrInvalidTableQuery = errors.New("invalid table query")

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"

	dashboardCacheKeyPrefix = "dashboard::"
)

// DatasetProvider is satisfied by *health.Store.
type DatasetProvider interface {
	Status() health.LoadStatus
	Dataset() (*health.Dataset, error)
}

// RangeQuery selects a date range: a preset, or manual start/end edits of the default range.
type RangeQuery struct {
	Preset string
	Start  string
	End    string
}

type StatusView struct {
	Status       health.Status     `json:"status"`
	Error        string            `json:"error,omitempty"`
	Records      int               `json:"records"`
	Bounds       *health.Bounds    `json:"bounds,omitempty"`
	DefaultRange *health.DateRange `json:"defaultRange,omitempty"`
}

// View is the /dashboard payload.
type View struct {
	Range      health.DateRange           `json:"range"`
	Days       int                        `json:"days"`
	Summary    analytics.KPISummary       `json:"summary"`
	Stats      analytics.StatsMap         `json:"stats"`
	Weekly     []analytics.WeekdayAverage `json:"weekly"`
	Zones      analytics.ZoneTotals       `json:"zones"`
	ZonesEmpty bool                       `json:"zonesEmpty"`
	Scatter    []analytics.ScatterPoint   `json:"scatter"`
	Heatmap    []analytics.HeatmapDay     `json:"heatmap"`
}

type TableQuery struct {
	Page  int
	Size  int
	Sort  string
	Order string
}

type TableRow struct {
	health.HealthRecord
	Tones map[health.Column]analytics.Tone `json:"tones"`
}

type TablePage struct {
	Range      health.DateRange `json:"range"`
	Sort       string           `json:"sort"`
	Order      string           `json:"order"`
	Page       int              `json:"page"`
	Size       int              `json:"size"`
	Total      int              `json:"total"`
	TotalPages int              `json:"totalPages"`
	Rows       []TableRow       `json:"rows"`
}

type Service struct {
	provider DatasetProvider
	cache    *freecache.Cache
	cacheTTL time.Duration
	metrics  *metrics.Manager
}

// NewService creates the service. A nil cache disables memoization.
func NewService(
	provider DatasetProvider,
	cache *freecache.Cache,
	cacheTTL time.Duration,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		provider: provider,
		cache:    cache,
		cacheTTL: cacheTTL,
		metrics:  metricsManager,
	}
}

func (s *Service) Status() StatusView {
	st := s.provider.Status()
	view := StatusView{
		Status: st.Status,
		Error:  st.Error,
	}

	ds, err := s.provider.Dataset()
	if err != nil {
		return view
	}
	bounds := ds.Bounds()
	defaultRange := ds.DefaultRange()
	view.Records = ds.Len()
	view.Bounds = &bounds
	view.DefaultRange = &defaultRange
	return view
}

func (s *Service) Records(ctx context.Context) ([]health.HealthRecord, error) {
	_, span := tracing.GlobalTracer.Start(ctx, "dashboard.service.records")
	defer span.End()

	ds, err := s.provider.Dataset()
	if err != nil {
		return nil, err
	}
	return ds.Records(), nil
}

// Filtered resolves q and returns the range with its records.
func (s *Service) Filtered(ctx context.Context, q RangeQuery) (health.DateRange, []health.HealthRecord, error) {
	_, span := tracing.GlobalTracer.Start(ctx, "dashboard.service.filtered")
	defer span.End()

	ds, err := s.provider.Dataset()
	if err != nil {
		return health.DateRange{}, nil, err
	}
	r, err := ds.Range(q.Preset, q.Start, q.End)
	if err != nil {
		return health.DateRange{}, nil, err
	}
	span.SetAttributes(attribute.String("range", r.Key()))
	return r, ds.Filter(r), nil
}

// Dashboard returns the serialized View for q. The dataset never changes once loaded,
// so the serialized view is memoized by range.
func (s *Service) Dashboard(ctx context.Context, q RangeQuery) ([]byte, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.service.dashboard")
	var err error
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	r, records, err := s.Filtered(ctx, q)
	if err != nil {
		return nil, err
	}

	cacheKey := []byte(dashboardCacheKeyPrefix + r.Key())
	if s.cache != nil {
		if cached, cacheErr := s.cache.Get(cacheKey); cacheErr == nil {
			s.countCache("hit")
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return cached, nil
		}
		s.countCache("miss")
	}

	view := BuildView(r, records)
	viewBytes, err := json.Marshal(view)
	if err != nil {
		return nil, fmt.Errorf("marshal dashboard view: %w", err)
	}

	if s.cache != nil {
		if cacheErr := s.cache.Set(cacheKey, viewBytes, int(s.cacheTTL.Seconds())); cacheErr != nil {
			// too large for the cache, still served
			log.Warnf("dashboard cache set [%s]: %s", r.Key(), cacheErr)
		}
	}
	return viewBytes, nil
}

func (s *Service) countCache(result string) {
	if s.metrics != nil {
		s.metrics.CounterDashboardCache.WithLabelValues(result).Inc()
	}
}

// BuildView derives every dashboard aggregate from the filtered records.
func BuildView(r health.DateRange, records []health.HealthRecord) View {
	zones := analytics.ActivityZones(records)
	return View{
		Range:      r,
		Days:       r.Days(),
		Summary:    analytics.Summary(records),
		Stats:      analytics.CalculateStats(records),
		Weekly:     analytics.WeeklyPattern(records),
		Zones:      zones,
		ZonesEmpty: zones.IsEmpty(),
		Scatter:    analytics.ScatterPairs(records),
		Heatmap:    analytics.HeatmapLevels(records),
	}
}

// ParseTableQuery validates the raw table parameters. Empty sort and order mean date ascending.
func ParseTableQuery(page, size int, sortBy, order string) (TableQuery, error) {
	if page < 1 {
		return TableQuery{}, fmt.Errorf("%w: page must be positive", ErrInvalidTableQuery)
	}
	if !analytics.ValidPageSize(size) {
		return TableQuery{}, fmt.Errorf("%w: page size must be one of %v", ErrInvalidTableQuery, analytics.PageSizes)
	}

	sortBy = strings.TrimSpace(sortBy)
	if sortBy == "" {
		sortBy = analytics.SortByDate
	}
	if sortBy != analytics.SortByDate {
		if _, ok := health.ParseColumn(sortBy); !ok {
			return TableQuery{}, fmt.Errorf("%w: unknown sort column %q", ErrInvalidTableQuery, sortBy)
		}
	}

	order = strings.ToLower(strings.TrimSpace(order))
	switch order {
	case "":
		order = OrderAsc
	case OrderAsc, OrderDesc:
	default:
		return TableQuery{}, fmt.Errorf("%w: order must be asc or desc", ErrInvalidTableQuery)
	}

	return TableQuery{Page: page, Size: size, Sort: sortBy, Order: order}, nil
}

// Table returns one sorted page of the filtered records, each cell toned against the range.
func (s *Service) Table(ctx context.Context, q RangeQuery, tq TableQuery) (TablePage, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.service.table")
	defer span.End()

	r, records, err := s.Filtered(ctx, q)
	if err != nil {
		return TablePage{}, err
	}

	stats := analytics.CalculateStats(records)
	sorted := analytics.SortRecords(records, tq.Sort, tq.Order == OrderDesc)
	page := analytics.Paginate(sorted, tq.Page, tq.Size)

	rows := make([]TableRow, 0, len(page.Records))
	for _, rec := range page.Records {
		tones := make(map[health.Column]analytics.Tone)
		for _, col := range analytics.StatsColumns {
			if tone := analytics.CellTone(rec, col, stats); tone != analytics.ToneNeutral {
				tones[col] = tone
			}
		}
		rows = append(rows, TableRow{HealthRecord: rec, Tones: tones})
	}

	return TablePage{
		Range:      r,
		Sort:       tq.Sort,
		Order:      tq.Order,
		Page:       page.Page,
		Size:       page.Size,
		Total:      page.Total,
		TotalPages: page.TotalPages,
		Rows:       rows,
	}, nil
}

// Brief is the daily briefing of the latest record, judged against the whole dataset.
func (s *Service) Brief(ctx context.Context) (analytics.Brief, bool, error) {
	_, span := tracing.GlobalTracer.Start(ctx, "dashboard.service.brief")
	defer span.End()

	ds, err := s.provider.Dataset()
	if err != nil {
		return analytics.Brief{}, false, err
	}
	brief, ok := analytics.DailyBrief(ds.Records())
	return brief, ok, nil
}
