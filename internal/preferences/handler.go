package preferences

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/2beens/fitstats/internal/charts"
	"github.com/2beens/fitstats/internal/middleware"
	"github.com/2beens/fitstats/internal/telemetry/metrics"
	"github.com/2beens/fitstats/internal/telemetry/tracing"
	"github.com/2beens/fitstats/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=preferences

type Repo interface {
	ThemeMode(ctx context.Context, clientID string) (ThemeMode, error)
	SetThemeMode(ctx context.Context, clientID string, mode ThemeMode) error
	ChartOrder(ctx context.Context, clientID string) ([]charts.ID, error)
	SetChartOrder(ctx context.Context, clientID string, order []charts.ID) error
}

const clientCookieMaxAge = 365 * 24 * time.Hour

type Handler struct {
	repo    Repo
	metrics *metrics.Manager
}

func NewHandler(repo Repo, metrics *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metrics,
	}
}

type themeResponse struct {
	Mode      ThemeMode    `json:"mode"`
	State     ThemeState   `json:"state,omitempty"`
	Theme     charts.Theme `json:"theme,omitempty"`
	Persisted *bool        `json:"persisted,omitempty"`
}

type chartOrderResponse struct {
	Order     []charts.ID `json:"order"`
	Persisted *bool       `json:"persisted,omitempty"`
}

func (handler *Handler) SetupRoutes(
	router *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	allowedPerMin int,
) {
	router.HandleFunc("/preferences/theme", handler.handleGetTheme).Methods("GET", "OPTIONS").Name("get-theme")
	router.HandleFunc("/preferences/theme/resolved", handler.handleResolveTheme).Methods("GET", "OPTIONS").Name("resolve-theme")
	router.HandleFunc("/preferences/chart-order", handler.handleGetChartOrder).Methods("GET", "OPTIONS").Name("get-chart-order")

	writes := router.Methods("PUT").PathPrefix("/preferences").Subrouter()
	writes.HandleFunc("/theme", handler.handleSetTheme).Name("set-theme")
	writes.HandleFunc("/chart-order", handler.handleSetChartOrder).Name("set-chart-order")
	writes.Use(middleware.RateLimit(rateLimiter, handler.metrics, "preferences-write", allowedPerMin))
}

// clientID reads the client cookie, issuing a new id when it is missing or malformed.
func clientID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(ClientCookieName); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			return id.String()
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     ClientCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(clientCookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func (handler *Handler) themeMode(ctx context.Context, client string) ThemeMode {
	mode, err := handler.repo.ThemeMode(ctx, client)
	if err != nil {
		log.Errorf("get theme mode [%s], using default: %s", client, err)
		return DefaultThemeMode
	}
	return mode
}

func (handler *Handler) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.preferences.theme.get")
	defer span.End()

	client := clientID(w, r)
	pkg.WriteJSON(w, themeResponse{Mode: handler.themeMode(ctx, client)}, http.StatusOK)
}

func (handler *Handler) handleResolveTheme(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.preferences.theme.resolve")
	defer span.End()

	systemDark := false
	switch r.URL.Query().Get("system") {
	case "", "light":
	case "dark":
		systemDark = true
	default:
		http.Error(w, "error, system must be dark or light", http.StatusBadRequest)
		return
	}

	client := clientID(w, r)
	theme := NewTheme(handler.themeMode(ctx, client), systemDark)
	pkg.WriteJSON(w, themeResponse{
		Mode:  theme.Mode(),
		State: theme.State(),
		Theme: theme.Rendered(),
	}, http.StatusOK)
}

func (handler *Handler) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.preferences.theme.set")
	defer span.End()

	var req struct {
		Mode string `json:"mode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "error, invalid request body", http.StatusBadRequest)
		return
	}
	mode, err := ParseThemeMode(req.Mode)
	if err != nil {
		http.Error(w, "error, invalid theme mode", http.StatusBadRequest)
		return
	}

	client := clientID(w, r)
	persisted := true
	if err := handler.repo.SetThemeMode(ctx, client, mode); err != nil {
		log.Errorf("set theme mode [%s]: %s", client, err)
		persisted = false
	} else if handler.metrics != nil {
		handler.metrics.CounterPreferenceWrites.WithLabelValues(themeModeKey).Inc()
	}

	pkg.WriteJSON(w, themeResponse{Mode: mode, Persisted: &persisted}, http.StatusOK)
}

func (handler *Handler) handleGetChartOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.preferences.chart-order.get")
	defer span.End()

	client := clientID(w, r)
	order, err := handler.repo.ChartOrder(ctx, client)
	if err != nil {
		log.Errorf("get chart order [%s], using default: %s", client, err)
		order = DefaultChartOrder()
	}
	pkg.WriteJSON(w, chartOrderResponse{Order: order}, http.StatusOK)
}

func (handler *Handler) handleSetChartOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.preferences.chart-order.set")
	defer span.End()

	var req struct {
		Order []string `json:"order"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "error, invalid request body", http.StatusBadRequest)
		return
	}
	order, err := ParseChartOrder(req.Order)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	client := clientID(w, r)
	persisted := true
	if err := handler.repo.SetChartOrder(ctx, client, order); err != nil {
		log.Errorf("set chart order [%s]: %s", client, err)
		persisted = false
	} else if handler.metrics != nil {
		handler.metrics.CounterPreferenceWrites.WithLabelValues(chartOrderKey).Inc()
	}

	pkg.WriteJSON(w, chartOrderResponse{Order: order, Persisted: &persisted}, http.StatusOK)
}
