package preferences

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/fitstats/internal/charts"
	"github.com/2beens/fitstats/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
)

const (
	keyPrefix        = "fitstats::"
	themeModeKey     = "theme-mode"
	chartOrderKey    = "chart-order"
	chartOrderSplit  = ","
	ClientCookieName = "fitstats-client"
)

func themeKey(clientID string) string {
	return keyPrefix + clientID + "::" + themeModeKey
}

func chartOrderKeyFor(clientID string) string {
	return keyPrefix + clientID + "::" + chartOrderKey
}

// Store keeps the preferences of each client in redis. Values never expire.
type Store struct {
	redisClient *redis.Client
}

func NewStore(redisClient *redis.Client) *Store {
	return &Store{
		redisClient: redisClient,
	}
}

// ThemeMode returns the stored mode of the client, or the default when none is stored.
// A stored value that is no longer valid also yields the default.
func (s *Store) ThemeMode(ctx context.Context, clientID string) (ThemeMode, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "preferences.store.theme.get")
	defer span.End()

	cmd := s.redisClient.Get(ctx, themeKey(clientID))
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return DefaultThemeMode, nil
		}
		return DefaultThemeMode, fmt.Errorf("get theme mode: %w", err)
	}

	mode, err := ParseThemeMode(cmd.Val())
	if err != nil {
		return DefaultThemeMode, nil
	}
	return mode, nil
}

func (s *Store) SetThemeMode(ctx context.Context, clientID string, mode ThemeMode) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "preferences.store.theme.set")
	defer span.End()

	if err := s.redisClient.Set(ctx, themeKey(clientID), string(mode), 0).Err(); err != nil {
		return fmt.Errorf("set theme mode: %w", err)
	}
	return nil
}

func (s *Store) ChartOrder(ctx context.Context, clientID string) ([]charts.ID, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "preferences.store.chart-order.get")
	defer span.End()

	cmd := s.redisClient.Get(ctx, chartOrderKeyFor(clientID))
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return DefaultChartOrder(), nil
		}
		return DefaultChartOrder(), fmt.Errorf("get chart order: %w", err)
	}

	order, err := ParseChartOrder(strings.Split(cmd.Val(), chartOrderSplit))
	if err != nil {
		// charts were added or removed since it was stored
		return DefaultChartOrder(), nil
	}
	return order, nil
}

func (s *Store) SetChartOrder(ctx context.Context, clientID string, order []charts.ID) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "preferences.store.chart-order.set")
	defer span.End()

	ids := make([]string, 0, len(order))
	for _, id := range order {
		ids = append(ids, string(id))
	}
	if err := s.redisClient.Set(ctx, chartOrderKeyFor(clientID), strings.Join(ids, chartOrderSplit), 0).Err(); err != nil {
		return fmt.Errorf("set chart order: %w", err)
	}
	return nil
}
