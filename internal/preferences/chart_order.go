package preferences

import (
	"fmt"

	"github.com/2beens/fitstats/internal/charts"
)

func DefaultChartOrder() []charts.ID {
	return charts.IDs()
}

// ParseChartOrder accepts a permutation of all known chart IDs.
func ParseChartOrder(ids []string) ([]charts.ID, error) {
	known := charts.IDs()
	if len(ids) != len(known) {
		return nil, fmt.Errorf("%w: want %d charts, got %d", ErrInvalidChartOrder, len(known), len(ids))
	}

	seen := make(map[charts.ID]bool, len(ids))
	order := make([]charts.ID, 0, len(ids))
	for _, s := range ids {
		id, err := charts.ParseID(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidChartOrder, err)
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: duplicate chart %q", ErrInvalidChartOrder, id)
		}
		seen[id] = true
		order = append(order, id)
	}
	return order, nil
}
