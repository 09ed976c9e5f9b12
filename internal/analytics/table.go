package analytics

import (
	"sort"

	"github.com/2beens/fitstats/internal/health"
)

const DefaultPageSize = 15

var PageSizes = []int{15, 30, 60, 100}

func ValidPageSize(size int) bool {
	for _, s := range PageSizes {
		if s == size {
			return true
		}
	}
	return false
}

// SortBy is "date" or a column name.
const SortByDate = "date"

// SortRecords returns a sorted copy. Records without a value for col always go last,
// whatever the direction; ties keep their input order.
func SortRecords(records []health.HealthRecord, sortBy string, desc bool) []health.HealthRecord {
	sorted := make([]health.HealthRecord, len(records))
	copy(sorted, records)

	if sortBy == SortByDate || sortBy == "" {
		sort.SliceStable(sorted, func(i, j int) bool {
			if desc {
				return sorted[i].Date > sorted[j].Date
			}
			return sorted[i].Date < sorted[j].Date
		})
		return sorted
	}

	col := health.Column(sortBy)
	sort.SliceStable(sorted, func(i, j int) bool {
		vi, okI := sorted[i].Value(col)
		vj, okJ := sorted[j].Value(col)
		switch {
		case !okI && !okJ:
			return false
		case !okI:
			return false
		case !okJ:
			return true
		case desc:
			return vi > vj
		default:
			return vi < vj
		}
	})
	return sorted
}

type Page struct {
	Records    []health.HealthRecord `json:"records"`
	Page       int                   `json:"page"`
	Size       int                   `json:"size"`
	Total      int                   `json:"total"`
	TotalPages int                   `json:"totalPages"`
}

// Paginate cuts the 1-based page out of records. A page past the end is empty.
func Paginate(records []health.HealthRecord, page, size int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	total := len(records)
	totalPages := (total + size - 1) / size

	p := Page{
		Records:    []health.HealthRecord{},
		Page:       page,
		Size:       size,
		Total:      total,
		TotalPages: totalPages,
	}

	// compared before multiplying, huge pages would overflow the offset
	if page > totalPages {
		return p
	}
	from := (page - 1) * size
	to := from + size
	if to > total {
		to = total
	}
	p.Records = records[from:to]
	return p
}
