package health

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// DateRange is an inclusive range of ISO dates. Start <= End always holds for ranges
// produced by this package; values are replaced as a whole, never mutated in place.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Key identifies the range, e.g. as a cache key.
func (r DateRange) Key() string {
	return r.Start + "|" + r.End
}

func (r DateRange) Contains(date string) bool {
	return r.Start <= date && date <= r.End
}

// Days is the number of whole days between start and end.
func (r DateRange) Days() int {
	start, err := time.Parse(DateLayout, r.Start)
	if err != nil {
		return 0
	}
	end, err := time.Parse(DateLayout, r.End)
	if err != nil {
		return 0
	}
	return int(end.Sub(start).Hours() / 24)
}

// Bounds are the selectable limits of a dataset.
type Bounds struct {
	MinDate string `json:"minDate"`
	MaxDate string `json:"maxDate"`
}

func (b Bounds) IsZero() bool {
	return b.MinDate == "" && b.MaxDate == ""
}

// NewBounds derives the bounds from the first and last record dates. The max date is
// clamped to today, but never before the min date.
func NewBounds(first, last string, today time.Time) Bounds {
	maxDate := last
	if todayISO := today.Format(DateLayout); maxDate > todayISO {
		maxDate = todayISO
	}
	if maxDate < first {
		maxDate = first
	}
	return Bounds{MinDate: first, MaxDate: maxDate}
}

func (b Bounds) clamp(date string) string {
	if date < b.MinDate {
		return b.MinDate
	}
	if date > b.MaxDate {
		return b.MaxDate
	}
	return date
}

// Full is the range covering the whole bounds.
func (b Bounds) Full() DateRange {
	return DateRange{Start: b.MinDate, End: b.MaxDate}
}

type Preset string

const (
	Preset1M  Preset = "1M"
	Preset3M  Preset = "3M"
	Preset6M  Preset = "6M"
	Preset1Y  Preset = "1Y"
	PresetYTD Preset = "YTD"
	PresetAll Preset = "ALL"

	DefaultPreset = Preset3M
)

var Presets = []Preset{Preset1M, Preset3M, Preset6M, Preset1Y, PresetYTD, PresetAll}

var presetMonths = map[Preset]int{
	Preset1M: 1,
	Preset3M: 3,
	Preset6M: 6,
	Preset1Y: 12,
}

func ParsePreset(s string) (Preset, error) {
	p := Preset(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPreset, s)
}

// PresetRange resolves a preset against the bounds. The end is always the max date.
func PresetRange(b Bounds, p Preset) (DateRange, error) {
	if b.IsZero() {
		return DateRange{}, nil
	}

	end, err := ParseDate(b.MaxDate)
	if err != nil {
		return DateRange{}, err
	}

	var start string
	switch p {
	case PresetAll:
		start = b.MinDate
	case PresetYTD:
		start = time.Date(end.Year(), time.January, 1, 0, 0, 0, 0, time.UTC).Format(DateLayout)
	default:
		months, ok := presetMonths[p]
		if !ok {
			return DateRange{}, fmt.Errorf("%w: %q", ErrUnknownPreset, p)
		}
		start = SubMonths(end, months).Format(DateLayout)
	}

	if start < b.MinDate {
		start = b.MinDate
	}
	return DateRange{Start: start, End: b.MaxDate}, nil
}

// SubMonths goes n calendar months back. The day is clamped to the last day of the
// target month, so 2024-03-31 minus one month is 2024-02-29.
func SubMonths(t time.Time, n int) time.Time {
	firstOfTarget := time.Date(t.Year(), t.Month()-time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	day := t.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// EditStart replaces the start of the range with v clamped into the bounds.
// If the new start passes the end, the end follows it.
func EditStart(b Bounds, r DateRange, v string) (DateRange, error) {
	if _, err := ParseDate(v); err != nil {
		return r, err
	}
	start := b.clamp(v)
	end := r.End
	if start > end {
		end = start
	}
	return DateRange{Start: start, End: end}, nil
}

// EditEnd replaces the end of the range with v clamped into the bounds.
// If the new end goes before the start, the start follows it.
func EditEnd(b Bounds, r DateRange, v string) (DateRange, error) {
	if _, err := ParseDate(v); err != nil {
		return r, err
	}
	end := b.clamp(v)
	start := r.Start
	if end < start {
		start = end
	}
	return DateRange{Start: start, End: end}, nil
}

// Filter returns the records whose date falls inside the inclusive range, in input order.
func Filter(records []HealthRecord, r DateRange) []HealthRecord {
	filtered := make([]HealthRecord, 0, len(records))
	for _, rec := range records {
		if r.Contains(rec.Date) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}
