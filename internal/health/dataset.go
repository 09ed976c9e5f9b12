package health

import (
	"fmt"
	"sort"
	"time"
)

// Dataset owns the loaded records. It is immutable after construction and safe
// for concurrent readers.
type Dataset struct {
	records      []HealthRecord
	bounds       Bounds
	defaultRange DateRange
}

// NewDataset copies and sorts the records by date. Malformed or duplicate dates are rejected.
func NewDataset(records []HealthRecord, today time.Time) (*Dataset, error) {
	sorted := make([]HealthRecord, len(records))
	copy(sorted, records)

	for i := range sorted {
		if _, err := ParseDate(sorted[i].Date); err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrMalformedDataset, i, err)
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Date == sorted[i-1].Date {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateDate, sorted[i].Date)
		}
	}

	ds := &Dataset{records: sorted}
	if len(sorted) == 0 {
		return ds, nil
	}

	ds.bounds = NewBounds(sorted[0].Date, sorted[len(sorted)-1].Date, today)
	defaultRange, err := PresetRange(ds.bounds, DefaultPreset)
	if err != nil {
		return nil, fmt.Errorf("default range: %w", err)
	}
	ds.defaultRange = defaultRange

	return ds, nil
}

// Records returns the full record list. Callers must not modify it.
func (d *Dataset) Records() []HealthRecord {
	return d.records
}

func (d *Dataset) Len() int {
	return len(d.records)
}

func (d *Dataset) Empty() bool {
	return len(d.records) == 0
}

func (d *Dataset) Bounds() Bounds {
	return d.bounds
}

func (d *Dataset) DefaultRange() DateRange {
	return d.defaultRange
}

// Latest is the newest record; false for an empty dataset.
func (d *Dataset) Latest() (HealthRecord, bool) {
	if len(d.records) == 0 {
		return HealthRecord{}, false
	}
	return d.records[len(d.records)-1], true
}

func (d *Dataset) Filter(r DateRange) []HealthRecord {
	return Filter(d.records, r)
}

// Range builds a range from an optional preset or optional manual start/end edits
// applied on top of the default range. A preset wins over start/end.
func (d *Dataset) Range(preset, start, end string) (DateRange, error) {
	if d.Empty() {
		if preset != "" {
			if _, err := ParsePreset(preset); err != nil {
				return DateRange{}, err
			}
		}
		return DateRange{}, nil
	}

	if preset != "" {
		p, err := ParsePreset(preset)
		if err != nil {
			return DateRange{}, err
		}
		return PresetRange(d.bounds, p)
	}

	r := d.defaultRange
	var err error
	if start != "" {
		if r, err = EditStart(d.bounds, r, start); err != nil {
			return DateRange{}, err
		}
	}
	if end != "" {
		if r, err = EditEnd(d.bounds, r, end); err != nil {
			return DateRange{}, err
		}
	}
	return r, nil
}
