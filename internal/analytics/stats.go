// Package analytics holds the pure computations behind the dashboard: averages,
// last valid values, tertile buckets and the per-category aggregates. Every function
// is stateless and leaves its input untouched.
package analytics

import (
	"math"
	"strconv"

	"github.com/2beens/fitstats/internal/health"
)

// NoData is how a missing value is rendered.
const NoData = "--"

// Average is the mean of the valid values of col, rounded to one decimal.
// ok is false when no record holds a valid value.
func Average(records []health.HealthRecord, col health.Column) (float64, bool) {
	sum, count := 0.0, 0
	for _, r := range records {
		if v, ok := r.Value(col); ok {
			sum += v
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return Round(sum/float64(count), 1), true
}

// LastValid scans from the newest record back and returns the first valid value of col.
func LastValid(records []health.HealthRecord, col health.Column) *float64 {
	for i := len(records) - 1; i >= 0; i-- {
		if v, ok := records[i].Value(col); ok {
			return &v
		}
	}
	return nil
}

// SleepQuality is the restorative share (deep + REM) of all tracked sleep, in percent
// with one decimal. Days without any tracked sleep are left out.
func SleepQuality(records []health.HealthRecord) (float64, bool) {
	total, restorative := 0.0, 0.0
	for _, r := range records {
		dayTotal := r.SleepTotal()
		if dayTotal <= 0 {
			continue
		}
		total += dayTotal
		restorative += r.SleepDeep + r.SleepREM
	}
	if total <= 0 {
		return 0, false
	}
	return Round(restorative/total*100, 1), true
}

// Round rounds half away from zero to the given number of decimals.
func Round(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}

// FormatValue renders v with the given decimals, or NoData.
func FormatValue(v float64, ok bool, decimals int) string {
	if !ok {
		return NoData
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// FormatPtr is FormatValue for nullable values.
func FormatPtr(v *float64, decimals int) string {
	if v == nil {
		return NoData
	}
	return FormatValue(*v, true, decimals)
}

// OptionalValue turns a (value, ok) pair into a nullable value, nil meaning "no data".
func OptionalValue(v float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &v
}
