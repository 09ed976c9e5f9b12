package analytics

import (
	"sort"

	"github.com/2beens/fitstats/internal/health"
)

type ColumnStats struct {
	Min float64 `json:"min"`
	P33 float64 `json:"p33"`
	P66 float64 `json:"p66"`
	Max float64 `json:"max"`
}

type StatsMap map[health.Column]ColumnStats

// StatsColumns are the columns bucketed into tertiles.
var StatsColumns = []health.Column{
	health.ColRestingBPM,
	health.ColWeight,
	health.ColCaloriesTotal,
	health.ColActiveCalories,
	health.ColIntensityIndex,
	health.ColOverallScore,
	health.ColReadinessRaw,
	health.ColRMSSD,
	health.ColStressScore,
	health.ColSpO2Avg,
	health.ColSleepDeep,
	health.ColSleepREM,
}

// Percentiles sorts a copy of values and picks p33 and p66 at floor(n*0.33) and floor(n*0.66).
// No values yields all zeros.
func Percentiles(values []float64) ColumnStats {
	if len(values) == 0 {
		return ColumnStats{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	return ColumnStats{
		Min: sorted[0],
		P33: sorted[int(float64(n)*0.33)],
		P66: sorted[int(float64(n)*0.66)],
		Max: sorted[n-1],
	}
}

func CalculateStats(records []health.HealthRecord) StatsMap {
	stats := make(StatsMap, len(StatsColumns))
	for _, col := range StatsColumns {
		values := make([]float64, 0, len(records))
		for _, r := range records {
			if v, ok := r.Value(col); ok {
				values = append(values, v)
			}
		}
		stats[col] = Percentiles(values)
	}
	return stats
}

type Tertile string

const (
	TertileLow  Tertile = "low"
	TertileMid  Tertile = "mid"
	TertileHigh Tertile = "high"
)

func Classify(v float64, stats ColumnStats) Tertile {
	if v <= stats.P33 {
		return TertileLow
	}
	if v >= stats.P66 {
		return TertileHigh
	}
	return TertileMid
}

type Tone string

const (
	TonePoor    Tone = "poor"
	ToneFair    Tone = "fair"
	ToneGood    Tone = "good"
	ToneNeutral Tone = "neutral"
)

func ToneOf(t Tertile, higherIsBetter bool) Tone {
	switch t {
	case TertileLow:
		if higherIsBetter {
			return TonePoor
		}
		return ToneGood
	case TertileHigh:
		if higherIsBetter {
			return ToneGood
		}
		return TonePoor
	}
	return ToneFair
}

// toneColumns are the table columns colored relative to the period; the flag tells
// whether higher values are better.
var toneColumns = map[health.Column]bool{
	health.ColRestingBPM:     false,
	health.ColRMSSD:          true,
	health.ColStressScore:    true,
	health.ColSpO2Avg:        true,
	health.ColOverallScore:   true,
	health.ColSleepDeep:      true,
	health.ColCaloriesTotal:  true,
	health.ColActiveCalories: true,
	health.ColIntensityIndex: true,
}

// CellTone colors a single table cell. Readiness uses its absolute bands instead of tertiles,
// uncolored columns and missing values are neutral.
func CellTone(r health.HealthRecord, col health.Column, stats StatsMap) Tone {
	v, ok := r.Value(col)
	if !ok {
		return ToneNeutral
	}
	if col == health.ColReadinessRaw {
		switch ReadinessBandOf(&v) {
		case BandPeak:
			return ToneGood
		case BandTired:
			return TonePoor
		default:
			return ToneFair
		}
	}
	higherIsBetter, colored := toneColumns[col]
	if !colored {
		return ToneNeutral
	}
	colStats, ok := stats[col]
	if !ok {
		return ToneNeutral
	}
	return ToneOf(Classify(v, colStats), higherIsBetter)
}
