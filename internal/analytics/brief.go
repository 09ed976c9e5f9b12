package analytics

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/2beens/fitstats/internal/health"

	"go.uber.org/multierr"
)

type MetricStatus string

const (
	StatusExcellent MetricStatus = "excellent"
	StatusNormal    MetricStatus = "normal"
	StatusWarning   MetricStatus = "warning"
	StatusNA        MetricStatus = "n/a"
)

type Advice string

const (
	AdviceGoHard  Advice = "go hard"
	AdviceRestDay Advice = "rest day"
	AdviceSteady  Advice = "steady"
)

// BriefMetric is the latest value of a metric judged against the whole period.
// BetterThanPct is the share of all days in the period with a worse value.
type BriefMetric struct {
	Value         float64      `json:"value"`
	ZScore        *float64     `json:"zScore"`
	Status        MetricStatus `json:"status"`
	BetterThanPct float64      `json:"betterThanPct"`
}

// Brief is the daily briefing of the latest record.
type Brief struct {
	Date string `json:"date"`

	RestingBPM  *BriefMetric `json:"restingBpm"`
	HRV         *BriefMetric `json:"hrv"`
	StressScore *float64     `json:"stressScore"`

	SleepScore *BriefMetric `json:"sleepScore"`
	SleepDeep  float64      `json:"sleepDeep"`
	SleepREM   float64      `json:"sleepRem"`

	Readiness *float64 `json:"readiness"`
	Advice    Advice   `json:"advice,omitempty"`

	CaloriesTotal     float64  `json:"caloriesTotal"`
	BMR               float64  `json:"bmr"`
	ActiveCalories    float64  `json:"activeCalories"`
	IntensityIndex    float64  `json:"intensityIndex"`
	VeryActiveMinutes float64  `json:"veryActiveMinutes"`
	Weight            *float64 `json:"weight"`
}

// DailyBrief describes the last record of records. The physiology statuses come from
// the z-score of the latest value against the mean and sample standard deviation of
// all records. ok is false for no records.
func DailyBrief(records []health.HealthRecord) (Brief, bool) {
	if len(records) == 0 {
		return Brief{}, false
	}
	latest := records[len(records)-1]

	b := Brief{
		Date:           latest.Date,
		RestingBPM:     briefMetric(records, latest, health.ColRestingBPM, false),
		HRV:            briefMetric(records, latest, health.ColRMSSD, true),
		StressScore:    OptionalValue(latest.Value(health.ColStressScore)),
		SleepScore:     briefMetric(records, latest, health.ColOverallScore, true),
		SleepDeep:      latest.SleepDeep,
		SleepREM:       latest.SleepREM,
		Readiness:         OptionalValue(latest.Value(health.ColReadinessRaw)),
		CaloriesTotal:     latest.CaloriesTotal,
		BMR:               latest.BMR,
		ActiveCalories:    latest.ActiveCalories,
		IntensityIndex:    latest.IntensityIndex,
		VeryActiveMinutes: latest.VeryActiveMinutes,
		Weight:            OptionalValue(latest.Value(health.ColWeight)),
	}

	switch ReadinessBandOf(b.Readiness) {
	case BandPeak:
		b.Advice = AdviceGoHard
	case BandTired:
		b.Advice = AdviceRestDay
	case BandSteady:
		b.Advice = AdviceSteady
	}

	return b, true
}

func briefMetric(records []health.HealthRecord, latest health.HealthRecord, col health.Column, higherIsBetter bool) *BriefMetric {
	v, ok := latest.Value(col)
	if !ok {
		return nil
	}

	m := &BriefMetric{
		Value:         v,
		Status:        StatusNA,
		BetterThanPct: BetterThanPct(records, col, v, higherIsBetter),
	}
	mean, std, ok := MeanStd(records, col)
	if !ok || std == 0 {
		return m
	}

	z := (v - mean) / std
	m.ZScore = &z
	m.Status = ZStatus(z, higherIsBetter)
	return m
}

// ZStatus judges a z-score: beyond one standard deviation in the good direction is
// excellent, in the bad direction a warning.
func ZStatus(z float64, higherIsBetter bool) MetricStatus {
	if !higherIsBetter {
		z = -z
	}
	switch {
	case z > 1:
		return StatusExcellent
	case z < -1:
		return StatusWarning
	default:
		return StatusNormal
	}
}

// BetterThanPct is the percentage of records whose value is strictly worse than v.
// Untracked days count in the denominator but never as worse.
func BetterThanPct(records []health.HealthRecord, col health.Column, v float64, higherIsBetter bool) float64 {
	if len(records) == 0 {
		return 0
	}
	worse := 0
	for _, r := range records {
		other, ok := r.Value(col)
		if !ok {
			continue
		}
		if (higherIsBetter && other < v) || (!higherIsBetter && other > v) {
			worse++
		}
	}
	return float64(worse) / float64(len(records)) * 100
}

// MeanStd returns the mean and the sample standard deviation (n-1) of the valid values.
// ok is false with fewer than two values.
func MeanStd(records []health.HealthRecord, col health.Column) (mean, std float64, ok bool) {
	values := make([]float64, 0, len(records))
	for _, r := range records {
		if v, valid := r.Value(col); valid {
			values = append(values, v)
		}
	}
	if len(values) < 2 {
		return 0, 0, false
	}

	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	sq := 0.0
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}
	return mean, math.Sqrt(sq / float64(len(values)-1)), true
}

// WriteText renders the briefing as the plain text report printed by the daily_brief command.
func (b Brief) WriteText(w io.Writer) error {
	var errs error
	line := func(format string, args ...any) {
		_, err := fmt.Fprintf(w, format+"\n", args...)
		errs = multierr.Append(errs, err)
	}

	title := b.Date
	if day, err := time.Parse(health.DateLayout, b.Date); err == nil {
		title = day.Format("02 January 2006")
	}
	separator := strings.Repeat("=", 42)

	line("")
	line(separator)
	line(" DAILY BRIEFING: %s", title)
	line(separator)
	line("")

	line("PHYSIOLOGY & RECOVERY")
	if b.RestingBPM != nil {
		line("   * RHR: %.1f bpm", b.RestingBPM.Value)
		line("     Status: %s", statusLabel(b.RestingBPM.Status))
		line("     Insight: Your heart is beating slower than %.0f%% of your recorded days.", b.RestingBPM.BetterThanPct)
	}
	if b.HRV != nil {
		line("   * HRV (rMSSD): %.1f ms", b.HRV.Value)
		line("     Status: %s", statusLabel(b.HRV.Status))
	}
	if b.StressScore != nil {
		line("   * Stress Score: %.0f (higher is better)", *b.StressScore)
	}

	line("")
	line("SLEEP QUALITY")
	if b.SleepScore != nil {
		line("   * Score: %.0f / 100", b.SleepScore.Value)
		line("     Status: %s", statusLabel(b.SleepScore.Status))
		line("     Insight: You slept better than %.0f%% of your nights.", b.SleepScore.BetterThanPct)
		line("     Composition: %.0fm Deep + %.0fm REM", b.SleepDeep, b.SleepREM)
	} else {
		line("   * No sleep data.")
	}

	line("")
	line("READINESS (daily form)")
	if b.Readiness != nil {
		line("   * Index: %.2f", *b.Readiness)
		line("   * Advice: %s", adviceLabel(b.Advice))
	} else {
		line("   * Not available.")
	}

	line("")
	line("METABOLISM & ACTIVITY")
	line("   * Total Burn: %.0f kcal", b.CaloriesTotal)
	if b.BMR > 0 {
		line("     Base (BMR): %.0f kcal", b.BMR)
	}
	line("     Active: %.0f kcal", b.ActiveCalories)
	line("   * Intensity: %.1f kcal/min", b.IntensityIndex)
	line("   * Very Active Minutes: %.0f min", b.VeryActiveMinutes)
	if b.Weight != nil {
		line("   * Weight: %.1f kg", *b.Weight)
	}
	line("")
	line(separator)

	return errs
}

func statusLabel(s MetricStatus) string {
	return strings.ToUpper(string(s))
}

func adviceLabel(a Advice) string {
	switch a {
	case AdviceGoHard:
		return "GO HARD! System primed."
	case AdviceRestDay:
		return "REST DAY. High stress detected."
	default:
		return "STEADY. Train normally."
	}
}
