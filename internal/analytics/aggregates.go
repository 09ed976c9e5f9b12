package analytics

import (
	"time"

	"github.com/2beens/fitstats/internal/health"
)

// WeekdayAverage is the mean readiness of one weekday, rounded to one decimal. A weekday without samples
// reports Average 0 with Samples 0, so "no data" can be told apart from a true zero.
type WeekdayAverage struct {
	Day     string  `json:"day"`
	Average float64 `json:"average"`
	Samples int     `json:"samples"`
}

var mondayFirst = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// WeeklyPattern averages readiness_raw per weekday, Monday first.
func WeeklyPattern(records []health.HealthRecord) []WeekdayAverage {
	var sums [7]float64
	var counts [7]int
	for _, r := range records {
		v, ok := r.Value(health.ColReadinessRaw)
		if !ok {
			continue
		}
		day, err := time.Parse(health.DateLayout, r.Date)
		if err != nil {
			continue
		}
		sums[day.Weekday()] += v
		counts[day.Weekday()]++
	}

	pattern := make([]WeekdayAverage, 0, len(mondayFirst))
	for _, wd := range mondayFirst {
		avg := 0.0
		if counts[wd] > 0 {
			avg = Round(sums[wd]/float64(counts[wd]), 1)
		}
		pattern = append(pattern, WeekdayAverage{
			Day:     wd.String()[:3],
			Average: avg,
			Samples: counts[wd],
		})
	}
	return pattern
}

// ZoneTotals are the summed minutes per activity intensity zone.
type ZoneTotals struct {
	Sedentary  float64 `json:"sedentary"`
	Light      float64 `json:"light"`
	Moderate   float64 `json:"moderate"`
	VeryActive float64 `json:"veryActive"`
}

// IsEmpty reports "no data": all four totals are zero.
func (z ZoneTotals) IsEmpty() bool {
	return z.Total() == 0
}

func (z ZoneTotals) Total() float64 {
	return z.Sedentary + z.Light + z.Moderate + z.VeryActive
}

func ActivityZones(records []health.HealthRecord) ZoneTotals {
	var z ZoneTotals
	for _, r := range records {
		z.Sedentary += r.SedentaryMinutes
		z.Light += r.LightlyActiveMinutes
		z.Moderate += r.ModeratelyActiveMinutes
		z.VeryActive += r.VeryActiveMinutes
	}
	return z
}

type ScatterPoint struct {
	X    float64 `json:"x"` // calories_total
	Y    float64 `json:"y"` // overall_score
	Date string  `json:"date"`
}

// ScatterPairs pairs total calories with the sleep score, for days having both above zero.
func ScatterPairs(records []health.HealthRecord) []ScatterPoint {
	points := make([]ScatterPoint, 0, len(records))
	for _, r := range records {
		if r.CaloriesTotal <= 0 {
			continue
		}
		score, ok := r.Value(health.ColOverallScore)
		if !ok || score <= 0 {
			continue
		}
		points = append(points, ScatterPoint{
			X:    r.CaloriesTotal,
			Y:    score,
			Date: r.Date,
		})
	}
	return points
}

type HeatmapDay struct {
	Date    string  `json:"date"`
	Minutes float64 `json:"minutes"`
	Level   int     `json:"level"`
}

// very active minutes thresholds, a day above threshold i gets level i+1
var heatmapThresholds = []float64{0, 30, 60, 90, 120, 150}

// HeatmapLevel buckets very active minutes into levels 0 to 6.
func HeatmapLevel(minutes float64) int {
	level := 0
	for i, th := range heatmapThresholds {
		if minutes > th {
			level = i + 1
		}
	}
	return level
}

func HeatmapLevels(records []health.HealthRecord) []HeatmapDay {
	days := make([]HeatmapDay, 0, len(records))
	for _, r := range records {
		days = append(days, HeatmapDay{
			Date:    r.Date,
			Minutes: r.VeryActiveMinutes,
			Level:   HeatmapLevel(r.VeryActiveMinutes),
		})
	}
	return days
}
