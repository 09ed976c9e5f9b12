// Package charts renders the dashboard charts as standalone go-echarts HTML pages.
package charts

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/2beens/fitstats/internal/analytics"
	"github.com/2beens/fitstats/internal/health"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var ErrUnknownChart = errors.New("unknown chart")

type ID string

const (
	Trend      ID = "trend"
	Energy     ID = "energy"
	Weight     ID = "weight"
	Sleep      ID = "sleep"
	Physiology ID = "physiology"
	Zones      ID = "zones"
	Weekly     ID = "weekly"
	Scatter    ID = "scatter"
)

// IDs returns every chart, in the default dashboard order.
func IDs() []ID {
	return []ID{Trend, Energy, Weight, Sleep, Physiology, Zones, Weekly, Scatter}
}

func ParseID(s string) (ID, error) {
	for _, id := range IDs() {
		if string(id) == strings.ToLower(strings.TrimSpace(s)) {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownChart, s)
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) echartsTheme() string {
	if t == ThemeDark {
		return "dark"
	}
	return "macarons"
}

type renderer interface {
	Render(w io.Writer) error
}

// Render writes the HTML page of chart id, drawn over records.
func Render(w io.Writer, id ID, records []health.HealthRecord, theme Theme) error {
	var chart renderer
	switch id {
	case Trend:
		chart = trendChart(records, theme)
	case Energy:
		chart = energyChart(records, theme)
	case Weight:
		chart = weightChart(records, theme)
	case Sleep:
		chart = sleepChart(records, theme)
	case Physiology:
		chart = physiologyChart(records, theme)
	case Zones:
		chart = zonesChart(records, theme)
	case Weekly:
		chart = weeklyChart(records, theme)
	case Scatter:
		chart = scatterChart(records, theme)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownChart, id)
	}

	if err := chart.Render(w); err != nil {
		return fmt.Errorf("render chart %s: %w", id, err)
	}
	return nil
}

func globalOpts(id ID, theme Theme, title, subtitle string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Theme:   theme.echartsTheme(),
			ChartID: "chart_" + string(id),
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
			AxisPointer: &opts.AxisPointer{
				Type: "cross",
			},
		}),
		charts.WithLegendOpts(opts.Legend{
			Show:   opts.Bool(true),
			Bottom: "bottom",
		}),
	}
}

func dates(records []health.HealthRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Date)
	}
	return out
}

// lineItems maps col to line points; untracked values become gaps.
func lineItems(records []health.HealthRecord, col health.Column) []opts.LineData {
	items := make([]opts.LineData, 0, len(records))
	for _, r := range records {
		if v, ok := r.Value(col); ok {
			items = append(items, opts.LineData{Value: v})
		} else {
			items = append(items, opts.LineData{Value: nil})
		}
	}
	return items
}

func barItems(records []health.HealthRecord, col health.Column) []opts.BarData {
	items := make([]opts.BarData, 0, len(records))
	for _, r := range records {
		v, _ := r.Value(col)
		items = append(items, opts.BarData{Value: v})
	}
	return items
}

func trendChart(records []health.HealthRecord, theme Theme) renderer {
	line := charts.NewLine()
	line.SetGlobalOptions(globalOpts(Trend, theme, "Readiness vs Resting HR", "daily form against resting heart rate")...)
	line.SetGlobalOptions(
		charts.WithYAxisOpts(opts.YAxis{Name: "Readiness"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
	)
	line.ExtendYAxis(opts.YAxis{Name: "bpm", Scale: opts.Bool(true)})

	line.SetXAxis(dates(records)).
		AddSeries("Readiness", lineItems(records, health.ColReadinessRaw)).
		AddSeries("Resting HR", lineItems(records, health.ColRestingBPM),
			charts.WithLineChartOpts(opts.LineChart{YAxisIndex: 1}),
		)
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	return line
}

func energyChart(records []health.HealthRecord, theme Theme) renderer {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOpts(Energy, theme, "Energy expenditure", "basal and active calories")...)
	bar.SetGlobalOptions(charts.WithYAxisOpts(opts.YAxis{Name: "kcal"}))

	stacked := charts.WithBarChartOpts(opts.BarChart{Stack: "total"})
	bar.SetXAxis(dates(records)).
		AddSeries("BMR", barItems(records, health.ColBMR), stacked).
		AddSeries("Active", barItems(records, health.ColActiveCalories), stacked)
	return bar
}

func weightChart(records []health.HealthRecord, theme Theme) renderer {
	line := charts.NewLine()
	line.SetGlobalOptions(globalOpts(Weight, theme, "Weight vs calories", "")...)
	line.SetGlobalOptions(charts.WithYAxisOpts(opts.YAxis{Name: "kg", Scale: opts.Bool(true)}))
	line.ExtendYAxis(opts.YAxis{Name: "kcal"})

	line.SetXAxis(dates(records)).
		AddSeries("Weight", lineItems(records, health.ColWeight)).
		AddSeries("Calories", lineItems(records, health.ColCaloriesTotal),
			charts.WithLineChartOpts(opts.LineChart{YAxisIndex: 1}),
		)
	return line
}

func sleepChart(records []health.HealthRecord, theme Theme) renderer {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOpts(Sleep, theme, "Sleep composition", "minutes per stage")...)
	bar.SetGlobalOptions(charts.WithYAxisOpts(opts.YAxis{Name: "min"}))

	stacked := charts.WithBarChartOpts(opts.BarChart{Stack: "sleep"})
	bar.SetXAxis(dates(records)).
		AddSeries("Deep", barItems(records, health.ColSleepDeep), stacked).
		AddSeries("REM", barItems(records, health.ColSleepREM), stacked).
		AddSeries("Light", barItems(records, health.ColSleepLight), stacked).
		AddSeries("Awake", barItems(records, health.ColSleepAwake), stacked)
	return bar
}

// physiologyChart plots HRV and stress. A zero HRV is a sensor dropout and is drawn as a gap.
func physiologyChart(records []health.HealthRecord, theme Theme) renderer {
	hrv := make([]opts.LineData, 0, len(records))
	for _, r := range records {
		if v, ok := r.Value(health.ColRMSSD); ok && v != 0 {
			hrv = append(hrv, opts.LineData{Value: v})
		} else {
			hrv = append(hrv, opts.LineData{Value: nil})
		}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(globalOpts(Physiology, theme, "HRV and stress", "")...)
	line.SetGlobalOptions(charts.WithYAxisOpts(opts.YAxis{Name: "ms"}))
	line.ExtendYAxis(opts.YAxis{Name: "stress"})

	line.SetXAxis(dates(records)).
		AddSeries("HRV", hrv).
		AddSeries("Stress", lineItems(records, health.ColStressScore),
			charts.WithLineChartOpts(opts.LineChart{YAxisIndex: 1}),
		)
	return line
}

func zonesChart(records []health.HealthRecord, theme Theme) renderer {
	zones := analytics.ActivityZones(records)

	pie := charts.NewPie()
	title := "Activity zones"
	if zones.IsEmpty() {
		title = "Activity zones: no data"
	}
	pie.SetGlobalOptions(globalOpts(Zones, theme, title, "minutes per intensity")...)
	pie.SetGlobalOptions(charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}))

	if zones.IsEmpty() {
		pie.AddSeries("Zones", []opts.PieData{})
		return pie
	}

	pie.AddSeries("Zones", []opts.PieData{
		{Name: "Sedentary", Value: zones.Sedentary},
		{Name: "Light", Value: zones.Light},
		{Name: "Moderate", Value: zones.Moderate},
		{Name: "Very active", Value: zones.VeryActive},
	})
	pie.SetSeriesOptions(charts.WithPieChartOpts(opts.PieChart{Radius: []string{"40%", "70%"}}))
	return pie
}

func weeklyChart(records []health.HealthRecord, theme Theme) renderer {
	pattern := analytics.WeeklyPattern(records)
	days := make([]string, 0, len(pattern))
	items := make([]opts.BarData, 0, len(pattern))
	for _, wd := range pattern {
		days = append(days, wd.Day)
		items = append(items, opts.BarData{Value: analytics.Round(wd.Average, 2)})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOpts(Weekly, theme, "Weekly pattern", "mean readiness per weekday")...)
	bar.SetXAxis(days).AddSeries("Readiness", items)
	return bar
}

func scatterChart(records []health.HealthRecord, theme Theme) renderer {
	points := analytics.ScatterPairs(records)
	items := make([]opts.ScatterData, 0, len(points))
	for _, p := range points {
		items = append(items, opts.ScatterData{
			Name:  p.Date,
			Value: []interface{}{p.X, p.Y},
		})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(globalOpts(Scatter, theme, "Calories vs sleep score", "")...)
	scatter.SetGlobalOptions(
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "kcal", Scale: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "sleep score", Scale: opts.Bool(true)}),
	)
	scatter.AddSeries("Days", items)
	return scatter
}
