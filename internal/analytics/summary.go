package analytics

import "github.com/2beens/fitstats/internal/health"

type ReadinessBand string

const (
	BandPeak    ReadinessBand = "peak"
	BandSteady  ReadinessBand = "steady"
	BandTired   ReadinessBand = "tired"
	BandUnknown ReadinessBand = "unknown"
)

// ReadinessBandOf maps the readiness z-score: above 1 is peak, below -1 is tired.
func ReadinessBandOf(v *float64) ReadinessBand {
	switch {
	case v == nil:
		return BandUnknown
	case *v > 1:
		return BandPeak
	case *v < -1:
		return BandTired
	default:
		return BandSteady
	}
}

// KPISummary backs the KPI grid. Nil values mean no data in the range.
type KPISummary struct {
	Records          int           `json:"records"`
	Readiness        *float64      `json:"readiness"`
	ReadinessBand    ReadinessBand `json:"readinessBand"`
	AvgHRV           *float64      `json:"avgHrv"`
	AvgStress        *float64      `json:"avgStress"`
	AvgRestingBPM    *float64      `json:"avgRestingBpm"`
	SleepQualityPct  *float64      `json:"sleepQualityPct"`
	AvgSleepScore    *float64      `json:"avgSleepScore"`
	AvgSpO2          *float64      `json:"avgSpo2"`
	AvgCaloriesTotal *float64      `json:"avgCaloriesTotal"`
}

func Summary(records []health.HealthRecord) KPISummary {
	readiness := LastValid(records, health.ColReadinessRaw)
	return KPISummary{
		Records:          len(records),
		Readiness:        readiness,
		ReadinessBand:    ReadinessBandOf(readiness),
		AvgHRV:           OptionalValue(Average(records, health.ColRMSSD)),
		AvgStress:        OptionalValue(Average(records, health.ColStressScore)),
		AvgRestingBPM:    OptionalValue(Average(records, health.ColRestingBPM)),
		SleepQualityPct:  OptionalValue(SleepQuality(records)),
		AvgSleepScore:    OptionalValue(Average(records, health.ColOverallScore)),
		AvgSpO2:          OptionalValue(Average(records, health.ColSpO2Avg)),
		AvgCaloriesTotal: OptionalValue(Average(records, health.ColCaloriesTotal)),
	}
}
