package health

import "math"

// HealthRecord holds the metrics of one calendar day.
// Pointer fields are nullable: nil means the metric was not tracked that day.
type HealthRecord struct {
	Date string `json:"date"`

	RestingBPM   *float64 `json:"resting_bpm"`
	RMSSD        *float64 `json:"rmssd"`
	SpO2Avg      *float64 `json:"spo2_avg"`
	ReadinessRaw *float64 `json:"readiness_raw"`
	OverallScore *float64 `json:"overall_score"`

	SleepDeep  float64 `json:"sleep_deep"`
	SleepLight float64 `json:"sleep_light"`
	SleepREM   float64 `json:"sleep_rem"`
	SleepAwake float64 `json:"sleep_awake"`

	StressScore *float64 `json:"stress_score"`

	BMR                     float64 `json:"bmr"`
	ActiveCalories          float64 `json:"active_calories"`
	CaloriesTotal           float64 `json:"calories_total"`
	IntensityIndex          float64 `json:"intensity_index"`
	VeryActiveMinutes       float64 `json:"very_active_minutes"`
	ModeratelyActiveMinutes float64 `json:"moderately_active_minutes"`
	LightlyActiveMinutes    float64 `json:"lightly_active_minutes"`
	SedentaryMinutes        float64 `json:"sedentary_minutes"`

	Weight *float64 `json:"weight"`
	BMI    *float64 `json:"bmi"`
}

// Column names a numeric field of HealthRecord, using its JSON name.
type Column string

const (
	ColRestingBPM              Column = "resting_bpm"
	ColRMSSD                   Column = "rmssd"
	ColSpO2Avg                 Column = "spo2_avg"
	ColReadinessRaw            Column = "readiness_raw"
	ColOverallScore            Column = "overall_score"
	ColSleepDeep               Column = "sleep_deep"
	ColSleepLight              Column = "sleep_light"
	ColSleepREM                Column = "sleep_rem"
	ColSleepAwake              Column = "sleep_awake"
	ColStressScore             Column = "stress_score"
	ColBMR                     Column = "bmr"
	ColActiveCalories          Column = "active_calories"
	ColCaloriesTotal           Column = "calories_total"
	ColIntensityIndex          Column = "intensity_index"
	ColVeryActiveMinutes       Column = "very_active_minutes"
	ColModeratelyActiveMinutes Column = "moderately_active_minutes"
	ColLightlyActiveMinutes    Column = "lightly_active_minutes"
	ColSedentaryMinutes        Column = "sedentary_minutes"
	ColWeight                  Column = "weight"
	ColBMI                     Column = "bmi"
)

// Columns lists every numeric column in file order.
var Columns = []Column{
	ColRestingBPM, ColRMSSD, ColSpO2Avg, ColReadinessRaw, ColOverallScore,
	ColSleepDeep, ColSleepLight, ColSleepREM, ColSleepAwake,
	ColStressScore,
	ColBMR, ColActiveCalories, ColCaloriesTotal, ColIntensityIndex,
	ColVeryActiveMinutes, ColModeratelyActiveMinutes, ColLightlyActiveMinutes, ColSedentaryMinutes,
	ColWeight, ColBMI,
}

func ParseColumn(name string) (Column, bool) {
	for _, c := range Columns {
		if string(c) == name {
			return c, true
		}
	}
	return "", false
}

// Nullable reports whether the column may hold "not tracked" values.
func (c Column) Nullable() bool {
	switch c {
	case ColRestingBPM, ColRMSSD, ColSpO2Avg, ColReadinessRaw, ColOverallScore,
		ColStressScore, ColWeight, ColBMI:
		return true
	}
	return false
}

// Value returns the column value; ok is false for null, NaN or unknown columns.
func (r HealthRecord) Value(col Column) (float64, bool) {
	switch col {
	case ColRestingBPM:
		return deref(r.RestingBPM)
	case ColRMSSD:
		return deref(r.RMSSD)
	case ColSpO2Avg:
		return deref(r.SpO2Avg)
	case ColReadinessRaw:
		return deref(r.ReadinessRaw)
	case ColOverallScore:
		return deref(r.OverallScore)
	case ColStressScore:
		return deref(r.StressScore)
	case ColWeight:
		return deref(r.Weight)
	case ColBMI:
		return deref(r.BMI)
	case ColSleepDeep:
		return valid(r.SleepDeep)
	case ColSleepLight:
		return valid(r.SleepLight)
	case ColSleepREM:
		return valid(r.SleepREM)
	case ColSleepAwake:
		return valid(r.SleepAwake)
	case ColBMR:
		return valid(r.BMR)
	case ColActiveCalories:
		return valid(r.ActiveCalories)
	case ColCaloriesTotal:
		return valid(r.CaloriesTotal)
	case ColIntensityIndex:
		return valid(r.IntensityIndex)
	case ColVeryActiveMinutes:
		return valid(r.VeryActiveMinutes)
	case ColModeratelyActiveMinutes:
		return valid(r.ModeratelyActiveMinutes)
	case ColLightlyActiveMinutes:
		return valid(r.LightlyActiveMinutes)
	case ColSedentaryMinutes:
		return valid(r.SedentaryMinutes)
	}
	return 0, false
}

// SleepTotal is the tracked sleep of the day in minutes, all stages.
func (r HealthRecord) SleepTotal() float64 {
	return r.SleepDeep + r.SleepLight + r.SleepREM + r.SleepAwake
}

func deref(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return valid(*v)
}

func valid(v float64) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Float is a helper for building nullable values.
func Float(v float64) *float64 {
	return &v
}
