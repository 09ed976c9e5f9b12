package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `[
  {"date": "2024-01-01", "resting_bpm": 55.5, "rmssd": null, "spo2_avg": 96.1, "readiness_raw": 0.4,
   "overall_score": 81, "sleep_deep": 70, "sleep_light": 240, "sleep_rem": 90, "sleep_awake": 30,
   "stress_score": 77, "bmr": 1750, "active_calories": 600, "calories_total": 2350, "intensity_index": 1.6,
   "very_active_minutes": 35, "moderately_active_minutes": 20, "lightly_active_minutes": 180,
   "sedentary_minutes": 700, "weight": 72.4, "bmi": 22.1},
  {"date": "2024-01-02", "resting_bpm": null, "sleep_deep": null, "bmr": 1750, "calories_total": 1900}
]`

func TestDecode(t *testing.T) {
	records, err := Decode([]byte(sampleJSON))
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "2024-01-01", first.Date)
	require.NotNil(t, first.RestingBPM)
	assert.Equal(t, 55.5, *first.RestingBPM)
	assert.Nil(t, first.RMSSD)
	assert.Equal(t, 70.0, first.SleepDeep)
	assert.Equal(t, 35.0, first.VeryActiveMinutes)
	require.NotNil(t, first.BMI)
	assert.Equal(t, 22.1, *first.BMI)

	// null or missing non-nullable numbers decode to zero
	second := records[1]
	assert.Nil(t, second.RestingBPM)
	assert.Zero(t, second.SleepDeep)
	assert.Zero(t, second.ActiveCalories)
	assert.Equal(t, 1900.0, second.CaloriesTotal)

	empty, err := Decode([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, empty)

	for _, raw := range []string{`{"date": "2024-01-01"}`, `null`, `[{"date": 5}]`, `not json`} {
		_, err = Decode([]byte(raw))
		assert.ErrorIs(t, err, ErrMalformedDataset, raw)
	}
}

func TestLoader_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard_data.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o644))

	loader := NewLoader(5 * time.Second)
	records, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	_, err = loader.Load(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, ErrLoadFailed)
}

func TestLoader_LoadURL(t *testing.T) {
	requests := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/dashboard_data.json", func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleJSON))
	})
	mux.HandleFunc("/broken.json", func(w http.ResponseWriter, r *http.Request) {
		requests++
		http.Error(w, "nope", http.StatusInternalServerError)
	})
	mux.HandleFunc("/object.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"records": []}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	loader := NewLoader(5 * time.Second)

	records, err := loader.Load(context.Background(), server.URL+"/dashboard_data.json")
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, 1, requests)

	_, err = loader.Load(context.Background(), server.URL+"/broken.json")
	assert.ErrorIs(t, err, ErrLoadFailed)
	assert.Contains(t, err.Error(), "status 500")
	// no retries
	assert.Equal(t, 2, requests)

	_, err = loader.Load(context.Background(), server.URL+"/object.json")
	assert.ErrorIs(t, err, ErrMalformedDataset)
}
