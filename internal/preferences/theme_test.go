package preferences

import (
	"testing"

	"github.com/2beens/fitstats/internal/charts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// INFO: https://github.com/go-redis/redis/issues/1029
		goleak.IgnoreTopFunction(
			"github.com/go-redis/redis/v8/internal/pool.(*ConnPool).reaper",
		),
	)
}

func TestParseThemeMode(t *testing.T) {
	for in, want := range map[string]ThemeMode{
		"light":   ModeLight,
		"DARK":    ModeDark,
		" system": ModeSystem,
	} {
		got, err := ParseThemeMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseThemeMode("sepia")
	assert.ErrorIs(t, err, ErrInvalidThemeMode)
	_, err = ParseThemeMode("")
	assert.ErrorIs(t, err, ErrInvalidThemeMode)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		mode       ThemeMode
		systemDark bool
		state      ThemeState
		rendered   charts.Theme
	}{
		{ModeLight, false, StateLight, charts.ThemeLight},
		{ModeLight, true, StateLight, charts.ThemeLight},
		{ModeDark, false, StateDark, charts.ThemeDark},
		{ModeDark, true, StateDark, charts.ThemeDark},
		{ModeSystem, false, StateSystemLight, charts.ThemeLight},
		{ModeSystem, true, StateSystemDark, charts.ThemeDark},
		{ThemeMode("bogus"), true, StateSystemDark, charts.ThemeDark},
		{ThemeMode(""), false, StateSystemLight, charts.ThemeLight},
	}
	for _, tt := range tests {
		state := Resolve(tt.mode, tt.systemDark)
		assert.Equal(t, tt.state, state, "%s/%t", tt.mode, tt.systemDark)
		assert.Equal(t, tt.rendered, state.Rendered())
	}
}

func TestTheme_Transitions(t *testing.T) {
	theme := NewTheme(ModeSystem, false)
	assert.Equal(t, StateSystemLight, theme.State())

	theme.SetSystemDark(true)
	assert.Equal(t, StateSystemDark, theme.State())
	assert.Equal(t, charts.ThemeDark, theme.Rendered())

	// an explicit pick ignores the OS preference
	theme.SetMode(ModeLight)
	assert.Equal(t, StateLight, theme.State())
	theme.SetSystemDark(false)
	assert.Equal(t, StateLight, theme.State())

	theme.SetMode(ModeDark)
	assert.Equal(t, charts.ThemeDark, theme.Rendered())
	assert.Equal(t, ModeDark, theme.State().Mode())

	theme.SetMode("neon")
	assert.Equal(t, ModeSystem, theme.Mode())
	assert.Equal(t, StateSystemLight, theme.State())
	assert.Equal(t, ModeSystem, theme.State().Mode())
}

func TestParseChartOrder(t *testing.T) {
	order, err := ParseChartOrder([]string{"scatter", "weekly", "zones", "physiology", "sleep", "weight", "energy", "trend"})
	require.NoError(t, err)
	assert.Equal(t, charts.Scatter, order[0])
	assert.Equal(t, charts.Trend, order[7])

	_, err = ParseChartOrder([]string{"trend", "energy"})
	assert.ErrorIs(t, err, ErrInvalidChartOrder)

	_, err = ParseChartOrder([]string{"trend", "trend", "zones", "physiology", "sleep", "weight", "energy", "weekly"})
	assert.ErrorIs(t, err, ErrInvalidChartOrder)

	_, err = ParseChartOrder([]string{"pie", "scatter", "zones", "physiology", "sleep", "weight", "energy", "weekly"})
	assert.ErrorIs(t, err, ErrInvalidChartOrder)

	assert.Equal(t, charts.IDs(), DefaultChartOrder())
}
