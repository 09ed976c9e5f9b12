package preferences

import (
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/fitstats/internal/charts"
)

var (
	ErrInvalidThemeMode  = errors.New("invalid theme mode")
	ErrInvalidChartOrder = errors.New("invalid chart order")
)

// ThemeMode is what the user picked.
type ThemeMode string

const (
	ModeLight  ThemeMode = "light"
	ModeDark   ThemeMode = "dark"
	ModeSystem ThemeMode = "system"

	DefaultThemeMode = ModeSystem
)

func ParseThemeMode(s string) (ThemeMode, error) {
	switch m := ThemeMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeLight, ModeDark, ModeSystem:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidThemeMode, s)
	}
}

// ThemeState is the resolved state: the explicit modes, or system mode
// split by the current OS preference.
type ThemeState string

const (
	StateLight       ThemeState = "light"
	StateDark        ThemeState = "dark"
	StateSystemLight ThemeState = "system-light"
	StateSystemDark  ThemeState = "system-dark"
)

// Resolve maps a mode and the OS dark preference to a state.
// An unknown mode is treated as system.
func Resolve(mode ThemeMode, systemDark bool) ThemeState {
	switch mode {
	case ModeLight:
		return StateLight
	case ModeDark:
		return StateDark
	}
	if systemDark {
		return StateSystemDark
	}
	return StateSystemLight
}

// Rendered collapses the state into the binary theme actually drawn.
func (s ThemeState) Rendered() charts.Theme {
	if s == StateDark || s == StateSystemDark {
		return charts.ThemeDark
	}
	return charts.ThemeLight
}

func (s ThemeState) Mode() ThemeMode {
	switch s {
	case StateLight:
		return ModeLight
	case StateDark:
		return ModeDark
	default:
		return ModeSystem
	}
}

// Theme is the theme state machine. Events are a mode pick by the user
// and a change of the OS color scheme.
type Theme struct {
	mode       ThemeMode
	systemDark bool
}

func NewTheme(mode ThemeMode, systemDark bool) *Theme {
	t := &Theme{systemDark: systemDark}
	t.SetMode(mode)
	return t
}

func (t *Theme) SetMode(mode ThemeMode) {
	if _, err := ParseThemeMode(string(mode)); err != nil {
		mode = ModeSystem
	}
	t.mode = mode
}

func (t *Theme) SetSystemDark(dark bool) {
	t.systemDark = dark
}

func (t *Theme) Mode() ThemeMode {
	return t.mode
}

func (t *Theme) State() ThemeState {
	return Resolve(t.mode, t.systemDark)
}

func (t *Theme) Rendered() charts.Theme {
	return t.State().Rendered()
}
