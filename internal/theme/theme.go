package theme

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"
)

// MapColors defines the colours of the terminal map view
type MapColors struct {
	Background tcell.Color
	Grid       tcell.Color
	Route      tcell.Color
	Border     tcell.Color
	Session    tcell.Color
	Preview    tcell.Color
	Garden     tcell.Color
	Desert     tcell.Color
	Asteroid   tcell.Color
	AmberZone  tcell.Color
	RedZone    tcell.Color
	Label      tcell.Color
	Title      tcell.Color
}

// ButtonColors defines the colours of the command panel
type ButtonColors struct {
	Background tcell.Color
	Foreground tcell.Color
	SelectedBg tcell.Color
	SelectedFg tcell.Color
	Active     tcell.Color // Toggle buttons that are on
	Border     tcell.Color
}

// StatusColors defines the colours of the status line
type StatusColors struct {
	Background tcell.Color
	Foreground tcell.Color
	ErrorFg    tcell.Color
	CaptureFg  tcell.Color
}

// Theme interface defines all theming properties
type Theme interface {
	Name() string
	MapColors() MapColors
	ButtonColors() ButtonColors
	StatusColors() StatusColors
}

// ThemeManager manages theme selection
type ThemeManager struct {
	currentTheme Theme
	themes       map[string]Theme
}

// NewThemeManager creates a manager with the built-in themes, telix selected
func NewThemeManager() *ThemeManager {
	tm := &ThemeManager{themes: make(map[string]Theme)}
	tm.RegisterTheme(NewTelixTheme())
	tm.RegisterTheme(NewPaperTheme())
	tm.SetTheme("telix")
	return tm
}

// RegisterTheme registers a new theme
func (tm *ThemeManager) RegisterTheme(theme Theme) {
	tm.themes[theme.Name()] = theme
}

// SetTheme sets the current theme by name
func (tm *ThemeManager) SetTheme(name string) error {
	if theme, exists := tm.themes[name]; exists {
		tm.currentTheme = theme
		return nil
	}
	return fmt.Errorf("theme '%s' not found", name)
}

// Current returns the current theme
func (tm *ThemeManager) Current() Theme {
	return tm.currentTheme
}

// Available returns the registered theme names in order
func (tm *ThemeManager) Available() []string {
	names := make([]string, 0, len(tm.themes))
	for name := range tm.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultThemeManager = NewThemeManager()

// GetThemeManager returns the global theme manager
func GetThemeManager() *ThemeManager {
	return defaultThemeManager
}

// Current returns the current theme from the global manager
func Current() Theme {
	return defaultThemeManager.Current()
}
