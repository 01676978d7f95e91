package components

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"ssv/internal/theme"
)

// StatusComponent manages the bottom status bar
type StatusComponent struct {
	view      *tview.TextView
	colors    theme.StatusColors
	source    string
	capturing bool
	message   string
	isError   bool
}

// NewStatusComponent creates a status bar for the named data file.
func NewStatusComponent(source string) *StatusComponent {
	view := theme.NewThemedComponents(theme.Current()).NewStatusBar()
	view.SetTextAlign(tview.AlignLeft).SetWrap(false)
	sc := &StatusComponent{
		view:    view,
		colors:  theme.Current().StatusColors(),
		source:  source,
		message: "Ready",
	}
	sc.update()
	return sc
}

// GetView returns the status TextView.
func (sc *StatusComponent) GetView() *tview.TextView {
	return sc.view
}

// SetMessage shows an informational message.
func (sc *StatusComponent) SetMessage(msg string) {
	if msg == "" {
		return
	}
	sc.message, sc.isError = msg, false
	sc.update()
}

// SetError shows err in the error colour.
func (sc *StatusComponent) SetError(err error) {
	sc.message, sc.isError = err.Error(), true
	sc.update()
}

// SetCapturing marks whether a border is being drawn.
func (sc *StatusComponent) SetCapturing(on bool) {
	sc.capturing = on
	sc.update()
}

// Text returns the plain status line.
func (sc *StatusComponent) Text() string {
	return strings.TrimRight(sc.view.GetText(true), "\n")
}

func (sc *StatusComponent) update() {
	mode := "VIEW"
	if sc.capturing {
		mode = fmt.Sprintf("[%s]BORDER[%s]", colorName(sc.colors.CaptureFg), colorName(sc.colors.Foreground))
	}
	msg := tview.Escape(sc.message)
	if sc.isError {
		msg = fmt.Sprintf("[%s]%s[%s]", colorName(sc.colors.ErrorFg), msg, colorName(sc.colors.Foreground))
	}
	sc.view.SetText(fmt.Sprintf(" %s | %s | %s", tview.Escape(sc.source), mode, msg))
}

func colorName(c tcell.Color) string {
	return fmt.Sprintf("#%06x", c.Hex())
}
