package theme

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// ThemedComponents creates tview primitives styled by a theme
type ThemedComponents struct {
	theme Theme
}

func NewThemedComponents(theme Theme) *ThemedComponents {
	return &ThemedComponents{theme: theme}
}

// NewButtonList creates the command panel list
func (tc *ThemedComponents) NewButtonList() *tview.List {
	list := tview.NewList()
	colors := tc.theme.ButtonColors()

	list.SetBackgroundColor(colors.Background)
	list.SetMainTextStyle(tcell.StyleDefault.Foreground(colors.Foreground).Background(colors.Background))
	list.SetSelectedTextColor(colors.SelectedFg)
	list.SetSelectedBackgroundColor(colors.SelectedBg)
	list.SetBorderColor(colors.Border)
	list.SetBorder(true)
	list.ShowSecondaryText(false)
	return list
}

// NewStatusBar creates a one-line status view
func (tc *ThemedComponents) NewStatusBar() *tview.TextView {
	textView := tview.NewTextView()
	colors := tc.theme.StatusColors()

	textView.SetBackgroundColor(colors.Background)
	textView.SetTextColor(colors.Foreground)
	textView.SetDynamicColors(true)
	return textView
}

// NewModal creates a message box
func (tc *ThemedComponents) NewModal() *tview.Modal {
	modal := tview.NewModal()
	colors := tc.theme.ButtonColors()

	modal.SetBackgroundColor(colors.Background)
	modal.SetTextColor(colors.Foreground)
	modal.SetButtonBackgroundColor(colors.SelectedBg)
	modal.SetButtonTextColor(colors.SelectedFg)
	return modal
}
