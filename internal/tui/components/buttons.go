package components

import (
	"fmt"

	"github.com/rivo/tview"

	"ssv/internal/theme"
)

// ButtonItem is one entry of the command panel. Toggle is nil for plain
// commands and reports the current state for toggles.
type ButtonItem struct {
	Label    string
	Key      rune
	Toggle   func() bool
	Selected func()
}

// Text returns the label shown in the panel.
func (b ButtonItem) Text() string {
	if b.Toggle == nil {
		return b.Label
	}
	mark := " "
	if b.Toggle() {
		mark = "x"
	}
	return fmt.Sprintf("[%s[] %s", mark, b.Label)
}

// ButtonPanel is the column of command buttons beside the map.
type ButtonPanel struct {
	list  *tview.List
	items []ButtonItem
}

// NewButtonPanel creates the panel.
func NewButtonPanel(items []ButtonItem) *ButtonPanel {
	list := theme.NewThemedComponents(theme.Current()).NewButtonList()
	list.SetTitle(" Commands ")
	p := &ButtonPanel{list: list, items: items}
	for _, item := range items {
		list.AddItem(item.Text(), "", item.Key, item.Selected)
	}
	return p
}

// GetView returns the list primitive.
func (p *ButtonPanel) GetView() *tview.List {
	return p.list
}

// Refresh redraws the toggle marks.
func (p *ButtonPanel) Refresh() {
	for i, item := range p.items {
		p.list.SetItemText(i, item.Text(), "")
	}
}
