package tui

import (
	"errors"
	"fmt"

	"ssv/internal/capture"
	"ssv/internal/hexgrid"
	"ssv/internal/log"
	"ssv/internal/render"
	"ssv/internal/sector"
)

// Action is one command of the button panel.
type Action int

const (
	ActionMarkBorder Action = iota
	ActionClearBorder
	ActionPrintMap
	ActionAllegiance
	ActionTradeCodes
	ActionUWP
	ActionQuit
)

// Button describes one entry of the command panel.
type Button struct {
	Action Action
	Label  string
	Key    rune
	// Overlay is set for toggle buttons.
	Overlay *sector.OverlayKind
}

func overlay(k sector.OverlayKind) *sector.OverlayKind { return &k }

// Buttons lists the panel in display order.
var Buttons = []Button{
	{Action: ActionMarkBorder, Label: "MARK BORDER", Key: 'm'},
	{Action: ActionClearBorder, Label: "CLEAR BORDER", Key: 'c'},
	{Action: ActionPrintMap, Label: "PRINT MAP", Key: 'p'},
	{Action: ActionAllegiance, Label: "ALLEGIANCE", Key: 'a', Overlay: overlay(sector.OverlayAllegiance)},
	{Action: ActionTradeCodes, Label: "TRADE CODES", Key: 't', Overlay: overlay(sector.OverlayTradeNotes)},
	{Action: ActionUWP, Label: "UWP", Key: 'u', Overlay: overlay(sector.OverlayUWP)},
	{Action: ActionQuit, Label: "QUIT", Key: 'q'},
}

// ButtonFor finds the button bound to key.
func ButtonFor(key rune) (Button, bool) {
	for _, b := range Buttons {
		if b.Key == key {
			return b, true
		}
	}
	return Button{}, false
}

// Printer writes the map of s to path.
type Printer func(path string, s *sector.Sector) error

// Controller carries out panel commands and map clicks against a sector. It
// holds no tview state so the viewer logic can run headless.
type Controller struct {
	sector    *sector.Sector
	session   *capture.Session
	printPath string
	printer   Printer
}

// NewController creates a controller that prints to printPath.
func NewController(s *sector.Sector, printPath string) *Controller {
	return &Controller{
		sector:    s,
		session:   capture.NewSession(s),
		printPath: printPath,
		printer:   render.PrintMap,
	}
}

// SetPrinter replaces the map printer.
func (c *Controller) SetPrinter(p Printer) { c.printer = p }

// Sector returns the sector being viewed.
func (c *Controller) Sector() *sector.Sector { return c.sector }

// Capturing reports whether a border chain is in progress.
func (c *Controller) Capturing() bool { return c.session.State() != capture.Idle }

// Do performs a panel action and returns a status message.
func (c *Controller) Do(a Action) (string, error) {
	switch a {
	case ActionMarkBorder:
		if c.Capturing() {
			return c.finish()
		}
		if err := c.session.Start(); err != nil {
			return "", err
		}
		return "Marking border: click points, right-click or Esc to end", nil
	case ActionClearBorder:
		if c.Capturing() {
			if _, err := c.session.Finish(); err != nil {
				return "", err
			}
		}
		n, err := c.session.Clear()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Cleared %d border segment(s)", n), nil
	case ActionPrintMap:
		if err := c.printer(c.printPath, c.sector); err != nil {
			return "", err
		}
		return fmt.Sprintf("Map printed to %s", c.printPath), nil
	case ActionAllegiance:
		return c.toggle(sector.OverlayAllegiance), nil
	case ActionTradeCodes:
		return c.toggle(sector.OverlayTradeNotes), nil
	case ActionUWP:
		return c.toggle(sector.OverlayUWP), nil
	case ActionQuit:
		return "", nil
	}
	return "", fmt.Errorf("unknown action %d", a)
}

func (c *Controller) toggle(k sector.OverlayKind) string {
	on := c.sector.Toggle(k)
	state := "off"
	if on {
		state = "on"
	}
	log.Debug("Overlay toggled", "overlay", k.String(), "on", on)
	return fmt.Sprintf("%s labels %s", k, state)
}

func (c *Controller) finish() (string, error) {
	n, err := c.session.Finish()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Border finished: %d segment(s)", n), nil
}

// Finish ends a border chain if one is in progress.
func (c *Controller) Finish() (string, error) {
	if !c.Capturing() {
		return "", nil
	}
	return c.finish()
}

// Click forwards a map click to the capture session. Clicks outside a capture
// are ignored.
func (c *Controller) Click(p hexgrid.Point, b capture.Button) (string, error) {
	if !c.Capturing() {
		return "", nil
	}
	if err := c.session.Click(p, b); err != nil {
		if errors.Is(err, sector.ErrCapacityExceeded) {
			return "", fmt.Errorf("border list full: %w", err)
		}
		return "", err
	}
	if b == capture.ButtonSecondary {
		return fmt.Sprintf("Border finished: %d session segment(s)", c.sector.SessionBorderCount()), nil
	}
	return fmt.Sprintf("Point %s", hexgrid.Snap(hexgrid.Clamp(p))), nil
}

// Move updates the rubber-band preview.
func (c *Controller) Move(p hexgrid.Point) {
	if c.Capturing() {
		c.session.Move(p)
	}
}

// Preview returns the uncommitted segment to draw, if any.
func (c *Controller) Preview() (hexgrid.Segment, bool) {
	return c.session.Preview()
}
