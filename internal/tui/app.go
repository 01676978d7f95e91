// Package tui is the interactive subsector viewer: the map, the command
// buttons and a status line.
package tui

import (
	"github.com/rivo/tview"

	"ssv/internal/capture"
	"ssv/internal/hexgrid"
	"ssv/internal/log"
	"ssv/internal/sector"
	"ssv/internal/tui/components"
	"ssv/internal/tui/handlers"
)

// buttonColumns is the width of the command panel.
const buttonColumns = 20

// Options configures the viewer.
type Options struct {
	// Source names the data file in the status bar.
	Source    string
	PrintPath string
}

// App represents the main tview application
type App struct {
	app        *tview.Application
	controller *Controller

	pages    *tview.Pages
	mainGrid *tview.Grid

	mapView      *components.MapView
	buttons      *components.ButtonPanel
	status       *components.StatusComponent
	inputHandler *handlers.InputHandler
}

// NewApplication creates and configures the viewer for s.
func NewApplication(s *sector.Sector, opts Options) *App {
	a := &App{
		app:          tview.NewApplication(),
		controller:   NewController(s, opts.PrintPath),
		inputHandler: handlers.NewInputHandler(),
	}

	a.mapView = components.NewMapView(s).
		SetPreview(a.controller.Preview).
		SetClickFunc(a.click).
		SetMoveFunc(a.move)
	a.buttons = components.NewButtonPanel(a.buttonItems())
	a.status = components.NewStatusComponent(opts.Source)

	a.setupUI()
	a.setupInputHandling()
	return a
}

func (a *App) buttonItems() []components.ButtonItem {
	items := make([]components.ButtonItem, 0, len(Buttons))
	for _, b := range Buttons {
		item := components.ButtonItem{
			Label:    b.Label,
			Key:      b.Key,
			Selected: func() { a.do(b.Action) },
		}
		if b.Overlay != nil {
			kind := *b.Overlay
			item.Toggle = func() bool { return a.controller.Sector().Overlays().Enabled(kind) }
		}
		items = append(items, item)
	}
	return items
}

// setupUI configures the user interface layout
func (a *App) setupUI() {
	a.mainGrid = tview.NewGrid().
		SetRows(0, 1).
		SetColumns(0, buttonColumns).
		SetBorders(false)

	a.mainGrid.AddItem(a.mapView, 0, 0, 1, 1, 0, 0, false)
	a.mainGrid.AddItem(a.buttons.GetView(), 0, 1, 1, 1, 0, 0, true)
	a.mainGrid.AddItem(a.status.GetView(), 1, 0, 1, 2, 0, 0, false)

	a.pages = tview.NewPages()
	a.pages.AddPage("main", a.mainGrid, true, true)

	a.app.SetRoot(a.pages, true).EnableMouse(true)
}

func (a *App) setupInputHandling() {
	a.inputHandler.SetCallbacks(a.Stop, a.finish, func(r rune) bool {
		b, ok := ButtonFor(r)
		if !ok {
			return false
		}
		a.do(b.Action)
		return true
	})
	a.app.SetInputCapture(a.inputHandler.HandleKeyEvent)
}

func (a *App) do(action Action) {
	if action == ActionQuit {
		a.Stop()
		return
	}
	msg, err := a.controller.Do(action)
	a.report(msg, err)
	a.buttons.Refresh()
}

func (a *App) finish() {
	msg, err := a.controller.Finish()
	a.report(msg, err)
}

func (a *App) click(p hexgrid.Point, b capture.Button) {
	msg, err := a.controller.Click(p, b)
	a.report(msg, err)
}

func (a *App) move(p hexgrid.Point) {
	a.controller.Move(p)
}

func (a *App) report(msg string, err error) {
	a.status.SetCapturing(a.controller.Capturing())
	if err != nil {
		log.Warn("Command failed", "error", err)
		a.status.SetError(err)
		return
	}
	a.status.SetMessage(msg)
}

// Run starts the event loop and blocks until the viewer quits.
func (a *App) Run() error {
	log.Info("Starting viewer")
	return a.app.Run()
}

// Stop ends the event loop.
func (a *App) Stop() {
	log.Info("Stopping viewer")
	a.app.Stop()
}
