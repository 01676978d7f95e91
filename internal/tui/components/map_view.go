package components

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"ssv/internal/capture"
	"ssv/internal/hexgrid"
	"ssv/internal/sector"
	"ssv/internal/theme"
)

// MapView draws a sector with terminal cells and turns mouse input into
// canvas coordinates.
type MapView struct {
	*tview.Box
	sector  *sector.Sector
	colors  theme.MapColors
	preview func() (hexgrid.Segment, bool)
	onClick func(hexgrid.Point, capture.Button)
	onMove  func(hexgrid.Point)
}

// NewMapView creates a map view for s.
func NewMapView(s *sector.Sector) *MapView {
	colors := theme.Current().MapColors()
	box := tview.NewBox().SetBorder(true).SetTitle(" Subsector ")
	box.SetBackgroundColor(colors.Background)
	box.SetBorderColor(colors.Grid)
	return &MapView{Box: box, sector: s, colors: colors}
}

// SetPreview sets the source of the rubber-band segment.
func (m *MapView) SetPreview(fn func() (hexgrid.Segment, bool)) *MapView {
	m.preview = fn
	return m
}

// SetClickFunc sets the handler for clicks inside the map.
func (m *MapView) SetClickFunc(fn func(hexgrid.Point, capture.Button)) *MapView {
	m.onClick = fn
	return m
}

// SetMoveFunc sets the handler for pointer motion inside the map.
func (m *MapView) SetMoveFunc(fn func(hexgrid.Point)) *MapView {
	m.onMove = fn
	return m
}

// Viewport returns the cell rectangle the canvas is drawn into.
func (m *MapView) Viewport() Viewport {
	x, y, w, h := m.GetInnerRect()
	return Viewport{X: x, Y: y, Width: w, Height: h}
}

// Draw renders the map in the same layer order as the printed map.
func (m *MapView) Draw(screen tcell.Screen) {
	m.Box.DrawForSubclass(screen, m)
	v := m.Viewport()
	if v.Empty() {
		return
	}
	bg := tcell.StyleDefault.Background(m.colors.Background)
	for cy := v.Y; cy < v.Y+v.Height; cy++ {
		for cx := v.X; cx < v.X+v.Width; cx++ {
			screen.SetContent(cx, cy, ' ', nil, bg)
		}
	}

	pad := hexgrid.Point{Y: hexgrid.TitlePad}
	for _, r := range m.sector.Routes() {
		if a, b, ok := r.Endpoints(); ok {
			m.line(screen, v, a.Add(pad), b.Add(pad), bg.Foreground(m.colors.Route))
		}
	}
	for row := 0; row < hexgrid.Rows; row++ {
		for col := 0; col < hexgrid.Columns; col++ {
			outline, err := hexgrid.HexOutline(hexgrid.Coord{X: col, Y: row})
			if err != nil {
				continue
			}
			for i := 1; i < len(outline); i++ {
				m.dots(screen, v, outline[i-1], outline[i], bg.Foreground(m.colors.Grid))
			}
		}
	}
	for _, seg := range m.sector.StaticBorders() {
		m.line(screen, v, seg.A, seg.B, bg.Foreground(m.colors.Border))
	}
	for _, seg := range m.sector.SessionBorders() {
		m.line(screen, v, seg.A, seg.B, bg.Foreground(m.colors.Session))
	}
	ov := m.sector.Overlays()
	for _, w := range m.sector.Worlds() {
		m.world(screen, v, w, ov, bg)
	}
	if m.preview != nil {
		if seg, ok := m.preview(); ok {
			m.line(screen, v, seg.A, seg.B, bg.Foreground(m.colors.Preview))
		}
	}
	if title := m.sector.Title(); title != "" {
		m.centered(screen, v, v.X+v.Width/2, v.Y, title, bg.Foreground(m.colors.Title).Bold(true))
	}
}

func (m *MapView) world(screen tcell.Screen, v Viewport, w sector.World, ov sector.Overlays, bg tcell.Style) {
	ctr, ok := hexgrid.CanvasCenter(w.Coord)
	if !ok {
		return
	}
	cx, cy := v.ToCell(ctr)

	style := bg
	switch w.Zone {
	case sector.ZoneRed:
		style = style.Background(m.colors.RedZone)
	case sector.ZoneAmber:
		style = style.Background(m.colors.AmberZone)
	}
	symbol, color := '●', m.colors.Garden
	switch w.Type {
	case sector.Desert:
		symbol, color = '○', m.colors.Desert
	case sector.Asteroid:
		symbol, color = '∴', m.colors.Asteroid
	}
	m.set(screen, v, cx, cy, symbol, style.Foreground(color))
	if w.Starport != "" {
		m.set(screen, v, cx, cy-1, []rune(w.Starport)[0], bg.Foreground(m.colors.Label))
	}

	label := bg.Foreground(m.colors.Label)
	name := w.Name
	if w.HighPopulation() {
		label = label.Bold(true)
	}
	m.centered(screen, v, cx, cy+1, name, label)

	var extra string
	if ov.UWP {
		extra = w.UWP
	}
	if ov.Allegiance && w.Allegiance != "" {
		extra = join(extra, w.Allegiance)
	}
	if ov.TradeNotes && len(w.Notes) > 0 {
		extra = join(extra, w.NotesString())
	}
	if extra != "" {
		m.centered(screen, v, cx, cy+2, extra, bg.Foreground(m.colors.Grid))
	}
}

func join(a, b string) string {
	if a == "" {
		return b
	}
	return a + " " + b
}

func (m *MapView) set(screen tcell.Screen, v Viewport, cx, cy int, r rune, style tcell.Style) {
	if v.Contains(cx, cy) {
		screen.SetContent(cx, cy, r, nil, style)
	}
}

func (m *MapView) centered(screen tcell.Screen, v Viewport, cx, cy int, text string, style tcell.Style) {
	runes := []rune(text)
	start := cx - len(runes)/2
	for i, r := range runes {
		m.set(screen, v, start+i, cy, r, style)
	}
}

// line plots a segment with a glyph matching its slope.
func (m *MapView) line(screen tcell.Screen, v Viewport, a, b hexgrid.Point, style tcell.Style) {
	x0, y0 := v.ToCell(a)
	x1, y1 := v.ToCell(b)
	glyph := slopeGlyph(x1-x0, y1-y0)
	plot(x0, y0, x1, y1, func(x, y int) { m.set(screen, v, x, y, glyph, style) })
}

func (m *MapView) dots(screen tcell.Screen, v Viewport, a, b hexgrid.Point, style tcell.Style) {
	x0, y0 := v.ToCell(a)
	x1, y1 := v.ToCell(b)
	plot(x0, y0, x1, y1, func(x, y int) { m.set(screen, v, x, y, '·', style) })
}

func slopeGlyph(dx, dy int) rune {
	switch {
	case dy == 0:
		return '─'
	case dx == 0:
		return '│'
	case abs(dx) > 2*abs(dy):
		return '─'
	case abs(dy) > 2*abs(dx):
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

// plot walks the cells of a line with Bresenham's algorithm.
func plot(x0, y0, x1, y1 int, fn func(x, y int)) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		fn(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// MouseHandler feeds clicks and motion inside the map to the capture handlers.
func (m *MapView) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (bool, tview.Primitive) {
	return m.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (bool, tview.Primitive) {
		x, y := event.Position()
		p, ok := m.Viewport().ToCanvas(x, y)
		if !ok {
			return false, nil
		}
		switch action {
		case tview.MouseLeftClick:
			setFocus(m)
			if m.onClick != nil {
				m.onClick(p, capture.ButtonPrimary)
			}
			return true, nil
		case tview.MouseRightClick:
			if m.onClick != nil {
				m.onClick(p, capture.ButtonSecondary)
			}
			return true, nil
		case tview.MouseMove:
			if m.onMove != nil {
				m.onMove(p)
			}
			return true, nil
		}
		return false, nil
	})
}
