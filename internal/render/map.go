// Package render draws a sector onto a raster image and turns it into PNG,
// sixel or route-diagram output.
package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"

	"ssv/internal/hexgrid"
	"ssv/internal/log"
	"ssv/internal/sector"
)

// Frame of the printed map.
const (
	frameMargin = 10
	frameWidth  = 750
	frameHeight = 1050
)

// Options adjusts what Map draws beyond the sector's own overlays.
type Options struct {
	// Preview is an uncommitted capture segment drawn on top.
	Preview *hexgrid.Segment
	// HideGrid skips the hex outlines.
	HideGrid bool
}

// Map renders s on a CanvasWidth×CanvasHeight image.
func Map(s *sector.Sector, opts Options) *image.RGBA {
	c := NewCanvas(hexgrid.CanvasWidth, hexgrid.CanvasHeight, Paper)
	drawRoutes(c, s)
	if !opts.HideGrid {
		drawGrid(c)
	}
	drawTitle(c, s.Title())
	drawBorders(c, s)
	for _, w := range s.Worlds() {
		drawWorld(c, w, s.Overlays())
	}
	if opts.Preview != nil {
		c.Line(opts.Preview.A, opts.Preview.B, 3, Accent)
	}
	return c.Image()
}

func drawRoutes(c *Canvas, s *sector.Sector) {
	for _, r := range s.Routes() {
		a, b, ok := r.Endpoints()
		if !ok {
			log.Debug("Route end outside the map", "start", r.Start, "end", r.End)
			continue
		}
		pad := hexgrid.Point{Y: hexgrid.TitlePad}
		c.RoundLine(a.Add(pad), b.Add(pad), 5, Ink)
	}
}

func drawGrid(c *Canvas) {
	// White margins hide routes that run off the map.
	c.FillRect(0, 0, hexgrid.CanvasWidth, frameMargin+hexgrid.TitlePad, Paper)
	c.FillRect(0, 0, frameMargin, hexgrid.CanvasHeight, Paper)
	c.FillRect(0, frameMargin+frameHeight+hexgrid.TitlePad, hexgrid.CanvasWidth, frameMargin, Paper)
	c.FillRect(frameMargin+frameWidth, 0, frameMargin, hexgrid.CanvasHeight, Paper)

	for row := 0; row < hexgrid.Rows; row++ {
		for col := 0; col < hexgrid.Columns; col++ {
			outline, err := hexgrid.HexOutline(hexgrid.Coord{X: col, Y: row})
			if err != nil {
				continue
			}
			c.Polyline(outline, 1, Ink)
		}
	}

	pad := hexgrid.TitlePad
	c.Line(hexgrid.Point{X: 730, Y: 60 + pad}, hexgrid.Point{X: 760, Y: 10 + pad}, 1, Ink)
	c.Line(hexgrid.Point{X: 40, Y: 1010 + pad}, hexgrid.Point{X: 10, Y: 1060 + pad}, 1, Ink)
	c.StrokeRect(frameMargin, frameMargin+pad, frameWidth, frameHeight, 3, Ink)
}

func drawTitle(c *Canvas, title string) {
	if title == "" {
		return
	}
	c.CenteredText(hexgrid.CanvasWidth/2, hexgrid.TitlePad-3, title, true, Ink)
}

func drawBorders(c *Canvas, s *sector.Sector) {
	for _, seg := range s.Borders() {
		c.Line(seg.A, seg.B, 5, Shade)
	}
}

func drawWorld(c *Canvas, w sector.World, ov sector.Overlays) {
	ctr, ok := hexgrid.CanvasCenter(w.Coord)
	if !ok {
		return
	}
	at := func(dx, dy int) hexgrid.Point { return hexgrid.Point{X: ctr.X + dx, Y: ctr.Y + dy} }

	switch w.Zone {
	case sector.ZoneRed:
		c.Disc(ctr, 45, Red)
	case sector.ZoneAmber:
		c.Ring(ctr, 45, 5, Amber)
	}

	c.Disc(at(0, -3), 12, Paper)
	switch w.Type {
	case sector.Desert:
		c.Ring(at(0, -3), 10, 2, Ink)
	case sector.Garden:
		c.Disc(at(0, -3), 10, Ink)
	default:
		for _, d := range [][2]int{{-6, -9}, {2, -5}, {-6, -1}, {4, 1}} {
			c.Disc(at(d[0], d[1]), 2.5, Ink)
		}
	}

	if w.GasGiants > 0 {
		c.Disc(at(32, -24), 6.5, Paper)
		c.Disc(at(32, -24), 4.5, Ink)
	}

	drawFacilities(c, ctr, w.Facilities())

	c.CenteredText(ctr.X, ctr.Y-36, w.Hex.String(), false, Ink)
	c.Text(ctr.X-4, ctr.Y-18, w.Starport, true, Ink)
	if ov.Allegiance && w.Allegiance != "" {
		c.CenteredText(ctr.X-30, ctr.Y+18, w.Allegiance, false, Ink)
	}
	if ov.TradeNotes && len(w.Notes) > 0 {
		c.CenteredText(ctr.X+25, ctr.Y+18, w.NotesString(), false, Ink)
	}
	if w.Name != "" {
		c.CenteredText(ctr.X, ctr.Y+36, w.Name, w.HighPopulation(), Ink)
	}
	if ov.UWP {
		c.CenteredText(ctr.X, ctr.Y+46, w.Starport+w.UWP, false, Ink)
	}
}

// drawFacilities places up to two base icons left of the world: an upper
// slot and a lower slot. Corsair, military and tlaukhu bases always take the
// lower slot.
func drawFacilities(c *Canvas, ctr hexgrid.Point, fs []sector.Facility) {
	upper, lower := false, false
	for _, f := range fs {
		slot := hexgrid.Point{X: ctr.X - 29, Y: ctr.Y - 14}
		switch {
		case lowerSlot(f) || upper:
			if lower {
				continue
			}
			slot.Y = ctr.Y + 2
			lower = true
		default:
			upper = true
		}
		drawIcon(c, slot, f)
	}
}

func lowerSlot(f sector.Facility) bool {
	switch f {
	case sector.CorsairBase, sector.MilitaryBase, sector.TlaukhuBase:
		return true
	}
	return false
}

// drawIcon draws one facility symbol centred on p.
func drawIcon(c *Canvas, p hexgrid.Point, f sector.Facility) {
	switch f {
	case sector.NavalBase, sector.NavalBaseAlt:
		star := starPoints(p, 6, 2.5)
		if f == sector.NavalBase {
			c.Polygon(star, Ink)
		} else {
			c.Polyline(append(star, star[0]), 1, Ink)
		}
	case sector.ScoutBase, sector.WayStation:
		tri := []hexgrid.Point{{X: p.X, Y: p.Y - 5}, {X: p.X + 5, Y: p.Y + 4}, {X: p.X - 5, Y: p.Y + 4}}
		if f == sector.ScoutBase {
			c.Polygon(tri, Ink)
		} else {
			c.Polyline(append(tri, tri[0]), 1, Ink)
		}
	case sector.Depot:
		c.FillRect(p.X-4, p.Y-4, 9, 9, Ink)
	default:
		c.CenteredText(p.X, p.Y+5, facilityGlyph(f), true, Ink)
	}
}

func facilityGlyph(f sector.Facility) string {
	switch f {
	case sector.AslanBase:
		return "R"
	case sector.CorsairBase:
		return "C"
	case sector.MilitaryBase:
		return "M"
	case sector.TlaukhuBase:
		return "T"
	case sector.ZhodaniBase:
		return "Z"
	}
	return "?"
}

func starPoints(c hexgrid.Point, outer, inner float64) []hexgrid.Point {
	pts := make([]hexgrid.Point, 0, 10)
	for i := 0; i < 10; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + float64(i)*math.Pi/5
		pts = append(pts, hexgrid.Point{
			X: c.X + int(math.Round(r*math.Cos(a))),
			Y: c.Y + int(math.Round(r*math.Sin(a))),
		})
	}
	return pts
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// PrintMap renders s to a PNG file at path.
func PrintMap(path string, s *sector.Sector) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := WritePNG(f, Map(s, Options{})); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	log.Info("Map printed", "path", path)
	return nil
}
