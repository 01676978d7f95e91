// Package sector is the in-memory model of one subsector map: the worlds,
// trade routes and borders loaded from a data file, plus the borders drawn
// during a viewing session.
package sector

import (
	"ssv/internal/hexgrid"
)

// Default list sizes of the legacy viewer.
const (
	DefaultMaxWorlds  = 80
	DefaultMaxRoutes  = 80
	DefaultMaxBorders = 160
)

// Limits caps each list in a Sector. Zero fields take the defaults.
type Limits struct {
	Worlds  int
	Routes  int
	Borders int
}

// DefaultLimits returns the legacy capacities.
func DefaultLimits() Limits {
	return Limits{Worlds: DefaultMaxWorlds, Routes: DefaultMaxRoutes, Borders: DefaultMaxBorders}
}

func (l Limits) withDefaults() Limits {
	d := DefaultLimits()
	if l.Worlds == 0 {
		l.Worlds = d.Worlds
	}
	if l.Routes == 0 {
		l.Routes = d.Routes
	}
	if l.Borders == 0 {
		l.Borders = d.Borders
	}
	return l
}

// OverlayKind selects one of the per-world label overlays.
type OverlayKind int

const (
	OverlayAllegiance OverlayKind = iota
	OverlayTradeNotes
	OverlayUWP
)

func (k OverlayKind) String() string {
	switch k {
	case OverlayAllegiance:
		return "allegiance"
	case OverlayTradeNotes:
		return "trade codes"
	case OverlayUWP:
		return "uwp"
	default:
		return "unknown"
	}
}

// Overlays is view state consulted by renderers when labelling worlds.
type Overlays struct {
	Allegiance bool
	TradeNotes bool
	UWP        bool
}

// Enabled reports the state of one overlay.
func (o Overlays) Enabled(k OverlayKind) bool {
	switch k {
	case OverlayAllegiance:
		return o.Allegiance
	case OverlayTradeNotes:
		return o.TradeNotes
	case OverlayUWP:
		return o.UWP
	}
	return false
}

// Sector aggregates everything known about one subsector. Worlds, routes and
// static borders are filled while loading; afterwards only the session border
// list changes.
type Sector struct {
	title          string
	worlds         *Bounded[World]
	routes         *Bounded[TradeRoute]
	staticBorders  *Bounded[hexgrid.Segment]
	sessionBorders *Bounded[hexgrid.Segment]
	overlays       Overlays
}

// New creates an empty sector with the given capacities.
func New(limits Limits) *Sector {
	limits = limits.withDefaults()
	return &Sector{
		worlds:         NewBounded[World]("world", limits.Worlds),
		routes:         NewBounded[TradeRoute]("trade route", limits.Routes),
		staticBorders:  NewBounded[hexgrid.Segment]("border", limits.Borders),
		sessionBorders: NewBounded[hexgrid.Segment]("session border", limits.Borders),
		overlays:       Overlays{Allegiance: true, TradeNotes: true, UWP: true},
	}
}

func (s *Sector) Title() string { return s.title }

// SetTitle replaces the title; a later title line wins.
func (s *Sector) SetTitle(title string) { s.title = title }

// AddWorld appends a world, failing with ErrCapacityExceeded when full.
func (s *Sector) AddWorld(w World) error { return s.worlds.Append(w) }

// AddRoute appends a trade route, failing with ErrCapacityExceeded when full.
func (s *Sector) AddRoute(r TradeRoute) error { return s.routes.Append(r) }

// AddStaticBorder appends a border segment read from the data file.
func (s *Sector) AddStaticBorder(seg hexgrid.Segment) error { return s.staticBorders.Append(seg) }

func (s *Sector) Worlds() []World                  { return s.worlds.Items() }
func (s *Sector) Routes() []TradeRoute             { return s.routes.Items() }
func (s *Sector) StaticBorders() []hexgrid.Segment { return s.staticBorders.Items() }
func (s *Sector) SessionBorders() []hexgrid.Segment {
	return s.sessionBorders.Items()
}

// Borders returns session borders followed by static ones, the order they are
// drawn in.
func (s *Sector) Borders() []hexgrid.Segment {
	out := s.sessionBorders.Items()
	return append(out, s.staticBorders.Items()...)
}

// WorldAt finds the world at a grid position.
func (s *Sector) WorldAt(c hexgrid.Coord) (World, bool) {
	for _, w := range s.worlds.items {
		if w.Coord == c {
			return w, true
		}
	}
	return World{}, false
}

// SessionBorderCount is the current length of the session border list.
func (s *Sector) SessionBorderCount() int { return s.sessionBorders.Len() }

// AppendSessionBorder adds an interactively drawn segment.
func (s *Sector) AppendSessionBorder(seg hexgrid.Segment) error {
	return s.sessionBorders.Append(seg)
}

// TruncateSessionBorders drops session segments past n and returns how many
// were removed.
func (s *Sector) TruncateSessionBorders(n int) int {
	return s.sessionBorders.Truncate(n)
}

// Overlays returns the current overlay toggles.
func (s *Sector) Overlays() Overlays { return s.overlays }

// Toggle flips one overlay and returns its new state.
func (s *Sector) Toggle(k OverlayKind) bool {
	switch k {
	case OverlayAllegiance:
		s.overlays.Allegiance = !s.overlays.Allegiance
	case OverlayTradeNotes:
		s.overlays.TradeNotes = !s.overlays.TradeNotes
	case OverlayUWP:
		s.overlays.UWP = !s.overlays.UWP
	}
	return s.overlays.Enabled(k)
}

// SetOverlay sets one overlay explicitly.
func (s *Sector) SetOverlay(k OverlayKind, on bool) {
	if s.overlays.Enabled(k) != on {
		s.Toggle(k)
	}
}

// Capacity describes the fill state of one list.
type Capacity struct {
	Name    string
	Len     int
	Limit   int
	Dropped int
}

// Truncated reports whether the list rejected any entries.
func (c Capacity) Truncated() bool { return c.Dropped > 0 }

// Capacities reports the fill state of every list.
func (s *Sector) Capacities() []Capacity {
	return []Capacity{
		capacityOf(s.worlds),
		capacityOf(s.routes),
		capacityOf(s.staticBorders),
		capacityOf(s.sessionBorders),
	}
}

func capacityOf[T any](b *Bounded[T]) Capacity {
	return Capacity{Name: b.Name(), Len: b.Len(), Limit: b.Limit(), Dropped: b.Dropped()}
}
