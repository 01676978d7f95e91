// Package capture turns pointer clicks on the map into session border
// segments.
package capture

import (
	"errors"
	"fmt"

	"ssv/internal/hexgrid"
	"ssv/internal/log"
	"ssv/internal/sector"
)

// State is the phase of a capture session.
type State int

const (
	// Idle ignores clicks until Start arms the session.
	Idle State = iota
	// Armed waits for the first point of a chain.
	Armed
	// Drawing extends the chain with each click.
	Drawing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Armed:
		return "armed"
	case Drawing:
		return "drawing"
	default:
		return "unknown"
	}
}

// Button identifies the pointer button of a click.
type Button int

const (
	ButtonPrimary Button = iota
	// ButtonSecondary ends the current chain.
	ButtonSecondary
)

// ErrInvalidTransition is returned for operations not allowed in the current
// state.
var ErrInvalidTransition = errors.New("invalid capture transition")

// Session records hand-drawn borders into a sector's session list. Segments
// are committed as they are drawn; Clear discards everything drawn since the
// last Start.
type Session struct {
	sector       *sector.Sector
	state        State
	last         hexgrid.Point
	pointer      hexgrid.Point
	hasPointer   bool
	sessionStart int
	drawn        int
}

// NewSession creates an idle session over s.
func NewSession(s *sector.Sector) *Session {
	return &Session{sector: s, sessionStart: s.SessionBorderCount()}
}

// State returns the current phase.
func (c *Session) State() State { return c.state }

// Start arms the session and remembers where its segments begin.
func (c *Session) Start() error {
	if c.state != Idle {
		return c.transitionError("start")
	}
	c.sessionStart = c.sector.SessionBorderCount()
	c.drawn = 0
	c.hasPointer = false
	c.state = Armed
	log.Debug("Border capture armed", "session_start", c.sessionStart)
	return nil
}

// Click handles one pointer click at canvas position p. Primary clicks are
// clamped and snapped; from the second click on each adds a segment from the
// previous point. A secondary click ends the chain without adding a segment.
func (c *Session) Click(p hexgrid.Point, b Button) error {
	if c.state == Idle {
		return c.transitionError("click")
	}
	if b == ButtonSecondary {
		_, err := c.Finish()
		return err
	}

	cur := hexgrid.Snap(hexgrid.Clamp(p))
	if c.state == Armed {
		c.last = cur
		c.state = Drawing
		log.Debug("Border chain started", "point", cur)
		return nil
	}

	seg := hexgrid.Segment{A: c.last, B: cur}
	if err := c.sector.AppendSessionBorder(seg); err != nil {
		log.Warn("Session border dropped", "segment", seg, "error", err)
		return err
	}
	c.drawn++
	c.last = cur
	log.Debug("Border segment added", "segment", seg)
	return nil
}

// Move records the pointer position for the rubber-band preview.
func (c *Session) Move(p hexgrid.Point) {
	c.pointer = hexgrid.Snap(hexgrid.Clamp(p))
	c.hasPointer = true
}

// Preview returns the segment from the last committed point to the pointer
// while a chain is being drawn.
func (c *Session) Preview() (hexgrid.Segment, bool) {
	if c.state != Drawing || !c.hasPointer {
		return hexgrid.Segment{}, false
	}
	return hexgrid.Segment{A: c.last, B: c.pointer}, true
}

// Finish ends the chain and returns to Idle. It reports how many segments the
// session added.
func (c *Session) Finish() (int, error) {
	if c.state == Idle {
		return 0, c.transitionError("finish")
	}
	c.state = Idle
	c.hasPointer = false
	log.Debug("Border capture finished", "segments", c.drawn)
	return c.drawn, nil
}

// Clear removes the segments added since the last Start and returns how many
// were removed. Borders from earlier sessions and from the data file stay.
func (c *Session) Clear() (int, error) {
	if c.state != Idle {
		return 0, c.transitionError("clear")
	}
	n := c.sector.TruncateSessionBorders(c.sessionStart)
	c.drawn = 0
	log.Debug("Session borders cleared", "removed", n)
	return n, nil
}

func (c *Session) transitionError(op string) error {
	return fmt.Errorf("%s while %s: %w", op, c.state, ErrInvalidTransition)
}
