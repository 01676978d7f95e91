package datafile

import (
	"strings"

	"ssv/internal/hexgrid"
	"ssv/internal/sector"
)

// Kind identifies the directive a line holds.
type Kind int

const (
	KindBlank Kind = iota
	KindComment
	KindTitle
	KindBorder
	KindRoute
	KindWorld
)

func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindComment:
		return "comment"
	case KindTitle:
		return "title"
	case KindBorder:
		return "border"
	case KindRoute:
		return "trade route"
	case KindWorld:
		return "world"
	default:
		return "unknown"
	}
}

// Record is one parsed line. Exactly one of Title, Border, Route and World is
// set, matching Kind; comment and blank records carry nothing.
type Record struct {
	Kind   Kind
	Title  string
	Border *RawBorder
	Route  *RawRoute
	World  *RawWorld
}

// RawBorder is a validated "^HHHH E" directive.
type RawBorder struct {
	Hex  hexgrid.HexAddress
	Edge hexgrid.Edge
}

// Segment places the border on the canvas.
func (b RawBorder) Segment() (hexgrid.Segment, error) {
	return hexgrid.BorderSegment(b.Hex.Grid(), b.Edge)
}

// RawRoute is a validated "$HHHH HHHH  XXYY" directive.
type RawRoute struct {
	Start  hexgrid.HexAddress
	End    hexgrid.HexAddress
	Offset sector.Offset
}

// Route resolves the directive onto the local grid.
func (r RawRoute) Route() sector.TradeRoute {
	return sector.ResolveRoute(r.Start, r.End, r.Offset)
}

// RawWorld holds the fields of a world line as written.
type RawWorld struct {
	Name       string
	Hex        hexgrid.HexAddress
	Starport   string
	UWP        string
	Base       string
	Notes      []string
	Zone       string
	GasGiants  string
	Allegiance string
}

// World derives grid position, zone, world type and the remaining typed
// fields from the raw columns.
func (r RawWorld) World() sector.World {
	w := sector.World{
		Hex:        r.Hex,
		Coord:      r.Hex.Grid(),
		Name:       r.Name,
		Starport:   r.Starport,
		UWP:        r.UWP,
		Base:       strings.TrimSpace(r.Base),
		Zone:       sector.ParseZone(firstByte(r.Zone)),
		Allegiance: r.Allegiance,
		Notes:      append([]string(nil), r.Notes...),
	}
	if g := firstByte(r.GasGiants); g >= '0' && g <= '9' {
		w.GasGiants = int(g - '0')
	}
	w.Type = sector.ClassifyWorld(uwpDigit(r.UWP, colSize), uwpDigit(r.UWP, colHydrology))
	w.Atmosphere = sector.ClassifyAtmosphere(uwpDigit(r.UWP, colAtmosphere))
	return w
}

// uwpDigit reads a profile digit by its line column.
func uwpDigit(uwp string, col int) byte {
	i := col - colUWPStart
	if i < 0 || i >= len(uwp) {
		return ' '
	}
	return uwp[i]
}

func firstByte(s string) byte {
	if s == "" {
		return ' '
	}
	return s[0]
}
