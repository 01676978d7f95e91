package sector

import (
	"strings"

	"ssv/internal/hexgrid"
)

// WorldType is the map symbol class of a main world.
type WorldType int

const (
	Desert WorldType = iota
	Asteroid
	Garden
)

func (t WorldType) String() string {
	switch t {
	case Desert:
		return "DESERT"
	case Asteroid:
		return "ASTEROIDS"
	case Garden:
		return "GARDEN"
	default:
		return "UNKNOWN"
	}
}

// MarshalText lets exporters write the type by name.
func (t WorldType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Zone is a travel advisory.
type Zone int

const (
	ZoneNone Zone = iota
	ZoneAmber
	ZoneRed
)

// ParseZone maps the zone column to a Zone.
func ParseZone(code byte) Zone {
	switch code {
	case 'R':
		return ZoneRed
	case 'A':
		return ZoneAmber
	default:
		return ZoneNone
	}
}

func (z Zone) String() string {
	switch z {
	case ZoneRed:
		return "red"
	case ZoneAmber:
		return "amber"
	default:
		return "none"
	}
}

func (z Zone) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

// AtmosphereClass is derived from the atmosphere digit. It is recorded for
// renderers but does not take part in WorldType.
type AtmosphereClass int

const (
	AtmosphereThin AtmosphereClass = iota
	AtmosphereStandard
)

// ClassifyAtmosphere maps digits 0-3 to thin, anything else to standard.
func ClassifyAtmosphere(code byte) AtmosphereClass {
	switch code {
	case '0', '1', '2', '3':
		return AtmosphereThin
	default:
		return AtmosphereStandard
	}
}

// ClassifyWorld derives the map symbol from the size and hydrographics digits.
func ClassifyWorld(size, hydrology byte) WorldType {
	t := Garden
	if hydrology == '0' {
		t = Desert
	}
	if size == '0' {
		t = Asteroid
	}
	return t
}

// World is one star system entry.
type World struct {
	Hex        hexgrid.HexAddress `json:"hex" yaml:"hex"`
	Coord      hexgrid.Coord      `json:"coord" yaml:"coord"`
	Name       string             `json:"name" yaml:"name"`
	Starport   string             `json:"starport" yaml:"starport"`
	UWP        string             `json:"uwp" yaml:"uwp"`
	Base       string             `json:"base,omitempty" yaml:"base,omitempty"`
	Zone       Zone               `json:"zone" yaml:"zone"`
	Allegiance string             `json:"allegiance" yaml:"allegiance"`
	GasGiants  int                `json:"gas_giants" yaml:"gas_giants"`
	Notes      []string           `json:"notes" yaml:"notes,flow"`
	Type       WorldType          `json:"type" yaml:"type"`
	Atmosphere AtmosphereClass    `json:"-" yaml:"-"`
}

// HasBase reports whether the base column holds a code.
func (w World) HasBase() bool {
	return strings.TrimSpace(w.Base) != ""
}

// Facilities returns the base icons for the world.
func (w World) Facilities() []Facility {
	if !w.HasBase() {
		return nil
	}
	return Facilities(w.Base[0])
}

// HighPopulation reports a population digit of 9 or more.
func (w World) HighPopulation() bool {
	return len(w.UWP) > 3 && w.UWP[3] >= '9'
}

// NotesString joins the trade codes the way the map labels them.
func (w World) NotesString() string {
	return strings.Join(w.Notes, "")
}

// Facility is one base icon drawn next to a world.
type Facility int

const (
	NavalBase Facility = iota
	NavalBaseAlt
	ScoutBase
	WayStation
	Depot
	AslanBase
	CorsairBase
	MilitaryBase
	TlaukhuBase
	ZhodaniBase
)

var facilityNames = map[Facility]string{
	NavalBase:    "naval",
	NavalBaseAlt: "naval2",
	ScoutBase:    "scout",
	WayStation:   "waystation",
	Depot:        "depot",
	AslanBase:    "aslan",
	CorsairBase:  "corsair",
	MilitaryBase: "military",
	TlaukhuBase:  "tlaukhu",
	ZhodaniBase:  "zhodani",
}

func (f Facility) String() string {
	if n, ok := facilityNames[f]; ok {
		return n
	}
	return "unknown"
}

// Facilities expands a base code into the icons it stands for.
func Facilities(base byte) []Facility {
	switch base {
	case 'A':
		return []Facility{NavalBase, ScoutBase}
	case 'B':
		return []Facility{NavalBase, WayStation}
	case 'C':
		return []Facility{CorsairBase}
	case 'D':
		return []Facility{Depot}
	case 'H':
		return []Facility{CorsairBase, NavalBaseAlt}
	case 'F', 'G', 'J':
		return []Facility{NavalBaseAlt}
	case 'M':
		return []Facility{MilitaryBase}
	case 'N':
		return []Facility{NavalBase}
	case 'R':
		return []Facility{AslanBase}
	case 'S':
		return []Facility{ScoutBase}
	case 'T':
		return []Facility{TlaukhuBase}
	case 'W':
		return []Facility{WayStation}
	case 'Z':
		return []Facility{ZhodaniBase}
	default:
		return nil
	}
}
