package datafile

import (
	"strings"
	"unicode"
)

// Column ranges of a world record, zero-based and end-exclusive.
const (
	colNameStart      = 0
	colNameEnd        = 13
	colHexStart       = 14
	colHexEnd         = 18
	colStarport       = 19
	colUWPStart       = 20
	colUWPEnd         = 28
	colSize           = 20
	colAtmosphere     = 21
	colHydrology      = 22
	colBase           = 30
	colZone           = 48
	colGasGiants      = 53
	colAllegianceFrom = 55
	colAllegianceTo   = 57

	// minWorldLen covers the last trade-code pair.
	minWorldLen = 46
)

// noteColumns are the first characters of the five trade-code pairs.
var noteColumns = [...]int{32, 35, 38, 41, 44}

// Directive layouts.
const (
	borderHexStart = 1
	borderHexEnd   = 5
	borderEdgeCol  = 6
	minBorderLen   = 7

	routeStartFrom = 1
	routeStartTo   = 5
	routeEndFrom   = 6
	routeEndTo     = 10
	routeXOffFrom  = 11
	routeXOffTo    = 13
	routeYOffFrom  = 13
	routeYOffTo    = 15
	minRouteLen    = routeEndTo
)

// Columns is a line split into runes so fields are addressed by column rather
// than byte offset. Reads past the end of the line yield blanks.
type Columns struct {
	runes []rune
}

// NewColumns wraps a line with its line ending removed.
func NewColumns(line string) Columns {
	return Columns{runes: []rune(trimEOL(line))}
}

// Len is the number of columns on the line.
func (c Columns) Len() int { return len(c.runes) }

// Field returns columns [start,end). Columns past the end of the line are
// dropped, so a short line gives a short or empty field.
func (c Columns) Field(start, end int) string {
	if start >= len(c.runes) || start >= end {
		return ""
	}
	if end > len(c.runes) {
		end = len(c.runes)
	}
	return string(c.runes[start:end])
}

// At returns the single column i, or a space when the line is shorter.
func (c Columns) At(i int) rune {
	if i < 0 || i >= len(c.runes) {
		return ' '
	}
	return c.runes[i]
}

// Rest returns everything from column start on.
func (c Columns) Rest(start int) string {
	if start >= len(c.runes) {
		return ""
	}
	return string(c.runes[start:])
}

// Blank reports whether the line holds only whitespace.
func (c Columns) Blank() bool {
	for _, r := range c.runes {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
