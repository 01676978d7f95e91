// Package datafile reads the fixed-column subsector data format: one world,
// trade route, border, title or comment per line.
package datafile

import (
	"strconv"
	"strings"

	"ssv/internal/hexgrid"
	"ssv/internal/sector"
)

// Line prefixes of the directive records.
const (
	prefixComment = '#'
	prefixTitle   = '@'
	prefixBorder  = '^'
	prefixRoute   = '$'
)

// ParseLine parses one line of a data file. A trailing newline is ignored.
// Malformed lines return an error wrapping ErrMalformedRecord together with a
// Record whose Kind says what the line was meant to be.
func ParseLine(line string) (Record, error) {
	cols := NewColumns(line)
	if cols.Blank() {
		return Record{Kind: KindBlank}, nil
	}

	switch cols.At(0) {
	case prefixComment:
		return Record{Kind: KindComment}, nil
	case prefixTitle:
		return Record{Kind: KindTitle, Title: cols.Rest(1)}, nil
	case prefixBorder:
		b, err := parseBorder(cols)
		if err != nil {
			return Record{Kind: KindBorder}, err
		}
		return Record{Kind: KindBorder, Border: &b}, nil
	case prefixRoute:
		r, err := parseRoute(cols)
		if err != nil {
			return Record{Kind: KindRoute}, err
		}
		return Record{Kind: KindRoute, Route: &r}, nil
	default:
		w, err := parseWorld(cols)
		if err != nil {
			return Record{Kind: KindWorld}, err
		}
		return Record{Kind: KindWorld, World: &w}, nil
	}
}

func parseBorder(cols Columns) (RawBorder, error) {
	if cols.Len() < minBorderLen {
		return RawBorder{}, malformed(KindBorder, "need %d columns, got %d", minBorderLen, cols.Len())
	}
	hex, err := parseHex(cols.Field(borderHexStart, borderHexEnd))
	if err != nil {
		return RawBorder{}, malformed(KindBorder, "%v", err)
	}
	digit := cols.At(borderEdgeCol)
	if digit < '0' || digit > '9' {
		return RawBorder{}, malformed(KindBorder, "edge %q is not a digit", digit)
	}
	edge, err := hexgrid.ParseEdge(int(digit - '0'))
	if err != nil {
		return RawBorder{}, malformed(KindBorder, "edge %c not in 0-5", digit)
	}
	return RawBorder{Hex: hex, Edge: edge}, nil
}

func parseRoute(cols Columns) (RawRoute, error) {
	if cols.Len() < minRouteLen {
		return RawRoute{}, malformed(KindRoute, "need %d columns, got %d", minRouteLen, cols.Len())
	}
	start, err := parseHex(cols.Field(routeStartFrom, routeStartTo))
	if err != nil {
		return RawRoute{}, malformed(KindRoute, "start %v", err)
	}
	end, err := parseHex(cols.Field(routeEndFrom, routeEndTo))
	if err != nil {
		return RawRoute{}, malformed(KindRoute, "end %v", err)
	}
	x, err := parseOffset(cols.Field(routeXOffFrom, routeXOffTo))
	if err != nil {
		return RawRoute{}, malformed(KindRoute, "x offset %v", err)
	}
	y, err := parseOffset(cols.Field(routeYOffFrom, routeYOffTo))
	if err != nil {
		return RawRoute{}, malformed(KindRoute, "y offset %v", err)
	}
	return RawRoute{Start: start, End: end, Offset: sector.Offset{X: x, Y: y}}, nil
}

func parseWorld(cols Columns) (RawWorld, error) {
	if cols.Len() < minWorldLen {
		return RawWorld{}, malformed(KindWorld, "need %d columns, got %d", minWorldLen, cols.Len())
	}
	hex, err := parseHex(cols.Field(colHexStart, colHexEnd))
	if err != nil {
		return RawWorld{}, malformed(KindWorld, "%v", err)
	}
	return RawWorld{
		Name:       strings.TrimRight(cols.Field(colNameStart, colNameEnd), " "),
		Hex:        hex,
		Starport:   string(cols.At(colStarport)),
		UWP:        cols.Field(colUWPStart, colUWPEnd),
		Base:       string(cols.At(colBase)),
		Notes:      parseNotes(cols),
		Zone:       string(cols.At(colZone)),
		GasGiants:  string(cols.At(colGasGiants)),
		Allegiance: cols.Field(colAllegianceFrom, colAllegianceTo),
	}, nil
}

// parseNotes collects trade-code pairs up to the first blank pair.
func parseNotes(cols Columns) []string {
	var notes []string
	for _, col := range noteColumns {
		if cols.At(col) == ' ' {
			break
		}
		notes = append(notes, cols.Field(col, col+2))
	}
	return notes
}

// parseHex reads a CCRR address; all four characters must be digits.
func parseHex(s string) (hexgrid.HexAddress, error) {
	if len(s) != 4 {
		return hexgrid.HexAddress{}, &hexError{s}
	}
	for i := 0; i < 4; i++ {
		if s[i] < '0' || s[i] > '9' {
			return hexgrid.HexAddress{}, &hexError{s}
		}
	}
	col, _ := strconv.Atoi(s[:2])
	row, _ := strconv.Atoi(s[2:])
	return hexgrid.HexAddress{Col: col, Row: row}, nil
}

type hexError struct{ text string }

func (e *hexError) Error() string {
	return "hex " + strconv.Quote(e.text) + " is not four digits"
}

// parseOffset reads one signed two-column offset field. A blank field or a
// lone sign is zero.
func parseOffset(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "+" || s == "-" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &offsetError{s}
	}
	return n, nil
}

type offsetError struct{ text string }

func (e *offsetError) Error() string {
	return strconv.Quote(e.text) + " is not a number"
}
