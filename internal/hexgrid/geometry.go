// Package hexgrid holds the constant tables that place an 8x10 subsector hex
// grid on the map canvas. Every value here matches the legacy viewer pixel for
// pixel, so border and route data written against it keeps lining up.
package hexgrid

import (
	"errors"
	"fmt"
)

// Grid dimensions of one subsector.
const (
	Columns = 8
	Rows    = 10

	// Margin is the number of extra hex columns tabulated on each side of the
	// grid so trade routes can run into neighbouring subsectors.
	Margin = 4

	// RowIncrement is the vertical distance between two hexes in a column.
	RowIncrement = 100

	// TitlePad is the strip above the grid reserved for the title.
	TitlePad = 16

	CanvasWidth  = 770
	CanvasHeight = 1070 + TitlePad

	// SnapUnit is the spacing of the capture grid.
	SnapUnit = 10
	// SnapBias shifts snapped points up to sit on the drawn hex lines.
	SnapBias = 4
)

// ErrOutOfRange is returned when a column, row or edge falls outside the tables.
var ErrOutOfRange = errors.New("hex coordinate out of range")

// Point is a position in canvas pixel space.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Segment is a line between two canvas points.
type Segment struct {
	A Point `json:"a" yaml:"a"`
	B Point `json:"b" yaml:"b"`
}

func (s Segment) String() string {
	return s.A.String() + "-" + s.B.String()
}

// Coord is a zero-based grid position. Inside a subsector X is 0-7 and Y is
// 0-9; trade-route endpoints may leave that range by whole subsectors.
type Coord struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// InGrid reports whether c lies inside the visible 8x10 grid.
func (c Coord) InGrid() bool {
	return c.X >= 0 && c.X < Columns && c.Y >= 0 && c.Y < Rows
}

// HexAddress is a four-digit CCRR location as written in data files.
type HexAddress struct {
	Col int
	Row int
}

// Grid folds the address into the local subsector grid.
func (h HexAddress) Grid() Coord {
	return Coord{X: floorMod(h.Col-1, Columns), Y: floorMod(h.Row-1, Rows)}
}

func (h HexAddress) String() string {
	return fmt.Sprintf("%02d%02d", h.Col, h.Row)
}

func (h HexAddress) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// hexCenters lists the centre of row 0 for columns -4..11.
var hexCenters = [Columns + 2*Margin]Point{
	{-290, 60},
	{-200, 110},
	{-110, 60},
	{-20, 110},
	{70, 60},
	{160, 110},
	{250, 60},
	{340, 110},
	{430, 60},
	{520, 110},
	{610, 60},
	{700, 110},
	{790, 60},
	{880, 110},
	{970, 60},
	{1060, 110},
}

// hexOrigins is the top-left vertex of row 0 for each visible column.
var hexOrigins = [Columns]Point{
	{40, 10},
	{130, 60},
	{220, 10},
	{310, 60},
	{400, 10},
	{490, 60},
	{580, 10},
	{670, 60},
}

//  0_1
// 5/   \2
//  \4_3/
var relativeOutline = [7]Point{
	{0, 0},
	{60, 0},
	{30, 50},
	{-30, 50},
	{-60, 0},
	{-30, -50},
	{30, -50},
}

var absoluteVertices = [6]Point{
	{0, 0},
	{60, 0},
	{90, 50},
	{60, 100},
	{0, 100},
	{-30, 50},
}

// HexCenter returns the unpadded centre of the hex at grid column col and row
// row. Columns -4..11 and rows -10..19 are tabulated; ok is false elsewhere.
func HexCenter(col, row int) (Point, bool) {
	if col < -Margin || col >= Columns+Margin {
		return Point{}, false
	}
	if row < -Rows || row >= 2*Rows {
		return Point{}, false
	}
	c := hexCenters[col+Margin]
	return Point{X: c.X, Y: c.Y + row*RowIncrement}, true
}

// CanvasCenter is HexCenter shifted below the title pad.
func CanvasCenter(c Coord) (Point, bool) {
	p, ok := HexCenter(c.X, c.Y)
	if !ok {
		return Point{}, false
	}
	return Point{X: p.X, Y: p.Y + TitlePad}, true
}

// Anchor returns the canvas position of vertex 0 of the hex at c.
func Anchor(c Coord) (Point, error) {
	if !c.InGrid() {
		return Point{}, fmt.Errorf("anchor %v: %w", c, ErrOutOfRange)
	}
	o := hexOrigins[c.X]
	return Point{X: o.X, Y: o.Y + c.Y*RowIncrement + TitlePad}, nil
}

// RelativeHexOutline returns the closed outline in previous-point-relative
// form. The first entry is a placeholder for the starting vertex.
func RelativeHexOutline() [7]Point {
	return relativeOutline
}

// AbsoluteHexVertices returns the six corners relative to vertex 0, clockwise
// from the top-left corner.
func AbsoluteHexVertices() [6]Point {
	return absoluteVertices
}

// HexOutline returns the closed polygon of the hex at c in canvas space.
func HexOutline(c Coord) ([]Point, error) {
	anchor, err := Anchor(c)
	if err != nil {
		return nil, err
	}
	out := make([]Point, 0, len(relativeOutline))
	cur := anchor
	out = append(out, cur)
	for _, d := range relativeOutline[1:] {
		cur = cur.Add(d)
		out = append(out, cur)
	}
	return out, nil
}

// Clamp pulls p into the tabulated canvas range.
func Clamp(p Point) Point {
	minX := hexCenters[0].X
	maxX := hexCenters[len(hexCenters)-1].X
	return Point{X: clamp(p.X, minX, maxX), Y: clamp(p.Y, 0, CanvasHeight)}
}

// Snap moves p to the nearest capture grid intersection.
func Snap(p Point) Point {
	return Point{
		X: floorDiv(p.X+SnapUnit/2, SnapUnit) * SnapUnit,
		Y: floorDiv(p.Y+SnapUnit/2, SnapUnit)*SnapUnit - SnapBias,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func floorMod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

func floorDiv(a, d int) int {
	q := a / d
	if a%d != 0 && (a < 0) != (d < 0) {
		q--
	}
	return q
}
