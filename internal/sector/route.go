package sector

import "ssv/internal/hexgrid"

// Offset tells which neighbouring subsector a route's far end lies in. Only the
// sign of each field matters.
type Offset struct {
	X int
	Y int
}

// TradeRoute connects two grid positions. End may lie up to one subsector
// outside the local grid.
type TradeRoute struct {
	Start hexgrid.Coord `json:"start" yaml:"start"`
	End   hexgrid.Coord `json:"end" yaml:"end"`
}

// ResolveRoute places a route directive on the local grid. The far end is
// shifted by one subsector width or height for each non-zero offset field.
func ResolveRoute(start, end hexgrid.HexAddress, off Offset) TradeRoute {
	r := TradeRoute{Start: start.Grid(), End: end.Grid()}
	r.End.X += sign(off.X) * hexgrid.Columns
	r.End.Y += sign(off.Y) * hexgrid.Rows
	return r
}

// Endpoints returns the unpadded pixel centres of both ends. ok is false when
// either end falls outside the tabulated columns.
func (r TradeRoute) Endpoints() (a, b hexgrid.Point, ok bool) {
	a, okA := hexgrid.HexCenter(r.Start.X, r.Start.Y)
	b, okB := hexgrid.HexCenter(r.End.X, r.End.Y)
	return a, b, okA && okB
}

// Local reports whether both ends lie inside the visible grid.
func (r TradeRoute) Local() bool {
	return r.Start.InGrid() && r.End.InGrid()
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
