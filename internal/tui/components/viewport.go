package components

import "ssv/internal/hexgrid"

// Viewport maps the map canvas onto a rectangle of terminal cells. The whole
// canvas is squeezed into the rectangle, so a cell covers several pixels.
type Viewport struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether the viewport has no cells.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// Contains reports whether the cell lies inside the viewport.
func (v Viewport) Contains(cx, cy int) bool {
	return cx >= v.X && cx < v.X+v.Width && cy >= v.Y && cy < v.Y+v.Height
}

// ToCanvas returns the canvas point at the centre of a cell.
func (v Viewport) ToCanvas(cx, cy int) (hexgrid.Point, bool) {
	if v.Empty() || !v.Contains(cx, cy) {
		return hexgrid.Point{}, false
	}
	return hexgrid.Point{
		X: (2*(cx-v.X) + 1) * hexgrid.CanvasWidth / (2 * v.Width),
		Y: (2*(cy-v.Y) + 1) * hexgrid.CanvasHeight / (2 * v.Height),
	}, true
}

// ToCell returns the cell covering a canvas point. Points off the canvas map
// to cells outside the viewport.
func (v Viewport) ToCell(p hexgrid.Point) (int, int) {
	if v.Empty() {
		return v.X, v.Y
	}
	return v.X + floorDiv(p.X*v.Width, hexgrid.CanvasWidth),
		v.Y + floorDiv(p.Y*v.Height, hexgrid.CanvasHeight)
}

func floorDiv(a, d int) int {
	q := a / d
	if a%d != 0 && (a < 0) != (d < 0) {
		q--
	}
	return q
}
