package hexgrid

import "fmt"

// Edge names one side of a hex: 0 is the top edge, numbered clockwise.
type Edge uint8

// EdgeCount is the number of sides of a hex.
const EdgeCount = 6

const (
	EdgeTop Edge = iota
	EdgeUpperRight
	EdgeLowerRight
	EdgeBottom
	EdgeLowerLeft
	EdgeUpperLeft
)

// ParseEdge validates an edge index.
func ParseEdge(n int) (Edge, error) {
	if n < 0 || n >= EdgeCount {
		return 0, fmt.Errorf("edge %d: %w", n, ErrOutOfRange)
	}
	return Edge(n), nil
}

// Next returns the edge clockwise from e.
func (e Edge) Next() Edge {
	return Edge((int(e) + 1) % EdgeCount)
}

// Valid reports whether e is one of the six sides.
func (e Edge) Valid() bool {
	return e < EdgeCount
}

// BorderSegment returns the canvas segment covering edge e of the hex at c.
// Edge e runs from vertex e to vertex e+1 (mod 6).
func BorderSegment(c Coord, e Edge) (Segment, error) {
	if !e.Valid() {
		return Segment{}, fmt.Errorf("edge %d: %w", e, ErrOutOfRange)
	}
	anchor, err := Anchor(c)
	if err != nil {
		return Segment{}, err
	}
	return Segment{
		A: anchor.Add(absoluteVertices[e]),
		B: anchor.Add(absoluteVertices[e.Next()]),
	}, nil
}
