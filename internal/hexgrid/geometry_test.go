package hexgrid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexAddressGrid(t *testing.T) {
	tests := []struct {
		name string
		hex  HexAddress
		want Coord
	}{
		{"first hex", HexAddress{1, 1}, Coord{0, 0}},
		{"last hex", HexAddress{8, 10}, Coord{7, 9}},
		{"column wraps", HexAddress{9, 10}, Coord{0, 9}},
		{"row wraps", HexAddress{3, 11}, Coord{2, 0}},
		{"full sector address", HexAddress{32, 40}, Coord{7, 9}},
		{"zero address stays in grid", HexAddress{0, 0}, Coord{7, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.hex.Grid()
			assert.Equal(t, tt.want, got)
			assert.True(t, got.InGrid())
		})
	}
}

func TestHexCenter(t *testing.T) {
	p, ok := HexCenter(0, 0)
	require.True(t, ok)
	assert.Equal(t, Point{70, 60}, p)

	p, ok = HexCenter(1, 3)
	require.True(t, ok)
	assert.Equal(t, Point{160, 410}, p)

	p, ok = HexCenter(-4, 0)
	require.True(t, ok)
	assert.Equal(t, Point{-290, 60}, p)

	p, ok = HexCenter(8, -10)
	require.True(t, ok)
	assert.Equal(t, Point{790, -940}, p)

	_, ok = HexCenter(12, 0)
	assert.False(t, ok, "column past the margin")
	_, ok = HexCenter(-5, 0)
	assert.False(t, ok)
	_, ok = HexCenter(0, 20)
	assert.False(t, ok)
}

func TestCentersSitInsideOutlines(t *testing.T) {
	for x := 0; x < Columns; x++ {
		for y := 0; y < Rows; y++ {
			c := Coord{x, y}
			anchor, err := Anchor(c)
			require.NoError(t, err)
			center, ok := CanvasCenter(c)
			require.True(t, ok)
			assert.Equal(t, anchor.Add(Point{30, 50}), center, "coord %v", c)
		}
	}
}

func TestAnchorOutOfRange(t *testing.T) {
	_, err := Anchor(Coord{8, 0})
	assert.True(t, errors.Is(err, ErrOutOfRange))
	_, err = Anchor(Coord{0, -1})
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestOutlineTablesAgree(t *testing.T) {
	rel := RelativeHexOutline()
	abs := AbsoluteHexVertices()

	cur := Point{}
	for i := 1; i < len(rel); i++ {
		cur = cur.Add(rel[i])
		assert.Equal(t, abs[i%len(abs)], cur, "vertex %d", i%len(abs))
	}
}

func TestHexOutline(t *testing.T) {
	pts, err := HexOutline(Coord{0, 0})
	require.NoError(t, err)
	assert.Equal(t, []Point{
		{40, 26}, {100, 26}, {130, 76}, {100, 126}, {40, 126}, {10, 76}, {40, 26},
	}, pts)
}

func TestSnap(t *testing.T) {
	tests := []struct {
		in, want Point
	}{
		{Point{103, 57}, Point{100, 56}},
		{Point{197, 143}, Point{200, 136}},
		{Point{105, 65}, Point{110, 66}},
		{Point{0, 0}, Point{0, -4}},
		{Point{-7, -3}, Point{-10, -4}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Snap(tt.in), "snap %v", tt.in)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, Point{-290, 1086}, Clamp(Point{-500, 2000}))
	assert.Equal(t, Point{1060, 0}, Clamp(Point{5000, -10}))
	assert.Equal(t, Point{300, 300}, Clamp(Point{300, 300}))
}
