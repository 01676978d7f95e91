package capture

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ssv/internal/hexgrid"
	"ssv/internal/sector"
)

func pt(x, y int) hexgrid.Point { return hexgrid.Point{X: x, Y: y} }

func TestCaptureSingleSegment(t *testing.T) {
	s := sector.New(sector.Limits{})
	c := NewSession(s)
	require.Equal(t, Idle, c.State())

	require.NoError(t, c.Start())
	assert.Equal(t, Armed, c.State())

	require.NoError(t, c.Click(pt(103, 57), ButtonPrimary))
	assert.Equal(t, Drawing, c.State())
	assert.Empty(t, s.SessionBorders(), "first click only sets the anchor")

	require.NoError(t, c.Click(pt(197, 143), ButtonPrimary))
	n, err := c.Finish()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, Idle, c.State())

	assert.Equal(t, []hexgrid.Segment{{A: pt(100, 56), B: pt(200, 136)}}, s.SessionBorders())

	removed, err := c.Clear()
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Empty(t, s.SessionBorders())
}

func TestCaptureChain(t *testing.T) {
	s := sector.New(sector.Limits{})
	c := NewSession(s)
	require.NoError(t, c.Start())

	for _, p := range []hexgrid.Point{pt(10, 10), pt(50, 10), pt(50, 90)} {
		require.NoError(t, c.Click(p, ButtonPrimary))
	}
	require.NoError(t, c.Click(pt(400, 400), ButtonSecondary))
	assert.Equal(t, Idle, c.State())

	assert.Equal(t, []hexgrid.Segment{
		{A: pt(10, 6), B: pt(50, 6)},
		{A: pt(50, 6), B: pt(50, 86)},
	}, s.SessionBorders(), "the terminating click adds nothing")
}

func TestCaptureZeroSegments(t *testing.T) {
	s := sector.New(sector.Limits{})
	c := NewSession(s)
	require.NoError(t, c.Start())
	require.NoError(t, c.Click(pt(100, 100), ButtonPrimary))

	n, err := c.Finish()
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Zero(t, s.SessionBorderCount())
}

func TestCaptureClearOnlyLastGroup(t *testing.T) {
	s := sector.New(sector.Limits{})
	c := NewSession(s)

	draw := func(points ...hexgrid.Point) {
		require.NoError(t, c.Start())
		for _, p := range points {
			require.NoError(t, c.Click(p, ButtonPrimary))
		}
		_, err := c.Finish()
		require.NoError(t, err)
	}

	draw(pt(0, 10), pt(100, 10))
	draw(pt(200, 10), pt(300, 10), pt(300, 110))
	require.Equal(t, 3, s.SessionBorderCount())

	removed, err := c.Clear()
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, []hexgrid.Segment{{A: pt(0, 6), B: pt(100, 6)}}, s.SessionBorders())

	removed, err = c.Clear()
	require.NoError(t, err)
	assert.Zero(t, removed, "clear is a single level of undo")
	assert.Equal(t, 1, s.SessionBorderCount())
}

func TestCaptureLeavesStaticBorders(t *testing.T) {
	s := sector.New(sector.Limits{})
	seg, err := hexgrid.BorderSegment(hexgrid.Coord{}, hexgrid.EdgeTop)
	require.NoError(t, err)
	require.NoError(t, s.AddStaticBorder(seg))

	c := NewSession(s)
	require.NoError(t, c.Start())
	require.NoError(t, c.Click(pt(0, 0), ButtonPrimary))
	require.NoError(t, c.Click(pt(60, 0), ButtonPrimary))
	_, err = c.Finish()
	require.NoError(t, err)
	_, err = c.Clear()
	require.NoError(t, err)

	assert.Equal(t, []hexgrid.Segment{seg}, s.StaticBorders())
	assert.Equal(t, []hexgrid.Segment{seg}, s.Borders())
}

func TestCaptureClampsClicks(t *testing.T) {
	s := sector.New(sector.Limits{})
	c := NewSession(s)
	require.NoError(t, c.Start())
	require.NoError(t, c.Click(pt(-5000, -20), ButtonPrimary))
	require.NoError(t, c.Click(pt(5000, 9000), ButtonPrimary))
	_, err := c.Finish()
	require.NoError(t, err)

	lo := hexgrid.Snap(hexgrid.Clamp(pt(-5000, -20)))
	hi := hexgrid.Snap(hexgrid.Clamp(pt(5000, 9000)))
	assert.Equal(t, []hexgrid.Segment{{A: lo, B: hi}}, s.SessionBorders())
	assert.Equal(t, -290, lo.X)
	assert.Equal(t, hexgrid.Point{X: 1060, Y: 1086}, hi)
}

func TestCapturePreview(t *testing.T) {
	s := sector.New(sector.Limits{})
	c := NewSession(s)
	require.NoError(t, c.Start())

	c.Move(pt(20, 20))
	_, ok := c.Preview()
	assert.False(t, ok, "no preview before the first point")

	require.NoError(t, c.Click(pt(20, 20), ButtonPrimary))
	c.Move(pt(61, 44))
	seg, ok := c.Preview()
	require.True(t, ok)
	assert.Equal(t, hexgrid.Segment{A: pt(20, 16), B: pt(60, 36)}, seg)
	assert.Empty(t, s.SessionBorders(), "preview is never stored")

	_, err := c.Finish()
	require.NoError(t, err)
	_, ok = c.Preview()
	assert.False(t, ok)
}

func TestCaptureInvalidTransitions(t *testing.T) {
	s := sector.New(sector.Limits{})
	c := NewSession(s)

	assert.True(t, errors.Is(c.Click(pt(0, 0), ButtonPrimary), ErrInvalidTransition))
	_, err := c.Finish()
	assert.True(t, errors.Is(err, ErrInvalidTransition))

	require.NoError(t, c.Start())
	assert.True(t, errors.Is(c.Start(), ErrInvalidTransition))
	_, err = c.Clear()
	assert.True(t, errors.Is(err, ErrInvalidTransition), "clear is only allowed while idle")
}

func TestCaptureFullBorderList(t *testing.T) {
	s := sector.New(sector.Limits{Borders: 1})
	c := NewSession(s)
	require.NoError(t, c.Start())
	require.NoError(t, c.Click(pt(0, 10), ButtonPrimary))
	require.NoError(t, c.Click(pt(100, 10), ButtonPrimary))

	err := c.Click(pt(200, 10), ButtonPrimary)
	assert.True(t, errors.Is(err, sector.ErrCapacityExceeded))
	assert.Equal(t, Drawing, c.State())
	assert.Equal(t, 1, s.SessionBorderCount())

	n, err := c.Finish()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
