package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"ssv/internal/hexgrid"
)

// Palette of the printed map.
var (
	Paper  = color.RGBA{255, 255, 255, 255}
	Ink    = color.RGBA{0, 0, 0, 255}
	Shade  = color.RGBA{150, 150, 150, 255}
	Amber  = color.RGBA{200, 140, 0, 255}
	Red    = color.RGBA{190, 40, 40, 255}
	Accent = color.RGBA{40, 90, 200, 255}
)

// circleSteps is the number of sides used to approximate circles.
const circleSteps = 48

// Canvas is an RGBA image with the handful of primitives the map needs.
type Canvas struct {
	img  *image.RGBA
	face font.Face
}

// NewCanvas creates a w×h canvas filled with bg.
func NewCanvas(w, h int, bg color.Color) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return &Canvas{img: img, face: basicfont.Face7x13}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) rasterizer() *vector.Rasterizer {
	b := c.img.Bounds()
	return vector.NewRasterizer(b.Dx(), b.Dy())
}

func (c *Canvas) fill(z *vector.Rasterizer, col color.Color) {
	z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// FillRect paints the rectangle with top-left (x,y).
func (c *Canvas) FillRect(x, y, w, h int, col color.Color) {
	draw.Draw(c.img, image.Rect(x, y, x+w, y+h), image.NewUniform(col), image.Point{}, draw.Src)
}

// StrokeRect outlines a rectangle with the given line width.
func (c *Canvas) StrokeRect(x, y, w, h int, width float32, col color.Color) {
	p := []hexgrid.Point{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}, {X: x, Y: y}}
	c.Polyline(p, width, col)
}

// Line draws a straight line of the given width with butt ends.
func (c *Canvas) Line(a, b hexgrid.Point, width float32, col color.Color) {
	ax, ay := float32(a.X), float32(a.Y)
	bx, by := float32(b.X), float32(b.Y)
	dx, dy := bx-ax, by-ay
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	if width < 1 {
		width = 1
	}
	nx, ny := -dy/l*width/2, dx/l*width/2

	z := c.rasterizer()
	z.MoveTo(ax+nx, ay+ny)
	z.LineTo(bx+nx, by+ny)
	z.LineTo(bx-nx, by-ny)
	z.LineTo(ax-nx, ay-ny)
	z.ClosePath()
	c.fill(z, col)
}

// RoundLine draws a line with round caps.
func (c *Canvas) RoundLine(a, b hexgrid.Point, width float32, col color.Color) {
	c.Line(a, b, width, col)
	c.Disc(a, width/2, col)
	c.Disc(b, width/2, col)
}

// Polyline joins consecutive points.
func (c *Canvas) Polyline(pts []hexgrid.Point, width float32, col color.Color) {
	for i := 1; i < len(pts); i++ {
		c.Line(pts[i-1], pts[i], width, col)
	}
}

// Disc fills a circle.
func (c *Canvas) Disc(center hexgrid.Point, r float32, col color.Color) {
	z := c.rasterizer()
	circlePath(z, float32(center.X), float32(center.Y), r, false)
	c.fill(z, col)
}

// Ring strokes a circle of radius r with the given line width.
func (c *Canvas) Ring(center hexgrid.Point, r, width float32, col color.Color) {
	cx, cy := float32(center.X), float32(center.Y)
	z := c.rasterizer()
	circlePath(z, cx, cy, r+width/2, false)
	circlePath(z, cx, cy, r-width/2, true)
	c.fill(z, col)
}

// Polygon fills a closed polygon.
func (c *Canvas) Polygon(pts []hexgrid.Point, col color.Color) {
	if len(pts) < 3 {
		return
	}
	z := c.rasterizer()
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
	c.fill(z, col)
}

func circlePath(z *vector.Rasterizer, cx, cy, r float32, reverse bool) {
	if r <= 0 {
		return
	}
	for i := 0; i <= circleSteps; i++ {
		step := i
		if reverse {
			step = circleSteps - i
		}
		a := 2 * math.Pi * float64(step) / circleSteps
		x := cx + r*float32(math.Cos(a))
		y := cy + r*float32(math.Sin(a))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
}

// TextWidth measures s in pixels.
func (c *Canvas) TextWidth(s string) int {
	return font.MeasureString(c.face, s).Round()
}

// Text draws s with its baseline starting at (x,y). Bold text is overstruck.
func (c *Canvas) Text(x, y int, s string, bold bool, col color.Color) {
	d := &font.Drawer{Dst: c.img, Src: image.NewUniform(col), Face: c.face}
	d.Dot = fixed.P(x, y)
	d.DrawString(s)
	if bold {
		d.Dot = fixed.P(x+1, y)
		d.DrawString(s)
	}
}

// CenteredText draws s centred horizontally on x.
func (c *Canvas) CenteredText(x, y int, s string, bold bool, col color.Color) {
	c.Text(x-c.TextWidth(s)/2, y, s, bold, col)
}
