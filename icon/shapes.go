package icon

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// kappa places cubic control points so four segments approximate a circle.
const kappa = 0.5522847498

type canvas struct {
	dst *image.RGBA
	r   *vector.Rasterizer
}

func newCanvas(dst *image.RGBA) *canvas {
	b := dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.DrawOp = draw.Over
	return &canvas{dst: dst, r: r}
}

func (c *canvas) fill(col color.Color) {
	b := c.dst.Bounds()
	c.r.Draw(c.dst, b, image.NewUniform(col), image.Point{})
	c.r.Reset(b.Dx(), b.Dy())
}

func (c *canvas) rect(x0, y0, x1, y1 float32, col color.Color) {
	if x1 <= x0 || y1 <= y0 {
		return
	}
	c.r.MoveTo(x0, y0)
	c.r.LineTo(x1, y0)
	c.r.LineTo(x1, y1)
	c.r.LineTo(x0, y1)
	c.r.ClosePath()
	c.fill(col)
}

func (c *canvas) roundedRect(rc image.Rectangle, radius int, col color.Color) {
	if rc.Dx() <= 0 || rc.Dy() <= 0 {
		return
	}
	x0, y0 := float32(rc.Min.X), float32(rc.Min.Y)
	x1, y1 := float32(rc.Max.X), float32(rc.Max.Y)
	rad := float32(min(radius, rc.Dx()/2, rc.Dy()/2))
	if rad <= 0 {
		c.rect(x0, y0, x1, y1, col)
		return
	}
	k := rad * kappa

	c.r.MoveTo(x0+rad, y0)
	c.r.LineTo(x1-rad, y0)
	c.r.CubeTo(x1-rad+k, y0, x1, y0+rad-k, x1, y0+rad)
	c.r.LineTo(x1, y1-rad)
	c.r.CubeTo(x1, y1-rad+k, x1-rad+k, y1, x1-rad, y1)
	c.r.LineTo(x0+rad, y1)
	c.r.CubeTo(x0+rad-k, y1, x0, y1-rad+k, x0, y1-rad)
	c.r.LineTo(x0, y0+rad)
	c.r.CubeTo(x0, y0+rad-k, x0+rad-k, y0, x0+rad, y0)
	c.r.ClosePath()
	c.fill(col)
}

// outlinedRoundedRect strokes inward, so the outer edge stays on rc.
func (c *canvas) outlinedRoundedRect(rc image.Rectangle, radius, width int, fill, stroke color.Color) {
	c.roundedRect(rc, radius, stroke)
	c.roundedRect(rc.Inset(width), max(radius-width, 0), fill)
}

func (c *canvas) ellipse(rc image.Rectangle, col color.Color) {
	if rc.Dx() <= 0 || rc.Dy() <= 0 {
		return
	}
	rx, ry := float32(rc.Dx())/2, float32(rc.Dy())/2
	cx, cy := float32(rc.Min.X)+rx, float32(rc.Min.Y)+ry
	kx, ky := rx*kappa, ry*kappa

	c.r.MoveTo(cx+rx, cy)
	c.r.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	c.r.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	c.r.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	c.r.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	c.r.ClosePath()
	c.fill(col)
}

// text draws s with its top edge at y, the way a line of terminal output sits
// under the previous one.
func (c *canvas) text(face font.Face, x float64, y int, s string, col color.Color) {
	if face == nil || s == "" {
		return
	}
	d := &font.Drawer{
		Dst:  c.dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(x * 64),
			Y: fixed.I(y) + face.Metrics().Ascent,
		},
	}
	d.DrawString(s)
}
