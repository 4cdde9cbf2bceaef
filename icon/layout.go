package icon

import "image"

const (
	outlineWidth = 3
	inset        = 20 // left padding of controls and text inside the window
	lineGap      = 10
	cursorGap    = 5
	cursorWidth  = 2
	minFontSize  = 12
)

// Geometry holds every size-derived coordinate of the icon. Rectangles use
// continuous pixel coordinates: Max is the far edge, not the last pixel.
type Geometry struct {
	Margin      int
	Window      image.Rectangle
	Radius      int
	TitleBar    image.Rectangle
	TitleRadius int
	ControlSize int
	ControlY    int
	Controls    [3]image.Rectangle
	TextX       int
	ContentY    int
	LineHeight  int
	FontSize    int
	IndicatorY  int
	LabelY      int
}

// Layout computes the geometry for a size x size canvas. All arithmetic is
// integer division, so very small sizes collapse some parts to nothing.
func Layout(size int) Geometry {
	var g Geometry
	g.Margin = size / 10
	m := g.Margin

	g.Window = rect(m, m, size-m, size-m)
	g.Radius = size / 20

	titleH := size / 8
	g.TitleBar = rect(m+outlineWidth, m+outlineWidth, size-m-outlineWidth, m+outlineWidth+titleH)
	g.TitleRadius = size / 30

	c := size / 30
	g.ControlSize = c
	g.ControlY = m + titleH/2
	for i := range g.Controls {
		x := m + inset + c*2*i
		g.Controls[i] = rect(x, g.ControlY-c/2, x+c, g.ControlY+c/2)
	}

	g.TextX = m + inset
	g.ContentY = m + titleH + lineGap
	g.LineHeight = size / 20
	g.FontSize = max(minFontSize, size/25)
	g.IndicatorY = g.ContentY + g.LineHeight + lineGap
	g.LabelY = g.IndicatorY + g.LineHeight + lineGap
	return g
}

// rect keeps the corners as given. image.Rect would swap inverted corners,
// which turns a collapsed shape into a visible one.
func rect(x0, y0, x1, y1 int) image.Rectangle {
	return image.Rectangle{Min: image.Pt(x0, y0), Max: image.Pt(x1, y1)}
}
