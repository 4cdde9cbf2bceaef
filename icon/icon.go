// Package icon draws the terminal-window application icon.
package icon

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"termicon/fonts"
)

var ErrInvalidSize = errors.New("icon size must be positive")

var (
	Background = color.RGBA{R: 26, G: 27, B: 38, A: 255}
	Accent     = color.RGBA{R: 80, G: 250, B: 123, A: 255}
	Text       = color.RGBA{R: 248, G: 248, B: 242, A: 255}
	Cursor     = color.RGBA{R: 80, G: 250, B: 123, A: 255}
	TitleBar   = color.RGBA{R: 40, G: 42, B: 54, A: 255}

	// close, minimize, maximize
	Controls = [3]color.RGBA{
		{R: 255, G: 85, B: 85, A: 255},
		{R: 255, G: 184, B: 108, A: 255},
		{R: 80, G: 250, B: 123, A: 255},
	}
)

const (
	Prompt    = "$ "
	Command   = "pH7Console --ai"
	Indicator = "🤖 AI Ready"
	Label     = "pH7"
)

type Renderer struct {
	Fonts *fonts.Loader
}

func NewRenderer(candidates []string) *Renderer {
	return &Renderer{Fonts: fonts.NewLoader(candidates)}
}

// Render draws the icon with the default font chain.
func Render(size int) (*image.RGBA, error) {
	return NewRenderer(nil).Render(size)
}

func (r *Renderer) Render(size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	g := Layout(size)
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := newCanvas(img)

	c.outlinedRoundedRect(g.Window, g.Radius, outlineWidth, Background, Accent)
	c.roundedRect(g.TitleBar, g.TitleRadius, TitleBar)
	for i, dot := range g.Controls {
		c.ellipse(dot, Controls[i])
	}

	faces := r.Fonts.Faces(float64(g.FontSize))
	defer faces.Close()

	x := float64(g.TextX)
	prompt := faces.Filter(Prompt)
	command := faces.Filter(Command)
	c.text(faces.Body, x, g.ContentY, prompt, Cursor)
	c.text(faces.Body, x+fonts.Measure(faces.Body, prompt), g.ContentY, command, Text)

	cx := float32(x + fonts.Measure(faces.Body, prompt+command) + cursorGap)
	cy := float32(g.ContentY)
	c.rect(cx, cy, cx+cursorWidth, cy+float32(g.FontSize), Cursor)

	c.text(faces.Body, x, g.IndicatorY, faces.Filter(Indicator), Cursor)
	c.text(faces.Logo, x, g.LabelY, faces.Filter(Label), Accent)

	return img, nil
}
