package icon

import (
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

// builtinRenderer skips system fonts so output does not depend on the host.
func builtinRenderer(t *testing.T) *Renderer {
	t.Helper()
	return NewRenderer([]string{filepath.Join(t.TempDir(), "none.ttf")})
}

func near(got color.RGBA, want color.RGBA) bool {
	d := func(a, b uint8) int {
		if a > b {
			return int(a - b)
		}
		return int(b - a)
	}
	return d(got.R, want.R) <= 2 && d(got.G, want.G) <= 2 && d(got.B, want.B) <= 2 && d(got.A, want.A) <= 2
}

func TestLayout512(t *testing.T) {
	g := Layout(512)

	checks := []struct {
		name      string
		got, want any
	}{
		{"Margin", g.Margin, 51},
		{"Window", g.Window, image.Rect(51, 51, 461, 461)},
		{"Radius", g.Radius, 25},
		{"TitleBar", g.TitleBar, image.Rect(54, 54, 458, 118)},
		{"TitleRadius", g.TitleRadius, 17},
		{"ControlSize", g.ControlSize, 17},
		{"ControlY", g.ControlY, 83},
		{"Close", g.Controls[0], image.Rect(71, 75, 88, 91)},
		{"Minimize", g.Controls[1], image.Rect(105, 75, 122, 91)},
		{"Maximize", g.Controls[2], image.Rect(139, 75, 156, 91)},
		{"TextX", g.TextX, 71},
		{"ContentY", g.ContentY, 125},
		{"LineHeight", g.LineHeight, 25},
		{"FontSize", g.FontSize, 20},
		{"IndicatorY", g.IndicatorY, 160},
		{"LabelY", g.LabelY, 195},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestLayoutSmallSizes(t *testing.T) {
	tests := []struct {
		size     int
		fontSize int
		control  int
	}{
		{16, 12, 0},
		{32, 12, 1},
		{64, 12, 2},
		{128, 12, 4},
		{256, 12, 8},
		{512, 20, 17},
		{1024, 40, 34},
	}
	for _, tt := range tests {
		g := Layout(tt.size)
		if g.FontSize != tt.fontSize {
			t.Errorf("Layout(%d).FontSize = %d, want %d", tt.size, g.FontSize, tt.fontSize)
		}
		if g.ControlSize != tt.control {
			t.Errorf("Layout(%d).ControlSize = %d, want %d", tt.size, g.ControlSize, tt.control)
		}
	}
}

func TestRenderDimensions(t *testing.T) {
	r := builtinRenderer(t)
	for _, size := range []int{1, 7, 16, 32, 64, 128, 256, 512} {
		img, err := r.Render(size)
		if err != nil {
			t.Fatalf("Render(%d): %v", size, err)
		}
		if got := img.Bounds(); got != image.Rect(0, 0, size, size) {
			t.Errorf("Render(%d) bounds = %v", size, got)
		}
	}
}

func TestRenderInvalidSize(t *testing.T) {
	r := builtinRenderer(t)
	for _, size := range []int{0, -1, -512} {
		if _, err := r.Render(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Render(%d) err = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestRenderCornersTransparent(t *testing.T) {
	r := builtinRenderer(t)
	for _, size := range []int{16, 32, 64, 128, 256, 512} {
		img, err := r.Render(size)
		if err != nil {
			t.Fatal(err)
		}
		// text may run past the window at small sizes, but never to the left
		// or above it
		last := size - 1
		for _, p := range []image.Point{{0, 0}, {last, 0}, {0, last}} {
			if a := img.RGBAAt(p.X, p.Y).A; a != 0 {
				t.Errorf("size %d: corner %v alpha = %d, want 0", size, p, a)
			}
		}
	}
}

func TestRenderPalette512(t *testing.T) {
	img, err := builtinRenderer(t).Render(512)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		at   image.Point
		want color.RGBA
	}{
		{"outline", image.Pt(52, 256), Accent},
		{"body", image.Pt(256, 400), Background},
		{"title bar", image.Pt(256, 60), TitleBar},
		{"close", image.Pt(79, 83), Controls[0]},
		{"minimize", image.Pt(113, 83), Controls[1]},
		{"maximize", image.Pt(147, 83), Controls[2]},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.at.X, tt.at.Y); !near(got, tt.want) {
			t.Errorf("%s at %v = %v, want %v", tt.name, tt.at, got, tt.want)
		}
	}
}

func TestRenderDrawsPromptAndCursor(t *testing.T) {
	img, err := builtinRenderer(t).Render(512)
	if err != nil {
		t.Fatal(err)
	}
	g := Layout(512)

	var cursorCol int
	textPixels := 0
	for x := g.TextX; x < g.Window.Max.X-outlineWidth; x++ {
		for y := g.ContentY; y < g.ContentY+g.FontSize; y++ {
			c := img.RGBAAt(x, y)
			if !near(c, Background) {
				textPixels++
			}
			if near(c, Cursor) {
				cursorCol = x
			}
		}
	}
	if textPixels == 0 {
		t.Fatal("no text drawn on the prompt line")
	}
	// the cursor bar is the right-most accent mark on the prompt line
	if cursorCol <= g.TextX+g.FontSize {
		t.Errorf("cursor column %d too close to text start %d", cursorCol, g.TextX)
	}
}

func TestRenderDefaultChain(t *testing.T) {
	img, err := Render(64)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 64 {
		t.Errorf("width = %d, want 64", img.Bounds().Dx())
	}
}
