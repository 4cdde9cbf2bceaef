// Package fonts resolves the monospace face used to draw icon text.
//
// Faces come from a chain of candidate font files. The first file that
// parses wins; files that are missing or unreadable are skipped quietly.
// When no candidate is usable the monospace font bundled with fyne is used,
// and if that cannot be parsed either the fixed 7x13 bitmap face is the
// last resort.
package fonts

import (
	"bytes"
	"fmt"
	"os"
	"unicode"

	"fyne.io/fyne/v2/theme"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"termicon/log"
)

const (
	SourceBuiltin = "builtin"
	SourceBitmap  = "basicfont"

	// LogoBoost is added to the body size for the label face.
	LogoBoost = 4
)

// DefaultCandidates are tried in order before falling back to the built-in font.
var DefaultCandidates = []string{
	"/System/Library/Fonts/Monaco.ttc",
	"/usr/share/fonts/truetype/dejavu/DejaVuSansMono.ttf",
}

var builtinContent = func() []byte {
	return theme.DefaultTextMonospaceFont().Content()
}

type parsed struct {
	font *sfnt.Font
	err  error
}

// Loader parses candidate files once and hands out faces at any size.
type Loader struct {
	Candidates []string

	cache   map[string]parsed
	builtin *parsed
}

func NewLoader(candidates []string) *Loader {
	if candidates == nil {
		candidates = DefaultCandidates
	}
	return &Loader{Candidates: candidates, cache: make(map[string]parsed)}
}

// Set is the pair of faces used for one icon size.
type Set struct {
	Body     font.Face
	Logo     font.Face
	Size     float64
	LogoSize float64
	Source   string

	body  *sfnt.Font
	owned []font.Face
}

// Faces resolves the body face at size and the label face at size+LogoBoost.
// The label face only comes from the first candidate; otherwise the body face
// is reused.
func (l *Loader) Faces(size float64) Set {
	s := Set{Size: size, LogoSize: size}

	for _, path := range l.Candidates {
		f, err := l.open(path)
		if err != nil {
			continue
		}
		face, err := newFace(f, size)
		if err != nil {
			log.FontSkipped(path, err)
			continue
		}
		s.Body, s.body, s.Source = face, f, path
		s.owned = append(s.owned, face)
		break
	}

	if s.Body == nil {
		if f, err := l.openBuiltin(); err == nil {
			if face, err := newFace(f, size); err == nil {
				s.Body, s.body, s.Source = face, f, SourceBuiltin
				s.owned = append(s.owned, face)
			}
		}
	}
	if s.Body == nil {
		log.Warnf("no usable font for %gpx, falling back to %s", size, SourceBitmap)
		s.Body, s.Source = basicfont.Face7x13, SourceBitmap
	}

	s.Logo = s.Body
	if len(l.Candidates) > 0 {
		if f, err := l.open(l.Candidates[0]); err == nil {
			if face, err := newFace(f, size+LogoBoost); err == nil {
				s.Logo, s.LogoSize = face, size+LogoBoost
				s.owned = append(s.owned, face)
			}
		}
	}

	log.FontResolved(s.Source, size)
	return s
}

func (l *Loader) open(path string) (*sfnt.Font, error) {
	if p, ok := l.cache[path]; ok {
		return p.font, p.err
	}
	f, err := parseFile(path)
	if err != nil {
		log.FontSkipped(path, err)
	}
	l.cache[path] = parsed{font: f, err: err}
	return f, err
}

func (l *Loader) openBuiltin() (*sfnt.Font, error) {
	if l.builtin == nil {
		f, err := opentype.Parse(builtinContent())
		if err != nil {
			log.FontSkipped(SourceBuiltin, err)
		}
		l.builtin = &parsed{font: f, err: err}
	}
	return l.builtin.font, l.builtin.err
}

func parseFile(path string) (*sfnt.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse accepts a single font or a collection; for collections the first
// face is used.
func Parse(data []byte) (*sfnt.Font, error) {
	if bytes.HasPrefix(data, []byte("ttcf")) {
		c, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, fmt.Errorf("parsing collection: %w", err)
		}
		if c.NumFonts() == 0 {
			return nil, fmt.Errorf("empty font collection")
		}
		return c.Font(0)
	}
	return opentype.Parse(data)
}

func newFace(f *sfnt.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Filter drops runes the body font has no glyph for. Spaces that would lead
// the result because the runes before them were dropped go too, so the line
// still starts at the text column.
func (s Set) Filter(text string) string {
	if s.body == nil {
		return text
	}
	var buf sfnt.Buffer
	out := make([]rune, 0, len(text))
	dropped := false
	for _, r := range text {
		idx, err := s.body.GlyphIndex(&buf, r)
		if err != nil || idx == 0 {
			dropped = true
			continue
		}
		if dropped && len(out) == 0 && unicode.IsSpace(r) {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

// Measure returns the advance width of text in pixels.
func Measure(face font.Face, text string) float64 {
	return toFloat(font.MeasureString(face, text))
}

func toFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

// Close releases the faces owned by the set. The bitmap face is shared and
// never closed.
func (s *Set) Close() {
	for _, f := range s.owned {
		f.Close()
	}
	s.owned = nil
}
