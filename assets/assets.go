// Package assets renders the icon at every bundle size and writes the files
// an app bundle expects.
package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"slices"

	ico "github.com/sergeymakinen/go-ico"

	"termicon/icon"
	"termicon/log"
)

// Sizes are rendered in this order.
var Sizes = []int{16, 32, 64, 128, 256, 512}

// Aliases lists extra filenames a size is also saved under.
var Aliases = map[int][]string{
	32:  {"32x32.png"},
	128: {"128x128.png", "128x128@2x.png"},
	512: {"icon.png"},
}

const (
	ICOName = "icon.ico"
	icoSize = 256
)

type Options struct {
	// Fonts overrides the font candidate chain; nil means the default chain.
	Fonts []string
	// ICO also writes icon.ico from the 256px render.
	ICO bool
}

type File struct {
	Name string
	Size int
}

type Manifest struct {
	Files []File
}

// Names returns the written file names sorted and without duplicates.
func (m Manifest) Names() []string {
	names := make([]string, 0, len(m.Files))
	for _, f := range m.Files {
		names = append(names, f.Name)
	}
	slices.Sort(names)
	return slices.Compact(names)
}

func PNGName(size int) string {
	return fmt.Sprintf("icon_%dx%d.png", size, size)
}

// Expected returns the file names Generate writes for opts, sorted.
func Expected(opts Options) []string {
	var names []string
	for _, size := range Sizes {
		names = append(names, PNGName(size))
		names = append(names, Aliases[size]...)
	}
	if opts.ICO {
		names = append(names, ICOName)
	}
	slices.Sort(names)
	return names
}

// Generate renders each size in turn and writes it into dir. The first
// failure stops the run; files already written stay on disk.
func Generate(dir string, opts Options) (Manifest, error) {
	var m Manifest
	if err := os.MkdirAll(dir, 0755); err != nil {
		return m, fmt.Errorf("creating output directory: %w", err)
	}

	r := icon.NewRenderer(opts.Fonts)
	for _, size := range Sizes {
		img, err := r.Render(size)
		if err != nil {
			return m, fmt.Errorf("rendering %dpx: %w", size, err)
		}

		data, err := encodePNG(img)
		if err != nil {
			return m, fmt.Errorf("encoding %dpx: %w", size, err)
		}
		for _, name := range append([]string{PNGName(size)}, Aliases[size]...) {
			if err := write(dir, name, data); err != nil {
				return m, err
			}
			log.AssetWritten(name, size, len(data))
			m.Files = append(m.Files, File{Name: name, Size: size})
		}

		if opts.ICO && size == icoSize {
			data, err := encodeICO(img)
			if err != nil {
				return m, fmt.Errorf("encoding %s: %w", ICOName, err)
			}
			if err := write(dir, ICOName, data); err != nil {
				return m, err
			}
			log.AssetWritten(ICOName, size, len(data))
			m.Files = append(m.Files, File{Name: ICOName, Size: size})
		}
	}
	return m, nil
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeICO(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := ico.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func write(dir, name string, data []byte) error {
	if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
