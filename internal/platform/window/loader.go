// Package window runs a Xenon game in a desktop window with Ebitengine.
package window

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/bmp"

	"github.com/vovakirdan/xenon/internal/core"
)

// ColorKey is the sprite sheet colour treated as transparent.
var ColorKey = color.RGBA{R: 0xFF, G: 0x00, B: 0xFF, A: 0xFF}

// ErrNotBMP is returned for files that do not decode as BMP.
var ErrNotBMP = errors.New("window: not a bmp image")

// Loader decodes BMP sprite sheets from a directory and hands out handles.
// A path is decoded once; later loads return the same handle.
type Loader struct {
	dir    string
	images []*ebiten.Image // index is the handle; 0 is unused
	byPath map[string]core.Handle
}

// NewLoader creates a loader resolving paths against dir.
func NewLoader(dir string) *Loader {
	return &Loader{
		dir:    dir,
		images: []*ebiten.Image{nil},
		byPath: make(map[string]core.Handle),
	}
}

// Load decodes the image at path and returns its handle.
func (l *Loader) Load(path string) (core.Handle, error) {
	if h, ok := l.byPath[path]; ok {
		return h, nil
	}

	f, err := os.Open(filepath.Join(l.dir, path))
	if err != nil {
		return 0, fmt.Errorf("window: %w", err)
	}
	defer f.Close()

	img, err := decodeSprite(f, ColorKey)
	if err != nil {
		return 0, fmt.Errorf("window: %s: %w", path, err)
	}

	h := core.Handle(len(l.images))
	l.images = append(l.images, ebiten.NewImageFromImage(img))
	l.byPath[path] = h
	return h, nil
}

// Image returns the decoded image behind h, or nil.
func (l *Loader) Image(h core.Handle) *ebiten.Image {
	if !h.Valid() || int(h) >= len(l.images) {
		return nil
	}
	return l.images[h]
}

func decodeSprite(r io.Reader, key color.RGBA) (*image.NRGBA, error) {
	src, err := bmp.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotBMP, err)
	}
	return applyColorKey(src, key), nil
}

// applyColorKey copies src, making every pixel equal to key transparent.
func applyColorKey(src image.Image, key color.RGBA) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			if c.R == key.R && c.G == key.G && c.B == key.B {
				c = color.NRGBA{}
			}
			dst.SetNRGBA(x-b.Min.X, y-b.Min.Y, c)
		}
	}
	return dst
}
