package window

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/xenon/internal/core"
)

// Canvas draws sub-images of loaded sprites onto an ebiten target.
type Canvas struct {
	loader *Loader
	target *ebiten.Image
}

// NewCanvas creates a canvas reading images from loader.
func NewCanvas(loader *Loader) *Canvas {
	return &Canvas{loader: loader}
}

// SetTarget sets the image the next draws go to.
func (c *Canvas) SetTarget(target *ebiten.Image) {
	c.target = target
}

// Draw copies src of image h into the dst box, scaling as needed.
// Empty boxes are skipped.
func (c *Canvas) Draw(h core.Handle, src, dst core.FRect) {
	img := c.loader.Image(h)
	if img == nil || c.target == nil {
		return
	}
	r, ok := sourceRect(src, img.Bounds())
	if !ok || dst.W <= 0 || dst.H <= 0 {
		return
	}

	sub := img.SubImage(r).(*ebiten.Image)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.W/float64(r.Dx()), dst.H/float64(r.Dy()))
	op.GeoM.Translate(dst.X, dst.Y)
	c.target.DrawImage(sub, op)
}

// sourceRect converts src to whole pixels clipped to bounds.
func sourceRect(src core.FRect, bounds image.Rectangle) (image.Rectangle, bool) {
	r := image.Rect(int(src.X), int(src.Y), int(src.Right()), int(src.Bottom())).Intersect(bounds)
	return r, !r.Empty()
}
