package present

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/tileforge/internal/raster"
)

// Ebiten uploads canvases into a GPU image and draws it onto a target
type Ebiten struct {
	target *ebiten.Image
	frame  *ebiten.Image
	buf    []byte
}

// NewEbiten creates an ebiten presenter with no target
func NewEbiten() *Ebiten {
	return &Ebiten{}
}

// SetTarget selects the screen image for the next Present
func (e *Ebiten) SetTarget(screen *ebiten.Image) {
	e.target = screen
}

// Present implements Presenter. The frame is scaled to the target bounds.
func (e *Ebiten) Present(c *raster.Canvas) error {
	if e.target == nil || c.W == 0 || c.H == 0 {
		return nil
	}

	if e.frame == nil || e.frame.Bounds().Dx() != c.W || e.frame.Bounds().Dy() != c.H {
		if e.frame != nil {
			e.frame.Deallocate()
		}
		e.frame = ebiten.NewImage(c.W, c.H)
		e.buf = make([]byte, 4*c.W*c.H)
	}
	FillRGBA(e.buf, c)
	e.frame.WritePixels(e.buf)

	tb := e.target.Bounds()
	op := &ebiten.DrawImageOptions{}
	if tb.Dx() != c.W || tb.Dy() != c.H {
		op.GeoM.Scale(float64(tb.Dx())/float64(c.W), float64(tb.Dy())/float64(c.H))
	}
	e.target.DrawImage(e.frame, op)
	return nil
}
