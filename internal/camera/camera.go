package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Minimum |det| for an invertible view
const detEpsilon = 1e-8

// Camera maps world pixels to screen pixels
type Camera struct {
	Pos      mgl64.Vec2 // world point shown at the viewport centre
	Zoom     float64
	Rot      float64 // radians
	Viewport mgl64.Vec2
}

// New returns a camera at pos with unit zoom and no rotation
func New(pos, viewport mgl64.Vec2) *Camera {
	return &Camera{Pos: pos, Zoom: 1, Viewport: viewport}
}

// View returns screen = T(viewport/2) · R(rot) · S(zoom) · T(-pos)
func (c *Camera) View() mgl64.Mat3 {
	center := mgl64.Translate2D(c.Viewport.X()*0.5, c.Viewport.Y()*0.5)
	rot := mgl64.HomogRotate2D(c.Rot)
	scale := mgl64.Scale2D(c.Zoom, c.Zoom)
	origin := mgl64.Translate2D(-c.Pos.X(), -c.Pos.Y())
	return center.Mul3(rot.Mul3(scale.Mul3(origin)))
}

// Inverse returns the inverse of View. ok is false when the linear part is
// singular (for example zero zoom).
func (c *Camera) Inverse() (mgl64.Mat3, bool) {
	return invertAffine(c.View())
}

// WorldToScreen maps a world point to screen pixels
func (c *Camera) WorldToScreen(p mgl64.Vec2) mgl64.Vec2 {
	return transform(c.View(), p)
}

// ScreenToWorld maps a screen pixel to world space.
// A singular view falls back to the identity.
func (c *Camera) ScreenToWorld(sx, sy float64) mgl64.Vec2 {
	inv, ok := c.Inverse()
	if !ok {
		inv = mgl64.Ident3()
	}
	return transform(inv, mgl64.Vec2{sx, sy})
}

// Follow eases the camera toward target with exponential smoothing
func (c *Camera) Follow(target mgl64.Vec2, rate, dt float64) {
	t := 1 - math.Exp(-rate*dt)
	c.Pos = c.Pos.Add(target.Sub(c.Pos).Mul(t))
}

// ZoomBy multiplies zoom by factor^steps and clamps it to [lo, hi]
func (c *Camera) ZoomBy(steps, factor, lo, hi float64) {
	if steps == 0 {
		return
	}
	c.Zoom = mgl64.Clamp(c.Zoom*math.Pow(factor, steps), lo, hi)
}

func transform(m mgl64.Mat3, p mgl64.Vec2) mgl64.Vec2 {
	return m.Mul3x1(p.Vec3(1)).Vec2()
}

// invertAffine inverts [a b tx; c d ty; 0 0 1] through its 2×2 block
func invertAffine(m mgl64.Mat3) (mgl64.Mat3, bool) {
	a, b, tx := m.At(0, 0), m.At(0, 1), m.At(0, 2)
	c, d, ty := m.At(1, 0), m.At(1, 1), m.At(1, 2)

	det := a*d - b*c
	if math.Abs(det) < detEpsilon {
		return mgl64.Ident3(), false
	}
	inv := 1 / det
	ia, ib := d*inv, -b*inv
	ic, id := -c*inv, a*inv
	itx := -(ia*tx + ib*ty)
	ity := -(ic*tx + id*ty)

	// column-major
	return mgl64.Mat3{ia, ic, 0, ib, id, 0, itx, ity, 1}, true
}
