package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultBindings maps logical keys to keyboard keys
var DefaultBindings = map[Key][]ebiten.Key{
	KeyLeft:      {ebiten.KeyA, ebiten.KeyArrowLeft},
	KeyRight:     {ebiten.KeyD, ebiten.KeyArrowRight},
	KeyUp:        {ebiten.KeyW, ebiten.KeyArrowUp},
	KeyDown:      {ebiten.KeyS, ebiten.KeyArrowDown},
	KeyJump:      {ebiten.KeySpace},
	KeySprint:    {ebiten.KeyShift},
	KeyDebug:     {ebiten.KeyF1},
	KeyHighlight: {ebiten.KeyF2},
	KeyFilter:    {ebiten.KeyF3},
	KeyPause:     {ebiten.KeyEscape},
}

var buttonBindings = [ButtonCount]ebiten.MouseButton{
	MouseLeft:   ebiten.MouseButtonLeft,
	MouseRight:  ebiten.MouseButtonRight,
	MouseMiddle: ebiten.MouseButtonMiddle,
}

// EbitenProvider reads the keyboard and mouse through ebiten.
// Poll must be called from ebiten's Update.
type EbitenProvider struct {
	bindings map[Key][]ebiten.Key
	prevX    int
	prevY    int
}

// NewEbitenProvider creates a provider; nil bindings selects DefaultBindings
func NewEbitenProvider(bindings map[Key][]ebiten.Key) *EbitenProvider {
	if bindings == nil {
		bindings = DefaultBindings
	}
	return &EbitenProvider{bindings: bindings}
}

// Poll implements Provider. It never runs out.
func (p *EbitenProvider) Poll() (Snapshot, bool) {
	var s Snapshot
	for k, keys := range p.bindings {
		for _, ek := range keys {
			if ebiten.IsKeyPressed(ek) {
				s.Held = s.Held.With(k)
			}
			if inpututil.IsKeyJustPressed(ek) {
				s.Pressed = s.Pressed.With(k)
			}
			if inpututil.IsKeyJustReleased(ek) {
				s.Released = s.Released.With(k)
			}
		}
	}
	for b, mb := range buttonBindings {
		btn := Button(b)
		if ebiten.IsMouseButtonPressed(mb) {
			s.Buttons = s.Buttons.With(btn)
		}
		if inpututil.IsMouseButtonJustPressed(mb) {
			s.ButtonsPressed = s.ButtonsPressed.With(btn)
		}
		if inpututil.IsMouseButtonJustReleased(mb) {
			s.ButtonsReleased = s.ButtonsReleased.With(btn)
		}
	}

	s.CursorX, s.CursorY = ebiten.CursorPosition()
	s.DeltaX, s.DeltaY = s.CursorX-p.prevX, s.CursorY-p.prevY
	p.prevX, p.prevY = s.CursorX, s.CursorY

	_, s.Wheel = ebiten.Wheel()
	return s, true
}
