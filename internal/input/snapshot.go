package input

// Snapshot is the input state for one frame.
// Pressed and Released hold edges: a key appears in Pressed only on the frame
// it went down.
type Snapshot struct {
	Held     KeySet
	Pressed  KeySet
	Released KeySet

	Buttons         ButtonSet
	ButtonsPressed  ButtonSet
	ButtonsReleased ButtonSet

	CursorX, CursorY int
	DeltaX, DeltaY   int
	Wheel            float64 // notches, positive away from the user
}

// Down reports whether k is held
func (s Snapshot) Down(k Key) bool { return s.Held.Has(k) }

// JustPressed reports whether k went down this frame
func (s Snapshot) JustPressed(k Key) bool { return s.Pressed.Has(k) }

// Clicked reports whether b went down this frame
func (s Snapshot) Clicked(b Button) bool { return s.ButtonsPressed.Has(b) }

// Axis returns -1, 0 or +1 from a pair of opposing keys
func (s Snapshot) Axis(neg, pos Key) float64 {
	v := 0.0
	if s.Down(neg) {
		v--
	}
	if s.Down(pos) {
		v++
	}
	return v
}

// Provider yields one snapshot per frame.
// ok is false once the provider has nothing more to give.
type Provider interface {
	Poll() (Snapshot, bool)
}

// Tracker derives edges and cursor deltas from successive held states.
// Platforms that only report "is down" feed it once per frame.
type Tracker struct {
	prevKeys    KeySet
	prevButtons ButtonSet
	prevX       int
	prevY       int
	started     bool
}

// Next completes a snapshot from raw held keys, buttons, cursor and wheel
func (t *Tracker) Next(held KeySet, buttons ButtonSet, x, y int, wheel float64) Snapshot {
	s := Snapshot{
		Held:            held,
		Pressed:         held &^ t.prevKeys,
		Released:        t.prevKeys &^ held,
		Buttons:         buttons,
		ButtonsPressed:  buttons &^ t.prevButtons,
		ButtonsReleased: t.prevButtons &^ buttons,
		CursorX:         x,
		CursorY:         y,
		Wheel:           wheel,
	}
	if t.started {
		s.DeltaX, s.DeltaY = x-t.prevX, y-t.prevY
	}
	t.prevKeys, t.prevButtons = held, buttons
	t.prevX, t.prevY = x, y
	t.started = true
	return s
}

// Static replays a fixed list of snapshots, then reports exhaustion
type Static struct {
	frames []Snapshot
	pos    int
}

// NewStatic creates a provider over frames
func NewStatic(frames ...Snapshot) *Static {
	return &Static{frames: frames}
}

// Poll implements Provider
func (p *Static) Poll() (Snapshot, bool) {
	if p.pos >= len(p.frames) {
		return Snapshot{}, false
	}
	s := p.frames[p.pos]
	p.pos++
	return s, true
}

// Hold builds n frames holding keys, with Pressed set on the first frame only
func Hold(n int, keys ...Key) []Snapshot {
	set := Keys(keys...)
	out := make([]Snapshot, n)
	for i := range out {
		out[i].Held = set
	}
	if n > 0 {
		out[0].Pressed = set
	}
	return out
}
