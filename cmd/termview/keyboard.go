package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/tileforge/internal/input"
)

// Terminals report key presses and repeats but never releases, so a key
// counts as held for holdFrames frames after its last event.
const holdFrames = 8

// keyboard turns tcell events into per-frame snapshots
type keyboard struct {
	tracker input.Tracker
	ttl     [input.KeyCount]int
	buttons input.ButtonSet
	x, y    int
	wheel   float64
	quit    bool
}

var runeKeys = map[rune]input.Key{
	'a': input.KeyLeft,
	'd': input.KeyRight,
	'w': input.KeyUp,
	's': input.KeyDown,
	' ': input.KeyJump,
	'A': input.KeyLeft,
	'D': input.KeyRight,
	'p': input.KeyPause,
}

var specialKeys = map[tcell.Key]input.Key{
	tcell.KeyLeft:   input.KeyLeft,
	tcell.KeyRight:  input.KeyRight,
	tcell.KeyUp:     input.KeyUp,
	tcell.KeyDown:   input.KeyDown,
	tcell.KeyF1:     input.KeyDebug,
	tcell.KeyF2:     input.KeyHighlight,
	tcell.KeyF3:     input.KeyFilter,
	tcell.KeyEscape: input.KeyPause,
}

// handle folds one event into the pending state
func (k *keyboard) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		k.handleKey(ev)
	case *tcell.EventMouse:
		k.handleMouse(ev)
	}
}

func (k *keyboard) handleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
		k.quit = true
		return
	}
	var (
		key input.Key
		ok  bool
	)
	if ev.Key() == tcell.KeyRune {
		key, ok = runeKeys[ev.Rune()]
	} else {
		key, ok = specialKeys[ev.Key()]
	}
	if !ok {
		return
	}
	k.ttl[key] = holdFrames
	// Shifted letters sprint
	if ev.Modifiers()&tcell.ModShift != 0 || (ev.Key() == tcell.KeyRune && (ev.Rune() == 'A' || ev.Rune() == 'D')) {
		k.ttl[input.KeySprint] = holdFrames
	}
}

// Cells are two pixels tall in the half-block presenter
func (k *keyboard) handleMouse(ev *tcell.EventMouse) {
	cx, cy := ev.Position()
	k.x, k.y = cx, cy*2

	b := ev.Buttons()
	k.buttons = 0
	if b&tcell.Button1 != 0 {
		k.buttons = k.buttons.With(input.MouseLeft)
	}
	if b&tcell.Button2 != 0 {
		k.buttons = k.buttons.With(input.MouseRight)
	}
	if b&tcell.Button3 != 0 {
		k.buttons = k.buttons.With(input.MouseMiddle)
	}
	if b&tcell.WheelUp != 0 {
		k.wheel++
	}
	if b&tcell.WheelDown != 0 {
		k.wheel--
	}
}

// Poll implements input.Provider. It reports false once quit was requested.
func (k *keyboard) Poll() (input.Snapshot, bool) {
	if k.quit {
		return input.Snapshot{}, false
	}
	var held input.KeySet
	for key := input.Key(0); key < input.KeyCount; key++ {
		if k.ttl[key] > 0 {
			held = held.With(key)
			k.ttl[key]--
		}
	}
	s := k.tracker.Next(held, k.buttons, k.x, k.y, k.wheel)
	k.wheel = 0
	return s, true
}
