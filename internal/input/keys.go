package input

import "strings"

// Key is a logical action key, independent of the platform keyboard
type Key uint8

// Logical keys
const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyJump
	KeySprint
	KeyDebug     // toggles the HUD
	KeyHighlight // toggles the cursor tile outline
	KeyFilter    // toggles bilinear filtering
	KeyPause
	KeyCount
)

var keyNames = [KeyCount]string{
	"left", "right", "up", "down", "jump", "sprint", "debug", "highlight", "filter", "pause",
}

func (k Key) String() string {
	if k < KeyCount {
		return keyNames[k]
	}
	return "unknown"
}

// KeySet is a bit set of logical keys
type KeySet uint32

// Has reports whether k is in the set
func (s KeySet) Has(k Key) bool {
	return s&(1<<k) != 0
}

// With returns s plus k
func (s KeySet) With(k Key) KeySet {
	return s | 1<<k
}

// Without returns s minus k
func (s KeySet) Without(k Key) KeySet {
	return s &^ (1 << k)
}

func (s KeySet) String() string {
	var names []string
	for k := Key(0); k < KeyCount; k++ {
		if s.Has(k) {
			names = append(names, k.String())
		}
	}
	return strings.Join(names, "+")
}

// Keys builds a set from a list of keys
func Keys(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

// Button is a mouse button
type Button uint8

// Mouse buttons
const (
	MouseLeft Button = iota
	MouseRight
	MouseMiddle
	ButtonCount
)

// ButtonSet is a bit set of mouse buttons
type ButtonSet uint8

// Has reports whether b is in the set
func (s ButtonSet) Has(b Button) bool {
	return s&(1<<b) != 0
}

// With returns s plus b
func (s ButtonSet) With(b Button) ButtonSet {
	return s | 1<<b
}
