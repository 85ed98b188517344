package crossing

import "github.com/vovakirdan/tui-crossing/internal/core"

// Key is a logical game key.
type Key int

const (
	KeyNone Key = iota
	KeySpacebar
	KeyLeft
	KeyUp
	KeyRight
	KeyDown
	KeyMute
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeySpacebar:
		return "spacebar"
	case KeyLeft:
		return "left"
	case KeyUp:
		return "up"
	case KeyRight:
		return "right"
	case KeyDown:
		return "down"
	case KeyMute:
		return "M"
	default:
		return "none"
	}
}

// keyCodes maps DOM-style key codes to logical keys.
var keyCodes = map[int]Key{
	32: KeySpacebar,
	37: KeyLeft,
	38: KeyUp,
	39: KeyRight,
	40: KeyDown,
	77: KeyMute,
}

// KeyForCode maps a raw key code; any other code is ignored.
func KeyForCode(code int) (Key, bool) {
	k, ok := keyCodes[code]
	return k, ok
}

// KeyForAction maps a platform action to a logical key.
func KeyForAction(a core.Action) (Key, bool) {
	switch a {
	case core.ActionPause:
		return KeySpacebar, true
	case core.ActionLeft:
		return KeyLeft, true
	case core.ActionUp:
		return KeyUp, true
	case core.ActionRight:
		return KeyRight, true
	case core.ActionDown:
		return KeyDown, true
	case core.ActionMute:
		return KeyMute, true
	}
	return KeyNone, false
}
