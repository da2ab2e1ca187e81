package input

import "cellular/internal/vec"

// Key is one of the tracked keys. The set is closed.
type Key uint8

const (
	KeyPause    Key = iota // Toggles pause on press
	KeyDebug               // Toggles the debug overlay on press
	KeyForceEnd            // Ends the round while held
	KeyConfirm             // Starts or restarts from the title and game-over screens
	keyCount
)

func (k Key) String() string {
	switch k {
	case KeyPause:
		return "pause"
	case KeyDebug:
		return "debug"
	case KeyForceEnd:
		return "force-end"
	case KeyConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// Keys holds the down state of every tracked key.
type Keys [keyCount]bool

// Set marks k as down or up.
func (ks *Keys) Set(k Key, down bool) {
	if k < keyCount {
		ks[k] = down
	}
}

// Down reports whether k is held.
func (ks Keys) Down(k Key) bool {
	return k < keyCount && ks[k]
}

// Snapshot is what the host hands to the session once per tick.
type Snapshot struct {
	Keys Keys

	// Pointer is relative to the top-left of the viewport. HasPointer stays
	// false until the host has seen the pointer at least once.
	Pointer    vec.Vec2
	HasPointer bool

	Boost bool
}

// Edges turns level key states into press events.
type Edges struct {
	prev Keys
}

// Pressed returns the keys that went down since the previous call.
func (e *Edges) Pressed(cur Keys) Keys {
	var out Keys
	for k := range cur {
		out[k] = cur[k] && !e.prev[k]
	}
	e.prev = cur
	return out
}
