package terminal

import (
	"github.com/gdamore/tcell/v2"

	"cellular/internal/input"
	"cellular/internal/vec"
)

// Translator turns tcell events into input snapshots. Terminals report key
// presses only, so every press is replayed as one snapshot with the key down
// followed by at least one with it up. Presses arriving faster than snapshots
// queue up instead of merging.
type Translator struct {
	view *View

	pending    map[input.Key]int
	sent       input.Keys // Keys down in the last snapshot
	pointer    vec.Vec2
	hasPointer bool
	boost      bool
}

// NewTranslator creates a translator mapping mouse cells through view.
func NewTranslator(view *View) *Translator {
	return &Translator{view: view, pending: make(map[input.Key]int)}
}

func (t *Translator) press(k input.Key) {
	t.pending[k]++
}

// Handle records ev. It reports true when the user asked to quit.
func (t *Translator) Handle(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyEnter:
			t.press(input.KeyConfirm)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case 'p':
				t.press(input.KeyPause)
			case 'd':
				t.press(input.KeyDebug)
			case 'r':
				t.press(input.KeyForceEnd)
			}
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		sx, sy := t.view.Scale()
		t.pointer = vec.New((float64(col)+0.5)*sx, (float64(row)+0.5)*sy)
		t.hasPointer = true
		t.boost = ev.Buttons()&tcell.Button1 != 0
	}
	return false
}

// Snapshot returns the current input. A key reported down is reported up in
// the next snapshot even when another press of it is queued.
func (t *Translator) Snapshot() input.Snapshot {
	var keys input.Keys
	for k, n := range t.pending {
		if n == 0 || t.sent.Down(k) {
			continue
		}
		keys.Set(k, true)
		t.pending[k] = n - 1
	}
	t.sent = keys
	return input.Snapshot{
		Keys:       keys,
		Pointer:    t.pointer,
		HasPointer: t.hasPointer,
		Boost:      t.boost,
	}
}
