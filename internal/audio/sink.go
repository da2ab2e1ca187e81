// Package audio synthesizes the game's background loop and eat effect with
// beep and plays them through ebiten's audio context.
package audio

import "errors"

// ErrUnavailable is returned when audio is disabled or cannot be started.
var ErrUnavailable = errors.New("audio unavailable")

// Sink receives the game's audio triggers.
type Sink interface {
	PlayBackground()
	StopBackground()
	PlayEat()
}

// Nop is a Sink that plays nothing.
type Nop struct{}

func (Nop) PlayBackground() {}
func (Nop) StopBackground() {}
func (Nop) PlayEat()        {}
