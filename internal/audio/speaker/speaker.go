// Package speaker plays the game sounds through the system speaker with
// beep, for frontends that do not run an ebiten audio context.
package speaker

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"cellular/internal/audio"
	"cellular/internal/config"
)

// Sink mixes an endless background loop and one-shot chimes.
type Sink struct {
	rate   beep.SampleRate
	effect float64
	mixer  *beep.Mixer
	music  *beep.Ctrl
	loop   func() beep.Streamer
}

// New initializes the speaker and starts the mixer with the background loop
// paused.
func New(cfg config.Audio) (*Sink, error) {
	if !cfg.Enabled {
		return nil, audio.ErrUnavailable
	}
	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("%w: %v", audio.ErrUnavailable, err)
	}

	s := newSink(rate, cfg)
	s.mixer.Add(s.music)
	speaker.Play(s.mixer)
	return s, nil
}

func newSink(rate beep.SampleRate, cfg config.Audio) *Sink {
	loop := func() beep.Streamer {
		return beep.Iterate(func() beep.Streamer {
			return audio.Melody(rate, cfg.MusicVolume)
		})
	}
	return &Sink{
		rate:   rate,
		effect: cfg.EffectVolume,
		mixer:  &beep.Mixer{},
		music:  &beep.Ctrl{Streamer: loop(), Paused: true},
		loop:   loop,
	}
}

func (s *Sink) PlayBackground() {
	speaker.Lock()
	s.music.Paused = false
	speaker.Unlock()
}

// StopBackground pauses the loop and rewinds it to the first note.
func (s *Sink) StopBackground() {
	speaker.Lock()
	s.music.Paused = true
	s.music.Streamer = s.loop()
	speaker.Unlock()
}

func (s *Sink) PlayEat() {
	speaker.Lock()
	s.mixer.Add(audio.EatChime(s.rate, s.effect))
	speaker.Unlock()
}

// Close silences everything and releases the speaker.
func (s *Sink) Close() {
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}
