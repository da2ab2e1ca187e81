package audio

import (
	"bytes"
	"fmt"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"cellular/internal/config"
)

// Player is the ebiten-backed Sink. The background loop is rendered once and
// looped forever; every eat plays a fresh copy of the chime.
type Player struct {
	ctx   *audio.Context
	music track
	chime []byte
}

// track is the part of *audio.Player the background loop uses.
type track interface {
	Play()
	Pause()
	Rewind() error
}

// NewPlayer renders the sounds and opens the ebiten audio context. Only one
// context may exist per process.
func NewPlayer(cfg config.Audio) (*Player, error) {
	if !cfg.Enabled {
		return nil, ErrUnavailable
	}
	rate := beep.SampleRate(cfg.SampleRate)

	loop := RenderPCM(Melody(rate, 1))
	ctx := audio.NewContext(cfg.SampleRate)
	music, err := ctx.NewPlayer(audio.NewInfiniteLoop(bytes.NewReader(loop), int64(len(loop))))
	if err != nil {
		return nil, fmt.Errorf("%w: background player: %v", ErrUnavailable, err)
	}
	music.SetVolume(cfg.MusicVolume)

	return &Player{
		ctx:   ctx,
		music: music,
		chime: RenderPCM(EatChime(rate, cfg.EffectVolume)),
	}, nil
}

// PlayBackground starts the background loop.
func (p *Player) PlayBackground() {
	p.music.Play()
}

// StopBackground pauses the background loop and rewinds it, so the next
// session starts the tune from its first note.
func (p *Player) StopBackground() {
	p.music.Pause()
	_ = p.music.Rewind()
}

// PlayEat plays the eat chime over whatever is already playing.
func (p *Player) PlayEat() {
	p.ctx.NewPlayerFromBytes(p.chime).Play()
}
