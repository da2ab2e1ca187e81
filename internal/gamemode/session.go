// Package gamemode drives one play session: the title, play and game-over
// states, the pause gate, and the mapping from simulation events to sound.
package gamemode

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"cellular/internal/audio"
	"cellular/internal/clock"
	"cellular/internal/input"
	"cellular/internal/log"
	"cellular/internal/sim"
)

// State is the session screen.
type State int

const (
	StateBegin   State = iota // Title screen
	StateDefault              // Playing
	StateEnd                  // Game over
)

func (s State) String() string {
	switch s {
	case StateBegin:
		return "begin"
	case StateDefault:
		return "default"
	case StateEnd:
		return "end"
	default:
		return "unknown"
	}
}

// HUD is what the renderer shows on top of the arena.
type HUD struct {
	State      State
	Paused     bool
	Debug      bool
	Score      float64
	Multiplier int
	NextLevel  float64
	TimeAlive  float64
	ShowHint   bool // Boost hint, until the first boost
	Dt         float64
	Cells      int
	Enemies    int
	SessionID  string
}

// Session owns the world and gates its ticking.
type Session struct {
	ID     uuid.UUID
	State  State
	Paused bool
	Debug  bool

	world *sim.World
	clock *clock.Clock
	audio audio.Sink
	log   *log.Logger
	edges input.Edges
}

// New creates a session on the title screen.
func New(world *sim.World, clk *clock.Clock, sink audio.Sink, logger *log.Logger) *Session {
	if sink == nil {
		sink = audio.Nop{}
	}
	s := &Session{
		ID:    uuid.New(),
		State: StateBegin,
		world: world,
		clock: clk,
		audio: sink,
	}
	s.log = logger.With(zap.String("session", s.ID.String()))
	s.log.Info("session created", zap.Int("cells", len(world.Cells())))
	return s
}

// World returns the simulated world.
func (s *Session) World() *sim.World {
	return s.world
}

// Confirm is the start / try-again action: it starts from the title screen
// and restarts from the game-over screen.
func (s *Session) Confirm() {
	switch s.State {
	case StateBegin:
		s.ConfirmStart()
	case StateEnd:
		s.Restart()
	}
}

// ConfirmStart leaves the title screen and starts playing.
func (s *Session) ConfirmStart() {
	if s.State != StateBegin {
		return
	}
	s.State = StateDefault
	s.clock.Reset()
	s.audio.PlayBackground()
	s.log.Info("session started")
}

// Restart regenerates the world and starts a new round under a new id.
func (s *Session) Restart() {
	if s.State != StateEnd {
		return
	}
	s.world.Reset()
	s.ID = uuid.New()
	s.State = StateDefault
	s.Paused = false
	s.clock.Reset()
	s.audio.PlayBackground()
	s.log.Info("session restarted", zap.String("new_session", s.ID.String()))
}

// TogglePause freezes or resumes play. It only applies while playing.
func (s *Session) TogglePause() {
	if s.State != StateDefault {
		return
	}
	s.Paused = !s.Paused
	if s.Paused {
		s.audio.StopBackground()
		s.log.Info("paused")
		return
	}
	s.clock.Reset()
	s.audio.PlayBackground()
	s.log.Info("resumed")
}

// ToggleDebug flips the debug overlay.
func (s *Session) ToggleDebug() {
	s.Debug = !s.Debug
}

// ForceEnd ends the round as if the player had been eaten. It only applies
// while playing and unpaused.
func (s *Session) ForceEnd() {
	if s.State != StateDefault || s.Paused {
		return
	}
	s.end("forced")
}

func (s *Session) end(reason string) {
	s.State = StateEnd
	s.Paused = false
	s.audio.StopBackground()

	st := s.world.Stats()
	s.log.Info("game over",
		zap.String("reason", reason),
		zap.Float64("score", st.Score),
		zap.Int("multiplier", st.Multiplier),
		zap.Float64("time_alive", st.TimeAlive),
	)
}

// Update applies one host frame: key edges first, then a simulation tick
// when playing and not paused.
func (s *Session) Update(snap input.Snapshot) {
	pressed := s.edges.Pressed(snap.Keys)
	if pressed.Down(input.KeyDebug) {
		s.ToggleDebug()
	}
	if pressed.Down(input.KeyPause) {
		s.TogglePause()
	}
	if pressed.Down(input.KeyConfirm) {
		s.Confirm()
	}
	if snap.Keys.Down(input.KeyForceEnd) {
		s.ForceEnd()
	}

	if s.State != StateDefault || s.Paused {
		return
	}

	in := sim.Input{Boost: snap.Boost}
	if snap.HasPointer {
		in.Target = s.world.Camera().ToWorld(snap.Pointer)
		in.HasTarget = true
	}
	ev := s.world.Tick(s.clock.Tick(), in)
	s.handle(ev)
}

func (s *Session) handle(ev sim.Events) {
	if ev.PlayerAte > 0 {
		s.audio.PlayEat()
	}
	if ev.PlayerLeveled {
		st := s.world.Stats()
		s.log.Debug("level up", zap.Int("multiplier", st.Multiplier), zap.Float64("next_level", st.NextLevel))
	}
	if ev.Replenished > 0 {
		s.log.Debug("replenished", zap.Int("count", ev.Replenished))
	}
	if ev.PlayerEaten {
		s.end("eaten")
	}
}

// HUD returns the numbers and flags the renderer needs.
func (s *Session) HUD() HUD {
	st := s.world.Stats()
	return HUD{
		State:      s.State,
		Paused:     s.Paused,
		Debug:      s.Debug,
		Score:      st.Score,
		Multiplier: st.Multiplier,
		NextLevel:  st.NextLevel,
		TimeAlive:  st.TimeAlive,
		ShowHint:   !s.world.BoostUsed(),
		Dt:         s.clock.Last(),
		Cells:      st.Cells,
		Enemies:    st.Enemies,
		SessionID:  s.ID.String(),
	}
}

// Frame exports the drawable cells, reusing dst.
func (s *Session) Frame(dst []sim.Circle) sim.Frame {
	return s.world.Frame(dst)
}
