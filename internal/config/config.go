package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"

	"cellular/internal/assets"
	"cellular/internal/entity"
)

// ErrInvalid is returned when a configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// Config is the full game configuration.
type Config struct {
	Window   Window   `yaml:"window"`
	Arena    Arena    `yaml:"arena"`
	Cells    Cells    `yaml:"cells"`
	Player   Player   `yaml:"player"`
	Enemy    Enemy    `yaml:"enemy"`
	Leveling Leveling `yaml:"leveling"`
	Clock    Clock    `yaml:"clock"`
	Audio    Audio    `yaml:"audio"`
	Log      Log      `yaml:"log"`
	Seed     string   `yaml:"seed"`
}

type Window struct {
	Title  string  `yaml:"title"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale"`
}

type Arena struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type Cells struct {
	StartCount     int        `yaml:"start_count"`
	MaxEnemies     int        `yaml:"max_enemies"`
	MinRadius      float64    `yaml:"min_radius"`
	MaxRadius      float64    `yaml:"max_radius"`
	ReplenishAfter int        `yaml:"replenish_after"`
	FadeStep       float64    `yaml:"fade_step"`
	Palette        [][3]uint8 `yaml:"palette"`
}

type Player struct {
	Radius        float64 `yaml:"radius"`
	Speed         float64 `yaml:"speed"`
	Easing        float64 `yaml:"easing"`
	BoostSpeed    float64 `yaml:"boost_speed"`
	BoostShrink   float64 `yaml:"boost_shrink"`
	TrailInterval float64 `yaml:"trail_interval"`
	TrailRadius   float64 `yaml:"trail_radius"`
}

type Enemy struct {
	Speed    float64 `yaml:"speed"`
	MaxForce float64 `yaml:"max_force"`
}

type Leveling struct {
	Base       float64 `yaml:"base"`
	Step       float64 `yaml:"step"`
	ShrinkStep float64 `yaml:"shrink_step"`
}

type Clock struct {
	MinFPS float64 `yaml:"min_fps"`
	MaxFPS float64 `yaml:"max_fps"`
}

type Audio struct {
	Enabled      bool    `yaml:"enabled"`
	SampleRate   int     `yaml:"sample_rate"`
	MusicVolume  float64 `yaml:"music_volume"`
	EffectVolume float64 `yaml:"effect_volume"`
}

type Log struct {
	Level   string   `yaml:"level"`
	Outputs []string `yaml:"outputs"`
}

// Default returns the embedded default configuration.
func Default() (*Config, error) {
	data, err := assets.ReadFile(assets.DefaultConfig)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := decode(bytes.NewReader(data), &c); err != nil {
		return nil, fmt.Errorf("decode defaults: %w", err)
	}
	return &c, nil
}

// Load decodes the YAML file at path on top of the defaults. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return c, c.Validate()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := c.Decode(f); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return c, c.Validate()
}

// Decode overlays YAML from r onto c.
func (c *Config) Decode(r io.Reader) error {
	return decode(r, c)
}

func decode(r io.Reader, c *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks the invariants the simulation relies on.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window must be positive, got %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.Scale <= 0:
		return fmt.Errorf("%w: window.scale must be positive", ErrInvalid)
	case c.Arena.Width < float64(c.Window.Width) || c.Arena.Height < float64(c.Window.Height):
		return fmt.Errorf("%w: arena %.0fx%.0f smaller than window", ErrInvalid, c.Arena.Width, c.Arena.Height)
	case c.Cells.StartCount <= 0:
		return fmt.Errorf("%w: cells.start_count must be positive", ErrInvalid)
	case c.Cells.MaxEnemies < 0:
		return fmt.Errorf("%w: cells.max_enemies must not be negative", ErrInvalid)
	case c.Cells.MinRadius <= 0 || c.Cells.MinRadius > c.Cells.MaxRadius:
		return fmt.Errorf("%w: cells radius range [%g, %g]", ErrInvalid, c.Cells.MinRadius, c.Cells.MaxRadius)
	case len(c.Cells.Palette) == 0:
		return fmt.Errorf("%w: cells.palette is empty", ErrInvalid)
	case c.Player.Radius <= c.Cells.MaxRadius+1:
		return fmt.Errorf("%w: player.radius must exceed the radius floor %g", ErrInvalid, c.Cells.MaxRadius+1)
	case c.Player.Speed <= 0 || c.Player.BoostSpeed <= 0 || c.Enemy.Speed <= 0:
		return fmt.Errorf("%w: speeds must be positive", ErrInvalid)
	case c.Player.Easing <= 0 || c.Player.Easing > 1:
		return fmt.Errorf("%w: player.easing must be in (0, 1], got %g", ErrInvalid, c.Player.Easing)
	case c.Player.BoostShrink <= 0:
		return fmt.Errorf("%w: player.boost_shrink must be positive", ErrInvalid)
	case c.Player.TrailInterval <= 0 || c.Player.TrailRadius <= 0:
		return fmt.Errorf("%w: player trail interval and radius must be positive", ErrInvalid)
	case c.Leveling.Base <= 0 || c.Leveling.Step <= 0:
		return fmt.Errorf("%w: leveling base and step must be positive", ErrInvalid)
	case c.Leveling.ShrinkStep <= 0:
		return fmt.Errorf("%w: leveling.shrink_step must be positive", ErrInvalid)
	case c.Clock.MinFPS <= 0 || c.Clock.MinFPS > c.Clock.MaxFPS:
		return fmt.Errorf("%w: clock fps range [%g, %g]", ErrInvalid, c.Clock.MinFPS, c.Clock.MaxFPS)
	case c.Audio.Enabled && c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: audio.sample_rate must be positive", ErrInvalid)
	}
	return nil
}

// Palette converts the configured triples into entity colors.
func (c *Config) Palette() []entity.Color {
	out := make([]entity.Color, len(c.Cells.Palette))
	for i, p := range c.Cells.Palette {
		out[i] = entity.Color{R: p[0], G: p[1], B: p[2]}
	}
	return out
}

// RadiusFloor is the smallest radius a shrinking or boosting cell keeps.
func (c *Config) RadiusFloor() float64 {
	return c.Cells.MaxRadius + 1
}

// LevelRules returns the level-up rules for entities.
func (c *Config) LevelRules() entity.Leveling {
	return entity.Leveling{
		Base:       c.Leveling.Base,
		Step:       c.Leveling.Step,
		ShrinkStep: c.Leveling.ShrinkStep,
		Floor:      c.RadiusFloor(),
	}
}

// RandSeed hashes the configured seed string into a PRNG seed. ok is false
// when no seed is configured and the caller should pick one.
func (c *Config) RandSeed() (seed int64, ok bool) {
	if c.Seed == "" {
		return 0, false
	}
	return int64(xxhash.Sum64String(c.Seed)), true
}
