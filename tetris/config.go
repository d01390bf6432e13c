package tetris

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid config")

const (
	DefaultWidth        = 10
	DefaultHeight       = 20
	DefaultTickInterval = 5 * time.Millisecond
	DefaultGravityBase  = 40
	DefaultGravityFloor = 5
)

// Config holds the engine construction parameters.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Seed fixes the piece sequence. Zero picks a random seed.
	Seed uint64 `yaml:"seed"`

	// TickInterval is the period of the gravity ticker.
	TickInterval time.Duration `yaml:"tickInterval"`

	// GravityBase is the number of ticks between gravity drops before any
	// speed bonus is applied.
	GravityBase int `yaml:"gravityBase"`

	// GravityFloor is the minimum number of ticks between gravity drops.
	GravityFloor int `yaml:"gravityFloor"`

	// LinesPerBonus removes one tick from the gravity threshold for every
	// LinesPerBonus lines cleared. Zero keeps gravity constant.
	LinesPerBonus int `yaml:"linesPerBonus"`

	// Logger receives lifecycle messages. Nil disables logging.
	Logger *log.Logger `yaml:"-"`
}

// DefaultConfig returns a 10x20 board with constant gravity.
func DefaultConfig() Config {
	return Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		TickInterval: DefaultTickInterval,
		GravityBase:  DefaultGravityBase,
		GravityFloor: DefaultGravityFloor,
	}
}

// Validate checks that the configuration describes a playable board.
func (c *Config) Validate() error {
	if c.Width < 4 {
		return fmt.Errorf("%w: width must be at least 4, got %d", ErrInvalidConfig, c.Width)
	}
	if c.Height < 1 {
		return fmt.Errorf("%w: height must be positive, got %d", ErrInvalidConfig, c.Height)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tickInterval must be positive, got %s", ErrInvalidConfig, c.TickInterval)
	}
	if c.GravityFloor < 1 {
		return fmt.Errorf("%w: gravityFloor must be at least 1, got %d", ErrInvalidConfig, c.GravityFloor)
	}
	if c.GravityBase < c.GravityFloor {
		return fmt.Errorf("%w: gravityBase(%d) < gravityFloor(%d)", ErrInvalidConfig, c.GravityBase, c.GravityFloor)
	}
	if c.LinesPerBonus < 0 {
		return fmt.Errorf("%w: linesPerBonus must not be negative, got %d", ErrInvalidConfig, c.LinesPerBonus)
	}
	return nil
}

// LoadConfig reads a YAML file on top of DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read engine config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse engine config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("engine config %s: %w", path, err)
	}

	return cfg, nil
}
