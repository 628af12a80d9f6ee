package generator

import (
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"dungeondigger/pkg/game/feature"
)

// ErrInvalidConfig is returned by Config.Validate
var ErrInvalidConfig = errors.New("invalid generator config")

// Minimum grid size: a 3x3 room plus border plus the outer wall ring
const minGridSize = 7

// Largest accepted grid side. Grids are filled cell by cell, so this bounds
// the work of a single run.
const maxGridSize = 1000

// Config controls a generator run
type Config struct {
	Width  int
	Height int

	// Seed for the random source; 0 picks a time-based seed
	Seed int64

	Room     feature.RoomOptions
	Corridor feature.CorridorOptions

	// DugPercentage is the fraction of the playable area to carve before stopping
	DugPercentage float64
	// FeatureAttempts is how many candidates are tried against one wall
	FeatureAttempts int
	// MaxAttempts bounds the number of walls tried over the whole run
	MaxAttempts int
	// TimeLimit stops the run early; 0 disables it
	TimeLimit time.Duration

	RoomWeight     int
	CorridorWeight int

	// Logger receives progress; defaults to the logrus standard logger
	Logger log.FieldLogger
	// OnFeature is called after every committed feature
	OnFeature func(Event)
}

// DefaultConfig returns the settings used by the CLI and server
func DefaultConfig() Config {
	return Config{
		Width:           80,
		Height:          25,
		Room:            feature.RoomOptions{MinWidth: 3, MaxWidth: 10, MinHeight: 3, MaxHeight: 6},
		Corridor:        feature.CorridorOptions{MinLength: 3, MaxLength: 11},
		DugPercentage:   0.2,
		FeatureAttempts: 20,
		MaxAttempts:     1000,
		TimeLimit:       time.Second,
		RoomWeight:      4,
		CorridorWeight:  4,
	}
}

// Validate checks the config for values no generator can work with
func (c Config) Validate() error {
	if c.Width < minGridSize || c.Height < minGridSize {
		return fmt.Errorf("%w: grid %dx%d is smaller than %dx%d", ErrInvalidConfig, c.Width, c.Height, minGridSize, minGridSize)
	}
	if c.Width > maxGridSize || c.Height > maxGridSize {
		return fmt.Errorf("%w: grid %dx%d is larger than %dx%d", ErrInvalidConfig, c.Width, c.Height, maxGridSize, maxGridSize)
	}
	if err := c.Room.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Corridor.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.DugPercentage <= 0 || c.DugPercentage > 1 {
		return fmt.Errorf("%w: dug percentage %.2f not in (0, 1]", ErrInvalidConfig, c.DugPercentage)
	}
	if c.FeatureAttempts < 1 || c.MaxAttempts < 1 {
		return fmt.Errorf("%w: attempts must be positive", ErrInvalidConfig)
	}
	if c.RoomWeight < 0 || c.CorridorWeight < 0 || c.RoomWeight+c.CorridorWeight == 0 {
		return fmt.Errorf("%w: feature weights must be non-negative and not both zero", ErrInvalidConfig)
	}
	if c.TimeLimit < 0 {
		return fmt.Errorf("%w: negative time limit", ErrInvalidConfig)
	}
	return nil
}

func (c Config) logger() log.FieldLogger {
	if c.Logger == nil {
		return log.StandardLogger()
	}
	return c.Logger
}

func (c Config) emit(e Event) {
	if c.OnFeature != nil {
		c.OnFeature(e)
	}
}
