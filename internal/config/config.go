// Package config provides YAML-based snake configuration loading and
// validation.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// MaxFieldExtent bounds rows and cols so the bordered field always fits in
// screen coordinates.
const MaxFieldExtent = 1 << 16

// Steering modes accepted in the config file.
const (
	SteeringAdopt  = "adopt"
	SteeringStored = "stored"
)

// SnakeConfig contains all configuration for a snake game.
type SnakeConfig struct {
	Field    FieldConfig `yaml:"field"`
	Speed    uint32      `yaml:"speed"`     // Cells per second
	Steering string      `yaml:"steering"`  // "adopt" or "stored"
	TickRate int         `yaml:"tick_rate"` // Simulation ticks per second
}

// FieldConfig defines the playable grid.
type FieldConfig struct {
	Rows uint64 `yaml:"rows"`
	Cols uint64 `yaml:"cols"`
}

// FieldSize converts the field section into a validated core.FieldSize.
func (c SnakeConfig) FieldSize() (core.FieldSize, error) {
	fs, err := core.NewFieldSize(c.Field.Rows, c.Field.Cols)
	if err != nil {
		return core.FieldSize{}, fmt.Errorf("config: %w", err)
	}
	return fs, nil
}

// Validate checks that the config describes a playable game.
// All failures wrap core.ErrInvalidConfiguration.
func (c SnakeConfig) Validate() error {
	if _, err := c.FieldSize(); err != nil {
		return err
	}
	if c.Field.Rows > MaxFieldExtent || c.Field.Cols > MaxFieldExtent {
		return fmt.Errorf("config: %w: field %dx%d exceeds %d cells per side",
			core.ErrInvalidConfiguration, c.Field.Rows, c.Field.Cols, MaxFieldExtent)
	}
	if c.Speed == 0 {
		return fmt.Errorf("config: %w: speed must be positive", core.ErrInvalidConfiguration)
	}
	switch c.Steering {
	case "", SteeringAdopt, SteeringStored:
	default:
		return fmt.Errorf("config: %w: unknown steering mode %q", core.ErrInvalidConfiguration, c.Steering)
	}
	if c.TickRate < 0 {
		return fmt.Errorf("config: %w: tick_rate must not be negative", core.ErrInvalidConfiguration)
	}
	return nil
}
