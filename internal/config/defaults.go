package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Field: FieldConfig{
			Rows: 20,
			Cols: 40,
		},
		Speed:    12,
		Steering: SteeringAdopt,
		TickRate: 60,
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
