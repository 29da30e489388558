package config

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	errEmptyInput    = errors.New("empty config data")
	errInputTooLarge = errors.New("config data exceeds maximum size")
)

// decodeStrict unmarshals YAML into cfg, rejecting unknown fields.
func decodeStrict(data []byte, cfg *Config) error {
	if len(data) == 0 {
		return errEmptyInput
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", errInputTooLarge, len(data), MaxInputSize)
	}
	return yaml.UnmarshalWithOptions(data, cfg, yaml.Strict())
}

// Encode renders cfg as YAML, used to print the effective configuration.
func Encode(cfg *Config) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return out, nil
}
