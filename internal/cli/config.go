package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/caarlos0/env/v11"
)

// Element types accepted by --type and the YAML "type" key.
const (
	TypeInt   = "int"
	TypeFloat = "float"
)

// ValidTypes lists the supported element types.
var ValidTypes = []string{TypeInt, TypeFloat}

// ErrUnknownType is returned for an element type outside ValidTypes.
var ErrUnknownType = errors.New("unknown element type")

// Config holds environment-driven defaults. Flags override them.
type Config struct {
	LogLevel    string `env:"MATRIXFMT_LOG_LEVEL" envDefault:"info"` // zap level name
	ElementType string `env:"MATRIXFMT_TYPE" envDefault:"int"`       // default element type
}

// LoadConfig parses Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if err := checkType(cfg.ElementType); err != nil {
		return Config{}, fmt.Errorf("MATRIXFMT_TYPE: %w", err)
	}
	return cfg, nil
}

// checkType validates an element type name.
func checkType(t string) error {
	if !slices.Contains(ValidTypes, t) {
		return fmt.Errorf("%w %q: must be one of %v", ErrUnknownType, t, ValidTypes)
	}
	return nil
}
