// Package config holds the runtime configuration of trilobyte.
package config

import (
	"errors"
	"fmt"

	"github.com/idelchi/gogen/pkg/validator"
)

// ErrUsage indicates an error in command-line usage or configuration.
var ErrUsage = errors.New("usage error")

// Config is populated from flags, TRILOBYTE_ environment variables and .env files.
type Config struct {
	// Show the configuration and exit
	Show bool

	// Number of requests of one batch processed at the same time
	Parallel int `validate:"min=1"`

	// Read buffer size in bytes
	ChunkSize int `mapstructure:"chunk-size" validate:"min=1"`

	// Where key material comes from
	KeySource string `mapstructure:"key-source" validate:"oneof=math crypto"`

	// Keep the original extension on decrypted files
	RestoreExt bool `mapstructure:"restore-ext"`

	// Suppress non-error output
	Quiet bool

	// Print statistics after the run
	Stats bool

	// Show what would be done without touching any file
	Dry bool `validate:"exclusive=Show"`

	LogLevel  string `mapstructure:"log-level"  validate:"oneof=debug info warn error"`
	LogFormat string `mapstructure:"log-format" validate:"oneof=auto text json"`
}

// Default returns a configuration with every field at its default value.
func Default() Config {
	return Config{
		Parallel:  1,
		ChunkSize: 1024,
		KeySource: "math",
		LogLevel:  "info",
		LogFormat: "auto",
	}
}

// Display returns the value of the Show field.
func (c Config) Display() bool {
	return c.Show
}

// Validate validates config against its struct tags.
// It returns a wrapped ErrUsage if any rule is violated.
func (c Config) Validate(config any) error {
	validator := validator.NewValidator()

	if err := registerExclusive(validator); err != nil {
		return fmt.Errorf("registering exclusive: %w", err)
	}

	errs := validator.Validate(config)

	switch {
	case errs == nil:
		return nil
	case len(errs) == 1:
		return fmt.Errorf("%w: %w", ErrUsage, errs[0])
	default:
		return fmt.Errorf("%ws:\n%w", ErrUsage, errors.Join(errs...))
	}
}
