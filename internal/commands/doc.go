// Package commands provides the command-line interface for the trilobyte tool.
//
// It implements commands for:
//   - key generation
//   - encryption with fresh or supplied keys
//   - decryption
//   - running a batch manifest
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/trilobyte/internal/config"
	"github.com/idelchi/trilobyte/internal/logging"
	"github.com/idelchi/trilobyte/internal/logic"
	"github.com/idelchi/trilobyte/internal/otp"
)

// preRun returns a PreRunE handler that resolves flags and environment into cfg
// and validates the configuration.
func preRun(cfg *config.Config) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, _ []string) error {
		return cobraext.Validate(cfg, cfg)
	}
}

// execute hands a batch to the logic layer with a logger tagged for this run.
func execute(cmd *cobra.Command, cfg *config.Config, fsys afero.Fs, batch otp.Batch) error {
	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}

	out := logic.Output{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()}

	return logic.Run(cfg, fsys, logger.WithField("run", uuid.NewString()), batch, out)
}

// evenArgs requires a non-zero, even number of positional arguments.
func evenArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 || len(args)%2 != 0 {
		return fmt.Errorf("%s expects arguments in pairs, got %d", cmd.Name(), len(args))
	}

	return nil
}

// pairs splits args into consecutive pairs.
func pairs(args []string) [][2]string {
	out := make([][2]string, 0, len(args)/2)

	for i := 0; i+1 < len(args); i += 2 {
		out = append(out, [2]string{args[i], args[i+1]})
	}

	return out
}
