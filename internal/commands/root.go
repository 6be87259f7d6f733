package commands

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/trilobyte/internal/config"
	"github.com/idelchi/trilobyte/internal/otp"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, fsys afero.Fs, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version)

	root.Use = "trilobyte [flags] command [flags]"
	root.Short = "One-time-pad file cipher"
	root.Long = `A one-time-pad style file cipher.
Generates key files (.cef), encrypts files with fresh or supplied keys into .csd files,
and decrypts .csd/.cef pairs, removing both once the plaintext is restored.

Keys come from a non-cryptographic generator unless --key-source=crypto is set,
and nothing stops a key from being reused. Do not rely on it for secrecy.

Flags may also be set through TRILOBYTE_ environment variables or a .env file.`

	defaults := config.Default()

	root.Flags().BoolP("show", "s", false, "Show the configuration and exit")
	root.Flags().IntP("parallel", "j", defaults.Parallel, "Number of requests processed at the same time")
	root.Flags().Int("chunk-size", defaults.ChunkSize, "Read buffer size in bytes")
	root.Flags().String("key-source", defaults.KeySource,
		fmt.Sprintf("Source of key material (%s, %s)", otp.SourceMath, otp.SourceCrypto))
	root.Flags().Bool("restore-ext", defaults.RestoreExt, "Keep the original extension on decrypted files")
	root.Flags().BoolP("quiet", "q", defaults.Quiet, "Suppress non-error output")
	root.Flags().Bool("stats", defaults.Stats, "Print statistics after the run")
	root.Flags().Bool("dry", defaults.Dry, "Show what would be done without touching any file")
	root.Flags().String("log-level", defaults.LogLevel, "Log level (debug, info, warn, error)")
	root.Flags().String("log-format", defaults.LogFormat, "Log format (auto, text, json)")

	root.AddCommand(
		NewGenerateCommand(cfg, fsys),
		NewEncryptCommand(cfg, fsys),
		NewSealCommand(cfg, fsys),
		NewDecryptCommand(cfg, fsys),
		NewBatchCommand(cfg, fsys),
	)

	return root
}
