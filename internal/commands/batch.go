package commands

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/idelchi/trilobyte/internal/config"
	"github.com/idelchi/trilobyte/internal/manifest"
)

// NewBatchCommand creates a new cobra command that runs a manifest file.
func NewBatchCommand(cfg *config.Config, fsys afero.Fs) *cobra.Command {
	return &cobra.Command{
		Use:   "batch [flags] manifest.jsonc",
		Short: "Run every request listed in a manifest",
		Long: `Run the generate, encrypt, seal and decrypt requests listed in a JSON manifest.
Comments and trailing commas are allowed. Encryptions run first, then decryptions,
key generation and finally encryptions with supplied keys.`,
		Args:    cobra.ExactArgs(1),
		PreRunE: preRun(cfg),
		RunE:    func(cmd *cobra.Command, args []string) error {
			m, err := manifest.Load(fsys, args[0])
			if err != nil {
				return err
			}

			return execute(cmd, cfg, fsys, m.Batch())
		},
	}
}
