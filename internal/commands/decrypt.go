package commands

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/idelchi/trilobyte/internal/config"
	"github.com/idelchi/trilobyte/internal/otp"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(cfg *config.Config, fsys afero.Fs) *cobra.Command {
	return &cobra.Command{
		Use:     "decrypt [flags] file.csd key.cef [file.csd key.cef...]",
		Aliases: []string{"dec"},
		Short:   "Decrypt files and remove the ciphertext and key",
		Long: `Decrypt every .csd/.cef pair into {dir}/{stem}, then remove both inputs.
The two files of a pair may be given in either order.`,
		Args:    evenArgs,
		PreRunE: preRun(cfg),
		RunE:    func(cmd *cobra.Command, args []string) error {
			var batch otp.Batch

			for _, pair := range pairs(args) {
				req, err := otp.PairDecrypt(pair[0], pair[1])
				if err != nil {
					batch.Reject(pair[0], err)

					continue
				}

				batch.Decrypt = append(batch.Decrypt, req)
			}

			return execute(cmd, cfg, fsys, batch)
		},
	}
}
