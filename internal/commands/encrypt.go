package commands

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/idelchi/trilobyte/internal/config"
	"github.com/idelchi/trilobyte/internal/otp"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config, fsys afero.Fs) *cobra.Command {
	return &cobra.Command{
		Use:     "encrypt [flags] files...",
		Aliases: []string{"enc"},
		Short:   "Encrypt files with freshly generated keys",
		Long: `Encrypt every file with a new key of the same length.
The key is written to {dir}/{stem}.cef and the ciphertext to {dir}/{stem}.{ext}.csd.`,
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg),
		RunE:    func(cmd *cobra.Command, args []string) error {
			return execute(cmd, cfg, fsys, otp.Batch{Encrypt: args})
		},
	}
}

// NewSealCommand creates a new cobra command for encrypting with supplied keys.
func NewSealCommand(cfg *config.Config, fsys afero.Fs) *cobra.Command {
	return &cobra.Command{
		Use:     "seal [flags] file key.cef [file key.cef...]",
		Aliases: []string{"static"},
		Short:   "Encrypt files with existing key files",
		Long: `Encrypt every file with the paired .cef key, writing {dir}/{stem}.{ext}.csd.
The key must be at least as long as the file. File and key may be given in either order.`,
		Args:    evenArgs,
		PreRunE: preRun(cfg),
		RunE:    func(cmd *cobra.Command, args []string) error {
			var batch otp.Batch

			for _, pair := range pairs(args) {
				req, err := otp.PairSeal(pair[0], pair[1])
				if err != nil {
					batch.Reject(pair[0], err)

					continue
				}

				batch.Seal = append(batch.Seal, req)
			}

			return execute(cmd, cfg, fsys, batch)
		},
	}
}
