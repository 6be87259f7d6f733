package commands

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/idelchi/trilobyte/internal/config"
	"github.com/idelchi/trilobyte/internal/otp"
)

// NewGenerateCommand creates a new cobra command for the generate subcommand.
func NewGenerateCommand(cfg *config.Config, fsys afero.Fs) *cobra.Command {
	return &cobra.Command{
		Use:     "generate [flags] size name [size name...]",
		Aliases: []string{"gen"},
		Short:   "Generate key files of a given size",
		Long: `Generate a key of the given size for every size/name pair and write it to {dir}/{stem}.cef.
Size and name may be given in either order.`,
		Args:    evenArgs,
		PreRunE: preRun(cfg),
		RunE:    func(cmd *cobra.Command, args []string) error {
			var batch otp.Batch

			for _, pair := range pairs(args) {
				req, err := otp.ParseGenerate(pair[0], pair[1])
				if err != nil {
					batch.Reject(pair[0]+" "+pair[1], err)

					continue
				}

				batch.Generate = append(batch.Generate, req)
			}

			return execute(cmd, cfg, fsys, batch)
		},
	}
}
