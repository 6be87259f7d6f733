// Command trilobyte is a one-time-pad style file cipher.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/trilobyte/internal/commands"
	"github.com/idelchi/trilobyte/internal/config"
)

// version is set at build time.
var version = "unknown"

func main() {
	// A missing .env file is fine; variables already set are not overridden.
	_ = godotenv.Load()

	var cfg config.Config

	root := commands.NewRootCommand(&cfg, afero.NewOsFs(), version)

	switch err := root.Execute(); {
	case errors.Is(err, cobraext.ErrExitGracefully):
	case err != nil:
		fmt.Fprintln(os.Stderr, err.Error())

		os.Exit(1)
	}
}
