// Package logic runs trilobyte batches for the command line.
package logic

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/idelchi/trilobyte/internal/config"
	"github.com/idelchi/trilobyte/internal/otp"
)

// ErrFailed is returned when at least one request of a batch failed.
var ErrFailed = errors.New("requests failed")

// Output is where results and statistics are printed.
type Output struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run is the main logic of the application.
func Run(cfg *config.Config, fsys afero.Fs, logger logrus.FieldLogger, batch otp.Batch, out Output) error {
	start := time.Now()

	if cfg.Dry {
		dryRun(cfg, batch, out)

		return nil
	}

	engine, err := otp.NewEngine(cfg, fsys, logger)
	if err != nil {
		return fmt.Errorf("creating engine: %w", err)
	}

	report := engine.Run(batch)

	for _, res := range report.Results {
		switch {
		case res.Error == nil && !cfg.Quiet:
			fmt.Fprintf(out.Stdout, "Processed %q -> %s\n", res.Input, quoteAll(res.Outputs))
		case res.Error != nil && len(res.Outputs) > 0:
			fmt.Fprintf(out.Stderr, "Partially processed %q -> %s\n", res.Input, quoteAll(res.Outputs))
		}
	}

	if cfg.Stats {
		printStats(out.Stderr, report, time.Since(start))
	}

	if report.Errored() > 0 {
		return fmt.Errorf("%w: %d of %d", ErrFailed, report.Errored(), len(report.Results))
	}

	return nil
}

// dryRun previews the outputs of a batch without touching any file.
func dryRun(cfg *config.Config, batch otp.Batch, out Output) {
	for _, path := range batch.Encrypt {
		split := otp.Split(path)

		cipherPath, err := split.CipherPath()
		if err != nil {
			fmt.Fprintf(out.Stderr, "Would fail %q: %v\n", path, err)

			continue
		}

		fmt.Fprintf(out.Stdout, "Would process %q -> %s\n", path, quoteAll([]string{split.KeyPath(), cipherPath}))
	}

	for _, req := range batch.Decrypt {
		fmt.Fprintf(out.Stdout, "Would process %q -> %q (removing %q and %q)\n",
			req.Data, otp.PlainPath(req.Data, cfg.RestoreExt), req.Data, req.Key)
	}

	for _, req := range batch.Generate {
		fmt.Fprintf(out.Stdout, "Would generate %d bytes -> %q\n", req.Size, otp.Split(req.Name).KeyPath())
	}

	for _, req := range batch.Seal {
		cipherPath, err := otp.Split(req.Data).CipherPath()
		if err != nil {
			fmt.Fprintf(out.Stderr, "Would fail %q: %v\n", req.Data, err)

			continue
		}

		fmt.Fprintf(out.Stdout, "Would process %q -> %q\n", req.Data, cipherPath)
	}

	for _, res := range batch.Rejected {
		fmt.Fprintf(out.Stderr, "Would fail %q: %v\n", res.Input, res.Error)
	}
}

func quoteAll(paths []string) string {
	quoted := make([]string, len(paths))

	for i, p := range paths {
		quoted[i] = fmt.Sprintf("%q", p)
	}

	return strings.Join(quoted, ", ")
}

func printStats(w io.Writer, report otp.Report, duration time.Duration) {
	fmt.Fprintf(w, "\nStats\n")
	fmt.Fprintf(w, "  Processed: %d\n", report.Processed())
	fmt.Fprintf(w, "  Errors:    %d\n", report.Errored())
	//nolint:gosec // size is always non-negative (sum of file sizes)
	fmt.Fprintf(w, "  Size:      %s\n", humanize.IBytes(uint64(max(0, report.Size()))))
	fmt.Fprintf(w, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
