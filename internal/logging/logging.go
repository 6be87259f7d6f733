// Package logging builds the logrus logger used across trilobyte.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// New returns a logger writing to w at the given level.
// Format "auto" picks text when w is a terminal and JSON otherwise.
func New(w io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)

	switch format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "auto", "":
		if isTerminal(w) {
			logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		} else {
			logger.SetFormatter(&logrus.JSONFormatter{})
		}
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	return logger, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}
