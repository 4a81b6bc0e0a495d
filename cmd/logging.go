package cmd

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
)

// SetupLogging routes slog through charmbracelet/log on stderr, keeping
// stdout for evaluation output. Unknown levels fall back to info.
func SetupLogging(levelStr string) {
	level, err := log.ParseLevel(levelStr)
	if err != nil {
		level = log.InfoLevel
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "reportdetails",
	})

	slog.SetDefault(slog.New(logger))
}
