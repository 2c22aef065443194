package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/handiism/image-fetcher/internal/config"
	"github.com/handiism/image-fetcher/internal/download"
	"github.com/handiism/image-fetcher/internal/tui"
)

func main() {
	settings := loadSettings(os.Stderr)

	// stderr would corrupt the alternate screen.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fetcher := download.NewFetcherFromSettings(settings, logger)

	if err := tui.Run(settings, fetcher); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadSettings applies ./.env and the process environment on top of the
// defaults. Neither is required; problems are reported to w before the
// alternate screen opens and the affected values keep their defaults.
func loadSettings(w io.Writer) *config.Settings {
	settings := config.DefaultSettings()
	if err := settings.ApplyEnvFile(".env"); err != nil {
		fmt.Fprintf(w, "Warning: ignoring .env: %v\n", err)
	}
	if err := settings.ApplyEnv(os.LookupEnv); err != nil {
		fmt.Fprintf(w, "Warning: ignoring environment override: %v\n", err)
	}
	return settings
}
