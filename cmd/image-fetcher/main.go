package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/handiism/image-fetcher/internal/config"
	"github.com/handiism/image-fetcher/internal/download"
	"github.com/handiism/image-fetcher/internal/tui"
)

const defaultEnvFile = ".env"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nInterrupted, cancelling...")
		cancel()
	}()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("image-fetcher", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		urlsFlag    = fs.String("url", "", "Comma-separated image URLs (skips the prompt)")
		outputFlag  = fs.String("output", "", "Save directory (overrides config)")
		configFlag  = fs.String("config", "", "Path to JSON config file")
		envFlag     = fs.String("env", "", "Path to dotenv file (default: ./.env if present)")
		saveCfgFlag = fs.String("save-config", "", "Write the effective settings to this JSON file")
		timeoutFlag = fs.Duration("timeout", 0, "Per-request timeout (overrides config)")
		inspectFlag = fs.Bool("inspect", true, "Report format and dimensions of saved images")
		verboseFlag = fs.Bool("verbose", false, "Show verbose output")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if *verboseFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	settings, err := loadSettings(*configFlag, *envFlag, logger)
	if err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "output":
			settings.SaveDir = *outputFlag
		case "timeout":
			settings.TimeoutSeconds = timeoutFlag.Seconds()
		case "inspect":
			settings.InspectImages = *inspectFlag
		}
	})
	if settings.Timeout() <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", settings.Timeout())
	}

	if *saveCfgFlag != "" {
		if err := settings.Save(*saveCfgFlag); err != nil {
			logger.Warn("save settings", "path", *saveCfgFlag, "error", err)
		}
	}

	fmt.Fprintln(stdout, tui.RenderTitle(tui.WelcomeTitle))
	fmt.Fprintln(stdout, tui.RenderDim(tui.WelcomeSubtitle))
	fmt.Fprintln(stdout)

	input := *urlsFlag
	if input == "" {
		fmt.Fprintln(stdout, "Please enter image URLs separated by commas:")
		input, err = readLine(stdin)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
	}

	fetcher := download.NewFetcherFromSettings(settings, logger)
	manager := download.NewManager(fetcher, func(event download.ProgressEvent) {
		if event.Level == download.LevelVerbose && !*verboseFlag {
			return
		}
		fmt.Fprintln(stdout, tui.RenderEvent(event))
	})

	logger.Debug("starting batch", "save_dir", settings.SaveDir, "timeout", settings.Timeout().String())
	start := time.Now()
	summary, err := manager.Run(ctx, download.ParseInputURLs(input))

	fmt.Fprintln(stdout)
	logger.Debug("batch finished", "elapsed", time.Since(start).String(), "bytes", summary.Bytes)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, tui.ClosingMessage)
	return nil
}

// loadSettings layers defaults, the JSON file, the dotenv file and the
// process environment, in increasing precedence.
//
// Files named on the command line must load. The implicit ./.env and the
// process environment are best effort: problems are logged and the
// affected values keep their previous setting.
func loadSettings(configPath, envPath string, logger *slog.Logger) (*config.Settings, error) {
	settings := config.DefaultSettings()
	if configPath != "" {
		var err error
		settings, err = config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	if envPath != "" {
		if err := settings.ApplyEnvFile(envPath); err != nil {
			return nil, err
		}
	} else if err := settings.ApplyEnvFile(defaultEnvFile); err != nil {
		logger.Warn("ignoring dotenv file", "path", defaultEnvFile, "error", err)
	}

	if err := settings.ApplyEnv(os.LookupEnv); err != nil {
		logger.Warn("ignoring environment override", "error", err)
	}
	return settings, nil
}

// readLine returns the first line of r without its line terminator.
// Input without a trailing newline is accepted.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
