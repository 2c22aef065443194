package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/handiism/image-fetcher/internal/config"
	"github.com/handiism/image-fetcher/internal/http"
	ioutils "github.com/handiism/image-fetcher/internal/io"
	"github.com/handiism/image-fetcher/internal/model"
)

// Getter performs a GET and returns the fully read response.
// *http.Client satisfies it.
type Getter interface {
	Get(ctx context.Context, url string) (*http.Response, error)
}

// Fetcher downloads single images into a save directory.
type Fetcher struct {
	client       Getter
	saveDir      string
	inspect      bool
	imageService *ioutils.ImageService
	logger       *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithLogger sets the logger for diagnostics. The default discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithInspection toggles decoding image headers after a save.
func WithInspection(enabled bool) Option {
	return func(f *Fetcher) {
		f.inspect = enabled
	}
}

// NewFetcher creates a Fetcher that writes into saveDir using client.
func NewFetcher(client Getter, saveDir string, opts ...Option) *Fetcher {
	f := &Fetcher{
		client:       client,
		saveDir:      saveDir,
		imageService: ioutils.NewImageService(),
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewFetcherFromSettings wires a Fetcher with an HTTP client built from settings.
func NewFetcherFromSettings(settings *config.Settings, logger *slog.Logger) *Fetcher {
	client := http.NewClient(settings.Timeout(), settings.UserAgent)
	return NewFetcher(client, settings.SaveDir,
		WithInspection(settings.InspectImages),
		WithLogger(logger),
	)
}

// Fetch downloads url and stores it in the save directory.
func (f *Fetcher) Fetch(ctx context.Context, url string) model.Result {
	log := f.logger.With("url", url)

	if err := ioutils.EnsureDir(f.saveDir); err != nil {
		log.Error("create save directory", "dir", f.saveDir, "error", err)
		return model.UnexpectedError(url, fmt.Errorf("create save directory: %w", err))
	}

	resp, err := f.client.Get(ctx, url)
	if err != nil {
		log.Debug("request failed", "error", err)
		return classify(url, err)
	}

	mediaType := resp.MediaType()
	if !strings.HasPrefix(mediaType, "image/") {
		log.Debug("not an image", "content_type", resp.ContentType())
		return model.NotImage(url, resp.ContentType())
	}

	filename := deriveFilename(url, mediaType)
	path := filepath.Join(f.saveDir, filename)

	taken, err := ioutils.Exists(path)
	if err != nil {
		return model.UnexpectedError(url, fmt.Errorf("check %s: %w", path, err))
	}
	if taken {
		log.Debug("name already taken", "path", path)
		return model.Duplicate(url, filename, path)
	}

	if err := ioutils.WriteNewFile(path, resp.Body); err != nil {
		if errors.Is(err, ioutils.ErrFileExists) {
			return model.Duplicate(url, filename, path)
		}
		log.Error("write image", "path", path, "error", err)
		return model.UnexpectedError(url, fmt.Errorf("write %s: %w", path, err))
	}

	res := model.Saved(url, filename, path, int64(len(resp.Body)))
	if f.inspect {
		if info, err := f.imageService.Inspect(resp.Body); err == nil {
			res.Image = &info
		} else {
			log.Debug("inspect image", "path", path, "error", err)
		}
	}

	log.Info("saved", "path", path, "bytes", res.Size)
	return res
}

func classify(url string, err error) model.Result {
	if http.IsConnectionError(err) {
		return model.ConnectionError(url, err)
	}
	return model.UnexpectedError(url, err)
}
