package download

import (
	"context"
	"fmt"
	"strings"

	"github.com/handiism/image-fetcher/internal/model"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent is one status line produced while running a batch.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// ImageFetcher fetches a single URL. *Fetcher implements it.
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) model.Result
}

// Summary counts the outcomes of one batch.
type Summary struct {
	Attempted  int
	Saved      int
	NotImage   int
	Duplicate  int
	Connection int
	Unexpected int
	Bytes      int64
}

// Skipped is the number of expected, non-error skips.
func (s Summary) Skipped() int {
	return s.NotImage + s.Duplicate
}

// Failed is the number of results in either error tier.
func (s Summary) Failed() int {
	return s.Connection + s.Unexpected
}

// Add counts one result.
func (s *Summary) Add(res model.Result) {
	s.Attempted++
	switch res.Kind {
	case model.KindSaved:
		s.Saved++
		s.Bytes += res.Size
	case model.KindNotImage:
		s.NotImage++
	case model.KindDuplicate:
		s.Duplicate++
	case model.KindConnectionError:
		s.Connection++
	case model.KindUnexpectedError:
		s.Unexpected++
	}
}

// String renders a one-line summary.
func (s Summary) String() string {
	return fmt.Sprintf("Processed %d URL(s): %d saved, %d skipped, %d failed",
		s.Attempted, s.Saved, s.Skipped(), s.Failed())
}

// Manager drives a Fetcher over a list of URLs.
type Manager struct {
	fetcher    ImageFetcher
	onProgress func(ProgressEvent)
}

// NewManager creates a new Manager. onProgress may be nil.
func NewManager(fetcher ImageFetcher, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		fetcher:    fetcher,
		onProgress: onProgress,
	}
}

// ParseInputURLs splits a comma-separated line into URLs. Whitespace around
// each piece is trimmed and empty pieces are dropped. Order and duplicates
// are preserved.
func ParseInputURLs(input string) []string {
	var urls []string
	for _, piece := range strings.Split(input, ",") {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			urls = append(urls, piece)
		}
	}
	return urls
}

// Run fetches each URL in order and finishes with an info event holding the
// summary. Results never stop the batch; only a cancelled ctx does, in which
// case the partial summary and ctx.Err() are returned.
func (m *Manager) Run(ctx context.Context, urls []string) (Summary, error) {
	var summary Summary
	for _, url := range urls {
		if err := ctx.Err(); err != nil {
			m.progress(ProgressEvent{Message: summary.String(), Level: LevelInfo})
			return summary, err
		}
		summary.Add(m.FetchOne(ctx, url))
	}
	m.progress(ProgressEvent{Message: summary.String(), Level: LevelInfo})
	return summary, nil
}

// FetchOne fetches a single URL and reports its events.
func (m *Manager) FetchOne(ctx context.Context, url string) model.Result {
	m.progress(ProgressEvent{Message: fmt.Sprintf("Fetching %s", url), Level: LevelVerbose})
	res := m.fetcher.Fetch(ctx, url)
	for _, event := range Events(res) {
		m.progress(event)
	}
	return res
}

// Events renders a result as the status lines shown to the user.
func Events(res model.Result) []ProgressEvent {
	switch res.Kind {
	case model.KindSaved:
		fetched := fmt.Sprintf("Successfully fetched: %s", res.Filename)
		if res.Image != nil {
			fetched += fmt.Sprintf(" (%s)", res.Image)
		}
		return []ProgressEvent{
			{Message: fetched, Level: LevelSuccess},
			{Message: fmt.Sprintf("Image saved to %s", res.Path), Level: LevelSuccess},
		}
	case model.KindNotImage:
		return []ProgressEvent{{Message: fmt.Sprintf("Skipped (not an image): %s", res.URL), Level: LevelWarning}}
	case model.KindDuplicate:
		return []ProgressEvent{{Message: fmt.Sprintf("Skipped (already exists): %s", res.Filename), Level: LevelWarning}}
	case model.KindConnectionError:
		return []ProgressEvent{{Message: fmt.Sprintf("Connection error for %s: %v", res.URL, res.Err), Level: LevelError}}
	default:
		return []ProgressEvent{{Message: fmt.Sprintf("An error occurred for %s: %v", res.URL, res.Err), Level: LevelError}}
	}
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
