package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvSaveDir   = "IMAGE_FETCHER_SAVE_DIR"
	EnvTimeout   = "IMAGE_FETCHER_TIMEOUT"
	EnvUserAgent = "IMAGE_FETCHER_USER_AGENT"
	EnvInspect   = "IMAGE_FETCHER_INSPECT"
)

// Settings holds all configuration options.
type Settings struct {
	// SaveDir is where fetched images are written. Relative paths are
	// resolved against the working directory.
	SaveDir string `json:"save_dir"`

	// TimeoutSeconds bounds each HTTP request.
	TimeoutSeconds float64 `json:"timeout_seconds"`

	// UserAgent is sent with each request when non-empty.
	UserAgent string `json:"user_agent"`

	// InspectImages decodes the header of every saved image to report its
	// format and dimensions.
	InspectImages bool `json:"inspect_images"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		SaveDir:        "Fetched_Images",
		TimeoutSeconds: 10,
		UserAgent:      "",
		InspectImages:  true,
	}
}

// Timeout returns TimeoutSeconds as a duration.
func (s *Settings) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds * float64(time.Second))
}

// Load reads settings from a JSON file on top of the defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ApplyEnvFile applies variables from a dotenv file. A missing file is not
// an error. The process environment is not modified.
func (s *Settings) ApplyEnvFile(path string) error {
	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}

	return s.ApplyEnv(func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	})
}

// ApplyEnv applies overrides using lookup, typically os.LookupEnv.
// Empty values are ignored. Unparsable values are reported and leave the
// setting unchanged.
func (s *Settings) ApplyEnv(lookup func(string) (string, bool)) error {
	var errs []error

	if v, ok := lookup(EnvSaveDir); ok && v != "" {
		s.SaveDir = v
	}

	if v, ok := lookup(EnvTimeout); ok && v != "" {
		if d, err := parseTimeout(v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvTimeout, err))
		} else {
			s.TimeoutSeconds = d.Seconds()
		}
	}

	if v, ok := lookup(EnvUserAgent); ok && v != "" {
		s.UserAgent = v
	}

	if v, ok := lookup(EnvInspect); ok && v != "" {
		if b, err := strconv.ParseBool(v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvInspect, err))
		} else {
			s.InspectImages = b
		}
	}

	return errors.Join(errs...)
}

// parseTimeout accepts a Go duration ("1.5s", "500ms") or plain seconds ("10").
func parseTimeout(v string) (time.Duration, error) {
	if secs, err := strconv.ParseFloat(v, 64); err == nil {
		if secs <= 0 {
			return 0, fmt.Errorf("timeout must be positive, got %q", v)
		}
		return time.Duration(secs * float64(time.Second)), nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("timeout must be positive, got %q", v)
	}
	return d, nil
}
