// Package config provides configuration management for image-fetcher.
//
// This package handles:
//   - Default configuration values
//   - Loading and saving settings from JSON files
//   - Overrides from a dotenv file and the process environment
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Saves to ./Fetched_Images
//	// 10 second request timeout
//	// Image inspection enabled
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	// A missing file yields the defaults
//
// # Environment
//
//	err := settings.ApplyEnvFile(".env")   // optional file, missing is fine
//	settings.ApplyEnv(os.LookupEnv)        // process environment wins
//
// Recognized variables: IMAGE_FETCHER_SAVE_DIR, IMAGE_FETCHER_TIMEOUT,
// IMAGE_FETCHER_USER_AGENT, IMAGE_FETCHER_INSPECT.
package config
