// Package ioutils provides file system and image utilities.
//
// This package contains functions for:
//   - Idempotent directory creation
//   - Existence checks
//   - Exclusive (never overwriting) file writes
//   - Reading image headers for format and dimensions
//
// # File Operations
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("Fetched_Images")
//
//	// Write data only if nothing is at path yet
//	err := ioutils.WriteNewFile("Fetched_Images/photo.png", data)
//	if errors.Is(err, ioutils.ErrFileExists) {
//	    // someone got there first
//	}
//
// # Image Inspection
//
//	svc := ioutils.NewImageService()
//	info, err := svc.Inspect(data) // {Format: "png", Width: 640, Height: 480}
package ioutils
