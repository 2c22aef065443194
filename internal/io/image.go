package ioutils

import (
	"bytes"
	"image"
	_ "image/gif"  // GIF decoder registration
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration

	_ "golang.org/x/image/bmp"  // BMP decoder registration
	_ "golang.org/x/image/tiff" // TIFF decoder registration
	_ "golang.org/x/image/webp" // WebP decoder registration

	"github.com/handiism/image-fetcher/internal/model"
)

// ImageService reads image metadata from downloaded bytes.
//
// Only the header is decoded, so inspecting a large image is cheap. Formats
// without a registered decoder (SVG, AVIF, ICO, ...) return an error, which
// callers treat as "unknown" rather than as a failed download.
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// Inspect returns the format name and pixel dimensions of data.
//
// Example:
//
//	info, err := svc.Inspect(pngData)
//	// info.Format = "png", info.Width = 640, info.Height = 480
func (s *ImageService) Inspect(data []byte) (model.ImageInfo, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return model.ImageInfo{}, err
	}
	return model.ImageInfo{
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}
