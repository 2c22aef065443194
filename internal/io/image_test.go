package ioutils

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func encodeTestImage(t *testing.T, w, h int, enc func(*bytes.Buffer, image.Image) error) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, enc(&buf, img))
	return buf.Bytes()
}

func TestImageService_Inspect(t *testing.T) {
	svc := NewImageService()

	tests := []struct {
		name       string
		data       []byte
		wantFormat string
		wantW      int
		wantH      int
	}{
		{
			name: "png",
			data: encodeTestImage(t, 64, 32, func(b *bytes.Buffer, i image.Image) error {
				return png.Encode(b, i)
			}),
			wantFormat: "png",
			wantW:      64,
			wantH:      32,
		},
		{
			name: "bmp",
			data: encodeTestImage(t, 3, 5, func(b *bytes.Buffer, i image.Image) error {
				return bmp.Encode(b, i)
			}),
			wantFormat: "bmp",
			wantW:      3,
			wantH:      5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := svc.Inspect(tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFormat, info.Format)
			assert.Equal(t, tt.wantW, info.Width)
			assert.Equal(t, tt.wantH, info.Height)
		})
	}
}

func TestImageService_Inspect_Unknown(t *testing.T) {
	_, err := NewImageService().Inspect([]byte("<svg xmlns=\"http://www.w3.org/2000/svg\"/>"))
	assert.Error(t, err)
}
