package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindSaved, "saved"},
		{KindNotImage, "not_image"},
		{KindDuplicate, "duplicate"},
		{KindConnectionError, "connection_error"},
		{KindUnexpectedError, "unexpected_error"},
		{Kind(42), "kind(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestConstructors(t *testing.T) {
	saved := Saved("https://example.com/a.png", "a.png", "dir/a.png", 10)
	assert.Equal(t, KindSaved, saved.Kind)
	assert.Equal(t, "a.png", saved.Filename)
	assert.Equal(t, "dir/a.png", saved.Path)
	assert.Equal(t, int64(10), saved.Size)

	skip := NotImage("https://example.com", "text/html")
	assert.Equal(t, KindNotImage, skip.Kind)
	assert.Equal(t, "text/html", skip.ContentType)

	dup := Duplicate("https://example.com/a.png", "a.png", "dir/a.png")
	assert.Equal(t, KindDuplicate, dup.Kind)

	boom := errors.New("boom")
	assert.ErrorIs(t, ConnectionError("u", boom).Err, boom)
	assert.ErrorIs(t, UnexpectedError("u", boom).Err, boom)
}

func TestImageInfo_String(t *testing.T) {
	info := ImageInfo{Format: "png", Width: 640, Height: 480}
	assert.Equal(t, "640x480 png", info.String())
}
