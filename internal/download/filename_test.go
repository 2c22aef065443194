package download

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveFilename(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		mediaType string
		want      string
	}{
		{"last segment", "https://example.com/images/photo.png", "image/png", "photo.png"},
		{"query ignored", "https://example.com/photo.png?size=large", "image/png", "photo.png"},
		{"fragment ignored", "https://example.com/photo.png#top", "image/png", "photo.png"},
		{"no path", "https://example.com", "image/jpeg", "downloaded_image.jpeg"},
		{"root path", "https://example.com/", "image/gif", "downloaded_image.gif"},
		{"trailing slash", "https://example.com/gallery/", "image/webp", "downloaded_image.webp"},
		{"structured subtype", "https://example.com/", "image/svg+xml", "downloaded_image.svg+xml"},
		{"no extension kept as is", "https://example.com/avatar", "image/png", "avatar"},
		{"escaped name stays escaped", "https://example.com/my%20photo.png", "image/png", "my%20photo.png"},
		{"encoded slash not a separator", "https://example.com/a%2Fb.png", "image/png", "a%2Fb.png"},
		{"unparsable url falls back", "http://[::1", "image/png", "downloaded_image.png"},
		{"non-ascii kept verbatim", "https://example.com/café.png", "image/png", "café.png"},
		{"space kept verbatim", "https://example.com/a b.png", "image/png", "a b.png"},
		{"query without path", "https://example.com?next=/x.png", "image/png", "downloaded_image.png"},
		{"fragment without path", "https://example.com#/x.png", "image/png", "downloaded_image.png"},
		{"port and userinfo", "https://user:pw@example.com:8443/img/cat.gif", "image/gif", "cat.gif"},
		{"no scheme", "example.com/pics/dog.jpg", "image/jpeg", "dog.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deriveFilename(tt.url, tt.mediaType))
		})
	}
}
