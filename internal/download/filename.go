package download

import (
	"strings"
)

const fallbackBaseName = "downloaded_image"

// deriveFilename picks the on-disk name for rawURL.
//
// The name is the last segment of the URL path exactly as it was typed, so
// neither escapes nor non-ASCII characters are rewritten. When that is empty
// (no path, or a trailing slash) the name is downloaded_image.<subtype>, with
// subtype taken from mediaType ("image/jpeg" -> "jpeg").
func deriveFilename(rawURL, mediaType string) string {
	if name := lastPathSegment(rawURL); name != "" {
		return name
	}

	_, subtype, _ := strings.Cut(mediaType, "/")
	return fallbackBaseName + "." + subtype
}

// lastPathSegment returns the text after the final '/' of the path part of
// rawURL. Query and fragment are dropped first, then scheme and authority.
func lastPathSegment(rawURL string) string {
	p, _, _ := strings.Cut(rawURL, "#")
	p, _, _ = strings.Cut(p, "?")

	if _, rest, ok := strings.Cut(p, "://"); ok {
		i := strings.IndexByte(rest, '/')
		if i < 0 {
			return ""
		}
		p = rest[i:]
	}

	return p[strings.LastIndex(p, "/")+1:]
}
