package model

import "fmt"

// Kind identifies which outcome a Result represents.
type Kind int

const (
	KindSaved Kind = iota
	KindNotImage
	KindDuplicate
	KindConnectionError
	KindUnexpectedError
)

// String returns a short, stable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindSaved:
		return "saved"
	case KindNotImage:
		return "not_image"
	case KindDuplicate:
		return "duplicate"
	case KindConnectionError:
		return "connection_error"
	case KindUnexpectedError:
		return "unexpected_error"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ImageInfo describes a decoded image header.
type ImageInfo struct {
	Format string
	Width  int
	Height int
}

// String formats the info as "640x480 png".
func (i ImageInfo) String() string {
	return fmt.Sprintf("%dx%d %s", i.Width, i.Height, i.Format)
}

// Result is the outcome of fetching a single URL.
//
// Which fields are set depends on Kind:
//   - KindSaved: Filename, Path, Size and optionally Image
//   - KindNotImage: ContentType
//   - KindDuplicate: Filename, Path
//   - KindConnectionError, KindUnexpectedError: Err
//
// URL is always set.
type Result struct {
	Kind        Kind
	URL         string
	Filename    string
	Path        string
	ContentType string
	Size        int64
	Image       *ImageInfo
	Err         error
}

// Saved builds a KindSaved result.
func Saved(url, filename, path string, size int64) Result {
	return Result{Kind: KindSaved, URL: url, Filename: filename, Path: path, Size: size}
}

// NotImage builds a KindNotImage result.
func NotImage(url, contentType string) Result {
	return Result{Kind: KindNotImage, URL: url, ContentType: contentType}
}

// Duplicate builds a KindDuplicate result.
func Duplicate(url, filename, path string) Result {
	return Result{Kind: KindDuplicate, URL: url, Filename: filename, Path: path}
}

// ConnectionError builds a KindConnectionError result.
func ConnectionError(url string, err error) Result {
	return Result{Kind: KindConnectionError, URL: url, Err: err}
}

// UnexpectedError builds a KindUnexpectedError result.
func UnexpectedError(url string, err error) Result {
	return Result{Kind: KindUnexpectedError, URL: url, Err: err}
}
