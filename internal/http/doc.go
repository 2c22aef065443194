// Package http provides the HTTP client used to fetch images.
//
// The Client in this package handles:
//   - A fixed per-request timeout
//   - An optional User-Agent header
//   - Reading the whole response into a fixed-shape Response
//   - Classifying failures as connection errors
//
// # Basic Usage
//
//	client := http.NewClient(10*time.Second, "")
//
//	resp, err := client.Get(ctx, "https://example.com/photo.png")
//	if http.IsConnectionError(err) {
//	    // DNS, refused, timeout, non-2xx status, ...
//	}
//	fmt.Println(resp.ContentType(), len(resp.Body))
//
// # Errors
//
// Every error returned by Get is a *RequestError. When the server answered
// with a non-2xx status, the wrapped error is a *StatusError:
//
//	var se *http.StatusError
//	if errors.As(err, &se) {
//	    fmt.Println(se.Code)
//	}
package http
