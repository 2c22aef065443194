// Package model defines the data structures shared by the fetcher, the
// orchestrator and the front ends.
//
// # Result
//
// Result is the outcome of fetching one URL. Exactly one Kind applies:
//
//	res := model.Saved(url, "photo.png", "Fetched_Images/photo.png", 2048)
//	if res.Kind == model.KindSaved {
//	    fmt.Println(res.Path)
//	}
//
// Skips (KindNotImage, KindDuplicate) are expected outcomes, not errors.
// KindConnectionError and KindUnexpectedError carry the underlying error in Err.
//
// Results are never persisted; they exist only so the caller can decide how
// to render them.
package model
