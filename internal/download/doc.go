// Package download fetches images and drives batches of fetches.
//
// # Fetcher
//
// Fetcher handles one URL end to end:
//
//  1. Ensure the save directory exists
//  2. GET the URL with a fixed timeout
//  3. Skip anything whose Content-Type is not image/*
//  4. Derive a filename from the URL path (or the media subtype)
//  5. Skip if the name is already taken in the save directory
//  6. Write the body
//
// Fetch never returns an error. Every outcome is a model.Result.
//
// # Manager
//
// Manager runs a list of URLs through a Fetcher one at a time, in input
// order, and reports each result as ProgressEvents:
//
//	manager := download.NewManager(fetcher, func(event download.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	urls := download.ParseInputURLs("https://a/x.png, https://b/y.jpg")
//	summary, err := manager.Run(ctx, urls)
//
// No result stops the batch. Run returns early only when ctx is cancelled.
package download
