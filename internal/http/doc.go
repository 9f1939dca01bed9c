// Package http provides an HTTP client for the Groupie Tracker backend.
//
// The client handles:
//   - Base URL and query string assembly
//   - User-Agent, Accept and X-Request-ID headers
//   - Request timeouts
//   - Non-2xx statuses as *HTTPError
//   - Normalizing collection bodies into slices of items
//
// # Basic Usage
//
//	client := http.NewClient(http.Options{
//	    BaseURL: "http://localhost:8080",
//	    Logger:  log,
//	})
//
//	// Fetch raw bytes
//	data, err := client.Get(ctx, "/api/events", nil)
//
//	// Fetch and decode a collection in one step
//	events, err := http.FetchList[model.Event](ctx, client, "/api/events", nil)
//
// # Not Found
//
// A 404 on a single-entity endpoint is a distinct outcome:
//
//	if http.IsNotFound(err) {
//	    // navigate to the not-found page
//	}
//
// # Collection Shapes
//
// FetchArray accepts a bare array, an {"index": [...]} wrapper and a single
// relation object. Anything else becomes an empty collection, logged at
// WARN, unless Options.StrictShapes is set.
package http
