// Package catalog provides an HTTP client for the Your Energy catalog API.
//
// # Overview
//
// The catalog serves filter categories, exercises, exercise ratings, newsletter
// subscriptions and a quote of the day. Client wraps these endpoints with
// context-aware methods and typed payloads; API is the interface the UI and
// CLI depend on so tests can substitute a fake.
//
// # Architecture
//
//   - client.go: Client, API, request handling and APIError
//   - types.go: payload types mirroring the catalog's JSON
//
// # Client Usage
//
//	client, err := catalog.NewClient(catalog.DefaultBaseURL,
//		catalog.WithTimeout(10*time.Second),
//		catalog.WithLogger(log),
//	)
//	if err != nil {
//		return err
//	}
//
//	page, err := client.FetchCategories(ctx, catalog.FilterMuscles, 1, 12)
//
// # API Endpoints
//
//   - GET /filters?filter=&page=&limit=: category tiles of one filter
//   - GET /exercises?{muscles|bodypart|equipment}=&keyword=&page=&limit=
//   - GET /exercises/{id}: one exercise
//   - PATCH /exercises/{id}/rating: submit a rating
//   - POST /subscription: newsletter sign-up
//   - GET /quote: quote of the day
//
// Query parameters that are empty or non-positive are omitted.
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation and timeout control
//   - Set Accept: application/json (and Content-Type for bodies)
//   - Include User-Agent: yourenergy/0.1
//   - Are logged at debug level with method, path, status and duration
//
// # Error Handling
//
// A non-2xx response becomes an *APIError. Its message is the trimmed response
// body when present and "request failed: <status>" otherwise, so a catalog
// message such as "Subscription already exists" reaches the user verbatim.
// Transport and decode errors are wrapped with the method and path.
//
// FetchExercisesByID loads several exercises concurrently with a bounded
// errgroup. Failures are logged and leave a nil entry; they never fail the
// whole batch.
package catalog
