// Package middleware groups the Fiber middleware shared by every feature.
//
//   - auth: checks the X-API-Key header against server.api_key. An empty key
//     leaves the API open; public asset reads are skipped by the caller.
//   - rayid: tags each request with an X-Ray-ID, reusing the incoming header when present.
//
// Both are registered globally in cmd/start.go, rayid first.
package middleware
