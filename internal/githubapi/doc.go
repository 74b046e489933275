// Package githubapi provides a minimal GitHub REST API client.
//
// The client issues single-attempt HTTPS requests with token authentication
// and a bounded timeout, normalizing HTTP and transport failures into typed
// errors so callers can render a diagnostic message without inspecting status
// codes or exception types.
package githubapi
