// Package transport exposes the authorization flow as a named HTTP
// authentication scheme and an http.RoundTripper applying the highest
// quality applicable scheme to outgoing requests.
package transport
