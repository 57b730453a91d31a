// Package example demonstrates the authorization code flow end to end
// against the mock authorization server.
package example
