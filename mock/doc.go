// Package mock provides an in-memory OAuth2 authorization server for
// testing the authorization code flow without a real identity provider.
package mock
