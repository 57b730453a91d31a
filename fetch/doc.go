// Package fetch implements the authly-fetch command, a small client
// that fetches one protected resource through the authorization flow.
package fetch
