// Package exchange performs the authorization-code-for-token HTTP
// exchange against an endpoint's token URL.
package exchange
