// Package endpoint holds per URL OAuth endpoint configuration and the
// registry matching outgoing request URLs against it.
package endpoint
