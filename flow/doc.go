// Package flow orchestrates the authorization code grant: registry
// lookup, cached bearer reuse, interactive authorization, code
// exchange and staged credential persistence.
package flow
