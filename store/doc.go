// Package store persists bearer tokens and client secrets keyed by
// user, host, port, path and scope. Writes are staged and become
// visible only once committed, so failed exchanges never leave
// credentials behind.
package store
