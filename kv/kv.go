package kv

import "errors"

// ErrClosed is returned by stores whose Close has been called.
var ErrClosed = errors.New("kv: store is closed")

// Store is the persistence boundary: a durable mapping from string keys to
// string values. Get reports absence with its second result rather than an
// error; Remove of an absent key is a no-op.
//
// Implementations serialize individual calls but offer no cross-call
// transactions. The poll data layer does full-collection read-modify-write
// on top of this, so a store must only ever have a single accessor.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
	Close() error
}
