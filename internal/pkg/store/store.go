// Package store provides the durable key-value storage used by every
// repository: namespaced string keys holding JSON-encoded values. Backends
// return explicit errors; callers decide whether a failed write is fatal.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key is absent
var ErrNotFound = errors.New("store: key not found")

// Store is the narrow key-value contract shared by all backends
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Durable storage keys. Each holds a JSON-encoded value; the two session keys
// are single pointers, so only the last session written survives a restart.
const (
	KeyRiderAccounts  = "transitmate:riders:accounts"
	KeyRiderSession   = "transitmate:riders:session"
	KeyDriverAccounts = "transitmate:drivers:accounts"
	KeyDriverSession  = "transitmate:drivers:session"
	KeyReportsLog     = "transitmate:reports:log"
	KeyTicketsPrefix  = "transitmate:tickets:"
)
