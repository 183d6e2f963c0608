// Package metadata is the key/value table backing durable client state.
package metadata

import (
	"context"
)

// Repository reads and writes raw values in the metadata table.
//
// Lookups leave missing keys out of the result instead of failing.
// SetMany is not atomic on its own; run it on a transaction when the
// keys must change together. Delete is idempotent.
type Repository interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	GetMany(ctx context.Context, keys ...string) (map[string][]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetMany(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string][]byte, error)
}
