package interfaces

import "context"

// IKeyValueStore is the durable key/value backend holding JSON documents.
type IKeyValueStore interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
