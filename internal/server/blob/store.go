// Package blob abstracts the object storage backend (S3-compatible) behind
// a small interface consumed by the ingestion pipeline and the feed.
package blob

import "context"

// Store is the byte-level contract with object storage. Get returns
// common.ErrorNotFound for a missing key; other failures are upstream errors.
type Store interface {
	Get(ctx context.Context, bucket, key string) ([]byte, error)
	Put(ctx context.Context, bucket, key string, data []byte) error
	PresignGet(ctx context.Context, bucket, key string) (string, error)
	PresignPut(ctx context.Context, bucket, key string) (string, error)
}
