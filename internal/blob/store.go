package blob

import (
	"context"
	"time"
)

// Store is the blob boundary the pipeline depends on: source files go in at
// ingestion, receivers get a time-limited URL at delivery, rejected tasks may
// have their file removed.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}
