package domain

import (
	"context"
	"time"
)

// CatalogClient defines the interface for fetching the product catalog snapshot
type CatalogClient interface {
	FetchProducts(ctx context.Context) ([]ProductRecord, error)
}

// IntentService defines the interface for the text-to-structured-data
// collaborator. It returns unstructured text that should, but is not
// guaranteed to, contain a JSON object describing the shopper intent.
type IntentService interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// SnapshotCache defines the interface for caching catalog snapshots
type SnapshotCache interface {
	Get(ctx context.Context, key string) ([]ProductRecord, error)
	Set(ctx context.Context, key string, products []ProductRecord, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
