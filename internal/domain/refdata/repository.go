package refdata

import "context"

type Repo interface {
	EnsureSchema(ctx context.Context) error
	// UpsertBatch inserts or refreshes every record in one transaction,
	// keyed by (product_type, exchange, symbol).
	UpsertBatch(ctx context.Context, recs []Record) (added, updated int, err error)
	LoadAll(ctx context.Context) ([]StoredRecord, error)
}
