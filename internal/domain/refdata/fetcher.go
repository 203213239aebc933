package refdata

import "context"

type Fetcher interface {
	Name() string
	FetchSpot(ctx context.Context) ([]Record, error)
	FetchPerp(ctx context.Context) ([]Record, error)
}
