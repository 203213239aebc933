package refdatauc

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/berezovskyivalerii/refdatasvc/internal/domain/refdata"
)

type Summary struct {
	Fetched int `json:"fetched"`
	Added   int `json:"added"`
	Updated int `json:"updated"`
}

// Orchestrator runs the fetchers in slice order (spot, then perp, per
// fetcher), concatenates the results and persists them in one batch.
// The first failing fetch aborts the run before anything is written.
type Orchestrator struct {
	Repo     refdata.Repo
	Fetchers []refdata.Fetcher
	Timeout  time.Duration
	Logger   *slog.Logger
}

func (o *Orchestrator) log() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func (o *Orchestrator) Run(ctx context.Context) (Summary, error) {
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	l := o.log().With("run", uuid.NewString())
	l.Info("fetching reference data")

	var all []refdata.Record
	counts := make(map[string][2]int, len(o.Fetchers))
	for _, f := range o.Fetchers {
		spot, err := f.FetchSpot(cctx)
		if err != nil {
			return Summary{}, err
		}
		perp, err := f.FetchPerp(cctx)
		if err != nil {
			return Summary{}, err
		}
		counts[f.Name()] = [2]int{len(spot), len(perp)}
		all = append(all, spot...)
		all = append(all, perp...)
	}
	l.Info("fetched", "records", len(all))

	if err := o.Repo.EnsureSchema(cctx); err != nil {
		return Summary{}, err
	}
	added, updated, err := o.Repo.UpsertBatch(cctx, all)
	if err != nil {
		return Summary{}, fmt.Errorf("persist: %w", err)
	}

	sum := Summary{Fetched: len(all), Added: added, Updated: updated}
	l.Info("sync done\n" + FormatSummary(counts, sum))
	return sum, nil
}
