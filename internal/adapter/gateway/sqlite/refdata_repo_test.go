package sqlite

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/berezovskyivalerii/refdatasvc/internal/domain/refdata"
)

func newRepo(t *testing.T) *RefDataRepo {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	r := NewRefDataRepo(db, nil)
	if err := r.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("schema: %v", err)
	}
	return r
}

func rec(tick string) refdata.Record {
	return refdata.Record{
		Product:  refdata.ProductSpot,
		Exchange: refdata.ExchangeBinance,
		Symbol:   "BTCUSDT",
		TickSize: tick,
		LotSize:  "0.00001",
	}
}

func TestUpsertBatch_Idempotent(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	t0 := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return t0 }

	added, updated, err := r.UpsertBatch(ctx, []refdata.Record{rec("0.01")})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if added != 1 || updated != 0 {
		t.Fatalf("first upsert counts: added=%d updated=%d", added, updated)
	}

	r.now = func() time.Time { return t0.Add(time.Minute) }
	added, updated, err = r.UpsertBatch(ctx, []refdata.Record{rec("0.05")})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if added != 0 || updated != 1 {
		t.Fatalf("second upsert counts: added=%d updated=%d", added, updated)
	}

	rows, err := r.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("want exactly one row, got %d", len(rows))
	}
	got := rows[0]
	if got.TickSize != "0.05" {
		t.Fatalf("tick not updated in place: %+v", got)
	}
	if !got.UpdatedAt.After(t0) {
		t.Fatalf("updated_at did not advance: %v", got.UpdatedAt)
	}
}

func TestUpsertBatch_DistinctKeys(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	recs := []refdata.Record{
		{Product: refdata.ProductSpot, Exchange: refdata.ExchangeBinance, Symbol: "BTCUSDT", TickSize: "0.01", LotSize: "1"},
		{Product: refdata.ProductPerp, Exchange: refdata.ExchangeBinance, Symbol: "BTCUSDT", TickSize: "0.1", LotSize: "1"},
		{Product: refdata.ProductSpot, Exchange: refdata.ExchangeOKX, Symbol: "BTC-USDT", TickSize: "0.1", LotSize: "1"},
	}
	added, updated, err := r.UpsertBatch(ctx, recs)
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if added != 3 || updated != 0 {
		t.Fatalf("counts: added=%d updated=%d", added, updated)
	}

	rows, err := r.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("want 3 rows, got %d", len(rows))
	}
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	r := newRepo(t)
	if err := r.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("second ensure: %v", err)
	}
}
