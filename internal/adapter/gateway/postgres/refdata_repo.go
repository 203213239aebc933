package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/berezovskyivalerii/refdatasvc/internal/domain/refdata"
)

// RefDataRepo is the Postgres flavor of the reference-data store, for
// service deployments where a local file is not enough.
type RefDataRepo struct {
	db  *sql.DB
	log *slog.Logger
	now func() time.Time
}

func NewRefDataRepo(db *sql.DB, log *slog.Logger) *RefDataRepo {
	return &RefDataRepo{db: db, log: log, now: time.Now}
}

func (r *RefDataRepo) logger() *slog.Logger {
	if r.log != nil {
		return r.log
	}
	return slog.Default()
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS reference_data (
	id           BIGSERIAL PRIMARY KEY,
	product_type TEXT NOT NULL,
	exchange     TEXT NOT NULL,
	symbol       TEXT NOT NULL,
	tick_size    TEXT NOT NULL,
	lot_size     TEXT NOT NULL,
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE(product_type, exchange, symbol)
)`

func (r *RefDataRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func (r *RefDataRepo) UpsertBatch(ctx context.Context, recs []refdata.Record) (added, updated int, err error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return 0, 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	const existsSQL = `
		SELECT EXISTS(
			SELECT 1 FROM reference_data
			WHERE product_type = $1 AND exchange = $2 AND symbol = $3
		)`
	const upsertSQL = `
		INSERT INTO reference_data
			(product_type, exchange, symbol, tick_size, lot_size, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (product_type, exchange, symbol) DO UPDATE SET
			tick_size  = EXCLUDED.tick_size,
			lot_size   = EXCLUDED.lot_size,
			updated_at = EXCLUDED.updated_at`

	for _, rec := range recs {
		var exists bool
		if err = tx.QueryRowContext(ctx, existsSQL,
			rec.Product, rec.Exchange, rec.Symbol,
		).Scan(&exists); err != nil {
			return 0, 0, fmt.Errorf("check %s %s %s: %w", rec.Exchange, rec.Product, rec.Symbol, err)
		}
		if _, err = tx.ExecContext(ctx, upsertSQL,
			rec.Product, rec.Exchange, rec.Symbol,
			rec.TickSize, rec.LotSize, r.now().UTC(),
		); err != nil {
			return 0, 0, fmt.Errorf("upsert %s %s %s: %w", rec.Exchange, rec.Product, rec.Symbol, err)
		}
		if exists {
			updated++
		} else {
			added++
		}
		r.logger().Info("saved",
			"exchange", rec.Exchange, "product", rec.Product, "symbol", rec.Symbol)
	}
	return added, updated, nil
}

func (r *RefDataRepo) LoadAll(ctx context.Context) ([]refdata.StoredRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT product_type, exchange, symbol, tick_size, lot_size, updated_at
		FROM reference_data
		ORDER BY exchange, product_type, symbol`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []refdata.StoredRecord
	for rows.Next() {
		var sr refdata.StoredRecord
		if err := rows.Scan(&sr.Product, &sr.Exchange, &sr.Symbol,
			&sr.TickSize, &sr.LotSize, &sr.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, sr)
	}
	return out, rows.Err()
}
