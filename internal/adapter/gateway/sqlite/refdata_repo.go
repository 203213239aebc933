package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/berezovskyivalerii/refdatasvc/internal/domain/refdata"
)

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
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	product_type TEXT NOT NULL,
	exchange     TEXT NOT NULL,
	symbol       TEXT NOT NULL,
	tick_size    TEXT NOT NULL,
	lot_size     TEXT NOT NULL,
	updated_at   DATETIME NOT NULL,
	UNIQUE(product_type, exchange, symbol)
)`

func (r *RefDataRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// UpsertBatch writes the whole snapshot in one transaction: a failed run
// leaves the previous data intact.
func (r *RefDataRepo) UpsertBatch(ctx context.Context, recs []refdata.Record) (added, updated int, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
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
			WHERE product_type = ? AND exchange = ? AND symbol = ?
		)`
	const upsertSQL = `
		INSERT INTO reference_data
			(product_type, exchange, symbol, tick_size, lot_size, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(product_type, exchange, symbol) DO UPDATE SET
			tick_size  = excluded.tick_size,
			lot_size   = excluded.lot_size,
			updated_at = excluded.updated_at`

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
