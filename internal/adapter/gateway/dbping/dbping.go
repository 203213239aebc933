package dbping

import (
	"context"
	"database/sql"
)

// DBPing adapts *sql.DB to the health.Pinger port.
type DBPing struct {
	DB *sql.DB
}

func (DBPing) Name() string { return "db" }

func (d DBPing) Ping(ctx context.Context) error {
	return d.DB.PingContext(ctx)
}
