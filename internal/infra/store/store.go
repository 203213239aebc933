package store

import (
	"database/sql"
	"fmt"
)

// Open dispatches on the configured driver: "sqlite3" uses the local
// file at path, "postgres" uses dsn.
func Open(driver, path, dsn string) (*sql.DB, error) {
	switch driver {
	case "sqlite3":
		return OpenSQLite(path)
	case "postgres":
		return OpenPostgres(dsn)
	}
	return nil, fmt.Errorf("unknown db driver %q", driver)
}
