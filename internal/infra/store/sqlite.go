package store

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// OpenSQLite opens (creating if needed) the file-backed store.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	// single writer, no concurrent readers in-process
	db.SetMaxOpenConns(1)
	return db, nil
}
