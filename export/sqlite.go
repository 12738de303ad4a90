package export

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/n0mad-samurai/photo2geo/failure"
	"github.com/n0mad-samurai/photo2geo/results"
)

const schema = `
CREATE TABLE run (
	id TEXT PRIMARY KEY,
	generated_at TEXT NOT NULL,
	in_dir TEXT NOT NULL
);
CREATE TABLE records (
	seq INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	local_date TEXT NOT NULL DEFAULT '',
	local_time TEXT NOT NULL DEFAULT '',
	latitude REAL NOT NULL,
	longitude REAL NOT NULL
);
CREATE TABLE flags (
	bucket TEXT NOT NULL,
	seq INTEGER NOT NULL,
	name TEXT NOT NULL,
	PRIMARY KEY (bucket, seq)
);
CREATE INDEX idx_records_name ON records(name);`

// RunInfo identifies the run a SQLite export belongs to.
type RunInfo struct {
	ID          string
	GeneratedAt time.Time
	InDir       string
}

// WriteSQLite writes the records and bucket memberships to a fresh
// dir/Photo2GeoResults.db, replacing any database left by an earlier run.
func WriteSQLite(dir string, run RunInfo, agg *results.Aggregate) (string, error) {
	path := filepath.Join(dir, SQLiteName)
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return path, failure.Wrap(failure.KindExport, "sqlite", "remove previous database failed", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return path, failure.Wrap(failure.KindExport, "sqlite", "open failed", path, err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1) // SQLite works best with single connection

	if _, err := db.Exec(schema); err != nil {
		return path, failure.Wrap(failure.KindExport, "sqlite", "create schema failed", path, err)
	}
	if err := insertRun(db, run, agg); err != nil {
		return path, failure.Wrap(failure.KindExport, "sqlite", "insert failed", path, err)
	}
	return path, nil
}

func insertRun(db *sql.DB, run RunInfo, agg *results.Aggregate) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT INTO run (id, generated_at, in_dir) VALUES (?, ?, ?)`,
		run.ID, run.GeneratedAt.Format(time.RFC3339), run.InDir); err != nil {
		return err
	}

	recStmt, err := tx.Prepare(`INSERT INTO records (seq, name, local_date, local_time, latitude, longitude) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer recStmt.Close()
	for i, r := range agg.Records() {
		if _, err := recStmt.Exec(i, r.Name, r.LocalDate, r.LocalTime, r.Latitude, r.Longitude); err != nil {
			return err
		}
	}

	flagStmt, err := tx.Prepare(`INSERT INTO flags (bucket, seq, name) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer flagStmt.Close()
	for _, b := range results.AllBuckets {
		for i, name := range agg.Bucket(b) {
			if _, err := flagStmt.Exec(string(b), i, name); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}
