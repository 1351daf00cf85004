package reporters

import (
	"database/sql"
	"time"
)

import (
	_ "github.com/mattn/go-sqlite3"
	"github.com/oklog/ulid/v2"
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/cspan/config"
	"github.com/timtadh/cspan/types/sequence"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	created_at  DATETIME NOT NULL,
	policy      TEXT NOT NULL,
	support     REAL NOT NULL,
	min_support INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS patterns (
	run_id  TEXT NOT NULL REFERENCES runs(id),
	rank    INTEGER NOT NULL,
	symbols TEXT NOT NULL,
	length  INTEGER NOT NULL,
	support INTEGER NOT NULL,
	PRIMARY KEY (run_id, rank)
);

CREATE INDEX IF NOT EXISTS idx_patterns_support ON patterns(run_id, support);
`

// SQLite stores one mining run and its patterns in a sqlite database. All
// pattern rows of a run are written in one transaction committed on Close.
type SQLite struct {
	RunId string
	db    *sql.DB
	tx    *sql.Tx
	stmt  *sql.Stmt
	rank  int
}

func NewSQLite(path string, c *config.Config) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, errors.Errorf("could not open sqlite db %v: %v", path, err)
	}
	r := &SQLite{
		RunId: ulid.Make().String(),
		db:    db,
	}
	if err := r.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	_, err = db.Exec(
		`INSERT INTO runs (id, created_at, policy, support, min_support) VALUES (?, ?, ?, ?, ?)`,
		r.RunId, time.Now().UTC(), c.Policy, c.Support, c.MinSupport)
	if err != nil {
		db.Close()
		return nil, errors.Errorf("could not record run: %v", err)
	}
	r.tx, err = db.Begin()
	if err != nil {
		db.Close()
		return nil, err
	}
	r.stmt, err = r.tx.Prepare(
		`INSERT INTO patterns (run_id, rank, symbols, length, support) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		r.tx.Rollback()
		db.Close()
		return nil, err
	}
	errors.Logf("DEBUG", "sqlite run %v in %v", r.RunId, path)
	return r, nil
}

func (r *SQLite) initialize() error {
	_, err := r.db.Exec(schema)
	if err != nil {
		return errors.Errorf("could not create sqlite schema: %v", err)
	}
	return nil
}

func (r *SQLite) Report(p *sequence.Pattern) error {
	_, err := r.stmt.Exec(r.RunId, r.rank, p.Symbols.String(), p.Len(), p.Support)
	if err != nil {
		return err
	}
	r.rank++
	return nil
}

func (r *SQLite) Close() error {
	if err := r.stmt.Close(); err != nil {
		r.tx.Rollback()
		r.db.Close()
		return err
	}
	if err := r.tx.Commit(); err != nil {
		r.db.Close()
		return err
	}
	return r.db.Close()
}

// LoadRun reads back the patterns of a run in rank order.
func LoadRun(path, runId string) ([]*sequence.Pattern, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	rows, err := db.Query(
		`SELECT symbols, support FROM patterns WHERE run_id = ? ORDER BY rank`, runId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	loader := sequence.NewLoader(" ")
	patterns := make([]*sequence.Pattern, 0, 10)
	for rows.Next() {
		var symbols string
		var support int
		if err := rows.Scan(&symbols, &support); err != nil {
			return nil, err
		}
		s, err := loader.ParseSequence(symbols)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, sequence.NewPattern(s, support))
	}
	return patterns, rows.Err()
}
