package sqlite

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"daynix/internal/planner/repository"
	pkgLog "daynix/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  pkgLog.Logger
}

// New opens (or creates) the planner database at dbPath and returns the
// repository backed by it.
func New(dbPath string, l pkgLog.Logger) (repository.Repository, func() error, error) {
	if dbPath == "" {
		return nil, nil, errors.New("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, nil, err
	}

	db, err := sql.Open("sqlite", "file:"+dbPath+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, nil, err
	}
	db.SetMaxOpenConns(1)

	r := &implRepository{db: db, l: l}
	if err := r.ensureSchema(); err != nil {
		db.Close()
		return nil, nil, err
	}
	return r, db.Close, nil
}

func (r *implRepository) ensureSchema() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS tasks (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT DEFAULT '',
	type TEXT NOT NULL,
	date TEXT DEFAULT '',
	end_date TEXT DEFAULT '',
	time TEXT DEFAULT '',
	start_time TEXT DEFAULT '',
	end_time TEXT DEFAULT '',
	locked INTEGER NOT NULL DEFAULT 0,
	completed INTEGER NOT NULL DEFAULT 0,
	completed_at TEXT DEFAULT NULL,
	is_daily INTEGER NOT NULL DEFAULT 0,
	recurring_type TEXT DEFAULT '',
	recurring_days TEXT DEFAULT '',
	parent_task_id TEXT DEFAULT '',
	last_daily_instance TEXT DEFAULT NULL,
	moved_count INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS records (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`
	if _, err := r.db.Exec(ddl); err != nil {
		return err
	}
	return r.ensureTaskColumns()
}

// ensureTaskColumns adds columns introduced after the first schema version so
// existing databases keep loading.
func (r *implRepository) ensureTaskColumns() error {
	required := map[string]string{
		"recurring_type": "ALTER TABLE tasks ADD COLUMN recurring_type TEXT DEFAULT '';",
		"recurring_days": "ALTER TABLE tasks ADD COLUMN recurring_days TEXT DEFAULT '';",
		"moved_count":    "ALTER TABLE tasks ADD COLUMN moved_count INTEGER NOT NULL DEFAULT 0;",
	}
	existing := map[string]struct{}{}
	rows, err := r.db.Query(`PRAGMA table_info(tasks);`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull, pk int
		var dflt sql.NullString
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return err
		}
		existing[name] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}
	for col, alter := range required {
		if _, ok := existing[col]; ok {
			continue
		}
		if _, err := r.db.Exec(alter); err != nil {
			return err
		}
	}
	return nil
}
