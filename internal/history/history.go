/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package history records formatting runs in an embedded SQLite database.
// The database is derived data: it can be deleted at any time without losing
// documents, so the schema stays deliberately small.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	applog "tatefmt/internal/log"
	"tatefmt/internal/version"

	// Pure-Go SQLite driver (CGO-free)
	_ "modernc.org/sqlite"
)

// schemaVersion tracks the local SQLite schema. Bump when performing breaking
// schema changes and add a migration step.
const schemaVersion = 1

// Run is one recorded formatting pass.
type Run struct {
	ID       int64
	TS       time.Time
	Source   string // input file name, or "stdin"
	InputSHA string // hex SHA-256 of the input text
	Chars    int
	Lines    int
	Pages    int
	Headings int
}

// language=SQL
// dialect=SQLite
const insertRunSQL = `INSERT INTO runs(ts, source, input_sha, chars, lines, pages, headings) VALUES (?, ?, ?, ?, ?, ?, ?)`

// language=SQL
// dialect=SQLite
const listRunsSQL = `SELECT id, ts, source, input_sha, chars, lines, pages, headings FROM runs ORDER BY ts DESC, id DESC LIMIT ?`

// language=SQL
// dialect=SQLite
const pruneOldRunsSQL = `DELETE FROM runs WHERE id NOT IN (
	SELECT id FROM runs ORDER BY ts DESC, id DESC LIMIT ?
)`

// Open opens (creating if needed) the history database at path, enables WAL
// mode, and ensures the meta/version and runs tables exist. Callers own the
// returned handle and should close it when done.
func Open(path string) (*sql.DB, error) {
	l := applog.WithOperation(applog.WithComponent("history"), "open").With(
		slog.String("path", path),
	)
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("history database path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		l.Error("create history dir failed", slog.Any("err", err))
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	// Forward slashes for the SQLite URI, also on Windows.
	dsn := fmt.Sprintf("file:%s?cache=shared&_pragma=busy_timeout(5000)", filepath.ToSlash(path))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		l.Error("sqlite open failed", slog.Any("err", err))
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// Embedded usage; keep the pool minimal.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL;"); err != nil {
		_ = db.Close()
		l.Error("enable WAL failed", slog.Any("err", err))
		return nil, fmt.Errorf("enable WAL: %w", err)
	}

	if err := ensureSchema(ctx, db); err != nil {
		_ = db.Close()
		l.Error("ensure schema failed", slog.Any("err", err))
		return nil, err
	}
	l.Debug("history ready")
	return db, nil
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS version (
			id          INTEGER PRIMARY KEY CHECK(id=1),
			schema      INTEGER NOT NULL,
			app         TEXT,
			created_at  TEXT NOT NULL,
			updated_at  TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS runs (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			ts        TEXT NOT NULL,
			source    TEXT NOT NULL,
			input_sha TEXT NOT NULL,
			chars     INTEGER NOT NULL,
			lines     INTEGER NOT NULL,
			pages     INTEGER NOT NULL,
			headings  INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON runs(ts);`,
	}
	for _, q := range ddl {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	now := time.Now().UTC().Format(time.RFC3339)
	appv := version.String()
	var curSchema int
	err := db.QueryRowContext(ctx, `SELECT schema FROM version WHERE id=1`).Scan(&curSchema)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := db.ExecContext(ctx, `INSERT INTO version (id, schema, app, created_at, updated_at) VALUES(1, ?, ?, ?, ?)`, schemaVersion, appv, now, now); err != nil {
			return fmt.Errorf("insert version: %w", err)
		}
	case err != nil:
		return fmt.Errorf("read version: %w", err)
	default:
		if _, err := db.ExecContext(ctx, `UPDATE version SET app=?, updated_at=? WHERE id=1`, appv, now); err != nil {
			return fmt.Errorf("update version: %w", err)
		}
	}
	return nil
}

// SaveRun persists one formatting run.
func SaveRun(ctx context.Context, db *sql.DB, run Run) error {
	if db == nil {
		return errors.New("nil history database")
	}
	ts := run.TS
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := db.ExecContext(ctx, insertRunSQL,
		ts.UTC().Format(time.RFC3339Nano), run.Source, run.InputSHA,
		run.Chars, run.Lines, run.Pages, run.Headings)
	return err
}

// ListRuns returns up to limit most recent runs, newest first.
func ListRuns(ctx context.Context, db *sql.DB, limit int) ([]Run, error) {
	if db == nil {
		return nil, errors.New("nil history database")
	}
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.QueryContext(ctx, listRunsSQL, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []Run
	for rows.Next() {
		var r Run
		var tsStr string
		if err := rows.Scan(&r.ID, &tsStr, &r.Source, &r.InputSHA, &r.Chars, &r.Lines, &r.Pages, &r.Headings); err != nil {
			return nil, err
		}
		r.TS, _ = time.Parse(time.RFC3339Nano, tsStr)
		out = append(out, r)
	}
	return out, rows.Err()
}

// PruneOldRuns keeps at most keepLast runs and deletes older ones, returning
// the number of deleted rows.
func PruneOldRuns(ctx context.Context, db *sql.DB, keepLast int) (int64, error) {
	if db == nil {
		return 0, errors.New("nil history database")
	}
	if keepLast < 0 {
		keepLast = 0
	}
	res, err := db.ExecContext(ctx, pruneOldRunsSQL, keepLast)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, nil
}
