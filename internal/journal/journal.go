// Package journal is an append-only sqlite log of replayed appraisals.
package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Entry is one appraisal produced while replaying a scenario.
type Entry struct {
	ID           int64   `db:"id"`
	Run          string  `db:"run"`
	Step         int     `db:"step"`
	Goal         string  `db:"goal"`
	Channel      string  `db:"channel"`
	Elicited     bool    `db:"elicited"`
	Gate         string  `db:"gate"`
	DistPrev     float64 `db:"dist_prev"`
	DistNow      float64 `db:"dist_now"`
	DistDelta    float64 `db:"dist_delta"`
	Contribution float64 `db:"contribution"`
	Event        string  `db:"event"`
	World        string  `db:"world"`
	// RecordedAt is unix nanoseconds.
	RecordedAt int64 `db:"recorded_at"`
}

// Run summarizes one replay.
type Run struct {
	Run      string `db:"run"`
	Entries  int    `db:"entries"`
	Elicited int    `db:"elicited"`
	Started  int64  `db:"started"`
}

type Journal struct {
	conn *sqlx.DB
	now  func() time.Time
}

// Open opens or creates the journal at path.
func Open(path string) (*Journal, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	// sqlite allows a single writer.
	conn.SetMaxOpenConns(1)

	j := &Journal{conn: conn, now: time.Now}
	if err := j.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate journal: %w", err)
	}
	return j, nil
}

func (j *Journal) Close() error {
	return j.conn.Close()
}

func (j *Journal) migrate() error {
	_, err := j.conn.Exec(`
	CREATE TABLE IF NOT EXISTS entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run TEXT NOT NULL,
		step INTEGER NOT NULL,
		goal TEXT NOT NULL,
		channel TEXT NOT NULL,
		elicited INTEGER NOT NULL,
		gate TEXT NOT NULL,
		dist_prev REAL NOT NULL,
		dist_now REAL NOT NULL,
		dist_delta REAL NOT NULL,
		contribution REAL NOT NULL,
		event TEXT NOT NULL,
		world TEXT NOT NULL,
		recorded_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_entries_run ON entries(run, step);
	`)
	return err
}

const insertEntry = `
	INSERT INTO entries (run, step, goal, channel, elicited, gate, dist_prev, dist_now,
		dist_delta, contribution, event, world, recorded_at)
	VALUES (:run, :step, :goal, :channel, :elicited, :gate, :dist_prev, :dist_now,
		:dist_delta, :contribution, :event, :world, :recorded_at)`

// Record appends entries in one transaction and fills in their IDs.
func (j *Journal) Record(ctx context.Context, entries ...*Entry) error {
	tx, err := j.conn.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareNamedContext(ctx, insertEntry)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := j.now().UnixNano()
	for _, e := range entries {
		if e.RecordedAt == 0 {
			e.RecordedAt = now
		}
		res, err := stmt.ExecContext(ctx, e)
		if err != nil {
			return fmt.Errorf("record step %d: %w", e.Step, err)
		}
		if e.ID, err = res.LastInsertId(); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// List returns a run's entries in the order they were recorded.
func (j *Journal) List(ctx context.Context, run string) ([]Entry, error) {
	var entries []Entry
	err := j.conn.SelectContext(ctx, &entries,
		`SELECT * FROM entries WHERE run = ? ORDER BY step, id`, run)
	return entries, err
}

// Runs lists every run, newest first.
func (j *Journal) Runs(ctx context.Context) ([]Run, error) {
	var runs []Run
	err := j.conn.SelectContext(ctx, &runs, `
		SELECT run, COUNT(*) AS entries, SUM(elicited) AS elicited, MIN(recorded_at) AS started
		FROM entries GROUP BY run ORDER BY started DESC, run`)
	return runs, err
}
