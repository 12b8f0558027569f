package fetchcache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrNoRuns is returned when the cache holds no fetch runs.
var ErrNoRuns = errors.New("fetch cache is empty")

// Run is one cached provider fetch.
type Run struct {
	ID         string
	FetchedAt  time.Time
	VoiceCount int
	Payload    []byte
}

// Store persists raw voice payloads in a SQLite database so generation can
// be replayed offline against a known inventory.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the cache database under dir. The cache
// directory is guarded with a file lock so concurrent voicegen invocations
// cannot interleave writes.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	lock := flock.New(filepath.Join(dir, "fetchcache.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire cache lock: %w", err)
	}
	if !ok {
		return nil, errors.New("another voicegen run is using the fetch cache")
	}

	dbPath := filepath.Join(dir, "fetchcache.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath, lock: lock}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}
	return store, nil
}

func (s *Store) applyMigrations(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS fetch_runs (
	id TEXT PRIMARY KEY,
	fetched_at TEXT NOT NULL,
	voice_count INTEGER NOT NULL,
	payload BLOB NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_fetch_runs_fetched_at ON fetch_runs(fetched_at);
`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply cache schema: %w", err)
	}
	return nil
}

// Close releases the database and the cache lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var dbErr error
	if s.db != nil {
		dbErr = s.db.Close()
		s.db = nil
	}
	if s.lock != nil {
		if err := s.lock.Unlock(); err != nil && dbErr == nil {
			dbErr = fmt.Errorf("release cache lock: %w", err)
		}
		s.lock = nil
	}
	return dbErr
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// SaveRun records a provider fetch and returns its metadata.
func (s *Store) SaveRun(ctx context.Context, payload []byte, voiceCount int) (Run, error) {
	run := Run{
		ID:         uuid.NewString(),
		FetchedAt:  time.Now().UTC(),
		VoiceCount: voiceCount,
		Payload:    payload,
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO fetch_runs (id, fetched_at, voice_count, payload) VALUES (?, ?, ?, ?)`,
		run.ID, run.FetchedAt.Format(time.RFC3339Nano), run.VoiceCount, run.Payload,
	)
	if err != nil {
		return Run{}, fmt.Errorf("save fetch run: %w", err)
	}
	return run, nil
}

// LatestRun returns the most recent fetch, payload included.
func (s *Store) LatestRun(ctx context.Context) (Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, fetched_at, voice_count, payload FROM fetch_runs ORDER BY rowid DESC LIMIT 1`,
	)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, ErrNoRuns
	}
	return run, err
}

// GetRun returns one fetch by ID, payload included.
func (s *Store) GetRun(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, fetched_at, voice_count, payload FROM fetch_runs WHERE id = ?`, id,
	)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("fetch run %q: %w", id, ErrNoRuns)
	}
	return run, err
}

// ListRuns returns fetch metadata, newest first, without payloads.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, fetched_at, voice_count FROM fetch_runs ORDER BY rowid DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list fetch runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var fetchedAt string
		if err := rows.Scan(&run.ID, &fetchedAt, &run.VoiceCount); err != nil {
			return nil, fmt.Errorf("scan fetch run: %w", err)
		}
		run.FetchedAt, err = time.Parse(time.RFC3339Nano, fetchedAt)
		if err != nil {
			return nil, fmt.Errorf("parse fetched_at %q: %w", fetchedAt, err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Prune keeps the newest keep runs and deletes the rest, returning how many
// were removed.
func (s *Store) Prune(ctx context.Context, keep int) (int, error) {
	if keep < 0 {
		keep = 0
	}
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM fetch_runs WHERE id NOT IN (
			SELECT id FROM fetch_runs ORDER BY rowid DESC LIMIT ?
		)`, keep,
	)
	if err != nil {
		return 0, fmt.Errorf("prune fetch runs: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count pruned runs: %w", err)
	}
	return int(removed), nil
}

func scanRun(row *sql.Row) (Run, error) {
	var run Run
	var fetchedAt string
	if err := row.Scan(&run.ID, &fetchedAt, &run.VoiceCount, &run.Payload); err != nil {
		return Run{}, err
	}
	parsed, err := time.Parse(time.RFC3339Nano, fetchedAt)
	if err != nil {
		return Run{}, fmt.Errorf("parse fetched_at %q: %w", fetchedAt, err)
	}
	run.FetchedAt = parsed
	return run, nil
}
