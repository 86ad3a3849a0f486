package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/shopfeed-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/shopfeed-cli/internal/core/ports/driven"
)

// Store is the SQLite-backed storage for the search history.
type Store struct {
	db   *sql.DB
	path string

	// now is the clock used for created_at stamps. Overridable in tests.
	now func() time.Time
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.shopfeed/data/history.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".shopfeed", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
		now:  func() time.Time { return time.Now().UTC() },
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// HistoryStore returns a SearchHistoryStore interface backed by this store.
func (s *Store) HistoryStore() driven.SearchHistoryStore {
	return &historyStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_recent_searches.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Search History Store ====================

// historyStore implements driven.SearchHistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.SearchHistoryStore = (*historyStore)(nil)

// FetchAll returns all recorded terms, most recent first.
func (s *historyStore) FetchAll(ctx context.Context) ([]string, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT term FROM recent_searches
		ORDER BY created_at DESC, rowid DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying recent searches: %w", err)
	}
	defer rows.Close()

	var terms []string //nolint:prealloc // size unknown from query
	for rows.Next() {
		var term string
		if err := rows.Scan(&term); err != nil {
			return nil, fmt.Errorf("scanning recent search: %w", err)
		}
		terms = append(terms, term)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recent searches: %w", err)
	}

	return terms, nil
}

// Save records a term, refreshing its timestamp if it already exists.
func (s *historyStore) Save(ctx context.Context, term string) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO recent_searches (term, created_at)
		VALUES (?, ?)
		ON CONFLICT(term) DO UPDATE SET
			created_at = excluded.created_at
	`, term, s.store.now())

	if err != nil {
		return fmt.Errorf("saving recent search: %w", err)
	}
	return nil
}

// Delete removes the record with this exact term.
func (s *historyStore) Delete(ctx context.Context, term string) error {
	_, err := s.store.db.ExecContext(ctx,
		"DELETE FROM recent_searches WHERE term = ?", term)
	if err != nil {
		return fmt.Errorf("deleting recent search: %w", err)
	}
	return nil
}

// DeleteAll clears all records.
func (s *historyStore) DeleteAll(ctx context.Context) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM recent_searches")
	if err != nil {
		return fmt.Errorf("clearing recent searches: %w", err)
	}
	return nil
}
