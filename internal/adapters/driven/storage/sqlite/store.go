package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/docketry-labs/docketry-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/docketry-labs/docketry-cli/internal/core/domain"
	"github.com/docketry-labs/docketry-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ReviewStore = (*Store)(nil)

// Store is a SQLite-backed review history store. Reports are stored
// whole as JSON alongside a few indexed columns for listing.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.docketry/data/history.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".docketry", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

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

// Save stores a report. Saving an existing ID replaces the stored
// report.
func (s *Store) Save(ctx context.Context, report domain.Report) error {
	if report.ID == "" {
		return fmt.Errorf("%w: report has no ID", domain.ErrInvalidInput)
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshalling report: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO reviews (id, process, verdict, ai_used, created_at, payload)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			process = excluded.process,
			verdict = excluded.verdict,
			ai_used = excluded.ai_used,
			created_at = excluded.created_at,
			payload = excluded.payload
	`, report.ID, string(report.Process), string(report.Verdict),
		boolToInt(report.AIUsed), report.CreatedAt.UTC(), string(payload))

	if err != nil {
		return fmt.Errorf("saving report: %w", err)
	}
	return nil
}

// List returns stored reports, newest first.
func (s *Store) List(ctx context.Context) ([]domain.Report, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT payload FROM reviews ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}
	defer rows.Close()

	var reports []domain.Report
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scanning report: %w", err)
		}

		var report domain.Report
		if err := json.Unmarshal([]byte(payload), &report); err != nil {
			return nil, fmt.Errorf("unmarshaling report: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reports: %w", err)
	}

	return reports, nil
}

// Get returns a stored report by ID.
func (s *Store) Get(ctx context.Context, id string) (domain.Report, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT payload FROM reviews WHERE id = ?
	`, id)

	var payload string
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Report{}, domain.ErrNotFound
		}
		return domain.Report{}, fmt.Errorf("scanning report: %w", err)
	}

	var report domain.Report
	if err := json.Unmarshal([]byte(payload), &report); err != nil {
		return domain.Report{}, fmt.Errorf("unmarshaling report: %w", err)
	}
	return report, nil
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

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
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
