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

	"github.com/slotlab/slotcheck-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/slotlab/slotcheck-cli/internal/core/domain"
	"github.com/slotlab/slotcheck-cli/internal/core/ports/driven"
)

// Store is a unified SQLite-based storage that provides access to the
// ground truth and preset store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.slotcheck/data/slotcheck.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".slotcheck", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "slotcheck.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
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

// TruthStore returns a GroundTruthStore interface backed by this store.
func (s *Store) TruthStore() driven.GroundTruthStore {
	return &truthStore{store: s}
}

// PresetStore returns a PresetStore interface backed by this store.
func (s *Store) PresetStore() driven.PresetStore {
	return &presetStore{store: s}
}

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

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Ground Truth Store ====================

// truthStore implements driven.GroundTruthStore.
type truthStore struct {
	store *Store
}

var _ driven.GroundTruthStore = (*truthStore)(nil)

// Save stores or replaces the labeling for an image.
func (s *truthStore) Save(ctx context.Context, entry domain.GroundTruthEntry) error {
	items, err := json.Marshal(entry.Items)
	if err != nil {
		return fmt.Errorf("encoding truth items: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO ground_truth (image_path, items, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(image_path) DO UPDATE SET
			items = excluded.items,
			updated_at = excluded.updated_at
	`, entry.ImagePath, string(items), time.Now())

	if err != nil {
		return fmt.Errorf("saving ground truth: %w", err)
	}
	return nil
}

// Get retrieves the labeling for an image.
func (s *truthStore) Get(ctx context.Context, imagePath string) (*domain.GroundTruthEntry, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT image_path, items FROM ground_truth WHERE image_path = ?
	`, imagePath)

	entry, err := scanTruthEntry(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return entry, nil
}

// Delete removes the labeling for an image.
func (s *truthStore) Delete(ctx context.Context, imagePath string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM ground_truth WHERE image_path = ?", imagePath)
	if err != nil {
		return fmt.Errorf("deleting ground truth: %w", err)
	}
	return nil
}

// List returns all labelings ordered by image path.
func (s *truthStore) List(ctx context.Context) ([]domain.GroundTruthEntry, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT image_path, items FROM ground_truth ORDER BY image_path
	`)
	if err != nil {
		return nil, fmt.Errorf("listing ground truth: %w", err)
	}
	defer rows.Close()

	var entries []domain.GroundTruthEntry
	for rows.Next() {
		entry, err := scanTruthEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

func scanTruthEntry(scan func(dest ...any) error) (*domain.GroundTruthEntry, error) {
	var entry domain.GroundTruthEntry
	var items string
	if err := scan(&entry.ImagePath, &items); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(items), &entry.Items); err != nil {
		return nil, fmt.Errorf("decoding truth items: %w", err)
	}
	return &entry, nil
}

// ==================== Preset Store ====================

// presetStore implements driven.PresetStore.
type presetStore struct {
	store *Store
}

var _ driven.PresetStore = (*presetStore)(nil)

// Save stores or replaces the preset for its resolution.
func (s *presetStore) Save(ctx context.Context, preset domain.CalibrationPreset) error {
	createdAt := preset.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO calibration_presets
			(id, width, height, grid_left, grid_top, cell_width, cell_height, grid_columns, grid_rows, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(width, height) DO UPDATE SET
			id = excluded.id,
			grid_left = excluded.grid_left,
			grid_top = excluded.grid_top,
			cell_width = excluded.cell_width,
			cell_height = excluded.cell_height,
			grid_columns = excluded.grid_columns,
			grid_rows = excluded.grid_rows,
			created_at = excluded.created_at
	`, preset.ID, preset.Width, preset.Height,
		preset.GridLeft, preset.GridTop, preset.CellWidth, preset.CellHeight,
		preset.Columns, preset.Rows, createdAt)

	if err != nil {
		return fmt.Errorf("saving preset: %w", err)
	}
	return nil
}

// Get retrieves the preset for an exact resolution.
func (s *presetStore) Get(ctx context.Context, width, height int) (*domain.CalibrationPreset, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, width, height, grid_left, grid_top, cell_width, cell_height, grid_columns, grid_rows, created_at
		FROM calibration_presets WHERE width = ? AND height = ?
	`, width, height)

	preset, err := scanPreset(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return preset, nil
}

// Delete removes the preset for a resolution.
func (s *presetStore) Delete(ctx context.Context, width, height int) error {
	_, err := s.store.db.ExecContext(ctx,
		"DELETE FROM calibration_presets WHERE width = ? AND height = ?", width, height)
	if err != nil {
		return fmt.Errorf("deleting preset: %w", err)
	}
	return nil
}

// List returns all stored presets ordered by resolution.
func (s *presetStore) List(ctx context.Context) ([]domain.CalibrationPreset, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, width, height, grid_left, grid_top, cell_width, cell_height, grid_columns, grid_rows, created_at
		FROM calibration_presets ORDER BY width, height
	`)
	if err != nil {
		return nil, fmt.Errorf("listing presets: %w", err)
	}
	defer rows.Close()

	var presets []domain.CalibrationPreset
	for rows.Next() {
		preset, err := scanPreset(rows.Scan)
		if err != nil {
			return nil, err
		}
		presets = append(presets, *preset)
	}
	return presets, rows.Err()
}

func scanPreset(scan func(dest ...any) error) (*domain.CalibrationPreset, error) {
	var p domain.CalibrationPreset
	if err := scan(&p.ID, &p.Width, &p.Height,
		&p.GridLeft, &p.GridTop, &p.CellWidth, &p.CellHeight,
		&p.Columns, &p.Rows, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
