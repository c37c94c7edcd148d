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

	"github.com/folio-reader/folio-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/folio-reader/folio-cli/internal/core/domain"
	"github.com/folio-reader/folio-cli/internal/core/ports/driven"
)

// Store is a unified SQLite-based storage that provides access to the
// library, chapter cache, and settings store interfaces through wrapper
// types sharing one connection.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.folio/data/library.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".folio", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "library.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
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

// LibraryStore returns a LibraryStore interface backed by this store.
func (s *Store) LibraryStore() driven.LibraryStore {
	return &libraryStore{store: s}
}

// ChapterCache returns a ChapterCache interface backed by this store.
func (s *Store) ChapterCache() driven.ChapterCache {
	return &chapterCache{store: s}
}

// SettingsStore returns a SettingsStore interface backed by this store.
func (s *Store) SettingsStore() driven.SettingsStore {
	return &settingsStore{store: s}
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

	// Sort and run migrations
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

		// Read and execute migration
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

// ==================== Library Store ====================

// libraryStore implements driven.LibraryStore.
type libraryStore struct {
	store *Store
}

var _ driven.LibraryStore = (*libraryStore)(nil)

// Save stores or updates a library row. The file path is unique, so saving
// a re-imported file under a new id replaces the earlier row.
func (s *libraryStore) Save(ctx context.Context, doc *domain.StoredDocument) error {
	if doc.ID == "" || doc.FilePath == "" {
		return domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	if doc.AddedDate.IsZero() {
		doc.AddedDate = now
	}
	if doc.LastRead.IsZero() {
		doc.LastRead = now
	}

	// A re-imported file replaces any earlier row for the same path.
	if _, err := s.store.db.ExecContext(ctx,
		"DELETE FROM documents WHERE file_path = ? AND id != ?",
		doc.FilePath, doc.ID); err != nil {
		return fmt.Errorf("replacing document: %w", err)
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO documents
			(id, title, author, file_path, file_type, total_pages, current_position, last_read, added_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			author = excluded.author,
			file_path = excluded.file_path,
			file_type = excluded.file_type,
			total_pages = excluded.total_pages,
			last_read = excluded.last_read
	`, doc.ID, doc.Title, nullString(doc.Author), doc.FilePath, string(doc.FileType),
		doc.TotalPages, doc.CurrentPosition, doc.LastRead, doc.AddedDate)

	if err != nil {
		return fmt.Errorf("saving document: %w", err)
	}
	return nil
}

// Get retrieves a library row by id.
func (s *libraryStore) Get(ctx context.Context, id string) (*domain.StoredDocument, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, title, author, file_path, file_type, total_pages, current_position, last_read, added_date
		FROM documents WHERE id = ?
	`, id)

	return scanStoredDocument(row)
}

// GetByPath retrieves a library row by file path.
func (s *libraryStore) GetByPath(ctx context.Context, path string) (*domain.StoredDocument, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, title, author, file_path, file_type, total_pages, current_position, last_read, added_date
		FROM documents WHERE file_path = ?
	`, path)

	return scanStoredDocument(row)
}

// List returns all library rows, most recently read first.
func (s *libraryStore) List(ctx context.Context) ([]domain.StoredDocument, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, title, author, file_path, file_type, total_pages, current_position, last_read, added_date
		FROM documents
		ORDER BY last_read DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.StoredDocument //nolint:prealloc // size unknown from query
	for rows.Next() {
		doc, err := scanStoredDocumentRows(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}

	return docs, nil
}

// UpdateProgress saves the reading position and bumps last_read.
func (s *libraryStore) UpdateProgress(ctx context.Context, id string, position int) error {
	res, err := s.store.db.ExecContext(ctx, `
		UPDATE documents SET current_position = ?, last_read = ? WHERE id = ?
	`, position, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("updating progress: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking progress update: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a library row. Cached chapters go with it via the
// foreign key cascade.
func (s *libraryStore) Delete(ctx context.Context, id string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	return nil
}

// ==================== Chapter Cache ====================

// chapterCache implements driven.ChapterCache.
type chapterCache struct {
	store *Store
}

var _ driven.ChapterCache = (*chapterCache)(nil)

// SaveChapters replaces the cached chapter sequence for a document.
func (c *chapterCache) SaveChapters(ctx context.Context, documentID string, chapters []domain.Chapter) error {
	tx, err := c.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM chapters WHERE document_id = ?", documentID); err != nil {
		return fmt.Errorf("clearing chapters: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO chapters (id, document_id, title, start_position, end_position, chapter_order)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for i, ch := range chapters {
		if _, err := stmt.ExecContext(ctx, ch.ID, documentID, ch.Title,
			ch.StartPosition, ch.EndPosition, i); err != nil {
			return fmt.Errorf("saving chapter: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// GetChapters returns the cached chapters in their original order.
func (c *chapterCache) GetChapters(ctx context.Context, documentID string) ([]domain.Chapter, error) {
	rows, err := c.store.db.QueryContext(ctx, `
		SELECT id, title, start_position, end_position
		FROM chapters WHERE document_id = ?
		ORDER BY chapter_order
	`, documentID)
	if err != nil {
		return nil, fmt.Errorf("querying chapters: %w", err)
	}
	defer rows.Close()

	var chapters []domain.Chapter //nolint:prealloc // size unknown from query
	for rows.Next() {
		var ch domain.Chapter
		if err := rows.Scan(&ch.ID, &ch.Title, &ch.StartPosition, &ch.EndPosition); err != nil {
			return nil, fmt.Errorf("scanning chapter: %w", err)
		}
		chapters = append(chapters, ch)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating chapters: %w", err)
	}

	if len(chapters) == 0 {
		return nil, domain.ErrNotFound
	}
	return chapters, nil
}

// Clear removes the cached chapters for a document.
func (c *chapterCache) Clear(ctx context.Context, documentID string) error {
	_, err := c.store.db.ExecContext(ctx,
		"DELETE FROM chapters WHERE document_id = ?", documentID)
	if err != nil {
		return fmt.Errorf("clearing chapters: %w", err)
	}
	return nil
}

// ==================== Settings Store ====================

// settingsStore implements driven.SettingsStore.
type settingsStore struct {
	store *Store
}

var _ driven.SettingsStore = (*settingsStore)(nil)

// GetSettings returns the saved settings, or defaults when none exist yet.
func (s *settingsStore) GetSettings(ctx context.Context) (*domain.UserSettings, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT theme, font_family, font_size, line_height, letter_spacing,
			words_per_page, page_margin, justify_text, hyphenation, animation_speed, page_curl
		FROM user_settings WHERE id = 1
	`)

	var settings domain.UserSettings
	err := row.Scan(&settings.Theme, &settings.FontFamily, &settings.FontSize,
		&settings.LineHeight, &settings.LetterSpacing, &settings.WordsPerPage,
		&settings.PageMargin, &settings.JustifyText, &settings.Hyphenation,
		&settings.AnimationSpeed, &settings.PageCurl)
	if err == sql.ErrNoRows {
		defaults := domain.DefaultUserSettings()
		return &defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning settings: %w", err)
	}

	return &settings, nil
}

// SaveSettings writes the single settings row.
func (s *settingsStore) SaveSettings(ctx context.Context, settings *domain.UserSettings) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO user_settings
			(id, theme, font_family, font_size, line_height, letter_spacing,
			words_per_page, page_margin, justify_text, hyphenation, animation_speed, page_curl)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			theme = excluded.theme,
			font_family = excluded.font_family,
			font_size = excluded.font_size,
			line_height = excluded.line_height,
			letter_spacing = excluded.letter_spacing,
			words_per_page = excluded.words_per_page,
			page_margin = excluded.page_margin,
			justify_text = excluded.justify_text,
			hyphenation = excluded.hyphenation,
			animation_speed = excluded.animation_speed,
			page_curl = excluded.page_curl
	`, settings.Theme, settings.FontFamily, settings.FontSize, settings.LineHeight,
		settings.LetterSpacing, settings.WordsPerPage, settings.PageMargin,
		settings.JustifyText, settings.Hyphenation, settings.AnimationSpeed, settings.PageCurl)

	if err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}

// ==================== Helper Functions ====================

// nullString converts an empty string to a SQL NULL.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// scanStoredDocument scans a single library row.
func scanStoredDocument(row *sql.Row) (*domain.StoredDocument, error) {
	var doc domain.StoredDocument
	var author sql.NullString
	var fileType string

	if err := row.Scan(&doc.ID, &doc.Title, &author, &doc.FilePath, &fileType,
		&doc.TotalPages, &doc.CurrentPosition, &doc.LastRead, &doc.AddedDate); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning document: %w", err)
	}

	doc.Author = author.String
	doc.FileType = domain.FileType(fileType)

	return &doc, nil
}

// scanStoredDocumentRows scans a library row from *sql.Rows.
func scanStoredDocumentRows(rows *sql.Rows) (*domain.StoredDocument, error) {
	var doc domain.StoredDocument
	var author sql.NullString
	var fileType string

	if err := rows.Scan(&doc.ID, &doc.Title, &author, &doc.FilePath, &fileType,
		&doc.TotalPages, &doc.CurrentPosition, &doc.LastRead, &doc.AddedDate); err != nil {
		return nil, fmt.Errorf("scanning document: %w", err)
	}

	doc.Author = author.String
	doc.FileType = domain.FileType(fileType)

	return &doc, nil
}
