// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package library indexes downloaded papers in a SQLite database so
// the hub stays searchable without re-reading sidecar files.
package library

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/paper-hub/pkg/types"
)

const dbFile = "library.db"

// Entry is one indexed download.
type Entry struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Authors      []string  `json:"authors,omitempty"`
	Category     string    `json:"category,omitempty"`
	Source       string    `json:"source"`
	PDFPath      string    `json:"pdf_path"`
	DownloadedAt time.Time `json:"downloaded_at"`
}

// Store manages the library SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates the library database at
// libraryDir/library.db, creating the schema if needed.
func Open(cfg types.LibraryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.LibraryDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating library directory: %w", err)
	}

	dbPath := filepath.Join(cfg.LibraryDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS downloads (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			title TEXT,
			abstract TEXT,
			authors TEXT,
			category TEXT,
			source TEXT,
			pdf_path TEXT NOT NULL,
			downloaded_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_downloads_category ON downloads(category)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='downloads_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE downloads_fts USING fts5(title, abstract, content=downloads, content_rowid=rowid)`,
			`CREATE TRIGGER downloads_ai AFTER INSERT ON downloads BEGIN
				INSERT INTO downloads_fts(rowid, title, abstract) VALUES (new.rowid, new.title, new.abstract);
			END`,
			`CREATE TRIGGER downloads_ad AFTER DELETE ON downloads BEGIN
				INSERT INTO downloads_fts(downloads_fts, rowid, title, abstract) VALUES('delete', old.rowid, old.title, old.abstract);
			END`,
			`CREATE TRIGGER downloads_au AFTER UPDATE ON downloads BEGIN
				INSERT INTO downloads_fts(downloads_fts, rowid, title, abstract) VALUES('delete', old.rowid, old.title, old.abstract);
				INSERT INTO downloads_fts(rowid, title, abstract) VALUES (new.rowid, new.title, new.abstract);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// Record upserts one downloaded paper into the index.
func (s *Store) Record(ctx context.Context, paper *types.Paper, source, pdfPath, category string) error {
	names := make([]string, 0, len(paper.Authors))
	for _, a := range paper.Authors {
		names = append(names, a.Name)
	}
	authorsJSON, _ := json.Marshal(names)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO downloads (id, title, abstract, authors, category, source, pdf_path, downloaded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			title=excluded.title, abstract=excluded.abstract, authors=excluded.authors,
			category=excluded.category, source=excluded.source,
			pdf_path=excluded.pdf_path, downloaded_at=excluded.downloaded_at`,
		paper.ID, paper.Title, paper.Summary, string(authorsJSON),
		category, source, pdfPath, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording download: %w", err)
	}
	return nil
}

// List returns the most recent downloads, newest first.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, authors, category, source, pdf_path, downloaded_at
		 FROM downloads ORDER BY downloaded_at DESC LIMIT ?`, s.maxResults)
	if err != nil {
		return nil, fmt.Errorf("listing downloads: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// Search runs a full-text query over indexed titles and abstracts.
func (s *Store) Search(ctx context.Context, q string) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT d.id, d.title, d.authors, d.category, d.source, d.pdf_path, d.downloaded_at
		 FROM downloads_fts f JOIN downloads d ON d.rowid = f.rowid
		 WHERE downloads_fts MATCH ? ORDER BY rank LIMIT ?`, q, s.maxResults)
	if err != nil {
		return nil, fmt.Errorf("searching downloads: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		var authorsJSON, downloadedAt string
		if err := rows.Scan(&e.ID, &e.Title, &authorsJSON, &e.Category, &e.Source, &e.PDFPath, &downloadedAt); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if authorsJSON != "" {
			json.Unmarshal([]byte(authorsJSON), &e.Authors)
		}
		if t, err := time.Parse(time.RFC3339, downloadedAt); err == nil {
			e.DownloadedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
