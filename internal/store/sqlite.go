// Package store provides the SQLite-backed document store for saved notes.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/starford/ansuz/internal/models"
)

const defaultQueryLimit = 100

const schemaSQL = `
CREATE TABLE IF NOT EXISTS documents (
	id             TEXT PRIMARY KEY,
	collection     TEXT NOT NULL,
	original_note  TEXT NOT NULL DEFAULT '',
	processed_note TEXT NOT NULL DEFAULT '',
	tags           TEXT NOT NULL DEFAULT '[]',
	created_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents(collection, created_at);
`

// DB wraps a sql.DB with document-store operations.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite database and applies the schema.
func Open(dsn string) (*DB, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("store: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: apply schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the underlying database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// CreateDocument inserts a document and returns its generated id.
// A zero Timestamp is stamped with the current UTC time.
func (db *DB) CreateDocument(ctx context.Context, collection string, doc models.SavedNote) (string, error) {
	id := uuid.NewString()
	ts := doc.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	tagsJSON, _ := json.Marshal(nonNilTags(doc.Tags))

	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO documents (id, collection, original_note, processed_note, tags, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, collection, doc.OriginalNote, doc.ProcessedNote, string(tagsJSON), ts)
	if err != nil {
		return "", fmt.Errorf("store: create document: %w", err)
	}
	return id, nil
}

// GetDocuments returns up to limit documents from collection in insertion
// order. A non-empty filter tag restricts results to documents carrying it.
func (db *DB) GetDocuments(ctx context.Context, collection string, filter Filter, limit int) ([]models.SavedNote, error) {
	if limit <= 0 {
		limit = defaultQueryLimit
	}

	query := `
		SELECT id, original_note, processed_note, tags, created_at
		FROM documents
		WHERE collection = ?`
	args := []any{collection}
	if filter.Tag != "" {
		// Tags are stored as a JSON string array; match the quoted value.
		query += ` AND tags LIKE ?`
		args = append(args, `%"`+filter.Tag+`"%`)
	}
	query += ` ORDER BY created_at ASC, id ASC LIMIT ?`
	args = append(args, limit)

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("store: get documents: %w", err)
	}
	defer rows.Close()

	var out []models.SavedNote
	for rows.Next() {
		var n models.SavedNote
		var tagsJSON string
		if err := rows.Scan(&n.ID, &n.OriginalNote, &n.ProcessedNote, &tagsJSON, &n.Timestamp); err != nil {
			return nil, fmt.Errorf("store: scan document: %w", err)
		}
		if err := json.Unmarshal([]byte(tagsJSON), &n.Tags); err != nil || n.Tags == nil {
			n.Tags = []string{}
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
