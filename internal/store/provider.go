package store

import (
	"context"

	"github.com/starford/ansuz/internal/models"
)

// Filter narrows a document query. The zero value matches everything.
type Filter struct {
	Tag string
}

// Provider is the document-store capability the service layer depends on.
// Consumers should depend on this interface rather than the concrete *DB
// type to facilitate testing with fakes.
type Provider interface {
	// CreateDocument inserts a document into the named collection and
	// returns its generated id.
	CreateDocument(ctx context.Context, collection string, doc models.SavedNote) (string, error)
	// GetDocuments returns up to limit documents from the named collection
	// in insertion order, optionally narrowed by filter.
	GetDocuments(ctx context.Context, collection string, filter Filter, limit int) ([]models.SavedNote, error)
	Close() error
}

// Verify *DB satisfies Provider at compile time.
var _ Provider = (*DB)(nil)
