// Package noteservice coordinates the flow engine and the document store.
package noteservice

import (
	"context"

	"github.com/starford/ansuz/internal/flow"
	"github.com/starford/ansuz/internal/models"
	"github.com/starford/ansuz/internal/store"
)

const (
	notesCollection = "saved_notes"

	// Bounded fetch sizes for history listing and recall candidates.
	historyLimit         = 100
	recallCandidateLimit = 100
)

// Service exposes the application operations over flows and saved notes.
type Service struct {
	store  store.Provider
	engine *flow.Engine
}

// NewService creates a new note service.
func NewService(st store.Provider, engine *flow.Engine) *Service {
	return &Service{store: st, engine: engine}
}

// RunFlow executes the named flow against the given inputs. The only
// possible error is apperr.ErrUnknownFlow.
func (s *Service) RunFlow(_ context.Context, id flow.ID, in flow.Inputs) (string, error) {
	return s.engine.Execute(id, in)
}

// Flows returns the supported flow ids in lexical order.
func (s *Service) Flows() []flow.ID {
	return s.engine.IDs()
}

// SaveNote persists an original/processed note pair and returns its id.
func (s *Service) SaveNote(ctx context.Context, original, processed string, tags []string) (string, error) {
	return s.store.CreateDocument(ctx, notesCollection, models.SavedNote{
		OriginalNote:  original,
		ProcessedNote: processed,
		Tags:          tags,
	})
}

// History returns the most recently saved notes, newest first.
func (s *Service) History(ctx context.Context) ([]models.SavedNote, error) {
	docs, err := s.store.GetDocuments(ctx, notesCollection, store.Filter{}, historyLimit)
	if err != nil {
		return nil, err
	}
	// The store returns insertion order; present newest first.
	for i, j := 0, len(docs)-1; i < j; i, j = i+1, j-1 {
		docs[i], docs[j] = docs[j], docs[i]
	}
	return docs, nil
}

// Recall fetches a bounded candidate set and ranks it against query.
func (s *Service) Recall(ctx context.Context, query string) (flow.RecallResult, error) {
	docs, err := s.store.GetDocuments(ctx, notesCollection, store.Filter{}, recallCandidateLimit)
	if err != nil {
		return flow.RecallResult{}, err
	}
	return flow.Rank(docs, query), nil
}
