package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/starford/ansuz/internal/noteservice"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// events, if non-nil, receives notifications after successful mutations.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(svc *noteservice.Service, authEnabled bool, token string, events EventPublisher, uploads *UploadHandler, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc, events)

	r := chi.NewRouter()
	r.Use(CORSMiddleware)
	r.Use(AuthMiddleware(authEnabled, token))

	// Flow execution and catalog.
	r.Post("/flows", h.ExecuteFlow)
	r.Get("/flows", h.ListFlows)

	// Saved notes.
	r.Post("/notes", h.SaveNote)
	r.Get("/notes", h.History)

	// Memory recall.
	r.Post("/recall", h.Recall)

	// Uploads (auth-protected).
	if uploads != nil {
		r.Post("/uploads/pdf", uploads.UploadPDF)
		r.Post("/uploads/text", uploads.UploadText)
	}

	// SSE endpoint (protected by same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
