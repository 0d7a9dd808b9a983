package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/starford/ansuz/internal/apperr"
	"github.com/starford/ansuz/internal/flow"
	"github.com/starford/ansuz/internal/models"
	"github.com/starford/ansuz/internal/noteservice"
)

// EventPublisher receives notifications after successful mutations so the
// SSE layer can fan them out. A nil publisher disables notifications.
type EventPublisher interface {
	PublishFlowEvent(flow string)
	PublishSaveEvent(id string)
}

// Handler holds API route handlers.
type Handler struct {
	svc    *noteservice.Service
	events EventPublisher
}

// NewHandler creates a new Handler.
func NewHandler(svc *noteservice.Service, events EventPublisher) *Handler {
	return &Handler{svc: svc, events: events}
}

// ExecuteFlow handles POST /api/flows.
//
//	@Summary		Execute a named flow over the supplied inputs
//	@Tags			flows
//	@Accept			json
//	@Produce		json
//	@Param			body	body		FlowRequest	true	"Flow id and named inputs"
//	@Success		200		{object}	FlowResponse
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/flows [post]
func (h *Handler) ExecuteFlow(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)
	var req FlowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}

	inputs := flow.Inputs{
		UserNote:     req.UserNote,
		UserSyllabus: req.UserSyllabus,
		Note1:        req.Note1,
		Note2:        req.Note2,
		VoiceText:    req.VoiceText,
		PDFText:      req.PDFText,
		Query:        req.Query,
	}

	output, err := h.svc.RunFlow(r.Context(), flow.ID(req.Flow), inputs)
	if err != nil {
		if errors.Is(err, apperr.ErrUnknownFlow) {
			writeJSON(w, http.StatusBadRequest, errorBody("Unknown flow"))
		} else {
			slog.Error("flow failed", slog.String("flow", req.Flow), slog.String("error", err.Error()))
			serverError(w, err)
		}
		return
	}

	if h.events != nil {
		h.events.PublishFlowEvent(req.Flow)
	}
	writeJSON(w, http.StatusOK, FlowResponse{Output: output})
}

// ListFlows handles GET /api/flows.
//
//	@Summary		List the supported flow ids
//	@Tags			flows
//	@Produce		json
//	@Success		200	{object}	FlowListResponse
//	@Security		BearerAuth
//	@Router			/flows [get]
func (h *Handler) ListFlows(w http.ResponseWriter, _ *http.Request) {
	ids := h.svc.Flows()
	flows := make([]string, len(ids))
	for i, id := range ids {
		flows[i] = string(id)
	}
	writeJSON(w, http.StatusOK, FlowListResponse{Flows: flows})
}

// SaveNote handles POST /api/notes.
//
//	@Summary		Save an original/processed note pair
//	@Tags			notes
//	@Accept			json
//	@Produce		json
//	@Param			body	body		SaveNoteRequest	true	"Note to save"
//	@Success		201		{object}	SaveNoteResponse
//	@Failure		400		{object}	errResponse
//	@Failure		500		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/notes [post]
func (h *Handler) SaveNote(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)
	var req SaveNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if req.OriginalNote == "" || req.ProcessedNote == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("original_note and processed_note are required"))
		return
	}

	id, err := h.svc.SaveNote(r.Context(), req.OriginalNote, req.ProcessedNote, req.Tags)
	if err != nil {
		slog.Error("save note failed", slog.String("error", err.Error()))
		serverError(w, err)
		return
	}

	if h.events != nil {
		h.events.PublishSaveEvent(id)
	}
	writeJSON(w, http.StatusCreated, SaveNoteResponse{ID: id})
}

// History handles GET /api/notes.
//
//	@Summary		List saved notes, newest first
//	@Tags			notes
//	@Produce		json
//	@Success		200	{object}	HistoryResponse
//	@Failure		500	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/notes [get]
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	notes, err := h.svc.History(r.Context())
	if err != nil {
		slog.Error("history failed", slog.String("error", err.Error()))
		serverError(w, err)
		return
	}
	if notes == nil {
		notes = []models.SavedNote{}
	}
	writeJSON(w, http.StatusOK, HistoryResponse{Notes: notes})
}

// Recall handles POST /api/recall.
//
//	@Summary		Rank saved notes against a free-text query
//	@Tags			recall
//	@Accept			json
//	@Produce		json
//	@Param			body	body		RecallRequest	true	"Query"
//	@Success		200		{object}	RecallResponse
//	@Failure		400		{object}	errResponse
//	@Failure		500		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/recall [post]
func (h *Handler) Recall(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req RecallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}

	res, err := h.svc.Recall(r.Context(), req.Query)
	if err != nil {
		slog.Error("recall failed", slog.String("query", req.Query), slog.String("error", err.Error()))
		serverError(w, err)
		return
	}

	matches := make([]string, len(res.Matches))
	for i, m := range res.Matches {
		matches[i] = m.Note.ID
	}
	writeJSON(w, http.StatusOK, RecallResponse{Summary: res.Digest, Matches: matches})
}
