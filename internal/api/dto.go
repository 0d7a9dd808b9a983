package api

import (
	"github.com/starford/ansuz/internal/models"
)

// FlowRequest is the request body for executing a flow. All inputs are
// optional; slots a flow does not reference are simply unused.
type FlowRequest struct {
	Flow         string `json:"flow" example:"summarize" validate:"required"`
	UserNote     string `json:"user_note,omitempty"`
	UserSyllabus string `json:"user_syllabus,omitempty"`
	Note1        string `json:"note1,omitempty"`
	Note2        string `json:"note2,omitempty"`
	VoiceText    string `json:"voice_text,omitempty"`
	PDFText      string `json:"pdf_text,omitempty"`
	Query        string `json:"query,omitempty"`
}

// FlowResponse wraps a flow's output text.
type FlowResponse struct {
	Output string `json:"output" validate:"required"`
}

// FlowListResponse lists the supported flow ids.
type FlowListResponse struct {
	Flows []string `json:"flows" validate:"required"`
}

// SaveNoteRequest is the request body for saving a note.
type SaveNoteRequest struct {
	OriginalNote  string   `json:"original_note" validate:"required"`
	ProcessedNote string   `json:"processed_note" validate:"required"`
	Tags          []string `json:"tags"`
}

// SaveNoteResponse carries the id of the saved note.
type SaveNoteResponse struct {
	ID string `json:"id" validate:"required"`
}

// HistoryResponse wraps the saved-note history, newest first.
type HistoryResponse struct {
	Notes []models.SavedNote `json:"notes" validate:"required"`
}

// RecallRequest is the request body for memory recall.
type RecallRequest struct {
	Query string `json:"query"`
}

// RecallResponse carries the recall digest and the matched note ids in
// rank order.
type RecallResponse struct {
	Summary string   `json:"summary" validate:"required"`
	Matches []string `json:"matches" validate:"required"`
}

// UploadResponse carries the text extracted from an uploaded file.
type UploadResponse struct {
	Text string `json:"text" validate:"required"`
}
