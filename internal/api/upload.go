package api

import (
	"io"
	"net/http"

	"github.com/starford/ansuz/internal/extract"
)

// UploadHandler accepts file uploads and returns the extracted text.
type UploadHandler struct {
	maxBytes int64
	maxChars int
}

// NewUploadHandler creates a handler with the given upload bounds.
func NewUploadHandler(maxBytes int64, maxChars int) *UploadHandler {
	if maxBytes <= 0 {
		maxBytes = 25 << 20
	}
	return &UploadHandler{maxBytes: maxBytes, maxChars: maxChars}
}

// UploadPDF handles POST /api/uploads/pdf (multipart/form-data, field "file").
//
//	@Summary		Extract text from an uploaded PDF
//	@Tags			uploads
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"File to extract"
//	@Success		200		{object}	UploadResponse
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/uploads/pdf [post]
func (h *UploadHandler) UploadPDF(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r)
}

// UploadText handles POST /api/uploads/text (multipart/form-data, field "file").
//
//	@Summary		Extract text from an uploaded text file
//	@Tags			uploads
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"File to extract"
//	@Success		200		{object}	UploadResponse
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/uploads/text [post]
func (h *UploadHandler) UploadText(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r)
}

// handle reads the multipart "file" field and returns its decoded text.
// Both upload routes share this: extraction is the same best-effort UTF-8
// decode regardless of the claimed file kind.
func (h *UploadHandler) handle(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("file too large or invalid multipart"))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("missing 'file' field in multipart form"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("failed to read file"))
		return
	}

	writeJSON(w, http.StatusOK, UploadResponse{Text: extract.Text(data, h.maxChars)})
}
