package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// maxErrorEchoChars bounds how much of an underlying error is echoed to clients.
const maxErrorEchoChars = 200

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode failed", slog.String("error", err.Error()))
	}
}

type errResponse struct {
	Error string `json:"error" validate:"required"`
}

func errorBody(msg string) errResponse {
	return errResponse{Error: msg}
}

// serverError writes a 500 echoing the underlying error text, truncated.
func serverError(w http.ResponseWriter, err error) {
	msg := err.Error()
	if r := []rune(msg); len(r) > maxErrorEchoChars {
		msg = string(r[:maxErrorEchoChars])
	}
	writeJSON(w, http.StatusInternalServerError, errorBody(msg))
}
