// Package models defines the domain types for Ansuz.
package models

import "time"

// SavedNote is an immutable saved note: the user's original text, the
// flow-processed derivative, and any tags supplied at save time.
type SavedNote struct {
	ID            string    `json:"id"`
	OriginalNote  string    `json:"original_note"`
	ProcessedNote string    `json:"processed_note"`
	Tags          []string  `json:"tags"`
	Timestamp     time.Time `json:"timestamp"`
}
