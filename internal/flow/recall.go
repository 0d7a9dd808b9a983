package flow

import (
	"sort"
	"strings"

	"github.com/starford/ansuz/internal/models"
)

const (
	maxRecallResults   = 5
	digestPreviewRunes = 80
)

// Match pairs a saved note with its relevance score.
type Match struct {
	Note  models.SavedNote
	Score int
}

// RecallResult is the ranked outcome of a memory-recall query.
type RecallResult struct {
	Matches []Match
	Digest  string
}

// Rank scores candidate notes against query by counting case-insensitive
// non-overlapping occurrences of the query in the note text, then returns
// the top matches in descending score order. The sort is stable: tied
// notes keep their input order. An empty query or empty candidate set
// yields an empty result.
func Rank(notes []models.SavedNote, query string) RecallResult {
	if query == "" || len(notes) == 0 {
		return RecallResult{}
	}

	q := strings.ToLower(query)
	matches := make([]Match, len(notes))
	for i, n := range notes {
		text := strings.ToLower(n.OriginalNote + " " + n.ProcessedNote)
		matches[i] = Match{Note: n, Score: strings.Count(text, q)}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > maxRecallResults {
		matches = matches[:maxRecallResults]
	}

	lines := make([]string, len(matches))
	for i, m := range matches {
		preview := m.Note.ProcessedNote
		if preview == "" {
			preview = m.Note.OriginalNote
		}
		if r := []rune(preview); len(r) > digestPreviewRunes {
			preview = string(r[:digestPreviewRunes])
		}
		// The ellipsis is appended whether or not the preview was
		// actually truncated.
		lines[i] = "- " + preview + "..."
	}

	return RecallResult{Matches: matches, Digest: strings.Join(lines, "\n")}
}
