// Package flow implements the deterministic flow engine: a template
// registry, placeholder resolution, heuristic text transforms, and
// memory-recall ranking. Every operation is pure and safe for
// concurrent use.
package flow

import (
	"fmt"
	"sort"
	"strings"

	"github.com/starford/ansuz/internal/apperr"
)

// ID identifies a supported flow.
type ID string

// Supported flows.
const (
	Summarize         ID = "summarize"
	Rewrite           ID = "rewrite"
	BulletPoints      ID = "bullet_points"
	ShortVersion      ID = "short_version"
	ELI5              ID = "eli5"
	Flashcards        ID = "flashcards"
	MCQs              ID = "mcqs"
	ShortQuestions    ID = "short_questions"
	ChapterSummary    ID = "chapter_summary"
	Mindmap           ID = "mindmap"
	SmartTags         ID = "smart_tags"
	StudyPlan         ID = "study_plan"
	CompareNotes      ID = "compare_notes"
	VoiceCleanup      ID = "voice_cleanup"
	PDFExtractSummary ID = "pdf_extract_summary"
	MemoryRecall      ID = "memory_recall"
)

// defaultTemplates maps each flow to its instruction template. The first
// line of a resolved template is the header the transformer dispatches on,
// so template wording and matcher strings must stay in lockstep.
var defaultTemplates = map[ID]string{
	Summarize:         "Summarize this note clearly and simply:\n{{user_note}}",
	Rewrite:           "Rewrite and improve this text. Make it clean, clear, and high quality:\n{{user_note}}",
	BulletPoints:      "Turn this into clean bullet points:\n{{user_note}}",
	ShortVersion:      "Create a short and crisp version of this:\n{{user_note}}",
	ELI5:              "Explain the following note like I am 5 years old:\n{{user_note}}",
	Flashcards:        "Create flashcards (term : definition) from this text:\n{{user_note}}",
	MCQs:              "Create 5 MCQs with correct answers from this text:\n{{user_note}}",
	ShortQuestions:    "Create 5 short answer questions with answers from this text:\n{{user_note}}",
	ChapterSummary:    "Split this note into chapters/sections and summarize each one:\n{{user_note}}",
	Mindmap:           "Convert this note into a hierarchical mindmap:\n\nTopic\n\nSubtopic\n\nPoints\nText: {{user_note}}",
	SmartTags:         "Generate 3–6 topic tags for this note:\n{{user_note}}",
	StudyPlan:         "Create a 7-day and 30-day study plan for the following syllabus/topic:\n{{user_syllabus}}",
	CompareNotes:      "Compare these two notes and list similarities, differences, and key insights:\nNote 1: {{note1}}\nNote 2: {{note2}}",
	VoiceCleanup:      "Clean and format this speech transcript. Remove filler words.\nTranscript: {{voice_text}}",
	PDFExtractSummary: "Extract main ideas and important points from this PDF text:\n{{pdf_text}}",
	MemoryRecall:      "From the saved notes, find the notes most related to: {{query}}\nSummarize the findings in simple language.",
}

// Registry is the immutable flow-id → template mapping. Construct it once
// at startup and share it by reference; it is never mutated afterwards.
type Registry struct {
	templates map[ID]string
}

// NewRegistry builds a registry with the default templates.
func NewRegistry() *Registry {
	templates := make(map[ID]string, len(defaultTemplates))
	for id, tpl := range defaultTemplates {
		templates[id] = tpl
	}
	return &Registry{templates: templates}
}

// Lookup returns the template for id, or apperr.ErrUnknownFlow.
func (r *Registry) Lookup(id ID) (string, error) {
	tpl, ok := r.templates[id]
	if !ok {
		return "", fmt.Errorf("%w: %s", apperr.ErrUnknownFlow, id)
	}
	return tpl, nil
}

// IDs returns all registered flow ids in lexical order.
func (r *Registry) IDs() []ID {
	out := make([]ID, 0, len(r.templates))
	for id := range r.templates {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Inputs holds the optional named text slots a template may reference.
// Unset slots resolve to empty strings.
type Inputs struct {
	UserNote     string
	UserSyllabus string
	Note1        string
	Note2        string
	VoiceText    string
	PDFText      string
	Query        string
}

// Resolve substitutes every slot placeholder in the template with the
// corresponding input value. Substituted values are literal text: the
// single-pass replacer never re-scans them for further placeholders.
func Resolve(template string, in Inputs) string {
	r := strings.NewReplacer(
		"{{user_note}}", in.UserNote,
		"{{user_syllabus}}", in.UserSyllabus,
		"{{note1}}", in.Note1,
		"{{note2}}", in.Note2,
		"{{voice_text}}", in.VoiceText,
		"{{pdf_text}}", in.PDFText,
		"{{query}}", in.Query,
	)
	return r.Replace(template)
}
