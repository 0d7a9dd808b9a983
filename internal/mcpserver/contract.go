package mcpserver

// FlowCatalog documents the supported flows and the input slot each one
// reads, for LLM consumers of the MCP tools.
const FlowCatalog = `# Ansuz Flow Catalog

Each flow reads one or two named input slots and returns derived text.
Slots the flow does not read are ignored; absent slots are treated as
empty text. All flows are deterministic: identical inputs always produce
identical output.

| Flow | Input slot(s) | Output |
|---|---|---|
| summarize | user_note | prefixed summary, capped at 400 characters |
| rewrite | user_note | cleaned-up rewrite of the text |
| bullet_points | user_note | one bullet per sentence |
| short_version | user_note | the first 220 characters |
| eli5 | user_note | simplified explanation |
| flashcards | user_note | up to 8 term/definition pairs |
| mcqs | user_note | up to 5 multiple-choice questions |
| short_questions | user_note | up to 5 short-answer questions |
| chapter_summary | user_note | up to 6 chapter/summary blocks |
| mindmap | user_note | two-level topic tree plus excerpt |
| smart_tags | user_note | 3-6 comma-separated topic tags |
| study_plan | user_syllabus | 7-day and 30-day plan skeleton |
| compare_notes | note1, note2 | similarities/differences/insights skeleton |
| voice_cleanup | voice_text | transcript with filler words removed |
| pdf_extract_summary | pdf_text | one bullet per main idea |
| memory_recall | query | recall instruction (use recall_notes for ranking against saved notes) |

## Usage notes

1. Pass only the slot(s) the flow reads; other slots are ignored.
2. Unknown flow ids are rejected; call ` + "`list_flows`" + ` first when unsure.
3. ` + "`recall_notes`" + ` searches saved notes directly and returns the ranked
   matches with a digest; the ` + "`memory_recall`" + ` flow only formats the query.
4. Save results worth keeping with ` + "`save_note`" + ` so ` + "`recall_notes`" + `
   can find them later.
`
