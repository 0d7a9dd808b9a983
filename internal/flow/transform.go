package flow

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Transformer turns a classification header and payload body into output
// text. The default implementation is a deterministic heuristic; a real
// generative backend can replace it without touching the registry or
// resolver.
type Transformer interface {
	Transform(header, body string) string
}

// Heuristic is the dependency-free rule-based Transformer.
type Heuristic struct{}

// rule pairs a lowercase header substring with the transform it selects.
type rule struct {
	match string
	apply func(body string) string
}

// rules are tried in order; the first matcher contained in the lowercased
// header wins. No match falls through to the body verbatim.
var rules = []rule{
	{"bullet points", bulletList("- ")},
	{"short and crisp", shortCrisp},
	{"explain the following note like i am 5", explainLikeFive},
	{"flashcards", flashcardList},
	{"mcqs", mcqList},
	{"short answer questions", shortQuestionList},
	{"chapters/sections", chapterList},
	{"mindmap", mindmapSkeleton},
	{"generate 3–6 topic tags", topicTags},
	{"study plan", fixedText(studyPlanText)},
	{"compare these two notes", fixedText("Similarities: ...\nDifferences: ...\nKey insights: ...")},
	{"clean and format this speech transcript", stripFillers},
	{"extract main ideas", bulletList("• ")},
	{"summarize this note", summaryPrefix},
	{"rewrite and improve", rewriteText},
}

// Transform applies the first matching rule to body.
func (Heuristic) Transform(header, body string) string {
	h := strings.ToLower(header)
	for _, r := range rules {
		if strings.Contains(h, r.match) {
			return r.apply(body)
		}
	}
	return body
}

// SplitInstruction separates a resolved instruction into its header
// (classification key) and body (payload). Lines are trimmed and empty
// lines dropped. A single-line instruction uses that line as both header
// and body.
func SplitInstruction(instruction string) (header, body string) {
	var lines []string
	for _, l := range strings.Split(instruction, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	switch len(lines) {
	case 0:
		return "", ""
	case 1:
		return lines[0], lines[0]
	default:
		return lines[0], strings.Join(lines[1:], "\n")
	}
}

// segments splits body on periods into trimmed, non-empty candidates.
func segments(body string) []string {
	var out []string
	for _, s := range strings.Split(body, ".") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// truncateRunes cuts s to at most n runes, appending an ellipsis when
// anything was dropped.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}

func bulletList(prefix string) func(string) string {
	return func(body string) string {
		segs := segments(body)
		if len(segs) == 0 {
			return body
		}
		out := make([]string, len(segs))
		for i, s := range segs {
			out[i] = prefix + s
		}
		return strings.Join(out, "\n")
	}
}

func shortCrisp(body string) string {
	return strings.TrimSpace(truncateRunes(body, 220))
}

func explainLikeFive(body string) string {
	body = strings.ReplaceAll(body, " therefore", " so")
	body = strings.ReplaceAll(body, " thus", " so")
	return "Imagine you are 5: " + body
}

func flashcardList(body string) string {
	segs := segments(body)
	if len(segs) == 0 {
		return body
	}
	if len(segs) > 8 {
		segs = segs[:8]
	}
	out := make([]string, len(segs))
	for i, s := range segs {
		// Term and definition are the same text: a structural stub, not
		// real term extraction.
		out[i] = fmt.Sprintf("Term %d: %s\nDefinition: %s", i+1, s, s)
	}
	return strings.Join(out, "\n")
}

func mcqList(body string) string {
	segs := segments(body)
	if len(segs) == 0 {
		return body
	}
	if len(segs) > 5 {
		segs = segs[:5]
	}
	var out []string
	for i, q := range segs {
		out = append(out,
			fmt.Sprintf("Q%d. %s?", i+1, q),
			"A) Option 1",
			"B) Option 2",
			"C) Option 3",
			"D) Option 4",
			"Answer: A",
		)
	}
	return strings.Join(out, "\n")
}

func shortQuestionList(body string) string {
	segs := segments(body)
	if len(segs) == 0 {
		return body
	}
	if len(segs) > 5 {
		segs = segs[:5]
	}
	out := make([]string, len(segs))
	for i, q := range segs {
		out[i] = fmt.Sprintf("Q%d. %s?\nAns: ...", i+1, q)
	}
	return strings.Join(out, "\n")
}

func chapterList(body string) string {
	segs := segments(body)
	if len(segs) == 0 {
		return body
	}
	if len(segs) > 6 {
		segs = segs[:6]
	}
	out := make([]string, len(segs))
	for i, s := range segs {
		out[i] = fmt.Sprintf("Chapter %d: %s\nSummary: %s", i+1, s, s)
	}
	return strings.Join(out, "\n\n")
}

func mindmapSkeleton(body string) string {
	const tree = "Topic\n  └─ Subtopic 1\n      └─ Point A\n  └─ Subtopic 2\n      └─ Point B\n\n"
	r := []rune(body)
	if len(r) > 200 {
		body = string(r[:200])
	}
	return tree + body
}

func topicTags(body string) string {
	var tags []string
	seen := make(map[string]struct{})
	for _, w := range strings.Fields(body) {
		w = strings.ToLower(strings.Trim(w, `,.:;!"`))
		if utf8.RuneCountInString(w) <= 4 {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		tags = append(tags, w)
		if len(tags) == 6 {
			break
		}
	}
	if len(tags) == 0 {
		return "general, study"
	}
	return strings.Join(tags, ", ")
}

const studyPlanText = "7-Day Plan:\n- Day 1: Read basics\n- Day 2: Key terms\n- Day 3: Practice\n- Day 4: Review\n- Day 5: Quiz\n- Day 6: Revise\n- Day 7: Mock test\n\n" +
	"30-Day Plan:\n- Weeks 1-3: Deep dive and exercises\n- Week 4: Consolidation, mocks, revision"

func fixedText(s string) func(string) string {
	return func(string) string { return s }
}

func stripFillers(body string) string {
	// Sequential passes: removing one filler may expose the next.
	body = strings.ReplaceAll(body, " uh ", " ")
	body = strings.ReplaceAll(body, " um ", " ")
	body = strings.ReplaceAll(body, " kinda ", " ")
	return body
}

func summaryPrefix(body string) string {
	return "Summary: " + truncateRunes(body, 400)
}

func rewriteText(body string) string {
	body = strings.ReplaceAll(body, "very", "extremely")
	body = strings.ReplaceAll(body, "good", "excellent")
	return strings.TrimSpace(body)
}
