package flow

import (
	"errors"
	"strings"
	"testing"

	"github.com/starford/ansuz/internal/apperr"
)

func TestLookup_AllKnownFlows(t *testing.T) {
	reg := NewRegistry()
	ids := reg.IDs()
	if len(ids) != 16 {
		t.Fatalf("registered flows = %d, want 16", len(ids))
	}
	for _, id := range ids {
		tpl, err := reg.Lookup(id)
		if err != nil {
			t.Errorf("Lookup(%s): %v", id, err)
		}
		if tpl == "" {
			t.Errorf("Lookup(%s) returned empty template", id)
		}
	}
}

func TestLookup_UnknownFlow(t *testing.T) {
	reg := NewRegistry()
	for _, id := range []ID{"", "translate", "SUMMARIZE", "summarize "} {
		if _, err := reg.Lookup(id); !errors.Is(err, apperr.ErrUnknownFlow) {
			t.Errorf("Lookup(%q) error = %v, want ErrUnknownFlow", id, err)
		}
	}
}

func TestResolve_SubstitutesSlots(t *testing.T) {
	got := Resolve("Note 1: {{note1}}\nNote 2: {{note2}}", Inputs{Note1: "alpha", Note2: "beta"})
	want := "Note 1: alpha\nNote 2: beta"
	if got != want {
		t.Errorf("Resolve = %q, want %q", got, want)
	}
}

func TestResolve_AbsentSlotsBecomeEmpty(t *testing.T) {
	reg := NewRegistry()
	for _, id := range reg.IDs() {
		tpl, _ := reg.Lookup(id)
		got := Resolve(tpl, Inputs{})
		if strings.Contains(got, "{{") || strings.Contains(got, "}}") {
			t.Errorf("flow %s: unresolved placeholder in %q", id, got)
		}
	}
}

func TestResolve_Deterministic(t *testing.T) {
	in := Inputs{UserNote: "Water boils. Steam rises.", Query: "steam"}
	tpl := "Summarize this note clearly and simply:\n{{user_note}} {{query}}"
	if Resolve(tpl, in) != Resolve(tpl, in) {
		t.Error("Resolve is not deterministic for identical inputs")
	}
}

func TestResolve_ValuesAreNotRescanned(t *testing.T) {
	got := Resolve("{{user_note}}", Inputs{UserNote: "literal {{query}} stays", Query: "boom"})
	if got != "literal {{query}} stays" {
		t.Errorf("substituted value was re-scanned: %q", got)
	}
}

func TestEngine_Execute(t *testing.T) {
	eng := NewEngine(NewRegistry(), Heuristic{})

	out, err := eng.Execute(BulletPoints, Inputs{UserNote: "First idea. Second idea. Third idea."})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	want := "- First idea\n- Second idea\n- Third idea"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestEngine_UnknownFlow(t *testing.T) {
	eng := NewEngine(NewRegistry(), Heuristic{})
	if _, err := eng.Execute("nope", Inputs{}); !errors.Is(err, apperr.ErrUnknownFlow) {
		t.Errorf("error = %v, want ErrUnknownFlow", err)
	}
}

func TestEngine_SwappableTransformer(t *testing.T) {
	eng := NewEngine(NewRegistry(), transformerFunc(func(header, body string) string {
		return "header=" + header
	}))
	out, err := eng.Execute(StudyPlan, Inputs{UserSyllabus: "algebra"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.HasPrefix(out, "header=Create a 7-day and 30-day study plan") {
		t.Errorf("custom transformer not applied: %q", out)
	}
}

type transformerFunc func(header, body string) string

func (f transformerFunc) Transform(header, body string) string { return f(header, body) }
