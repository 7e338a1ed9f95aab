package engine

import (
	"testing"

	"github.com/abhisek/clincase/internal/casedef"
)

func testCase(t *testing.T) *casedef.CaseDefinition {
	t.Helper()
	c, err := casedef.Get("stemi-001")
	if err != nil {
		t.Fatalf("load seed case: %v", err)
	}
	return c
}

func TestResolveStage_WithinSequence(t *testing.T) {
	c := testCase(t)
	for i, want := range c.Stages {
		got := ResolveStage(c, i)
		if got.ID != want.ID {
			t.Errorf("step %d: got stage %s, want %s", i, got.ID, want.ID)
		}
		if got.Header != want.Header {
			t.Errorf("step %d: got header %q, want %q", i, got.Header, want.Header)
		}
		if got.Options != want.Options {
			t.Errorf("step %d: options differ from spec", i)
		}
		if got.IsTerminal != want.IsTerminal {
			t.Errorf("step %d: IsTerminal = %v, want %v", i, got.IsTerminal, want.IsTerminal)
		}
		if got.Extra {
			t.Errorf("step %d: in-sequence stage marked extra", i)
		}
	}
}

func TestResolveStage_BeyondSequence(t *testing.T) {
	c := testCase(t)
	for _, idx := range []int{len(c.Stages), len(c.Stages) + 1, 100} {
		got := ResolveStage(c, idx)
		if !got.Extra {
			t.Errorf("step %d: expected synthetic extra stage", idx)
		}
		if got.IsTerminal {
			t.Errorf("step %d: extra stage must never be terminal", idx)
		}
		if got.ID != casedef.StagePostIntervention {
			t.Errorf("step %d: extra stage should carry the last stage ID, got %s", idx, got.ID)
		}
		if got.Header != "Decision Point" {
			t.Errorf("step %d: got header %q", idx, got.Header)
		}
		for j, opt := range got.Options {
			if opt == "" {
				t.Errorf("step %d: fallback option %d is empty", idx, j)
			}
		}
	}
}
