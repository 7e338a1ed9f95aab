package casedef

import "testing"

func TestRegistry_GetSeedCase(t *testing.T) {
	c, err := Get("stemi-001")
	if err != nil {
		t.Fatalf("Get(stemi-001): %v", err)
	}
	if c.Specialty != "Cardiology" {
		t.Errorf("expected Cardiology, got %q", c.Specialty)
	}
	if c.StageCount() != 4 {
		t.Errorf("expected 4 stages, got %d", c.StageCount())
	}
	if !c.TerminalStage().IsTerminal {
		t.Error("terminal stage should report IsTerminal")
	}
	if c.TerminalStage().ID != StagePostIntervention {
		t.Errorf("terminal stage should be post_intervention, got %s", c.TerminalStage().ID)
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	if _, err := Get("nope"); err == nil {
		t.Fatal("expected error for unknown case ID")
	}
}

func TestRegistry_AllOrdered(t *testing.T) {
	cases := All()
	if len(cases) == 0 {
		t.Fatal("registry should not be empty")
	}
	for i := 1; i < len(cases); i++ {
		if cases[i-1].ID >= cases[i].ID {
			t.Errorf("cases not ordered by ID: %q before %q", cases[i-1].ID, cases[i].ID)
		}
	}
}

func TestBuildRegistry_RejectsDuplicates(t *testing.T) {
	a := validCase()
	b := validCase()
	if _, err := buildRegistry([]*CaseDefinition{a, b}); err == nil {
		t.Fatal("expected duplicate case ID error")
	}
}
