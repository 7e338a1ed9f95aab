package casedef

import (
	"strings"
	"testing"
)

func validCase() *CaseDefinition {
	c := cardiacCase()
	c.ID = "test-case"
	return c
}

func TestValidate_SeedCatalog(t *testing.T) {
	for _, c := range seedCases() {
		if err := Validate(c); err != nil {
			t.Fatalf("seed case %q failed validation: %v", c.ID, err)
		}
	}
}

func TestValidate_EmptyID(t *testing.T) {
	c := validCase()
	c.ID = ""
	err := Validate(c)
	if err == nil {
		t.Fatal("expected error for empty case ID")
	}
	if !strings.Contains(err.Error(), "case ID") {
		t.Errorf("error should mention case ID, got: %v", err)
	}
}

func TestValidate_MissingReferenceText(t *testing.T) {
	c := validCase()
	c.ReferenceText = "   \n"
	if err := Validate(c); err == nil {
		t.Fatal("expected error for blank reference text")
	}
}

func TestValidate_DuplicateOptions(t *testing.T) {
	c := validCase()
	c.Stages[0].Options[1] = c.Stages[0].Options[0]
	err := Validate(c)
	if err == nil {
		t.Fatal("expected error for duplicate options")
	}
	if !strings.Contains(err.Error(), "duplicate option") {
		t.Errorf("error should mention duplicate option, got: %v", err)
	}
}

func TestValidate_OptimalMustBeListed(t *testing.T) {
	c := validCase()
	c.Stages[2].Optimal = "Watchful waiting"
	err := Validate(c)
	if err == nil {
		t.Fatal("expected error for optimal option not among options")
	}
	if !strings.Contains(err.Error(), "not among the options") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_TerminalPlacement(t *testing.T) {
	c := validCase()
	c.Stages[0].IsTerminal = true
	if err := Validate(c); err == nil {
		t.Fatal("expected error when a non-final stage is terminal")
	}

	c = validCase()
	c.Stages[len(c.Stages)-1].IsTerminal = false
	if err := Validate(c); err == nil {
		t.Fatal("expected error when the final stage is not terminal")
	}
}

func TestValidate_UnknownStageID(t *testing.T) {
	c := validCase()
	c.Stages[1].ID = "triage"
	if err := Validate(c); err == nil {
		t.Fatal("expected error for unknown stage ID")
	}
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	c := validCase()
	c.Title = ""
	c.Credits = 0
	c.Stages[0].Header = ""
	err := Validate(c)
	if err == nil {
		t.Fatal("expected combined validation error")
	}
	for _, want := range []string{"title", "credits", "header"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("combined error should mention %q, got: %v", want, err)
		}
	}
}
