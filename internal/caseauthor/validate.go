package caseauthor

import (
	"fmt"

	"github.com/abhisek/clincase/internal/casedef"
	"github.com/abhisek/clincase/internal/engine"
)

// Validator checks an authored case definition for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator, e.g.
	// "definition", "completable".
	Name() string

	// Validate checks the case and returns nil if it passes.
	Validate(c *casedef.CaseDefinition, input AuthorInput) *ValidationError
}

// ValidationError describes why an authored case failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// DefinitionValidator runs the casedef structural checks: non-empty
// fields, known stage IDs, distinct options, optimal listed among them,
// terminal flag only on the final stage.
type DefinitionValidator struct{}

func (v *DefinitionValidator) Name() string { return "definition" }

func (v *DefinitionValidator) Validate(c *casedef.CaseDefinition, _ AuthorInput) *ValidationError {
	if err := casedef.Validate(c); err != nil {
		return &ValidationError{
			Validator: v.Name(),
			Message:   err.Error(),
			Retryable: true,
		}
	}
	return nil
}

// CompletableValidator checks that the terminal stage's optimal option
// actually satisfies the engine's correctness predicate. A case that
// fails this can never be completed, no matter what the learner picks.
type CompletableValidator struct{}

func (v *CompletableValidator) Name() string { return "completable" }

func (v *CompletableValidator) Validate(c *casedef.CaseDefinition, _ AuthorInput) *ValidationError {
	if len(c.Stages) == 0 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "case has no stages",
			Retryable: true,
		}
	}
	terminal := c.TerminalStage()
	if !engine.Evaluate(terminal.ID, terminal.Optimal).MatchesOptimal {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("terminal optimal %q does not satisfy the stage's correctness predicate", terminal.Optimal),
			Retryable: true,
		}
	}
	return nil
}
