package caseauthor

import (
	"context"

	"github.com/abhisek/clincase/internal/casedef"
)

// AuthorInput describes the case to author.
type AuthorInput struct {
	// Specialty is the medical specialty, e.g. "Cardiology".
	Specialty string

	// Topic is the clinical scenario to build the case around,
	// e.g. "acute ischemic stroke".
	Topic string

	// Difficulty is the target difficulty label, e.g. "Moderate".
	Difficulty string

	// Credits is the credit value the case awards on completion.
	Credits float64

	// ExistingTitles lists cases already in the catalog, so the author
	// avoids duplicating them.
	ExistingTitles []string
}

// Author produces complete case definitions using an LLM provider.
type Author interface {
	// Author produces a single validated case definition. All configured
	// validators run before returning.
	Author(ctx context.Context, input AuthorInput) (*casedef.CaseDefinition, error)
}
