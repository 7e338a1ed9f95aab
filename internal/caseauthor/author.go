package caseauthor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/clincase/internal/casedef"
	"github.com/abhisek/clincase/internal/llm"
)

// Config controls the behavior of the LLMAuthor.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// authored case. They execute in order; the first failure stops
	// the pipeline.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response. Authored
	// cases carry a full reference narrative, so the budget is large.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with the standard validator chain and
// recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&DefinitionValidator{},
			&CompletableValidator{},
		},
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}

// LLMAuthor implements Author using the LLM provider.
type LLMAuthor struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMAuthor with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMAuthor {
	return &LLMAuthor{provider: provider, config: cfg}
}

// caseOutput is the raw LLM response before validation.
type caseOutput struct {
	Title         string        `json:"title"`
	ReferenceText string        `json:"reference_text"`
	Stages        []stageOutput `json:"stages"`
}

type stageOutput struct {
	StageID string   `json:"stage_id"`
	Header  string   `json:"header"`
	Options []string `json:"options"`
	Optimal string   `json:"optimal"`
}

// Author produces a single validated case definition.
func (a *LLMAuthor) Author(ctx context.Context, input AuthorInput) (*casedef.CaseDefinition, error) {
	ctx = llm.WithPurpose(ctx, "case-author")

	req := llm.Request{
		System: authorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      CaseSchema,
		MaxTokens:   a.config.MaxTokens,
		Temperature: a.config.Temperature,
	}

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("case authoring: %w", err)
	}

	var raw caseOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse authored case: %w", err)
	}

	c := &casedef.CaseDefinition{
		ID:            caseID(raw.Title),
		Title:         raw.Title,
		Specialty:     input.Specialty,
		Difficulty:    input.Difficulty,
		Credits:       input.Credits,
		ReferenceText: raw.ReferenceText,
	}
	for i, st := range raw.Stages {
		spec := casedef.StageSpec{
			ID:         casedef.StageID(st.StageID),
			Header:     st.Header,
			Optimal:    st.Optimal,
			IsTerminal: i == len(raw.Stages)-1,
		}
		if len(st.Options) != casedef.OptionCount {
			return nil, fmt.Errorf("authored stage %q has %d options, want %d", st.StageID, len(st.Options), casedef.OptionCount)
		}
		copy(spec.Options[:], st.Options)
		c.Stages = append(c.Stages, spec)
	}

	for _, v := range a.config.Validators {
		if verr := v.Validate(c, input); verr != nil {
			return nil, verr
		}
	}

	return c, nil
}

// caseID derives a stable-looking catalog ID from the case title plus a
// short random suffix to avoid collisions between similar titles.
func caseID(title string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == ' ', r == '-', r == '_':
			return '-'
		default:
			return -1
		}
	}, title)
	slug = strings.Trim(slug, "-")
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	if len(slug) > 40 {
		slug = slug[:40]
	}
	return slug + "-" + uuid.NewString()[:8]
}
