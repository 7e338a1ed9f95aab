package narrative

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/clincase/internal/casedef"
	"github.com/abhisek/clincase/internal/llm"
)

// Service turns assembled case context into prose via the LLM provider.
// It is the single collaborator boundary: callers hand it state, it hands
// back narrative text, and any provider failure surfaces as an error
// without touching session state.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a narrative generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Opening generates the initial clinical presentation for a case.
func (s *Service) Opening(ctx context.Context, c *casedef.CaseDefinition) (string, error) {
	ctx = llm.WithPurpose(ctx, "opening")
	text, err := s.generate(ctx, buildOpeningMessage(c))
	if err != nil {
		return "", fmt.Errorf("opening narrative: %w", err)
	}
	return text, nil
}

// Progress narrates the outcome of one submitted decision.
func (s *Service) Progress(ctx context.Context, in ProgressInput) (string, error) {
	ctx = llm.WithPurpose(ctx, "progress")
	text, err := s.generate(ctx, buildProgressMessage(in))
	if err != nil {
		return "", fmt.Errorf("progress narrative: %w", err)
	}
	return text, nil
}

// Question answers a freeform learner question about the case.
func (s *Service) Question(ctx context.Context, in QuestionInput) (string, error) {
	ctx = llm.WithPurpose(ctx, "question")
	text, err := s.generate(ctx, buildQuestionMessage(in))
	if err != nil {
		return "", fmt.Errorf("question answer: %w", err)
	}
	return text, nil
}

func (s *Service) generate(ctx context.Context, userMsg string) (string, error) {
	req := llm.Request{
		System: educatorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(string(resp.Content))
	if text == "" {
		return "", &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("empty narrative")}
	}
	return text, nil
}
