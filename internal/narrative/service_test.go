package narrative

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/clincase/internal/llm"
)

func TestService_Opening(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("A 58-year-old male presents to the emergency department with crushing chest pain."),
	})
	svc := NewService(mock, DefaultConfig())

	text, err := svc.Opening(t.Context(), testCase(t))
	if err != nil {
		t.Fatalf("Opening: %v", err)
	}
	if !strings.Contains(text, "58-year-old male") {
		t.Errorf("unexpected opening text: %q", text)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.System != educatorSystemPrompt {
		t.Error("request missing educator system prompt")
	}
	if req.Schema != nil {
		t.Error("narrative requests should not set a schema")
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != llm.RoleUser {
		t.Fatalf("expected single user message, got %+v", req.Messages)
	}
}

func TestService_Progress(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("The patient's pain improves after aspirin and nitroglycerin."),
	})
	svc := NewService(mock, DefaultConfig())

	in := progressInput(t, 1, "Administer aspirin and nitroglycerin")
	text, err := svc.Progress(t.Context(), in)
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	if text == "" {
		t.Fatal("expected non-empty narrative")
	}

	req := mock.Calls[0]
	if !strings.Contains(req.Messages[0].Content, `"Administer aspirin and nitroglycerin"`) {
		t.Error("user message missing the submitted decision")
	}
}

func TestService_Question(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("Troponin rises when myocardial cells are injured."),
	})
	svc := NewService(mock, DefaultConfig())

	in := QuestionInput{
		Case:     testCase(t),
		Question: "Why is troponin elevated?",
	}
	text, err := svc.Question(t.Context(), in)
	if err != nil {
		t.Fatalf("Question: %v", err)
	}
	if !strings.Contains(text, "Troponin") {
		t.Errorf("unexpected answer text: %q", text)
	}
}

func TestService_ProviderErrorSurfaces(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Progress(t.Context(), progressInput(t, 0, "Complete Blood Count, Metabolic Panel, and EKG"))
	if err == nil {
		t.Fatal("expected error from unavailable provider")
	}
	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Errorf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestService_EmptyResponseRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("   "),
	})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Opening(t.Context(), testCase(t))
	if err == nil {
		t.Fatal("expected error for empty narrative")
	}
	var invalid *llm.ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Errorf("expected ErrInvalidResponse, got %v", err)
	}
}
