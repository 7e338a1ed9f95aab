package trainer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/clincase/internal/engine"
	"github.com/abhisek/clincase/internal/llm"
	"github.com/abhisek/clincase/internal/narrative"
	"github.com/abhisek/clincase/internal/store"
)

// recordingEvents captures appended events. The embedded interface is nil;
// only the append methods the trainer calls are implemented.
type recordingEvents struct {
	store.EventRepo
	sessions    []store.SessionEventData
	decisions   []store.DecisionEventData
	questions   []store.QuestionEventData
	credentials []store.CredentialEventData
}

func (r *recordingEvents) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	r.sessions = append(r.sessions, data)
	return nil
}

func (r *recordingEvents) AppendDecisionEvent(_ context.Context, data store.DecisionEventData) error {
	r.decisions = append(r.decisions, data)
	return nil
}

func (r *recordingEvents) AppendQuestionEvent(_ context.Context, data store.QuestionEventData) error {
	r.questions = append(r.questions, data)
	return nil
}

func (r *recordingEvents) AppendCredentialEvent(_ context.Context, data store.CredentialEventData) error {
	r.credentials = append(r.credentials, data)
	return nil
}

func newTestTrainer(events store.EventRepo, texts ...string) *Trainer {
	mock := llm.NewMockProvider()
	for _, text := range texts {
		mock.AddResponse(llm.MockResponse{Content: json.RawMessage(text)})
	}
	return New(narrative.NewService(mock, narrative.DefaultConfig()), events, nil)
}

func checkInvariants(t *testing.T, s *engine.SessionState) {
	t.Helper()
	if len(s.Decisions) != s.CurrentStepIndex {
		t.Fatalf("invariant broken: %d decisions at step %d", len(s.Decisions), s.CurrentStepIndex)
	}
	if s.Started() && len(s.History) != s.CurrentStepIndex+1 {
		t.Fatalf("invariant broken: %d history entries at step %d", len(s.History), s.CurrentStepIndex)
	}
}

func TestStartCase(t *testing.T) {
	events := &recordingEvents{}
	tr := newTestTrainer(events, "A 58-year-old male presents with crushing chest pain.")

	s, err := tr.StartCase(t.Context(), "stemi-001")
	if err != nil {
		t.Fatalf("StartCase: %v", err)
	}

	if s.SessionID == "" {
		t.Error("expected a session ID")
	}
	if !s.Started() {
		t.Fatal("session should have an opening recorded")
	}
	if s.History[0] != "A 58-year-old male presents with crushing chest pain." {
		t.Errorf("unexpected opening: %q", s.History[0])
	}
	if s.CurrentStepIndex != 0 {
		t.Errorf("expected step 0, got %d", s.CurrentStepIndex)
	}
	checkInvariants(t, s)

	if len(events.sessions) != 1 || events.sessions[0].Action != "start" {
		t.Errorf("expected one start event, got %+v", events.sessions)
	}
}

func TestStartCase_UnknownCase(t *testing.T) {
	tr := newTestTrainer(nil)
	if _, err := tr.StartCase(t.Context(), "no-such-case"); err == nil {
		t.Fatal("expected error for unknown case")
	}
}

func TestSubmitDecision_OptimalPath(t *testing.T) {
	events := &recordingEvents{}
	tr := newTestTrainer(events,
		"opening",
		"labs and EKG returned",
		"pain improves, angiography shows occlusion",
		"stent placed, patient stable",
		"excellent outcome, congratulations, credit earned",
	)

	s, err := tr.StartCase(t.Context(), "stemi-001")
	if err != nil {
		t.Fatalf("StartCase: %v", err)
	}

	optimal := []string{
		"Complete Blood Count, Metabolic Panel, and EKG",
		"Administer aspirin and nitroglycerin",
		"Percutaneous Coronary Intervention (PCI) with stent",
		"Initiate dual antiplatelet therapy, high-intensity statin, beta-blocker, and ACE inhibitor",
	}

	for i, decision := range optimal {
		res, err := tr.SubmitDecision(t.Context(), s, decision)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		checkInvariants(t, s)

		last := i == len(optimal)-1
		if res.Outcome.CompletedNow != last {
			t.Errorf("step %d: CompletedNow = %v, want %v", i, res.Outcome.CompletedNow, last)
		}
	}

	if !s.Completed || !s.CredentialIssued {
		t.Fatalf("after optimal path: Completed=%v CredentialIssued=%v", s.Completed, s.CredentialIssued)
	}
	if len(s.History) != 5 {
		t.Errorf("expected 5 history entries, got %d", len(s.History))
	}

	if len(events.decisions) != 4 {
		t.Fatalf("expected 4 decision events, got %d", len(events.decisions))
	}
	if !events.decisions[3].Terminal || !events.decisions[3].MatchedOptimal {
		t.Errorf("final decision event should be terminal and optimal: %+v", events.decisions[3])
	}
	if len(events.credentials) != 1 {
		t.Fatalf("expected exactly one credential event, got %d", len(events.credentials))
	}
	if events.credentials[0].CaseID != "stemi-001" || events.credentials[0].Credits <= 0 {
		t.Errorf("unexpected credential event: %+v", events.credentials[0])
	}
}

func TestSubmitDecision_WrongTerminalThenCorrect(t *testing.T) {
	events := &recordingEvents{}
	tr := newTestTrainer(events,
		"opening",
		"labs", "treated", "stented",
		"that plan is incomplete, reconsider",
		"congratulations, credit earned",
	)

	s, _ := tr.StartCase(t.Context(), "stemi-001")
	for _, d := range []string{
		"Complete Blood Count, Metabolic Panel, and EKG",
		"Administer aspirin and nitroglycerin",
		"Percutaneous Coronary Intervention (PCI) with stent",
	} {
		if _, err := tr.SubmitDecision(t.Context(), s, d); err != nil {
			t.Fatal(err)
		}
	}

	res, err := tr.SubmitDecision(t.Context(), s, "Administer aspirin only and continue previous medications")
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome.CompletedNow || s.Completed {
		t.Fatal("suboptimal terminal decision must not complete the case")
	}
	if s.CurrentStepIndex != 4 {
		t.Errorf("step should advance on a wrong terminal answer, got %d", s.CurrentStepIndex)
	}
	if len(events.credentials) != 0 {
		t.Fatal("no credential should be issued yet")
	}

	res, err = tr.SubmitDecision(t.Context(), s, "Initiate dual antiplatelet therapy, high-intensity statin, beta-blocker, and ACE inhibitor")
	if err != nil {
		t.Fatal(err)
	}
	if !res.Outcome.CompletedNow || !s.Completed || !s.CredentialIssued {
		t.Fatal("correct retry must complete the case")
	}
	if len(events.credentials) != 1 {
		t.Fatalf("expected one credential event, got %d", len(events.credentials))
	}
	checkInvariants(t, s)
}

func TestSubmitDecision_Empty(t *testing.T) {
	tr := newTestTrainer(nil, "opening")
	s, _ := tr.StartCase(t.Context(), "stemi-001")

	_, err := tr.SubmitDecision(t.Context(), s, "   ")
	if !errors.Is(err, ErrEmptyDecision) {
		t.Fatalf("expected ErrEmptyDecision, got %v", err)
	}
	if s.CurrentStepIndex != 0 || len(s.Decisions) != 0 {
		t.Fatal("empty decision must not mutate the session")
	}
}

func TestSubmitDecision_NarratorFailureLeavesStateUnchanged(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("opening")},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	tr := New(narrative.NewService(mock, narrative.DefaultConfig()), nil, nil)

	s, err := tr.StartCase(t.Context(), "stemi-001")
	if err != nil {
		t.Fatal(err)
	}

	_, err = tr.SubmitDecision(t.Context(), s, "Complete Blood Count, Metabolic Panel, and EKG")
	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}

	if s.CurrentStepIndex != 0 || len(s.Decisions) != 0 || len(s.History) != 1 {
		t.Fatal("failed narrative call must not mutate the session")
	}
}

func TestAskQuestion(t *testing.T) {
	events := &recordingEvents{}
	tr := newTestTrainer(events, "opening", "troponin reflects myocardial injury")

	s, _ := tr.StartCase(t.Context(), "stemi-001")

	answer, err := tr.AskQuestion(t.Context(), s, "Why is troponin elevated?")
	if err != nil {
		t.Fatalf("AskQuestion: %v", err)
	}
	if answer == "" {
		t.Fatal("expected an answer")
	}

	if s.CurrentStepIndex != 0 || len(s.Decisions) != 0 || len(s.History) != 1 {
		t.Fatal("questions must not mutate the session")
	}
	if len(events.questions) != 1 || events.questions[0].Question != "Why is troponin elevated?" {
		t.Errorf("expected one question event, got %+v", events.questions)
	}
}

func TestAskQuestion_Empty(t *testing.T) {
	tr := newTestTrainer(nil, "opening")
	s, _ := tr.StartCase(t.Context(), "stemi-001")

	if _, err := tr.AskQuestion(t.Context(), s, ""); !errors.Is(err, ErrEmptyQuestion) {
		t.Fatalf("expected ErrEmptyQuestion, got %v", err)
	}
}

func TestRestart(t *testing.T) {
	events := &recordingEvents{}
	tr := newTestTrainer(events, "opening", "labs", "a fresh opening")

	s, _ := tr.StartCase(t.Context(), "stemi-001")
	if _, err := tr.SubmitDecision(t.Context(), s, "Complete Blood Count, Metabolic Panel, and EKG"); err != nil {
		t.Fatal(err)
	}
	def := s.Case
	id := s.SessionID

	if err := tr.Restart(t.Context(), s); err != nil {
		t.Fatalf("Restart: %v", err)
	}

	if s.CurrentStepIndex != 0 || len(s.Decisions) != 0 {
		t.Fatal("restart must reset progress")
	}
	if s.History[0] != "a fresh opening" {
		t.Errorf("restart should record a fresh opening, got %q", s.History[0])
	}
	if s.Case != def || s.SessionID != id {
		t.Fatal("restart must preserve case definition and session identity")
	}
	checkInvariants(t, s)

	last := events.sessions[len(events.sessions)-1]
	if last.Action != "restart" {
		t.Errorf("expected restart event, got %+v", last)
	}
}

func TestRestart_FailedOpeningKeepsOldRun(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("opening")},
		llm.MockResponse{Content: json.RawMessage("labs")},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	tr := New(narrative.NewService(mock, narrative.DefaultConfig()), nil, nil)

	s, _ := tr.StartCase(t.Context(), "stemi-001")
	if _, err := tr.SubmitDecision(t.Context(), s, "Complete Blood Count, Metabolic Panel, and EKG"); err != nil {
		t.Fatal(err)
	}

	if err := tr.Restart(t.Context(), s); err == nil {
		t.Fatal("expected restart to fail")
	}
	if s.CurrentStepIndex != 1 || len(s.History) != 2 {
		t.Fatal("failed restart must leave the old run intact")
	}
}
