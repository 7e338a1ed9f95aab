package trainer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/clincase/internal/casedef"
	"github.com/abhisek/clincase/internal/engine"
	"github.com/abhisek/clincase/internal/narrative"
	"github.com/abhisek/clincase/internal/store"
)

// ErrEmptyDecision is returned when a blank decision is submitted. No
// narrative call is made and the session is not mutated.
var ErrEmptyDecision = errors.New("empty decision")

// ErrEmptyQuestion is returned when a blank freeform question is asked.
var ErrEmptyQuestion = errors.New("empty question")

// Trainer orchestrates one learner's case sessions: it resolves stages,
// evaluates decisions, invokes the narrative service, applies outcomes,
// and records the event trail. Session state only advances when the
// narrative round trip succeeds.
type Trainer struct {
	narrator  *narrative.Service
	events    store.EventRepo
	snapshots store.SnapshotRepo
}

// New creates a trainer. events and snapshots may be nil, in which case
// the trainer runs without persistence.
func New(narrator *narrative.Service, events store.EventRepo, snapshots store.SnapshotRepo) *Trainer {
	return &Trainer{narrator: narrator, events: events, snapshots: snapshots}
}

// Result is the observable outcome of one submitted decision.
type Result struct {
	Narrative string
	Stage     engine.StageContext
	Verdict   engine.Verdict
	Outcome   engine.Outcome
}

// StartCase begins a fresh session for the given case. The returned
// session has the opening presentation recorded as History[0].
func (t *Trainer) StartCase(ctx context.Context, caseID string) (*engine.SessionState, error) {
	c, err := casedef.Get(caseID)
	if err != nil {
		return nil, err
	}

	opening, err := t.narrator.Opening(ctx, c)
	if err != nil {
		return nil, err
	}

	s := engine.NewSessionState(c, uuid.NewString())
	s.Begin(opening)

	t.appendSessionEvent(ctx, s, "start")
	return s, nil
}

// SubmitDecision runs one decision through the full pipeline: stage
// resolution, evaluation, narrative generation, then state advance and
// completion detection. On a narrative failure the session is returned
// unchanged and the error is surfaced verbatim.
func (t *Trainer) SubmitDecision(ctx context.Context, s *engine.SessionState, decision string) (*Result, error) {
	decision = strings.TrimSpace(decision)
	if decision == "" {
		return nil, ErrEmptyDecision
	}

	stage := engine.ResolveStage(s.Case, s.CurrentStepIndex)
	verdict := engine.Evaluate(stage.ID, decision)

	text, err := t.narrator.Progress(ctx, narrative.ProgressInput{
		Case:      s.Case,
		Stage:     stage,
		Decision:  decision,
		History:   s.History,
		Decisions: s.Decisions,
		Verdict:   verdict,
	})
	if err != nil {
		return nil, err
	}

	out := engine.Advance(s, stage, decision, text, verdict)

	t.appendEvent(func() error {
		return t.events.AppendDecisionEvent(ctx, store.DecisionEventData{
			SessionID:      s.SessionID,
			CaseID:         s.Case.ID,
			StepIndex:      s.CurrentStepIndex - 1,
			Stage:          string(stage.ID),
			Decision:       decision,
			MatchedOptimal: verdict.MatchesOptimal,
			Terminal:       stage.ID == s.Case.TerminalStage().ID,
		})
	})

	if out.CompletedNow {
		t.recordCredential(ctx, s)
	}

	return &Result{Narrative: text, Stage: stage, Verdict: verdict, Outcome: out}, nil
}

// AskQuestion answers a freeform question about the case. It never
// mutates the session; the caller renders the answer in a side channel.
func (t *Trainer) AskQuestion(ctx context.Context, s *engine.SessionState, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrEmptyQuestion
	}

	stage := engine.ResolveStage(s.Case, s.CurrentStepIndex)
	answer, err := t.narrator.Question(ctx, narrative.QuestionInput{
		Case:      s.Case,
		Question:  question,
		StepIndex: s.CurrentStepIndex,
		StageID:   stage.ID,
		History:   s.History,
		Decisions: s.Decisions,
		Completed: s.Completed,
	})
	if err != nil {
		return "", err
	}

	t.appendEvent(func() error {
		return t.events.AppendQuestionEvent(ctx, store.QuestionEventData{
			SessionID: s.SessionID,
			CaseID:    s.Case.ID,
			StepIndex: s.CurrentStepIndex,
			Question:  question,
		})
	})

	return answer, nil
}

// Restart resets the session to step zero with a fresh opening. The case
// definition and session identity are preserved. A failed opening call
// leaves the old run intact.
func (t *Trainer) Restart(ctx context.Context, s *engine.SessionState) error {
	opening, err := t.narrator.Opening(ctx, s.Case)
	if err != nil {
		return err
	}

	s.Restart()
	s.Begin(opening)

	t.appendSessionEvent(ctx, s, "restart")
	return nil
}

// End records the session's close. State is left as-is so the caller can
// still render the final transcript.
func (t *Trainer) End(ctx context.Context, s *engine.SessionState) {
	t.appendSessionEvent(ctx, s, "end")
}

// recordCredential persists the one-shot credit issuance: a credential
// event plus a refreshed snapshot of the learner's earned credits.
// Advance guarantees this runs at most once per completed case run.
func (t *Trainer) recordCredential(ctx context.Context, s *engine.SessionState) {
	t.appendEvent(func() error {
		return t.events.AppendCredentialEvent(ctx, store.CredentialEventData{
			SessionID:  s.SessionID,
			CaseID:     s.Case.ID,
			CaseTitle:  s.Case.Title,
			Credits:    s.Case.Credits,
			StepsTaken: s.CurrentStepIndex,
		})
	})

	if t.snapshots == nil {
		return
	}
	if err := t.saveSnapshot(ctx, s); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save snapshot: %v\n", err)
	}
}

func (t *Trainer) saveSnapshot(ctx context.Context, s *engine.SessionState) error {
	latest, err := t.snapshots.Latest(ctx)
	if err != nil {
		return err
	}

	var data store.SnapshotData
	if latest != nil {
		data = latest.Data
	}
	if !data.CompletedCase(s.Case.ID) {
		data.Credentials = append(data.Credentials, store.CredentialSummary{
			CaseID:    s.Case.ID,
			CaseTitle: s.Case.Title,
			Credits:   s.Case.Credits,
			EarnedAt:  time.Now(),
		})
	}

	return t.snapshots.Save(ctx, &store.Snapshot{
		Timestamp: time.Now(),
		Data:      data,
	})
}

func (t *Trainer) appendSessionEvent(ctx context.Context, s *engine.SessionState, action string) {
	t.appendEvent(func() error {
		return t.events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:  s.SessionID,
			CaseID:     s.Case.ID,
			Action:     action,
			StepsTaken: s.CurrentStepIndex,
			Completed:  s.Completed,
		})
	})
}

// appendEvent runs a best-effort event append. A failed append must not
// roll back an advanced session, so errors are reported and dropped.
func (t *Trainer) appendEvent(fn func() error) {
	if t.events == nil {
		return
	}
	if err := fn(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record event: %v\n", err)
	}
}
