package engine

import (
	"time"

	"github.com/abhisek/clincase/internal/casedef"
)

// SessionState tracks one learner's run through a single case.
//
// The state is exclusively owned by the active turn: every mutation goes
// through Begin, Advance, or Restart, and the UI layer must not submit a
// new decision while a narrative generation is outstanding.
//
// Invariants held between submissions:
//   - len(Decisions) == CurrentStepIndex
//   - len(History) == CurrentStepIndex + 1 once the case has started
//     (History[0] is the opening presentation)
//   - Completed implies the last decision satisfied the terminal stage's
//     correctness predicate
type SessionState struct {
	// SessionID is the UUID for this run.
	SessionID string

	// Case is the immutable definition this session runs against.
	Case *casedef.CaseDefinition

	// CurrentStepIndex is the zero-based decision point the learner is at.
	// Monotonically non-decreasing except on Restart.
	CurrentStepIndex int

	// History holds the generated narrative, one entry per exchange,
	// append-only.
	History []string

	// Decisions holds the learner's submitted decisions, append-only.
	Decisions []string

	// Completed flips false→true exactly once, when the terminal stage's
	// predicate is satisfied. Only Restart resets it.
	Completed bool

	// CredentialIssued is set the same instant Completed becomes true and
	// never re-triggers on later submissions.
	CredentialIssued bool

	// StartTime is when the session began (or was last restarted).
	StartTime time.Time
}

// NewSessionState creates a fresh session for the given case.
// The case is not started until Begin records the opening presentation.
func NewSessionState(c *casedef.CaseDefinition, sessionID string) *SessionState {
	return &SessionState{
		SessionID: sessionID,
		Case:      c,
		StartTime: time.Now(),
	}
}

// Begin records the opening presentation as History[0].
// Calling Begin on a started session is a no-op.
func (s *SessionState) Begin(opening string) {
	if s.Started() {
		return
	}
	s.History = append(s.History, opening)
}

// Started reports whether the opening presentation has been recorded.
func (s *SessionState) Started() bool {
	return len(s.History) > 0
}

// Restart resets all run state while preserving the case definition and
// session identity. The caller records a fresh opening via Begin.
func (s *SessionState) Restart() {
	s.CurrentStepIndex = 0
	s.History = nil
	s.Decisions = nil
	s.Completed = false
	s.CredentialIssued = false
	s.StartTime = time.Now()
}
