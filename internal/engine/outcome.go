package engine

// Outcome summarizes the state change from one submitted decision.
type Outcome struct {
	// CompletedNow is true only on the transition that completed the case.
	// Re-submitting after completion never sets it again, so credential
	// issuance keyed on it is one-shot.
	CompletedNow bool
}

// Advance applies one completed exchange to the session: the decision and
// its generated narrative are appended, the step counter increments, and
// the Completion Detector runs.
//
// The step always advances regardless of the verdict. The terminal stage
// is the exception only in what it can trigger: a true verdict there
// completes the case, a false one leaves the learner retrying at
// increasing step indices. Completion follows the stage ID, not the
// StageContext's IsTerminal display flag, so a retry past the defined
// sequence (where the synthetic stage carries the terminal stage's ID)
// can still complete the case once the predicate is satisfied.
func Advance(s *SessionState, stage StageContext, decision, narrative string, verdict Verdict) Outcome {
	s.Decisions = append(s.Decisions, decision)
	s.History = append(s.History, narrative)
	s.CurrentStepIndex++

	var out Outcome
	terminal := stage.ID == s.Case.TerminalStage().ID
	if terminal && verdict.MatchesOptimal && !s.Completed {
		s.Completed = true
		s.CredentialIssued = true
		out.CompletedNow = true
	}
	return out
}
