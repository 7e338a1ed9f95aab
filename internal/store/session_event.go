package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetCaseID(data.CaseID).
		SetAction(data.Action).
		SetStepsTaken(data.StepsTaken).
		SetCompleted(data.Completed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendDecisionEvent(ctx context.Context, data DecisionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.DecisionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetCaseID(data.CaseID).
		SetStepIndex(data.StepIndex).
		SetStage(data.Stage).
		SetDecision(data.Decision).
		SetMatchedOptimal(data.MatchedOptimal).
		SetTerminal(data.Terminal).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save decision event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendQuestionEvent(ctx context.Context, data QuestionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuestionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetCaseID(data.CaseID).
		SetStepIndex(data.StepIndex).
		SetQuestion(data.Question).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save question event: %w", err)
	}
	return nil
}
