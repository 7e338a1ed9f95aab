package store

import (
	"context"
	"fmt"

	"github.com/abhisek/clincase/ent"
	"github.com/abhisek/clincase/ent/credentialevent"
)

func (r *eventRepo) AppendCredentialEvent(ctx context.Context, data CredentialEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.CredentialEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetCaseID(data.CaseID).
		SetCaseTitle(data.CaseTitle).
		SetCredits(data.Credits).
		SetStepsTaken(data.StepsTaken).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save credential event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryCredentials(ctx context.Context, opts QueryOpts) ([]CredentialRecord, error) {
	query := r.client.CredentialEvent.Query().
		Order(ent.Desc(credentialevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(credentialevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(credentialevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(credentialevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(credentialevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query credentials: %w", err)
	}

	records := make([]CredentialRecord, len(events))
	for i, e := range events {
		records[i] = CredentialRecord{
			SessionID:  e.SessionID,
			CaseID:     e.CaseID,
			CaseTitle:  e.CaseTitle,
			Credits:    e.Credits,
			StepsTaken: e.StepsTaken,
			Sequence:   e.Sequence,
			Timestamp:  e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) HasCredential(ctx context.Context, caseID string) (bool, error) {
	n, err := r.client.CredentialEvent.Query().
		Where(credentialevent.CaseID(caseID)).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count credentials: %w", err)
	}
	return n > 0, nil
}

func (r *eventRepo) TotalCredits(ctx context.Context) (float64, error) {
	events, err := r.client.CredentialEvent.Query().All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query credentials: %w", err)
	}
	var total float64
	for _, e := range events {
		total += e.Credits
	}
	return total, nil
}
