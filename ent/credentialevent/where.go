// Code generated by ent, DO NOT EDIT.

package credentialevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/clincase/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldEQ(FieldSessionID, v))
}

// CaseID applies equality check predicate on the "case_id" field. It's identical to CaseIDEQ.
func CaseID(v string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldEQ(FieldCaseID, v))
}

// CaseTitle applies equality check predicate on the "case_title" field. It's identical to CaseTitleEQ.
func CaseTitle(v string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldEQ(FieldCaseTitle, v))
}

// Credits applies equality check predicate on the "credits" field. It's identical to CreditsEQ.
func Credits(v float64) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldEQ(FieldCredits, v))
}

// StepsTaken applies equality check predicate on the "steps_taken" field. It's identical to StepsTakenEQ.
func StepsTaken(v int) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldEQ(FieldStepsTaken, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// CaseIDEQ applies the EQ predicate on the "case_id" field.
func CaseIDEQ(v string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldEQ(FieldCaseID, v))
}

// CaseIDNEQ applies the NEQ predicate on the "case_id" field.
func CaseIDNEQ(v string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldNEQ(FieldCaseID, v))
}

// CaseIDIn applies the In predicate on the "case_id" field.
func CaseIDIn(vs ...string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldIn(FieldCaseID, vs...))
}

// CaseIDNotIn applies the NotIn predicate on the "case_id" field.
func CaseIDNotIn(vs ...string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldNotIn(FieldCaseID, vs...))
}

// CaseIDGT applies the GT predicate on the "case_id" field.
func CaseIDGT(v string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldGT(FieldCaseID, v))
}

// CaseIDGTE applies the GTE predicate on the "case_id" field.
func CaseIDGTE(v string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldGTE(FieldCaseID, v))
}

// CaseIDLT applies the LT predicate on the "case_id" field.
func CaseIDLT(v string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldLT(FieldCaseID, v))
}

// CaseIDLTE applies the LTE predicate on the "case_id" field.
func CaseIDLTE(v string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldLTE(FieldCaseID, v))
}

// CaseIDContains applies the Contains predicate on the "case_id" field.
func CaseIDContains(v string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldContains(FieldCaseID, v))
}

// CaseIDHasPrefix applies the HasPrefix predicate on the "case_id" field.
func CaseIDHasPrefix(v string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldHasPrefix(FieldCaseID, v))
}

// CaseIDHasSuffix applies the HasSuffix predicate on the "case_id" field.
func CaseIDHasSuffix(v string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldHasSuffix(FieldCaseID, v))
}

// CaseIDEqualFold applies the EqualFold predicate on the "case_id" field.
func CaseIDEqualFold(v string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldEqualFold(FieldCaseID, v))
}

// CaseIDContainsFold applies the ContainsFold predicate on the "case_id" field.
func CaseIDContainsFold(v string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldContainsFold(FieldCaseID, v))
}

// CaseTitleEQ applies the EQ predicate on the "case_title" field.
func CaseTitleEQ(v string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldEQ(FieldCaseTitle, v))
}

// CaseTitleNEQ applies the NEQ predicate on the "case_title" field.
func CaseTitleNEQ(v string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldNEQ(FieldCaseTitle, v))
}

// CaseTitleIn applies the In predicate on the "case_title" field.
func CaseTitleIn(vs ...string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldIn(FieldCaseTitle, vs...))
}

// CaseTitleNotIn applies the NotIn predicate on the "case_title" field.
func CaseTitleNotIn(vs ...string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldNotIn(FieldCaseTitle, vs...))
}

// CaseTitleGT applies the GT predicate on the "case_title" field.
func CaseTitleGT(v string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldGT(FieldCaseTitle, v))
}

// CaseTitleGTE applies the GTE predicate on the "case_title" field.
func CaseTitleGTE(v string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldGTE(FieldCaseTitle, v))
}

// CaseTitleLT applies the LT predicate on the "case_title" field.
func CaseTitleLT(v string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldLT(FieldCaseTitle, v))
}

// CaseTitleLTE applies the LTE predicate on the "case_title" field.
func CaseTitleLTE(v string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldLTE(FieldCaseTitle, v))
}

// CaseTitleContains applies the Contains predicate on the "case_title" field.
func CaseTitleContains(v string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldContains(FieldCaseTitle, v))
}

// CaseTitleHasPrefix applies the HasPrefix predicate on the "case_title" field.
func CaseTitleHasPrefix(v string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldHasPrefix(FieldCaseTitle, v))
}

// CaseTitleHasSuffix applies the HasSuffix predicate on the "case_title" field.
func CaseTitleHasSuffix(v string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldHasSuffix(FieldCaseTitle, v))
}

// CaseTitleEqualFold applies the EqualFold predicate on the "case_title" field.
func CaseTitleEqualFold(v string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldEqualFold(FieldCaseTitle, v))
}

// CaseTitleContainsFold applies the ContainsFold predicate on the "case_title" field.
func CaseTitleContainsFold(v string) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldContainsFold(FieldCaseTitle, v))
}

// CreditsEQ applies the EQ predicate on the "credits" field.
func CreditsEQ(v float64) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldEQ(FieldCredits, v))
}

// CreditsNEQ applies the NEQ predicate on the "credits" field.
func CreditsNEQ(v float64) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldNEQ(FieldCredits, v))
}

// CreditsIn applies the In predicate on the "credits" field.
func CreditsIn(vs ...float64) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldIn(FieldCredits, vs...))
}

// CreditsNotIn applies the NotIn predicate on the "credits" field.
func CreditsNotIn(vs ...float64) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldNotIn(FieldCredits, vs...))
}

// CreditsGT applies the GT predicate on the "credits" field.
func CreditsGT(v float64) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldGT(FieldCredits, v))
}

// CreditsGTE applies the GTE predicate on the "credits" field.
func CreditsGTE(v float64) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldGTE(FieldCredits, v))
}

// CreditsLT applies the LT predicate on the "credits" field.
func CreditsLT(v float64) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldLT(FieldCredits, v))
}

// CreditsLTE applies the LTE predicate on the "credits" field.
func CreditsLTE(v float64) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldLTE(FieldCredits, v))
}

// StepsTakenEQ applies the EQ predicate on the "steps_taken" field.
func StepsTakenEQ(v int) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldEQ(FieldStepsTaken, v))
}

// StepsTakenNEQ applies the NEQ predicate on the "steps_taken" field.
func StepsTakenNEQ(v int) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldNEQ(FieldStepsTaken, v))
}

// StepsTakenIn applies the In predicate on the "steps_taken" field.
func StepsTakenIn(vs ...int) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldIn(FieldStepsTaken, vs...))
}

// StepsTakenNotIn applies the NotIn predicate on the "steps_taken" field.
func StepsTakenNotIn(vs ...int) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldNotIn(FieldStepsTaken, vs...))
}

// StepsTakenGT applies the GT predicate on the "steps_taken" field.
func StepsTakenGT(v int) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldGT(FieldStepsTaken, v))
}

// StepsTakenGTE applies the GTE predicate on the "steps_taken" field.
func StepsTakenGTE(v int) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldGTE(FieldStepsTaken, v))
}

// StepsTakenLT applies the LT predicate on the "steps_taken" field.
func StepsTakenLT(v int) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldLT(FieldStepsTaken, v))
}

// StepsTakenLTE applies the LTE predicate on the "steps_taken" field.
func StepsTakenLTE(v int) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.FieldLTE(FieldStepsTaken, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CredentialEvent) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CredentialEvent) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CredentialEvent) predicate.CredentialEvent {
	return predicate.CredentialEvent(sql.NotPredicates(p))
}
