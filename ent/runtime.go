// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/clincase/ent/credentialevent"
	"github.com/abhisek/clincase/ent/decisionevent"
	"github.com/abhisek/clincase/ent/llmrequestevent"
	"github.com/abhisek/clincase/ent/questionevent"
	"github.com/abhisek/clincase/ent/schema"
	"github.com/abhisek/clincase/ent/sessionevent"
	"github.com/abhisek/clincase/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	credentialeventMixin := schema.CredentialEvent{}.Mixin()
	credentialeventMixinFields0 := credentialeventMixin[0].Fields()
	_ = credentialeventMixinFields0
	credentialeventFields := schema.CredentialEvent{}.Fields()
	_ = credentialeventFields
	// credentialeventDescTimestamp is the schema descriptor for timestamp field.
	credentialeventDescTimestamp := credentialeventMixinFields0[1].Descriptor()
	// credentialevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	credentialevent.DefaultTimestamp = credentialeventDescTimestamp.Default.(func() time.Time)
	// credentialeventDescSessionID is the schema descriptor for session_id field.
	credentialeventDescSessionID := credentialeventFields[0].Descriptor()
	// credentialevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	credentialevent.SessionIDValidator = credentialeventDescSessionID.Validators[0].(func(string) error)
	// credentialeventDescCaseID is the schema descriptor for case_id field.
	credentialeventDescCaseID := credentialeventFields[1].Descriptor()
	// credentialevent.CaseIDValidator is a validator for the "case_id" field. It is called by the builders before save.
	credentialevent.CaseIDValidator = credentialeventDescCaseID.Validators[0].(func(string) error)
	// credentialeventDescCaseTitle is the schema descriptor for case_title field.
	credentialeventDescCaseTitle := credentialeventFields[2].Descriptor()
	// credentialevent.CaseTitleValidator is a validator for the "case_title" field. It is called by the builders before save.
	credentialevent.CaseTitleValidator = credentialeventDescCaseTitle.Validators[0].(func(string) error)
	// credentialeventDescStepsTaken is the schema descriptor for steps_taken field.
	credentialeventDescStepsTaken := credentialeventFields[4].Descriptor()
	// credentialevent.DefaultStepsTaken holds the default value on creation for the steps_taken field.
	credentialevent.DefaultStepsTaken = credentialeventDescStepsTaken.Default.(int)
	decisioneventMixin := schema.DecisionEvent{}.Mixin()
	decisioneventMixinFields0 := decisioneventMixin[0].Fields()
	_ = decisioneventMixinFields0
	decisioneventFields := schema.DecisionEvent{}.Fields()
	_ = decisioneventFields
	// decisioneventDescTimestamp is the schema descriptor for timestamp field.
	decisioneventDescTimestamp := decisioneventMixinFields0[1].Descriptor()
	// decisionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	decisionevent.DefaultTimestamp = decisioneventDescTimestamp.Default.(func() time.Time)
	// decisioneventDescSessionID is the schema descriptor for session_id field.
	decisioneventDescSessionID := decisioneventFields[0].Descriptor()
	// decisionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	decisionevent.SessionIDValidator = decisioneventDescSessionID.Validators[0].(func(string) error)
	// decisioneventDescCaseID is the schema descriptor for case_id field.
	decisioneventDescCaseID := decisioneventFields[1].Descriptor()
	// decisionevent.CaseIDValidator is a validator for the "case_id" field. It is called by the builders before save.
	decisionevent.CaseIDValidator = decisioneventDescCaseID.Validators[0].(func(string) error)
	// decisioneventDescStage is the schema descriptor for stage field.
	decisioneventDescStage := decisioneventFields[3].Descriptor()
	// decisionevent.StageValidator is a validator for the "stage" field. It is called by the builders before save.
	decisionevent.StageValidator = decisioneventDescStage.Validators[0].(func(string) error)
	// decisioneventDescDecision is the schema descriptor for decision field.
	decisioneventDescDecision := decisioneventFields[4].Descriptor()
	// decisionevent.DecisionValidator is a validator for the "decision" field. It is called by the builders before save.
	decisionevent.DecisionValidator = decisioneventDescDecision.Validators[0].(func(string) error)
	// decisioneventDescTerminal is the schema descriptor for terminal field.
	decisioneventDescTerminal := decisioneventFields[6].Descriptor()
	// decisionevent.DefaultTerminal holds the default value on creation for the terminal field.
	decisionevent.DefaultTerminal = decisioneventDescTerminal.Default.(bool)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	questioneventMixin := schema.QuestionEvent{}.Mixin()
	questioneventMixinFields0 := questioneventMixin[0].Fields()
	_ = questioneventMixinFields0
	questioneventFields := schema.QuestionEvent{}.Fields()
	_ = questioneventFields
	// questioneventDescTimestamp is the schema descriptor for timestamp field.
	questioneventDescTimestamp := questioneventMixinFields0[1].Descriptor()
	// questionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	questionevent.DefaultTimestamp = questioneventDescTimestamp.Default.(func() time.Time)
	// questioneventDescSessionID is the schema descriptor for session_id field.
	questioneventDescSessionID := questioneventFields[0].Descriptor()
	// questionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	questionevent.SessionIDValidator = questioneventDescSessionID.Validators[0].(func(string) error)
	// questioneventDescCaseID is the schema descriptor for case_id field.
	questioneventDescCaseID := questioneventFields[1].Descriptor()
	// questionevent.CaseIDValidator is a validator for the "case_id" field. It is called by the builders before save.
	questionevent.CaseIDValidator = questioneventDescCaseID.Validators[0].(func(string) error)
	// questioneventDescQuestion is the schema descriptor for question field.
	questioneventDescQuestion := questioneventFields[3].Descriptor()
	// questionevent.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	questionevent.QuestionValidator = questioneventDescQuestion.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescCaseID is the schema descriptor for case_id field.
	sessioneventDescCaseID := sessioneventFields[1].Descriptor()
	// sessionevent.CaseIDValidator is a validator for the "case_id" field. It is called by the builders before save.
	sessionevent.CaseIDValidator = sessioneventDescCaseID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescStepsTaken is the schema descriptor for steps_taken field.
	sessioneventDescStepsTaken := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultStepsTaken holds the default value on creation for the steps_taken field.
	sessionevent.DefaultStepsTaken = sessioneventDescStepsTaken.Default.(int)
	// sessioneventDescCompleted is the schema descriptor for completed field.
	sessioneventDescCompleted := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultCompleted holds the default value on creation for the completed field.
	sessionevent.DefaultCompleted = sessioneventDescCompleted.Default.(bool)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
