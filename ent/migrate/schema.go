// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CredentialEventsColumns holds the columns for the "credential_events" table.
	CredentialEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "case_id", Type: field.TypeString},
		{Name: "case_title", Type: field.TypeString},
		{Name: "credits", Type: field.TypeFloat64},
		{Name: "steps_taken", Type: field.TypeInt, Default: 0},
	}
	// CredentialEventsTable holds the schema information for the "credential_events" table.
	CredentialEventsTable = &schema.Table{
		Name:       "credential_events",
		Columns:    CredentialEventsColumns,
		PrimaryKey: []*schema.Column{CredentialEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "credentialevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{CredentialEventsColumns[1]},
			},
			{
				Name:    "credentialevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CredentialEventsColumns[2]},
			},
			{
				Name:    "credentialevent_case_id",
				Unique:  false,
				Columns: []*schema.Column{CredentialEventsColumns[4]},
			},
			{
				Name:    "credentialevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{CredentialEventsColumns[3]},
			},
		},
	}
	// DecisionEventsColumns holds the columns for the "decision_events" table.
	DecisionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "case_id", Type: field.TypeString},
		{Name: "step_index", Type: field.TypeInt},
		{Name: "stage", Type: field.TypeString},
		{Name: "decision", Type: field.TypeString},
		{Name: "matched_optimal", Type: field.TypeBool},
		{Name: "terminal", Type: field.TypeBool, Default: false},
	}
	// DecisionEventsTable holds the schema information for the "decision_events" table.
	DecisionEventsTable = &schema.Table{
		Name:       "decision_events",
		Columns:    DecisionEventsColumns,
		PrimaryKey: []*schema.Column{DecisionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "decisionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{DecisionEventsColumns[1]},
			},
			{
				Name:    "decisionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{DecisionEventsColumns[2]},
			},
			{
				Name:    "decisionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{DecisionEventsColumns[3]},
			},
			{
				Name:    "decisionevent_case_id",
				Unique:  false,
				Columns: []*schema.Column{DecisionEventsColumns[4]},
			},
			{
				Name:    "decisionevent_stage",
				Unique:  false,
				Columns: []*schema.Column{DecisionEventsColumns[6]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// QuestionEventsColumns holds the columns for the "question_events" table.
	QuestionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "case_id", Type: field.TypeString},
		{Name: "step_index", Type: field.TypeInt},
		{Name: "question", Type: field.TypeString},
	}
	// QuestionEventsTable holds the schema information for the "question_events" table.
	QuestionEventsTable = &schema.Table{
		Name:       "question_events",
		Columns:    QuestionEventsColumns,
		PrimaryKey: []*schema.Column{QuestionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "questionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuestionEventsColumns[1]},
			},
			{
				Name:    "questionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuestionEventsColumns[2]},
			},
			{
				Name:    "questionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionEventsColumns[3]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "case_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "steps_taken", Type: field.TypeInt, Default: 0},
		{Name: "completed", Type: field.TypeBool, Default: false},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_case_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CredentialEventsTable,
		DecisionEventsTable,
		LlmRequestEventsTable,
		QuestionEventsTable,
		SessionEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
