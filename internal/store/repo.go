package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// CredentialSummary is the snapshot form of an earned credential.
type CredentialSummary struct {
	CaseID    string    `json:"case_id"`
	CaseTitle string    `json:"case_title"`
	Credits   float64   `json:"credits"`
	EarnedAt  time.Time `json:"earned_at"`
}

// SnapshotData captures the learner's durable state at a point in time:
// which cases have been completed and what credit they earned. Full
// session transcripts stay in the event log only.
type SnapshotData struct {
	Version     int                 `json:"version"`
	Credentials []CredentialSummary `json:"credentials,omitempty"`
}

// CompletedCase reports whether the snapshot records a credential for
// the given case.
func (d *SnapshotData) CompletedCase(caseID string) bool {
	for _, c := range d.Credentials {
		if c.CaseID == caseID {
			return true
		}
	}
	return false
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID  string
	CaseID     string
	Action     string // start, restart, end
	StepsTaken int
	Completed  bool
}

// DecisionEventData captures one submitted decision and its verdict.
type DecisionEventData struct {
	SessionID      string
	CaseID         string
	StepIndex      int
	Stage          string
	Decision       string
	MatchedOptimal bool
	Terminal       bool
}

// QuestionEventData captures a freeform question.
type QuestionEventData struct {
	SessionID string
	CaseID    string
	StepIndex int
	Question  string
}

// CredentialEventData captures a CME credit issuance.
type CredentialEventData struct {
	SessionID  string
	CaseID     string
	CaseTitle  string
	Credits    float64
	StepsTaken int
}

// CredentialRecord is a persisted credential with its event metadata.
type CredentialRecord struct {
	SessionID  string
	CaseID     string
	CaseTitle  string
	Credits    float64
	StepsTaken int
	Sequence   int64
	Timestamp  time.Time
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a persisted LLM request event.
type LLMRequestEventRecord struct {
	ID           int
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
	Sequence     int64
	Timestamp    time.Time
}

// LLMUsageStats aggregates token usage for one purpose label.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int
}

// LLMModelUsage aggregates token usage for one model, for cost estimation.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a session lifecycle event.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendDecisionEvent records a submitted decision.
	AppendDecisionEvent(ctx context.Context, data DecisionEventData) error

	// AppendQuestionEvent records a freeform question.
	AppendQuestionEvent(ctx context.Context, data QuestionEventData) error

	// AppendCredentialEvent records a credit issuance.
	AppendCredentialEvent(ctx context.Context, data CredentialEventData) error

	// QueryCredentials returns earned credentials, newest first.
	QueryCredentials(ctx context.Context, opts QueryOpts) ([]CredentialRecord, error)

	// HasCredential reports whether a credential exists for the case.
	HasCredential(ctx context.Context, caseID string) (bool, error)

	// TotalCredits sums the credit value of all earned credentials.
	TotalCredits(ctx context.Context) (float64, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one LLM request event by ID, or nil.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
