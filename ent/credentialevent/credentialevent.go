// Code generated by ent, DO NOT EDIT.

package credentialevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the credentialevent type in the database.
	Label = "credential_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldCaseID holds the string denoting the case_id field in the database.
	FieldCaseID = "case_id"
	// FieldCaseTitle holds the string denoting the case_title field in the database.
	FieldCaseTitle = "case_title"
	// FieldCredits holds the string denoting the credits field in the database.
	FieldCredits = "credits"
	// FieldStepsTaken holds the string denoting the steps_taken field in the database.
	FieldStepsTaken = "steps_taken"
	// Table holds the table name of the credentialevent in the database.
	Table = "credential_events"
)

// Columns holds all SQL columns for credentialevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldCaseID,
	FieldCaseTitle,
	FieldCredits,
	FieldStepsTaken,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// CaseIDValidator is a validator for the "case_id" field. It is called by the builders before save.
	CaseIDValidator func(string) error
	// CaseTitleValidator is a validator for the "case_title" field. It is called by the builders before save.
	CaseTitleValidator func(string) error
	// DefaultStepsTaken holds the default value on creation for the "steps_taken" field.
	DefaultStepsTaken int
)

// OrderOption defines the ordering options for the CredentialEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByCaseID orders the results by the case_id field.
func ByCaseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaseID, opts...).ToFunc()
}

// ByCaseTitle orders the results by the case_title field.
func ByCaseTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaseTitle, opts...).ToFunc()
}

// ByCredits orders the results by the credits field.
func ByCredits(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCredits, opts...).ToFunc()
}

// ByStepsTaken orders the results by the steps_taken field.
func ByStepsTaken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepsTaken, opts...).ToFunc()
}
