// Code generated by ent, DO NOT EDIT.

package summary

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the summary type in the database.
	Label = "summary"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSummaryID holds the string denoting the summary_id field in the database.
	FieldSummaryID = "summary_id"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldRoundID holds the string denoting the round_id field in the database.
	FieldRoundID = "round_id"
	// FieldEventSummary holds the string denoting the event_summary field in the database.
	FieldEventSummary = "event_summary"
	// FieldEventSuggestion holds the string denoting the event_suggestion field in the database.
	FieldEventSuggestion = "event_suggestion"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the summary in the database.
	Table = "summaries"
)

// Columns holds all SQL columns for summary fields.
var Columns = []string{
	FieldID,
	FieldSummaryID,
	FieldEventID,
	FieldRoundID,
	FieldEventSummary,
	FieldEventSuggestion,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// SummaryIDValidator is a validator for the "summary_id" field. It is called by the builders before save.
	SummaryIDValidator func(string) error
	// EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	EventIDValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Summary queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySummaryID orders the results by the summary_id field.
func BySummaryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummaryID, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByRoundID orders the results by the round_id field.
func ByRoundID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoundID, opts...).ToFunc()
}

// ByEventSummary orders the results by the event_summary field.
func ByEventSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventSummary, opts...).ToFunc()
}

// ByEventSuggestion orders the results by the event_suggestion field.
func ByEventSuggestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventSuggestion, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
