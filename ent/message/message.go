// Code generated by ent, DO NOT EDIT.

package message

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the message type in the database.
	Label = "message"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldMessageID holds the string denoting the message_id field in the database.
	FieldMessageID = "message_id"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldRoundID holds the string denoting the round_id field in the database.
	FieldRoundID = "round_id"
	// FieldMessageFrom holds the string denoting the message_from field in the database.
	FieldMessageFrom = "message_from"
	// FieldMessageType holds the string denoting the message_type field in the database.
	FieldMessageType = "message_type"
	// FieldMessageContent holds the string denoting the message_content field in the database.
	FieldMessageContent = "message_content"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the message in the database.
	Table = "messages"
)

// Columns holds all SQL columns for message fields.
var Columns = []string{
	FieldID,
	FieldMessageID,
	FieldEventID,
	FieldRoundID,
	FieldMessageFrom,
	FieldMessageType,
	FieldMessageContent,
	FieldUserID,
	FieldCreatedAt,
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
	// MessageIDValidator is a validator for the "message_id" field. It is called by the builders before save.
	MessageIDValidator func(string) error
	// EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	EventIDValidator func(string) error
	// MessageTypeValidator is a validator for the "message_type" field. It is called by the builders before save.
	MessageTypeValidator func(string) error
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// MessageFrom defines the type for the "message_from" enum field.
type MessageFrom string

// MessageFrom values.
const (
	MessageFromSystem   MessageFrom = "system"
	MessageFromUser     MessageFrom = "user"
	MessageFromCaptain  MessageFrom = "_captain"
	MessageFromManager  MessageFrom = "_manager"
	MessageFromOperator MessageFrom = "_operator"
	MessageFromExecutor MessageFrom = "_executor"
	MessageFromExpert   MessageFrom = "_expert"
)

func (mf MessageFrom) String() string {
	return string(mf)
}

// MessageFromValidator is a validator for the "message_from" field enum values. It is called by the builders before save.
func MessageFromValidator(mf MessageFrom) error {
	switch mf {
	case MessageFromSystem, MessageFromUser, MessageFromCaptain, MessageFromManager, MessageFromOperator, MessageFromExecutor, MessageFromExpert:
		return nil
	default:
		return fmt.Errorf("message: invalid enum value for message_from field: %q", mf)
	}
}

// OrderOption defines the ordering options for the Message queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMessageID orders the results by the message_id field.
func ByMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageID, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByRoundID orders the results by the round_id field.
func ByRoundID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoundID, opts...).ToFunc()
}

// ByMessageFrom orders the results by the message_from field.
func ByMessageFrom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageFrom, opts...).ToFunc()
}

// ByMessageType orders the results by the message_type field.
func ByMessageType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageType, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
