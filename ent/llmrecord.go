// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/deepsoc/deepsoc/ent/llmrecord"
)

// LLMRecord is the model entity for the LLMRecord schema.
type LLMRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Provider-assigned id from the completion response
	RequestID string `json:"request_id,omitempty"`
	// ModelName holds the value of the "model_name" field.
	ModelName string `json:"model_name,omitempty"`
	// RequestMessages holds the value of the "request_messages" field.
	RequestMessages []map[string]interface{} `json:"request_messages,omitempty"`
	// ResponseContent holds the value of the "response_content" field.
	ResponseContent string `json:"response_content,omitempty"`
	// ResponseFull holds the value of the "response_full" field.
	ResponseFull map[string]interface{} `json:"response_full,omitempty"`
	// PromptTokens holds the value of the "prompt_tokens" field.
	PromptTokens *int `json:"prompt_tokens,omitempty"`
	// CompletionTokens holds the value of the "completion_tokens" field.
	CompletionTokens *int `json:"completion_tokens,omitempty"`
	// TotalTokens holds the value of the "total_tokens" field.
	TotalTokens *int `json:"total_tokens,omitempty"`
	// CachedTokens holds the value of the "cached_tokens" field.
	CachedTokens *int `json:"cached_tokens,omitempty"`
	// Event the call was made for, when known
	EventID string `json:"event_id,omitempty"`
	// RoundID holds the value of the "round_id" field.
	RoundID int `json:"round_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LLMRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case llmrecord.FieldRequestMessages, llmrecord.FieldResponseFull:
			values[i] = new([]byte)
		case llmrecord.FieldID, llmrecord.FieldPromptTokens, llmrecord.FieldCompletionTokens, llmrecord.FieldTotalTokens, llmrecord.FieldCachedTokens, llmrecord.FieldRoundID:
			values[i] = new(sql.NullInt64)
		case llmrecord.FieldRequestID, llmrecord.FieldModelName, llmrecord.FieldResponseContent, llmrecord.FieldEventID:
			values[i] = new(sql.NullString)
		case llmrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LLMRecord fields.
func (_m *LLMRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case llmrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case llmrecord.FieldRequestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request_id", values[i])
			} else if value.Valid {
				_m.RequestID = value.String
			}
		case llmrecord.FieldModelName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_name", values[i])
			} else if value.Valid {
				_m.ModelName = value.String
			}
		case llmrecord.FieldRequestMessages:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field request_messages", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RequestMessages); err != nil {
					return fmt.Errorf("unmarshal field request_messages: %w", err)
				}
			}
		case llmrecord.FieldResponseContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field response_content", values[i])
			} else if value.Valid {
				_m.ResponseContent = value.String
			}
		case llmrecord.FieldResponseFull:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field response_full", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResponseFull); err != nil {
					return fmt.Errorf("unmarshal field response_full: %w", err)
				}
			}
		case llmrecord.FieldPromptTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_tokens", values[i])
			} else if value.Valid {
				_m.PromptTokens = new(int)
				*_m.PromptTokens = int(value.Int64)
			}
		case llmrecord.FieldCompletionTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completion_tokens", values[i])
			} else if value.Valid {
				_m.CompletionTokens = new(int)
				*_m.CompletionTokens = int(value.Int64)
			}
		case llmrecord.FieldTotalTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tokens", values[i])
			} else if value.Valid {
				_m.TotalTokens = new(int)
				*_m.TotalTokens = int(value.Int64)
			}
		case llmrecord.FieldCachedTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cached_tokens", values[i])
			} else if value.Valid {
				_m.CachedTokens = new(int)
				*_m.CachedTokens = int(value.Int64)
			}
		case llmrecord.FieldEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = value.String
			}
		case llmrecord.FieldRoundID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field round_id", values[i])
			} else if value.Valid {
				_m.RoundID = int(value.Int64)
			}
		case llmrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LLMRecord.
// This includes values selected through modifiers, order, etc.
func (_m *LLMRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LLMRecord.
// Note that you need to call LLMRecord.Unwrap() before calling this method if this LLMRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LLMRecord) Update() *LLMRecordUpdateOne {
	return NewLLMRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LLMRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LLMRecord) Unwrap() *LLMRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LLMRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LLMRecord) String() string {
	var builder strings.Builder
	builder.WriteString("LLMRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("request_id=")
	builder.WriteString(_m.RequestID)
	builder.WriteString(", ")
	builder.WriteString("model_name=")
	builder.WriteString(_m.ModelName)
	builder.WriteString(", ")
	builder.WriteString("request_messages=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestMessages))
	builder.WriteString(", ")
	builder.WriteString("response_content=")
	builder.WriteString(_m.ResponseContent)
	builder.WriteString(", ")
	builder.WriteString("response_full=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseFull))
	builder.WriteString(", ")
	if v := _m.PromptTokens; v != nil {
		builder.WriteString("prompt_tokens=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CompletionTokens; v != nil {
		builder.WriteString("completion_tokens=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TotalTokens; v != nil {
		builder.WriteString("total_tokens=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CachedTokens; v != nil {
		builder.WriteString("cached_tokens=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("event_id=")
	builder.WriteString(_m.EventID)
	builder.WriteString(", ")
	builder.WriteString("round_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RoundID))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LLMRecords is a parsable slice of LLMRecord.
type LLMRecords []*LLMRecord
