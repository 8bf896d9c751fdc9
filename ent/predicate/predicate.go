// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Action is the predicate function for action builders.
type Action func(*sql.Selector)

// Command is the predicate function for command builders.
type Command func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Execution is the predicate function for execution builders.
type Execution func(*sql.Selector)

// GlobalSetting is the predicate function for globalsetting builders.
type GlobalSetting func(*sql.Selector)

// LLMRecord is the predicate function for llmrecord builders.
type LLMRecord func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// Prompt is the predicate function for prompt builders.
type Prompt func(*sql.Selector)

// Summary is the predicate function for summary builders.
type Summary func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
