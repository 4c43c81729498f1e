// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Fingerprint is the predicate function for fingerprint builders.
type Fingerprint func(*sql.Selector)

// PageResult is the predicate function for pageresult builders.
type PageResult func(*sql.Selector)

// PushAttempt is the predicate function for pushattempt builders.
type PushAttempt func(*sql.Selector)

// QueueMessage is the predicate function for queuemessage builders.
type QueueMessage func(*sql.Selector)

// Receiver is the predicate function for receiver builders.
type Receiver func(*sql.Selector)

// Rule is the predicate function for rule builders.
type Rule func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)
