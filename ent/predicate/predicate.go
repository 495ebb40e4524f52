// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// JournalEntry is the predicate function for journalentry builders.
type JournalEntry func(*sql.Selector)

// MasterActionRecord is the predicate function for masteractionrecord builders.
type MasterActionRecord func(*sql.Selector)
