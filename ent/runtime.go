// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/sitekeeper/sitekeeper/ent/journalentry"
	"github.com/sitekeeper/sitekeeper/ent/masteractionrecord"
	"github.com/sitekeeper/sitekeeper/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	journalentryFields := schema.JournalEntry{}.Fields()
	_ = journalentryFields
	// journalentryDescStageIndex is the schema descriptor for stage_index field.
	journalentryDescStageIndex := journalentryFields[3].Descriptor()
	// journalentry.DefaultStageIndex holds the default value on creation for the stage_index field.
	journalentry.DefaultStageIndex = journalentryDescStageIndex.Default.(int)
	// journalentryDescCreatedAt is the schema descriptor for created_at field.
	journalentryDescCreatedAt := journalentryFields[10].Descriptor()
	// journalentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	journalentry.DefaultCreatedAt = journalentryDescCreatedAt.Default.(func() time.Time)
	masteractionrecordFields := schema.MasterActionRecord{}.Fields()
	_ = masteractionrecordFields
	// masteractionrecordDescStartedAt is the schema descriptor for started_at field.
	masteractionrecordDescStartedAt := masteractionrecordFields[6].Descriptor()
	// masteractionrecord.DefaultStartedAt holds the default value on creation for the started_at field.
	masteractionrecord.DefaultStartedAt = masteractionrecordDescStartedAt.Default.(func() time.Time)
}
