package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// JournalEntry holds the schema definition for one append-only journal
// record. Each master action forms one logical stream (keyed by action_id);
// stage_index partitions it into per-stage sub-streams.
type JournalEntry struct {
	ent.Schema
}

// Fields of the JournalEntry.
func (JournalEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("entry_id").
			Unique().
			Immutable(),
		field.String("action_id").
			Immutable(),
		field.String("stream").
			Immutable().
			Comment("Logical stream name, derived from journal_root_path and action_id"),
		field.Int("stage_index").
			Default(0).
			Immutable(),
		field.String("stage_name").
			Optional().
			Immutable(),
		field.Enum("kind").
			Values("stage_initiated", "stage_completed", "node_task_result", "log_line").
			Immutable(),
		field.String("node").
			Optional().
			Immutable(),
		field.String("task_id").
			Optional().
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Int("sequence_number").
			Comment("Order within the action stream"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the JournalEntry.
func (JournalEntry) Indexes() []ent.Index {
	return []ent.Index{
		// Stream replay in order
		index.Fields("action_id", "sequence_number"),
		// Per-stage sub-stream reads
		index.Fields("action_id", "stage_index"),
		index.Fields("created_at"),
	}
}
