package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasterActionRecord holds the schema definition for the per-action header
// row written when a master action starts and finalized when it terminates.
type MasterActionRecord struct {
	ent.Schema
}

// Fields of the MasterActionRecord.
func (MasterActionRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("action_id").
			Unique().
			Immutable(),
		field.String("operation_type").
			Immutable(),
		field.String("environment").
			Immutable(),
		field.Enum("status").
			Values("Pending", "AwaitingNodeReadiness", "Running", "Cancelling",
				"Succeeded", "Failed", "Cancelled").
			Default("Running"),
		field.JSON("parameters", map[string]string{}).
			Optional().
			Immutable(),
		field.JSON("result", map[string]interface{}{}).
			Optional(),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("ended_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the MasterActionRecord.
func (MasterActionRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("operation_type"),
		index.Fields("started_at"),
	}
}
