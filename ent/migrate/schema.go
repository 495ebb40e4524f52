// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// JournalEntriesColumns holds the columns for the "journal_entries" table.
	JournalEntriesColumns = []*schema.Column{
		{Name: "entry_id", Type: field.TypeString, Unique: true},
		{Name: "action_id", Type: field.TypeString},
		{Name: "stream", Type: field.TypeString},
		{Name: "stage_index", Type: field.TypeInt, Default: 0},
		{Name: "stage_name", Type: field.TypeString, Nullable: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"stage_initiated", "stage_completed", "node_task_result", "log_line"}},
		{Name: "node", Type: field.TypeString, Nullable: true},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "sequence_number", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
	}
	// JournalEntriesTable holds the schema information for the "journal_entries" table.
	JournalEntriesTable = &schema.Table{
		Name:       "journal_entries",
		Columns:    JournalEntriesColumns,
		PrimaryKey: []*schema.Column{JournalEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "journalentry_action_id_sequence_number",
				Unique:  false,
				Columns: []*schema.Column{JournalEntriesColumns[1], JournalEntriesColumns[9]},
			},
			{
				Name:    "journalentry_action_id_stage_index",
				Unique:  false,
				Columns: []*schema.Column{JournalEntriesColumns[1], JournalEntriesColumns[3]},
			},
			{
				Name:    "journalentry_created_at",
				Unique:  false,
				Columns: []*schema.Column{JournalEntriesColumns[10]},
			},
		},
	}
	// MasterActionRecordsColumns holds the columns for the "master_action_records" table.
	MasterActionRecordsColumns = []*schema.Column{
		{Name: "action_id", Type: field.TypeString, Unique: true},
		{Name: "operation_type", Type: field.TypeString},
		{Name: "environment", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"Pending", "AwaitingNodeReadiness", "Running", "Cancelling", "Succeeded", "Failed", "Cancelled"}, Default: "Running"},
		{Name: "parameters", Type: field.TypeJSON, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
	}
	// MasterActionRecordsTable holds the schema information for the "master_action_records" table.
	MasterActionRecordsTable = &schema.Table{
		Name:       "master_action_records",
		Columns:    MasterActionRecordsColumns,
		PrimaryKey: []*schema.Column{MasterActionRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteractionrecord_operation_type",
				Unique:  false,
				Columns: []*schema.Column{MasterActionRecordsColumns[1]},
			},
			{
				Name:    "masteractionrecord_started_at",
				Unique:  false,
				Columns: []*schema.Column{MasterActionRecordsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		JournalEntriesTable,
		MasterActionRecordsTable,
	}
)

func init() {
}
