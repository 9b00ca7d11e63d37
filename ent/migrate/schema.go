// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CompletionEventsColumns holds the columns for the "completion_events" table.
	CompletionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "action", Type: field.TypeString},
		{Name: "module_id", Type: field.TypeString, Nullable: true},
		{Name: "newly_unlocked", Type: field.TypeInt, Default: 0},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// CompletionEventsTable holds the schema information for the "completion_events" table.
	CompletionEventsTable = &schema.Table{
		Name:       "completion_events",
		Columns:    CompletionEventsColumns,
		PrimaryKey: []*schema.Column{CompletionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "completionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[1]},
			},
			{
				Name:    "completionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[2]},
			},
			{
				Name:    "completionevent_module_id",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[4]},
			},
		},
	}
	// ProgressSnapshotsColumns holds the columns for the "progress_snapshots" table.
	ProgressSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// ProgressSnapshotsTable holds the schema information for the "progress_snapshots" table.
	ProgressSnapshotsTable = &schema.Table{
		Name:       "progress_snapshots",
		Columns:    ProgressSnapshotsColumns,
		PrimaryKey: []*schema.Column{ProgressSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progresssnapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ProgressSnapshotsColumns[2]},
			},
			{
				Name:    "progresssnapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{ProgressSnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CompletionEventsTable,
		ProgressSnapshotsTable,
	}
)

func init() {
}
