package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// kvColumns holds the columns for the "kv" table.
	kvColumns = []*schema.Column{
		{Name: "name", Type: field.TypeString},
		{Name: "value", Type: field.TypeString, Size: 2147483647},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// kvTable holds the schema information for the "kv" table.
	kvTable = &schema.Table{
		Name:       "kv",
		Columns:    kvColumns,
		PrimaryKey: []*schema.Column{kvColumns[0]},
	}

	// completionColumns holds the columns for the "completion_events" table.
	completionColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "word_key", Type: field.TypeString},
		{Name: "mistakes", Type: field.TypeInt, Default: 0},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
	}
	// completionTable holds the schema information for the "completion_events" table.
	completionTable = &schema.Table{
		Name:       "completion_events",
		Columns:    completionColumns,
		PrimaryKey: []*schema.Column{completionColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "completionevent_word_key",
				Unique:  false,
				Columns: []*schema.Column{completionColumns[3]},
			},
			{
				Name:    "completionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{completionColumns[1]},
			},
		},
	}

	tables = []*schema.Table{kvTable, completionTable}
)

// migrate creates or updates all tables.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	if err := m.Create(ctx, tables...); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}
