package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditLog holds the schema definition for the specimen audit trail.
// Append-only: rows are never mutated or deleted by the application.
// specimen_id is a loose reference (no foreign key) so entries survive
// a specimen hard delete.
type AuditLog struct {
	ent.Schema
}

// Mixin of the AuditLog.
func (AuditLog) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // exposed as performed_at on the wire
	}
}

// Fields of the AuditLog.
func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("specimen_id").
			Optional().
			Immutable(),
		field.Enum("action").
			Values(
				"created",
				"updated",
				"deleted",
				"growth_recorded",
			).
			Immutable(),
		field.JSON("details", map[string]interface{}{}).
			Optional().
			Immutable(),
	}
}

// Indexes of the AuditLog.
func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("specimen_id"),
		index.Fields("created_at"),
	}
}
