package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Location holds the schema definition for a geographic sampling site.
// Coordinate ranges are enforced at the domain layer before any write;
// deletion is rejected while any specimen still references the row.
type Location struct {
	ent.Schema
}

// Mixin of the Location.
func (Location) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the Location.
func (Location) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Float("latitude"),  // [-90, 90]
		field.Float("longitude"), // [-180, 180]
		field.String("region").
			NotEmpty(),
		field.String("country").
			NotEmpty(),
		field.Enum("site_type").
			Values(
				"forest",
				"grassland",
				"wetland",
				"desert",
				"agricultural",
				"urban",
				"coastal",
				"mountain",
			).
			Optional(),
	}
}

// Edges of the Location.
func (Location) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("specimens", Specimen.Type),
	}
}

// Indexes of the Location.
func (Location) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("region"),
		index.Fields("country"),
	}
}
