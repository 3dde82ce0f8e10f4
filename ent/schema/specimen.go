package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Specimen holds the schema definition for a plant sampling record, the
// aggregate root. It owns its growth metric series and researcher link
// rows (removed together on hard delete) and holds non-owning
// references to Location and EnvironmentalCondition (restrict on
// delete, enforced at the usecase layer).
type Specimen struct {
	ent.Schema
}

// Mixin of the Specimen.
func (Specimen) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Specimen.
func (Specimen) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("species").
			NotEmpty(),
		field.String("common_name"),
		field.Time("sampling_date"), // date precision; not after today at creation
		field.String("description").
			Optional(),
		field.Enum("status").
			Values("active", "deleted").
			Default("active"),
		field.Time("deleted_at").
			Optional().
			Nillable(),
		field.String("location_id"),
		field.String("condition_id"),
	}
}

// Edges of the Specimen.
func (Specimen) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("location", Location.Type).
			Ref("specimens").
			Field("location_id").
			Unique().
			Required(),
		edge.From("condition", EnvironmentalCondition.Type).
			Ref("specimens").
			Field("condition_id").
			Unique().
			Required(),
		edge.To("growth_metrics", GrowthMetric.Type),
		edge.To("researcher_links", SpecimenResearcher.Type),
	}
}

// Indexes of the Specimen.
func (Specimen) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("species"),
		index.Fields("status"),
		index.Fields("sampling_date"),
		index.Fields("location_id"),
		index.Fields("condition_id"),
	}
}
