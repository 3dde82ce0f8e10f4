package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GrowthMetric holds one point of a specimen's growth time-series.
// measured_at must not precede the specimen's sampling date; the check
// runs in the domain/usecase layer before write.
type GrowthMetric struct {
	ent.Schema
}

// Mixin of the GrowthMetric.
func (GrowthMetric) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the GrowthMetric.
func (GrowthMetric) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("specimen_id"),
		field.Float("height").
			Optional().
			Nillable(), // [0, 200] cm
		field.Int("leaf_count").
			Optional().
			Nillable(), // [0, 100000]
		field.Float("stem_diameter").
			Optional().
			Nillable(), // [0, 50] cm
		field.Enum("health_status").
			Values(
				"excellent",
				"good",
				"fair",
				"poor",
				"critical",
			).
			Optional(),
		field.Time("measured_at"),
	}
}

// Edges of the GrowthMetric.
func (GrowthMetric) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("specimen", Specimen.Type).
			Ref("growth_metrics").
			Field("specimen_id").
			Unique().
			Required(),
	}
}

// Indexes of the GrowthMetric.
func (GrowthMetric) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("specimen_id"),
		index.Fields("measured_at"),
		index.Fields("health_status"),
	}
}
