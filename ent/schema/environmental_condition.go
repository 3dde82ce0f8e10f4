package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// EnvironmentalCondition holds the schema definition for environmental
// parameters recorded during sampling. Range checks (temperature,
// humidity, altitude, soil pH) live in the domain layer; deletion is
// rejected while any specimen still references the row.
type EnvironmentalCondition struct {
	ent.Schema
}

// Mixin of the EnvironmentalCondition.
func (EnvironmentalCondition) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // exposed as recorded_at on the wire
	}
}

// Fields of the EnvironmentalCondition.
func (EnvironmentalCondition) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Float("temperature"), // [-50, 60] °C
		field.Float("humidity"),    // [0, 100] %
		field.Float("altitude"),    // [-500, 9000] m
		field.Float("soil_ph"),     // [0, 14]
		field.Enum("soil_type").
			Values(
				"clay",
				"sandy",
				"loamy",
				"silty",
				"peaty",
				"chalky",
				"saline",
			),
		field.JSON("soil_nutrients", map[string]interface{}{}).
			Optional(), // open map, not range-checked
	}
}

// Edges of the EnvironmentalCondition.
func (EnvironmentalCondition) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("specimens", Specimen.Type),
	}
}
