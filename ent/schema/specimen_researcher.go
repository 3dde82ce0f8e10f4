package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SpecimenResearcher is the junction between specimens and researchers.
// A (specimen, researcher) pair is unique; rows are removed when the
// specimen is hard-deleted or the researcher is deleted.
type SpecimenResearcher struct {
	ent.Schema
}

// Mixin of the SpecimenResearcher.
func (SpecimenResearcher) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // exposed as assigned_at on the wire
	}
}

// Fields of the SpecimenResearcher.
func (SpecimenResearcher) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("specimen_id"),
		field.String("researcher_id"),
		field.Enum("role").
			Values(
				"lead_researcher",
				"assistant_researcher",
				"field_technician",
				"data_analyst",
				"supervisor",
			).
			Optional(),
	}
}

// Edges of the SpecimenResearcher.
func (SpecimenResearcher) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("specimen", Specimen.Type).
			Ref("researcher_links").
			Field("specimen_id").
			Unique().
			Required(),
		edge.From("researcher", Researcher.Type).
			Ref("assignments").
			Field("researcher_id").
			Unique().
			Required(),
	}
}

// Indexes of the SpecimenResearcher.
func (SpecimenResearcher) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("specimen_id", "researcher_id").Unique(),
		index.Fields("researcher_id"),
	}
}
