package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Researcher holds the schema definition for a researcher involved in
// sampling. Email uniqueness is enforced by the unique column; the
// RFC shape check happens in the domain layer before write.
type Researcher struct {
	ent.Schema
}

// Mixin of the Researcher.
func (Researcher) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the Researcher.
func (Researcher) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("email").
			NotEmpty().
			Unique(),
		field.String("phone").
			Optional(),
		field.String("affiliation").
			Optional(),
	}
}

// Edges of the Researcher.
func (Researcher) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("assignments", SpecimenResearcher.Type),
	}
}

// Indexes of the Researcher.
func (Researcher) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}
