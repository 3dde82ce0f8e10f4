// Code generated by ent, DO NOT EDIT.

package specimenresearcher

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Kurty-byte/plant-sampling/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldEQ(FieldCreatedAt, v))
}

// SpecimenID applies equality check predicate on the "specimen_id" field. It's identical to SpecimenIDEQ.
func SpecimenID(v string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldEQ(FieldSpecimenID, v))
}

// ResearcherID applies equality check predicate on the "researcher_id" field. It's identical to ResearcherIDEQ.
func ResearcherID(v string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldEQ(FieldResearcherID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldLTE(FieldCreatedAt, v))
}

// SpecimenIDEQ applies the EQ predicate on the "specimen_id" field.
func SpecimenIDEQ(v string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldEQ(FieldSpecimenID, v))
}

// SpecimenIDNEQ applies the NEQ predicate on the "specimen_id" field.
func SpecimenIDNEQ(v string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldNEQ(FieldSpecimenID, v))
}

// SpecimenIDIn applies the In predicate on the "specimen_id" field.
func SpecimenIDIn(vs ...string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldIn(FieldSpecimenID, vs...))
}

// SpecimenIDNotIn applies the NotIn predicate on the "specimen_id" field.
func SpecimenIDNotIn(vs ...string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldNotIn(FieldSpecimenID, vs...))
}

// SpecimenIDGT applies the GT predicate on the "specimen_id" field.
func SpecimenIDGT(v string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldGT(FieldSpecimenID, v))
}

// SpecimenIDGTE applies the GTE predicate on the "specimen_id" field.
func SpecimenIDGTE(v string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldGTE(FieldSpecimenID, v))
}

// SpecimenIDLT applies the LT predicate on the "specimen_id" field.
func SpecimenIDLT(v string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldLT(FieldSpecimenID, v))
}

// SpecimenIDLTE applies the LTE predicate on the "specimen_id" field.
func SpecimenIDLTE(v string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldLTE(FieldSpecimenID, v))
}

// SpecimenIDContains applies the Contains predicate on the "specimen_id" field.
func SpecimenIDContains(v string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldContains(FieldSpecimenID, v))
}

// SpecimenIDHasPrefix applies the HasPrefix predicate on the "specimen_id" field.
func SpecimenIDHasPrefix(v string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldHasPrefix(FieldSpecimenID, v))
}

// SpecimenIDHasSuffix applies the HasSuffix predicate on the "specimen_id" field.
func SpecimenIDHasSuffix(v string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldHasSuffix(FieldSpecimenID, v))
}

// SpecimenIDEqualFold applies the EqualFold predicate on the "specimen_id" field.
func SpecimenIDEqualFold(v string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldEqualFold(FieldSpecimenID, v))
}

// SpecimenIDContainsFold applies the ContainsFold predicate on the "specimen_id" field.
func SpecimenIDContainsFold(v string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldContainsFold(FieldSpecimenID, v))
}

// ResearcherIDEQ applies the EQ predicate on the "researcher_id" field.
func ResearcherIDEQ(v string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldEQ(FieldResearcherID, v))
}

// ResearcherIDNEQ applies the NEQ predicate on the "researcher_id" field.
func ResearcherIDNEQ(v string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldNEQ(FieldResearcherID, v))
}

// ResearcherIDIn applies the In predicate on the "researcher_id" field.
func ResearcherIDIn(vs ...string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldIn(FieldResearcherID, vs...))
}

// ResearcherIDNotIn applies the NotIn predicate on the "researcher_id" field.
func ResearcherIDNotIn(vs ...string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldNotIn(FieldResearcherID, vs...))
}

// ResearcherIDGT applies the GT predicate on the "researcher_id" field.
func ResearcherIDGT(v string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldGT(FieldResearcherID, v))
}

// ResearcherIDGTE applies the GTE predicate on the "researcher_id" field.
func ResearcherIDGTE(v string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldGTE(FieldResearcherID, v))
}

// ResearcherIDLT applies the LT predicate on the "researcher_id" field.
func ResearcherIDLT(v string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldLT(FieldResearcherID, v))
}

// ResearcherIDLTE applies the LTE predicate on the "researcher_id" field.
func ResearcherIDLTE(v string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldLTE(FieldResearcherID, v))
}

// ResearcherIDContains applies the Contains predicate on the "researcher_id" field.
func ResearcherIDContains(v string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldContains(FieldResearcherID, v))
}

// ResearcherIDHasPrefix applies the HasPrefix predicate on the "researcher_id" field.
func ResearcherIDHasPrefix(v string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldHasPrefix(FieldResearcherID, v))
}

// ResearcherIDHasSuffix applies the HasSuffix predicate on the "researcher_id" field.
func ResearcherIDHasSuffix(v string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldHasSuffix(FieldResearcherID, v))
}

// ResearcherIDEqualFold applies the EqualFold predicate on the "researcher_id" field.
func ResearcherIDEqualFold(v string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldEqualFold(FieldResearcherID, v))
}

// ResearcherIDContainsFold applies the ContainsFold predicate on the "researcher_id" field.
func ResearcherIDContainsFold(v string) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldContainsFold(FieldResearcherID, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v Role) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v Role) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...Role) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...Role) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldNotIn(FieldRole, vs...))
}

// RoleIsNil applies the IsNil predicate on the "role" field.
func RoleIsNil() predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldIsNull(FieldRole))
}

// RoleNotNil applies the NotNil predicate on the "role" field.
func RoleNotNil() predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.FieldNotNull(FieldRole))
}

// HasSpecimen applies the HasEdge predicate on the "specimen" edge.
func HasSpecimen() predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SpecimenTable, SpecimenColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSpecimenWith applies the HasEdge predicate on the "specimen" edge with a given conditions (other predicates).
func HasSpecimenWith(preds ...predicate.Specimen) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(func(s *sql.Selector) {
		step := newSpecimenStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasResearcher applies the HasEdge predicate on the "researcher" edge.
func HasResearcher() predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ResearcherTable, ResearcherColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResearcherWith applies the HasEdge predicate on the "researcher" edge with a given conditions (other predicates).
func HasResearcherWith(preds ...predicate.Researcher) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(func(s *sql.Selector) {
		step := newResearcherStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SpecimenResearcher) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SpecimenResearcher) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SpecimenResearcher) predicate.SpecimenResearcher {
	return predicate.SpecimenResearcher(sql.NotPredicates(p))
}
