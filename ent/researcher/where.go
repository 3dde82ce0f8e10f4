// Code generated by ent, DO NOT EDIT.

package researcher

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Kurty-byte/plant-sampling/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Researcher {
	return predicate.Researcher(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Researcher {
	return predicate.Researcher(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Researcher {
	return predicate.Researcher(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Researcher {
	return predicate.Researcher(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Researcher {
	return predicate.Researcher(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Researcher {
	return predicate.Researcher(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Researcher {
	return predicate.Researcher(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Researcher {
	return predicate.Researcher(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Researcher {
	return predicate.Researcher(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Researcher {
	return predicate.Researcher(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Researcher {
	return predicate.Researcher(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Researcher {
	return predicate.Researcher(sql.FieldEQ(FieldCreatedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldEQ(FieldName, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldEQ(FieldEmail, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldEQ(FieldPhone, v))
}

// Affiliation applies equality check predicate on the "affiliation" field. It's identical to AffiliationEQ.
func Affiliation(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldEQ(FieldAffiliation, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Researcher {
	return predicate.Researcher(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Researcher {
	return predicate.Researcher(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Researcher {
	return predicate.Researcher(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Researcher {
	return predicate.Researcher(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Researcher {
	return predicate.Researcher(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Researcher {
	return predicate.Researcher(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Researcher {
	return predicate.Researcher(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Researcher {
	return predicate.Researcher(sql.FieldLTE(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Researcher {
	return predicate.Researcher(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Researcher {
	return predicate.Researcher(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldContainsFold(FieldName, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Researcher {
	return predicate.Researcher(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Researcher {
	return predicate.Researcher(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldContainsFold(FieldEmail, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Researcher {
	return predicate.Researcher(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Researcher {
	return predicate.Researcher(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.Researcher {
	return predicate.Researcher(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.Researcher {
	return predicate.Researcher(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldContainsFold(FieldPhone, v))
}

// AffiliationEQ applies the EQ predicate on the "affiliation" field.
func AffiliationEQ(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldEQ(FieldAffiliation, v))
}

// AffiliationNEQ applies the NEQ predicate on the "affiliation" field.
func AffiliationNEQ(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldNEQ(FieldAffiliation, v))
}

// AffiliationIn applies the In predicate on the "affiliation" field.
func AffiliationIn(vs ...string) predicate.Researcher {
	return predicate.Researcher(sql.FieldIn(FieldAffiliation, vs...))
}

// AffiliationNotIn applies the NotIn predicate on the "affiliation" field.
func AffiliationNotIn(vs ...string) predicate.Researcher {
	return predicate.Researcher(sql.FieldNotIn(FieldAffiliation, vs...))
}

// AffiliationGT applies the GT predicate on the "affiliation" field.
func AffiliationGT(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldGT(FieldAffiliation, v))
}

// AffiliationGTE applies the GTE predicate on the "affiliation" field.
func AffiliationGTE(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldGTE(FieldAffiliation, v))
}

// AffiliationLT applies the LT predicate on the "affiliation" field.
func AffiliationLT(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldLT(FieldAffiliation, v))
}

// AffiliationLTE applies the LTE predicate on the "affiliation" field.
func AffiliationLTE(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldLTE(FieldAffiliation, v))
}

// AffiliationContains applies the Contains predicate on the "affiliation" field.
func AffiliationContains(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldContains(FieldAffiliation, v))
}

// AffiliationHasPrefix applies the HasPrefix predicate on the "affiliation" field.
func AffiliationHasPrefix(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldHasPrefix(FieldAffiliation, v))
}

// AffiliationHasSuffix applies the HasSuffix predicate on the "affiliation" field.
func AffiliationHasSuffix(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldHasSuffix(FieldAffiliation, v))
}

// AffiliationIsNil applies the IsNil predicate on the "affiliation" field.
func AffiliationIsNil() predicate.Researcher {
	return predicate.Researcher(sql.FieldIsNull(FieldAffiliation))
}

// AffiliationNotNil applies the NotNil predicate on the "affiliation" field.
func AffiliationNotNil() predicate.Researcher {
	return predicate.Researcher(sql.FieldNotNull(FieldAffiliation))
}

// AffiliationEqualFold applies the EqualFold predicate on the "affiliation" field.
func AffiliationEqualFold(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldEqualFold(FieldAffiliation, v))
}

// AffiliationContainsFold applies the ContainsFold predicate on the "affiliation" field.
func AffiliationContainsFold(v string) predicate.Researcher {
	return predicate.Researcher(sql.FieldContainsFold(FieldAffiliation, v))
}

// HasAssignments applies the HasEdge predicate on the "assignments" edge.
func HasAssignments() predicate.Researcher {
	return predicate.Researcher(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AssignmentsTable, AssignmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAssignmentsWith applies the HasEdge predicate on the "assignments" edge with a given conditions (other predicates).
func HasAssignmentsWith(preds ...predicate.SpecimenResearcher) predicate.Researcher {
	return predicate.Researcher(func(s *sql.Selector) {
		step := newAssignmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Researcher) predicate.Researcher {
	return predicate.Researcher(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Researcher) predicate.Researcher {
	return predicate.Researcher(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Researcher) predicate.Researcher {
	return predicate.Researcher(sql.NotPredicates(p))
}
