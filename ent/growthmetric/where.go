// Code generated by ent, DO NOT EDIT.

package growthmetric

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Kurty-byte/plant-sampling/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldEQ(FieldCreatedAt, v))
}

// SpecimenID applies equality check predicate on the "specimen_id" field. It's identical to SpecimenIDEQ.
func SpecimenID(v string) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldEQ(FieldSpecimenID, v))
}

// Height applies equality check predicate on the "height" field. It's identical to HeightEQ.
func Height(v float64) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldEQ(FieldHeight, v))
}

// LeafCount applies equality check predicate on the "leaf_count" field. It's identical to LeafCountEQ.
func LeafCount(v int) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldEQ(FieldLeafCount, v))
}

// StemDiameter applies equality check predicate on the "stem_diameter" field. It's identical to StemDiameterEQ.
func StemDiameter(v float64) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldEQ(FieldStemDiameter, v))
}

// MeasuredAt applies equality check predicate on the "measured_at" field. It's identical to MeasuredAtEQ.
func MeasuredAt(v time.Time) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldEQ(FieldMeasuredAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldLTE(FieldCreatedAt, v))
}

// SpecimenIDEQ applies the EQ predicate on the "specimen_id" field.
func SpecimenIDEQ(v string) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldEQ(FieldSpecimenID, v))
}

// SpecimenIDNEQ applies the NEQ predicate on the "specimen_id" field.
func SpecimenIDNEQ(v string) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldNEQ(FieldSpecimenID, v))
}

// SpecimenIDIn applies the In predicate on the "specimen_id" field.
func SpecimenIDIn(vs ...string) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldIn(FieldSpecimenID, vs...))
}

// SpecimenIDNotIn applies the NotIn predicate on the "specimen_id" field.
func SpecimenIDNotIn(vs ...string) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldNotIn(FieldSpecimenID, vs...))
}

// SpecimenIDGT applies the GT predicate on the "specimen_id" field.
func SpecimenIDGT(v string) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldGT(FieldSpecimenID, v))
}

// SpecimenIDGTE applies the GTE predicate on the "specimen_id" field.
func SpecimenIDGTE(v string) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldGTE(FieldSpecimenID, v))
}

// SpecimenIDLT applies the LT predicate on the "specimen_id" field.
func SpecimenIDLT(v string) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldLT(FieldSpecimenID, v))
}

// SpecimenIDLTE applies the LTE predicate on the "specimen_id" field.
func SpecimenIDLTE(v string) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldLTE(FieldSpecimenID, v))
}

// SpecimenIDContains applies the Contains predicate on the "specimen_id" field.
func SpecimenIDContains(v string) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldContains(FieldSpecimenID, v))
}

// SpecimenIDHasPrefix applies the HasPrefix predicate on the "specimen_id" field.
func SpecimenIDHasPrefix(v string) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldHasPrefix(FieldSpecimenID, v))
}

// SpecimenIDHasSuffix applies the HasSuffix predicate on the "specimen_id" field.
func SpecimenIDHasSuffix(v string) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldHasSuffix(FieldSpecimenID, v))
}

// SpecimenIDEqualFold applies the EqualFold predicate on the "specimen_id" field.
func SpecimenIDEqualFold(v string) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldEqualFold(FieldSpecimenID, v))
}

// SpecimenIDContainsFold applies the ContainsFold predicate on the "specimen_id" field.
func SpecimenIDContainsFold(v string) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldContainsFold(FieldSpecimenID, v))
}

// HeightEQ applies the EQ predicate on the "height" field.
func HeightEQ(v float64) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldEQ(FieldHeight, v))
}

// HeightNEQ applies the NEQ predicate on the "height" field.
func HeightNEQ(v float64) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldNEQ(FieldHeight, v))
}

// HeightIn applies the In predicate on the "height" field.
func HeightIn(vs ...float64) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldIn(FieldHeight, vs...))
}

// HeightNotIn applies the NotIn predicate on the "height" field.
func HeightNotIn(vs ...float64) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldNotIn(FieldHeight, vs...))
}

// HeightGT applies the GT predicate on the "height" field.
func HeightGT(v float64) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldGT(FieldHeight, v))
}

// HeightGTE applies the GTE predicate on the "height" field.
func HeightGTE(v float64) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldGTE(FieldHeight, v))
}

// HeightLT applies the LT predicate on the "height" field.
func HeightLT(v float64) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldLT(FieldHeight, v))
}

// HeightLTE applies the LTE predicate on the "height" field.
func HeightLTE(v float64) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldLTE(FieldHeight, v))
}

// HeightIsNil applies the IsNil predicate on the "height" field.
func HeightIsNil() predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldIsNull(FieldHeight))
}

// HeightNotNil applies the NotNil predicate on the "height" field.
func HeightNotNil() predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldNotNull(FieldHeight))
}

// LeafCountEQ applies the EQ predicate on the "leaf_count" field.
func LeafCountEQ(v int) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldEQ(FieldLeafCount, v))
}

// LeafCountNEQ applies the NEQ predicate on the "leaf_count" field.
func LeafCountNEQ(v int) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldNEQ(FieldLeafCount, v))
}

// LeafCountIn applies the In predicate on the "leaf_count" field.
func LeafCountIn(vs ...int) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldIn(FieldLeafCount, vs...))
}

// LeafCountNotIn applies the NotIn predicate on the "leaf_count" field.
func LeafCountNotIn(vs ...int) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldNotIn(FieldLeafCount, vs...))
}

// LeafCountGT applies the GT predicate on the "leaf_count" field.
func LeafCountGT(v int) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldGT(FieldLeafCount, v))
}

// LeafCountGTE applies the GTE predicate on the "leaf_count" field.
func LeafCountGTE(v int) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldGTE(FieldLeafCount, v))
}

// LeafCountLT applies the LT predicate on the "leaf_count" field.
func LeafCountLT(v int) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldLT(FieldLeafCount, v))
}

// LeafCountLTE applies the LTE predicate on the "leaf_count" field.
func LeafCountLTE(v int) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldLTE(FieldLeafCount, v))
}

// LeafCountIsNil applies the IsNil predicate on the "leaf_count" field.
func LeafCountIsNil() predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldIsNull(FieldLeafCount))
}

// LeafCountNotNil applies the NotNil predicate on the "leaf_count" field.
func LeafCountNotNil() predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldNotNull(FieldLeafCount))
}

// StemDiameterEQ applies the EQ predicate on the "stem_diameter" field.
func StemDiameterEQ(v float64) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldEQ(FieldStemDiameter, v))
}

// StemDiameterNEQ applies the NEQ predicate on the "stem_diameter" field.
func StemDiameterNEQ(v float64) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldNEQ(FieldStemDiameter, v))
}

// StemDiameterIn applies the In predicate on the "stem_diameter" field.
func StemDiameterIn(vs ...float64) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldIn(FieldStemDiameter, vs...))
}

// StemDiameterNotIn applies the NotIn predicate on the "stem_diameter" field.
func StemDiameterNotIn(vs ...float64) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldNotIn(FieldStemDiameter, vs...))
}

// StemDiameterGT applies the GT predicate on the "stem_diameter" field.
func StemDiameterGT(v float64) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldGT(FieldStemDiameter, v))
}

// StemDiameterGTE applies the GTE predicate on the "stem_diameter" field.
func StemDiameterGTE(v float64) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldGTE(FieldStemDiameter, v))
}

// StemDiameterLT applies the LT predicate on the "stem_diameter" field.
func StemDiameterLT(v float64) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldLT(FieldStemDiameter, v))
}

// StemDiameterLTE applies the LTE predicate on the "stem_diameter" field.
func StemDiameterLTE(v float64) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldLTE(FieldStemDiameter, v))
}

// StemDiameterIsNil applies the IsNil predicate on the "stem_diameter" field.
func StemDiameterIsNil() predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldIsNull(FieldStemDiameter))
}

// StemDiameterNotNil applies the NotNil predicate on the "stem_diameter" field.
func StemDiameterNotNil() predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldNotNull(FieldStemDiameter))
}

// HealthStatusEQ applies the EQ predicate on the "health_status" field.
func HealthStatusEQ(v HealthStatus) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldEQ(FieldHealthStatus, v))
}

// HealthStatusNEQ applies the NEQ predicate on the "health_status" field.
func HealthStatusNEQ(v HealthStatus) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldNEQ(FieldHealthStatus, v))
}

// HealthStatusIn applies the In predicate on the "health_status" field.
func HealthStatusIn(vs ...HealthStatus) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldIn(FieldHealthStatus, vs...))
}

// HealthStatusNotIn applies the NotIn predicate on the "health_status" field.
func HealthStatusNotIn(vs ...HealthStatus) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldNotIn(FieldHealthStatus, vs...))
}

// HealthStatusIsNil applies the IsNil predicate on the "health_status" field.
func HealthStatusIsNil() predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldIsNull(FieldHealthStatus))
}

// HealthStatusNotNil applies the NotNil predicate on the "health_status" field.
func HealthStatusNotNil() predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldNotNull(FieldHealthStatus))
}

// MeasuredAtEQ applies the EQ predicate on the "measured_at" field.
func MeasuredAtEQ(v time.Time) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldEQ(FieldMeasuredAt, v))
}

// MeasuredAtNEQ applies the NEQ predicate on the "measured_at" field.
func MeasuredAtNEQ(v time.Time) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldNEQ(FieldMeasuredAt, v))
}

// MeasuredAtIn applies the In predicate on the "measured_at" field.
func MeasuredAtIn(vs ...time.Time) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldIn(FieldMeasuredAt, vs...))
}

// MeasuredAtNotIn applies the NotIn predicate on the "measured_at" field.
func MeasuredAtNotIn(vs ...time.Time) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldNotIn(FieldMeasuredAt, vs...))
}

// MeasuredAtGT applies the GT predicate on the "measured_at" field.
func MeasuredAtGT(v time.Time) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldGT(FieldMeasuredAt, v))
}

// MeasuredAtGTE applies the GTE predicate on the "measured_at" field.
func MeasuredAtGTE(v time.Time) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldGTE(FieldMeasuredAt, v))
}

// MeasuredAtLT applies the LT predicate on the "measured_at" field.
func MeasuredAtLT(v time.Time) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldLT(FieldMeasuredAt, v))
}

// MeasuredAtLTE applies the LTE predicate on the "measured_at" field.
func MeasuredAtLTE(v time.Time) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.FieldLTE(FieldMeasuredAt, v))
}

// HasSpecimen applies the HasEdge predicate on the "specimen" edge.
func HasSpecimen() predicate.GrowthMetric {
	return predicate.GrowthMetric(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SpecimenTable, SpecimenColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSpecimenWith applies the HasEdge predicate on the "specimen" edge with a given conditions (other predicates).
func HasSpecimenWith(preds ...predicate.Specimen) predicate.GrowthMetric {
	return predicate.GrowthMetric(func(s *sql.Selector) {
		step := newSpecimenStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GrowthMetric) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GrowthMetric) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GrowthMetric) predicate.GrowthMetric {
	return predicate.GrowthMetric(sql.NotPredicates(p))
}
