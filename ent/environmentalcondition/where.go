// Code generated by ent, DO NOT EDIT.

package environmentalcondition

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Kurty-byte/plant-sampling/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldEQ(FieldCreatedAt, v))
}

// Temperature applies equality check predicate on the "temperature" field. It's identical to TemperatureEQ.
func Temperature(v float64) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldEQ(FieldTemperature, v))
}

// Humidity applies equality check predicate on the "humidity" field. It's identical to HumidityEQ.
func Humidity(v float64) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldEQ(FieldHumidity, v))
}

// Altitude applies equality check predicate on the "altitude" field. It's identical to AltitudeEQ.
func Altitude(v float64) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldEQ(FieldAltitude, v))
}

// SoilPh applies equality check predicate on the "soil_ph" field. It's identical to SoilPhEQ.
func SoilPh(v float64) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldEQ(FieldSoilPh, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldLTE(FieldCreatedAt, v))
}

// TemperatureEQ applies the EQ predicate on the "temperature" field.
func TemperatureEQ(v float64) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldEQ(FieldTemperature, v))
}

// TemperatureNEQ applies the NEQ predicate on the "temperature" field.
func TemperatureNEQ(v float64) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldNEQ(FieldTemperature, v))
}

// TemperatureIn applies the In predicate on the "temperature" field.
func TemperatureIn(vs ...float64) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldIn(FieldTemperature, vs...))
}

// TemperatureNotIn applies the NotIn predicate on the "temperature" field.
func TemperatureNotIn(vs ...float64) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldNotIn(FieldTemperature, vs...))
}

// TemperatureGT applies the GT predicate on the "temperature" field.
func TemperatureGT(v float64) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldGT(FieldTemperature, v))
}

// TemperatureGTE applies the GTE predicate on the "temperature" field.
func TemperatureGTE(v float64) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldGTE(FieldTemperature, v))
}

// TemperatureLT applies the LT predicate on the "temperature" field.
func TemperatureLT(v float64) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldLT(FieldTemperature, v))
}

// TemperatureLTE applies the LTE predicate on the "temperature" field.
func TemperatureLTE(v float64) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldLTE(FieldTemperature, v))
}

// HumidityEQ applies the EQ predicate on the "humidity" field.
func HumidityEQ(v float64) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldEQ(FieldHumidity, v))
}

// HumidityNEQ applies the NEQ predicate on the "humidity" field.
func HumidityNEQ(v float64) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldNEQ(FieldHumidity, v))
}

// HumidityIn applies the In predicate on the "humidity" field.
func HumidityIn(vs ...float64) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldIn(FieldHumidity, vs...))
}

// HumidityNotIn applies the NotIn predicate on the "humidity" field.
func HumidityNotIn(vs ...float64) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldNotIn(FieldHumidity, vs...))
}

// HumidityGT applies the GT predicate on the "humidity" field.
func HumidityGT(v float64) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldGT(FieldHumidity, v))
}

// HumidityGTE applies the GTE predicate on the "humidity" field.
func HumidityGTE(v float64) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldGTE(FieldHumidity, v))
}

// HumidityLT applies the LT predicate on the "humidity" field.
func HumidityLT(v float64) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldLT(FieldHumidity, v))
}

// HumidityLTE applies the LTE predicate on the "humidity" field.
func HumidityLTE(v float64) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldLTE(FieldHumidity, v))
}

// AltitudeEQ applies the EQ predicate on the "altitude" field.
func AltitudeEQ(v float64) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldEQ(FieldAltitude, v))
}

// AltitudeNEQ applies the NEQ predicate on the "altitude" field.
func AltitudeNEQ(v float64) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldNEQ(FieldAltitude, v))
}

// AltitudeIn applies the In predicate on the "altitude" field.
func AltitudeIn(vs ...float64) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldIn(FieldAltitude, vs...))
}

// AltitudeNotIn applies the NotIn predicate on the "altitude" field.
func AltitudeNotIn(vs ...float64) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldNotIn(FieldAltitude, vs...))
}

// AltitudeGT applies the GT predicate on the "altitude" field.
func AltitudeGT(v float64) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldGT(FieldAltitude, v))
}

// AltitudeGTE applies the GTE predicate on the "altitude" field.
func AltitudeGTE(v float64) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldGTE(FieldAltitude, v))
}

// AltitudeLT applies the LT predicate on the "altitude" field.
func AltitudeLT(v float64) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldLT(FieldAltitude, v))
}

// AltitudeLTE applies the LTE predicate on the "altitude" field.
func AltitudeLTE(v float64) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldLTE(FieldAltitude, v))
}

// SoilPhEQ applies the EQ predicate on the "soil_ph" field.
func SoilPhEQ(v float64) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldEQ(FieldSoilPh, v))
}

// SoilPhNEQ applies the NEQ predicate on the "soil_ph" field.
func SoilPhNEQ(v float64) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldNEQ(FieldSoilPh, v))
}

// SoilPhIn applies the In predicate on the "soil_ph" field.
func SoilPhIn(vs ...float64) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldIn(FieldSoilPh, vs...))
}

// SoilPhNotIn applies the NotIn predicate on the "soil_ph" field.
func SoilPhNotIn(vs ...float64) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldNotIn(FieldSoilPh, vs...))
}

// SoilPhGT applies the GT predicate on the "soil_ph" field.
func SoilPhGT(v float64) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldGT(FieldSoilPh, v))
}

// SoilPhGTE applies the GTE predicate on the "soil_ph" field.
func SoilPhGTE(v float64) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldGTE(FieldSoilPh, v))
}

// SoilPhLT applies the LT predicate on the "soil_ph" field.
func SoilPhLT(v float64) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldLT(FieldSoilPh, v))
}

// SoilPhLTE applies the LTE predicate on the "soil_ph" field.
func SoilPhLTE(v float64) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldLTE(FieldSoilPh, v))
}

// SoilTypeEQ applies the EQ predicate on the "soil_type" field.
func SoilTypeEQ(v SoilType) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldEQ(FieldSoilType, v))
}

// SoilTypeNEQ applies the NEQ predicate on the "soil_type" field.
func SoilTypeNEQ(v SoilType) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldNEQ(FieldSoilType, v))
}

// SoilTypeIn applies the In predicate on the "soil_type" field.
func SoilTypeIn(vs ...SoilType) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldIn(FieldSoilType, vs...))
}

// SoilTypeNotIn applies the NotIn predicate on the "soil_type" field.
func SoilTypeNotIn(vs ...SoilType) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldNotIn(FieldSoilType, vs...))
}

// SoilNutrientsIsNil applies the IsNil predicate on the "soil_nutrients" field.
func SoilNutrientsIsNil() predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldIsNull(FieldSoilNutrients))
}

// SoilNutrientsNotNil applies the NotNil predicate on the "soil_nutrients" field.
func SoilNutrientsNotNil() predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.FieldNotNull(FieldSoilNutrients))
}

// HasSpecimens applies the HasEdge predicate on the "specimens" edge.
func HasSpecimens() predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SpecimensTable, SpecimensColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSpecimensWith applies the HasEdge predicate on the "specimens" edge with a given conditions (other predicates).
func HasSpecimensWith(preds ...predicate.Specimen) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(func(s *sql.Selector) {
		step := newSpecimensStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EnvironmentalCondition) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EnvironmentalCondition) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EnvironmentalCondition) predicate.EnvironmentalCondition {
	return predicate.EnvironmentalCondition(sql.NotPredicates(p))
}
