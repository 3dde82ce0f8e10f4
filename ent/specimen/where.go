// Code generated by ent, DO NOT EDIT.

package specimen

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Kurty-byte/plant-sampling/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Specimen {
	return predicate.Specimen(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Specimen {
	return predicate.Specimen(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Specimen {
	return predicate.Specimen(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Specimen {
	return predicate.Specimen(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Specimen {
	return predicate.Specimen(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Specimen {
	return predicate.Specimen(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Specimen {
	return predicate.Specimen(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Specimen {
	return predicate.Specimen(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Specimen {
	return predicate.Specimen(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Specimen {
	return predicate.Specimen(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Specimen {
	return predicate.Specimen(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Specimen {
	return predicate.Specimen(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Specimen {
	return predicate.Specimen(sql.FieldEQ(FieldUpdatedAt, v))
}

// Species applies equality check predicate on the "species" field. It's identical to SpeciesEQ.
func Species(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldEQ(FieldSpecies, v))
}

// CommonName applies equality check predicate on the "common_name" field. It's identical to CommonNameEQ.
func CommonName(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldEQ(FieldCommonName, v))
}

// SamplingDate applies equality check predicate on the "sampling_date" field. It's identical to SamplingDateEQ.
func SamplingDate(v time.Time) predicate.Specimen {
	return predicate.Specimen(sql.FieldEQ(FieldSamplingDate, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldEQ(FieldDescription, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Specimen {
	return predicate.Specimen(sql.FieldEQ(FieldDeletedAt, v))
}

// LocationID applies equality check predicate on the "location_id" field. It's identical to LocationIDEQ.
func LocationID(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldEQ(FieldLocationID, v))
}

// ConditionID applies equality check predicate on the "condition_id" field. It's identical to ConditionIDEQ.
func ConditionID(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldEQ(FieldConditionID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Specimen {
	return predicate.Specimen(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Specimen {
	return predicate.Specimen(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Specimen {
	return predicate.Specimen(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Specimen {
	return predicate.Specimen(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Specimen {
	return predicate.Specimen(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Specimen {
	return predicate.Specimen(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Specimen {
	return predicate.Specimen(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Specimen {
	return predicate.Specimen(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Specimen {
	return predicate.Specimen(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Specimen {
	return predicate.Specimen(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Specimen {
	return predicate.Specimen(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Specimen {
	return predicate.Specimen(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Specimen {
	return predicate.Specimen(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Specimen {
	return predicate.Specimen(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Specimen {
	return predicate.Specimen(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Specimen {
	return predicate.Specimen(sql.FieldLTE(FieldUpdatedAt, v))
}

// SpeciesEQ applies the EQ predicate on the "species" field.
func SpeciesEQ(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldEQ(FieldSpecies, v))
}

// SpeciesNEQ applies the NEQ predicate on the "species" field.
func SpeciesNEQ(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldNEQ(FieldSpecies, v))
}

// SpeciesIn applies the In predicate on the "species" field.
func SpeciesIn(vs ...string) predicate.Specimen {
	return predicate.Specimen(sql.FieldIn(FieldSpecies, vs...))
}

// SpeciesNotIn applies the NotIn predicate on the "species" field.
func SpeciesNotIn(vs ...string) predicate.Specimen {
	return predicate.Specimen(sql.FieldNotIn(FieldSpecies, vs...))
}

// SpeciesGT applies the GT predicate on the "species" field.
func SpeciesGT(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldGT(FieldSpecies, v))
}

// SpeciesGTE applies the GTE predicate on the "species" field.
func SpeciesGTE(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldGTE(FieldSpecies, v))
}

// SpeciesLT applies the LT predicate on the "species" field.
func SpeciesLT(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldLT(FieldSpecies, v))
}

// SpeciesLTE applies the LTE predicate on the "species" field.
func SpeciesLTE(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldLTE(FieldSpecies, v))
}

// SpeciesContains applies the Contains predicate on the "species" field.
func SpeciesContains(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldContains(FieldSpecies, v))
}

// SpeciesHasPrefix applies the HasPrefix predicate on the "species" field.
func SpeciesHasPrefix(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldHasPrefix(FieldSpecies, v))
}

// SpeciesHasSuffix applies the HasSuffix predicate on the "species" field.
func SpeciesHasSuffix(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldHasSuffix(FieldSpecies, v))
}

// SpeciesEqualFold applies the EqualFold predicate on the "species" field.
func SpeciesEqualFold(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldEqualFold(FieldSpecies, v))
}

// SpeciesContainsFold applies the ContainsFold predicate on the "species" field.
func SpeciesContainsFold(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldContainsFold(FieldSpecies, v))
}

// CommonNameEQ applies the EQ predicate on the "common_name" field.
func CommonNameEQ(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldEQ(FieldCommonName, v))
}

// CommonNameNEQ applies the NEQ predicate on the "common_name" field.
func CommonNameNEQ(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldNEQ(FieldCommonName, v))
}

// CommonNameIn applies the In predicate on the "common_name" field.
func CommonNameIn(vs ...string) predicate.Specimen {
	return predicate.Specimen(sql.FieldIn(FieldCommonName, vs...))
}

// CommonNameNotIn applies the NotIn predicate on the "common_name" field.
func CommonNameNotIn(vs ...string) predicate.Specimen {
	return predicate.Specimen(sql.FieldNotIn(FieldCommonName, vs...))
}

// CommonNameGT applies the GT predicate on the "common_name" field.
func CommonNameGT(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldGT(FieldCommonName, v))
}

// CommonNameGTE applies the GTE predicate on the "common_name" field.
func CommonNameGTE(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldGTE(FieldCommonName, v))
}

// CommonNameLT applies the LT predicate on the "common_name" field.
func CommonNameLT(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldLT(FieldCommonName, v))
}

// CommonNameLTE applies the LTE predicate on the "common_name" field.
func CommonNameLTE(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldLTE(FieldCommonName, v))
}

// CommonNameContains applies the Contains predicate on the "common_name" field.
func CommonNameContains(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldContains(FieldCommonName, v))
}

// CommonNameHasPrefix applies the HasPrefix predicate on the "common_name" field.
func CommonNameHasPrefix(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldHasPrefix(FieldCommonName, v))
}

// CommonNameHasSuffix applies the HasSuffix predicate on the "common_name" field.
func CommonNameHasSuffix(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldHasSuffix(FieldCommonName, v))
}

// CommonNameEqualFold applies the EqualFold predicate on the "common_name" field.
func CommonNameEqualFold(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldEqualFold(FieldCommonName, v))
}

// CommonNameContainsFold applies the ContainsFold predicate on the "common_name" field.
func CommonNameContainsFold(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldContainsFold(FieldCommonName, v))
}

// SamplingDateEQ applies the EQ predicate on the "sampling_date" field.
func SamplingDateEQ(v time.Time) predicate.Specimen {
	return predicate.Specimen(sql.FieldEQ(FieldSamplingDate, v))
}

// SamplingDateNEQ applies the NEQ predicate on the "sampling_date" field.
func SamplingDateNEQ(v time.Time) predicate.Specimen {
	return predicate.Specimen(sql.FieldNEQ(FieldSamplingDate, v))
}

// SamplingDateIn applies the In predicate on the "sampling_date" field.
func SamplingDateIn(vs ...time.Time) predicate.Specimen {
	return predicate.Specimen(sql.FieldIn(FieldSamplingDate, vs...))
}

// SamplingDateNotIn applies the NotIn predicate on the "sampling_date" field.
func SamplingDateNotIn(vs ...time.Time) predicate.Specimen {
	return predicate.Specimen(sql.FieldNotIn(FieldSamplingDate, vs...))
}

// SamplingDateGT applies the GT predicate on the "sampling_date" field.
func SamplingDateGT(v time.Time) predicate.Specimen {
	return predicate.Specimen(sql.FieldGT(FieldSamplingDate, v))
}

// SamplingDateGTE applies the GTE predicate on the "sampling_date" field.
func SamplingDateGTE(v time.Time) predicate.Specimen {
	return predicate.Specimen(sql.FieldGTE(FieldSamplingDate, v))
}

// SamplingDateLT applies the LT predicate on the "sampling_date" field.
func SamplingDateLT(v time.Time) predicate.Specimen {
	return predicate.Specimen(sql.FieldLT(FieldSamplingDate, v))
}

// SamplingDateLTE applies the LTE predicate on the "sampling_date" field.
func SamplingDateLTE(v time.Time) predicate.Specimen {
	return predicate.Specimen(sql.FieldLTE(FieldSamplingDate, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Specimen {
	return predicate.Specimen(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Specimen {
	return predicate.Specimen(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Specimen {
	return predicate.Specimen(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Specimen {
	return predicate.Specimen(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldContainsFold(FieldDescription, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Specimen {
	return predicate.Specimen(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Specimen {
	return predicate.Specimen(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Specimen {
	return predicate.Specimen(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Specimen {
	return predicate.Specimen(sql.FieldNotIn(FieldStatus, vs...))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Specimen {
	return predicate.Specimen(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Specimen {
	return predicate.Specimen(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Specimen {
	return predicate.Specimen(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Specimen {
	return predicate.Specimen(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Specimen {
	return predicate.Specimen(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Specimen {
	return predicate.Specimen(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Specimen {
	return predicate.Specimen(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Specimen {
	return predicate.Specimen(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Specimen {
	return predicate.Specimen(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Specimen {
	return predicate.Specimen(sql.FieldNotNull(FieldDeletedAt))
}

// LocationIDEQ applies the EQ predicate on the "location_id" field.
func LocationIDEQ(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldEQ(FieldLocationID, v))
}

// LocationIDNEQ applies the NEQ predicate on the "location_id" field.
func LocationIDNEQ(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldNEQ(FieldLocationID, v))
}

// LocationIDIn applies the In predicate on the "location_id" field.
func LocationIDIn(vs ...string) predicate.Specimen {
	return predicate.Specimen(sql.FieldIn(FieldLocationID, vs...))
}

// LocationIDNotIn applies the NotIn predicate on the "location_id" field.
func LocationIDNotIn(vs ...string) predicate.Specimen {
	return predicate.Specimen(sql.FieldNotIn(FieldLocationID, vs...))
}

// LocationIDGT applies the GT predicate on the "location_id" field.
func LocationIDGT(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldGT(FieldLocationID, v))
}

// LocationIDGTE applies the GTE predicate on the "location_id" field.
func LocationIDGTE(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldGTE(FieldLocationID, v))
}

// LocationIDLT applies the LT predicate on the "location_id" field.
func LocationIDLT(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldLT(FieldLocationID, v))
}

// LocationIDLTE applies the LTE predicate on the "location_id" field.
func LocationIDLTE(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldLTE(FieldLocationID, v))
}

// LocationIDContains applies the Contains predicate on the "location_id" field.
func LocationIDContains(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldContains(FieldLocationID, v))
}

// LocationIDHasPrefix applies the HasPrefix predicate on the "location_id" field.
func LocationIDHasPrefix(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldHasPrefix(FieldLocationID, v))
}

// LocationIDHasSuffix applies the HasSuffix predicate on the "location_id" field.
func LocationIDHasSuffix(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldHasSuffix(FieldLocationID, v))
}

// LocationIDEqualFold applies the EqualFold predicate on the "location_id" field.
func LocationIDEqualFold(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldEqualFold(FieldLocationID, v))
}

// LocationIDContainsFold applies the ContainsFold predicate on the "location_id" field.
func LocationIDContainsFold(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldContainsFold(FieldLocationID, v))
}

// ConditionIDEQ applies the EQ predicate on the "condition_id" field.
func ConditionIDEQ(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldEQ(FieldConditionID, v))
}

// ConditionIDNEQ applies the NEQ predicate on the "condition_id" field.
func ConditionIDNEQ(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldNEQ(FieldConditionID, v))
}

// ConditionIDIn applies the In predicate on the "condition_id" field.
func ConditionIDIn(vs ...string) predicate.Specimen {
	return predicate.Specimen(sql.FieldIn(FieldConditionID, vs...))
}

// ConditionIDNotIn applies the NotIn predicate on the "condition_id" field.
func ConditionIDNotIn(vs ...string) predicate.Specimen {
	return predicate.Specimen(sql.FieldNotIn(FieldConditionID, vs...))
}

// ConditionIDGT applies the GT predicate on the "condition_id" field.
func ConditionIDGT(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldGT(FieldConditionID, v))
}

// ConditionIDGTE applies the GTE predicate on the "condition_id" field.
func ConditionIDGTE(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldGTE(FieldConditionID, v))
}

// ConditionIDLT applies the LT predicate on the "condition_id" field.
func ConditionIDLT(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldLT(FieldConditionID, v))
}

// ConditionIDLTE applies the LTE predicate on the "condition_id" field.
func ConditionIDLTE(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldLTE(FieldConditionID, v))
}

// ConditionIDContains applies the Contains predicate on the "condition_id" field.
func ConditionIDContains(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldContains(FieldConditionID, v))
}

// ConditionIDHasPrefix applies the HasPrefix predicate on the "condition_id" field.
func ConditionIDHasPrefix(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldHasPrefix(FieldConditionID, v))
}

// ConditionIDHasSuffix applies the HasSuffix predicate on the "condition_id" field.
func ConditionIDHasSuffix(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldHasSuffix(FieldConditionID, v))
}

// ConditionIDEqualFold applies the EqualFold predicate on the "condition_id" field.
func ConditionIDEqualFold(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldEqualFold(FieldConditionID, v))
}

// ConditionIDContainsFold applies the ContainsFold predicate on the "condition_id" field.
func ConditionIDContainsFold(v string) predicate.Specimen {
	return predicate.Specimen(sql.FieldContainsFold(FieldConditionID, v))
}

// HasLocation applies the HasEdge predicate on the "location" edge.
func HasLocation() predicate.Specimen {
	return predicate.Specimen(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LocationTable, LocationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLocationWith applies the HasEdge predicate on the "location" edge with a given conditions (other predicates).
func HasLocationWith(preds ...predicate.Location) predicate.Specimen {
	return predicate.Specimen(func(s *sql.Selector) {
		step := newLocationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCondition applies the HasEdge predicate on the "condition" edge.
func HasCondition() predicate.Specimen {
	return predicate.Specimen(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ConditionTable, ConditionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConditionWith applies the HasEdge predicate on the "condition" edge with a given conditions (other predicates).
func HasConditionWith(preds ...predicate.EnvironmentalCondition) predicate.Specimen {
	return predicate.Specimen(func(s *sql.Selector) {
		step := newConditionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasGrowthMetrics applies the HasEdge predicate on the "growth_metrics" edge.
func HasGrowthMetrics() predicate.Specimen {
	return predicate.Specimen(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, GrowthMetricsTable, GrowthMetricsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGrowthMetricsWith applies the HasEdge predicate on the "growth_metrics" edge with a given conditions (other predicates).
func HasGrowthMetricsWith(preds ...predicate.GrowthMetric) predicate.Specimen {
	return predicate.Specimen(func(s *sql.Selector) {
		step := newGrowthMetricsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasResearcherLinks applies the HasEdge predicate on the "researcher_links" edge.
func HasResearcherLinks() predicate.Specimen {
	return predicate.Specimen(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ResearcherLinksTable, ResearcherLinksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResearcherLinksWith applies the HasEdge predicate on the "researcher_links" edge with a given conditions (other predicates).
func HasResearcherLinksWith(preds ...predicate.SpecimenResearcher) predicate.Specimen {
	return predicate.Specimen(func(s *sql.Selector) {
		step := newResearcherLinksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Specimen) predicate.Specimen {
	return predicate.Specimen(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Specimen) predicate.Specimen {
	return predicate.Specimen(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Specimen) predicate.Specimen {
	return predicate.Specimen(sql.NotPredicates(p))
}
