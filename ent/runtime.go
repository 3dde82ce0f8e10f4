// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Kurty-byte/plant-sampling/ent/auditlog"
	"github.com/Kurty-byte/plant-sampling/ent/environmentalcondition"
	"github.com/Kurty-byte/plant-sampling/ent/growthmetric"
	"github.com/Kurty-byte/plant-sampling/ent/location"
	"github.com/Kurty-byte/plant-sampling/ent/researcher"
	"github.com/Kurty-byte/plant-sampling/ent/schema"
	"github.com/Kurty-byte/plant-sampling/ent/specimen"
	"github.com/Kurty-byte/plant-sampling/ent/specimenresearcher"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditlogMixin := schema.AuditLog{}.Mixin()
	auditlogMixinFields0 := auditlogMixin[0].Fields()
	_ = auditlogMixinFields0
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogMixinFields0[0].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	environmentalconditionMixin := schema.EnvironmentalCondition{}.Mixin()
	environmentalconditionMixinFields0 := environmentalconditionMixin[0].Fields()
	_ = environmentalconditionMixinFields0
	environmentalconditionFields := schema.EnvironmentalCondition{}.Fields()
	_ = environmentalconditionFields
	// environmentalconditionDescCreatedAt is the schema descriptor for created_at field.
	environmentalconditionDescCreatedAt := environmentalconditionMixinFields0[0].Descriptor()
	// environmentalcondition.DefaultCreatedAt holds the default value on creation for the created_at field.
	environmentalcondition.DefaultCreatedAt = environmentalconditionDescCreatedAt.Default.(func() time.Time)
	growthmetricMixin := schema.GrowthMetric{}.Mixin()
	growthmetricMixinFields0 := growthmetricMixin[0].Fields()
	_ = growthmetricMixinFields0
	growthmetricFields := schema.GrowthMetric{}.Fields()
	_ = growthmetricFields
	// growthmetricDescCreatedAt is the schema descriptor for created_at field.
	growthmetricDescCreatedAt := growthmetricMixinFields0[0].Descriptor()
	// growthmetric.DefaultCreatedAt holds the default value on creation for the created_at field.
	growthmetric.DefaultCreatedAt = growthmetricDescCreatedAt.Default.(func() time.Time)
	locationMixin := schema.Location{}.Mixin()
	locationMixinFields0 := locationMixin[0].Fields()
	_ = locationMixinFields0
	locationFields := schema.Location{}.Fields()
	_ = locationFields
	// locationDescCreatedAt is the schema descriptor for created_at field.
	locationDescCreatedAt := locationMixinFields0[0].Descriptor()
	// location.DefaultCreatedAt holds the default value on creation for the created_at field.
	location.DefaultCreatedAt = locationDescCreatedAt.Default.(func() time.Time)
	// locationDescRegion is the schema descriptor for region field.
	locationDescRegion := locationFields[3].Descriptor()
	// location.RegionValidator is a validator for the "region" field. It is called by the builders before save.
	location.RegionValidator = locationDescRegion.Validators[0].(func(string) error)
	// locationDescCountry is the schema descriptor for country field.
	locationDescCountry := locationFields[4].Descriptor()
	// location.CountryValidator is a validator for the "country" field. It is called by the builders before save.
	location.CountryValidator = locationDescCountry.Validators[0].(func(string) error)
	researcherMixin := schema.Researcher{}.Mixin()
	researcherMixinFields0 := researcherMixin[0].Fields()
	_ = researcherMixinFields0
	researcherFields := schema.Researcher{}.Fields()
	_ = researcherFields
	// researcherDescCreatedAt is the schema descriptor for created_at field.
	researcherDescCreatedAt := researcherMixinFields0[0].Descriptor()
	// researcher.DefaultCreatedAt holds the default value on creation for the created_at field.
	researcher.DefaultCreatedAt = researcherDescCreatedAt.Default.(func() time.Time)
	// researcherDescName is the schema descriptor for name field.
	researcherDescName := researcherFields[1].Descriptor()
	// researcher.NameValidator is a validator for the "name" field. It is called by the builders before save.
	researcher.NameValidator = researcherDescName.Validators[0].(func(string) error)
	// researcherDescEmail is the schema descriptor for email field.
	researcherDescEmail := researcherFields[2].Descriptor()
	// researcher.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	researcher.EmailValidator = researcherDescEmail.Validators[0].(func(string) error)
	specimenMixin := schema.Specimen{}.Mixin()
	specimenMixinFields0 := specimenMixin[0].Fields()
	_ = specimenMixinFields0
	specimenFields := schema.Specimen{}.Fields()
	_ = specimenFields
	// specimenDescCreatedAt is the schema descriptor for created_at field.
	specimenDescCreatedAt := specimenMixinFields0[0].Descriptor()
	// specimen.DefaultCreatedAt holds the default value on creation for the created_at field.
	specimen.DefaultCreatedAt = specimenDescCreatedAt.Default.(func() time.Time)
	// specimenDescUpdatedAt is the schema descriptor for updated_at field.
	specimenDescUpdatedAt := specimenMixinFields0[1].Descriptor()
	// specimen.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	specimen.DefaultUpdatedAt = specimenDescUpdatedAt.Default.(func() time.Time)
	// specimen.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	specimen.UpdateDefaultUpdatedAt = specimenDescUpdatedAt.UpdateDefault.(func() time.Time)
	// specimenDescSpecies is the schema descriptor for species field.
	specimenDescSpecies := specimenFields[1].Descriptor()
	// specimen.SpeciesValidator is a validator for the "species" field. It is called by the builders before save.
	specimen.SpeciesValidator = specimenDescSpecies.Validators[0].(func(string) error)
	specimenresearcherMixin := schema.SpecimenResearcher{}.Mixin()
	specimenresearcherMixinFields0 := specimenresearcherMixin[0].Fields()
	_ = specimenresearcherMixinFields0
	specimenresearcherFields := schema.SpecimenResearcher{}.Fields()
	_ = specimenresearcherFields
	// specimenresearcherDescCreatedAt is the schema descriptor for created_at field.
	specimenresearcherDescCreatedAt := specimenresearcherMixinFields0[0].Descriptor()
	// specimenresearcher.DefaultCreatedAt holds the default value on creation for the created_at field.
	specimenresearcher.DefaultCreatedAt = specimenresearcherDescCreatedAt.Default.(func() time.Time)
}
