// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// EnvironmentalCondition is the predicate function for environmentalcondition builders.
type EnvironmentalCondition func(*sql.Selector)

// GrowthMetric is the predicate function for growthmetric builders.
type GrowthMetric func(*sql.Selector)

// Location is the predicate function for location builders.
type Location func(*sql.Selector)

// Researcher is the predicate function for researcher builders.
type Researcher func(*sql.Selector)

// Specimen is the predicate function for specimen builders.
type Specimen func(*sql.Selector)

// SpecimenResearcher is the predicate function for specimenresearcher builders.
type SpecimenResearcher func(*sql.Selector)
