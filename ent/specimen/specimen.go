// Code generated by ent, DO NOT EDIT.

package specimen

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the specimen type in the database.
	Label = "specimen"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldSpecies holds the string denoting the species field in the database.
	FieldSpecies = "species"
	// FieldCommonName holds the string denoting the common_name field in the database.
	FieldCommonName = "common_name"
	// FieldSamplingDate holds the string denoting the sampling_date field in the database.
	FieldSamplingDate = "sampling_date"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldLocationID holds the string denoting the location_id field in the database.
	FieldLocationID = "location_id"
	// FieldConditionID holds the string denoting the condition_id field in the database.
	FieldConditionID = "condition_id"
	// EdgeLocation holds the string denoting the location edge name in mutations.
	EdgeLocation = "location"
	// EdgeCondition holds the string denoting the condition edge name in mutations.
	EdgeCondition = "condition"
	// EdgeGrowthMetrics holds the string denoting the growth_metrics edge name in mutations.
	EdgeGrowthMetrics = "growth_metrics"
	// EdgeResearcherLinks holds the string denoting the researcher_links edge name in mutations.
	EdgeResearcherLinks = "researcher_links"
	// Table holds the table name of the specimen in the database.
	Table = "specimen"
	// LocationTable is the table that holds the location relation/edge.
	LocationTable = "specimen"
	// LocationInverseTable is the table name for the Location entity.
	// It exists in this package in order to avoid circular dependency with the "location" package.
	LocationInverseTable = "locations"
	// LocationColumn is the table column denoting the location relation/edge.
	LocationColumn = "location_id"
	// ConditionTable is the table that holds the condition relation/edge.
	ConditionTable = "specimen"
	// ConditionInverseTable is the table name for the EnvironmentalCondition entity.
	// It exists in this package in order to avoid circular dependency with the "environmentalcondition" package.
	ConditionInverseTable = "environmental_conditions"
	// ConditionColumn is the table column denoting the condition relation/edge.
	ConditionColumn = "condition_id"
	// GrowthMetricsTable is the table that holds the growth_metrics relation/edge.
	GrowthMetricsTable = "growth_metrics"
	// GrowthMetricsInverseTable is the table name for the GrowthMetric entity.
	// It exists in this package in order to avoid circular dependency with the "growthmetric" package.
	GrowthMetricsInverseTable = "growth_metrics"
	// GrowthMetricsColumn is the table column denoting the growth_metrics relation/edge.
	GrowthMetricsColumn = "specimen_id"
	// ResearcherLinksTable is the table that holds the researcher_links relation/edge.
	ResearcherLinksTable = "specimen_researchers"
	// ResearcherLinksInverseTable is the table name for the SpecimenResearcher entity.
	// It exists in this package in order to avoid circular dependency with the "specimenresearcher" package.
	ResearcherLinksInverseTable = "specimen_researchers"
	// ResearcherLinksColumn is the table column denoting the researcher_links relation/edge.
	ResearcherLinksColumn = "specimen_id"
)

// Columns holds all SQL columns for specimen fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldSpecies,
	FieldCommonName,
	FieldSamplingDate,
	FieldDescription,
	FieldStatus,
	FieldDeletedAt,
	FieldLocationID,
	FieldConditionID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// SpeciesValidator is a validator for the "species" field. It is called by the builders before save.
	SpeciesValidator func(string) error
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive  Status = "active"
	StatusDeleted Status = "deleted"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusDeleted:
		return nil
	default:
		return fmt.Errorf("specimen: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Specimen queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// BySpecies orders the results by the species field.
func BySpecies(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpecies, opts...).ToFunc()
}

// ByCommonName orders the results by the common_name field.
func ByCommonName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommonName, opts...).ToFunc()
}

// BySamplingDate orders the results by the sampling_date field.
func BySamplingDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSamplingDate, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByLocationID orders the results by the location_id field.
func ByLocationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocationID, opts...).ToFunc()
}

// ByConditionID orders the results by the condition_id field.
func ByConditionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConditionID, opts...).ToFunc()
}

// ByLocationField orders the results by location field.
func ByLocationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLocationStep(), sql.OrderByField(field, opts...))
	}
}

// ByConditionField orders the results by condition field.
func ByConditionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConditionStep(), sql.OrderByField(field, opts...))
	}
}

// ByGrowthMetricsCount orders the results by growth_metrics count.
func ByGrowthMetricsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newGrowthMetricsStep(), opts...)
	}
}

// ByGrowthMetrics orders the results by growth_metrics terms.
func ByGrowthMetrics(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGrowthMetricsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByResearcherLinksCount orders the results by researcher_links count.
func ByResearcherLinksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newResearcherLinksStep(), opts...)
	}
}

// ByResearcherLinks orders the results by researcher_links terms.
func ByResearcherLinks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newResearcherLinksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newLocationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LocationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, LocationTable, LocationColumn),
	)
}
func newConditionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConditionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ConditionTable, ConditionColumn),
	)
}
func newGrowthMetricsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GrowthMetricsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, GrowthMetricsTable, GrowthMetricsColumn),
	)
}
func newResearcherLinksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ResearcherLinksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ResearcherLinksTable, ResearcherLinksColumn),
	)
}
