// Code generated by ent, DO NOT EDIT.

package specimenresearcher

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the specimenresearcher type in the database.
	Label = "specimen_researcher"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldSpecimenID holds the string denoting the specimen_id field in the database.
	FieldSpecimenID = "specimen_id"
	// FieldResearcherID holds the string denoting the researcher_id field in the database.
	FieldResearcherID = "researcher_id"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// EdgeSpecimen holds the string denoting the specimen edge name in mutations.
	EdgeSpecimen = "specimen"
	// EdgeResearcher holds the string denoting the researcher edge name in mutations.
	EdgeResearcher = "researcher"
	// Table holds the table name of the specimenresearcher in the database.
	Table = "specimen_researchers"
	// SpecimenTable is the table that holds the specimen relation/edge.
	SpecimenTable = "specimen_researchers"
	// SpecimenInverseTable is the table name for the Specimen entity.
	// It exists in this package in order to avoid circular dependency with the "specimen" package.
	SpecimenInverseTable = "specimen"
	// SpecimenColumn is the table column denoting the specimen relation/edge.
	SpecimenColumn = "specimen_id"
	// ResearcherTable is the table that holds the researcher relation/edge.
	ResearcherTable = "specimen_researchers"
	// ResearcherInverseTable is the table name for the Researcher entity.
	// It exists in this package in order to avoid circular dependency with the "researcher" package.
	ResearcherInverseTable = "researchers"
	// ResearcherColumn is the table column denoting the researcher relation/edge.
	ResearcherColumn = "researcher_id"
)

// Columns holds all SQL columns for specimenresearcher fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldSpecimenID,
	FieldResearcherID,
	FieldRole,
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
)

// Role defines the type for the "role" enum field.
type Role string

// Role values.
const (
	RoleLeadResearcher      Role = "lead_researcher"
	RoleAssistantResearcher Role = "assistant_researcher"
	RoleFieldTechnician     Role = "field_technician"
	RoleDataAnalyst         Role = "data_analyst"
	RoleSupervisor          Role = "supervisor"
)

func (r Role) String() string {
	return string(r)
}

// RoleValidator is a validator for the "role" field enum values. It is called by the builders before save.
func RoleValidator(r Role) error {
	switch r {
	case RoleLeadResearcher, RoleAssistantResearcher, RoleFieldTechnician, RoleDataAnalyst, RoleSupervisor:
		return nil
	default:
		return fmt.Errorf("specimenresearcher: invalid enum value for role field: %q", r)
	}
}

// OrderOption defines the ordering options for the SpecimenResearcher queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySpecimenID orders the results by the specimen_id field.
func BySpecimenID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpecimenID, opts...).ToFunc()
}

// ByResearcherID orders the results by the researcher_id field.
func ByResearcherID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResearcherID, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// BySpecimenField orders the results by specimen field.
func BySpecimenField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSpecimenStep(), sql.OrderByField(field, opts...))
	}
}

// ByResearcherField orders the results by researcher field.
func ByResearcherField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newResearcherStep(), sql.OrderByField(field, opts...))
	}
}
func newSpecimenStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SpecimenInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SpecimenTable, SpecimenColumn),
	)
}
func newResearcherStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ResearcherInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ResearcherTable, ResearcherColumn),
	)
}
