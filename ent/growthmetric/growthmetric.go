// Code generated by ent, DO NOT EDIT.

package growthmetric

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the growthmetric type in the database.
	Label = "growth_metric"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldSpecimenID holds the string denoting the specimen_id field in the database.
	FieldSpecimenID = "specimen_id"
	// FieldHeight holds the string denoting the height field in the database.
	FieldHeight = "height"
	// FieldLeafCount holds the string denoting the leaf_count field in the database.
	FieldLeafCount = "leaf_count"
	// FieldStemDiameter holds the string denoting the stem_diameter field in the database.
	FieldStemDiameter = "stem_diameter"
	// FieldHealthStatus holds the string denoting the health_status field in the database.
	FieldHealthStatus = "health_status"
	// FieldMeasuredAt holds the string denoting the measured_at field in the database.
	FieldMeasuredAt = "measured_at"
	// EdgeSpecimen holds the string denoting the specimen edge name in mutations.
	EdgeSpecimen = "specimen"
	// Table holds the table name of the growthmetric in the database.
	Table = "growth_metrics"
	// SpecimenTable is the table that holds the specimen relation/edge.
	SpecimenTable = "growth_metrics"
	// SpecimenInverseTable is the table name for the Specimen entity.
	// It exists in this package in order to avoid circular dependency with the "specimen" package.
	SpecimenInverseTable = "specimen"
	// SpecimenColumn is the table column denoting the specimen relation/edge.
	SpecimenColumn = "specimen_id"
)

// Columns holds all SQL columns for growthmetric fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldSpecimenID,
	FieldHeight,
	FieldLeafCount,
	FieldStemDiameter,
	FieldHealthStatus,
	FieldMeasuredAt,
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

// HealthStatus defines the type for the "health_status" enum field.
type HealthStatus string

// HealthStatus values.
const (
	HealthStatusExcellent HealthStatus = "excellent"
	HealthStatusGood      HealthStatus = "good"
	HealthStatusFair      HealthStatus = "fair"
	HealthStatusPoor      HealthStatus = "poor"
	HealthStatusCritical  HealthStatus = "critical"
)

func (hs HealthStatus) String() string {
	return string(hs)
}

// HealthStatusValidator is a validator for the "health_status" field enum values. It is called by the builders before save.
func HealthStatusValidator(hs HealthStatus) error {
	switch hs {
	case HealthStatusExcellent, HealthStatusGood, HealthStatusFair, HealthStatusPoor, HealthStatusCritical:
		return nil
	default:
		return fmt.Errorf("growthmetric: invalid enum value for health_status field: %q", hs)
	}
}

// OrderOption defines the ordering options for the GrowthMetric queries.
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

// ByHeight orders the results by the height field.
func ByHeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeight, opts...).ToFunc()
}

// ByLeafCount orders the results by the leaf_count field.
func ByLeafCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeafCount, opts...).ToFunc()
}

// ByStemDiameter orders the results by the stem_diameter field.
func ByStemDiameter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStemDiameter, opts...).ToFunc()
}

// ByHealthStatus orders the results by the health_status field.
func ByHealthStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHealthStatus, opts...).ToFunc()
}

// ByMeasuredAt orders the results by the measured_at field.
func ByMeasuredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeasuredAt, opts...).ToFunc()
}

// BySpecimenField orders the results by specimen field.
func BySpecimenField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSpecimenStep(), sql.OrderByField(field, opts...))
	}
}
func newSpecimenStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SpecimenInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SpecimenTable, SpecimenColumn),
	)
}
