// Code generated by ent, DO NOT EDIT.

package environmentalcondition

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the environmentalcondition type in the database.
	Label = "environmental_condition"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldTemperature holds the string denoting the temperature field in the database.
	FieldTemperature = "temperature"
	// FieldHumidity holds the string denoting the humidity field in the database.
	FieldHumidity = "humidity"
	// FieldAltitude holds the string denoting the altitude field in the database.
	FieldAltitude = "altitude"
	// FieldSoilPh holds the string denoting the soil_ph field in the database.
	FieldSoilPh = "soil_ph"
	// FieldSoilType holds the string denoting the soil_type field in the database.
	FieldSoilType = "soil_type"
	// FieldSoilNutrients holds the string denoting the soil_nutrients field in the database.
	FieldSoilNutrients = "soil_nutrients"
	// EdgeSpecimens holds the string denoting the specimens edge name in mutations.
	EdgeSpecimens = "specimens"
	// Table holds the table name of the environmentalcondition in the database.
	Table = "environmental_conditions"
	// SpecimensTable is the table that holds the specimens relation/edge.
	SpecimensTable = "specimen"
	// SpecimensInverseTable is the table name for the Specimen entity.
	// It exists in this package in order to avoid circular dependency with the "specimen" package.
	SpecimensInverseTable = "specimen"
	// SpecimensColumn is the table column denoting the specimens relation/edge.
	SpecimensColumn = "condition_id"
)

// Columns holds all SQL columns for environmentalcondition fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldTemperature,
	FieldHumidity,
	FieldAltitude,
	FieldSoilPh,
	FieldSoilType,
	FieldSoilNutrients,
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

// SoilType defines the type for the "soil_type" enum field.
type SoilType string

// SoilType values.
const (
	SoilTypeClay   SoilType = "clay"
	SoilTypeSandy  SoilType = "sandy"
	SoilTypeLoamy  SoilType = "loamy"
	SoilTypeSilty  SoilType = "silty"
	SoilTypePeaty  SoilType = "peaty"
	SoilTypeChalky SoilType = "chalky"
	SoilTypeSaline SoilType = "saline"
)

func (st SoilType) String() string {
	return string(st)
}

// SoilTypeValidator is a validator for the "soil_type" field enum values. It is called by the builders before save.
func SoilTypeValidator(st SoilType) error {
	switch st {
	case SoilTypeClay, SoilTypeSandy, SoilTypeLoamy, SoilTypeSilty, SoilTypePeaty, SoilTypeChalky, SoilTypeSaline:
		return nil
	default:
		return fmt.Errorf("environmentalcondition: invalid enum value for soil_type field: %q", st)
	}
}

// OrderOption defines the ordering options for the EnvironmentalCondition queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByTemperature orders the results by the temperature field.
func ByTemperature(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemperature, opts...).ToFunc()
}

// ByHumidity orders the results by the humidity field.
func ByHumidity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHumidity, opts...).ToFunc()
}

// ByAltitude orders the results by the altitude field.
func ByAltitude(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAltitude, opts...).ToFunc()
}

// BySoilPh orders the results by the soil_ph field.
func BySoilPh(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSoilPh, opts...).ToFunc()
}

// BySoilType orders the results by the soil_type field.
func BySoilType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSoilType, opts...).ToFunc()
}

// BySpecimensCount orders the results by specimens count.
func BySpecimensCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSpecimensStep(), opts...)
	}
}

// BySpecimens orders the results by specimens terms.
func BySpecimens(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSpecimensStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSpecimensStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SpecimensInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SpecimensTable, SpecimensColumn),
	)
}
