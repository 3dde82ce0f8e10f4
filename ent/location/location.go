// Code generated by ent, DO NOT EDIT.

package location

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the location type in the database.
	Label = "location"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldLatitude holds the string denoting the latitude field in the database.
	FieldLatitude = "latitude"
	// FieldLongitude holds the string denoting the longitude field in the database.
	FieldLongitude = "longitude"
	// FieldRegion holds the string denoting the region field in the database.
	FieldRegion = "region"
	// FieldCountry holds the string denoting the country field in the database.
	FieldCountry = "country"
	// FieldSiteType holds the string denoting the site_type field in the database.
	FieldSiteType = "site_type"
	// EdgeSpecimens holds the string denoting the specimens edge name in mutations.
	EdgeSpecimens = "specimens"
	// Table holds the table name of the location in the database.
	Table = "locations"
	// SpecimensTable is the table that holds the specimens relation/edge.
	SpecimensTable = "specimen"
	// SpecimensInverseTable is the table name for the Specimen entity.
	// It exists in this package in order to avoid circular dependency with the "specimen" package.
	SpecimensInverseTable = "specimen"
	// SpecimensColumn is the table column denoting the specimens relation/edge.
	SpecimensColumn = "location_id"
)

// Columns holds all SQL columns for location fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldLatitude,
	FieldLongitude,
	FieldRegion,
	FieldCountry,
	FieldSiteType,
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
	// RegionValidator is a validator for the "region" field. It is called by the builders before save.
	RegionValidator func(string) error
	// CountryValidator is a validator for the "country" field. It is called by the builders before save.
	CountryValidator func(string) error
)

// SiteType defines the type for the "site_type" enum field.
type SiteType string

// SiteType values.
const (
	SiteTypeForest       SiteType = "forest"
	SiteTypeGrassland    SiteType = "grassland"
	SiteTypeWetland      SiteType = "wetland"
	SiteTypeDesert       SiteType = "desert"
	SiteTypeAgricultural SiteType = "agricultural"
	SiteTypeUrban        SiteType = "urban"
	SiteTypeCoastal      SiteType = "coastal"
	SiteTypeMountain     SiteType = "mountain"
)

func (st SiteType) String() string {
	return string(st)
}

// SiteTypeValidator is a validator for the "site_type" field enum values. It is called by the builders before save.
func SiteTypeValidator(st SiteType) error {
	switch st {
	case SiteTypeForest, SiteTypeGrassland, SiteTypeWetland, SiteTypeDesert, SiteTypeAgricultural, SiteTypeUrban, SiteTypeCoastal, SiteTypeMountain:
		return nil
	default:
		return fmt.Errorf("location: invalid enum value for site_type field: %q", st)
	}
}

// OrderOption defines the ordering options for the Location queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLatitude orders the results by the latitude field.
func ByLatitude(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatitude, opts...).ToFunc()
}

// ByLongitude orders the results by the longitude field.
func ByLongitude(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLongitude, opts...).ToFunc()
}

// ByRegion orders the results by the region field.
func ByRegion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegion, opts...).ToFunc()
}

// ByCountry orders the results by the country field.
func ByCountry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCountry, opts...).ToFunc()
}

// BySiteType orders the results by the site_type field.
func BySiteType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSiteType, opts...).ToFunc()
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
