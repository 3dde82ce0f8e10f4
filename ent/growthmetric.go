// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Kurty-byte/plant-sampling/ent/growthmetric"
	"github.com/Kurty-byte/plant-sampling/ent/specimen"
)

// GrowthMetric is the model entity for the GrowthMetric schema.
type GrowthMetric struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// SpecimenID holds the value of the "specimen_id" field.
	SpecimenID string `json:"specimen_id,omitempty"`
	// Height holds the value of the "height" field.
	Height *float64 `json:"height,omitempty"`
	// LeafCount holds the value of the "leaf_count" field.
	LeafCount *int `json:"leaf_count,omitempty"`
	// StemDiameter holds the value of the "stem_diameter" field.
	StemDiameter *float64 `json:"stem_diameter,omitempty"`
	// HealthStatus holds the value of the "health_status" field.
	HealthStatus growthmetric.HealthStatus `json:"health_status,omitempty"`
	// MeasuredAt holds the value of the "measured_at" field.
	MeasuredAt time.Time `json:"measured_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GrowthMetricQuery when eager-loading is set.
	Edges        GrowthMetricEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GrowthMetricEdges holds the relations/edges for other nodes in the graph.
type GrowthMetricEdges struct {
	// Specimen holds the value of the specimen edge.
	Specimen *Specimen `json:"specimen,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SpecimenOrErr returns the Specimen value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GrowthMetricEdges) SpecimenOrErr() (*Specimen, error) {
	if e.Specimen != nil {
		return e.Specimen, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: specimen.Label}
	}
	return nil, &NotLoadedError{edge: "specimen"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GrowthMetric) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case growthmetric.FieldHeight, growthmetric.FieldStemDiameter:
			values[i] = new(sql.NullFloat64)
		case growthmetric.FieldLeafCount:
			values[i] = new(sql.NullInt64)
		case growthmetric.FieldID, growthmetric.FieldSpecimenID, growthmetric.FieldHealthStatus:
			values[i] = new(sql.NullString)
		case growthmetric.FieldCreatedAt, growthmetric.FieldMeasuredAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GrowthMetric fields.
func (_m *GrowthMetric) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case growthmetric.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case growthmetric.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case growthmetric.FieldSpecimenID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field specimen_id", values[i])
			} else if value.Valid {
				_m.SpecimenID = value.String
			}
		case growthmetric.FieldHeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field height", values[i])
			} else if value.Valid {
				_m.Height = new(float64)
				*_m.Height = value.Float64
			}
		case growthmetric.FieldLeafCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field leaf_count", values[i])
			} else if value.Valid {
				_m.LeafCount = new(int)
				*_m.LeafCount = int(value.Int64)
			}
		case growthmetric.FieldStemDiameter:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field stem_diameter", values[i])
			} else if value.Valid {
				_m.StemDiameter = new(float64)
				*_m.StemDiameter = value.Float64
			}
		case growthmetric.FieldHealthStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field health_status", values[i])
			} else if value.Valid {
				_m.HealthStatus = growthmetric.HealthStatus(value.String)
			}
		case growthmetric.FieldMeasuredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field measured_at", values[i])
			} else if value.Valid {
				_m.MeasuredAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GrowthMetric.
// This includes values selected through modifiers, order, etc.
func (_m *GrowthMetric) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySpecimen queries the "specimen" edge of the GrowthMetric entity.
func (_m *GrowthMetric) QuerySpecimen() *SpecimenQuery {
	return NewGrowthMetricClient(_m.config).QuerySpecimen(_m)
}

// Update returns a builder for updating this GrowthMetric.
// Note that you need to call GrowthMetric.Unwrap() before calling this method if this GrowthMetric
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GrowthMetric) Update() *GrowthMetricUpdateOne {
	return NewGrowthMetricClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GrowthMetric entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GrowthMetric) Unwrap() *GrowthMetric {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GrowthMetric is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GrowthMetric) String() string {
	var builder strings.Builder
	builder.WriteString("GrowthMetric(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("specimen_id=")
	builder.WriteString(_m.SpecimenID)
	builder.WriteString(", ")
	if v := _m.Height; v != nil {
		builder.WriteString("height=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LeafCount; v != nil {
		builder.WriteString("leaf_count=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.StemDiameter; v != nil {
		builder.WriteString("stem_diameter=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("health_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.HealthStatus))
	builder.WriteString(", ")
	builder.WriteString("measured_at=")
	builder.WriteString(_m.MeasuredAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GrowthMetrics is a parsable slice of GrowthMetric.
type GrowthMetrics []*GrowthMetric
