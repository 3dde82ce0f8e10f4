// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Kurty-byte/plant-sampling/ent/environmentalcondition"
)

// EnvironmentalCondition is the model entity for the EnvironmentalCondition schema.
type EnvironmentalCondition struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Temperature holds the value of the "temperature" field.
	Temperature float64 `json:"temperature,omitempty"`
	// Humidity holds the value of the "humidity" field.
	Humidity float64 `json:"humidity,omitempty"`
	// Altitude holds the value of the "altitude" field.
	Altitude float64 `json:"altitude,omitempty"`
	// SoilPh holds the value of the "soil_ph" field.
	SoilPh float64 `json:"soil_ph,omitempty"`
	// SoilType holds the value of the "soil_type" field.
	SoilType environmentalcondition.SoilType `json:"soil_type,omitempty"`
	// SoilNutrients holds the value of the "soil_nutrients" field.
	SoilNutrients map[string]interface{} `json:"soil_nutrients,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EnvironmentalConditionQuery when eager-loading is set.
	Edges        EnvironmentalConditionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EnvironmentalConditionEdges holds the relations/edges for other nodes in the graph.
type EnvironmentalConditionEdges struct {
	// Specimens holds the value of the specimens edge.
	Specimens []*Specimen `json:"specimens,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SpecimensOrErr returns the Specimens value or an error if the edge
// was not loaded in eager-loading.
func (e EnvironmentalConditionEdges) SpecimensOrErr() ([]*Specimen, error) {
	if e.loadedTypes[0] {
		return e.Specimens, nil
	}
	return nil, &NotLoadedError{edge: "specimens"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EnvironmentalCondition) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case environmentalcondition.FieldSoilNutrients:
			values[i] = new([]byte)
		case environmentalcondition.FieldTemperature, environmentalcondition.FieldHumidity, environmentalcondition.FieldAltitude, environmentalcondition.FieldSoilPh:
			values[i] = new(sql.NullFloat64)
		case environmentalcondition.FieldID, environmentalcondition.FieldSoilType:
			values[i] = new(sql.NullString)
		case environmentalcondition.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EnvironmentalCondition fields.
func (_m *EnvironmentalCondition) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case environmentalcondition.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case environmentalcondition.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case environmentalcondition.FieldTemperature:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field temperature", values[i])
			} else if value.Valid {
				_m.Temperature = value.Float64
			}
		case environmentalcondition.FieldHumidity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field humidity", values[i])
			} else if value.Valid {
				_m.Humidity = value.Float64
			}
		case environmentalcondition.FieldAltitude:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field altitude", values[i])
			} else if value.Valid {
				_m.Altitude = value.Float64
			}
		case environmentalcondition.FieldSoilPh:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field soil_ph", values[i])
			} else if value.Valid {
				_m.SoilPh = value.Float64
			}
		case environmentalcondition.FieldSoilType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field soil_type", values[i])
			} else if value.Valid {
				_m.SoilType = environmentalcondition.SoilType(value.String)
			}
		case environmentalcondition.FieldSoilNutrients:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field soil_nutrients", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SoilNutrients); err != nil {
					return fmt.Errorf("unmarshal field soil_nutrients: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EnvironmentalCondition.
// This includes values selected through modifiers, order, etc.
func (_m *EnvironmentalCondition) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySpecimens queries the "specimens" edge of the EnvironmentalCondition entity.
func (_m *EnvironmentalCondition) QuerySpecimens() *SpecimenQuery {
	return NewEnvironmentalConditionClient(_m.config).QuerySpecimens(_m)
}

// Update returns a builder for updating this EnvironmentalCondition.
// Note that you need to call EnvironmentalCondition.Unwrap() before calling this method if this EnvironmentalCondition
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EnvironmentalCondition) Update() *EnvironmentalConditionUpdateOne {
	return NewEnvironmentalConditionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EnvironmentalCondition entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EnvironmentalCondition) Unwrap() *EnvironmentalCondition {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EnvironmentalCondition is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EnvironmentalCondition) String() string {
	var builder strings.Builder
	builder.WriteString("EnvironmentalCondition(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("temperature=")
	builder.WriteString(fmt.Sprintf("%v", _m.Temperature))
	builder.WriteString(", ")
	builder.WriteString("humidity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Humidity))
	builder.WriteString(", ")
	builder.WriteString("altitude=")
	builder.WriteString(fmt.Sprintf("%v", _m.Altitude))
	builder.WriteString(", ")
	builder.WriteString("soil_ph=")
	builder.WriteString(fmt.Sprintf("%v", _m.SoilPh))
	builder.WriteString(", ")
	builder.WriteString("soil_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.SoilType))
	builder.WriteString(", ")
	builder.WriteString("soil_nutrients=")
	builder.WriteString(fmt.Sprintf("%v", _m.SoilNutrients))
	builder.WriteByte(')')
	return builder.String()
}

// EnvironmentalConditions is a parsable slice of EnvironmentalCondition.
type EnvironmentalConditions []*EnvironmentalCondition
