// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Kurty-byte/plant-sampling/ent/environmentalcondition"
	"github.com/Kurty-byte/plant-sampling/ent/location"
	"github.com/Kurty-byte/plant-sampling/ent/specimen"
)

// Specimen is the model entity for the Specimen schema.
type Specimen struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Species holds the value of the "species" field.
	Species string `json:"species,omitempty"`
	// CommonName holds the value of the "common_name" field.
	CommonName string `json:"common_name,omitempty"`
	// SamplingDate holds the value of the "sampling_date" field.
	SamplingDate time.Time `json:"sampling_date,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Status holds the value of the "status" field.
	Status specimen.Status `json:"status,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// LocationID holds the value of the "location_id" field.
	LocationID string `json:"location_id,omitempty"`
	// ConditionID holds the value of the "condition_id" field.
	ConditionID string `json:"condition_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SpecimenQuery when eager-loading is set.
	Edges        SpecimenEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SpecimenEdges holds the relations/edges for other nodes in the graph.
type SpecimenEdges struct {
	// Location holds the value of the location edge.
	Location *Location `json:"location,omitempty"`
	// Condition holds the value of the condition edge.
	Condition *EnvironmentalCondition `json:"condition,omitempty"`
	// GrowthMetrics holds the value of the growth_metrics edge.
	GrowthMetrics []*GrowthMetric `json:"growth_metrics,omitempty"`
	// ResearcherLinks holds the value of the researcher_links edge.
	ResearcherLinks []*SpecimenResearcher `json:"researcher_links,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// LocationOrErr returns the Location value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SpecimenEdges) LocationOrErr() (*Location, error) {
	if e.Location != nil {
		return e.Location, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: location.Label}
	}
	return nil, &NotLoadedError{edge: "location"}
}

// ConditionOrErr returns the Condition value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SpecimenEdges) ConditionOrErr() (*EnvironmentalCondition, error) {
	if e.Condition != nil {
		return e.Condition, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: environmentalcondition.Label}
	}
	return nil, &NotLoadedError{edge: "condition"}
}

// GrowthMetricsOrErr returns the GrowthMetrics value or an error if the edge
// was not loaded in eager-loading.
func (e SpecimenEdges) GrowthMetricsOrErr() ([]*GrowthMetric, error) {
	if e.loadedTypes[2] {
		return e.GrowthMetrics, nil
	}
	return nil, &NotLoadedError{edge: "growth_metrics"}
}

// ResearcherLinksOrErr returns the ResearcherLinks value or an error if the edge
// was not loaded in eager-loading.
func (e SpecimenEdges) ResearcherLinksOrErr() ([]*SpecimenResearcher, error) {
	if e.loadedTypes[3] {
		return e.ResearcherLinks, nil
	}
	return nil, &NotLoadedError{edge: "researcher_links"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Specimen) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case specimen.FieldID, specimen.FieldSpecies, specimen.FieldCommonName, specimen.FieldDescription, specimen.FieldStatus, specimen.FieldLocationID, specimen.FieldConditionID:
			values[i] = new(sql.NullString)
		case specimen.FieldCreatedAt, specimen.FieldUpdatedAt, specimen.FieldSamplingDate, specimen.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Specimen fields.
func (_m *Specimen) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case specimen.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case specimen.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case specimen.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case specimen.FieldSpecies:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field species", values[i])
			} else if value.Valid {
				_m.Species = value.String
			}
		case specimen.FieldCommonName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field common_name", values[i])
			} else if value.Valid {
				_m.CommonName = value.String
			}
		case specimen.FieldSamplingDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field sampling_date", values[i])
			} else if value.Valid {
				_m.SamplingDate = value.Time
			}
		case specimen.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case specimen.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = specimen.Status(value.String)
			}
		case specimen.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case specimen.FieldLocationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location_id", values[i])
			} else if value.Valid {
				_m.LocationID = value.String
			}
		case specimen.FieldConditionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field condition_id", values[i])
			} else if value.Valid {
				_m.ConditionID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Specimen.
// This includes values selected through modifiers, order, etc.
func (_m *Specimen) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLocation queries the "location" edge of the Specimen entity.
func (_m *Specimen) QueryLocation() *LocationQuery {
	return NewSpecimenClient(_m.config).QueryLocation(_m)
}

// QueryCondition queries the "condition" edge of the Specimen entity.
func (_m *Specimen) QueryCondition() *EnvironmentalConditionQuery {
	return NewSpecimenClient(_m.config).QueryCondition(_m)
}

// QueryGrowthMetrics queries the "growth_metrics" edge of the Specimen entity.
func (_m *Specimen) QueryGrowthMetrics() *GrowthMetricQuery {
	return NewSpecimenClient(_m.config).QueryGrowthMetrics(_m)
}

// QueryResearcherLinks queries the "researcher_links" edge of the Specimen entity.
func (_m *Specimen) QueryResearcherLinks() *SpecimenResearcherQuery {
	return NewSpecimenClient(_m.config).QueryResearcherLinks(_m)
}

// Update returns a builder for updating this Specimen.
// Note that you need to call Specimen.Unwrap() before calling this method if this Specimen
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Specimen) Update() *SpecimenUpdateOne {
	return NewSpecimenClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Specimen entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Specimen) Unwrap() *Specimen {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Specimen is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Specimen) String() string {
	var builder strings.Builder
	builder.WriteString("Specimen(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("species=")
	builder.WriteString(_m.Species)
	builder.WriteString(", ")
	builder.WriteString("common_name=")
	builder.WriteString(_m.CommonName)
	builder.WriteString(", ")
	builder.WriteString("sampling_date=")
	builder.WriteString(_m.SamplingDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("location_id=")
	builder.WriteString(_m.LocationID)
	builder.WriteString(", ")
	builder.WriteString("condition_id=")
	builder.WriteString(_m.ConditionID)
	builder.WriteByte(')')
	return builder.String()
}

// SpecimenSlice is a parsable slice of Specimen.
type SpecimenSlice []*Specimen
