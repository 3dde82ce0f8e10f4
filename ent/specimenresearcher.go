// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Kurty-byte/plant-sampling/ent/researcher"
	"github.com/Kurty-byte/plant-sampling/ent/specimen"
	"github.com/Kurty-byte/plant-sampling/ent/specimenresearcher"
)

// SpecimenResearcher is the model entity for the SpecimenResearcher schema.
type SpecimenResearcher struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// SpecimenID holds the value of the "specimen_id" field.
	SpecimenID string `json:"specimen_id,omitempty"`
	// ResearcherID holds the value of the "researcher_id" field.
	ResearcherID string `json:"researcher_id,omitempty"`
	// Role holds the value of the "role" field.
	Role specimenresearcher.Role `json:"role,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SpecimenResearcherQuery when eager-loading is set.
	Edges        SpecimenResearcherEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SpecimenResearcherEdges holds the relations/edges for other nodes in the graph.
type SpecimenResearcherEdges struct {
	// Specimen holds the value of the specimen edge.
	Specimen *Specimen `json:"specimen,omitempty"`
	// Researcher holds the value of the researcher edge.
	Researcher *Researcher `json:"researcher,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SpecimenOrErr returns the Specimen value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SpecimenResearcherEdges) SpecimenOrErr() (*Specimen, error) {
	if e.Specimen != nil {
		return e.Specimen, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: specimen.Label}
	}
	return nil, &NotLoadedError{edge: "specimen"}
}

// ResearcherOrErr returns the Researcher value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SpecimenResearcherEdges) ResearcherOrErr() (*Researcher, error) {
	if e.Researcher != nil {
		return e.Researcher, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: researcher.Label}
	}
	return nil, &NotLoadedError{edge: "researcher"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SpecimenResearcher) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case specimenresearcher.FieldID, specimenresearcher.FieldSpecimenID, specimenresearcher.FieldResearcherID, specimenresearcher.FieldRole:
			values[i] = new(sql.NullString)
		case specimenresearcher.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SpecimenResearcher fields.
func (_m *SpecimenResearcher) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case specimenresearcher.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case specimenresearcher.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case specimenresearcher.FieldSpecimenID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field specimen_id", values[i])
			} else if value.Valid {
				_m.SpecimenID = value.String
			}
		case specimenresearcher.FieldResearcherID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field researcher_id", values[i])
			} else if value.Valid {
				_m.ResearcherID = value.String
			}
		case specimenresearcher.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = specimenresearcher.Role(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SpecimenResearcher.
// This includes values selected through modifiers, order, etc.
func (_m *SpecimenResearcher) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySpecimen queries the "specimen" edge of the SpecimenResearcher entity.
func (_m *SpecimenResearcher) QuerySpecimen() *SpecimenQuery {
	return NewSpecimenResearcherClient(_m.config).QuerySpecimen(_m)
}

// QueryResearcher queries the "researcher" edge of the SpecimenResearcher entity.
func (_m *SpecimenResearcher) QueryResearcher() *ResearcherQuery {
	return NewSpecimenResearcherClient(_m.config).QueryResearcher(_m)
}

// Update returns a builder for updating this SpecimenResearcher.
// Note that you need to call SpecimenResearcher.Unwrap() before calling this method if this SpecimenResearcher
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SpecimenResearcher) Update() *SpecimenResearcherUpdateOne {
	return NewSpecimenResearcherClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SpecimenResearcher entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SpecimenResearcher) Unwrap() *SpecimenResearcher {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SpecimenResearcher is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SpecimenResearcher) String() string {
	var builder strings.Builder
	builder.WriteString("SpecimenResearcher(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("specimen_id=")
	builder.WriteString(_m.SpecimenID)
	builder.WriteString(", ")
	builder.WriteString("researcher_id=")
	builder.WriteString(_m.ResearcherID)
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(fmt.Sprintf("%v", _m.Role))
	builder.WriteByte(')')
	return builder.String()
}

// SpecimenResearchers is a parsable slice of SpecimenResearcher.
type SpecimenResearchers []*SpecimenResearcher
