// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Kurty-byte/plant-sampling/ent/researcher"
)

// Researcher is the model entity for the Researcher schema.
type Researcher struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// Phone holds the value of the "phone" field.
	Phone string `json:"phone,omitempty"`
	// Affiliation holds the value of the "affiliation" field.
	Affiliation string `json:"affiliation,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ResearcherQuery when eager-loading is set.
	Edges        ResearcherEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ResearcherEdges holds the relations/edges for other nodes in the graph.
type ResearcherEdges struct {
	// Assignments holds the value of the assignments edge.
	Assignments []*SpecimenResearcher `json:"assignments,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AssignmentsOrErr returns the Assignments value or an error if the edge
// was not loaded in eager-loading.
func (e ResearcherEdges) AssignmentsOrErr() ([]*SpecimenResearcher, error) {
	if e.loadedTypes[0] {
		return e.Assignments, nil
	}
	return nil, &NotLoadedError{edge: "assignments"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Researcher) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case researcher.FieldID, researcher.FieldName, researcher.FieldEmail, researcher.FieldPhone, researcher.FieldAffiliation:
			values[i] = new(sql.NullString)
		case researcher.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Researcher fields.
func (_m *Researcher) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case researcher.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case researcher.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case researcher.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case researcher.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case researcher.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		case researcher.FieldAffiliation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field affiliation", values[i])
			} else if value.Valid {
				_m.Affiliation = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Researcher.
// This includes values selected through modifiers, order, etc.
func (_m *Researcher) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAssignments queries the "assignments" edge of the Researcher entity.
func (_m *Researcher) QueryAssignments() *SpecimenResearcherQuery {
	return NewResearcherClient(_m.config).QueryAssignments(_m)
}

// Update returns a builder for updating this Researcher.
// Note that you need to call Researcher.Unwrap() before calling this method if this Researcher
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Researcher) Update() *ResearcherUpdateOne {
	return NewResearcherClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Researcher entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Researcher) Unwrap() *Researcher {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Researcher is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Researcher) String() string {
	var builder strings.Builder
	builder.WriteString("Researcher(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("phone=")
	builder.WriteString(_m.Phone)
	builder.WriteString(", ")
	builder.WriteString("affiliation=")
	builder.WriteString(_m.Affiliation)
	builder.WriteByte(')')
	return builder.String()
}

// Researchers is a parsable slice of Researcher.
type Researchers []*Researcher
