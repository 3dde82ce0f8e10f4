// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Kurty-byte/plant-sampling/ent/predicate"
	"github.com/Kurty-byte/plant-sampling/ent/researcher"
	"github.com/Kurty-byte/plant-sampling/ent/specimenresearcher"
)

// ResearcherUpdate is the builder for updating Researcher entities.
type ResearcherUpdate struct {
	config
	hooks    []Hook
	mutation *ResearcherMutation
}

// Where appends a list predicates to the ResearcherUpdate builder.
func (_u *ResearcherUpdate) Where(ps ...predicate.Researcher) *ResearcherUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ResearcherUpdate) SetName(v string) *ResearcherUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ResearcherUpdate) SetNillableName(v *string) *ResearcherUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ResearcherUpdate) SetEmail(v string) *ResearcherUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ResearcherUpdate) SetNillableEmail(v *string) *ResearcherUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ResearcherUpdate) SetPhone(v string) *ResearcherUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ResearcherUpdate) SetNillablePhone(v *string) *ResearcherUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ResearcherUpdate) ClearPhone() *ResearcherUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetAffiliation sets the "affiliation" field.
func (_u *ResearcherUpdate) SetAffiliation(v string) *ResearcherUpdate {
	_u.mutation.SetAffiliation(v)
	return _u
}

// SetNillableAffiliation sets the "affiliation" field if the given value is not nil.
func (_u *ResearcherUpdate) SetNillableAffiliation(v *string) *ResearcherUpdate {
	if v != nil {
		_u.SetAffiliation(*v)
	}
	return _u
}

// ClearAffiliation clears the value of the "affiliation" field.
func (_u *ResearcherUpdate) ClearAffiliation() *ResearcherUpdate {
	_u.mutation.ClearAffiliation()
	return _u
}

// AddAssignmentIDs adds the "assignments" edge to the SpecimenResearcher entity by IDs.
func (_u *ResearcherUpdate) AddAssignmentIDs(ids ...string) *ResearcherUpdate {
	_u.mutation.AddAssignmentIDs(ids...)
	return _u
}

// AddAssignments adds the "assignments" edges to the SpecimenResearcher entity.
func (_u *ResearcherUpdate) AddAssignments(v ...*SpecimenResearcher) *ResearcherUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssignmentIDs(ids...)
}

// Mutation returns the ResearcherMutation object of the builder.
func (_u *ResearcherUpdate) Mutation() *ResearcherMutation {
	return _u.mutation
}

// ClearAssignments clears all "assignments" edges to the SpecimenResearcher entity.
func (_u *ResearcherUpdate) ClearAssignments() *ResearcherUpdate {
	_u.mutation.ClearAssignments()
	return _u
}

// RemoveAssignmentIDs removes the "assignments" edge to SpecimenResearcher entities by IDs.
func (_u *ResearcherUpdate) RemoveAssignmentIDs(ids ...string) *ResearcherUpdate {
	_u.mutation.RemoveAssignmentIDs(ids...)
	return _u
}

// RemoveAssignments removes "assignments" edges to SpecimenResearcher entities.
func (_u *ResearcherUpdate) RemoveAssignments(v ...*SpecimenResearcher) *ResearcherUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssignmentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResearcherUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearcherUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResearcherUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearcherUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearcherUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := researcher.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Researcher.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := researcher.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Researcher.email": %w`, err)}
		}
	}
	return nil
}

func (_u *ResearcherUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researcher.Table, researcher.Columns, sqlgraph.NewFieldSpec(researcher.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(researcher.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(researcher.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(researcher.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(researcher.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Affiliation(); ok {
		_spec.SetField(researcher.FieldAffiliation, field.TypeString, value)
	}
	if _u.mutation.AffiliationCleared() {
		_spec.ClearField(researcher.FieldAffiliation, field.TypeString)
	}
	if _u.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researcher.AssignmentsTable,
			Columns: []string{researcher.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(specimenresearcher.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssignmentsIDs(); len(nodes) > 0 && !_u.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researcher.AssignmentsTable,
			Columns: []string{researcher.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(specimenresearcher.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researcher.AssignmentsTable,
			Columns: []string{researcher.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(specimenresearcher.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researcher.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResearcherUpdateOne is the builder for updating a single Researcher entity.
type ResearcherUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResearcherMutation
}

// SetName sets the "name" field.
func (_u *ResearcherUpdateOne) SetName(v string) *ResearcherUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ResearcherUpdateOne) SetNillableName(v *string) *ResearcherUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ResearcherUpdateOne) SetEmail(v string) *ResearcherUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ResearcherUpdateOne) SetNillableEmail(v *string) *ResearcherUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ResearcherUpdateOne) SetPhone(v string) *ResearcherUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ResearcherUpdateOne) SetNillablePhone(v *string) *ResearcherUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ResearcherUpdateOne) ClearPhone() *ResearcherUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetAffiliation sets the "affiliation" field.
func (_u *ResearcherUpdateOne) SetAffiliation(v string) *ResearcherUpdateOne {
	_u.mutation.SetAffiliation(v)
	return _u
}

// SetNillableAffiliation sets the "affiliation" field if the given value is not nil.
func (_u *ResearcherUpdateOne) SetNillableAffiliation(v *string) *ResearcherUpdateOne {
	if v != nil {
		_u.SetAffiliation(*v)
	}
	return _u
}

// ClearAffiliation clears the value of the "affiliation" field.
func (_u *ResearcherUpdateOne) ClearAffiliation() *ResearcherUpdateOne {
	_u.mutation.ClearAffiliation()
	return _u
}

// AddAssignmentIDs adds the "assignments" edge to the SpecimenResearcher entity by IDs.
func (_u *ResearcherUpdateOne) AddAssignmentIDs(ids ...string) *ResearcherUpdateOne {
	_u.mutation.AddAssignmentIDs(ids...)
	return _u
}

// AddAssignments adds the "assignments" edges to the SpecimenResearcher entity.
func (_u *ResearcherUpdateOne) AddAssignments(v ...*SpecimenResearcher) *ResearcherUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssignmentIDs(ids...)
}

// Mutation returns the ResearcherMutation object of the builder.
func (_u *ResearcherUpdateOne) Mutation() *ResearcherMutation {
	return _u.mutation
}

// ClearAssignments clears all "assignments" edges to the SpecimenResearcher entity.
func (_u *ResearcherUpdateOne) ClearAssignments() *ResearcherUpdateOne {
	_u.mutation.ClearAssignments()
	return _u
}

// RemoveAssignmentIDs removes the "assignments" edge to SpecimenResearcher entities by IDs.
func (_u *ResearcherUpdateOne) RemoveAssignmentIDs(ids ...string) *ResearcherUpdateOne {
	_u.mutation.RemoveAssignmentIDs(ids...)
	return _u
}

// RemoveAssignments removes "assignments" edges to SpecimenResearcher entities.
func (_u *ResearcherUpdateOne) RemoveAssignments(v ...*SpecimenResearcher) *ResearcherUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssignmentIDs(ids...)
}

// Where appends a list predicates to the ResearcherUpdate builder.
func (_u *ResearcherUpdateOne) Where(ps ...predicate.Researcher) *ResearcherUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResearcherUpdateOne) Select(field string, fields ...string) *ResearcherUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Researcher entity.
func (_u *ResearcherUpdateOne) Save(ctx context.Context) (*Researcher, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearcherUpdateOne) SaveX(ctx context.Context) *Researcher {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResearcherUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearcherUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearcherUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := researcher.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Researcher.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := researcher.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Researcher.email": %w`, err)}
		}
	}
	return nil
}

func (_u *ResearcherUpdateOne) sqlSave(ctx context.Context) (_node *Researcher, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researcher.Table, researcher.Columns, sqlgraph.NewFieldSpec(researcher.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Researcher.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, researcher.FieldID)
		for _, f := range fields {
			if !researcher.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != researcher.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(researcher.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(researcher.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(researcher.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(researcher.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Affiliation(); ok {
		_spec.SetField(researcher.FieldAffiliation, field.TypeString, value)
	}
	if _u.mutation.AffiliationCleared() {
		_spec.ClearField(researcher.FieldAffiliation, field.TypeString)
	}
	if _u.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researcher.AssignmentsTable,
			Columns: []string{researcher.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(specimenresearcher.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssignmentsIDs(); len(nodes) > 0 && !_u.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researcher.AssignmentsTable,
			Columns: []string{researcher.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(specimenresearcher.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researcher.AssignmentsTable,
			Columns: []string{researcher.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(specimenresearcher.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Researcher{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researcher.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
