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
	"github.com/Kurty-byte/plant-sampling/ent/specimen"
	"github.com/Kurty-byte/plant-sampling/ent/specimenresearcher"
)

// SpecimenResearcherUpdate is the builder for updating SpecimenResearcher entities.
type SpecimenResearcherUpdate struct {
	config
	hooks    []Hook
	mutation *SpecimenResearcherMutation
}

// Where appends a list predicates to the SpecimenResearcherUpdate builder.
func (_u *SpecimenResearcherUpdate) Where(ps ...predicate.SpecimenResearcher) *SpecimenResearcherUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSpecimenID sets the "specimen_id" field.
func (_u *SpecimenResearcherUpdate) SetSpecimenID(v string) *SpecimenResearcherUpdate {
	_u.mutation.SetSpecimenID(v)
	return _u
}

// SetNillableSpecimenID sets the "specimen_id" field if the given value is not nil.
func (_u *SpecimenResearcherUpdate) SetNillableSpecimenID(v *string) *SpecimenResearcherUpdate {
	if v != nil {
		_u.SetSpecimenID(*v)
	}
	return _u
}

// SetResearcherID sets the "researcher_id" field.
func (_u *SpecimenResearcherUpdate) SetResearcherID(v string) *SpecimenResearcherUpdate {
	_u.mutation.SetResearcherID(v)
	return _u
}

// SetNillableResearcherID sets the "researcher_id" field if the given value is not nil.
func (_u *SpecimenResearcherUpdate) SetNillableResearcherID(v *string) *SpecimenResearcherUpdate {
	if v != nil {
		_u.SetResearcherID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *SpecimenResearcherUpdate) SetRole(v specimenresearcher.Role) *SpecimenResearcherUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *SpecimenResearcherUpdate) SetNillableRole(v *specimenresearcher.Role) *SpecimenResearcherUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *SpecimenResearcherUpdate) ClearRole() *SpecimenResearcherUpdate {
	_u.mutation.ClearRole()
	return _u
}

// SetSpecimen sets the "specimen" edge to the Specimen entity.
func (_u *SpecimenResearcherUpdate) SetSpecimen(v *Specimen) *SpecimenResearcherUpdate {
	return _u.SetSpecimenID(v.ID)
}

// SetResearcher sets the "researcher" edge to the Researcher entity.
func (_u *SpecimenResearcherUpdate) SetResearcher(v *Researcher) *SpecimenResearcherUpdate {
	return _u.SetResearcherID(v.ID)
}

// Mutation returns the SpecimenResearcherMutation object of the builder.
func (_u *SpecimenResearcherUpdate) Mutation() *SpecimenResearcherMutation {
	return _u.mutation
}

// ClearSpecimen clears the "specimen" edge to the Specimen entity.
func (_u *SpecimenResearcherUpdate) ClearSpecimen() *SpecimenResearcherUpdate {
	_u.mutation.ClearSpecimen()
	return _u
}

// ClearResearcher clears the "researcher" edge to the Researcher entity.
func (_u *SpecimenResearcherUpdate) ClearResearcher() *SpecimenResearcherUpdate {
	_u.mutation.ClearResearcher()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SpecimenResearcherUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpecimenResearcherUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SpecimenResearcherUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpecimenResearcherUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpecimenResearcherUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := specimenresearcher.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "SpecimenResearcher.role": %w`, err)}
		}
	}
	if _u.mutation.SpecimenCleared() && len(_u.mutation.SpecimenIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SpecimenResearcher.specimen"`)
	}
	if _u.mutation.ResearcherCleared() && len(_u.mutation.ResearcherIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SpecimenResearcher.researcher"`)
	}
	return nil
}

func (_u *SpecimenResearcherUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(specimenresearcher.Table, specimenresearcher.Columns, sqlgraph.NewFieldSpec(specimenresearcher.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(specimenresearcher.FieldRole, field.TypeEnum, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(specimenresearcher.FieldRole, field.TypeEnum)
	}
	if _u.mutation.SpecimenCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   specimenresearcher.SpecimenTable,
			Columns: []string{specimenresearcher.SpecimenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(specimen.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SpecimenIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   specimenresearcher.SpecimenTable,
			Columns: []string{specimenresearcher.SpecimenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(specimen.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResearcherCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   specimenresearcher.ResearcherTable,
			Columns: []string{specimenresearcher.ResearcherColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researcher.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResearcherIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   specimenresearcher.ResearcherTable,
			Columns: []string{specimenresearcher.ResearcherColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researcher.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{specimenresearcher.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SpecimenResearcherUpdateOne is the builder for updating a single SpecimenResearcher entity.
type SpecimenResearcherUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SpecimenResearcherMutation
}

// SetSpecimenID sets the "specimen_id" field.
func (_u *SpecimenResearcherUpdateOne) SetSpecimenID(v string) *SpecimenResearcherUpdateOne {
	_u.mutation.SetSpecimenID(v)
	return _u
}

// SetNillableSpecimenID sets the "specimen_id" field if the given value is not nil.
func (_u *SpecimenResearcherUpdateOne) SetNillableSpecimenID(v *string) *SpecimenResearcherUpdateOne {
	if v != nil {
		_u.SetSpecimenID(*v)
	}
	return _u
}

// SetResearcherID sets the "researcher_id" field.
func (_u *SpecimenResearcherUpdateOne) SetResearcherID(v string) *SpecimenResearcherUpdateOne {
	_u.mutation.SetResearcherID(v)
	return _u
}

// SetNillableResearcherID sets the "researcher_id" field if the given value is not nil.
func (_u *SpecimenResearcherUpdateOne) SetNillableResearcherID(v *string) *SpecimenResearcherUpdateOne {
	if v != nil {
		_u.SetResearcherID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *SpecimenResearcherUpdateOne) SetRole(v specimenresearcher.Role) *SpecimenResearcherUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *SpecimenResearcherUpdateOne) SetNillableRole(v *specimenresearcher.Role) *SpecimenResearcherUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *SpecimenResearcherUpdateOne) ClearRole() *SpecimenResearcherUpdateOne {
	_u.mutation.ClearRole()
	return _u
}

// SetSpecimen sets the "specimen" edge to the Specimen entity.
func (_u *SpecimenResearcherUpdateOne) SetSpecimen(v *Specimen) *SpecimenResearcherUpdateOne {
	return _u.SetSpecimenID(v.ID)
}

// SetResearcher sets the "researcher" edge to the Researcher entity.
func (_u *SpecimenResearcherUpdateOne) SetResearcher(v *Researcher) *SpecimenResearcherUpdateOne {
	return _u.SetResearcherID(v.ID)
}

// Mutation returns the SpecimenResearcherMutation object of the builder.
func (_u *SpecimenResearcherUpdateOne) Mutation() *SpecimenResearcherMutation {
	return _u.mutation
}

// ClearSpecimen clears the "specimen" edge to the Specimen entity.
func (_u *SpecimenResearcherUpdateOne) ClearSpecimen() *SpecimenResearcherUpdateOne {
	_u.mutation.ClearSpecimen()
	return _u
}

// ClearResearcher clears the "researcher" edge to the Researcher entity.
func (_u *SpecimenResearcherUpdateOne) ClearResearcher() *SpecimenResearcherUpdateOne {
	_u.mutation.ClearResearcher()
	return _u
}

// Where appends a list predicates to the SpecimenResearcherUpdate builder.
func (_u *SpecimenResearcherUpdateOne) Where(ps ...predicate.SpecimenResearcher) *SpecimenResearcherUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SpecimenResearcherUpdateOne) Select(field string, fields ...string) *SpecimenResearcherUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SpecimenResearcher entity.
func (_u *SpecimenResearcherUpdateOne) Save(ctx context.Context) (*SpecimenResearcher, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpecimenResearcherUpdateOne) SaveX(ctx context.Context) *SpecimenResearcher {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SpecimenResearcherUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpecimenResearcherUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpecimenResearcherUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := specimenresearcher.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "SpecimenResearcher.role": %w`, err)}
		}
	}
	if _u.mutation.SpecimenCleared() && len(_u.mutation.SpecimenIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SpecimenResearcher.specimen"`)
	}
	if _u.mutation.ResearcherCleared() && len(_u.mutation.ResearcherIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SpecimenResearcher.researcher"`)
	}
	return nil
}

func (_u *SpecimenResearcherUpdateOne) sqlSave(ctx context.Context) (_node *SpecimenResearcher, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(specimenresearcher.Table, specimenresearcher.Columns, sqlgraph.NewFieldSpec(specimenresearcher.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SpecimenResearcher.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, specimenresearcher.FieldID)
		for _, f := range fields {
			if !specimenresearcher.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != specimenresearcher.FieldID {
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
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(specimenresearcher.FieldRole, field.TypeEnum, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(specimenresearcher.FieldRole, field.TypeEnum)
	}
	if _u.mutation.SpecimenCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   specimenresearcher.SpecimenTable,
			Columns: []string{specimenresearcher.SpecimenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(specimen.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SpecimenIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   specimenresearcher.SpecimenTable,
			Columns: []string{specimenresearcher.SpecimenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(specimen.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResearcherCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   specimenresearcher.ResearcherTable,
			Columns: []string{specimenresearcher.ResearcherColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researcher.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResearcherIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   specimenresearcher.ResearcherTable,
			Columns: []string{specimenresearcher.ResearcherColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researcher.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SpecimenResearcher{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{specimenresearcher.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
