// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Kurty-byte/plant-sampling/ent/researcher"
	"github.com/Kurty-byte/plant-sampling/ent/specimen"
	"github.com/Kurty-byte/plant-sampling/ent/specimenresearcher"
)

// SpecimenResearcherCreate is the builder for creating a SpecimenResearcher entity.
type SpecimenResearcherCreate struct {
	config
	mutation *SpecimenResearcherMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *SpecimenResearcherCreate) SetCreatedAt(v time.Time) *SpecimenResearcherCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SpecimenResearcherCreate) SetNillableCreatedAt(v *time.Time) *SpecimenResearcherCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSpecimenID sets the "specimen_id" field.
func (_c *SpecimenResearcherCreate) SetSpecimenID(v string) *SpecimenResearcherCreate {
	_c.mutation.SetSpecimenID(v)
	return _c
}

// SetResearcherID sets the "researcher_id" field.
func (_c *SpecimenResearcherCreate) SetResearcherID(v string) *SpecimenResearcherCreate {
	_c.mutation.SetResearcherID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *SpecimenResearcherCreate) SetRole(v specimenresearcher.Role) *SpecimenResearcherCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *SpecimenResearcherCreate) SetNillableRole(v *specimenresearcher.Role) *SpecimenResearcherCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SpecimenResearcherCreate) SetID(v string) *SpecimenResearcherCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSpecimen sets the "specimen" edge to the Specimen entity.
func (_c *SpecimenResearcherCreate) SetSpecimen(v *Specimen) *SpecimenResearcherCreate {
	return _c.SetSpecimenID(v.ID)
}

// SetResearcher sets the "researcher" edge to the Researcher entity.
func (_c *SpecimenResearcherCreate) SetResearcher(v *Researcher) *SpecimenResearcherCreate {
	return _c.SetResearcherID(v.ID)
}

// Mutation returns the SpecimenResearcherMutation object of the builder.
func (_c *SpecimenResearcherCreate) Mutation() *SpecimenResearcherMutation {
	return _c.mutation
}

// Save creates the SpecimenResearcher in the database.
func (_c *SpecimenResearcherCreate) Save(ctx context.Context) (*SpecimenResearcher, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SpecimenResearcherCreate) SaveX(ctx context.Context) *SpecimenResearcher {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpecimenResearcherCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpecimenResearcherCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SpecimenResearcherCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := specimenresearcher.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SpecimenResearcherCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SpecimenResearcher.created_at"`)}
	}
	if _, ok := _c.mutation.SpecimenID(); !ok {
		return &ValidationError{Name: "specimen_id", err: errors.New(`ent: missing required field "SpecimenResearcher.specimen_id"`)}
	}
	if _, ok := _c.mutation.ResearcherID(); !ok {
		return &ValidationError{Name: "researcher_id", err: errors.New(`ent: missing required field "SpecimenResearcher.researcher_id"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := specimenresearcher.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "SpecimenResearcher.role": %w`, err)}
		}
	}
	if len(_c.mutation.SpecimenIDs()) == 0 {
		return &ValidationError{Name: "specimen", err: errors.New(`ent: missing required edge "SpecimenResearcher.specimen"`)}
	}
	if len(_c.mutation.ResearcherIDs()) == 0 {
		return &ValidationError{Name: "researcher", err: errors.New(`ent: missing required edge "SpecimenResearcher.researcher"`)}
	}
	return nil
}

func (_c *SpecimenResearcherCreate) sqlSave(ctx context.Context) (*SpecimenResearcher, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected SpecimenResearcher.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SpecimenResearcherCreate) createSpec() (*SpecimenResearcher, *sqlgraph.CreateSpec) {
	var (
		_node = &SpecimenResearcher{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(specimenresearcher.Table, sqlgraph.NewFieldSpec(specimenresearcher.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(specimenresearcher.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(specimenresearcher.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if nodes := _c.mutation.SpecimenIDs(); len(nodes) > 0 {
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
		_node.SpecimenID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ResearcherIDs(); len(nodes) > 0 {
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
		_node.ResearcherID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SpecimenResearcherCreateBulk is the builder for creating many SpecimenResearcher entities in bulk.
type SpecimenResearcherCreateBulk struct {
	config
	err      error
	builders []*SpecimenResearcherCreate
}

// Save creates the SpecimenResearcher entities in the database.
func (_c *SpecimenResearcherCreateBulk) Save(ctx context.Context) ([]*SpecimenResearcher, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SpecimenResearcher, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SpecimenResearcherMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SpecimenResearcherCreateBulk) SaveX(ctx context.Context) []*SpecimenResearcher {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpecimenResearcherCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpecimenResearcherCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
