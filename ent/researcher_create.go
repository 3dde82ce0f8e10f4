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
	"github.com/Kurty-byte/plant-sampling/ent/specimenresearcher"
)

// ResearcherCreate is the builder for creating a Researcher entity.
type ResearcherCreate struct {
	config
	mutation *ResearcherMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ResearcherCreate) SetCreatedAt(v time.Time) *ResearcherCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ResearcherCreate) SetNillableCreatedAt(v *time.Time) *ResearcherCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *ResearcherCreate) SetName(v string) *ResearcherCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *ResearcherCreate) SetEmail(v string) *ResearcherCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetPhone sets the "phone" field.
func (_c *ResearcherCreate) SetPhone(v string) *ResearcherCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *ResearcherCreate) SetNillablePhone(v *string) *ResearcherCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetAffiliation sets the "affiliation" field.
func (_c *ResearcherCreate) SetAffiliation(v string) *ResearcherCreate {
	_c.mutation.SetAffiliation(v)
	return _c
}

// SetNillableAffiliation sets the "affiliation" field if the given value is not nil.
func (_c *ResearcherCreate) SetNillableAffiliation(v *string) *ResearcherCreate {
	if v != nil {
		_c.SetAffiliation(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ResearcherCreate) SetID(v string) *ResearcherCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddAssignmentIDs adds the "assignments" edge to the SpecimenResearcher entity by IDs.
func (_c *ResearcherCreate) AddAssignmentIDs(ids ...string) *ResearcherCreate {
	_c.mutation.AddAssignmentIDs(ids...)
	return _c
}

// AddAssignments adds the "assignments" edges to the SpecimenResearcher entity.
func (_c *ResearcherCreate) AddAssignments(v ...*SpecimenResearcher) *ResearcherCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAssignmentIDs(ids...)
}

// Mutation returns the ResearcherMutation object of the builder.
func (_c *ResearcherCreate) Mutation() *ResearcherMutation {
	return _c.mutation
}

// Save creates the Researcher in the database.
func (_c *ResearcherCreate) Save(ctx context.Context) (*Researcher, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResearcherCreate) SaveX(ctx context.Context) *Researcher {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResearcherCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResearcherCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResearcherCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := researcher.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResearcherCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Researcher.created_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Researcher.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := researcher.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Researcher.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "Researcher.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := researcher.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Researcher.email": %w`, err)}
		}
	}
	return nil
}

func (_c *ResearcherCreate) sqlSave(ctx context.Context) (*Researcher, error) {
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
			return nil, fmt.Errorf("unexpected Researcher.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResearcherCreate) createSpec() (*Researcher, *sqlgraph.CreateSpec) {
	var (
		_node = &Researcher{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(researcher.Table, sqlgraph.NewFieldSpec(researcher.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(researcher.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(researcher.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(researcher.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(researcher.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Affiliation(); ok {
		_spec.SetField(researcher.FieldAffiliation, field.TypeString, value)
		_node.Affiliation = value
	}
	if nodes := _c.mutation.AssignmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ResearcherCreateBulk is the builder for creating many Researcher entities in bulk.
type ResearcherCreateBulk struct {
	config
	err      error
	builders []*ResearcherCreate
}

// Save creates the Researcher entities in the database.
func (_c *ResearcherCreateBulk) Save(ctx context.Context) ([]*Researcher, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Researcher, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResearcherMutation)
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
func (_c *ResearcherCreateBulk) SaveX(ctx context.Context) []*Researcher {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResearcherCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResearcherCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
