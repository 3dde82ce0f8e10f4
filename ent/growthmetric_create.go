// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Kurty-byte/plant-sampling/ent/growthmetric"
	"github.com/Kurty-byte/plant-sampling/ent/specimen"
)

// GrowthMetricCreate is the builder for creating a GrowthMetric entity.
type GrowthMetricCreate struct {
	config
	mutation *GrowthMetricMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *GrowthMetricCreate) SetCreatedAt(v time.Time) *GrowthMetricCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GrowthMetricCreate) SetNillableCreatedAt(v *time.Time) *GrowthMetricCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSpecimenID sets the "specimen_id" field.
func (_c *GrowthMetricCreate) SetSpecimenID(v string) *GrowthMetricCreate {
	_c.mutation.SetSpecimenID(v)
	return _c
}

// SetHeight sets the "height" field.
func (_c *GrowthMetricCreate) SetHeight(v float64) *GrowthMetricCreate {
	_c.mutation.SetHeight(v)
	return _c
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_c *GrowthMetricCreate) SetNillableHeight(v *float64) *GrowthMetricCreate {
	if v != nil {
		_c.SetHeight(*v)
	}
	return _c
}

// SetLeafCount sets the "leaf_count" field.
func (_c *GrowthMetricCreate) SetLeafCount(v int) *GrowthMetricCreate {
	_c.mutation.SetLeafCount(v)
	return _c
}

// SetNillableLeafCount sets the "leaf_count" field if the given value is not nil.
func (_c *GrowthMetricCreate) SetNillableLeafCount(v *int) *GrowthMetricCreate {
	if v != nil {
		_c.SetLeafCount(*v)
	}
	return _c
}

// SetStemDiameter sets the "stem_diameter" field.
func (_c *GrowthMetricCreate) SetStemDiameter(v float64) *GrowthMetricCreate {
	_c.mutation.SetStemDiameter(v)
	return _c
}

// SetNillableStemDiameter sets the "stem_diameter" field if the given value is not nil.
func (_c *GrowthMetricCreate) SetNillableStemDiameter(v *float64) *GrowthMetricCreate {
	if v != nil {
		_c.SetStemDiameter(*v)
	}
	return _c
}

// SetHealthStatus sets the "health_status" field.
func (_c *GrowthMetricCreate) SetHealthStatus(v growthmetric.HealthStatus) *GrowthMetricCreate {
	_c.mutation.SetHealthStatus(v)
	return _c
}

// SetNillableHealthStatus sets the "health_status" field if the given value is not nil.
func (_c *GrowthMetricCreate) SetNillableHealthStatus(v *growthmetric.HealthStatus) *GrowthMetricCreate {
	if v != nil {
		_c.SetHealthStatus(*v)
	}
	return _c
}

// SetMeasuredAt sets the "measured_at" field.
func (_c *GrowthMetricCreate) SetMeasuredAt(v time.Time) *GrowthMetricCreate {
	_c.mutation.SetMeasuredAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *GrowthMetricCreate) SetID(v string) *GrowthMetricCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSpecimen sets the "specimen" edge to the Specimen entity.
func (_c *GrowthMetricCreate) SetSpecimen(v *Specimen) *GrowthMetricCreate {
	return _c.SetSpecimenID(v.ID)
}

// Mutation returns the GrowthMetricMutation object of the builder.
func (_c *GrowthMetricCreate) Mutation() *GrowthMetricMutation {
	return _c.mutation
}

// Save creates the GrowthMetric in the database.
func (_c *GrowthMetricCreate) Save(ctx context.Context) (*GrowthMetric, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GrowthMetricCreate) SaveX(ctx context.Context) *GrowthMetric {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GrowthMetricCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GrowthMetricCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GrowthMetricCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := growthmetric.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GrowthMetricCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GrowthMetric.created_at"`)}
	}
	if _, ok := _c.mutation.SpecimenID(); !ok {
		return &ValidationError{Name: "specimen_id", err: errors.New(`ent: missing required field "GrowthMetric.specimen_id"`)}
	}
	if v, ok := _c.mutation.HealthStatus(); ok {
		if err := growthmetric.HealthStatusValidator(v); err != nil {
			return &ValidationError{Name: "health_status", err: fmt.Errorf(`ent: validator failed for field "GrowthMetric.health_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MeasuredAt(); !ok {
		return &ValidationError{Name: "measured_at", err: errors.New(`ent: missing required field "GrowthMetric.measured_at"`)}
	}
	if len(_c.mutation.SpecimenIDs()) == 0 {
		return &ValidationError{Name: "specimen", err: errors.New(`ent: missing required edge "GrowthMetric.specimen"`)}
	}
	return nil
}

func (_c *GrowthMetricCreate) sqlSave(ctx context.Context) (*GrowthMetric, error) {
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
			return nil, fmt.Errorf("unexpected GrowthMetric.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GrowthMetricCreate) createSpec() (*GrowthMetric, *sqlgraph.CreateSpec) {
	var (
		_node = &GrowthMetric{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(growthmetric.Table, sqlgraph.NewFieldSpec(growthmetric.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(growthmetric.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Height(); ok {
		_spec.SetField(growthmetric.FieldHeight, field.TypeFloat64, value)
		_node.Height = &value
	}
	if value, ok := _c.mutation.LeafCount(); ok {
		_spec.SetField(growthmetric.FieldLeafCount, field.TypeInt, value)
		_node.LeafCount = &value
	}
	if value, ok := _c.mutation.StemDiameter(); ok {
		_spec.SetField(growthmetric.FieldStemDiameter, field.TypeFloat64, value)
		_node.StemDiameter = &value
	}
	if value, ok := _c.mutation.HealthStatus(); ok {
		_spec.SetField(growthmetric.FieldHealthStatus, field.TypeEnum, value)
		_node.HealthStatus = value
	}
	if value, ok := _c.mutation.MeasuredAt(); ok {
		_spec.SetField(growthmetric.FieldMeasuredAt, field.TypeTime, value)
		_node.MeasuredAt = value
	}
	if nodes := _c.mutation.SpecimenIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   growthmetric.SpecimenTable,
			Columns: []string{growthmetric.SpecimenColumn},
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
	return _node, _spec
}

// GrowthMetricCreateBulk is the builder for creating many GrowthMetric entities in bulk.
type GrowthMetricCreateBulk struct {
	config
	err      error
	builders []*GrowthMetricCreate
}

// Save creates the GrowthMetric entities in the database.
func (_c *GrowthMetricCreateBulk) Save(ctx context.Context) ([]*GrowthMetric, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GrowthMetric, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GrowthMetricMutation)
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
func (_c *GrowthMetricCreateBulk) SaveX(ctx context.Context) []*GrowthMetric {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GrowthMetricCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GrowthMetricCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
