// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Kurty-byte/plant-sampling/ent/environmentalcondition"
	"github.com/Kurty-byte/plant-sampling/ent/specimen"
)

// EnvironmentalConditionCreate is the builder for creating a EnvironmentalCondition entity.
type EnvironmentalConditionCreate struct {
	config
	mutation *EnvironmentalConditionMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *EnvironmentalConditionCreate) SetCreatedAt(v time.Time) *EnvironmentalConditionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EnvironmentalConditionCreate) SetNillableCreatedAt(v *time.Time) *EnvironmentalConditionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetTemperature sets the "temperature" field.
func (_c *EnvironmentalConditionCreate) SetTemperature(v float64) *EnvironmentalConditionCreate {
	_c.mutation.SetTemperature(v)
	return _c
}

// SetHumidity sets the "humidity" field.
func (_c *EnvironmentalConditionCreate) SetHumidity(v float64) *EnvironmentalConditionCreate {
	_c.mutation.SetHumidity(v)
	return _c
}

// SetAltitude sets the "altitude" field.
func (_c *EnvironmentalConditionCreate) SetAltitude(v float64) *EnvironmentalConditionCreate {
	_c.mutation.SetAltitude(v)
	return _c
}

// SetSoilPh sets the "soil_ph" field.
func (_c *EnvironmentalConditionCreate) SetSoilPh(v float64) *EnvironmentalConditionCreate {
	_c.mutation.SetSoilPh(v)
	return _c
}

// SetSoilType sets the "soil_type" field.
func (_c *EnvironmentalConditionCreate) SetSoilType(v environmentalcondition.SoilType) *EnvironmentalConditionCreate {
	_c.mutation.SetSoilType(v)
	return _c
}

// SetSoilNutrients sets the "soil_nutrients" field.
func (_c *EnvironmentalConditionCreate) SetSoilNutrients(v map[string]interface{}) *EnvironmentalConditionCreate {
	_c.mutation.SetSoilNutrients(v)
	return _c
}

// SetID sets the "id" field.
func (_c *EnvironmentalConditionCreate) SetID(v string) *EnvironmentalConditionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddSpecimenIDs adds the "specimens" edge to the Specimen entity by IDs.
func (_c *EnvironmentalConditionCreate) AddSpecimenIDs(ids ...string) *EnvironmentalConditionCreate {
	_c.mutation.AddSpecimenIDs(ids...)
	return _c
}

// AddSpecimens adds the "specimens" edges to the Specimen entity.
func (_c *EnvironmentalConditionCreate) AddSpecimens(v ...*Specimen) *EnvironmentalConditionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSpecimenIDs(ids...)
}

// Mutation returns the EnvironmentalConditionMutation object of the builder.
func (_c *EnvironmentalConditionCreate) Mutation() *EnvironmentalConditionMutation {
	return _c.mutation
}

// Save creates the EnvironmentalCondition in the database.
func (_c *EnvironmentalConditionCreate) Save(ctx context.Context) (*EnvironmentalCondition, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EnvironmentalConditionCreate) SaveX(ctx context.Context) *EnvironmentalCondition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EnvironmentalConditionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EnvironmentalConditionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EnvironmentalConditionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := environmentalcondition.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EnvironmentalConditionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EnvironmentalCondition.created_at"`)}
	}
	if _, ok := _c.mutation.Temperature(); !ok {
		return &ValidationError{Name: "temperature", err: errors.New(`ent: missing required field "EnvironmentalCondition.temperature"`)}
	}
	if _, ok := _c.mutation.Humidity(); !ok {
		return &ValidationError{Name: "humidity", err: errors.New(`ent: missing required field "EnvironmentalCondition.humidity"`)}
	}
	if _, ok := _c.mutation.Altitude(); !ok {
		return &ValidationError{Name: "altitude", err: errors.New(`ent: missing required field "EnvironmentalCondition.altitude"`)}
	}
	if _, ok := _c.mutation.SoilPh(); !ok {
		return &ValidationError{Name: "soil_ph", err: errors.New(`ent: missing required field "EnvironmentalCondition.soil_ph"`)}
	}
	if _, ok := _c.mutation.SoilType(); !ok {
		return &ValidationError{Name: "soil_type", err: errors.New(`ent: missing required field "EnvironmentalCondition.soil_type"`)}
	}
	if v, ok := _c.mutation.SoilType(); ok {
		if err := environmentalcondition.SoilTypeValidator(v); err != nil {
			return &ValidationError{Name: "soil_type", err: fmt.Errorf(`ent: validator failed for field "EnvironmentalCondition.soil_type": %w`, err)}
		}
	}
	return nil
}

func (_c *EnvironmentalConditionCreate) sqlSave(ctx context.Context) (*EnvironmentalCondition, error) {
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
			return nil, fmt.Errorf("unexpected EnvironmentalCondition.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EnvironmentalConditionCreate) createSpec() (*EnvironmentalCondition, *sqlgraph.CreateSpec) {
	var (
		_node = &EnvironmentalCondition{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(environmentalcondition.Table, sqlgraph.NewFieldSpec(environmentalcondition.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(environmentalcondition.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Temperature(); ok {
		_spec.SetField(environmentalcondition.FieldTemperature, field.TypeFloat64, value)
		_node.Temperature = value
	}
	if value, ok := _c.mutation.Humidity(); ok {
		_spec.SetField(environmentalcondition.FieldHumidity, field.TypeFloat64, value)
		_node.Humidity = value
	}
	if value, ok := _c.mutation.Altitude(); ok {
		_spec.SetField(environmentalcondition.FieldAltitude, field.TypeFloat64, value)
		_node.Altitude = value
	}
	if value, ok := _c.mutation.SoilPh(); ok {
		_spec.SetField(environmentalcondition.FieldSoilPh, field.TypeFloat64, value)
		_node.SoilPh = value
	}
	if value, ok := _c.mutation.SoilType(); ok {
		_spec.SetField(environmentalcondition.FieldSoilType, field.TypeEnum, value)
		_node.SoilType = value
	}
	if value, ok := _c.mutation.SoilNutrients(); ok {
		_spec.SetField(environmentalcondition.FieldSoilNutrients, field.TypeJSON, value)
		_node.SoilNutrients = value
	}
	if nodes := _c.mutation.SpecimensIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   environmentalcondition.SpecimensTable,
			Columns: []string{environmentalcondition.SpecimensColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(specimen.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EnvironmentalConditionCreateBulk is the builder for creating many EnvironmentalCondition entities in bulk.
type EnvironmentalConditionCreateBulk struct {
	config
	err      error
	builders []*EnvironmentalConditionCreate
}

// Save creates the EnvironmentalCondition entities in the database.
func (_c *EnvironmentalConditionCreateBulk) Save(ctx context.Context) ([]*EnvironmentalCondition, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EnvironmentalCondition, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EnvironmentalConditionMutation)
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
func (_c *EnvironmentalConditionCreateBulk) SaveX(ctx context.Context) []*EnvironmentalCondition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EnvironmentalConditionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EnvironmentalConditionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
