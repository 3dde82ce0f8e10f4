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
	"github.com/Kurty-byte/plant-sampling/ent/growthmetric"
	"github.com/Kurty-byte/plant-sampling/ent/location"
	"github.com/Kurty-byte/plant-sampling/ent/specimen"
	"github.com/Kurty-byte/plant-sampling/ent/specimenresearcher"
)

// SpecimenCreate is the builder for creating a Specimen entity.
type SpecimenCreate struct {
	config
	mutation *SpecimenMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *SpecimenCreate) SetCreatedAt(v time.Time) *SpecimenCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SpecimenCreate) SetNillableCreatedAt(v *time.Time) *SpecimenCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SpecimenCreate) SetUpdatedAt(v time.Time) *SpecimenCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SpecimenCreate) SetNillableUpdatedAt(v *time.Time) *SpecimenCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSpecies sets the "species" field.
func (_c *SpecimenCreate) SetSpecies(v string) *SpecimenCreate {
	_c.mutation.SetSpecies(v)
	return _c
}

// SetCommonName sets the "common_name" field.
func (_c *SpecimenCreate) SetCommonName(v string) *SpecimenCreate {
	_c.mutation.SetCommonName(v)
	return _c
}

// SetSamplingDate sets the "sampling_date" field.
func (_c *SpecimenCreate) SetSamplingDate(v time.Time) *SpecimenCreate {
	_c.mutation.SetSamplingDate(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *SpecimenCreate) SetDescription(v string) *SpecimenCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *SpecimenCreate) SetNillableDescription(v *string) *SpecimenCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SpecimenCreate) SetStatus(v specimen.Status) *SpecimenCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SpecimenCreate) SetNillableStatus(v *specimen.Status) *SpecimenCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *SpecimenCreate) SetDeletedAt(v time.Time) *SpecimenCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *SpecimenCreate) SetNillableDeletedAt(v *time.Time) *SpecimenCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetLocationID sets the "location_id" field.
func (_c *SpecimenCreate) SetLocationID(v string) *SpecimenCreate {
	_c.mutation.SetLocationID(v)
	return _c
}

// SetConditionID sets the "condition_id" field.
func (_c *SpecimenCreate) SetConditionID(v string) *SpecimenCreate {
	_c.mutation.SetConditionID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *SpecimenCreate) SetID(v string) *SpecimenCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetLocation sets the "location" edge to the Location entity.
func (_c *SpecimenCreate) SetLocation(v *Location) *SpecimenCreate {
	return _c.SetLocationID(v.ID)
}

// SetCondition sets the "condition" edge to the EnvironmentalCondition entity.
func (_c *SpecimenCreate) SetCondition(v *EnvironmentalCondition) *SpecimenCreate {
	return _c.SetConditionID(v.ID)
}

// AddGrowthMetricIDs adds the "growth_metrics" edge to the GrowthMetric entity by IDs.
func (_c *SpecimenCreate) AddGrowthMetricIDs(ids ...string) *SpecimenCreate {
	_c.mutation.AddGrowthMetricIDs(ids...)
	return _c
}

// AddGrowthMetrics adds the "growth_metrics" edges to the GrowthMetric entity.
func (_c *SpecimenCreate) AddGrowthMetrics(v ...*GrowthMetric) *SpecimenCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddGrowthMetricIDs(ids...)
}

// AddResearcherLinkIDs adds the "researcher_links" edge to the SpecimenResearcher entity by IDs.
func (_c *SpecimenCreate) AddResearcherLinkIDs(ids ...string) *SpecimenCreate {
	_c.mutation.AddResearcherLinkIDs(ids...)
	return _c
}

// AddResearcherLinks adds the "researcher_links" edges to the SpecimenResearcher entity.
func (_c *SpecimenCreate) AddResearcherLinks(v ...*SpecimenResearcher) *SpecimenCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddResearcherLinkIDs(ids...)
}

// Mutation returns the SpecimenMutation object of the builder.
func (_c *SpecimenCreate) Mutation() *SpecimenMutation {
	return _c.mutation
}

// Save creates the Specimen in the database.
func (_c *SpecimenCreate) Save(ctx context.Context) (*Specimen, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SpecimenCreate) SaveX(ctx context.Context) *Specimen {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpecimenCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpecimenCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SpecimenCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := specimen.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := specimen.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := specimen.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SpecimenCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Specimen.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Specimen.updated_at"`)}
	}
	if _, ok := _c.mutation.Species(); !ok {
		return &ValidationError{Name: "species", err: errors.New(`ent: missing required field "Specimen.species"`)}
	}
	if v, ok := _c.mutation.Species(); ok {
		if err := specimen.SpeciesValidator(v); err != nil {
			return &ValidationError{Name: "species", err: fmt.Errorf(`ent: validator failed for field "Specimen.species": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CommonName(); !ok {
		return &ValidationError{Name: "common_name", err: errors.New(`ent: missing required field "Specimen.common_name"`)}
	}
	if _, ok := _c.mutation.SamplingDate(); !ok {
		return &ValidationError{Name: "sampling_date", err: errors.New(`ent: missing required field "Specimen.sampling_date"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Specimen.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := specimen.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Specimen.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LocationID(); !ok {
		return &ValidationError{Name: "location_id", err: errors.New(`ent: missing required field "Specimen.location_id"`)}
	}
	if _, ok := _c.mutation.ConditionID(); !ok {
		return &ValidationError{Name: "condition_id", err: errors.New(`ent: missing required field "Specimen.condition_id"`)}
	}
	if len(_c.mutation.LocationIDs()) == 0 {
		return &ValidationError{Name: "location", err: errors.New(`ent: missing required edge "Specimen.location"`)}
	}
	if len(_c.mutation.ConditionIDs()) == 0 {
		return &ValidationError{Name: "condition", err: errors.New(`ent: missing required edge "Specimen.condition"`)}
	}
	return nil
}

func (_c *SpecimenCreate) sqlSave(ctx context.Context) (*Specimen, error) {
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
			return nil, fmt.Errorf("unexpected Specimen.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SpecimenCreate) createSpec() (*Specimen, *sqlgraph.CreateSpec) {
	var (
		_node = &Specimen{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(specimen.Table, sqlgraph.NewFieldSpec(specimen.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(specimen.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(specimen.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Species(); ok {
		_spec.SetField(specimen.FieldSpecies, field.TypeString, value)
		_node.Species = value
	}
	if value, ok := _c.mutation.CommonName(); ok {
		_spec.SetField(specimen.FieldCommonName, field.TypeString, value)
		_node.CommonName = value
	}
	if value, ok := _c.mutation.SamplingDate(); ok {
		_spec.SetField(specimen.FieldSamplingDate, field.TypeTime, value)
		_node.SamplingDate = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(specimen.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(specimen.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(specimen.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.LocationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   specimen.LocationTable,
			Columns: []string{specimen.LocationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(location.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.LocationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ConditionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   specimen.ConditionTable,
			Columns: []string{specimen.ConditionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(environmentalcondition.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ConditionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.GrowthMetricsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   specimen.GrowthMetricsTable,
			Columns: []string{specimen.GrowthMetricsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(growthmetric.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ResearcherLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   specimen.ResearcherLinksTable,
			Columns: []string{specimen.ResearcherLinksColumn},
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

// SpecimenCreateBulk is the builder for creating many Specimen entities in bulk.
type SpecimenCreateBulk struct {
	config
	err      error
	builders []*SpecimenCreate
}

// Save creates the Specimen entities in the database.
func (_c *SpecimenCreateBulk) Save(ctx context.Context) ([]*Specimen, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Specimen, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SpecimenMutation)
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
func (_c *SpecimenCreateBulk) SaveX(ctx context.Context) []*Specimen {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpecimenCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpecimenCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
