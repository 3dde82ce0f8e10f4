// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Kurty-byte/plant-sampling/ent/environmentalcondition"
	"github.com/Kurty-byte/plant-sampling/ent/growthmetric"
	"github.com/Kurty-byte/plant-sampling/ent/location"
	"github.com/Kurty-byte/plant-sampling/ent/predicate"
	"github.com/Kurty-byte/plant-sampling/ent/specimen"
	"github.com/Kurty-byte/plant-sampling/ent/specimenresearcher"
)

// SpecimenUpdate is the builder for updating Specimen entities.
type SpecimenUpdate struct {
	config
	hooks    []Hook
	mutation *SpecimenMutation
}

// Where appends a list predicates to the SpecimenUpdate builder.
func (_u *SpecimenUpdate) Where(ps ...predicate.Specimen) *SpecimenUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SpecimenUpdate) SetUpdatedAt(v time.Time) *SpecimenUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSpecies sets the "species" field.
func (_u *SpecimenUpdate) SetSpecies(v string) *SpecimenUpdate {
	_u.mutation.SetSpecies(v)
	return _u
}

// SetNillableSpecies sets the "species" field if the given value is not nil.
func (_u *SpecimenUpdate) SetNillableSpecies(v *string) *SpecimenUpdate {
	if v != nil {
		_u.SetSpecies(*v)
	}
	return _u
}

// SetCommonName sets the "common_name" field.
func (_u *SpecimenUpdate) SetCommonName(v string) *SpecimenUpdate {
	_u.mutation.SetCommonName(v)
	return _u
}

// SetNillableCommonName sets the "common_name" field if the given value is not nil.
func (_u *SpecimenUpdate) SetNillableCommonName(v *string) *SpecimenUpdate {
	if v != nil {
		_u.SetCommonName(*v)
	}
	return _u
}

// SetSamplingDate sets the "sampling_date" field.
func (_u *SpecimenUpdate) SetSamplingDate(v time.Time) *SpecimenUpdate {
	_u.mutation.SetSamplingDate(v)
	return _u
}

// SetNillableSamplingDate sets the "sampling_date" field if the given value is not nil.
func (_u *SpecimenUpdate) SetNillableSamplingDate(v *time.Time) *SpecimenUpdate {
	if v != nil {
		_u.SetSamplingDate(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SpecimenUpdate) SetDescription(v string) *SpecimenUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SpecimenUpdate) SetNillableDescription(v *string) *SpecimenUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SpecimenUpdate) ClearDescription() *SpecimenUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SpecimenUpdate) SetStatus(v specimen.Status) *SpecimenUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SpecimenUpdate) SetNillableStatus(v *specimen.Status) *SpecimenUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *SpecimenUpdate) SetDeletedAt(v time.Time) *SpecimenUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *SpecimenUpdate) SetNillableDeletedAt(v *time.Time) *SpecimenUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *SpecimenUpdate) ClearDeletedAt() *SpecimenUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetLocationID sets the "location_id" field.
func (_u *SpecimenUpdate) SetLocationID(v string) *SpecimenUpdate {
	_u.mutation.SetLocationID(v)
	return _u
}

// SetNillableLocationID sets the "location_id" field if the given value is not nil.
func (_u *SpecimenUpdate) SetNillableLocationID(v *string) *SpecimenUpdate {
	if v != nil {
		_u.SetLocationID(*v)
	}
	return _u
}

// SetConditionID sets the "condition_id" field.
func (_u *SpecimenUpdate) SetConditionID(v string) *SpecimenUpdate {
	_u.mutation.SetConditionID(v)
	return _u
}

// SetNillableConditionID sets the "condition_id" field if the given value is not nil.
func (_u *SpecimenUpdate) SetNillableConditionID(v *string) *SpecimenUpdate {
	if v != nil {
		_u.SetConditionID(*v)
	}
	return _u
}

// SetLocation sets the "location" edge to the Location entity.
func (_u *SpecimenUpdate) SetLocation(v *Location) *SpecimenUpdate {
	return _u.SetLocationID(v.ID)
}

// SetCondition sets the "condition" edge to the EnvironmentalCondition entity.
func (_u *SpecimenUpdate) SetCondition(v *EnvironmentalCondition) *SpecimenUpdate {
	return _u.SetConditionID(v.ID)
}

// AddGrowthMetricIDs adds the "growth_metrics" edge to the GrowthMetric entity by IDs.
func (_u *SpecimenUpdate) AddGrowthMetricIDs(ids ...string) *SpecimenUpdate {
	_u.mutation.AddGrowthMetricIDs(ids...)
	return _u
}

// AddGrowthMetrics adds the "growth_metrics" edges to the GrowthMetric entity.
func (_u *SpecimenUpdate) AddGrowthMetrics(v ...*GrowthMetric) *SpecimenUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGrowthMetricIDs(ids...)
}

// AddResearcherLinkIDs adds the "researcher_links" edge to the SpecimenResearcher entity by IDs.
func (_u *SpecimenUpdate) AddResearcherLinkIDs(ids ...string) *SpecimenUpdate {
	_u.mutation.AddResearcherLinkIDs(ids...)
	return _u
}

// AddResearcherLinks adds the "researcher_links" edges to the SpecimenResearcher entity.
func (_u *SpecimenUpdate) AddResearcherLinks(v ...*SpecimenResearcher) *SpecimenUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResearcherLinkIDs(ids...)
}

// Mutation returns the SpecimenMutation object of the builder.
func (_u *SpecimenUpdate) Mutation() *SpecimenMutation {
	return _u.mutation
}

// ClearLocation clears the "location" edge to the Location entity.
func (_u *SpecimenUpdate) ClearLocation() *SpecimenUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// ClearCondition clears the "condition" edge to the EnvironmentalCondition entity.
func (_u *SpecimenUpdate) ClearCondition() *SpecimenUpdate {
	_u.mutation.ClearCondition()
	return _u
}

// ClearGrowthMetrics clears all "growth_metrics" edges to the GrowthMetric entity.
func (_u *SpecimenUpdate) ClearGrowthMetrics() *SpecimenUpdate {
	_u.mutation.ClearGrowthMetrics()
	return _u
}

// RemoveGrowthMetricIDs removes the "growth_metrics" edge to GrowthMetric entities by IDs.
func (_u *SpecimenUpdate) RemoveGrowthMetricIDs(ids ...string) *SpecimenUpdate {
	_u.mutation.RemoveGrowthMetricIDs(ids...)
	return _u
}

// RemoveGrowthMetrics removes "growth_metrics" edges to GrowthMetric entities.
func (_u *SpecimenUpdate) RemoveGrowthMetrics(v ...*GrowthMetric) *SpecimenUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGrowthMetricIDs(ids...)
}

// ClearResearcherLinks clears all "researcher_links" edges to the SpecimenResearcher entity.
func (_u *SpecimenUpdate) ClearResearcherLinks() *SpecimenUpdate {
	_u.mutation.ClearResearcherLinks()
	return _u
}

// RemoveResearcherLinkIDs removes the "researcher_links" edge to SpecimenResearcher entities by IDs.
func (_u *SpecimenUpdate) RemoveResearcherLinkIDs(ids ...string) *SpecimenUpdate {
	_u.mutation.RemoveResearcherLinkIDs(ids...)
	return _u
}

// RemoveResearcherLinks removes "researcher_links" edges to SpecimenResearcher entities.
func (_u *SpecimenUpdate) RemoveResearcherLinks(v ...*SpecimenResearcher) *SpecimenUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResearcherLinkIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SpecimenUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpecimenUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SpecimenUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpecimenUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SpecimenUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := specimen.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpecimenUpdate) check() error {
	if v, ok := _u.mutation.Species(); ok {
		if err := specimen.SpeciesValidator(v); err != nil {
			return &ValidationError{Name: "species", err: fmt.Errorf(`ent: validator failed for field "Specimen.species": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := specimen.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Specimen.status": %w`, err)}
		}
	}
	if _u.mutation.LocationCleared() && len(_u.mutation.LocationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Specimen.location"`)
	}
	if _u.mutation.ConditionCleared() && len(_u.mutation.ConditionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Specimen.condition"`)
	}
	return nil
}

func (_u *SpecimenUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(specimen.Table, specimen.Columns, sqlgraph.NewFieldSpec(specimen.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(specimen.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Species(); ok {
		_spec.SetField(specimen.FieldSpecies, field.TypeString, value)
	}
	if value, ok := _u.mutation.CommonName(); ok {
		_spec.SetField(specimen.FieldCommonName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SamplingDate(); ok {
		_spec.SetField(specimen.FieldSamplingDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(specimen.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(specimen.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(specimen.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(specimen.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(specimen.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.LocationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LocationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConditionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConditionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GrowthMetricsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGrowthMetricsIDs(); len(nodes) > 0 && !_u.mutation.GrowthMetricsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GrowthMetricsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResearcherLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResearcherLinksIDs(); len(nodes) > 0 && !_u.mutation.ResearcherLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResearcherLinksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{specimen.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SpecimenUpdateOne is the builder for updating a single Specimen entity.
type SpecimenUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SpecimenMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SpecimenUpdateOne) SetUpdatedAt(v time.Time) *SpecimenUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSpecies sets the "species" field.
func (_u *SpecimenUpdateOne) SetSpecies(v string) *SpecimenUpdateOne {
	_u.mutation.SetSpecies(v)
	return _u
}

// SetNillableSpecies sets the "species" field if the given value is not nil.
func (_u *SpecimenUpdateOne) SetNillableSpecies(v *string) *SpecimenUpdateOne {
	if v != nil {
		_u.SetSpecies(*v)
	}
	return _u
}

// SetCommonName sets the "common_name" field.
func (_u *SpecimenUpdateOne) SetCommonName(v string) *SpecimenUpdateOne {
	_u.mutation.SetCommonName(v)
	return _u
}

// SetNillableCommonName sets the "common_name" field if the given value is not nil.
func (_u *SpecimenUpdateOne) SetNillableCommonName(v *string) *SpecimenUpdateOne {
	if v != nil {
		_u.SetCommonName(*v)
	}
	return _u
}

// SetSamplingDate sets the "sampling_date" field.
func (_u *SpecimenUpdateOne) SetSamplingDate(v time.Time) *SpecimenUpdateOne {
	_u.mutation.SetSamplingDate(v)
	return _u
}

// SetNillableSamplingDate sets the "sampling_date" field if the given value is not nil.
func (_u *SpecimenUpdateOne) SetNillableSamplingDate(v *time.Time) *SpecimenUpdateOne {
	if v != nil {
		_u.SetSamplingDate(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SpecimenUpdateOne) SetDescription(v string) *SpecimenUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SpecimenUpdateOne) SetNillableDescription(v *string) *SpecimenUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SpecimenUpdateOne) ClearDescription() *SpecimenUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SpecimenUpdateOne) SetStatus(v specimen.Status) *SpecimenUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SpecimenUpdateOne) SetNillableStatus(v *specimen.Status) *SpecimenUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *SpecimenUpdateOne) SetDeletedAt(v time.Time) *SpecimenUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *SpecimenUpdateOne) SetNillableDeletedAt(v *time.Time) *SpecimenUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *SpecimenUpdateOne) ClearDeletedAt() *SpecimenUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetLocationID sets the "location_id" field.
func (_u *SpecimenUpdateOne) SetLocationID(v string) *SpecimenUpdateOne {
	_u.mutation.SetLocationID(v)
	return _u
}

// SetNillableLocationID sets the "location_id" field if the given value is not nil.
func (_u *SpecimenUpdateOne) SetNillableLocationID(v *string) *SpecimenUpdateOne {
	if v != nil {
		_u.SetLocationID(*v)
	}
	return _u
}

// SetConditionID sets the "condition_id" field.
func (_u *SpecimenUpdateOne) SetConditionID(v string) *SpecimenUpdateOne {
	_u.mutation.SetConditionID(v)
	return _u
}

// SetNillableConditionID sets the "condition_id" field if the given value is not nil.
func (_u *SpecimenUpdateOne) SetNillableConditionID(v *string) *SpecimenUpdateOne {
	if v != nil {
		_u.SetConditionID(*v)
	}
	return _u
}

// SetLocation sets the "location" edge to the Location entity.
func (_u *SpecimenUpdateOne) SetLocation(v *Location) *SpecimenUpdateOne {
	return _u.SetLocationID(v.ID)
}

// SetCondition sets the "condition" edge to the EnvironmentalCondition entity.
func (_u *SpecimenUpdateOne) SetCondition(v *EnvironmentalCondition) *SpecimenUpdateOne {
	return _u.SetConditionID(v.ID)
}

// AddGrowthMetricIDs adds the "growth_metrics" edge to the GrowthMetric entity by IDs.
func (_u *SpecimenUpdateOne) AddGrowthMetricIDs(ids ...string) *SpecimenUpdateOne {
	_u.mutation.AddGrowthMetricIDs(ids...)
	return _u
}

// AddGrowthMetrics adds the "growth_metrics" edges to the GrowthMetric entity.
func (_u *SpecimenUpdateOne) AddGrowthMetrics(v ...*GrowthMetric) *SpecimenUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGrowthMetricIDs(ids...)
}

// AddResearcherLinkIDs adds the "researcher_links" edge to the SpecimenResearcher entity by IDs.
func (_u *SpecimenUpdateOne) AddResearcherLinkIDs(ids ...string) *SpecimenUpdateOne {
	_u.mutation.AddResearcherLinkIDs(ids...)
	return _u
}

// AddResearcherLinks adds the "researcher_links" edges to the SpecimenResearcher entity.
func (_u *SpecimenUpdateOne) AddResearcherLinks(v ...*SpecimenResearcher) *SpecimenUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResearcherLinkIDs(ids...)
}

// Mutation returns the SpecimenMutation object of the builder.
func (_u *SpecimenUpdateOne) Mutation() *SpecimenMutation {
	return _u.mutation
}

// ClearLocation clears the "location" edge to the Location entity.
func (_u *SpecimenUpdateOne) ClearLocation() *SpecimenUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// ClearCondition clears the "condition" edge to the EnvironmentalCondition entity.
func (_u *SpecimenUpdateOne) ClearCondition() *SpecimenUpdateOne {
	_u.mutation.ClearCondition()
	return _u
}

// ClearGrowthMetrics clears all "growth_metrics" edges to the GrowthMetric entity.
func (_u *SpecimenUpdateOne) ClearGrowthMetrics() *SpecimenUpdateOne {
	_u.mutation.ClearGrowthMetrics()
	return _u
}

// RemoveGrowthMetricIDs removes the "growth_metrics" edge to GrowthMetric entities by IDs.
func (_u *SpecimenUpdateOne) RemoveGrowthMetricIDs(ids ...string) *SpecimenUpdateOne {
	_u.mutation.RemoveGrowthMetricIDs(ids...)
	return _u
}

// RemoveGrowthMetrics removes "growth_metrics" edges to GrowthMetric entities.
func (_u *SpecimenUpdateOne) RemoveGrowthMetrics(v ...*GrowthMetric) *SpecimenUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGrowthMetricIDs(ids...)
}

// ClearResearcherLinks clears all "researcher_links" edges to the SpecimenResearcher entity.
func (_u *SpecimenUpdateOne) ClearResearcherLinks() *SpecimenUpdateOne {
	_u.mutation.ClearResearcherLinks()
	return _u
}

// RemoveResearcherLinkIDs removes the "researcher_links" edge to SpecimenResearcher entities by IDs.
func (_u *SpecimenUpdateOne) RemoveResearcherLinkIDs(ids ...string) *SpecimenUpdateOne {
	_u.mutation.RemoveResearcherLinkIDs(ids...)
	return _u
}

// RemoveResearcherLinks removes "researcher_links" edges to SpecimenResearcher entities.
func (_u *SpecimenUpdateOne) RemoveResearcherLinks(v ...*SpecimenResearcher) *SpecimenUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResearcherLinkIDs(ids...)
}

// Where appends a list predicates to the SpecimenUpdate builder.
func (_u *SpecimenUpdateOne) Where(ps ...predicate.Specimen) *SpecimenUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SpecimenUpdateOne) Select(field string, fields ...string) *SpecimenUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Specimen entity.
func (_u *SpecimenUpdateOne) Save(ctx context.Context) (*Specimen, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpecimenUpdateOne) SaveX(ctx context.Context) *Specimen {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SpecimenUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpecimenUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SpecimenUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := specimen.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpecimenUpdateOne) check() error {
	if v, ok := _u.mutation.Species(); ok {
		if err := specimen.SpeciesValidator(v); err != nil {
			return &ValidationError{Name: "species", err: fmt.Errorf(`ent: validator failed for field "Specimen.species": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := specimen.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Specimen.status": %w`, err)}
		}
	}
	if _u.mutation.LocationCleared() && len(_u.mutation.LocationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Specimen.location"`)
	}
	if _u.mutation.ConditionCleared() && len(_u.mutation.ConditionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Specimen.condition"`)
	}
	return nil
}

func (_u *SpecimenUpdateOne) sqlSave(ctx context.Context) (_node *Specimen, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(specimen.Table, specimen.Columns, sqlgraph.NewFieldSpec(specimen.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Specimen.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, specimen.FieldID)
		for _, f := range fields {
			if !specimen.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != specimen.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(specimen.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Species(); ok {
		_spec.SetField(specimen.FieldSpecies, field.TypeString, value)
	}
	if value, ok := _u.mutation.CommonName(); ok {
		_spec.SetField(specimen.FieldCommonName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SamplingDate(); ok {
		_spec.SetField(specimen.FieldSamplingDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(specimen.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(specimen.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(specimen.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(specimen.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(specimen.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.LocationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LocationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConditionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConditionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GrowthMetricsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGrowthMetricsIDs(); len(nodes) > 0 && !_u.mutation.GrowthMetricsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GrowthMetricsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResearcherLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResearcherLinksIDs(); len(nodes) > 0 && !_u.mutation.ResearcherLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResearcherLinksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Specimen{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{specimen.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
