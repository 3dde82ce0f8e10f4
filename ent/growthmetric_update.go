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
	"github.com/Kurty-byte/plant-sampling/ent/growthmetric"
	"github.com/Kurty-byte/plant-sampling/ent/predicate"
	"github.com/Kurty-byte/plant-sampling/ent/specimen"
)

// GrowthMetricUpdate is the builder for updating GrowthMetric entities.
type GrowthMetricUpdate struct {
	config
	hooks    []Hook
	mutation *GrowthMetricMutation
}

// Where appends a list predicates to the GrowthMetricUpdate builder.
func (_u *GrowthMetricUpdate) Where(ps ...predicate.GrowthMetric) *GrowthMetricUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSpecimenID sets the "specimen_id" field.
func (_u *GrowthMetricUpdate) SetSpecimenID(v string) *GrowthMetricUpdate {
	_u.mutation.SetSpecimenID(v)
	return _u
}

// SetNillableSpecimenID sets the "specimen_id" field if the given value is not nil.
func (_u *GrowthMetricUpdate) SetNillableSpecimenID(v *string) *GrowthMetricUpdate {
	if v != nil {
		_u.SetSpecimenID(*v)
	}
	return _u
}

// SetHeight sets the "height" field.
func (_u *GrowthMetricUpdate) SetHeight(v float64) *GrowthMetricUpdate {
	_u.mutation.ResetHeight()
	_u.mutation.SetHeight(v)
	return _u
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_u *GrowthMetricUpdate) SetNillableHeight(v *float64) *GrowthMetricUpdate {
	if v != nil {
		_u.SetHeight(*v)
	}
	return _u
}

// AddHeight adds value to the "height" field.
func (_u *GrowthMetricUpdate) AddHeight(v float64) *GrowthMetricUpdate {
	_u.mutation.AddHeight(v)
	return _u
}

// ClearHeight clears the value of the "height" field.
func (_u *GrowthMetricUpdate) ClearHeight() *GrowthMetricUpdate {
	_u.mutation.ClearHeight()
	return _u
}

// SetLeafCount sets the "leaf_count" field.
func (_u *GrowthMetricUpdate) SetLeafCount(v int) *GrowthMetricUpdate {
	_u.mutation.ResetLeafCount()
	_u.mutation.SetLeafCount(v)
	return _u
}

// SetNillableLeafCount sets the "leaf_count" field if the given value is not nil.
func (_u *GrowthMetricUpdate) SetNillableLeafCount(v *int) *GrowthMetricUpdate {
	if v != nil {
		_u.SetLeafCount(*v)
	}
	return _u
}

// AddLeafCount adds value to the "leaf_count" field.
func (_u *GrowthMetricUpdate) AddLeafCount(v int) *GrowthMetricUpdate {
	_u.mutation.AddLeafCount(v)
	return _u
}

// ClearLeafCount clears the value of the "leaf_count" field.
func (_u *GrowthMetricUpdate) ClearLeafCount() *GrowthMetricUpdate {
	_u.mutation.ClearLeafCount()
	return _u
}

// SetStemDiameter sets the "stem_diameter" field.
func (_u *GrowthMetricUpdate) SetStemDiameter(v float64) *GrowthMetricUpdate {
	_u.mutation.ResetStemDiameter()
	_u.mutation.SetStemDiameter(v)
	return _u
}

// SetNillableStemDiameter sets the "stem_diameter" field if the given value is not nil.
func (_u *GrowthMetricUpdate) SetNillableStemDiameter(v *float64) *GrowthMetricUpdate {
	if v != nil {
		_u.SetStemDiameter(*v)
	}
	return _u
}

// AddStemDiameter adds value to the "stem_diameter" field.
func (_u *GrowthMetricUpdate) AddStemDiameter(v float64) *GrowthMetricUpdate {
	_u.mutation.AddStemDiameter(v)
	return _u
}

// ClearStemDiameter clears the value of the "stem_diameter" field.
func (_u *GrowthMetricUpdate) ClearStemDiameter() *GrowthMetricUpdate {
	_u.mutation.ClearStemDiameter()
	return _u
}

// SetHealthStatus sets the "health_status" field.
func (_u *GrowthMetricUpdate) SetHealthStatus(v growthmetric.HealthStatus) *GrowthMetricUpdate {
	_u.mutation.SetHealthStatus(v)
	return _u
}

// SetNillableHealthStatus sets the "health_status" field if the given value is not nil.
func (_u *GrowthMetricUpdate) SetNillableHealthStatus(v *growthmetric.HealthStatus) *GrowthMetricUpdate {
	if v != nil {
		_u.SetHealthStatus(*v)
	}
	return _u
}

// ClearHealthStatus clears the value of the "health_status" field.
func (_u *GrowthMetricUpdate) ClearHealthStatus() *GrowthMetricUpdate {
	_u.mutation.ClearHealthStatus()
	return _u
}

// SetMeasuredAt sets the "measured_at" field.
func (_u *GrowthMetricUpdate) SetMeasuredAt(v time.Time) *GrowthMetricUpdate {
	_u.mutation.SetMeasuredAt(v)
	return _u
}

// SetNillableMeasuredAt sets the "measured_at" field if the given value is not nil.
func (_u *GrowthMetricUpdate) SetNillableMeasuredAt(v *time.Time) *GrowthMetricUpdate {
	if v != nil {
		_u.SetMeasuredAt(*v)
	}
	return _u
}

// SetSpecimen sets the "specimen" edge to the Specimen entity.
func (_u *GrowthMetricUpdate) SetSpecimen(v *Specimen) *GrowthMetricUpdate {
	return _u.SetSpecimenID(v.ID)
}

// Mutation returns the GrowthMetricMutation object of the builder.
func (_u *GrowthMetricUpdate) Mutation() *GrowthMetricMutation {
	return _u.mutation
}

// ClearSpecimen clears the "specimen" edge to the Specimen entity.
func (_u *GrowthMetricUpdate) ClearSpecimen() *GrowthMetricUpdate {
	_u.mutation.ClearSpecimen()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GrowthMetricUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GrowthMetricUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GrowthMetricUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GrowthMetricUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GrowthMetricUpdate) check() error {
	if v, ok := _u.mutation.HealthStatus(); ok {
		if err := growthmetric.HealthStatusValidator(v); err != nil {
			return &ValidationError{Name: "health_status", err: fmt.Errorf(`ent: validator failed for field "GrowthMetric.health_status": %w`, err)}
		}
	}
	if _u.mutation.SpecimenCleared() && len(_u.mutation.SpecimenIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GrowthMetric.specimen"`)
	}
	return nil
}

func (_u *GrowthMetricUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(growthmetric.Table, growthmetric.Columns, sqlgraph.NewFieldSpec(growthmetric.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(growthmetric.FieldHeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHeight(); ok {
		_spec.AddField(growthmetric.FieldHeight, field.TypeFloat64, value)
	}
	if _u.mutation.HeightCleared() {
		_spec.ClearField(growthmetric.FieldHeight, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LeafCount(); ok {
		_spec.SetField(growthmetric.FieldLeafCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLeafCount(); ok {
		_spec.AddField(growthmetric.FieldLeafCount, field.TypeInt, value)
	}
	if _u.mutation.LeafCountCleared() {
		_spec.ClearField(growthmetric.FieldLeafCount, field.TypeInt)
	}
	if value, ok := _u.mutation.StemDiameter(); ok {
		_spec.SetField(growthmetric.FieldStemDiameter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStemDiameter(); ok {
		_spec.AddField(growthmetric.FieldStemDiameter, field.TypeFloat64, value)
	}
	if _u.mutation.StemDiameterCleared() {
		_spec.ClearField(growthmetric.FieldStemDiameter, field.TypeFloat64)
	}
	if value, ok := _u.mutation.HealthStatus(); ok {
		_spec.SetField(growthmetric.FieldHealthStatus, field.TypeEnum, value)
	}
	if _u.mutation.HealthStatusCleared() {
		_spec.ClearField(growthmetric.FieldHealthStatus, field.TypeEnum)
	}
	if value, ok := _u.mutation.MeasuredAt(); ok {
		_spec.SetField(growthmetric.FieldMeasuredAt, field.TypeTime, value)
	}
	if _u.mutation.SpecimenCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SpecimenIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{growthmetric.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GrowthMetricUpdateOne is the builder for updating a single GrowthMetric entity.
type GrowthMetricUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GrowthMetricMutation
}

// SetSpecimenID sets the "specimen_id" field.
func (_u *GrowthMetricUpdateOne) SetSpecimenID(v string) *GrowthMetricUpdateOne {
	_u.mutation.SetSpecimenID(v)
	return _u
}

// SetNillableSpecimenID sets the "specimen_id" field if the given value is not nil.
func (_u *GrowthMetricUpdateOne) SetNillableSpecimenID(v *string) *GrowthMetricUpdateOne {
	if v != nil {
		_u.SetSpecimenID(*v)
	}
	return _u
}

// SetHeight sets the "height" field.
func (_u *GrowthMetricUpdateOne) SetHeight(v float64) *GrowthMetricUpdateOne {
	_u.mutation.ResetHeight()
	_u.mutation.SetHeight(v)
	return _u
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_u *GrowthMetricUpdateOne) SetNillableHeight(v *float64) *GrowthMetricUpdateOne {
	if v != nil {
		_u.SetHeight(*v)
	}
	return _u
}

// AddHeight adds value to the "height" field.
func (_u *GrowthMetricUpdateOne) AddHeight(v float64) *GrowthMetricUpdateOne {
	_u.mutation.AddHeight(v)
	return _u
}

// ClearHeight clears the value of the "height" field.
func (_u *GrowthMetricUpdateOne) ClearHeight() *GrowthMetricUpdateOne {
	_u.mutation.ClearHeight()
	return _u
}

// SetLeafCount sets the "leaf_count" field.
func (_u *GrowthMetricUpdateOne) SetLeafCount(v int) *GrowthMetricUpdateOne {
	_u.mutation.ResetLeafCount()
	_u.mutation.SetLeafCount(v)
	return _u
}

// SetNillableLeafCount sets the "leaf_count" field if the given value is not nil.
func (_u *GrowthMetricUpdateOne) SetNillableLeafCount(v *int) *GrowthMetricUpdateOne {
	if v != nil {
		_u.SetLeafCount(*v)
	}
	return _u
}

// AddLeafCount adds value to the "leaf_count" field.
func (_u *GrowthMetricUpdateOne) AddLeafCount(v int) *GrowthMetricUpdateOne {
	_u.mutation.AddLeafCount(v)
	return _u
}

// ClearLeafCount clears the value of the "leaf_count" field.
func (_u *GrowthMetricUpdateOne) ClearLeafCount() *GrowthMetricUpdateOne {
	_u.mutation.ClearLeafCount()
	return _u
}

// SetStemDiameter sets the "stem_diameter" field.
func (_u *GrowthMetricUpdateOne) SetStemDiameter(v float64) *GrowthMetricUpdateOne {
	_u.mutation.ResetStemDiameter()
	_u.mutation.SetStemDiameter(v)
	return _u
}

// SetNillableStemDiameter sets the "stem_diameter" field if the given value is not nil.
func (_u *GrowthMetricUpdateOne) SetNillableStemDiameter(v *float64) *GrowthMetricUpdateOne {
	if v != nil {
		_u.SetStemDiameter(*v)
	}
	return _u
}

// AddStemDiameter adds value to the "stem_diameter" field.
func (_u *GrowthMetricUpdateOne) AddStemDiameter(v float64) *GrowthMetricUpdateOne {
	_u.mutation.AddStemDiameter(v)
	return _u
}

// ClearStemDiameter clears the value of the "stem_diameter" field.
func (_u *GrowthMetricUpdateOne) ClearStemDiameter() *GrowthMetricUpdateOne {
	_u.mutation.ClearStemDiameter()
	return _u
}

// SetHealthStatus sets the "health_status" field.
func (_u *GrowthMetricUpdateOne) SetHealthStatus(v growthmetric.HealthStatus) *GrowthMetricUpdateOne {
	_u.mutation.SetHealthStatus(v)
	return _u
}

// SetNillableHealthStatus sets the "health_status" field if the given value is not nil.
func (_u *GrowthMetricUpdateOne) SetNillableHealthStatus(v *growthmetric.HealthStatus) *GrowthMetricUpdateOne {
	if v != nil {
		_u.SetHealthStatus(*v)
	}
	return _u
}

// ClearHealthStatus clears the value of the "health_status" field.
func (_u *GrowthMetricUpdateOne) ClearHealthStatus() *GrowthMetricUpdateOne {
	_u.mutation.ClearHealthStatus()
	return _u
}

// SetMeasuredAt sets the "measured_at" field.
func (_u *GrowthMetricUpdateOne) SetMeasuredAt(v time.Time) *GrowthMetricUpdateOne {
	_u.mutation.SetMeasuredAt(v)
	return _u
}

// SetNillableMeasuredAt sets the "measured_at" field if the given value is not nil.
func (_u *GrowthMetricUpdateOne) SetNillableMeasuredAt(v *time.Time) *GrowthMetricUpdateOne {
	if v != nil {
		_u.SetMeasuredAt(*v)
	}
	return _u
}

// SetSpecimen sets the "specimen" edge to the Specimen entity.
func (_u *GrowthMetricUpdateOne) SetSpecimen(v *Specimen) *GrowthMetricUpdateOne {
	return _u.SetSpecimenID(v.ID)
}

// Mutation returns the GrowthMetricMutation object of the builder.
func (_u *GrowthMetricUpdateOne) Mutation() *GrowthMetricMutation {
	return _u.mutation
}

// ClearSpecimen clears the "specimen" edge to the Specimen entity.
func (_u *GrowthMetricUpdateOne) ClearSpecimen() *GrowthMetricUpdateOne {
	_u.mutation.ClearSpecimen()
	return _u
}

// Where appends a list predicates to the GrowthMetricUpdate builder.
func (_u *GrowthMetricUpdateOne) Where(ps ...predicate.GrowthMetric) *GrowthMetricUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GrowthMetricUpdateOne) Select(field string, fields ...string) *GrowthMetricUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GrowthMetric entity.
func (_u *GrowthMetricUpdateOne) Save(ctx context.Context) (*GrowthMetric, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GrowthMetricUpdateOne) SaveX(ctx context.Context) *GrowthMetric {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GrowthMetricUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GrowthMetricUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GrowthMetricUpdateOne) check() error {
	if v, ok := _u.mutation.HealthStatus(); ok {
		if err := growthmetric.HealthStatusValidator(v); err != nil {
			return &ValidationError{Name: "health_status", err: fmt.Errorf(`ent: validator failed for field "GrowthMetric.health_status": %w`, err)}
		}
	}
	if _u.mutation.SpecimenCleared() && len(_u.mutation.SpecimenIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GrowthMetric.specimen"`)
	}
	return nil
}

func (_u *GrowthMetricUpdateOne) sqlSave(ctx context.Context) (_node *GrowthMetric, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(growthmetric.Table, growthmetric.Columns, sqlgraph.NewFieldSpec(growthmetric.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GrowthMetric.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, growthmetric.FieldID)
		for _, f := range fields {
			if !growthmetric.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != growthmetric.FieldID {
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
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(growthmetric.FieldHeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHeight(); ok {
		_spec.AddField(growthmetric.FieldHeight, field.TypeFloat64, value)
	}
	if _u.mutation.HeightCleared() {
		_spec.ClearField(growthmetric.FieldHeight, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LeafCount(); ok {
		_spec.SetField(growthmetric.FieldLeafCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLeafCount(); ok {
		_spec.AddField(growthmetric.FieldLeafCount, field.TypeInt, value)
	}
	if _u.mutation.LeafCountCleared() {
		_spec.ClearField(growthmetric.FieldLeafCount, field.TypeInt)
	}
	if value, ok := _u.mutation.StemDiameter(); ok {
		_spec.SetField(growthmetric.FieldStemDiameter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStemDiameter(); ok {
		_spec.AddField(growthmetric.FieldStemDiameter, field.TypeFloat64, value)
	}
	if _u.mutation.StemDiameterCleared() {
		_spec.ClearField(growthmetric.FieldStemDiameter, field.TypeFloat64)
	}
	if value, ok := _u.mutation.HealthStatus(); ok {
		_spec.SetField(growthmetric.FieldHealthStatus, field.TypeEnum, value)
	}
	if _u.mutation.HealthStatusCleared() {
		_spec.ClearField(growthmetric.FieldHealthStatus, field.TypeEnum)
	}
	if value, ok := _u.mutation.MeasuredAt(); ok {
		_spec.SetField(growthmetric.FieldMeasuredAt, field.TypeTime, value)
	}
	if _u.mutation.SpecimenCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SpecimenIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &GrowthMetric{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{growthmetric.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
