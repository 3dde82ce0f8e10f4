// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Kurty-byte/plant-sampling/ent/environmentalcondition"
	"github.com/Kurty-byte/plant-sampling/ent/predicate"
	"github.com/Kurty-byte/plant-sampling/ent/specimen"
)

// EnvironmentalConditionUpdate is the builder for updating EnvironmentalCondition entities.
type EnvironmentalConditionUpdate struct {
	config
	hooks    []Hook
	mutation *EnvironmentalConditionMutation
}

// Where appends a list predicates to the EnvironmentalConditionUpdate builder.
func (_u *EnvironmentalConditionUpdate) Where(ps ...predicate.EnvironmentalCondition) *EnvironmentalConditionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *EnvironmentalConditionUpdate) SetTemperature(v float64) *EnvironmentalConditionUpdate {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *EnvironmentalConditionUpdate) SetNillableTemperature(v *float64) *EnvironmentalConditionUpdate {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *EnvironmentalConditionUpdate) AddTemperature(v float64) *EnvironmentalConditionUpdate {
	_u.mutation.AddTemperature(v)
	return _u
}

// SetHumidity sets the "humidity" field.
func (_u *EnvironmentalConditionUpdate) SetHumidity(v float64) *EnvironmentalConditionUpdate {
	_u.mutation.ResetHumidity()
	_u.mutation.SetHumidity(v)
	return _u
}

// SetNillableHumidity sets the "humidity" field if the given value is not nil.
func (_u *EnvironmentalConditionUpdate) SetNillableHumidity(v *float64) *EnvironmentalConditionUpdate {
	if v != nil {
		_u.SetHumidity(*v)
	}
	return _u
}

// AddHumidity adds value to the "humidity" field.
func (_u *EnvironmentalConditionUpdate) AddHumidity(v float64) *EnvironmentalConditionUpdate {
	_u.mutation.AddHumidity(v)
	return _u
}

// SetAltitude sets the "altitude" field.
func (_u *EnvironmentalConditionUpdate) SetAltitude(v float64) *EnvironmentalConditionUpdate {
	_u.mutation.ResetAltitude()
	_u.mutation.SetAltitude(v)
	return _u
}

// SetNillableAltitude sets the "altitude" field if the given value is not nil.
func (_u *EnvironmentalConditionUpdate) SetNillableAltitude(v *float64) *EnvironmentalConditionUpdate {
	if v != nil {
		_u.SetAltitude(*v)
	}
	return _u
}

// AddAltitude adds value to the "altitude" field.
func (_u *EnvironmentalConditionUpdate) AddAltitude(v float64) *EnvironmentalConditionUpdate {
	_u.mutation.AddAltitude(v)
	return _u
}

// SetSoilPh sets the "soil_ph" field.
func (_u *EnvironmentalConditionUpdate) SetSoilPh(v float64) *EnvironmentalConditionUpdate {
	_u.mutation.ResetSoilPh()
	_u.mutation.SetSoilPh(v)
	return _u
}

// SetNillableSoilPh sets the "soil_ph" field if the given value is not nil.
func (_u *EnvironmentalConditionUpdate) SetNillableSoilPh(v *float64) *EnvironmentalConditionUpdate {
	if v != nil {
		_u.SetSoilPh(*v)
	}
	return _u
}

// AddSoilPh adds value to the "soil_ph" field.
func (_u *EnvironmentalConditionUpdate) AddSoilPh(v float64) *EnvironmentalConditionUpdate {
	_u.mutation.AddSoilPh(v)
	return _u
}

// SetSoilType sets the "soil_type" field.
func (_u *EnvironmentalConditionUpdate) SetSoilType(v environmentalcondition.SoilType) *EnvironmentalConditionUpdate {
	_u.mutation.SetSoilType(v)
	return _u
}

// SetNillableSoilType sets the "soil_type" field if the given value is not nil.
func (_u *EnvironmentalConditionUpdate) SetNillableSoilType(v *environmentalcondition.SoilType) *EnvironmentalConditionUpdate {
	if v != nil {
		_u.SetSoilType(*v)
	}
	return _u
}

// SetSoilNutrients sets the "soil_nutrients" field.
func (_u *EnvironmentalConditionUpdate) SetSoilNutrients(v map[string]interface{}) *EnvironmentalConditionUpdate {
	_u.mutation.SetSoilNutrients(v)
	return _u
}

// ClearSoilNutrients clears the value of the "soil_nutrients" field.
func (_u *EnvironmentalConditionUpdate) ClearSoilNutrients() *EnvironmentalConditionUpdate {
	_u.mutation.ClearSoilNutrients()
	return _u
}

// AddSpecimenIDs adds the "specimens" edge to the Specimen entity by IDs.
func (_u *EnvironmentalConditionUpdate) AddSpecimenIDs(ids ...string) *EnvironmentalConditionUpdate {
	_u.mutation.AddSpecimenIDs(ids...)
	return _u
}

// AddSpecimens adds the "specimens" edges to the Specimen entity.
func (_u *EnvironmentalConditionUpdate) AddSpecimens(v ...*Specimen) *EnvironmentalConditionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSpecimenIDs(ids...)
}

// Mutation returns the EnvironmentalConditionMutation object of the builder.
func (_u *EnvironmentalConditionUpdate) Mutation() *EnvironmentalConditionMutation {
	return _u.mutation
}

// ClearSpecimens clears all "specimens" edges to the Specimen entity.
func (_u *EnvironmentalConditionUpdate) ClearSpecimens() *EnvironmentalConditionUpdate {
	_u.mutation.ClearSpecimens()
	return _u
}

// RemoveSpecimenIDs removes the "specimens" edge to Specimen entities by IDs.
func (_u *EnvironmentalConditionUpdate) RemoveSpecimenIDs(ids ...string) *EnvironmentalConditionUpdate {
	_u.mutation.RemoveSpecimenIDs(ids...)
	return _u
}

// RemoveSpecimens removes "specimens" edges to Specimen entities.
func (_u *EnvironmentalConditionUpdate) RemoveSpecimens(v ...*Specimen) *EnvironmentalConditionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSpecimenIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EnvironmentalConditionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnvironmentalConditionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EnvironmentalConditionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnvironmentalConditionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EnvironmentalConditionUpdate) check() error {
	if v, ok := _u.mutation.SoilType(); ok {
		if err := environmentalcondition.SoilTypeValidator(v); err != nil {
			return &ValidationError{Name: "soil_type", err: fmt.Errorf(`ent: validator failed for field "EnvironmentalCondition.soil_type": %w`, err)}
		}
	}
	return nil
}

func (_u *EnvironmentalConditionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(environmentalcondition.Table, environmentalcondition.Columns, sqlgraph.NewFieldSpec(environmentalcondition.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(environmentalcondition.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(environmentalcondition.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Humidity(); ok {
		_spec.SetField(environmentalcondition.FieldHumidity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHumidity(); ok {
		_spec.AddField(environmentalcondition.FieldHumidity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Altitude(); ok {
		_spec.SetField(environmentalcondition.FieldAltitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAltitude(); ok {
		_spec.AddField(environmentalcondition.FieldAltitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SoilPh(); ok {
		_spec.SetField(environmentalcondition.FieldSoilPh, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSoilPh(); ok {
		_spec.AddField(environmentalcondition.FieldSoilPh, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SoilType(); ok {
		_spec.SetField(environmentalcondition.FieldSoilType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SoilNutrients(); ok {
		_spec.SetField(environmentalcondition.FieldSoilNutrients, field.TypeJSON, value)
	}
	if _u.mutation.SoilNutrientsCleared() {
		_spec.ClearField(environmentalcondition.FieldSoilNutrients, field.TypeJSON)
	}
	if _u.mutation.SpecimensCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSpecimensIDs(); len(nodes) > 0 && !_u.mutation.SpecimensCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SpecimensIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{environmentalcondition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EnvironmentalConditionUpdateOne is the builder for updating a single EnvironmentalCondition entity.
type EnvironmentalConditionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EnvironmentalConditionMutation
}

// SetTemperature sets the "temperature" field.
func (_u *EnvironmentalConditionUpdateOne) SetTemperature(v float64) *EnvironmentalConditionUpdateOne {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *EnvironmentalConditionUpdateOne) SetNillableTemperature(v *float64) *EnvironmentalConditionUpdateOne {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *EnvironmentalConditionUpdateOne) AddTemperature(v float64) *EnvironmentalConditionUpdateOne {
	_u.mutation.AddTemperature(v)
	return _u
}

// SetHumidity sets the "humidity" field.
func (_u *EnvironmentalConditionUpdateOne) SetHumidity(v float64) *EnvironmentalConditionUpdateOne {
	_u.mutation.ResetHumidity()
	_u.mutation.SetHumidity(v)
	return _u
}

// SetNillableHumidity sets the "humidity" field if the given value is not nil.
func (_u *EnvironmentalConditionUpdateOne) SetNillableHumidity(v *float64) *EnvironmentalConditionUpdateOne {
	if v != nil {
		_u.SetHumidity(*v)
	}
	return _u
}

// AddHumidity adds value to the "humidity" field.
func (_u *EnvironmentalConditionUpdateOne) AddHumidity(v float64) *EnvironmentalConditionUpdateOne {
	_u.mutation.AddHumidity(v)
	return _u
}

// SetAltitude sets the "altitude" field.
func (_u *EnvironmentalConditionUpdateOne) SetAltitude(v float64) *EnvironmentalConditionUpdateOne {
	_u.mutation.ResetAltitude()
	_u.mutation.SetAltitude(v)
	return _u
}

// SetNillableAltitude sets the "altitude" field if the given value is not nil.
func (_u *EnvironmentalConditionUpdateOne) SetNillableAltitude(v *float64) *EnvironmentalConditionUpdateOne {
	if v != nil {
		_u.SetAltitude(*v)
	}
	return _u
}

// AddAltitude adds value to the "altitude" field.
func (_u *EnvironmentalConditionUpdateOne) AddAltitude(v float64) *EnvironmentalConditionUpdateOne {
	_u.mutation.AddAltitude(v)
	return _u
}

// SetSoilPh sets the "soil_ph" field.
func (_u *EnvironmentalConditionUpdateOne) SetSoilPh(v float64) *EnvironmentalConditionUpdateOne {
	_u.mutation.ResetSoilPh()
	_u.mutation.SetSoilPh(v)
	return _u
}

// SetNillableSoilPh sets the "soil_ph" field if the given value is not nil.
func (_u *EnvironmentalConditionUpdateOne) SetNillableSoilPh(v *float64) *EnvironmentalConditionUpdateOne {
	if v != nil {
		_u.SetSoilPh(*v)
	}
	return _u
}

// AddSoilPh adds value to the "soil_ph" field.
func (_u *EnvironmentalConditionUpdateOne) AddSoilPh(v float64) *EnvironmentalConditionUpdateOne {
	_u.mutation.AddSoilPh(v)
	return _u
}

// SetSoilType sets the "soil_type" field.
func (_u *EnvironmentalConditionUpdateOne) SetSoilType(v environmentalcondition.SoilType) *EnvironmentalConditionUpdateOne {
	_u.mutation.SetSoilType(v)
	return _u
}

// SetNillableSoilType sets the "soil_type" field if the given value is not nil.
func (_u *EnvironmentalConditionUpdateOne) SetNillableSoilType(v *environmentalcondition.SoilType) *EnvironmentalConditionUpdateOne {
	if v != nil {
		_u.SetSoilType(*v)
	}
	return _u
}

// SetSoilNutrients sets the "soil_nutrients" field.
func (_u *EnvironmentalConditionUpdateOne) SetSoilNutrients(v map[string]interface{}) *EnvironmentalConditionUpdateOne {
	_u.mutation.SetSoilNutrients(v)
	return _u
}

// ClearSoilNutrients clears the value of the "soil_nutrients" field.
func (_u *EnvironmentalConditionUpdateOne) ClearSoilNutrients() *EnvironmentalConditionUpdateOne {
	_u.mutation.ClearSoilNutrients()
	return _u
}

// AddSpecimenIDs adds the "specimens" edge to the Specimen entity by IDs.
func (_u *EnvironmentalConditionUpdateOne) AddSpecimenIDs(ids ...string) *EnvironmentalConditionUpdateOne {
	_u.mutation.AddSpecimenIDs(ids...)
	return _u
}

// AddSpecimens adds the "specimens" edges to the Specimen entity.
func (_u *EnvironmentalConditionUpdateOne) AddSpecimens(v ...*Specimen) *EnvironmentalConditionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSpecimenIDs(ids...)
}

// Mutation returns the EnvironmentalConditionMutation object of the builder.
func (_u *EnvironmentalConditionUpdateOne) Mutation() *EnvironmentalConditionMutation {
	return _u.mutation
}

// ClearSpecimens clears all "specimens" edges to the Specimen entity.
func (_u *EnvironmentalConditionUpdateOne) ClearSpecimens() *EnvironmentalConditionUpdateOne {
	_u.mutation.ClearSpecimens()
	return _u
}

// RemoveSpecimenIDs removes the "specimens" edge to Specimen entities by IDs.
func (_u *EnvironmentalConditionUpdateOne) RemoveSpecimenIDs(ids ...string) *EnvironmentalConditionUpdateOne {
	_u.mutation.RemoveSpecimenIDs(ids...)
	return _u
}

// RemoveSpecimens removes "specimens" edges to Specimen entities.
func (_u *EnvironmentalConditionUpdateOne) RemoveSpecimens(v ...*Specimen) *EnvironmentalConditionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSpecimenIDs(ids...)
}

// Where appends a list predicates to the EnvironmentalConditionUpdate builder.
func (_u *EnvironmentalConditionUpdateOne) Where(ps ...predicate.EnvironmentalCondition) *EnvironmentalConditionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EnvironmentalConditionUpdateOne) Select(field string, fields ...string) *EnvironmentalConditionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EnvironmentalCondition entity.
func (_u *EnvironmentalConditionUpdateOne) Save(ctx context.Context) (*EnvironmentalCondition, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnvironmentalConditionUpdateOne) SaveX(ctx context.Context) *EnvironmentalCondition {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EnvironmentalConditionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnvironmentalConditionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EnvironmentalConditionUpdateOne) check() error {
	if v, ok := _u.mutation.SoilType(); ok {
		if err := environmentalcondition.SoilTypeValidator(v); err != nil {
			return &ValidationError{Name: "soil_type", err: fmt.Errorf(`ent: validator failed for field "EnvironmentalCondition.soil_type": %w`, err)}
		}
	}
	return nil
}

func (_u *EnvironmentalConditionUpdateOne) sqlSave(ctx context.Context) (_node *EnvironmentalCondition, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(environmentalcondition.Table, environmentalcondition.Columns, sqlgraph.NewFieldSpec(environmentalcondition.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EnvironmentalCondition.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, environmentalcondition.FieldID)
		for _, f := range fields {
			if !environmentalcondition.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != environmentalcondition.FieldID {
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
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(environmentalcondition.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(environmentalcondition.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Humidity(); ok {
		_spec.SetField(environmentalcondition.FieldHumidity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHumidity(); ok {
		_spec.AddField(environmentalcondition.FieldHumidity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Altitude(); ok {
		_spec.SetField(environmentalcondition.FieldAltitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAltitude(); ok {
		_spec.AddField(environmentalcondition.FieldAltitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SoilPh(); ok {
		_spec.SetField(environmentalcondition.FieldSoilPh, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSoilPh(); ok {
		_spec.AddField(environmentalcondition.FieldSoilPh, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SoilType(); ok {
		_spec.SetField(environmentalcondition.FieldSoilType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SoilNutrients(); ok {
		_spec.SetField(environmentalcondition.FieldSoilNutrients, field.TypeJSON, value)
	}
	if _u.mutation.SoilNutrientsCleared() {
		_spec.ClearField(environmentalcondition.FieldSoilNutrients, field.TypeJSON)
	}
	if _u.mutation.SpecimensCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSpecimensIDs(); len(nodes) > 0 && !_u.mutation.SpecimensCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SpecimensIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &EnvironmentalCondition{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{environmentalcondition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
