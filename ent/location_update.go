// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Kurty-byte/plant-sampling/ent/location"
	"github.com/Kurty-byte/plant-sampling/ent/predicate"
	"github.com/Kurty-byte/plant-sampling/ent/specimen"
)

// LocationUpdate is the builder for updating Location entities.
type LocationUpdate struct {
	config
	hooks    []Hook
	mutation *LocationMutation
}

// Where appends a list predicates to the LocationUpdate builder.
func (_u *LocationUpdate) Where(ps ...predicate.Location) *LocationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLatitude sets the "latitude" field.
func (_u *LocationUpdate) SetLatitude(v float64) *LocationUpdate {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *LocationUpdate) SetNillableLatitude(v *float64) *LocationUpdate {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *LocationUpdate) AddLatitude(v float64) *LocationUpdate {
	_u.mutation.AddLatitude(v)
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *LocationUpdate) SetLongitude(v float64) *LocationUpdate {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *LocationUpdate) SetNillableLongitude(v *float64) *LocationUpdate {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *LocationUpdate) AddLongitude(v float64) *LocationUpdate {
	_u.mutation.AddLongitude(v)
	return _u
}

// SetRegion sets the "region" field.
func (_u *LocationUpdate) SetRegion(v string) *LocationUpdate {
	_u.mutation.SetRegion(v)
	return _u
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_u *LocationUpdate) SetNillableRegion(v *string) *LocationUpdate {
	if v != nil {
		_u.SetRegion(*v)
	}
	return _u
}

// SetCountry sets the "country" field.
func (_u *LocationUpdate) SetCountry(v string) *LocationUpdate {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *LocationUpdate) SetNillableCountry(v *string) *LocationUpdate {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// SetSiteType sets the "site_type" field.
func (_u *LocationUpdate) SetSiteType(v location.SiteType) *LocationUpdate {
	_u.mutation.SetSiteType(v)
	return _u
}

// SetNillableSiteType sets the "site_type" field if the given value is not nil.
func (_u *LocationUpdate) SetNillableSiteType(v *location.SiteType) *LocationUpdate {
	if v != nil {
		_u.SetSiteType(*v)
	}
	return _u
}

// ClearSiteType clears the value of the "site_type" field.
func (_u *LocationUpdate) ClearSiteType() *LocationUpdate {
	_u.mutation.ClearSiteType()
	return _u
}

// AddSpecimenIDs adds the "specimens" edge to the Specimen entity by IDs.
func (_u *LocationUpdate) AddSpecimenIDs(ids ...string) *LocationUpdate {
	_u.mutation.AddSpecimenIDs(ids...)
	return _u
}

// AddSpecimens adds the "specimens" edges to the Specimen entity.
func (_u *LocationUpdate) AddSpecimens(v ...*Specimen) *LocationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSpecimenIDs(ids...)
}

// Mutation returns the LocationMutation object of the builder.
func (_u *LocationUpdate) Mutation() *LocationMutation {
	return _u.mutation
}

// ClearSpecimens clears all "specimens" edges to the Specimen entity.
func (_u *LocationUpdate) ClearSpecimens() *LocationUpdate {
	_u.mutation.ClearSpecimens()
	return _u
}

// RemoveSpecimenIDs removes the "specimens" edge to Specimen entities by IDs.
func (_u *LocationUpdate) RemoveSpecimenIDs(ids ...string) *LocationUpdate {
	_u.mutation.RemoveSpecimenIDs(ids...)
	return _u
}

// RemoveSpecimens removes "specimens" edges to Specimen entities.
func (_u *LocationUpdate) RemoveSpecimens(v ...*Specimen) *LocationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSpecimenIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LocationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LocationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LocationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LocationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LocationUpdate) check() error {
	if v, ok := _u.mutation.Region(); ok {
		if err := location.RegionValidator(v); err != nil {
			return &ValidationError{Name: "region", err: fmt.Errorf(`ent: validator failed for field "Location.region": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Country(); ok {
		if err := location.CountryValidator(v); err != nil {
			return &ValidationError{Name: "country", err: fmt.Errorf(`ent: validator failed for field "Location.country": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SiteType(); ok {
		if err := location.SiteTypeValidator(v); err != nil {
			return &ValidationError{Name: "site_type", err: fmt.Errorf(`ent: validator failed for field "Location.site_type": %w`, err)}
		}
	}
	return nil
}

func (_u *LocationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(location.Table, location.Columns, sqlgraph.NewFieldSpec(location.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(location.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(location.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(location.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(location.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Region(); ok {
		_spec.SetField(location.FieldRegion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(location.FieldCountry, field.TypeString, value)
	}
	if value, ok := _u.mutation.SiteType(); ok {
		_spec.SetField(location.FieldSiteType, field.TypeEnum, value)
	}
	if _u.mutation.SiteTypeCleared() {
		_spec.ClearField(location.FieldSiteType, field.TypeEnum)
	}
	if _u.mutation.SpecimensCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   location.SpecimensTable,
			Columns: []string{location.SpecimensColumn},
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
			Table:   location.SpecimensTable,
			Columns: []string{location.SpecimensColumn},
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
			Table:   location.SpecimensTable,
			Columns: []string{location.SpecimensColumn},
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
			err = &NotFoundError{location.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LocationUpdateOne is the builder for updating a single Location entity.
type LocationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LocationMutation
}

// SetLatitude sets the "latitude" field.
func (_u *LocationUpdateOne) SetLatitude(v float64) *LocationUpdateOne {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *LocationUpdateOne) SetNillableLatitude(v *float64) *LocationUpdateOne {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *LocationUpdateOne) AddLatitude(v float64) *LocationUpdateOne {
	_u.mutation.AddLatitude(v)
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *LocationUpdateOne) SetLongitude(v float64) *LocationUpdateOne {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *LocationUpdateOne) SetNillableLongitude(v *float64) *LocationUpdateOne {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *LocationUpdateOne) AddLongitude(v float64) *LocationUpdateOne {
	_u.mutation.AddLongitude(v)
	return _u
}

// SetRegion sets the "region" field.
func (_u *LocationUpdateOne) SetRegion(v string) *LocationUpdateOne {
	_u.mutation.SetRegion(v)
	return _u
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_u *LocationUpdateOne) SetNillableRegion(v *string) *LocationUpdateOne {
	if v != nil {
		_u.SetRegion(*v)
	}
	return _u
}

// SetCountry sets the "country" field.
func (_u *LocationUpdateOne) SetCountry(v string) *LocationUpdateOne {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *LocationUpdateOne) SetNillableCountry(v *string) *LocationUpdateOne {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// SetSiteType sets the "site_type" field.
func (_u *LocationUpdateOne) SetSiteType(v location.SiteType) *LocationUpdateOne {
	_u.mutation.SetSiteType(v)
	return _u
}

// SetNillableSiteType sets the "site_type" field if the given value is not nil.
func (_u *LocationUpdateOne) SetNillableSiteType(v *location.SiteType) *LocationUpdateOne {
	if v != nil {
		_u.SetSiteType(*v)
	}
	return _u
}

// ClearSiteType clears the value of the "site_type" field.
func (_u *LocationUpdateOne) ClearSiteType() *LocationUpdateOne {
	_u.mutation.ClearSiteType()
	return _u
}

// AddSpecimenIDs adds the "specimens" edge to the Specimen entity by IDs.
func (_u *LocationUpdateOne) AddSpecimenIDs(ids ...string) *LocationUpdateOne {
	_u.mutation.AddSpecimenIDs(ids...)
	return _u
}

// AddSpecimens adds the "specimens" edges to the Specimen entity.
func (_u *LocationUpdateOne) AddSpecimens(v ...*Specimen) *LocationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSpecimenIDs(ids...)
}

// Mutation returns the LocationMutation object of the builder.
func (_u *LocationUpdateOne) Mutation() *LocationMutation {
	return _u.mutation
}

// ClearSpecimens clears all "specimens" edges to the Specimen entity.
func (_u *LocationUpdateOne) ClearSpecimens() *LocationUpdateOne {
	_u.mutation.ClearSpecimens()
	return _u
}

// RemoveSpecimenIDs removes the "specimens" edge to Specimen entities by IDs.
func (_u *LocationUpdateOne) RemoveSpecimenIDs(ids ...string) *LocationUpdateOne {
	_u.mutation.RemoveSpecimenIDs(ids...)
	return _u
}

// RemoveSpecimens removes "specimens" edges to Specimen entities.
func (_u *LocationUpdateOne) RemoveSpecimens(v ...*Specimen) *LocationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSpecimenIDs(ids...)
}

// Where appends a list predicates to the LocationUpdate builder.
func (_u *LocationUpdateOne) Where(ps ...predicate.Location) *LocationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LocationUpdateOne) Select(field string, fields ...string) *LocationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Location entity.
func (_u *LocationUpdateOne) Save(ctx context.Context) (*Location, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LocationUpdateOne) SaveX(ctx context.Context) *Location {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LocationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LocationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LocationUpdateOne) check() error {
	if v, ok := _u.mutation.Region(); ok {
		if err := location.RegionValidator(v); err != nil {
			return &ValidationError{Name: "region", err: fmt.Errorf(`ent: validator failed for field "Location.region": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Country(); ok {
		if err := location.CountryValidator(v); err != nil {
			return &ValidationError{Name: "country", err: fmt.Errorf(`ent: validator failed for field "Location.country": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SiteType(); ok {
		if err := location.SiteTypeValidator(v); err != nil {
			return &ValidationError{Name: "site_type", err: fmt.Errorf(`ent: validator failed for field "Location.site_type": %w`, err)}
		}
	}
	return nil
}

func (_u *LocationUpdateOne) sqlSave(ctx context.Context) (_node *Location, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(location.Table, location.Columns, sqlgraph.NewFieldSpec(location.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Location.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, location.FieldID)
		for _, f := range fields {
			if !location.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != location.FieldID {
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
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(location.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(location.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(location.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(location.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Region(); ok {
		_spec.SetField(location.FieldRegion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(location.FieldCountry, field.TypeString, value)
	}
	if value, ok := _u.mutation.SiteType(); ok {
		_spec.SetField(location.FieldSiteType, field.TypeEnum, value)
	}
	if _u.mutation.SiteTypeCleared() {
		_spec.ClearField(location.FieldSiteType, field.TypeEnum)
	}
	if _u.mutation.SpecimensCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   location.SpecimensTable,
			Columns: []string{location.SpecimensColumn},
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
			Table:   location.SpecimensTable,
			Columns: []string{location.SpecimensColumn},
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
			Table:   location.SpecimensTable,
			Columns: []string{location.SpecimensColumn},
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
	_node = &Location{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{location.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
