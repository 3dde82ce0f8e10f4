// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Kurty-byte/plant-sampling/ent/environmentalcondition"
	"github.com/Kurty-byte/plant-sampling/ent/predicate"
)

// EnvironmentalConditionDelete is the builder for deleting a EnvironmentalCondition entity.
type EnvironmentalConditionDelete struct {
	config
	hooks    []Hook
	mutation *EnvironmentalConditionMutation
}

// Where appends a list predicates to the EnvironmentalConditionDelete builder.
func (_d *EnvironmentalConditionDelete) Where(ps ...predicate.EnvironmentalCondition) *EnvironmentalConditionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *EnvironmentalConditionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EnvironmentalConditionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *EnvironmentalConditionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(environmentalcondition.Table, sqlgraph.NewFieldSpec(environmentalcondition.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// EnvironmentalConditionDeleteOne is the builder for deleting a single EnvironmentalCondition entity.
type EnvironmentalConditionDeleteOne struct {
	_d *EnvironmentalConditionDelete
}

// Where appends a list predicates to the EnvironmentalConditionDelete builder.
func (_d *EnvironmentalConditionDeleteOne) Where(ps ...predicate.EnvironmentalCondition) *EnvironmentalConditionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *EnvironmentalConditionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{environmentalcondition.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EnvironmentalConditionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
