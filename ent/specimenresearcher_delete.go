// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Kurty-byte/plant-sampling/ent/predicate"
	"github.com/Kurty-byte/plant-sampling/ent/specimenresearcher"
)

// SpecimenResearcherDelete is the builder for deleting a SpecimenResearcher entity.
type SpecimenResearcherDelete struct {
	config
	hooks    []Hook
	mutation *SpecimenResearcherMutation
}

// Where appends a list predicates to the SpecimenResearcherDelete builder.
func (_d *SpecimenResearcherDelete) Where(ps ...predicate.SpecimenResearcher) *SpecimenResearcherDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SpecimenResearcherDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SpecimenResearcherDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SpecimenResearcherDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(specimenresearcher.Table, sqlgraph.NewFieldSpec(specimenresearcher.FieldID, field.TypeString))
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

// SpecimenResearcherDeleteOne is the builder for deleting a single SpecimenResearcher entity.
type SpecimenResearcherDeleteOne struct {
	_d *SpecimenResearcherDelete
}

// Where appends a list predicates to the SpecimenResearcherDelete builder.
func (_d *SpecimenResearcherDeleteOne) Where(ps ...predicate.SpecimenResearcher) *SpecimenResearcherDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SpecimenResearcherDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{specimenresearcher.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SpecimenResearcherDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
