// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/devaun0506/blackstar/ent/milestoneevent"
	"github.com/devaun0506/blackstar/ent/predicate"
)

// MilestoneEventDelete is the builder for deleting a MilestoneEvent entity.
type MilestoneEventDelete struct {
	config
	hooks    []Hook
	mutation *MilestoneEventMutation
}

// Where appends a list predicates to the MilestoneEventDelete builder.
func (_d *MilestoneEventDelete) Where(ps ...predicate.MilestoneEvent) *MilestoneEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MilestoneEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MilestoneEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MilestoneEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(milestoneevent.Table, sqlgraph.NewFieldSpec(milestoneevent.FieldID, field.TypeInt))
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

// MilestoneEventDeleteOne is the builder for deleting a single MilestoneEvent entity.
type MilestoneEventDeleteOne struct {
	_d *MilestoneEventDelete
}

// Where appends a list predicates to the MilestoneEventDelete builder.
func (_d *MilestoneEventDeleteOne) Where(ps ...predicate.MilestoneEvent) *MilestoneEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MilestoneEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{milestoneevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MilestoneEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
