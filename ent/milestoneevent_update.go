// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/devaun0506/blackstar/ent/milestoneevent"
	"github.com/devaun0506/blackstar/ent/predicate"
)

// MilestoneEventUpdate is the builder for updating MilestoneEvent entities.
type MilestoneEventUpdate struct {
	config
	hooks    []Hook
	mutation *MilestoneEventMutation
}

// Where appends a list predicates to the MilestoneEventUpdate builder.
func (_u *MilestoneEventUpdate) Where(ps ...predicate.MilestoneEvent) *MilestoneEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMilestoneID sets the "milestone_id" field.
func (_u *MilestoneEventUpdate) SetMilestoneID(v string) *MilestoneEventUpdate {
	_u.mutation.SetMilestoneID(v)
	return _u
}

// SetNillableMilestoneID sets the "milestone_id" field if the given value is not nil.
func (_u *MilestoneEventUpdate) SetNillableMilestoneID(v *string) *MilestoneEventUpdate {
	if v != nil {
		_u.SetMilestoneID(*v)
	}
	return _u
}

// SetReward sets the "reward" field.
func (_u *MilestoneEventUpdate) SetReward(v string) *MilestoneEventUpdate {
	_u.mutation.SetReward(v)
	return _u
}

// SetNillableReward sets the "reward" field if the given value is not nil.
func (_u *MilestoneEventUpdate) SetNillableReward(v *string) *MilestoneEventUpdate {
	if v != nil {
		_u.SetReward(*v)
	}
	return _u
}

// SetShiftID sets the "shift_id" field.
func (_u *MilestoneEventUpdate) SetShiftID(v string) *MilestoneEventUpdate {
	_u.mutation.SetShiftID(v)
	return _u
}

// SetNillableShiftID sets the "shift_id" field if the given value is not nil.
func (_u *MilestoneEventUpdate) SetNillableShiftID(v *string) *MilestoneEventUpdate {
	if v != nil {
		_u.SetShiftID(*v)
	}
	return _u
}

// ClearShiftID clears the value of the "shift_id" field.
func (_u *MilestoneEventUpdate) ClearShiftID() *MilestoneEventUpdate {
	_u.mutation.ClearShiftID()
	return _u
}

// Mutation returns the MilestoneEventMutation object of the builder.
func (_u *MilestoneEventUpdate) Mutation() *MilestoneEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MilestoneEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MilestoneEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MilestoneEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MilestoneEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MilestoneEventUpdate) check() error {
	if v, ok := _u.mutation.MilestoneID(); ok {
		if err := milestoneevent.MilestoneIDValidator(v); err != nil {
			return &ValidationError{Name: "milestone_id", err: fmt.Errorf(`ent: validator failed for field "MilestoneEvent.milestone_id": %w`, err)}
		}
	}
	return nil
}

func (_u *MilestoneEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(milestoneevent.Table, milestoneevent.Columns, sqlgraph.NewFieldSpec(milestoneevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MilestoneID(); ok {
		_spec.SetField(milestoneevent.FieldMilestoneID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reward(); ok {
		_spec.SetField(milestoneevent.FieldReward, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShiftID(); ok {
		_spec.SetField(milestoneevent.FieldShiftID, field.TypeString, value)
	}
	if _u.mutation.ShiftIDCleared() {
		_spec.ClearField(milestoneevent.FieldShiftID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{milestoneevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MilestoneEventUpdateOne is the builder for updating a single MilestoneEvent entity.
type MilestoneEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MilestoneEventMutation
}

// SetMilestoneID sets the "milestone_id" field.
func (_u *MilestoneEventUpdateOne) SetMilestoneID(v string) *MilestoneEventUpdateOne {
	_u.mutation.SetMilestoneID(v)
	return _u
}

// SetNillableMilestoneID sets the "milestone_id" field if the given value is not nil.
func (_u *MilestoneEventUpdateOne) SetNillableMilestoneID(v *string) *MilestoneEventUpdateOne {
	if v != nil {
		_u.SetMilestoneID(*v)
	}
	return _u
}

// SetReward sets the "reward" field.
func (_u *MilestoneEventUpdateOne) SetReward(v string) *MilestoneEventUpdateOne {
	_u.mutation.SetReward(v)
	return _u
}

// SetNillableReward sets the "reward" field if the given value is not nil.
func (_u *MilestoneEventUpdateOne) SetNillableReward(v *string) *MilestoneEventUpdateOne {
	if v != nil {
		_u.SetReward(*v)
	}
	return _u
}

// SetShiftID sets the "shift_id" field.
func (_u *MilestoneEventUpdateOne) SetShiftID(v string) *MilestoneEventUpdateOne {
	_u.mutation.SetShiftID(v)
	return _u
}

// SetNillableShiftID sets the "shift_id" field if the given value is not nil.
func (_u *MilestoneEventUpdateOne) SetNillableShiftID(v *string) *MilestoneEventUpdateOne {
	if v != nil {
		_u.SetShiftID(*v)
	}
	return _u
}

// ClearShiftID clears the value of the "shift_id" field.
func (_u *MilestoneEventUpdateOne) ClearShiftID() *MilestoneEventUpdateOne {
	_u.mutation.ClearShiftID()
	return _u
}

// Mutation returns the MilestoneEventMutation object of the builder.
func (_u *MilestoneEventUpdateOne) Mutation() *MilestoneEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the MilestoneEventUpdate builder.
func (_u *MilestoneEventUpdateOne) Where(ps ...predicate.MilestoneEvent) *MilestoneEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MilestoneEventUpdateOne) Select(field string, fields ...string) *MilestoneEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MilestoneEvent entity.
func (_u *MilestoneEventUpdateOne) Save(ctx context.Context) (*MilestoneEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MilestoneEventUpdateOne) SaveX(ctx context.Context) *MilestoneEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MilestoneEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MilestoneEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MilestoneEventUpdateOne) check() error {
	if v, ok := _u.mutation.MilestoneID(); ok {
		if err := milestoneevent.MilestoneIDValidator(v); err != nil {
			return &ValidationError{Name: "milestone_id", err: fmt.Errorf(`ent: validator failed for field "MilestoneEvent.milestone_id": %w`, err)}
		}
	}
	return nil
}

func (_u *MilestoneEventUpdateOne) sqlSave(ctx context.Context) (_node *MilestoneEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(milestoneevent.Table, milestoneevent.Columns, sqlgraph.NewFieldSpec(milestoneevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MilestoneEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, milestoneevent.FieldID)
		for _, f := range fields {
			if !milestoneevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != milestoneevent.FieldID {
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
	if value, ok := _u.mutation.MilestoneID(); ok {
		_spec.SetField(milestoneevent.FieldMilestoneID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reward(); ok {
		_spec.SetField(milestoneevent.FieldReward, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShiftID(); ok {
		_spec.SetField(milestoneevent.FieldShiftID, field.TypeString, value)
	}
	if _u.mutation.ShiftIDCleared() {
		_spec.ClearField(milestoneevent.FieldShiftID, field.TypeString)
	}
	_node = &MilestoneEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{milestoneevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
