// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/devaun0506/blackstar/ent/predicate"
	"github.com/devaun0506/blackstar/ent/unlockevent"
)

// UnlockEventUpdate is the builder for updating UnlockEvent entities.
type UnlockEventUpdate struct {
	config
	hooks    []Hook
	mutation *UnlockEventMutation
}

// Where appends a list predicates to the UnlockEventUpdate builder.
func (_u *UnlockEventUpdate) Where(ps ...predicate.UnlockEvent) *UnlockEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *UnlockEventUpdate) SetKind(v string) *UnlockEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *UnlockEventUpdate) SetNillableKind(v *string) *UnlockEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *UnlockEventUpdate) SetName(v string) *UnlockEventUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UnlockEventUpdate) SetNillableName(v *string) *UnlockEventUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetShiftID sets the "shift_id" field.
func (_u *UnlockEventUpdate) SetShiftID(v string) *UnlockEventUpdate {
	_u.mutation.SetShiftID(v)
	return _u
}

// SetNillableShiftID sets the "shift_id" field if the given value is not nil.
func (_u *UnlockEventUpdate) SetNillableShiftID(v *string) *UnlockEventUpdate {
	if v != nil {
		_u.SetShiftID(*v)
	}
	return _u
}

// ClearShiftID clears the value of the "shift_id" field.
func (_u *UnlockEventUpdate) ClearShiftID() *UnlockEventUpdate {
	_u.mutation.ClearShiftID()
	return _u
}

// Mutation returns the UnlockEventMutation object of the builder.
func (_u *UnlockEventUpdate) Mutation() *UnlockEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UnlockEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UnlockEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UnlockEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UnlockEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UnlockEventUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := unlockevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "UnlockEvent.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := unlockevent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "UnlockEvent.name": %w`, err)}
		}
	}
	return nil
}

func (_u *UnlockEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(unlockevent.Table, unlockevent.Columns, sqlgraph.NewFieldSpec(unlockevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(unlockevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(unlockevent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShiftID(); ok {
		_spec.SetField(unlockevent.FieldShiftID, field.TypeString, value)
	}
	if _u.mutation.ShiftIDCleared() {
		_spec.ClearField(unlockevent.FieldShiftID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unlockevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UnlockEventUpdateOne is the builder for updating a single UnlockEvent entity.
type UnlockEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UnlockEventMutation
}

// SetKind sets the "kind" field.
func (_u *UnlockEventUpdateOne) SetKind(v string) *UnlockEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *UnlockEventUpdateOne) SetNillableKind(v *string) *UnlockEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *UnlockEventUpdateOne) SetName(v string) *UnlockEventUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UnlockEventUpdateOne) SetNillableName(v *string) *UnlockEventUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetShiftID sets the "shift_id" field.
func (_u *UnlockEventUpdateOne) SetShiftID(v string) *UnlockEventUpdateOne {
	_u.mutation.SetShiftID(v)
	return _u
}

// SetNillableShiftID sets the "shift_id" field if the given value is not nil.
func (_u *UnlockEventUpdateOne) SetNillableShiftID(v *string) *UnlockEventUpdateOne {
	if v != nil {
		_u.SetShiftID(*v)
	}
	return _u
}

// ClearShiftID clears the value of the "shift_id" field.
func (_u *UnlockEventUpdateOne) ClearShiftID() *UnlockEventUpdateOne {
	_u.mutation.ClearShiftID()
	return _u
}

// Mutation returns the UnlockEventMutation object of the builder.
func (_u *UnlockEventUpdateOne) Mutation() *UnlockEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the UnlockEventUpdate builder.
func (_u *UnlockEventUpdateOne) Where(ps ...predicate.UnlockEvent) *UnlockEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UnlockEventUpdateOne) Select(field string, fields ...string) *UnlockEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UnlockEvent entity.
func (_u *UnlockEventUpdateOne) Save(ctx context.Context) (*UnlockEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UnlockEventUpdateOne) SaveX(ctx context.Context) *UnlockEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UnlockEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UnlockEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UnlockEventUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := unlockevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "UnlockEvent.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := unlockevent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "UnlockEvent.name": %w`, err)}
		}
	}
	return nil
}

func (_u *UnlockEventUpdateOne) sqlSave(ctx context.Context) (_node *UnlockEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(unlockevent.Table, unlockevent.Columns, sqlgraph.NewFieldSpec(unlockevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UnlockEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, unlockevent.FieldID)
		for _, f := range fields {
			if !unlockevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != unlockevent.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(unlockevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(unlockevent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShiftID(); ok {
		_spec.SetField(unlockevent.FieldShiftID, field.TypeString, value)
	}
	if _u.mutation.ShiftIDCleared() {
		_spec.ClearField(unlockevent.FieldShiftID, field.TypeString)
	}
	_node = &UnlockEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unlockevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
