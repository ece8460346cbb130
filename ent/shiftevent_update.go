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
	"github.com/devaun0506/blackstar/ent/shiftevent"
)

// ShiftEventUpdate is the builder for updating ShiftEvent entities.
type ShiftEventUpdate struct {
	config
	hooks    []Hook
	mutation *ShiftEventMutation
}

// Where appends a list predicates to the ShiftEventUpdate builder.
func (_u *ShiftEventUpdate) Where(ps ...predicate.ShiftEvent) *ShiftEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetShiftID sets the "shift_id" field.
func (_u *ShiftEventUpdate) SetShiftID(v string) *ShiftEventUpdate {
	_u.mutation.SetShiftID(v)
	return _u
}

// SetNillableShiftID sets the "shift_id" field if the given value is not nil.
func (_u *ShiftEventUpdate) SetNillableShiftID(v *string) *ShiftEventUpdate {
	if v != nil {
		_u.SetShiftID(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *ShiftEventUpdate) SetQuestions(v int) *ShiftEventUpdate {
	_u.mutation.ResetQuestions()
	_u.mutation.SetQuestions(v)
	return _u
}

// SetNillableQuestions sets the "questions" field if the given value is not nil.
func (_u *ShiftEventUpdate) SetNillableQuestions(v *int) *ShiftEventUpdate {
	if v != nil {
		_u.SetQuestions(*v)
	}
	return _u
}

// AddQuestions adds value to the "questions" field.
func (_u *ShiftEventUpdate) AddQuestions(v int) *ShiftEventUpdate {
	_u.mutation.AddQuestions(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *ShiftEventUpdate) SetAccuracy(v float64) *ShiftEventUpdate {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *ShiftEventUpdate) SetNillableAccuracy(v *float64) *ShiftEventUpdate {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *ShiftEventUpdate) AddAccuracy(v float64) *ShiftEventUpdate {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *ShiftEventUpdate) SetStreak(v int) *ShiftEventUpdate {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *ShiftEventUpdate) SetNillableStreak(v *int) *ShiftEventUpdate {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *ShiftEventUpdate) AddStreak(v int) *ShiftEventUpdate {
	_u.mutation.AddStreak(v)
	return _u
}

// Mutation returns the ShiftEventMutation object of the builder.
func (_u *ShiftEventUpdate) Mutation() *ShiftEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ShiftEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ShiftEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ShiftEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ShiftEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ShiftEventUpdate) check() error {
	if v, ok := _u.mutation.ShiftID(); ok {
		if err := shiftevent.ShiftIDValidator(v); err != nil {
			return &ValidationError{Name: "shift_id", err: fmt.Errorf(`ent: validator failed for field "ShiftEvent.shift_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ShiftEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(shiftevent.Table, shiftevent.Columns, sqlgraph.NewFieldSpec(shiftevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ShiftID(); ok {
		_spec.SetField(shiftevent.FieldShiftID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(shiftevent.FieldQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestions(); ok {
		_spec.AddField(shiftevent.FieldQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(shiftevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(shiftevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(shiftevent.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(shiftevent.FieldStreak, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{shiftevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ShiftEventUpdateOne is the builder for updating a single ShiftEvent entity.
type ShiftEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ShiftEventMutation
}

// SetShiftID sets the "shift_id" field.
func (_u *ShiftEventUpdateOne) SetShiftID(v string) *ShiftEventUpdateOne {
	_u.mutation.SetShiftID(v)
	return _u
}

// SetNillableShiftID sets the "shift_id" field if the given value is not nil.
func (_u *ShiftEventUpdateOne) SetNillableShiftID(v *string) *ShiftEventUpdateOne {
	if v != nil {
		_u.SetShiftID(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *ShiftEventUpdateOne) SetQuestions(v int) *ShiftEventUpdateOne {
	_u.mutation.ResetQuestions()
	_u.mutation.SetQuestions(v)
	return _u
}

// SetNillableQuestions sets the "questions" field if the given value is not nil.
func (_u *ShiftEventUpdateOne) SetNillableQuestions(v *int) *ShiftEventUpdateOne {
	if v != nil {
		_u.SetQuestions(*v)
	}
	return _u
}

// AddQuestions adds value to the "questions" field.
func (_u *ShiftEventUpdateOne) AddQuestions(v int) *ShiftEventUpdateOne {
	_u.mutation.AddQuestions(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *ShiftEventUpdateOne) SetAccuracy(v float64) *ShiftEventUpdateOne {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *ShiftEventUpdateOne) SetNillableAccuracy(v *float64) *ShiftEventUpdateOne {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *ShiftEventUpdateOne) AddAccuracy(v float64) *ShiftEventUpdateOne {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *ShiftEventUpdateOne) SetStreak(v int) *ShiftEventUpdateOne {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *ShiftEventUpdateOne) SetNillableStreak(v *int) *ShiftEventUpdateOne {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *ShiftEventUpdateOne) AddStreak(v int) *ShiftEventUpdateOne {
	_u.mutation.AddStreak(v)
	return _u
}

// Mutation returns the ShiftEventMutation object of the builder.
func (_u *ShiftEventUpdateOne) Mutation() *ShiftEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ShiftEventUpdate builder.
func (_u *ShiftEventUpdateOne) Where(ps ...predicate.ShiftEvent) *ShiftEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ShiftEventUpdateOne) Select(field string, fields ...string) *ShiftEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ShiftEvent entity.
func (_u *ShiftEventUpdateOne) Save(ctx context.Context) (*ShiftEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ShiftEventUpdateOne) SaveX(ctx context.Context) *ShiftEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ShiftEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ShiftEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ShiftEventUpdateOne) check() error {
	if v, ok := _u.mutation.ShiftID(); ok {
		if err := shiftevent.ShiftIDValidator(v); err != nil {
			return &ValidationError{Name: "shift_id", err: fmt.Errorf(`ent: validator failed for field "ShiftEvent.shift_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ShiftEventUpdateOne) sqlSave(ctx context.Context) (_node *ShiftEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(shiftevent.Table, shiftevent.Columns, sqlgraph.NewFieldSpec(shiftevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ShiftEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, shiftevent.FieldID)
		for _, f := range fields {
			if !shiftevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != shiftevent.FieldID {
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
	if value, ok := _u.mutation.ShiftID(); ok {
		_spec.SetField(shiftevent.FieldShiftID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(shiftevent.FieldQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestions(); ok {
		_spec.AddField(shiftevent.FieldQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(shiftevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(shiftevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(shiftevent.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(shiftevent.FieldStreak, field.TypeInt, value)
	}
	_node = &ShiftEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{shiftevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
