// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/devaun0506/blackstar/ent/shiftevent"
)

// ShiftEventCreate is the builder for creating a ShiftEvent entity.
type ShiftEventCreate struct {
	config
	mutation *ShiftEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ShiftEventCreate) SetSequence(v int64) *ShiftEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ShiftEventCreate) SetTimestamp(v time.Time) *ShiftEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ShiftEventCreate) SetNillableTimestamp(v *time.Time) *ShiftEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetShiftID sets the "shift_id" field.
func (_c *ShiftEventCreate) SetShiftID(v string) *ShiftEventCreate {
	_c.mutation.SetShiftID(v)
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *ShiftEventCreate) SetQuestions(v int) *ShiftEventCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// SetNillableQuestions sets the "questions" field if the given value is not nil.
func (_c *ShiftEventCreate) SetNillableQuestions(v *int) *ShiftEventCreate {
	if v != nil {
		_c.SetQuestions(*v)
	}
	return _c
}

// SetAccuracy sets the "accuracy" field.
func (_c *ShiftEventCreate) SetAccuracy(v float64) *ShiftEventCreate {
	_c.mutation.SetAccuracy(v)
	return _c
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_c *ShiftEventCreate) SetNillableAccuracy(v *float64) *ShiftEventCreate {
	if v != nil {
		_c.SetAccuracy(*v)
	}
	return _c
}

// SetStreak sets the "streak" field.
func (_c *ShiftEventCreate) SetStreak(v int) *ShiftEventCreate {
	_c.mutation.SetStreak(v)
	return _c
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_c *ShiftEventCreate) SetNillableStreak(v *int) *ShiftEventCreate {
	if v != nil {
		_c.SetStreak(*v)
	}
	return _c
}

// Mutation returns the ShiftEventMutation object of the builder.
func (_c *ShiftEventCreate) Mutation() *ShiftEventMutation {
	return _c.mutation
}

// Save creates the ShiftEvent in the database.
func (_c *ShiftEventCreate) Save(ctx context.Context) (*ShiftEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ShiftEventCreate) SaveX(ctx context.Context) *ShiftEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ShiftEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ShiftEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ShiftEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := shiftevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Questions(); !ok {
		v := shiftevent.DefaultQuestions
		_c.mutation.SetQuestions(v)
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		v := shiftevent.DefaultAccuracy
		_c.mutation.SetAccuracy(v)
	}
	if _, ok := _c.mutation.Streak(); !ok {
		v := shiftevent.DefaultStreak
		_c.mutation.SetStreak(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ShiftEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ShiftEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ShiftEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.ShiftID(); !ok {
		return &ValidationError{Name: "shift_id", err: errors.New(`ent: missing required field "ShiftEvent.shift_id"`)}
	}
	if v, ok := _c.mutation.ShiftID(); ok {
		if err := shiftevent.ShiftIDValidator(v); err != nil {
			return &ValidationError{Name: "shift_id", err: fmt.Errorf(`ent: validator failed for field "ShiftEvent.shift_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Questions(); !ok {
		return &ValidationError{Name: "questions", err: errors.New(`ent: missing required field "ShiftEvent.questions"`)}
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		return &ValidationError{Name: "accuracy", err: errors.New(`ent: missing required field "ShiftEvent.accuracy"`)}
	}
	if _, ok := _c.mutation.Streak(); !ok {
		return &ValidationError{Name: "streak", err: errors.New(`ent: missing required field "ShiftEvent.streak"`)}
	}
	return nil
}

func (_c *ShiftEventCreate) sqlSave(ctx context.Context) (*ShiftEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ShiftEventCreate) createSpec() (*ShiftEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ShiftEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(shiftevent.Table, sqlgraph.NewFieldSpec(shiftevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(shiftevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(shiftevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ShiftID(); ok {
		_spec.SetField(shiftevent.FieldShiftID, field.TypeString, value)
		_node.ShiftID = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(shiftevent.FieldQuestions, field.TypeInt, value)
		_node.Questions = value
	}
	if value, ok := _c.mutation.Accuracy(); ok {
		_spec.SetField(shiftevent.FieldAccuracy, field.TypeFloat64, value)
		_node.Accuracy = value
	}
	if value, ok := _c.mutation.Streak(); ok {
		_spec.SetField(shiftevent.FieldStreak, field.TypeInt, value)
		_node.Streak = value
	}
	return _node, _spec
}

// ShiftEventCreateBulk is the builder for creating many ShiftEvent entities in bulk.
type ShiftEventCreateBulk struct {
	config
	err      error
	builders []*ShiftEventCreate
}

// Save creates the ShiftEvent entities in the database.
func (_c *ShiftEventCreateBulk) Save(ctx context.Context) ([]*ShiftEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ShiftEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ShiftEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ShiftEventCreateBulk) SaveX(ctx context.Context) []*ShiftEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ShiftEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ShiftEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
