// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/devaun0506/blackstar/ent/milestoneevent"
)

// MilestoneEventCreate is the builder for creating a MilestoneEvent entity.
type MilestoneEventCreate struct {
	config
	mutation *MilestoneEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *MilestoneEventCreate) SetSequence(v int64) *MilestoneEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *MilestoneEventCreate) SetTimestamp(v time.Time) *MilestoneEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *MilestoneEventCreate) SetNillableTimestamp(v *time.Time) *MilestoneEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetMilestoneID sets the "milestone_id" field.
func (_c *MilestoneEventCreate) SetMilestoneID(v string) *MilestoneEventCreate {
	_c.mutation.SetMilestoneID(v)
	return _c
}

// SetReward sets the "reward" field.
func (_c *MilestoneEventCreate) SetReward(v string) *MilestoneEventCreate {
	_c.mutation.SetReward(v)
	return _c
}

// SetNillableReward sets the "reward" field if the given value is not nil.
func (_c *MilestoneEventCreate) SetNillableReward(v *string) *MilestoneEventCreate {
	if v != nil {
		_c.SetReward(*v)
	}
	return _c
}

// SetShiftID sets the "shift_id" field.
func (_c *MilestoneEventCreate) SetShiftID(v string) *MilestoneEventCreate {
	_c.mutation.SetShiftID(v)
	return _c
}

// SetNillableShiftID sets the "shift_id" field if the given value is not nil.
func (_c *MilestoneEventCreate) SetNillableShiftID(v *string) *MilestoneEventCreate {
	if v != nil {
		_c.SetShiftID(*v)
	}
	return _c
}

// Mutation returns the MilestoneEventMutation object of the builder.
func (_c *MilestoneEventCreate) Mutation() *MilestoneEventMutation {
	return _c.mutation
}

// Save creates the MilestoneEvent in the database.
func (_c *MilestoneEventCreate) Save(ctx context.Context) (*MilestoneEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MilestoneEventCreate) SaveX(ctx context.Context) *MilestoneEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MilestoneEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MilestoneEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MilestoneEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := milestoneevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Reward(); !ok {
		v := milestoneevent.DefaultReward
		_c.mutation.SetReward(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MilestoneEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "MilestoneEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "MilestoneEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.MilestoneID(); !ok {
		return &ValidationError{Name: "milestone_id", err: errors.New(`ent: missing required field "MilestoneEvent.milestone_id"`)}
	}
	if v, ok := _c.mutation.MilestoneID(); ok {
		if err := milestoneevent.MilestoneIDValidator(v); err != nil {
			return &ValidationError{Name: "milestone_id", err: fmt.Errorf(`ent: validator failed for field "MilestoneEvent.milestone_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reward(); !ok {
		return &ValidationError{Name: "reward", err: errors.New(`ent: missing required field "MilestoneEvent.reward"`)}
	}
	return nil
}

func (_c *MilestoneEventCreate) sqlSave(ctx context.Context) (*MilestoneEvent, error) {
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

func (_c *MilestoneEventCreate) createSpec() (*MilestoneEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &MilestoneEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(milestoneevent.Table, sqlgraph.NewFieldSpec(milestoneevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(milestoneevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(milestoneevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.MilestoneID(); ok {
		_spec.SetField(milestoneevent.FieldMilestoneID, field.TypeString, value)
		_node.MilestoneID = value
	}
	if value, ok := _c.mutation.Reward(); ok {
		_spec.SetField(milestoneevent.FieldReward, field.TypeString, value)
		_node.Reward = value
	}
	if value, ok := _c.mutation.ShiftID(); ok {
		_spec.SetField(milestoneevent.FieldShiftID, field.TypeString, value)
		_node.ShiftID = value
	}
	return _node, _spec
}

// MilestoneEventCreateBulk is the builder for creating many MilestoneEvent entities in bulk.
type MilestoneEventCreateBulk struct {
	config
	err      error
	builders []*MilestoneEventCreate
}

// Save creates the MilestoneEvent entities in the database.
func (_c *MilestoneEventCreateBulk) Save(ctx context.Context) ([]*MilestoneEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MilestoneEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MilestoneEventMutation)
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
func (_c *MilestoneEventCreateBulk) SaveX(ctx context.Context) []*MilestoneEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MilestoneEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MilestoneEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
