// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/streamgate/streamgate/ent/channelstate"
)

// ChannelStateCreate is the builder for creating a ChannelState entity.
type ChannelStateCreate struct {
	config
	mutation *ChannelStateMutation
	hooks    []Hook
}

// SetBroadcasterUserID sets the "broadcaster_user_id" field.
func (_c *ChannelStateCreate) SetBroadcasterUserID(v string) *ChannelStateCreate {
	_c.mutation.SetBroadcasterUserID(v)
	return _c
}

// SetIsLive sets the "is_live" field.
func (_c *ChannelStateCreate) SetIsLive(v bool) *ChannelStateCreate {
	_c.mutation.SetIsLive(v)
	return _c
}

// SetNillableIsLive sets the "is_live" field if the given value is not nil.
func (_c *ChannelStateCreate) SetNillableIsLive(v *bool) *ChannelStateCreate {
	if v != nil {
		_c.SetIsLive(*v)
	}
	return _c
}

// SetLastOnlineAt sets the "last_online_at" field.
func (_c *ChannelStateCreate) SetLastOnlineAt(v time.Time) *ChannelStateCreate {
	_c.mutation.SetLastOnlineAt(v)
	return _c
}

// SetNillableLastOnlineAt sets the "last_online_at" field if the given value is not nil.
func (_c *ChannelStateCreate) SetNillableLastOnlineAt(v *time.Time) *ChannelStateCreate {
	if v != nil {
		_c.SetLastOnlineAt(*v)
	}
	return _c
}

// SetLastOfflineAt sets the "last_offline_at" field.
func (_c *ChannelStateCreate) SetLastOfflineAt(v time.Time) *ChannelStateCreate {
	_c.mutation.SetLastOfflineAt(v)
	return _c
}

// SetNillableLastOfflineAt sets the "last_offline_at" field if the given value is not nil.
func (_c *ChannelStateCreate) SetNillableLastOfflineAt(v *time.Time) *ChannelStateCreate {
	if v != nil {
		_c.SetLastOfflineAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ChannelStateCreate) SetUpdatedAt(v time.Time) *ChannelStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ChannelStateCreate) SetNillableUpdatedAt(v *time.Time) *ChannelStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChannelStateCreate) SetID(v uuid.UUID) *ChannelStateCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ChannelStateCreate) SetNillableID(v *uuid.UUID) *ChannelStateCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ChannelStateMutation object of the builder.
func (_c *ChannelStateCreate) Mutation() *ChannelStateMutation {
	return _c.mutation
}

// Save creates the ChannelState in the database.
func (_c *ChannelStateCreate) Save(ctx context.Context) (*ChannelState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChannelStateCreate) SaveX(ctx context.Context) *ChannelState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChannelStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChannelStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChannelStateCreate) defaults() {
	if _, ok := _c.mutation.IsLive(); !ok {
		v := channelstate.DefaultIsLive
		_c.mutation.SetIsLive(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := channelstate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := channelstate.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChannelStateCreate) check() error {
	if _, ok := _c.mutation.BroadcasterUserID(); !ok {
		return &ValidationError{Name: "broadcaster_user_id", err: errors.New(`ent: missing required field "ChannelState.broadcaster_user_id"`)}
	}
	if _, ok := _c.mutation.IsLive(); !ok {
		return &ValidationError{Name: "is_live", err: errors.New(`ent: missing required field "ChannelState.is_live"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ChannelState.updated_at"`)}
	}
	return nil
}

func (_c *ChannelStateCreate) sqlSave(ctx context.Context) (*ChannelState, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChannelStateCreate) createSpec() (*ChannelState, *sqlgraph.CreateSpec) {
	var (
		_node = &ChannelState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(channelstate.Table, sqlgraph.NewFieldSpec(channelstate.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.BroadcasterUserID(); ok {
		_spec.SetField(channelstate.FieldBroadcasterUserID, field.TypeString, value)
		_node.BroadcasterUserID = value
	}
	if value, ok := _c.mutation.IsLive(); ok {
		_spec.SetField(channelstate.FieldIsLive, field.TypeBool, value)
		_node.IsLive = value
	}
	if value, ok := _c.mutation.LastOnlineAt(); ok {
		_spec.SetField(channelstate.FieldLastOnlineAt, field.TypeTime, value)
		_node.LastOnlineAt = &value
	}
	if value, ok := _c.mutation.LastOfflineAt(); ok {
		_spec.SetField(channelstate.FieldLastOfflineAt, field.TypeTime, value)
		_node.LastOfflineAt = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(channelstate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ChannelStateCreateBulk is the builder for creating many ChannelState entities in bulk.
type ChannelStateCreateBulk struct {
	config
	err      error
	builders []*ChannelStateCreate
}

// Save creates the ChannelState entities in the database.
func (_c *ChannelStateCreateBulk) Save(ctx context.Context) ([]*ChannelState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChannelState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChannelStateMutation)
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
func (_c *ChannelStateCreateBulk) SaveX(ctx context.Context) []*ChannelState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChannelStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChannelStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
