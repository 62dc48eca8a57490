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
	"github.com/streamgate/streamgate/ent/twitchsubscription"
)

// TwitchSubscriptionCreate is the builder for creating a TwitchSubscription entity.
type TwitchSubscriptionCreate struct {
	config
	mutation *TwitchSubscriptionMutation
	hooks    []Hook
}

// SetBotAccountID sets the "bot_account_id" field.
func (_c *TwitchSubscriptionCreate) SetBotAccountID(v uuid.UUID) *TwitchSubscriptionCreate {
	_c.mutation.SetBotAccountID(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *TwitchSubscriptionCreate) SetEventType(v string) *TwitchSubscriptionCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetBroadcasterUserID sets the "broadcaster_user_id" field.
func (_c *TwitchSubscriptionCreate) SetBroadcasterUserID(v string) *TwitchSubscriptionCreate {
	_c.mutation.SetBroadcasterUserID(v)
	return _c
}

// SetTransport sets the "transport" field.
func (_c *TwitchSubscriptionCreate) SetTransport(v twitchsubscription.Transport) *TwitchSubscriptionCreate {
	_c.mutation.SetTransport(v)
	return _c
}

// SetTwitchSubscriptionID sets the "twitch_subscription_id" field.
func (_c *TwitchSubscriptionCreate) SetTwitchSubscriptionID(v string) *TwitchSubscriptionCreate {
	_c.mutation.SetTwitchSubscriptionID(v)
	return _c
}

// SetNillableTwitchSubscriptionID sets the "twitch_subscription_id" field if the given value is not nil.
func (_c *TwitchSubscriptionCreate) SetNillableTwitchSubscriptionID(v *string) *TwitchSubscriptionCreate {
	if v != nil {
		_c.SetTwitchSubscriptionID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TwitchSubscriptionCreate) SetStatus(v twitchsubscription.Status) *TwitchSubscriptionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TwitchSubscriptionCreate) SetNillableStatus(v *twitchsubscription.Status) *TwitchSubscriptionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *TwitchSubscriptionCreate) SetSessionID(v string) *TwitchSubscriptionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *TwitchSubscriptionCreate) SetNillableSessionID(v *string) *TwitchSubscriptionCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *TwitchSubscriptionCreate) SetLastError(v string) *TwitchSubscriptionCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *TwitchSubscriptionCreate) SetNillableLastError(v *string) *TwitchSubscriptionCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TwitchSubscriptionCreate) SetCreatedAt(v time.Time) *TwitchSubscriptionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TwitchSubscriptionCreate) SetNillableCreatedAt(v *time.Time) *TwitchSubscriptionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TwitchSubscriptionCreate) SetUpdatedAt(v time.Time) *TwitchSubscriptionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TwitchSubscriptionCreate) SetNillableUpdatedAt(v *time.Time) *TwitchSubscriptionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TwitchSubscriptionCreate) SetID(v uuid.UUID) *TwitchSubscriptionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TwitchSubscriptionCreate) SetNillableID(v *uuid.UUID) *TwitchSubscriptionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TwitchSubscriptionMutation object of the builder.
func (_c *TwitchSubscriptionCreate) Mutation() *TwitchSubscriptionMutation {
	return _c.mutation
}

// Save creates the TwitchSubscription in the database.
func (_c *TwitchSubscriptionCreate) Save(ctx context.Context) (*TwitchSubscription, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TwitchSubscriptionCreate) SaveX(ctx context.Context) *TwitchSubscription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TwitchSubscriptionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TwitchSubscriptionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TwitchSubscriptionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := twitchsubscription.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := twitchsubscription.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := twitchsubscription.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := twitchsubscription.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TwitchSubscriptionCreate) check() error {
	if _, ok := _c.mutation.BotAccountID(); !ok {
		return &ValidationError{Name: "bot_account_id", err: errors.New(`ent: missing required field "TwitchSubscription.bot_account_id"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "TwitchSubscription.event_type"`)}
	}
	if _, ok := _c.mutation.BroadcasterUserID(); !ok {
		return &ValidationError{Name: "broadcaster_user_id", err: errors.New(`ent: missing required field "TwitchSubscription.broadcaster_user_id"`)}
	}
	if _, ok := _c.mutation.Transport(); !ok {
		return &ValidationError{Name: "transport", err: errors.New(`ent: missing required field "TwitchSubscription.transport"`)}
	}
	if v, ok := _c.mutation.Transport(); ok {
		if err := twitchsubscription.TransportValidator(v); err != nil {
			return &ValidationError{Name: "transport", err: fmt.Errorf(`ent: validator failed for field "TwitchSubscription.transport": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TwitchSubscription.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := twitchsubscription.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TwitchSubscription.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TwitchSubscription.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TwitchSubscription.updated_at"`)}
	}
	return nil
}

func (_c *TwitchSubscriptionCreate) sqlSave(ctx context.Context) (*TwitchSubscription, error) {
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

func (_c *TwitchSubscriptionCreate) createSpec() (*TwitchSubscription, *sqlgraph.CreateSpec) {
	var (
		_node = &TwitchSubscription{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(twitchsubscription.Table, sqlgraph.NewFieldSpec(twitchsubscription.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.BotAccountID(); ok {
		_spec.SetField(twitchsubscription.FieldBotAccountID, field.TypeUUID, value)
		_node.BotAccountID = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(twitchsubscription.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.BroadcasterUserID(); ok {
		_spec.SetField(twitchsubscription.FieldBroadcasterUserID, field.TypeString, value)
		_node.BroadcasterUserID = value
	}
	if value, ok := _c.mutation.Transport(); ok {
		_spec.SetField(twitchsubscription.FieldTransport, field.TypeEnum, value)
		_node.Transport = value
	}
	if value, ok := _c.mutation.TwitchSubscriptionID(); ok {
		_spec.SetField(twitchsubscription.FieldTwitchSubscriptionID, field.TypeString, value)
		_node.TwitchSubscriptionID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(twitchsubscription.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(twitchsubscription.FieldSessionID, field.TypeString, value)
		_node.SessionID = &value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(twitchsubscription.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(twitchsubscription.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(twitchsubscription.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// TwitchSubscriptionCreateBulk is the builder for creating many TwitchSubscription entities in bulk.
type TwitchSubscriptionCreateBulk struct {
	config
	err      error
	builders []*TwitchSubscriptionCreate
}

// Save creates the TwitchSubscription entities in the database.
func (_c *TwitchSubscriptionCreateBulk) Save(ctx context.Context) ([]*TwitchSubscription, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TwitchSubscription, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TwitchSubscriptionMutation)
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
func (_c *TwitchSubscriptionCreateBulk) SaveX(ctx context.Context) []*TwitchSubscription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TwitchSubscriptionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TwitchSubscriptionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
