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
	"github.com/streamgate/streamgate/ent/serviceinterest"
)

// ServiceInterestCreate is the builder for creating a ServiceInterest entity.
type ServiceInterestCreate struct {
	config
	mutation *ServiceInterestMutation
	hooks    []Hook
}

// SetServiceAccountID sets the "service_account_id" field.
func (_c *ServiceInterestCreate) SetServiceAccountID(v uuid.UUID) *ServiceInterestCreate {
	_c.mutation.SetServiceAccountID(v)
	return _c
}

// SetBotAccountID sets the "bot_account_id" field.
func (_c *ServiceInterestCreate) SetBotAccountID(v uuid.UUID) *ServiceInterestCreate {
	_c.mutation.SetBotAccountID(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *ServiceInterestCreate) SetEventType(v string) *ServiceInterestCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetBroadcasterUserID sets the "broadcaster_user_id" field.
func (_c *ServiceInterestCreate) SetBroadcasterUserID(v string) *ServiceInterestCreate {
	_c.mutation.SetBroadcasterUserID(v)
	return _c
}

// SetTransport sets the "transport" field.
func (_c *ServiceInterestCreate) SetTransport(v serviceinterest.Transport) *ServiceInterestCreate {
	_c.mutation.SetTransport(v)
	return _c
}

// SetNillableTransport sets the "transport" field if the given value is not nil.
func (_c *ServiceInterestCreate) SetNillableTransport(v *serviceinterest.Transport) *ServiceInterestCreate {
	if v != nil {
		_c.SetTransport(*v)
	}
	return _c
}

// SetWebhookURL sets the "webhook_url" field.
func (_c *ServiceInterestCreate) SetWebhookURL(v string) *ServiceInterestCreate {
	_c.mutation.SetWebhookURL(v)
	return _c
}

// SetNillableWebhookURL sets the "webhook_url" field if the given value is not nil.
func (_c *ServiceInterestCreate) SetNillableWebhookURL(v *string) *ServiceInterestCreate {
	if v != nil {
		_c.SetWebhookURL(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *ServiceInterestCreate) SetLastHeartbeatAt(v time.Time) *ServiceInterestCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *ServiceInterestCreate) SetNillableLastHeartbeatAt(v *time.Time) *ServiceInterestCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ServiceInterestCreate) SetCreatedAt(v time.Time) *ServiceInterestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ServiceInterestCreate) SetNillableCreatedAt(v *time.Time) *ServiceInterestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ServiceInterestCreate) SetID(v uuid.UUID) *ServiceInterestCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ServiceInterestCreate) SetNillableID(v *uuid.UUID) *ServiceInterestCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ServiceInterestMutation object of the builder.
func (_c *ServiceInterestCreate) Mutation() *ServiceInterestMutation {
	return _c.mutation
}

// Save creates the ServiceInterest in the database.
func (_c *ServiceInterestCreate) Save(ctx context.Context) (*ServiceInterest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ServiceInterestCreate) SaveX(ctx context.Context) *ServiceInterest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServiceInterestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServiceInterestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ServiceInterestCreate) defaults() {
	if _, ok := _c.mutation.Transport(); !ok {
		v := serviceinterest.DefaultTransport
		_c.mutation.SetTransport(v)
	}
	if _, ok := _c.mutation.WebhookURL(); !ok {
		v := serviceinterest.DefaultWebhookURL
		_c.mutation.SetWebhookURL(v)
	}
	if _, ok := _c.mutation.LastHeartbeatAt(); !ok {
		v := serviceinterest.DefaultLastHeartbeatAt()
		_c.mutation.SetLastHeartbeatAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := serviceinterest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := serviceinterest.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ServiceInterestCreate) check() error {
	if _, ok := _c.mutation.ServiceAccountID(); !ok {
		return &ValidationError{Name: "service_account_id", err: errors.New(`ent: missing required field "ServiceInterest.service_account_id"`)}
	}
	if _, ok := _c.mutation.BotAccountID(); !ok {
		return &ValidationError{Name: "bot_account_id", err: errors.New(`ent: missing required field "ServiceInterest.bot_account_id"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "ServiceInterest.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := serviceinterest.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "ServiceInterest.event_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BroadcasterUserID(); !ok {
		return &ValidationError{Name: "broadcaster_user_id", err: errors.New(`ent: missing required field "ServiceInterest.broadcaster_user_id"`)}
	}
	if v, ok := _c.mutation.BroadcasterUserID(); ok {
		if err := serviceinterest.BroadcasterUserIDValidator(v); err != nil {
			return &ValidationError{Name: "broadcaster_user_id", err: fmt.Errorf(`ent: validator failed for field "ServiceInterest.broadcaster_user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Transport(); !ok {
		return &ValidationError{Name: "transport", err: errors.New(`ent: missing required field "ServiceInterest.transport"`)}
	}
	if v, ok := _c.mutation.Transport(); ok {
		if err := serviceinterest.TransportValidator(v); err != nil {
			return &ValidationError{Name: "transport", err: fmt.Errorf(`ent: validator failed for field "ServiceInterest.transport": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WebhookURL(); !ok {
		return &ValidationError{Name: "webhook_url", err: errors.New(`ent: missing required field "ServiceInterest.webhook_url"`)}
	}
	if _, ok := _c.mutation.LastHeartbeatAt(); !ok {
		return &ValidationError{Name: "last_heartbeat_at", err: errors.New(`ent: missing required field "ServiceInterest.last_heartbeat_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ServiceInterest.created_at"`)}
	}
	return nil
}

func (_c *ServiceInterestCreate) sqlSave(ctx context.Context) (*ServiceInterest, error) {
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

func (_c *ServiceInterestCreate) createSpec() (*ServiceInterest, *sqlgraph.CreateSpec) {
	var (
		_node = &ServiceInterest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(serviceinterest.Table, sqlgraph.NewFieldSpec(serviceinterest.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ServiceAccountID(); ok {
		_spec.SetField(serviceinterest.FieldServiceAccountID, field.TypeUUID, value)
		_node.ServiceAccountID = value
	}
	if value, ok := _c.mutation.BotAccountID(); ok {
		_spec.SetField(serviceinterest.FieldBotAccountID, field.TypeUUID, value)
		_node.BotAccountID = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(serviceinterest.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.BroadcasterUserID(); ok {
		_spec.SetField(serviceinterest.FieldBroadcasterUserID, field.TypeString, value)
		_node.BroadcasterUserID = value
	}
	if value, ok := _c.mutation.Transport(); ok {
		_spec.SetField(serviceinterest.FieldTransport, field.TypeEnum, value)
		_node.Transport = value
	}
	if value, ok := _c.mutation.WebhookURL(); ok {
		_spec.SetField(serviceinterest.FieldWebhookURL, field.TypeString, value)
		_node.WebhookURL = value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(serviceinterest.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(serviceinterest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ServiceInterestCreateBulk is the builder for creating many ServiceInterest entities in bulk.
type ServiceInterestCreateBulk struct {
	config
	err      error
	builders []*ServiceInterestCreate
}

// Save creates the ServiceInterest entities in the database.
func (_c *ServiceInterestCreateBulk) Save(ctx context.Context) ([]*ServiceInterest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ServiceInterest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ServiceInterestMutation)
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
func (_c *ServiceInterestCreateBulk) SaveX(ctx context.Context) []*ServiceInterest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServiceInterestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServiceInterestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
