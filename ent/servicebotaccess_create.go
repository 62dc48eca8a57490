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
	"github.com/streamgate/streamgate/ent/servicebotaccess"
)

// ServiceBotAccessCreate is the builder for creating a ServiceBotAccess entity.
type ServiceBotAccessCreate struct {
	config
	mutation *ServiceBotAccessMutation
	hooks    []Hook
}

// SetServiceAccountID sets the "service_account_id" field.
func (_c *ServiceBotAccessCreate) SetServiceAccountID(v uuid.UUID) *ServiceBotAccessCreate {
	_c.mutation.SetServiceAccountID(v)
	return _c
}

// SetBotAccountID sets the "bot_account_id" field.
func (_c *ServiceBotAccessCreate) SetBotAccountID(v uuid.UUID) *ServiceBotAccessCreate {
	_c.mutation.SetBotAccountID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ServiceBotAccessCreate) SetCreatedAt(v time.Time) *ServiceBotAccessCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ServiceBotAccessCreate) SetNillableCreatedAt(v *time.Time) *ServiceBotAccessCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ServiceBotAccessCreate) SetID(v uuid.UUID) *ServiceBotAccessCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ServiceBotAccessCreate) SetNillableID(v *uuid.UUID) *ServiceBotAccessCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ServiceBotAccessMutation object of the builder.
func (_c *ServiceBotAccessCreate) Mutation() *ServiceBotAccessMutation {
	return _c.mutation
}

// Save creates the ServiceBotAccess in the database.
func (_c *ServiceBotAccessCreate) Save(ctx context.Context) (*ServiceBotAccess, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ServiceBotAccessCreate) SaveX(ctx context.Context) *ServiceBotAccess {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServiceBotAccessCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServiceBotAccessCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ServiceBotAccessCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := servicebotaccess.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := servicebotaccess.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ServiceBotAccessCreate) check() error {
	if _, ok := _c.mutation.ServiceAccountID(); !ok {
		return &ValidationError{Name: "service_account_id", err: errors.New(`ent: missing required field "ServiceBotAccess.service_account_id"`)}
	}
	if _, ok := _c.mutation.BotAccountID(); !ok {
		return &ValidationError{Name: "bot_account_id", err: errors.New(`ent: missing required field "ServiceBotAccess.bot_account_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ServiceBotAccess.created_at"`)}
	}
	return nil
}

func (_c *ServiceBotAccessCreate) sqlSave(ctx context.Context) (*ServiceBotAccess, error) {
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

func (_c *ServiceBotAccessCreate) createSpec() (*ServiceBotAccess, *sqlgraph.CreateSpec) {
	var (
		_node = &ServiceBotAccess{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(servicebotaccess.Table, sqlgraph.NewFieldSpec(servicebotaccess.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ServiceAccountID(); ok {
		_spec.SetField(servicebotaccess.FieldServiceAccountID, field.TypeUUID, value)
		_node.ServiceAccountID = value
	}
	if value, ok := _c.mutation.BotAccountID(); ok {
		_spec.SetField(servicebotaccess.FieldBotAccountID, field.TypeUUID, value)
		_node.BotAccountID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(servicebotaccess.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ServiceBotAccessCreateBulk is the builder for creating many ServiceBotAccess entities in bulk.
type ServiceBotAccessCreateBulk struct {
	config
	err      error
	builders []*ServiceBotAccessCreate
}

// Save creates the ServiceBotAccess entities in the database.
func (_c *ServiceBotAccessCreateBulk) Save(ctx context.Context) ([]*ServiceBotAccess, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ServiceBotAccess, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ServiceBotAccessMutation)
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
func (_c *ServiceBotAccessCreateBulk) SaveX(ctx context.Context) []*ServiceBotAccess {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServiceBotAccessCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServiceBotAccessCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
