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
	"github.com/streamgate/streamgate/ent/serviceaccount"
)

// ServiceAccountCreate is the builder for creating a ServiceAccount entity.
type ServiceAccountCreate struct {
	config
	mutation *ServiceAccountMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *ServiceAccountCreate) SetName(v string) *ServiceAccountCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetClientID sets the "client_id" field.
func (_c *ServiceAccountCreate) SetClientID(v string) *ServiceAccountCreate {
	_c.mutation.SetClientID(v)
	return _c
}

// SetClientSecretHash sets the "client_secret_hash" field.
func (_c *ServiceAccountCreate) SetClientSecretHash(v string) *ServiceAccountCreate {
	_c.mutation.SetClientSecretHash(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *ServiceAccountCreate) SetEnabled(v bool) *ServiceAccountCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *ServiceAccountCreate) SetNillableEnabled(v *bool) *ServiceAccountCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ServiceAccountCreate) SetCreatedAt(v time.Time) *ServiceAccountCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ServiceAccountCreate) SetNillableCreatedAt(v *time.Time) *ServiceAccountCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ServiceAccountCreate) SetID(v uuid.UUID) *ServiceAccountCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ServiceAccountCreate) SetNillableID(v *uuid.UUID) *ServiceAccountCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ServiceAccountMutation object of the builder.
func (_c *ServiceAccountCreate) Mutation() *ServiceAccountMutation {
	return _c.mutation
}

// Save creates the ServiceAccount in the database.
func (_c *ServiceAccountCreate) Save(ctx context.Context) (*ServiceAccount, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ServiceAccountCreate) SaveX(ctx context.Context) *ServiceAccount {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServiceAccountCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServiceAccountCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ServiceAccountCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := serviceaccount.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := serviceaccount.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := serviceaccount.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ServiceAccountCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ServiceAccount.name"`)}
	}
	if _, ok := _c.mutation.ClientID(); !ok {
		return &ValidationError{Name: "client_id", err: errors.New(`ent: missing required field "ServiceAccount.client_id"`)}
	}
	if _, ok := _c.mutation.ClientSecretHash(); !ok {
		return &ValidationError{Name: "client_secret_hash", err: errors.New(`ent: missing required field "ServiceAccount.client_secret_hash"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "ServiceAccount.enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ServiceAccount.created_at"`)}
	}
	return nil
}

func (_c *ServiceAccountCreate) sqlSave(ctx context.Context) (*ServiceAccount, error) {
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

func (_c *ServiceAccountCreate) createSpec() (*ServiceAccount, *sqlgraph.CreateSpec) {
	var (
		_node = &ServiceAccount{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(serviceaccount.Table, sqlgraph.NewFieldSpec(serviceaccount.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(serviceaccount.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.ClientID(); ok {
		_spec.SetField(serviceaccount.FieldClientID, field.TypeString, value)
		_node.ClientID = value
	}
	if value, ok := _c.mutation.ClientSecretHash(); ok {
		_spec.SetField(serviceaccount.FieldClientSecretHash, field.TypeString, value)
		_node.ClientSecretHash = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(serviceaccount.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(serviceaccount.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ServiceAccountCreateBulk is the builder for creating many ServiceAccount entities in bulk.
type ServiceAccountCreateBulk struct {
	config
	err      error
	builders []*ServiceAccountCreate
}

// Save creates the ServiceAccount entities in the database.
func (_c *ServiceAccountCreateBulk) Save(ctx context.Context) ([]*ServiceAccount, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ServiceAccount, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ServiceAccountMutation)
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
func (_c *ServiceAccountCreateBulk) SaveX(ctx context.Context) []*ServiceAccount {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServiceAccountCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServiceAccountCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
