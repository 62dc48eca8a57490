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
	"github.com/streamgate/streamgate/ent/botaccount"
)

// BotAccountCreate is the builder for creating a BotAccount entity.
type BotAccountCreate struct {
	config
	mutation *BotAccountMutation
	hooks    []Hook
}

// SetTwitchUserID sets the "twitch_user_id" field.
func (_c *BotAccountCreate) SetTwitchUserID(v string) *BotAccountCreate {
	_c.mutation.SetTwitchUserID(v)
	return _c
}

// SetTwitchLogin sets the "twitch_login" field.
func (_c *BotAccountCreate) SetTwitchLogin(v string) *BotAccountCreate {
	_c.mutation.SetTwitchLogin(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *BotAccountCreate) SetDisplayName(v string) *BotAccountCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_c *BotAccountCreate) SetNillableDisplayName(v *string) *BotAccountCreate {
	if v != nil {
		_c.SetDisplayName(*v)
	}
	return _c
}

// SetAccessToken sets the "access_token" field.
func (_c *BotAccountCreate) SetAccessToken(v string) *BotAccountCreate {
	_c.mutation.SetAccessToken(v)
	return _c
}

// SetNillableAccessToken sets the "access_token" field if the given value is not nil.
func (_c *BotAccountCreate) SetNillableAccessToken(v *string) *BotAccountCreate {
	if v != nil {
		_c.SetAccessToken(*v)
	}
	return _c
}

// SetRefreshToken sets the "refresh_token" field.
func (_c *BotAccountCreate) SetRefreshToken(v string) *BotAccountCreate {
	_c.mutation.SetRefreshToken(v)
	return _c
}

// SetNillableRefreshToken sets the "refresh_token" field if the given value is not nil.
func (_c *BotAccountCreate) SetNillableRefreshToken(v *string) *BotAccountCreate {
	if v != nil {
		_c.SetRefreshToken(*v)
	}
	return _c
}

// SetTokenExpiresAt sets the "token_expires_at" field.
func (_c *BotAccountCreate) SetTokenExpiresAt(v time.Time) *BotAccountCreate {
	_c.mutation.SetTokenExpiresAt(v)
	return _c
}

// SetNillableTokenExpiresAt sets the "token_expires_at" field if the given value is not nil.
func (_c *BotAccountCreate) SetNillableTokenExpiresAt(v *time.Time) *BotAccountCreate {
	if v != nil {
		_c.SetTokenExpiresAt(*v)
	}
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *BotAccountCreate) SetEnabled(v bool) *BotAccountCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *BotAccountCreate) SetNillableEnabled(v *bool) *BotAccountCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BotAccountCreate) SetCreatedAt(v time.Time) *BotAccountCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BotAccountCreate) SetNillableCreatedAt(v *time.Time) *BotAccountCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BotAccountCreate) SetID(v uuid.UUID) *BotAccountCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BotAccountCreate) SetNillableID(v *uuid.UUID) *BotAccountCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the BotAccountMutation object of the builder.
func (_c *BotAccountCreate) Mutation() *BotAccountMutation {
	return _c.mutation
}

// Save creates the BotAccount in the database.
func (_c *BotAccountCreate) Save(ctx context.Context) (*BotAccount, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BotAccountCreate) SaveX(ctx context.Context) *BotAccount {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BotAccountCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BotAccountCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BotAccountCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := botaccount.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := botaccount.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := botaccount.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BotAccountCreate) check() error {
	if _, ok := _c.mutation.TwitchUserID(); !ok {
		return &ValidationError{Name: "twitch_user_id", err: errors.New(`ent: missing required field "BotAccount.twitch_user_id"`)}
	}
	if _, ok := _c.mutation.TwitchLogin(); !ok {
		return &ValidationError{Name: "twitch_login", err: errors.New(`ent: missing required field "BotAccount.twitch_login"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "BotAccount.enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BotAccount.created_at"`)}
	}
	return nil
}

func (_c *BotAccountCreate) sqlSave(ctx context.Context) (*BotAccount, error) {
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

func (_c *BotAccountCreate) createSpec() (*BotAccount, *sqlgraph.CreateSpec) {
	var (
		_node = &BotAccount{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(botaccount.Table, sqlgraph.NewFieldSpec(botaccount.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TwitchUserID(); ok {
		_spec.SetField(botaccount.FieldTwitchUserID, field.TypeString, value)
		_node.TwitchUserID = value
	}
	if value, ok := _c.mutation.TwitchLogin(); ok {
		_spec.SetField(botaccount.FieldTwitchLogin, field.TypeString, value)
		_node.TwitchLogin = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(botaccount.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.AccessToken(); ok {
		_spec.SetField(botaccount.FieldAccessToken, field.TypeString, value)
		_node.AccessToken = value
	}
	if value, ok := _c.mutation.RefreshToken(); ok {
		_spec.SetField(botaccount.FieldRefreshToken, field.TypeString, value)
		_node.RefreshToken = value
	}
	if value, ok := _c.mutation.TokenExpiresAt(); ok {
		_spec.SetField(botaccount.FieldTokenExpiresAt, field.TypeTime, value)
		_node.TokenExpiresAt = &value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(botaccount.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(botaccount.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// BotAccountCreateBulk is the builder for creating many BotAccount entities in bulk.
type BotAccountCreateBulk struct {
	config
	err      error
	builders []*BotAccountCreate
}

// Save creates the BotAccount entities in the database.
func (_c *BotAccountCreateBulk) Save(ctx context.Context) ([]*BotAccount, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BotAccount, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BotAccountMutation)
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
func (_c *BotAccountCreateBulk) SaveX(ctx context.Context) []*BotAccount {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BotAccountCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BotAccountCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
