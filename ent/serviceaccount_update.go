// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/streamgate/streamgate/ent/predicate"
	"github.com/streamgate/streamgate/ent/serviceaccount"
)

// ServiceAccountUpdate is the builder for updating ServiceAccount entities.
type ServiceAccountUpdate struct {
	config
	hooks    []Hook
	mutation *ServiceAccountMutation
}

// Where appends a list predicates to the ServiceAccountUpdate builder.
func (_u *ServiceAccountUpdate) Where(ps ...predicate.ServiceAccount) *ServiceAccountUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ServiceAccountUpdate) SetName(v string) *ServiceAccountUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ServiceAccountUpdate) SetNillableName(v *string) *ServiceAccountUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetClientSecretHash sets the "client_secret_hash" field.
func (_u *ServiceAccountUpdate) SetClientSecretHash(v string) *ServiceAccountUpdate {
	_u.mutation.SetClientSecretHash(v)
	return _u
}

// SetNillableClientSecretHash sets the "client_secret_hash" field if the given value is not nil.
func (_u *ServiceAccountUpdate) SetNillableClientSecretHash(v *string) *ServiceAccountUpdate {
	if v != nil {
		_u.SetClientSecretHash(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ServiceAccountUpdate) SetEnabled(v bool) *ServiceAccountUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ServiceAccountUpdate) SetNillableEnabled(v *bool) *ServiceAccountUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// Mutation returns the ServiceAccountMutation object of the builder.
func (_u *ServiceAccountUpdate) Mutation() *ServiceAccountMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ServiceAccountUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServiceAccountUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ServiceAccountUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServiceAccountUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ServiceAccountUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(serviceaccount.Table, serviceaccount.Columns, sqlgraph.NewFieldSpec(serviceaccount.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(serviceaccount.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClientSecretHash(); ok {
		_spec.SetField(serviceaccount.FieldClientSecretHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(serviceaccount.FieldEnabled, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{serviceaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ServiceAccountUpdateOne is the builder for updating a single ServiceAccount entity.
type ServiceAccountUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ServiceAccountMutation
}

// SetName sets the "name" field.
func (_u *ServiceAccountUpdateOne) SetName(v string) *ServiceAccountUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ServiceAccountUpdateOne) SetNillableName(v *string) *ServiceAccountUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetClientSecretHash sets the "client_secret_hash" field.
func (_u *ServiceAccountUpdateOne) SetClientSecretHash(v string) *ServiceAccountUpdateOne {
	_u.mutation.SetClientSecretHash(v)
	return _u
}

// SetNillableClientSecretHash sets the "client_secret_hash" field if the given value is not nil.
func (_u *ServiceAccountUpdateOne) SetNillableClientSecretHash(v *string) *ServiceAccountUpdateOne {
	if v != nil {
		_u.SetClientSecretHash(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ServiceAccountUpdateOne) SetEnabled(v bool) *ServiceAccountUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ServiceAccountUpdateOne) SetNillableEnabled(v *bool) *ServiceAccountUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// Mutation returns the ServiceAccountMutation object of the builder.
func (_u *ServiceAccountUpdateOne) Mutation() *ServiceAccountMutation {
	return _u.mutation
}

// Where appends a list predicates to the ServiceAccountUpdate builder.
func (_u *ServiceAccountUpdateOne) Where(ps ...predicate.ServiceAccount) *ServiceAccountUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ServiceAccountUpdateOne) Select(field string, fields ...string) *ServiceAccountUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ServiceAccount entity.
func (_u *ServiceAccountUpdateOne) Save(ctx context.Context) (*ServiceAccount, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServiceAccountUpdateOne) SaveX(ctx context.Context) *ServiceAccount {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ServiceAccountUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServiceAccountUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ServiceAccountUpdateOne) sqlSave(ctx context.Context) (_node *ServiceAccount, err error) {
	_spec := sqlgraph.NewUpdateSpec(serviceaccount.Table, serviceaccount.Columns, sqlgraph.NewFieldSpec(serviceaccount.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ServiceAccount.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, serviceaccount.FieldID)
		for _, f := range fields {
			if !serviceaccount.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != serviceaccount.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(serviceaccount.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClientSecretHash(); ok {
		_spec.SetField(serviceaccount.FieldClientSecretHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(serviceaccount.FieldEnabled, field.TypeBool, value)
	}
	_node = &ServiceAccount{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{serviceaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
