// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/streamgate/streamgate/ent/predicate"
	"github.com/streamgate/streamgate/ent/servicebotaccess"
)

// ServiceBotAccessUpdate is the builder for updating ServiceBotAccess entities.
type ServiceBotAccessUpdate struct {
	config
	hooks    []Hook
	mutation *ServiceBotAccessMutation
}

// Where appends a list predicates to the ServiceBotAccessUpdate builder.
func (_u *ServiceBotAccessUpdate) Where(ps ...predicate.ServiceBotAccess) *ServiceBotAccessUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetServiceAccountID sets the "service_account_id" field.
func (_u *ServiceBotAccessUpdate) SetServiceAccountID(v uuid.UUID) *ServiceBotAccessUpdate {
	_u.mutation.SetServiceAccountID(v)
	return _u
}

// SetNillableServiceAccountID sets the "service_account_id" field if the given value is not nil.
func (_u *ServiceBotAccessUpdate) SetNillableServiceAccountID(v *uuid.UUID) *ServiceBotAccessUpdate {
	if v != nil {
		_u.SetServiceAccountID(*v)
	}
	return _u
}

// SetBotAccountID sets the "bot_account_id" field.
func (_u *ServiceBotAccessUpdate) SetBotAccountID(v uuid.UUID) *ServiceBotAccessUpdate {
	_u.mutation.SetBotAccountID(v)
	return _u
}

// SetNillableBotAccountID sets the "bot_account_id" field if the given value is not nil.
func (_u *ServiceBotAccessUpdate) SetNillableBotAccountID(v *uuid.UUID) *ServiceBotAccessUpdate {
	if v != nil {
		_u.SetBotAccountID(*v)
	}
	return _u
}

// Mutation returns the ServiceBotAccessMutation object of the builder.
func (_u *ServiceBotAccessUpdate) Mutation() *ServiceBotAccessMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ServiceBotAccessUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServiceBotAccessUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ServiceBotAccessUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServiceBotAccessUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ServiceBotAccessUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(servicebotaccess.Table, servicebotaccess.Columns, sqlgraph.NewFieldSpec(servicebotaccess.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ServiceAccountID(); ok {
		_spec.SetField(servicebotaccess.FieldServiceAccountID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.BotAccountID(); ok {
		_spec.SetField(servicebotaccess.FieldBotAccountID, field.TypeUUID, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{servicebotaccess.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ServiceBotAccessUpdateOne is the builder for updating a single ServiceBotAccess entity.
type ServiceBotAccessUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ServiceBotAccessMutation
}

// SetServiceAccountID sets the "service_account_id" field.
func (_u *ServiceBotAccessUpdateOne) SetServiceAccountID(v uuid.UUID) *ServiceBotAccessUpdateOne {
	_u.mutation.SetServiceAccountID(v)
	return _u
}

// SetNillableServiceAccountID sets the "service_account_id" field if the given value is not nil.
func (_u *ServiceBotAccessUpdateOne) SetNillableServiceAccountID(v *uuid.UUID) *ServiceBotAccessUpdateOne {
	if v != nil {
		_u.SetServiceAccountID(*v)
	}
	return _u
}

// SetBotAccountID sets the "bot_account_id" field.
func (_u *ServiceBotAccessUpdateOne) SetBotAccountID(v uuid.UUID) *ServiceBotAccessUpdateOne {
	_u.mutation.SetBotAccountID(v)
	return _u
}

// SetNillableBotAccountID sets the "bot_account_id" field if the given value is not nil.
func (_u *ServiceBotAccessUpdateOne) SetNillableBotAccountID(v *uuid.UUID) *ServiceBotAccessUpdateOne {
	if v != nil {
		_u.SetBotAccountID(*v)
	}
	return _u
}

// Mutation returns the ServiceBotAccessMutation object of the builder.
func (_u *ServiceBotAccessUpdateOne) Mutation() *ServiceBotAccessMutation {
	return _u.mutation
}

// Where appends a list predicates to the ServiceBotAccessUpdate builder.
func (_u *ServiceBotAccessUpdateOne) Where(ps ...predicate.ServiceBotAccess) *ServiceBotAccessUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ServiceBotAccessUpdateOne) Select(field string, fields ...string) *ServiceBotAccessUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ServiceBotAccess entity.
func (_u *ServiceBotAccessUpdateOne) Save(ctx context.Context) (*ServiceBotAccess, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServiceBotAccessUpdateOne) SaveX(ctx context.Context) *ServiceBotAccess {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ServiceBotAccessUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServiceBotAccessUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ServiceBotAccessUpdateOne) sqlSave(ctx context.Context) (_node *ServiceBotAccess, err error) {
	_spec := sqlgraph.NewUpdateSpec(servicebotaccess.Table, servicebotaccess.Columns, sqlgraph.NewFieldSpec(servicebotaccess.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ServiceBotAccess.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, servicebotaccess.FieldID)
		for _, f := range fields {
			if !servicebotaccess.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != servicebotaccess.FieldID {
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
	if value, ok := _u.mutation.ServiceAccountID(); ok {
		_spec.SetField(servicebotaccess.FieldServiceAccountID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.BotAccountID(); ok {
		_spec.SetField(servicebotaccess.FieldBotAccountID, field.TypeUUID, value)
	}
	_node = &ServiceBotAccess{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{servicebotaccess.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
