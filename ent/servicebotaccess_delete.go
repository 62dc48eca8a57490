// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/streamgate/streamgate/ent/predicate"
	"github.com/streamgate/streamgate/ent/servicebotaccess"
)

// ServiceBotAccessDelete is the builder for deleting a ServiceBotAccess entity.
type ServiceBotAccessDelete struct {
	config
	hooks    []Hook
	mutation *ServiceBotAccessMutation
}

// Where appends a list predicates to the ServiceBotAccessDelete builder.
func (_d *ServiceBotAccessDelete) Where(ps ...predicate.ServiceBotAccess) *ServiceBotAccessDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ServiceBotAccessDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ServiceBotAccessDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ServiceBotAccessDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(servicebotaccess.Table, sqlgraph.NewFieldSpec(servicebotaccess.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ServiceBotAccessDeleteOne is the builder for deleting a single ServiceBotAccess entity.
type ServiceBotAccessDeleteOne struct {
	_d *ServiceBotAccessDelete
}

// Where appends a list predicates to the ServiceBotAccessDelete builder.
func (_d *ServiceBotAccessDeleteOne) Where(ps ...predicate.ServiceBotAccess) *ServiceBotAccessDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ServiceBotAccessDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{servicebotaccess.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ServiceBotAccessDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
