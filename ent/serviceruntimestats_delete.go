// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/streamgate/streamgate/ent/predicate"
	"github.com/streamgate/streamgate/ent/serviceruntimestats"
)

// ServiceRuntimeStatsDelete is the builder for deleting a ServiceRuntimeStats entity.
type ServiceRuntimeStatsDelete struct {
	config
	hooks    []Hook
	mutation *ServiceRuntimeStatsMutation
}

// Where appends a list predicates to the ServiceRuntimeStatsDelete builder.
func (_d *ServiceRuntimeStatsDelete) Where(ps ...predicate.ServiceRuntimeStats) *ServiceRuntimeStatsDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ServiceRuntimeStatsDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ServiceRuntimeStatsDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ServiceRuntimeStatsDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(serviceruntimestats.Table, sqlgraph.NewFieldSpec(serviceruntimestats.FieldID, field.TypeUUID))
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

// ServiceRuntimeStatsDeleteOne is the builder for deleting a single ServiceRuntimeStats entity.
type ServiceRuntimeStatsDeleteOne struct {
	_d *ServiceRuntimeStatsDelete
}

// Where appends a list predicates to the ServiceRuntimeStatsDelete builder.
func (_d *ServiceRuntimeStatsDeleteOne) Where(ps ...predicate.ServiceRuntimeStats) *ServiceRuntimeStatsDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ServiceRuntimeStatsDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{serviceruntimestats.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ServiceRuntimeStatsDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
