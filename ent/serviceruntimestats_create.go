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
	"github.com/streamgate/streamgate/ent/serviceruntimestats"
)

// ServiceRuntimeStatsCreate is the builder for creating a ServiceRuntimeStats entity.
type ServiceRuntimeStatsCreate struct {
	config
	mutation *ServiceRuntimeStatsMutation
	hooks    []Hook
}

// SetServiceAccountID sets the "service_account_id" field.
func (_c *ServiceRuntimeStatsCreate) SetServiceAccountID(v uuid.UUID) *ServiceRuntimeStatsCreate {
	_c.mutation.SetServiceAccountID(v)
	return _c
}

// SetTotalAPIRequests sets the "total_api_requests" field.
func (_c *ServiceRuntimeStatsCreate) SetTotalAPIRequests(v int64) *ServiceRuntimeStatsCreate {
	_c.mutation.SetTotalAPIRequests(v)
	return _c
}

// SetNillableTotalAPIRequests sets the "total_api_requests" field if the given value is not nil.
func (_c *ServiceRuntimeStatsCreate) SetNillableTotalAPIRequests(v *int64) *ServiceRuntimeStatsCreate {
	if v != nil {
		_c.SetTotalAPIRequests(*v)
	}
	return _c
}

// SetWsConnects sets the "ws_connects" field.
func (_c *ServiceRuntimeStatsCreate) SetWsConnects(v int64) *ServiceRuntimeStatsCreate {
	_c.mutation.SetWsConnects(v)
	return _c
}

// SetNillableWsConnects sets the "ws_connects" field if the given value is not nil.
func (_c *ServiceRuntimeStatsCreate) SetNillableWsConnects(v *int64) *ServiceRuntimeStatsCreate {
	if v != nil {
		_c.SetWsConnects(*v)
	}
	return _c
}

// SetWsDisconnects sets the "ws_disconnects" field.
func (_c *ServiceRuntimeStatsCreate) SetWsDisconnects(v int64) *ServiceRuntimeStatsCreate {
	_c.mutation.SetWsDisconnects(v)
	return _c
}

// SetNillableWsDisconnects sets the "ws_disconnects" field if the given value is not nil.
func (_c *ServiceRuntimeStatsCreate) SetNillableWsDisconnects(v *int64) *ServiceRuntimeStatsCreate {
	if v != nil {
		_c.SetWsDisconnects(*v)
	}
	return _c
}

// SetActiveWsConnections sets the "active_ws_connections" field.
func (_c *ServiceRuntimeStatsCreate) SetActiveWsConnections(v int64) *ServiceRuntimeStatsCreate {
	_c.mutation.SetActiveWsConnections(v)
	return _c
}

// SetNillableActiveWsConnections sets the "active_ws_connections" field if the given value is not nil.
func (_c *ServiceRuntimeStatsCreate) SetNillableActiveWsConnections(v *int64) *ServiceRuntimeStatsCreate {
	if v != nil {
		_c.SetActiveWsConnections(*v)
	}
	return _c
}

// SetEventsSentWs sets the "events_sent_ws" field.
func (_c *ServiceRuntimeStatsCreate) SetEventsSentWs(v int64) *ServiceRuntimeStatsCreate {
	_c.mutation.SetEventsSentWs(v)
	return _c
}

// SetNillableEventsSentWs sets the "events_sent_ws" field if the given value is not nil.
func (_c *ServiceRuntimeStatsCreate) SetNillableEventsSentWs(v *int64) *ServiceRuntimeStatsCreate {
	if v != nil {
		_c.SetEventsSentWs(*v)
	}
	return _c
}

// SetEventsSentWebhook sets the "events_sent_webhook" field.
func (_c *ServiceRuntimeStatsCreate) SetEventsSentWebhook(v int64) *ServiceRuntimeStatsCreate {
	_c.mutation.SetEventsSentWebhook(v)
	return _c
}

// SetNillableEventsSentWebhook sets the "events_sent_webhook" field if the given value is not nil.
func (_c *ServiceRuntimeStatsCreate) SetNillableEventsSentWebhook(v *int64) *ServiceRuntimeStatsCreate {
	if v != nil {
		_c.SetEventsSentWebhook(*v)
	}
	return _c
}

// SetWebhookFailures sets the "webhook_failures" field.
func (_c *ServiceRuntimeStatsCreate) SetWebhookFailures(v int64) *ServiceRuntimeStatsCreate {
	_c.mutation.SetWebhookFailures(v)
	return _c
}

// SetNillableWebhookFailures sets the "webhook_failures" field if the given value is not nil.
func (_c *ServiceRuntimeStatsCreate) SetNillableWebhookFailures(v *int64) *ServiceRuntimeStatsCreate {
	if v != nil {
		_c.SetWebhookFailures(*v)
	}
	return _c
}

// SetLastConnectAt sets the "last_connect_at" field.
func (_c *ServiceRuntimeStatsCreate) SetLastConnectAt(v time.Time) *ServiceRuntimeStatsCreate {
	_c.mutation.SetLastConnectAt(v)
	return _c
}

// SetNillableLastConnectAt sets the "last_connect_at" field if the given value is not nil.
func (_c *ServiceRuntimeStatsCreate) SetNillableLastConnectAt(v *time.Time) *ServiceRuntimeStatsCreate {
	if v != nil {
		_c.SetLastConnectAt(*v)
	}
	return _c
}

// SetLastDisconnectAt sets the "last_disconnect_at" field.
func (_c *ServiceRuntimeStatsCreate) SetLastDisconnectAt(v time.Time) *ServiceRuntimeStatsCreate {
	_c.mutation.SetLastDisconnectAt(v)
	return _c
}

// SetNillableLastDisconnectAt sets the "last_disconnect_at" field if the given value is not nil.
func (_c *ServiceRuntimeStatsCreate) SetNillableLastDisconnectAt(v *time.Time) *ServiceRuntimeStatsCreate {
	if v != nil {
		_c.SetLastDisconnectAt(*v)
	}
	return _c
}

// SetLastEventAt sets the "last_event_at" field.
func (_c *ServiceRuntimeStatsCreate) SetLastEventAt(v time.Time) *ServiceRuntimeStatsCreate {
	_c.mutation.SetLastEventAt(v)
	return _c
}

// SetNillableLastEventAt sets the "last_event_at" field if the given value is not nil.
func (_c *ServiceRuntimeStatsCreate) SetNillableLastEventAt(v *time.Time) *ServiceRuntimeStatsCreate {
	if v != nil {
		_c.SetLastEventAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ServiceRuntimeStatsCreate) SetUpdatedAt(v time.Time) *ServiceRuntimeStatsCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ServiceRuntimeStatsCreate) SetNillableUpdatedAt(v *time.Time) *ServiceRuntimeStatsCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ServiceRuntimeStatsCreate) SetID(v uuid.UUID) *ServiceRuntimeStatsCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ServiceRuntimeStatsCreate) SetNillableID(v *uuid.UUID) *ServiceRuntimeStatsCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ServiceRuntimeStatsMutation object of the builder.
func (_c *ServiceRuntimeStatsCreate) Mutation() *ServiceRuntimeStatsMutation {
	return _c.mutation
}

// Save creates the ServiceRuntimeStats in the database.
func (_c *ServiceRuntimeStatsCreate) Save(ctx context.Context) (*ServiceRuntimeStats, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ServiceRuntimeStatsCreate) SaveX(ctx context.Context) *ServiceRuntimeStats {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServiceRuntimeStatsCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServiceRuntimeStatsCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ServiceRuntimeStatsCreate) defaults() {
	if _, ok := _c.mutation.TotalAPIRequests(); !ok {
		v := serviceruntimestats.DefaultTotalAPIRequests
		_c.mutation.SetTotalAPIRequests(v)
	}
	if _, ok := _c.mutation.WsConnects(); !ok {
		v := serviceruntimestats.DefaultWsConnects
		_c.mutation.SetWsConnects(v)
	}
	if _, ok := _c.mutation.WsDisconnects(); !ok {
		v := serviceruntimestats.DefaultWsDisconnects
		_c.mutation.SetWsDisconnects(v)
	}
	if _, ok := _c.mutation.ActiveWsConnections(); !ok {
		v := serviceruntimestats.DefaultActiveWsConnections
		_c.mutation.SetActiveWsConnections(v)
	}
	if _, ok := _c.mutation.EventsSentWs(); !ok {
		v := serviceruntimestats.DefaultEventsSentWs
		_c.mutation.SetEventsSentWs(v)
	}
	if _, ok := _c.mutation.EventsSentWebhook(); !ok {
		v := serviceruntimestats.DefaultEventsSentWebhook
		_c.mutation.SetEventsSentWebhook(v)
	}
	if _, ok := _c.mutation.WebhookFailures(); !ok {
		v := serviceruntimestats.DefaultWebhookFailures
		_c.mutation.SetWebhookFailures(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := serviceruntimestats.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := serviceruntimestats.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ServiceRuntimeStatsCreate) check() error {
	if _, ok := _c.mutation.ServiceAccountID(); !ok {
		return &ValidationError{Name: "service_account_id", err: errors.New(`ent: missing required field "ServiceRuntimeStats.service_account_id"`)}
	}
	if _, ok := _c.mutation.TotalAPIRequests(); !ok {
		return &ValidationError{Name: "total_api_requests", err: errors.New(`ent: missing required field "ServiceRuntimeStats.total_api_requests"`)}
	}
	if _, ok := _c.mutation.WsConnects(); !ok {
		return &ValidationError{Name: "ws_connects", err: errors.New(`ent: missing required field "ServiceRuntimeStats.ws_connects"`)}
	}
	if _, ok := _c.mutation.WsDisconnects(); !ok {
		return &ValidationError{Name: "ws_disconnects", err: errors.New(`ent: missing required field "ServiceRuntimeStats.ws_disconnects"`)}
	}
	if _, ok := _c.mutation.ActiveWsConnections(); !ok {
		return &ValidationError{Name: "active_ws_connections", err: errors.New(`ent: missing required field "ServiceRuntimeStats.active_ws_connections"`)}
	}
	if _, ok := _c.mutation.EventsSentWs(); !ok {
		return &ValidationError{Name: "events_sent_ws", err: errors.New(`ent: missing required field "ServiceRuntimeStats.events_sent_ws"`)}
	}
	if _, ok := _c.mutation.EventsSentWebhook(); !ok {
		return &ValidationError{Name: "events_sent_webhook", err: errors.New(`ent: missing required field "ServiceRuntimeStats.events_sent_webhook"`)}
	}
	if _, ok := _c.mutation.WebhookFailures(); !ok {
		return &ValidationError{Name: "webhook_failures", err: errors.New(`ent: missing required field "ServiceRuntimeStats.webhook_failures"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ServiceRuntimeStats.updated_at"`)}
	}
	return nil
}

func (_c *ServiceRuntimeStatsCreate) sqlSave(ctx context.Context) (*ServiceRuntimeStats, error) {
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

func (_c *ServiceRuntimeStatsCreate) createSpec() (*ServiceRuntimeStats, *sqlgraph.CreateSpec) {
	var (
		_node = &ServiceRuntimeStats{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(serviceruntimestats.Table, sqlgraph.NewFieldSpec(serviceruntimestats.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ServiceAccountID(); ok {
		_spec.SetField(serviceruntimestats.FieldServiceAccountID, field.TypeUUID, value)
		_node.ServiceAccountID = value
	}
	if value, ok := _c.mutation.TotalAPIRequests(); ok {
		_spec.SetField(serviceruntimestats.FieldTotalAPIRequests, field.TypeInt64, value)
		_node.TotalAPIRequests = value
	}
	if value, ok := _c.mutation.WsConnects(); ok {
		_spec.SetField(serviceruntimestats.FieldWsConnects, field.TypeInt64, value)
		_node.WsConnects = value
	}
	if value, ok := _c.mutation.WsDisconnects(); ok {
		_spec.SetField(serviceruntimestats.FieldWsDisconnects, field.TypeInt64, value)
		_node.WsDisconnects = value
	}
	if value, ok := _c.mutation.ActiveWsConnections(); ok {
		_spec.SetField(serviceruntimestats.FieldActiveWsConnections, field.TypeInt64, value)
		_node.ActiveWsConnections = value
	}
	if value, ok := _c.mutation.EventsSentWs(); ok {
		_spec.SetField(serviceruntimestats.FieldEventsSentWs, field.TypeInt64, value)
		_node.EventsSentWs = value
	}
	if value, ok := _c.mutation.EventsSentWebhook(); ok {
		_spec.SetField(serviceruntimestats.FieldEventsSentWebhook, field.TypeInt64, value)
		_node.EventsSentWebhook = value
	}
	if value, ok := _c.mutation.WebhookFailures(); ok {
		_spec.SetField(serviceruntimestats.FieldWebhookFailures, field.TypeInt64, value)
		_node.WebhookFailures = value
	}
	if value, ok := _c.mutation.LastConnectAt(); ok {
		_spec.SetField(serviceruntimestats.FieldLastConnectAt, field.TypeTime, value)
		_node.LastConnectAt = &value
	}
	if value, ok := _c.mutation.LastDisconnectAt(); ok {
		_spec.SetField(serviceruntimestats.FieldLastDisconnectAt, field.TypeTime, value)
		_node.LastDisconnectAt = &value
	}
	if value, ok := _c.mutation.LastEventAt(); ok {
		_spec.SetField(serviceruntimestats.FieldLastEventAt, field.TypeTime, value)
		_node.LastEventAt = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(serviceruntimestats.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ServiceRuntimeStatsCreateBulk is the builder for creating many ServiceRuntimeStats entities in bulk.
type ServiceRuntimeStatsCreateBulk struct {
	config
	err      error
	builders []*ServiceRuntimeStatsCreate
}

// Save creates the ServiceRuntimeStats entities in the database.
func (_c *ServiceRuntimeStatsCreateBulk) Save(ctx context.Context) ([]*ServiceRuntimeStats, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ServiceRuntimeStats, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ServiceRuntimeStatsMutation)
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
func (_c *ServiceRuntimeStatsCreateBulk) SaveX(ctx context.Context) []*ServiceRuntimeStats {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServiceRuntimeStatsCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServiceRuntimeStatsCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
