// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/streamgate/streamgate/ent/predicate"
	"github.com/streamgate/streamgate/ent/serviceruntimestats"
)

// ServiceRuntimeStatsUpdate is the builder for updating ServiceRuntimeStats entities.
type ServiceRuntimeStatsUpdate struct {
	config
	hooks    []Hook
	mutation *ServiceRuntimeStatsMutation
}

// Where appends a list predicates to the ServiceRuntimeStatsUpdate builder.
func (_u *ServiceRuntimeStatsUpdate) Where(ps ...predicate.ServiceRuntimeStats) *ServiceRuntimeStatsUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetServiceAccountID sets the "service_account_id" field.
func (_u *ServiceRuntimeStatsUpdate) SetServiceAccountID(v uuid.UUID) *ServiceRuntimeStatsUpdate {
	_u.mutation.SetServiceAccountID(v)
	return _u
}

// SetNillableServiceAccountID sets the "service_account_id" field if the given value is not nil.
func (_u *ServiceRuntimeStatsUpdate) SetNillableServiceAccountID(v *uuid.UUID) *ServiceRuntimeStatsUpdate {
	if v != nil {
		_u.SetServiceAccountID(*v)
	}
	return _u
}

// SetTotalAPIRequests sets the "total_api_requests" field.
func (_u *ServiceRuntimeStatsUpdate) SetTotalAPIRequests(v int64) *ServiceRuntimeStatsUpdate {
	_u.mutation.ResetTotalAPIRequests()
	_u.mutation.SetTotalAPIRequests(v)
	return _u
}

// SetNillableTotalAPIRequests sets the "total_api_requests" field if the given value is not nil.
func (_u *ServiceRuntimeStatsUpdate) SetNillableTotalAPIRequests(v *int64) *ServiceRuntimeStatsUpdate {
	if v != nil {
		_u.SetTotalAPIRequests(*v)
	}
	return _u
}

// AddTotalAPIRequests adds value to the "total_api_requests" field.
func (_u *ServiceRuntimeStatsUpdate) AddTotalAPIRequests(v int64) *ServiceRuntimeStatsUpdate {
	_u.mutation.AddTotalAPIRequests(v)
	return _u
}

// SetWsConnects sets the "ws_connects" field.
func (_u *ServiceRuntimeStatsUpdate) SetWsConnects(v int64) *ServiceRuntimeStatsUpdate {
	_u.mutation.ResetWsConnects()
	_u.mutation.SetWsConnects(v)
	return _u
}

// SetNillableWsConnects sets the "ws_connects" field if the given value is not nil.
func (_u *ServiceRuntimeStatsUpdate) SetNillableWsConnects(v *int64) *ServiceRuntimeStatsUpdate {
	if v != nil {
		_u.SetWsConnects(*v)
	}
	return _u
}

// AddWsConnects adds value to the "ws_connects" field.
func (_u *ServiceRuntimeStatsUpdate) AddWsConnects(v int64) *ServiceRuntimeStatsUpdate {
	_u.mutation.AddWsConnects(v)
	return _u
}

// SetWsDisconnects sets the "ws_disconnects" field.
func (_u *ServiceRuntimeStatsUpdate) SetWsDisconnects(v int64) *ServiceRuntimeStatsUpdate {
	_u.mutation.ResetWsDisconnects()
	_u.mutation.SetWsDisconnects(v)
	return _u
}

// SetNillableWsDisconnects sets the "ws_disconnects" field if the given value is not nil.
func (_u *ServiceRuntimeStatsUpdate) SetNillableWsDisconnects(v *int64) *ServiceRuntimeStatsUpdate {
	if v != nil {
		_u.SetWsDisconnects(*v)
	}
	return _u
}

// AddWsDisconnects adds value to the "ws_disconnects" field.
func (_u *ServiceRuntimeStatsUpdate) AddWsDisconnects(v int64) *ServiceRuntimeStatsUpdate {
	_u.mutation.AddWsDisconnects(v)
	return _u
}

// SetActiveWsConnections sets the "active_ws_connections" field.
func (_u *ServiceRuntimeStatsUpdate) SetActiveWsConnections(v int64) *ServiceRuntimeStatsUpdate {
	_u.mutation.ResetActiveWsConnections()
	_u.mutation.SetActiveWsConnections(v)
	return _u
}

// SetNillableActiveWsConnections sets the "active_ws_connections" field if the given value is not nil.
func (_u *ServiceRuntimeStatsUpdate) SetNillableActiveWsConnections(v *int64) *ServiceRuntimeStatsUpdate {
	if v != nil {
		_u.SetActiveWsConnections(*v)
	}
	return _u
}

// AddActiveWsConnections adds value to the "active_ws_connections" field.
func (_u *ServiceRuntimeStatsUpdate) AddActiveWsConnections(v int64) *ServiceRuntimeStatsUpdate {
	_u.mutation.AddActiveWsConnections(v)
	return _u
}

// SetEventsSentWs sets the "events_sent_ws" field.
func (_u *ServiceRuntimeStatsUpdate) SetEventsSentWs(v int64) *ServiceRuntimeStatsUpdate {
	_u.mutation.ResetEventsSentWs()
	_u.mutation.SetEventsSentWs(v)
	return _u
}

// SetNillableEventsSentWs sets the "events_sent_ws" field if the given value is not nil.
func (_u *ServiceRuntimeStatsUpdate) SetNillableEventsSentWs(v *int64) *ServiceRuntimeStatsUpdate {
	if v != nil {
		_u.SetEventsSentWs(*v)
	}
	return _u
}

// AddEventsSentWs adds value to the "events_sent_ws" field.
func (_u *ServiceRuntimeStatsUpdate) AddEventsSentWs(v int64) *ServiceRuntimeStatsUpdate {
	_u.mutation.AddEventsSentWs(v)
	return _u
}

// SetEventsSentWebhook sets the "events_sent_webhook" field.
func (_u *ServiceRuntimeStatsUpdate) SetEventsSentWebhook(v int64) *ServiceRuntimeStatsUpdate {
	_u.mutation.ResetEventsSentWebhook()
	_u.mutation.SetEventsSentWebhook(v)
	return _u
}

// SetNillableEventsSentWebhook sets the "events_sent_webhook" field if the given value is not nil.
func (_u *ServiceRuntimeStatsUpdate) SetNillableEventsSentWebhook(v *int64) *ServiceRuntimeStatsUpdate {
	if v != nil {
		_u.SetEventsSentWebhook(*v)
	}
	return _u
}

// AddEventsSentWebhook adds value to the "events_sent_webhook" field.
func (_u *ServiceRuntimeStatsUpdate) AddEventsSentWebhook(v int64) *ServiceRuntimeStatsUpdate {
	_u.mutation.AddEventsSentWebhook(v)
	return _u
}

// SetWebhookFailures sets the "webhook_failures" field.
func (_u *ServiceRuntimeStatsUpdate) SetWebhookFailures(v int64) *ServiceRuntimeStatsUpdate {
	_u.mutation.ResetWebhookFailures()
	_u.mutation.SetWebhookFailures(v)
	return _u
}

// SetNillableWebhookFailures sets the "webhook_failures" field if the given value is not nil.
func (_u *ServiceRuntimeStatsUpdate) SetNillableWebhookFailures(v *int64) *ServiceRuntimeStatsUpdate {
	if v != nil {
		_u.SetWebhookFailures(*v)
	}
	return _u
}

// AddWebhookFailures adds value to the "webhook_failures" field.
func (_u *ServiceRuntimeStatsUpdate) AddWebhookFailures(v int64) *ServiceRuntimeStatsUpdate {
	_u.mutation.AddWebhookFailures(v)
	return _u
}

// SetLastConnectAt sets the "last_connect_at" field.
func (_u *ServiceRuntimeStatsUpdate) SetLastConnectAt(v time.Time) *ServiceRuntimeStatsUpdate {
	_u.mutation.SetLastConnectAt(v)
	return _u
}

// SetNillableLastConnectAt sets the "last_connect_at" field if the given value is not nil.
func (_u *ServiceRuntimeStatsUpdate) SetNillableLastConnectAt(v *time.Time) *ServiceRuntimeStatsUpdate {
	if v != nil {
		_u.SetLastConnectAt(*v)
	}
	return _u
}

// ClearLastConnectAt clears the value of the "last_connect_at" field.
func (_u *ServiceRuntimeStatsUpdate) ClearLastConnectAt() *ServiceRuntimeStatsUpdate {
	_u.mutation.ClearLastConnectAt()
	return _u
}

// SetLastDisconnectAt sets the "last_disconnect_at" field.
func (_u *ServiceRuntimeStatsUpdate) SetLastDisconnectAt(v time.Time) *ServiceRuntimeStatsUpdate {
	_u.mutation.SetLastDisconnectAt(v)
	return _u
}

// SetNillableLastDisconnectAt sets the "last_disconnect_at" field if the given value is not nil.
func (_u *ServiceRuntimeStatsUpdate) SetNillableLastDisconnectAt(v *time.Time) *ServiceRuntimeStatsUpdate {
	if v != nil {
		_u.SetLastDisconnectAt(*v)
	}
	return _u
}

// ClearLastDisconnectAt clears the value of the "last_disconnect_at" field.
func (_u *ServiceRuntimeStatsUpdate) ClearLastDisconnectAt() *ServiceRuntimeStatsUpdate {
	_u.mutation.ClearLastDisconnectAt()
	return _u
}

// SetLastEventAt sets the "last_event_at" field.
func (_u *ServiceRuntimeStatsUpdate) SetLastEventAt(v time.Time) *ServiceRuntimeStatsUpdate {
	_u.mutation.SetLastEventAt(v)
	return _u
}

// SetNillableLastEventAt sets the "last_event_at" field if the given value is not nil.
func (_u *ServiceRuntimeStatsUpdate) SetNillableLastEventAt(v *time.Time) *ServiceRuntimeStatsUpdate {
	if v != nil {
		_u.SetLastEventAt(*v)
	}
	return _u
}

// ClearLastEventAt clears the value of the "last_event_at" field.
func (_u *ServiceRuntimeStatsUpdate) ClearLastEventAt() *ServiceRuntimeStatsUpdate {
	_u.mutation.ClearLastEventAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ServiceRuntimeStatsUpdate) SetUpdatedAt(v time.Time) *ServiceRuntimeStatsUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ServiceRuntimeStatsMutation object of the builder.
func (_u *ServiceRuntimeStatsUpdate) Mutation() *ServiceRuntimeStatsMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ServiceRuntimeStatsUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServiceRuntimeStatsUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ServiceRuntimeStatsUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServiceRuntimeStatsUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ServiceRuntimeStatsUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := serviceruntimestats.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ServiceRuntimeStatsUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(serviceruntimestats.Table, serviceruntimestats.Columns, sqlgraph.NewFieldSpec(serviceruntimestats.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ServiceAccountID(); ok {
		_spec.SetField(serviceruntimestats.FieldServiceAccountID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TotalAPIRequests(); ok {
		_spec.SetField(serviceruntimestats.FieldTotalAPIRequests, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalAPIRequests(); ok {
		_spec.AddField(serviceruntimestats.FieldTotalAPIRequests, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.WsConnects(); ok {
		_spec.SetField(serviceruntimestats.FieldWsConnects, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedWsConnects(); ok {
		_spec.AddField(serviceruntimestats.FieldWsConnects, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.WsDisconnects(); ok {
		_spec.SetField(serviceruntimestats.FieldWsDisconnects, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedWsDisconnects(); ok {
		_spec.AddField(serviceruntimestats.FieldWsDisconnects, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ActiveWsConnections(); ok {
		_spec.SetField(serviceruntimestats.FieldActiveWsConnections, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedActiveWsConnections(); ok {
		_spec.AddField(serviceruntimestats.FieldActiveWsConnections, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.EventsSentWs(); ok {
		_spec.SetField(serviceruntimestats.FieldEventsSentWs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEventsSentWs(); ok {
		_spec.AddField(serviceruntimestats.FieldEventsSentWs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.EventsSentWebhook(); ok {
		_spec.SetField(serviceruntimestats.FieldEventsSentWebhook, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEventsSentWebhook(); ok {
		_spec.AddField(serviceruntimestats.FieldEventsSentWebhook, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.WebhookFailures(); ok {
		_spec.SetField(serviceruntimestats.FieldWebhookFailures, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedWebhookFailures(); ok {
		_spec.AddField(serviceruntimestats.FieldWebhookFailures, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastConnectAt(); ok {
		_spec.SetField(serviceruntimestats.FieldLastConnectAt, field.TypeTime, value)
	}
	if _u.mutation.LastConnectAtCleared() {
		_spec.ClearField(serviceruntimestats.FieldLastConnectAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastDisconnectAt(); ok {
		_spec.SetField(serviceruntimestats.FieldLastDisconnectAt, field.TypeTime, value)
	}
	if _u.mutation.LastDisconnectAtCleared() {
		_spec.ClearField(serviceruntimestats.FieldLastDisconnectAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastEventAt(); ok {
		_spec.SetField(serviceruntimestats.FieldLastEventAt, field.TypeTime, value)
	}
	if _u.mutation.LastEventAtCleared() {
		_spec.ClearField(serviceruntimestats.FieldLastEventAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(serviceruntimestats.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{serviceruntimestats.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ServiceRuntimeStatsUpdateOne is the builder for updating a single ServiceRuntimeStats entity.
type ServiceRuntimeStatsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ServiceRuntimeStatsMutation
}

// SetServiceAccountID sets the "service_account_id" field.
func (_u *ServiceRuntimeStatsUpdateOne) SetServiceAccountID(v uuid.UUID) *ServiceRuntimeStatsUpdateOne {
	_u.mutation.SetServiceAccountID(v)
	return _u
}

// SetNillableServiceAccountID sets the "service_account_id" field if the given value is not nil.
func (_u *ServiceRuntimeStatsUpdateOne) SetNillableServiceAccountID(v *uuid.UUID) *ServiceRuntimeStatsUpdateOne {
	if v != nil {
		_u.SetServiceAccountID(*v)
	}
	return _u
}

// SetTotalAPIRequests sets the "total_api_requests" field.
func (_u *ServiceRuntimeStatsUpdateOne) SetTotalAPIRequests(v int64) *ServiceRuntimeStatsUpdateOne {
	_u.mutation.ResetTotalAPIRequests()
	_u.mutation.SetTotalAPIRequests(v)
	return _u
}

// SetNillableTotalAPIRequests sets the "total_api_requests" field if the given value is not nil.
func (_u *ServiceRuntimeStatsUpdateOne) SetNillableTotalAPIRequests(v *int64) *ServiceRuntimeStatsUpdateOne {
	if v != nil {
		_u.SetTotalAPIRequests(*v)
	}
	return _u
}

// AddTotalAPIRequests adds value to the "total_api_requests" field.
func (_u *ServiceRuntimeStatsUpdateOne) AddTotalAPIRequests(v int64) *ServiceRuntimeStatsUpdateOne {
	_u.mutation.AddTotalAPIRequests(v)
	return _u
}

// SetWsConnects sets the "ws_connects" field.
func (_u *ServiceRuntimeStatsUpdateOne) SetWsConnects(v int64) *ServiceRuntimeStatsUpdateOne {
	_u.mutation.ResetWsConnects()
	_u.mutation.SetWsConnects(v)
	return _u
}

// SetNillableWsConnects sets the "ws_connects" field if the given value is not nil.
func (_u *ServiceRuntimeStatsUpdateOne) SetNillableWsConnects(v *int64) *ServiceRuntimeStatsUpdateOne {
	if v != nil {
		_u.SetWsConnects(*v)
	}
	return _u
}

// AddWsConnects adds value to the "ws_connects" field.
func (_u *ServiceRuntimeStatsUpdateOne) AddWsConnects(v int64) *ServiceRuntimeStatsUpdateOne {
	_u.mutation.AddWsConnects(v)
	return _u
}

// SetWsDisconnects sets the "ws_disconnects" field.
func (_u *ServiceRuntimeStatsUpdateOne) SetWsDisconnects(v int64) *ServiceRuntimeStatsUpdateOne {
	_u.mutation.ResetWsDisconnects()
	_u.mutation.SetWsDisconnects(v)
	return _u
}

// SetNillableWsDisconnects sets the "ws_disconnects" field if the given value is not nil.
func (_u *ServiceRuntimeStatsUpdateOne) SetNillableWsDisconnects(v *int64) *ServiceRuntimeStatsUpdateOne {
	if v != nil {
		_u.SetWsDisconnects(*v)
	}
	return _u
}

// AddWsDisconnects adds value to the "ws_disconnects" field.
func (_u *ServiceRuntimeStatsUpdateOne) AddWsDisconnects(v int64) *ServiceRuntimeStatsUpdateOne {
	_u.mutation.AddWsDisconnects(v)
	return _u
}

// SetActiveWsConnections sets the "active_ws_connections" field.
func (_u *ServiceRuntimeStatsUpdateOne) SetActiveWsConnections(v int64) *ServiceRuntimeStatsUpdateOne {
	_u.mutation.ResetActiveWsConnections()
	_u.mutation.SetActiveWsConnections(v)
	return _u
}

// SetNillableActiveWsConnections sets the "active_ws_connections" field if the given value is not nil.
func (_u *ServiceRuntimeStatsUpdateOne) SetNillableActiveWsConnections(v *int64) *ServiceRuntimeStatsUpdateOne {
	if v != nil {
		_u.SetActiveWsConnections(*v)
	}
	return _u
}

// AddActiveWsConnections adds value to the "active_ws_connections" field.
func (_u *ServiceRuntimeStatsUpdateOne) AddActiveWsConnections(v int64) *ServiceRuntimeStatsUpdateOne {
	_u.mutation.AddActiveWsConnections(v)
	return _u
}

// SetEventsSentWs sets the "events_sent_ws" field.
func (_u *ServiceRuntimeStatsUpdateOne) SetEventsSentWs(v int64) *ServiceRuntimeStatsUpdateOne {
	_u.mutation.ResetEventsSentWs()
	_u.mutation.SetEventsSentWs(v)
	return _u
}

// SetNillableEventsSentWs sets the "events_sent_ws" field if the given value is not nil.
func (_u *ServiceRuntimeStatsUpdateOne) SetNillableEventsSentWs(v *int64) *ServiceRuntimeStatsUpdateOne {
	if v != nil {
		_u.SetEventsSentWs(*v)
	}
	return _u
}

// AddEventsSentWs adds value to the "events_sent_ws" field.
func (_u *ServiceRuntimeStatsUpdateOne) AddEventsSentWs(v int64) *ServiceRuntimeStatsUpdateOne {
	_u.mutation.AddEventsSentWs(v)
	return _u
}

// SetEventsSentWebhook sets the "events_sent_webhook" field.
func (_u *ServiceRuntimeStatsUpdateOne) SetEventsSentWebhook(v int64) *ServiceRuntimeStatsUpdateOne {
	_u.mutation.ResetEventsSentWebhook()
	_u.mutation.SetEventsSentWebhook(v)
	return _u
}

// SetNillableEventsSentWebhook sets the "events_sent_webhook" field if the given value is not nil.
func (_u *ServiceRuntimeStatsUpdateOne) SetNillableEventsSentWebhook(v *int64) *ServiceRuntimeStatsUpdateOne {
	if v != nil {
		_u.SetEventsSentWebhook(*v)
	}
	return _u
}

// AddEventsSentWebhook adds value to the "events_sent_webhook" field.
func (_u *ServiceRuntimeStatsUpdateOne) AddEventsSentWebhook(v int64) *ServiceRuntimeStatsUpdateOne {
	_u.mutation.AddEventsSentWebhook(v)
	return _u
}

// SetWebhookFailures sets the "webhook_failures" field.
func (_u *ServiceRuntimeStatsUpdateOne) SetWebhookFailures(v int64) *ServiceRuntimeStatsUpdateOne {
	_u.mutation.ResetWebhookFailures()
	_u.mutation.SetWebhookFailures(v)
	return _u
}

// SetNillableWebhookFailures sets the "webhook_failures" field if the given value is not nil.
func (_u *ServiceRuntimeStatsUpdateOne) SetNillableWebhookFailures(v *int64) *ServiceRuntimeStatsUpdateOne {
	if v != nil {
		_u.SetWebhookFailures(*v)
	}
	return _u
}

// AddWebhookFailures adds value to the "webhook_failures" field.
func (_u *ServiceRuntimeStatsUpdateOne) AddWebhookFailures(v int64) *ServiceRuntimeStatsUpdateOne {
	_u.mutation.AddWebhookFailures(v)
	return _u
}

// SetLastConnectAt sets the "last_connect_at" field.
func (_u *ServiceRuntimeStatsUpdateOne) SetLastConnectAt(v time.Time) *ServiceRuntimeStatsUpdateOne {
	_u.mutation.SetLastConnectAt(v)
	return _u
}

// SetNillableLastConnectAt sets the "last_connect_at" field if the given value is not nil.
func (_u *ServiceRuntimeStatsUpdateOne) SetNillableLastConnectAt(v *time.Time) *ServiceRuntimeStatsUpdateOne {
	if v != nil {
		_u.SetLastConnectAt(*v)
	}
	return _u
}

// ClearLastConnectAt clears the value of the "last_connect_at" field.
func (_u *ServiceRuntimeStatsUpdateOne) ClearLastConnectAt() *ServiceRuntimeStatsUpdateOne {
	_u.mutation.ClearLastConnectAt()
	return _u
}

// SetLastDisconnectAt sets the "last_disconnect_at" field.
func (_u *ServiceRuntimeStatsUpdateOne) SetLastDisconnectAt(v time.Time) *ServiceRuntimeStatsUpdateOne {
	_u.mutation.SetLastDisconnectAt(v)
	return _u
}

// SetNillableLastDisconnectAt sets the "last_disconnect_at" field if the given value is not nil.
func (_u *ServiceRuntimeStatsUpdateOne) SetNillableLastDisconnectAt(v *time.Time) *ServiceRuntimeStatsUpdateOne {
	if v != nil {
		_u.SetLastDisconnectAt(*v)
	}
	return _u
}

// ClearLastDisconnectAt clears the value of the "last_disconnect_at" field.
func (_u *ServiceRuntimeStatsUpdateOne) ClearLastDisconnectAt() *ServiceRuntimeStatsUpdateOne {
	_u.mutation.ClearLastDisconnectAt()
	return _u
}

// SetLastEventAt sets the "last_event_at" field.
func (_u *ServiceRuntimeStatsUpdateOne) SetLastEventAt(v time.Time) *ServiceRuntimeStatsUpdateOne {
	_u.mutation.SetLastEventAt(v)
	return _u
}

// SetNillableLastEventAt sets the "last_event_at" field if the given value is not nil.
func (_u *ServiceRuntimeStatsUpdateOne) SetNillableLastEventAt(v *time.Time) *ServiceRuntimeStatsUpdateOne {
	if v != nil {
		_u.SetLastEventAt(*v)
	}
	return _u
}

// ClearLastEventAt clears the value of the "last_event_at" field.
func (_u *ServiceRuntimeStatsUpdateOne) ClearLastEventAt() *ServiceRuntimeStatsUpdateOne {
	_u.mutation.ClearLastEventAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ServiceRuntimeStatsUpdateOne) SetUpdatedAt(v time.Time) *ServiceRuntimeStatsUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ServiceRuntimeStatsMutation object of the builder.
func (_u *ServiceRuntimeStatsUpdateOne) Mutation() *ServiceRuntimeStatsMutation {
	return _u.mutation
}

// Where appends a list predicates to the ServiceRuntimeStatsUpdate builder.
func (_u *ServiceRuntimeStatsUpdateOne) Where(ps ...predicate.ServiceRuntimeStats) *ServiceRuntimeStatsUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ServiceRuntimeStatsUpdateOne) Select(field string, fields ...string) *ServiceRuntimeStatsUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ServiceRuntimeStats entity.
func (_u *ServiceRuntimeStatsUpdateOne) Save(ctx context.Context) (*ServiceRuntimeStats, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServiceRuntimeStatsUpdateOne) SaveX(ctx context.Context) *ServiceRuntimeStats {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ServiceRuntimeStatsUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServiceRuntimeStatsUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ServiceRuntimeStatsUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := serviceruntimestats.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ServiceRuntimeStatsUpdateOne) sqlSave(ctx context.Context) (_node *ServiceRuntimeStats, err error) {
	_spec := sqlgraph.NewUpdateSpec(serviceruntimestats.Table, serviceruntimestats.Columns, sqlgraph.NewFieldSpec(serviceruntimestats.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ServiceRuntimeStats.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, serviceruntimestats.FieldID)
		for _, f := range fields {
			if !serviceruntimestats.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != serviceruntimestats.FieldID {
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
		_spec.SetField(serviceruntimestats.FieldServiceAccountID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TotalAPIRequests(); ok {
		_spec.SetField(serviceruntimestats.FieldTotalAPIRequests, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalAPIRequests(); ok {
		_spec.AddField(serviceruntimestats.FieldTotalAPIRequests, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.WsConnects(); ok {
		_spec.SetField(serviceruntimestats.FieldWsConnects, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedWsConnects(); ok {
		_spec.AddField(serviceruntimestats.FieldWsConnects, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.WsDisconnects(); ok {
		_spec.SetField(serviceruntimestats.FieldWsDisconnects, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedWsDisconnects(); ok {
		_spec.AddField(serviceruntimestats.FieldWsDisconnects, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ActiveWsConnections(); ok {
		_spec.SetField(serviceruntimestats.FieldActiveWsConnections, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedActiveWsConnections(); ok {
		_spec.AddField(serviceruntimestats.FieldActiveWsConnections, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.EventsSentWs(); ok {
		_spec.SetField(serviceruntimestats.FieldEventsSentWs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEventsSentWs(); ok {
		_spec.AddField(serviceruntimestats.FieldEventsSentWs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.EventsSentWebhook(); ok {
		_spec.SetField(serviceruntimestats.FieldEventsSentWebhook, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEventsSentWebhook(); ok {
		_spec.AddField(serviceruntimestats.FieldEventsSentWebhook, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.WebhookFailures(); ok {
		_spec.SetField(serviceruntimestats.FieldWebhookFailures, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedWebhookFailures(); ok {
		_spec.AddField(serviceruntimestats.FieldWebhookFailures, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastConnectAt(); ok {
		_spec.SetField(serviceruntimestats.FieldLastConnectAt, field.TypeTime, value)
	}
	if _u.mutation.LastConnectAtCleared() {
		_spec.ClearField(serviceruntimestats.FieldLastConnectAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastDisconnectAt(); ok {
		_spec.SetField(serviceruntimestats.FieldLastDisconnectAt, field.TypeTime, value)
	}
	if _u.mutation.LastDisconnectAtCleared() {
		_spec.ClearField(serviceruntimestats.FieldLastDisconnectAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastEventAt(); ok {
		_spec.SetField(serviceruntimestats.FieldLastEventAt, field.TypeTime, value)
	}
	if _u.mutation.LastEventAtCleared() {
		_spec.ClearField(serviceruntimestats.FieldLastEventAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(serviceruntimestats.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ServiceRuntimeStats{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{serviceruntimestats.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
