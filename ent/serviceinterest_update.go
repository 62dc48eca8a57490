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
	"github.com/streamgate/streamgate/ent/serviceinterest"
)

// ServiceInterestUpdate is the builder for updating ServiceInterest entities.
type ServiceInterestUpdate struct {
	config
	hooks    []Hook
	mutation *ServiceInterestMutation
}

// Where appends a list predicates to the ServiceInterestUpdate builder.
func (_u *ServiceInterestUpdate) Where(ps ...predicate.ServiceInterest) *ServiceInterestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetServiceAccountID sets the "service_account_id" field.
func (_u *ServiceInterestUpdate) SetServiceAccountID(v uuid.UUID) *ServiceInterestUpdate {
	_u.mutation.SetServiceAccountID(v)
	return _u
}

// SetNillableServiceAccountID sets the "service_account_id" field if the given value is not nil.
func (_u *ServiceInterestUpdate) SetNillableServiceAccountID(v *uuid.UUID) *ServiceInterestUpdate {
	if v != nil {
		_u.SetServiceAccountID(*v)
	}
	return _u
}

// SetBotAccountID sets the "bot_account_id" field.
func (_u *ServiceInterestUpdate) SetBotAccountID(v uuid.UUID) *ServiceInterestUpdate {
	_u.mutation.SetBotAccountID(v)
	return _u
}

// SetNillableBotAccountID sets the "bot_account_id" field if the given value is not nil.
func (_u *ServiceInterestUpdate) SetNillableBotAccountID(v *uuid.UUID) *ServiceInterestUpdate {
	if v != nil {
		_u.SetBotAccountID(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *ServiceInterestUpdate) SetEventType(v string) *ServiceInterestUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *ServiceInterestUpdate) SetNillableEventType(v *string) *ServiceInterestUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetBroadcasterUserID sets the "broadcaster_user_id" field.
func (_u *ServiceInterestUpdate) SetBroadcasterUserID(v string) *ServiceInterestUpdate {
	_u.mutation.SetBroadcasterUserID(v)
	return _u
}

// SetNillableBroadcasterUserID sets the "broadcaster_user_id" field if the given value is not nil.
func (_u *ServiceInterestUpdate) SetNillableBroadcasterUserID(v *string) *ServiceInterestUpdate {
	if v != nil {
		_u.SetBroadcasterUserID(*v)
	}
	return _u
}

// SetTransport sets the "transport" field.
func (_u *ServiceInterestUpdate) SetTransport(v serviceinterest.Transport) *ServiceInterestUpdate {
	_u.mutation.SetTransport(v)
	return _u
}

// SetNillableTransport sets the "transport" field if the given value is not nil.
func (_u *ServiceInterestUpdate) SetNillableTransport(v *serviceinterest.Transport) *ServiceInterestUpdate {
	if v != nil {
		_u.SetTransport(*v)
	}
	return _u
}

// SetWebhookURL sets the "webhook_url" field.
func (_u *ServiceInterestUpdate) SetWebhookURL(v string) *ServiceInterestUpdate {
	_u.mutation.SetWebhookURL(v)
	return _u
}

// SetNillableWebhookURL sets the "webhook_url" field if the given value is not nil.
func (_u *ServiceInterestUpdate) SetNillableWebhookURL(v *string) *ServiceInterestUpdate {
	if v != nil {
		_u.SetWebhookURL(*v)
	}
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *ServiceInterestUpdate) SetLastHeartbeatAt(v time.Time) *ServiceInterestUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *ServiceInterestUpdate) SetNillableLastHeartbeatAt(v *time.Time) *ServiceInterestUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// Mutation returns the ServiceInterestMutation object of the builder.
func (_u *ServiceInterestUpdate) Mutation() *ServiceInterestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ServiceInterestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServiceInterestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ServiceInterestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServiceInterestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ServiceInterestUpdate) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := serviceinterest.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "ServiceInterest.event_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BroadcasterUserID(); ok {
		if err := serviceinterest.BroadcasterUserIDValidator(v); err != nil {
			return &ValidationError{Name: "broadcaster_user_id", err: fmt.Errorf(`ent: validator failed for field "ServiceInterest.broadcaster_user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Transport(); ok {
		if err := serviceinterest.TransportValidator(v); err != nil {
			return &ValidationError{Name: "transport", err: fmt.Errorf(`ent: validator failed for field "ServiceInterest.transport": %w`, err)}
		}
	}
	return nil
}

func (_u *ServiceInterestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(serviceinterest.Table, serviceinterest.Columns, sqlgraph.NewFieldSpec(serviceinterest.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ServiceAccountID(); ok {
		_spec.SetField(serviceinterest.FieldServiceAccountID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.BotAccountID(); ok {
		_spec.SetField(serviceinterest.FieldBotAccountID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(serviceinterest.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.BroadcasterUserID(); ok {
		_spec.SetField(serviceinterest.FieldBroadcasterUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Transport(); ok {
		_spec.SetField(serviceinterest.FieldTransport, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WebhookURL(); ok {
		_spec.SetField(serviceinterest.FieldWebhookURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(serviceinterest.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{serviceinterest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ServiceInterestUpdateOne is the builder for updating a single ServiceInterest entity.
type ServiceInterestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ServiceInterestMutation
}

// SetServiceAccountID sets the "service_account_id" field.
func (_u *ServiceInterestUpdateOne) SetServiceAccountID(v uuid.UUID) *ServiceInterestUpdateOne {
	_u.mutation.SetServiceAccountID(v)
	return _u
}

// SetNillableServiceAccountID sets the "service_account_id" field if the given value is not nil.
func (_u *ServiceInterestUpdateOne) SetNillableServiceAccountID(v *uuid.UUID) *ServiceInterestUpdateOne {
	if v != nil {
		_u.SetServiceAccountID(*v)
	}
	return _u
}

// SetBotAccountID sets the "bot_account_id" field.
func (_u *ServiceInterestUpdateOne) SetBotAccountID(v uuid.UUID) *ServiceInterestUpdateOne {
	_u.mutation.SetBotAccountID(v)
	return _u
}

// SetNillableBotAccountID sets the "bot_account_id" field if the given value is not nil.
func (_u *ServiceInterestUpdateOne) SetNillableBotAccountID(v *uuid.UUID) *ServiceInterestUpdateOne {
	if v != nil {
		_u.SetBotAccountID(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *ServiceInterestUpdateOne) SetEventType(v string) *ServiceInterestUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *ServiceInterestUpdateOne) SetNillableEventType(v *string) *ServiceInterestUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetBroadcasterUserID sets the "broadcaster_user_id" field.
func (_u *ServiceInterestUpdateOne) SetBroadcasterUserID(v string) *ServiceInterestUpdateOne {
	_u.mutation.SetBroadcasterUserID(v)
	return _u
}

// SetNillableBroadcasterUserID sets the "broadcaster_user_id" field if the given value is not nil.
func (_u *ServiceInterestUpdateOne) SetNillableBroadcasterUserID(v *string) *ServiceInterestUpdateOne {
	if v != nil {
		_u.SetBroadcasterUserID(*v)
	}
	return _u
}

// SetTransport sets the "transport" field.
func (_u *ServiceInterestUpdateOne) SetTransport(v serviceinterest.Transport) *ServiceInterestUpdateOne {
	_u.mutation.SetTransport(v)
	return _u
}

// SetNillableTransport sets the "transport" field if the given value is not nil.
func (_u *ServiceInterestUpdateOne) SetNillableTransport(v *serviceinterest.Transport) *ServiceInterestUpdateOne {
	if v != nil {
		_u.SetTransport(*v)
	}
	return _u
}

// SetWebhookURL sets the "webhook_url" field.
func (_u *ServiceInterestUpdateOne) SetWebhookURL(v string) *ServiceInterestUpdateOne {
	_u.mutation.SetWebhookURL(v)
	return _u
}

// SetNillableWebhookURL sets the "webhook_url" field if the given value is not nil.
func (_u *ServiceInterestUpdateOne) SetNillableWebhookURL(v *string) *ServiceInterestUpdateOne {
	if v != nil {
		_u.SetWebhookURL(*v)
	}
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *ServiceInterestUpdateOne) SetLastHeartbeatAt(v time.Time) *ServiceInterestUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *ServiceInterestUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *ServiceInterestUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// Mutation returns the ServiceInterestMutation object of the builder.
func (_u *ServiceInterestUpdateOne) Mutation() *ServiceInterestMutation {
	return _u.mutation
}

// Where appends a list predicates to the ServiceInterestUpdate builder.
func (_u *ServiceInterestUpdateOne) Where(ps ...predicate.ServiceInterest) *ServiceInterestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ServiceInterestUpdateOne) Select(field string, fields ...string) *ServiceInterestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ServiceInterest entity.
func (_u *ServiceInterestUpdateOne) Save(ctx context.Context) (*ServiceInterest, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServiceInterestUpdateOne) SaveX(ctx context.Context) *ServiceInterest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ServiceInterestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServiceInterestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ServiceInterestUpdateOne) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := serviceinterest.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "ServiceInterest.event_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BroadcasterUserID(); ok {
		if err := serviceinterest.BroadcasterUserIDValidator(v); err != nil {
			return &ValidationError{Name: "broadcaster_user_id", err: fmt.Errorf(`ent: validator failed for field "ServiceInterest.broadcaster_user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Transport(); ok {
		if err := serviceinterest.TransportValidator(v); err != nil {
			return &ValidationError{Name: "transport", err: fmt.Errorf(`ent: validator failed for field "ServiceInterest.transport": %w`, err)}
		}
	}
	return nil
}

func (_u *ServiceInterestUpdateOne) sqlSave(ctx context.Context) (_node *ServiceInterest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(serviceinterest.Table, serviceinterest.Columns, sqlgraph.NewFieldSpec(serviceinterest.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ServiceInterest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, serviceinterest.FieldID)
		for _, f := range fields {
			if !serviceinterest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != serviceinterest.FieldID {
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
		_spec.SetField(serviceinterest.FieldServiceAccountID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.BotAccountID(); ok {
		_spec.SetField(serviceinterest.FieldBotAccountID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(serviceinterest.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.BroadcasterUserID(); ok {
		_spec.SetField(serviceinterest.FieldBroadcasterUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Transport(); ok {
		_spec.SetField(serviceinterest.FieldTransport, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WebhookURL(); ok {
		_spec.SetField(serviceinterest.FieldWebhookURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(serviceinterest.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	_node = &ServiceInterest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{serviceinterest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
