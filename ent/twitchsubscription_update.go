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
	"github.com/streamgate/streamgate/ent/twitchsubscription"
)

// TwitchSubscriptionUpdate is the builder for updating TwitchSubscription entities.
type TwitchSubscriptionUpdate struct {
	config
	hooks    []Hook
	mutation *TwitchSubscriptionMutation
}

// Where appends a list predicates to the TwitchSubscriptionUpdate builder.
func (_u *TwitchSubscriptionUpdate) Where(ps ...predicate.TwitchSubscription) *TwitchSubscriptionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBotAccountID sets the "bot_account_id" field.
func (_u *TwitchSubscriptionUpdate) SetBotAccountID(v uuid.UUID) *TwitchSubscriptionUpdate {
	_u.mutation.SetBotAccountID(v)
	return _u
}

// SetNillableBotAccountID sets the "bot_account_id" field if the given value is not nil.
func (_u *TwitchSubscriptionUpdate) SetNillableBotAccountID(v *uuid.UUID) *TwitchSubscriptionUpdate {
	if v != nil {
		_u.SetBotAccountID(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *TwitchSubscriptionUpdate) SetEventType(v string) *TwitchSubscriptionUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *TwitchSubscriptionUpdate) SetNillableEventType(v *string) *TwitchSubscriptionUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetBroadcasterUserID sets the "broadcaster_user_id" field.
func (_u *TwitchSubscriptionUpdate) SetBroadcasterUserID(v string) *TwitchSubscriptionUpdate {
	_u.mutation.SetBroadcasterUserID(v)
	return _u
}

// SetNillableBroadcasterUserID sets the "broadcaster_user_id" field if the given value is not nil.
func (_u *TwitchSubscriptionUpdate) SetNillableBroadcasterUserID(v *string) *TwitchSubscriptionUpdate {
	if v != nil {
		_u.SetBroadcasterUserID(*v)
	}
	return _u
}

// SetTransport sets the "transport" field.
func (_u *TwitchSubscriptionUpdate) SetTransport(v twitchsubscription.Transport) *TwitchSubscriptionUpdate {
	_u.mutation.SetTransport(v)
	return _u
}

// SetNillableTransport sets the "transport" field if the given value is not nil.
func (_u *TwitchSubscriptionUpdate) SetNillableTransport(v *twitchsubscription.Transport) *TwitchSubscriptionUpdate {
	if v != nil {
		_u.SetTransport(*v)
	}
	return _u
}

// SetTwitchSubscriptionID sets the "twitch_subscription_id" field.
func (_u *TwitchSubscriptionUpdate) SetTwitchSubscriptionID(v string) *TwitchSubscriptionUpdate {
	_u.mutation.SetTwitchSubscriptionID(v)
	return _u
}

// SetNillableTwitchSubscriptionID sets the "twitch_subscription_id" field if the given value is not nil.
func (_u *TwitchSubscriptionUpdate) SetNillableTwitchSubscriptionID(v *string) *TwitchSubscriptionUpdate {
	if v != nil {
		_u.SetTwitchSubscriptionID(*v)
	}
	return _u
}

// ClearTwitchSubscriptionID clears the value of the "twitch_subscription_id" field.
func (_u *TwitchSubscriptionUpdate) ClearTwitchSubscriptionID() *TwitchSubscriptionUpdate {
	_u.mutation.ClearTwitchSubscriptionID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TwitchSubscriptionUpdate) SetStatus(v twitchsubscription.Status) *TwitchSubscriptionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TwitchSubscriptionUpdate) SetNillableStatus(v *twitchsubscription.Status) *TwitchSubscriptionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TwitchSubscriptionUpdate) SetSessionID(v string) *TwitchSubscriptionUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TwitchSubscriptionUpdate) SetNillableSessionID(v *string) *TwitchSubscriptionUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *TwitchSubscriptionUpdate) ClearSessionID() *TwitchSubscriptionUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *TwitchSubscriptionUpdate) SetLastError(v string) *TwitchSubscriptionUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *TwitchSubscriptionUpdate) SetNillableLastError(v *string) *TwitchSubscriptionUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *TwitchSubscriptionUpdate) ClearLastError() *TwitchSubscriptionUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TwitchSubscriptionUpdate) SetUpdatedAt(v time.Time) *TwitchSubscriptionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TwitchSubscriptionMutation object of the builder.
func (_u *TwitchSubscriptionUpdate) Mutation() *TwitchSubscriptionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TwitchSubscriptionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TwitchSubscriptionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TwitchSubscriptionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TwitchSubscriptionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TwitchSubscriptionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := twitchsubscription.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TwitchSubscriptionUpdate) check() error {
	if v, ok := _u.mutation.Transport(); ok {
		if err := twitchsubscription.TransportValidator(v); err != nil {
			return &ValidationError{Name: "transport", err: fmt.Errorf(`ent: validator failed for field "TwitchSubscription.transport": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := twitchsubscription.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TwitchSubscription.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TwitchSubscriptionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(twitchsubscription.Table, twitchsubscription.Columns, sqlgraph.NewFieldSpec(twitchsubscription.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BotAccountID(); ok {
		_spec.SetField(twitchsubscription.FieldBotAccountID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(twitchsubscription.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.BroadcasterUserID(); ok {
		_spec.SetField(twitchsubscription.FieldBroadcasterUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Transport(); ok {
		_spec.SetField(twitchsubscription.FieldTransport, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TwitchSubscriptionID(); ok {
		_spec.SetField(twitchsubscription.FieldTwitchSubscriptionID, field.TypeString, value)
	}
	if _u.mutation.TwitchSubscriptionIDCleared() {
		_spec.ClearField(twitchsubscription.FieldTwitchSubscriptionID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(twitchsubscription.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(twitchsubscription.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(twitchsubscription.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(twitchsubscription.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(twitchsubscription.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(twitchsubscription.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{twitchsubscription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TwitchSubscriptionUpdateOne is the builder for updating a single TwitchSubscription entity.
type TwitchSubscriptionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TwitchSubscriptionMutation
}

// SetBotAccountID sets the "bot_account_id" field.
func (_u *TwitchSubscriptionUpdateOne) SetBotAccountID(v uuid.UUID) *TwitchSubscriptionUpdateOne {
	_u.mutation.SetBotAccountID(v)
	return _u
}

// SetNillableBotAccountID sets the "bot_account_id" field if the given value is not nil.
func (_u *TwitchSubscriptionUpdateOne) SetNillableBotAccountID(v *uuid.UUID) *TwitchSubscriptionUpdateOne {
	if v != nil {
		_u.SetBotAccountID(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *TwitchSubscriptionUpdateOne) SetEventType(v string) *TwitchSubscriptionUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *TwitchSubscriptionUpdateOne) SetNillableEventType(v *string) *TwitchSubscriptionUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetBroadcasterUserID sets the "broadcaster_user_id" field.
func (_u *TwitchSubscriptionUpdateOne) SetBroadcasterUserID(v string) *TwitchSubscriptionUpdateOne {
	_u.mutation.SetBroadcasterUserID(v)
	return _u
}

// SetNillableBroadcasterUserID sets the "broadcaster_user_id" field if the given value is not nil.
func (_u *TwitchSubscriptionUpdateOne) SetNillableBroadcasterUserID(v *string) *TwitchSubscriptionUpdateOne {
	if v != nil {
		_u.SetBroadcasterUserID(*v)
	}
	return _u
}

// SetTransport sets the "transport" field.
func (_u *TwitchSubscriptionUpdateOne) SetTransport(v twitchsubscription.Transport) *TwitchSubscriptionUpdateOne {
	_u.mutation.SetTransport(v)
	return _u
}

// SetNillableTransport sets the "transport" field if the given value is not nil.
func (_u *TwitchSubscriptionUpdateOne) SetNillableTransport(v *twitchsubscription.Transport) *TwitchSubscriptionUpdateOne {
	if v != nil {
		_u.SetTransport(*v)
	}
	return _u
}

// SetTwitchSubscriptionID sets the "twitch_subscription_id" field.
func (_u *TwitchSubscriptionUpdateOne) SetTwitchSubscriptionID(v string) *TwitchSubscriptionUpdateOne {
	_u.mutation.SetTwitchSubscriptionID(v)
	return _u
}

// SetNillableTwitchSubscriptionID sets the "twitch_subscription_id" field if the given value is not nil.
func (_u *TwitchSubscriptionUpdateOne) SetNillableTwitchSubscriptionID(v *string) *TwitchSubscriptionUpdateOne {
	if v != nil {
		_u.SetTwitchSubscriptionID(*v)
	}
	return _u
}

// ClearTwitchSubscriptionID clears the value of the "twitch_subscription_id" field.
func (_u *TwitchSubscriptionUpdateOne) ClearTwitchSubscriptionID() *TwitchSubscriptionUpdateOne {
	_u.mutation.ClearTwitchSubscriptionID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TwitchSubscriptionUpdateOne) SetStatus(v twitchsubscription.Status) *TwitchSubscriptionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TwitchSubscriptionUpdateOne) SetNillableStatus(v *twitchsubscription.Status) *TwitchSubscriptionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TwitchSubscriptionUpdateOne) SetSessionID(v string) *TwitchSubscriptionUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TwitchSubscriptionUpdateOne) SetNillableSessionID(v *string) *TwitchSubscriptionUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *TwitchSubscriptionUpdateOne) ClearSessionID() *TwitchSubscriptionUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *TwitchSubscriptionUpdateOne) SetLastError(v string) *TwitchSubscriptionUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *TwitchSubscriptionUpdateOne) SetNillableLastError(v *string) *TwitchSubscriptionUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *TwitchSubscriptionUpdateOne) ClearLastError() *TwitchSubscriptionUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TwitchSubscriptionUpdateOne) SetUpdatedAt(v time.Time) *TwitchSubscriptionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TwitchSubscriptionMutation object of the builder.
func (_u *TwitchSubscriptionUpdateOne) Mutation() *TwitchSubscriptionMutation {
	return _u.mutation
}

// Where appends a list predicates to the TwitchSubscriptionUpdate builder.
func (_u *TwitchSubscriptionUpdateOne) Where(ps ...predicate.TwitchSubscription) *TwitchSubscriptionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TwitchSubscriptionUpdateOne) Select(field string, fields ...string) *TwitchSubscriptionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TwitchSubscription entity.
func (_u *TwitchSubscriptionUpdateOne) Save(ctx context.Context) (*TwitchSubscription, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TwitchSubscriptionUpdateOne) SaveX(ctx context.Context) *TwitchSubscription {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TwitchSubscriptionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TwitchSubscriptionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TwitchSubscriptionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := twitchsubscription.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TwitchSubscriptionUpdateOne) check() error {
	if v, ok := _u.mutation.Transport(); ok {
		if err := twitchsubscription.TransportValidator(v); err != nil {
			return &ValidationError{Name: "transport", err: fmt.Errorf(`ent: validator failed for field "TwitchSubscription.transport": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := twitchsubscription.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TwitchSubscription.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TwitchSubscriptionUpdateOne) sqlSave(ctx context.Context) (_node *TwitchSubscription, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(twitchsubscription.Table, twitchsubscription.Columns, sqlgraph.NewFieldSpec(twitchsubscription.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TwitchSubscription.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, twitchsubscription.FieldID)
		for _, f := range fields {
			if !twitchsubscription.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != twitchsubscription.FieldID {
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
	if value, ok := _u.mutation.BotAccountID(); ok {
		_spec.SetField(twitchsubscription.FieldBotAccountID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(twitchsubscription.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.BroadcasterUserID(); ok {
		_spec.SetField(twitchsubscription.FieldBroadcasterUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Transport(); ok {
		_spec.SetField(twitchsubscription.FieldTransport, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TwitchSubscriptionID(); ok {
		_spec.SetField(twitchsubscription.FieldTwitchSubscriptionID, field.TypeString, value)
	}
	if _u.mutation.TwitchSubscriptionIDCleared() {
		_spec.ClearField(twitchsubscription.FieldTwitchSubscriptionID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(twitchsubscription.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(twitchsubscription.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(twitchsubscription.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(twitchsubscription.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(twitchsubscription.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(twitchsubscription.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &TwitchSubscription{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{twitchsubscription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
