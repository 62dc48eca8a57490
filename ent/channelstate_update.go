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
	"github.com/streamgate/streamgate/ent/channelstate"
	"github.com/streamgate/streamgate/ent/predicate"
)

// ChannelStateUpdate is the builder for updating ChannelState entities.
type ChannelStateUpdate struct {
	config
	hooks    []Hook
	mutation *ChannelStateMutation
}

// Where appends a list predicates to the ChannelStateUpdate builder.
func (_u *ChannelStateUpdate) Where(ps ...predicate.ChannelState) *ChannelStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBroadcasterUserID sets the "broadcaster_user_id" field.
func (_u *ChannelStateUpdate) SetBroadcasterUserID(v string) *ChannelStateUpdate {
	_u.mutation.SetBroadcasterUserID(v)
	return _u
}

// SetNillableBroadcasterUserID sets the "broadcaster_user_id" field if the given value is not nil.
func (_u *ChannelStateUpdate) SetNillableBroadcasterUserID(v *string) *ChannelStateUpdate {
	if v != nil {
		_u.SetBroadcasterUserID(*v)
	}
	return _u
}

// SetIsLive sets the "is_live" field.
func (_u *ChannelStateUpdate) SetIsLive(v bool) *ChannelStateUpdate {
	_u.mutation.SetIsLive(v)
	return _u
}

// SetNillableIsLive sets the "is_live" field if the given value is not nil.
func (_u *ChannelStateUpdate) SetNillableIsLive(v *bool) *ChannelStateUpdate {
	if v != nil {
		_u.SetIsLive(*v)
	}
	return _u
}

// SetLastOnlineAt sets the "last_online_at" field.
func (_u *ChannelStateUpdate) SetLastOnlineAt(v time.Time) *ChannelStateUpdate {
	_u.mutation.SetLastOnlineAt(v)
	return _u
}

// SetNillableLastOnlineAt sets the "last_online_at" field if the given value is not nil.
func (_u *ChannelStateUpdate) SetNillableLastOnlineAt(v *time.Time) *ChannelStateUpdate {
	if v != nil {
		_u.SetLastOnlineAt(*v)
	}
	return _u
}

// ClearLastOnlineAt clears the value of the "last_online_at" field.
func (_u *ChannelStateUpdate) ClearLastOnlineAt() *ChannelStateUpdate {
	_u.mutation.ClearLastOnlineAt()
	return _u
}

// SetLastOfflineAt sets the "last_offline_at" field.
func (_u *ChannelStateUpdate) SetLastOfflineAt(v time.Time) *ChannelStateUpdate {
	_u.mutation.SetLastOfflineAt(v)
	return _u
}

// SetNillableLastOfflineAt sets the "last_offline_at" field if the given value is not nil.
func (_u *ChannelStateUpdate) SetNillableLastOfflineAt(v *time.Time) *ChannelStateUpdate {
	if v != nil {
		_u.SetLastOfflineAt(*v)
	}
	return _u
}

// ClearLastOfflineAt clears the value of the "last_offline_at" field.
func (_u *ChannelStateUpdate) ClearLastOfflineAt() *ChannelStateUpdate {
	_u.mutation.ClearLastOfflineAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChannelStateUpdate) SetUpdatedAt(v time.Time) *ChannelStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ChannelStateMutation object of the builder.
func (_u *ChannelStateUpdate) Mutation() *ChannelStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChannelStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChannelStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChannelStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChannelStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChannelStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := channelstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ChannelStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(channelstate.Table, channelstate.Columns, sqlgraph.NewFieldSpec(channelstate.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BroadcasterUserID(); ok {
		_spec.SetField(channelstate.FieldBroadcasterUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsLive(); ok {
		_spec.SetField(channelstate.FieldIsLive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastOnlineAt(); ok {
		_spec.SetField(channelstate.FieldLastOnlineAt, field.TypeTime, value)
	}
	if _u.mutation.LastOnlineAtCleared() {
		_spec.ClearField(channelstate.FieldLastOnlineAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastOfflineAt(); ok {
		_spec.SetField(channelstate.FieldLastOfflineAt, field.TypeTime, value)
	}
	if _u.mutation.LastOfflineAtCleared() {
		_spec.ClearField(channelstate.FieldLastOfflineAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(channelstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{channelstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChannelStateUpdateOne is the builder for updating a single ChannelState entity.
type ChannelStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChannelStateMutation
}

// SetBroadcasterUserID sets the "broadcaster_user_id" field.
func (_u *ChannelStateUpdateOne) SetBroadcasterUserID(v string) *ChannelStateUpdateOne {
	_u.mutation.SetBroadcasterUserID(v)
	return _u
}

// SetNillableBroadcasterUserID sets the "broadcaster_user_id" field if the given value is not nil.
func (_u *ChannelStateUpdateOne) SetNillableBroadcasterUserID(v *string) *ChannelStateUpdateOne {
	if v != nil {
		_u.SetBroadcasterUserID(*v)
	}
	return _u
}

// SetIsLive sets the "is_live" field.
func (_u *ChannelStateUpdateOne) SetIsLive(v bool) *ChannelStateUpdateOne {
	_u.mutation.SetIsLive(v)
	return _u
}

// SetNillableIsLive sets the "is_live" field if the given value is not nil.
func (_u *ChannelStateUpdateOne) SetNillableIsLive(v *bool) *ChannelStateUpdateOne {
	if v != nil {
		_u.SetIsLive(*v)
	}
	return _u
}

// SetLastOnlineAt sets the "last_online_at" field.
func (_u *ChannelStateUpdateOne) SetLastOnlineAt(v time.Time) *ChannelStateUpdateOne {
	_u.mutation.SetLastOnlineAt(v)
	return _u
}

// SetNillableLastOnlineAt sets the "last_online_at" field if the given value is not nil.
func (_u *ChannelStateUpdateOne) SetNillableLastOnlineAt(v *time.Time) *ChannelStateUpdateOne {
	if v != nil {
		_u.SetLastOnlineAt(*v)
	}
	return _u
}

// ClearLastOnlineAt clears the value of the "last_online_at" field.
func (_u *ChannelStateUpdateOne) ClearLastOnlineAt() *ChannelStateUpdateOne {
	_u.mutation.ClearLastOnlineAt()
	return _u
}

// SetLastOfflineAt sets the "last_offline_at" field.
func (_u *ChannelStateUpdateOne) SetLastOfflineAt(v time.Time) *ChannelStateUpdateOne {
	_u.mutation.SetLastOfflineAt(v)
	return _u
}

// SetNillableLastOfflineAt sets the "last_offline_at" field if the given value is not nil.
func (_u *ChannelStateUpdateOne) SetNillableLastOfflineAt(v *time.Time) *ChannelStateUpdateOne {
	if v != nil {
		_u.SetLastOfflineAt(*v)
	}
	return _u
}

// ClearLastOfflineAt clears the value of the "last_offline_at" field.
func (_u *ChannelStateUpdateOne) ClearLastOfflineAt() *ChannelStateUpdateOne {
	_u.mutation.ClearLastOfflineAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChannelStateUpdateOne) SetUpdatedAt(v time.Time) *ChannelStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ChannelStateMutation object of the builder.
func (_u *ChannelStateUpdateOne) Mutation() *ChannelStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChannelStateUpdate builder.
func (_u *ChannelStateUpdateOne) Where(ps ...predicate.ChannelState) *ChannelStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChannelStateUpdateOne) Select(field string, fields ...string) *ChannelStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChannelState entity.
func (_u *ChannelStateUpdateOne) Save(ctx context.Context) (*ChannelState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChannelStateUpdateOne) SaveX(ctx context.Context) *ChannelState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChannelStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChannelStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChannelStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := channelstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ChannelStateUpdateOne) sqlSave(ctx context.Context) (_node *ChannelState, err error) {
	_spec := sqlgraph.NewUpdateSpec(channelstate.Table, channelstate.Columns, sqlgraph.NewFieldSpec(channelstate.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChannelState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, channelstate.FieldID)
		for _, f := range fields {
			if !channelstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != channelstate.FieldID {
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
	if value, ok := _u.mutation.BroadcasterUserID(); ok {
		_spec.SetField(channelstate.FieldBroadcasterUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsLive(); ok {
		_spec.SetField(channelstate.FieldIsLive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastOnlineAt(); ok {
		_spec.SetField(channelstate.FieldLastOnlineAt, field.TypeTime, value)
	}
	if _u.mutation.LastOnlineAtCleared() {
		_spec.ClearField(channelstate.FieldLastOnlineAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastOfflineAt(); ok {
		_spec.SetField(channelstate.FieldLastOfflineAt, field.TypeTime, value)
	}
	if _u.mutation.LastOfflineAtCleared() {
		_spec.ClearField(channelstate.FieldLastOfflineAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(channelstate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ChannelState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{channelstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
