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
	"github.com/streamgate/streamgate/ent/botaccount"
	"github.com/streamgate/streamgate/ent/predicate"
)

// BotAccountUpdate is the builder for updating BotAccount entities.
type BotAccountUpdate struct {
	config
	hooks    []Hook
	mutation *BotAccountMutation
}

// Where appends a list predicates to the BotAccountUpdate builder.
func (_u *BotAccountUpdate) Where(ps ...predicate.BotAccount) *BotAccountUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTwitchUserID sets the "twitch_user_id" field.
func (_u *BotAccountUpdate) SetTwitchUserID(v string) *BotAccountUpdate {
	_u.mutation.SetTwitchUserID(v)
	return _u
}

// SetNillableTwitchUserID sets the "twitch_user_id" field if the given value is not nil.
func (_u *BotAccountUpdate) SetNillableTwitchUserID(v *string) *BotAccountUpdate {
	if v != nil {
		_u.SetTwitchUserID(*v)
	}
	return _u
}

// SetTwitchLogin sets the "twitch_login" field.
func (_u *BotAccountUpdate) SetTwitchLogin(v string) *BotAccountUpdate {
	_u.mutation.SetTwitchLogin(v)
	return _u
}

// SetNillableTwitchLogin sets the "twitch_login" field if the given value is not nil.
func (_u *BotAccountUpdate) SetNillableTwitchLogin(v *string) *BotAccountUpdate {
	if v != nil {
		_u.SetTwitchLogin(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *BotAccountUpdate) SetDisplayName(v string) *BotAccountUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *BotAccountUpdate) SetNillableDisplayName(v *string) *BotAccountUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *BotAccountUpdate) ClearDisplayName() *BotAccountUpdate {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetAccessToken sets the "access_token" field.
func (_u *BotAccountUpdate) SetAccessToken(v string) *BotAccountUpdate {
	_u.mutation.SetAccessToken(v)
	return _u
}

// SetNillableAccessToken sets the "access_token" field if the given value is not nil.
func (_u *BotAccountUpdate) SetNillableAccessToken(v *string) *BotAccountUpdate {
	if v != nil {
		_u.SetAccessToken(*v)
	}
	return _u
}

// ClearAccessToken clears the value of the "access_token" field.
func (_u *BotAccountUpdate) ClearAccessToken() *BotAccountUpdate {
	_u.mutation.ClearAccessToken()
	return _u
}

// SetRefreshToken sets the "refresh_token" field.
func (_u *BotAccountUpdate) SetRefreshToken(v string) *BotAccountUpdate {
	_u.mutation.SetRefreshToken(v)
	return _u
}

// SetNillableRefreshToken sets the "refresh_token" field if the given value is not nil.
func (_u *BotAccountUpdate) SetNillableRefreshToken(v *string) *BotAccountUpdate {
	if v != nil {
		_u.SetRefreshToken(*v)
	}
	return _u
}

// ClearRefreshToken clears the value of the "refresh_token" field.
func (_u *BotAccountUpdate) ClearRefreshToken() *BotAccountUpdate {
	_u.mutation.ClearRefreshToken()
	return _u
}

// SetTokenExpiresAt sets the "token_expires_at" field.
func (_u *BotAccountUpdate) SetTokenExpiresAt(v time.Time) *BotAccountUpdate {
	_u.mutation.SetTokenExpiresAt(v)
	return _u
}

// SetNillableTokenExpiresAt sets the "token_expires_at" field if the given value is not nil.
func (_u *BotAccountUpdate) SetNillableTokenExpiresAt(v *time.Time) *BotAccountUpdate {
	if v != nil {
		_u.SetTokenExpiresAt(*v)
	}
	return _u
}

// ClearTokenExpiresAt clears the value of the "token_expires_at" field.
func (_u *BotAccountUpdate) ClearTokenExpiresAt() *BotAccountUpdate {
	_u.mutation.ClearTokenExpiresAt()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *BotAccountUpdate) SetEnabled(v bool) *BotAccountUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *BotAccountUpdate) SetNillableEnabled(v *bool) *BotAccountUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// Mutation returns the BotAccountMutation object of the builder.
func (_u *BotAccountUpdate) Mutation() *BotAccountMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BotAccountUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BotAccountUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BotAccountUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BotAccountUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *BotAccountUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(botaccount.Table, botaccount.Columns, sqlgraph.NewFieldSpec(botaccount.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TwitchUserID(); ok {
		_spec.SetField(botaccount.FieldTwitchUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TwitchLogin(); ok {
		_spec.SetField(botaccount.FieldTwitchLogin, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(botaccount.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(botaccount.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.AccessToken(); ok {
		_spec.SetField(botaccount.FieldAccessToken, field.TypeString, value)
	}
	if _u.mutation.AccessTokenCleared() {
		_spec.ClearField(botaccount.FieldAccessToken, field.TypeString)
	}
	if value, ok := _u.mutation.RefreshToken(); ok {
		_spec.SetField(botaccount.FieldRefreshToken, field.TypeString, value)
	}
	if _u.mutation.RefreshTokenCleared() {
		_spec.ClearField(botaccount.FieldRefreshToken, field.TypeString)
	}
	if value, ok := _u.mutation.TokenExpiresAt(); ok {
		_spec.SetField(botaccount.FieldTokenExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.TokenExpiresAtCleared() {
		_spec.ClearField(botaccount.FieldTokenExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(botaccount.FieldEnabled, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{botaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BotAccountUpdateOne is the builder for updating a single BotAccount entity.
type BotAccountUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BotAccountMutation
}

// SetTwitchUserID sets the "twitch_user_id" field.
func (_u *BotAccountUpdateOne) SetTwitchUserID(v string) *BotAccountUpdateOne {
	_u.mutation.SetTwitchUserID(v)
	return _u
}

// SetNillableTwitchUserID sets the "twitch_user_id" field if the given value is not nil.
func (_u *BotAccountUpdateOne) SetNillableTwitchUserID(v *string) *BotAccountUpdateOne {
	if v != nil {
		_u.SetTwitchUserID(*v)
	}
	return _u
}

// SetTwitchLogin sets the "twitch_login" field.
func (_u *BotAccountUpdateOne) SetTwitchLogin(v string) *BotAccountUpdateOne {
	_u.mutation.SetTwitchLogin(v)
	return _u
}

// SetNillableTwitchLogin sets the "twitch_login" field if the given value is not nil.
func (_u *BotAccountUpdateOne) SetNillableTwitchLogin(v *string) *BotAccountUpdateOne {
	if v != nil {
		_u.SetTwitchLogin(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *BotAccountUpdateOne) SetDisplayName(v string) *BotAccountUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *BotAccountUpdateOne) SetNillableDisplayName(v *string) *BotAccountUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *BotAccountUpdateOne) ClearDisplayName() *BotAccountUpdateOne {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetAccessToken sets the "access_token" field.
func (_u *BotAccountUpdateOne) SetAccessToken(v string) *BotAccountUpdateOne {
	_u.mutation.SetAccessToken(v)
	return _u
}

// SetNillableAccessToken sets the "access_token" field if the given value is not nil.
func (_u *BotAccountUpdateOne) SetNillableAccessToken(v *string) *BotAccountUpdateOne {
	if v != nil {
		_u.SetAccessToken(*v)
	}
	return _u
}

// ClearAccessToken clears the value of the "access_token" field.
func (_u *BotAccountUpdateOne) ClearAccessToken() *BotAccountUpdateOne {
	_u.mutation.ClearAccessToken()
	return _u
}

// SetRefreshToken sets the "refresh_token" field.
func (_u *BotAccountUpdateOne) SetRefreshToken(v string) *BotAccountUpdateOne {
	_u.mutation.SetRefreshToken(v)
	return _u
}

// SetNillableRefreshToken sets the "refresh_token" field if the given value is not nil.
func (_u *BotAccountUpdateOne) SetNillableRefreshToken(v *string) *BotAccountUpdateOne {
	if v != nil {
		_u.SetRefreshToken(*v)
	}
	return _u
}

// ClearRefreshToken clears the value of the "refresh_token" field.
func (_u *BotAccountUpdateOne) ClearRefreshToken() *BotAccountUpdateOne {
	_u.mutation.ClearRefreshToken()
	return _u
}

// SetTokenExpiresAt sets the "token_expires_at" field.
func (_u *BotAccountUpdateOne) SetTokenExpiresAt(v time.Time) *BotAccountUpdateOne {
	_u.mutation.SetTokenExpiresAt(v)
	return _u
}

// SetNillableTokenExpiresAt sets the "token_expires_at" field if the given value is not nil.
func (_u *BotAccountUpdateOne) SetNillableTokenExpiresAt(v *time.Time) *BotAccountUpdateOne {
	if v != nil {
		_u.SetTokenExpiresAt(*v)
	}
	return _u
}

// ClearTokenExpiresAt clears the value of the "token_expires_at" field.
func (_u *BotAccountUpdateOne) ClearTokenExpiresAt() *BotAccountUpdateOne {
	_u.mutation.ClearTokenExpiresAt()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *BotAccountUpdateOne) SetEnabled(v bool) *BotAccountUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *BotAccountUpdateOne) SetNillableEnabled(v *bool) *BotAccountUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// Mutation returns the BotAccountMutation object of the builder.
func (_u *BotAccountUpdateOne) Mutation() *BotAccountMutation {
	return _u.mutation
}

// Where appends a list predicates to the BotAccountUpdate builder.
func (_u *BotAccountUpdateOne) Where(ps ...predicate.BotAccount) *BotAccountUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BotAccountUpdateOne) Select(field string, fields ...string) *BotAccountUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BotAccount entity.
func (_u *BotAccountUpdateOne) Save(ctx context.Context) (*BotAccount, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BotAccountUpdateOne) SaveX(ctx context.Context) *BotAccount {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BotAccountUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BotAccountUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *BotAccountUpdateOne) sqlSave(ctx context.Context) (_node *BotAccount, err error) {
	_spec := sqlgraph.NewUpdateSpec(botaccount.Table, botaccount.Columns, sqlgraph.NewFieldSpec(botaccount.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BotAccount.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, botaccount.FieldID)
		for _, f := range fields {
			if !botaccount.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != botaccount.FieldID {
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
	if value, ok := _u.mutation.TwitchUserID(); ok {
		_spec.SetField(botaccount.FieldTwitchUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TwitchLogin(); ok {
		_spec.SetField(botaccount.FieldTwitchLogin, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(botaccount.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(botaccount.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.AccessToken(); ok {
		_spec.SetField(botaccount.FieldAccessToken, field.TypeString, value)
	}
	if _u.mutation.AccessTokenCleared() {
		_spec.ClearField(botaccount.FieldAccessToken, field.TypeString)
	}
	if value, ok := _u.mutation.RefreshToken(); ok {
		_spec.SetField(botaccount.FieldRefreshToken, field.TypeString, value)
	}
	if _u.mutation.RefreshTokenCleared() {
		_spec.ClearField(botaccount.FieldRefreshToken, field.TypeString)
	}
	if value, ok := _u.mutation.TokenExpiresAt(); ok {
		_spec.SetField(botaccount.FieldTokenExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.TokenExpiresAtCleared() {
		_spec.ClearField(botaccount.FieldTokenExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(botaccount.FieldEnabled, field.TypeBool, value)
	}
	_node = &BotAccount{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{botaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
