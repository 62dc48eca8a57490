// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/streamgate/streamgate/ent/botaccount"
	"github.com/streamgate/streamgate/ent/channelstate"
	"github.com/streamgate/streamgate/ent/predicate"
	"github.com/streamgate/streamgate/ent/serviceaccount"
	"github.com/streamgate/streamgate/ent/servicebotaccess"
	"github.com/streamgate/streamgate/ent/serviceinterest"
	"github.com/streamgate/streamgate/ent/serviceruntimestats"
	"github.com/streamgate/streamgate/ent/twitchsubscription"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBotAccount          = "BotAccount"
	TypeChannelState        = "ChannelState"
	TypeServiceAccount      = "ServiceAccount"
	TypeServiceBotAccess    = "ServiceBotAccess"
	TypeServiceInterest     = "ServiceInterest"
	TypeServiceRuntimeStats = "ServiceRuntimeStats"
	TypeTwitchSubscription  = "TwitchSubscription"
)

// BotAccountMutation represents an operation that mutates the BotAccount nodes in the graph.
type BotAccountMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	twitch_user_id   *string
	twitch_login     *string
	display_name     *string
	access_token     *string
	refresh_token    *string
	token_expires_at *time.Time
	enabled          *bool
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*BotAccount, error)
	predicates       []predicate.BotAccount
}

var _ ent.Mutation = (*BotAccountMutation)(nil)

// botaccountOption allows management of the mutation configuration using functional options.
type botaccountOption func(*BotAccountMutation)

// newBotAccountMutation creates new mutation for the BotAccount entity.
func newBotAccountMutation(c config, op Op, opts ...botaccountOption) *BotAccountMutation {
	m := &BotAccountMutation{
		config:        c,
		op:            op,
		typ:           TypeBotAccount,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBotAccountID sets the ID field of the mutation.
func withBotAccountID(id uuid.UUID) botaccountOption {
	return func(m *BotAccountMutation) {
		var (
			err   error
			once  sync.Once
			value *BotAccount
		)
		m.oldValue = func(ctx context.Context) (*BotAccount, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BotAccount.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBotAccount sets the old BotAccount of the mutation.
func withBotAccount(node *BotAccount) botaccountOption {
	return func(m *BotAccountMutation) {
		m.oldValue = func(context.Context) (*BotAccount, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BotAccountMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BotAccountMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BotAccount entities.
func (m *BotAccountMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BotAccountMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BotAccountMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BotAccount.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTwitchUserID sets the "twitch_user_id" field.
func (m *BotAccountMutation) SetTwitchUserID(s string) {
	m.twitch_user_id = &s
}

// TwitchUserID returns the value of the "twitch_user_id" field in the mutation.
func (m *BotAccountMutation) TwitchUserID() (r string, exists bool) {
	v := m.twitch_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTwitchUserID returns the old "twitch_user_id" field's value of the BotAccount entity.
// If the BotAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotAccountMutation) OldTwitchUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTwitchUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTwitchUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTwitchUserID: %w", err)
	}
	return oldValue.TwitchUserID, nil
}

// ResetTwitchUserID resets all changes to the "twitch_user_id" field.
func (m *BotAccountMutation) ResetTwitchUserID() {
	m.twitch_user_id = nil
}

// SetTwitchLogin sets the "twitch_login" field.
func (m *BotAccountMutation) SetTwitchLogin(s string) {
	m.twitch_login = &s
}

// TwitchLogin returns the value of the "twitch_login" field in the mutation.
func (m *BotAccountMutation) TwitchLogin() (r string, exists bool) {
	v := m.twitch_login
	if v == nil {
		return
	}
	return *v, true
}

// OldTwitchLogin returns the old "twitch_login" field's value of the BotAccount entity.
// If the BotAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotAccountMutation) OldTwitchLogin(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTwitchLogin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTwitchLogin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTwitchLogin: %w", err)
	}
	return oldValue.TwitchLogin, nil
}

// ResetTwitchLogin resets all changes to the "twitch_login" field.
func (m *BotAccountMutation) ResetTwitchLogin() {
	m.twitch_login = nil
}

// SetDisplayName sets the "display_name" field.
func (m *BotAccountMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *BotAccountMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the BotAccount entity.
// If the BotAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotAccountMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ClearDisplayName clears the value of the "display_name" field.
func (m *BotAccountMutation) ClearDisplayName() {
	m.display_name = nil
	m.clearedFields[botaccount.FieldDisplayName] = struct{}{}
}

// DisplayNameCleared returns if the "display_name" field was cleared in this mutation.
func (m *BotAccountMutation) DisplayNameCleared() bool {
	_, ok := m.clearedFields[botaccount.FieldDisplayName]
	return ok
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *BotAccountMutation) ResetDisplayName() {
	m.display_name = nil
	delete(m.clearedFields, botaccount.FieldDisplayName)
}

// SetAccessToken sets the "access_token" field.
func (m *BotAccountMutation) SetAccessToken(s string) {
	m.access_token = &s
}

// AccessToken returns the value of the "access_token" field in the mutation.
func (m *BotAccountMutation) AccessToken() (r string, exists bool) {
	v := m.access_token
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessToken returns the old "access_token" field's value of the BotAccount entity.
// If the BotAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotAccountMutation) OldAccessToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessToken: %w", err)
	}
	return oldValue.AccessToken, nil
}

// ClearAccessToken clears the value of the "access_token" field.
func (m *BotAccountMutation) ClearAccessToken() {
	m.access_token = nil
	m.clearedFields[botaccount.FieldAccessToken] = struct{}{}
}

// AccessTokenCleared returns if the "access_token" field was cleared in this mutation.
func (m *BotAccountMutation) AccessTokenCleared() bool {
	_, ok := m.clearedFields[botaccount.FieldAccessToken]
	return ok
}

// ResetAccessToken resets all changes to the "access_token" field.
func (m *BotAccountMutation) ResetAccessToken() {
	m.access_token = nil
	delete(m.clearedFields, botaccount.FieldAccessToken)
}

// SetRefreshToken sets the "refresh_token" field.
func (m *BotAccountMutation) SetRefreshToken(s string) {
	m.refresh_token = &s
}

// RefreshToken returns the value of the "refresh_token" field in the mutation.
func (m *BotAccountMutation) RefreshToken() (r string, exists bool) {
	v := m.refresh_token
	if v == nil {
		return
	}
	return *v, true
}

// OldRefreshToken returns the old "refresh_token" field's value of the BotAccount entity.
// If the BotAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotAccountMutation) OldRefreshToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefreshToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefreshToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefreshToken: %w", err)
	}
	return oldValue.RefreshToken, nil
}

// ClearRefreshToken clears the value of the "refresh_token" field.
func (m *BotAccountMutation) ClearRefreshToken() {
	m.refresh_token = nil
	m.clearedFields[botaccount.FieldRefreshToken] = struct{}{}
}

// RefreshTokenCleared returns if the "refresh_token" field was cleared in this mutation.
func (m *BotAccountMutation) RefreshTokenCleared() bool {
	_, ok := m.clearedFields[botaccount.FieldRefreshToken]
	return ok
}

// ResetRefreshToken resets all changes to the "refresh_token" field.
func (m *BotAccountMutation) ResetRefreshToken() {
	m.refresh_token = nil
	delete(m.clearedFields, botaccount.FieldRefreshToken)
}

// SetTokenExpiresAt sets the "token_expires_at" field.
func (m *BotAccountMutation) SetTokenExpiresAt(t time.Time) {
	m.token_expires_at = &t
}

// TokenExpiresAt returns the value of the "token_expires_at" field in the mutation.
func (m *BotAccountMutation) TokenExpiresAt() (r time.Time, exists bool) {
	v := m.token_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenExpiresAt returns the old "token_expires_at" field's value of the BotAccount entity.
// If the BotAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotAccountMutation) OldTokenExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenExpiresAt: %w", err)
	}
	return oldValue.TokenExpiresAt, nil
}

// ClearTokenExpiresAt clears the value of the "token_expires_at" field.
func (m *BotAccountMutation) ClearTokenExpiresAt() {
	m.token_expires_at = nil
	m.clearedFields[botaccount.FieldTokenExpiresAt] = struct{}{}
}

// TokenExpiresAtCleared returns if the "token_expires_at" field was cleared in this mutation.
func (m *BotAccountMutation) TokenExpiresAtCleared() bool {
	_, ok := m.clearedFields[botaccount.FieldTokenExpiresAt]
	return ok
}

// ResetTokenExpiresAt resets all changes to the "token_expires_at" field.
func (m *BotAccountMutation) ResetTokenExpiresAt() {
	m.token_expires_at = nil
	delete(m.clearedFields, botaccount.FieldTokenExpiresAt)
}

// SetEnabled sets the "enabled" field.
func (m *BotAccountMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *BotAccountMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the BotAccount entity.
// If the BotAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotAccountMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *BotAccountMutation) ResetEnabled() {
	m.enabled = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BotAccountMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BotAccountMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BotAccount entity.
// If the BotAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotAccountMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BotAccountMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the BotAccountMutation builder.
func (m *BotAccountMutation) Where(ps ...predicate.BotAccount) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BotAccountMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BotAccountMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BotAccount, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BotAccountMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BotAccountMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BotAccount).
func (m *BotAccountMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BotAccountMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.twitch_user_id != nil {
		fields = append(fields, botaccount.FieldTwitchUserID)
	}
	if m.twitch_login != nil {
		fields = append(fields, botaccount.FieldTwitchLogin)
	}
	if m.display_name != nil {
		fields = append(fields, botaccount.FieldDisplayName)
	}
	if m.access_token != nil {
		fields = append(fields, botaccount.FieldAccessToken)
	}
	if m.refresh_token != nil {
		fields = append(fields, botaccount.FieldRefreshToken)
	}
	if m.token_expires_at != nil {
		fields = append(fields, botaccount.FieldTokenExpiresAt)
	}
	if m.enabled != nil {
		fields = append(fields, botaccount.FieldEnabled)
	}
	if m.created_at != nil {
		fields = append(fields, botaccount.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BotAccountMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case botaccount.FieldTwitchUserID:
		return m.TwitchUserID()
	case botaccount.FieldTwitchLogin:
		return m.TwitchLogin()
	case botaccount.FieldDisplayName:
		return m.DisplayName()
	case botaccount.FieldAccessToken:
		return m.AccessToken()
	case botaccount.FieldRefreshToken:
		return m.RefreshToken()
	case botaccount.FieldTokenExpiresAt:
		return m.TokenExpiresAt()
	case botaccount.FieldEnabled:
		return m.Enabled()
	case botaccount.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BotAccountMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case botaccount.FieldTwitchUserID:
		return m.OldTwitchUserID(ctx)
	case botaccount.FieldTwitchLogin:
		return m.OldTwitchLogin(ctx)
	case botaccount.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case botaccount.FieldAccessToken:
		return m.OldAccessToken(ctx)
	case botaccount.FieldRefreshToken:
		return m.OldRefreshToken(ctx)
	case botaccount.FieldTokenExpiresAt:
		return m.OldTokenExpiresAt(ctx)
	case botaccount.FieldEnabled:
		return m.OldEnabled(ctx)
	case botaccount.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BotAccount field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BotAccountMutation) SetField(name string, value ent.Value) error {
	switch name {
	case botaccount.FieldTwitchUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTwitchUserID(v)
		return nil
	case botaccount.FieldTwitchLogin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTwitchLogin(v)
		return nil
	case botaccount.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case botaccount.FieldAccessToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessToken(v)
		return nil
	case botaccount.FieldRefreshToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefreshToken(v)
		return nil
	case botaccount.FieldTokenExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenExpiresAt(v)
		return nil
	case botaccount.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case botaccount.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BotAccount field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BotAccountMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BotAccountMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BotAccountMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown BotAccount numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BotAccountMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(botaccount.FieldDisplayName) {
		fields = append(fields, botaccount.FieldDisplayName)
	}
	if m.FieldCleared(botaccount.FieldAccessToken) {
		fields = append(fields, botaccount.FieldAccessToken)
	}
	if m.FieldCleared(botaccount.FieldRefreshToken) {
		fields = append(fields, botaccount.FieldRefreshToken)
	}
	if m.FieldCleared(botaccount.FieldTokenExpiresAt) {
		fields = append(fields, botaccount.FieldTokenExpiresAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BotAccountMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BotAccountMutation) ClearField(name string) error {
	switch name {
	case botaccount.FieldDisplayName:
		m.ClearDisplayName()
		return nil
	case botaccount.FieldAccessToken:
		m.ClearAccessToken()
		return nil
	case botaccount.FieldRefreshToken:
		m.ClearRefreshToken()
		return nil
	case botaccount.FieldTokenExpiresAt:
		m.ClearTokenExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown BotAccount nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BotAccountMutation) ResetField(name string) error {
	switch name {
	case botaccount.FieldTwitchUserID:
		m.ResetTwitchUserID()
		return nil
	case botaccount.FieldTwitchLogin:
		m.ResetTwitchLogin()
		return nil
	case botaccount.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case botaccount.FieldAccessToken:
		m.ResetAccessToken()
		return nil
	case botaccount.FieldRefreshToken:
		m.ResetRefreshToken()
		return nil
	case botaccount.FieldTokenExpiresAt:
		m.ResetTokenExpiresAt()
		return nil
	case botaccount.FieldEnabled:
		m.ResetEnabled()
		return nil
	case botaccount.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown BotAccount field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BotAccountMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BotAccountMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BotAccountMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BotAccountMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BotAccountMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BotAccountMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BotAccountMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BotAccount unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BotAccountMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BotAccount edge %s", name)
}

// ChannelStateMutation represents an operation that mutates the ChannelState nodes in the graph.
type ChannelStateMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	broadcaster_user_id *string
	is_live             *bool
	last_online_at      *time.Time
	last_offline_at     *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*ChannelState, error)
	predicates          []predicate.ChannelState
}

var _ ent.Mutation = (*ChannelStateMutation)(nil)

// channelstateOption allows management of the mutation configuration using functional options.
type channelstateOption func(*ChannelStateMutation)

// newChannelStateMutation creates new mutation for the ChannelState entity.
func newChannelStateMutation(c config, op Op, opts ...channelstateOption) *ChannelStateMutation {
	m := &ChannelStateMutation{
		config:        c,
		op:            op,
		typ:           TypeChannelState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChannelStateID sets the ID field of the mutation.
func withChannelStateID(id uuid.UUID) channelstateOption {
	return func(m *ChannelStateMutation) {
		var (
			err   error
			once  sync.Once
			value *ChannelState
		)
		m.oldValue = func(ctx context.Context) (*ChannelState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChannelState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChannelState sets the old ChannelState of the mutation.
func withChannelState(node *ChannelState) channelstateOption {
	return func(m *ChannelStateMutation) {
		m.oldValue = func(context.Context) (*ChannelState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChannelStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChannelStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChannelState entities.
func (m *ChannelStateMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChannelStateMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChannelStateMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChannelState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBroadcasterUserID sets the "broadcaster_user_id" field.
func (m *ChannelStateMutation) SetBroadcasterUserID(s string) {
	m.broadcaster_user_id = &s
}

// BroadcasterUserID returns the value of the "broadcaster_user_id" field in the mutation.
func (m *ChannelStateMutation) BroadcasterUserID() (r string, exists bool) {
	v := m.broadcaster_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBroadcasterUserID returns the old "broadcaster_user_id" field's value of the ChannelState entity.
// If the ChannelState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelStateMutation) OldBroadcasterUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBroadcasterUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBroadcasterUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBroadcasterUserID: %w", err)
	}
	return oldValue.BroadcasterUserID, nil
}

// ResetBroadcasterUserID resets all changes to the "broadcaster_user_id" field.
func (m *ChannelStateMutation) ResetBroadcasterUserID() {
	m.broadcaster_user_id = nil
}

// SetIsLive sets the "is_live" field.
func (m *ChannelStateMutation) SetIsLive(b bool) {
	m.is_live = &b
}

// IsLive returns the value of the "is_live" field in the mutation.
func (m *ChannelStateMutation) IsLive() (r bool, exists bool) {
	v := m.is_live
	if v == nil {
		return
	}
	return *v, true
}

// OldIsLive returns the old "is_live" field's value of the ChannelState entity.
// If the ChannelState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelStateMutation) OldIsLive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsLive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsLive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsLive: %w", err)
	}
	return oldValue.IsLive, nil
}

// ResetIsLive resets all changes to the "is_live" field.
func (m *ChannelStateMutation) ResetIsLive() {
	m.is_live = nil
}

// SetLastOnlineAt sets the "last_online_at" field.
func (m *ChannelStateMutation) SetLastOnlineAt(t time.Time) {
	m.last_online_at = &t
}

// LastOnlineAt returns the value of the "last_online_at" field in the mutation.
func (m *ChannelStateMutation) LastOnlineAt() (r time.Time, exists bool) {
	v := m.last_online_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastOnlineAt returns the old "last_online_at" field's value of the ChannelState entity.
// If the ChannelState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelStateMutation) OldLastOnlineAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastOnlineAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastOnlineAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastOnlineAt: %w", err)
	}
	return oldValue.LastOnlineAt, nil
}

// ClearLastOnlineAt clears the value of the "last_online_at" field.
func (m *ChannelStateMutation) ClearLastOnlineAt() {
	m.last_online_at = nil
	m.clearedFields[channelstate.FieldLastOnlineAt] = struct{}{}
}

// LastOnlineAtCleared returns if the "last_online_at" field was cleared in this mutation.
func (m *ChannelStateMutation) LastOnlineAtCleared() bool {
	_, ok := m.clearedFields[channelstate.FieldLastOnlineAt]
	return ok
}

// ResetLastOnlineAt resets all changes to the "last_online_at" field.
func (m *ChannelStateMutation) ResetLastOnlineAt() {
	m.last_online_at = nil
	delete(m.clearedFields, channelstate.FieldLastOnlineAt)
}

// SetLastOfflineAt sets the "last_offline_at" field.
func (m *ChannelStateMutation) SetLastOfflineAt(t time.Time) {
	m.last_offline_at = &t
}

// LastOfflineAt returns the value of the "last_offline_at" field in the mutation.
func (m *ChannelStateMutation) LastOfflineAt() (r time.Time, exists bool) {
	v := m.last_offline_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastOfflineAt returns the old "last_offline_at" field's value of the ChannelState entity.
// If the ChannelState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelStateMutation) OldLastOfflineAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastOfflineAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastOfflineAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastOfflineAt: %w", err)
	}
	return oldValue.LastOfflineAt, nil
}

// ClearLastOfflineAt clears the value of the "last_offline_at" field.
func (m *ChannelStateMutation) ClearLastOfflineAt() {
	m.last_offline_at = nil
	m.clearedFields[channelstate.FieldLastOfflineAt] = struct{}{}
}

// LastOfflineAtCleared returns if the "last_offline_at" field was cleared in this mutation.
func (m *ChannelStateMutation) LastOfflineAtCleared() bool {
	_, ok := m.clearedFields[channelstate.FieldLastOfflineAt]
	return ok
}

// ResetLastOfflineAt resets all changes to the "last_offline_at" field.
func (m *ChannelStateMutation) ResetLastOfflineAt() {
	m.last_offline_at = nil
	delete(m.clearedFields, channelstate.FieldLastOfflineAt)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ChannelStateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ChannelStateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ChannelState entity.
// If the ChannelState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelStateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ChannelStateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ChannelStateMutation builder.
func (m *ChannelStateMutation) Where(ps ...predicate.ChannelState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChannelStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChannelStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChannelState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChannelStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChannelStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChannelState).
func (m *ChannelStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChannelStateMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.broadcaster_user_id != nil {
		fields = append(fields, channelstate.FieldBroadcasterUserID)
	}
	if m.is_live != nil {
		fields = append(fields, channelstate.FieldIsLive)
	}
	if m.last_online_at != nil {
		fields = append(fields, channelstate.FieldLastOnlineAt)
	}
	if m.last_offline_at != nil {
		fields = append(fields, channelstate.FieldLastOfflineAt)
	}
	if m.updated_at != nil {
		fields = append(fields, channelstate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChannelStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case channelstate.FieldBroadcasterUserID:
		return m.BroadcasterUserID()
	case channelstate.FieldIsLive:
		return m.IsLive()
	case channelstate.FieldLastOnlineAt:
		return m.LastOnlineAt()
	case channelstate.FieldLastOfflineAt:
		return m.LastOfflineAt()
	case channelstate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChannelStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case channelstate.FieldBroadcasterUserID:
		return m.OldBroadcasterUserID(ctx)
	case channelstate.FieldIsLive:
		return m.OldIsLive(ctx)
	case channelstate.FieldLastOnlineAt:
		return m.OldLastOnlineAt(ctx)
	case channelstate.FieldLastOfflineAt:
		return m.OldLastOfflineAt(ctx)
	case channelstate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChannelState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChannelStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case channelstate.FieldBroadcasterUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBroadcasterUserID(v)
		return nil
	case channelstate.FieldIsLive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsLive(v)
		return nil
	case channelstate.FieldLastOnlineAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastOnlineAt(v)
		return nil
	case channelstate.FieldLastOfflineAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastOfflineAt(v)
		return nil
	case channelstate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChannelState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChannelStateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChannelStateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChannelStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ChannelState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChannelStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(channelstate.FieldLastOnlineAt) {
		fields = append(fields, channelstate.FieldLastOnlineAt)
	}
	if m.FieldCleared(channelstate.FieldLastOfflineAt) {
		fields = append(fields, channelstate.FieldLastOfflineAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChannelStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChannelStateMutation) ClearField(name string) error {
	switch name {
	case channelstate.FieldLastOnlineAt:
		m.ClearLastOnlineAt()
		return nil
	case channelstate.FieldLastOfflineAt:
		m.ClearLastOfflineAt()
		return nil
	}
	return fmt.Errorf("unknown ChannelState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChannelStateMutation) ResetField(name string) error {
	switch name {
	case channelstate.FieldBroadcasterUserID:
		m.ResetBroadcasterUserID()
		return nil
	case channelstate.FieldIsLive:
		m.ResetIsLive()
		return nil
	case channelstate.FieldLastOnlineAt:
		m.ResetLastOnlineAt()
		return nil
	case channelstate.FieldLastOfflineAt:
		m.ResetLastOfflineAt()
		return nil
	case channelstate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChannelState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChannelStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChannelStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChannelStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChannelStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChannelStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChannelStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChannelStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ChannelState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChannelStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ChannelState edge %s", name)
}

// ServiceAccountMutation represents an operation that mutates the ServiceAccount nodes in the graph.
type ServiceAccountMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	name               *string
	client_id          *string
	client_secret_hash *string
	enabled            *bool
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*ServiceAccount, error)
	predicates         []predicate.ServiceAccount
}

var _ ent.Mutation = (*ServiceAccountMutation)(nil)

// serviceaccountOption allows management of the mutation configuration using functional options.
type serviceaccountOption func(*ServiceAccountMutation)

// newServiceAccountMutation creates new mutation for the ServiceAccount entity.
func newServiceAccountMutation(c config, op Op, opts ...serviceaccountOption) *ServiceAccountMutation {
	m := &ServiceAccountMutation{
		config:        c,
		op:            op,
		typ:           TypeServiceAccount,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withServiceAccountID sets the ID field of the mutation.
func withServiceAccountID(id uuid.UUID) serviceaccountOption {
	return func(m *ServiceAccountMutation) {
		var (
			err   error
			once  sync.Once
			value *ServiceAccount
		)
		m.oldValue = func(ctx context.Context) (*ServiceAccount, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ServiceAccount.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withServiceAccount sets the old ServiceAccount of the mutation.
func withServiceAccount(node *ServiceAccount) serviceaccountOption {
	return func(m *ServiceAccountMutation) {
		m.oldValue = func(context.Context) (*ServiceAccount, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ServiceAccountMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ServiceAccountMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ServiceAccount entities.
func (m *ServiceAccountMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ServiceAccountMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ServiceAccountMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ServiceAccount.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ServiceAccountMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ServiceAccountMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ServiceAccount entity.
// If the ServiceAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceAccountMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ServiceAccountMutation) ResetName() {
	m.name = nil
}

// SetClientID sets the "client_id" field.
func (m *ServiceAccountMutation) SetClientID(s string) {
	m.client_id = &s
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *ServiceAccountMutation) ClientID() (r string, exists bool) {
	v := m.client_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the ServiceAccount entity.
// If the ServiceAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceAccountMutation) OldClientID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ResetClientID resets all changes to the "client_id" field.
func (m *ServiceAccountMutation) ResetClientID() {
	m.client_id = nil
}

// SetClientSecretHash sets the "client_secret_hash" field.
func (m *ServiceAccountMutation) SetClientSecretHash(s string) {
	m.client_secret_hash = &s
}

// ClientSecretHash returns the value of the "client_secret_hash" field in the mutation.
func (m *ServiceAccountMutation) ClientSecretHash() (r string, exists bool) {
	v := m.client_secret_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldClientSecretHash returns the old "client_secret_hash" field's value of the ServiceAccount entity.
// If the ServiceAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceAccountMutation) OldClientSecretHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientSecretHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientSecretHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientSecretHash: %w", err)
	}
	return oldValue.ClientSecretHash, nil
}

// ResetClientSecretHash resets all changes to the "client_secret_hash" field.
func (m *ServiceAccountMutation) ResetClientSecretHash() {
	m.client_secret_hash = nil
}

// SetEnabled sets the "enabled" field.
func (m *ServiceAccountMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *ServiceAccountMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the ServiceAccount entity.
// If the ServiceAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceAccountMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *ServiceAccountMutation) ResetEnabled() {
	m.enabled = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ServiceAccountMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ServiceAccountMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ServiceAccount entity.
// If the ServiceAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceAccountMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ServiceAccountMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ServiceAccountMutation builder.
func (m *ServiceAccountMutation) Where(ps ...predicate.ServiceAccount) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ServiceAccountMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ServiceAccountMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ServiceAccount, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ServiceAccountMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ServiceAccountMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ServiceAccount).
func (m *ServiceAccountMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ServiceAccountMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, serviceaccount.FieldName)
	}
	if m.client_id != nil {
		fields = append(fields, serviceaccount.FieldClientID)
	}
	if m.client_secret_hash != nil {
		fields = append(fields, serviceaccount.FieldClientSecretHash)
	}
	if m.enabled != nil {
		fields = append(fields, serviceaccount.FieldEnabled)
	}
	if m.created_at != nil {
		fields = append(fields, serviceaccount.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ServiceAccountMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case serviceaccount.FieldName:
		return m.Name()
	case serviceaccount.FieldClientID:
		return m.ClientID()
	case serviceaccount.FieldClientSecretHash:
		return m.ClientSecretHash()
	case serviceaccount.FieldEnabled:
		return m.Enabled()
	case serviceaccount.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ServiceAccountMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case serviceaccount.FieldName:
		return m.OldName(ctx)
	case serviceaccount.FieldClientID:
		return m.OldClientID(ctx)
	case serviceaccount.FieldClientSecretHash:
		return m.OldClientSecretHash(ctx)
	case serviceaccount.FieldEnabled:
		return m.OldEnabled(ctx)
	case serviceaccount.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ServiceAccount field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServiceAccountMutation) SetField(name string, value ent.Value) error {
	switch name {
	case serviceaccount.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case serviceaccount.FieldClientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case serviceaccount.FieldClientSecretHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientSecretHash(v)
		return nil
	case serviceaccount.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case serviceaccount.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ServiceAccount field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ServiceAccountMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ServiceAccountMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServiceAccountMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ServiceAccount numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ServiceAccountMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ServiceAccountMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ServiceAccountMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ServiceAccount nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ServiceAccountMutation) ResetField(name string) error {
	switch name {
	case serviceaccount.FieldName:
		m.ResetName()
		return nil
	case serviceaccount.FieldClientID:
		m.ResetClientID()
		return nil
	case serviceaccount.FieldClientSecretHash:
		m.ResetClientSecretHash()
		return nil
	case serviceaccount.FieldEnabled:
		m.ResetEnabled()
		return nil
	case serviceaccount.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ServiceAccount field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ServiceAccountMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ServiceAccountMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ServiceAccountMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ServiceAccountMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ServiceAccountMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ServiceAccountMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ServiceAccountMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ServiceAccount unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ServiceAccountMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ServiceAccount edge %s", name)
}

// ServiceBotAccessMutation represents an operation that mutates the ServiceBotAccess nodes in the graph.
type ServiceBotAccessMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	service_account_id *uuid.UUID
	bot_account_id     *uuid.UUID
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*ServiceBotAccess, error)
	predicates         []predicate.ServiceBotAccess
}

var _ ent.Mutation = (*ServiceBotAccessMutation)(nil)

// servicebotaccessOption allows management of the mutation configuration using functional options.
type servicebotaccessOption func(*ServiceBotAccessMutation)

// newServiceBotAccessMutation creates new mutation for the ServiceBotAccess entity.
func newServiceBotAccessMutation(c config, op Op, opts ...servicebotaccessOption) *ServiceBotAccessMutation {
	m := &ServiceBotAccessMutation{
		config:        c,
		op:            op,
		typ:           TypeServiceBotAccess,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withServiceBotAccessID sets the ID field of the mutation.
func withServiceBotAccessID(id uuid.UUID) servicebotaccessOption {
	return func(m *ServiceBotAccessMutation) {
		var (
			err   error
			once  sync.Once
			value *ServiceBotAccess
		)
		m.oldValue = func(ctx context.Context) (*ServiceBotAccess, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ServiceBotAccess.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withServiceBotAccess sets the old ServiceBotAccess of the mutation.
func withServiceBotAccess(node *ServiceBotAccess) servicebotaccessOption {
	return func(m *ServiceBotAccessMutation) {
		m.oldValue = func(context.Context) (*ServiceBotAccess, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ServiceBotAccessMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ServiceBotAccessMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ServiceBotAccess entities.
func (m *ServiceBotAccessMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ServiceBotAccessMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ServiceBotAccessMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ServiceBotAccess.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetServiceAccountID sets the "service_account_id" field.
func (m *ServiceBotAccessMutation) SetServiceAccountID(u uuid.UUID) {
	m.service_account_id = &u
}

// ServiceAccountID returns the value of the "service_account_id" field in the mutation.
func (m *ServiceBotAccessMutation) ServiceAccountID() (r uuid.UUID, exists bool) {
	v := m.service_account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldServiceAccountID returns the old "service_account_id" field's value of the ServiceBotAccess entity.
// If the ServiceBotAccess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceBotAccessMutation) OldServiceAccountID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServiceAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServiceAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServiceAccountID: %w", err)
	}
	return oldValue.ServiceAccountID, nil
}

// ResetServiceAccountID resets all changes to the "service_account_id" field.
func (m *ServiceBotAccessMutation) ResetServiceAccountID() {
	m.service_account_id = nil
}

// SetBotAccountID sets the "bot_account_id" field.
func (m *ServiceBotAccessMutation) SetBotAccountID(u uuid.UUID) {
	m.bot_account_id = &u
}

// BotAccountID returns the value of the "bot_account_id" field in the mutation.
func (m *ServiceBotAccessMutation) BotAccountID() (r uuid.UUID, exists bool) {
	v := m.bot_account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBotAccountID returns the old "bot_account_id" field's value of the ServiceBotAccess entity.
// If the ServiceBotAccess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceBotAccessMutation) OldBotAccountID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBotAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBotAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBotAccountID: %w", err)
	}
	return oldValue.BotAccountID, nil
}

// ResetBotAccountID resets all changes to the "bot_account_id" field.
func (m *ServiceBotAccessMutation) ResetBotAccountID() {
	m.bot_account_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ServiceBotAccessMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ServiceBotAccessMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ServiceBotAccess entity.
// If the ServiceBotAccess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceBotAccessMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ServiceBotAccessMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ServiceBotAccessMutation builder.
func (m *ServiceBotAccessMutation) Where(ps ...predicate.ServiceBotAccess) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ServiceBotAccessMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ServiceBotAccessMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ServiceBotAccess, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ServiceBotAccessMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ServiceBotAccessMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ServiceBotAccess).
func (m *ServiceBotAccessMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ServiceBotAccessMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.service_account_id != nil {
		fields = append(fields, servicebotaccess.FieldServiceAccountID)
	}
	if m.bot_account_id != nil {
		fields = append(fields, servicebotaccess.FieldBotAccountID)
	}
	if m.created_at != nil {
		fields = append(fields, servicebotaccess.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ServiceBotAccessMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case servicebotaccess.FieldServiceAccountID:
		return m.ServiceAccountID()
	case servicebotaccess.FieldBotAccountID:
		return m.BotAccountID()
	case servicebotaccess.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ServiceBotAccessMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case servicebotaccess.FieldServiceAccountID:
		return m.OldServiceAccountID(ctx)
	case servicebotaccess.FieldBotAccountID:
		return m.OldBotAccountID(ctx)
	case servicebotaccess.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ServiceBotAccess field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServiceBotAccessMutation) SetField(name string, value ent.Value) error {
	switch name {
	case servicebotaccess.FieldServiceAccountID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServiceAccountID(v)
		return nil
	case servicebotaccess.FieldBotAccountID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBotAccountID(v)
		return nil
	case servicebotaccess.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ServiceBotAccess field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ServiceBotAccessMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ServiceBotAccessMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServiceBotAccessMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ServiceBotAccess numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ServiceBotAccessMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ServiceBotAccessMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ServiceBotAccessMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ServiceBotAccess nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ServiceBotAccessMutation) ResetField(name string) error {
	switch name {
	case servicebotaccess.FieldServiceAccountID:
		m.ResetServiceAccountID()
		return nil
	case servicebotaccess.FieldBotAccountID:
		m.ResetBotAccountID()
		return nil
	case servicebotaccess.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ServiceBotAccess field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ServiceBotAccessMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ServiceBotAccessMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ServiceBotAccessMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ServiceBotAccessMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ServiceBotAccessMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ServiceBotAccessMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ServiceBotAccessMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ServiceBotAccess unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ServiceBotAccessMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ServiceBotAccess edge %s", name)
}

// ServiceInterestMutation represents an operation that mutates the ServiceInterest nodes in the graph.
type ServiceInterestMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	service_account_id  *uuid.UUID
	bot_account_id      *uuid.UUID
	event_type          *string
	broadcaster_user_id *string
	transport           *serviceinterest.Transport
	webhook_url         *string
	last_heartbeat_at   *time.Time
	created_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*ServiceInterest, error)
	predicates          []predicate.ServiceInterest
}

var _ ent.Mutation = (*ServiceInterestMutation)(nil)

// serviceinterestOption allows management of the mutation configuration using functional options.
type serviceinterestOption func(*ServiceInterestMutation)

// newServiceInterestMutation creates new mutation for the ServiceInterest entity.
func newServiceInterestMutation(c config, op Op, opts ...serviceinterestOption) *ServiceInterestMutation {
	m := &ServiceInterestMutation{
		config:        c,
		op:            op,
		typ:           TypeServiceInterest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withServiceInterestID sets the ID field of the mutation.
func withServiceInterestID(id uuid.UUID) serviceinterestOption {
	return func(m *ServiceInterestMutation) {
		var (
			err   error
			once  sync.Once
			value *ServiceInterest
		)
		m.oldValue = func(ctx context.Context) (*ServiceInterest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ServiceInterest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withServiceInterest sets the old ServiceInterest of the mutation.
func withServiceInterest(node *ServiceInterest) serviceinterestOption {
	return func(m *ServiceInterestMutation) {
		m.oldValue = func(context.Context) (*ServiceInterest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ServiceInterestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ServiceInterestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ServiceInterest entities.
func (m *ServiceInterestMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ServiceInterestMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ServiceInterestMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ServiceInterest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetServiceAccountID sets the "service_account_id" field.
func (m *ServiceInterestMutation) SetServiceAccountID(u uuid.UUID) {
	m.service_account_id = &u
}

// ServiceAccountID returns the value of the "service_account_id" field in the mutation.
func (m *ServiceInterestMutation) ServiceAccountID() (r uuid.UUID, exists bool) {
	v := m.service_account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldServiceAccountID returns the old "service_account_id" field's value of the ServiceInterest entity.
// If the ServiceInterest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceInterestMutation) OldServiceAccountID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServiceAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServiceAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServiceAccountID: %w", err)
	}
	return oldValue.ServiceAccountID, nil
}

// ResetServiceAccountID resets all changes to the "service_account_id" field.
func (m *ServiceInterestMutation) ResetServiceAccountID() {
	m.service_account_id = nil
}

// SetBotAccountID sets the "bot_account_id" field.
func (m *ServiceInterestMutation) SetBotAccountID(u uuid.UUID) {
	m.bot_account_id = &u
}

// BotAccountID returns the value of the "bot_account_id" field in the mutation.
func (m *ServiceInterestMutation) BotAccountID() (r uuid.UUID, exists bool) {
	v := m.bot_account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBotAccountID returns the old "bot_account_id" field's value of the ServiceInterest entity.
// If the ServiceInterest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceInterestMutation) OldBotAccountID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBotAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBotAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBotAccountID: %w", err)
	}
	return oldValue.BotAccountID, nil
}

// ResetBotAccountID resets all changes to the "bot_account_id" field.
func (m *ServiceInterestMutation) ResetBotAccountID() {
	m.bot_account_id = nil
}

// SetEventType sets the "event_type" field.
func (m *ServiceInterestMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *ServiceInterestMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the ServiceInterest entity.
// If the ServiceInterest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceInterestMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *ServiceInterestMutation) ResetEventType() {
	m.event_type = nil
}

// SetBroadcasterUserID sets the "broadcaster_user_id" field.
func (m *ServiceInterestMutation) SetBroadcasterUserID(s string) {
	m.broadcaster_user_id = &s
}

// BroadcasterUserID returns the value of the "broadcaster_user_id" field in the mutation.
func (m *ServiceInterestMutation) BroadcasterUserID() (r string, exists bool) {
	v := m.broadcaster_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBroadcasterUserID returns the old "broadcaster_user_id" field's value of the ServiceInterest entity.
// If the ServiceInterest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceInterestMutation) OldBroadcasterUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBroadcasterUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBroadcasterUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBroadcasterUserID: %w", err)
	}
	return oldValue.BroadcasterUserID, nil
}

// ResetBroadcasterUserID resets all changes to the "broadcaster_user_id" field.
func (m *ServiceInterestMutation) ResetBroadcasterUserID() {
	m.broadcaster_user_id = nil
}

// SetTransport sets the "transport" field.
func (m *ServiceInterestMutation) SetTransport(s serviceinterest.Transport) {
	m.transport = &s
}

// Transport returns the value of the "transport" field in the mutation.
func (m *ServiceInterestMutation) Transport() (r serviceinterest.Transport, exists bool) {
	v := m.transport
	if v == nil {
		return
	}
	return *v, true
}

// OldTransport returns the old "transport" field's value of the ServiceInterest entity.
// If the ServiceInterest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceInterestMutation) OldTransport(ctx context.Context) (v serviceinterest.Transport, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransport is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransport requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransport: %w", err)
	}
	return oldValue.Transport, nil
}

// ResetTransport resets all changes to the "transport" field.
func (m *ServiceInterestMutation) ResetTransport() {
	m.transport = nil
}

// SetWebhookURL sets the "webhook_url" field.
func (m *ServiceInterestMutation) SetWebhookURL(s string) {
	m.webhook_url = &s
}

// WebhookURL returns the value of the "webhook_url" field in the mutation.
func (m *ServiceInterestMutation) WebhookURL() (r string, exists bool) {
	v := m.webhook_url
	if v == nil {
		return
	}
	return *v, true
}

// OldWebhookURL returns the old "webhook_url" field's value of the ServiceInterest entity.
// If the ServiceInterest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceInterestMutation) OldWebhookURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebhookURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebhookURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebhookURL: %w", err)
	}
	return oldValue.WebhookURL, nil
}

// ResetWebhookURL resets all changes to the "webhook_url" field.
func (m *ServiceInterestMutation) ResetWebhookURL() {
	m.webhook_url = nil
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *ServiceInterestMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *ServiceInterestMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the ServiceInterest entity.
// If the ServiceInterest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceInterestMutation) OldLastHeartbeatAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *ServiceInterestMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ServiceInterestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ServiceInterestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ServiceInterest entity.
// If the ServiceInterest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceInterestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ServiceInterestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ServiceInterestMutation builder.
func (m *ServiceInterestMutation) Where(ps ...predicate.ServiceInterest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ServiceInterestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ServiceInterestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ServiceInterest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ServiceInterestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ServiceInterestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ServiceInterest).
func (m *ServiceInterestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ServiceInterestMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.service_account_id != nil {
		fields = append(fields, serviceinterest.FieldServiceAccountID)
	}
	if m.bot_account_id != nil {
		fields = append(fields, serviceinterest.FieldBotAccountID)
	}
	if m.event_type != nil {
		fields = append(fields, serviceinterest.FieldEventType)
	}
	if m.broadcaster_user_id != nil {
		fields = append(fields, serviceinterest.FieldBroadcasterUserID)
	}
	if m.transport != nil {
		fields = append(fields, serviceinterest.FieldTransport)
	}
	if m.webhook_url != nil {
		fields = append(fields, serviceinterest.FieldWebhookURL)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, serviceinterest.FieldLastHeartbeatAt)
	}
	if m.created_at != nil {
		fields = append(fields, serviceinterest.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ServiceInterestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case serviceinterest.FieldServiceAccountID:
		return m.ServiceAccountID()
	case serviceinterest.FieldBotAccountID:
		return m.BotAccountID()
	case serviceinterest.FieldEventType:
		return m.EventType()
	case serviceinterest.FieldBroadcasterUserID:
		return m.BroadcasterUserID()
	case serviceinterest.FieldTransport:
		return m.Transport()
	case serviceinterest.FieldWebhookURL:
		return m.WebhookURL()
	case serviceinterest.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case serviceinterest.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ServiceInterestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case serviceinterest.FieldServiceAccountID:
		return m.OldServiceAccountID(ctx)
	case serviceinterest.FieldBotAccountID:
		return m.OldBotAccountID(ctx)
	case serviceinterest.FieldEventType:
		return m.OldEventType(ctx)
	case serviceinterest.FieldBroadcasterUserID:
		return m.OldBroadcasterUserID(ctx)
	case serviceinterest.FieldTransport:
		return m.OldTransport(ctx)
	case serviceinterest.FieldWebhookURL:
		return m.OldWebhookURL(ctx)
	case serviceinterest.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case serviceinterest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ServiceInterest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServiceInterestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case serviceinterest.FieldServiceAccountID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServiceAccountID(v)
		return nil
	case serviceinterest.FieldBotAccountID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBotAccountID(v)
		return nil
	case serviceinterest.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case serviceinterest.FieldBroadcasterUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBroadcasterUserID(v)
		return nil
	case serviceinterest.FieldTransport:
		v, ok := value.(serviceinterest.Transport)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransport(v)
		return nil
	case serviceinterest.FieldWebhookURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebhookURL(v)
		return nil
	case serviceinterest.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case serviceinterest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ServiceInterest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ServiceInterestMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ServiceInterestMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServiceInterestMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ServiceInterest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ServiceInterestMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ServiceInterestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ServiceInterestMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ServiceInterest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ServiceInterestMutation) ResetField(name string) error {
	switch name {
	case serviceinterest.FieldServiceAccountID:
		m.ResetServiceAccountID()
		return nil
	case serviceinterest.FieldBotAccountID:
		m.ResetBotAccountID()
		return nil
	case serviceinterest.FieldEventType:
		m.ResetEventType()
		return nil
	case serviceinterest.FieldBroadcasterUserID:
		m.ResetBroadcasterUserID()
		return nil
	case serviceinterest.FieldTransport:
		m.ResetTransport()
		return nil
	case serviceinterest.FieldWebhookURL:
		m.ResetWebhookURL()
		return nil
	case serviceinterest.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case serviceinterest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ServiceInterest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ServiceInterestMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ServiceInterestMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ServiceInterestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ServiceInterestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ServiceInterestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ServiceInterestMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ServiceInterestMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ServiceInterest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ServiceInterestMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ServiceInterest edge %s", name)
}

// ServiceRuntimeStatsMutation represents an operation that mutates the ServiceRuntimeStats nodes in the graph.
type ServiceRuntimeStatsMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	service_account_id       *uuid.UUID
	total_api_requests       *int64
	addtotal_api_requests    *int64
	ws_connects              *int64
	addws_connects           *int64
	ws_disconnects           *int64
	addws_disconnects        *int64
	active_ws_connections    *int64
	addactive_ws_connections *int64
	events_sent_ws           *int64
	addevents_sent_ws        *int64
	events_sent_webhook      *int64
	addevents_sent_webhook   *int64
	webhook_failures         *int64
	addwebhook_failures      *int64
	last_connect_at          *time.Time
	last_disconnect_at       *time.Time
	last_event_at            *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*ServiceRuntimeStats, error)
	predicates               []predicate.ServiceRuntimeStats
}

var _ ent.Mutation = (*ServiceRuntimeStatsMutation)(nil)

// serviceruntimestatsOption allows management of the mutation configuration using functional options.
type serviceruntimestatsOption func(*ServiceRuntimeStatsMutation)

// newServiceRuntimeStatsMutation creates new mutation for the ServiceRuntimeStats entity.
func newServiceRuntimeStatsMutation(c config, op Op, opts ...serviceruntimestatsOption) *ServiceRuntimeStatsMutation {
	m := &ServiceRuntimeStatsMutation{
		config:        c,
		op:            op,
		typ:           TypeServiceRuntimeStats,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withServiceRuntimeStatsID sets the ID field of the mutation.
func withServiceRuntimeStatsID(id uuid.UUID) serviceruntimestatsOption {
	return func(m *ServiceRuntimeStatsMutation) {
		var (
			err   error
			once  sync.Once
			value *ServiceRuntimeStats
		)
		m.oldValue = func(ctx context.Context) (*ServiceRuntimeStats, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ServiceRuntimeStats.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withServiceRuntimeStats sets the old ServiceRuntimeStats of the mutation.
func withServiceRuntimeStats(node *ServiceRuntimeStats) serviceruntimestatsOption {
	return func(m *ServiceRuntimeStatsMutation) {
		m.oldValue = func(context.Context) (*ServiceRuntimeStats, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ServiceRuntimeStatsMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ServiceRuntimeStatsMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ServiceRuntimeStats entities.
func (m *ServiceRuntimeStatsMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ServiceRuntimeStatsMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ServiceRuntimeStatsMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ServiceRuntimeStats.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetServiceAccountID sets the "service_account_id" field.
func (m *ServiceRuntimeStatsMutation) SetServiceAccountID(u uuid.UUID) {
	m.service_account_id = &u
}

// ServiceAccountID returns the value of the "service_account_id" field in the mutation.
func (m *ServiceRuntimeStatsMutation) ServiceAccountID() (r uuid.UUID, exists bool) {
	v := m.service_account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldServiceAccountID returns the old "service_account_id" field's value of the ServiceRuntimeStats entity.
// If the ServiceRuntimeStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceRuntimeStatsMutation) OldServiceAccountID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServiceAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServiceAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServiceAccountID: %w", err)
	}
	return oldValue.ServiceAccountID, nil
}

// ResetServiceAccountID resets all changes to the "service_account_id" field.
func (m *ServiceRuntimeStatsMutation) ResetServiceAccountID() {
	m.service_account_id = nil
}

// SetTotalAPIRequests sets the "total_api_requests" field.
func (m *ServiceRuntimeStatsMutation) SetTotalAPIRequests(i int64) {
	m.total_api_requests = &i
	m.addtotal_api_requests = nil
}

// TotalAPIRequests returns the value of the "total_api_requests" field in the mutation.
func (m *ServiceRuntimeStatsMutation) TotalAPIRequests() (r int64, exists bool) {
	v := m.total_api_requests
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAPIRequests returns the old "total_api_requests" field's value of the ServiceRuntimeStats entity.
// If the ServiceRuntimeStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceRuntimeStatsMutation) OldTotalAPIRequests(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAPIRequests is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAPIRequests requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAPIRequests: %w", err)
	}
	return oldValue.TotalAPIRequests, nil
}

// AddTotalAPIRequests adds i to the "total_api_requests" field.
func (m *ServiceRuntimeStatsMutation) AddTotalAPIRequests(i int64) {
	if m.addtotal_api_requests != nil {
		*m.addtotal_api_requests += i
	} else {
		m.addtotal_api_requests = &i
	}
}

// AddedTotalAPIRequests returns the value that was added to the "total_api_requests" field in this mutation.
func (m *ServiceRuntimeStatsMutation) AddedTotalAPIRequests() (r int64, exists bool) {
	v := m.addtotal_api_requests
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalAPIRequests resets all changes to the "total_api_requests" field.
func (m *ServiceRuntimeStatsMutation) ResetTotalAPIRequests() {
	m.total_api_requests = nil
	m.addtotal_api_requests = nil
}

// SetWsConnects sets the "ws_connects" field.
func (m *ServiceRuntimeStatsMutation) SetWsConnects(i int64) {
	m.ws_connects = &i
	m.addws_connects = nil
}

// WsConnects returns the value of the "ws_connects" field in the mutation.
func (m *ServiceRuntimeStatsMutation) WsConnects() (r int64, exists bool) {
	v := m.ws_connects
	if v == nil {
		return
	}
	return *v, true
}

// OldWsConnects returns the old "ws_connects" field's value of the ServiceRuntimeStats entity.
// If the ServiceRuntimeStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceRuntimeStatsMutation) OldWsConnects(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWsConnects is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWsConnects requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWsConnects: %w", err)
	}
	return oldValue.WsConnects, nil
}

// AddWsConnects adds i to the "ws_connects" field.
func (m *ServiceRuntimeStatsMutation) AddWsConnects(i int64) {
	if m.addws_connects != nil {
		*m.addws_connects += i
	} else {
		m.addws_connects = &i
	}
}

// AddedWsConnects returns the value that was added to the "ws_connects" field in this mutation.
func (m *ServiceRuntimeStatsMutation) AddedWsConnects() (r int64, exists bool) {
	v := m.addws_connects
	if v == nil {
		return
	}
	return *v, true
}

// ResetWsConnects resets all changes to the "ws_connects" field.
func (m *ServiceRuntimeStatsMutation) ResetWsConnects() {
	m.ws_connects = nil
	m.addws_connects = nil
}

// SetWsDisconnects sets the "ws_disconnects" field.
func (m *ServiceRuntimeStatsMutation) SetWsDisconnects(i int64) {
	m.ws_disconnects = &i
	m.addws_disconnects = nil
}

// WsDisconnects returns the value of the "ws_disconnects" field in the mutation.
func (m *ServiceRuntimeStatsMutation) WsDisconnects() (r int64, exists bool) {
	v := m.ws_disconnects
	if v == nil {
		return
	}
	return *v, true
}

// OldWsDisconnects returns the old "ws_disconnects" field's value of the ServiceRuntimeStats entity.
// If the ServiceRuntimeStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceRuntimeStatsMutation) OldWsDisconnects(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWsDisconnects is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWsDisconnects requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWsDisconnects: %w", err)
	}
	return oldValue.WsDisconnects, nil
}

// AddWsDisconnects adds i to the "ws_disconnects" field.
func (m *ServiceRuntimeStatsMutation) AddWsDisconnects(i int64) {
	if m.addws_disconnects != nil {
		*m.addws_disconnects += i
	} else {
		m.addws_disconnects = &i
	}
}

// AddedWsDisconnects returns the value that was added to the "ws_disconnects" field in this mutation.
func (m *ServiceRuntimeStatsMutation) AddedWsDisconnects() (r int64, exists bool) {
	v := m.addws_disconnects
	if v == nil {
		return
	}
	return *v, true
}

// ResetWsDisconnects resets all changes to the "ws_disconnects" field.
func (m *ServiceRuntimeStatsMutation) ResetWsDisconnects() {
	m.ws_disconnects = nil
	m.addws_disconnects = nil
}

// SetActiveWsConnections sets the "active_ws_connections" field.
func (m *ServiceRuntimeStatsMutation) SetActiveWsConnections(i int64) {
	m.active_ws_connections = &i
	m.addactive_ws_connections = nil
}

// ActiveWsConnections returns the value of the "active_ws_connections" field in the mutation.
func (m *ServiceRuntimeStatsMutation) ActiveWsConnections() (r int64, exists bool) {
	v := m.active_ws_connections
	if v == nil {
		return
	}
	return *v, true
}

// OldActiveWsConnections returns the old "active_ws_connections" field's value of the ServiceRuntimeStats entity.
// If the ServiceRuntimeStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceRuntimeStatsMutation) OldActiveWsConnections(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActiveWsConnections is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActiveWsConnections requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActiveWsConnections: %w", err)
	}
	return oldValue.ActiveWsConnections, nil
}

// AddActiveWsConnections adds i to the "active_ws_connections" field.
func (m *ServiceRuntimeStatsMutation) AddActiveWsConnections(i int64) {
	if m.addactive_ws_connections != nil {
		*m.addactive_ws_connections += i
	} else {
		m.addactive_ws_connections = &i
	}
}

// AddedActiveWsConnections returns the value that was added to the "active_ws_connections" field in this mutation.
func (m *ServiceRuntimeStatsMutation) AddedActiveWsConnections() (r int64, exists bool) {
	v := m.addactive_ws_connections
	if v == nil {
		return
	}
	return *v, true
}

// ResetActiveWsConnections resets all changes to the "active_ws_connections" field.
func (m *ServiceRuntimeStatsMutation) ResetActiveWsConnections() {
	m.active_ws_connections = nil
	m.addactive_ws_connections = nil
}

// SetEventsSentWs sets the "events_sent_ws" field.
func (m *ServiceRuntimeStatsMutation) SetEventsSentWs(i int64) {
	m.events_sent_ws = &i
	m.addevents_sent_ws = nil
}

// EventsSentWs returns the value of the "events_sent_ws" field in the mutation.
func (m *ServiceRuntimeStatsMutation) EventsSentWs() (r int64, exists bool) {
	v := m.events_sent_ws
	if v == nil {
		return
	}
	return *v, true
}

// OldEventsSentWs returns the old "events_sent_ws" field's value of the ServiceRuntimeStats entity.
// If the ServiceRuntimeStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceRuntimeStatsMutation) OldEventsSentWs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventsSentWs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventsSentWs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventsSentWs: %w", err)
	}
	return oldValue.EventsSentWs, nil
}

// AddEventsSentWs adds i to the "events_sent_ws" field.
func (m *ServiceRuntimeStatsMutation) AddEventsSentWs(i int64) {
	if m.addevents_sent_ws != nil {
		*m.addevents_sent_ws += i
	} else {
		m.addevents_sent_ws = &i
	}
}

// AddedEventsSentWs returns the value that was added to the "events_sent_ws" field in this mutation.
func (m *ServiceRuntimeStatsMutation) AddedEventsSentWs() (r int64, exists bool) {
	v := m.addevents_sent_ws
	if v == nil {
		return
	}
	return *v, true
}

// ResetEventsSentWs resets all changes to the "events_sent_ws" field.
func (m *ServiceRuntimeStatsMutation) ResetEventsSentWs() {
	m.events_sent_ws = nil
	m.addevents_sent_ws = nil
}

// SetEventsSentWebhook sets the "events_sent_webhook" field.
func (m *ServiceRuntimeStatsMutation) SetEventsSentWebhook(i int64) {
	m.events_sent_webhook = &i
	m.addevents_sent_webhook = nil
}

// EventsSentWebhook returns the value of the "events_sent_webhook" field in the mutation.
func (m *ServiceRuntimeStatsMutation) EventsSentWebhook() (r int64, exists bool) {
	v := m.events_sent_webhook
	if v == nil {
		return
	}
	return *v, true
}

// OldEventsSentWebhook returns the old "events_sent_webhook" field's value of the ServiceRuntimeStats entity.
// If the ServiceRuntimeStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceRuntimeStatsMutation) OldEventsSentWebhook(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventsSentWebhook is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventsSentWebhook requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventsSentWebhook: %w", err)
	}
	return oldValue.EventsSentWebhook, nil
}

// AddEventsSentWebhook adds i to the "events_sent_webhook" field.
func (m *ServiceRuntimeStatsMutation) AddEventsSentWebhook(i int64) {
	if m.addevents_sent_webhook != nil {
		*m.addevents_sent_webhook += i
	} else {
		m.addevents_sent_webhook = &i
	}
}

// AddedEventsSentWebhook returns the value that was added to the "events_sent_webhook" field in this mutation.
func (m *ServiceRuntimeStatsMutation) AddedEventsSentWebhook() (r int64, exists bool) {
	v := m.addevents_sent_webhook
	if v == nil {
		return
	}
	return *v, true
}

// ResetEventsSentWebhook resets all changes to the "events_sent_webhook" field.
func (m *ServiceRuntimeStatsMutation) ResetEventsSentWebhook() {
	m.events_sent_webhook = nil
	m.addevents_sent_webhook = nil
}

// SetWebhookFailures sets the "webhook_failures" field.
func (m *ServiceRuntimeStatsMutation) SetWebhookFailures(i int64) {
	m.webhook_failures = &i
	m.addwebhook_failures = nil
}

// WebhookFailures returns the value of the "webhook_failures" field in the mutation.
func (m *ServiceRuntimeStatsMutation) WebhookFailures() (r int64, exists bool) {
	v := m.webhook_failures
	if v == nil {
		return
	}
	return *v, true
}

// OldWebhookFailures returns the old "webhook_failures" field's value of the ServiceRuntimeStats entity.
// If the ServiceRuntimeStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceRuntimeStatsMutation) OldWebhookFailures(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebhookFailures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebhookFailures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebhookFailures: %w", err)
	}
	return oldValue.WebhookFailures, nil
}

// AddWebhookFailures adds i to the "webhook_failures" field.
func (m *ServiceRuntimeStatsMutation) AddWebhookFailures(i int64) {
	if m.addwebhook_failures != nil {
		*m.addwebhook_failures += i
	} else {
		m.addwebhook_failures = &i
	}
}

// AddedWebhookFailures returns the value that was added to the "webhook_failures" field in this mutation.
func (m *ServiceRuntimeStatsMutation) AddedWebhookFailures() (r int64, exists bool) {
	v := m.addwebhook_failures
	if v == nil {
		return
	}
	return *v, true
}

// ResetWebhookFailures resets all changes to the "webhook_failures" field.
func (m *ServiceRuntimeStatsMutation) ResetWebhookFailures() {
	m.webhook_failures = nil
	m.addwebhook_failures = nil
}

// SetLastConnectAt sets the "last_connect_at" field.
func (m *ServiceRuntimeStatsMutation) SetLastConnectAt(t time.Time) {
	m.last_connect_at = &t
}

// LastConnectAt returns the value of the "last_connect_at" field in the mutation.
func (m *ServiceRuntimeStatsMutation) LastConnectAt() (r time.Time, exists bool) {
	v := m.last_connect_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastConnectAt returns the old "last_connect_at" field's value of the ServiceRuntimeStats entity.
// If the ServiceRuntimeStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceRuntimeStatsMutation) OldLastConnectAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastConnectAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastConnectAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastConnectAt: %w", err)
	}
	return oldValue.LastConnectAt, nil
}

// ClearLastConnectAt clears the value of the "last_connect_at" field.
func (m *ServiceRuntimeStatsMutation) ClearLastConnectAt() {
	m.last_connect_at = nil
	m.clearedFields[serviceruntimestats.FieldLastConnectAt] = struct{}{}
}

// LastConnectAtCleared returns if the "last_connect_at" field was cleared in this mutation.
func (m *ServiceRuntimeStatsMutation) LastConnectAtCleared() bool {
	_, ok := m.clearedFields[serviceruntimestats.FieldLastConnectAt]
	return ok
}

// ResetLastConnectAt resets all changes to the "last_connect_at" field.
func (m *ServiceRuntimeStatsMutation) ResetLastConnectAt() {
	m.last_connect_at = nil
	delete(m.clearedFields, serviceruntimestats.FieldLastConnectAt)
}

// SetLastDisconnectAt sets the "last_disconnect_at" field.
func (m *ServiceRuntimeStatsMutation) SetLastDisconnectAt(t time.Time) {
	m.last_disconnect_at = &t
}

// LastDisconnectAt returns the value of the "last_disconnect_at" field in the mutation.
func (m *ServiceRuntimeStatsMutation) LastDisconnectAt() (r time.Time, exists bool) {
	v := m.last_disconnect_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastDisconnectAt returns the old "last_disconnect_at" field's value of the ServiceRuntimeStats entity.
// If the ServiceRuntimeStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceRuntimeStatsMutation) OldLastDisconnectAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastDisconnectAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastDisconnectAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastDisconnectAt: %w", err)
	}
	return oldValue.LastDisconnectAt, nil
}

// ClearLastDisconnectAt clears the value of the "last_disconnect_at" field.
func (m *ServiceRuntimeStatsMutation) ClearLastDisconnectAt() {
	m.last_disconnect_at = nil
	m.clearedFields[serviceruntimestats.FieldLastDisconnectAt] = struct{}{}
}

// LastDisconnectAtCleared returns if the "last_disconnect_at" field was cleared in this mutation.
func (m *ServiceRuntimeStatsMutation) LastDisconnectAtCleared() bool {
	_, ok := m.clearedFields[serviceruntimestats.FieldLastDisconnectAt]
	return ok
}

// ResetLastDisconnectAt resets all changes to the "last_disconnect_at" field.
func (m *ServiceRuntimeStatsMutation) ResetLastDisconnectAt() {
	m.last_disconnect_at = nil
	delete(m.clearedFields, serviceruntimestats.FieldLastDisconnectAt)
}

// SetLastEventAt sets the "last_event_at" field.
func (m *ServiceRuntimeStatsMutation) SetLastEventAt(t time.Time) {
	m.last_event_at = &t
}

// LastEventAt returns the value of the "last_event_at" field in the mutation.
func (m *ServiceRuntimeStatsMutation) LastEventAt() (r time.Time, exists bool) {
	v := m.last_event_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastEventAt returns the old "last_event_at" field's value of the ServiceRuntimeStats entity.
// If the ServiceRuntimeStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceRuntimeStatsMutation) OldLastEventAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastEventAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastEventAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastEventAt: %w", err)
	}
	return oldValue.LastEventAt, nil
}

// ClearLastEventAt clears the value of the "last_event_at" field.
func (m *ServiceRuntimeStatsMutation) ClearLastEventAt() {
	m.last_event_at = nil
	m.clearedFields[serviceruntimestats.FieldLastEventAt] = struct{}{}
}

// LastEventAtCleared returns if the "last_event_at" field was cleared in this mutation.
func (m *ServiceRuntimeStatsMutation) LastEventAtCleared() bool {
	_, ok := m.clearedFields[serviceruntimestats.FieldLastEventAt]
	return ok
}

// ResetLastEventAt resets all changes to the "last_event_at" field.
func (m *ServiceRuntimeStatsMutation) ResetLastEventAt() {
	m.last_event_at = nil
	delete(m.clearedFields, serviceruntimestats.FieldLastEventAt)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ServiceRuntimeStatsMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ServiceRuntimeStatsMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ServiceRuntimeStats entity.
// If the ServiceRuntimeStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceRuntimeStatsMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ServiceRuntimeStatsMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ServiceRuntimeStatsMutation builder.
func (m *ServiceRuntimeStatsMutation) Where(ps ...predicate.ServiceRuntimeStats) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ServiceRuntimeStatsMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ServiceRuntimeStatsMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ServiceRuntimeStats, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ServiceRuntimeStatsMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ServiceRuntimeStatsMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ServiceRuntimeStats).
func (m *ServiceRuntimeStatsMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ServiceRuntimeStatsMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.service_account_id != nil {
		fields = append(fields, serviceruntimestats.FieldServiceAccountID)
	}
	if m.total_api_requests != nil {
		fields = append(fields, serviceruntimestats.FieldTotalAPIRequests)
	}
	if m.ws_connects != nil {
		fields = append(fields, serviceruntimestats.FieldWsConnects)
	}
	if m.ws_disconnects != nil {
		fields = append(fields, serviceruntimestats.FieldWsDisconnects)
	}
	if m.active_ws_connections != nil {
		fields = append(fields, serviceruntimestats.FieldActiveWsConnections)
	}
	if m.events_sent_ws != nil {
		fields = append(fields, serviceruntimestats.FieldEventsSentWs)
	}
	if m.events_sent_webhook != nil {
		fields = append(fields, serviceruntimestats.FieldEventsSentWebhook)
	}
	if m.webhook_failures != nil {
		fields = append(fields, serviceruntimestats.FieldWebhookFailures)
	}
	if m.last_connect_at != nil {
		fields = append(fields, serviceruntimestats.FieldLastConnectAt)
	}
	if m.last_disconnect_at != nil {
		fields = append(fields, serviceruntimestats.FieldLastDisconnectAt)
	}
	if m.last_event_at != nil {
		fields = append(fields, serviceruntimestats.FieldLastEventAt)
	}
	if m.updated_at != nil {
		fields = append(fields, serviceruntimestats.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ServiceRuntimeStatsMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case serviceruntimestats.FieldServiceAccountID:
		return m.ServiceAccountID()
	case serviceruntimestats.FieldTotalAPIRequests:
		return m.TotalAPIRequests()
	case serviceruntimestats.FieldWsConnects:
		return m.WsConnects()
	case serviceruntimestats.FieldWsDisconnects:
		return m.WsDisconnects()
	case serviceruntimestats.FieldActiveWsConnections:
		return m.ActiveWsConnections()
	case serviceruntimestats.FieldEventsSentWs:
		return m.EventsSentWs()
	case serviceruntimestats.FieldEventsSentWebhook:
		return m.EventsSentWebhook()
	case serviceruntimestats.FieldWebhookFailures:
		return m.WebhookFailures()
	case serviceruntimestats.FieldLastConnectAt:
		return m.LastConnectAt()
	case serviceruntimestats.FieldLastDisconnectAt:
		return m.LastDisconnectAt()
	case serviceruntimestats.FieldLastEventAt:
		return m.LastEventAt()
	case serviceruntimestats.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ServiceRuntimeStatsMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case serviceruntimestats.FieldServiceAccountID:
		return m.OldServiceAccountID(ctx)
	case serviceruntimestats.FieldTotalAPIRequests:
		return m.OldTotalAPIRequests(ctx)
	case serviceruntimestats.FieldWsConnects:
		return m.OldWsConnects(ctx)
	case serviceruntimestats.FieldWsDisconnects:
		return m.OldWsDisconnects(ctx)
	case serviceruntimestats.FieldActiveWsConnections:
		return m.OldActiveWsConnections(ctx)
	case serviceruntimestats.FieldEventsSentWs:
		return m.OldEventsSentWs(ctx)
	case serviceruntimestats.FieldEventsSentWebhook:
		return m.OldEventsSentWebhook(ctx)
	case serviceruntimestats.FieldWebhookFailures:
		return m.OldWebhookFailures(ctx)
	case serviceruntimestats.FieldLastConnectAt:
		return m.OldLastConnectAt(ctx)
	case serviceruntimestats.FieldLastDisconnectAt:
		return m.OldLastDisconnectAt(ctx)
	case serviceruntimestats.FieldLastEventAt:
		return m.OldLastEventAt(ctx)
	case serviceruntimestats.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ServiceRuntimeStats field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServiceRuntimeStatsMutation) SetField(name string, value ent.Value) error {
	switch name {
	case serviceruntimestats.FieldServiceAccountID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServiceAccountID(v)
		return nil
	case serviceruntimestats.FieldTotalAPIRequests:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAPIRequests(v)
		return nil
	case serviceruntimestats.FieldWsConnects:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWsConnects(v)
		return nil
	case serviceruntimestats.FieldWsDisconnects:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWsDisconnects(v)
		return nil
	case serviceruntimestats.FieldActiveWsConnections:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActiveWsConnections(v)
		return nil
	case serviceruntimestats.FieldEventsSentWs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventsSentWs(v)
		return nil
	case serviceruntimestats.FieldEventsSentWebhook:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventsSentWebhook(v)
		return nil
	case serviceruntimestats.FieldWebhookFailures:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebhookFailures(v)
		return nil
	case serviceruntimestats.FieldLastConnectAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastConnectAt(v)
		return nil
	case serviceruntimestats.FieldLastDisconnectAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastDisconnectAt(v)
		return nil
	case serviceruntimestats.FieldLastEventAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastEventAt(v)
		return nil
	case serviceruntimestats.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ServiceRuntimeStats field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ServiceRuntimeStatsMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_api_requests != nil {
		fields = append(fields, serviceruntimestats.FieldTotalAPIRequests)
	}
	if m.addws_connects != nil {
		fields = append(fields, serviceruntimestats.FieldWsConnects)
	}
	if m.addws_disconnects != nil {
		fields = append(fields, serviceruntimestats.FieldWsDisconnects)
	}
	if m.addactive_ws_connections != nil {
		fields = append(fields, serviceruntimestats.FieldActiveWsConnections)
	}
	if m.addevents_sent_ws != nil {
		fields = append(fields, serviceruntimestats.FieldEventsSentWs)
	}
	if m.addevents_sent_webhook != nil {
		fields = append(fields, serviceruntimestats.FieldEventsSentWebhook)
	}
	if m.addwebhook_failures != nil {
		fields = append(fields, serviceruntimestats.FieldWebhookFailures)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ServiceRuntimeStatsMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case serviceruntimestats.FieldTotalAPIRequests:
		return m.AddedTotalAPIRequests()
	case serviceruntimestats.FieldWsConnects:
		return m.AddedWsConnects()
	case serviceruntimestats.FieldWsDisconnects:
		return m.AddedWsDisconnects()
	case serviceruntimestats.FieldActiveWsConnections:
		return m.AddedActiveWsConnections()
	case serviceruntimestats.FieldEventsSentWs:
		return m.AddedEventsSentWs()
	case serviceruntimestats.FieldEventsSentWebhook:
		return m.AddedEventsSentWebhook()
	case serviceruntimestats.FieldWebhookFailures:
		return m.AddedWebhookFailures()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServiceRuntimeStatsMutation) AddField(name string, value ent.Value) error {
	switch name {
	case serviceruntimestats.FieldTotalAPIRequests:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAPIRequests(v)
		return nil
	case serviceruntimestats.FieldWsConnects:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWsConnects(v)
		return nil
	case serviceruntimestats.FieldWsDisconnects:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWsDisconnects(v)
		return nil
	case serviceruntimestats.FieldActiveWsConnections:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActiveWsConnections(v)
		return nil
	case serviceruntimestats.FieldEventsSentWs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEventsSentWs(v)
		return nil
	case serviceruntimestats.FieldEventsSentWebhook:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEventsSentWebhook(v)
		return nil
	case serviceruntimestats.FieldWebhookFailures:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWebhookFailures(v)
		return nil
	}
	return fmt.Errorf("unknown ServiceRuntimeStats numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ServiceRuntimeStatsMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(serviceruntimestats.FieldLastConnectAt) {
		fields = append(fields, serviceruntimestats.FieldLastConnectAt)
	}
	if m.FieldCleared(serviceruntimestats.FieldLastDisconnectAt) {
		fields = append(fields, serviceruntimestats.FieldLastDisconnectAt)
	}
	if m.FieldCleared(serviceruntimestats.FieldLastEventAt) {
		fields = append(fields, serviceruntimestats.FieldLastEventAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ServiceRuntimeStatsMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ServiceRuntimeStatsMutation) ClearField(name string) error {
	switch name {
	case serviceruntimestats.FieldLastConnectAt:
		m.ClearLastConnectAt()
		return nil
	case serviceruntimestats.FieldLastDisconnectAt:
		m.ClearLastDisconnectAt()
		return nil
	case serviceruntimestats.FieldLastEventAt:
		m.ClearLastEventAt()
		return nil
	}
	return fmt.Errorf("unknown ServiceRuntimeStats nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ServiceRuntimeStatsMutation) ResetField(name string) error {
	switch name {
	case serviceruntimestats.FieldServiceAccountID:
		m.ResetServiceAccountID()
		return nil
	case serviceruntimestats.FieldTotalAPIRequests:
		m.ResetTotalAPIRequests()
		return nil
	case serviceruntimestats.FieldWsConnects:
		m.ResetWsConnects()
		return nil
	case serviceruntimestats.FieldWsDisconnects:
		m.ResetWsDisconnects()
		return nil
	case serviceruntimestats.FieldActiveWsConnections:
		m.ResetActiveWsConnections()
		return nil
	case serviceruntimestats.FieldEventsSentWs:
		m.ResetEventsSentWs()
		return nil
	case serviceruntimestats.FieldEventsSentWebhook:
		m.ResetEventsSentWebhook()
		return nil
	case serviceruntimestats.FieldWebhookFailures:
		m.ResetWebhookFailures()
		return nil
	case serviceruntimestats.FieldLastConnectAt:
		m.ResetLastConnectAt()
		return nil
	case serviceruntimestats.FieldLastDisconnectAt:
		m.ResetLastDisconnectAt()
		return nil
	case serviceruntimestats.FieldLastEventAt:
		m.ResetLastEventAt()
		return nil
	case serviceruntimestats.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ServiceRuntimeStats field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ServiceRuntimeStatsMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ServiceRuntimeStatsMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ServiceRuntimeStatsMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ServiceRuntimeStatsMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ServiceRuntimeStatsMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ServiceRuntimeStatsMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ServiceRuntimeStatsMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ServiceRuntimeStats unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ServiceRuntimeStatsMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ServiceRuntimeStats edge %s", name)
}

// TwitchSubscriptionMutation represents an operation that mutates the TwitchSubscription nodes in the graph.
type TwitchSubscriptionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	bot_account_id         *uuid.UUID
	event_type             *string
	broadcaster_user_id    *string
	transport              *twitchsubscription.Transport
	twitch_subscription_id *string
	status                 *twitchsubscription.Status
	session_id             *string
	last_error             *string
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*TwitchSubscription, error)
	predicates             []predicate.TwitchSubscription
}

var _ ent.Mutation = (*TwitchSubscriptionMutation)(nil)

// twitchsubscriptionOption allows management of the mutation configuration using functional options.
type twitchsubscriptionOption func(*TwitchSubscriptionMutation)

// newTwitchSubscriptionMutation creates new mutation for the TwitchSubscription entity.
func newTwitchSubscriptionMutation(c config, op Op, opts ...twitchsubscriptionOption) *TwitchSubscriptionMutation {
	m := &TwitchSubscriptionMutation{
		config:        c,
		op:            op,
		typ:           TypeTwitchSubscription,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTwitchSubscriptionID sets the ID field of the mutation.
func withTwitchSubscriptionID(id uuid.UUID) twitchsubscriptionOption {
	return func(m *TwitchSubscriptionMutation) {
		var (
			err   error
			once  sync.Once
			value *TwitchSubscription
		)
		m.oldValue = func(ctx context.Context) (*TwitchSubscription, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TwitchSubscription.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTwitchSubscription sets the old TwitchSubscription of the mutation.
func withTwitchSubscription(node *TwitchSubscription) twitchsubscriptionOption {
	return func(m *TwitchSubscriptionMutation) {
		m.oldValue = func(context.Context) (*TwitchSubscription, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TwitchSubscriptionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TwitchSubscriptionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TwitchSubscription entities.
func (m *TwitchSubscriptionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TwitchSubscriptionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TwitchSubscriptionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TwitchSubscription.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBotAccountID sets the "bot_account_id" field.
func (m *TwitchSubscriptionMutation) SetBotAccountID(u uuid.UUID) {
	m.bot_account_id = &u
}

// BotAccountID returns the value of the "bot_account_id" field in the mutation.
func (m *TwitchSubscriptionMutation) BotAccountID() (r uuid.UUID, exists bool) {
	v := m.bot_account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBotAccountID returns the old "bot_account_id" field's value of the TwitchSubscription entity.
// If the TwitchSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TwitchSubscriptionMutation) OldBotAccountID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBotAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBotAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBotAccountID: %w", err)
	}
	return oldValue.BotAccountID, nil
}

// ResetBotAccountID resets all changes to the "bot_account_id" field.
func (m *TwitchSubscriptionMutation) ResetBotAccountID() {
	m.bot_account_id = nil
}

// SetEventType sets the "event_type" field.
func (m *TwitchSubscriptionMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *TwitchSubscriptionMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the TwitchSubscription entity.
// If the TwitchSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TwitchSubscriptionMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *TwitchSubscriptionMutation) ResetEventType() {
	m.event_type = nil
}

// SetBroadcasterUserID sets the "broadcaster_user_id" field.
func (m *TwitchSubscriptionMutation) SetBroadcasterUserID(s string) {
	m.broadcaster_user_id = &s
}

// BroadcasterUserID returns the value of the "broadcaster_user_id" field in the mutation.
func (m *TwitchSubscriptionMutation) BroadcasterUserID() (r string, exists bool) {
	v := m.broadcaster_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBroadcasterUserID returns the old "broadcaster_user_id" field's value of the TwitchSubscription entity.
// If the TwitchSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TwitchSubscriptionMutation) OldBroadcasterUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBroadcasterUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBroadcasterUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBroadcasterUserID: %w", err)
	}
	return oldValue.BroadcasterUserID, nil
}

// ResetBroadcasterUserID resets all changes to the "broadcaster_user_id" field.
func (m *TwitchSubscriptionMutation) ResetBroadcasterUserID() {
	m.broadcaster_user_id = nil
}

// SetTransport sets the "transport" field.
func (m *TwitchSubscriptionMutation) SetTransport(t twitchsubscription.Transport) {
	m.transport = &t
}

// Transport returns the value of the "transport" field in the mutation.
func (m *TwitchSubscriptionMutation) Transport() (r twitchsubscription.Transport, exists bool) {
	v := m.transport
	if v == nil {
		return
	}
	return *v, true
}

// OldTransport returns the old "transport" field's value of the TwitchSubscription entity.
// If the TwitchSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TwitchSubscriptionMutation) OldTransport(ctx context.Context) (v twitchsubscription.Transport, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransport is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransport requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransport: %w", err)
	}
	return oldValue.Transport, nil
}

// ResetTransport resets all changes to the "transport" field.
func (m *TwitchSubscriptionMutation) ResetTransport() {
	m.transport = nil
}

// SetTwitchSubscriptionID sets the "twitch_subscription_id" field.
func (m *TwitchSubscriptionMutation) SetTwitchSubscriptionID(s string) {
	m.twitch_subscription_id = &s
}

// TwitchSubscriptionID returns the value of the "twitch_subscription_id" field in the mutation.
func (m *TwitchSubscriptionMutation) TwitchSubscriptionID() (r string, exists bool) {
	v := m.twitch_subscription_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTwitchSubscriptionID returns the old "twitch_subscription_id" field's value of the TwitchSubscription entity.
// If the TwitchSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TwitchSubscriptionMutation) OldTwitchSubscriptionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTwitchSubscriptionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTwitchSubscriptionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTwitchSubscriptionID: %w", err)
	}
	return oldValue.TwitchSubscriptionID, nil
}

// ClearTwitchSubscriptionID clears the value of the "twitch_subscription_id" field.
func (m *TwitchSubscriptionMutation) ClearTwitchSubscriptionID() {
	m.twitch_subscription_id = nil
	m.clearedFields[twitchsubscription.FieldTwitchSubscriptionID] = struct{}{}
}

// TwitchSubscriptionIDCleared returns if the "twitch_subscription_id" field was cleared in this mutation.
func (m *TwitchSubscriptionMutation) TwitchSubscriptionIDCleared() bool {
	_, ok := m.clearedFields[twitchsubscription.FieldTwitchSubscriptionID]
	return ok
}

// ResetTwitchSubscriptionID resets all changes to the "twitch_subscription_id" field.
func (m *TwitchSubscriptionMutation) ResetTwitchSubscriptionID() {
	m.twitch_subscription_id = nil
	delete(m.clearedFields, twitchsubscription.FieldTwitchSubscriptionID)
}

// SetStatus sets the "status" field.
func (m *TwitchSubscriptionMutation) SetStatus(t twitchsubscription.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TwitchSubscriptionMutation) Status() (r twitchsubscription.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TwitchSubscription entity.
// If the TwitchSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TwitchSubscriptionMutation) OldStatus(ctx context.Context) (v twitchsubscription.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TwitchSubscriptionMutation) ResetStatus() {
	m.status = nil
}

// SetSessionID sets the "session_id" field.
func (m *TwitchSubscriptionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *TwitchSubscriptionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the TwitchSubscription entity.
// If the TwitchSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TwitchSubscriptionMutation) OldSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *TwitchSubscriptionMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[twitchsubscription.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *TwitchSubscriptionMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[twitchsubscription.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *TwitchSubscriptionMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, twitchsubscription.FieldSessionID)
}

// SetLastError sets the "last_error" field.
func (m *TwitchSubscriptionMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *TwitchSubscriptionMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the TwitchSubscription entity.
// If the TwitchSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TwitchSubscriptionMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *TwitchSubscriptionMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[twitchsubscription.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *TwitchSubscriptionMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[twitchsubscription.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *TwitchSubscriptionMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, twitchsubscription.FieldLastError)
}

// SetCreatedAt sets the "created_at" field.
func (m *TwitchSubscriptionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TwitchSubscriptionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TwitchSubscription entity.
// If the TwitchSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TwitchSubscriptionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TwitchSubscriptionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TwitchSubscriptionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TwitchSubscriptionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TwitchSubscription entity.
// If the TwitchSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TwitchSubscriptionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TwitchSubscriptionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TwitchSubscriptionMutation builder.
func (m *TwitchSubscriptionMutation) Where(ps ...predicate.TwitchSubscription) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TwitchSubscriptionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TwitchSubscriptionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TwitchSubscription, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TwitchSubscriptionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TwitchSubscriptionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TwitchSubscription).
func (m *TwitchSubscriptionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TwitchSubscriptionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.bot_account_id != nil {
		fields = append(fields, twitchsubscription.FieldBotAccountID)
	}
	if m.event_type != nil {
		fields = append(fields, twitchsubscription.FieldEventType)
	}
	if m.broadcaster_user_id != nil {
		fields = append(fields, twitchsubscription.FieldBroadcasterUserID)
	}
	if m.transport != nil {
		fields = append(fields, twitchsubscription.FieldTransport)
	}
	if m.twitch_subscription_id != nil {
		fields = append(fields, twitchsubscription.FieldTwitchSubscriptionID)
	}
	if m.status != nil {
		fields = append(fields, twitchsubscription.FieldStatus)
	}
	if m.session_id != nil {
		fields = append(fields, twitchsubscription.FieldSessionID)
	}
	if m.last_error != nil {
		fields = append(fields, twitchsubscription.FieldLastError)
	}
	if m.created_at != nil {
		fields = append(fields, twitchsubscription.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, twitchsubscription.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TwitchSubscriptionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case twitchsubscription.FieldBotAccountID:
		return m.BotAccountID()
	case twitchsubscription.FieldEventType:
		return m.EventType()
	case twitchsubscription.FieldBroadcasterUserID:
		return m.BroadcasterUserID()
	case twitchsubscription.FieldTransport:
		return m.Transport()
	case twitchsubscription.FieldTwitchSubscriptionID:
		return m.TwitchSubscriptionID()
	case twitchsubscription.FieldStatus:
		return m.Status()
	case twitchsubscription.FieldSessionID:
		return m.SessionID()
	case twitchsubscription.FieldLastError:
		return m.LastError()
	case twitchsubscription.FieldCreatedAt:
		return m.CreatedAt()
	case twitchsubscription.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TwitchSubscriptionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case twitchsubscription.FieldBotAccountID:
		return m.OldBotAccountID(ctx)
	case twitchsubscription.FieldEventType:
		return m.OldEventType(ctx)
	case twitchsubscription.FieldBroadcasterUserID:
		return m.OldBroadcasterUserID(ctx)
	case twitchsubscription.FieldTransport:
		return m.OldTransport(ctx)
	case twitchsubscription.FieldTwitchSubscriptionID:
		return m.OldTwitchSubscriptionID(ctx)
	case twitchsubscription.FieldStatus:
		return m.OldStatus(ctx)
	case twitchsubscription.FieldSessionID:
		return m.OldSessionID(ctx)
	case twitchsubscription.FieldLastError:
		return m.OldLastError(ctx)
	case twitchsubscription.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case twitchsubscription.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TwitchSubscription field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TwitchSubscriptionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case twitchsubscription.FieldBotAccountID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBotAccountID(v)
		return nil
	case twitchsubscription.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case twitchsubscription.FieldBroadcasterUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBroadcasterUserID(v)
		return nil
	case twitchsubscription.FieldTransport:
		v, ok := value.(twitchsubscription.Transport)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransport(v)
		return nil
	case twitchsubscription.FieldTwitchSubscriptionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTwitchSubscriptionID(v)
		return nil
	case twitchsubscription.FieldStatus:
		v, ok := value.(twitchsubscription.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case twitchsubscription.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case twitchsubscription.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case twitchsubscription.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case twitchsubscription.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TwitchSubscription field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TwitchSubscriptionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TwitchSubscriptionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TwitchSubscriptionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TwitchSubscription numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TwitchSubscriptionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(twitchsubscription.FieldTwitchSubscriptionID) {
		fields = append(fields, twitchsubscription.FieldTwitchSubscriptionID)
	}
	if m.FieldCleared(twitchsubscription.FieldSessionID) {
		fields = append(fields, twitchsubscription.FieldSessionID)
	}
	if m.FieldCleared(twitchsubscription.FieldLastError) {
		fields = append(fields, twitchsubscription.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TwitchSubscriptionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TwitchSubscriptionMutation) ClearField(name string) error {
	switch name {
	case twitchsubscription.FieldTwitchSubscriptionID:
		m.ClearTwitchSubscriptionID()
		return nil
	case twitchsubscription.FieldSessionID:
		m.ClearSessionID()
		return nil
	case twitchsubscription.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown TwitchSubscription nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TwitchSubscriptionMutation) ResetField(name string) error {
	switch name {
	case twitchsubscription.FieldBotAccountID:
		m.ResetBotAccountID()
		return nil
	case twitchsubscription.FieldEventType:
		m.ResetEventType()
		return nil
	case twitchsubscription.FieldBroadcasterUserID:
		m.ResetBroadcasterUserID()
		return nil
	case twitchsubscription.FieldTransport:
		m.ResetTransport()
		return nil
	case twitchsubscription.FieldTwitchSubscriptionID:
		m.ResetTwitchSubscriptionID()
		return nil
	case twitchsubscription.FieldStatus:
		m.ResetStatus()
		return nil
	case twitchsubscription.FieldSessionID:
		m.ResetSessionID()
		return nil
	case twitchsubscription.FieldLastError:
		m.ResetLastError()
		return nil
	case twitchsubscription.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case twitchsubscription.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TwitchSubscription field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TwitchSubscriptionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TwitchSubscriptionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TwitchSubscriptionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TwitchSubscriptionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TwitchSubscriptionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TwitchSubscriptionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TwitchSubscriptionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TwitchSubscription unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TwitchSubscriptionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TwitchSubscription edge %s", name)
}
