// Code generated by ent, DO NOT EDIT.

package twitchsubscription

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the twitchsubscription type in the database.
	Label = "twitch_subscription"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBotAccountID holds the string denoting the bot_account_id field in the database.
	FieldBotAccountID = "bot_account_id"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldBroadcasterUserID holds the string denoting the broadcaster_user_id field in the database.
	FieldBroadcasterUserID = "broadcaster_user_id"
	// FieldTransport holds the string denoting the transport field in the database.
	FieldTransport = "transport"
	// FieldTwitchSubscriptionID holds the string denoting the twitch_subscription_id field in the database.
	FieldTwitchSubscriptionID = "twitch_subscription_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the twitchsubscription in the database.
	Table = "twitch_subscriptions"
)

// Columns holds all SQL columns for twitchsubscription fields.
var Columns = []string{
	FieldID,
	FieldBotAccountID,
	FieldEventType,
	FieldBroadcasterUserID,
	FieldTransport,
	FieldTwitchSubscriptionID,
	FieldStatus,
	FieldSessionID,
	FieldLastError,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Transport defines the type for the "transport" enum field.
type Transport string

// Transport values.
const (
	TransportWebsocket Transport = "websocket"
	TransportWebhook   Transport = "webhook"
)

func (t Transport) String() string {
	return string(t)
}

// TransportValidator is a validator for the "transport" field enum values. It is called by the builders before save.
func TransportValidator(t Transport) error {
	switch t {
	case TransportWebsocket, TransportWebhook:
		return nil
	default:
		return fmt.Errorf("twitchsubscription: invalid enum value for transport field: %q", t)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending Status = "pending"
	StatusEnabled Status = "enabled"
	StatusFailed  Status = "failed"
	StatusRevoked Status = "revoked"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusEnabled, StatusFailed, StatusRevoked:
		return nil
	default:
		return fmt.Errorf("twitchsubscription: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the TwitchSubscription queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBotAccountID orders the results by the bot_account_id field.
func ByBotAccountID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBotAccountID, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByBroadcasterUserID orders the results by the broadcaster_user_id field.
func ByBroadcasterUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBroadcasterUserID, opts...).ToFunc()
}

// ByTransport orders the results by the transport field.
func ByTransport(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransport, opts...).ToFunc()
}

// ByTwitchSubscriptionID orders the results by the twitch_subscription_id field.
func ByTwitchSubscriptionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTwitchSubscriptionID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
