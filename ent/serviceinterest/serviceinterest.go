// Code generated by ent, DO NOT EDIT.

package serviceinterest

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the serviceinterest type in the database.
	Label = "service_interest"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldServiceAccountID holds the string denoting the service_account_id field in the database.
	FieldServiceAccountID = "service_account_id"
	// FieldBotAccountID holds the string denoting the bot_account_id field in the database.
	FieldBotAccountID = "bot_account_id"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldBroadcasterUserID holds the string denoting the broadcaster_user_id field in the database.
	FieldBroadcasterUserID = "broadcaster_user_id"
	// FieldTransport holds the string denoting the transport field in the database.
	FieldTransport = "transport"
	// FieldWebhookURL holds the string denoting the webhook_url field in the database.
	FieldWebhookURL = "webhook_url"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the serviceinterest in the database.
	Table = "service_interests"
)

// Columns holds all SQL columns for serviceinterest fields.
var Columns = []string{
	FieldID,
	FieldServiceAccountID,
	FieldBotAccountID,
	FieldEventType,
	FieldBroadcasterUserID,
	FieldTransport,
	FieldWebhookURL,
	FieldLastHeartbeatAt,
	FieldCreatedAt,
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
	// EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	EventTypeValidator func(string) error
	// BroadcasterUserIDValidator is a validator for the "broadcaster_user_id" field. It is called by the builders before save.
	BroadcasterUserIDValidator func(string) error
	// DefaultWebhookURL holds the default value on creation for the "webhook_url" field.
	DefaultWebhookURL string
	// DefaultLastHeartbeatAt holds the default value on creation for the "last_heartbeat_at" field.
	DefaultLastHeartbeatAt func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Transport defines the type for the "transport" enum field.
type Transport string

// TransportWebsocket is the default value of the Transport enum.
const DefaultTransport = TransportWebsocket

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
		return fmt.Errorf("serviceinterest: invalid enum value for transport field: %q", t)
	}
}

// OrderOption defines the ordering options for the ServiceInterest queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByServiceAccountID orders the results by the service_account_id field.
func ByServiceAccountID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldServiceAccountID, opts...).ToFunc()
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

// ByWebhookURL orders the results by the webhook_url field.
func ByWebhookURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebhookURL, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
