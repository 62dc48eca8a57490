// Code generated by ent, DO NOT EDIT.

package serviceruntimestats

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the serviceruntimestats type in the database.
	Label = "service_runtime_stats"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldServiceAccountID holds the string denoting the service_account_id field in the database.
	FieldServiceAccountID = "service_account_id"
	// FieldTotalAPIRequests holds the string denoting the total_api_requests field in the database.
	FieldTotalAPIRequests = "total_api_requests"
	// FieldWsConnects holds the string denoting the ws_connects field in the database.
	FieldWsConnects = "ws_connects"
	// FieldWsDisconnects holds the string denoting the ws_disconnects field in the database.
	FieldWsDisconnects = "ws_disconnects"
	// FieldActiveWsConnections holds the string denoting the active_ws_connections field in the database.
	FieldActiveWsConnections = "active_ws_connections"
	// FieldEventsSentWs holds the string denoting the events_sent_ws field in the database.
	FieldEventsSentWs = "events_sent_ws"
	// FieldEventsSentWebhook holds the string denoting the events_sent_webhook field in the database.
	FieldEventsSentWebhook = "events_sent_webhook"
	// FieldWebhookFailures holds the string denoting the webhook_failures field in the database.
	FieldWebhookFailures = "webhook_failures"
	// FieldLastConnectAt holds the string denoting the last_connect_at field in the database.
	FieldLastConnectAt = "last_connect_at"
	// FieldLastDisconnectAt holds the string denoting the last_disconnect_at field in the database.
	FieldLastDisconnectAt = "last_disconnect_at"
	// FieldLastEventAt holds the string denoting the last_event_at field in the database.
	FieldLastEventAt = "last_event_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the serviceruntimestats in the database.
	Table = "service_runtime_stats"
)

// Columns holds all SQL columns for serviceruntimestats fields.
var Columns = []string{
	FieldID,
	FieldServiceAccountID,
	FieldTotalAPIRequests,
	FieldWsConnects,
	FieldWsDisconnects,
	FieldActiveWsConnections,
	FieldEventsSentWs,
	FieldEventsSentWebhook,
	FieldWebhookFailures,
	FieldLastConnectAt,
	FieldLastDisconnectAt,
	FieldLastEventAt,
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
	// DefaultTotalAPIRequests holds the default value on creation for the "total_api_requests" field.
	DefaultTotalAPIRequests int64
	// DefaultWsConnects holds the default value on creation for the "ws_connects" field.
	DefaultWsConnects int64
	// DefaultWsDisconnects holds the default value on creation for the "ws_disconnects" field.
	DefaultWsDisconnects int64
	// DefaultActiveWsConnections holds the default value on creation for the "active_ws_connections" field.
	DefaultActiveWsConnections int64
	// DefaultEventsSentWs holds the default value on creation for the "events_sent_ws" field.
	DefaultEventsSentWs int64
	// DefaultEventsSentWebhook holds the default value on creation for the "events_sent_webhook" field.
	DefaultEventsSentWebhook int64
	// DefaultWebhookFailures holds the default value on creation for the "webhook_failures" field.
	DefaultWebhookFailures int64
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ServiceRuntimeStats queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByServiceAccountID orders the results by the service_account_id field.
func ByServiceAccountID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldServiceAccountID, opts...).ToFunc()
}

// ByTotalAPIRequests orders the results by the total_api_requests field.
func ByTotalAPIRequests(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAPIRequests, opts...).ToFunc()
}

// ByWsConnects orders the results by the ws_connects field.
func ByWsConnects(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWsConnects, opts...).ToFunc()
}

// ByWsDisconnects orders the results by the ws_disconnects field.
func ByWsDisconnects(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWsDisconnects, opts...).ToFunc()
}

// ByActiveWsConnections orders the results by the active_ws_connections field.
func ByActiveWsConnections(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActiveWsConnections, opts...).ToFunc()
}

// ByEventsSentWs orders the results by the events_sent_ws field.
func ByEventsSentWs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventsSentWs, opts...).ToFunc()
}

// ByEventsSentWebhook orders the results by the events_sent_webhook field.
func ByEventsSentWebhook(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventsSentWebhook, opts...).ToFunc()
}

// ByWebhookFailures orders the results by the webhook_failures field.
func ByWebhookFailures(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebhookFailures, opts...).ToFunc()
}

// ByLastConnectAt orders the results by the last_connect_at field.
func ByLastConnectAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastConnectAt, opts...).ToFunc()
}

// ByLastDisconnectAt orders the results by the last_disconnect_at field.
func ByLastDisconnectAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastDisconnectAt, opts...).ToFunc()
}

// ByLastEventAt orders the results by the last_event_at field.
func ByLastEventAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastEventAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
