// Code generated by ent, DO NOT EDIT.

package channelstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the channelstate type in the database.
	Label = "channel_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBroadcasterUserID holds the string denoting the broadcaster_user_id field in the database.
	FieldBroadcasterUserID = "broadcaster_user_id"
	// FieldIsLive holds the string denoting the is_live field in the database.
	FieldIsLive = "is_live"
	// FieldLastOnlineAt holds the string denoting the last_online_at field in the database.
	FieldLastOnlineAt = "last_online_at"
	// FieldLastOfflineAt holds the string denoting the last_offline_at field in the database.
	FieldLastOfflineAt = "last_offline_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the channelstate in the database.
	Table = "channel_states"
)

// Columns holds all SQL columns for channelstate fields.
var Columns = []string{
	FieldID,
	FieldBroadcasterUserID,
	FieldIsLive,
	FieldLastOnlineAt,
	FieldLastOfflineAt,
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
	// DefaultIsLive holds the default value on creation for the "is_live" field.
	DefaultIsLive bool
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ChannelState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBroadcasterUserID orders the results by the broadcaster_user_id field.
func ByBroadcasterUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBroadcasterUserID, opts...).ToFunc()
}

// ByIsLive orders the results by the is_live field.
func ByIsLive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsLive, opts...).ToFunc()
}

// ByLastOnlineAt orders the results by the last_online_at field.
func ByLastOnlineAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastOnlineAt, opts...).ToFunc()
}

// ByLastOfflineAt orders the results by the last_offline_at field.
func ByLastOfflineAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastOfflineAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
