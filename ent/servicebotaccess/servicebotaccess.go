// Code generated by ent, DO NOT EDIT.

package servicebotaccess

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the servicebotaccess type in the database.
	Label = "service_bot_access"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldServiceAccountID holds the string denoting the service_account_id field in the database.
	FieldServiceAccountID = "service_account_id"
	// FieldBotAccountID holds the string denoting the bot_account_id field in the database.
	FieldBotAccountID = "bot_account_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the servicebotaccess in the database.
	Table = "service_bot_accesses"
)

// Columns holds all SQL columns for servicebotaccess fields.
var Columns = []string{
	FieldID,
	FieldServiceAccountID,
	FieldBotAccountID,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ServiceBotAccess queries.
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

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
