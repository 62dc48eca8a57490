// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/streamgate/streamgate/ent/servicebotaccess"
)

// ServiceBotAccess is the model entity for the ServiceBotAccess schema.
type ServiceBotAccess struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ServiceAccountID holds the value of the "service_account_id" field.
	ServiceAccountID uuid.UUID `json:"service_account_id,omitempty"`
	// BotAccountID holds the value of the "bot_account_id" field.
	BotAccountID uuid.UUID `json:"bot_account_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ServiceBotAccess) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case servicebotaccess.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case servicebotaccess.FieldID, servicebotaccess.FieldServiceAccountID, servicebotaccess.FieldBotAccountID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ServiceBotAccess fields.
func (_m *ServiceBotAccess) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case servicebotaccess.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case servicebotaccess.FieldServiceAccountID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field service_account_id", values[i])
			} else if value != nil {
				_m.ServiceAccountID = *value
			}
		case servicebotaccess.FieldBotAccountID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field bot_account_id", values[i])
			} else if value != nil {
				_m.BotAccountID = *value
			}
		case servicebotaccess.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ServiceBotAccess.
// This includes values selected through modifiers, order, etc.
func (_m *ServiceBotAccess) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ServiceBotAccess.
// Note that you need to call ServiceBotAccess.Unwrap() before calling this method if this ServiceBotAccess
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ServiceBotAccess) Update() *ServiceBotAccessUpdateOne {
	return NewServiceBotAccessClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ServiceBotAccess entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ServiceBotAccess) Unwrap() *ServiceBotAccess {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ServiceBotAccess is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ServiceBotAccess) String() string {
	var builder strings.Builder
	builder.WriteString("ServiceBotAccess(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("service_account_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ServiceAccountID))
	builder.WriteString(", ")
	builder.WriteString("bot_account_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BotAccountID))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ServiceBotAccesses is a parsable slice of ServiceBotAccess.
type ServiceBotAccesses []*ServiceBotAccess
