// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/streamgate/streamgate/ent/serviceinterest"
)

// ServiceInterest is the model entity for the ServiceInterest schema.
type ServiceInterest struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ServiceAccountID holds the value of the "service_account_id" field.
	ServiceAccountID uuid.UUID `json:"service_account_id,omitempty"`
	// BotAccountID holds the value of the "bot_account_id" field.
	BotAccountID uuid.UUID `json:"bot_account_id,omitempty"`
	// EventType holds the value of the "event_type" field.
	EventType string `json:"event_type,omitempty"`
	// Normalized: numeric id, or lowercase login until resolved
	BroadcasterUserID string `json:"broadcaster_user_id,omitempty"`
	// Downstream delivery transport to the service
	Transport serviceinterest.Transport `json:"transport,omitempty"`
	// WebhookURL holds the value of the "webhook_url" field.
	WebhookURL string `json:"webhook_url,omitempty"`
	// LastHeartbeatAt holds the value of the "last_heartbeat_at" field.
	LastHeartbeatAt time.Time `json:"last_heartbeat_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ServiceInterest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case serviceinterest.FieldEventType, serviceinterest.FieldBroadcasterUserID, serviceinterest.FieldTransport, serviceinterest.FieldWebhookURL:
			values[i] = new(sql.NullString)
		case serviceinterest.FieldLastHeartbeatAt, serviceinterest.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case serviceinterest.FieldID, serviceinterest.FieldServiceAccountID, serviceinterest.FieldBotAccountID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ServiceInterest fields.
func (_m *ServiceInterest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case serviceinterest.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case serviceinterest.FieldServiceAccountID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field service_account_id", values[i])
			} else if value != nil {
				_m.ServiceAccountID = *value
			}
		case serviceinterest.FieldBotAccountID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field bot_account_id", values[i])
			} else if value != nil {
				_m.BotAccountID = *value
			}
		case serviceinterest.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = value.String
			}
		case serviceinterest.FieldBroadcasterUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field broadcaster_user_id", values[i])
			} else if value.Valid {
				_m.BroadcasterUserID = value.String
			}
		case serviceinterest.FieldTransport:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transport", values[i])
			} else if value.Valid {
				_m.Transport = serviceinterest.Transport(value.String)
			}
		case serviceinterest.FieldWebhookURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field webhook_url", values[i])
			} else if value.Valid {
				_m.WebhookURL = value.String
			}
		case serviceinterest.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = value.Time
			}
		case serviceinterest.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ServiceInterest.
// This includes values selected through modifiers, order, etc.
func (_m *ServiceInterest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ServiceInterest.
// Note that you need to call ServiceInterest.Unwrap() before calling this method if this ServiceInterest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ServiceInterest) Update() *ServiceInterestUpdateOne {
	return NewServiceInterestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ServiceInterest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ServiceInterest) Unwrap() *ServiceInterest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ServiceInterest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ServiceInterest) String() string {
	var builder strings.Builder
	builder.WriteString("ServiceInterest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("service_account_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ServiceAccountID))
	builder.WriteString(", ")
	builder.WriteString("bot_account_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BotAccountID))
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(_m.EventType)
	builder.WriteString(", ")
	builder.WriteString("broadcaster_user_id=")
	builder.WriteString(_m.BroadcasterUserID)
	builder.WriteString(", ")
	builder.WriteString("transport=")
	builder.WriteString(fmt.Sprintf("%v", _m.Transport))
	builder.WriteString(", ")
	builder.WriteString("webhook_url=")
	builder.WriteString(_m.WebhookURL)
	builder.WriteString(", ")
	builder.WriteString("last_heartbeat_at=")
	builder.WriteString(_m.LastHeartbeatAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ServiceInterests is a parsable slice of ServiceInterest.
type ServiceInterests []*ServiceInterest
