// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/streamgate/streamgate/ent/twitchsubscription"
)

// TwitchSubscription is the model entity for the TwitchSubscription schema.
type TwitchSubscription struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// BotAccountID holds the value of the "bot_account_id" field.
	BotAccountID uuid.UUID `json:"bot_account_id,omitempty"`
	// EventType holds the value of the "event_type" field.
	EventType string `json:"event_type,omitempty"`
	// BroadcasterUserID holds the value of the "broadcaster_user_id" field.
	BroadcasterUserID string `json:"broadcaster_user_id,omitempty"`
	// Upstream transport toward Twitch
	Transport twitchsubscription.Transport `json:"transport,omitempty"`
	// Id assigned by Twitch; empty until creation succeeds
	TwitchSubscriptionID *string `json:"twitch_subscription_id,omitempty"`
	// Status holds the value of the "status" field.
	Status twitchsubscription.Status `json:"status,omitempty"`
	// Upstream WS session the subscription is bound to
	SessionID *string `json:"session_id,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError *string `json:"last_error,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TwitchSubscription) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case twitchsubscription.FieldEventType, twitchsubscription.FieldBroadcasterUserID, twitchsubscription.FieldTransport, twitchsubscription.FieldTwitchSubscriptionID, twitchsubscription.FieldStatus, twitchsubscription.FieldSessionID, twitchsubscription.FieldLastError:
			values[i] = new(sql.NullString)
		case twitchsubscription.FieldCreatedAt, twitchsubscription.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case twitchsubscription.FieldID, twitchsubscription.FieldBotAccountID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TwitchSubscription fields.
func (_m *TwitchSubscription) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case twitchsubscription.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case twitchsubscription.FieldBotAccountID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field bot_account_id", values[i])
			} else if value != nil {
				_m.BotAccountID = *value
			}
		case twitchsubscription.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = value.String
			}
		case twitchsubscription.FieldBroadcasterUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field broadcaster_user_id", values[i])
			} else if value.Valid {
				_m.BroadcasterUserID = value.String
			}
		case twitchsubscription.FieldTransport:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transport", values[i])
			} else if value.Valid {
				_m.Transport = twitchsubscription.Transport(value.String)
			}
		case twitchsubscription.FieldTwitchSubscriptionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field twitch_subscription_id", values[i])
			} else if value.Valid {
				_m.TwitchSubscriptionID = new(string)
				*_m.TwitchSubscriptionID = value.String
			}
		case twitchsubscription.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = twitchsubscription.Status(value.String)
			}
		case twitchsubscription.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = new(string)
				*_m.SessionID = value.String
			}
		case twitchsubscription.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = new(string)
				*_m.LastError = value.String
			}
		case twitchsubscription.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case twitchsubscription.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TwitchSubscription.
// This includes values selected through modifiers, order, etc.
func (_m *TwitchSubscription) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TwitchSubscription.
// Note that you need to call TwitchSubscription.Unwrap() before calling this method if this TwitchSubscription
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TwitchSubscription) Update() *TwitchSubscriptionUpdateOne {
	return NewTwitchSubscriptionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TwitchSubscription entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TwitchSubscription) Unwrap() *TwitchSubscription {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TwitchSubscription is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TwitchSubscription) String() string {
	var builder strings.Builder
	builder.WriteString("TwitchSubscription(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
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
	if v := _m.TwitchSubscriptionID; v != nil {
		builder.WriteString("twitch_subscription_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.SessionID; v != nil {
		builder.WriteString("session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastError; v != nil {
		builder.WriteString("last_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TwitchSubscriptions is a parsable slice of TwitchSubscription.
type TwitchSubscriptions []*TwitchSubscription
