// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/streamgate/streamgate/ent/channelstate"
)

// ChannelState is the model entity for the ChannelState schema.
type ChannelState struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// BroadcasterUserID holds the value of the "broadcaster_user_id" field.
	BroadcasterUserID string `json:"broadcaster_user_id,omitempty"`
	// IsLive holds the value of the "is_live" field.
	IsLive bool `json:"is_live,omitempty"`
	// LastOnlineAt holds the value of the "last_online_at" field.
	LastOnlineAt *time.Time `json:"last_online_at,omitempty"`
	// LastOfflineAt holds the value of the "last_offline_at" field.
	LastOfflineAt *time.Time `json:"last_offline_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChannelState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case channelstate.FieldIsLive:
			values[i] = new(sql.NullBool)
		case channelstate.FieldBroadcasterUserID:
			values[i] = new(sql.NullString)
		case channelstate.FieldLastOnlineAt, channelstate.FieldLastOfflineAt, channelstate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case channelstate.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChannelState fields.
func (_m *ChannelState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case channelstate.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case channelstate.FieldBroadcasterUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field broadcaster_user_id", values[i])
			} else if value.Valid {
				_m.BroadcasterUserID = value.String
			}
		case channelstate.FieldIsLive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_live", values[i])
			} else if value.Valid {
				_m.IsLive = value.Bool
			}
		case channelstate.FieldLastOnlineAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_online_at", values[i])
			} else if value.Valid {
				_m.LastOnlineAt = new(time.Time)
				*_m.LastOnlineAt = value.Time
			}
		case channelstate.FieldLastOfflineAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_offline_at", values[i])
			} else if value.Valid {
				_m.LastOfflineAt = new(time.Time)
				*_m.LastOfflineAt = value.Time
			}
		case channelstate.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ChannelState.
// This includes values selected through modifiers, order, etc.
func (_m *ChannelState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ChannelState.
// Note that you need to call ChannelState.Unwrap() before calling this method if this ChannelState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChannelState) Update() *ChannelStateUpdateOne {
	return NewChannelStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChannelState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChannelState) Unwrap() *ChannelState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChannelState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChannelState) String() string {
	var builder strings.Builder
	builder.WriteString("ChannelState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("broadcaster_user_id=")
	builder.WriteString(_m.BroadcasterUserID)
	builder.WriteString(", ")
	builder.WriteString("is_live=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsLive))
	builder.WriteString(", ")
	if v := _m.LastOnlineAt; v != nil {
		builder.WriteString("last_online_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastOfflineAt; v != nil {
		builder.WriteString("last_offline_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ChannelStates is a parsable slice of ChannelState.
type ChannelStates []*ChannelState
