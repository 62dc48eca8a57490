// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/streamgate/streamgate/ent/serviceruntimestats"
)

// ServiceRuntimeStats is the model entity for the ServiceRuntimeStats schema.
type ServiceRuntimeStats struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ServiceAccountID holds the value of the "service_account_id" field.
	ServiceAccountID uuid.UUID `json:"service_account_id,omitempty"`
	// TotalAPIRequests holds the value of the "total_api_requests" field.
	TotalAPIRequests int64 `json:"total_api_requests,omitempty"`
	// WsConnects holds the value of the "ws_connects" field.
	WsConnects int64 `json:"ws_connects,omitempty"`
	// WsDisconnects holds the value of the "ws_disconnects" field.
	WsDisconnects int64 `json:"ws_disconnects,omitempty"`
	// ActiveWsConnections holds the value of the "active_ws_connections" field.
	ActiveWsConnections int64 `json:"active_ws_connections,omitempty"`
	// EventsSentWs holds the value of the "events_sent_ws" field.
	EventsSentWs int64 `json:"events_sent_ws,omitempty"`
	// EventsSentWebhook holds the value of the "events_sent_webhook" field.
	EventsSentWebhook int64 `json:"events_sent_webhook,omitempty"`
	// WebhookFailures holds the value of the "webhook_failures" field.
	WebhookFailures int64 `json:"webhook_failures,omitempty"`
	// LastConnectAt holds the value of the "last_connect_at" field.
	LastConnectAt *time.Time `json:"last_connect_at,omitempty"`
	// LastDisconnectAt holds the value of the "last_disconnect_at" field.
	LastDisconnectAt *time.Time `json:"last_disconnect_at,omitempty"`
	// LastEventAt holds the value of the "last_event_at" field.
	LastEventAt *time.Time `json:"last_event_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ServiceRuntimeStats) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case serviceruntimestats.FieldTotalAPIRequests, serviceruntimestats.FieldWsConnects, serviceruntimestats.FieldWsDisconnects, serviceruntimestats.FieldActiveWsConnections, serviceruntimestats.FieldEventsSentWs, serviceruntimestats.FieldEventsSentWebhook, serviceruntimestats.FieldWebhookFailures:
			values[i] = new(sql.NullInt64)
		case serviceruntimestats.FieldLastConnectAt, serviceruntimestats.FieldLastDisconnectAt, serviceruntimestats.FieldLastEventAt, serviceruntimestats.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case serviceruntimestats.FieldID, serviceruntimestats.FieldServiceAccountID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ServiceRuntimeStats fields.
func (_m *ServiceRuntimeStats) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case serviceruntimestats.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case serviceruntimestats.FieldServiceAccountID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field service_account_id", values[i])
			} else if value != nil {
				_m.ServiceAccountID = *value
			}
		case serviceruntimestats.FieldTotalAPIRequests:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_api_requests", values[i])
			} else if value.Valid {
				_m.TotalAPIRequests = value.Int64
			}
		case serviceruntimestats.FieldWsConnects:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ws_connects", values[i])
			} else if value.Valid {
				_m.WsConnects = value.Int64
			}
		case serviceruntimestats.FieldWsDisconnects:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ws_disconnects", values[i])
			} else if value.Valid {
				_m.WsDisconnects = value.Int64
			}
		case serviceruntimestats.FieldActiveWsConnections:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field active_ws_connections", values[i])
			} else if value.Valid {
				_m.ActiveWsConnections = value.Int64
			}
		case serviceruntimestats.FieldEventsSentWs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field events_sent_ws", values[i])
			} else if value.Valid {
				_m.EventsSentWs = value.Int64
			}
		case serviceruntimestats.FieldEventsSentWebhook:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field events_sent_webhook", values[i])
			} else if value.Valid {
				_m.EventsSentWebhook = value.Int64
			}
		case serviceruntimestats.FieldWebhookFailures:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field webhook_failures", values[i])
			} else if value.Valid {
				_m.WebhookFailures = value.Int64
			}
		case serviceruntimestats.FieldLastConnectAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_connect_at", values[i])
			} else if value.Valid {
				_m.LastConnectAt = new(time.Time)
				*_m.LastConnectAt = value.Time
			}
		case serviceruntimestats.FieldLastDisconnectAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_disconnect_at", values[i])
			} else if value.Valid {
				_m.LastDisconnectAt = new(time.Time)
				*_m.LastDisconnectAt = value.Time
			}
		case serviceruntimestats.FieldLastEventAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_event_at", values[i])
			} else if value.Valid {
				_m.LastEventAt = new(time.Time)
				*_m.LastEventAt = value.Time
			}
		case serviceruntimestats.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ServiceRuntimeStats.
// This includes values selected through modifiers, order, etc.
func (_m *ServiceRuntimeStats) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ServiceRuntimeStats.
// Note that you need to call ServiceRuntimeStats.Unwrap() before calling this method if this ServiceRuntimeStats
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ServiceRuntimeStats) Update() *ServiceRuntimeStatsUpdateOne {
	return NewServiceRuntimeStatsClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ServiceRuntimeStats entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ServiceRuntimeStats) Unwrap() *ServiceRuntimeStats {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ServiceRuntimeStats is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ServiceRuntimeStats) String() string {
	var builder strings.Builder
	builder.WriteString("ServiceRuntimeStats(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("service_account_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ServiceAccountID))
	builder.WriteString(", ")
	builder.WriteString("total_api_requests=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAPIRequests))
	builder.WriteString(", ")
	builder.WriteString("ws_connects=")
	builder.WriteString(fmt.Sprintf("%v", _m.WsConnects))
	builder.WriteString(", ")
	builder.WriteString("ws_disconnects=")
	builder.WriteString(fmt.Sprintf("%v", _m.WsDisconnects))
	builder.WriteString(", ")
	builder.WriteString("active_ws_connections=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActiveWsConnections))
	builder.WriteString(", ")
	builder.WriteString("events_sent_ws=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventsSentWs))
	builder.WriteString(", ")
	builder.WriteString("events_sent_webhook=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventsSentWebhook))
	builder.WriteString(", ")
	builder.WriteString("webhook_failures=")
	builder.WriteString(fmt.Sprintf("%v", _m.WebhookFailures))
	builder.WriteString(", ")
	if v := _m.LastConnectAt; v != nil {
		builder.WriteString("last_connect_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastDisconnectAt; v != nil {
		builder.WriteString("last_disconnect_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastEventAt; v != nil {
		builder.WriteString("last_event_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ServiceRuntimeStatsSlice is a parsable slice of ServiceRuntimeStats.
type ServiceRuntimeStatsSlice []*ServiceRuntimeStats
