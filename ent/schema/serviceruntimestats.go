package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ServiceRuntimeStats holds the schema definition for per-service delivery
// counters. One row per service account, updated by the fan-out hub and the
// API auth layer.
type ServiceRuntimeStats struct {
	ent.Schema
}

// Fields of the ServiceRuntimeStats.
func (ServiceRuntimeStats) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("service_account_id", uuid.UUID{}).
			Unique(),
		field.Int64("total_api_requests").
			Default(0),
		field.Int64("ws_connects").
			Default(0),
		field.Int64("ws_disconnects").
			Default(0),
		field.Int64("active_ws_connections").
			Default(0),
		field.Int64("events_sent_ws").
			Default(0),
		field.Int64("events_sent_webhook").
			Default(0),
		field.Int64("webhook_failures").
			Default(0),
		field.Time("last_connect_at").
			Optional().
			Nillable(),
		field.Time("last_disconnect_at").
			Optional().
			Nillable(),
		field.Time("last_event_at").
			Optional().
			Nillable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
