package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ServiceInterest holds the schema definition for a service's registered
// interest in one Twitch event type on one broadcaster channel.
//
// webhook_url is stored as "" (never NULL) so it can participate in the
// uniqueness tuple: Postgres treats NULLs as distinct in unique indexes.
type ServiceInterest struct {
	ent.Schema
}

// Fields of the ServiceInterest.
func (ServiceInterest) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("service_account_id", uuid.UUID{}),
		field.UUID("bot_account_id", uuid.UUID{}),
		field.String("event_type").
			MinLen(3).
			MaxLen(120),
		field.String("broadcaster_user_id").
			MinLen(1).
			MaxLen(64).
			Comment("Normalized: numeric id, or lowercase login until resolved"),
		field.Enum("transport").
			Values("websocket", "webhook").
			Default("websocket").
			Comment("Downstream delivery transport to the service"),
		field.String("webhook_url").
			Default(""),
		field.Time("last_heartbeat_at").
			Default(time.Now),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ServiceInterest.
func (ServiceInterest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("service_account_id", "bot_account_id", "event_type",
			"broadcaster_user_id", "transport", "webhook_url").
			Unique(),
		index.Fields("bot_account_id", "event_type", "broadcaster_user_id"),
		index.Fields("last_heartbeat_at"),
	}
}
