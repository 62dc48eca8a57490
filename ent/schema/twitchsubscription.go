package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// TwitchSubscription holds the schema definition for an upstream EventSub
// subscription actually held at Twitch. At most one row exists per
// (bot_account_id, event_type, broadcaster_user_id) regardless of how many
// service interests map onto it.
type TwitchSubscription struct {
	ent.Schema
}

// Fields of the TwitchSubscription.
func (TwitchSubscription) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("bot_account_id", uuid.UUID{}),
		field.String("event_type"),
		field.String("broadcaster_user_id"),
		field.Enum("transport").
			Values("websocket", "webhook").
			Comment("Upstream transport toward Twitch"),
		field.String("twitch_subscription_id").
			Optional().
			Nillable().
			Comment("Id assigned by Twitch; empty until creation succeeds"),
		field.Enum("status").
			Values("pending", "enabled", "failed", "revoked").
			Default("pending"),
		field.String("session_id").
			Optional().
			Nillable().
			Comment("Upstream WS session the subscription is bound to"),
		field.String("last_error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the TwitchSubscription.
func (TwitchSubscription) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("bot_account_id", "event_type", "broadcaster_user_id").
			Unique(),
		index.Fields("status"),
		index.Fields("session_id"),
	}
}
