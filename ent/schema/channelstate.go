package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ChannelState holds the schema definition for cached liveness of a
// broadcaster channel, maintained from stream.online/stream.offline
// notifications and refreshed from Helix on startup.
type ChannelState struct {
	ent.Schema
}

// Fields of the ChannelState.
func (ChannelState) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("broadcaster_user_id").
			Unique(),
		field.Bool("is_live").
			Default(false),
		field.Time("last_online_at").
			Optional().
			Nillable(),
		field.Time("last_offline_at").
			Optional().
			Nillable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
