package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ServiceBotAccess holds the schema definition for the optional bot
// allow-list. When any rows exist for a service, that service may only
// register interests against the listed bots.
type ServiceBotAccess struct {
	ent.Schema
}

// Fields of the ServiceBotAccess.
func (ServiceBotAccess) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("service_account_id", uuid.UUID{}),
		field.UUID("bot_account_id", uuid.UUID{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ServiceBotAccess.
func (ServiceBotAccess) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("service_account_id", "bot_account_id").
			Unique(),
	}
}
