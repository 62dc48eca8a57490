package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// BotAccount holds the schema definition for a Twitch bot identity whose user
// token authorizes EventSub subscriptions.
type BotAccount struct {
	ent.Schema
}

// Fields of the BotAccount.
func (BotAccount) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("twitch_user_id").
			Unique().
			Comment("Numeric Twitch user id of the bot"),
		field.String("twitch_login"),
		field.String("display_name").
			Optional(),
		field.String("access_token").
			Optional().
			Sensitive(),
		field.String("refresh_token").
			Optional().
			Sensitive(),
		field.Time("token_expires_at").
			Optional().
			Nillable(),
		field.Bool("enabled").
			Default(true).
			Comment("Cleared when Twitch reports user.authorization.revoke"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the BotAccount.
func (BotAccount) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("enabled"),
		index.Fields("twitch_login"),
	}
}
