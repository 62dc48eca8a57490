package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ServiceAccount holds the schema definition for a downstream consumer service.
// Services authenticate with X-Client-Id / X-Client-Secret headers; only the
// PBKDF2 hash of the secret is stored.
type ServiceAccount struct {
	ent.Schema
}

// Fields of the ServiceAccount.
func (ServiceAccount) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("name").
			Comment("Human-readable service name"),
		field.String("client_id").
			Unique().
			Immutable(),
		field.String("client_secret_hash").
			Sensitive().
			Comment("pbkdf2_sha256$<iterations>$<salt>$<digest>"),
		field.Bool("enabled").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ServiceAccount.
func (ServiceAccount) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("enabled"),
	}
}
