// Code generated by ent, DO NOT EDIT.

package serviceinterest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/streamgate/streamgate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldLTE(FieldID, id))
}

// ServiceAccountID applies equality check predicate on the "service_account_id" field. It's identical to ServiceAccountIDEQ.
func ServiceAccountID(v uuid.UUID) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldEQ(FieldServiceAccountID, v))
}

// BotAccountID applies equality check predicate on the "bot_account_id" field. It's identical to BotAccountIDEQ.
func BotAccountID(v uuid.UUID) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldEQ(FieldBotAccountID, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldEQ(FieldEventType, v))
}

// BroadcasterUserID applies equality check predicate on the "broadcaster_user_id" field. It's identical to BroadcasterUserIDEQ.
func BroadcasterUserID(v string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldEQ(FieldBroadcasterUserID, v))
}

// WebhookURL applies equality check predicate on the "webhook_url" field. It's identical to WebhookURLEQ.
func WebhookURL(v string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldEQ(FieldWebhookURL, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldEQ(FieldCreatedAt, v))
}

// ServiceAccountIDEQ applies the EQ predicate on the "service_account_id" field.
func ServiceAccountIDEQ(v uuid.UUID) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldEQ(FieldServiceAccountID, v))
}

// ServiceAccountIDNEQ applies the NEQ predicate on the "service_account_id" field.
func ServiceAccountIDNEQ(v uuid.UUID) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldNEQ(FieldServiceAccountID, v))
}

// ServiceAccountIDIn applies the In predicate on the "service_account_id" field.
func ServiceAccountIDIn(vs ...uuid.UUID) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldIn(FieldServiceAccountID, vs...))
}

// ServiceAccountIDNotIn applies the NotIn predicate on the "service_account_id" field.
func ServiceAccountIDNotIn(vs ...uuid.UUID) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldNotIn(FieldServiceAccountID, vs...))
}

// ServiceAccountIDGT applies the GT predicate on the "service_account_id" field.
func ServiceAccountIDGT(v uuid.UUID) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldGT(FieldServiceAccountID, v))
}

// ServiceAccountIDGTE applies the GTE predicate on the "service_account_id" field.
func ServiceAccountIDGTE(v uuid.UUID) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldGTE(FieldServiceAccountID, v))
}

// ServiceAccountIDLT applies the LT predicate on the "service_account_id" field.
func ServiceAccountIDLT(v uuid.UUID) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldLT(FieldServiceAccountID, v))
}

// ServiceAccountIDLTE applies the LTE predicate on the "service_account_id" field.
func ServiceAccountIDLTE(v uuid.UUID) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldLTE(FieldServiceAccountID, v))
}

// BotAccountIDEQ applies the EQ predicate on the "bot_account_id" field.
func BotAccountIDEQ(v uuid.UUID) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldEQ(FieldBotAccountID, v))
}

// BotAccountIDNEQ applies the NEQ predicate on the "bot_account_id" field.
func BotAccountIDNEQ(v uuid.UUID) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldNEQ(FieldBotAccountID, v))
}

// BotAccountIDIn applies the In predicate on the "bot_account_id" field.
func BotAccountIDIn(vs ...uuid.UUID) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldIn(FieldBotAccountID, vs...))
}

// BotAccountIDNotIn applies the NotIn predicate on the "bot_account_id" field.
func BotAccountIDNotIn(vs ...uuid.UUID) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldNotIn(FieldBotAccountID, vs...))
}

// BotAccountIDGT applies the GT predicate on the "bot_account_id" field.
func BotAccountIDGT(v uuid.UUID) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldGT(FieldBotAccountID, v))
}

// BotAccountIDGTE applies the GTE predicate on the "bot_account_id" field.
func BotAccountIDGTE(v uuid.UUID) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldGTE(FieldBotAccountID, v))
}

// BotAccountIDLT applies the LT predicate on the "bot_account_id" field.
func BotAccountIDLT(v uuid.UUID) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldLT(FieldBotAccountID, v))
}

// BotAccountIDLTE applies the LTE predicate on the "bot_account_id" field.
func BotAccountIDLTE(v uuid.UUID) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldLTE(FieldBotAccountID, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldContainsFold(FieldEventType, v))
}

// BroadcasterUserIDEQ applies the EQ predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDEQ(v string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldEQ(FieldBroadcasterUserID, v))
}

// BroadcasterUserIDNEQ applies the NEQ predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDNEQ(v string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldNEQ(FieldBroadcasterUserID, v))
}

// BroadcasterUserIDIn applies the In predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDIn(vs ...string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldIn(FieldBroadcasterUserID, vs...))
}

// BroadcasterUserIDNotIn applies the NotIn predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDNotIn(vs ...string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldNotIn(FieldBroadcasterUserID, vs...))
}

// BroadcasterUserIDGT applies the GT predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDGT(v string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldGT(FieldBroadcasterUserID, v))
}

// BroadcasterUserIDGTE applies the GTE predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDGTE(v string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldGTE(FieldBroadcasterUserID, v))
}

// BroadcasterUserIDLT applies the LT predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDLT(v string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldLT(FieldBroadcasterUserID, v))
}

// BroadcasterUserIDLTE applies the LTE predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDLTE(v string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldLTE(FieldBroadcasterUserID, v))
}

// BroadcasterUserIDContains applies the Contains predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDContains(v string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldContains(FieldBroadcasterUserID, v))
}

// BroadcasterUserIDHasPrefix applies the HasPrefix predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDHasPrefix(v string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldHasPrefix(FieldBroadcasterUserID, v))
}

// BroadcasterUserIDHasSuffix applies the HasSuffix predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDHasSuffix(v string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldHasSuffix(FieldBroadcasterUserID, v))
}

// BroadcasterUserIDEqualFold applies the EqualFold predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDEqualFold(v string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldEqualFold(FieldBroadcasterUserID, v))
}

// BroadcasterUserIDContainsFold applies the ContainsFold predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDContainsFold(v string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldContainsFold(FieldBroadcasterUserID, v))
}

// TransportEQ applies the EQ predicate on the "transport" field.
func TransportEQ(v Transport) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldEQ(FieldTransport, v))
}

// TransportNEQ applies the NEQ predicate on the "transport" field.
func TransportNEQ(v Transport) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldNEQ(FieldTransport, v))
}

// TransportIn applies the In predicate on the "transport" field.
func TransportIn(vs ...Transport) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldIn(FieldTransport, vs...))
}

// TransportNotIn applies the NotIn predicate on the "transport" field.
func TransportNotIn(vs ...Transport) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldNotIn(FieldTransport, vs...))
}

// WebhookURLEQ applies the EQ predicate on the "webhook_url" field.
func WebhookURLEQ(v string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldEQ(FieldWebhookURL, v))
}

// WebhookURLNEQ applies the NEQ predicate on the "webhook_url" field.
func WebhookURLNEQ(v string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldNEQ(FieldWebhookURL, v))
}

// WebhookURLIn applies the In predicate on the "webhook_url" field.
func WebhookURLIn(vs ...string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldIn(FieldWebhookURL, vs...))
}

// WebhookURLNotIn applies the NotIn predicate on the "webhook_url" field.
func WebhookURLNotIn(vs ...string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldNotIn(FieldWebhookURL, vs...))
}

// WebhookURLGT applies the GT predicate on the "webhook_url" field.
func WebhookURLGT(v string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldGT(FieldWebhookURL, v))
}

// WebhookURLGTE applies the GTE predicate on the "webhook_url" field.
func WebhookURLGTE(v string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldGTE(FieldWebhookURL, v))
}

// WebhookURLLT applies the LT predicate on the "webhook_url" field.
func WebhookURLLT(v string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldLT(FieldWebhookURL, v))
}

// WebhookURLLTE applies the LTE predicate on the "webhook_url" field.
func WebhookURLLTE(v string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldLTE(FieldWebhookURL, v))
}

// WebhookURLContains applies the Contains predicate on the "webhook_url" field.
func WebhookURLContains(v string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldContains(FieldWebhookURL, v))
}

// WebhookURLHasPrefix applies the HasPrefix predicate on the "webhook_url" field.
func WebhookURLHasPrefix(v string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldHasPrefix(FieldWebhookURL, v))
}

// WebhookURLHasSuffix applies the HasSuffix predicate on the "webhook_url" field.
func WebhookURLHasSuffix(v string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldHasSuffix(FieldWebhookURL, v))
}

// WebhookURLEqualFold applies the EqualFold predicate on the "webhook_url" field.
func WebhookURLEqualFold(v string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldEqualFold(FieldWebhookURL, v))
}

// WebhookURLContainsFold applies the ContainsFold predicate on the "webhook_url" field.
func WebhookURLContainsFold(v string) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldContainsFold(FieldWebhookURL, v))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ServiceInterest) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ServiceInterest) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ServiceInterest) predicate.ServiceInterest {
	return predicate.ServiceInterest(sql.NotPredicates(p))
}
