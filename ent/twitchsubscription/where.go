// Code generated by ent, DO NOT EDIT.

package twitchsubscription

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/streamgate/streamgate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldLTE(FieldID, id))
}

// BotAccountID applies equality check predicate on the "bot_account_id" field. It's identical to BotAccountIDEQ.
func BotAccountID(v uuid.UUID) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldEQ(FieldBotAccountID, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldEQ(FieldEventType, v))
}

// BroadcasterUserID applies equality check predicate on the "broadcaster_user_id" field. It's identical to BroadcasterUserIDEQ.
func BroadcasterUserID(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldEQ(FieldBroadcasterUserID, v))
}

// TwitchSubscriptionID applies equality check predicate on the "twitch_subscription_id" field. It's identical to TwitchSubscriptionIDEQ.
func TwitchSubscriptionID(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldEQ(FieldTwitchSubscriptionID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldEQ(FieldSessionID, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldEQ(FieldLastError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldEQ(FieldUpdatedAt, v))
}

// BotAccountIDEQ applies the EQ predicate on the "bot_account_id" field.
func BotAccountIDEQ(v uuid.UUID) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldEQ(FieldBotAccountID, v))
}

// BotAccountIDNEQ applies the NEQ predicate on the "bot_account_id" field.
func BotAccountIDNEQ(v uuid.UUID) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldNEQ(FieldBotAccountID, v))
}

// BotAccountIDIn applies the In predicate on the "bot_account_id" field.
func BotAccountIDIn(vs ...uuid.UUID) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldIn(FieldBotAccountID, vs...))
}

// BotAccountIDNotIn applies the NotIn predicate on the "bot_account_id" field.
func BotAccountIDNotIn(vs ...uuid.UUID) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldNotIn(FieldBotAccountID, vs...))
}

// BotAccountIDGT applies the GT predicate on the "bot_account_id" field.
func BotAccountIDGT(v uuid.UUID) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldGT(FieldBotAccountID, v))
}

// BotAccountIDGTE applies the GTE predicate on the "bot_account_id" field.
func BotAccountIDGTE(v uuid.UUID) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldGTE(FieldBotAccountID, v))
}

// BotAccountIDLT applies the LT predicate on the "bot_account_id" field.
func BotAccountIDLT(v uuid.UUID) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldLT(FieldBotAccountID, v))
}

// BotAccountIDLTE applies the LTE predicate on the "bot_account_id" field.
func BotAccountIDLTE(v uuid.UUID) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldLTE(FieldBotAccountID, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldContainsFold(FieldEventType, v))
}

// BroadcasterUserIDEQ applies the EQ predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDEQ(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldEQ(FieldBroadcasterUserID, v))
}

// BroadcasterUserIDNEQ applies the NEQ predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDNEQ(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldNEQ(FieldBroadcasterUserID, v))
}

// BroadcasterUserIDIn applies the In predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDIn(vs ...string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldIn(FieldBroadcasterUserID, vs...))
}

// BroadcasterUserIDNotIn applies the NotIn predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDNotIn(vs ...string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldNotIn(FieldBroadcasterUserID, vs...))
}

// BroadcasterUserIDGT applies the GT predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDGT(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldGT(FieldBroadcasterUserID, v))
}

// BroadcasterUserIDGTE applies the GTE predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDGTE(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldGTE(FieldBroadcasterUserID, v))
}

// BroadcasterUserIDLT applies the LT predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDLT(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldLT(FieldBroadcasterUserID, v))
}

// BroadcasterUserIDLTE applies the LTE predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDLTE(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldLTE(FieldBroadcasterUserID, v))
}

// BroadcasterUserIDContains applies the Contains predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDContains(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldContains(FieldBroadcasterUserID, v))
}

// BroadcasterUserIDHasPrefix applies the HasPrefix predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDHasPrefix(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldHasPrefix(FieldBroadcasterUserID, v))
}

// BroadcasterUserIDHasSuffix applies the HasSuffix predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDHasSuffix(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldHasSuffix(FieldBroadcasterUserID, v))
}

// BroadcasterUserIDEqualFold applies the EqualFold predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDEqualFold(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldEqualFold(FieldBroadcasterUserID, v))
}

// BroadcasterUserIDContainsFold applies the ContainsFold predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDContainsFold(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldContainsFold(FieldBroadcasterUserID, v))
}

// TransportEQ applies the EQ predicate on the "transport" field.
func TransportEQ(v Transport) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldEQ(FieldTransport, v))
}

// TransportNEQ applies the NEQ predicate on the "transport" field.
func TransportNEQ(v Transport) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldNEQ(FieldTransport, v))
}

// TransportIn applies the In predicate on the "transport" field.
func TransportIn(vs ...Transport) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldIn(FieldTransport, vs...))
}

// TransportNotIn applies the NotIn predicate on the "transport" field.
func TransportNotIn(vs ...Transport) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldNotIn(FieldTransport, vs...))
}

// TwitchSubscriptionIDEQ applies the EQ predicate on the "twitch_subscription_id" field.
func TwitchSubscriptionIDEQ(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldEQ(FieldTwitchSubscriptionID, v))
}

// TwitchSubscriptionIDNEQ applies the NEQ predicate on the "twitch_subscription_id" field.
func TwitchSubscriptionIDNEQ(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldNEQ(FieldTwitchSubscriptionID, v))
}

// TwitchSubscriptionIDIn applies the In predicate on the "twitch_subscription_id" field.
func TwitchSubscriptionIDIn(vs ...string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldIn(FieldTwitchSubscriptionID, vs...))
}

// TwitchSubscriptionIDNotIn applies the NotIn predicate on the "twitch_subscription_id" field.
func TwitchSubscriptionIDNotIn(vs ...string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldNotIn(FieldTwitchSubscriptionID, vs...))
}

// TwitchSubscriptionIDGT applies the GT predicate on the "twitch_subscription_id" field.
func TwitchSubscriptionIDGT(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldGT(FieldTwitchSubscriptionID, v))
}

// TwitchSubscriptionIDGTE applies the GTE predicate on the "twitch_subscription_id" field.
func TwitchSubscriptionIDGTE(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldGTE(FieldTwitchSubscriptionID, v))
}

// TwitchSubscriptionIDLT applies the LT predicate on the "twitch_subscription_id" field.
func TwitchSubscriptionIDLT(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldLT(FieldTwitchSubscriptionID, v))
}

// TwitchSubscriptionIDLTE applies the LTE predicate on the "twitch_subscription_id" field.
func TwitchSubscriptionIDLTE(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldLTE(FieldTwitchSubscriptionID, v))
}

// TwitchSubscriptionIDContains applies the Contains predicate on the "twitch_subscription_id" field.
func TwitchSubscriptionIDContains(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldContains(FieldTwitchSubscriptionID, v))
}

// TwitchSubscriptionIDHasPrefix applies the HasPrefix predicate on the "twitch_subscription_id" field.
func TwitchSubscriptionIDHasPrefix(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldHasPrefix(FieldTwitchSubscriptionID, v))
}

// TwitchSubscriptionIDHasSuffix applies the HasSuffix predicate on the "twitch_subscription_id" field.
func TwitchSubscriptionIDHasSuffix(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldHasSuffix(FieldTwitchSubscriptionID, v))
}

// TwitchSubscriptionIDIsNil applies the IsNil predicate on the "twitch_subscription_id" field.
func TwitchSubscriptionIDIsNil() predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldIsNull(FieldTwitchSubscriptionID))
}

// TwitchSubscriptionIDNotNil applies the NotNil predicate on the "twitch_subscription_id" field.
func TwitchSubscriptionIDNotNil() predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldNotNull(FieldTwitchSubscriptionID))
}

// TwitchSubscriptionIDEqualFold applies the EqualFold predicate on the "twitch_subscription_id" field.
func TwitchSubscriptionIDEqualFold(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldEqualFold(FieldTwitchSubscriptionID, v))
}

// TwitchSubscriptionIDContainsFold applies the ContainsFold predicate on the "twitch_subscription_id" field.
func TwitchSubscriptionIDContainsFold(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldContainsFold(FieldTwitchSubscriptionID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldNotIn(FieldStatus, vs...))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldContainsFold(FieldSessionID, v))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldContainsFold(FieldLastError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TwitchSubscription) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TwitchSubscription) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TwitchSubscription) predicate.TwitchSubscription {
	return predicate.TwitchSubscription(sql.NotPredicates(p))
}
