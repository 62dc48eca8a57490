// Code generated by ent, DO NOT EDIT.

package channelstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/streamgate/streamgate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldLTE(FieldID, id))
}

// BroadcasterUserID applies equality check predicate on the "broadcaster_user_id" field. It's identical to BroadcasterUserIDEQ.
func BroadcasterUserID(v string) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldEQ(FieldBroadcasterUserID, v))
}

// IsLive applies equality check predicate on the "is_live" field. It's identical to IsLiveEQ.
func IsLive(v bool) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldEQ(FieldIsLive, v))
}

// LastOnlineAt applies equality check predicate on the "last_online_at" field. It's identical to LastOnlineAtEQ.
func LastOnlineAt(v time.Time) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldEQ(FieldLastOnlineAt, v))
}

// LastOfflineAt applies equality check predicate on the "last_offline_at" field. It's identical to LastOfflineAtEQ.
func LastOfflineAt(v time.Time) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldEQ(FieldLastOfflineAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldEQ(FieldUpdatedAt, v))
}

// BroadcasterUserIDEQ applies the EQ predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDEQ(v string) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldEQ(FieldBroadcasterUserID, v))
}

// BroadcasterUserIDNEQ applies the NEQ predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDNEQ(v string) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldNEQ(FieldBroadcasterUserID, v))
}

// BroadcasterUserIDIn applies the In predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDIn(vs ...string) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldIn(FieldBroadcasterUserID, vs...))
}

// BroadcasterUserIDNotIn applies the NotIn predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDNotIn(vs ...string) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldNotIn(FieldBroadcasterUserID, vs...))
}

// BroadcasterUserIDGT applies the GT predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDGT(v string) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldGT(FieldBroadcasterUserID, v))
}

// BroadcasterUserIDGTE applies the GTE predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDGTE(v string) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldGTE(FieldBroadcasterUserID, v))
}

// BroadcasterUserIDLT applies the LT predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDLT(v string) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldLT(FieldBroadcasterUserID, v))
}

// BroadcasterUserIDLTE applies the LTE predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDLTE(v string) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldLTE(FieldBroadcasterUserID, v))
}

// BroadcasterUserIDContains applies the Contains predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDContains(v string) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldContains(FieldBroadcasterUserID, v))
}

// BroadcasterUserIDHasPrefix applies the HasPrefix predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDHasPrefix(v string) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldHasPrefix(FieldBroadcasterUserID, v))
}

// BroadcasterUserIDHasSuffix applies the HasSuffix predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDHasSuffix(v string) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldHasSuffix(FieldBroadcasterUserID, v))
}

// BroadcasterUserIDEqualFold applies the EqualFold predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDEqualFold(v string) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldEqualFold(FieldBroadcasterUserID, v))
}

// BroadcasterUserIDContainsFold applies the ContainsFold predicate on the "broadcaster_user_id" field.
func BroadcasterUserIDContainsFold(v string) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldContainsFold(FieldBroadcasterUserID, v))
}

// IsLiveEQ applies the EQ predicate on the "is_live" field.
func IsLiveEQ(v bool) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldEQ(FieldIsLive, v))
}

// IsLiveNEQ applies the NEQ predicate on the "is_live" field.
func IsLiveNEQ(v bool) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldNEQ(FieldIsLive, v))
}

// LastOnlineAtEQ applies the EQ predicate on the "last_online_at" field.
func LastOnlineAtEQ(v time.Time) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldEQ(FieldLastOnlineAt, v))
}

// LastOnlineAtNEQ applies the NEQ predicate on the "last_online_at" field.
func LastOnlineAtNEQ(v time.Time) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldNEQ(FieldLastOnlineAt, v))
}

// LastOnlineAtIn applies the In predicate on the "last_online_at" field.
func LastOnlineAtIn(vs ...time.Time) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldIn(FieldLastOnlineAt, vs...))
}

// LastOnlineAtNotIn applies the NotIn predicate on the "last_online_at" field.
func LastOnlineAtNotIn(vs ...time.Time) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldNotIn(FieldLastOnlineAt, vs...))
}

// LastOnlineAtGT applies the GT predicate on the "last_online_at" field.
func LastOnlineAtGT(v time.Time) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldGT(FieldLastOnlineAt, v))
}

// LastOnlineAtGTE applies the GTE predicate on the "last_online_at" field.
func LastOnlineAtGTE(v time.Time) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldGTE(FieldLastOnlineAt, v))
}

// LastOnlineAtLT applies the LT predicate on the "last_online_at" field.
func LastOnlineAtLT(v time.Time) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldLT(FieldLastOnlineAt, v))
}

// LastOnlineAtLTE applies the LTE predicate on the "last_online_at" field.
func LastOnlineAtLTE(v time.Time) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldLTE(FieldLastOnlineAt, v))
}

// LastOnlineAtIsNil applies the IsNil predicate on the "last_online_at" field.
func LastOnlineAtIsNil() predicate.ChannelState {
	return predicate.ChannelState(sql.FieldIsNull(FieldLastOnlineAt))
}

// LastOnlineAtNotNil applies the NotNil predicate on the "last_online_at" field.
func LastOnlineAtNotNil() predicate.ChannelState {
	return predicate.ChannelState(sql.FieldNotNull(FieldLastOnlineAt))
}

// LastOfflineAtEQ applies the EQ predicate on the "last_offline_at" field.
func LastOfflineAtEQ(v time.Time) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldEQ(FieldLastOfflineAt, v))
}

// LastOfflineAtNEQ applies the NEQ predicate on the "last_offline_at" field.
func LastOfflineAtNEQ(v time.Time) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldNEQ(FieldLastOfflineAt, v))
}

// LastOfflineAtIn applies the In predicate on the "last_offline_at" field.
func LastOfflineAtIn(vs ...time.Time) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldIn(FieldLastOfflineAt, vs...))
}

// LastOfflineAtNotIn applies the NotIn predicate on the "last_offline_at" field.
func LastOfflineAtNotIn(vs ...time.Time) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldNotIn(FieldLastOfflineAt, vs...))
}

// LastOfflineAtGT applies the GT predicate on the "last_offline_at" field.
func LastOfflineAtGT(v time.Time) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldGT(FieldLastOfflineAt, v))
}

// LastOfflineAtGTE applies the GTE predicate on the "last_offline_at" field.
func LastOfflineAtGTE(v time.Time) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldGTE(FieldLastOfflineAt, v))
}

// LastOfflineAtLT applies the LT predicate on the "last_offline_at" field.
func LastOfflineAtLT(v time.Time) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldLT(FieldLastOfflineAt, v))
}

// LastOfflineAtLTE applies the LTE predicate on the "last_offline_at" field.
func LastOfflineAtLTE(v time.Time) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldLTE(FieldLastOfflineAt, v))
}

// LastOfflineAtIsNil applies the IsNil predicate on the "last_offline_at" field.
func LastOfflineAtIsNil() predicate.ChannelState {
	return predicate.ChannelState(sql.FieldIsNull(FieldLastOfflineAt))
}

// LastOfflineAtNotNil applies the NotNil predicate on the "last_offline_at" field.
func LastOfflineAtNotNil() predicate.ChannelState {
	return predicate.ChannelState(sql.FieldNotNull(FieldLastOfflineAt))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ChannelState {
	return predicate.ChannelState(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChannelState) predicate.ChannelState {
	return predicate.ChannelState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChannelState) predicate.ChannelState {
	return predicate.ChannelState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChannelState) predicate.ChannelState {
	return predicate.ChannelState(sql.NotPredicates(p))
}
