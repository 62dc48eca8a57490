// Code generated by ent, DO NOT EDIT.

package botaccount

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/streamgate/streamgate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldLTE(FieldID, id))
}

// TwitchUserID applies equality check predicate on the "twitch_user_id" field. It's identical to TwitchUserIDEQ.
func TwitchUserID(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldEQ(FieldTwitchUserID, v))
}

// TwitchLogin applies equality check predicate on the "twitch_login" field. It's identical to TwitchLoginEQ.
func TwitchLogin(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldEQ(FieldTwitchLogin, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldEQ(FieldDisplayName, v))
}

// AccessToken applies equality check predicate on the "access_token" field. It's identical to AccessTokenEQ.
func AccessToken(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldEQ(FieldAccessToken, v))
}

// RefreshToken applies equality check predicate on the "refresh_token" field. It's identical to RefreshTokenEQ.
func RefreshToken(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldEQ(FieldRefreshToken, v))
}

// TokenExpiresAt applies equality check predicate on the "token_expires_at" field. It's identical to TokenExpiresAtEQ.
func TokenExpiresAt(v time.Time) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldEQ(FieldTokenExpiresAt, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldEQ(FieldEnabled, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldEQ(FieldCreatedAt, v))
}

// TwitchUserIDEQ applies the EQ predicate on the "twitch_user_id" field.
func TwitchUserIDEQ(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldEQ(FieldTwitchUserID, v))
}

// TwitchUserIDNEQ applies the NEQ predicate on the "twitch_user_id" field.
func TwitchUserIDNEQ(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldNEQ(FieldTwitchUserID, v))
}

// TwitchUserIDIn applies the In predicate on the "twitch_user_id" field.
func TwitchUserIDIn(vs ...string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldIn(FieldTwitchUserID, vs...))
}

// TwitchUserIDNotIn applies the NotIn predicate on the "twitch_user_id" field.
func TwitchUserIDNotIn(vs ...string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldNotIn(FieldTwitchUserID, vs...))
}

// TwitchUserIDGT applies the GT predicate on the "twitch_user_id" field.
func TwitchUserIDGT(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldGT(FieldTwitchUserID, v))
}

// TwitchUserIDGTE applies the GTE predicate on the "twitch_user_id" field.
func TwitchUserIDGTE(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldGTE(FieldTwitchUserID, v))
}

// TwitchUserIDLT applies the LT predicate on the "twitch_user_id" field.
func TwitchUserIDLT(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldLT(FieldTwitchUserID, v))
}

// TwitchUserIDLTE applies the LTE predicate on the "twitch_user_id" field.
func TwitchUserIDLTE(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldLTE(FieldTwitchUserID, v))
}

// TwitchUserIDContains applies the Contains predicate on the "twitch_user_id" field.
func TwitchUserIDContains(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldContains(FieldTwitchUserID, v))
}

// TwitchUserIDHasPrefix applies the HasPrefix predicate on the "twitch_user_id" field.
func TwitchUserIDHasPrefix(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldHasPrefix(FieldTwitchUserID, v))
}

// TwitchUserIDHasSuffix applies the HasSuffix predicate on the "twitch_user_id" field.
func TwitchUserIDHasSuffix(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldHasSuffix(FieldTwitchUserID, v))
}

// TwitchUserIDEqualFold applies the EqualFold predicate on the "twitch_user_id" field.
func TwitchUserIDEqualFold(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldEqualFold(FieldTwitchUserID, v))
}

// TwitchUserIDContainsFold applies the ContainsFold predicate on the "twitch_user_id" field.
func TwitchUserIDContainsFold(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldContainsFold(FieldTwitchUserID, v))
}

// TwitchLoginEQ applies the EQ predicate on the "twitch_login" field.
func TwitchLoginEQ(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldEQ(FieldTwitchLogin, v))
}

// TwitchLoginNEQ applies the NEQ predicate on the "twitch_login" field.
func TwitchLoginNEQ(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldNEQ(FieldTwitchLogin, v))
}

// TwitchLoginIn applies the In predicate on the "twitch_login" field.
func TwitchLoginIn(vs ...string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldIn(FieldTwitchLogin, vs...))
}

// TwitchLoginNotIn applies the NotIn predicate on the "twitch_login" field.
func TwitchLoginNotIn(vs ...string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldNotIn(FieldTwitchLogin, vs...))
}

// TwitchLoginGT applies the GT predicate on the "twitch_login" field.
func TwitchLoginGT(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldGT(FieldTwitchLogin, v))
}

// TwitchLoginGTE applies the GTE predicate on the "twitch_login" field.
func TwitchLoginGTE(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldGTE(FieldTwitchLogin, v))
}

// TwitchLoginLT applies the LT predicate on the "twitch_login" field.
func TwitchLoginLT(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldLT(FieldTwitchLogin, v))
}

// TwitchLoginLTE applies the LTE predicate on the "twitch_login" field.
func TwitchLoginLTE(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldLTE(FieldTwitchLogin, v))
}

// TwitchLoginContains applies the Contains predicate on the "twitch_login" field.
func TwitchLoginContains(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldContains(FieldTwitchLogin, v))
}

// TwitchLoginHasPrefix applies the HasPrefix predicate on the "twitch_login" field.
func TwitchLoginHasPrefix(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldHasPrefix(FieldTwitchLogin, v))
}

// TwitchLoginHasSuffix applies the HasSuffix predicate on the "twitch_login" field.
func TwitchLoginHasSuffix(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldHasSuffix(FieldTwitchLogin, v))
}

// TwitchLoginEqualFold applies the EqualFold predicate on the "twitch_login" field.
func TwitchLoginEqualFold(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldEqualFold(FieldTwitchLogin, v))
}

// TwitchLoginContainsFold applies the ContainsFold predicate on the "twitch_login" field.
func TwitchLoginContainsFold(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldContainsFold(FieldTwitchLogin, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameIsNil applies the IsNil predicate on the "display_name" field.
func DisplayNameIsNil() predicate.BotAccount {
	return predicate.BotAccount(sql.FieldIsNull(FieldDisplayName))
}

// DisplayNameNotNil applies the NotNil predicate on the "display_name" field.
func DisplayNameNotNil() predicate.BotAccount {
	return predicate.BotAccount(sql.FieldNotNull(FieldDisplayName))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldContainsFold(FieldDisplayName, v))
}

// AccessTokenEQ applies the EQ predicate on the "access_token" field.
func AccessTokenEQ(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldEQ(FieldAccessToken, v))
}

// AccessTokenNEQ applies the NEQ predicate on the "access_token" field.
func AccessTokenNEQ(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldNEQ(FieldAccessToken, v))
}

// AccessTokenIn applies the In predicate on the "access_token" field.
func AccessTokenIn(vs ...string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldIn(FieldAccessToken, vs...))
}

// AccessTokenNotIn applies the NotIn predicate on the "access_token" field.
func AccessTokenNotIn(vs ...string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldNotIn(FieldAccessToken, vs...))
}

// AccessTokenGT applies the GT predicate on the "access_token" field.
func AccessTokenGT(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldGT(FieldAccessToken, v))
}

// AccessTokenGTE applies the GTE predicate on the "access_token" field.
func AccessTokenGTE(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldGTE(FieldAccessToken, v))
}

// AccessTokenLT applies the LT predicate on the "access_token" field.
func AccessTokenLT(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldLT(FieldAccessToken, v))
}

// AccessTokenLTE applies the LTE predicate on the "access_token" field.
func AccessTokenLTE(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldLTE(FieldAccessToken, v))
}

// AccessTokenContains applies the Contains predicate on the "access_token" field.
func AccessTokenContains(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldContains(FieldAccessToken, v))
}

// AccessTokenHasPrefix applies the HasPrefix predicate on the "access_token" field.
func AccessTokenHasPrefix(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldHasPrefix(FieldAccessToken, v))
}

// AccessTokenHasSuffix applies the HasSuffix predicate on the "access_token" field.
func AccessTokenHasSuffix(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldHasSuffix(FieldAccessToken, v))
}

// AccessTokenIsNil applies the IsNil predicate on the "access_token" field.
func AccessTokenIsNil() predicate.BotAccount {
	return predicate.BotAccount(sql.FieldIsNull(FieldAccessToken))
}

// AccessTokenNotNil applies the NotNil predicate on the "access_token" field.
func AccessTokenNotNil() predicate.BotAccount {
	return predicate.BotAccount(sql.FieldNotNull(FieldAccessToken))
}

// AccessTokenEqualFold applies the EqualFold predicate on the "access_token" field.
func AccessTokenEqualFold(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldEqualFold(FieldAccessToken, v))
}

// AccessTokenContainsFold applies the ContainsFold predicate on the "access_token" field.
func AccessTokenContainsFold(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldContainsFold(FieldAccessToken, v))
}

// RefreshTokenEQ applies the EQ predicate on the "refresh_token" field.
func RefreshTokenEQ(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldEQ(FieldRefreshToken, v))
}

// RefreshTokenNEQ applies the NEQ predicate on the "refresh_token" field.
func RefreshTokenNEQ(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldNEQ(FieldRefreshToken, v))
}

// RefreshTokenIn applies the In predicate on the "refresh_token" field.
func RefreshTokenIn(vs ...string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldIn(FieldRefreshToken, vs...))
}

// RefreshTokenNotIn applies the NotIn predicate on the "refresh_token" field.
func RefreshTokenNotIn(vs ...string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldNotIn(FieldRefreshToken, vs...))
}

// RefreshTokenGT applies the GT predicate on the "refresh_token" field.
func RefreshTokenGT(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldGT(FieldRefreshToken, v))
}

// RefreshTokenGTE applies the GTE predicate on the "refresh_token" field.
func RefreshTokenGTE(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldGTE(FieldRefreshToken, v))
}

// RefreshTokenLT applies the LT predicate on the "refresh_token" field.
func RefreshTokenLT(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldLT(FieldRefreshToken, v))
}

// RefreshTokenLTE applies the LTE predicate on the "refresh_token" field.
func RefreshTokenLTE(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldLTE(FieldRefreshToken, v))
}

// RefreshTokenContains applies the Contains predicate on the "refresh_token" field.
func RefreshTokenContains(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldContains(FieldRefreshToken, v))
}

// RefreshTokenHasPrefix applies the HasPrefix predicate on the "refresh_token" field.
func RefreshTokenHasPrefix(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldHasPrefix(FieldRefreshToken, v))
}

// RefreshTokenHasSuffix applies the HasSuffix predicate on the "refresh_token" field.
func RefreshTokenHasSuffix(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldHasSuffix(FieldRefreshToken, v))
}

// RefreshTokenIsNil applies the IsNil predicate on the "refresh_token" field.
func RefreshTokenIsNil() predicate.BotAccount {
	return predicate.BotAccount(sql.FieldIsNull(FieldRefreshToken))
}

// RefreshTokenNotNil applies the NotNil predicate on the "refresh_token" field.
func RefreshTokenNotNil() predicate.BotAccount {
	return predicate.BotAccount(sql.FieldNotNull(FieldRefreshToken))
}

// RefreshTokenEqualFold applies the EqualFold predicate on the "refresh_token" field.
func RefreshTokenEqualFold(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldEqualFold(FieldRefreshToken, v))
}

// RefreshTokenContainsFold applies the ContainsFold predicate on the "refresh_token" field.
func RefreshTokenContainsFold(v string) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldContainsFold(FieldRefreshToken, v))
}

// TokenExpiresAtEQ applies the EQ predicate on the "token_expires_at" field.
func TokenExpiresAtEQ(v time.Time) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldEQ(FieldTokenExpiresAt, v))
}

// TokenExpiresAtNEQ applies the NEQ predicate on the "token_expires_at" field.
func TokenExpiresAtNEQ(v time.Time) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldNEQ(FieldTokenExpiresAt, v))
}

// TokenExpiresAtIn applies the In predicate on the "token_expires_at" field.
func TokenExpiresAtIn(vs ...time.Time) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldIn(FieldTokenExpiresAt, vs...))
}

// TokenExpiresAtNotIn applies the NotIn predicate on the "token_expires_at" field.
func TokenExpiresAtNotIn(vs ...time.Time) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldNotIn(FieldTokenExpiresAt, vs...))
}

// TokenExpiresAtGT applies the GT predicate on the "token_expires_at" field.
func TokenExpiresAtGT(v time.Time) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldGT(FieldTokenExpiresAt, v))
}

// TokenExpiresAtGTE applies the GTE predicate on the "token_expires_at" field.
func TokenExpiresAtGTE(v time.Time) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldGTE(FieldTokenExpiresAt, v))
}

// TokenExpiresAtLT applies the LT predicate on the "token_expires_at" field.
func TokenExpiresAtLT(v time.Time) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldLT(FieldTokenExpiresAt, v))
}

// TokenExpiresAtLTE applies the LTE predicate on the "token_expires_at" field.
func TokenExpiresAtLTE(v time.Time) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldLTE(FieldTokenExpiresAt, v))
}

// TokenExpiresAtIsNil applies the IsNil predicate on the "token_expires_at" field.
func TokenExpiresAtIsNil() predicate.BotAccount {
	return predicate.BotAccount(sql.FieldIsNull(FieldTokenExpiresAt))
}

// TokenExpiresAtNotNil applies the NotNil predicate on the "token_expires_at" field.
func TokenExpiresAtNotNil() predicate.BotAccount {
	return predicate.BotAccount(sql.FieldNotNull(FieldTokenExpiresAt))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldNEQ(FieldEnabled, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BotAccount {
	return predicate.BotAccount(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BotAccount) predicate.BotAccount {
	return predicate.BotAccount(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BotAccount) predicate.BotAccount {
	return predicate.BotAccount(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BotAccount) predicate.BotAccount {
	return predicate.BotAccount(sql.NotPredicates(p))
}
