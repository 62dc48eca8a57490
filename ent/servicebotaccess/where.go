// Code generated by ent, DO NOT EDIT.

package servicebotaccess

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/streamgate/streamgate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.FieldLTE(FieldID, id))
}

// ServiceAccountID applies equality check predicate on the "service_account_id" field. It's identical to ServiceAccountIDEQ.
func ServiceAccountID(v uuid.UUID) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.FieldEQ(FieldServiceAccountID, v))
}

// BotAccountID applies equality check predicate on the "bot_account_id" field. It's identical to BotAccountIDEQ.
func BotAccountID(v uuid.UUID) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.FieldEQ(FieldBotAccountID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.FieldEQ(FieldCreatedAt, v))
}

// ServiceAccountIDEQ applies the EQ predicate on the "service_account_id" field.
func ServiceAccountIDEQ(v uuid.UUID) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.FieldEQ(FieldServiceAccountID, v))
}

// ServiceAccountIDNEQ applies the NEQ predicate on the "service_account_id" field.
func ServiceAccountIDNEQ(v uuid.UUID) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.FieldNEQ(FieldServiceAccountID, v))
}

// ServiceAccountIDIn applies the In predicate on the "service_account_id" field.
func ServiceAccountIDIn(vs ...uuid.UUID) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.FieldIn(FieldServiceAccountID, vs...))
}

// ServiceAccountIDNotIn applies the NotIn predicate on the "service_account_id" field.
func ServiceAccountIDNotIn(vs ...uuid.UUID) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.FieldNotIn(FieldServiceAccountID, vs...))
}

// ServiceAccountIDGT applies the GT predicate on the "service_account_id" field.
func ServiceAccountIDGT(v uuid.UUID) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.FieldGT(FieldServiceAccountID, v))
}

// ServiceAccountIDGTE applies the GTE predicate on the "service_account_id" field.
func ServiceAccountIDGTE(v uuid.UUID) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.FieldGTE(FieldServiceAccountID, v))
}

// ServiceAccountIDLT applies the LT predicate on the "service_account_id" field.
func ServiceAccountIDLT(v uuid.UUID) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.FieldLT(FieldServiceAccountID, v))
}

// ServiceAccountIDLTE applies the LTE predicate on the "service_account_id" field.
func ServiceAccountIDLTE(v uuid.UUID) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.FieldLTE(FieldServiceAccountID, v))
}

// BotAccountIDEQ applies the EQ predicate on the "bot_account_id" field.
func BotAccountIDEQ(v uuid.UUID) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.FieldEQ(FieldBotAccountID, v))
}

// BotAccountIDNEQ applies the NEQ predicate on the "bot_account_id" field.
func BotAccountIDNEQ(v uuid.UUID) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.FieldNEQ(FieldBotAccountID, v))
}

// BotAccountIDIn applies the In predicate on the "bot_account_id" field.
func BotAccountIDIn(vs ...uuid.UUID) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.FieldIn(FieldBotAccountID, vs...))
}

// BotAccountIDNotIn applies the NotIn predicate on the "bot_account_id" field.
func BotAccountIDNotIn(vs ...uuid.UUID) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.FieldNotIn(FieldBotAccountID, vs...))
}

// BotAccountIDGT applies the GT predicate on the "bot_account_id" field.
func BotAccountIDGT(v uuid.UUID) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.FieldGT(FieldBotAccountID, v))
}

// BotAccountIDGTE applies the GTE predicate on the "bot_account_id" field.
func BotAccountIDGTE(v uuid.UUID) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.FieldGTE(FieldBotAccountID, v))
}

// BotAccountIDLT applies the LT predicate on the "bot_account_id" field.
func BotAccountIDLT(v uuid.UUID) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.FieldLT(FieldBotAccountID, v))
}

// BotAccountIDLTE applies the LTE predicate on the "bot_account_id" field.
func BotAccountIDLTE(v uuid.UUID) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.FieldLTE(FieldBotAccountID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ServiceBotAccess) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ServiceBotAccess) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ServiceBotAccess) predicate.ServiceBotAccess {
	return predicate.ServiceBotAccess(sql.NotPredicates(p))
}
