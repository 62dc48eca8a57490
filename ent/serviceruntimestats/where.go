// Code generated by ent, DO NOT EDIT.

package serviceruntimestats

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/streamgate/streamgate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldLTE(FieldID, id))
}

// ServiceAccountID applies equality check predicate on the "service_account_id" field. It's identical to ServiceAccountIDEQ.
func ServiceAccountID(v uuid.UUID) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldEQ(FieldServiceAccountID, v))
}

// TotalAPIRequests applies equality check predicate on the "total_api_requests" field. It's identical to TotalAPIRequestsEQ.
func TotalAPIRequests(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldEQ(FieldTotalAPIRequests, v))
}

// WsConnects applies equality check predicate on the "ws_connects" field. It's identical to WsConnectsEQ.
func WsConnects(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldEQ(FieldWsConnects, v))
}

// WsDisconnects applies equality check predicate on the "ws_disconnects" field. It's identical to WsDisconnectsEQ.
func WsDisconnects(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldEQ(FieldWsDisconnects, v))
}

// ActiveWsConnections applies equality check predicate on the "active_ws_connections" field. It's identical to ActiveWsConnectionsEQ.
func ActiveWsConnections(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldEQ(FieldActiveWsConnections, v))
}

// EventsSentWs applies equality check predicate on the "events_sent_ws" field. It's identical to EventsSentWsEQ.
func EventsSentWs(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldEQ(FieldEventsSentWs, v))
}

// EventsSentWebhook applies equality check predicate on the "events_sent_webhook" field. It's identical to EventsSentWebhookEQ.
func EventsSentWebhook(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldEQ(FieldEventsSentWebhook, v))
}

// WebhookFailures applies equality check predicate on the "webhook_failures" field. It's identical to WebhookFailuresEQ.
func WebhookFailures(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldEQ(FieldWebhookFailures, v))
}

// LastConnectAt applies equality check predicate on the "last_connect_at" field. It's identical to LastConnectAtEQ.
func LastConnectAt(v time.Time) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldEQ(FieldLastConnectAt, v))
}

// LastDisconnectAt applies equality check predicate on the "last_disconnect_at" field. It's identical to LastDisconnectAtEQ.
func LastDisconnectAt(v time.Time) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldEQ(FieldLastDisconnectAt, v))
}

// LastEventAt applies equality check predicate on the "last_event_at" field. It's identical to LastEventAtEQ.
func LastEventAt(v time.Time) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldEQ(FieldLastEventAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldEQ(FieldUpdatedAt, v))
}

// ServiceAccountIDEQ applies the EQ predicate on the "service_account_id" field.
func ServiceAccountIDEQ(v uuid.UUID) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldEQ(FieldServiceAccountID, v))
}

// ServiceAccountIDNEQ applies the NEQ predicate on the "service_account_id" field.
func ServiceAccountIDNEQ(v uuid.UUID) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldNEQ(FieldServiceAccountID, v))
}

// ServiceAccountIDIn applies the In predicate on the "service_account_id" field.
func ServiceAccountIDIn(vs ...uuid.UUID) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldIn(FieldServiceAccountID, vs...))
}

// ServiceAccountIDNotIn applies the NotIn predicate on the "service_account_id" field.
func ServiceAccountIDNotIn(vs ...uuid.UUID) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldNotIn(FieldServiceAccountID, vs...))
}

// ServiceAccountIDGT applies the GT predicate on the "service_account_id" field.
func ServiceAccountIDGT(v uuid.UUID) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldGT(FieldServiceAccountID, v))
}

// ServiceAccountIDGTE applies the GTE predicate on the "service_account_id" field.
func ServiceAccountIDGTE(v uuid.UUID) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldGTE(FieldServiceAccountID, v))
}

// ServiceAccountIDLT applies the LT predicate on the "service_account_id" field.
func ServiceAccountIDLT(v uuid.UUID) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldLT(FieldServiceAccountID, v))
}

// ServiceAccountIDLTE applies the LTE predicate on the "service_account_id" field.
func ServiceAccountIDLTE(v uuid.UUID) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldLTE(FieldServiceAccountID, v))
}

// TotalAPIRequestsEQ applies the EQ predicate on the "total_api_requests" field.
func TotalAPIRequestsEQ(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldEQ(FieldTotalAPIRequests, v))
}

// TotalAPIRequestsNEQ applies the NEQ predicate on the "total_api_requests" field.
func TotalAPIRequestsNEQ(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldNEQ(FieldTotalAPIRequests, v))
}

// TotalAPIRequestsIn applies the In predicate on the "total_api_requests" field.
func TotalAPIRequestsIn(vs ...int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldIn(FieldTotalAPIRequests, vs...))
}

// TotalAPIRequestsNotIn applies the NotIn predicate on the "total_api_requests" field.
func TotalAPIRequestsNotIn(vs ...int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldNotIn(FieldTotalAPIRequests, vs...))
}

// TotalAPIRequestsGT applies the GT predicate on the "total_api_requests" field.
func TotalAPIRequestsGT(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldGT(FieldTotalAPIRequests, v))
}

// TotalAPIRequestsGTE applies the GTE predicate on the "total_api_requests" field.
func TotalAPIRequestsGTE(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldGTE(FieldTotalAPIRequests, v))
}

// TotalAPIRequestsLT applies the LT predicate on the "total_api_requests" field.
func TotalAPIRequestsLT(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldLT(FieldTotalAPIRequests, v))
}

// TotalAPIRequestsLTE applies the LTE predicate on the "total_api_requests" field.
func TotalAPIRequestsLTE(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldLTE(FieldTotalAPIRequests, v))
}

// WsConnectsEQ applies the EQ predicate on the "ws_connects" field.
func WsConnectsEQ(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldEQ(FieldWsConnects, v))
}

// WsConnectsNEQ applies the NEQ predicate on the "ws_connects" field.
func WsConnectsNEQ(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldNEQ(FieldWsConnects, v))
}

// WsConnectsIn applies the In predicate on the "ws_connects" field.
func WsConnectsIn(vs ...int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldIn(FieldWsConnects, vs...))
}

// WsConnectsNotIn applies the NotIn predicate on the "ws_connects" field.
func WsConnectsNotIn(vs ...int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldNotIn(FieldWsConnects, vs...))
}

// WsConnectsGT applies the GT predicate on the "ws_connects" field.
func WsConnectsGT(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldGT(FieldWsConnects, v))
}

// WsConnectsGTE applies the GTE predicate on the "ws_connects" field.
func WsConnectsGTE(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldGTE(FieldWsConnects, v))
}

// WsConnectsLT applies the LT predicate on the "ws_connects" field.
func WsConnectsLT(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldLT(FieldWsConnects, v))
}

// WsConnectsLTE applies the LTE predicate on the "ws_connects" field.
func WsConnectsLTE(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldLTE(FieldWsConnects, v))
}

// WsDisconnectsEQ applies the EQ predicate on the "ws_disconnects" field.
func WsDisconnectsEQ(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldEQ(FieldWsDisconnects, v))
}

// WsDisconnectsNEQ applies the NEQ predicate on the "ws_disconnects" field.
func WsDisconnectsNEQ(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldNEQ(FieldWsDisconnects, v))
}

// WsDisconnectsIn applies the In predicate on the "ws_disconnects" field.
func WsDisconnectsIn(vs ...int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldIn(FieldWsDisconnects, vs...))
}

// WsDisconnectsNotIn applies the NotIn predicate on the "ws_disconnects" field.
func WsDisconnectsNotIn(vs ...int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldNotIn(FieldWsDisconnects, vs...))
}

// WsDisconnectsGT applies the GT predicate on the "ws_disconnects" field.
func WsDisconnectsGT(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldGT(FieldWsDisconnects, v))
}

// WsDisconnectsGTE applies the GTE predicate on the "ws_disconnects" field.
func WsDisconnectsGTE(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldGTE(FieldWsDisconnects, v))
}

// WsDisconnectsLT applies the LT predicate on the "ws_disconnects" field.
func WsDisconnectsLT(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldLT(FieldWsDisconnects, v))
}

// WsDisconnectsLTE applies the LTE predicate on the "ws_disconnects" field.
func WsDisconnectsLTE(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldLTE(FieldWsDisconnects, v))
}

// ActiveWsConnectionsEQ applies the EQ predicate on the "active_ws_connections" field.
func ActiveWsConnectionsEQ(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldEQ(FieldActiveWsConnections, v))
}

// ActiveWsConnectionsNEQ applies the NEQ predicate on the "active_ws_connections" field.
func ActiveWsConnectionsNEQ(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldNEQ(FieldActiveWsConnections, v))
}

// ActiveWsConnectionsIn applies the In predicate on the "active_ws_connections" field.
func ActiveWsConnectionsIn(vs ...int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldIn(FieldActiveWsConnections, vs...))
}

// ActiveWsConnectionsNotIn applies the NotIn predicate on the "active_ws_connections" field.
func ActiveWsConnectionsNotIn(vs ...int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldNotIn(FieldActiveWsConnections, vs...))
}

// ActiveWsConnectionsGT applies the GT predicate on the "active_ws_connections" field.
func ActiveWsConnectionsGT(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldGT(FieldActiveWsConnections, v))
}

// ActiveWsConnectionsGTE applies the GTE predicate on the "active_ws_connections" field.
func ActiveWsConnectionsGTE(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldGTE(FieldActiveWsConnections, v))
}

// ActiveWsConnectionsLT applies the LT predicate on the "active_ws_connections" field.
func ActiveWsConnectionsLT(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldLT(FieldActiveWsConnections, v))
}

// ActiveWsConnectionsLTE applies the LTE predicate on the "active_ws_connections" field.
func ActiveWsConnectionsLTE(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldLTE(FieldActiveWsConnections, v))
}

// EventsSentWsEQ applies the EQ predicate on the "events_sent_ws" field.
func EventsSentWsEQ(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldEQ(FieldEventsSentWs, v))
}

// EventsSentWsNEQ applies the NEQ predicate on the "events_sent_ws" field.
func EventsSentWsNEQ(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldNEQ(FieldEventsSentWs, v))
}

// EventsSentWsIn applies the In predicate on the "events_sent_ws" field.
func EventsSentWsIn(vs ...int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldIn(FieldEventsSentWs, vs...))
}

// EventsSentWsNotIn applies the NotIn predicate on the "events_sent_ws" field.
func EventsSentWsNotIn(vs ...int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldNotIn(FieldEventsSentWs, vs...))
}

// EventsSentWsGT applies the GT predicate on the "events_sent_ws" field.
func EventsSentWsGT(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldGT(FieldEventsSentWs, v))
}

// EventsSentWsGTE applies the GTE predicate on the "events_sent_ws" field.
func EventsSentWsGTE(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldGTE(FieldEventsSentWs, v))
}

// EventsSentWsLT applies the LT predicate on the "events_sent_ws" field.
func EventsSentWsLT(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldLT(FieldEventsSentWs, v))
}

// EventsSentWsLTE applies the LTE predicate on the "events_sent_ws" field.
func EventsSentWsLTE(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldLTE(FieldEventsSentWs, v))
}

// EventsSentWebhookEQ applies the EQ predicate on the "events_sent_webhook" field.
func EventsSentWebhookEQ(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldEQ(FieldEventsSentWebhook, v))
}

// EventsSentWebhookNEQ applies the NEQ predicate on the "events_sent_webhook" field.
func EventsSentWebhookNEQ(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldNEQ(FieldEventsSentWebhook, v))
}

// EventsSentWebhookIn applies the In predicate on the "events_sent_webhook" field.
func EventsSentWebhookIn(vs ...int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldIn(FieldEventsSentWebhook, vs...))
}

// EventsSentWebhookNotIn applies the NotIn predicate on the "events_sent_webhook" field.
func EventsSentWebhookNotIn(vs ...int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldNotIn(FieldEventsSentWebhook, vs...))
}

// EventsSentWebhookGT applies the GT predicate on the "events_sent_webhook" field.
func EventsSentWebhookGT(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldGT(FieldEventsSentWebhook, v))
}

// EventsSentWebhookGTE applies the GTE predicate on the "events_sent_webhook" field.
func EventsSentWebhookGTE(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldGTE(FieldEventsSentWebhook, v))
}

// EventsSentWebhookLT applies the LT predicate on the "events_sent_webhook" field.
func EventsSentWebhookLT(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldLT(FieldEventsSentWebhook, v))
}

// EventsSentWebhookLTE applies the LTE predicate on the "events_sent_webhook" field.
func EventsSentWebhookLTE(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldLTE(FieldEventsSentWebhook, v))
}

// WebhookFailuresEQ applies the EQ predicate on the "webhook_failures" field.
func WebhookFailuresEQ(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldEQ(FieldWebhookFailures, v))
}

// WebhookFailuresNEQ applies the NEQ predicate on the "webhook_failures" field.
func WebhookFailuresNEQ(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldNEQ(FieldWebhookFailures, v))
}

// WebhookFailuresIn applies the In predicate on the "webhook_failures" field.
func WebhookFailuresIn(vs ...int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldIn(FieldWebhookFailures, vs...))
}

// WebhookFailuresNotIn applies the NotIn predicate on the "webhook_failures" field.
func WebhookFailuresNotIn(vs ...int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldNotIn(FieldWebhookFailures, vs...))
}

// WebhookFailuresGT applies the GT predicate on the "webhook_failures" field.
func WebhookFailuresGT(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldGT(FieldWebhookFailures, v))
}

// WebhookFailuresGTE applies the GTE predicate on the "webhook_failures" field.
func WebhookFailuresGTE(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldGTE(FieldWebhookFailures, v))
}

// WebhookFailuresLT applies the LT predicate on the "webhook_failures" field.
func WebhookFailuresLT(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldLT(FieldWebhookFailures, v))
}

// WebhookFailuresLTE applies the LTE predicate on the "webhook_failures" field.
func WebhookFailuresLTE(v int64) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldLTE(FieldWebhookFailures, v))
}

// LastConnectAtEQ applies the EQ predicate on the "last_connect_at" field.
func LastConnectAtEQ(v time.Time) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldEQ(FieldLastConnectAt, v))
}

// LastConnectAtNEQ applies the NEQ predicate on the "last_connect_at" field.
func LastConnectAtNEQ(v time.Time) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldNEQ(FieldLastConnectAt, v))
}

// LastConnectAtIn applies the In predicate on the "last_connect_at" field.
func LastConnectAtIn(vs ...time.Time) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldIn(FieldLastConnectAt, vs...))
}

// LastConnectAtNotIn applies the NotIn predicate on the "last_connect_at" field.
func LastConnectAtNotIn(vs ...time.Time) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldNotIn(FieldLastConnectAt, vs...))
}

// LastConnectAtGT applies the GT predicate on the "last_connect_at" field.
func LastConnectAtGT(v time.Time) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldGT(FieldLastConnectAt, v))
}

// LastConnectAtGTE applies the GTE predicate on the "last_connect_at" field.
func LastConnectAtGTE(v time.Time) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldGTE(FieldLastConnectAt, v))
}

// LastConnectAtLT applies the LT predicate on the "last_connect_at" field.
func LastConnectAtLT(v time.Time) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldLT(FieldLastConnectAt, v))
}

// LastConnectAtLTE applies the LTE predicate on the "last_connect_at" field.
func LastConnectAtLTE(v time.Time) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldLTE(FieldLastConnectAt, v))
}

// LastConnectAtIsNil applies the IsNil predicate on the "last_connect_at" field.
func LastConnectAtIsNil() predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldIsNull(FieldLastConnectAt))
}

// LastConnectAtNotNil applies the NotNil predicate on the "last_connect_at" field.
func LastConnectAtNotNil() predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldNotNull(FieldLastConnectAt))
}

// LastDisconnectAtEQ applies the EQ predicate on the "last_disconnect_at" field.
func LastDisconnectAtEQ(v time.Time) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldEQ(FieldLastDisconnectAt, v))
}

// LastDisconnectAtNEQ applies the NEQ predicate on the "last_disconnect_at" field.
func LastDisconnectAtNEQ(v time.Time) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldNEQ(FieldLastDisconnectAt, v))
}

// LastDisconnectAtIn applies the In predicate on the "last_disconnect_at" field.
func LastDisconnectAtIn(vs ...time.Time) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldIn(FieldLastDisconnectAt, vs...))
}

// LastDisconnectAtNotIn applies the NotIn predicate on the "last_disconnect_at" field.
func LastDisconnectAtNotIn(vs ...time.Time) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldNotIn(FieldLastDisconnectAt, vs...))
}

// LastDisconnectAtGT applies the GT predicate on the "last_disconnect_at" field.
func LastDisconnectAtGT(v time.Time) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldGT(FieldLastDisconnectAt, v))
}

// LastDisconnectAtGTE applies the GTE predicate on the "last_disconnect_at" field.
func LastDisconnectAtGTE(v time.Time) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldGTE(FieldLastDisconnectAt, v))
}

// LastDisconnectAtLT applies the LT predicate on the "last_disconnect_at" field.
func LastDisconnectAtLT(v time.Time) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldLT(FieldLastDisconnectAt, v))
}

// LastDisconnectAtLTE applies the LTE predicate on the "last_disconnect_at" field.
func LastDisconnectAtLTE(v time.Time) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldLTE(FieldLastDisconnectAt, v))
}

// LastDisconnectAtIsNil applies the IsNil predicate on the "last_disconnect_at" field.
func LastDisconnectAtIsNil() predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldIsNull(FieldLastDisconnectAt))
}

// LastDisconnectAtNotNil applies the NotNil predicate on the "last_disconnect_at" field.
func LastDisconnectAtNotNil() predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldNotNull(FieldLastDisconnectAt))
}

// LastEventAtEQ applies the EQ predicate on the "last_event_at" field.
func LastEventAtEQ(v time.Time) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldEQ(FieldLastEventAt, v))
}

// LastEventAtNEQ applies the NEQ predicate on the "last_event_at" field.
func LastEventAtNEQ(v time.Time) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldNEQ(FieldLastEventAt, v))
}

// LastEventAtIn applies the In predicate on the "last_event_at" field.
func LastEventAtIn(vs ...time.Time) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldIn(FieldLastEventAt, vs...))
}

// LastEventAtNotIn applies the NotIn predicate on the "last_event_at" field.
func LastEventAtNotIn(vs ...time.Time) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldNotIn(FieldLastEventAt, vs...))
}

// LastEventAtGT applies the GT predicate on the "last_event_at" field.
func LastEventAtGT(v time.Time) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldGT(FieldLastEventAt, v))
}

// LastEventAtGTE applies the GTE predicate on the "last_event_at" field.
func LastEventAtGTE(v time.Time) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldGTE(FieldLastEventAt, v))
}

// LastEventAtLT applies the LT predicate on the "last_event_at" field.
func LastEventAtLT(v time.Time) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldLT(FieldLastEventAt, v))
}

// LastEventAtLTE applies the LTE predicate on the "last_event_at" field.
func LastEventAtLTE(v time.Time) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldLTE(FieldLastEventAt, v))
}

// LastEventAtIsNil applies the IsNil predicate on the "last_event_at" field.
func LastEventAtIsNil() predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldIsNull(FieldLastEventAt))
}

// LastEventAtNotNil applies the NotNil predicate on the "last_event_at" field.
func LastEventAtNotNil() predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldNotNull(FieldLastEventAt))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ServiceRuntimeStats) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ServiceRuntimeStats) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ServiceRuntimeStats) predicate.ServiceRuntimeStats {
	return predicate.ServiceRuntimeStats(sql.NotPredicates(p))
}
