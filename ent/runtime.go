// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/streamgate/streamgate/ent/botaccount"
	"github.com/streamgate/streamgate/ent/channelstate"
	"github.com/streamgate/streamgate/ent/schema"
	"github.com/streamgate/streamgate/ent/serviceaccount"
	"github.com/streamgate/streamgate/ent/servicebotaccess"
	"github.com/streamgate/streamgate/ent/serviceinterest"
	"github.com/streamgate/streamgate/ent/serviceruntimestats"
	"github.com/streamgate/streamgate/ent/twitchsubscription"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	botaccountFields := schema.BotAccount{}.Fields()
	_ = botaccountFields
	// botaccountDescEnabled is the schema descriptor for enabled field.
	botaccountDescEnabled := botaccountFields[7].Descriptor()
	// botaccount.DefaultEnabled holds the default value on creation for the enabled field.
	botaccount.DefaultEnabled = botaccountDescEnabled.Default.(bool)
	// botaccountDescCreatedAt is the schema descriptor for created_at field.
	botaccountDescCreatedAt := botaccountFields[8].Descriptor()
	// botaccount.DefaultCreatedAt holds the default value on creation for the created_at field.
	botaccount.DefaultCreatedAt = botaccountDescCreatedAt.Default.(func() time.Time)
	// botaccountDescID is the schema descriptor for id field.
	botaccountDescID := botaccountFields[0].Descriptor()
	// botaccount.DefaultID holds the default value on creation for the id field.
	botaccount.DefaultID = botaccountDescID.Default.(func() uuid.UUID)
	channelstateFields := schema.ChannelState{}.Fields()
	_ = channelstateFields
	// channelstateDescIsLive is the schema descriptor for is_live field.
	channelstateDescIsLive := channelstateFields[2].Descriptor()
	// channelstate.DefaultIsLive holds the default value on creation for the is_live field.
	channelstate.DefaultIsLive = channelstateDescIsLive.Default.(bool)
	// channelstateDescUpdatedAt is the schema descriptor for updated_at field.
	channelstateDescUpdatedAt := channelstateFields[5].Descriptor()
	// channelstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	channelstate.DefaultUpdatedAt = channelstateDescUpdatedAt.Default.(func() time.Time)
	// channelstate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	channelstate.UpdateDefaultUpdatedAt = channelstateDescUpdatedAt.UpdateDefault.(func() time.Time)
	// channelstateDescID is the schema descriptor for id field.
	channelstateDescID := channelstateFields[0].Descriptor()
	// channelstate.DefaultID holds the default value on creation for the id field.
	channelstate.DefaultID = channelstateDescID.Default.(func() uuid.UUID)
	serviceaccountFields := schema.ServiceAccount{}.Fields()
	_ = serviceaccountFields
	// serviceaccountDescEnabled is the schema descriptor for enabled field.
	serviceaccountDescEnabled := serviceaccountFields[4].Descriptor()
	// serviceaccount.DefaultEnabled holds the default value on creation for the enabled field.
	serviceaccount.DefaultEnabled = serviceaccountDescEnabled.Default.(bool)
	// serviceaccountDescCreatedAt is the schema descriptor for created_at field.
	serviceaccountDescCreatedAt := serviceaccountFields[5].Descriptor()
	// serviceaccount.DefaultCreatedAt holds the default value on creation for the created_at field.
	serviceaccount.DefaultCreatedAt = serviceaccountDescCreatedAt.Default.(func() time.Time)
	// serviceaccountDescID is the schema descriptor for id field.
	serviceaccountDescID := serviceaccountFields[0].Descriptor()
	// serviceaccount.DefaultID holds the default value on creation for the id field.
	serviceaccount.DefaultID = serviceaccountDescID.Default.(func() uuid.UUID)
	servicebotaccessFields := schema.ServiceBotAccess{}.Fields()
	_ = servicebotaccessFields
	// servicebotaccessDescCreatedAt is the schema descriptor for created_at field.
	servicebotaccessDescCreatedAt := servicebotaccessFields[3].Descriptor()
	// servicebotaccess.DefaultCreatedAt holds the default value on creation for the created_at field.
	servicebotaccess.DefaultCreatedAt = servicebotaccessDescCreatedAt.Default.(func() time.Time)
	// servicebotaccessDescID is the schema descriptor for id field.
	servicebotaccessDescID := servicebotaccessFields[0].Descriptor()
	// servicebotaccess.DefaultID holds the default value on creation for the id field.
	servicebotaccess.DefaultID = servicebotaccessDescID.Default.(func() uuid.UUID)
	serviceinterestFields := schema.ServiceInterest{}.Fields()
	_ = serviceinterestFields
	// serviceinterestDescEventType is the schema descriptor for event_type field.
	serviceinterestDescEventType := serviceinterestFields[3].Descriptor()
	// serviceinterest.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	serviceinterest.EventTypeValidator = func() func(string) error {
		validators := serviceinterestDescEventType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(event_type string) error {
			for _, fn := range fns {
				if err := fn(event_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// serviceinterestDescBroadcasterUserID is the schema descriptor for broadcaster_user_id field.
	serviceinterestDescBroadcasterUserID := serviceinterestFields[4].Descriptor()
	// serviceinterest.BroadcasterUserIDValidator is a validator for the "broadcaster_user_id" field. It is called by the builders before save.
	serviceinterest.BroadcasterUserIDValidator = func() func(string) error {
		validators := serviceinterestDescBroadcasterUserID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(broadcaster_user_id string) error {
			for _, fn := range fns {
				if err := fn(broadcaster_user_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// serviceinterestDescWebhookURL is the schema descriptor for webhook_url field.
	serviceinterestDescWebhookURL := serviceinterestFields[6].Descriptor()
	// serviceinterest.DefaultWebhookURL holds the default value on creation for the webhook_url field.
	serviceinterest.DefaultWebhookURL = serviceinterestDescWebhookURL.Default.(string)
	// serviceinterestDescLastHeartbeatAt is the schema descriptor for last_heartbeat_at field.
	serviceinterestDescLastHeartbeatAt := serviceinterestFields[7].Descriptor()
	// serviceinterest.DefaultLastHeartbeatAt holds the default value on creation for the last_heartbeat_at field.
	serviceinterest.DefaultLastHeartbeatAt = serviceinterestDescLastHeartbeatAt.Default.(func() time.Time)
	// serviceinterestDescCreatedAt is the schema descriptor for created_at field.
	serviceinterestDescCreatedAt := serviceinterestFields[8].Descriptor()
	// serviceinterest.DefaultCreatedAt holds the default value on creation for the created_at field.
	serviceinterest.DefaultCreatedAt = serviceinterestDescCreatedAt.Default.(func() time.Time)
	// serviceinterestDescID is the schema descriptor for id field.
	serviceinterestDescID := serviceinterestFields[0].Descriptor()
	// serviceinterest.DefaultID holds the default value on creation for the id field.
	serviceinterest.DefaultID = serviceinterestDescID.Default.(func() uuid.UUID)
	serviceruntimestatsFields := schema.ServiceRuntimeStats{}.Fields()
	_ = serviceruntimestatsFields
	// serviceruntimestatsDescTotalAPIRequests is the schema descriptor for total_api_requests field.
	serviceruntimestatsDescTotalAPIRequests := serviceruntimestatsFields[2].Descriptor()
	// serviceruntimestats.DefaultTotalAPIRequests holds the default value on creation for the total_api_requests field.
	serviceruntimestats.DefaultTotalAPIRequests = serviceruntimestatsDescTotalAPIRequests.Default.(int64)
	// serviceruntimestatsDescWsConnects is the schema descriptor for ws_connects field.
	serviceruntimestatsDescWsConnects := serviceruntimestatsFields[3].Descriptor()
	// serviceruntimestats.DefaultWsConnects holds the default value on creation for the ws_connects field.
	serviceruntimestats.DefaultWsConnects = serviceruntimestatsDescWsConnects.Default.(int64)
	// serviceruntimestatsDescWsDisconnects is the schema descriptor for ws_disconnects field.
	serviceruntimestatsDescWsDisconnects := serviceruntimestatsFields[4].Descriptor()
	// serviceruntimestats.DefaultWsDisconnects holds the default value on creation for the ws_disconnects field.
	serviceruntimestats.DefaultWsDisconnects = serviceruntimestatsDescWsDisconnects.Default.(int64)
	// serviceruntimestatsDescActiveWsConnections is the schema descriptor for active_ws_connections field.
	serviceruntimestatsDescActiveWsConnections := serviceruntimestatsFields[5].Descriptor()
	// serviceruntimestats.DefaultActiveWsConnections holds the default value on creation for the active_ws_connections field.
	serviceruntimestats.DefaultActiveWsConnections = serviceruntimestatsDescActiveWsConnections.Default.(int64)
	// serviceruntimestatsDescEventsSentWs is the schema descriptor for events_sent_ws field.
	serviceruntimestatsDescEventsSentWs := serviceruntimestatsFields[6].Descriptor()
	// serviceruntimestats.DefaultEventsSentWs holds the default value on creation for the events_sent_ws field.
	serviceruntimestats.DefaultEventsSentWs = serviceruntimestatsDescEventsSentWs.Default.(int64)
	// serviceruntimestatsDescEventsSentWebhook is the schema descriptor for events_sent_webhook field.
	serviceruntimestatsDescEventsSentWebhook := serviceruntimestatsFields[7].Descriptor()
	// serviceruntimestats.DefaultEventsSentWebhook holds the default value on creation for the events_sent_webhook field.
	serviceruntimestats.DefaultEventsSentWebhook = serviceruntimestatsDescEventsSentWebhook.Default.(int64)
	// serviceruntimestatsDescWebhookFailures is the schema descriptor for webhook_failures field.
	serviceruntimestatsDescWebhookFailures := serviceruntimestatsFields[8].Descriptor()
	// serviceruntimestats.DefaultWebhookFailures holds the default value on creation for the webhook_failures field.
	serviceruntimestats.DefaultWebhookFailures = serviceruntimestatsDescWebhookFailures.Default.(int64)
	// serviceruntimestatsDescUpdatedAt is the schema descriptor for updated_at field.
	serviceruntimestatsDescUpdatedAt := serviceruntimestatsFields[12].Descriptor()
	// serviceruntimestats.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	serviceruntimestats.DefaultUpdatedAt = serviceruntimestatsDescUpdatedAt.Default.(func() time.Time)
	// serviceruntimestats.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	serviceruntimestats.UpdateDefaultUpdatedAt = serviceruntimestatsDescUpdatedAt.UpdateDefault.(func() time.Time)
	// serviceruntimestatsDescID is the schema descriptor for id field.
	serviceruntimestatsDescID := serviceruntimestatsFields[0].Descriptor()
	// serviceruntimestats.DefaultID holds the default value on creation for the id field.
	serviceruntimestats.DefaultID = serviceruntimestatsDescID.Default.(func() uuid.UUID)
	twitchsubscriptionFields := schema.TwitchSubscription{}.Fields()
	_ = twitchsubscriptionFields
	// twitchsubscriptionDescCreatedAt is the schema descriptor for created_at field.
	twitchsubscriptionDescCreatedAt := twitchsubscriptionFields[9].Descriptor()
	// twitchsubscription.DefaultCreatedAt holds the default value on creation for the created_at field.
	twitchsubscription.DefaultCreatedAt = twitchsubscriptionDescCreatedAt.Default.(func() time.Time)
	// twitchsubscriptionDescUpdatedAt is the schema descriptor for updated_at field.
	twitchsubscriptionDescUpdatedAt := twitchsubscriptionFields[10].Descriptor()
	// twitchsubscription.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	twitchsubscription.DefaultUpdatedAt = twitchsubscriptionDescUpdatedAt.Default.(func() time.Time)
	// twitchsubscription.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	twitchsubscription.UpdateDefaultUpdatedAt = twitchsubscriptionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// twitchsubscriptionDescID is the schema descriptor for id field.
	twitchsubscriptionDescID := twitchsubscriptionFields[0].Descriptor()
	// twitchsubscription.DefaultID holds the default value on creation for the id field.
	twitchsubscription.DefaultID = twitchsubscriptionDescID.Default.(func() uuid.UUID)
}
