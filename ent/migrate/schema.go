// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BotAccountsColumns holds the columns for the "bot_accounts" table.
	BotAccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "twitch_user_id", Type: field.TypeString, Unique: true},
		{Name: "twitch_login", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "access_token", Type: field.TypeString, Nullable: true},
		{Name: "refresh_token", Type: field.TypeString, Nullable: true},
		{Name: "token_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// BotAccountsTable holds the schema information for the "bot_accounts" table.
	BotAccountsTable = &schema.Table{
		Name:       "bot_accounts",
		Columns:    BotAccountsColumns,
		PrimaryKey: []*schema.Column{BotAccountsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "botaccount_enabled",
				Unique:  false,
				Columns: []*schema.Column{BotAccountsColumns[7]},
			},
			{
				Name:    "botaccount_twitch_login",
				Unique:  false,
				Columns: []*schema.Column{BotAccountsColumns[2]},
			},
		},
	}
	// ChannelStatesColumns holds the columns for the "channel_states" table.
	ChannelStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "broadcaster_user_id", Type: field.TypeString, Unique: true},
		{Name: "is_live", Type: field.TypeBool, Default: false},
		{Name: "last_online_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_offline_at", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ChannelStatesTable holds the schema information for the "channel_states" table.
	ChannelStatesTable = &schema.Table{
		Name:       "channel_states",
		Columns:    ChannelStatesColumns,
		PrimaryKey: []*schema.Column{ChannelStatesColumns[0]},
	}
	// ServiceAccountsColumns holds the columns for the "service_accounts" table.
	ServiceAccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "client_id", Type: field.TypeString, Unique: true},
		{Name: "client_secret_hash", Type: field.TypeString},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ServiceAccountsTable holds the schema information for the "service_accounts" table.
	ServiceAccountsTable = &schema.Table{
		Name:       "service_accounts",
		Columns:    ServiceAccountsColumns,
		PrimaryKey: []*schema.Column{ServiceAccountsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "serviceaccount_enabled",
				Unique:  false,
				Columns: []*schema.Column{ServiceAccountsColumns[4]},
			},
		},
	}
	// ServiceBotAccessesColumns holds the columns for the "service_bot_accesses" table.
	ServiceBotAccessesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "service_account_id", Type: field.TypeUUID},
		{Name: "bot_account_id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ServiceBotAccessesTable holds the schema information for the "service_bot_accesses" table.
	ServiceBotAccessesTable = &schema.Table{
		Name:       "service_bot_accesses",
		Columns:    ServiceBotAccessesColumns,
		PrimaryKey: []*schema.Column{ServiceBotAccessesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "servicebotaccess_service_account_id_bot_account_id",
				Unique:  true,
				Columns: []*schema.Column{ServiceBotAccessesColumns[1], ServiceBotAccessesColumns[2]},
			},
		},
	}
	// ServiceInterestsColumns holds the columns for the "service_interests" table.
	ServiceInterestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "service_account_id", Type: field.TypeUUID},
		{Name: "bot_account_id", Type: field.TypeUUID},
		{Name: "event_type", Type: field.TypeString, Size: 120},
		{Name: "broadcaster_user_id", Type: field.TypeString, Size: 64},
		{Name: "transport", Type: field.TypeEnum, Enums: []string{"websocket", "webhook"}, Default: "websocket"},
		{Name: "webhook_url", Type: field.TypeString, Default: ""},
		{Name: "last_heartbeat_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ServiceInterestsTable holds the schema information for the "service_interests" table.
	ServiceInterestsTable = &schema.Table{
		Name:       "service_interests",
		Columns:    ServiceInterestsColumns,
		PrimaryKey: []*schema.Column{ServiceInterestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "serviceinterest_service_account_id_bot_account_id_event_type_broadcaster_user_id_transport_webhook_url",
				Unique:  true,
				Columns: []*schema.Column{ServiceInterestsColumns[1], ServiceInterestsColumns[2], ServiceInterestsColumns[3], ServiceInterestsColumns[4], ServiceInterestsColumns[5], ServiceInterestsColumns[6]},
			},
			{
				Name:    "serviceinterest_bot_account_id_event_type_broadcaster_user_id",
				Unique:  false,
				Columns: []*schema.Column{ServiceInterestsColumns[2], ServiceInterestsColumns[3], ServiceInterestsColumns[4]},
			},
			{
				Name:    "serviceinterest_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{ServiceInterestsColumns[7]},
			},
		},
	}
	// ServiceRuntimeStatsColumns holds the columns for the "service_runtime_stats" table.
	ServiceRuntimeStatsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "service_account_id", Type: field.TypeUUID, Unique: true},
		{Name: "total_api_requests", Type: field.TypeInt64, Default: 0},
		{Name: "ws_connects", Type: field.TypeInt64, Default: 0},
		{Name: "ws_disconnects", Type: field.TypeInt64, Default: 0},
		{Name: "active_ws_connections", Type: field.TypeInt64, Default: 0},
		{Name: "events_sent_ws", Type: field.TypeInt64, Default: 0},
		{Name: "events_sent_webhook", Type: field.TypeInt64, Default: 0},
		{Name: "webhook_failures", Type: field.TypeInt64, Default: 0},
		{Name: "last_connect_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_disconnect_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_event_at", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ServiceRuntimeStatsTable holds the schema information for the "service_runtime_stats" table.
	ServiceRuntimeStatsTable = &schema.Table{
		Name:       "service_runtime_stats",
		Columns:    ServiceRuntimeStatsColumns,
		PrimaryKey: []*schema.Column{ServiceRuntimeStatsColumns[0]},
	}
	// TwitchSubscriptionsColumns holds the columns for the "twitch_subscriptions" table.
	TwitchSubscriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "bot_account_id", Type: field.TypeUUID},
		{Name: "event_type", Type: field.TypeString},
		{Name: "broadcaster_user_id", Type: field.TypeString},
		{Name: "transport", Type: field.TypeEnum, Enums: []string{"websocket", "webhook"}},
		{Name: "twitch_subscription_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "enabled", "failed", "revoked"}, Default: "pending"},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TwitchSubscriptionsTable holds the schema information for the "twitch_subscriptions" table.
	TwitchSubscriptionsTable = &schema.Table{
		Name:       "twitch_subscriptions",
		Columns:    TwitchSubscriptionsColumns,
		PrimaryKey: []*schema.Column{TwitchSubscriptionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "twitchsubscription_bot_account_id_event_type_broadcaster_user_id",
				Unique:  true,
				Columns: []*schema.Column{TwitchSubscriptionsColumns[1], TwitchSubscriptionsColumns[2], TwitchSubscriptionsColumns[3]},
			},
			{
				Name:    "twitchsubscription_status",
				Unique:  false,
				Columns: []*schema.Column{TwitchSubscriptionsColumns[6]},
			},
			{
				Name:    "twitchsubscription_session_id",
				Unique:  false,
				Columns: []*schema.Column{TwitchSubscriptionsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BotAccountsTable,
		ChannelStatesTable,
		ServiceAccountsTable,
		ServiceBotAccessesTable,
		ServiceInterestsTable,
		ServiceRuntimeStatsTable,
		TwitchSubscriptionsTable,
	}
)

func init() {
}
