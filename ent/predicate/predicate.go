// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BotAccount is the predicate function for botaccount builders.
type BotAccount func(*sql.Selector)

// ChannelState is the predicate function for channelstate builders.
type ChannelState func(*sql.Selector)

// ServiceAccount is the predicate function for serviceaccount builders.
type ServiceAccount func(*sql.Selector)

// ServiceBotAccess is the predicate function for servicebotaccess builders.
type ServiceBotAccess func(*sql.Selector)

// ServiceInterest is the predicate function for serviceinterest builders.
type ServiceInterest func(*sql.Selector)

// ServiceRuntimeStats is the predicate function for serviceruntimestats builders.
type ServiceRuntimeStats func(*sql.Selector)

// TwitchSubscription is the predicate function for twitchsubscription builders.
type TwitchSubscription func(*sql.Selector)
