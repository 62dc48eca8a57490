package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/streamgate/streamgate/pkg/services"
	"github.com/streamgate/streamgate/pkg/twitch"
)

// listSubscriptionsHandler handles GET /v1/subscriptions.
// Lists the upstream subscriptions currently enabled for the caller's
// interest keys.
func (s *Server) listSubscriptionsHandler(c *echo.Context) error {
	account, err := s.authenticateService(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	rows, err := s.interests.ListByService(ctx, account.ID)
	if err != nil {
		return mapServiceError(err)
	}

	seen := make(map[services.InterestKey]bool)
	keys := make([]services.InterestKey, 0, len(rows))
	for _, row := range rows {
		key := services.InterestKey{
			BotAccountID:      row.BotAccountID,
			EventType:         row.EventType,
			BroadcasterUserID: row.BroadcasterUserID,
		}
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}

	enabled, err := s.subs.ListEnabledByKeys(ctx, keys)
	if err != nil {
		return mapServiceError(err)
	}

	resp := make([]SubscriptionResponse, 0, len(enabled))
	for _, key := range keys {
		sub, ok := enabled[key]
		if !ok {
			continue
		}
		row := SubscriptionResponse{
			BotAccountID:      key.BotAccountID,
			EventType:         key.EventType,
			BroadcasterUserID: key.BroadcasterUserID,
			Transport:         string(sub.Transport),
			Status:            string(sub.Status),
		}
		if sub.TwitchSubscriptionID != nil {
			row.TwitchSubscriptionID = *sub.TwitchSubscriptionID
		}
		resp = append(resp, row)
	}
	return c.JSON(http.StatusOK, resp)
}

// subscriptionTypesHandler handles GET /v1/eventsub/subscription-types.
// Exposes the EventSub catalog together with the transport the bridge would
// pick per type under the current configuration.
func (s *Server) subscriptionTypesHandler(c *echo.Context) error {
	if _, err := s.authenticateService(c); err != nil {
		return err
	}
	webhookAvailable := s.cfg.WebhookEnabled()

	resp := make([]SubscriptionTypeResponse, 0, len(twitch.Catalog))
	for _, entry := range twitch.Catalog {
		selected, reason := twitch.BestTransport(entry.EventType, webhookAvailable)
		resp = append(resp, SubscriptionTypeResponse{
			Title:               entry.Title,
			EventType:           entry.EventType,
			Version:             entry.Version,
			Description:         entry.Description,
			Status:              entry.Status,
			SupportedTransports: twitch.SupportedTransports(entry.EventType),
			SelectedTransport:   selected,
			SelectionReason:     reason,
		})
	}
	return c.JSON(http.StatusOK, resp)
}
