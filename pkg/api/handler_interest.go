package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/streamgate/streamgate/ent"
	"github.com/streamgate/streamgate/pkg/services"
)

// createInterestHandler handles POST /v1/interests.
// Registers (or refreshes) an interest and kicks the upstream subscription
// ensure for its key and any auto-created companion keys.
func (s *Server) createInterestHandler(c *echo.Context) error {
	account, err := s.authenticateService(c)
	if err != nil {
		return err
	}

	// 1. Bind HTTP request
	var req CreateInterestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	botID, err := uuid.Parse(req.BotAccountID)
	if err != nil {
		return mapServiceError(services.NewValidationError("bot_account_id", "must be a UUID"))
	}

	// 2. Enforce the per-service bot allow-list
	ok, err := s.accounts.CanUseBot(c.Request().Context(), account.ID, botID)
	if err != nil {
		return mapServiceError(err)
	}
	if !ok {
		return mapServiceError(services.ErrBotNotAccessible)
	}

	// 3. Validate the outgoing webhook target before persisting anything
	if req.Transport == "webhook" {
		if err := s.webhookPolicy.ValidateWebhookTarget(req.WebhookURL); err != nil {
			return mapServiceError(err)
		}
	}

	// 4. Upsert the interest (and companions)
	result, err := s.interests.Upsert(c.Request().Context(),
		account.ID, botID, req.EventType, req.BroadcasterUserID, req.Transport, req.WebhookURL)
	if err != nil {
		return mapServiceError(err)
	}

	// 5. Ensure the upstream subscriptions. Failures are reported to the
	// service as subscription.error envelopes, not as HTTP errors: the
	// interest itself is registered either way.
	s.ensureForInterest(c, result.Interest)
	for _, companion := range result.Companions {
		s.ensureForInterest(c, companion)
	}

	resp := &CreateInterestResponse{
		Interest: toInterestResponse(result.Interest),
		Created:  result.Created,
	}
	for _, companion := range result.Companions {
		resp.Companions = append(resp.Companions, toInterestResponse(companion))
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) ensureForInterest(c *echo.Context, interest *ent.ServiceInterest) {
	key := services.InterestKey{
		BotAccountID:      interest.BotAccountID,
		EventType:         interest.EventType,
		BroadcasterUserID: interest.BroadcasterUserID,
	}
	if err := s.manager.Ensure(c.Request().Context(), key); err != nil {
		slog.Warn("Upstream ensure failed for new interest",
			"key", key.String(), "error", err)
	}
}

// listInterestsHandler handles GET /v1/interests.
func (s *Server) listInterestsHandler(c *echo.Context) error {
	account, err := s.authenticateService(c)
	if err != nil {
		return err
	}

	rows, err := s.interests.ListByService(c.Request().Context(), account.ID)
	if err != nil {
		return mapServiceError(err)
	}

	resp := make([]InterestResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, toInterestResponse(row))
	}
	return c.JSON(http.StatusOK, resp)
}

// deleteInterestHandler handles DELETE /v1/interests/{id}.
// When the deleted interest was the last one on its key, the upstream
// subscription is released as well.
func (s *Server) deleteInterestHandler(c *echo.Context) error {
	account, err := s.authenticateService(c)
	if err != nil {
		return err
	}

	interestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}

	key, orphaned, err := s.interests.Delete(c.Request().Context(), account.ID, interestID)
	if err != nil {
		return mapServiceError(err)
	}

	if orphaned {
		if err := s.manager.Release(c.Request().Context(), key); err != nil {
			slog.Warn("Upstream release failed after interest delete",
				"key", key.String(), "error", err)
		}
	}
	return c.JSON(http.StatusOK, &DeleteInterestResponse{Deleted: true, Released: orphaned})
}

// heartbeatInterestHandler handles POST /v1/interests/{id}/heartbeat.
func (s *Server) heartbeatInterestHandler(c *echo.Context) error {
	account, err := s.authenticateService(c)
	if err != nil {
		return err
	}

	interestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}

	touched, err := s.interests.Heartbeat(c.Request().Context(), account.ID, interestID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &HeartbeatResponse{Touched: touched})
}
