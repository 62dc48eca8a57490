package api

import (
	"net/http"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"
)

// wsTokenHandler handles POST /v1/ws-token.
// Issues a short-lived single-use ticket for attaching to /ws/events, so
// service credentials never travel in a websocket URL.
func (s *Server) wsTokenHandler(c *echo.Context) error {
	account, err := s.authenticateService(c)
	if err != nil {
		return err
	}

	token := s.tokens.Issue(account.ID)
	return c.JSON(http.StatusOK, &WSTokenResponse{
		Token:     token,
		ExpiresIn: int(s.cfg.WSTokenTTL.Seconds()),
	})
}

// wsEventsHandler handles GET /ws/events.
// Authenticates via a single-use ws_token; client_id/client_secret query
// parameters are accepted for older consumers.
func (s *Server) wsEventsHandler(c *echo.Context) error {
	serviceAccountID, err := s.authenticateWS(c)
	if err != nil {
		return err
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		// Consumers are server-side services, not browsers; origin checks do
		// not apply.
		InsecureSkipVerify: true,
	})
	if err != nil {
		return err
	}

	// HandleConnection blocks until the websocket closes.
	s.hub.HandleConnection(c.Request().Context(), serviceAccountID, conn)
	return nil
}

func (s *Server) authenticateWS(c *echo.Context) (uuid.UUID, error) {
	if token := c.QueryParam("ws_token"); token != "" {
		serviceAccountID, ok := s.tokens.Consume(token)
		if !ok {
			return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired ws token")
		}
		return serviceAccountID, nil
	}

	clientID := c.QueryParam("client_id")
	clientSecret := c.QueryParam("client_secret")
	if clientID == "" || clientSecret == "" {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "missing ws token")
	}
	account, err := s.accounts.Authenticate(c.Request().Context(), clientID, clientSecret)
	if err != nil {
		return uuid.Nil, mapServiceError(err)
	}
	return account.ID, nil
}
