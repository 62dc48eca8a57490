package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/streamgate/streamgate/ent"
)

// authenticateService verifies the X-Client-Id/X-Client-Secret headers and
// returns the calling service account. Every authenticated request counts
// toward the service's runtime stats.
func (s *Server) authenticateService(c *echo.Context) (*ent.ServiceAccount, error) {
	clientID := c.Request().Header.Get("X-Client-Id")
	clientSecret := c.Request().Header.Get("X-Client-Secret")
	if clientID == "" || clientSecret == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing service credentials")
	}

	account, err := s.accounts.Authenticate(c.Request().Context(), clientID, clientSecret)
	if err != nil {
		return nil, mapServiceError(err)
	}

	s.stats.RecordAPIRequest(c.Request().Context(), account.ID)
	return account, nil
}
