package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

func TestSecurityHeaders(t *testing.T) {
	e := echo.New()
	e.Use(securityHeaders())
	e.GET("/test", func(c *echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
	assert.Equal(t, "camera=(), microphone=(), geolocation=()", rec.Header().Get("Permissions-Policy"))
}

func TestIPAllowlist(t *testing.T) {
	e := echo.New()
	e.Use(ipAllowlist([]string{"10.1.0.0/16", "192.0.2.7"}, twitchWebhookPath))
	handler := func(c *echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}
	e.GET("/test", handler)
	e.POST(twitchWebhookPath, handler)

	request := func(method, path, remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("allows CIDR member", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, request(http.MethodGet, "/test", "10.1.2.3:4567").Code)
	})

	t.Run("allows bare IP entry", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, request(http.MethodGet, "/test", "192.0.2.7:4567").Code)
	})

	t.Run("rejects outsider", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, request(http.MethodGet, "/test", "203.0.113.50:4567").Code)
	})

	t.Run("twitch ingress path is exempt", func(t *testing.T) {
		// The ingress still enforces its own HMAC; 403 here would mean the
		// allowlist applied.
		rec := request(http.MethodPost, twitchWebhookPath, "203.0.113.50:4567")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
