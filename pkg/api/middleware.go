package api

import (
	"log/slog"
	"net"
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
			return next(c)
		}
	}
}

// ipAllowlist returns middleware rejecting clients outside the given CIDRs.
// exemptPath bypasses the check entirely; Twitch does not publish stable
// egress ranges for webhook deliveries.
func ipAllowlist(cidrs []string, exemptPath string) echo.MiddlewareFunc {
	nets := make([]*net.IPNet, 0, len(cidrs))
	for _, cidr := range cidrs {
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			// A bare IP is accepted as a /32 (or /128) entry.
			ip := net.ParseIP(cidr)
			if ip == nil {
				slog.Warn("Ignoring invalid IP allowlist entry", "entry", cidr)
				continue
			}
			bits := 32
			if ip.To4() == nil {
				bits = 128
			}
			ipNet = &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)}
		}
		nets = append(nets, ipNet)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			if c.Request().URL.Path == exemptPath {
				return next(c)
			}
			ip := net.ParseIP(c.RealIP())
			if ip == nil {
				return echo.NewHTTPError(http.StatusForbidden, "client address not allowed")
			}
			for _, ipNet := range nets {
				if ipNet.Contains(ip) {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "client address not allowed")
		}
	}
}
