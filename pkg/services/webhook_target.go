package services

import (
	"net"
	"net/url"
	"strings"
)

// WebhookTargetPolicy constrains where consumer webhook deliveries may be
// sent.
type WebhookTargetPolicy struct {
	// AllowedHosts restricts targets to the listed hostnames (exact match or
	// subdomain). Empty allows any host.
	AllowedHosts []string
	// BlockPrivate rejects targets resolving to loopback, link-local or
	// RFC 1918 addresses.
	BlockPrivate bool

	// lookupIP is swappable for tests.
	lookupIP func(host string) ([]net.IP, error)
}

// ValidateWebhookTarget checks a consumer-supplied webhook URL against the
// policy. Returns a ValidationError describing the first violation.
func (p WebhookTargetPolicy) ValidateWebhookTarget(rawURL string) error {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		return NewValidationError("webhook_url", "must be an absolute URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return NewValidationError("webhook_url", "must use http or https")
	}
	if u.User != nil {
		return NewValidationError("webhook_url", "must not embed credentials")
	}

	host := u.Hostname()
	if len(p.AllowedHosts) > 0 && !p.hostAllowed(host) {
		return NewValidationError("webhook_url", "host is not in the allowlist")
	}

	if p.BlockPrivate {
		ips, err := p.resolve(host)
		if err != nil || len(ips) == 0 {
			return NewValidationError("webhook_url", "host does not resolve")
		}
		for _, ip := range ips {
			if !isPublicIP(ip) {
				return NewValidationError("webhook_url", "host resolves to a non-public address")
			}
		}
	}
	return nil
}

func (p WebhookTargetPolicy) hostAllowed(host string) bool {
	host = strings.ToLower(host)
	for _, allowed := range p.AllowedHosts {
		allowed = strings.ToLower(strings.TrimSpace(allowed))
		if allowed == "" {
			continue
		}
		if host == allowed || strings.HasSuffix(host, "."+allowed) {
			return true
		}
	}
	return false
}

func (p WebhookTargetPolicy) resolve(host string) ([]net.IP, error) {
	if ip := net.ParseIP(host); ip != nil {
		return []net.IP{ip}, nil
	}
	if p.lookupIP != nil {
		return p.lookupIP(host)
	}
	return net.LookupIP(host)
}

func isPublicIP(ip net.IP) bool {
	return !(ip.IsLoopback() ||
		ip.IsPrivate() ||
		ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() ||
		ip.IsUnspecified() ||
		ip.IsMulticast())
}
