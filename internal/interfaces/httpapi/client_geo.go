package httpapi

import (
	"net"
	"net/http"
	"strings"
)

// resolveClientIP returns the originating client address for request logs.
// Fly terminates TLS in front of the service, so the platform header wins
// over the generic proxy headers and the raw socket address.
func resolveClientIP(r *http.Request) string {
	candidates := []string{
		r.Header.Get("Fly-Client-IP"),
		r.Header.Get("X-Forwarded-For"),
		r.Header.Get("X-Real-IP"),
		r.RemoteAddr,
	}

	for _, candidate := range candidates {
		if ip := normalizeIP(candidate); ip != "" {
			return ip
		}
	}

	return ""
}

// resolveCountryCode returns the edge-reported ISO country, or "ZZ" when no
// proxy supplied one.
func resolveCountryCode(r *http.Request) string {
	candidates := []string{
		r.Header.Get("Fly-Client-Country"),
		r.Header.Get("CF-IPCountry"),
		r.Header.Get("CloudFront-Viewer-Country"),
	}

	for _, candidate := range candidates {
		if code := normalizeCountry(candidate); code != "" {
			return code
		}
	}

	return "ZZ"
}

func normalizeIP(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}
	// X-Forwarded-For may carry a chain; the first hop is the client.
	if strings.Contains(value, ",") {
		value = strings.TrimSpace(strings.Split(value, ",")[0])
	}

	if host, _, err := net.SplitHostPort(value); err == nil {
		value = strings.TrimSpace(host)
	}

	parsed := net.ParseIP(value)
	if parsed == nil {
		return ""
	}
	return parsed.String()
}

func normalizeCountry(raw string) string {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if len(code) != 2 {
		return ""
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return ""
		}
	}
	return code
}
