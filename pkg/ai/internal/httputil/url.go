// ABOUTME: URL normalization for API base URLs to prevent double-path issues
// ABOUTME: Strips a trailing /v1 so providers can append their own versioned paths

package httputil

import (
	"net/url"
	"strings"
)

// NormalizeBaseURL strips a trailing "/v1" (and any trailing slash) from a base URL.
// Users copy "https://router.huggingface.co/v1" from provider docs while the
// OpenAI provider appends "/v1/chat/completions" itself. Nested paths such as
// "http://host/api/v1" are left untouched.
func NormalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return ""
	}
	baseURL = strings.TrimRight(baseURL, "/")

	u, err := url.Parse(baseURL)
	if err != nil {
		return baseURL
	}
	if u.Path == "/v1" {
		u.Path = ""
		return strings.TrimRight(u.String(), "/")
	}
	return baseURL
}
