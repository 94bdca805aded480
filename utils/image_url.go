package utils

import (
	"regexp"
	"strings"
)

var httpURL = regexp.MustCompile(`(?i)^https?://`)

// NormalizeImageURL upgrades protocol-relative URLs to https and drops
// anything that is not an absolute http(s) URL.
func NormalizeImageURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(trimmed, "//"):
		return "https:" + trimmed
	case httpURL.MatchString(trimmed):
		return trimmed
	default:
		return ""
	}
}
