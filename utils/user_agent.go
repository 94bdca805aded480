// ════════════════════════════════════════════════════════════
// Path: utils/user_agent.go
// Client details for request logs
// ════════════════════════════════════════════════════════════

package utils

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// DeviceType determines if the request is from mobile, tablet, or desktop
func DeviceType(userAgent string) string {
	ua := strings.ToLower(userAgent)

	if strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad") {
		return "tablet"
	}
	if strings.Contains(ua, "mobile") || strings.Contains(ua, "android") {
		return "mobile"
	}
	return "desktop"
}

// Browser extracts browser name from user agent
func Browser(userAgent string) string {
	ua := strings.ToLower(userAgent)

	switch {
	case strings.Contains(ua, "edg"):
		return "Edge"
	case strings.Contains(ua, "chrome"):
		return "Chrome"
	case strings.Contains(ua, "firefox"):
		return "Firefox"
	case strings.Contains(ua, "safari"):
		return "Safari"
	}
	return "Other"
}

// GetClientIP gets the real client IP (handles proxies)
func GetClientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		ip := strings.TrimSpace(strings.Split(xff, ",")[0])
		if net.ParseIP(ip) != nil {
			return ip
		}
	}

	if xri := c.GetHeader("X-Real-IP"); xri != "" {
		if net.ParseIP(xri) != nil {
			return xri
		}
	}

	return c.ClientIP()
}
