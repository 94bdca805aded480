package middleware

import (
	"net/http"
	"time"

	"github.com/Modeva-Ecommerce/sepia-storefront/cache"
	"github.com/Modeva-Ecommerce/sepia-storefront/catalog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCookie = "sepia_session"
	sessionKey    = "shopSession"
)

// ShopSession attaches the visitor's shop session, reading the id from the
// session cookie and issuing a fresh one when it is missing or malformed.
func ShopSession(store *cache.SessionStore, ttl time.Duration, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
		}

		sess, _ := store.GetOrCreate(id)

		// Refresh on every request so the cookie outlives active browsing
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, id, int(ttl.Seconds()), "/", "", secure, true)

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// GetSessionFromContext returns the session ShopSession attached.
func GetSessionFromContext(c *gin.Context) (*catalog.Session, bool) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return nil, false
	}
	sess, ok := v.(*catalog.Session)
	return sess, ok
}
