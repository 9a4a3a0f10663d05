package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pizzatime/storefront/internal/config"
	"github.com/pizzatime/storefront/internal/session"
)

const sessionContextKey = "session"

// SessionMiddleware attaches the caller's session to the request, starting a
// new one when the cookie is missing, unknown or expired
func SessionMiddleware(store *session.Store, cfg *config.Config, logger *zap.Logger) gin.HandlerFunc {
	maxAge := int(cfg.Session.TTL.Seconds())
	secure := cfg.IsProduction()

	return func(c *gin.Context) {
		token, _ := c.Cookie(cfg.Session.CookieName)

		sess, token, created := store.Resolve(token)
		if created {
			logger.Debug("New session",
				zap.String("session", sess.ID.String()),
				zap.String("path", c.Request.URL.Path),
			)
		}

		// Refresh the cookie so its lifetime follows the idle TTL
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cfg.Session.CookieName, token, maxAge, "/", "", secure, true)

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// GetSessionFromContext retrieves the session attached by SessionMiddleware
func GetSessionFromContext(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok
}
