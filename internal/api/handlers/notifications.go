package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pizzatime/storefront/internal/session"
)

// HandleNotifications handles GET /api/notifications. Returned notifications
// are removed from the session.
func HandleNotifications() gin.HandlerFunc {
	return withSession(func(c *gin.Context, sess *session.Session) {
		pending := sess.Notifications()
		response := make([]NotificationResponse, len(pending))
		for i, n := range pending {
			response[i] = NotificationResponse{
				Severity:  n.Severity,
				Message:   n.Message,
				CreatedAt: n.CreatedAt.Format(time.RFC3339),
			}
		}
		c.JSON(http.StatusOK, gin.H{"notifications": response})
	})
}
