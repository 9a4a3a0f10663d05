package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pizzatime/storefront/internal/config"
	"github.com/pizzatime/storefront/internal/domain"
	"github.com/pizzatime/storefront/internal/session"
)

// SetFieldRequest carries the raw value typed into a form field
type SetFieldRequest struct {
	Value string `json:"value"`
}

// SetDeliveryRequest selects delivery or pickup
type SetDeliveryRequest struct {
	Mode string `json:"mode" binding:"required"`
}

// HandleGetOrder handles GET /api/order
func HandleGetOrder(cfg *config.Config) gin.HandlerFunc {
	return withSession(func(c *gin.Context, sess *session.Session) {
		c.JSON(http.StatusOK, newOrderResponse(sess.Order(), cfg.Currency.Symbol))
	})
}

// HandleOpenOrder handles POST /api/order/open
func HandleOpenOrder(cfg *config.Config, logger *zap.Logger) gin.HandlerFunc {
	return withSession(func(c *gin.Context, sess *session.Session) {
		view, err := sess.OpenOrderDialog()
		if err != nil {
			respondError(c, err, logger)
			return
		}
		c.JSON(http.StatusOK, newOrderResponse(view, cfg.Currency.Symbol))
	})
}

// HandleSetField handles PUT /api/order/fields/:field
func HandleSetField(cfg *config.Config, logger *zap.Logger) gin.HandlerFunc {
	return withSession(func(c *gin.Context, sess *session.Session) {
		var req SetFieldRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		if err := sess.SetField(domain.OrderField(c.Param("field")), req.Value); err != nil {
			respondError(c, err, logger)
			return
		}
		c.JSON(http.StatusOK, newOrderResponse(sess.Order(), cfg.Currency.Symbol))
	})
}

// HandleSetDelivery handles PUT /api/order/delivery
func HandleSetDelivery(cfg *config.Config, logger *zap.Logger) gin.HandlerFunc {
	return withSession(func(c *gin.Context, sess *session.Session) {
		var req SetDeliveryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		if err := sess.SetDeliveryType(domain.DeliveryMode(req.Mode)); err != nil {
			respondError(c, err, logger)
			return
		}
		c.JSON(http.StatusOK, newOrderResponse(sess.Order(), cfg.Currency.Symbol))
	})
}

// HandleCancelOrder handles POST /api/order/cancel
func HandleCancelOrder(cfg *config.Config) gin.HandlerFunc {
	return withSession(func(c *gin.Context, sess *session.Session) {
		c.JSON(http.StatusOK, newOrderResponse(sess.CancelOrder(), cfg.Currency.Symbol))
	})
}

// HandleSubmitOrder handles POST /api/order/submit
func HandleSubmitOrder(cfg *config.Config, logger *zap.Logger) gin.HandlerFunc {
	return withSession(func(c *gin.Context, sess *session.Session) {
		receipt, err := sess.SubmitOrder()
		if err != nil {
			respondError(c, err, logger)
			return
		}

		// Dialog was closed, nothing was submitted
		if receipt == nil {
			c.Status(http.StatusNoContent)
			return
		}

		c.JSON(http.StatusOK, newReceiptResponse(receipt, cfg.Currency.Symbol))
	})
}
