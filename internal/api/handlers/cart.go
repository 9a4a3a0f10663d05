package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pizzatime/storefront/internal/api/middleware"
	"github.com/pizzatime/storefront/internal/config"
	"github.com/pizzatime/storefront/internal/session"
)

// AddItemRequest represents an add-to-cart click
type AddItemRequest struct {
	ItemID *int `json:"item_id" binding:"required"`
}

// AdjustQuantityRequest represents a +/- click on a cart line
type AdjustQuantityRequest struct {
	Delta *int `json:"delta" binding:"required"`
}

// DrawerRequest opens or closes the cart drawer
type DrawerRequest struct {
	Open *bool `json:"open" binding:"required"`
}

// HandleGetCart handles GET /api/cart
func HandleGetCart(cfg *config.Config) gin.HandlerFunc {
	return withSession(func(c *gin.Context, sess *session.Session) {
		c.JSON(http.StatusOK, newCartResponse(sess.Cart(), cfg.Currency.Symbol))
	})
}

// HandleAddItem handles POST /api/cart/items
func HandleAddItem(cfg *config.Config, logger *zap.Logger) gin.HandlerFunc {
	return withSession(func(c *gin.Context, sess *session.Session) {
		var req AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		if err := sess.AddItem(*req.ItemID); err != nil {
			respondError(c, err, logger)
			return
		}

		c.JSON(http.StatusOK, newCartResponse(sess.Cart(), cfg.Currency.Symbol))
	})
}

// HandleRemoveItem handles DELETE /api/cart/items/:id
func HandleRemoveItem(cfg *config.Config) gin.HandlerFunc {
	return withSession(func(c *gin.Context, sess *session.Session) {
		itemID, ok := itemIDParam(c)
		if !ok {
			return
		}

		sess.RemoveItem(itemID)
		c.JSON(http.StatusOK, newCartResponse(sess.Cart(), cfg.Currency.Symbol))
	})
}

// HandleAdjustQuantity handles PATCH /api/cart/items/:id
func HandleAdjustQuantity(cfg *config.Config) gin.HandlerFunc {
	return withSession(func(c *gin.Context, sess *session.Session) {
		itemID, ok := itemIDParam(c)
		if !ok {
			return
		}

		var req AdjustQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		sess.AdjustQuantity(itemID, *req.Delta)
		c.JSON(http.StatusOK, newCartResponse(sess.Cart(), cfg.Currency.Symbol))
	})
}

// HandleClearCart handles DELETE /api/cart
func HandleClearCart(cfg *config.Config) gin.HandlerFunc {
	return withSession(func(c *gin.Context, sess *session.Session) {
		sess.ClearCart()
		c.JSON(http.StatusOK, newCartResponse(sess.Cart(), cfg.Currency.Symbol))
	})
}

// HandleSetDrawer handles POST /api/cart/drawer
func HandleSetDrawer(cfg *config.Config) gin.HandlerFunc {
	return withSession(func(c *gin.Context, sess *session.Session) {
		var req DrawerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		sess.SetDrawerOpen(*req.Open)
		c.JSON(http.StatusOK, newOrderResponse(sess.Order(), cfg.Currency.Symbol))
	})
}

func withSession(fn func(c *gin.Context, sess *session.Session)) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := middleware.GetSessionFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no session"})
			return
		}
		fn(c, sess)
	}
}

func itemIDParam(c *gin.Context) (int, bool) {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item ID"})
		return 0, false
	}
	return itemID, true
}
