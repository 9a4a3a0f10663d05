package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pizzatime/storefront/internal/catalog"
	"github.com/pizzatime/storefront/internal/config"
)

// HandleListCatalog handles GET /api/catalog
func HandleListCatalog(cfg *config.Config, cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		items := cat.Items()
		response := make([]CatalogItemResponse, len(items))
		for i, item := range items {
			response[i] = newCatalogItemResponse(item, cfg.Currency.Symbol)
		}
		c.JSON(http.StatusOK, gin.H{"items": response})
	}
}
