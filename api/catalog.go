package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/horizontravels/booking/internal/catalog"
)

// CatalogHandler serves the static storefront reference data. Pass-through
// reads, no business logic.
type CatalogHandler struct {
	catalog catalog.CatalogUseCase
}

func NewCatalogHandler(cat catalog.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

func (h *CatalogHandler) Register(router *gin.RouterGroup) {
	router.GET("/destinations", h.destinations)
	router.GET("/rentals", h.rentals)
	router.GET("/tours", h.tours)
	router.GET("/guides", h.guides)
}

func (h *CatalogHandler) destinations(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Destinations())
}

func (h *CatalogHandler) rentals(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Rentals())
}

func (h *CatalogHandler) tours(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Tours())
}

func (h *CatalogHandler) guides(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Guides())
}
