package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/application/service"
	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/presentation/http/dto/response"
)

// CatalogHandler serves the cached product catalog.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListProducts returns the cached products, optionally filtered by category.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products := h.catalog.FilterByCategory(c.Query("category"))
	response.OK(c, "Products retrieved successfully", gin.H{
		"products": products,
		"count":    len(products),
	})
}

// ListCategories returns the cached category names.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	response.OK(c, "Categories retrieved successfully", h.catalog.Categories())
}

// Reload refetches products and categories from the backend.
func (h *CatalogHandler) Reload(c *gin.Context) {
	h.catalog.Load(c.Request.Context())
	response.OK(c, "Catalog reloaded", gin.H{
		"products": len(h.catalog.Products()),
	})
}
