// internal/handlers/catalog.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/storefront-backend/internal/services"
	"github.com/javajoker/storefront-backend/internal/utils"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GET /categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, categories)
}

// GET /categories/:slug/products
func (h *CatalogHandler) ListCategoryProducts(c *gin.Context) {
	products, err := h.catalogService.ListProductsByCategory(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, products)
}

// GET /products
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.catalogService.ListActiveProducts(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, products)
}

// GET /products/featured
func (h *CatalogHandler) ListFeaturedProducts(c *gin.Context) {
	products, err := h.catalogService.ListFeaturedProducts(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, products)
}

// GET /products/:slug
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.catalogService.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, product)
}
