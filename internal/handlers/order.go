// internal/handlers/order.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/storefront-backend/internal/services"
	"github.com/javajoker/storefront-backend/internal/utils"
)

type OrderHandler struct {
	orderService    *services.OrderService
	resourceService *services.ResourceService
}

func NewOrderHandler(orderService *services.OrderService, resourceService *services.ResourceService) *OrderHandler {
	return &OrderHandler{
		orderService:    orderService,
		resourceService: resourceService,
	}
}

// GET /orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.ListOrdersForSession(c.Request.Context(), utils.GetCredentialFromContext(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, orders)
}

// GET /products/:slug/resources
func (h *OrderHandler) ListProductResources(c *gin.Context) {
	resources, err := h.resourceService.ListResourcesForSession(
		c.Request.Context(),
		utils.GetCredentialFromContext(c),
		c.Param("slug"),
	)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, resources)
}
