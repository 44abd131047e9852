// internal/handlers/seed.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/storefront-backend/internal/i18n"
	"github.com/javajoker/storefront-backend/internal/services"
	"github.com/javajoker/storefront-backend/internal/utils"
)

type SeedHandler struct {
	seedService *services.SeedService
}

func NewSeedHandler(seedService *services.SeedService) *SeedHandler {
	return &SeedHandler{seedService: seedService}
}

type seedResponse struct {
	services.SeedResult
	Message string `json:"message"`
}

// POST /seed
func (h *SeedHandler) Seed(c *gin.Context) {
	result, err := h.seedService.Seed(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	key := i18n.KeySeedSkipped
	if result.Seeded {
		key = i18n.KeySeedCompleted
	}
	utils.SuccessResponse(c, seedResponse{
		SeedResult: result,
		Message:    i18n.T(utils.GetLangFromContext(c), key),
	})
}
