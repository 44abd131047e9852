// internal/handlers/session.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/storefront-backend/internal/i18n"
	"github.com/javajoker/storefront-backend/internal/services"
	"github.com/javajoker/storefront-backend/internal/utils"
)

type SessionHandler struct {
	sessionService *services.SessionService
	cookieName     string
	secureCookie   bool
}

func NewSessionHandler(sessionService *services.SessionService, cookieName string, secureCookie bool) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		cookieName:     cookieName,
		secureCookie:   secureCookie,
	}
}

// GET /auth/session
func (h *SessionHandler) GetSession(c *gin.Context) {
	identity, err := h.sessionService.Resolve(c.Request.Context(), utils.GetCredentialFromContext(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, identity)
}

// POST /auth/sign-out
func (h *SessionHandler) SignOut(c *gin.Context) {
	if err := h.sessionService.Revoke(c.Request.Context(), utils.GetCredentialFromContext(c)); err != nil {
		utils.HandleError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, "", -1, "/", "", h.secureCookie, true)
	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(utils.GetLangFromContext(c), i18n.KeyAuthSignedOut),
	})
}
