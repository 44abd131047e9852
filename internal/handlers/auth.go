// internal/handlers/auth.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/storefront-backend/internal/i18n"
	"github.com/javajoker/storefront-backend/internal/services"
	"github.com/javajoker/storefront-backend/internal/utils"
)

type AuthHandler struct {
	authService  *services.AuthService
	cookieName   string
	cookieMaxAge time.Duration
	secureCookie bool
}

func NewAuthHandler(authService *services.AuthService, cookieName string, cookieMaxAge time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		cookieName:   cookieName,
		cookieMaxAge: cookieMaxAge,
		secureCookie: secureCookie,
	}
}

type authResponse struct {
	*services.AuthResult
	Message string `json:"message"`
}

// POST /auth/sign-up
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req services.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, nil)
		return
	}

	// Validate request
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	result, err := h.authService.SignUp(c.Request.Context(), &req, clientInfo(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	h.respond(c, http.StatusCreated, result, i18n.KeyAuthSignedUp)
}

// POST /auth/sign-in
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req services.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, nil)
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	result, err := h.authService.SignIn(c.Request.Context(), &req, clientInfo(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	h.respond(c, http.StatusOK, result, i18n.KeyAuthSignedIn)
}

func (h *AuthHandler) respond(c *gin.Context, status int, result *services.AuthResult, key string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, result.Token, int(h.cookieMaxAge.Seconds()), "/", "", h.secureCookie, true)

	c.JSON(status, utils.APIResponse{
		Success: true,
		Data: authResponse{
			AuthResult: result,
			Message:    i18n.T(utils.GetLangFromContext(c), key),
		},
	})
}

func clientInfo(c *gin.Context) services.ClientInfo {
	return services.ClientInfo{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}
