// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/storefront-backend/internal/apperrors"
	"github.com/javajoker/storefront-backend/internal/i18n"
)

const (
	ContextKeyLang       = "lang"
	ContextKeyRequestID  = "request_id"
	ContextKeyCredential = "session_credential"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// ValidationErrorResponse answers 400 with per-field details when there are any.
func ValidationErrorResponse(c *gin.Context, details []ValidationError) {
	var payload interface{}
	if len(details) > 0 {
		payload = details
	}
	lang := GetLangFromContext(c)
	ErrorResponse(c, http.StatusBadRequest, string(apperrors.CodeValidation), i18n.T(lang, i18n.KeyValidationInvalid), payload)
}

// HandleError maps a service error onto the response envelope. Store failures
// are logged with their cause and answered with the generic message only.
func HandleError(c *gin.Context, err error) {
	appErr := apperrors.As(err)
	if appErr == nil {
		appErr = apperrors.Wrap(apperrors.CodeInternal, err, "unexpected error")
	}

	status := appErr.HTTPStatus()
	entry := logrus.WithFields(logrus.Fields{
		"code":       appErr.Code(),
		"path":       c.Request.URL.Path,
		"request_id": c.GetString(ContextKeyRequestID),
	})
	if status >= http.StatusInternalServerError {
		entry.WithError(err).Error(appErr.Message())
	} else {
		entry.Debug(appErr.Message())
	}

	lang := GetLangFromContext(c)
	ErrorResponse(c, status, string(appErr.Code()), i18n.T(lang, appErr.Key()), nil)
}

func GetLangFromContext(c *gin.Context) string {
	if lang, exists := c.Get(ContextKeyLang); exists {
		if langStr, ok := lang.(string); ok {
			return langStr
		}
	}
	return i18n.DefaultLang
}

// GetCredentialFromContext returns the raw session credential extracted by
// the session credential middleware, or "" when the request carried none.
func GetCredentialFromContext(c *gin.Context) string {
	return c.GetString(ContextKeyCredential)
}
