package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/falacidadao/ocorrencias-api/pkg/errors"
)

// SuccessEnvelope is the wire contract consumed by the mobile app.
type SuccessEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorEnvelope carries a human-readable error and optional diagnostic detail.
type ErrorEnvelope struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// OK sends a 200 success envelope with an optional message.
func OK(c *gin.Context, data interface{}, message string) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, SuccessEnvelope{Success: true, Data: data, Message: message})
}

// Error converts any error into the common error envelope. Wrapped causes are
// surfaced as details so the app can display or log them.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	envelope := ErrorEnvelope{Error: appErr.Message}
	if appErr.Err != nil {
		envelope.Details = appErr.Err.Error()
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Status, envelope)
}
