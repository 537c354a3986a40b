package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/crm-backend/internal/platform/apierr"
)

type APIError struct {
	Message string   `json:"message"`
	Code    string   `json:"code,omitempty"`
	Reasons []string `json:"reasons,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// MapError translates the service error taxonomy into HTTP statuses so
// callers can distinguish outcomes without parsing messages.
func MapError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "internal_error"
	var reasons []string

	var ae *apierr.Error
	if errors.As(err, &ae) {
		code = ae.Code
		reasons = ae.Reasons
		switch ae.Kind {
		case apierr.KindValidation:
			status = http.StatusBadRequest
		case apierr.KindConflict:
			status = http.StatusConflict
		case apierr.KindNotFound:
			status = http.StatusNotFound
		case apierr.KindPersistence:
			status = http.StatusInternalServerError
		}
	}

	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
			Reasons: reasons,
		},
	})
}
