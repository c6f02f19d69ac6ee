package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/clinicore/health-api/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}, message string) *Response {
	return &Response{
		Status:  "success",
		Message: message,
		Data:    data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// RespondError translates a service error into the envelope and the HTTP
// status its kind maps to.
func RespondError(c *gin.Context, err error) {
	appErr := errors.From(err)
	c.JSON(appErr.HTTPStatus(), NewErrorResponse(appErr.Message))
}
