package util

import (
	"hirehub_backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response is the success envelope: {"data": ...}.
type Response struct {
	Data interface{} `json:"data"`
}

// ErrorResponse is the failure envelope: {"message": "..."} with a non-2xx
// status. Issues carries field-tagged validation problems when present.
type ErrorResponse struct {
	Message string      `json:"message"`
	Issues  interface{} `json:"issues,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Data: data})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Data: data})
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Message: message})
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Unauthorized")
}

func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, ErrPermissionDenied.Error())
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound, "Resource not found")
}

// ServiceUnavailable signals a transient transport failure; the client is
// expected to retry.
func ServiceUnavailable(c *gin.Context) {
	Error(c, http.StatusServiceUnavailable, "Temporary failure, please retry")
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

// ValidationFailed returns the field-path-tagged issues inline so the form
// can render them next to the offending inputs.
func ValidationFailed(c *gin.Context, issues interface{}) {
	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Message: "Validation failed",
		Issues:  issues,
	})
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error", zap.Error(err))
	InternalServerError(c)
}
