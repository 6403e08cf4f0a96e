package controller

import (
	"errors"

	"hirehub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// handleServiceError maps the service error taxonomy to the HTTP envelope:
// missing resources are 404, transient transport failures are retryable
// 503s, malformed payloads are 400s, everything else is a logged 500.
func handleServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrNotFound), errors.Is(err, util.ErrAssessmentMissing):
		util.Error(ctx, 404, err.Error())
	case errors.Is(err, util.ErrTransient):
		util.ServiceUnavailable(ctx)
	case errors.Is(err, util.ErrMalformedPayload):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
