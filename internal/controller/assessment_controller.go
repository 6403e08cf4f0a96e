package controller

import (
	"hirehub_backend/internal/model"
	"hirehub_backend/internal/service"
	"hirehub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	Service *service.AssessmentService
	Builder *service.BuilderService
}

func NewAssessmentController(svc *service.AssessmentService, builder *service.BuilderService) *AssessmentController {
	return &AssessmentController{Service: svc, Builder: builder}
}

// @Summary Get the assessment for a job
// @Description Returns the job's assessment document, creating a seeded default on first access.
// @Tags assessments
// @Produce json
// @Security ApiKeyAuth
// @Param jobId path string true "job id"
// @Success 200 {object} util.Response
// @Router /api/jobs/{jobId}/assessment [get]
func (c *AssessmentController) Get(ctx *gin.Context) {
	a, err := c.Service.GetForJob(ctx.Request.Context(), ctx.Param("jobId"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, a)
}

// @Summary Replace the assessment for a job
// @Description Full-document replace. Order fields are renormalized and the update timestamp refreshed before writing.
// @Tags assessments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param jobId path string true "job id"
// @Param body body model.Assessment true "assessment"
// @Success 200 {object} util.Response
// @Router /api/jobs/{jobId}/assessment [put]
func (c *AssessmentController) Replace(ctx *gin.Context) {
	var incoming model.Assessment
	if err := ctx.ShouldBindJSON(&incoming); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	a, err := c.Service.Replace(ctx.Request.Context(), ctx.Param("jobId"), &incoming)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	// The replace invalidates any open builder session's view of the job.
	c.Builder.Discard(ctx.Param("jobId"))
	util.Success(ctx, a)
}
