package controller

import (
	"hirehub_backend/internal/service"
	"hirehub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SubmissionController struct {
	Service *service.SubmissionService
}

func NewSubmissionController(svc *service.SubmissionService) *SubmissionController {
	return &SubmissionController{Service: svc}
}

// @Summary Submit assessment answers
// @Description Validates the form against the job's assessment and records one attempt. Validation problems come back as field-tagged issues with a 422.
// @Tags submissions
// @Accept json
// @Produce json
// @Param jobId path string true "job id"
// @Param body body service.SubmitRequest true "submission"
// @Success 201 {object} util.Response
// @Failure 422 {object} util.ErrorResponse
// @Router /api/jobs/{jobId}/submissions [post]
func (c *SubmissionController) Create(ctx *gin.Context) {
	var req service.SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	rec, issues, err := c.Service.Submit(ctx.Request.Context(), ctx.Param("jobId"), req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	if len(issues) > 0 {
		util.ValidationFailed(ctx, issues)
		return
	}

	util.Created(ctx, rec)
}

// @Summary List a job's submissions, newest first
// @Tags submissions
// @Produce json
// @Security ApiKeyAuth
// @Param jobId path string true "job id"
// @Success 200 {object} util.Response
// @Router /api/jobs/{jobId}/submissions [get]
func (c *SubmissionController) ListByJob(ctx *gin.Context) {
	list, err := c.Service.ListByJob(ctx.Request.Context(), ctx.Param("jobId"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// @Summary Get one submission
// @Tags submissions
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "submission id"
// @Success 200 {object} util.Response
// @Router /api/submissions/{id} [get]
func (c *SubmissionController) Get(ctx *gin.Context) {
	rec, err := c.Service.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, rec)
}
