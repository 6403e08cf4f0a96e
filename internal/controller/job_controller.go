package controller

import (
	"strconv"

	"hirehub_backend/internal/service"
	"hirehub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type JobController struct {
	Service *service.JobService
}

func NewJobController(svc *service.JobService) *JobController {
	return &JobController{Service: svc}
}

// @Summary Create a job posting
// @Tags jobs
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.JobRequest true "job"
// @Success 201 {object} util.Response
// @Router /api/jobs [post]
func (c *JobController) Create(ctx *gin.Context) {
	var req service.JobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	job, err := c.Service.Create(ctx.Request.Context(), req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, job)
}

// @Summary List job postings
// @Tags jobs
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "page"
// @Param limit query int false "limit"
// @Success 200 {object} util.Response
// @Router /api/jobs [get]
func (c *JobController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	jobs, total, err := c.Service.List(ctx.Request.Context(), page, limit)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"list": jobs, "total": total, "page": page, "limit": limit})
}

// @Summary Get a job posting
// @Tags jobs
// @Produce json
// @Security ApiKeyAuth
// @Param jobId path string true "job id"
// @Success 200 {object} util.Response
// @Router /api/jobs/{jobId} [get]
func (c *JobController) Get(ctx *gin.Context) {
	job, err := c.Service.Get(ctx.Request.Context(), ctx.Param("jobId"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, job)
}

// @Summary Update a job posting
// @Tags jobs
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param jobId path string true "job id"
// @Param body body service.JobRequest true "job"
// @Success 200 {object} util.Response
// @Router /api/jobs/{jobId} [put]
func (c *JobController) Update(ctx *gin.Context) {
	var req service.JobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	job, err := c.Service.Update(ctx.Request.Context(), ctx.Param("jobId"), req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, job)
}

// @Summary Delete a job posting and its assessment data
// @Tags jobs
// @Produce json
// @Security ApiKeyAuth
// @Param jobId path string true "job id"
// @Success 200 {object} util.Response
// @Router /api/jobs/{jobId} [delete]
func (c *JobController) Delete(ctx *gin.Context) {
	if err := c.Service.Delete(ctx.Request.Context(), ctx.Param("jobId")); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
