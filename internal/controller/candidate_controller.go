package controller

import (
	"strconv"

	"hirehub_backend/internal/service"
	"hirehub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CandidateController struct {
	Service *service.CandidateService
}

func NewCandidateController(svc *service.CandidateService) *CandidateController {
	return &CandidateController{Service: svc}
}

// @Summary Add a candidate
// @Tags candidates
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CandidateRequest true "candidate"
// @Success 201 {object} util.Response
// @Router /api/candidates [post]
func (c *CandidateController) Create(ctx *gin.Context) {
	var req service.CandidateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	cand, err := c.Service.Create(ctx.Request.Context(), req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, cand)
}

// @Summary List candidates
// @Tags candidates
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "page"
// @Param limit query int false "limit"
// @Success 200 {object} util.Response
// @Router /api/candidates [get]
func (c *CandidateController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	list, total, err := c.Service.List(ctx.Request.Context(), page, limit)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"list": list, "total": total, "page": page, "limit": limit})
}

// @Summary Get a candidate
// @Tags candidates
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "candidate id"
// @Success 200 {object} util.Response
// @Router /api/candidates/{id} [get]
func (c *CandidateController) Get(ctx *gin.Context) {
	cand, err := c.Service.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, cand)
}

// @Summary Remove a candidate
// @Tags candidates
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "candidate id"
// @Success 200 {object} util.Response
// @Router /api/candidates/{id} [delete]
func (c *CandidateController) Delete(ctx *gin.Context) {
	if err := c.Service.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
