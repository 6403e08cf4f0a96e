package controller

import (
	"hirehub_backend/internal/model"
	"hirehub_backend/internal/service"
	"hirehub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// BuilderController exposes the builder session's mutation operations. All
// operations edit the in-memory document only; POST .../persist is the
// explicit write step.
type BuilderController struct {
	Builder *service.BuilderService
}

func NewBuilderController(builder *service.BuilderService) *BuilderController {
	return &BuilderController{Builder: builder}
}

func (c *BuilderController) session(ctx *gin.Context) (*service.BuilderSession, bool) {
	sess, err := c.Builder.Session(ctx.Request.Context(), ctx.Param("jobId"))
	if err != nil {
		handleServiceError(ctx, err)
		return nil, false
	}
	return sess, true
}

// @Summary Current builder document
// @Tags builder
// @Produce json
// @Security ApiKeyAuth
// @Param jobId path string true "job id"
// @Success 200 {object} util.Response
// @Router /api/jobs/{jobId}/assessment/builder [get]
func (c *BuilderController) Get(ctx *gin.Context) {
	sess, ok := c.session(ctx)
	if !ok {
		return
	}
	util.Success(ctx, sess.Snapshot())
}

// @Summary Update assessment metadata
// @Tags builder
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param jobId path string true "job id"
// @Param body body service.MetadataPatch true "metadata patch"
// @Success 200 {object} util.Response
// @Router /api/jobs/{jobId}/assessment/builder/metadata [patch]
func (c *BuilderController) UpdateMetadata(ctx *gin.Context) {
	var patch service.MetadataPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	sess, ok := c.session(ctx)
	if !ok {
		return
	}
	sess.UpdateMetadata(patch)
	util.Success(ctx, sess.Snapshot())
}

// @Summary Add a section
// @Tags builder
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param jobId path string true "job id"
// @Param body body service.SectionInit false "section"
// @Success 201 {object} util.Response
// @Router /api/jobs/{jobId}/assessment/builder/sections [post]
func (c *BuilderController) AddSection(ctx *gin.Context) {
	var init service.SectionInit
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&init); err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
	}
	sess, ok := c.session(ctx)
	if !ok {
		return
	}
	util.Created(ctx, sess.AddSection(init))
}

// @Summary Update a section
// @Tags builder
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param jobId path string true "job id"
// @Param sectionId path string true "section id"
// @Param body body service.SectionPatch true "section patch"
// @Success 200 {object} util.Response
// @Router /api/jobs/{jobId}/assessment/builder/sections/{sectionId} [patch]
func (c *BuilderController) UpdateSection(ctx *gin.Context) {
	var patch service.SectionPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	sess, ok := c.session(ctx)
	if !ok {
		return
	}
	if err := sess.UpdateSection(ctx.Param("sectionId"), patch); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, sess.Snapshot())
}

// @Summary Remove a section
// @Tags builder
// @Produce json
// @Security ApiKeyAuth
// @Param jobId path string true "job id"
// @Param sectionId path string true "section id"
// @Success 200 {object} util.Response
// @Router /api/jobs/{jobId}/assessment/builder/sections/{sectionId} [delete]
func (c *BuilderController) RemoveSection(ctx *gin.Context) {
	sess, ok := c.session(ctx)
	if !ok {
		return
	}
	if err := sess.RemoveSection(ctx.Param("sectionId")); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, sess.Snapshot())
}

// @Summary Add a question to a section
// @Tags builder
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param jobId path string true "job id"
// @Param sectionId path string true "section id"
// @Param body body service.QuestionInit true "question"
// @Success 201 {object} util.Response
// @Router /api/jobs/{jobId}/assessment/builder/sections/{sectionId}/questions [post]
func (c *BuilderController) AddQuestion(ctx *gin.Context) {
	var init service.QuestionInit
	if err := ctx.ShouldBindJSON(&init); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	sess, ok := c.session(ctx)
	if !ok {
		return
	}
	q, err := sess.AddQuestion(ctx.Param("sectionId"), init)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, q)
}

// @Summary Update a question
// @Tags builder
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param jobId path string true "job id"
// @Param questionId path string true "question id"
// @Param body body service.QuestionPatch true "question patch"
// @Success 200 {object} util.Response
// @Router /api/jobs/{jobId}/assessment/builder/questions/{questionId} [patch]
func (c *BuilderController) UpdateQuestion(ctx *gin.Context) {
	var patch service.QuestionPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	sess, ok := c.session(ctx)
	if !ok {
		return
	}
	if err := sess.UpdateQuestion(ctx.Param("questionId"), patch); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, sess.Snapshot())
}

// @Summary Replace a question's validation rules
// @Tags builder
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param jobId path string true "job id"
// @Param questionId path string true "question id"
// @Param body body model.ValidationRules true "validation rules"
// @Success 200 {object} util.Response
// @Router /api/jobs/{jobId}/assessment/builder/questions/{questionId}/validation [put]
func (c *BuilderController) UpdateQuestionValidation(ctx *gin.Context) {
	var rules model.ValidationRules
	if err := ctx.ShouldBindJSON(&rules); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	sess, ok := c.session(ctx)
	if !ok {
		return
	}
	if err := sess.UpdateQuestionValidation(ctx.Param("questionId"), rules); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, sess.Snapshot())
}

// @Summary Set or clear a question's conditional logic
// @Tags builder
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param jobId path string true "job id"
// @Param questionId path string true "question id"
// @Param body body model.ConditionalLogic false "conditional logic; empty body clears"
// @Success 200 {object} util.Response
// @Router /api/jobs/{jobId}/assessment/builder/questions/{questionId}/conditional [put]
func (c *BuilderController) UpdateQuestionConditional(ctx *gin.Context) {
	var logic *model.ConditionalLogic
	if ctx.Request.ContentLength > 0 {
		logic = &model.ConditionalLogic{}
		if err := ctx.ShouldBindJSON(logic); err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
	}
	sess, ok := c.session(ctx)
	if !ok {
		return
	}
	if err := sess.UpdateQuestionConditional(ctx.Param("questionId"), logic); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, sess.Snapshot())
}

type choicesRequest struct {
	Choices []model.Choice `json:"choices" binding:"required"`
}

// @Summary Replace a question's choices
// @Tags builder
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param jobId path string true "job id"
// @Param questionId path string true "question id"
// @Param body body choicesRequest true "choices"
// @Success 200 {object} util.Response
// @Router /api/jobs/{jobId}/assessment/builder/questions/{questionId}/choices [put]
func (c *BuilderController) SetQuestionChoices(ctx *gin.Context) {
	var req choicesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	sess, ok := c.session(ctx)
	if !ok {
		return
	}
	if err := sess.SetQuestionChoices(ctx.Param("questionId"), req.Choices); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, sess.Snapshot())
}

// @Summary Remove a question
// @Tags builder
// @Produce json
// @Security ApiKeyAuth
// @Param jobId path string true "job id"
// @Param questionId path string true "question id"
// @Success 200 {object} util.Response
// @Router /api/jobs/{jobId}/assessment/builder/questions/{questionId} [delete]
func (c *BuilderController) RemoveQuestion(ctx *gin.Context) {
	sess, ok := c.session(ctx)
	if !ok {
		return
	}
	if err := sess.RemoveQuestion(ctx.Param("questionId")); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, sess.Snapshot())
}

// @Summary Duplicate a question
// @Tags builder
// @Produce json
// @Security ApiKeyAuth
// @Param jobId path string true "job id"
// @Param questionId path string true "question id"
// @Success 201 {object} util.Response
// @Router /api/jobs/{jobId}/assessment/builder/questions/{questionId}/duplicate [post]
func (c *BuilderController) DuplicateQuestion(ctx *gin.Context) {
	sess, ok := c.session(ctx)
	if !ok {
		return
	}
	q, err := sess.DuplicateQuestion(ctx.Param("questionId"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, q)
}

type orderRequest struct {
	OrderedIDs []string `json:"orderedIds" binding:"required"`
}

// @Summary Reorder sections
// @Tags builder
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param jobId path string true "job id"
// @Param body body orderRequest true "full or partial ordering"
// @Success 200 {object} util.Response
// @Router /api/jobs/{jobId}/assessment/builder/sections/order [put]
func (c *BuilderController) ReorderSections(ctx *gin.Context) {
	var req orderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	sess, ok := c.session(ctx)
	if !ok {
		return
	}
	sess.ReorderSections(req.OrderedIDs)
	util.Success(ctx, sess.Snapshot())
}

// @Summary Reorder a section's questions
// @Tags builder
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param jobId path string true "job id"
// @Param sectionId path string true "section id"
// @Param body body orderRequest true "full or partial ordering"
// @Success 200 {object} util.Response
// @Router /api/jobs/{jobId}/assessment/builder/sections/{sectionId}/questions/order [put]
func (c *BuilderController) ReorderQuestions(ctx *gin.Context) {
	var req orderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	sess, ok := c.session(ctx)
	if !ok {
		return
	}
	if err := sess.ReorderQuestions(ctx.Param("sectionId"), req.OrderedIDs); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, sess.Snapshot())
}

// @Summary Persist the builder document
// @Description Writes a snapshot of the in-memory document to storage. Superseded writes are discarded.
// @Tags builder
// @Produce json
// @Security ApiKeyAuth
// @Param jobId path string true "job id"
// @Success 200 {object} util.Response
// @Router /api/jobs/{jobId}/assessment/builder/persist [post]
func (c *BuilderController) Persist(ctx *gin.Context) {
	a, err := c.Builder.Persist(ctx.Request.Context(), ctx.Param("jobId"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, a)
}

// @Summary Discard unsaved builder edits
// @Tags builder
// @Produce json
// @Security ApiKeyAuth
// @Param jobId path string true "job id"
// @Success 200 {object} util.Response
// @Router /api/jobs/{jobId}/assessment/builder/discard [post]
func (c *BuilderController) Discard(ctx *gin.Context) {
	a, err := c.Builder.Reload(ctx.Request.Context(), ctx.Param("jobId"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, a)
}
