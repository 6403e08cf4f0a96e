package app

import (
	"hirehub_backend/docs"
	"hirehub_backend/internal/config"
	"hirehub_backend/internal/middleware"
	"hirehub_backend/internal/model"
	"hirehub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerCandidateFacingRoutes(authGroup, c)
		a.registerRecruiterRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// Candidates fill assessments without an account; the runtime form
		// and the submission endpoint are open.
		public.GET("/jobs", c.job.List)
		public.GET("/jobs/:jobId", c.job.Get)
		public.GET("/jobs/:jobId/assessment", c.assessment.Get)
		public.POST("/jobs/:jobId/submissions", c.submission.Create)
	}
}

func (a *App) registerCandidateFacingRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)
}

func (a *App) registerRecruiterRoutes(rg *gin.RouterGroup, c *controllers) {
	staff := rg.Group("/")
	staff.Use(middleware.RoleMiddleware(model.RoleRecruiter, model.RoleAdmin))
	{
		staff.POST("/jobs", c.job.Create)
		staff.PUT("/jobs/:jobId", c.job.Update)
		staff.DELETE("/jobs/:jobId", c.job.Delete)

		staff.PUT("/jobs/:jobId/assessment", c.assessment.Replace)

		staff.GET("/jobs/:jobId/submissions", c.submission.ListByJob)
		staff.GET("/submissions/:id", c.submission.Get)

		staff.POST("/candidates", c.candidate.Create)
		staff.GET("/candidates", c.candidate.List)
		staff.GET("/candidates/:id", c.candidate.Get)
		staff.DELETE("/candidates/:id", c.candidate.Delete)

		builder := staff.Group("/jobs/:jobId/assessment/builder")
		{
			builder.GET("", c.builder.Get)
			builder.PATCH("/metadata", c.builder.UpdateMetadata)
			builder.POST("/persist", c.builder.Persist)
			builder.POST("/discard", c.builder.Discard)

			builder.POST("/sections", c.builder.AddSection)
			builder.PUT("/sections/order", c.builder.ReorderSections)
			builder.PATCH("/sections/:sectionId", c.builder.UpdateSection)
			builder.DELETE("/sections/:sectionId", c.builder.RemoveSection)

			builder.POST("/sections/:sectionId/questions", c.builder.AddQuestion)
			builder.PUT("/sections/:sectionId/questions/order", c.builder.ReorderQuestions)
			builder.PATCH("/questions/:questionId", c.builder.UpdateQuestion)
			builder.DELETE("/questions/:questionId", c.builder.RemoveQuestion)
			builder.POST("/questions/:questionId/duplicate", c.builder.DuplicateQuestion)
			builder.PUT("/questions/:questionId/validation", c.builder.UpdateQuestionValidation)
			builder.PUT("/questions/:questionId/conditional", c.builder.UpdateQuestionConditional)
			builder.PUT("/questions/:questionId/choices", c.builder.SetQuestionChoices)
		}
	}
}
