package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hirehub_backend/internal/config"
	"hirehub_backend/internal/controller"
	"hirehub_backend/internal/repository"
	"hirehub_backend/internal/service"
	"hirehub_backend/pkg/database"
	"hirehub_backend/pkg/logger"
	"hirehub_backend/pkg/monitoring"
	"hirehub_backend/pkg/security"
	"hirehub_backend/pkg/simnet"
	"hirehub_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	Injector *simnet.Injector
}

type repositories struct {
	user       *repository.UserRepository
	job        *repository.JobRepository
	candidate  *repository.CandidateRepository
	assessment repository.AssessmentStore
	submission repository.SubmissionStore
}

type services struct {
	auth       *service.AuthService
	job        *service.JobService
	candidate  *service.CandidateService
	assessment *service.AssessmentService
	builder    *service.BuilderService
	submission *service.SubmissionService
}

type controllers struct {
	auth       *controller.AuthController
	job        *controller.JobController
	candidate  *controller.CandidateController
	assessment *controller.AssessmentController
	builder    *controller.BuilderController
	submission *controller.SubmissionController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	// The simnet decorators sit between the services and the real stores,
	// so every assessment/submission call crosses the simulated network.
	assessment := repository.NewFlakyAssessmentStore(repository.NewAssessmentRepository(db), a.Injector)
	submission := repository.NewFlakySubmissionStore(repository.NewSubmissionRepository(db), a.Injector)

	return &repositories{
		user:       repository.NewUserRepository(db),
		job:        repository.NewJobRepository(db),
		candidate:  repository.NewCandidateRepository(db),
		assessment: assessment,
		submission: submission,
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}
	s.auth = service.NewAuthService(repos.user, cfg)
	s.assessment = service.NewAssessmentService(repos.assessment, rdb)
	s.builder = service.NewBuilderService(repos.assessment)
	s.submission = service.NewSubmissionService(repos.assessment, repos.submission)
	s.job = service.NewJobService(repos.job, s.assessment)
	s.candidate = service.NewCandidateService(repos.candidate)
	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		job:        controller.NewJobController(s.job),
		candidate:  controller.NewCandidateController(s.candidate),
		assessment: controller.NewAssessmentController(s.assessment, s.builder),
		builder:    controller.NewBuilderController(s.builder),
		submission: controller.NewSubmissionController(s.submission),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// ApplyConfig takes over hot-reloadable tunables from a freshly loaded
// config; the config watcher calls this.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Injector.Update(
		cfg.SimNet.Enabled,
		time.Duration(cfg.SimNet.MinLatencyMs)*time.Millisecond,
		time.Duration(cfg.SimNet.MaxLatencyMs)*time.Millisecond,
		cfg.SimNet.FailureRate,
	)
	logger.Log.Info("config reloaded",
		zap.Bool("simnetEnabled", cfg.SimNet.Enabled),
		zap.Float64("simnetFailureRate", cfg.SimNet.FailureRate),
	)
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Warn("Redis unavailable, assessment cache disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
		Injector: simnet.New(
			cfg.SimNet.Enabled,
			time.Duration(cfg.SimNet.MinLatencyMs)*time.Millisecond,
			time.Duration(cfg.SimNet.MaxLatencyMs)*time.Millisecond,
			cfg.SimNet.FailureRate,
		),
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("hirehub", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
