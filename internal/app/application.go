package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"estate-backoffice/internal/background"
	"estate-backoffice/internal/config"
	"estate-backoffice/internal/handlers"
	"estate-backoffice/internal/middleware"
	"estate-backoffice/internal/models"
	"estate-backoffice/internal/render"
	"estate-backoffice/internal/repository"
	"estate-backoffice/internal/seed"
	"estate-backoffice/internal/service"
	"estate-backoffice/internal/storage"
	"estate-backoffice/pkg/cache"
	"estate-backoffice/pkg/logger"
)

type Application struct {
	cfg *config.Config

	selector *storage.Selector
	cache    *cache.Cache

	events    *service.Events
	scheduler *background.Scheduler

	repositories repositoryContainer
	services     serviceContainer
	handlers     handlerContainer

	rateLimits *middleware.RateLimitManager

	router *gin.Engine
	server *http.Server

	lifecycleCtx    context.Context
	lifecycleCancel context.CancelFunc
}

type repositoryContainer struct {
	User         repository.UserRepository
	Property     repository.PropertyRepository
	Template     repository.TemplateRepository
	Settings     repository.SettingsRepository
	Notification repository.NotificationRepository
	Participant  repository.ParticipantRepository
	Document     repository.DocumentRepository
}

type serviceContainer struct {
	Auth         *service.AuthService
	Property     *service.PropertyService
	Template     *service.TemplateService
	Brochure     *service.BrochureService
	Settings     *service.SettingsService
	Notification *service.NotificationService
	Participant  *service.ParticipantService
	Document     *service.DocumentService
}

type handlerContainer struct {
	Auth         *handlers.AuthHandler
	Property     *handlers.PropertyHandler
	Template     *handlers.TemplateHandler
	Brochure     *handlers.BrochureHandler
	Settings     *handlers.SettingsHandler
	Notification *handlers.NotificationHandler
	Participant  *handlers.ParticipantHandler
	Document     *handlers.DocumentHandler
}

func New(cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	app := &Application{cfg: cfg}
	app.lifecycleCtx, app.lifecycleCancel = context.WithCancel(context.Background())

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.runMigrations(); err != nil {
		return nil, err
	}

	if err := app.createIndexes(); err != nil {
		return nil, err
	}

	if err := app.initCache(); err != nil {
		return nil, err
	}

	app.events = service.NewEvents()
	app.initRepositories()
	app.initServices()

	seed.EnsureAgencySettings(app.repositories.Settings, cfg.AgencyName)
	seed.EnsureDefaultTemplate(app.repositories.Template, 0)

	app.initHandlers()
	app.initBackground()
	app.initRouter()

	app.server = &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        app.router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   60 * time.Second, // brochure rendering can be slow on image-heavy listings
		MaxHeaderBytes: 1 << 20,
	}

	return app, nil
}

func (a *Application) Run() error {
	logger.Info("Server starting", map[string]interface{}{
		"port":        a.cfg.Port,
		"environment": a.cfg.Environment,
	})

	return a.server.ListenAndServe()
}

func (a *Application) Router() http.Handler {
	return a.router
}

func (a *Application) Shutdown(ctx context.Context) error {
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			logger.Error(err, "HTTP server shutdown failed", nil)
		}
	}

	if a.scheduler != nil {
		if err := a.scheduler.Shutdown(ctx); err != nil {
			logger.Error(err, "Scheduler shutdown failed", nil)
		}
	}

	a.lifecycleCancel()

	if a.rateLimits != nil {
		_ = a.rateLimits.Shutdown()
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			logger.Error(err, "Failed to close cache connection", nil)
		}
	}

	if a.selector != nil {
		if err := a.selector.Close(); err != nil {
			logger.Error(err, "Failed to close database connections", nil)
		}
	}

	return nil
}

func (a *Application) initDatabase() error {
	logger.Info("Connecting to database", nil)

	selector, err := storage.Open(storage.Options{
		PrimaryURL:  a.cfg.DatabaseURL,
		FallbackURL: a.cfg.FallbackDatabaseURL,
	})
	if err != nil {
		return err
	}

	a.selector = selector
	a.selector.StartHealthLoop(a.lifecycleCtx)
	return nil
}

func (a *Application) runMigrations() error {
	if a.selector == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	logger.Info("Running database migrations", nil)

	if err := a.selector.Primary().AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.PropertyImage{},
		&models.PropertyArea{},
		&models.PropertyFeature{},
		&models.NearbyPlace{},
		&models.AgencySettings{},
		&models.BrochureTemplate{},
		&models.Notification{},
		&models.Participant{},
		&models.Document{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("Database migration completed", nil)
	return nil
}

func (a *Application) createIndexes() error {
	logger.Info("Creating database indexes", nil)

	statements := []string{
		"CREATE INDEX IF NOT EXISTS idx_properties_status ON properties(status)",
		"CREATE INDEX IF NOT EXISTS idx_properties_city ON properties(city)",
		"CREATE INDEX IF NOT EXISTS idx_properties_created_at ON properties(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_property_images_main ON property_images(property_id) WHERE is_main = true",
		"CREATE INDEX IF NOT EXISTS idx_notifications_unread ON notifications(user_id) WHERE read = false",
		"CREATE INDEX IF NOT EXISTS idx_participants_email ON participants(property_id, email)",
		"CREATE INDEX IF NOT EXISTS idx_brochure_templates_sections ON brochure_templates USING GIN (sections)",
	}

	for _, stmt := range statements {
		if err := a.selector.Primary().Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

func (a *Application) initCache() error {
	addr := ""
	enable := a.cfg.EnableCache && a.cfg.EnableRedis
	if enable {
		addr = a.cfg.RedisURL
	}

	c, err := cache.NewCache(addr, enable)
	if err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}

	a.cache = c
	return nil
}

func (a *Application) initRepositories() {
	a.repositories = repositoryContainer{
		User:         repository.NewUserRepository(a.selector),
		Property:     repository.NewPropertyRepository(a.selector),
		Template:     repository.NewTemplateRepository(a.selector),
		Settings:     repository.NewSettingsRepository(a.selector),
		Notification: repository.NewNotificationRepository(a.selector),
		Participant:  repository.NewParticipantRepository(a.selector),
		Document:     repository.NewDocumentRepository(a.selector),
	}
}

func (a *Application) initServices() {
	notification := service.NewNotificationService(a.repositories.Notification, a.events)

	a.services = serviceContainer{
		Auth:         service.NewAuthService(a.repositories.User, a.cfg.JWTSecret),
		Property:     service.NewPropertyService(a.repositories.Property, a.cache, a.events),
		Template:     service.NewTemplateService(a.repositories.Template, a.cache, a.events),
		Brochure:     service.NewBrochureService(a.repositories.Property, a.repositories.Settings, render.New(nil), a.events),
		Settings:     service.NewSettingsService(a.repositories.Settings, a.cache),
		Notification: notification,
		Participant:  service.NewParticipantService(a.repositories.Participant, a.repositories.Property, notification, a.events),
		Document:     service.NewDocumentService(a.repositories.Document, a.repositories.Property),
	}
}

func (a *Application) initHandlers() {
	a.handlers = handlerContainer{
		Auth:         handlers.NewAuthHandler(a.services.Auth),
		Property:     handlers.NewPropertyHandler(a.services.Property),
		Template:     handlers.NewTemplateHandler(a.services.Template),
		Brochure:     handlers.NewBrochureHandler(a.services.Brochure),
		Settings:     handlers.NewSettingsHandler(a.services.Settings),
		Notification: handlers.NewNotificationHandler(a.services.Notification),
		Participant:  handlers.NewParticipantHandler(a.services.Participant),
		Document:     handlers.NewDocumentHandler(a.services.Document),
	}
}

func (a *Application) initBackground() {
	a.scheduler = background.NewScheduler(background.SchedulerConfig{
		WorkerCount: 2,
		QueueSize:   32,
	})
	a.scheduler.Start(a.lifecycleCtx)

	background.StartNotificationRetention(
		a.lifecycleCtx,
		a.scheduler,
		a.services.Notification,
		a.cfg.NotificationRetentionDays,
	)
}

func (a *Application) initRouter() {
	if a.cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	a.rateLimits = middleware.NewRateLimitManager(a.lifecycleCtx)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(logger.GinLogger())
	if a.cfg.EnableMetrics {
		router.Use(middleware.MetricsMiddleware())
	}
	router.Use(middleware.RateLimitMiddleware(a.cfg, a.rateLimits))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		status := "healthy"
		if a.selector.UsingFallback() {
			status = "degraded"
		}
		c.JSON(http.StatusOK, gin.H{
			"status": status,
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	if a.cfg.EnableMetrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	v1 := router.Group("/api/v1")
	{
		public := v1.Group("")
		{
			public.POST("/register", a.handlers.Auth.Register)
			public.POST("/login", a.handlers.Auth.Login)
		}

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(a.cfg.JWTSecret))
		{
			protected.GET("/me", a.handlers.Auth.Me)

			protected.GET("/properties", a.handlers.Property.GetAll)
			protected.GET("/properties/:id", a.handlers.Property.GetByID)
			protected.POST("/properties", a.handlers.Property.Create)
			protected.PUT("/properties/:id", a.handlers.Property.Update)
			protected.DELETE("/properties/:id", a.handlers.Property.Delete)
			protected.POST("/properties/:id/areas", a.handlers.Property.AddArea)
			protected.POST("/properties/:id/features", a.handlers.Property.AddFeature)
			protected.POST("/properties/:id/nearby-places", a.handlers.Property.AddNearbyPlace)

			protected.GET("/properties/:id/brochure", a.handlers.Brochure.Generate)
			protected.GET("/properties/:id/window-sheet", a.handlers.Brochure.GenerateWindowSheet)
			protected.GET("/properties/:id/brochure/pages", a.handlers.Brochure.PageCount)

			protected.GET("/properties/:id/participants", a.handlers.Participant.GetByProperty)
			protected.POST("/properties/:id/participants", a.handlers.Participant.Invite)
			protected.PUT("/participants/:participantId/activate", a.handlers.Participant.Activate)
			protected.DELETE("/participants/:participantId", a.handlers.Participant.Remove)

			protected.GET("/properties/:id/documents", a.handlers.Document.GetByProperty)
			protected.POST("/properties/:id/documents", a.handlers.Document.Create)
			protected.DELETE("/documents/:documentId", a.handlers.Document.Delete)

			protected.GET("/templates/draft", a.handlers.Template.NewDraft)
			protected.GET("/templates", a.handlers.Template.GetAll)
			protected.GET("/templates/:id", a.handlers.Template.GetByID)
			protected.POST("/templates", a.handlers.Template.Create)
			protected.PUT("/templates/:id", a.handlers.Template.Update)
			protected.DELETE("/templates/:id", a.handlers.Template.Delete)

			protected.PUT("/templates/:id/sections/reorder", a.handlers.Template.ReorderSections)
			protected.POST("/templates/:id/sections/:sectionId/containers", a.handlers.Template.AddContainer)
			protected.PUT("/templates/:id/sections/:sectionId/containers/:containerId", a.handlers.Template.UpdateContainer)
			protected.DELETE("/templates/:id/sections/:sectionId/containers/:containerId", a.handlers.Template.DeleteContainer)
			protected.PUT("/templates/:id/containers/:containerId/columns", a.handlers.Template.ChangeColumns)
			protected.PUT("/templates/:id/containers/:containerId/column-width", a.handlers.Template.ChangeColumnWidth)
			protected.POST("/templates/:id/containers/:containerId/elements", a.handlers.Template.DropElement)

			protected.GET("/notifications", a.handlers.Notification.GetAll)
			protected.GET("/notifications/unread-count", a.handlers.Notification.UnreadCount)
			protected.PUT("/notifications/:id/read", a.handlers.Notification.MarkRead)
			protected.PUT("/notifications/read-all", a.handlers.Notification.MarkAllRead)

			protected.GET("/settings", a.handlers.Settings.Get)
		}

		admin := v1.Group("")
		admin.Use(middleware.AuthMiddleware(a.cfg.JWTSecret), middleware.AdminMiddleware())
		{
			admin.PUT("/settings", a.handlers.Settings.Update)
			admin.GET("/users", a.handlers.Auth.GetAllUsers)
			admin.PUT("/users/:id/role", a.handlers.Auth.UpdateUserRole)
			admin.DELETE("/users/:id", a.handlers.Auth.DeleteUser)
		}
	}

	a.router = router
}
