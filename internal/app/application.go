package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"learning-center-backend/internal/background"
	"learning-center-backend/internal/catalog"
	"learning-center-backend/internal/config"
	"learning-center-backend/internal/constants"
	"learning-center-backend/internal/handlers"
	"learning-center-backend/internal/middleware"
	"learning-center-backend/internal/sections"
	"learning-center-backend/internal/service"
	"learning-center-backend/pkg/cache"
	"learning-center-backend/pkg/logger"
)

type Application struct {
	cfg *config.Config

	cache    *cache.Cache
	registry *sections.Registry

	learnService *service.LearnService
	learnHandler *handlers.LearnHandler

	scheduler *background.Scheduler
	router    *gin.Engine
	server    *http.Server
}

func New(cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid navigation catalog: %w", err)
	}

	app := &Application{
		cfg: cfg,
	}

	app.initCache()
	app.initServices()
	app.initScheduler()

	if err := app.initRouter(); err != nil {
		return nil, err
	}

	app.server = &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        app.router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	return app, nil
}

func (a *Application) Run() error {
	logger.Info("Server starting", map[string]interface{}{
		"port":        a.cfg.Port,
		"environment": a.cfg.Environment,
	})

	a.scheduler.Start(context.Background())

	return a.server.ListenAndServe()
}

func (a *Application) Shutdown(ctx context.Context) error {
	if a.scheduler != nil {
		if err := a.scheduler.Shutdown(ctx); err != nil {
			logger.Error(err, "Failed to stop background scheduler", nil)
		}
	}

	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return err
		}
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			logger.Error(err, "Failed to close cache connection", nil)
		}
	}

	return nil
}

func (a *Application) Router() *gin.Engine {
	return a.router
}

func (a *Application) initCache() {
	if !a.cfg.EnableCache || !a.cfg.EnableRedis {
		a.cache = cache.Disabled()
		return
	}

	c, err := cache.NewCache(a.cfg.RedisURL, true)
	if err != nil {
		logger.Warn("Redis unavailable, page caching disabled", map[string]interface{}{
			"addr":  a.cfg.RedisURL,
			"error": err.Error(),
		})
		a.cache = cache.Disabled()
		return
	}

	a.cache = c
}

func (a *Application) initServices() {
	a.registry = sections.DefaultRegistry()
	a.learnService = service.NewLearnService(a.cache, a.registry, a.cfg.PageCacheTTL)
	a.learnHandler = handlers.NewLearnHandler(a.learnService, a.cfg)
}

func (a *Application) initScheduler() {
	a.scheduler = background.NewScheduler()

	if !a.cache.Enabled() || a.cfg.PageCacheRefresh <= 0 {
		return
	}

	if err := a.scheduler.Register(background.Job{
		Name:     "warm-landing-page",
		Run:      func(ctx context.Context) error { return a.learnService.WarmLandingPage() },
		Interval: a.cfg.PageCacheRefresh,
		Timeout:  30 * time.Second,
	}); err != nil {
		logger.Error(err, "Failed to register cache warm job", nil)
	}
}

func (a *Application) initRouter() error {
	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.GinLogger())
	router.Use(middleware.RequestIDMiddleware())

	if a.cfg.EnableMetrics {
		router.Use(middleware.MetricsMiddleware())
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	templates, err := loadTemplates()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}
	router.SetHTMLTemplate(templates)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"cache":  a.cache.Enabled(),
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	if a.cfg.EnableMetrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	router.Static("/static", a.cfg.StaticDir)

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, constants.LearnPath)
	})

	router.GET(constants.LearnPath, a.learnHandler.RenderLanding)

	// Detail routes come straight from the catalog, so every card href has a
	// matching handler.
	for _, nav := range catalog.Sections() {
		router.GET(nav.Href, a.learnHandler.RenderSection)
	}

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Route not found",
				"path":  c.Request.URL.Path,
			})
			return
		}

		c.HTML(http.StatusNotFound, "error.html", gin.H{
			"Title":      "404 - 页面不存在",
			"SiteName":   a.cfg.SiteName,
			"StatusCode": http.StatusNotFound,
			"Message":    "请求的页面不存在。",
		})
	})

	a.router = router
	return nil
}
