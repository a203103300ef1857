package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	memorystoredocs "github.com/janhq/agent-memory-store/docs/swagger"
	"github.com/janhq/agent-memory-store/internal/config"
	"github.com/janhq/agent-memory-store/internal/infrastructure/metrics"
	middleware "github.com/janhq/agent-memory-store/internal/interfaces/httpserver/middlewares"
	v1 "github.com/janhq/agent-memory-store/internal/interfaces/httpserver/routes/v1"
)

const readinessTimeout = 2 * time.Second

// HTTPServer wraps the gin engine with graceful shutdown helpers.
type HTTPServer struct {
	engine *gin.Engine
	cfg    *config.Config
	db     *gorm.DB
	log    zerolog.Logger
}

// NewHTTPServer builds the engine with the middleware chain, core routes and the v1 API.
func NewHTTPServer(cfg *config.Config, log zerolog.Logger, db *gorm.DB, v1Route *v1.V1Route) *HTTPServer {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	memorystoredocs.SwaggerInfo.BasePath = "/"

	server := &HTTPServer{
		engine: gin.New(),
		cfg:    cfg,
		db:     db,
		log:    log.With().Str("component", "http-server").Logger(),
	}
	server.engine.Use(middleware.RequestID())
	server.engine.Use(middleware.Recovery(server.log))
	server.engine.Use(middleware.TracingMiddleware(cfg.ServiceName))
	server.engine.Use(middleware.MetricsMiddleware())
	server.engine.Use(middleware.LoggingMiddleware(server.log))
	server.engine.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))

	server.registerCoreRoutes()

	api := server.engine.Group("/")
	api.Use(middleware.Timeout(cfg.RequestTimeout))
	v1Route.RegisterRouter(api)
	return server
}

// Handler exposes the engine, mainly for tests.
func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

// Run starts the HTTP listener and shuts it down gracefully when ctx is cancelled.
func (s *HTTPServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.cfg.Addr()).Msg("HTTP server listening")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.log.Info().Msg("context cancelled, shutting down HTTP server")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func (s *HTTPServer) registerCoreRoutes() {
	s.engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": s.cfg.ServiceName,
			"status":  "ok",
		})
	})

	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	s.engine.GET("/readyz", s.readyz)
	s.engine.GET("/metrics", gin.WrapH(metrics.Handler()))
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// readyz godoc
// @Summary Readiness check
// @Description Reports ready once the database answers a ping.
// @Tags Server API
// @Produce json
// @Success 200 {object} map[string]string "ready"
// @Failure 503 {object} map[string]string "database unavailable"
// @Router /readyz [get]
func (s *HTTPServer) readyz(c *gin.Context) {
	sqlDB, err := s.db.DB()
	if err == nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
		defer cancel()
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		s.log.Warn().Err(err).Msg("readiness check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
