package routes

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "calcplanner/docs" // This will be auto-generated
	"calcplanner/internal/adapter/http/handlers"
	"calcplanner/internal/infrastructure/config"
	"calcplanner/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Run will start the server and block until SIGINT or SIGTERM.
func Run() error {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := OpenApp(ctx, cfg, log, prometheus.DefaultRegisterer)
	if err != nil {
		log.Error("failed to start the application", zap.Error(err))
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Warn("close storage", zap.Error(err))
		}
	}()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           NewRouter(app, cfg, log),
		ReadHeaderTimeout: 5 * time.Second,
		// request contexts end with ctx so open event streams stop on shutdown
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", cfg.HTTPAddr), zap.String("storage", cfg.Storage.Driver))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter mounts every route on a fresh gin engine.
func NewRouter(app *App, cfg config.Config, log *zap.Logger) *gin.Engine {
	if log == nil {
		log = zap.NewNop()
	}
	router := gin.New()
	setMiddlewares(router, app, log)

	if cfg.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	if cfg.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	estimateHandler := handlers.NewEstimateHandler(app.Estimates, app.Handoff)
	materialHandler := handlers.NewMaterialHandler(app.Catalog)
	handoffHandler := handlers.NewHandoffHandler(app.Handoff)
	exportHandler := handlers.NewExportHandler(app.Export)
	eventsHandler := handlers.NewEventsHandler(app.Catalog, app.Handoff, 0)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMaterialRoutes(v1, materialHandler)
	addEstimateRoutes(v1, estimateHandler, exportHandler)
	addHandoffRoutes(v1, handoffHandler, eventsHandler)
	return router
}

func setMiddlewares(router *gin.Engine, app *App, log *zap.Logger) {
	router.Use(logger.GinMiddleware(log))
	router.Use(app.Metrics.GinMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
