package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"safesteps/cmd/fx/catalog_fx"
	"safesteps/cmd/fx/chat_fx"
	"safesteps/cmd/fx/checklist_fx"
	"safesteps/cmd/fx/config_fx"
	"safesteps/cmd/fx/contacts_fx"
	"safesteps/cmd/fx/controllers_fx"
	"safesteps/cmd/fx/db_fx"
	"safesteps/cmd/fx/logger_fx"
	"safesteps/cmd/fx/memcache_fx"
	"safesteps/cmd/fx/metrics_fx"
	"safesteps/cmd/fx/page_fx"
	"safesteps/cmd/fx/quiz_fx"
	"safesteps/internal/api/controllers"
	"safesteps/internal/capability"
	"safesteps/internal/config"
	"safesteps/internal/models/request_models"
	"safesteps/pkg/metrics"
	"safesteps/pkg/middleware"
	"safesteps/pkg/utils"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		metrics_fx.Module,
		db_fx.Module,
		catalog_fx.Module,
		memcache_fx.Module,
		chat_fx.Module,
		quiz_fx.Module,
		checklist_fx.Module,
		contacts_fx.Module,
		page_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	logger *zap.Logger,
	collector *metrics.Collector,
	ctrl controllers.Controllers,
) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := utils.RegisterValidators(request_models.Validators); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins, capability.Header))
	r.Use(controllers.ClientMiddleware())
	r.Use(collector.Middleware())

	r.GET("/metrics", gin.WrapH(collector.Handler()))
	controllers.RegisterRoutes(r, ctrl)

	return r, nil
}
