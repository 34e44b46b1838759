package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "kuryecini/internal/app"
	"kuryecini/internal/entities"
	"kuryecini/internal/handlers/rest/courier_task_accept_post"
	"kuryecini/internal/handlers/rest/courier_tasks_get"
	"kuryecini/internal/handlers/rest/healthcheck_head"
	"kuryecini/internal/handlers/rest/order_confirm_put"
	"kuryecini/internal/handlers/rest/order_post"
	"kuryecini/internal/handlers/rest/order_status_patch"
	"kuryecini/internal/handlers/rest/ping_get"
	"kuryecini/internal/handlers/ws/courier_track"
	"kuryecini/internal/handlers/ws/order_track"
	"kuryecini/internal/handlers/ws/orders_feed"
	"kuryecini/internal/pkg/config"
	"kuryecini/internal/pkg/dotenv"
	metrics_system "kuryecini/internal/pkg/metrics"
	"kuryecini/internal/pkg/middlewares/auth"
	"kuryecini/internal/pkg/middlewares/graceful_shutdown"
	"kuryecini/internal/pkg/middlewares/metrics"
	"kuryecini/internal/pkg/middlewares/rate_limiter"
	"kuryecini/internal/pkg/middlewares/timeout"
	"kuryecini/internal/pkg/postgres"
	"kuryecini/internal/ws"
	"kuryecini/pkg/logger"
	"kuryecini/pkg/logger/zap_adapter"
	"kuryecini/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting kuryecini application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg *config.Config) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	authCustomer := auth.Middleware(app.TokenVerifier, entities.RoleCustomer)
	authBusiness := auth.Middleware(app.TokenVerifier, entities.RoleBusiness)
	authCourier := auth.Middleware(app.TokenVerifier, entities.RoleCourier)
	authStatusActors := auth.Middleware(app.TokenVerifier, entities.RoleBusiness, entities.RoleCourier, entities.RoleAdmin)
	authAny := auth.Middleware(app.TokenVerifier)
	authFeed := auth.Middleware(app.TokenVerifier, entities.RoleBusiness, entities.RoleAdmin)

	// REST маршруты под полным набором middleware.
	api := router.NewRoute().Subrouter()
	api.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	api.Use(metrics.Middleware(log))
	api.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))

	api.Handle("/metrics", promhttp.Handler())
	api.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	api.Handle("/ping", ping_get.New(log)).Methods("GET")

	api.Handle("/orders", authCustomer(order_post.New(log, app.ServiceOrderPlacement))).Methods("POST")
	api.Handle("/orders/{id}/status", authStatusActors(order_status_patch.New(log, app.ServiceOrderStatus))).Methods("PATCH")
	api.Handle("/business/orders/{id}/confirm", authBusiness(order_confirm_put.New(log, app.ServiceConfirmation))).Methods("PUT")

	api.Handle("/courier/tasks", authCourier(courier_tasks_get.New(log, app.ServiceCourierTask))).Methods("GET")
	api.Handle("/courier/tasks/{id}/accept", authCourier(courier_task_accept_post.New(log, app.ServiceCourierTask))).Methods("POST")

	// WS маршруты без metrics/timeout middleware: обертка над ResponseWriter
	// не реализует http.Hijacker и ломает upgrade.
	clientCfg := ws.ClientConfig{
		IdleTimeout:  cfg.WS.IdleTimeout,
		WriteTimeout: cfg.WS.WriteTimeout,
		SendBuffer:   cfg.WS.SendBuffer,
	}
	authCourierChannel := auth.Middleware(app.TokenVerifier, entities.RoleCourier, entities.RoleAdmin)
	router.Handle("/ws/orders", authFeed(orders_feed.New(log, app.WSGateway, clientCfg))).Methods("GET")
	router.Handle("/ws/order/{id}", authAny(order_track.New(log, app.ServiceOrderStatus, app.WSGateway, clientCfg))).Methods("GET")
	router.Handle("/ws/courier/{id}", authCourierChannel(courier_track.New(log, app.WSGateway, clientCfg))).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
