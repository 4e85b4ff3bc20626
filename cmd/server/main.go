package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/k8s-hands-on/backend/internal/common"
	"github.com/k8s-hands-on/backend/internal/config"
	appmiddleware "github.com/k8s-hands-on/backend/internal/middleware"
	"github.com/k8s-hands-on/backend/internal/respond"
	"github.com/k8s-hands-on/backend/internal/routes"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

// newRouter assembles the full middleware stack and routes. Shared with tests.
func newRouter(version string) chi.Router {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	// Exact method + path matching: wrong method on a known path is a
	// routing miss with the path echoed back, not a 405.
	router.MethodNotAllowed(respond.NotFoundHandler())

	router.Use(
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP extracts the client IP from X-Real-IP or X-Forwarded-For.
		// SECURITY: only meaningful behind a trusted reverse proxy or ingress.
		chimiddleware.RealIP,
		// RequestSize limits request body size to prevent memory exhaustion.
		chimiddleware.RequestSize(1<<20), // 1 MB limit
		appmiddleware.RequestLogger(),
		appmiddleware.AccessLogger(),
		respond.Recoverer(),
	)

	respond.Install()
	api := humachi.New(router, routes.APIConfig(version))
	routes.Register(api)
	return router
}

func main() {
	defer func() {
		if err := common.Sync(); err != nil {
			appmiddleware.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := common.Err(); err != nil {
		appmiddleware.LogError(context.Background(), "logger init error", err)
	}

	cfg := config.Load()
	router := newRouter(Version)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}

	listenErr := make(chan error, 1)
	go func() {
		appmiddleware.LogInfo(context.Background(), "server listening",
			zap.String("addr", srv.Addr),
			zap.String("health", cfg.HealthURL()),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	// Bind failure is fatal: no retry, no fallback port.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		appmiddleware.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		_ = common.Sync()
		os.Exit(1)
	case <-stop:
		appmiddleware.LogInfo(context.Background(), "shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appmiddleware.LogError(ctx, "server shutdown error", err)
	}
	appmiddleware.LogInfo(context.Background(), "server exited")
}
