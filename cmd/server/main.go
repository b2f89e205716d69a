package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/shoppinglist/internal/config"
	"github.com/mmynk/shoppinglist/internal/lists"
	"github.com/mmynk/shoppinglist/internal/middleware"
	"github.com/mmynk/shoppinglist/internal/models"
	"github.com/mmynk/shoppinglist/internal/resource"
	"github.com/mmynk/shoppinglist/internal/service"
	"github.com/mmynk/shoppinglist/internal/storage"
	"github.com/mmynk/shoppinglist/internal/storage/memory"
	"github.com/mmynk/shoppinglist/internal/storage/remote"
	"github.com/mmynk/shoppinglist/internal/storage/sqlite"
	"github.com/mmynk/shoppinglist/internal/store"
	"github.com/mmynk/shoppinglist/pkg/api/shoppingv1/shoppingv1connect"
	"github.com/mmynk/shoppinglist/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	backend, err := openBackend(cfg)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer backend.Close()
	slog.Info("Storage initialized", "gateway", cfg.Gateway, "database", cfg.DBPath, "remote", cfg.RemoteURL)

	opts := []store.Option{store.WithLogger(slog.Default().With("component", "store"))}
	if !cfg.Seed {
		opts = append(opts, store.WithSeed(nil))
	}
	listStore := store.New(backend.gateway, opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := listStore.Open(ctx); err != nil {
		slog.Error("Failed to load lists", "error", err)
		os.Exit(1)
	}

	handler := newHandler(cfg, listStore, backend)

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Shutdown failed", "error", err)
		}
	}()

	slog.Info("Connect server starting", "address", cfg.Addr, "user", cfg.CurrentUser)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}

// backend bundles the gateway chosen by configuration with the resources
// exposed over REST and whatever needs closing on exit.
type backend struct {
	gateway   storage.Gateway
	resources storage.ResourceStore
	closer    io.Closer
}

func (b backend) Close() {
	if b.closer == nil {
		return
	}
	if err := b.closer.Close(); err != nil {
		slog.Warn("Failed to close storage", "error", err)
	}
}

// openBackend opens the storage selected by cfg. resources is set only when
// the REST lists resource and the gateway share one store, so /lists always
// serves the collection the RPC clients see.
func openBackend(cfg config.Config) (backend, error) {
	switch cfg.Gateway {
	case config.GatewayMemory:
		initial := models.Collection{}
		if cfg.Seed {
			initial = models.DefaultCollection()
		}
		resources := memory.NewResourceStore(initial)
		return backend{
			gateway:   storage.NewResourceGateway(resources),
			resources: resources,
		}, nil
	case config.GatewayRemote:
		return backend{
			gateway: storage.NewResourceGateway(remote.NewClient(cfg.RemoteURL, cfg.RemoteTimeout)),
		}, nil
	}

	db, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return backend{}, err
	}
	if cfg.Gateway == config.GatewayResource {
		return backend{gateway: storage.NewResourceGateway(db), resources: db, closer: db}, nil
	}
	return backend{gateway: storage.NewSnapshotGateway(db), closer: db}, nil
}

// newHandler builds the HTTP surface: the Connect service, the REST lists
// resource when the backend has one, metrics and health.
func newHandler(cfg config.Config, listStore *store.Store, b backend) http.Handler {
	mux := http.NewServeMux()

	// Register Connect service
	listPath, listHandler := shoppingv1connect.NewShoppingListServiceHandler(
		service.NewListService(listStore, lists.NewEngine()),
		connect.WithInterceptors(
			middleware.IdentityInterceptor(cfg.CurrentUser),
			middleware.LoggingInterceptor(),
		),
	)
	mux.Handle(listPath, listHandler)

	// REST lists resource, usable as the backend of another instance
	// running with the remote gateway. Writes made through it are reloaded
	// into the list store.
	if b.resources != nil {
		rest := resource.NewHandler(b.resources, resource.WithAfterWrite(listStore.Reload))
		mux.Handle("/lists", rest)
		mux.Handle("/lists/", rest)
	}

	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Add logging and CORS middleware
	return loggingMiddleware(corsMiddleware(mux))
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		slog.Debug("Request received",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
		)

		next.ServeHTTP(w, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms, "+middleware.UserHeader)
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
