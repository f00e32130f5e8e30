package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	internalhttp "github.com/blogapp/blog-server/internal/api/http"
	"github.com/blogapp/blog-server/internal/api/http/middleware"
	"github.com/blogapp/blog-server/internal/auth"
	rediscache "github.com/blogapp/blog-server/internal/cache/redis"
	"github.com/blogapp/blog-server/internal/comments"
	"github.com/blogapp/blog-server/internal/db"
	"github.com/blogapp/blog-server/internal/db/memdb"
	"github.com/blogapp/blog-server/internal/db/sqlc"
	"github.com/blogapp/blog-server/internal/posts"
	"github.com/blogapp/blog-server/internal/storage"
	"github.com/blogapp/blog-server/internal/users"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var AppVersion string

const shutdownTimeout = 10 * time.Second

func main() {
	InitConfig()

	slog.Info("Blog Server", "version", AppVersion, "env", config.Env)

	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Shutdown complete")
}

func run() error {
	ctx := context.Background()

	tokens, err := auth.NewTokenCodec(config.JWT)
	if err != nil {
		return fmt.Errorf("token codec: %w", err)
	}

	services := &internalhttp.Services{
		Config: config.Http,
		Tokens: tokens,
	}

	var queries sqlc.Querier
	inMemory := config.Database.Url == ""
	if inMemory {
		slog.Warn("database.url is empty, using the in-memory store; data is lost on restart")
		queries = memdb.New()
	} else {
		if err := db.RunMigrations(config.Database); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		pool, err := db.InitDB(ctx, config.Database)
		if err != nil {
			return err
		}
		defer pool.Close()
		queries = sqlc.New(pool)
		services.DB = pool
	}

	var postCache posts.Cache
	if config.Redis.Enabled {
		cache, err := rediscache.NewPostCache(ctx, config.Redis)
		if err != nil {
			slog.Warn("Post cache disabled", "error", err)
		} else {
			defer cache.Close()
			postCache = cache
			services.Cache = cache
		}
	}

	imageStore, err := storage.New(ctx, config.Storage)
	if err != nil {
		return fmt.Errorf("image store: %w", err)
	}
	services.ImageStore = imageStore

	services.UserService = users.NewService(queries, users.NewHasher(users.DefaultCost), tokens, postCache)
	services.PostService = posts.NewService(queries, postCache)
	services.CommentService = comments.NewService(queries)

	seed, err := config.Admin.shouldSeed(config.Env)
	if err != nil {
		return fmt.Errorf("admin seed: %w", err)
	}
	if seed {
		if err := seedAdmin(ctx, services.UserService, config.Admin); err != nil {
			return fmt.Errorf("admin seed: %w", err)
		}
	} else {
		slog.Warn("Administrador seeding disabled, admin.email or admin.password is empty")
	}

	if config.Env == EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"PUT", "PATCH", "GET", "POST", "DELETE"},
		AllowHeaders:  []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))
	engine.Use(middleware.Recovery())
	internalhttp.SetupRoute(engine, services)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Http.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		slog.Info("Received shutdown signal", "signal", sig)
	}

	slog.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}
	slog.Info("HTTP server stopped")
	return nil
}

func seedAdmin(ctx context.Context, userService *users.Service, cfg AdminConfig) error {
	created, err := userService.EnsureAdministrador(ctx, users.RegisterInput{
		Name:     cfg.Name,
		Email:    cfg.Email,
		Password: cfg.Password,
	})
	if err != nil {
		return err
	}
	if created {
		slog.Info("Seeded administrador", "email", cfg.Email)
	}
	return nil
}
