package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/tareas/task-lifecycle-api/internal/config"
	"github.com/tareas/task-lifecycle-api/internal/constants"
	"github.com/tareas/task-lifecycle-api/internal/database"
	"github.com/tareas/task-lifecycle-api/internal/handlers"
	"github.com/tareas/task-lifecycle-api/internal/logger"
	"github.com/tareas/task-lifecycle-api/internal/middleware"
	"github.com/tareas/task-lifecycle-api/internal/repository"
	"github.com/tareas/task-lifecycle-api/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log := logger.Setup(cfg)

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Error("failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := database.SeedAdmin(db, cfg); err != nil {
		log.Error("failed to seed admin user", slog.String("error", err.Error()))
		os.Exit(1)
	}

	sessionStore, err := newSessionStore(cfg)
	if err != nil {
		log.Error("failed to create session store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(sessions.Sessions(constants.SessionCookieName, sessionStore))

	tokens := services.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL, cfg.JWTIssuer)
	handlers.RegisterRoutes(r, handlers.New(repository.NewStore(db), tokens), tokens)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server starting", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				log.Info("shutting down http server")
				return srv.Shutdown(ctx)
			},
			"database": func(ctx context.Context) error {
				sqlDB, err := db.DB()
				if err != nil {
					return err
				}
				return sqlDB.Close()
			},
		},
	)

	exitCode := <-wait
	log.Info("server exited", slog.Int("exit_code", exitCode))
	os.Exit(exitCode)
}

// newSessionStore keeps sessions in Redis when REDIS_HOST is set and in
// signed cookies otherwise.
func newSessionStore(cfg *config.Config) (sessions.Store, error) {
	var store sessions.Store
	if cfg.UseRedisSessions() {
		redisAddr := net.JoinHostPort(cfg.RedisHost, cfg.RedisPort)
		rs, err := redisStore.NewStore(
			10,                        // Redis pool size
			"tcp",                     // network type
			redisAddr,                 // Redis address from config
			"",                        // password (empty = no password)
			[]byte(cfg.SessionSecret), // authentication key
		)
		if err != nil {
			return nil, err
		}
		store = rs
	} else {
		store = cookie.NewStore([]byte(cfg.SessionSecret))
	}

	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.JWTTTL.Seconds()),
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	return store, nil
}
