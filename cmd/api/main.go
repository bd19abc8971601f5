package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"

	"github.com/kaizen-center/backend/internal/application"
	appaitest "github.com/kaizen-center/backend/internal/application/aitest"
	appauth "github.com/kaizen-center/backend/internal/application/auth"
	appreports "github.com/kaizen-center/backend/internal/application/reports"
	"github.com/kaizen-center/backend/internal/config"
	domreports "github.com/kaizen-center/backend/internal/domain/reports"
	domusers "github.com/kaizen-center/backend/internal/domain/users"
	"github.com/kaizen-center/backend/internal/infra/ai/openai"
	mysqlp "github.com/kaizen-center/backend/internal/infra/db/mysql"
	pgp "github.com/kaizen-center/backend/internal/infra/db/postgres"
	"github.com/kaizen-center/backend/internal/infra/httpserver"
	memorykv "github.com/kaizen-center/backend/internal/infra/kv/memory"
	rediskv "github.com/kaizen-center/backend/internal/infra/kv/redis"
	minioStore "github.com/kaizen-center/backend/internal/infra/storage"
	"github.com/kaizen-center/backend/internal/middleware"
)

func main() {
	// local .env first, then config.yaml
	_ = godotenv.Load()

	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx := context.Background()

	// connect the SQL database (history + users + optional KV backend)
	var (
		db       *sql.DB
		kvStore  domreports.Store
		history  domreports.History
		userRepo domusers.Repository
	)
	switch cfg.Database.Driver {
	case "mysql":
		db, err = mysqlp.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			log.Fatalf("mysql connect error: %v", err)
		}
		if err := mysqlp.EnsureSchema(ctx, db); err != nil {
			log.Fatalf("mysql schema error: %v", err)
		}
		kvStore = mysqlp.NewKVRepository(db)
		history = mysqlp.NewHistoryRepository(db)
		userRepo = mysqlp.NewUserRepository(db)
	case "postgres":
		db, err = pgp.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			log.Fatalf("postgres connect error: %v", err)
		}
		if err := pgp.EnsureSchema(ctx, db); err != nil {
			log.Fatalf("postgres schema error: %v", err)
		}
		kvStore = pgp.NewKVRepository(db)
		history = pgp.NewHistoryRepository(db)
		userRepo = pgp.NewUserRepository(db)
	default:
		log.Fatalf("unknown database driver %q", cfg.Database.Driver)
	}
	defer db.Close()

	// the KV backend for report records can differ from the SQL database
	switch cfg.KV.Backend {
	case "db":
		// already set above
	case "redis":
		rdb := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("redis connect error: %v", err)
		}
		kvStore = rediskv.NewStore(rdb)
	case "memory":
		kvStore = memorykv.NewStore()
	default:
		log.Fatalf("unknown kv backend %q", cfg.KV.Backend)
	}

	// optional snapshot archive
	var snapshots domreports.SnapshotArchive
	if cfg.Minio.Enabled {
		archive, err := minioStore.New(ctx,
			cfg.Minio.Endpoint,
			cfg.Minio.Region,
			cfg.Minio.BucketName,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.UseSSL,
		)
		if err != nil {
			log.Fatalf("minio init error: %v", err)
		}
		snapshots = archive
	}

	gen := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	clock := application.SystemClock{}

	reportsSvc := appreports.NewService(gen, kvStore, history, snapshots, clock, cfg.OpenAI.Model, cfg.OpenAI.MiniModel)
	aiTestSvc := appaitest.NewService(gen, history, clock, cfg.OpenAI.Model, cfg.OpenAI.MiniModel)
	authSvc := appauth.NewService(userRepo, []byte(cfg.Auth.JWTSecret),
		time.Duration(cfg.Auth.SessionTTLMinutes)*time.Minute, clock)

	mux := chi.NewRouter()
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
	}))
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.RateLimitMiddleware(30, 5))
	mux.Use(middleware.APIKeyAuth(cfg.Auth.APIKey))
	mux.Use(middleware.SessionAuth(authSvc))
	mux.Mount("/", httpserver.NewRouter(reportsSvc, aiTestSvc, authSvc))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // generation calls are slow
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
