package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yoockh/skillbridge/config"
	"github.com/yoockh/skillbridge/internal/api/handlers"
	"github.com/yoockh/skillbridge/internal/api/middleware"
	"github.com/yoockh/skillbridge/internal/api/routes"
	"github.com/yoockh/skillbridge/internal/auth"
	"github.com/yoockh/skillbridge/internal/document"
	"github.com/yoockh/skillbridge/internal/logger"
	mongorepo "github.com/yoockh/skillbridge/internal/repositories/mongo"
	"github.com/yoockh/skillbridge/internal/services"
	"github.com/yoockh/skillbridge/internal/skills"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("configuration error")
	}

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// MongoDB (required)
	mongoClient, err := config.NewMongo(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("mongodb init error")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()
	db := mongoClient.Database(cfg.MongoDB)
	if err := config.EnsureMongoIndexes(ctx, db); err != nil {
		log.WithError(err).Fatal("mongodb index error")
	}
	log.Info("mongodb connected")

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	b := &backends{cfg: cfg, log: log}
	defer b.Close()

	store, err := b.store(ctx)
	if err != nil {
		log.WithError(err).Fatal("storage init error")
	}
	uploads := b.uploads()
	resultCache := b.cache(ctx)
	publisher := b.publisher()
	ai := b.llm(ctx, httpClient)

	gh, err := b.github(httpClient)
	if err != nil {
		log.WithError(err).Fatal("github client init error")
	}

	users := mongorepo.NewUserRepo(db)
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	pipeline := skills.NewPipeline(gh, ai, resultCache, cfg.GitHubCacheTTL, log)

	authSvc := services.NewAuthService(users, tokens)
	employeeSvc := services.NewEmployeeService(services.EmployeeDeps{
		Users:     users,
		Uploads:   uploads,
		Store:     store,
		Extractor: document.NewExtractor(),
		Skills:    pipeline,
		Events:    publisher,
		Log:       log,
	})
	matchSvc := services.NewMatchService(users)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-Id"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-Id"},
		AllowCredentials: !containsWildcard(cfg.CORSOrigins),
		MaxAge:           12 * time.Hour,
	}))
	r.MaxMultipartMemory = cfg.MaxUploadBytes

	deps := routes.Deps{
		Tokens:       tokens,
		Auth:         handlers.NewAuthHandler(authSvc),
		Employee:     handlers.NewEmployeeHandler(employeeSvc, cfg.MaxUploadBytes),
		Recruiter:    handlers.NewRecruiterHandler(matchSvc),
		EnforceRoles: cfg.EnforceRoles,
	}
	if cfg.StorageDriver == "local" {
		deps.UploadDir = cfg.UploadDir
		deps.UploadPrefix = cfg.UploadURLPrefix
	}
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server forced to shutdown")
	}
	log.Info("server exited")
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
