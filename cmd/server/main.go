package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mmtukut/Propabridge/internal/catalog"
	"github.com/mmtukut/Propabridge/internal/config"
	"github.com/mmtukut/Propabridge/internal/connection"
	"github.com/mmtukut/Propabridge/internal/embedding"
	"github.com/mmtukut/Propabridge/internal/extractor"
	"github.com/mmtukut/Propabridge/internal/handler"
	"github.com/mmtukut/Propabridge/internal/index"
	"github.com/mmtukut/Propabridge/internal/neighborhood"
	"github.com/mmtukut/Propabridge/internal/pipeline"
	"github.com/mmtukut/Propabridge/internal/repository"
	"github.com/mmtukut/Propabridge/internal/session"
	"github.com/mmtukut/Propabridge/internal/verification"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Logging)
	defer logger.Sync()

	logger.Info("Propabridge matching engine starting",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("git_commit", GitCommit))

	gin.SetMode(cfg.Server.GinMode)

	// Embedding provider: crude hash embedding by default, OpenAI when
	// configured. The pipeline does not care which.
	var embedder embedding.Embedder
	if cfg.Embedding.Provider == "openai" && cfg.Embedding.OpenAIAPIKey != "" {
		embedder = embedding.NewOpenAIEmbedder(
			cfg.Embedding.OpenAIAPIKey,
			cfg.Embedding.OpenAIModel,
			cfg.Embedding.Dimension,
			logger,
		)
		logger.Info("using OpenAI embeddings", zap.String("model", cfg.Embedding.OpenAIModel))
	} else {
		embedder = embedding.NewHashEmbedder(cfg.Embedding.Dimension)
		logger.Info("using hash embeddings", zap.Int("dimension", cfg.Embedding.Dimension))
	}

	// Catalog source: static demo data or Postgres. Only the latter can
	// persist embeddings.
	var loader catalog.Loader
	var saver handler.EmbeddingSaver
	if cfg.Catalog.Source == "postgres" {
		repo, err := repository.NewPostgresCatalog(
			cfg.Catalog.DSN,
			cfg.Catalog.MaxConnections,
			cfg.Catalog.MaxIdleConnections,
			logger,
		)
		if err != nil {
			logger.Fatal("failed to connect to catalog database", zap.Error(err))
		}
		defer repo.Close()
		loader = repo
		saver = repo
		logger.Info("using PostgreSQL catalog")
	} else {
		loader = catalog.NewStaticLoader()
		logger.Info("using static catalog")
	}

	ctx := context.Background()
	properties, err := loader.Load(ctx)
	if err != nil {
		logger.Fatal("failed to load catalog", zap.Error(err))
	}

	ix := index.New(embedder, logger)
	if err := ix.Build(ctx, properties); err != nil {
		logger.Fatal("failed to build property index", zap.Error(err))
	}

	tracker := session.NewTracker(logger)
	pipe := pipeline.New(extractor.New(), tracker, ix, cfg.Search.TopK, logger)
	verifier := verification.NewService(logger)
	insights := neighborhood.NewService()
	connections := connection.NewStore(logger)

	chatHandler := handler.NewChatHandler(pipe, verifier, insights, logger)
	propertyHandler := handler.NewPropertyHandler(ix, verifier, insights)
	connectionHandler := handler.NewConnectionHandler(connections, tracker, ix, logger)
	sessionHandler := handler.NewSessionHandler(tracker)
	adminHandler := handler.NewAdminHandler(loader, ix, saver, logger)

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "propabridge-matching-engine",
			"version":    Version,
			"properties": ix.Len(),
		})
	})

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/chat", chatHandler.ProcessTurn)

		apiV1.GET("/properties", propertyHandler.List)
		apiV1.GET("/properties/:id", propertyHandler.Get)

		apiV1.POST("/connections", connectionHandler.Create)
		apiV1.GET("/connections", connectionHandler.Stats)

		apiV1.GET("/sessions/:id", sessionHandler.Get)
		apiV1.DELETE("/sessions/:id", sessionHandler.Evict)

		apiV1.POST("/admin/reindex", adminHandler.Reindex)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", zap.String("addr", addr))

	go func() {
		if err := router.Run(addr); err != nil {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
}

func newLogger(cfg config.LoggingConfig) *zap.Logger {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	if level, err := zap.ParseAtomicLevel(cfg.Level); err == nil {
		zapCfg.Level = level
	}
	logger, err := zapCfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}
