package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"rain-scent/internal/catalog"
	"rain-scent/internal/config"
	"rain-scent/internal/db"
	apihttp "rain-scent/internal/http"
	"rain-scent/internal/llm"
	"rain-scent/internal/metrics"
	"rain-scent/internal/repository"
	"rain-scent/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		logger.Fatal("load catalog", zap.String("path", cfg.CatalogPath), zap.Error(err))
	}
	logger.Info("catalog loaded",
		zap.Int("questions", len(cat.Questions())),
		zap.Int("perfumes", len(cat.Perfumes())),
	)

	var results repository.ResultRepository
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		if err := db.EnsureSchema(ctx, pool); err != nil {
			logger.Fatal("db schema", zap.Error(err))
		}
		results = repository.NewPgResultRepository(pool)
	} else {
		logger.Warn("DATABASE_URL not set, quiz results will not be stored")
	}

	var cache service.RecommendationCache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, cache disabled", zap.Error(err))
		} else {
			cache = service.NewRedisRecommendationCache(redisClient, cfg.CacheTTL())
		}
		cancel()
	}

	var llmClient llm.LLMClient
	if cfg.LLMEnabled() {
		llmClient = llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMTimeout(), logger)
	} else {
		logger.Warn("LLM_API_KEY not set, serving local recommendations only")
	}

	collector := metrics.NewCollector("rainscent")
	localSvc := service.NewRecommendationService(cat, service.DefaultPicker, logger)
	aiSvc := service.NewAIRecommendationService(llmClient, cat, localSvc, cache, collector, service.AIOptions{
		Timeout:            cfg.LLMTimeout(),
		BreakerMaxFailures: cfg.BreakerMaxFailures,
		BreakerOpenTimeout: cfg.BreakerOpenTimeout(),
	}, logger)
	quizSvc := service.NewQuizService(aiSvc, results, logger)

	router := apihttp.NewRouter(
		logger,
		collector,
		apihttp.NewCatalogHandler(cat),
		apihttp.NewRecommendHandler(logger, quizSvc, localSvc),
	)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("server shutdown", zap.Error(err))
		}
	}()

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", zap.Error(err))
	}
}

func newLogger(level string) *zap.Logger {
	zcfg := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
