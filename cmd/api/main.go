package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"ontoquiz/internal/adapter"
	"ontoquiz/internal/adapter/embedding"
	"ontoquiz/internal/cache"
	"ontoquiz/internal/config"
	"ontoquiz/internal/domain"
	"ontoquiz/internal/handler"
	"ontoquiz/internal/logger"
	"ontoquiz/internal/middleware"
	"ontoquiz/internal/ontology"
	"ontoquiz/internal/repository"
	"ontoquiz/internal/service"
	"ontoquiz/internal/similarity"
	"ontoquiz/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

const defaultEmbeddingCacheTTL = 168 * time.Hour

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

// newEmbeddingService builds the configured embedding backend. A failure
// here is not fatal: returning nil makes the scorer fall back to lexical
// similarity.
func newEmbeddingService(cfg *config.Config, appLogger *zap.Logger) domain.EmbeddingService {
	switch cfg.Embedding.Source {
	case config.EmbeddingSourceOllama:
		appLogger.Info("Initializing Ollama Embedding Service",
			zap.String("server_url", cfg.Embedding.Ollama.ServerURL),
			zap.String("model", cfg.Embedding.Ollama.Model))
		svc, err := embedding.NewOllamaEmbeddingService(cfg.Embedding.Ollama.ServerURL, cfg.Embedding.Ollama.Model)
		if err != nil {
			appLogger.Warn("Failed to create Ollama Embedding Service", zap.Error(err))
			return nil
		}
		return svc
	case config.EmbeddingSourceOpenAI:
		appLogger.Info("Initializing OpenAI Embedding Service", zap.String("model", cfg.Embedding.OpenAI.Model))

		var embeddingCache domain.Cache
		if cfg.Redis.Address != "" {
			redisClient, err := cache.NewRedisClient(cfg.Redis)
			if err != nil {
				appLogger.Warn("Failed to connect to Redis, embedding cache disabled", zap.Error(err))
			} else {
				embeddingCache = adapter.NewRedisCacheAdapter(redisClient)
				appLogger.Info("RedisCacheAdapter initialized")
			}
		}
		ttl := cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.Embedding, defaultEmbeddingCacheTTL)

		svc, err := embedding.NewOpenAIEmbeddingService(cfg.Embedding.OpenAI.APIKey, cfg.Embedding.OpenAI.Model, embeddingCache, ttl)
		if err != nil {
			appLogger.Warn("Failed to create OpenAI Embedding Service", zap.Error(err))
			return nil
		}
		return svc
	default:
		return nil
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	embeddingService := newEmbeddingService(cfg, appLogger)
	scorer := similarity.New(embeddingService)
	appLogger.Info("Similarity scorer initialized", zap.String("backend", scorer.Backend()))

	materials := ontology.Materials(ontology.Build())

	bank, err := repository.LoadQuestionBank(cfg.Evaluation.BankPath)
	if err != nil {
		appLogger.Fatal("Failed to load question bank", zap.Error(err))
	}
	appLogger.Info("Question bank loaded",
		zap.String("path", cfg.Evaluation.BankPath),
		zap.Int("domains", len(bank.Domains())))

	evaluationService := service.NewEvaluationService(materials, scorer)
	quizService := service.NewQuizService(bank, evaluationService)

	validator := validation.NewValidator()
	quizHandler := handler.NewQuizHandler(quizService, validator)
	evaluationHandler := handler.NewEvaluationHandler(evaluationService, bank, validator)

	app := fiber.New(fiber.Config{
		ReadTimeout:  20 * time.Second,
		WriteTimeout: 20 * time.Second,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	apiGroup := app.Group("/api")
	apiGroup.Get("/domains", quizHandler.GetDomains)
	apiGroup.Post("/quiz", quizHandler.GetQuiz)
	apiGroup.Get("/evaluation", evaluationHandler.GetEvaluation)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
