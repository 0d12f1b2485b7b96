package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"ontoquiz/internal/adapter"
	"ontoquiz/internal/adapter/embedding"
	"ontoquiz/internal/cache"
	"ontoquiz/internal/config"
	"ontoquiz/internal/database"
	"ontoquiz/internal/domain"
	"ontoquiz/internal/logger"
	"ontoquiz/internal/ontology"
	"ontoquiz/internal/report"
	"ontoquiz/internal/repository"
	"ontoquiz/internal/service"
	"ontoquiz/internal/similarity"

	"go.uber.org/zap"
)

const defaultEmbeddingCacheTTL = 168 * time.Hour

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		// Logger is not initialized yet
		fmt.Printf("Failed to load configuration: %v\n", err)
		return
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		return
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Evaluation run starting up...")

	embedService := newEmbeddingService(cfg, appLogger)
	scorer := similarity.New(embedService)
	appLogger.Info("Similarity scorer initialized", zap.String("backend", scorer.Backend()))

	materials := ontology.Materials(ontology.Build())

	bank, err := repository.LoadQuestionBank(cfg.Evaluation.BankPath)
	if err != nil {
		appLogger.Fatal("Failed to load question bank", zap.Error(err))
	}

	evaluationService := service.NewEvaluationService(materials, scorer)

	ctx := context.Background()
	result := evaluationService.BuildResult(ctx, bank.Domains(), bank, cfg.Evaluation.Threshold)

	if err := report.WriteTableFile(cfg.Evaluation.ReportPath, result.Rows); err != nil {
		appLogger.Fatal("Failed to write evaluation table", zap.Error(err))
	}
	appLogger.Info("Evaluation table written", zap.String("path", cfg.Evaluation.ReportPath))

	report.PrintSummary(os.Stdout, result)

	if dsn := cfg.GetDSN(); dsn != "" {
		db, err := database.NewSQLXOracleDB(dsn)
		if err != nil {
			appLogger.Fatal("Failed to connect to Oracle database", zap.Error(err))
		}
		defer db.Close()

		repo := repository.NewEvaluationDatabaseAdapter(db)
		if err := repo.SaveResult(result); err != nil {
			appLogger.Fatal("Failed to persist evaluation result", zap.Error(err))
		}
		appLogger.Info("Evaluation result persisted", zap.String("run_id", result.ID))
	} else {
		appLogger.Info("Database is not configured. Skipping persistence.")
	}
}

func newEmbeddingService(cfg *config.Config, appLogger *zap.Logger) domain.EmbeddingService {
	switch cfg.Embedding.Source {
	case config.EmbeddingSourceOllama:
		svc, err := embedding.NewOllamaEmbeddingService(cfg.Embedding.Ollama.ServerURL, cfg.Embedding.Ollama.Model)
		if err != nil {
			appLogger.Warn("Failed to create Ollama Embedding Service", zap.Error(err))
			return nil
		}
		return svc
	case config.EmbeddingSourceOpenAI:
		var embeddingCache domain.Cache
		if cfg.Redis.Address != "" {
			redisClient, err := cache.NewRedisClient(cfg.Redis)
			if err != nil {
				appLogger.Warn("Failed to connect to Redis, embedding cache disabled", zap.Error(err))
			} else {
				embeddingCache = adapter.NewRedisCacheAdapter(redisClient)
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
