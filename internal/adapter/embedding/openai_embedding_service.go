package embedding

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"time"

	"ontoquiz/internal/cache"
	"ontoquiz/internal/domain"
	"ontoquiz/internal/logger"

	"github.com/tmc/langchaingo/embeddings"
	openaiLLM "github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// OpenAIEmbeddingService implements the domain.EmbeddingService interface using OpenAI.
// Generated embeddings are cached (gob-encoded) and concurrent requests for the
// same text are collapsed through singleflight.
type OpenAIEmbeddingService struct {
	embedder embeddings.Embedder
	cache    domain.Cache
	cacheTTL time.Duration
	sfGroup  singleflight.Group
}

// NewOpenAIEmbeddingService creates a new OpenAIEmbeddingService.
// cache may be nil, in which case every call hits the API.
func NewOpenAIEmbeddingService(apiKey, modelName string, cache domain.Cache, cacheTTL time.Duration) (*OpenAIEmbeddingService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key cannot be empty")
	}
	if modelName == "" {
		modelName = "text-embedding-ada-002" // Default model
	}

	llm, err := openaiLLM.New(
		openaiLLM.WithToken(apiKey),
		openaiLLM.WithModel(modelName),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create LangchainGo OpenAI LLM client for embedder: %w", err)
	}

	embedder, err := embeddings.NewEmbedder(llm)
	if err != nil {
		return nil, fmt.Errorf("failed to create generic embedder from OpenAI LLM: %w", err)
	}

	return &OpenAIEmbeddingService{
		embedder: embedder,
		cache:    cache,
		cacheTTL: cacheTTL,
	}, nil
}

// Generate creates an embedding for the given text using the OpenAI embedder.
func (s *OpenAIEmbeddingService) Generate(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, fmt.Errorf("input text cannot be empty for embedding")
	}

	textHash := hashString(text)
	cacheKey := cache.GenerateCacheKey("embedding", "openai", textHash)

	if s.cache != nil {
		cachedDataString, err := s.cache.Get(ctx, cacheKey)
		if err == nil {
			var embedding []float32
			decoder := gob.NewDecoder(bytes.NewReader([]byte(cachedDataString)))
			if errDecode := decoder.Decode(&embedding); errDecode == nil {
				return embedding, nil
			} else {
				logger.Get().Warn("Failed to decode cached openai embedding",
					zap.Error(errDecode), zap.String("cacheKey", cacheKey))
			}
			// Fall through and regenerate if decoding failed
		} else if err != domain.ErrCacheMiss {
			logger.Get().Warn("Failed to read openai embedding from cache",
				zap.Error(err), zap.String("cacheKey", cacheKey))
		}
	}

	// Cache miss: use singleflight so concurrent callers share one fetch.
	res, err, _ := s.sfGroup.Do(cacheKey, func() (interface{}, error) {
		rawEmbedding, fetchErr := s.embedder.EmbedQuery(ctx, text)
		if fetchErr != nil {
			return nil, fmt.Errorf("failed to generate embedding using OpenAI: %w", fetchErr)
		}
		if rawEmbedding == nil {
			return nil, fmt.Errorf("received nil embedding from OpenAI without error")
		}

		embeddingResult := make([]float32, len(rawEmbedding))
		for i, v := range rawEmbedding {
			embeddingResult[i] = float32(v)
		}

		if s.cache != nil {
			var buffer bytes.Buffer
			if errEncode := gob.NewEncoder(&buffer).Encode(embeddingResult); errEncode != nil {
				logger.Get().Warn("Failed to gob encode openai embedding for caching",
					zap.Error(errEncode), zap.String("cacheKey", cacheKey))
				return embeddingResult, nil // Return data even if caching fails
			}

			cacheTTL := s.cacheTTL
			if cacheTTL <= 0 {
				cacheTTL = 168 * time.Hour // 7 days
			}
			if errCacheSet := s.cache.Set(ctx, cacheKey, buffer.String(), cacheTTL); errCacheSet != nil {
				logger.Get().Warn("Failed to set openai embedding to cache",
					zap.Error(errCacheSet), zap.String("cacheKey", cacheKey))
			}
		}
		return embeddingResult, nil
	})

	if err != nil {
		return nil, err
	}

	if embedding, ok := res.([]float32); ok {
		return embedding, nil
	}

	return nil, fmt.Errorf("unexpected type from singleflight.Do for openai embedding: %T", res)
}

var _ domain.EmbeddingService = (*OpenAIEmbeddingService)(nil)
