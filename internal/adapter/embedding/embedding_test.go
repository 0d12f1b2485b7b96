package embedding

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"testing"
	"time"

	"ontoquiz/internal/cache"
	"ontoquiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockEmbedder is a mock type for the embeddings.Embedder interface
type MockEmbedder struct {
	mock.Mock
}

func (m *MockEmbedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	args := m.Called(ctx, texts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]float32), args.Error(1)
}

func (m *MockEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float32), args.Error(1)
}

// MockCache is a mock for domain.Cache
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestNewOllamaEmbeddingService(t *testing.T) {
	t.Run("empty server URL", func(t *testing.T) {
		_, err := NewOllamaEmbeddingService("", "testmodel")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ollama server URL cannot be empty")
	})

	t.Run("empty model name", func(t *testing.T) {
		_, err := NewOllamaEmbeddingService("http://localhost:11434", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ollama model name cannot be empty")
	})
}

func TestOllamaEmbeddingService_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("empty text", func(t *testing.T) {
		svc := &OllamaEmbeddingService{}
		_, err := svc.Generate(ctx, "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("success", func(t *testing.T) {
		mockEmb := new(MockEmbedder)
		mockEmb.On("EmbedQuery", ctx, "hello").Return([]float32{0.1, 0.2}, nil)

		svc := &OllamaEmbeddingService{embedder: mockEmb}
		vec, err := svc.Generate(ctx, "hello")
		assert.NoError(t, err)
		assert.Equal(t, []float32{0.1, 0.2}, vec)
		mockEmb.AssertExpectations(t)
	})

	t.Run("embedder error", func(t *testing.T) {
		mockEmb := new(MockEmbedder)
		mockEmb.On("EmbedQuery", ctx, "hello").Return(nil, errors.New("connection refused"))

		svc := &OllamaEmbeddingService{embedder: mockEmb}
		_, err := svc.Generate(ctx, "hello")
		assert.Error(t, err)
	})
}

func TestNewOpenAIEmbeddingService(t *testing.T) {
	t.Run("empty api key", func(t *testing.T) {
		_, err := NewOpenAIEmbeddingService("", "model", nil, 0)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "API key cannot be empty")
	})
}

func TestOpenAIEmbeddingService_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit", func(t *testing.T) {
		want := []float32{0.5, 0.25}
		var buf bytes.Buffer
		assert.NoError(t, gob.NewEncoder(&buf).Encode(want))

		key := cache.GenerateCacheKey("embedding", "openai", hashString("lists"))
		mockCache := new(MockCache)
		mockCache.On("Get", ctx, key).Return(buf.String(), nil)

		svc := &OpenAIEmbeddingService{cache: mockCache}
		vec, err := svc.Generate(ctx, "lists")
		assert.NoError(t, err)
		assert.Equal(t, want, vec)
		mockCache.AssertExpectations(t)
	})

	t.Run("cache miss generates and stores", func(t *testing.T) {
		want := []float32{0.5, 0.25}
		key := cache.GenerateCacheKey("embedding", "openai", hashString("lists"))

		mockCache := new(MockCache)
		mockCache.On("Get", ctx, key).Return("", domain.ErrCacheMiss)
		mockCache.On("Set", ctx, key, mock.Anything, 168*time.Hour).Return(nil)

		mockEmb := new(MockEmbedder)
		mockEmb.On("EmbedQuery", ctx, "lists").Return(want, nil)

		svc := &OpenAIEmbeddingService{embedder: mockEmb, cache: mockCache}
		vec, err := svc.Generate(ctx, "lists")
		assert.NoError(t, err)
		assert.Equal(t, want, vec)
		mockCache.AssertExpectations(t)
		mockEmb.AssertExpectations(t)
	})

	t.Run("empty text", func(t *testing.T) {
		svc := &OpenAIEmbeddingService{}
		_, err := svc.Generate(ctx, "")
		assert.Error(t, err)
	})
}
