package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	t.Run("WithoutParams", func(t *testing.T) {
		key := GenerateCacheKey("embedding", "openai", "abc123")
		assert.Equal(t, "ontoquiz:embedding:openai:abc123", key)
	})

	t.Run("WithParams", func(t *testing.T) {
		key := GenerateCacheKey("evaluation", "result", "run1", "threshold", "0.9")
		assert.Equal(t, "ontoquiz:evaluation:result:run1:threshold_0.9", key)
	})
}
