// Package similarity scores the closeness of two texts on a [0,1] scale.
//
// Two backends exist: a semantic one built on sentence embeddings and a
// lexical token-overlap fallback. The backend is chosen once, when the
// scorer is constructed; after that the scorer is immutable and safe for
// concurrent use.
package similarity

import (
	"context"
	"strings"

	"ontoquiz/internal/domain"
	"ontoquiz/internal/logger"

	"go.uber.org/zap"
)

// Backend names reported by Scorer.Backend.
const (
	BackendEmbedding = "embedding"
	BackendLexical   = "lexical"
)

// Scorer computes a similarity score between two texts.
// Scoring never fails: backends that can error degrade internally.
type Scorer interface {
	Score(ctx context.Context, a, b string) float64
	Backend() string
}

// New selects the scoring backend. A nil embedding service (not configured,
// or its initialization failed) permanently selects the lexical fallback for
// the process lifetime; the decision is not retried per call.
func New(embedder domain.EmbeddingService) Scorer {
	if embedder == nil {
		logger.Get().Warn("Embedding model unavailable, falling back to Jaccard similarity")
		return LexicalScorer{}
	}
	return &EmbeddingScorer{embedder: embedder}
}

// LexicalScorer measures token-set overlap: both texts are lower-cased and
// whitespace-tokenized, and the score is the Jaccard index of the two sets.
type LexicalScorer struct{}

// Score implements Scorer.
func (LexicalScorer) Score(_ context.Context, a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 1.0
	}

	intersection := 0
	for token := range setA {
		if _, ok := setB[token]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

// Backend implements Scorer.
func (LexicalScorer) Backend() string { return BackendLexical }

func tokenSet(text string) map[string]struct{} {
	fields := strings.Fields(strings.ToLower(text))
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

// EmbeddingScorer encodes each text into a dense vector via the embedding
// service and scores their cosine similarity. Per-call embedding failures
// degrade to the lexical score for that call only.
type EmbeddingScorer struct {
	embedder domain.EmbeddingService
	fallback LexicalScorer
}

// Score implements Scorer.
func (s *EmbeddingScorer) Score(ctx context.Context, a, b string) float64 {
	if a == "" && b == "" {
		return 1.0
	}
	// The embedder rejects empty input, so a one-sided empty text is
	// scored lexically (which yields 0 against any non-empty text).
	if a == "" || b == "" {
		return s.fallback.Score(ctx, a, b)
	}

	vecA, err := s.embedder.Generate(ctx, a)
	if err != nil {
		logger.Get().Warn("Embedding generation failed, using lexical score for this call", zap.Error(err))
		return s.fallback.Score(ctx, a, b)
	}
	vecB, err := s.embedder.Generate(ctx, b)
	if err != nil {
		logger.Get().Warn("Embedding generation failed, using lexical score for this call", zap.Error(err))
		return s.fallback.Score(ctx, a, b)
	}

	cos, err := Cosine(vecA, vecB)
	if err != nil {
		logger.Get().Warn("Cosine similarity failed, using lexical score for this call", zap.Error(err))
		return s.fallback.Score(ctx, a, b)
	}
	return cos
}

// Backend implements Scorer.
func (s *EmbeddingScorer) Backend() string { return BackendEmbedding }
