package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"alfredoptarigan/career-fit/internal/logger"
	"alfredoptarigan/career-fit/internal/models"
)

// Embedder maps a text to a fixed-length vector. Results are only as
// deterministic as the underlying model.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Model() string
}

type SimilarityScorer interface {
	// Score returns the raw cosine similarity in [-1, 1].
	Score(ctx context.Context, textA, textB string) (float64, error)
	// MatchScore returns Score clamped to [0, 1].
	MatchScore(ctx context.Context, resumeText, jobText string) (models.MatchScore, error)
}

type similarityScorer struct {
	embedder Embedder
	timeout  time.Duration
	logger   *zap.Logger
}

func NewSimilarityScorer(embedder Embedder, timeout time.Duration, log *zap.Logger) SimilarityScorer {
	return &similarityScorer{
		embedder: embedder,
		timeout:  timeout,
		logger:   logger.OrNop(log),
	}
}

// Score implements SimilarityScorer. A blank input scores 0 without
// calling the embedder.
func (s *similarityScorer) Score(ctx context.Context, textA, textB string) (float64, error) {
	if strings.TrimSpace(textA) == "" || strings.TrimSpace(textB) == "" {
		s.logger.Debug("blank similarity input, scoring 0")
		return 0, nil
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	var vecA, vecB []float32
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		vecA, err = s.embedder.Embed(gctx, textA)
		return err
	})
	g.Go(func() error {
		var err error
		vecB, err = s.embedder.Embed(gctx, textB)
		return err
	})
	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("failed to embed texts: %w", err)
	}

	score, err := CosineSimilarity(vecA, vecB)
	if err != nil {
		return 0, err
	}

	s.logger.Debug("similarity computed",
		zap.String("embed_model", s.embedder.Model()),
		zap.Int("dimensions", len(vecA)),
		zap.Float64("cosine", score),
	)
	return score, nil
}

// MatchScore implements SimilarityScorer.
func (s *similarityScorer) MatchScore(ctx context.Context, resumeText, jobText string) (models.MatchScore, error) {
	score, err := s.Score(ctx, resumeText, jobText)
	if err != nil {
		return 0, err
	}
	return models.NewMatchScore(score), nil
}

var ErrDimensionMismatch = errors.New("embedding dimensions differ")

// CosineSimilarity returns 0 when either vector has zero magnitude.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}

	cos := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return math.Max(-1, math.Min(1, cos)), nil
}
