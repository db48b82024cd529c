package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"alfredoptarigan/career-fit/internal/logger"
	"alfredoptarigan/career-fit/internal/models"
)

// Analysis is one processed (resume, job description) pairing.
type Analysis struct {
	Mode           models.Mode
	Candidate      models.CandidateRecord
	JobDescription string
	Score          models.MatchScore
	Decision       models.Decision
	Assistant      Assistant
	ProcessedAt    time.Time
}

type AnalyzerService interface {
	// Process runs extraction, scoring, classification and assistant
	// initialization. Extraction problems are carried in the candidate
	// record; scoring and assistant failures abort the run.
	Process(ctx context.Context, resume []byte, jobDescription string, mode models.Mode) (*Analysis, error)
}

type analyzerService struct {
	extractor ResumeExtractor
	scorer    SimilarityScorer
	assistant AssistantProvider
	logger    *zap.Logger
}

func NewAnalyzerService(
	extractor ResumeExtractor,
	scorer SimilarityScorer,
	assistant AssistantProvider,
	log *zap.Logger,
) AnalyzerService {
	return &analyzerService{
		extractor: extractor,
		scorer:    scorer,
		assistant: assistant,
		logger:    logger.OrNop(log),
	}
}

func (a *analyzerService) Process(ctx context.Context, resume []byte, jobDescription string, mode models.Mode) (*Analysis, error) {
	if !mode.Valid() {
		mode = models.ModeHR
	}

	start := time.Now()
	a.logger.Info("processing resume", zap.String("mode", string(mode)), zap.Int("bytes", len(resume)))

	// Step 1: Extract candidate
	candidate := a.extractor.Extract(ctx, resume)
	if candidate.Failed() {
		a.logger.Warn("continuing with empty candidate record", zap.String("reason", candidate.ExtractionError))
	}

	// Step 2: Score against the job description
	score, err := a.scorer.MatchScore(ctx, candidate.FullText, jobDescription)
	if err != nil {
		return nil, fmt.Errorf("failed to compute match score: %w", err)
	}

	// Step 3: Decide
	decision := Classify(score, mode.Scheme())

	// Step 4: Bring up the assistant
	assistant, err := a.assistant.Initialize(ctx, candidate, jobDescription, score)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize assistant: %w", err)
	}

	a.logger.Info("resume processed",
		zap.String("mode", string(mode)),
		zap.String("score", score.String()),
		zap.String("decision", string(decision)),
		zap.String("model", assistant.Model()),
		zap.Duration("took", time.Since(start)),
	)

	return &Analysis{
		Mode:           mode,
		Candidate:      candidate,
		JobDescription: jobDescription,
		Score:          score,
		Decision:       decision,
		Assistant:      assistant,
		ProcessedAt:    time.Now(),
	}, nil
}
