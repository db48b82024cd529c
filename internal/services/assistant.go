package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"alfredoptarigan/career-fit/internal/logger"
	"alfredoptarigan/career-fit/internal/models"
)

// DefaultGenerationOptions keeps answers bounded and moderately deterministic.
var DefaultGenerationOptions = GenerationOptions{
	Temperature: 0.7,
	TopP:        0.9,
	MaxTokens:   500,
}

// SelectModel walks preferred in order and returns the first installed model
// containing it. Without a match the first installed model wins.
func SelectModel(preferred, installed []string) (string, bool) {
	if len(installed) == 0 {
		return "", false
	}

	for _, want := range preferred {
		if want == "" {
			continue
		}
		for _, have := range installed {
			if strings.Contains(have, want) {
				return have, true
			}
		}
	}

	return installed[0], true
}

// Assistant answers questions about one candidate/job pairing. Every
// question is prefixed with the same context; prior answers are not replayed.
type Assistant interface {
	Model() string
	Context() string
	Ask(ctx context.Context, question string) Answer
	// AskStream is Ask with the reply delivered chunk by chunk as well.
	AskStream(ctx context.Context, question string, onChunk func(string)) Answer
	GetRecommendation(ctx context.Context) Answer
	GetInterviewQuestions(ctx context.Context) Answer
	CompareWithRequirements(ctx context.Context) Answer
	GetSalaryGuidance(ctx context.Context) Answer
}

type assistant struct {
	backend   ChatBackend
	model     string
	context   string
	candidate models.CandidateRecord
	prompts   *PromptBuilder
	options   GenerationOptions
	timeout   time.Duration
	logger    *zap.Logger
}

// NewAssistant builds a handle for an already selected model. An empty model
// makes every Ask fail with ErrorKindNoModel without touching the backend.
func NewAssistant(
	backend ChatBackend,
	model string,
	candidate models.CandidateRecord,
	jobDescription string,
	score models.MatchScore,
	timeout time.Duration,
	log *zap.Logger,
) Assistant {
	prompts := NewPromptBuilder()
	return &assistant{
		backend:   backend,
		model:     model,
		context:   prompts.BuildAssistantContext(candidate, jobDescription, score),
		candidate: candidate,
		prompts:   prompts,
		options:   DefaultGenerationOptions,
		timeout:   timeout,
		logger:    logger.OrNop(log),
	}
}

func (a *assistant) Model() string {
	return a.model
}

func (a *assistant) Context() string {
	return a.context
}

func (a *assistant) Ask(ctx context.Context, question string) Answer {
	return a.ask(ctx, question, nil)
}

func (a *assistant) AskStream(ctx context.Context, question string, onChunk func(string)) Answer {
	return a.ask(ctx, question, onChunk)
}

func (a *assistant) ask(ctx context.Context, question string, onChunk func(string)) Answer {
	if a.model == "" {
		return Answer{Err: &AssistantError{Kind: ErrorKindNoModel, Detail: ErrNoModelAvailable.Error()}}
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	prompt := a.prompts.BuildQuestionPrompt(a.context, question)
	a.logger.Debug("asking assistant",
		zap.String("model", a.model),
		zap.String("question", logger.TruncateForLog(question, 200)),
	)

	start := time.Now()
	text, err := a.backend.Chat(ctx, a.model, prompt, a.options, onChunk)
	if err != nil {
		assistantErr := classifyAssistantError(err, a.model)
		a.logger.Warn("assistant call failed",
			zap.String("model", a.model),
			zap.String("kind", string(assistantErr.Kind)),
			zap.Error(err),
		)
		return Answer{Err: assistantErr}
	}

	a.logger.Debug("assistant answered",
		zap.String("model", a.model),
		zap.Duration("took", time.Since(start)),
		zap.String("answer", logger.TruncateForLog(text, 200)),
	)
	return Answer{Text: text}
}

func (a *assistant) GetRecommendation(ctx context.Context) Answer {
	return a.Ask(ctx, a.prompts.RecommendationQuestion())
}

func (a *assistant) GetInterviewQuestions(ctx context.Context) Answer {
	return a.Ask(ctx, a.prompts.InterviewQuestionsQuestion())
}

func (a *assistant) CompareWithRequirements(ctx context.Context) Answer {
	return a.Ask(ctx, a.prompts.RequirementsComparisonQuestion())
}

func (a *assistant) GetSalaryGuidance(ctx context.Context) Answer {
	return a.Ask(ctx, a.prompts.SalaryGuidanceQuestion(a.candidate.TotalExperienceYears))
}

// classifyAssistantError maps a backend failure onto the user-facing kinds.
func classifyAssistantError(err error, model string) *AssistantError {
	detail := err.Error()

	switch {
	case errors.Is(err, ErrNoModelAvailable):
		return &AssistantError{Kind: ErrorKindNoModel, Model: model, Detail: detail}
	case errors.Is(err, ErrModelNotFound), strings.Contains(detail, "not found"):
		return &AssistantError{Kind: ErrorKindModelNotFound, Model: model, Detail: detail}
	case errors.Is(err, ErrBackendUnavailable), strings.Contains(strings.ToLower(detail), "connection"):
		return &AssistantError{Kind: ErrorKindConnectionRefused, Model: model, Detail: detail}
	case errors.Is(err, context.DeadlineExceeded):
		return &AssistantError{Kind: ErrorKindBackend, Model: model, Detail: "request timed out"}
	default:
		return &AssistantError{Kind: ErrorKindBackend, Model: model, Detail: detail}
	}
}

// AssistantProvider selects a model and hands out assistants.
type AssistantProvider interface {
	// Initialize fails with ErrNoModelAvailable when nothing is installed
	// or the model list cannot be fetched.
	Initialize(ctx context.Context, candidate models.CandidateRecord, jobDescription string, score models.MatchScore) (Assistant, error)
	Status(ctx context.Context) models.StatusResponse
}

type assistantProvider struct {
	backend   ChatBackend
	preferred []string
	timeout   time.Duration
	logger    *zap.Logger
}

func NewAssistantProvider(backend ChatBackend, preferred []string, timeout time.Duration, log *zap.Logger) AssistantProvider {
	return &assistantProvider{
		backend:   backend,
		preferred: preferred,
		timeout:   timeout,
		logger:    logger.OrNop(log),
	}
}

func (p *assistantProvider) Initialize(ctx context.Context, candidate models.CandidateRecord, jobDescription string, score models.MatchScore) (Assistant, error) {
	installed, err := p.backend.ListModels(ctx)
	if err != nil {
		p.logger.Warn("failed to list models", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrNoModelAvailable, err)
	}

	model, ok := SelectModel(p.preferred, installed)
	if !ok {
		return nil, ErrNoModelAvailable
	}

	p.logger.Info("assistant initialized",
		zap.String("model", model),
		zap.Int("installed_models", len(installed)),
	)
	return NewAssistant(p.backend, model, candidate, jobDescription, score, p.timeout, p.logger), nil
}

// Status reports whether the backend answers and which models it has.
func (p *assistantProvider) Status(ctx context.Context) models.StatusResponse {
	installed, err := p.backend.ListModels(ctx)
	if err != nil {
		return models.StatusResponse{Running: false, Models: []string{}, Error: err.Error()}
	}
	return models.StatusResponse{Running: true, Models: installed}
}
