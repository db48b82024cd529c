package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"alfredoptarigan/career-fit/internal/config"
	"alfredoptarigan/career-fit/internal/logger"
)

// Services bundles everything the API server and the CLI share.
type Services struct {
	Storage   StorageService
	Extractor ResumeExtractor
	Scorer    SimilarityScorer
	Backend   ChatBackend
	Assistant AssistantProvider
	Analyzer  AnalyzerService
	Sessions  SessionStore
	Trips     TripPlannerService
}

// New wires the services from configuration. It does not contact Ollama;
// use Assistant.Status for that.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Services, error) {
	log = logger.OrNop(log)

	storage := NewStorageService(cfg.Storage.TempDir, cfg.Storage.MaxFileSize)
	if err := storage.EnsureTempDir(); err != nil {
		return nil, err
	}

	client, err := NewOllamaClient(cfg.Ollama.Host)
	if err != nil {
		return nil, err
	}

	embedder, err := newEmbedder(ctx, cfg, client)
	if err != nil {
		return nil, err
	}
	log.Info("embedder ready",
		zap.String("provider", cfg.Embedding.Provider),
		zap.String("model", embedder.Model()),
	)

	backend := NewOllamaBackend(client, log.Named("ollama"))
	assistant := NewAssistantProvider(backend, cfg.Ollama.PreferredModels, cfg.Ollama.ChatTimeout, log.Named("assistant"))
	extractor := NewResumeExtractor(storage, NewPDFResumeParser(NewPDFParserService()), log.Named("extractor"))
	scorer := NewSimilarityScorer(embedder, cfg.Embedding.Timeout, log.Named("similarity"))

	return &Services{
		Storage:   storage,
		Extractor: extractor,
		Scorer:    scorer,
		Backend:   backend,
		Assistant: assistant,
		Analyzer:  NewAnalyzerService(extractor, scorer, assistant, log.Named("analyzer")),
		Sessions:  NewSessionStore(cfg.Session.TTL, log.Named("sessions")),
		Trips:     NewTripPlannerService(log.Named("trips")),
	}, nil
}

func newEmbedder(ctx context.Context, cfg *config.Config, client ollamaAPI) (Embedder, error) {
	switch cfg.Embedding.Provider {
	case "", "ollama":
		return NewOllamaEmbedder(client, cfg.Embedding.Model), nil
	case "gemini":
		return NewGeminiEmbedder(ctx, cfg.Gemini.APIKey, cfg.Gemini.EmbedModel)
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", cfg.Embedding.Provider)
	}
}
