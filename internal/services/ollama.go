package services

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"syscall"

	"github.com/ollama/ollama/api"
	"go.uber.org/zap"

	"alfredoptarigan/career-fit/internal/logger"
)

// ollamaAPI is the subset of *api.Client used here.
type ollamaAPI interface {
	List(ctx context.Context) (*api.ListResponse, error)
	Chat(ctx context.Context, req *api.ChatRequest, fn api.ChatResponseFunc) error
	Embed(ctx context.Context, req *api.EmbedRequest) (*api.EmbedResponse, error)
}

// NewOllamaClient connects to an Ollama server such as http://127.0.0.1:11434.
func NewOllamaClient(host string) (*api.Client, error) {
	base, err := url.Parse(strings.TrimSpace(host))
	if err != nil {
		return nil, fmt.Errorf("invalid Ollama host: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid Ollama host: %q", host)
	}
	return api.NewClient(base, http.DefaultClient), nil
}

type GenerationOptions struct {
	Temperature float64
	TopP        float64
	MaxTokens   int
}

func (o GenerationOptions) toMap() map[string]any {
	return map[string]any{
		"temperature": o.Temperature,
		"top_p":       o.TopP,
		"num_predict": o.MaxTokens,
	}
}

type ChatBackend interface {
	ListModels(ctx context.Context) ([]string, error)
	// Chat sends one user message. When onChunk is set the reply is streamed
	// through it; the full text is returned either way.
	Chat(ctx context.Context, model, prompt string, opts GenerationOptions, onChunk func(string)) (string, error)
}

type ollamaBackend struct {
	client ollamaAPI
	logger *zap.Logger
}

func NewOllamaBackend(client ollamaAPI, log *zap.Logger) ChatBackend {
	return &ollamaBackend{
		client: client,
		logger: logger.OrNop(log),
	}
}

// ListModels implements ChatBackend. Names keep the order the server reports.
func (o *ollamaBackend) ListModels(ctx context.Context) ([]string, error) {
	resp, err := o.client.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", translateOllamaError(err))
	}

	names := make([]string, 0, len(resp.Models))
	for _, m := range resp.Models {
		name := m.Name
		if name == "" {
			name = m.Model
		}
		if name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// Chat implements ChatBackend.
func (o *ollamaBackend) Chat(ctx context.Context, model, prompt string, opts GenerationOptions, onChunk func(string)) (string, error) {
	stream := onChunk != nil
	req := &api.ChatRequest{
		Model: model,
		Messages: []api.Message{
			{Role: "user", Content: prompt},
		},
		Stream:  &stream,
		Options: opts.toMap(),
	}

	var builder strings.Builder
	err := o.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		chunk := resp.Message.Content
		if chunk == "" {
			return nil
		}
		builder.WriteString(chunk)
		if onChunk != nil {
			onChunk(chunk)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("chat with %s: %w", model, translateOllamaError(err))
	}

	return builder.String(), nil
}

// translateOllamaError tags missing models and unreachable servers.
func translateOllamaError(err error) error {
	var statusErr api.StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %w", ErrModelNotFound, err)
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return fmt.Errorf("%w: connection refused: %w", ErrBackendUnavailable, err)
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return fmt.Errorf("%w: connection failed: %w", ErrBackendUnavailable, err)
	}

	return err
}

type ollamaEmbedder struct {
	client ollamaAPI
	model  string
}

// NewOllamaEmbedder uses a local sentence-embedding model, all-minilm by default.
func NewOllamaEmbedder(client ollamaAPI, model string) Embedder {
	if model == "" {
		model = "all-minilm"
	}
	return &ollamaEmbedder{client: client, model: model}
}

// Embed implements Embedder.
func (e *ollamaEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := e.client.Embed(ctx, &api.EmbedRequest{
		Model: e.model,
		Input: text,
	})
	if err != nil {
		return nil, fmt.Errorf("ollama embedding: %w", translateOllamaError(err))
	}

	if resp == nil || len(resp.Embeddings) == 0 || len(resp.Embeddings[0]) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	return resp.Embeddings[0], nil
}

// Model implements Embedder.
func (e *ollamaEmbedder) Model() string {
	return e.model
}
