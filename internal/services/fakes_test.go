package services

import (
	"context"
	"sync"

	"github.com/ollama/ollama/api"

	"alfredoptarigan/career-fit/internal/models"
)

type chatCall struct {
	model  string
	prompt string
	opts   GenerationOptions
}

type fakeBackend struct {
	mu        sync.Mutex
	models    []string
	listErr   error
	reply     string
	chunks    []string
	chatErr   error
	listCalls int
	calls     []chatCall
}

func (f *fakeBackend) ListModels(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]string(nil), f.models...), nil
}

func (f *fakeBackend) Chat(_ context.Context, model, prompt string, opts GenerationOptions, onChunk func(string)) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, chatCall{model: model, prompt: prompt, opts: opts})
	f.mu.Unlock()

	if f.chatErr != nil {
		return "", f.chatErr
	}
	if onChunk != nil {
		for _, c := range f.chunks {
			onChunk(c)
		}
	}
	return f.reply, nil
}

func (f *fakeBackend) chatCalls() []chatCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]chatCall(nil), f.calls...)
}

type fakeEmbedder struct {
	mu      sync.Mutex
	vectors map[string][]float32
	err     error
	calls   int
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if v, ok := f.vectors[text]; ok {
		return v, nil
	}
	return []float32{1, 1, 1}, nil
}

func (f *fakeEmbedder) Model() string {
	return "fake-embed"
}

func (f *fakeEmbedder) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeOllamaAPI struct {
	list      *api.ListResponse
	listErr   error
	responses []api.ChatResponse
	chatErr   error
	embed     *api.EmbedResponse
	embedErr  error

	lastChat  *api.ChatRequest
	lastEmbed *api.EmbedRequest
}

func (f *fakeOllamaAPI) List(_ context.Context) (*api.ListResponse, error) {
	return f.list, f.listErr
}

func (f *fakeOllamaAPI) Chat(_ context.Context, req *api.ChatRequest, fn api.ChatResponseFunc) error {
	f.lastChat = req
	if f.chatErr != nil {
		return f.chatErr
	}
	for _, r := range f.responses {
		if err := fn(r); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeOllamaAPI) Embed(_ context.Context, req *api.EmbedRequest) (*api.EmbedResponse, error) {
	f.lastEmbed = req
	return f.embed, f.embedErr
}

type fakeParser struct {
	raw      RawResume
	err      error
	panicMsg string
	seenPath string
}

func (f *fakeParser) Parse(_ context.Context, path string) (RawResume, error) {
	f.seenPath = path
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	return f.raw, f.err
}

type fakeExtractor struct {
	record models.CandidateRecord
}

func (f *fakeExtractor) Extract(_ context.Context, _ []byte) models.CandidateRecord {
	return f.record
}

type fakeScorer struct {
	score models.MatchScore
	err   error
}

func (f *fakeScorer) Score(_ context.Context, _, _ string) (float64, error) {
	return float64(f.score), f.err
}

func (f *fakeScorer) MatchScore(_ context.Context, _, _ string) (models.MatchScore, error) {
	return f.score, f.err
}

func testCandidate() models.CandidateRecord {
	skills := []string{"Go", "PostgreSQL", "Docker"}
	return models.CandidateRecord{
		Name:                 "Jane Doe",
		Skills:               skills,
		Experience:           "Senior Engineer at Acme",
		TotalExperienceYears: 6,
		PageCount:            2,
		FullText:             models.BuildFullText("Jane Doe", skills, "Senior Engineer at Acme"),
	}
}

func newTestAnalysis(mode models.Mode, backend ChatBackend, score models.MatchScore) *Analysis {
	candidate := testCandidate()
	return &Analysis{
		Mode:           mode,
		Candidate:      candidate,
		JobDescription: "Backend Go developer",
		Score:          score,
		Decision:       Classify(score, mode.Scheme()),
		Assistant:      NewAssistant(backend, "llama3.2:latest", candidate, "Backend Go developer", score, 0, nil),
	}
}
