package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/career-fit/internal/models"
)

var preferred = []string{"llama3.2", "llama3.1", "llama2", "mistral", "codellama"}

func TestSelectModel(t *testing.T) {
	tests := []struct {
		name      string
		installed []string
		want      string
		ok        bool
	}{
		{name: "empty list", installed: nil, ok: false},
		{name: "preference beats install order", installed: []string{"mistral:7b", "llama3.1:8b"}, want: "llama3.1:8b", ok: true},
		{name: "substring match with tag", installed: []string{"phi3:mini", "llama3.2:latest"}, want: "llama3.2:latest", ok: true},
		{name: "first installed match for a preference", installed: []string{"codellama:7b", "llama2:13b", "llama2:7b"}, want: "llama2:13b", ok: true},
		{name: "codellama matches llama2 preference first", installed: []string{"codellama2:7b"}, want: "codellama2:7b", ok: true},
		{name: "fallback to first installed", installed: []string{"phi3:mini", "gemma:2b"}, want: "phi3:mini", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SelectModel(preferred, tt.installed)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAskWithoutModelMakesNoBackendCall(t *testing.T) {
	backend := &fakeBackend{reply: "should not be used"}
	a := NewAssistant(backend, "", testCandidate(), "job", 0.5, 0, nil)

	answer := a.Ask(context.Background(), "Is this candidate a fit?")

	require.NotNil(t, answer.Err)
	assert.Equal(t, ErrorKindNoModel, answer.Err.Kind)
	assert.False(t, answer.OK())
	assert.Contains(t, answer.Display(), "ollama pull llama3.2")
	assert.Empty(t, backend.chatCalls())
	assert.Zero(t, backend.listCalls)
}

func TestAskBuildsPromptFromFixedContext(t *testing.T) {
	backend := &fakeBackend{reply: "Strong backend profile."}
	a := NewAssistant(backend, "llama3.2:latest", testCandidate(), "Senior Go engineer", 0.8123, 0, nil)

	first := a.Ask(context.Background(), "What are the strengths?")
	second := a.Ask(context.Background(), "Any gaps?")

	require.True(t, first.OK())
	require.True(t, second.OK())
	assert.Equal(t, "Strong backend profile.", first.Text)

	calls := backend.chatCalls()
	require.Len(t, calls, 2)
	for _, call := range calls {
		assert.Equal(t, "llama3.2:latest", call.model)
		assert.Equal(t, DefaultGenerationOptions, call.opts)
		assert.True(t, strings.HasPrefix(call.prompt, a.Context()))
	}
	assert.Contains(t, calls[0].prompt, "QUESTION: What are the strengths?")
	assert.NotContains(t, calls[1].prompt, "What are the strengths?")
	assert.Contains(t, calls[1].prompt, "QUESTION: Any gaps?")
	assert.Contains(t, a.Context(), "MATCH SCORE: 81.23%")
}

func TestAskStreamDeliversChunks(t *testing.T) {
	backend := &fakeBackend{reply: "Hello there", chunks: []string{"Hello", " there"}}
	a := NewAssistant(backend, "mistral", testCandidate(), "job", 0.5, 0, nil)

	var got []string
	answer := a.AskStream(context.Background(), "hi", func(c string) { got = append(got, c) })

	assert.True(t, answer.OK())
	assert.Equal(t, "Hello there", answer.Text)
	assert.Equal(t, []string{"Hello", " there"}, got)
}

func TestAskClassifiesFailures(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		kind    AssistantErrorKind
		message string
	}{
		{
			name:    "missing model",
			err:     fmt.Errorf("chat: %w", ErrModelNotFound),
			kind:    ErrorKindModelNotFound,
			message: "Model 'llama3.2' not found. Please install it with: ollama pull llama3.2",
		},
		{
			name:    "not found text",
			err:     errors.New(`model "llama3.2" not found, try pulling it first`),
			kind:    ErrorKindModelNotFound,
			message: "Model 'llama3.2' not found. Please install it with: ollama pull llama3.2",
		},
		{
			name:    "backend unavailable",
			err:     fmt.Errorf("chat: %w", ErrBackendUnavailable),
			kind:    ErrorKindConnectionRefused,
			message: "Cannot connect to Ollama. Please make sure Ollama is running (run 'ollama serve' in terminal).",
		},
		{
			name:    "connection text",
			err:     errors.New("Connection reset by peer"),
			kind:    ErrorKindConnectionRefused,
			message: "Cannot connect to Ollama. Please make sure Ollama is running (run 'ollama serve' in terminal).",
		},
		{
			name:    "generic",
			err:     errors.New("out of memory"),
			kind:    ErrorKindBackend,
			message: "Error: out of memory. Please check your Ollama installation.",
		},
		{
			name:    "timeout",
			err:     fmt.Errorf("chat: %w", context.DeadlineExceeded),
			kind:    ErrorKindBackend,
			message: "Error: request timed out. Please check your Ollama installation.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &fakeBackend{chatErr: tt.err}
			a := NewAssistant(backend, "llama3.2", testCandidate(), "job", 0.5, 0, nil)

			answer := a.Ask(context.Background(), "question")

			require.NotNil(t, answer.Err)
			assert.Equal(t, tt.kind, answer.Err.Kind)
			assert.Equal(t, tt.message, answer.Display())
			assert.Empty(t, answer.Text)
		})
	}
}

func TestConvenienceQuestions(t *testing.T) {
	backend := &fakeBackend{reply: "ok"}
	a := NewAssistant(backend, "llama3.2", testCandidate(), "job", 0.5, 0, nil)
	ctx := context.Background()

	a.GetRecommendation(ctx)
	a.GetInterviewQuestions(ctx)
	a.CompareWithRequirements(ctx)
	a.GetSalaryGuidance(ctx)

	calls := backend.chatCalls()
	require.Len(t, calls, 4)
	assert.Contains(t, calls[0].prompt, "Overall recommendation (Shortlist/Reject)")
	assert.Contains(t, calls[1].prompt, "suggest 5-7 specific interview questions")
	assert.Contains(t, calls[2].prompt, "Required skills they lack")
	assert.Contains(t, calls[3].prompt, "experience level (6 years)")
}

func TestProviderInitialize(t *testing.T) {
	t.Run("picks preferred model", func(t *testing.T) {
		backend := &fakeBackend{models: []string{"gemma:2b", "mistral:latest"}}
		p := NewAssistantProvider(backend, preferred, 0, nil)

		a, err := p.Initialize(context.Background(), testCandidate(), "job", 0.7)
		require.NoError(t, err)
		assert.Equal(t, "mistral:latest", a.Model())
	})

	t.Run("no models installed", func(t *testing.T) {
		backend := &fakeBackend{models: []string{}}
		p := NewAssistantProvider(backend, preferred, 0, nil)

		_, err := p.Initialize(context.Background(), testCandidate(), "job", 0.7)
		assert.ErrorIs(t, err, ErrNoModelAvailable)
		assert.Empty(t, backend.chatCalls())
	})

	t.Run("backend down", func(t *testing.T) {
		backend := &fakeBackend{listErr: fmt.Errorf("%w: connection refused", ErrBackendUnavailable)}
		p := NewAssistantProvider(backend, preferred, 0, nil)

		_, err := p.Initialize(context.Background(), testCandidate(), "job", 0.7)
		assert.ErrorIs(t, err, ErrNoModelAvailable)
		assert.ErrorIs(t, err, ErrBackendUnavailable)
	})
}

func TestProviderStatus(t *testing.T) {
	up := NewAssistantProvider(&fakeBackend{models: []string{"llama3.2"}}, preferred, 0, nil)
	assert.Equal(t, models.StatusResponse{Running: true, Models: []string{"llama3.2"}}, up.Status(context.Background()))

	down := NewAssistantProvider(&fakeBackend{listErr: errors.New("dial tcp 127.0.0.1:11434: connect: connection refused")}, preferred, 0, nil)
	status := down.Status(context.Background())
	assert.False(t, status.Running)
	assert.Empty(t, status.Models)
	assert.Contains(t, status.Error, "connection refused")
}
