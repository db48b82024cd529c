package services

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"

	"github.com/ollama/ollama/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOllamaClient(t *testing.T) {
	_, err := NewOllamaClient("http://127.0.0.1:11434")
	assert.NoError(t, err)

	for _, host := range []string{"", "127.0.0.1:11434", "://bad"} {
		_, err := NewOllamaClient(host)
		assert.Error(t, err, host)
	}
}

func TestOllamaListModelsKeepsServerOrder(t *testing.T) {
	client := &fakeOllamaAPI{list: &api.ListResponse{Models: []api.ListModelResponse{
		{Name: "mistral:latest"},
		{Model: "llama3.2:latest"},
		{},
		{Name: "phi3:mini"},
	}}}

	got, err := NewOllamaBackend(client, nil).ListModels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"mistral:latest", "llama3.2:latest", "phi3:mini"}, got)
}

func TestOllamaChat(t *testing.T) {
	responses := []api.ChatResponse{
		{Message: api.Message{Role: "assistant", Content: "Strong "}},
		{Message: api.Message{Role: "assistant", Content: "match."}},
		{Done: true},
	}

	t.Run("blocking", func(t *testing.T) {
		client := &fakeOllamaAPI{responses: responses}
		text, err := NewOllamaBackend(client, nil).Chat(context.Background(), "llama3.2", "prompt", DefaultGenerationOptions, nil)
		require.NoError(t, err)
		assert.Equal(t, "Strong match.", text)

		req := client.lastChat
		require.NotNil(t, req)
		assert.Equal(t, "llama3.2", req.Model)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.Equal(t, "prompt", req.Messages[0].Content)
		require.NotNil(t, req.Stream)
		assert.False(t, *req.Stream)
		assert.Equal(t, 0.7, req.Options["temperature"])
		assert.Equal(t, 0.9, req.Options["top_p"])
		assert.Equal(t, 500, req.Options["num_predict"])
	})

	t.Run("streaming", func(t *testing.T) {
		client := &fakeOllamaAPI{responses: responses}
		var chunks []string
		text, err := NewOllamaBackend(client, nil).Chat(context.Background(), "llama3.2", "prompt", DefaultGenerationOptions, func(c string) {
			chunks = append(chunks, c)
		})
		require.NoError(t, err)
		assert.Equal(t, "Strong match.", text)
		assert.Equal(t, []string{"Strong ", "match."}, chunks)
		assert.True(t, *client.lastChat.Stream)
	})
}

func TestTranslateOllamaError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{
			name:   "missing model",
			err:    api.StatusError{StatusCode: 404, ErrorMessage: `model "llama3.2" not found`},
			target: ErrModelNotFound,
		},
		{
			name:   "refused",
			err:    fmt.Errorf("post: %w", syscall.ECONNREFUSED),
			target: ErrBackendUnavailable,
		},
		{
			name:   "dial failure",
			err:    &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("no route to host")},
			target: ErrBackendUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeOllamaAPI{chatErr: tt.err}
			_, err := NewOllamaBackend(client, nil).Chat(context.Background(), "llama3.2", "p", DefaultGenerationOptions, nil)
			assert.ErrorIs(t, err, tt.target)
		})
	}

	t.Run("server error passes through", func(t *testing.T) {
		original := api.StatusError{StatusCode: 500, ErrorMessage: "boom"}
		client := &fakeOllamaAPI{chatErr: original}
		_, err := NewOllamaBackend(client, nil).Chat(context.Background(), "llama3.2", "p", DefaultGenerationOptions, nil)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrModelNotFound)
		assert.NotErrorIs(t, err, ErrBackendUnavailable)
	})

	t.Run("list failure", func(t *testing.T) {
		client := &fakeOllamaAPI{listErr: fmt.Errorf("get: %w", syscall.ECONNREFUSED)}
		_, err := NewOllamaBackend(client, nil).ListModels(context.Background())
		assert.ErrorIs(t, err, ErrBackendUnavailable)
	})
}

func TestOllamaEmbedder(t *testing.T) {
	client := &fakeOllamaAPI{embed: &api.EmbedResponse{Embeddings: [][]float32{{0.1, 0.2}}}}
	e := NewOllamaEmbedder(client, "")
	assert.Equal(t, "all-minilm", e.Model())

	vec, err := e.Embed(context.Background(), "go developer")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2}, vec)
	assert.Equal(t, "all-minilm", client.lastEmbed.Model)
	assert.Equal(t, "go developer", client.lastEmbed.Input)

	empty := &fakeOllamaAPI{embed: &api.EmbedResponse{}}
	_, err = NewOllamaEmbedder(empty, "nomic-embed-text").Embed(context.Background(), "x")
	assert.Error(t, err)
}
