package services

import (
	"errors"
	"fmt"
)

var (
	ErrNoModelAvailable   = errors.New("no Ollama models found. Please install a model first: 'ollama pull llama3.2'")
	ErrBackendUnavailable = errors.New("backend unavailable")
	ErrModelNotFound      = errors.New("model not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrNotProcessed       = errors.New("session has no processed resume yet")
	ErrEmptyQuestion      = errors.New("question must not be empty")
	ErrUnknownInsight     = errors.New("unknown insight")
	ErrQuestionIndex      = errors.New("quick question index out of range")
)

type AssistantErrorKind string

const (
	ErrorKindNoModel           AssistantErrorKind = "no_model"
	ErrorKindModelNotFound     AssistantErrorKind = "model_not_found"
	ErrorKindConnectionRefused AssistantErrorKind = "connection_refused"
	ErrorKindBackend           AssistantErrorKind = "backend_error"
)

// AssistantError is a recoverable failure of one question/answer exchange.
type AssistantError struct {
	Kind   AssistantErrorKind
	Model  string
	Detail string
}

func (e *AssistantError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Message is the user-facing text with remediation hints.
func (e *AssistantError) Message() string {
	switch e.Kind {
	case ErrorKindNoModel:
		return "No Ollama models found. Please install a model first: 'ollama pull llama3.2'"
	case ErrorKindModelNotFound:
		return fmt.Sprintf("Model '%s' not found. Please install it with: ollama pull %s", e.Model, e.Model)
	case ErrorKindConnectionRefused:
		return "Cannot connect to Ollama. Please make sure Ollama is running (run 'ollama serve' in terminal)."
	default:
		return fmt.Sprintf("Error: %s. Please check your Ollama installation.", e.Detail)
	}
}

// Answer is either generated text or an AssistantError.
type Answer struct {
	Text string
	Err  *AssistantError
}

func (a Answer) OK() bool {
	return a.Err == nil
}

// Display returns what a UI shows: the text, or the error message.
func (a Answer) Display() string {
	if a.Err != nil {
		return a.Err.Message()
	}
	return a.Text
}
