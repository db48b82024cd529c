package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/career-fit/internal/logger"
	"alfredoptarigan/career-fit/internal/models"
)

// Session owns one active analysis and its question/answer history.
// History only grows; it is emptied by ClearHistory or by Replace.
type Session struct {
	id      string
	prompts *PromptBuilder
	now     func() time.Time

	mu         sync.Mutex
	mode       models.Mode
	analysis   *Analysis
	generation uint64
	history    []models.Message
	lastSeen   time.Time
}

func newSession(id string, mode models.Mode, now func() time.Time) *Session {
	if !mode.Valid() {
		mode = models.ModeHR
	}
	return &Session{
		id:       id,
		prompts:  NewPromptBuilder(),
		now:      now,
		mode:     mode,
		history:  []models.Message{},
		lastSeen: now(),
	}
}

// NewSession returns a standalone session, as used by the CLI.
func NewSession(mode models.Mode) *Session {
	return newSession(uuid.NewString(), mode, time.Now)
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Mode() models.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Replace installs a new analysis and drops the previous history.
func (s *Session) Replace(analysis *Analysis) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.analysis = analysis
	s.mode = analysis.Mode
	s.generation++
	s.history = []models.Message{}
	s.lastSeen = s.now()
}

// Analysis returns the current analysis, or ErrNotProcessed.
func (s *Session) Analysis() (*Analysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.analysis == nil {
		return nil, ErrNotProcessed
	}
	return s.analysis, nil
}

// Ask relays a free question and records it with its answer.
func (s *Session) Ask(ctx context.Context, question string) (Answer, error) {
	return s.exchange(ctx, question, false, nil)
}

// AskStream is Ask with the answer streamed through onChunk.
func (s *Session) AskStream(ctx context.Context, question string, onChunk func(string)) (Answer, error) {
	return s.exchange(ctx, question, false, onChunk)
}

// AskQuick relays the suggested question at index.
func (s *Session) AskQuick(ctx context.Context, index int) (string, Answer, error) {
	questions := s.prompts.SuggestedQuestions(s.Mode())
	if index < 0 || index >= len(questions) {
		return "", Answer{}, fmt.Errorf("%w: %d not in [0, %d)", ErrQuestionIndex, index, len(questions))
	}

	question := questions[index]
	answer, err := s.exchange(ctx, question, true, nil)
	return question, answer, err
}

func (s *Session) exchange(ctx context.Context, question string, quick bool, onChunk func(string)) (Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return Answer{}, ErrEmptyQuestion
	}

	s.mu.Lock()
	if s.analysis == nil {
		s.mu.Unlock()
		return Answer{}, ErrNotProcessed
	}
	analysis, mode, generation := s.analysis, s.mode, s.generation
	s.lastSeen = s.now()
	s.mu.Unlock()

	answer := analysis.Assistant.AskStream(ctx, s.prompts.FramedQuestion(mode, question, quick), onChunk)

	s.mu.Lock()
	defer s.mu.Unlock()

	// A reprocess during the call started a new conversation.
	if s.generation != generation {
		return answer, nil
	}

	at := s.now()
	s.history = append(s.history,
		models.Message{Speaker: models.SpeakerUser, Text: question, CreatedAt: at},
		models.Message{Speaker: mode.AssistantSpeaker(), Text: answer.Display(), IsError: !answer.OK(), CreatedAt: at},
	)
	return answer, nil
}

// Insight runs a canned analysis prompt. It is not recorded in the history.
func (s *Session) Insight(ctx context.Context, kind InsightKind) (Answer, error) {
	analysis, err := s.Analysis()
	if err != nil {
		return Answer{}, err
	}

	kind = InsightKind(strings.ToLower(string(kind)))
	switch kind {
	case InsightRecommendation:
		return analysis.Assistant.GetRecommendation(ctx), nil
	case InsightInterviewQuestions:
		return analysis.Assistant.GetInterviewQuestions(ctx), nil
	case InsightRequirements:
		return analysis.Assistant.CompareWithRequirements(ctx), nil
	case InsightSalaryGuidance:
		return analysis.Assistant.GetSalaryGuidance(ctx), nil
	case InsightDecisionExplanation:
		return analysis.Assistant.Ask(ctx, s.prompts.AnalysisQuestion(analysis.Decision)), nil
	}

	question, ok := s.prompts.InsightQuestion(kind)
	if !ok {
		return Answer{}, fmt.Errorf("%w: %q", ErrUnknownInsight, kind)
	}
	return analysis.Assistant.Ask(ctx, question), nil
}

// ClearHistory empties the conversation and keeps the analysis.
func (s *Session) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = []models.Message{}
	s.lastSeen = s.now()
}

// History returns a copy of the conversation in display order.
func (s *Session) History() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Message{}, s.history...)
}

func (s *Session) SuggestedQuestions() []string {
	return s.prompts.SuggestedQuestions(s.Mode())
}

// Snapshot renders the session for API responses.
func (s *Session) Snapshot() models.SessionResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp := models.SessionResponse{
		ID:        s.id,
		Mode:      s.mode,
		History:   append([]models.Message{}, s.history...),
		Suggested: s.prompts.SuggestedQuestions(s.mode),
	}
	if s.analysis == nil {
		return resp
	}

	a := s.analysis
	resp.Model = a.Assistant.Model()
	resp.Summary = a.Candidate.Summary()
	resp.Candidate = a.Candidate
	resp.MatchScore = float64(a.Score)
	resp.ScoreLabel = a.Score.String()
	resp.Decision = a.Decision
	resp.Advice = Advice(a.Decision)
	resp.ProcessedAt = a.ProcessedAt
	return resp
}

func (s *Session) touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = s.now()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

type SessionStore interface {
	Create(mode models.Mode) *Session
	Get(id string) (*Session, error)
	Delete(id string) error
	Len() int
	// Sweep drops expired sessions and reports how many were removed.
	Sweep() int
}

type sessionStore struct {
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSessionStore keeps sessions in memory. Sessions idle for longer than
// ttl are dropped on the next access; ttl <= 0 disables expiry.
func NewSessionStore(ttl time.Duration, log *zap.Logger) SessionStore {
	return &sessionStore{
		ttl:      ttl,
		now:      time.Now,
		logger:   logger.OrNop(log),
		sessions: make(map[string]*Session),
	}
}

func (st *sessionStore) Create(mode models.Mode) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.sweepLocked()

	session := newSession(uuid.NewString(), mode, st.now)
	st.sessions[session.id] = session
	st.logger.Debug("session created", zap.String("session_id", session.id), zap.String("mode", string(session.mode)))
	return session
}

func (st *sessionStore) Get(id string) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.sweepLocked()

	session, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	session.touch()
	return session, nil
}

func (st *sessionStore) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(st.sessions, id)
	return nil
}

func (st *sessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

func (st *sessionStore) Sweep() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.sweepLocked()
}

func (st *sessionStore) sweepLocked() int {
	if st.ttl <= 0 {
		return 0
	}

	removed := 0
	now := st.now()
	for id, session := range st.sessions {
		if session.idleSince(now) > st.ttl {
			delete(st.sessions, id)
			removed++
			st.logger.Debug("session expired", zap.String("session_id", id))
		}
	}
	return removed
}
