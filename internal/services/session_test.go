package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/career-fit/internal/models"
)

func TestSessionRequiresAnalysis(t *testing.T) {
	s := NewSession(models.ModeHR)

	_, err := s.Ask(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrNotProcessed)

	_, err = s.Insight(context.Background(), InsightRecommendation)
	assert.ErrorIs(t, err, ErrNotProcessed)

	_, err = s.Analysis()
	assert.ErrorIs(t, err, ErrNotProcessed)

	snap := s.Snapshot()
	assert.Equal(t, s.ID(), snap.ID)
	assert.Empty(t, snap.Model)
	assert.Empty(t, snap.History)
}

func TestSessionAskRecordsHistory(t *testing.T) {
	backend := &fakeBackend{reply: "answer"}
	s := NewSession(models.ModeHR)
	s.Replace(newTestAnalysis(models.ModeHR, backend, 0.8))

	questions := []string{"first?", "second?", "third?"}
	for _, q := range questions {
		answer, err := s.Ask(context.Background(), q)
		require.NoError(t, err)
		assert.Equal(t, "answer", answer.Text)
	}

	history := s.History()
	require.Len(t, history, 2*len(questions))
	for i, q := range questions {
		assert.Equal(t, models.SpeakerUser, history[2*i].Speaker)
		assert.Equal(t, q, history[2*i].Text)
		assert.Equal(t, "Bot", history[2*i+1].Speaker)
		assert.Equal(t, "answer", history[2*i+1].Text)
		assert.False(t, history[2*i+1].IsError)
	}

	history[0].Text = "mutated"
	assert.Equal(t, "first?", s.History()[0].Text)
}

func TestSessionEmptyQuestion(t *testing.T) {
	backend := &fakeBackend{reply: "answer"}
	s := NewSession(models.ModeHR)
	s.Replace(newTestAnalysis(models.ModeHR, backend, 0.8))

	_, err := s.Ask(context.Background(), "   \n")
	assert.ErrorIs(t, err, ErrEmptyQuestion)
	assert.Empty(t, s.History())
	assert.Empty(t, backend.chatCalls())
}

func TestSessionRecordsFailedAnswers(t *testing.T) {
	backend := &fakeBackend{chatErr: ErrBackendUnavailable}
	s := NewSession(models.ModeCandidate)
	s.Replace(newTestAnalysis(models.ModeCandidate, backend, 0.5))

	answer, err := s.Ask(context.Background(), "am I a fit?")
	require.NoError(t, err)
	assert.False(t, answer.OK())

	history := s.History()
	require.Len(t, history, 2)
	assert.Equal(t, "am I a fit?", history[0].Text)
	assert.Equal(t, "Career Advisor", history[1].Speaker)
	assert.True(t, history[1].IsError)
	assert.Equal(t, answer.Err.Message(), history[1].Text)
}

func TestSessionCandidateFraming(t *testing.T) {
	backend := &fakeBackend{reply: "ok"}
	s := NewSession(models.ModeCandidate)
	s.Replace(newTestAnalysis(models.ModeCandidate, backend, 0.5))

	_, err := s.Ask(context.Background(), "Should I apply?")
	require.NoError(t, err)

	question, _, err := s.AskQuick(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "How can I improve my chances for this role?", question)

	calls := backend.chatCalls()
	require.Len(t, calls, 2)
	assert.Contains(t, calls[0].prompt, "QUESTION: As a candidate asking about this role: Should I apply?")
	assert.Contains(t, calls[1].prompt, "QUESTION: As a candidate: How can I improve my chances for this role?")

	history := s.History()
	require.Len(t, history, 4)
	assert.Equal(t, "Should I apply?", history[0].Text)
	assert.Equal(t, "How can I improve my chances for this role?", history[2].Text)
}

func TestSessionAskQuickOutOfRange(t *testing.T) {
	backend := &fakeBackend{reply: "ok"}
	s := NewSession(models.ModeHR)
	s.Replace(newTestAnalysis(models.ModeHR, backend, 0.8))

	for _, index := range []int{-1, 5, 100} {
		_, _, err := s.AskQuick(context.Background(), index)
		assert.ErrorIs(t, err, ErrQuestionIndex)
	}
	assert.Empty(t, backend.chatCalls())
	assert.Empty(t, s.History())
}

func TestSessionClearHistoryKeepsAnalysis(t *testing.T) {
	backend := &fakeBackend{reply: "ok"}
	s := NewSession(models.ModeHR)
	analysis := newTestAnalysis(models.ModeHR, backend, 0.8)
	s.Replace(analysis)

	_, err := s.Ask(context.Background(), "q")
	require.NoError(t, err)
	require.Len(t, s.History(), 2)

	s.ClearHistory()
	assert.Empty(t, s.History())

	got, err := s.Analysis()
	require.NoError(t, err)
	assert.Same(t, analysis, got)

	_, err = s.Ask(context.Background(), "again")
	require.NoError(t, err)
	assert.Len(t, s.History(), 2)
}

func TestSessionReplaceResetsConversation(t *testing.T) {
	first := &fakeBackend{reply: "first"}
	second := &fakeBackend{reply: "second"}
	s := NewSession(models.ModeHR)
	s.Replace(newTestAnalysis(models.ModeHR, first, 0.8))

	_, err := s.Ask(context.Background(), "q")
	require.NoError(t, err)

	s.Replace(newTestAnalysis(models.ModeCandidate, second, 0.3))
	assert.Empty(t, s.History())
	assert.Equal(t, models.ModeCandidate, s.Mode())

	answer, err := s.Ask(context.Background(), "q2")
	require.NoError(t, err)
	assert.Equal(t, "second", answer.Text)
	assert.Len(t, first.chatCalls(), 1)

	snap := s.Snapshot()
	assert.Equal(t, models.DecisionNeedsImprovement, snap.Decision)
	assert.Equal(t, "30.00%", snap.ScoreLabel)
	assert.Len(t, snap.Suggested, 7)
}

type blockingBackend struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingBackend) ListModels(context.Context) ([]string, error) {
	return []string{"llama3.2"}, nil
}

func (b *blockingBackend) Chat(ctx context.Context, _, _ string, _ GenerationOptions, _ func(string)) (string, error) {
	close(b.started)
	select {
	case <-b.release:
		return "late", nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func TestSessionDropsAnswerAfterReprocess(t *testing.T) {
	backend := &blockingBackend{started: make(chan struct{}), release: make(chan struct{})}
	s := NewSession(models.ModeHR)
	s.Replace(newTestAnalysis(models.ModeHR, backend, 0.8))

	var (
		wg     sync.WaitGroup
		answer Answer
		err    error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		answer, err = s.Ask(context.Background(), "slow question")
	}()

	<-backend.started
	s.Replace(newTestAnalysis(models.ModeHR, &fakeBackend{reply: "new"}, 0.9))
	close(backend.release)
	wg.Wait()

	require.NoError(t, err)
	assert.Equal(t, "late", answer.Text)
	assert.Empty(t, s.History())
}

func TestSessionInsights(t *testing.T) {
	backend := &fakeBackend{reply: "insight"}
	s := NewSession(models.ModeHR)
	s.Replace(newTestAnalysis(models.ModeHR, backend, 0.8))
	ctx := context.Background()

	tests := []struct {
		kind InsightKind
		want string
	}{
		{kind: InsightStrengths, want: "key strengths that match the job requirements"},
		{kind: "GAPS", want: "What skills or experience is this candidate missing"},
		{kind: InsightActionPlan, want: "Immediate actions (next 24-48 hours)"},
		{kind: InsightRecommendation, want: "provide a comprehensive recommendation"},
		{kind: InsightSalaryGuidance, want: "experience level (6 years)"},
		{kind: InsightDecisionExplanation, want: "Why should this candidate be shortlisted?"},
	}

	for i, tt := range tests {
		answer, err := s.Insight(ctx, tt.kind)
		require.NoError(t, err, tt.kind)
		assert.Equal(t, "insight", answer.Text)

		calls := backend.chatCalls()
		require.Len(t, calls, i+1)
		assert.Contains(t, calls[i].prompt, tt.want, tt.kind)
	}

	_, err := s.Insight(ctx, "horoscope")
	assert.ErrorIs(t, err, ErrUnknownInsight)
	assert.Empty(t, s.History())
}

func TestSessionDecisionInsightForReject(t *testing.T) {
	backend := &fakeBackend{reply: "because"}
	s := NewSession(models.ModeHR)
	s.Replace(newTestAnalysis(models.ModeHR, backend, 0.4))

	_, err := s.Insight(context.Background(), InsightDecisionExplanation)
	require.NoError(t, err)
	assert.Contains(t, backend.chatCalls()[0].prompt, "Why should this candidate be rejected?")
}

func newTestStore(ttl time.Duration) (*sessionStore, *time.Time) {
	clock := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	st := NewSessionStore(ttl, nil).(*sessionStore)
	st.now = func() time.Time { return clock }
	return st, &clock
}

func TestSessionStoreLifecycle(t *testing.T) {
	st, _ := newTestStore(0)

	s := st.Create(models.ModeCandidate)
	assert.Equal(t, models.ModeCandidate, s.Mode())
	assert.Equal(t, 1, st.Len())

	got, err := st.Get(s.ID())
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = st.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	require.NoError(t, st.Delete(s.ID()))
	assert.ErrorIs(t, st.Delete(s.ID()), ErrSessionNotFound)
	assert.Zero(t, st.Len())
}

func TestSessionStoreInvalidModeDefaultsToHR(t *testing.T) {
	st, _ := newTestStore(0)
	assert.Equal(t, models.ModeHR, st.Create("recruiter").Mode())
}

func TestSessionStoreExpiry(t *testing.T) {
	st, clock := newTestStore(time.Hour)

	idle := st.Create(models.ModeHR)
	active := st.Create(models.ModeHR)

	*clock = clock.Add(45 * time.Minute)
	_, err := st.Get(active.ID())
	require.NoError(t, err)

	*clock = clock.Add(30 * time.Minute)
	assert.Equal(t, 1, st.Sweep())

	_, err = st.Get(idle.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = st.Get(active.ID())
	assert.NoError(t, err)
}

func TestSessionStoreNoExpiryWithoutTTL(t *testing.T) {
	st, clock := newTestStore(0)
	s := st.Create(models.ModeHR)

	*clock = clock.Add(1000 * time.Hour)
	assert.Zero(t, st.Sweep())
	_, err := st.Get(s.ID())
	assert.NoError(t, err)
}

type countingStore struct {
	SessionStore
	mu     sync.Mutex
	sweeps int
}

func (c *countingStore) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sweeps++
	return 0
}

func (c *countingStore) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sweeps
}

func TestJanitorSweepsUntilStopped(t *testing.T) {
	store := &countingStore{SessionStore: NewSessionStore(time.Hour, nil)}
	j := NewJanitor(store, 5*time.Millisecond, nil)

	j.Start(context.Background())
	assert.Eventually(t, func() bool { return store.count() >= 2 }, time.Second, 5*time.Millisecond)

	j.Stop()
	j.Stop()
	stopped := store.count()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, store.count())
}

func TestJanitorStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	j := NewJanitor(NewSessionStore(time.Hour, nil), time.Hour, nil)
	j.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		j.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}
