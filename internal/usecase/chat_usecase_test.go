package usecase

import (
	"context"
	"errors"
	"testing"

	"ai-medical-assistant/internal/domain/entity"
)

func suggestedSession(t *testing.T, fake *fakeAssistant) *ConsultationSession {
	t.Helper()
	if fake.suggestFn == nil {
		fake.suggestFn = func(ctx context.Context, cc entity.ConsultationContext) (string, error) {
			return "Take ibuprofen and rest", nil
		}
	}
	s := NewConsultationSession(fake, testLogger())
	if _, err := s.Submit(context.Background(), validComplaint()); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	return s
}

func TestAskBlankIsNoOp(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "whitespace", text: "   "},
		{name: "newline", text: "\n\t"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fake := &fakeAssistant{}
			s := suggestedSession(t, fake)

			msg, err := s.Ask(context.Background(), c.text)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if msg != nil {
				t.Fatalf("expected no reply message, got %+v", msg)
			}
			if fake.chatCalls != 0 {
				t.Fatalf("expected no chat request, got %d", fake.chatCalls)
			}
			if n := len(s.Snapshot().Transcript); n != 0 {
				t.Fatalf("expected transcript untouched, got %d messages", n)
			}
		})
	}
}

func TestAskBeforeSuggestion(t *testing.T) {
	fake := &fakeAssistant{}
	s := NewConsultationSession(fake, testLogger())

	if _, err := s.Ask(context.Background(), "how often?"); !errors.Is(err, ErrNoSuggestion) {
		t.Fatalf("expected ErrNoSuggestion, got %v", err)
	}
	if fake.chatCalls != 0 {
		t.Fatalf("expected no chat request, got %d", fake.chatCalls)
	}
}

func TestAskSuccess(t *testing.T) {
	fake := &fakeAssistant{
		chatFn: func(ctx context.Context, message string, chatCtx entity.ChatContext) (string, error) {
			return "Every 6 hours", nil
		},
	}
	s := suggestedSession(t, fake)

	msg, err := s.Ask(context.Background(), "how often?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg == nil || msg.Content != "Every 6 hours" {
		t.Fatalf("expected reply message, got %+v", msg)
	}

	transcript := s.Snapshot().Transcript
	if len(transcript) != 2 {
		t.Fatalf("expected transcript of 2, got %d", len(transcript))
	}
	if transcript[0].Role != entity.RoleUser || transcript[0].Content != "how often?" {
		t.Fatalf("expected user message first, got %+v", transcript[0])
	}
	if transcript[1].Role != entity.RoleAssistant || transcript[1].Content != "Every 6 hours" {
		t.Fatalf("expected assistant reply second, got %+v", transcript[1])
	}
	if transcript[0].ID == transcript[1].ID {
		t.Fatal("expected distinct message IDs")
	}
}

func TestAskCarriesConsultationContext(t *testing.T) {
	var got entity.ChatContext
	fake := &fakeAssistant{
		chatFn: func(ctx context.Context, message string, chatCtx entity.ChatContext) (string, error) {
			got = chatCtx
			return "ok", nil
		},
	}
	s := suggestedSession(t, fake)

	if _, err := s.Ask(context.Background(), "  how often?  "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := entity.ChatContext{
		Severity:   entity.SeveritySevere,
		Problem:    "headache",
		Symptoms:   "pain for 3 days",
		Suggestion: "Take ibuprofen and rest",
	}
	if got != want {
		t.Fatalf("expected chat context %+v, got %+v", want, got)
	}

	// The trimmed question is what goes on the wire and into the transcript.
	if c := s.Snapshot().Transcript[0].Content; c != "how often?" {
		t.Fatalf("expected trimmed question, got %q", c)
	}
}

func TestAskFailureAppendsFallback(t *testing.T) {
	fake := &fakeAssistant{
		chatFn: func(ctx context.Context, message string, chatCtx entity.ChatContext) (string, error) {
			return "", errors.New("upstream down")
		},
	}
	s := suggestedSession(t, fake)

	msg, err := s.Ask(context.Background(), "how often?")
	if err != nil {
		t.Fatalf("expected failure absorbed, got error %v", err)
	}
	if msg == nil || msg.Content != chatFallbackReply {
		t.Fatalf("expected fallback reply, got %+v", msg)
	}

	transcript := s.Snapshot().Transcript
	if len(transcript) != 2 {
		t.Fatalf("expected transcript of 2, got %d", len(transcript))
	}
	if transcript[0].Role != entity.RoleUser {
		t.Fatalf("expected user message preserved, got %+v", transcript[0])
	}
	if transcript[1].Content != chatFallbackReply {
		t.Fatalf("expected fallback as assistant message, got %q", transcript[1].Content)
	}

	// The failure never surfaces as a banner error on the session.
	if e := s.Snapshot().Error; e != "" {
		t.Fatalf("expected no session error, got %q", e)
	}
}

func TestResubmitDiscardsInFlightReply(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	fake := &fakeAssistant{
		chatFn: func(ctx context.Context, message string, chatCtx entity.ChatContext) (string, error) {
			close(entered)
			<-release
			return "answer for the old context", nil
		},
	}
	s := suggestedSession(t, fake)

	done := make(chan struct{})
	go func() {
		s.Ask(context.Background(), "how often?")
		close(done)
	}()
	<-entered

	// A second valid submit starts a fresh context/suggestion pair; the
	// reply still in flight belongs to the old transcript and must not
	// land in the new one.
	if _, err := s.Submit(context.Background(), validComplaint()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	close(release)
	<-done

	snap := s.Snapshot()
	if n := len(snap.Transcript); n != 0 {
		t.Fatalf("expected fresh transcript untouched by stale reply, got %d message(s): %+v", n, snap.Transcript)
	}
	if snap.State != ConsultationSuggested {
		t.Fatalf("expected suggested state, got %s", snap.State)
	}
}

func TestAskRejectsSecondWhilePending(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	fake := &fakeAssistant{
		chatFn: func(ctx context.Context, message string, chatCtx entity.ChatContext) (string, error) {
			close(entered)
			<-release
			return "ok", nil
		},
	}
	s := suggestedSession(t, fake)

	done := make(chan error, 1)
	go func() {
		_, err := s.Ask(context.Background(), "first")
		done <- err
	}()
	<-entered

	if _, err := s.Ask(context.Background(), "second"); !errors.Is(err, ErrRequestInFlight) {
		t.Fatalf("expected ErrRequestInFlight, got %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("unexpected error from first ask: %v", err)
	}
	if fake.chatCalls != 1 {
		t.Fatalf("expected exactly one chat request, got %d", fake.chatCalls)
	}
	if n := len(s.Snapshot().Transcript); n != 2 {
		t.Fatalf("expected 2 messages, got %d", n)
	}
}
