package usecase

import (
	"context"
	"strings"
	"time"

	"ai-medical-assistant/internal/domain/entity"

	"github.com/google/uuid"
)

// chatFallbackReply absorbs a failed follow-up into the conversation itself
// so the transcript never shows a raw error or a dangling question.
const chatFallbackReply = "Sorry, I couldn't process your question. Please try again."

// Ask runs one follow-up exchange. The user's question is appended to the
// transcript immediately, before any network round-trip; the assistant's
// reply (or the fallback apology) is appended as a second message once the
// request settles. Every accepted ask therefore grows the transcript by
// exactly two messages, user first.
//
// A blank question is a silent no-op: nothing is appended, nothing is sent.
func (s *ConsultationSession) Ask(ctx context.Context, text string) (*entity.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	s.mu.Lock()
	if s.state != ConsultationSuggested {
		s.mu.Unlock()
		return nil, ErrNoSuggestion
	}
	if s.chatPending {
		s.mu.Unlock()
		return nil, ErrRequestInFlight
	}
	s.chatPending = true
	gen := s.gen

	s.transcript = append(s.transcript, entity.ChatMessage{
		ID:        uuid.NewString(),
		Role:      entity.RoleUser,
		Content:   text,
		Timestamp: time.Now(),
	})

	chatCtx := entity.ChatContext{
		Severity:   s.context.Severity,
		Problem:    s.context.Problem,
		Symptoms:   s.context.Symptoms,
		Suggestion: s.suggestion,
	}
	s.mu.Unlock()

	reply, err := s.assistant.Chat(ctx, text, chatCtx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.chatPending = false
	if s.gen != gen {
		// Session was reset while the reply was in flight; the transcript it
		// belonged to is gone.
		return nil, nil
	}

	content := reply
	if err != nil {
		s.log.Warnf("Chat request failed: %+v", err)
		content = chatFallbackReply
	}

	msg := entity.ChatMessage{
		ID:        uuid.NewString(),
		Role:      entity.RoleAssistant,
		Content:   content,
		Timestamp: time.Now(),
	}
	s.transcript = append(s.transcript, msg)
	return &msg, nil
}
