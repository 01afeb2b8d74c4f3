package usecase

import (
	"context"
	"errors"
	"sync"

	"ai-medical-assistant/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

var (
	// ErrRequestInFlight rejects any call issued while the controller in
	// question already has an outstanding request of the same kind. Callers
	// are expected to disable the triggering control rather than retry.
	ErrRequestInFlight = errors.New("a request is already in flight")

	ErrIncompleteContext = errors.New("severity, problem and symptoms are all required")
	ErrNoSuggestion      = errors.New("no suggestion has been produced yet")
)

// User-facing copy. Validation and transport failures surface these instead
// of raw error text.
const (
	msgFillAllFields    = "Please fill in all fields"
	msgSuggestionFailed = "Failed to fetch suggestion. Please try again."
)

type ConsultationState string

const (
	ConsultationIdle       ConsultationState = "idle"
	ConsultationRequesting ConsultationState = "requesting"
	ConsultationSuggested  ConsultationState = "suggested"
)

// ConsultationSession owns the symptom-intake workflow: the complaint being
// edited, the suggestion produced for it, and the follow-up transcript. It
// is the sole issuer of suggest and chat requests for its session.
type ConsultationSession struct {
	mu        sync.Mutex
	assistant AssistantGateway
	log       *logrus.Logger

	state      ConsultationState
	context    entity.ConsultationContext
	suggestion string
	userErr    string
	transcript []entity.ChatMessage

	// chatPending is the chat sub-flow's own in-flight guard. gen advances
	// whenever the context/suggestion pair is invalidated (reset or a new
	// submit), so a completion from the previous pair is dropped on arrival.
	chatPending bool
	gen         int
}

func NewConsultationSession(assistant AssistantGateway, log *logrus.Logger) *ConsultationSession {
	return &ConsultationSession{
		assistant: assistant,
		log:       log,
		state:     ConsultationIdle,
	}
}

// Submit validates the complaint and requests a suggestion for it. A valid
// submit invalidates everything tied to the previous context/suggestion
// pair (suggestion, error, transcript) before the request goes out; the
// context fields themselves persist so the chat sub-flow can carry them.
func (s *ConsultationSession) Submit(ctx context.Context, cc entity.ConsultationContext) (string, error) {
	s.mu.Lock()
	if s.state == ConsultationRequesting {
		s.mu.Unlock()
		return "", ErrRequestInFlight
	}
	if !cc.Complete() {
		s.userErr = msgFillAllFields
		s.mu.Unlock()
		return "", ErrIncompleteContext
	}

	s.context = cc
	s.suggestion = ""
	s.userErr = ""
	s.transcript = nil
	s.gen++
	s.state = ConsultationRequesting
	gen := s.gen
	s.mu.Unlock()

	suggestion, err := s.assistant.Suggest(ctx, cc)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		// Session was reset while the request was in flight; drop the result.
		return "", err
	}
	if err != nil {
		s.log.Warnf("Suggestion request failed: %+v", err)
		s.userErr = msgSuggestionFailed
		s.state = ConsultationIdle
		return "", err
	}

	s.suggestion = suggestion
	s.state = ConsultationSuggested
	return suggestion, nil
}

// Reset clears the whole session unconditionally: context, suggestion,
// error and transcript. Always available, in any state.
func (s *ConsultationSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.state = ConsultationIdle
	s.context = entity.ConsultationContext{}
	s.suggestion = ""
	s.userErr = ""
	s.transcript = nil
	s.chatPending = false
}

// ConsultationSnapshot is a point-in-time copy of the session for rendering.
type ConsultationSnapshot struct {
	State      ConsultationState
	Context    entity.ConsultationContext
	Suggestion string
	Error      string
	Transcript []entity.ChatMessage
}

func (s *ConsultationSession) Snapshot() ConsultationSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	transcript := make([]entity.ChatMessage, len(s.transcript))
	copy(transcript, s.transcript)

	return ConsultationSnapshot{
		State:      s.state,
		Context:    s.context,
		Suggestion: s.suggestion,
		Error:      s.userErr,
		Transcript: transcript,
	}
}
