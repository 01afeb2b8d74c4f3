package usecase

import (
	"context"

	"ai-medical-assistant/internal/domain/entity"
)

// Gateway interfaces are defined on the consumer side so the controllers
// can be exercised against fakes without any transport in between.

// AssistantGateway is the consultation assistant service: treatment
// suggestions and context-scoped follow-up chat.
type AssistantGateway interface {
	Suggest(ctx context.Context, cc entity.ConsultationContext) (string, error)
	Chat(ctx context.Context, message string, chatCtx entity.ChatContext) (string, error)
}

// DirectoryGateway serves the read-only doctor and patient reference lists.
type DirectoryGateway interface {
	ListDoctors(ctx context.Context) ([]entity.Doctor, error)
	ListPatients(ctx context.Context) ([]entity.Patient, error)
}

// SlotGateway produces ranked candidate slots for a scheduling query.
type SlotGateway interface {
	SuggestSlots(ctx context.Context, q entity.SchedulingQuery) (entity.SlotSuggestion, error)
}

// Booker confirms a booking for one suggested slot. Whether the
// confirmation is simulated or backed by a real service is invisible to
// the session state machine.
type Booker interface {
	Book(ctx context.Context, slot entity.SuggestedSlot) error
}
