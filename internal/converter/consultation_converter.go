package converter

import (
	"ai-medical-assistant/internal/delivery/dto"
	"ai-medical-assistant/internal/domain/entity"
	"ai-medical-assistant/internal/usecase"
)

// ChatMessagesToResponses converts a transcript to response DTOs, preserving
// append order.
func ChatMessagesToResponses(messages []entity.ChatMessage) []dto.ChatMessageResponse {
	responses := make([]dto.ChatMessageResponse, len(messages))
	for i, m := range messages {
		responses[i] = dto.ChatMessageResponse{
			ID:        m.ID,
			Role:      string(m.Role),
			Content:   m.Content,
			Timestamp: m.Timestamp,
		}
	}
	return responses
}

// ConsultationSnapshotToResponse converts a session snapshot to its response DTO.
func ConsultationSnapshotToResponse(sessionID string, snap usecase.ConsultationSnapshot) *dto.ConsultationSessionResponse {
	return &dto.ConsultationSessionResponse{
		SessionID:  sessionID,
		State:      string(snap.State),
		Severity:   string(snap.Context.Severity),
		Problem:    snap.Context.Problem,
		Symptoms:   snap.Context.Symptoms,
		Suggestion: snap.Suggestion,
		Error:      snap.Error,
		Transcript: ChatMessagesToResponses(snap.Transcript),
	}
}
