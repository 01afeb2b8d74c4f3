package converter

import (
	"ai-medical-assistant/internal/delivery/dto"
	"ai-medical-assistant/internal/domain/entity"
	"ai-medical-assistant/internal/usecase"
)

// SuggestedSlotToResponse converts one candidate slot to its response DTO.
func SuggestedSlotToResponse(slot *entity.SuggestedSlot) *dto.SuggestedSlotResponse {
	if slot == nil {
		return nil
	}

	return &dto.SuggestedSlotResponse{
		Datetime:          slot.Datetime,
		Confidence:        slot.Confidence,
		Reasoning:         slot.Reasoning,
		EstimatedDuration: slot.EstimatedDuration,
		IsFrequent:        slot.IsFrequent,
	}
}

// SuggestedSlotsToResponses converts a slot sequence, preserving the
// service's preference order.
func SuggestedSlotsToResponses(slots []entity.SuggestedSlot) []dto.SuggestedSlotResponse {
	responses := make([]dto.SuggestedSlotResponse, len(slots))
	for i := range slots {
		responses[i] = *SuggestedSlotToResponse(&slots[i])
	}
	return responses
}

// SchedulingSnapshotToResponse converts a session snapshot to its response DTO.
func SchedulingSnapshotToResponse(sessionID string, snap usecase.SchedulingSnapshot) *dto.SchedulingSessionResponse {
	return &dto.SchedulingSessionResponse{
		SessionID:    sessionID,
		State:        string(snap.State),
		Slots:        SuggestedSlotsToResponses(snap.Slots),
		Reasoning:    snap.Reasoning,
		Advisory:     snap.Advisory,
		Error:        snap.Error,
		SelectedSlot: SuggestedSlotToResponse(snap.Booking.SelectedSlot),
		Confirmed:    snap.Booking.Confirmed,
	}
}
