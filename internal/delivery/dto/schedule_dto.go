package dto

import "time"

// Request DTOs

type SuggestSlotsRequest struct {
	DoctorID  string `json:"doctor_id" validate:"required"`
	PatientID string `json:"patient_id" validate:"required"`
	Problem   string `json:"problem" validate:"omitempty"`
	Date      string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type BookSlotRequest struct {
	// Slot is the RFC3339 datetime of one of the currently suggested slots.
	Slot string `json:"slot" validate:"required"`
}

// Response DTOs

type SuggestedSlotResponse struct {
	Datetime          time.Time `json:"datetime"`
	Confidence        *float64  `json:"confidence,omitempty"`
	Reasoning         string    `json:"reasoning,omitempty"`
	EstimatedDuration *int      `json:"estimated_duration,omitempty"`
	IsFrequent        bool      `json:"is_frequent,omitempty"`
}

type SchedulingSessionResponse struct {
	SessionID    string                  `json:"session_id"`
	State        string                  `json:"state"`
	Slots        []SuggestedSlotResponse `json:"slots"`
	Reasoning    string                  `json:"reasoning,omitempty"`
	Advisory     string                  `json:"advisory,omitempty"`
	Error        string                  `json:"error,omitempty"`
	SelectedSlot *SuggestedSlotResponse  `json:"selected_slot,omitempty"`
	Confirmed    bool                    `json:"confirmed"`
}
