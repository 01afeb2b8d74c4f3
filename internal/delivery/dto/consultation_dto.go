package dto

import "time"

// Request DTOs

type SubmitConsultationRequest struct {
	Severity string `json:"severity" validate:"required,oneof=mild moderate severe critical"`
	Problem  string `json:"problem" validate:"required"`
	Symptoms string `json:"symptoms" validate:"required"`
}

// AskRequest carries one follow-up question. Message is deliberately not
// tagged required: a blank question is a silent no-op, not a 400.
type AskRequest struct {
	Message string `json:"message"`
}

// Response DTOs

type ChatMessageResponse struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type ConsultationSessionResponse struct {
	SessionID  string                `json:"session_id"`
	State      string                `json:"state"`
	Severity   string                `json:"severity,omitempty"`
	Problem    string                `json:"problem,omitempty"`
	Symptoms   string                `json:"symptoms,omitempty"`
	Suggestion string                `json:"suggestion,omitempty"`
	Error      string                `json:"error,omitempty"`
	Transcript []ChatMessageResponse `json:"transcript"`
}
