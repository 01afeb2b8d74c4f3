package entity

import "time"

// SchedulingQuery is the input of one slot-suggestion request. DoctorID and
// PatientID must reference loaded directory entries; Problem and Date are
// optional and omitted from the wire request when unset.
type SchedulingQuery struct {
	DoctorID  string
	PatientID string
	Problem   string
	Date      string // calendar date, YYYY-MM-DD
}

// SuggestedSlot is one candidate appointment instant. The optional fields
// are ranking metadata supplied by the scheduler service.
type SuggestedSlot struct {
	Datetime          time.Time `json:"datetime"`
	Confidence        *float64  `json:"confidence,omitempty"`
	Reasoning         string    `json:"reasoning,omitempty"`
	EstimatedDuration *int      `json:"estimatedDuration,omitempty"`
	IsFrequent        bool      `json:"isFrequent,omitempty"`
}

// SlotSuggestion is the full result of one slot-suggestion request. Slots
// are ordered highest preference first; the sequence is replaced wholesale
// by each new request.
type SlotSuggestion struct {
	Slots     []SuggestedSlot
	Reasoning string
}
