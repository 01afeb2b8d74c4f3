package entity

import (
	"strings"
	"time"
)

// Severity classifies how serious the patient rates the complaint. The set
// is closed; anything else is rejected before a request is issued.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
	SeverityCritical Severity = "critical"
)

// Valid reports whether s is one of the known severity levels.
func (s Severity) Valid() bool {
	switch s {
	case SeverityMild, SeverityModerate, SeveritySevere, SeverityCritical:
		return true
	}
	return false
}

// ConsultationContext is the structured complaint a suggestion is requested
// for. A suggestion and its follow-up transcript are valid for exactly one
// context.
type ConsultationContext struct {
	Severity Severity `json:"severity"`
	Problem  string   `json:"problem"`
	Symptoms string   `json:"symptoms"`
}

// Complete reports whether every field is filled in. An incomplete context
// must never reach the assistant service.
func (c ConsultationContext) Complete() bool {
	return c.Severity.Valid() &&
		strings.TrimSpace(c.Problem) != "" &&
		strings.TrimSpace(c.Symptoms) != ""
}

// ChatContext is the consultation context plus the suggestion it produced,
// sent along with every follow-up question.
type ChatContext struct {
	Severity   Severity `json:"severity"`
	Problem    string   `json:"problem"`
	Symptoms   string   `json:"symptoms"`
	Suggestion string   `json:"suggestion"`
}

// MessageRole describes who authored a chat message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// ChatMessage is one entry of a consultation transcript. Transcript order is
// append order; Timestamp is metadata only and never used for sorting.
type ChatMessage struct {
	ID        string      `json:"id"`
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
}
