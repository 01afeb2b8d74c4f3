package entity

import "time"

// Doctor is a read-only directory record served by the scheduler service.
// Loaded once per session and never mutated locally.
type Doctor struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Specialty           string   `json:"specialty"`
	Availability        []string `json:"availability,omitempty"`
	AvgConsultationTime *int     `json:"avgConsultationTime,omitempty"`
}

// PatientPriority grades how urgently a patient should be seen.
type PatientPriority string

const (
	PriorityUrgent  PatientPriority = "urgent"
	PriorityChronic PatientPriority = "chronic"
	PriorityRoutine PatientPriority = "routine"
)

// Patient is a read-only directory record, same lifecycle as Doctor.
type Patient struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Priority         *PatientPriority `json:"priority,omitempty"`
	LastAppointment  *time.Time       `json:"last_appointment,omitempty"`
	FrequentBookings []string         `json:"frequentBookings,omitempty"`
}
