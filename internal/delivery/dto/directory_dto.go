package dto

import "time"

// Response DTOs

type DoctorResponse struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Specialty           string   `json:"specialty"`
	Availability        []string `json:"availability,omitempty"`
	AvgConsultationTime *int     `json:"avg_consultation_time,omitempty"`
}

type PatientResponse struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Priority         string     `json:"priority,omitempty"`
	LastAppointment  *time.Time `json:"last_appointment,omitempty"`
	FrequentBookings []string   `json:"frequent_bookings,omitempty"`
}

type DirectoryResponse struct {
	State            string            `json:"state"`
	Doctors          []DoctorResponse  `json:"doctors"`
	Patients         []PatientResponse `json:"patients"`
	DefaultDoctorID  string            `json:"default_doctor_id,omitempty"`
	DefaultPatientID string            `json:"default_patient_id,omitempty"`
	Error            string            `json:"error,omitempty"`
}
