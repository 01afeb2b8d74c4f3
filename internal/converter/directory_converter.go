package converter

import (
	"ai-medical-assistant/internal/delivery/dto"
	"ai-medical-assistant/internal/domain/entity"
	"ai-medical-assistant/internal/usecase"
)

// DoctorsToResponses converts directory doctor records to response DTOs.
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, d := range doctors {
		responses[i] = dto.DoctorResponse{
			ID:                  d.ID,
			Name:                d.Name,
			Specialty:           d.Specialty,
			Availability:        d.Availability,
			AvgConsultationTime: d.AvgConsultationTime,
		}
	}
	return responses
}

// PatientsToResponses converts directory patient records to response DTOs.
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i, p := range patients {
		priority := ""
		if p.Priority != nil {
			priority = string(*p.Priority)
		}
		responses[i] = dto.PatientResponse{
			ID:               p.ID,
			Name:             p.Name,
			Priority:         priority,
			LastAppointment:  p.LastAppointment,
			FrequentBookings: p.FrequentBookings,
		}
	}
	return responses
}

// DirectorySnapshotToResponse converts a loader snapshot to its response DTO.
func DirectorySnapshotToResponse(snap usecase.DirectorySnapshot) *dto.DirectoryResponse {
	return &dto.DirectoryResponse{
		State:            string(snap.State),
		Doctors:          DoctorsToResponses(snap.Doctors),
		Patients:         PatientsToResponses(snap.Patients),
		DefaultDoctorID:  snap.DefaultDoctorID,
		DefaultPatientID: snap.DefaultPatientID,
		Error:            snap.Error,
	}
}
