package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"ai-medical-assistant/internal/converter"
	"ai-medical-assistant/internal/delivery/dto"
	"ai-medical-assistant/internal/domain/entity"
	"ai-medical-assistant/internal/usecase"
	"ai-medical-assistant/pkg/response"
	"ai-medical-assistant/pkg/validator"

	"github.com/gorilla/mux"
)

type ScheduleHandler struct {
	manager   *usecase.SchedulingManager
	validator *validator.CustomValidator
}

func NewScheduleHandler(manager *usecase.SchedulingManager, validator *validator.CustomValidator) *ScheduleHandler {
	return &ScheduleHandler{
		manager:   manager,
		validator: validator,
	}
}

func (h *ScheduleHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	id, sess := h.manager.Create()
	response.Success(w, http.StatusCreated, "Scheduling session created", converter.SchedulingSnapshotToResponse(id, sess.Snapshot()))
}

func (h *ScheduleHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	sess, err := h.manager.Get(id)
	if err != nil {
		response.NotFound(w, "Scheduling session not found")
		return
	}

	response.Success(w, http.StatusOK, "Scheduling session retrieved", converter.SchedulingSnapshotToResponse(id, sess.Snapshot()))
}

func (h *ScheduleHandler) SuggestSlots(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	sess, err := h.manager.Get(id)
	if err != nil {
		response.NotFound(w, "Scheduling session not found")
		return
	}

	var req dto.SuggestSlotsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	_, err = sess.RequestSlots(r.Context(), entity.SchedulingQuery{
		DoctorID:  req.DoctorID,
		PatientID: req.PatientID,
		Problem:   req.Problem,
		Date:      req.Date,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingSelection):
			response.Error(w, http.StatusBadRequest, "Please select both doctor and patient", nil)
		case errors.Is(err, usecase.ErrUnknownDoctor), errors.Is(err, usecase.ErrUnknownPatient):
			response.Error(w, http.StatusBadRequest, "Selected doctor or patient is unknown", nil)
		case errors.Is(err, usecase.ErrRequestInFlight):
			response.Conflict(w, "A slot request is already in progress")
		default:
			response.BadGateway(w, "Failed to get suggestions")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slot suggestions retrieved successfully", converter.SchedulingSnapshotToResponse(id, sess.Snapshot()))
}

func (h *ScheduleHandler) Book(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	sess, err := h.manager.Get(id)
	if err != nil {
		response.NotFound(w, "Scheduling session not found")
		return
	}

	var req dto.BookSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	at, err := time.Parse(time.RFC3339, req.Slot)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Slot must be an RFC3339 datetime", nil)
		return
	}

	if err := sess.Book(r.Context(), at); err != nil {
		switch {
		case errors.Is(err, usecase.ErrSlotNotOffered):
			response.Conflict(w, "Slot is not among the suggested slots")
		case errors.Is(err, usecase.ErrAlreadyBooked):
			response.Conflict(w, "A slot has already been booked for this query")
		case errors.Is(err, usecase.ErrRequestInFlight):
			response.Conflict(w, "A booking is already in progress")
		default:
			response.BadGateway(w, "Failed to book appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment booked successfully", converter.SchedulingSnapshotToResponse(id, sess.Snapshot()))
}
