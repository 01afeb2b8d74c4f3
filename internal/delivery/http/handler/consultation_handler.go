package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"ai-medical-assistant/internal/converter"
	"ai-medical-assistant/internal/delivery/dto"
	"ai-medical-assistant/internal/domain/entity"
	"ai-medical-assistant/internal/usecase"
	"ai-medical-assistant/pkg/response"
	"ai-medical-assistant/pkg/validator"

	"github.com/gorilla/mux"
)

type ConsultationHandler struct {
	manager   *usecase.ConsultationManager
	validator *validator.CustomValidator
}

func NewConsultationHandler(manager *usecase.ConsultationManager, validator *validator.CustomValidator) *ConsultationHandler {
	return &ConsultationHandler{
		manager:   manager,
		validator: validator,
	}
}

func (h *ConsultationHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	id, sess := h.manager.Create()
	response.Success(w, http.StatusCreated, "Consultation session created", converter.ConsultationSnapshotToResponse(id, sess.Snapshot()))
}

func (h *ConsultationHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	sess, err := h.manager.Get(id)
	if err != nil {
		response.NotFound(w, "Consultation session not found")
		return
	}

	response.Success(w, http.StatusOK, "Consultation session retrieved", converter.ConsultationSnapshotToResponse(id, sess.Snapshot()))
}

func (h *ConsultationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	sess, err := h.manager.Get(id)
	if err != nil {
		response.NotFound(w, "Consultation session not found")
		return
	}

	var req dto.SubmitConsultationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	_, err = sess.Submit(r.Context(), entity.ConsultationContext{
		Severity: entity.Severity(req.Severity),
		Problem:  req.Problem,
		Symptoms: req.Symptoms,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrIncompleteContext):
			response.Error(w, http.StatusBadRequest, "Please fill in all fields", nil)
		case errors.Is(err, usecase.ErrRequestInFlight):
			response.Conflict(w, "A suggestion request is already in progress")
		default:
			response.BadGateway(w, "Failed to fetch suggestion")
		}
		return
	}

	response.Success(w, http.StatusOK, "Suggestion retrieved successfully", converter.ConsultationSnapshotToResponse(id, sess.Snapshot()))
}

func (h *ConsultationHandler) Ask(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	sess, err := h.manager.Get(id)
	if err != nil {
		response.NotFound(w, "Consultation session not found")
		return
	}

	var req dto.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	// A transport failure is absorbed into the transcript as a fallback
	// reply, so Ask only errors on local conditions.
	_, err = sess.Ask(r.Context(), req.Message)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoSuggestion):
			response.Conflict(w, "Chat is available once a suggestion exists")
		case errors.Is(err, usecase.ErrRequestInFlight):
			response.Conflict(w, "A follow-up request is already in progress")
		default:
			response.InternalServerError(w, "Failed to process message")
		}
		return
	}

	response.Success(w, http.StatusOK, "Message processed", converter.ConsultationSnapshotToResponse(id, sess.Snapshot()))
}

func (h *ConsultationHandler) Reset(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	sess, err := h.manager.Get(id)
	if err != nil {
		response.NotFound(w, "Consultation session not found")
		return
	}

	sess.Reset()
	response.Success(w, http.StatusOK, "Consultation session reset", converter.ConsultationSnapshotToResponse(id, sess.Snapshot()))
}
