package handler

import (
	"errors"
	"net/http"

	"ai-medical-assistant/internal/converter"
	"ai-medical-assistant/internal/usecase"
	"ai-medical-assistant/pkg/response"
)

type DirectoryHandler struct {
	loader *usecase.DirectoryLoader
}

func NewDirectoryHandler(loader *usecase.DirectoryLoader) *DirectoryHandler {
	return &DirectoryHandler{loader: loader}
}

// GetDirectory serves both reference lists plus the default selections.
// The first request triggers the load; once loaded the lists are served
// from memory for the rest of the process lifetime.
func (h *DirectoryHandler) GetDirectory(w http.ResponseWriter, r *http.Request) {
	err := h.loader.Load(r.Context())
	if err != nil && !errors.Is(err, usecase.ErrRequestInFlight) {
		response.BadGateway(w, "Failed to fetch initial data")
		return
	}

	response.Success(w, http.StatusOK, "Directory retrieved successfully", converter.DirectorySnapshotToResponse(h.loader.Snapshot()))
}
