package http

import (
	"net/http"

	"ai-medical-assistant/internal/delivery/http/handler"
	"ai-medical-assistant/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	consultationHandler *handler.ConsultationHandler
	scheduleHandler     *handler.ScheduleHandler
	directoryHandler    *handler.DirectoryHandler
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	consultationHandler *handler.ConsultationHandler,
	scheduleHandler *handler.ScheduleHandler,
	directoryHandler *handler.DirectoryHandler,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		consultationHandler: consultationHandler,
		scheduleHandler:     scheduleHandler,
		directoryHandler:    directoryHandler,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Doctor/patient reference lists
	api.HandleFunc("/directory", r.directoryHandler.GetDirectory).Methods(http.MethodGet)

	// Consultation workflow (symptom intake + follow-up chat)
	consultations := api.PathPrefix("/consultations").Subrouter()
	consultations.HandleFunc("", r.consultationHandler.CreateSession).Methods(http.MethodPost)
	consultations.HandleFunc("/{id}", r.consultationHandler.GetSession).Methods(http.MethodGet)
	consultations.HandleFunc("/{id}/suggestion", r.consultationHandler.Submit).Methods(http.MethodPost)
	consultations.HandleFunc("/{id}/chat", r.consultationHandler.Ask).Methods(http.MethodPost)
	consultations.HandleFunc("/{id}/reset", r.consultationHandler.Reset).Methods(http.MethodPost)

	// Scheduling workflow (slot suggestions + booking)
	schedules := api.PathPrefix("/schedules").Subrouter()
	schedules.HandleFunc("", r.scheduleHandler.CreateSession).Methods(http.MethodPost)
	schedules.HandleFunc("/{id}", r.scheduleHandler.GetSession).Methods(http.MethodGet)
	schedules.HandleFunc("/{id}/slots", r.scheduleHandler.SuggestSlots).Methods(http.MethodPost)
	schedules.HandleFunc("/{id}/booking", r.scheduleHandler.Book).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
