package http

import (
	"net/http"

	"doctor-triage/internal/delivery/http/handler"
	"doctor-triage/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	triageHandler     *handler.TriageHandler
	doctorHandler     *handler.DoctorHandler
	hospitalHandler   *handler.HospitalHandler
	loggingMiddleware *middleware.LoggingMiddleware
	corsMiddleware    *middleware.CORSMiddleware
}

func NewRouter(
	triageHandler *handler.TriageHandler,
	doctorHandler *handler.DoctorHandler,
	hospitalHandler *handler.HospitalHandler,
	loggingMiddleware *middleware.LoggingMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter().UseEncodedPath(),
		triageHandler:     triageHandler,
		doctorHandler:     doctorHandler,
		hospitalHandler:   hospitalHandler,
		loggingMiddleware: loggingMiddleware,
		corsMiddleware:    corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet, http.MethodOptions)

	// Triage
	api.HandleFunc("/triage", r.triageHandler.Classify).Methods(http.MethodPost, http.MethodOptions)

	// Doctor directory
	api.HandleFunc("/doctors", r.doctorHandler.ListDoctors).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/locations", r.doctorHandler.GetLocations).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/specializations", r.doctorHandler.GetSpecializations).Methods(http.MethodGet, http.MethodOptions)

	// Hospitals; search is registered before the name route, names may contain %2F
	api.HandleFunc("/hospitals/search", r.hospitalHandler.SearchHospitals).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/hospitals/{name}", r.hospitalHandler.GetHospital).Methods(http.MethodGet, http.MethodOptions)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
