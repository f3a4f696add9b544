package http

import (
	"net/http"

	"github.com/esbreenn/clinica-turnos/internal/delivery/http/handler"
	"github.com/esbreenn/clinica-turnos/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	patientHandler      *handler.PatientHandler
	appointmentHandler  *handler.AppointmentHandler
	referenceHandler    *handler.ReferenceHandler
	reportHandler       *handler.ReportHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	referenceHandler *handler.ReferenceHandler,
	reportHandler *handler.ReportHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	requestIDMiddleware *middleware.RequestIDMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		patientHandler:      patientHandler,
		appointmentHandler:  appointmentHandler,
		referenceHandler:    referenceHandler,
		reportHandler:       reportHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		requestIDMiddleware: requestIDMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Staff routes (any authenticated role)
	staff := api.PathPrefix("").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)

	// Patients
	staff.HandleFunc("/pacientes", r.patientHandler.List).Methods(http.MethodGet)
	staff.HandleFunc("/pacientes", r.patientHandler.Create).Methods(http.MethodPost)
	staff.HandleFunc("/pacientes/{id:[0-9]+}", r.patientHandler.Get).Methods(http.MethodGet)
	staff.HandleFunc("/pacientes/{id:[0-9]+}", r.patientHandler.Update).Methods(http.MethodPut)

	// Reference lists, static paths before the {id} turno routes
	staff.HandleFunc("/turnos/profesionales", r.referenceHandler.Professionals).Methods(http.MethodGet)
	staff.HandleFunc("/turnos/servicios", r.referenceHandler.Services).Methods(http.MethodGet)
	staff.HandleFunc("/turnos/sucursales", r.referenceHandler.Branches).Methods(http.MethodGet)

	// Appointments
	staff.HandleFunc("/turnos", r.appointmentHandler.List).Methods(http.MethodGet)
	staff.HandleFunc("/turnos", r.appointmentHandler.Create).Methods(http.MethodPost)
	staff.HandleFunc("/turnos/{id:[0-9]+}", r.appointmentHandler.Reschedule).Methods(http.MethodPut)
	staff.HandleFunc("/turnos/{id:[0-9]+}/estado", r.appointmentHandler.SetStatus).Methods(http.MethodPatch)

	// Reports
	staff.HandleFunc("/reportes/turnos-por-paciente", r.reportHandler.AppointmentsPerPatient).Methods(http.MethodGet)
	staff.HandleFunc("/reportes/pacientes-inactivos", r.reportHandler.InactivePatients).Methods(http.MethodGet)
	staff.HandleFunc("/reportes/turnos-por-profesional", r.reportHandler.AppointmentsPerProfessional).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/pacientes/{id:[0-9]+}", r.patientHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/turnos/{id:[0-9]+}", r.appointmentHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/auth/users", r.authHandler.CreateUser).Methods(http.MethodPost)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id:[0-9]+}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	r.router.Use(r.requestIDMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
