package http

import (
	"net/http"

	"smart-clinic-gateway/internal/delivery/http/handler"
	"smart-clinic-gateway/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                *mux.Router
	authHandler           *handler.AuthHandler
	bookingHandler        *handler.BookingHandler
	doctorHandler         *handler.DoctorHandler
	doctorScheduleHandler *handler.DoctorScheduleHandler
	appointmentHandler    *handler.AppointmentHandler
	patientHandler        *handler.PatientHandler
	auditLogHandler       *handler.AuditLogHandler
	authMiddleware        *middleware.AuthMiddleware
	corsMiddleware        *middleware.CORSMiddleware
	metricsHandler        http.Handler
}

func NewRouter(
	authHandler *handler.AuthHandler,
	bookingHandler *handler.BookingHandler,
	doctorHandler *handler.DoctorHandler,
	doctorScheduleHandler *handler.DoctorScheduleHandler,
	appointmentHandler *handler.AppointmentHandler,
	patientHandler *handler.PatientHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	metricsHandler http.Handler,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		authHandler:           authHandler,
		bookingHandler:        bookingHandler,
		doctorHandler:         doctorHandler,
		doctorScheduleHandler: doctorScheduleHandler,
		appointmentHandler:    appointmentHandler,
		patientHandler:        patientHandler,
		auditLogHandler:       auditLogHandler,
		authMiddleware:        authMiddleware,
		corsMiddleware:        corsMiddleware,
		metricsHandler:        metricsHandler,
	}
}

func (r *Router) Setup() *mux.Router {
	if r.metricsHandler != nil {
		r.router.Handle("/metrics", r.metricsHandler).Methods(http.MethodGet)
	}

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/register/doctor", r.authHandler.RegisterDoctor).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Doctor and clinic directory (public)
	api.HandleFunc("/doctors/{id:[0-9]+}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id:[0-9]+}/schedules", r.doctorScheduleHandler.GetSchedulesByDoctor).Methods(http.MethodGet)
	api.HandleFunc("/clinics", r.doctorHandler.GetAllClinics).Methods(http.MethodGet)
	api.HandleFunc("/clinics", r.doctorHandler.CreateClinic).Methods(http.MethodPost)

	// Booking page (protected); the submitter checks the patient role itself
	booking := api.PathPrefix("/booking").Subrouter()
	booking.Use(r.authMiddleware.Authenticate)
	booking.HandleFunc("/doctor", r.bookingHandler.SelectDoctor).Methods(http.MethodPut)
	booking.HandleFunc("/slot", r.bookingHandler.ResolveSlot).Methods(http.MethodGet)
	booking.HandleFunc("/bookable", r.bookingHandler.IsDateBookable).Methods(http.MethodGet)
	booking.HandleFunc("/dates", r.bookingHandler.BookableDates).Methods(http.MethodGet)
	booking.HandleFunc("", r.bookingHandler.SubmitBooking).Methods(http.MethodPost)

	// Appointments (protected)
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.HandleFunc("", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	appointments.Handle("/{id}/cancel", middleware.RequirePatient(http.HandlerFunc(r.appointmentHandler.CancelAppointment))).Methods(http.MethodPost)
	appointments.Handle("/{id}/status", middleware.RequireDoctor(http.HandlerFunc(r.appointmentHandler.UpdateStatus))).Methods(http.MethodPatch)

	// Patient profile (protected - patient only)
	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.Use(middleware.RequirePatient)
	patients.HandleFunc("/me", r.patientHandler.GetMyProfile).Methods(http.MethodGet)
	patients.HandleFunc("/me", r.patientHandler.UpdateMyProfile).Methods(http.MethodPut)

	// Doctor routes (protected - doctor only)
	api.Handle("/doctor/schedules", r.authMiddleware.Authenticate(
		middleware.RequireDoctor(http.HandlerFunc(r.doctorScheduleHandler.CreateSchedule)),
	)).Methods(http.MethodPost)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id:[0-9]+}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Preflight requests must match a route for the CORS middleware to run
	r.router.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
