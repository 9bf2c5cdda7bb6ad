package http

import (
	"net/http"
	"regexp"
	"slices"

	"hospital-admin/internal/delivery/http/handler"
	"hospital-admin/internal/delivery/http/middleware"
	"hospital-admin/internal/infrastructure/metrics"
	"hospital-admin/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth         *handler.AuthHandler
	Registration *handler.RegistrationHandler
	Doctor       *handler.DoctorHandler
	Patient      *handler.PatientHandler
	Record       *handler.RecordHandler
	Dashboard    *handler.DashboardHandler
	AuditLog     *handler.AuditLogHandler
	Schema       *handler.SchemaHandler
	Health       *handler.HealthHandler
}

type Router struct {
	router         *mux.Router
	log            *logrus.Logger
	handlers       Handlers
	authMiddleware *middleware.AuthMiddleware
	corsMiddleware *middleware.CORSMiddleware
	rateLimiter    *middleware.RateLimiter
}

func NewRouter(
	log *logrus.Logger,
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	rateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		router:         mux.NewRouter(),
		log:            log,
		handlers:       handlers,
		authMiddleware: authMiddleware,
		corsMiddleware: corsMiddleware,
		rateLimiter:    rateLimiter,
	}
}

func (r *Router) Setup() *mux.Router {
	h := r.handlers

	// Prometheus scrape endpoint, outside the versioned API
	r.router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", h.Health.Check).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", h.Auth.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", h.Auth.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", h.Auth.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", h.Auth.GetCurrentUser).Methods(http.MethodGet)

	// Pages (any signed-in user)
	pages := api.NewRoute().Subrouter()
	pages.Use(r.authMiddleware.Authenticate)
	pages.HandleFunc("/dashboard", h.Dashboard.GetSummary).Methods(http.MethodGet)
	pages.HandleFunc("/doctors", h.Doctor.ListDoctors).Methods(http.MethodGet)
	pages.HandleFunc("/patients", h.Patient.ListPatients).Methods(http.MethodGet)
	pages.HandleFunc("/cases", h.Record.ListCases).Methods(http.MethodGet)
	pages.HandleFunc("/appointments", h.Record.ListAppointments).Methods(http.MethodGet)
	pages.HandleFunc("/hospitalizations", h.Record.ListHospitalizations).Methods(http.MethodGet)
	pages.HandleFunc("/prescriptions", h.Record.ListPrescriptions).Methods(http.MethodGet)
	pages.HandleFunc("/schema", h.Schema.ListTables).Methods(http.MethodGet)
	pages.HandleFunc("/schema/{table}", h.Schema.GetTable).Methods(http.MethodGet)

	// Doctor only
	staff := api.NewRoute().Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(middleware.RequireDoctor)
	staff.HandleFunc("/registrations/doctors", h.Registration.RegisterDoctor).Methods(http.MethodPost)
	staff.HandleFunc("/registrations/patients", h.Registration.RegisterPatient).Methods(http.MethodPost)
	staff.HandleFunc("/audit-logs", h.AuditLog.SearchAuditLogs).Methods(http.MethodGet)
	staff.HandleFunc("/audit-logs/{id:[0-9]+}", h.AuditLog.GetAuditLog).Methods(http.MethodGet)

	r.router.Use(metrics.Middleware)
	r.router.Use(middleware.RequestLogger(r.log))
	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.rateLimiter.Handle)

	// mux drops a method mismatch once a later route under the same prefix matches its
	// prefix, so unmatched requests are resolved against the route table here.
	unmatched := middleware.RequestLogger(r.log)(r.corsMiddleware.Handle(r.unmatched()))
	r.router.NotFoundHandler = unmatched
	r.router.MethodNotAllowedHandler = unmatched

	return r.router
}

type routeMethods struct {
	path    *regexp.Regexp
	methods []string
}

// unmatched answers 405 with an Allow header when the path is served under other methods
// and 404 otherwise.
func (r *Router) unmatched() http.Handler {
	var table []routeMethods
	_ = r.router.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		methods, err := route.GetMethods()
		if err != nil {
			return nil
		}
		pattern, err := route.GetPathRegexp()
		if err != nil {
			return nil
		}
		table = append(table, routeMethods{path: regexp.MustCompile(pattern), methods: methods})
		return nil
	})

	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		var allowed []string
		for _, rm := range table {
			if !rm.path.MatchString(req.URL.Path) {
				continue
			}
			for _, m := range rm.methods {
				if !slices.Contains(allowed, m) {
					allowed = append(allowed, m)
				}
			}
		}
		if len(allowed) == 0 {
			response.NotFound(w, "Route not found")
			return
		}
		response.MethodNotAllowed(w, req.Method, allowed)
	})
}
