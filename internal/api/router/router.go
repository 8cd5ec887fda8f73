package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/farouk24967/dashbord-genrator/internal/http/handlers"
	httpmiddleware "github.com/farouk24967/dashbord-genrator/internal/http/middleware"
	"github.com/farouk24967/dashbord-genrator/internal/inquiries"
	"github.com/farouk24967/dashbord-genrator/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	Pages              *handlers.Pages
	Workspaces         *handlers.WorkspaceHandler
	Patients           *handlers.PatientHandler
	Appointments       *handlers.AppointmentHandler
	Inquiries          *inquiries.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
	MaxLogoBytes       int64
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", healthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	// Marketing site
	if cfg.Pages != nil {
		r.Get("/", cfg.Pages.Home)
		r.Get("/features", cfg.Pages.Features)
		r.Get("/pricing", cfg.Pages.Pricing)
		r.Get("/about", cfg.Pages.About)
		r.Get("/contact", cfg.Pages.Contact)
	}

	// Demo application API
	r.Route("/api", func(api chi.Router) {
		if cfg.Inquiries != nil {
			api.Post("/contact", cfg.Inquiries.CreateInquiry)
		}

		if cfg.Workspaces == nil {
			return
		}

		api.Post("/workspaces", cfg.Workspaces.CreateWorkspace)
		api.Route("/workspaces/{workspaceID}", func(ws chi.Router) {
			ws.Get("/", cfg.Workspaces.GetWorkspace)
			ws.Delete("/", cfg.Workspaces.DeleteWorkspace)
			ws.Get("/dashboard", cfg.Workspaces.GetDashboard)
			ws.Post("/reset", cfg.Workspaces.ResetDemoData)

			maxLogo := cfg.MaxLogoBytes
			if maxLogo <= 0 {
				maxLogo = 2 << 20
			}
			ws.Put("/logo", cfg.Workspaces.UploadLogo(maxLogo))
			ws.Get("/logo", cfg.Workspaces.GetLogo)
			ws.Delete("/logo", cfg.Workspaces.DeleteLogo)

			if cfg.Patients != nil {
				ws.Route("/patients", func(p chi.Router) {
					p.Get("/", cfg.Patients.ListPatients)
					p.Post("/", cfg.Patients.CreatePatient)
					p.Put("/{patientID}", cfg.Patients.UpdatePatient)
					p.Delete("/{patientID}", cfg.Patients.DeletePatient)
				})
			}

			if cfg.Appointments != nil {
				ws.Route("/appointments", func(a chi.Router) {
					a.Get("/", cfg.Appointments.ListAppointments)
					a.Post("/", cfg.Appointments.CreateAppointment)
					a.Get("/{appointmentID}/draft", cfg.Appointments.GetEditDraft)
					a.Put("/{appointmentID}", cfg.Appointments.UpdateAppointment)
					a.Delete("/{appointmentID}", cfg.Appointments.DeleteAppointment)
				})
			}
		})
	})

	return r
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
