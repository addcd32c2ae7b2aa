package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

// RouterOptions carries the shell settings that come from configuration.
type RouterOptions struct {
	Logger         *slog.Logger
	LogLevel       slog.Level
	AllowedOrigins []string
}

func NewRouter(
	opts RouterOptions,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	reportHandler ReportHandler,
	healthHandler HealthHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/ping"))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/employees", http.StatusFound)
	})

	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/healthz/stream", healthHandler.Stream)

	r.Route("/employees", func(r chi.Router) {
		r.Get("/", employeeHandler.ListEmployees)
		r.Post("/", employeeHandler.CreateEmployee)

		r.Route("/{id}", func(r chi.Router) {
			r.Post("/delete", employeeHandler.DeleteEmployee)
			r.Get("/summary", employeeHandler.GetSummary)
		})
	})

	r.Route("/attendance", func(r chi.Router) {
		r.Get("/", attendanceHandler.ShowAttendance)
		r.Post("/", attendanceHandler.MarkAttendance)
		r.Get("/summary", reportHandler.AttendanceSummary)
		r.Get("/export.xlsx", reportHandler.ExportAttendance)
	})

	return r
}
