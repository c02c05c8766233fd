package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hadirhq/hadir-backend-go/internal/handler/http/middleware"
	"github.com/hadirhq/hadir-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	attendanceHandler AttendanceHandler,
	announcementHandler AnnouncementHandler,
	dashboardHandler DashboardHandler,
	cronHandler CronHandler,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hadir-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Scheduler triggers authenticate with their own shared secret,
		// not a user token.
		r.Route("/cron", func(r chi.Router) {
			r.Post("/auto-clockout", cronHandler.AutoClockOut)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/attendances", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole("admin", "hr"))
					r.Get("/", attendanceHandler.List)
					r.Get("/{id}", attendanceHandler.Get)
				})
			})

			r.Route("/announcements", func(r chi.Router) {
				r.Get("/", announcementHandler.List)
				r.Get("/{id}", announcementHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole("admin", "hr"))
					r.Post("/", announcementHandler.Create)
					r.Put("/{id}", announcementHandler.Update)
					r.Delete("/{id}", announcementHandler.Delete)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/birthdays", dashboardHandler.UpcomingBirthdays)
			})
		})
	})
	return r
}
