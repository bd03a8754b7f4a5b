package http

import (
	"log/slog"
	"os"

	"github.com/chulcheck/attendance-backend-go/internal/handler/http/middleware"
	"github.com/chulcheck/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	attendanceHandler AttendanceHandler,
	employeeHandler EmployeeHandler,
	statsHandler StatsHandler,
	adminHandler AdminHandler,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/link", attendanceHandler.MintLink)
			r.Post("/verify", attendanceHandler.Verify)
			r.Post("/submit", attendanceHandler.Submit)
			r.Get("/", attendanceHandler.ListDay)

			// Destructive and live-feed endpoints require an admin session
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AdminRequired(jwtService.JWTAuth()))
				r.Delete("/", attendanceHandler.DeleteDay)
				r.Get("/stream", attendanceHandler.Stream)
			})
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Post("/search", employeeHandler.Search)
			r.Post("/search-by-name", employeeHandler.SearchByName)
		})

		r.Get("/stats", statsHandler.GetMonthly)

		r.Post("/admin/auth", adminHandler.Auth)
	})

	return r
}
