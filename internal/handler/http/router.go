package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/workfriar/timesheet-backend-go/internal/handler/http/middleware"
	"github.com/workfriar/timesheet-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	frontendURL string,
	env string,
	authHandler AuthHandler,
	calendarHandler CalendarHandler,
	projectHandler ProjectHandler,
	timesheetHandler TimesheetHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workfriar-timesheet"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/login/oauth", func(r chi.Router) {
				r.Get("/google", authHandler.LoginWithGoogle)
			})
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})
		})

		// SSE streams authenticate with their own short-lived token
		r.Get("/notifications/stream", timesheetHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/calendar", func(r chi.Router) {
				r.Get("/weeks", calendarHandler.WeekCatalog)
				r.Get("/weeks/{index}", calendarHandler.Window)
				r.Get("/holidays", calendarHandler.Holidays)
			})

			r.Get("/projects", projectHandler.List)

			r.Route("/timesheets", func(r chi.Router) {
				r.Get("/", timesheetHandler.WeekView)
				r.Post("/save", timesheetHandler.Save)
				r.Post("/submit", timesheetHandler.Submit)
				r.Delete("/{id}", timesheetHandler.DeleteRow)
			})

			// Manager only
			r.Route("/approvals", func(r chi.Router) {
				r.Use(middleware.ReviewerOnly)
				r.Get("/", timesheetHandler.ApprovalList)
				r.Post("/{id}/review", timesheetHandler.Review)
			})

			r.Get("/dashboard", timesheetHandler.Dashboard)
			r.Get("/notifications/sse-token", timesheetHandler.SSEToken)
		})
	})
	return r
}
