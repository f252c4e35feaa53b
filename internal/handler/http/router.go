package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/serenus-health/wellness-admin-go/internal/domain/user"
	"github.com/serenus-health/wellness-admin-go/internal/handler/http/middleware"
	"github.com/serenus-health/wellness-admin-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	companyHandler CompanyHandler,
	planHandler PlanHandler,
	userHandler UserHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "serenus-admin"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
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
			r.Post("/logout", authHandler.Logout)
			r.Post("/register", userHandler.Create)

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

				r.Get("/me", authHandler.Me)
				r.Put("/profile", authHandler.UpdateProfile)
				r.Post("/checkup", authHandler.SaveCheckup)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/companies", func(r chi.Router) {

				// Portal operator only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionCompanyManage))
					r.Post("/", companyHandler.Register)
					r.Put("/{id}", companyHandler.Update)
					r.Delete("/{id}", companyHandler.Delete)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionCompanyView))
					r.Get("/", companyHandler.List)
					r.Get("/{id}", companyHandler.GetByID)
				})

				r.Route("/{id}/checkup-settings", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.PermissionSettingsView)).
						Get("/", companyHandler.GetCheckupSettings)
					r.With(middleware.RequirePermission(user.PermissionSettingsManage)).
						Put("/", companyHandler.SaveCheckupSettings)
				})

				r.Route("/{id}/recommendations", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.PermissionSettingsView)).
						Get("/", companyHandler.ListRecommendations)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionSettingsManage))
						r.Post("/", companyHandler.SaveRecommendation)
						r.Put("/", companyHandler.SaveRecommendation)
						r.Delete("/{recommendationID}", companyHandler.DeleteRecommendation)
					})
				})
			})

			r.Route("/plans", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionPlanView)).
					Get("/", planHandler.List)

				// Portal operator only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireSuperAdmin)
					r.Post("/", planHandler.Create)
					r.Put("/{id}", planHandler.Update)
					r.Post("/{id}/toggle", planHandler.ToggleStatus)
				})
			})

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionUserManage))
				r.Get("/", userHandler.List)
				r.Post("/", userHandler.Create)
				r.Get("/{id}", userHandler.GetByID)
				r.Put("/{id}", userHandler.Update)
				r.Post("/{id}/toggle", userHandler.ToggleStatus)
				r.Delete("/{id}", userHandler.Delete)
			})
		})
	})
	return r
}
