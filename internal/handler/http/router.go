package http

import (
	"log/slog"
	"os"

	"github.com/gestionobras/obras-backend-go/internal/handler/http/middleware"
	"github.com/gestionobras/obras-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	userHandler UserHandler,
	payrollHandler PayrollHandler,
	projectHandler ProjectHandler,
	worksiteHandler WorksiteHandler,
	materialHandler MaterialHandler,
	attendanceHandler AttendanceHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "obras-backend"),
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
			r.Post("/refresh", authHandler.RefreshToken)

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService))

				r.Post("/logout", authHandler.Logout)
				r.Post("/change-password", authHandler.ChangePassword)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/users", func(r chi.Router) {
				r.Post("/", userHandler.Create)
				r.Get("/me", userHandler.GetCurrent)
				r.Get("/{id}", userHandler.Get)
				r.Put("/{id}", userHandler.Update)
				r.Put("/{id}/role", userHandler.AssignRole)

				// Supervisor and architect only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManagementRole)
					r.Get("/", userHandler.List)
				})
			})

			// Payroll access is permission based and enforced in the
			// service, so workers holding individual grants get through.
			r.Route("/payroll", func(r chi.Router) {
				r.Get("/", payrollHandler.List)
				r.Get("/statistics", payrollHandler.Statistics)
				r.Post("/", payrollHandler.Create)
				r.Get("/{id}", payrollHandler.Get)
				r.Patch("/{id}", payrollHandler.Update)
				r.Delete("/{id}", payrollHandler.Delete)
				r.Post("/{id}/process", payrollHandler.Process)
				r.Post("/{id}/cancel", payrollHandler.Cancel)
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", projectHandler.List)
				r.Post("/", projectHandler.Create)
				r.Get("/{id}", projectHandler.Get)
				r.Put("/{id}", projectHandler.Update)
				r.Delete("/{id}", projectHandler.Delete)
			})

			r.Route("/worksites", func(r chi.Router) {
				r.Get("/", worksiteHandler.List)
				r.Post("/", worksiteHandler.Create)
				r.Get("/{id}", worksiteHandler.Get)
				r.Put("/{id}", worksiteHandler.Update)
				r.Delete("/{id}", worksiteHandler.Delete)
			})

			r.Route("/materials", func(r chi.Router) {
				r.Get("/", materialHandler.List)
				r.Post("/", materialHandler.Create)
				r.Get("/low-stock", materialHandler.ListLowStock)
				r.Get("/categories", materialHandler.ListCategories)
				r.Post("/categories", materialHandler.CreateCategory)
				r.Get("/suppliers", materialHandler.ListSuppliers)
				r.Post("/suppliers", materialHandler.CreateSupplier)
				r.Get("/{id}", materialHandler.Get)
				r.Put("/{id}", materialHandler.Update)
				r.Delete("/{id}", materialHandler.Delete)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", attendanceHandler.Create)
				r.Get("/me", attendanceHandler.ListMine)
				r.Get("/summary", attendanceHandler.Summary)
				r.Get("/{id}", attendanceHandler.Get)
				r.Put("/{id}", attendanceHandler.Update)
				r.Delete("/{id}", attendanceHandler.Delete)

				// Supervisor and architect only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManagementRole)
					r.Get("/", attendanceHandler.List)
				})
			})
		})
	})
	return r
}
