package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterOptions struct {
	Env         string
	CORSOrigins []string
	LogLevel    slog.Level
}

func NewRouter(
	opts RouterOptions,
	JWTService jwt.Service,
	settingsService settings.SettingsService,
	authHandler AuthHandler,
	settingsHandler SettingsHandler,
	employeeHandler EmployeeHandler,
	importHandler ImportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ksrtc-staffsync"),
		slog.String("version", "v1.0.0"),
		slog.String("env", opts.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	can := func(p user.Permission) func(http.Handler) http.Handler {
		return middleware.RequirePermission(settingsService, p)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/units", ListUnits)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired(JWTService))
				r.Post("/logout", authHandler.Logout)
				r.Get("/me", authHandler.Me)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", settingsHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/", settingsHandler.Replace)
					r.Post("/lists/{list}", settingsHandler.AddListItem)
					r.Delete("/lists/{list}/{item}", settingsHandler.DeleteListItem)
					r.Put("/mappings", settingsHandler.SetMapping)
					r.Post("/fields", settingsHandler.AddField)
					r.Patch("/fields/{key}/toggle", settingsHandler.ToggleField)
					r.Delete("/fields/{key}", settingsHandler.DeleteField)
					r.Patch("/features/{feature}/toggle", settingsHandler.ToggleFeature)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.With(can(user.PermissionEmployeeView)).Get("/", employeeHandler.ListEmployees)
				r.With(can(user.PermissionEmployeeView)).Get("/stats", employeeHandler.Stats)
				r.With(can(user.PermissionEmployeeEdit)).Get("/form", employeeHandler.FormDefaults)
				r.With(can(user.PermissionEmployeeExport)).Get("/export", employeeHandler.Export)
				r.With(can(user.PermissionEmployeeEdit)).Post("/", employeeHandler.CreateEmployee)
				r.With(can(user.PermissionEmployeeDelete)).Post("/bulk-delete", employeeHandler.BulkDelete)
				r.With(can(user.PermissionEmployeeTransfer)).Post("/transfer", employeeHandler.Transfer)

				r.Route("/{id}", func(r chi.Router) {
					r.With(can(user.PermissionEmployeeView)).Get("/", employeeHandler.GetEmployee)
					r.With(can(user.PermissionEmployeeEdit)).Put("/", employeeHandler.UpdateEmployee)
					r.With(can(user.PermissionEmployeeDelete)).Delete("/", employeeHandler.DeleteEmployee)
				})
			})

			r.Route("/imports", func(r chi.Router) {
				r.Get("/template", importHandler.Template)

				r.Group(func(r chi.Router) {
					r.Use(can(user.PermissionEmployeeImport))
					r.Post("/text", importHandler.ParseText)
					r.Post("/csv", importHandler.ParseCSV)
					r.Post("/confirm", importHandler.Confirm)
				})
			})
		})
	})
	return r
}
