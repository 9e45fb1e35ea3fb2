package api

import (
	"net/http"

	"github.com/buyitapp/buyit-server/internal/api/handlers"
	"github.com/buyitapp/buyit-server/internal/api/middleware"
	"github.com/buyitapp/buyit-server/internal/config"
	"github.com/buyitapp/buyit-server/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestLogging(log))
	r.Use(middleware.CORS())
	r.Use(middleware.Session(services.Auth))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth, cfg)
	leadHandler := handlers.NewLeadHandler(services.Lead)
	advisorHandler := handlers.NewAdvisorHandler(services.Advisor, services.Auth)
	adminHandler := handlers.NewAdminHandler(services.Lead, services.Auth)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.RateLimit(rate.Limit(5), 10))

			r.Post("/signup", authHandler.Signup)
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.Get("/verify", authHandler.Verify)
			r.Post("/password-reset", authHandler.RequestPasswordReset)
			r.Post("/password-reset/{token}", authHandler.CompletePasswordReset)
			r.Get("/recent-users", authHandler.RecentUsers)
		})

		// Account deletes come from the dashboard's members panel
		r.Delete("/users/{id}", authHandler.DeleteUser)

		// Lead routes
		r.Route("/leads", func(r chi.Router) {
			r.Get("/", leadHandler.FetchAll)
			r.Get("/{id}", leadHandler.GetLead)
			r.Post("/sellers", leadHandler.CreateSeller)
			r.Delete("/sellers/{id}", leadHandler.DeleteSeller)
			r.Post("/buyers", leadHandler.CreateBuyer)
			r.Delete("/buyers/{id}", leadHandler.DeleteBuyer)
			r.Delete("/contacts/{id}", leadHandler.DeleteContact)
		})

		// Contact form
		r.Post("/contact", leadHandler.SendContactMessage)
		r.Get("/contact/messages", leadHandler.FetchMessages)

		// AI advisor chat widget
		r.Post("/advisor/chat", advisorHandler.Chat)

		// Admin-only data flow
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(services.Auth))
			r.Get("/admin/summary", adminHandler.Summary)
		})
		r.Post("/admin/seed", authHandler.SeedAdmin)
	})

	return r
}
