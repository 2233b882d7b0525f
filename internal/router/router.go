// Package router sets up all HTTP routes and middleware chains for the
// SiteForge API. Routes are organized into a small public group (auth,
// built-in and public component listings) and the session-guarded rest.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"siteforge/internal/handlers"
	"siteforge/internal/middleware"
	"siteforge/internal/session"
)

// Handlers bundles the API handler groups the router wires up.
type Handlers struct {
	Auth       *handlers.Auth
	Websites   *handlers.Websites
	Pages      *handlers.Pages
	Components *handlers.Components
	Media      *handlers.Media
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(sessionStore *session.Store, h Handlers) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		// Auth. Login is rate limited per IP.
		r.Route("/auth", func(r chi.Router) {
			loginLimiter := middleware.NewRateLimiter(10, time.Minute)
			r.Group(func(r chi.Router) {
				r.Use(loginLimiter.Middleware)
				r.Post("/login", h.Auth.Login)
			})
			r.Post("/logout", h.Auth.Logout)

			// 2FA requires a session but not completed verification.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Post("/2fa/setup", h.Auth.TwoFASetup)
				r.Post("/2fa/verify", h.Auth.TwoFAVerify)
				r.Get("/me", h.Auth.Me)
			})
		})

		// Public component listings. Resolution of a single ID also
		// works without a session, returning built-ins only.
		r.Get("/components/built-in", h.Components.BuiltIns)
		r.Get("/components/public", h.Components.Public)
		r.Get("/components/{componentID}", h.Components.Get)

		// Everything below requires an authenticated, 2FA-complete session.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)

			r.Route("/websites", func(r chi.Router) {
				r.Get("/", h.Websites.List)
				r.Post("/", h.Websites.Create)
				r.Route("/{websiteID}", func(r chi.Router) {
					r.Get("/", h.Websites.Get)
					r.Patch("/", h.Websites.Update)
					r.Delete("/", h.Websites.Delete)
					r.Post("/favicon", h.Websites.UploadFavicon)
					r.Post("/publish", h.Websites.Publish)
					r.Post("/unpublish", h.Websites.Unpublish)

					r.Route("/pages", func(r chi.Router) {
						r.Get("/", h.Pages.List)
						r.Post("/", h.Pages.Create)
						r.Post("/reorder", h.Pages.Reorder)
					})
				})
			})

			r.Route("/pages/{pageID}", func(r chi.Router) {
				r.Get("/", h.Pages.Get)
				r.Patch("/", h.Pages.UpdateMetadata)
				r.Delete("/", h.Pages.Delete)
				r.Put("/content", h.Pages.UpdateContent)
				r.Put("/styles", h.Pages.UpdateStyles)
				r.Post("/publish", h.Pages.Publish)
				r.Post("/unpublish", h.Pages.Unpublish)
			})

			r.Route("/components", func(r chi.Router) {
				r.Get("/", h.Components.List)
				r.Post("/", h.Components.Create)
				r.Post("/validate", h.Components.Validate)
				r.Route("/{componentID}", func(r chi.Router) {
					r.Patch("/", h.Components.Update)
					r.Delete("/", h.Components.Delete)
					r.Post("/preview", h.Components.UploadPreview)
				})
			})

			r.Route("/media", func(r chi.Router) {
				r.Get("/", h.Media.List)
				r.Post("/", h.Media.Upload)
				r.Post("/reassign-folder", h.Media.ReassignFolder)
				r.Route("/{mediaID}", func(r chi.Router) {
					r.Get("/", h.Media.Get)
					r.Patch("/", h.Media.UpdateMetadata)
					r.Delete("/", h.Media.Delete)
				})
			})
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
