// Copyright (c) 2025-2026 Taafé Vision
// SPDX-License-Identifier: GPL-3.0-or-later

// Package server assembles the HTTP router: middleware stack, public
// routes, the session-gated admin surface and the health endpoints.
package server

import (
	"database/sql"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taafevision/taafe-go/internal/cache"
	"github.com/taafevision/taafe-go/internal/handler/api"
	"github.com/taafevision/taafe-go/internal/middleware"
	"github.com/taafevision/taafe-go/internal/service"
)

// Config holds everything the router needs.
type Config struct {
	DB       *sql.DB
	Sessions *scs.SessionManager
	Cache    cache.Cache
	CacheTTL time.Duration
	IsDev    bool

	// RequestTimeout bounds every request. Zero means 30 seconds.
	RequestTimeout time.Duration
}

// New constructs the root chi.Router with all routes and middleware applied.
func New(cfg Config) chi.Router {
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 30 * time.Second
	}

	audit := service.NewAuditService(cfg.DB)
	loginProtection := middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig())

	h := api.NewHandler(api.Config{
		DB:              cfg.DB,
		Sessions:        cfg.Sessions,
		Audit:           audit,
		Cache:           cfg.Cache,
		CacheTTL:        cfg.CacheTTL,
		LoginProtection: loginProtection,
	})
	health := api.NewHealthHandler(cfg.DB, cfg.Sessions)

	apiRateLimiter := middleware.NewGlobalRateLimiter(50, 100)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.StripTrailingSlash)
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDev)))
	r.Use(cfg.Sessions.LoadAndSave)

	// Health endpoints sit outside the API rate limiter so orchestrator
	// probes are never throttled.
	r.Get("/health", health.Health)
	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)

	r.Route("/api", func(r chi.Router) {
		r.Use(apiRateLimiter.Middleware())
		r.Use(middleware.LoadUser(cfg.Sessions, cfg.DB))

		// Auth
		r.With(loginProtection.Middleware()).Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Get("/user", h.CurrentUser)

		// Public reads
		r.Get("/projects", h.ListProjects)
		r.Get("/films", h.ListFilms)
		r.Get("/films/{id}", h.GetFilm)
		r.Get("/articles", h.ListArticles)
		r.Get("/partners", h.ListPartners)

		// Public contact form intake
		r.Post("/contact", h.CreateContact)

		// Authenticated content management
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(cfg.Sessions))

			r.Post("/projects", h.CreateProject)
			r.Patch("/projects/{id}", h.UpdateProject)
			r.Delete("/projects/{id}", h.DeleteProject)

			r.Post("/films", h.CreateFilm)
			r.Patch("/films/{id}", h.UpdateFilm)
			r.Delete("/films/{id}", h.DeleteFilm)

			r.Post("/articles", h.CreateArticle)
			r.Patch("/articles/{id}", h.UpdateArticle)
			r.Delete("/articles/{id}", h.DeleteArticle)

			r.Post("/partners", h.CreatePartner)
			r.Delete("/partners/{id}", h.DeletePartner)
		})

		// Contact submissions carry personal data: admin eyes only.
		r.With(middleware.RequireAuth(cfg.Sessions), middleware.RequireAdmin()).
			Get("/contacts", h.ListContacts)

		// Admin-only surface
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAuth(cfg.Sessions))
			r.Use(middleware.RequireAdmin())

			r.Get("/settings", h.ListSettings)
			r.Put("/settings/{key}", h.UpdateSetting)
			r.Get("/logs", h.ListAdminLogs)
		})
	})

	return r
}
