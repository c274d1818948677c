package server

import (
	"database/sql"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/swaggest/swgui/v5emb"
)

func addRoutes(r chi.Router, logger *slog.Logger, store Store, sessions Sessions, db *sql.DB, rdb *redis.Client, spaDir string) {
	broker := NewBroker()

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("FirstHome API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, db, rdb))
	r.Get("/ws/chat", handleWSChat(logger))

	// Auth.
	r.Post("/api/auth/signup", handleSignup(store, sessions))
	r.Post("/api/auth/login", handleLogin(store, sessions))
	r.Post("/api/auth/logout", handleLogout(sessions))

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware(sessions))
		r.Get("/api/auth/me", handleMe(store))
		r.Put("/api/auth/password", handlePasswordUpdate(store))
		r.Delete("/api/auth/account", handleAccountDelete(store, sessions))

		r.Get("/api/journey", handleJourneyGet(store))
		r.Put("/api/journey", handleJourneyPut(store, broker))
		r.Get("/api/journey/state", handleJourneyState(store))
	})

	// EventSource can't send headers; token rides in the query string.
	r.Get("/api/journey/events", handleEvents(sessions, broker))
	r.Get("/api/journey/template", handleJourneyTemplate())

	// Public content.
	r.Get("/api/content/guides", handleGuides())
	r.Get("/api/content/guides/{slug}", handleGuideBySlug())
	r.Get("/api/content/faqs", handleFAQs())
	r.Get("/api/content/glossary", handleGlossary())
	r.Get("/api/content/tasks/{id}", handleTask())

	r.Get("/api/calculator/costs", handleCalculatorCosts())

	r.Get("/api/chat", handleChatInfo())
	r.Post("/api/chat", handleChat())

	if spaDir != "" {
		if info, err := os.Stat(spaDir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", spaDir)
			r.NotFound(handleSPA(spaDir))
		}
	}
}
