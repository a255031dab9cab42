package handlers

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter mounts every route on a chi mux.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/stats/{userId}", h.GetUserStats)
		r.Get("/leaderboard", h.GetLeaderboard)
		r.Get("/leaderboard/friends", h.GetFriendsLeaderboard)

		r.Get("/events/{eventId}", h.GetEvent)
		r.Get("/events/{eventId}/lock-status", h.GetCardLockStatus)

		r.Post("/predictions", h.SubmitPrediction)
		r.Get("/predictions/user/{userId}", h.GetUserPredictions)

		r.Post("/fights/{fightId}/result", h.PostFightResult)
	})

	return r
}
