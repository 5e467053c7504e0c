package handlers

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Router returns a configured chi router with all routes
func (h *Handlers) Router() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RedirectSlashes)
	r.Use(middleware.Timeout(60 * time.Second))

	// Polled read-model (public, every client role)
	r.Get("/api/state", h.handleGetState)
	r.Get("/api/leaderboard", h.handleGetLeaderboard)

	// Auth (public)
	r.Post("/api/auth/admin-login", h.handleAdminLogin)
	r.Post("/api/auth/admin-logout", h.handleAdminLogout)
	r.Post("/api/auth/participant-login", h.handleParticipantLogin)
	r.Post("/api/auth/audience-join", h.handleAudienceJoin)

	// Topic pool contributions (participants upload without a session)
	r.Post("/api/pool", h.handleAddPoolItem)

	// Participant work submissions (public)
	r.Patch("/api/submissions/{roundID}/{participantID}", h.handleSetSubmissionImage)

	// Audience ballots (public)
	r.Post("/api/submissions/{id}/rate", h.handleRateSubmission)

	// Admin API (protected)
	r.Group(func(r chi.Router) {
		r.Use(h.Sessions.RequireAuthAPI)

		// Participants
		r.Get("/api/admin/participants", h.handleGetParticipants)
		r.Post("/api/admin/participants", h.handleCreateParticipant)
		r.Patch("/api/admin/participants/{id}", h.handleRenameParticipant)
		r.Delete("/api/admin/participants/{id}", h.handleDeleteParticipant)

		// Admin accounts
		r.Get("/api/admin/admins", h.handleGetAdmins)
		r.Post("/api/admin/admins", h.handleCreateAdmin)
		r.Patch("/api/admin/admins/{username}", h.handleUpdateAdminPassword)
		r.Delete("/api/admin/admins/{username}", h.handleDeleteAdmin)

		// Topic pool management
		r.Delete("/api/admin/pool/{id}", h.handleRemovePoolItem)

		// Round lifecycle
		r.Post("/api/admin/rounds", h.handleCreateRound)
		r.Post("/api/admin/rounds/{id}/reveal", h.handleRevealRound)
		r.Post("/api/admin/rounds/{id}/complete", h.handleCompleteRound)

		// Dashboard
		r.Get("/api/admin/stats", h.handleGetStats)
		r.Get("/api/admin/audience-qr", h.handleAudienceQR)
	})

	return r
}
