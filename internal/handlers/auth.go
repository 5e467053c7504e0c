package handlers

import (
	"net/http"

	"claymaster/internal/auth"
)

// handleAdminLogin validates credentials against the admin accounts and
// starts a browser session
func (h *Handlers) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req AdminLoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	ok, err := h.Registry.AdminLogin(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}
	if !ok {
		respondError(w, Unauthorized("Invalid credentials"))
		return
	}

	token := h.Sessions.Create()
	auth.SetSessionCookie(w, token)
	respondOK(w, AdminLoginResponse{Success: true, Username: req.Username})
}

// handleAdminLogout ends the admin session
func (h *Handlers) handleAdminLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.CookieName); err == nil {
		h.Sessions.Revoke(cookie.Value)
	}
	auth.ClearSessionCookie(w)
	respondSuccess(w)
}

// handleParticipantLogin looks up a participant by their id token
func (h *Handlers) handleParticipantLogin(w http.ResponseWriter, r *http.Request) {
	var req ParticipantLoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	participant, err := h.Registry.ParticipantLogin(r.Context(), req.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, ParticipantLoginResponse{Success: true, Participant: *participant})
}

// handleAudienceJoin assigns a random scoring nickname to an audience member
func (h *Handlers) handleAudienceJoin(w http.ResponseWriter, r *http.Request) {
	respondOK(w, AudienceJoinResponse{Nickname: h.Audience.Join()})
}
