package handlers

import (
	"net/http"
)

// ==================== Participants ====================

func (h *Handlers) handleGetParticipants(w http.ResponseWriter, r *http.Request) {
	participants, err := h.Registry.ListParticipants(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, participants)
}

func (h *Handlers) handleCreateParticipant(w http.ResponseWriter, r *http.Request) {
	var req ParticipantCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	participant, err := h.Registry.CreateParticipant(r.Context(), req.ID, req.Name)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, participant)
}

func (h *Handlers) handleRenameParticipant(w http.ResponseWriter, r *http.Request) {
	id, err := urlParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var req ParticipantRenameRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.Registry.RenameParticipant(r.Context(), id, req.Name); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w)
}

func (h *Handlers) handleDeleteParticipant(w http.ResponseWriter, r *http.Request) {
	id, err := urlParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.Registry.DeleteParticipant(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w)
}

// ==================== Admin Accounts ====================

func (h *Handlers) handleGetAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.Registry.ListAdmins(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, admins)
}

func (h *Handlers) handleCreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req AdminCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	admin, err := h.Registry.CreateAdmin(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, admin)
}

func (h *Handlers) handleUpdateAdminPassword(w http.ResponseWriter, r *http.Request) {
	username, err := urlParam(r, "username")
	if err != nil {
		respondError(w, err)
		return
	}

	var req AdminPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.Registry.UpdateAdminPassword(r.Context(), username, req.Password); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w)
}

func (h *Handlers) handleDeleteAdmin(w http.ResponseWriter, r *http.Request) {
	username, err := urlParam(r, "username")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.Registry.DeleteAdmin(r.Context(), username); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w)
}

// ==================== Topic Pool ====================

func (h *Handlers) handleRemovePoolItem(w http.ResponseWriter, r *http.Request) {
	id, err := urlParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.Pool.RemoveItem(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w)
}

// ==================== Rounds ====================

func (h *Handlers) handleCreateRound(w http.ResponseWriter, r *http.Request) {
	var req RoundCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	round, err := h.Rounds.CreateRound(r.Context(), req.ParticipantIDs)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, round)
}

func (h *Handlers) handleRevealRound(w http.ResponseWriter, r *http.Request) {
	id, err := urlParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.Rounds.Reveal(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w)
}

func (h *Handlers) handleCompleteRound(w http.ResponseWriter, r *http.Request) {
	id, err := urlParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.Rounds.Complete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w)
}

// ==================== Dashboard ====================

func (h *Handlers) handleGetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.State.GetStats(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, stats)
}

// handleAudienceQR serves a QR code image linking to the audience join page
func (h *Handlers) handleAudienceQR(w http.ResponseWriter, r *http.Request) {
	png, err := h.Audience.JoinQR()
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(png)
}
