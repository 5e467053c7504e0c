package handlers

import (
	"net/http"
)

// handleGetState returns the full competition snapshot polled by all clients
func (h *Handlers) handleGetState(w http.ResponseWriter, r *http.Request) {
	state, err := h.State.GetState(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, state)
}

// handleGetLeaderboard returns the podium standings
func (h *Handlers) handleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	standings, err := h.Leaderboard.Standings(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, standings)
}

// handleAddPoolItem accepts a topic image contribution
func (h *Handlers) handleAddPoolItem(w http.ResponseWriter, r *http.Request) {
	var req PoolItemCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	item, err := h.Pool.AddItem(r.Context(), req.ImageURL, req.ContributorID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, item)
}

// handleSetSubmissionImage records a participant's work image for a round
func (h *Handlers) handleSetSubmissionImage(w http.ResponseWriter, r *http.Request) {
	roundID, err := urlParam(r, "roundID")
	if err != nil {
		respondError(w, err)
		return
	}
	participantID, err := urlParam(r, "participantID")
	if err != nil {
		respondError(w, err)
		return
	}

	var req SubmissionImageRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.Submissions.SetImage(r.Context(), roundID, participantID, req.ImageURL); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w)
}

// handleRateSubmission records an audience ballot
func (h *Handlers) handleRateSubmission(w http.ResponseWriter, r *http.Request) {
	submissionID, err := urlParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var req RateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.Scoring.Rate(r.Context(), submissionID, req.VoterNickname, req.Score); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w)
}
