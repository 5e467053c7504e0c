package handlers

import "claymaster/internal/models"

// AdminLoginResponse is the response for a successful admin login
type AdminLoginResponse struct {
	Success  bool   `json:"success"`
	Username string `json:"username"`
}

// ParticipantLoginResponse is the response for a successful participant login
type ParticipantLoginResponse struct {
	Success     bool               `json:"success"`
	Participant models.Participant `json:"participant"`
}

// AudienceJoinResponse is the response for an audience join
type AudienceJoinResponse struct {
	Nickname string `json:"nickname"`
}
