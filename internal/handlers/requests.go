package handlers

// AdminLoginRequest represents an admin login attempt
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ParticipantLoginRequest represents a participant login attempt
type ParticipantLoginRequest struct {
	ID string `json:"id"`
}

// ParticipantCreateRequest represents a request to register a participant
type ParticipantCreateRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ParticipantRenameRequest represents a request to rename a participant
type ParticipantRenameRequest struct {
	Name string `json:"name"`
}

// AdminCreateRequest represents a request to create an admin account
type AdminCreateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminPasswordRequest represents a request to change an admin password
type AdminPasswordRequest struct {
	Password string `json:"password"`
}

// PoolItemCreateRequest represents a topic image contribution
type PoolItemCreateRequest struct {
	ImageURL      string `json:"image_url"`
	ContributorID string `json:"contributor_id"`
}

// RoundCreateRequest represents a request to create a round
type RoundCreateRequest struct {
	ParticipantIDs []string `json:"participant_ids"`
}

// SubmissionImageRequest represents a participant's work submission
type SubmissionImageRequest struct {
	ImageURL string `json:"image_url"`
}

// RateRequest represents an audience ballot
type RateRequest struct {
	VoterNickname string `json:"voter_nickname"`
	Score         int    `json:"score"`
}
