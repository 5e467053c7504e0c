package models

// AdminContributor is the sentinel contributor id recorded when an admin
// (rather than a participant) uploads a topic image.
const AdminContributor = "ADMIN"

// RoundStatus represents the lifecycle state of a round
type RoundStatus string

const (
	RoundUpcoming  RoundStatus = "UPCOMING"
	RoundActive    RoundStatus = "ACTIVE"
	RoundCompleted RoundStatus = "COMPLETED"
)

// Participant represents a competitor. The ID doubles as the login token.
type Participant struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// AdminAccount represents an administrator login
type AdminAccount struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PoolItem represents a candidate topic image in the shared pool.
// An item stays available until its image is consumed by a round.
type PoolItem struct {
	ID            string `json:"id"`
	ImageURL      string `json:"image_url"`
	ContributorID string `json:"contributor_id"`
}

// Round represents one timed head-to-head competition unit
type Round struct {
	ID              string      `json:"id"`
	RoundNumber     int         `json:"round_number"`
	TopicImage      string      `json:"topic_image"`
	IsTopicRevealed bool        `json:"is_topic_revealed"`
	Status          RoundStatus `json:"status"`
	ParticipantIDs  []string    `json:"participant_ids"`
}

// Submission is a participant's entry for one round. An empty ImageURL
// means the slot exists but nothing has been submitted yet.
type Submission struct {
	ID            string         `json:"id"`
	ParticipantID string         `json:"participant_id"`
	RoundID       string         `json:"round_id"`
	ImageURL      string         `json:"image_url"`
	Timestamp     int64          `json:"timestamp"`
	Scores        map[string]int `json:"scores"`
}
