package services

import (
	"context"

	"claymaster/internal/models"
)

// RegistryServicer defines the interface for roster and admin account operations
type RegistryServicer interface {
	ListParticipants(ctx context.Context) ([]models.Participant, error)
	CreateParticipant(ctx context.Context, id, name string) (*models.Participant, error)
	RenameParticipant(ctx context.Context, id, name string) error
	DeleteParticipant(ctx context.Context, id string) error
	ParticipantLogin(ctx context.Context, id string) (*models.Participant, error)
	AdminLogin(ctx context.Context, username, password string) (bool, error)
	ListAdmins(ctx context.Context) ([]models.AdminAccount, error)
	CreateAdmin(ctx context.Context, username, password string) (*models.AdminAccount, error)
	UpdateAdminPassword(ctx context.Context, username, password string) error
	DeleteAdmin(ctx context.Context, username string) error
}

// PoolServicer defines the interface for topic pool operations
type PoolServicer interface {
	ListItems(ctx context.Context) ([]models.PoolItem, error)
	ListAvailable(ctx context.Context) ([]models.PoolItem, error)
	AddItem(ctx context.Context, imageURL, contributorID string) (*models.PoolItem, error)
	RemoveItem(ctx context.Context, id string) error
}

// RoundServicer defines the interface for round lifecycle operations
type RoundServicer interface {
	ListRounds(ctx context.Context) ([]models.Round, error)
	GetRound(ctx context.Context, id string) (*models.Round, error)
	CreateRound(ctx context.Context, participantIDs []string) (*models.Round, error)
	Reveal(ctx context.Context, roundID string) error
	Complete(ctx context.Context, roundID string) error
}

// SubmissionServicer defines the interface for work submission operations
type SubmissionServicer interface {
	ListSubmissions(ctx context.Context) ([]models.Submission, error)
	SetImage(ctx context.Context, roundID, participantID, imageURL string) error
}

// ScoringServicer defines the interface for audience rating operations
type ScoringServicer interface {
	Rate(ctx context.Context, submissionID, voterNickname string, score int) error
}

// LeaderboardServicer defines the interface for standings computation
type LeaderboardServicer interface {
	Standings(ctx context.Context) ([]Standing, error)
}

// StateServicer defines the interface for the polled read-model
type StateServicer interface {
	GetState(ctx context.Context) (*FullState, error)
	GetStats(ctx context.Context) (map[string]interface{}, error)
}

// AudienceServicer defines the interface for audience session operations
type AudienceServicer interface {
	Join() string
	Nicknames() []string
	SetBaseURL(url string)
	JoinQR() ([]byte, error)
}

// Ensure concrete types implement interfaces
var (
	_ RegistryServicer    = (*RegistryService)(nil)
	_ PoolServicer        = (*PoolService)(nil)
	_ RoundServicer       = (*RoundService)(nil)
	_ SubmissionServicer  = (*SubmissionService)(nil)
	_ ScoringServicer     = (*ScoringService)(nil)
	_ LeaderboardServicer = (*LeaderboardService)(nil)
	_ StateServicer       = (*StateService)(nil)
	_ AudienceServicer    = (*AudienceService)(nil)
)
