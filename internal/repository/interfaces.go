package repository

import (
	"context"

	"claymaster/internal/models"
)

// ParticipantRepository defines participant data operations
type ParticipantRepository interface {
	ListParticipants(ctx context.Context) ([]models.Participant, error)
	GetParticipant(ctx context.Context, id string) (*models.Participant, error)
	GetParticipantByLogin(ctx context.Context, id string) (*models.Participant, error)
	ParticipantExists(ctx context.Context, id string) (bool, error)
	CreateParticipant(ctx context.Context, p models.Participant) error
	RenameParticipant(ctx context.Context, id, name string) error
	DeleteParticipant(ctx context.Context, id string) error
}

// AdminRepository defines admin account data operations
type AdminRepository interface {
	ListAdmins(ctx context.Context) ([]models.AdminAccount, error)
	GetAdmin(ctx context.Context, username string) (*models.AdminAccount, error)
	AdminExists(ctx context.Context, username string) (bool, error)
	CreateAdmin(ctx context.Context, username, password string) error
	UpdateAdminPassword(ctx context.Context, username, password string) error
	DeleteAdmin(ctx context.Context, username string) error
}

// PoolRepository defines topic pool data operations
type PoolRepository interface {
	ListPoolItems(ctx context.Context) ([]models.PoolItem, error)
	ListAvailablePoolItems(ctx context.Context) ([]models.PoolItem, error)
	CreatePoolItem(ctx context.Context, item models.PoolItem) error
	DeletePoolItem(ctx context.Context, id string) error
}

// RoundRepository defines round lifecycle data operations
type RoundRepository interface {
	ListRounds(ctx context.Context) ([]models.Round, error)
	GetRound(ctx context.Context, id string) (*models.Round, error)
	ActiveRoundID(ctx context.Context) (string, bool, error)
	CreateRound(ctx context.Context, id, topicImage string, participantIDs []string) (*models.Round, error)
	RevealRound(ctx context.Context, roundID string, timestamp int64) error
	CompleteRound(ctx context.Context, roundID string) error
}

// SubmissionRepository defines submission and score data operations
type SubmissionRepository interface {
	ListSubmissions(ctx context.Context) ([]models.Submission, error)
	GetSubmission(ctx context.Context, id string) (*models.Submission, error)
	SetSubmissionImage(ctx context.Context, roundID, participantID, imageURL string, timestamp int64) error
	SaveScore(ctx context.Context, submissionID, voterNickname string, score int) error
}

// StatsRepository defines statistics data operations
type StatsRepository interface {
	GetCompetitionStats(ctx context.Context) (map[string]interface{}, error)
}

// FullRepository combines all repository interfaces.
// Use this when a service needs access to multiple domains.
type FullRepository interface {
	ParticipantRepository
	AdminRepository
	PoolRepository
	RoundRepository
	SubmissionRepository
	StatsRepository
}

// Ensure Repository implements all interfaces
var _ FullRepository = (*Repository)(nil)
