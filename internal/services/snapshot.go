package services

import (
	"context"

	"claymaster/internal/logger"
	"claymaster/internal/models"
	"claymaster/internal/repository"
)

// StateServiceRepository defines the repository methods needed by StateService
type StateServiceRepository interface {
	repository.ParticipantRepository
	repository.AdminRepository
	repository.PoolRepository
	repository.RoundRepository
	repository.SubmissionRepository
	repository.StatsRepository
}

// StateService assembles the single read-model every client role polls.
// All writes go through the other services; this one only reads.
type StateService struct {
	log  logger.Logger
	repo StateServiceRepository
}

// NewStateService creates a new StateService
func NewStateService(log logger.Logger, repo StateServiceRepository) *StateService {
	return &StateService{log: log, repo: repo}
}

// FullState is the consistent snapshot returned to every client type
type FullState struct {
	Participants []models.Participant  `json:"participants"`
	Admins       []models.AdminAccount `json:"admins"`
	Pool         []models.PoolItem     `json:"pool"`
	Rounds       []models.Round        `json:"rounds"`
	Submissions  []models.Submission   `json:"submissions"`
}

// GetState builds a point-in-time snapshot of the whole competition.
// Slices are never nil so polled clients always see arrays.
func (s *StateService) GetState(ctx context.Context) (*FullState, error) {
	participants, err := s.repo.ListParticipants(ctx)
	if err != nil {
		return nil, err
	}
	admins, err := s.repo.ListAdmins(ctx)
	if err != nil {
		return nil, err
	}
	pool, err := s.repo.ListPoolItems(ctx)
	if err != nil {
		return nil, err
	}
	rounds, err := s.repo.ListRounds(ctx)
	if err != nil {
		return nil, err
	}
	submissions, err := s.repo.ListSubmissions(ctx)
	if err != nil {
		return nil, err
	}

	state := &FullState{
		Participants: participants,
		Admins:       admins,
		Pool:         pool,
		Rounds:       rounds,
		Submissions:  submissions,
	}
	if state.Participants == nil {
		state.Participants = []models.Participant{}
	}
	if state.Admins == nil {
		state.Admins = []models.AdminAccount{}
	}
	if state.Pool == nil {
		state.Pool = []models.PoolItem{}
	}
	if state.Rounds == nil {
		state.Rounds = []models.Round{}
	}
	if state.Submissions == nil {
		state.Submissions = []models.Submission{}
	}
	return state, nil
}

// GetStats returns competition statistics for the admin dashboard
func (s *StateService) GetStats(ctx context.Context) (map[string]interface{}, error) {
	return s.repo.GetCompetitionStats(ctx)
}
