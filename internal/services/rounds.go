package services

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"claymaster/internal/errors"
	"claymaster/internal/logger"
	"claymaster/internal/models"
	"claymaster/internal/repository"
)

// RoundServiceRepository defines the repository methods needed by RoundService
type RoundServiceRepository interface {
	repository.RoundRepository
	repository.PoolRepository
}

// RoundService drives rounds through their lifecycle:
// UPCOMING -> ACTIVE (topic reveal) -> COMPLETED.
type RoundService struct {
	log  logger.Logger
	repo RoundServiceRepository
	pick func(n int) int // topic draw; swapped out in tests
}

// NewRoundService creates a new RoundService
func NewRoundService(log logger.Logger, repo RoundServiceRepository) *RoundService {
	return &RoundService{log: log, repo: repo, pick: rand.Intn}
}

// SetPicker sets a custom topic draw function (for testing)
func (s *RoundService) SetPicker(pick func(n int) int) {
	s.pick = pick
}

// ListRounds returns all rounds in round number order
func (s *RoundService) ListRounds(ctx context.Context) ([]models.Round, error) {
	return s.repo.ListRounds(ctx)
}

// GetRound retrieves a single round
func (s *RoundService) GetRound(ctx context.Context, id string) (*models.Round, error) {
	round, err := s.repo.GetRound(ctx, id)
	if err == repository.ErrNotFound {
		return nil, errors.NotFoundf("round %q not found", id)
	}
	return round, err
}

// CreateRound pairs the given participants into a new UPCOMING round with a
// topic drawn uniformly at random from the unused pool. The topic is frozen
// into the round and never re-rolled; no state is mutated on failure.
func (s *RoundService) CreateRound(ctx context.Context, participantIDs []string) (*models.Round, error) {
	if len(participantIDs) < 2 {
		return nil, errors.Validation("a round needs at least 2 participants")
	}

	available, err := s.repo.ListAvailablePoolItems(ctx)
	if err != nil {
		return nil, err
	}
	if len(available) == 0 {
		return nil, errors.Exhausted("no unused topic images left in the pool, upload a new topic before creating a round")
	}

	topic := available[s.pick(len(available))]
	round, err := s.repo.CreateRound(ctx, uuid.NewString(), topic.ImageURL, participantIDs)
	if err != nil {
		return nil, err
	}

	s.log.Info("Round created", "round", round.RoundNumber, "id", round.ID, "participants", len(participantIDs))
	return round, nil
}

// Reveal flips the round's topic to revealed and marks it ACTIVE, creating
// one empty submission slot per participant. Revealing the same round twice
// is a no-op for the slots. Only one round may be ACTIVE at a time.
func (s *RoundService) Reveal(ctx context.Context, roundID string) error {
	round, err := s.GetRound(ctx, roundID)
	if err != nil {
		return err
	}
	if round.Status == models.RoundCompleted {
		return errors.Validation("round is already completed")
	}

	activeID, hasActive, err := s.repo.ActiveRoundID(ctx)
	if err != nil {
		return err
	}
	if hasActive && activeID != roundID {
		return errors.Conflict("another round is already active, complete it first")
	}

	if err := s.repo.RevealRound(ctx, roundID, time.Now().UnixMilli()); err != nil {
		return err
	}

	s.log.Info("Round revealed", "round", round.RoundNumber, "id", roundID)
	return nil
}

// Complete marks a round COMPLETED. Completion is terminal: the topic,
// reveal flag and submissions are frozen from here on.
func (s *RoundService) Complete(ctx context.Context, roundID string) error {
	err := s.repo.CompleteRound(ctx, roundID)
	if err == repository.ErrNotFound {
		return errors.NotFoundf("round %q not found", roundID)
	}
	if err != nil {
		return err
	}
	s.log.Info("Round completed", "id", roundID)
	return nil
}
