package services

import (
	"context"
	"strings"

	"claymaster/internal/errors"
	"claymaster/internal/logger"
	"claymaster/internal/models"
	"claymaster/internal/repository"
)

// ScoringServiceRepository defines the repository methods needed by ScoringService
type ScoringServiceRepository interface {
	repository.SubmissionRepository
	repository.RoundRepository
}

// ScoringService records audience star ratings. One ballot per
// (submission, voter nickname) pair; re-rating overwrites.
type ScoringService struct {
	log  logger.Logger
	repo ScoringServiceRepository
}

// NewScoringService creates a new ScoringService
func NewScoringService(log logger.Logger, repo ScoringServiceRepository) *ScoringService {
	return &ScoringService{log: log, repo: repo}
}

// Rate records a voter's 1-5 rating of a submission. Rating the same
// submission again replaces the voter's previous ballot. The submission
// must exist and its round must not be completed.
func (s *ScoringService) Rate(ctx context.Context, submissionID, voterNickname string, score int) error {
	if strings.TrimSpace(voterNickname) == "" {
		return errors.Validation("voter nickname is required")
	}
	if score < 1 || score > 5 {
		return errors.Validationf("score must be between 1 and 5, got %d", score)
	}

	sub, err := s.repo.GetSubmission(ctx, submissionID)
	if err == repository.ErrNotFound {
		return errors.NotFoundf("submission %q not found", submissionID)
	}
	if err != nil {
		return err
	}

	round, err := s.repo.GetRound(ctx, sub.RoundID)
	if err != nil && err != repository.ErrNotFound {
		return err
	}
	if round != nil && round.Status == models.RoundCompleted {
		return errors.Validation("round is completed, ratings are closed")
	}

	if err := s.repo.SaveScore(ctx, submissionID, voterNickname, score); err != nil {
		return err
	}

	s.log.Info("Ballot cast", "submission", submissionID, "voter", voterNickname, "score", score)
	return nil
}
