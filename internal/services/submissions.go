package services

import (
	"context"
	"strings"
	"time"

	"claymaster/internal/errors"
	"claymaster/internal/logger"
	"claymaster/internal/models"
	"claymaster/internal/repository"
)

// SubmissionServiceRepository defines the repository methods needed by SubmissionService
type SubmissionServiceRepository interface {
	repository.RoundRepository
	repository.SubmissionRepository
}

// SubmissionService handles participants' work submissions
type SubmissionService struct {
	log  logger.Logger
	repo SubmissionServiceRepository
}

// NewSubmissionService creates a new SubmissionService
func NewSubmissionService(log logger.Logger, repo SubmissionServiceRepository) *SubmissionService {
	return &SubmissionService{log: log, repo: repo}
}

// ListSubmissions returns all submissions with their scores
func (s *SubmissionService) ListSubmissions(ctx context.Context) ([]models.Submission, error) {
	return s.repo.ListSubmissions(ctx)
}

// SetImage records a participant's work image for a round, overwriting any
// earlier submission (resubmits are allowed) and refreshing the timestamp.
// The round must be ACTIVE with its topic revealed.
func (s *SubmissionService) SetImage(ctx context.Context, roundID, participantID, imageURL string) error {
	if strings.TrimSpace(imageURL) == "" {
		return errors.Validation("image is required")
	}

	round, err := s.repo.GetRound(ctx, roundID)
	if err == repository.ErrNotFound {
		return errors.NotFoundf("round %q not found", roundID)
	}
	if err != nil {
		return err
	}
	if round.Status != models.RoundActive || !round.IsTopicRevealed {
		return errors.Validation("round is not accepting submissions")
	}

	err = s.repo.SetSubmissionImage(ctx, roundID, participantID, imageURL, time.Now().UnixMilli())
	if err == repository.ErrNotFound {
		return errors.NotFoundf("no submission slot for participant %q in this round", participantID)
	}
	if err != nil {
		return err
	}

	s.log.Info("Work submitted", "round", roundID, "participant", participantID)
	return nil
}
