package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"claymaster/internal/errors"
	"claymaster/internal/logger"
	"claymaster/internal/models"
	"claymaster/internal/repository"
)

// PoolService manages the shared topic image pool
type PoolService struct {
	log  logger.Logger
	repo repository.PoolRepository
}

// NewPoolService creates a new PoolService
func NewPoolService(log logger.Logger, repo repository.PoolRepository) *PoolService {
	return &PoolService{log: log, repo: repo}
}

// ListItems returns all contributed topic images, used or not
func (s *PoolService) ListItems(ctx context.Context) ([]models.PoolItem, error) {
	return s.repo.ListPoolItems(ctx)
}

// ListAvailable returns pool items not yet consumed as a round topic
func (s *PoolService) ListAvailable(ctx context.Context) ([]models.PoolItem, error) {
	return s.repo.ListAvailablePoolItems(ctx)
}

// AddItem contributes a topic image to the pool. The contributor is a
// participant id, or models.AdminContributor for admin uploads.
func (s *PoolService) AddItem(ctx context.Context, imageURL, contributorID string) (*models.PoolItem, error) {
	if strings.TrimSpace(imageURL) == "" {
		return nil, errors.Validation("image is required")
	}
	if contributorID == "" {
		contributorID = models.AdminContributor
	}

	item := models.PoolItem{
		ID:            uuid.NewString(),
		ImageURL:      imageURL,
		ContributorID: contributorID,
	}
	if err := s.repo.CreatePoolItem(ctx, item); err != nil {
		return nil, err
	}

	s.log.Info("Topic image added to pool", "id", item.ID, "contributor", contributorID)
	return &item, nil
}

// RemoveItem deletes a pool item. Removing an absent item is not an error.
func (s *PoolService) RemoveItem(ctx context.Context, id string) error {
	return s.repo.DeletePoolItem(ctx, id)
}
