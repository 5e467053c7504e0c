package services

import (
	"context"
	"fmt"
	"strings"

	"claymaster/internal/errors"
	"claymaster/internal/logger"
	"claymaster/internal/models"
	"claymaster/internal/repository"
)

// DefaultAdmin is the permanent seeded admin account. It cannot be deleted.
const DefaultAdmin = "admin"

// RegistryServiceRepository defines the repository methods needed by RegistryService
type RegistryServiceRepository interface {
	repository.ParticipantRepository
	repository.AdminRepository
}

// RegistryService manages the participant roster and admin accounts
type RegistryService struct {
	log  logger.Logger
	repo RegistryServiceRepository
}

// NewRegistryService creates a new RegistryService
func NewRegistryService(log logger.Logger, repo RegistryServiceRepository) *RegistryService {
	return &RegistryService{log: log, repo: repo}
}

// avatarURL builds the identicon avatar assigned to new participants
func avatarURL(id string) string {
	return fmt.Sprintf("https://api.dicebear.com/7.x/identicon/svg?seed=%s", id)
}

// ListParticipants returns the full roster
func (s *RegistryService) ListParticipants(ctx context.Context) ([]models.Participant, error) {
	return s.repo.ListParticipants(ctx)
}

// CreateParticipant registers a new competitor. The id doubles as the login
// token and must be unique.
func (s *RegistryService) CreateParticipant(ctx context.Context, id, name string) (*models.Participant, error) {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)
	if id == "" || name == "" {
		return nil, errors.Validation("participant id and name are required")
	}

	exists, err := s.repo.ParticipantExists(ctx, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.Conflictf("participant id %q already exists", id)
	}

	p := models.Participant{ID: id, Name: name, Avatar: avatarURL(id)}
	if err := s.repo.CreateParticipant(ctx, p); err != nil {
		return nil, err
	}

	s.log.Info("Participant registered", "id", id, "name", name)
	return &p, nil
}

// RenameParticipant updates a participant's display name
func (s *RegistryService) RenameParticipant(ctx context.Context, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.Validation("name is required")
	}
	err := s.repo.RenameParticipant(ctx, id, name)
	if err == repository.ErrNotFound {
		return errors.NotFoundf("participant %q not found", id)
	}
	return err
}

// DeleteParticipant removes a participant and, in the same transaction,
// all topic pool items they contributed. Rounds they took part in are
// history and stay untouched.
func (s *RegistryService) DeleteParticipant(ctx context.Context, id string) error {
	if err := s.repo.DeleteParticipant(ctx, id); err != nil {
		return err
	}
	s.log.Info("Participant deleted", "id", id)
	return nil
}

// ParticipantLogin looks up a participant by id, case-insensitively
func (s *RegistryService) ParticipantLogin(ctx context.Context, id string) (*models.Participant, error) {
	p, err := s.repo.GetParticipantByLogin(ctx, id)
	if err == repository.ErrNotFound {
		return nil, errors.NotFound("participant not found")
	}
	return p, err
}

// AdminLogin validates admin credentials. Returns false on any mismatch;
// the caller decides how to surface the failure.
func (s *RegistryService) AdminLogin(ctx context.Context, username, password string) (bool, error) {
	admin, err := s.repo.GetAdmin(ctx, username)
	if err == repository.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return admin.Password == password, nil
}

// ListAdmins returns all admin accounts
func (s *RegistryService) ListAdmins(ctx context.Context) ([]models.AdminAccount, error) {
	return s.repo.ListAdmins(ctx)
}

// CreateAdmin adds a new admin account
func (s *RegistryService) CreateAdmin(ctx context.Context, username, password string) (*models.AdminAccount, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, errors.Validation("username and password are required")
	}

	exists, err := s.repo.AdminExists(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.Conflictf("admin %q already exists", username)
	}

	if err := s.repo.CreateAdmin(ctx, username, password); err != nil {
		return nil, err
	}
	s.log.Info("Admin account created", "username", username)
	return &models.AdminAccount{Username: username, Password: password}, nil
}

// UpdateAdminPassword changes an admin account's password
func (s *RegistryService) UpdateAdminPassword(ctx context.Context, username, password string) error {
	if password == "" {
		return errors.Validation("password is required")
	}
	err := s.repo.UpdateAdminPassword(ctx, username, password)
	if err == repository.ErrNotFound {
		return errors.NotFoundf("admin %q not found", username)
	}
	return err
}

// DeleteAdmin removes an admin account. The seeded default account is permanent.
func (s *RegistryService) DeleteAdmin(ctx context.Context, username string) error {
	if username == DefaultAdmin {
		return errors.Conflict("the default admin account cannot be deleted")
	}
	return s.repo.DeleteAdmin(ctx, username)
}
