package services_test

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	apperrors "claymaster/internal/errors"
	"claymaster/internal/logger"
	"claymaster/internal/repository"
	"claymaster/internal/services"
	"claymaster/internal/testutil"
)

// errKind returns the application error kind, or -1 for foreign errors.
func errKind(err error) apperrors.Kind {
	var appErr *apperrors.Error
	if stderrors.As(err, &appErr) {
		return appErr.Kind
	}
	return apperrors.Kind(-1)
}

func setupRegistry(t *testing.T) (*services.RegistryService, *repository.Repository) {
	t.Helper()
	repo := testutil.NewTestRepository(t)
	svc := services.NewRegistryService(logger.New(), repo)
	return svc, repo
}

func TestCreateParticipant_Basic(t *testing.T) {
	svc, _ := setupRegistry(t)
	ctx := context.Background()

	p, err := svc.CreateParticipant(ctx, "alice", "Alice")
	if err != nil {
		t.Fatalf("CreateParticipant failed: %v", err)
	}
	if p.ID != "alice" || p.Name != "Alice" {
		t.Errorf("unexpected participant: %+v", p)
	}
	if !strings.Contains(p.Avatar, "alice") {
		t.Errorf("expected avatar seeded from id, got %q", p.Avatar)
	}
}

func TestCreateParticipant_TrimsWhitespace(t *testing.T) {
	svc, _ := setupRegistry(t)

	p, err := svc.CreateParticipant(context.Background(), "  bob  ", "  Bob  ")
	if err != nil {
		t.Fatalf("CreateParticipant failed: %v", err)
	}
	if p.ID != "bob" || p.Name != "Bob" {
		t.Errorf("expected trimmed fields, got %+v", p)
	}
}

func TestCreateParticipant_EmptyFields(t *testing.T) {
	svc, _ := setupRegistry(t)
	ctx := context.Background()

	if _, err := svc.CreateParticipant(ctx, "", "Alice"); errKind(err) != apperrors.ErrValidation {
		t.Errorf("expected validation error for empty id, got %v", err)
	}
	if _, err := svc.CreateParticipant(ctx, "alice", "   "); errKind(err) != apperrors.ErrValidation {
		t.Errorf("expected validation error for blank name, got %v", err)
	}
}

func TestCreateParticipant_DuplicateID(t *testing.T) {
	svc, _ := setupRegistry(t)
	ctx := context.Background()

	if _, err := svc.CreateParticipant(ctx, "alice", "Alice"); err != nil {
		t.Fatalf("CreateParticipant failed: %v", err)
	}

	_, err := svc.CreateParticipant(ctx, "alice", "Other Alice")
	if errKind(err) != apperrors.ErrConflict {
		t.Errorf("expected conflict error, got %v", err)
	}
}

func TestParticipantLogin_CaseInsensitive(t *testing.T) {
	svc, _ := setupRegistry(t)
	ctx := context.Background()

	if _, err := svc.CreateParticipant(ctx, "Alice", "Alice"); err != nil {
		t.Fatalf("CreateParticipant failed: %v", err)
	}

	p, err := svc.ParticipantLogin(ctx, "alice")
	if err != nil {
		t.Fatalf("ParticipantLogin failed: %v", err)
	}
	if p.ID != "Alice" {
		t.Errorf("expected canonical id 'Alice', got %q", p.ID)
	}
}

func TestParticipantLogin_Unknown(t *testing.T) {
	svc, _ := setupRegistry(t)

	_, err := svc.ParticipantLogin(context.Background(), "ghost")
	if errKind(err) != apperrors.ErrNotFound {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestRenameParticipant_Unknown(t *testing.T) {
	svc, _ := setupRegistry(t)

	err := svc.RenameParticipant(context.Background(), "ghost", "Name")
	if errKind(err) != apperrors.ErrNotFound {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestDeleteParticipant_RemovesContributedTopics(t *testing.T) {
	svc, repo := setupRegistry(t)
	ctx := context.Background()
	pool := services.NewPoolService(logger.New(), repo)

	if _, err := svc.CreateParticipant(ctx, "bob", "Bob"); err != nil {
		t.Fatalf("CreateParticipant failed: %v", err)
	}
	if _, err := pool.AddItem(ctx, "https://img/bob-topic", "bob"); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if _, err := pool.AddItem(ctx, "https://img/admin-topic", ""); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	if err := svc.DeleteParticipant(ctx, "bob"); err != nil {
		t.Fatalf("DeleteParticipant failed: %v", err)
	}

	items, err := pool.ListItems(ctx)
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}
	if len(items) != 1 || items[0].ImageURL != "https://img/admin-topic" {
		t.Errorf("expected only admin topic to survive, got %+v", items)
	}
}

func TestAdminLogin(t *testing.T) {
	svc, _ := setupRegistry(t)
	ctx := context.Background()

	ok, err := svc.AdminLogin(ctx, "admin", testutil.TestAdminPassword)
	if err != nil {
		t.Fatalf("AdminLogin failed: %v", err)
	}
	if !ok {
		t.Error("expected seeded admin credentials to pass")
	}

	ok, err = svc.AdminLogin(ctx, "admin", "wrong")
	if err != nil {
		t.Fatalf("AdminLogin failed: %v", err)
	}
	if ok {
		t.Error("expected wrong password to fail")
	}

	ok, err = svc.AdminLogin(ctx, "ghost", "pw")
	if err != nil {
		t.Fatalf("AdminLogin failed: %v", err)
	}
	if ok {
		t.Error("expected unknown username to fail")
	}
}

func TestCreateAdmin_Duplicate(t *testing.T) {
	svc, _ := setupRegistry(t)

	_, err := svc.CreateAdmin(context.Background(), "admin", "pw")
	if errKind(err) != apperrors.ErrConflict {
		t.Errorf("expected conflict for seeded username, got %v", err)
	}
}

func TestDeleteAdmin_DefaultIsPermanent(t *testing.T) {
	svc, _ := setupRegistry(t)
	ctx := context.Background()

	err := svc.DeleteAdmin(ctx, services.DefaultAdmin)
	if errKind(err) != apperrors.ErrConflict {
		t.Errorf("expected conflict deleting default admin, got %v", err)
	}

	if _, err := svc.CreateAdmin(ctx, "judge", "pw"); err != nil {
		t.Fatalf("CreateAdmin failed: %v", err)
	}
	if err := svc.DeleteAdmin(ctx, "judge"); err != nil {
		t.Fatalf("DeleteAdmin failed: %v", err)
	}

	admins, err := svc.ListAdmins(ctx)
	if err != nil {
		t.Fatalf("ListAdmins failed: %v", err)
	}
	if len(admins) != 1 || admins[0].Username != "admin" {
		t.Errorf("expected only the default admin left, got %+v", admins)
	}
}
