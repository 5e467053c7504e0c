package services_test

import (
	"context"
	"testing"

	apperrors "claymaster/internal/errors"
	"claymaster/internal/logger"
	"claymaster/internal/models"
	"claymaster/internal/services"
	"claymaster/internal/testutil"
)

func setupPool(t *testing.T) *services.PoolService {
	t.Helper()
	repo := testutil.NewTestRepository(t)
	return services.NewPoolService(logger.New(), repo)
}

func TestAddItem_EmptyImage(t *testing.T) {
	svc := setupPool(t)

	_, err := svc.AddItem(context.Background(), "   ", "alice")
	if errKind(err) != apperrors.ErrValidation {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestAddItem_DefaultsToAdminContributor(t *testing.T) {
	svc := setupPool(t)

	item, err := svc.AddItem(context.Background(), "https://img/topic", "")
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if item.ContributorID != models.AdminContributor {
		t.Errorf("expected admin contributor, got %q", item.ContributorID)
	}
	if item.ID == "" {
		t.Error("expected generated item id")
	}
}

func TestAddItem_KeepsContributor(t *testing.T) {
	svc := setupPool(t)
	ctx := context.Background()

	item, err := svc.AddItem(ctx, "https://img/topic", "alice")
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if item.ContributorID != "alice" {
		t.Errorf("expected contributor 'alice', got %q", item.ContributorID)
	}

	items, err := svc.ListItems(ctx)
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}
	if len(items) != 1 || items[0].ID != item.ID {
		t.Errorf("unexpected pool contents: %+v", items)
	}
}

func TestRemoveItem_AbsentIsNoop(t *testing.T) {
	svc := setupPool(t)

	if err := svc.RemoveItem(context.Background(), "missing"); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}
