package services_test

import (
	"context"
	"testing"

	apperrors "claymaster/internal/errors"
	"claymaster/internal/logger"
	"claymaster/internal/repository"
	"claymaster/internal/services"
	"claymaster/internal/testutil"
)

func setupScoring(t *testing.T) (*services.ScoringService, *services.RoundService, *services.PoolService, *repository.Repository) {
	t.Helper()
	repo := testutil.NewTestRepository(t)
	log := logger.New()
	return services.NewScoringService(log, repo),
		services.NewRoundService(log, repo),
		services.NewPoolService(log, repo),
		repo
}

func TestRate_ScoreOutOfRange(t *testing.T) {
	svc, _, _, _ := setupScoring(t)
	ctx := context.Background()

	for _, score := range []int{0, -1, 6, 100} {
		err := svc.Rate(ctx, "sub-r1-a", "voter", score)
		if errKind(err) != apperrors.ErrValidation {
			t.Errorf("score %d: expected validation error, got %v", score, err)
		}
	}
}

func TestRate_EmptyNickname(t *testing.T) {
	svc, _, _, _ := setupScoring(t)

	err := svc.Rate(context.Background(), "sub-r1-a", "   ", 3)
	if errKind(err) != apperrors.ErrValidation {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestRate_UnknownSubmission(t *testing.T) {
	svc, _, _, _ := setupScoring(t)

	err := svc.Rate(context.Background(), "sub-ghost-x", "voter", 3)
	if errKind(err) != apperrors.ErrNotFound {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestRate_RecordsBallot(t *testing.T) {
	svc, rounds, pool, repo := setupScoring(t)
	ctx := context.Background()

	round := activeRound(t, repo, rounds, pool, "a", "b")
	subID := repository.SubmissionID(round.ID, "a")

	if err := svc.Rate(ctx, subID, "voter-one", 4); err != nil {
		t.Fatalf("Rate failed: %v", err)
	}
	if err := svc.Rate(ctx, subID, "voter-two", 5); err != nil {
		t.Fatalf("Rate failed: %v", err)
	}

	sub, err := repo.GetSubmission(ctx, subID)
	if err != nil {
		t.Fatalf("GetSubmission failed: %v", err)
	}
	if len(sub.Scores) != 2 || sub.Scores["voter-one"] != 4 || sub.Scores["voter-two"] != 5 {
		t.Errorf("unexpected scores: %v", sub.Scores)
	}
}

func TestRate_SameVoterOverwrites(t *testing.T) {
	svc, rounds, pool, repo := setupScoring(t)
	ctx := context.Background()

	round := activeRound(t, repo, rounds, pool, "a", "b")
	subID := repository.SubmissionID(round.ID, "a")

	if err := svc.Rate(ctx, subID, "voter", 2); err != nil {
		t.Fatalf("Rate failed: %v", err)
	}
	if err := svc.Rate(ctx, subID, "voter", 5); err != nil {
		t.Fatalf("re-rate failed: %v", err)
	}

	sub, err := repo.GetSubmission(ctx, subID)
	if err != nil {
		t.Fatalf("GetSubmission failed: %v", err)
	}
	if len(sub.Scores) != 1 || sub.Scores["voter"] != 5 {
		t.Errorf("expected single replaced ballot, got %v", sub.Scores)
	}
}

func TestRate_CompletedRoundClosed(t *testing.T) {
	svc, rounds, pool, repo := setupScoring(t)
	ctx := context.Background()

	round := activeRound(t, repo, rounds, pool, "a", "b")
	subID := repository.SubmissionID(round.ID, "a")
	if err := rounds.Complete(ctx, round.ID); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	err := svc.Rate(ctx, subID, "voter", 4)
	if errKind(err) != apperrors.ErrValidation {
		t.Errorf("expected validation error after completion, got %v", err)
	}
}
