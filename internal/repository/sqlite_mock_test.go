package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

// TestListParticipants_ScanError tests row scanning error
func TestListParticipants_ScanError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer db.Close()

	repo := &Repository{db: db}
	ctx := context.Background()

	// Missing columns cause a scan error
	rows := sqlmock.NewRows([]string{"id", "name"}).AddRow("p1", "Alice")
	mock.ExpectQuery("SELECT (.+) FROM participants").WillReturnRows(rows)

	_, err = repo.ListParticipants(ctx)
	if err == nil {
		t.Error("expected error from scan failure, got nil")
	}
}

// TestListRounds_QueryError tests query error propagation
func TestListRounds_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer db.Close()

	repo := &Repository{db: db}
	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM rounds").WillReturnError(errors.New("disk I/O error"))

	_, err = repo.ListRounds(ctx)
	if err == nil {
		t.Error("expected query error, got nil")
	}
}

// TestCreateRound_RollsBackOnParticipantInsertError tests the transaction
// is rolled back when the participant insert fails
func TestCreateRound_RollsBackOnParticipantInsertError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer db.Close()

	repo := &Repository{db: db}
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COALESCE").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))
	mock.ExpectExec("INSERT INTO rounds").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO round_participants").
		WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	_, err = repo.CreateRound(ctx, "r1", "https://img/topic", []string{"a", "b"})
	if err == nil {
		t.Error("expected error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// TestSaveScore_ExecError tests exec error propagation
func TestSaveScore_ExecError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer db.Close()

	repo := &Repository{db: db}
	ctx := context.Background()

	mock.ExpectExec("INSERT OR REPLACE INTO scores").
		WillReturnError(errors.New("database is locked"))

	err = repo.SaveScore(ctx, "sub-r1-a", "voter", 4)
	if err == nil {
		t.Error("expected exec error, got nil")
	}
}

// TestGetCompetitionStats_CountError tests count query error propagation
func TestGetCompetitionStats_CountError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer db.Close()

	repo := &Repository{db: db}
	ctx := context.Background()

	mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("disk I/O error"))

	_, err = repo.GetCompetitionStats(ctx)
	if err == nil {
		t.Error("expected query error, got nil")
	}
}
