package mysql

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	domain "github.com/Prasun6736/Ai-image-Checker/internal/domain/status"
)

func TestStatusRepositorySave(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	repo := NewStatusRepository(db)
	ts := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	s := &domain.StatusCheck{ID: "s1", ClientName: "uptime-bot", Timestamp: ts}

	mock.ExpectExec("INSERT INTO status_checks").
		WithArgs(s.ID, s.ClientName, ts).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Save(context.Background(), s); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestStatusRepositoryListInsertionOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	repo := NewStatusRepository(db)
	t1 := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "client_name", "created_at"}).
		AddRow("s1", "first", t1).
		AddRow("s2", "second", t2)

	mock.ExpectQuery("SELECT id, client_name, created_at").
		WithArgs(1000).
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2", len(got))
	}
	if got[0].ClientName != "first" || got[1].ClientName != "second" {
		t.Errorf("rows out of order: %q, %q", got[0].ClientName, got[1].ClientName)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
