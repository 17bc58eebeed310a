package cards

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/harshpatel958/kontax/internal/common"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	repo, err := NewPostgresRepository(db)
	if err != nil {
		t.Fatalf("NewPostgresRepository error: %v", err)
	}
	return repo, mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id"}).AddRow("c-1")
	mock.ExpectQuery(`INSERT\s+INTO\s+published_cards`).
		WithArgs("d-1", "Ada", "Lovelace", "ada@example.com", "", "", "", "", "GopherCon", "2026-08-30", "", "").
		WillReturnRows(rows)

	card := &Card{
		DeviceID:  "d-1",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Title:     "GopherCon",
		Date:      "2026-08-30",
	}
	got, err := repo.Create(context.Background(), card)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "c-1" {
		t.Fatalf("unexpected card ID: %q", got.ID)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+published_cards`).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &Card{DeviceID: "d-1"})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestGetByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "device_id", "firstname", "lastname", "email", "phone",
		"organization", "designation", "linkedln", "title", "date", "location", "intent", "created_at",
	}).AddRow("c-1", "d-1", "Ada", "Lovelace", "ada@example.com", "", "Analytical Engines", "", "", "GopherCon", "2026-08-30", "", "", created)

	mock.ExpectQuery(`SELECT\s+id,\s*device_id,.*FROM\s+published_cards`).
		WithArgs("c-1").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "c-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.FirstName != "Ada" || got.Organization != "Analytical Engines" {
		t.Fatalf("unexpected card: %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+id,\s*device_id,.*FROM\s+published_cards`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}
