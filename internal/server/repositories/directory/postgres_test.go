package directory

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCommunities(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*name,\s*description\s+FROM\s+communities\s+ORDER\s+BY\s+name\s*$`
	rows := sqlmock.NewRows([]string{"id", "name", "description"}).
		AddRow(uuid.New(), "Business Minds", "Business strategies and entrepreneurship").
		AddRow(uuid.New(), "Computer Science Hub", "Discussion and resources for CS students")
	mock.ExpectQuery(q).WillReturnRows(rows)

	got, err := repo.Communities(context.Background())
	if err != nil {
		t.Fatalf("Communities error: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Business Minds" {
		t.Fatalf("unexpected communities: %+v", got)
	}
}

func TestClubs_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+id,\s*name,\s*description\s+FROM\s+clubs`).
		WillReturnError(errors.New("db down"))

	_, err := repo.Clubs(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestChatRooms(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*name\s+FROM\s+chat_rooms\s+ORDER\s+BY\s+name\s*$`
	rows := sqlmock.NewRows([]string{"id", "name"}).
		AddRow(uuid.New(), "Campus Events").
		AddRow(uuid.New(), "General Discussion")
	mock.ExpectQuery(q).WillReturnRows(rows)

	got, err := repo.ChatRooms(context.Background())
	if err != nil {
		t.Fatalf("ChatRooms error: %v", err)
	}
	if len(got) != 2 || got[1].Name != "General Discussion" {
		t.Fatalf("unexpected rooms: %+v", got)
	}
}
