package content

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/krishavya/ufresher/internal/common"
	"github.com/krishavya/ufresher/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreateMessage_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	m := &models.Message{ID: uuid.New(), RoomID: uuid.New(), SenderID: uuid.New(), Content: "hi", Flagged: false}

	q := `(?s)^INSERT\s+INTO\s+messages\s*\(.+\)\s*VALUES\s*\(.+\)\s*RETURNING\s+created_at\s*$`
	rows := sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now())
	mock.ExpectQuery(q).
		WithArgs(m.ID, m.RoomID, m.SenderID, m.Content, m.Flagged).
		WillReturnRows(rows)

	got, err := repo.CreateMessage(context.Background(), m)
	if err != nil {
		t.Fatalf("CreateMessage error: %v", err)
	}
	if got.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be populated")
	}
}

func TestMessagesByRoom(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	roomID := uuid.New()
	q := `(?s)^SELECT\s+.+\s+FROM\s+messages\s+WHERE\s+room_id\s*=\s*\$1\s+ORDER\s+BY\s+created_at\s*$`
	rows := sqlmock.NewRows([]string{"id", "room_id", "sender_id", "content", "flagged", "created_at"}).
		AddRow(uuid.New(), roomID, uuid.New(), "first", false, time.Now()).
		AddRow(uuid.New(), roomID, uuid.New(), "nasty", true, time.Now())
	mock.ExpectQuery(q).WithArgs(roomID).WillReturnRows(rows)

	got, err := repo.MessagesByRoom(context.Background(), roomID)
	if err != nil {
		t.Fatalf("MessagesByRoom error: %v", err)
	}
	if len(got) != 2 || !got[1].Flagged {
		t.Fatalf("unexpected messages: %+v", got)
	}
}

func TestSetMessageFlagged_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+messages\s+SET\s+flagged\s*=\s*\$1\s+WHERE\s+id\s*=\s*\$2\s*$`
	mock.ExpectExec(q).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetMessageFlagged(context.Background(), uuid.New(), true)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestSetPostFlagged_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	id := uuid.New()
	q := `(?s)^UPDATE\s+posts\s+SET\s+flagged\s*=\s*\$1\s+WHERE\s+id\s*=\s*\$2\s*$`
	mock.ExpectExec(q).WithArgs(false, id).WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetPostFlagged(context.Background(), id, false); err != nil {
		t.Fatalf("SetPostFlagged error: %v", err)
	}
}

func TestCreatePost_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+posts`).WillReturnError(errors.New("db down"))

	communityID := uuid.New()
	_, err := repo.CreatePost(context.Background(), &models.Post{
		ID: uuid.New(), AuthorID: uuid.New(), CommunityID: &communityID, Content: "x",
	})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestPosts_FilterByCommunity(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	communityID := uuid.New()
	q := `(?s)^SELECT\s+.+\s+FROM\s+posts\s+WHERE\s+.+ORDER\s+BY\s+created_at\s+DESC\s*$`
	rows := sqlmock.NewRows([]string{"id", "author_id", "community_id", "club_id", "content", "flagged", "created_at"}).
		AddRow(uuid.New(), uuid.New(), communityID, nil, "hello", false, time.Now())
	mock.ExpectQuery(q).WillReturnRows(rows)

	got, err := repo.Posts(context.Background(), &communityID, nil)
	if err != nil {
		t.Fatalf("Posts error: %v", err)
	}
	if len(got) != 1 || got[0].Content != "hello" {
		t.Fatalf("unexpected posts: %+v", got)
	}
}
