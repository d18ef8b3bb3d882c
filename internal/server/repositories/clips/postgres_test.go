package clips

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/nathanjchan/dothething-backend/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestInsert_NewClip(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+clips\s*\(id,\s*code,\s*account_id,\s*created_at\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*ON\s+CONFLICT\s*\(id\)\s*DO\s+NOTHING\s*$`

	mock.ExpectExec(q).
		WithArgs("ab12cd34-x-s.mov", "ab12cd34", "sub-1", int64(1000)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	written, err := repo.Insert(context.Background(), &models.Clip{
		ID: "ab12cd34-x-s.mov", Code: "ab12cd34", AccountID: "sub-1", CreatedAt: 1000,
	})
	if err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	if !written {
		t.Fatal("expected row to be written")
	}
}

func TestInsert_Redelivery(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT\s+INTO\s+clips`).
		WithArgs("dup", "code", "sub-1", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	written, err := repo.Insert(context.Background(), &models.Clip{ID: "dup", Code: "code", AccountID: "sub-1", CreatedAt: 1})
	if err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	if written {
		t.Fatal("redelivered insert must be a no-op")
	}
}

func TestInsert_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT\s+INTO\s+clips`).
		WithArgs("k", "c", "a", int64(1)).
		WillReturnError(errors.New("db down"))

	_, err := repo.Insert(context.Background(), &models.Clip{ID: "k", Code: "c", AccountID: "a", CreatedAt: 1})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestListByCode_AscendingScan(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+id,\s*code,\s*account_id,\s*created_at\s+FROM\s+clips\s+WHERE\s+code\s*=\s*\$1\s+ORDER\s+BY\s+created_at\s+ASC,\s*id\s+ASC\s*$`

	rows := sqlmock.NewRows([]string{"id", "code", "account_id", "created_at"}).
		AddRow("a", "c1", "sub-1", int64(1)).
		AddRow("b", "c1", "sub-1", int64(2))
	mock.ExpectQuery(q).WithArgs("c1").WillReturnRows(rows)

	got, err := repo.ListByCode(context.Background(), "c1")
	if err != nil {
		t.Fatalf("ListByCode error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("unexpected clips: %+v", got)
	}
}

func TestListByCode_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "code", "account_id", "created_at"})
	mock.ExpectQuery(`SELECT\s+id,\s*code`).WithArgs("nobody").WillReturnRows(rows)

	got, err := repo.ListByCode(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("ListByCode error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestCodeExists(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+EXISTS\s*\(SELECT\s+1\s+FROM\s+clips\s+WHERE\s+code\s*=\s*\$1\)\s*$`

	mock.ExpectQuery(q).WithArgs("taken").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(q).WithArgs("free").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.CodeExists(context.Background(), "taken")
	if err != nil || !exists {
		t.Fatalf("want exists=true, got %v, %v", exists, err)
	}
	exists, err = repo.CodeExists(context.Background(), "free")
	if err != nil || exists {
		t.Fatalf("want exists=false, got %v, %v", exists, err)
	}
}

func TestDistinctCodesByAccount(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+DISTINCT\s+code\s+FROM\s+clips\s+WHERE\s+account_id\s*=\s*\$1\s*$`

	rows := sqlmock.NewRows([]string{"code"}).AddRow("abc1234d").AddRow("xyz9999a")
	mock.ExpectQuery(q).WithArgs("sub-1").WillReturnRows(rows)

	got, err := repo.DistinctCodesByAccount(context.Background(), "sub-1")
	if err != nil {
		t.Fatalf("DistinctCodesByAccount error: %v", err)
	}
	if len(got) != 2 || got[0] != "abc1234d" || got[1] != "xyz9999a" {
		t.Fatalf("unexpected codes: %v", got)
	}
}
