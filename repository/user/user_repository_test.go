package user

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/omartarek/e-commerce-api/model"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	conn := sqlx.NewDb(db, "sqlmock")
	t.Cleanup(func() { _ = conn.Close() })
	return conn, mock
}

func userColumns() []string {
	return []string{"id", "email", "username", "password", "first_name", "last_name", "phone_number"}
}

func TestUserRepository_Get_ByEmail(t *testing.T) {
	conn, mock := newMockDB(t)
	repo := NewUserRepository(conn)

	mock.ExpectQuery(getUserBase + " AND email = ?").
		WithArgs("test@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(1, "test@example.com", "testuser", "hashed", "Test", "User", "081234567890"))

	got, err := repo.Get(context.Background(), &model.UserFilter{Email: "test@example.com"})
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got == nil || got.ID != 1 || got.Email != "test@example.com" {
		t.Fatalf("Get() = %+v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserRepository_Get_NoRows(t *testing.T) {
	conn, mock := newMockDB(t)
	repo := NewUserRepository(conn)

	mock.ExpectQuery(getUserBase + " AND email = ?").
		WithArgs("missing@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns()))

	got, err := repo.Get(context.Background(), &model.UserFilter{Email: "missing@example.com"})
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != nil {
		t.Fatalf("Get() = %+v, want nil on no rows", got)
	}
}

func TestUserRepository_GetTx_ExcludeID(t *testing.T) {
	conn, mock := newMockDB(t)
	repo := NewUserRepository(conn)

	mock.ExpectBegin()
	mock.ExpectQuery(getUserBase + " AND email = ? AND id != ?").
		WithArgs("taken@example.com", uint64(3)).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(9, "taken@example.com", "other", "hashed", "Other", "User", "080000000000"))

	tx, err := conn.BeginTxx(context.Background(), nil)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}

	got, err := repo.GetTx(context.Background(), tx, &model.UserFilter{Email: "taken@example.com", ExcludeID: 3})
	if err != nil {
		t.Fatalf("GetTx() error = %v", err)
	}
	if got == nil || got.ID != 9 {
		t.Fatalf("GetTx() = %+v", got)
	}
}

func TestUserRepository_CreateTx(t *testing.T) {
	conn, mock := newMockDB(t)
	repo := NewUserRepository(conn)

	mock.ExpectBegin()
	mock.ExpectExec(insertUserQuery).
		WithArgs("test@example.com", "testuser", "hashed", "Test", "User", "081234567890").
		WillReturnResult(sqlmock.NewResult(42, 1))

	tx, err := conn.BeginTxx(context.Background(), nil)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}

	entity := &model.UserEntity{
		Email:       "test@example.com",
		Username:    "testuser",
		Password:    "hashed",
		FirstName:   "Test",
		LastName:    "User",
		PhoneNumber: "081234567890",
	}

	got, err := repo.CreateTx(context.Background(), tx, entity)
	if err != nil {
		t.Fatalf("CreateTx() error = %v", err)
	}
	if got.ID != 42 {
		t.Fatalf("CreateTx() id = %d, want 42", got.ID)
	}
}

func TestUserRepository_UpdateTx(t *testing.T) {
	conn, mock := newMockDB(t)
	repo := NewUserRepository(conn)

	mock.ExpectBegin()
	mock.ExpectExec(updateUserQuery).
		WithArgs("new@example.com", "newname", "pre-hashed", "New", "Name", "089999999999", uint64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	tx, err := conn.BeginTxx(context.Background(), nil)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}

	entity := &model.UserEntity{
		ID:          3,
		Email:       "new@example.com",
		Username:    "newname",
		Password:    "pre-hashed",
		FirstName:   "New",
		LastName:    "Name",
		PhoneNumber: "089999999999",
	}

	if err := repo.UpdateTx(context.Background(), tx, entity); err != nil {
		t.Fatalf("UpdateTx() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
