package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dreamladder/backoffice/internal/core/domain"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open gorm: %v", err)
	}
	return db, mock
}

func TestAuthRepository_FindByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuthRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "name", "phone", "role", "created_at", "updated_at"}).
		AddRow("user-1", "admin@dreamladder.com", "hash", "Administrator", "", "admin", now, now)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "admin_users" WHERE email = $1`)).
		WithArgs("admin@dreamladder.com", 1).
		WillReturnRows(rows)

	user, err := repo.FindByEmail(context.Background(), "admin@dreamladder.com")
	if err != nil {
		t.Fatalf("find by email: %v", err)
	}
	if user.ID != "user-1" || user.Role != "admin" {
		t.Errorf("unexpected user: %+v", user)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestAuthRepository_FindByEmailNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuthRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "admin_users" WHERE email = $1`)).
		WithArgs("ghost@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestAuthRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuthRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "name", "phone", "role", "created_at", "updated_at"}).
		AddRow("user-1", "admin@dreamladder.com", "hash", "Administrator", "", "admin", now, now)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "admin_users" WHERE id = $1`)).
		WithArgs("user-1", 1).
		WillReturnRows(rows)

	user, err := repo.FindByID(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if user.Email != "admin@dreamladder.com" {
		t.Errorf("unexpected user: %+v", user)
	}
}
