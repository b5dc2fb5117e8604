package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/gorm"

	"github.com/dreamladder/backoffice/internal/core/domain"
)

func sampleReceipt() *domain.Receipt {
	return &domain.Receipt{
		ID:            "rcpt-1",
		CustomerName:  "Asha Devi",
		Amount:        50000,
		AmountInWords: "Fifty Thousand Rupees Only",
		Description:   "Booking advance",
		PaymentMethod: "upi",
		IssueDate:     time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC),
		CreatedBy:     "user-1",
	}
}

func expectAllocation(mock sqlmock.Sqlmock, prefix string, count int64, insertErr error) {
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "receipts" WHERE receipt_number LIKE $1`)).
		WithArgs(prefix + "%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(count))
	exec := mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "receipts"`))
	if insertErr != nil {
		exec.WillReturnError(insertErr)
		mock.ExpectRollback()
		return
	}
	exec.WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
}

func TestReceiptRepository_CreateRetriesAfterDuplicateNumber(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReceiptRepository(db)

	prefix := "RCP/2026/08/"

	// A racing insert takes 0007 first; the retry recounts and lands 0008.
	expectAllocation(mock, prefix, 6, gorm.ErrDuplicatedKey)
	expectAllocation(mock, prefix, 7, nil)

	rc := sampleReceipt()
	if err := repo.Create(context.Background(), rc, prefix); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rc.ReceiptNumber != "RCP/2026/08/0008" {
		t.Errorf("receipt number = %q, want RCP/2026/08/0008", rc.ReceiptNumber)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestReceiptRepository_CreateGivesUpAfterRepeatedDuplicates(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReceiptRepository(db)

	prefix := "RCP/2026/08/"
	for i := 0; i < createAttempts; i++ {
		expectAllocation(mock, prefix, 3, gorm.ErrDuplicatedKey)
	}

	err := repo.Create(context.Background(), sampleReceipt(), prefix)
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("err = %v, want wrapped ErrDuplicatedKey", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestReceiptRepository_CreateReturnsNonDuplicateErrors(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReceiptRepository(db)

	prefix := "RCP/2026/08/"
	expectAllocation(mock, prefix, 0, gorm.ErrInvalidData)

	err := repo.Create(context.Background(), sampleReceipt(), prefix)
	if !errors.Is(err, gorm.ErrInvalidData) {
		t.Fatalf("err = %v, want wrapped ErrInvalidData", err)
	}
	// No retry: a non-duplicate failure fails the create outright.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
