package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/dreamladder/backoffice/internal/core/domain"
	"github.com/dreamladder/backoffice/internal/core/ports"
)

type stubTransactionRepo struct {
	items map[string]*domain.Transaction
}

func newStubTransactionRepo() *stubTransactionRepo {
	return &stubTransactionRepo{items: map[string]*domain.Transaction{}}
}

func (r *stubTransactionRepo) List(context.Context, ports.TransactionFilter) ([]domain.Transaction, error) {
	out := make([]domain.Transaction, 0, len(r.items))
	for _, t := range r.items {
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubTransactionRepo) FindByID(_ context.Context, id string) (*domain.Transaction, error) {
	if t, ok := r.items[id]; ok {
		copied := *t
		return &copied, nil
	}
	return nil, domain.ErrTransactionNotFound
}

func (r *stubTransactionRepo) Create(_ context.Context, t *domain.Transaction) error {
	copied := *t
	r.items[t.ID] = &copied
	return nil
}

func (r *stubTransactionRepo) Save(_ context.Context, t *domain.Transaction) error {
	copied := *t
	r.items[t.ID] = &copied
	return nil
}

func (r *stubTransactionRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

type stubReceiptRepo struct {
	items map[string]*domain.Receipt
}

func newStubReceiptRepo() *stubReceiptRepo {
	return &stubReceiptRepo{items: map[string]*domain.Receipt{}}
}

func (r *stubReceiptRepo) List(context.Context) ([]domain.Receipt, error) {
	out := make([]domain.Receipt, 0, len(r.items))
	for _, rc := range r.items {
		out = append(out, *rc)
	}
	return out, nil
}

func (r *stubReceiptRepo) FindByID(_ context.Context, id string) (*domain.Receipt, error) {
	if rc, ok := r.items[id]; ok {
		copied := *rc
		return &copied, nil
	}
	return nil, domain.ErrReceiptNotFound
}

// Create mirrors the production allocator: count existing receipts under the
// prefix, take the next sequence.
func (r *stubReceiptRepo) Create(_ context.Context, rc *domain.Receipt, numberPrefix string) error {
	count := 0
	for _, existing := range r.items {
		if strings.HasPrefix(existing.ReceiptNumber, numberPrefix) {
			count++
		}
	}
	rc.ReceiptNumber = fmt.Sprintf("%s%04d", numberPrefix, count+1)
	copied := *rc
	r.items[rc.ID] = &copied
	return nil
}

func (r *stubReceiptRepo) Save(_ context.Context, rc *domain.Receipt) error {
	copied := *rc
	r.items[rc.ID] = &copied
	return nil
}

func (r *stubReceiptRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func newFinanceFixture(at time.Time) (*FinanceService, *stubReceiptRepo) {
	receipts := newStubReceiptRepo()
	svc := NewFinanceService(newStubTransactionRepo(), receipts, zerolog.Nop())
	svc.now = func() time.Time { return at }
	return svc, receipts
}

func TestFinanceService_ReceiptNumbersAreSequential(t *testing.T) {
	svc, _ := newFinanceFixture(time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC))

	var numbers []string
	for i := 0; i < 3; i++ {
		r, err := svc.CreateReceipt(context.Background(), ports.CreateReceiptInput{
			CustomerName:  "Asha Kumari",
			Amount:        50000,
			PaymentMethod: domain.PaymentMethodUPI,
			IssueDate:     time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC),
			CreatedBy:     "user-1",
		})
		if err != nil {
			t.Fatalf("create receipt %d: %v", i, err)
		}
		numbers = append(numbers, r.ReceiptNumber)
	}

	want := []string{"RCP/2026/03/0001", "RCP/2026/03/0002", "RCP/2026/03/0003"}
	for i := range want {
		if numbers[i] != want[i] {
			t.Errorf("receipt %d number = %q, want %q", i, numbers[i], want[i])
		}
	}
}

func TestFinanceService_CreateReceiptDerivesWords(t *testing.T) {
	svc, _ := newFinanceFixture(time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC))

	r, err := svc.CreateReceipt(context.Background(), ports.CreateReceiptInput{
		CustomerName:  "Ravi Prasad",
		Amount:        1234567,
		PaymentMethod: domain.PaymentMethodCash,
		IssueDate:     time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC),
		CreatedBy:     "user-1",
	})
	if err != nil {
		t.Fatalf("create receipt: %v", err)
	}

	if r.AmountInWords != "Twelve Lakh Thirty Four Thousand Five Hundred Sixty Seven Rupees Only" {
		t.Errorf("amount in words = %q", r.AmountInWords)
	}
	if !strings.HasPrefix(r.ReceiptNumber, "RCP/2026/08/") {
		t.Errorf("receipt number = %q, want RCP/2026/08/ prefix", r.ReceiptNumber)
	}
	if r.CreatedBy != "user-1" {
		t.Errorf("created_by = %q", r.CreatedBy)
	}
}

func TestFinanceService_UpdateReceiptRegeneratesWords(t *testing.T) {
	svc, repo := newFinanceFixture(time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC))

	r, err := svc.CreateReceipt(context.Background(), ports.CreateReceiptInput{
		CustomerName:  "Ravi Prasad",
		Amount:        99,
		PaymentMethod: domain.PaymentMethodCash,
		IssueDate:     time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC),
		CreatedBy:     "user-1",
	})
	if err != nil {
		t.Fatalf("create receipt: %v", err)
	}

	newAmount := 100000.0
	if err := svc.UpdateReceipt(context.Background(), r.ID, ports.UpdateReceiptInput{Amount: &newAmount}); err != nil {
		t.Fatalf("update receipt: %v", err)
	}

	saved := repo.items[r.ID]
	if saved.AmountInWords != "One Lakh Rupees Only" {
		t.Errorf("amount in words = %q, want %q", saved.AmountInWords, "One Lakh Rupees Only")
	}
	if saved.ReceiptNumber != r.ReceiptNumber {
		t.Errorf("receipt number changed: %q -> %q", r.ReceiptNumber, saved.ReceiptNumber)
	}
}

func TestFinanceService_DeleteMissingTransaction(t *testing.T) {
	svc, _ := newFinanceFixture(time.Now())

	err := svc.DeleteTransaction(context.Background(), "no-such-id")
	if !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Fatalf("err = %v, want ErrTransactionNotFound", err)
	}
}
