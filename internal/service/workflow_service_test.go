package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"receipt-desk/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func seedTransaction(txs *fakeTransactions, status models.TransactionStatus, amount float64) *models.Transaction {
	now := time.Now()
	tx := &models.Transaction{
		ID:               uuid.New(),
		CompanyID:        uuid.New(),
		UserID:           partnerActor.UserID,
		Amount:           amount,
		ReceiptURL:       "https://blobs.test/r.jpg",
		DateExpected:     calendarDay(now, time.UTC),
		Status:           status,
		ProfitPercentage: models.DefaultProfitPercentage,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	_ = txs.Create(context.Background(), tx)
	return tx
}

func TestApproveAndReject(t *testing.T) {
	txs := newFakeTransactions()
	svc := NewWorkflowService(txs, zap.NewNop())
	ctx := context.Background()

	a := seedTransaction(txs, models.StatusPending, 10)
	got, err := svc.Approve(ctx, adminActor, a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != models.StatusApproved {
		t.Fatalf("want approved, got %s", got.Status)
	}

	if _, err := svc.Approve(ctx, adminActor, a.ID); !errors.Is(err, ErrInvalidStateTransition) {
		t.Fatalf("approving twice: want invalid transition, got %v", err)
	}
	if _, err := svc.Reject(ctx, adminActor, a.ID); !errors.Is(err, ErrInvalidStateTransition) {
		t.Fatalf("rejecting approved: want invalid transition, got %v", err)
	}

	r := seedTransaction(txs, models.StatusPending, 10)
	if got, err := svc.Reject(ctx, adminActor, r.ID); err != nil || got.Status != models.StatusRejected {
		t.Fatalf("reject failed: %v", err)
	}
	if _, err := svc.Approve(ctx, adminActor, r.ID); !errors.Is(err, ErrInvalidStateTransition) {
		t.Fatalf("approving rejected: want invalid transition, got %v", err)
	}

	if _, err := svc.Approve(ctx, adminActor, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestWorkflowRequiresAdmin(t *testing.T) {
	txs := newFakeTransactions()
	svc := NewWorkflowService(txs, zap.NewNop())
	ctx := context.Background()
	tx := seedTransaction(txs, models.StatusPending, 10)

	if _, err := svc.Approve(ctx, partnerActor, tx.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("approve: want forbidden, got %v", err)
	}
	if _, err := svc.SetProfitPercentage(ctx, partnerActor, tx.ID, 5); !errors.Is(err, ErrForbidden) {
		t.Fatalf("profit: want forbidden, got %v", err)
	}
	if err := svc.Delete(ctx, partnerActor, tx.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("delete: want forbidden, got %v", err)
	}
	if _, err := svc.ListAll(ctx, partnerActor); !errors.Is(err, ErrForbidden) {
		t.Fatalf("list: want forbidden, got %v", err)
	}

	stored, _ := txs.GetByID(ctx, tx.ID)
	if stored.Status != models.StatusPending {
		t.Fatal("forbidden calls must not change the record")
	}
}

func TestSetProfitPercentage(t *testing.T) {
	txs := newFakeTransactions()
	svc := NewWorkflowService(txs, zap.NewNop())
	ctx := context.Background()

	pending := seedTransaction(txs, models.StatusPending, 10)
	for _, v := range []float64{0, 12.5, 100} {
		got, err := svc.SetProfitPercentage(ctx, adminActor, pending.ID, v)
		if err != nil {
			t.Fatalf("value %v: %v", v, err)
		}
		if got.ProfitPercentage != v {
			t.Fatalf("want %v, got %v", v, got.ProfitPercentage)
		}
	}

	if got, err := svc.SetProfitPercentage(ctx, adminActor, pending.ID, 33.33); err != nil || got.ProfitPercentage != 33.33 {
		t.Fatalf("two decimals: want 33.33, got %v (%v)", got, err)
	}

	for _, v := range []float64{-0.01, 100.01, 33.333, 12.3456} {
		if _, err := svc.SetProfitPercentage(ctx, adminActor, pending.ID, v); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("value %v: want invalid argument, got %v", v, err)
		}
	}

	approved := seedTransaction(txs, models.StatusApproved, 10)
	if _, err := svc.SetProfitPercentage(ctx, adminActor, approved.ID, 20); !errors.Is(err, ErrInvalidStateTransition) {
		t.Fatalf("want invalid transition on approved, got %v", err)
	}
	stored, _ := txs.GetByID(ctx, approved.ID)
	if stored.ProfitPercentage != models.DefaultProfitPercentage {
		t.Fatal("approved transaction profit must not change")
	}
}

func TestDeleteOnlyPending(t *testing.T) {
	txs := newFakeTransactions()
	tracking := newFakeTracking(txs)
	svc := NewWorkflowService(txs, zap.NewNop())
	ctx := context.Background()

	pending := seedTransaction(txs, models.StatusPending, 10)
	_ = tracking.Upsert(ctx, &models.DailyTracking{
		CompanyID: pending.CompanyID, TrackingDate: pending.DateExpected, HasUploaded: true, TransactionID: pending.ID,
	})

	if err := svc.Delete(ctx, adminActor, pending.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := txs.GetByID(ctx, pending.ID); err == nil {
		t.Fatal("transaction should be gone")
	}
	if dt, ok := tracking.get(pending.CompanyID, pending.DateExpected); !ok || dt.TransactionID != pending.ID {
		t.Fatal("tracking row must survive with its dangling pointer")
	}

	approved := seedTransaction(txs, models.StatusApproved, 10)
	if err := svc.Delete(ctx, adminActor, approved.ID); !errors.Is(err, ErrInvalidStateTransition) {
		t.Fatalf("want invalid transition, got %v", err)
	}
	if err := svc.Delete(ctx, adminActor, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestConcurrentEditsDoNotCorruptRecord(t *testing.T) {
	txs := newFakeTransactions()
	svc := NewWorkflowService(txs, zap.NewNop())
	ctx := context.Background()
	tx := seedTransaction(txs, models.StatusPending, 75)

	values := []float64{5, 15, 25, 35, 45}
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i == 25 {
				_, _ = svc.Approve(ctx, adminActor, tx.ID)
				return
			}
			_, err := svc.SetProfitPercentage(ctx, adminActor, tx.ID, values[i%len(values)])
			if err != nil && !errors.Is(err, ErrInvalidStateTransition) {
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	got, err := txs.GetByID(ctx, tx.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != models.StatusApproved {
		t.Fatalf("want approved, got %s", got.Status)
	}
	valid := got.ProfitPercentage == models.DefaultProfitPercentage
	for _, v := range values {
		valid = valid || got.ProfitPercentage == v
	}
	if !valid {
		t.Fatalf("profit percentage %v was never written", got.ProfitPercentage)
	}
	if got.Amount != 75 || got.CompanyID != tx.CompanyID || got.ReceiptURL != tx.ReceiptURL {
		t.Fatalf("record corrupted: %+v", got)
	}
}

func TestIngestApproveAggregate(t *testing.T) {
	ctx := context.Background()
	f := newIngestionFixture()
	workflow := NewWorkflowService(f.txs, zap.NewNop())

	tx, err := f.svc.IngestReceipt(ctx, f.input(500))
	if err != nil {
		t.Fatal(err)
	}
	if tx.Status != models.StatusPending || tx.Amount != 500 {
		t.Fatalf("unexpected transaction %+v", tx)
	}

	approved, err := workflow.Approve(ctx, adminActor, tx.ID)
	if err != nil {
		t.Fatal(err)
	}
	if approved.Status != models.StatusApproved {
		t.Fatalf("want approved, got %s", approved.Status)
	}

	table, err := workflow.ListAll(ctx, adminActor)
	if err != nil {
		t.Fatal(err)
	}
	if !table.Aggregates.EstimatedProfit.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("want estimated profit 50, got %s", table.Aggregates.EstimatedProfit)
	}
	if !table.Aggregates.TotalApproved.Equal(decimal.NewFromInt(500)) || !table.Aggregates.TotalPending.IsZero() {
		t.Fatalf("unexpected aggregates %+v", table.Aggregates)
	}
}
