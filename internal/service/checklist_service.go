package service

import (
	"context"
	"fmt"
	"time"

	"receipt-desk/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// FeeSource supplies the platform fee once per view.
type FeeSource interface {
	PlatformFee(ctx context.Context) float64
}

type ChecklistEntry struct {
	Company       *models.Company
	HasUploaded   bool
	TransactionID *uuid.UUID
	Amount        *float64
}

type DailyChecklist struct {
	Date       time.Time
	Entries    []ChecklistEntry
	Uploaded   int
	Missing    int
	FeePercent float64
	Payout     Payout
}

type OverviewRow struct {
	Company *models.Company
	// Transaction is the company's first transaction of the day, if any.
	Transaction *models.Transaction
}

type Overview struct {
	Date     time.Time
	Rows     []OverviewRow
	Uploaded int
	Pending  int
	Approved int
	Total    decimal.Decimal
}

type HistoryEntry struct {
	Transaction *models.Transaction
	Payout      Payout
}

type PartnerHistory struct {
	FeePercent float64
	Pending    []HistoryEntry
	Processed  []HistoryEntry
}

type ChecklistService struct {
	companies    CompanyStore
	transactions TransactionStore
	tracking     TrackingStore
	fees         FeeSource
	location     *time.Location
	now          Clock
	logger       *zap.Logger
}

func NewChecklistService(
	companies CompanyStore,
	transactions TransactionStore,
	tracking TrackingStore,
	fees FeeSource,
	location *time.Location,
	logger *zap.Logger,
) *ChecklistService {
	if location == nil {
		location = time.UTC
	}
	return &ChecklistService{
		companies:    companies,
		transactions: transactions,
		tracking:     tracking,
		fees:         fees,
		location:     location,
		now:          time.Now,
		logger:       logger,
	}
}

// Today is the current calendar date in the business time zone.
func (s *ChecklistService) Today() time.Time {
	return calendarDay(s.now(), s.location)
}

// DailyChecklist lists every company with whether it uploaded on day. A
// tracking row whose transaction was deleted does not count.
func (s *ChecklistService) DailyChecklist(ctx context.Context, day time.Time) (*DailyChecklist, error) {
	day = calendarDay(day, time.UTC)

	companies, err := s.companies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	uploads, err := s.tracking.ListUploadedOn(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	linked := make(map[uuid.UUID]*models.TrackedUpload, len(uploads))
	for _, u := range uploads {
		if u.HasUploaded && !u.Linked.IsNone() {
			linked[u.CompanyID] = u
		}
	}

	fee := s.fees.PlatformFee(ctx)
	out := &DailyChecklist{Date: day, FeePercent: fee}
	gross := decimal.Zero

	for _, c := range companies {
		entry := ChecklistEntry{Company: c}
		if u, ok := linked[c.ID]; ok {
			amount, _ := u.Linked.First()
			txID := u.TransactionID
			entry.HasUploaded = true
			entry.TransactionID = &txID
			entry.Amount = &amount
			gross = gross.Add(decimal.NewFromFloat(amount))
			out.Uploaded++
		} else {
			out.Missing++
		}
		out.Entries = append(out.Entries, entry)
	}

	out.Payout = payoutOf(gross, fee)
	return out, nil
}

// Overview shows each company's first transaction of the day.
func (s *ChecklistService) Overview(ctx context.Context, actor Actor, day time.Time) (*Overview, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	day = calendarDay(day, time.UTC)

	companies, err := s.companies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	txs, err := s.transactions.List(ctx, models.TransactionFilter{DateExpected: &day})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	first := make(map[uuid.UUID]*models.Transaction)
	out := &Overview{Date: day, Total: decimal.Zero}
	for _, tx := range txs {
		if _, seen := first[tx.CompanyID]; !seen {
			first[tx.CompanyID] = tx
		}
		out.Total = out.Total.Add(decimal.NewFromFloat(tx.Amount))
	}

	for _, c := range companies {
		row := OverviewRow{Company: c, Transaction: first[c.ID]}
		if row.Transaction != nil {
			out.Uploaded++
			switch row.Transaction.Status {
			case models.StatusPending:
				out.Pending++
			case models.StatusApproved:
				out.Approved++
			}
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}

// PartnerHistory returns the actor's own transactions, newest first.
func (s *ChecklistService) PartnerHistory(ctx context.Context, actor Actor) (*PartnerHistory, error) {
	userID := actor.UserID
	txs, err := s.transactions.List(ctx, models.TransactionFilter{UserID: &userID})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	fee := s.fees.PlatformFee(ctx)
	out := &PartnerHistory{FeePercent: fee}
	for _, tx := range txs {
		entry := HistoryEntry{Transaction: tx, Payout: ComputePayout(tx.Amount, fee)}
		if tx.Status == models.StatusPending {
			out.Pending = append(out.Pending, entry)
		} else {
			out.Processed = append(out.Processed, entry)
		}
	}
	return out, nil
}

// Companies lists the registry for the upload form.
func (s *ChecklistService) Companies(ctx context.Context) ([]*models.Company, error) {
	companies, err := s.companies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return companies, nil
}
