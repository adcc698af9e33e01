package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"receipt-desk/internal/models"
	"receipt-desk/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// WorkflowService moves transactions through pending -> approved | rejected.
// Every guard is a single conditional write, so concurrent edits resolve as
// last write wins without partial updates.
type WorkflowService struct {
	transactions TransactionStore
	logger       *zap.Logger
}

func NewWorkflowService(transactions TransactionStore, logger *zap.Logger) *WorkflowService {
	return &WorkflowService{
		transactions: transactions,
		logger:       logger,
	}
}

// profitScale matches the scale of transactions.profit_percentage.
const profitScale = 2

// AdminTable is every transaction with its aggregates.
type AdminTable struct {
	Transactions []*models.Transaction
	Aggregates   Aggregates
}

func (s *WorkflowService) Approve(ctx context.Context, actor Actor, id uuid.UUID) (*models.Transaction, error) {
	return s.transition(ctx, actor, id, models.StatusApproved)
}

func (s *WorkflowService) Reject(ctx context.Context, actor Actor, id uuid.UUID) (*models.Transaction, error) {
	return s.transition(ctx, actor, id, models.StatusRejected)
}

func (s *WorkflowService) transition(ctx context.Context, actor Actor, id uuid.UUID, next models.TransactionStatus) (*models.Transaction, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	ok, err := s.transactions.UpdateStatusIfPending(ctx, id, next)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !ok {
		return nil, s.explainMiss(ctx, id, next)
	}

	s.logger.Info("Transaction status changed",
		zap.String("transaction_id", id.String()),
		zap.String("status", string(next)),
		zap.String("by", actor.UserID.String()),
	)
	return s.load(ctx, id)
}

// SetProfitPercentage is rejected once the transaction left pending.
func (s *WorkflowService) SetProfitPercentage(ctx context.Context, actor Actor, id uuid.UUID, value float64) (*models.Transaction, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if math.IsNaN(value) || value < 0 || value > 100 {
		return nil, fmt.Errorf("%w: profit percentage must be within [0, 100]", ErrInvalidArgument)
	}
	if decimal.NewFromFloat(value).Exponent() < -profitScale {
		return nil, fmt.Errorf("%w: profit percentage allows at most %d decimal places", ErrInvalidArgument, profitScale)
	}

	ok, err := s.transactions.UpdateProfitPercentageIfPending(ctx, id, value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !ok {
		return nil, s.explainMiss(ctx, id, "")
	}

	return s.load(ctx, id)
}

// Delete removes a pending transaction. A tracking row pointing at it is kept.
func (s *WorkflowService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	ok, err := s.transactions.DeleteIfPending(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !ok {
		return s.explainMiss(ctx, id, "")
	}

	s.logger.Info("Transaction deleted", zap.String("transaction_id", id.String()))
	return nil
}

func (s *WorkflowService) ListAll(ctx context.Context, actor Actor) (*AdminTable, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	txs, err := s.transactions.List(ctx, models.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return &AdminTable{
		Transactions: txs,
		Aggregates:   ComputeAggregates(txs),
	}, nil
}

// explainMiss tells a missing row apart from one that is no longer pending.
func (s *WorkflowService) explainMiss(ctx context.Context, id uuid.UUID, next models.TransactionStatus) error {
	tx, err := s.transactions.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: transaction %s", ErrNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if next != "" {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStateTransition, tx.Status, next)
	}
	return fmt.Errorf("%w: transaction is %s", ErrInvalidStateTransition, tx.Status)
}

func (s *WorkflowService) load(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	tx, err := s.transactions.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: transaction %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return tx, nil
}
