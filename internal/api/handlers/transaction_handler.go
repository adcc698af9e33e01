package handlers

import (
	"context"
	"fmt"
	"time"

	"receipt-desk/internal/dto"
	"receipt-desk/internal/models"
	"receipt-desk/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type TransactionHandler struct {
	workflow  *service.WorkflowService
	checklist *service.ChecklistService
	export    *service.ExportService
	logger    *zap.Logger
}

func NewTransactionHandler(
	workflow *service.WorkflowService,
	checklist *service.ChecklistService,
	export *service.ExportService,
	logger *zap.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		workflow:  workflow,
		checklist: checklist,
		export:    export,
		logger:    logger,
	}
}

// ListAll godoc
// @Summary Admin transaction table
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.AdminTableResponse
// @Router /api/v1/admin/transactions [get]
func (h *TransactionHandler) ListAll(c *fiber.Ctx) error {
	actor, err := getActor(c)
	if err != nil {
		return unauthorized(c)
	}

	table, err := h.workflow.ListAll(c.Context(), actor)
	if err != nil {
		return writeServiceError(c, h.logger, err, "Listing transactions")
	}

	resp := dto.AdminTableResponse{
		Transactions: make([]dto.TransactionResponse, len(table.Transactions)),
		Aggregates: dto.AggregatesResponse{
			TotalPending:    table.Aggregates.TotalPending.InexactFloat64(),
			TotalApproved:   table.Aggregates.TotalApproved.InexactFloat64(),
			EstimatedProfit: table.Aggregates.EstimatedProfit.InexactFloat64(),
		},
	}
	for i, tx := range table.Transactions {
		resp.Transactions[i] = toTransactionResponse(tx)
	}
	return c.JSON(resp)
}

// Export godoc
// @Summary Download the admin table as xlsx
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security Bearer
// @Success 200 {file} file
// @Router /api/v1/admin/transactions/export [get]
func (h *TransactionHandler) Export(c *fiber.Ctx) error {
	actor, err := getActor(c)
	if err != nil {
		return unauthorized(c)
	}

	data, err := h.export.ExportTransactions(c.Context(), actor)
	if err != nil {
		return writeServiceError(c, h.logger, err, "Export")
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="transactions-%s.xlsx"`, time.Now().Format(dateLayout)))
	return c.Send(data)
}

// Approve godoc
// @Summary Approve a pending transaction
// @Tags admin
// @Produce json
// @Param id path string true "Transaction ID"
// @Security Bearer
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/v1/admin/transactions/{id}/approve [post]
func (h *TransactionHandler) Approve(c *fiber.Ctx) error {
	return h.transition(c, h.workflow.Approve, "Approval")
}

// Reject godoc
// @Summary Reject a pending transaction
// @Tags admin
// @Produce json
// @Param id path string true "Transaction ID"
// @Security Bearer
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/v1/admin/transactions/{id}/reject [post]
func (h *TransactionHandler) Reject(c *fiber.Ctx) error {
	return h.transition(c, h.workflow.Reject, "Rejection")
}

func (h *TransactionHandler) transition(
	c *fiber.Ctx,
	apply func(ctx context.Context, actor service.Actor, id uuid.UUID) (*models.Transaction, error),
	action string,
) error {
	actor, err := getActor(c)
	if err != nil {
		return unauthorized(c)
	}
	id, ok := parseIDParam(c)
	if !ok {
		return badRequest(c, "Invalid transaction id")
	}

	tx, err := apply(c.Context(), actor, id)
	if err != nil {
		return writeServiceError(c, h.logger, err, action)
	}
	return c.JSON(toTransactionResponse(tx))
}

// SetProfitPercentage godoc
// @Summary Change the profit percentage of a pending transaction
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body dto.SetProfitPercentageRequest true "New value in [0, 100]"
// @Security Bearer
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/v1/admin/transactions/{id}/profit-percentage [put]
func (h *TransactionHandler) SetProfitPercentage(c *fiber.Ctx) error {
	actor, err := getActor(c)
	if err != nil {
		return unauthorized(c)
	}
	id, ok := parseIDParam(c)
	if !ok {
		return badRequest(c, "Invalid transaction id")
	}

	var req dto.SetProfitPercentageRequest
	if problem := bindRequest(c, &req); problem != nil {
		return c.Status(fiber.StatusBadRequest).JSON(problem)
	}

	tx, err := h.workflow.SetProfitPercentage(c.Context(), actor, id, *req.Value)
	if err != nil {
		return writeServiceError(c, h.logger, err, "Profit update")
	}
	return c.JSON(toTransactionResponse(tx))
}

// Delete godoc
// @Summary Delete a pending transaction
// @Tags admin
// @Param id path string true "Transaction ID"
// @Security Bearer
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/v1/admin/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	actor, err := getActor(c)
	if err != nil {
		return unauthorized(c)
	}
	id, ok := parseIDParam(c)
	if !ok {
		return badRequest(c, "Invalid transaction id")
	}

	if err := h.workflow.Delete(c.Context(), actor, id); err != nil {
		return writeServiceError(c, h.logger, err, "Deletion")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Mine godoc
// @Summary The caller's own transactions with payouts
// @Tags transactions
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.PartnerHistoryResponse
// @Router /api/v1/transactions/mine [get]
func (h *TransactionHandler) Mine(c *fiber.Ctx) error {
	actor, err := getActor(c)
	if err != nil {
		return unauthorized(c)
	}

	history, err := h.checklist.PartnerHistory(c.Context(), actor)
	if err != nil {
		return writeServiceError(c, h.logger, err, "Loading history")
	}

	resp := dto.PartnerHistoryResponse{
		FeePercent: history.FeePercent,
		Pending:    toHistoryEntries(history.Pending),
		Processed:  toHistoryEntries(history.Processed),
	}
	return c.JSON(resp)
}

func toHistoryEntries(entries []service.HistoryEntry) []dto.HistoryEntryResponse {
	out := make([]dto.HistoryEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = dto.HistoryEntryResponse{
			Transaction: toTransactionResponse(e.Transaction),
			Payout:      toPayoutResponse(e.Payout),
		}
	}
	return out
}
