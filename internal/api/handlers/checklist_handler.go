package handlers

import (
	"receipt-desk/internal/dto"
	"receipt-desk/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChecklistHandler struct {
	checklist *service.ChecklistService
	logger    *zap.Logger
}

func NewChecklistHandler(checklist *service.ChecklistService, logger *zap.Logger) *ChecklistHandler {
	return &ChecklistHandler{
		checklist: checklist,
		logger:    logger,
	}
}

// Companies godoc
// @Summary List companies
// @Tags companies
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.CompanyResponse
// @Router /api/v1/companies [get]
func (h *ChecklistHandler) Companies(c *fiber.Ctx) error {
	companies, err := h.checklist.Companies(c.Context())
	if err != nil {
		return writeServiceError(c, h.logger, err, "Listing companies")
	}

	resp := make([]dto.CompanyResponse, len(companies))
	for i, company := range companies {
		resp[i] = toCompanyResponse(company)
	}
	return c.JSON(resp)
}

// Today godoc
// @Summary Daily upload checklist
// @Tags checklist
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Security Bearer
// @Success 200 {object} dto.DailyChecklistResponse
// @Router /api/v1/checklist/today [get]
func (h *ChecklistHandler) Today(c *fiber.Ctx) error {
	day, ok := parseDateQuery(c, h.checklist.Today())
	if !ok {
		return badRequest(c, "Invalid date, expected YYYY-MM-DD")
	}

	list, err := h.checklist.DailyChecklist(c.Context(), day)
	if err != nil {
		return writeServiceError(c, h.logger, err, "Loading checklist")
	}

	resp := dto.DailyChecklistResponse{
		Date:       list.Date.Format(dateLayout),
		Entries:    make([]dto.ChecklistEntryResponse, len(list.Entries)),
		Uploaded:   list.Uploaded,
		Missing:    list.Missing,
		FeePercent: list.FeePercent,
		Payout:     toPayoutResponse(list.Payout),
	}
	for i, e := range list.Entries {
		entry := dto.ChecklistEntryResponse{
			Company:     toCompanyResponse(e.Company),
			HasUploaded: e.HasUploaded,
			Amount:      e.Amount,
		}
		if e.TransactionID != nil {
			id := e.TransactionID.String()
			entry.TransactionID = &id
		}
		resp.Entries[i] = entry
	}
	return c.JSON(resp)
}

// Overview godoc
// @Summary Admin daily overview
// @Tags admin
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Security Bearer
// @Success 200 {object} dto.OverviewResponse
// @Router /api/v1/admin/overview [get]
func (h *ChecklistHandler) Overview(c *fiber.Ctx) error {
	actor, err := getActor(c)
	if err != nil {
		return unauthorized(c)
	}
	day, ok := parseDateQuery(c, h.checklist.Today())
	if !ok {
		return badRequest(c, "Invalid date, expected YYYY-MM-DD")
	}

	ov, err := h.checklist.Overview(c.Context(), actor, day)
	if err != nil {
		return writeServiceError(c, h.logger, err, "Loading overview")
	}

	resp := dto.OverviewResponse{
		Date:     ov.Date.Format(dateLayout),
		Rows:     make([]dto.OverviewRowResponse, len(ov.Rows)),
		Uploaded: ov.Uploaded,
		Pending:  ov.Pending,
		Approved: ov.Approved,
		Total:    ov.Total.InexactFloat64(),
	}
	for i, row := range ov.Rows {
		resp.Rows[i] = dto.OverviewRowResponse{Company: toCompanyResponse(row.Company)}
		if row.Transaction != nil {
			tx := toTransactionResponse(row.Transaction)
			resp.Rows[i].Transaction = &tx
		}
	}
	return c.JSON(resp)
}
