package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"receipt-desk/internal/dto"
	"receipt-desk/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReceiptHandler struct {
	scanner   *service.ReceiptScanner
	ingestion *service.IngestionService
	maxBytes  int64
	logger    *zap.Logger
}

func NewReceiptHandler(scanner *service.ReceiptScanner, ingestion *service.IngestionService, maxBytes int64, logger *zap.Logger) *ReceiptHandler {
	return &ReceiptHandler{
		scanner:   scanner,
		ingestion: ingestion,
		maxBytes:  maxBytes,
		logger:    logger,
	}
}

// Scan godoc
// @Summary Suggest amount and company for a receipt
// @Description Best-effort extraction; an empty suggestion is a normal answer
// @Tags receipts
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Receipt image or PDF"
// @Security Bearer
// @Success 200 {object} dto.ScanResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/receipts/scan [post]
func (h *ReceiptHandler) Scan(c *fiber.Ctx) error {
	data, name, contentType, err := h.readFile(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	res := h.scanner.Scan(c.Context(), data, name, contentType)

	resp := dto.ScanResponse{
		Amount:       res.Amount,
		CompanyName:  res.CompanyName,
		CompanyGuess: res.CompanyGuess,
	}
	if res.CompanyID != nil {
		id := res.CompanyID.String()
		resp.CompanyID = &id
	}
	return c.JSON(resp)
}

// Ingest godoc
// @Summary Submit a receipt
// @Description Stores the file, records a pending transaction and marks today's upload
// @Tags receipts
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Receipt image or PDF"
// @Param company_id formData string true "Company ID"
// @Param amount formData number true "Deposited amount"
// @Param notes formData string false "Notes"
// @Security Bearer
// @Success 201 {object} dto.IngestReceiptResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/v1/receipts [post]
func (h *ReceiptHandler) Ingest(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var form dto.IngestReceiptForm
	if problem := bindRequest(c, &form); problem != nil {
		return c.Status(fiber.StatusBadRequest).JSON(problem)
	}
	companyID, err := uuid.Parse(form.CompanyID)
	if err != nil {
		return badRequest(c, "Invalid company id")
	}

	data, name, contentType, err := h.readFile(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	tx, err := h.ingestion.IngestReceipt(c.Context(), service.IngestReceiptInput{
		CompanyID:   companyID,
		Amount:      *form.Amount,
		Notes:       form.Notes,
		File:        data,
		FileName:    name,
		ContentType: contentType,
		UserID:      userID,
	})
	if err != nil && !(tx != nil && errors.Is(err, service.ErrTrackingIncomplete)) {
		return writeServiceError(c, h.logger, err, "Receipt submission")
	}

	resp := dto.IngestReceiptResponse{Transaction: toTransactionResponse(tx)}
	if err != nil {
		resp.Warning = "Receipt saved, but today's checklist was not updated"
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *ReceiptHandler) readFile(c *fiber.Ctx) ([]byte, string, string, error) {
	file, err := c.FormFile("file")
	if err != nil {
		return nil, "", "", errors.New("file is required")
	}
	if h.maxBytes > 0 && file.Size > h.maxBytes {
		return nil, "", "", errors.New("file is too large")
	}

	data, err := readMultipart(file)
	if err != nil {
		return nil, "", "", errors.New("failed to read file")
	}
	if len(data) == 0 {
		return nil, "", "", errors.New("file is empty")
	}

	contentType := strings.ToLower(strings.TrimSpace(file.Header.Get("Content-Type")))
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = strings.TrimSpace(contentType[:i])
	}

	return data, file.Filename, contentType, nil
}

func readMultipart(file *multipart.FileHeader) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return io.ReadAll(src)
}
