package service

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"receipt-desk/internal/models"

	"github.com/disintegration/imaging"
	"github.com/gen2brain/go-fitz"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ScanResult pre-fills the upload form. Every field is optional.
type ScanResult struct {
	Amount       *float64
	CompanyID    *uuid.UUID
	CompanyName  string
	CompanyGuess string
	RawText      string
}

type ReceiptScanner struct {
	companies    CompanyStore
	extractor    Extractor
	timeout      time.Duration
	maxDimension int
	logger       *zap.Logger
}

// NewReceiptScanner accepts a nil extractor, in which case every scan is empty.
func NewReceiptScanner(companies CompanyStore, extractor Extractor, timeout time.Duration, maxDimension int, logger *zap.Logger) *ReceiptScanner {
	return &ReceiptScanner{
		companies:    companies,
		extractor:    extractor,
		timeout:      timeout,
		maxDimension: maxDimension,
		logger:       logger,
	}
}

// Scan suggests an amount and a company for a receipt. It never fails: any
// problem along the way yields an empty or partial result.
func (s *ReceiptScanner) Scan(ctx context.Context, data []byte, fileName, mimeType string) *ScanResult {
	result := &ScanResult{}
	if s.extractor == nil || len(data) == 0 {
		return result
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	registry, err := s.companies.List(ctx)
	if err != nil {
		s.logger.Warn("Company registry unavailable, scanning without it", zap.Error(err))
		registry = nil
	}

	answer, err := s.extract(ctx, data, fileName, mimeType, buildScanPrompt(registry))
	if err != nil {
		s.logger.Warn("Receipt extraction failed", zap.String("file", fileName), zap.Error(err))
		return result
	}
	result.RawText = answer

	parsed := ParseExtraction(answer)
	result.Amount = parsed.Amount
	if parsed.Company != nil {
		result.CompanyGuess = *parsed.Company
		if c := ResolveCompany(*parsed.Company, registry); c != nil {
			id := c.ID
			result.CompanyID = &id
			result.CompanyName = c.Name
		}
	}

	s.logger.Info("Receipt scanned",
		zap.String("file", fileName),
		zap.Bool("amount_found", result.Amount != nil),
		zap.Bool("company_resolved", result.CompanyID != nil),
	)
	return result
}

func (s *ReceiptScanner) extract(ctx context.Context, data []byte, fileName, mimeType, prompt string) (string, error) {
	switch {
	case mimeType == "application/pdf":
		text, err := pdfText(data)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrExtraction, err)
		}
		return s.extractor.ExtractFromText(ctx, text, prompt)

	case strings.HasPrefix(mimeType, "image/"):
		image, name, mt := s.prepareImage(data, fileName, mimeType)
		return s.extractor.ExtractFromImage(ctx, image, name, mt, prompt)
	}

	return "", fmt.Errorf("%w: unsupported content type %q", ErrExtraction, mimeType)
}

// prepareImage downscales large photos before upload. Images that cannot be
// decoded locally are sent as they are.
func (s *ReceiptScanner) prepareImage(data []byte, fileName, mimeType string) ([]byte, string, string) {
	if s.maxDimension <= 0 {
		return data, fileName, mimeType
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		s.logger.Debug("Image not decodable locally, sending original", zap.String("mime", mimeType), zap.Error(err))
		return data, fileName, mimeType
	}

	bounds := img.Bounds()
	if bounds.Dx() > s.maxDimension || bounds.Dy() > s.maxDimension {
		img = imaging.Fit(img, s.maxDimension, s.maxDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return data, fileName, mimeType
	}

	name := strings.TrimSuffix(fileName, filepath.Ext(fileName)) + ".jpg"
	return buf.Bytes(), name, "image/jpeg"
}

func pdfText(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var sb strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("no text found in PDF")
	}
	return text, nil
}

func buildScanPrompt(registry []*models.Company) string {
	var sb strings.Builder
	sb.WriteString("Extract the deposited amount and the receiving company from this receipt.")
	if len(registry) > 0 {
		sb.WriteString(" The company is most likely one of: ")
		for i, c := range registry {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(c.Name)
		}
		sb.WriteString(".")
	}
	sb.WriteString(` Reply with JSON only: {"amount": <number>, "company": "<name or UNKNOWN>"}.`)
	return sb.String()
}
