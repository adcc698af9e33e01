package service

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const exportSheet = "Sheet1"

var exportHeaders = []string{"Date", "Company", "Amount", "Profit %", "Status", "Notes", "Receipt URL"}

type AdminTableSource interface {
	ListAll(ctx context.Context, actor Actor) (*AdminTable, error)
}

type ExportService struct {
	source AdminTableSource
	logger *zap.Logger
}

func NewExportService(source AdminTableSource, logger *zap.Logger) *ExportService {
	return &ExportService{
		source: source,
		logger: logger,
	}
}

// ExportTransactions renders the admin table as an xlsx workbook, one row per
// transaction followed by the aggregates.
func (s *ExportService) ExportTransactions(ctx context.Context, actor Actor) ([]byte, error) {
	table, err := s.source.ListAll(ctx, actor)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, h := range exportHeaders {
		if err := setCell(f, i+1, 1, h); err != nil {
			return nil, err
		}
	}

	row := 2
	for _, tx := range table.Transactions {
		values := []interface{}{
			tx.DateExpected.Format("2006-01-02"),
			tx.CompanyName,
			tx.Amount,
			tx.ProfitPercentage,
			string(tx.Status),
			tx.Notes,
			tx.ReceiptURL,
		}
		for col, v := range values {
			if err := setCell(f, col+1, row, v); err != nil {
				return nil, err
			}
		}
		row++
	}

	row++
	totals := [][2]interface{}{
		{"Total pending", table.Aggregates.TotalPending.InexactFloat64()},
		{"Total approved", table.Aggregates.TotalApproved.InexactFloat64()},
		{"Estimated profit", table.Aggregates.EstimatedProfit.InexactFloat64()},
	}
	for _, t := range totals {
		if err := setCell(f, 2, row, t[0]); err != nil {
			return nil, err
		}
		if err := setCell(f, 3, row, t[1]); err != nil {
			return nil, err
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	s.logger.Info("Transactions exported", zap.Int("rows", len(table.Transactions)))
	return buf.Bytes(), nil
}

func setCell(f *excelize.File, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(exportSheet, cell, value)
}
