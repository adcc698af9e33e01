package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func TestExportTransactions(t *testing.T) {
	ctx := context.Background()
	f := newIngestionFixture()
	f.txs.names[f.acme.ID] = f.acme.Name
	workflow := NewWorkflowService(f.txs, zap.NewNop())

	tx, err := f.svc.IngestReceipt(ctx, f.input(500))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := workflow.Approve(ctx, adminActor, tx.ID); err != nil {
		t.Fatal(err)
	}

	svc := NewExportService(workflow, zap.NewNop())
	if _, err := svc.ExportTransactions(ctx, partnerActor); !errors.Is(err, ErrForbidden) {
		t.Fatalf("want forbidden, got %v", err)
	}

	data, err := svc.ExportTransactions(ctx, adminActor)
	if err != nil {
		t.Fatal(err)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	defer wb.Close()

	cells := map[string]string{
		"A1": "Date",
		"A2": "2024-06-01",
		"B2": "Acme LLC",
		"C2": "500",
		"E2": "approved",
		"B4": "Total pending",
		"C5": "500",
		"B6": "Estimated profit",
		"C6": "50",
	}
	for cell, want := range cells {
		got, err := wb.GetCellValue(exportSheet, cell)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("%s: want %q got %q", cell, want, got)
		}
	}
}
