package jobs

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"receipt-desk/internal/models"
	"receipt-desk/internal/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type stubChecklist struct {
	day       time.Time
	checklist *service.DailyChecklist
	err       error
	asked     time.Time
}

func (s *stubChecklist) Today() time.Time { return s.day }

func (s *stubChecklist) DailyChecklist(ctx context.Context, day time.Time) (*service.DailyChecklist, error) {
	s.asked = day
	return s.checklist, s.err
}

func company(name string) *models.Company {
	return &models.Company{ID: uuid.New(), Name: name}
}

func TestRunOnceReportsMissing(t *testing.T) {
	day := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	stub := &stubChecklist{
		day: day,
		checklist: &service.DailyChecklist{
			Date: day,
			Entries: []service.ChecklistEntry{
				{Company: company("Acme"), HasUploaded: true},
				{Company: company("Globex")},
				{Company: company("Initech")},
			},
			Uploaded: 1,
			Missing:  2,
		},
	}

	r := NewChecklistReporter(stub, "0 18 * * *", nil, zap.NewNop())
	missing, err := r.RunOnce(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !stub.asked.Equal(day) {
		t.Fatalf("asked for %v, want %v", stub.asked, day)
	}
	if want := []string{"Globex", "Initech"}; !reflect.DeepEqual(missing, want) {
		t.Fatalf("want %v, got %v", want, missing)
	}
}

func TestRunOnceAllUploaded(t *testing.T) {
	stub := &stubChecklist{
		checklist: &service.DailyChecklist{
			Entries:  []service.ChecklistEntry{{Company: company("Acme"), HasUploaded: true}},
			Uploaded: 1,
		},
	}

	r := NewChecklistReporter(stub, "0 18 * * *", nil, zap.NewNop())
	missing, err := r.RunOnce(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(missing) != 0 {
		t.Fatalf("want none missing, got %v", missing)
	}
}

func TestRunOncePropagatesError(t *testing.T) {
	boom := errors.New("db down")
	r := NewChecklistReporter(&stubChecklist{err: boom}, "0 18 * * *", nil, zap.NewNop())
	if _, err := r.RunOnce(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("want %v, got %v", boom, err)
	}
}

func TestStartRejectsBadSchedule(t *testing.T) {
	r := NewChecklistReporter(&stubChecklist{}, "not a schedule", nil, zap.NewNop())
	if err := r.Start(); err == nil {
		r.Stop()
		t.Fatal("want error for bad schedule")
	}
}
