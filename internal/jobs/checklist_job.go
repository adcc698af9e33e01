package jobs

import (
	"context"
	"fmt"
	"time"

	"receipt-desk/internal/service"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type ChecklistSource interface {
	Today() time.Time
	DailyChecklist(ctx context.Context, day time.Time) (*service.DailyChecklist, error)
}

// ChecklistReporter logs, on a schedule, which companies have not uploaded a
// receipt for the current business day.
type ChecklistReporter struct {
	source   ChecklistSource
	schedule string
	location *time.Location
	timeout  time.Duration
	cron     *cron.Cron
	logger   *zap.Logger
}

func NewChecklistReporter(source ChecklistSource, schedule string, location *time.Location, logger *zap.Logger) *ChecklistReporter {
	if location == nil {
		location = time.UTC
	}
	return &ChecklistReporter{
		source:   source,
		schedule: schedule,
		location: location,
		timeout:  30 * time.Second,
		logger:   logger,
	}
}

func (r *ChecklistReporter) Start() error {
	c := cron.New(cron.WithLocation(r.location))
	if _, err := c.AddFunc(r.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		if _, err := r.RunOnce(ctx); err != nil {
			r.logger.Error("Checklist report failed", zap.Error(err))
		}
	}); err != nil {
		return fmt.Errorf("invalid checklist schedule %q: %w", r.schedule, err)
	}

	r.cron = c
	c.Start()
	r.logger.Info("Checklist reporter started",
		zap.String("schedule", r.schedule),
		zap.String("timezone", r.location.String()),
	)
	return nil
}

// Stop waits for a running report to finish.
func (r *ChecklistReporter) Stop() {
	if r.cron == nil {
		return
	}
	<-r.cron.Stop().Done()
}

// RunOnce builds today's checklist and returns the names of companies still
// missing an upload.
func (r *ChecklistReporter) RunOnce(ctx context.Context) ([]string, error) {
	day := r.source.Today()
	checklist, err := r.source.DailyChecklist(ctx, day)
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, e := range checklist.Entries {
		if !e.HasUploaded {
			missing = append(missing, e.Company.Name)
		}
	}

	if len(missing) == 0 {
		r.logger.Info("All companies uploaded today",
			zap.String("date", day.Format("2006-01-02")),
			zap.Int("uploaded", checklist.Uploaded),
		)
		return nil, nil
	}

	r.logger.Warn("Companies missing today's receipt",
		zap.String("date", day.Format("2006-01-02")),
		zap.Int("uploaded", checklist.Uploaded),
		zap.Int("missing", checklist.Missing),
		zap.Strings("companies", missing),
	)
	return missing, nil
}
