package jobs

import (
	"context"
	"log/slog"
	"time"

	"dronedelivery/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultOverdueOrdersSchedule checks for overdue orders every five minutes.
const DefaultOverdueOrdersSchedule = "0 */5 * * * *"

// OverdueOrdersJob reports active orders whose estimated delivery date has passed.
type OverdueOrdersJob struct {
	handler  ActiveOrdersHandler
	schedule string
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOverdueOrdersJob creates the job. An empty schedule falls back to DefaultOverdueOrdersSchedule.
func NewOverdueOrdersJob(
	handler ActiveOrdersHandler,
	schedule string,
	now func() time.Time,
	logger *slog.Logger,
) *OverdueOrdersJob {
	if schedule == "" {
		schedule = DefaultOverdueOrdersSchedule
	}
	if now == nil {
		now = time.Now
	}
	return &OverdueOrdersJob{
		handler:  handler,
		schedule: schedule,
		now:      now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "overdue_orders_job"),
	}
}

// Run performs a single pass and returns the number of overdue orders found.
func (j *OverdueOrdersJob) Run(ctx context.Context) (int, error) {
	views, err := j.handler.Handle(ctx, queries.NewGetActiveOrdersQuery())
	if err != nil {
		return 0, err
	}

	now := j.now()
	overdue := 0
	for _, v := range views {
		if !v.DeliveryDate.Before(now) {
			continue
		}
		overdue++
		j.logger.WarnContext(ctx, "Order is overdue",
			slog.Int64("order_id", v.ID),
			slog.String("package_code", v.PackageCode),
			slog.String("status", v.Status),
			slog.Time("delivery_date", v.DeliveryDate),
			slog.Duration("late_by", now.Sub(v.DeliveryDate)))
	}
	return overdue, nil
}

// Start schedules the job. It fails on an invalid cron spec.
func (j *OverdueOrdersJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Overdue orders job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue orders job started", "schedule", j.schedule)
	return nil
}

// Stop halts scheduling and waits for a running check to finish.
func (j *OverdueOrdersJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Overdue orders job stopped")
}
