package jobs

import (
	"context"
	"log/slog"

	"dronedelivery/internal/core/application/usecases/queries"
	"dronedelivery/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
	"github.com/samber/lo"
)

// DefaultActiveOrdersSummarySchedule runs the summary at the top of every hour.
const DefaultActiveOrdersSummarySchedule = "0 0 * * * *"

// ActiveOrdersSummaryJob logs how many orders sit in each non-terminal status.
type ActiveOrdersSummaryJob struct {
	handler  ActiveOrdersHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewActiveOrdersSummaryJob creates a job that logs active order counts per status.
func NewActiveOrdersSummaryJob(handler ActiveOrdersHandler, schedule string, logger *slog.Logger) *ActiveOrdersSummaryJob {
	if schedule == "" {
		schedule = DefaultActiveOrdersSummarySchedule
	}
	return &ActiveOrdersSummaryJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "active_orders_summary_job"),
	}
}

// Run counts active orders per status. Every non-terminal status is present in the
// result, with zero when no order is in it.
func (j *ActiveOrdersSummaryJob) Run(ctx context.Context) (map[string]int, error) {
	views, err := j.handler.Handle(ctx, queries.NewGetActiveOrdersQuery())
	if err != nil {
		return nil, err
	}

	counts := lo.CountValuesBy(views, func(v queries.OrderView) string {
		return v.Status
	})
	for _, s := range order.AllStatuses() {
		if _, ok := counts[s.String()]; !ok && !s.IsTerminal() {
			counts[s.String()] = 0
		}
	}

	attrs := make([]any, 0, len(counts)+1)
	attrs = append(attrs, slog.Int("total", len(views)))
	for _, s := range order.AllStatuses() {
		if n, ok := counts[s.String()]; ok {
			attrs = append(attrs, slog.Int(s.String(), n))
		}
	}
	j.logger.InfoContext(ctx, "Active orders summary", attrs...)

	return counts, nil
}

// Start schedules the job. It fails on an invalid cron spec.
func (j *ActiveOrdersSummaryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Active orders summary job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Active orders summary job started", "schedule", j.schedule)
	return nil
}

// Stop halts scheduling and waits for a running summary to finish.
func (j *ActiveOrdersSummaryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Active orders summary job stopped")
}
