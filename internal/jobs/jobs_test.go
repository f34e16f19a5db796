package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"dronedelivery/internal/core/application/usecases/queries"
	"dronedelivery/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockActiveOrdersHandler struct {
	mock.Mock
}

func (m *MockActiveOrdersHandler) Handle(
	ctx context.Context,
	query queries.GetActiveOrdersQuery,
) ([]queries.OrderView, error) {
	args := m.Called(ctx, query)
	views, _ := args.Get(0).([]queries.OrderView)
	return views, args.Error(1)
}

var now = time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

func view(id int64, status string, deliveryDate time.Time) queries.OrderView {
	return queries.OrderView{
		ID:           id,
		PackageCode:  "0123456789abcdef",
		ShipDate:     deliveryDate.Add(-48 * time.Hour),
		DeliveryDate: deliveryDate,
		AccountID:    7,
		Status:       status,
	}
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func TestOverdueOrdersJob_Run(t *testing.T) {
	t.Run("warns about each late order", func(t *testing.T) {
		ctx := t.Context()
		handler := &MockActiveOrdersHandler{}
		handler.On("Handle", ctx, mock.Anything).Return([]queries.OrderView{
			view(1, "InTransit", now.Add(-time.Hour)),
			view(2, "Created", now.Add(time.Hour)),
			view(3, "Dispatched", now.Add(-48*time.Hour)),
			view(4, "Created", now),
		}, nil).Once()
		logger, buf := bufferLogger()

		overdue, err := jobs.NewOverdueOrdersJob(handler, "", clock, logger).Run(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, overdue)
		assert.Equal(t, 2, strings.Count(buf.String(), `"msg":"Order is overdue"`))
		assert.Contains(t, buf.String(), `"order_id":1`)
		assert.Contains(t, buf.String(), `"order_id":3`)
		assert.NotContains(t, buf.String(), `"order_id":2`)
		assert.Contains(t, buf.String(), `"component":"overdue_orders_job"`)
		handler.AssertExpectations(t)
	})

	t.Run("query failure is returned", func(t *testing.T) {
		ctx := t.Context()
		handler := &MockActiveOrdersHandler{}
		handler.On("Handle", ctx, mock.Anything).Return(nil, errors.New("connection refused")).Once()
		logger, _ := bufferLogger()

		_, err := jobs.NewOverdueOrdersJob(handler, "", clock, logger).Run(ctx)

		require.EqualError(t, err, "connection refused")
	})
}

func TestActiveOrdersSummaryJob_Run(t *testing.T) {
	ctx := t.Context()
	handler := &MockActiveOrdersHandler{}
	handler.On("Handle", ctx, mock.Anything).Return([]queries.OrderView{
		view(1, "Created", now),
		view(2, "Created", now),
		view(3, "InTransit", now),
	}, nil).Once()
	logger, buf := bufferLogger()

	counts, err := jobs.NewActiveOrdersSummaryJob(handler, "", logger).Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Created": 2, "Dispatched": 0, "InTransit": 1}, counts)
	assert.Contains(t, buf.String(), `"total":3`)
	assert.Contains(t, buf.String(), `"Created":2`)
	assert.NotContains(t, buf.String(), `"Delivered"`)
}

func TestJobs_StartRejectsBadSchedule(t *testing.T) {
	logger, _ := bufferLogger()
	handler := &MockActiveOrdersHandler{}

	require.Error(t, jobs.NewOverdueOrdersJob(handler, "not a schedule", clock, logger).Start())
	require.Error(t, jobs.NewActiveOrdersSummaryJob(handler, "61 * * * * *", logger).Start())
}

func TestJobManager(t *testing.T) {
	t.Run("starts and stops both jobs", func(t *testing.T) {
		logger, buf := bufferLogger()
		manager := jobs.NewJobManager(&MockActiveOrdersHandler{}, jobs.Schedules{}, clock, logger)

		require.NoError(t, manager.StartAll())
		manager.StopAll()

		assert.Contains(t, buf.String(), "Overdue orders job started")
		assert.Contains(t, buf.String(), "Active orders summary job started")
		assert.Contains(t, buf.String(), "Overdue orders job stopped")
		assert.Contains(t, buf.String(), "Active orders summary job stopped")
	})

	t.Run("failed start stops jobs already running", func(t *testing.T) {
		logger, buf := bufferLogger()
		manager := jobs.NewJobManager(&MockActiveOrdersHandler{}, jobs.Schedules{
			ActiveOrdersSummary: "bogus",
		}, clock, logger)

		err := manager.StartAll()

		require.ErrorContains(t, err, "failed to start active orders summary job")
		assert.Contains(t, buf.String(), "Overdue orders job stopped")
	})
}
