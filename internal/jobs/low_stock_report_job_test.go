package jobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLowStockReader struct {
	mock.Mock
}

func (m *MockLowStockReader) Handle(
	ctx context.Context,
	query queries.GetLowStockProductsQuery,
) ([]queries.ProductView, error) {
	args := m.Called(ctx, query)
	if products, ok := args.Get(0).([]queries.ProductView); ok {
		return products, args.Error(1)
	}
	return nil, args.Error(1)
}

func newTestLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func TestLowStockReportJob_LogsEachProduct(t *testing.T) {
	reader := new(MockLowStockReader)
	reader.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetLowStockProductsQuery) bool {
		return q.Threshold() == 5
	})).Return([]queries.ProductView{
		{ID: kernel.NewUUID(), Name: "Go in Practice", Stock: 1, Category: "Books"},
		{ID: kernel.NewUUID(), Name: "USB-C Hub", Stock: 4, Category: "Accessories"},
	}, nil).Once()

	logger, buf := newTestLogger()
	job := NewLowStockReportJob(reader, 5, "", logger)

	job.run()

	output := buf.String()
	assert.Equal(t, 2, strings.Count(output, "Product stock is low"))
	assert.Contains(t, output, "Go in Practice")
	assert.Contains(t, output, "USB-C Hub")
	reader.AssertExpectations(t)
}

func TestLowStockReportJob_QueryErrorIsLogged(t *testing.T) {
	reader := new(MockLowStockReader)
	reader.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused")).Once()

	logger, buf := newTestLogger()
	job := NewLowStockReportJob(reader, 5, "", logger)

	job.run()

	assert.Contains(t, buf.String(), "Low stock report job failed")
	assert.Contains(t, buf.String(), "connection refused")
}

func TestLowStockReportJob_NegativeThresholdSkipsQuery(t *testing.T) {
	reader := new(MockLowStockReader)
	logger, buf := newTestLogger()
	job := NewLowStockReportJob(reader, -1, "", logger)

	job.run()

	assert.Contains(t, buf.String(), "misconfigured")
	reader.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestLowStockReportJob_InvalidSchedule(t *testing.T) {
	logger, _ := newTestLogger()
	job := NewLowStockReportJob(new(MockLowStockReader), 5, "every now and then", logger)

	err := job.Start()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid low stock schedule")
}

func TestJobManager_StartAndStop(t *testing.T) {
	logger, buf := newTestLogger()
	jm := NewJobManager(new(MockLowStockReader), 5, "0 0 3 * * *", logger)

	require.NoError(t, jm.StartAll())
	jm.StopAll()

	assert.Contains(t, buf.String(), "Low stock report job started")
	assert.Contains(t, buf.String(), "Low stock report job stopped")
}
