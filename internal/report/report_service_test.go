package report_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"go-salary/internal/events"
	"go-salary/internal/messaging/kafka"
	kafkaMock "go-salary/internal/messaging/kafka/mock"
	"go-salary/internal/report"
	reporterrors "go-salary/internal/report/errors"
	reportMock "go-salary/internal/report/mock"
	counterMock "go-salary/internal/shared/counter/mock"
	"go-salary/internal/shared/contextutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service report.Service
	repo    *reportMock.MockRepository
	counter *counterMock.MockRepository
	outbox  *kafkaMock.MockOutboxRepository
	dir     string
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := reportMock.NewMockRepository(ctrl)
	counterRepo := counterMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)
	dir := t.TempDir()

	svc := report.NewService(db, repo, counterRepo, outboxRepo, dir)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		counter: counterRepo,
		outbox:  outboxRepo,
		dir:     dir,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestReportService_Request(t *testing.T) {
	t.Run("creates pending report and outbox event in one tx", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		rid := "REQ-42"
		ctx := contextutil.WithRequestID(context.Background(), rid)

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.counter.EXPECT().
			GetNextValue(gomock.Any(), "salary_report_ref").
			Return(int64(8), nil)
		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, r *report.SalaryReport) error {
				assert.Equal(t, "RPT-000008", r.RefNumber)
				assert.Equal(t, report.StatusPending, r.Status)
				r.ID = 8
				return nil
			})

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, e kafka.OutboxEvent) error {
				assert.Equal(t, events.SalaryReportRequestedTopic, e.Topic)
				assert.Equal(t, rid, e.RequestID)
				assert.Equal(t, kafka.OutboxStatusPending, e.Status)

				var payload events.SalaryReportRequestedEvent
				assert.NoError(t, json.Unmarshal(e.Payload, &payload))
				assert.Equal(t, uint(8), payload.ReportID)
				assert.Equal(t, rid, payload.RequestID)
				return nil
			}).
			Times(1)

		resp, err := deps.service.Request(ctx)

		assert.NoError(t, err)
		assert.Equal(t, "RPT-000008", resp.RefNumber)
		assert.Equal(t, report.StatusPending, resp.Status)
	})

	t.Run("outbox failure rolls everything back", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		ctx := context.Background()

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.counter.EXPECT().
			GetNextValue(gomock.Any(), "salary_report_ref").
			Return(int64(9), nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(errors.New("outbox insert failed"))

		_, err := deps.service.Request(ctx)

		assert.Error(t, err)
	})
}

func TestReportService_GenerateFile(t *testing.T) {
	ctx := context.Background()

	t.Run("writes pdf and completes the report", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		pending := &report.SalaryReport{
			ID:        8,
			RefNumber: "RPT-000008",
			Status:    report.StatusPending,
		}

		deps.repo.EXPECT().FindByID(ctx, uint(8)).Return(pending, nil)
		deps.repo.EXPECT().
			ListLines(ctx).
			Return([]report.ReportLine{
				{
					RefNumber:    "SAL-000002",
					EmployeeName: "Ali",
					AreaName:     "North",
					BaseSalary:   decimal.RequireFromString("5000.00"),
					Allowance:    decimal.RequireFromString("500.00"),
					Total:        decimal.RequireFromString("5500.00"),
					CreatedAt:    time.Now(),
				},
				{
					RefNumber:    "SAL-000001",
					EmployeeName: "Badr",
					AreaName:     "South",
					BaseSalary:   decimal.RequireFromString("3000.00"),
					Allowance:    decimal.Zero,
					Total:        decimal.RequireFromString("3000.00"),
					CreatedAt:    time.Now().Add(-time.Hour),
				},
			}, nil)

		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, r *report.SalaryReport) error {
				assert.Equal(t, report.StatusCompleted, r.Status)
				assert.Equal(t, 2, r.RecordCount)
				assert.Equal(t, "8500.00", r.GrandTotal.StringFixed(2))
				assert.NotEmpty(t, r.FilePath)
				assert.NotNil(t, r.GeneratedAt)
				return nil
			})

		resp, err := deps.service.GenerateFile(ctx, 8)

		assert.NoError(t, err)
		assert.Equal(t, report.StatusCompleted, resp.Status)
		assert.Equal(t, "8500.00", resp.GrandTotal)

		data, err := os.ReadFile(resp.FilePath)
		assert.NoError(t, err)
		assert.True(t, len(data) > 0)
		assert.Equal(t, "%PDF-1.4", string(data[:8]))
	})

	t.Run("empty table still completes with zero grand total", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		pending := &report.SalaryReport{ID: 9, RefNumber: "RPT-000009", Status: report.StatusPending}

		deps.repo.EXPECT().FindByID(ctx, uint(9)).Return(pending, nil)
		deps.repo.EXPECT().ListLines(ctx).Return([]report.ReportLine{}, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, r *report.SalaryReport) error {
				assert.Equal(t, 0, r.RecordCount)
				assert.True(t, r.GrandTotal.IsZero())
				return nil
			})

		resp, err := deps.service.GenerateFile(ctx, 9)

		assert.NoError(t, err)
		assert.Equal(t, "0.00", resp.GrandTotal)
	})

	t.Run("listing failure marks the report failed", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		pending := &report.SalaryReport{ID: 10, RefNumber: "RPT-000010", Status: report.StatusPending}

		deps.repo.EXPECT().FindByID(ctx, uint(10)).Return(pending, nil)
		deps.repo.EXPECT().ListLines(ctx).Return(nil, errors.New("join failed"))
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, r *report.SalaryReport) error {
				assert.Equal(t, report.StatusFailed, r.Status)
				assert.Contains(t, r.FailReason, "join failed")
				return nil
			})

		_, err := deps.service.GenerateFile(ctx, 10)

		assert.Error(t, err)
	})

	t.Run("unknown report id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			FindByID(ctx, uint(404)).
			Return(nil, reporterrors.ErrReportNotFound)

		_, err := deps.service.GenerateFile(ctx, 404)

		assert.ErrorIs(t, err, reporterrors.ErrReportNotFound)
	})
}
