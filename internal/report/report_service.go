package report

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go-salary/internal/events"
	"go-salary/internal/messaging/kafka"
	"go-salary/internal/shared/contextutil"
	"go-salary/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	Request(ctx context.Context) (SalaryReportResponse, error)
	GetAll(ctx context.Context) ([]SalaryReportResponse, error)
	GetByID(ctx context.Context, id uint) (SalaryReportResponse, error)
	GenerateFile(ctx context.Context, reportID uint) (SalaryReportResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	counter   counter.Repository
	outbox    kafka.OutboxRepository
	reportDir string
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	reportDir string,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		counter:   counterRepo,
		outbox:    outboxRepo,
		reportDir: reportDir,
		logger:    l,
	}
}

// Request records a pending report and queues the generation event in
// the same transaction. The PDF itself is rendered asynchronously by
// the consumer.
func (s *service) Request(ctx context.Context) (SalaryReportResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("request salary report", zap.String("request_id", rid))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("request report begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return SalaryReportResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	nextVal, err := s.counter.GetNextValue(ctx, "salary_report_ref")
	if err != nil {
		log.Error("request report ref number failed", zap.Error(err))
		return SalaryReportResponse{}, err
	}

	report := &SalaryReport{
		RefNumber:  fmt.Sprintf("RPT-%06d", nextVal),
		Status:     StatusPending,
		GrandTotal: decimal.Zero,
	}

	if err := qtx.Create(ctx, report); err != nil {
		log.Error("request report persist failed", zap.Error(err))
		return SalaryReportResponse{}, mapRepositoryError(err)
	}

	event := events.SalaryReportRequestedEvent{
		EventType:  "salary_report_requested",
		RequestID:  rid,
		ReportID:   report.ID,
		OccurredAt: time.Now().UTC(),
	}

	if s.outbox != nil {
		payload, err := json.Marshal(event)
		if err != nil {
			log.Error("marshal report event failed", zap.String("request_id", rid), zap.Error(err))
			return SalaryReportResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "salary_report",
			AggregateID:   fmt.Sprintf("%d", report.ID),
			EventType:     event.EventType,
			Topic:         events.SalaryReportRequestedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			log.Error("request report outbox persist failed",
				zap.Uint("report_id", report.ID),
				zap.Error(err),
			)
			return SalaryReportResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("request report commit failed", zap.String("request_id", rid), zap.Error(err))
		return SalaryReportResponse{}, err
	}

	log.Info("salary report requested",
		zap.String("request_id", rid),
		zap.Uint("report_id", report.ID),
		zap.String("ref_number", report.RefNumber),
	)

	return mapToResponse(*report), nil
}

func (s *service) GetAll(ctx context.Context) ([]SalaryReportResponse, error) {
	reports, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all reports failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]SalaryReportResponse, len(reports))
	for i, r := range reports {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (SalaryReportResponse, error) {
	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get report by id failed", zap.Uint("report_id", id), zap.Error(err))
		return SalaryReportResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*report), nil
}

// GenerateFile renders the PDF for a previously requested report and
// flips its status. A failure is persisted as FAILED so the request is
// never silently lost.
func (s *service) GenerateFile(ctx context.Context, reportID uint) (SalaryReportResponse, error) {
	report, err := s.repo.FindByID(ctx, reportID)
	if err != nil {
		s.logger.Error("generate report fetch failed", zap.Uint("report_id", reportID), zap.Error(err))
		return SalaryReportResponse{}, mapRepositoryError(err)
	}

	lines, err := s.repo.ListLines(ctx)
	if err != nil {
		s.logger.Error("generate report list lines failed", zap.Uint("report_id", reportID), zap.Error(err))
		return SalaryReportResponse{}, s.markFailed(ctx, report, err)
	}

	grandTotal := decimal.Zero
	for _, line := range lines {
		grandTotal = grandTotal.Add(line.Total)
	}

	pdf, err := buildSalaryReportPDF(renderReportLines(report.RefNumber, lines, grandTotal))
	if err != nil {
		s.logger.Error("generate report render failed", zap.Uint("report_id", reportID), zap.Error(err))
		return SalaryReportResponse{}, s.markFailed(ctx, report, err)
	}

	if err := os.MkdirAll(s.reportDir, 0o755); err != nil {
		return SalaryReportResponse{}, s.markFailed(ctx, report, err)
	}

	filePath := filepath.Join(s.reportDir, fmt.Sprintf("%s.pdf", report.RefNumber))
	if err := os.WriteFile(filePath, pdf, 0o644); err != nil {
		s.logger.Error("generate report write file failed",
			zap.Uint("report_id", reportID),
			zap.String("file_path", filePath),
			zap.Error(err),
		)
		return SalaryReportResponse{}, s.markFailed(ctx, report, err)
	}

	now := time.Now().UTC()
	report.Status = StatusCompleted
	report.RecordCount = len(lines)
	report.GrandTotal = grandTotal
	report.FilePath = filePath
	report.FailReason = ""
	report.GeneratedAt = &now

	if err := s.repo.Update(ctx, report); err != nil {
		s.logger.Error("generate report update failed", zap.Uint("report_id", reportID), zap.Error(err))
		return SalaryReportResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("salary report generated",
		zap.Uint("report_id", report.ID),
		zap.String("ref_number", report.RefNumber),
		zap.Int("record_count", report.RecordCount),
		zap.String("grand_total", report.GrandTotal.StringFixed(2)),
		zap.String("file_path", filePath),
	)

	return mapToResponse(*report), nil
}

func (s *service) markFailed(ctx context.Context, report *SalaryReport, cause error) error {
	report.Status = StatusFailed
	report.FailReason = cause.Error()
	if err := s.repo.Update(ctx, report); err != nil {
		s.logger.Error("mark report failed persist failed",
			zap.Uint("report_id", report.ID),
			zap.Error(err),
		)
	}
	return cause
}

// renderReportLines lays the records out as a fixed-width table. The
// column order mirrors the exported spreadsheet: date first, then
// total, allowance, base salary, area, and employee.
func renderReportLines(refNumber string, lines []ReportLine, grandTotal decimal.Decimal) []string {
	const rowFormat = "%-12s %14s %14s %14s  %-20s %s"

	out := make([]string, 0, len(lines)+6)
	out = append(out,
		fmt.Sprintf("Salary Report %s", refNumber),
		fmt.Sprintf("Generated at %s", time.Now().UTC().Format("2006-01-02 15:04")),
		"",
		fmt.Sprintf(rowFormat, "Date", "Total", "Allowance", "Base Salary", "Area", "Employee"),
	)

	for _, line := range lines {
		out = append(out, fmt.Sprintf(rowFormat,
			line.CreatedAt.Format("2006-01-02"),
			line.Total.StringFixed(2),
			line.Allowance.StringFixed(2),
			line.BaseSalary.StringFixed(2),
			truncate(line.AreaName, 20),
			line.EmployeeName,
		))
	}

	out = append(out,
		"",
		fmt.Sprintf(rowFormat, "Grand Total", grandTotal.StringFixed(2), "", "", "", ""),
		fmt.Sprintf("%d record(s)", len(lines)),
	)

	return out
}

func truncate(v string, max int) string {
	runes := []rune(v)
	if len(runes) <= max {
		return v
	}
	return string(runes[:max-1]) + "~"
}

func mapToResponse(report SalaryReport) SalaryReportResponse {
	resp := SalaryReportResponse{
		ID:          report.ID,
		RefNumber:   report.RefNumber,
		Status:      report.Status,
		RecordCount: report.RecordCount,
		GrandTotal:  report.GrandTotal.StringFixed(2),
		FilePath:    report.FilePath,
		FailReason:  report.FailReason,
	}
	if report.GeneratedAt != nil {
		resp.GeneratedAt = report.GeneratedAt.Format(time.RFC3339)
	}
	if !report.CreatedAt.IsZero() {
		resp.CreatedAt = report.CreatedAt.Format(time.RFC3339)
	}
	return resp
}
