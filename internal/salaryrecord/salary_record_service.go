package salaryrecord

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	salaryerrors "go-salary/internal/salaryrecord/errors"
	"go-salary/internal/shared/contextutil"
	"go-salary/internal/shared/counter"
	"go-salary/internal/validation"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=salary_record_service.go -destination=mock/salary_record_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateSalaryRecordRequest) (SalaryRecordResponse, error)
	GetAll(ctx context.Context) ([]SalaryRecordResponse, error)
	GetByID(ctx context.Context, id uint) (SalaryRecordResponse, error)
	Update(ctx context.Context, id uint, req UpdateSalaryRecordRequest) (SalaryRecordResponse, error)
	Delete(ctx context.Context, id uint) error
	GrandTotal(ctx context.Context) (decimal.Decimal, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counter counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("salaryrecord.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salaryrecord.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		logger:  l,
	}
}

func (s *service) Create(
	ctx context.Context,
	req CreateSalaryRecordRequest,
) (SalaryRecordResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create salary record requested",
		zap.String("request_id", rid),
		zap.Uint("employee_id", req.EmployeeID),
		zap.Uint("area_id", req.AreaID),
	)

	baseSalary, err := validation.Amount(req.BaseSalary, validation.MaxBaseSalary)
	if err != nil {
		s.logger.Warn("create salary record invalid base salary", zap.String("request_id", rid), zap.Error(err))
		return SalaryRecordResponse{}, err
	}
	allowance, err := validation.Amount(req.Allowance, validation.MaxAllowance)
	if err != nil {
		s.logger.Warn("create salary record invalid allowance", zap.String("request_id", rid), zap.Error(err))
		return SalaryRecordResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create salary record begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return SalaryRecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Error("create salary record employee lookup failed", zap.Error(err))
		return SalaryRecordResponse{}, err
	}
	if !exists {
		return SalaryRecordResponse{}, salaryerrors.ErrRecordEmployeeNotFound
	}

	exists, err = qtx.AreaExists(ctx, req.AreaID)
	if err != nil {
		s.logger.Error("create salary record area lookup failed", zap.Error(err))
		return SalaryRecordResponse{}, err
	}
	if !exists {
		return SalaryRecordResponse{}, salaryerrors.ErrRecordAreaNotFound
	}

	nextVal, err := s.counter.GetNextValue(ctx, "salary_record_ref")
	if err != nil {
		s.logger.Error("create salary record ref number failed", zap.Error(err))
		return SalaryRecordResponse{}, err
	}

	record := &SalaryRecord{
		RefNumber:  fmt.Sprintf("SAL-%06d", nextVal),
		EmployeeID: req.EmployeeID,
		AreaID:     req.AreaID,
		BaseSalary: baseSalary,
		Allowance:  allowance,
		Total:      ComputeTotal(baseSalary, allowance),
	}

	if err := qtx.Create(ctx, record); err != nil {
		s.logger.Error("create salary record persist failed", zap.Error(err))
		return SalaryRecordResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create salary record commit failed", zap.String("request_id", rid), zap.Error(err))
		return SalaryRecordResponse{}, err
	}

	s.logger.Info("create salary record success",
		zap.String("request_id", rid),
		zap.Uint("record_id", record.ID),
		zap.String("ref_number", record.RefNumber),
		zap.String("total", record.Total.StringFixed(2)),
	)

	return mapToResponse(*record), nil
}

func (s *service) GetAll(ctx context.Context) ([]SalaryRecordResponse, error) {
	s.logger.Debug("get all salary records requested")
	views, err := s.repo.FindAllWithNames(ctx)
	if err != nil {
		s.logger.Error("get all salary records failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]SalaryRecordResponse, len(views))
	for i, v := range views {
		res[i] = mapViewToResponse(v)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (SalaryRecordResponse, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get salary record by id failed", zap.Error(err))
		return SalaryRecordResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*record), nil
}

// Update is an administrative override; the normal workflow never
// mutates a persisted record. The total is always recomputed here,
// never taken from the caller.
func (s *service) Update(
	ctx context.Context,
	id uint,
	req UpdateSalaryRecordRequest,
) (SalaryRecordResponse, error) {
	s.logger.Debug("update salary record requested", zap.Uint("record_id", id))

	baseSalary, err := validation.Amount(req.BaseSalary, validation.MaxBaseSalary)
	if err != nil {
		return SalaryRecordResponse{}, err
	}
	allowance, err := validation.Amount(req.Allowance, validation.MaxAllowance)
	if err != nil {
		return SalaryRecordResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update salary record begin tx failed", zap.Error(err))
		return SalaryRecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update salary record fetch existing failed", zap.Error(err))
		return SalaryRecordResponse{}, mapRepositoryError(err)
	}

	exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		return SalaryRecordResponse{}, err
	}
	if !exists {
		return SalaryRecordResponse{}, salaryerrors.ErrRecordEmployeeNotFound
	}

	exists, err = qtx.AreaExists(ctx, req.AreaID)
	if err != nil {
		return SalaryRecordResponse{}, err
	}
	if !exists {
		return SalaryRecordResponse{}, salaryerrors.ErrRecordAreaNotFound
	}

	record.EmployeeID = req.EmployeeID
	record.AreaID = req.AreaID
	record.BaseSalary = baseSalary
	record.Allowance = allowance
	record.Total = ComputeTotal(baseSalary, allowance)

	if err := qtx.Update(ctx, record); err != nil {
		s.logger.Error("update salary record persist failed", zap.Error(err))
		return SalaryRecordResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update salary record commit failed", zap.Error(err))
		return SalaryRecordResponse{}, err
	}

	s.logger.Info("update salary record success", zap.Uint("record_id", id))

	return mapToResponse(*record), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	s.logger.Debug("delete salary record requested", zap.Uint("record_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete salary record begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete salary record failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete salary record commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete salary record success", zap.Uint("record_id", id))
	return nil
}

func (s *service) GrandTotal(ctx context.Context) (decimal.Decimal, error) {
	total, err := s.repo.GrandTotal(ctx)
	if err != nil {
		s.logger.Error("grand total failed", zap.Error(err))
		return decimal.Zero, err
	}
	return total, nil
}

func mapToResponse(record SalaryRecord) SalaryRecordResponse {
	resp := SalaryRecordResponse{
		ID:         record.ID,
		RefNumber:  record.RefNumber,
		EmployeeID: record.EmployeeID,
		AreaID:     record.AreaID,
		BaseSalary: record.BaseSalary.StringFixed(2),
		Allowance:  record.Allowance.StringFixed(2),
		Total:      record.Total.StringFixed(2),
	}
	if !record.CreatedAt.IsZero() {
		resp.CreatedAt = record.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapViewToResponse(v SalaryRecordView) SalaryRecordResponse {
	resp := SalaryRecordResponse{
		ID:           v.ID,
		RefNumber:    v.RefNumber,
		EmployeeID:   v.EmployeeID,
		EmployeeName: v.EmployeeName,
		AreaID:       v.AreaID,
		AreaName:     v.AreaName,
		BaseSalary:   v.BaseSalary.StringFixed(2),
		Allowance:    v.Allowance.StringFixed(2),
		Total:        v.Total.StringFixed(2),
	}
	if !v.CreatedAt.IsZero() {
		resp.CreatedAt = v.CreatedAt.Format(time.RFC3339)
	}
	return resp
}
