package rate

import (
	"context"
	"database/sql"
	"errors"

	rateerrors "go-salary/internal/rate/errors"
	"go-salary/internal/shared/contextutil"
	"go-salary/internal/validation"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=rate_service.go -destination=mock/rate_service_mock.go -package=mock
type Service interface {
	Upsert(ctx context.Context, req UpsertRateRequest) (RateResponse, error)
	Resolve(ctx context.Context, employeeID, areaID uint) (Resolved, error)
	GetAllWithNames(ctx context.Context) ([]RateView, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("rate.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rate.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Upsert(
	ctx context.Context,
	req UpsertRateRequest,
) (RateResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("upsert rate requested",
		zap.String("request_id", rid),
		zap.Uint("employee_id", req.EmployeeID),
		zap.Uint("area_id", req.AreaID),
	)

	baseSalary, err := validation.Amount(req.BaseSalary, validation.MaxBaseSalary)
	if err != nil {
		s.logger.Warn("upsert rate invalid base salary", zap.String("request_id", rid), zap.Error(err))
		return RateResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("upsert rate begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return RateResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Error("upsert rate employee lookup failed", zap.Error(err))
		return RateResponse{}, err
	}
	if !exists {
		return RateResponse{}, rateerrors.ErrRateEmployeeNotFound
	}

	exists, err = qtx.AreaExists(ctx, req.AreaID)
	if err != nil {
		s.logger.Error("upsert rate area lookup failed", zap.Error(err))
		return RateResponse{}, err
	}
	if !exists {
		return RateResponse{}, rateerrors.ErrRateAreaNotFound
	}

	assignment := &RateAssignment{
		EmployeeID: req.EmployeeID,
		AreaID:     req.AreaID,
		BaseSalary: baseSalary,
	}

	if err := qtx.Upsert(ctx, assignment); err != nil {
		s.logger.Error("upsert rate persist failed", zap.Error(err))
		return RateResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("upsert rate commit failed", zap.String("request_id", rid), zap.Error(err))
		return RateResponse{}, err
	}

	s.logger.Info("upsert rate success",
		zap.String("request_id", rid),
		zap.Uint("employee_id", req.EmployeeID),
		zap.Uint("area_id", req.AreaID),
		zap.String("base_salary", baseSalary.StringFixed(2)),
	)

	return RateResponse{
		EmployeeID: req.EmployeeID,
		AreaID:     req.AreaID,
		BaseSalary: baseSalary.StringFixed(2),
	}, nil
}

// Resolve looks up the configured base salary for the pair. A missing
// row is a normal outcome, reported through the Configured flag so the
// caller can distinguish it from a configured zero.
func (s *service) Resolve(ctx context.Context, employeeID, areaID uint) (Resolved, error) {
	if employeeID == 0 || areaID == 0 {
		return Resolved{}, rateerrors.ErrInvalidRateSelection
	}

	assignment, err := s.repo.Find(ctx, employeeID, areaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Resolved{Configured: false}, nil
		}
		s.logger.Error("resolve rate failed",
			zap.Uint("employee_id", employeeID),
			zap.Uint("area_id", areaID),
			zap.Error(err),
		)
		return Resolved{}, err
	}

	return Resolved{
		Configured: true,
		BaseSalary: assignment.BaseSalary,
	}, nil
}

func (s *service) GetAllWithNames(ctx context.Context) ([]RateView, error) {
	s.logger.Debug("get all rates requested")
	views, err := s.repo.FindAllWithNames(ctx)
	if err != nil {
		s.logger.Error("get all rates failed", zap.Error(err))
		return nil, err
	}

	return views, nil
}
