package rate_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-salary/internal/rate"
	rateerrors "go-salary/internal/rate/errors"
	rateMock "go-salary/internal/rate/mock"
	"go-salary/internal/validation"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service rate.Service
	repo    *rateMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := rateMock.NewMockRepository(ctrl)

	svc := rate.NewService(db, repo)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
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

func TestRateService_Upsert(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := rate.UpsertRateRequest{
			EmployeeID: 1,
			AreaID:     2,
			BaseSalary: decimal.RequireFromString("4500.00"),
		}

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmployeeExists(ctx, uint(1)).Return(true, nil)
		deps.repo.EXPECT().AreaExists(ctx, uint(2)).Return(true, nil)
		deps.repo.EXPECT().
			Upsert(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, a *rate.RateAssignment) error {
				assert.Equal(t, uint(1), a.EmployeeID)
				assert.Equal(t, uint(2), a.AreaID)
				assert.Equal(t, "4500.00", a.BaseSalary.StringFixed(2))
				return nil
			})

		resp, err := deps.service.Upsert(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "4500.00", resp.BaseSalary)
	})

	t.Run("replacing an existing pair reuses the same path", func(t *testing.T) {
		// The repository upsert is a single ON CONFLICT statement, so a
		// second call for the same pair simply overwrites.
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmployeeExists(ctx, uint(1)).Return(true, nil)
		deps.repo.EXPECT().AreaExists(ctx, uint(2)).Return(true, nil)
		deps.repo.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.Upsert(ctx, rate.UpsertRateRequest{
			EmployeeID: 1,
			AreaID:     2,
			BaseSalary: decimal.RequireFromString("9000"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "9000.00", resp.BaseSalary)
	})

	t.Run("zero base salary is a valid configuration", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmployeeExists(ctx, uint(1)).Return(true, nil)
		deps.repo.EXPECT().AreaExists(ctx, uint(2)).Return(true, nil)
		deps.repo.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.Upsert(ctx, rate.UpsertRateRequest{
			EmployeeID: 1,
			AreaID:     2,
			BaseSalary: decimal.Zero,
		})

		assert.NoError(t, err)
		assert.Equal(t, "0.00", resp.BaseSalary)
	})

	t.Run("negative base salary rejected before tx", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Upsert(ctx, rate.UpsertRateRequest{
			EmployeeID: 1,
			AreaID:     2,
			BaseSalary: decimal.NewFromInt(-100),
		})

		assert.ErrorIs(t, err, validation.ErrAmountNegative)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmployeeExists(ctx, uint(99)).Return(false, nil)

		_, err := deps.service.Upsert(ctx, rate.UpsertRateRequest{
			EmployeeID: 99,
			AreaID:     2,
			BaseSalary: decimal.NewFromInt(100),
		})

		assert.ErrorIs(t, err, rateerrors.ErrRateEmployeeNotFound)
	})

	t.Run("unknown area", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmployeeExists(ctx, uint(1)).Return(true, nil)
		deps.repo.EXPECT().AreaExists(ctx, uint(99)).Return(false, nil)

		_, err := deps.service.Upsert(ctx, rate.UpsertRateRequest{
			EmployeeID: 1,
			AreaID:     99,
			BaseSalary: decimal.NewFromInt(100),
		})

		assert.ErrorIs(t, err, rateerrors.ErrRateAreaNotFound)
	})
}

func TestRateService_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("configured pair", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			Find(ctx, uint(1), uint(2)).
			Return(&rate.RateAssignment{
				EmployeeID: 1,
				AreaID:     2,
				BaseSalary: decimal.RequireFromString("4500.00"),
			}, nil)

		resolved, err := deps.service.Resolve(ctx, 1, 2)

		assert.NoError(t, err)
		assert.True(t, resolved.Configured)
		assert.Equal(t, "4500.00", resolved.BaseSalary.StringFixed(2))
	})

	t.Run("configured zero is not unconfigured", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			Find(ctx, uint(1), uint(2)).
			Return(&rate.RateAssignment{EmployeeID: 1, AreaID: 2, BaseSalary: decimal.Zero}, nil)

		resolved, err := deps.service.Resolve(ctx, 1, 2)

		assert.NoError(t, err)
		assert.True(t, resolved.Configured)
		assert.True(t, resolved.BaseSalary.IsZero())
	})

	t.Run("missing pair -> unconfigured, no error", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			Find(ctx, uint(1), uint(3)).
			Return(nil, gorm.ErrRecordNotFound)

		resolved, err := deps.service.Resolve(ctx, 1, 3)

		assert.NoError(t, err)
		assert.False(t, resolved.Configured)
	})

	t.Run("zero ids rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Resolve(ctx, 0, 2)

		assert.ErrorIs(t, err, rateerrors.ErrInvalidRateSelection)
	})

	t.Run("repo error propagates", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			Find(ctx, uint(1), uint(2)).
			Return(nil, errors.New("db error"))

		_, err := deps.service.Resolve(ctx, 1, 2)

		assert.Error(t, err)
	})
}

func TestRateService_GetAllWithNames(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps.repo.EXPECT().
			FindAllWithNames(ctx).
			Return([]rate.RateView{
				{EmployeeID: 1, EmployeeName: "Ali", AreaID: 2, AreaName: "North", BaseSalary: decimal.NewFromInt(100)},
			}, nil)

		views, err := deps.service.GetAllWithNames(ctx)

		assert.NoError(t, err)
		assert.Len(t, views, 1)
		assert.Equal(t, "Ali", views[0].EmployeeName)
	})

	t.Run("error repository", func(t *testing.T) {
		deps.repo.EXPECT().
			FindAllWithNames(ctx).
			Return(nil, errors.New("db error"))

		views, err := deps.service.GetAllWithNames(ctx)

		assert.Error(t, err)
		assert.Nil(t, views)
	})
}
