package report

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, report *SalaryReport) error
	FindAll(ctx context.Context) ([]SalaryReport, error)
	FindByID(ctx context.Context, id uint) (*SalaryReport, error)
	Update(ctx context.Context, report *SalaryReport) error
	ListLines(ctx context.Context) ([]ReportLine, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, report *SalaryReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *repository) FindAll(ctx context.Context) ([]SalaryReport, error) {
	var reports []SalaryReport
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*SalaryReport, error) {
	var report SalaryReport
	err := r.db.WithContext(ctx).
		First(&report, "id = ?", id).Error
	return &report, err
}

func (r *repository) Update(ctx context.Context, report *SalaryReport) error {
	return r.db.WithContext(ctx).Save(report).Error
}

// ListLines snapshots every salary record for rendering, newest first
// to match the on-screen listing order.
func (r *repository) ListLines(ctx context.Context) ([]ReportLine, error) {
	var lines []ReportLine
	query := `
SELECT
	s.ref_number,
	e.name AS employee_name,
	a.name AS area_name,
	s.base_salary,
	s.allowance,
	s.total,
	s.created_at
FROM salary_records s
JOIN employees e ON e.id = s.employee_id
JOIN areas a ON a.id = s.area_id
ORDER BY
	s.created_at DESC
`

	err := r.db.WithContext(ctx).Raw(query).Scan(&lines).Error
	return lines, err
}
